package engine

import (
	"math"

	"github.com/chargeplan/chargeplan/pkg/types"
)

// TOU window capacities in hours per port per day.
const (
	SummerSuperPeakWindow = 4  // 2pm-6pm weekdays
	SummerOnPeakWindow    = 12 // 6am-2pm + 6pm-10pm weekdays
	SummerOffPeakWindow   = 8  // 10pm-6am
	WinterOnPeakWindow    = 16 // 6am-10pm weekdays
	WinterOffPeakWindow   = 8  // 10pm-6am
)

// Target distribution ratios applied before capping. Off-peak gets the
// remainder in both seasons.
const (
	summerSuperPeakRatio = 0.30
	summerOnPeakRatio    = 0.50
	winterOnPeakRatio    = 0.80
)

// touValidationTolerance is how far a season's window hours may drift
// from the coarse-input total before it is flagged.
const touValidationTolerance = 0.01

func roundQuarter(v float64) float64 {
	return math.Round(v*4) / 4
}

// AllocateTOU derives a full TOU hour split from the two coarse usage
// inputs. Each window gets its target ratio of the total, clamped to the
// window's capacity for the given port count; off-peak takes the
// remainder, and off-peak overflow cascades into on-peak and then
// super-peak up to their remaining headroom. All values round to the
// nearest quarter hour. Negative inputs are treated as 0.
//
// Callers run this whenever portsInUse or hoursPerPort change; it
// replaces any manually tuned window values.
func AllocateTOU(portsInUse, hoursPerPort float64) types.TOUHours {
	if portsInUse < 0 {
		portsInUse = 0
	}
	if hoursPerPort < 0 {
		hoursPerPort = 0
	}
	total := portsInUse * hoursPerPort

	summerSuperMax := portsInUse * SummerSuperPeakWindow
	summerOnMax := portsInUse * SummerOnPeakWindow
	summerOffMax := portsInUse * SummerOffPeakWindow
	winterOnMax := portsInUse * WinterOnPeakWindow
	winterOffMax := portsInUse * WinterOffPeakWindow

	summerSuper := math.Min(total*summerSuperPeakRatio, summerSuperMax)
	summerOn := math.Min(total*summerOnPeakRatio, summerOnMax)
	summerOff := total - summerSuper - summerOn

	if summerOff > summerOffMax {
		overflow := summerOff - summerOffMax
		summerOff = summerOffMax
		if room := summerOnMax - summerOn; room >= overflow {
			summerOn += overflow
		} else {
			summerOn += room
			// residual only exists when total exceeds the season's full
			// capacity, so super-peak is clamped too
			summerSuper = math.Min(summerSuper+(overflow-room), summerSuperMax)
		}
	}

	winterOn := math.Min(total*winterOnPeakRatio, winterOnMax)
	winterOff := total - winterOn

	if winterOff > winterOffMax {
		overflow := winterOff - winterOffMax
		winterOff = winterOffMax
		winterOn = math.Min(winterOn+overflow, winterOnMax)
	}

	return types.TOUHours{
		SummerSuperPeak: roundQuarter(summerSuper),
		SummerOnPeak:    roundQuarter(summerOn),
		SummerOffPeak:   roundQuarter(summerOff),
		WinterOnPeak:    roundQuarter(winterOn),
		WinterOffPeak:   roundQuarter(winterOff),
	}
}

// ValidateTOU checks each season's stored window hours against the total
// derived from the coarse inputs. Mismatched seasons are returned for
// the caller to surface; computation proceeds with the stored hours
// either way.
func ValidateTOU(usage types.UsageInputs) []types.SeasonMismatch {
	expected := usage.PortsInUse * usage.HoursPerPort
	if expected < 0 {
		expected = 0
	}

	var mismatches []types.SeasonMismatch
	if actual := usage.TOU.SummerTotal(); math.Abs(actual-expected) >= touValidationTolerance {
		mismatches = append(mismatches, types.SeasonMismatch{
			Season:   types.SeasonSummer,
			Expected: expected,
			Actual:   actual,
		})
	}
	if actual := usage.TOU.WinterTotal(); math.Abs(actual-expected) >= touValidationTolerance {
		mismatches = append(mismatches, types.SeasonMismatch{
			Season:   types.SeasonWinter,
			Expected: expected,
			Actual:   actual,
		})
	}
	return mismatches
}
