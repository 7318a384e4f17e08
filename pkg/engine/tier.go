package engine

import (
	"github.com/chargeplan/chargeplan/pkg/types"
)

const (
	HoursInYear  = 8760
	HoursInMonth = 730

	// Summer is June through September; winter is October through May.
	SummerMonths = 4
	WinterMonths = 8

	DaysInYear = 365
)

// WeightedDailyHours averages the two seasons' total daily charging
// hours, weighted by season length.
func WeightedDailyHours(tou types.TOUHours) float64 {
	return (tou.SummerTotal()*SummerMonths + tou.WinterTotal()*WinterMonths) / 12
}

// AnnualKwhEstimate converts daily charging hours into annual energy.
func AnnualKwhEstimate(dailyHours, avgKwPerPort float64) float64 {
	return dailyHours * avgKwPerPort * DaysInYear
}

// LoadFactor is the ratio of annual energy to the theoretical maximum at
// continuous full-capacity operation. Guarded to 0 for zero capacity.
func LoadFactor(annualKwh, capacityKw float64) float64 {
	if capacityKw <= 0 {
		return 0
	}
	return annualKwh / (capacityKw * HoursInYear)
}

// CapacityForLoadFactor picks which capacity bounds the load factor:
// nameplate for separately metered chargers, the building's max demand
// (falling back to nameplate) when metering is combined.
func CapacityForLoadFactor(metering types.MeteringType, nameplateKw, maxDemandKw float64) float64 {
	if metering == types.MeteringCombined && maxDemandKw > 0 {
		return maxDemandKw
	}
	return nameplateKw
}

// Tier classifies a load factor into a discount tier. Tiers 1-4 are the
// discount bands; 0 is the standard rate for load factors above 25%.
// The upper bound of each band is inclusive.
func Tier(loadFactor float64) int {
	pct := loadFactor * 100
	switch {
	case pct <= 10:
		return 1
	case pct <= 15:
		return 2
	case pct <= 20:
		return 3
	case pct <= 25:
		return 4
	default:
		return 0
	}
}

// TierLoadFactorRange returns the load factor band for a tier. Tier 0
// covers everything above 25%.
func TierLoadFactorRange(tier int) (min, max float64) {
	switch tier {
	case 1:
		return 0, 0.10
	case 2:
		return 0.10, 0.15
	case 3:
		return 0.15, 0.20
	case 4:
		return 0.20, 0.25
	default:
		return 0.25, 1
	}
}

// MaxKwhForTier is the most annual energy a site can use and stay in the
// tier.
func MaxKwhForTier(tier int, capacityKw float64) float64 {
	_, max := TierLoadFactorRange(tier)
	return capacityKw * HoursInYear * max
}

// MinKwhForTier is the least annual energy needed to reach the tier.
func MinKwhForTier(tier int, capacityKw float64) float64 {
	min, _ := TierLoadFactorRange(tier)
	return capacityKw * HoursInYear * min
}
