package engine

import (
	"fmt"

	"github.com/chargeplan/chargeplan/pkg/rates"
	"github.com/chargeplan/chargeplan/pkg/types"
)

// Compute runs the full pipeline for a project: aggregate the equipment,
// classify the load factor into a tier, apply the rate schedule per
// season, annualize, and settle revenue. The returned result is a fresh
// value owned by the caller.
//
// An unknown utility or service class is an error; the caller must
// surface a configuration problem rather than bill on a guessed rate. A
// project with no equipment returns (nil, nil): an expected intermediate
// state, not an error. A TOU split that disagrees with the coarse inputs
// is flagged in the result but still billed as stored.
func Compute(p types.Project) (*types.CalculationResult, error) {
	classRates, err := rates.Lookup(p.Utility, p.ServiceClass)
	if err != nil {
		return nil, fmt.Errorf("resolving rates: %w", err)
	}

	nameplateKw := NameplateKw(p.Equipment)
	if nameplateKw == 0 {
		return nil, nil
	}

	effectiveKw := EffectiveKw(nameplateKw, p.LoadManagementKw)
	totalPorts := TotalPorts(p.Equipment)
	avgKwPerPort := AvgKwPerPort(p.Equipment)

	validation := ValidateTOU(p.Usage)

	tou := p.Usage.TOU
	daysInMonth := p.Usage.DaysInMonth
	if daysInMonth == 0 {
		daysInMonth = types.DefaultDaysInMonth
	}

	summerMonthlyKwh := tou.SummerTotal() * avgKwPerPort * daysInMonth
	winterMonthlyKwh := tou.WinterTotal() * avgKwPerPort * daysInMonth

	weightedDailyHours := WeightedDailyHours(tou)
	annualKwh := AnnualKwhEstimate(weightedDailyHours, avgKwPerPort)

	capacityKw := CapacityForLoadFactor(p.MeteringType, effectiveKw, p.MaxDemandKw)
	loadFactor := LoadFactor(annualKwh, capacityKw)
	tier := Tier(loadFactor)
	resolved := rates.Resolve(classRates, tier)

	peakDemandKw := PeakDemandKw(p.Equipment, p.Usage.PeakPorts, p.LoadManagementKw)

	// nil means unset; an explicit 0 is a real no-supply-charge rate
	supplyRate := types.DefaultSupplyRatePerKwh
	if p.SupplyRatePerKwh != nil {
		supplyRate = *p.SupplyRatePerKwh
	}

	summer := SummerMonthly(summerMonthlyKwh, tou, peakDemandKw, resolved, supplyRate)
	winter := WinterMonthly(winterMonthlyKwh, tou, peakDemandKw, resolved, supplyRate)

	summerTotal := SeasonTotal(summer, SummerMonths)
	winterTotal := SeasonTotal(winter, WinterMonths)
	annual := AnnualTotal(summerTotal, winterTotal)

	result := &types.CalculationResult{
		Utility:            p.Utility,
		ServiceClass:       p.ServiceClass,
		Tier:               tier,
		LoadFactorPercent:  loadFactor * 100,
		NameplateKw:        nameplateKw,
		EffectiveKw:        effectiveKw,
		TotalPorts:         totalPorts,
		AvgKwPerPort:       avgKwPerPort,
		WeightedDailyHours: weightedDailyHours,
		AnnualKwhEstimate:  annualKwh,
		Rates:              resolved,
		Summer:             summer,
		Winter:             winter,
		SummerTotal:        summerTotal,
		WinterTotal:        winterTotal,
		Annual:             annual,
		Validation:         validation,
	}

	// revenue is always computed, falling back to default settings, so
	// every estimate shows the driver-billing position
	revSettings := ResolveRevenueSettings(p.Revenue, p.Equipment)
	rev := ComputeRevenue(annual.Kwh, annual.TotalCost, revSettings)
	result.Revenue = &rev

	if p.OwnershipType == types.OwnershipSiteHost {
		hostSettings := ResolveSiteHostSettings(p.SiteHost)
		growth := ResolveGrowth(p.Growth)
		host := ComputeSiteHost(totalPorts, annual.Kwh, revSettings, hostSettings, growth)
		result.SiteHost = &host
	}

	return result, nil
}
