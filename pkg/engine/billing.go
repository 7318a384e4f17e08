package engine

import (
	"github.com/chargeplan/chargeplan/pkg/types"
)

// windowShare allocates monthly energy to one window in proportion to
// its share of the season's daily hours.
func windowShare(monthlyKwh, windowHours, totalHours float64) float64 {
	if totalHours == 0 {
		return 0
	}
	return monthlyKwh * (windowHours / totalHours)
}

func savingsPercent(savings, standardCost float64) float64 {
	if standardCost <= 0 {
		return 0
	}
	return savings / standardCost * 100
}

// SummerMonthly computes one summer month's cost breakdown. Energy is
// split across the three windows by their share of the stored daily
// hours, which are used verbatim even when they disagree with the
// coarse inputs.
func SummerMonthly(monthlyKwh float64, tou types.TOUHours, peakDemandKw float64, r types.ResolvedRates, supplyRate float64) types.MonthlyBreakdown {
	totalHours := tou.SummerTotal()

	super := types.WindowUsage{
		Hours:      tou.SummerSuperPeak,
		Kwh:        windowShare(monthlyKwh, tou.SummerSuperPeak, totalHours),
		RatePerKwh: r.SuperPeakPerKwh,
	}
	super.Cost = super.Kwh * super.RatePerKwh

	on := types.WindowUsage{
		Hours:      tou.SummerOnPeak,
		Kwh:        windowShare(monthlyKwh, tou.SummerOnPeak, totalHours),
		RatePerKwh: r.OnPeakPerKwh,
	}
	on.Cost = on.Kwh * on.RatePerKwh

	off := types.WindowUsage{
		Hours:      tou.SummerOffPeak,
		Kwh:        windowShare(monthlyKwh, tou.SummerOffPeak, totalHours),
		RatePerKwh: r.OffPeakPerKwh,
	}
	off.Cost = off.Kwh * off.RatePerKwh

	demandCharge := peakDemandKw * r.DemandPerKw
	delivery := demandCharge + super.Cost + on.Cost + off.Cost
	supply := monthlyKwh * supplyRate
	standard := peakDemandKw * r.StandardDemandPerKw
	savings := standard - delivery

	return types.MonthlyBreakdown{
		Season:          types.SeasonSummer,
		Kwh:             monthlyKwh,
		PeakDemandKw:    peakDemandKw,
		DemandRatePerKw: r.DemandPerKw,
		DemandCharge:    demandCharge,
		SuperPeak:       &super,
		OnPeak:          on,
		OffPeak:         off,
		DeliveryCost:    delivery,
		SupplyCost:      supply,
		TotalCost:       delivery + supply,
		StandardCost:    standard,
		Savings:         savings,
		SavingsPercent:  savingsPercent(savings, standard),
	}
}

// WinterMonthly computes one winter month's cost breakdown. Winter has
// no super-peak window.
func WinterMonthly(monthlyKwh float64, tou types.TOUHours, peakDemandKw float64, r types.ResolvedRates, supplyRate float64) types.MonthlyBreakdown {
	totalHours := tou.WinterTotal()

	on := types.WindowUsage{
		Hours:      tou.WinterOnPeak,
		Kwh:        windowShare(monthlyKwh, tou.WinterOnPeak, totalHours),
		RatePerKwh: r.OnPeakPerKwh,
	}
	on.Cost = on.Kwh * on.RatePerKwh

	off := types.WindowUsage{
		Hours:      tou.WinterOffPeak,
		Kwh:        windowShare(monthlyKwh, tou.WinterOffPeak, totalHours),
		RatePerKwh: r.OffPeakPerKwh,
	}
	off.Cost = off.Kwh * off.RatePerKwh

	demandCharge := peakDemandKw * r.DemandPerKw
	delivery := demandCharge + on.Cost + off.Cost
	supply := monthlyKwh * supplyRate
	standard := peakDemandKw * r.StandardDemandPerKw
	savings := standard - delivery

	return types.MonthlyBreakdown{
		Season:          types.SeasonWinter,
		Kwh:             monthlyKwh,
		PeakDemandKw:    peakDemandKw,
		DemandRatePerKw: r.DemandPerKw,
		DemandCharge:    demandCharge,
		OnPeak:          on,
		OffPeak:         off,
		DeliveryCost:    delivery,
		SupplyCost:      supply,
		TotalCost:       delivery + supply,
		StandardCost:    standard,
		Savings:         savings,
		SavingsPercent:  savingsPercent(savings, standard),
	}
}

// SeasonTotal scales a monthly breakdown by the season's length.
func SeasonTotal(m types.MonthlyBreakdown, months int) types.SeasonSummary {
	n := float64(months)
	return types.SeasonSummary{
		Season:       m.Season,
		Months:       months,
		Kwh:          m.Kwh * n,
		DemandCharge: m.DemandCharge * n,
		DeliveryCost: m.DeliveryCost * n,
		SupplyCost:   m.SupplyCost * n,
		TotalCost:    m.TotalCost * n,
		StandardCost: m.StandardCost * n,
		Savings:      m.Savings * n,
	}
}

// AnnualTotal sums both season summaries. Savings remain delivery-only;
// supply is carried in the totals but never enters the comparison.
func AnnualTotal(summer, winter types.SeasonSummary) types.AnnualSummary {
	standard := summer.StandardCost + winter.StandardCost
	delivery := summer.DeliveryCost + winter.DeliveryCost
	savings := standard - delivery
	return types.AnnualSummary{
		Kwh:            summer.Kwh + winter.Kwh,
		DeliveryCost:   delivery,
		SupplyCost:     summer.SupplyCost + winter.SupplyCost,
		TotalCost:      summer.TotalCost + winter.TotalCost,
		StandardCost:   standard,
		Savings:        savings,
		SavingsPercent: savingsPercent(savings, standard),
	}
}
