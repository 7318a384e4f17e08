package engine

import (
	"github.com/chargeplan/chargeplan/pkg/types"
	"github.com/shopspring/decimal"
)

// mulCents multiplies two monetary values and rounds the product to the
// cent. Rounding happens after every multiplication, not just at the
// end, so the figures match a cent-accurate ledger.
func mulCents(a, b float64) float64 {
	f, _ := decimal.NewFromFloat(a).Mul(decimal.NewFromFloat(b)).Round(2).Float64()
	return f
}

func roundCents(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}

// ResolveRevenueSettings produces a fully populated settings record for
// the settlement pipeline, so no formula needs its own defaulting. A nil
// input means all defaults; within a present record only the driver rate
// is defaulted (by charging level) since a zero rate is meaningless.
func ResolveRevenueSettings(rs *types.RevenueSettings, entries []types.EquipmentEntry) types.RevenueSettings {
	if rs == nil {
		return types.RevenueSettings{
			DriverRatePerKwh:        defaultDriverRate(entries),
			PaidPercent:             types.DefaultPaidPercent,
			NetworkFeePercent:       types.DefaultNetworkFeePercent,
			CustomerSharePercent:    types.DefaultCustomerSharePercent,
			Industry:                types.IndustryOther,
			MonthlyBookings:         types.DefaultMonthlyBookings,
			BookingProfitPerBooking: types.DefaultBookingProfit,
			BookingGrowthMode:       types.GrowthModeConstant,
			BookingGrowthPerYear:    types.DefaultBookingGrowthPerYear,
			ProfitGrowthMode:        types.GrowthModeConstant,
			ProfitGrowthPercent:     types.DefaultProfitGrowthPercent,
		}
	}
	out := *rs
	if out.DriverRatePerKwh == 0 {
		out.DriverRatePerKwh = defaultDriverRate(entries)
	}
	if out.Industry == "" {
		out.Industry = types.IndustryOther
	}
	if out.BookingGrowthMode == "" {
		out.BookingGrowthMode = types.GrowthModeConstant
	}
	if out.ProfitGrowthMode == "" {
		out.ProfitGrowthMode = types.GrowthModeConstant
	}
	return out
}

// defaultDriverRate picks the level default: DCFC sites command a higher
// per-kWh price than L2.
func defaultDriverRate(entries []types.EquipmentEntry) float64 {
	for _, e := range entries {
		if e.Level == types.ChargerLevelDCFC {
			return types.DefaultDriverRatePerKwh(types.ChargerLevelDCFC)
		}
	}
	return types.DefaultDriverRatePerKwh(types.ChargerLevelL2)
}

// ResolveSiteHostSettings fills a missing site-host record with the
// standard lease terms.
func ResolveSiteHostSettings(sh *types.SiteHostSettings) types.SiteHostSettings {
	if sh == nil {
		return types.SiteHostSettings{
			LeasePerSpaceMonthly: types.DefaultLeasePerSpaceMonthly,
			RevenueSharePercent:  types.DefaultRevenueSharePercent,
		}
	}
	return *sh
}

// ResolveGrowth fills a missing growth record with constant default
// growth.
func ResolveGrowth(g *types.UtilizationGrowth) types.UtilizationGrowth {
	if g == nil {
		return types.UtilizationGrowth{
			Mode:            types.GrowthModeConstant,
			ConstantPercent: types.DefaultGrowthConstantPercent,
		}
	}
	out := *g
	if out.Mode == "" {
		out.Mode = types.GrowthModeConstant
	}
	return out
}

// ComputeRevenue settles the driver-charging revenue for a year of
// usage: billable energy, gross revenue, the network fee, the
// customer/operator split, and the customer's final position after
// energy costs. Every monetary product is rounded to the cent as it is
// produced.
func ComputeRevenue(annualKwh, totalEnergyCost float64, rs types.RevenueSettings) types.RevenueResult {
	billableKwh := mulCents(annualKwh, rs.PaidPercent/100)
	gross := mulCents(billableKwh, rs.DriverRatePerKwh)

	fee := mulCents(gross, rs.NetworkFeePercent/100)
	netAfterFee := roundCents(gross - fee)

	customerShare := mulCents(netAfterFee, rs.CustomerSharePercent/100)
	operatorShare := mulCents(netAfterFee, (100-rs.CustomerSharePercent)/100)

	final := roundCents(customerShare - totalEnergyCost)

	return types.RevenueResult{
		DriverRatePerKwh:            rs.DriverRatePerKwh,
		AnnualKwh:                   annualKwh,
		BillableKwh:                 billableKwh,
		GrossRevenue:                gross,
		NetworkFee:                  fee,
		NetAfterFee:                 netAfterFee,
		CustomerShare:               customerShare,
		OperatorShare:               operatorShare,
		EnergyCost:                  totalEnergyCost,
		CustomerFinalRevenue:        final,
		MonthlyGrossRevenue:         roundCents(gross / 12),
		MonthlyCustomerFinalRevenue: roundCents(final / 12),
	}
}
