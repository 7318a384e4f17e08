package engine

import (
	"math"

	"github.com/chargeplan/chargeplan/pkg/types"
)

// ProjectionYears is the length of the utilization projection.
const ProjectionYears = 10

// growthForYear returns the year-over-year growth percent applied going
// into the given year (2-10). Manual mode carries nine explicit rates.
func growthForYear(g types.UtilizationGrowth, year int) float64 {
	if g.Mode == types.GrowthModeManual {
		return g.ManualPercents[year-2]
	}
	return g.ConstantPercent
}

// siteHostShare computes gross, fees, net, and the customer share for
// one year of billable energy under the site-host model.
func siteHostShare(billableKwh float64, rs types.RevenueSettings, sharePercent float64) (gross, fees, net, share float64) {
	gross = mulCents(billableKwh, rs.DriverRatePerKwh)
	fees = mulCents(gross, rs.NetworkFeePercent/100)
	net = roundCents(gross - fees)
	share = mulCents(net, sharePercent/100)
	return gross, fees, net, share
}

// bookingsForYear returns the monthly bookings in a given year. Bookings
// grow additively, either by a constant amount per year or by nine
// manual per-year additions.
func bookingsForYear(rs types.RevenueSettings, year int) float64 {
	bookings := rs.MonthlyBookings
	for y := 2; y <= year; y++ {
		if rs.BookingGrowthMode == types.GrowthModeManual {
			bookings += rs.BookingGrowthYearly[y-2]
		} else {
			bookings += rs.BookingGrowthPerYear
		}
	}
	return bookings
}

// profitPerBookingForYear returns the per-booking profit in a given
// year. Profit compounds by percent.
func profitPerBookingForYear(rs types.RevenueSettings, year int) float64 {
	profit := rs.BookingProfitPerBooking
	for y := 2; y <= year; y++ {
		if rs.ProfitGrowthMode == types.GrowthModeManual {
			profit *= 1 + rs.ProfitGrowthYearly[y-2]/100
		} else {
			profit *= 1 + rs.ProfitGrowthPercent/100
		}
	}
	return profit
}

// ComputeSiteHost settles the site-host ownership model: the customer is
// paid the greater of the equipment lease and the revenue share, and the
// 10-year projection scales usage (and, for Hotel/Hospitality, booking
// profit) forward from year 1.
func ComputeSiteHost(totalPorts int, annualKwh float64, rs types.RevenueSettings, sh types.SiteHostSettings, growth types.UtilizationGrowth) types.SiteHostResult {
	totalSpaces := totalPorts + sh.AdditionalSpaces
	monthlyBaseRent := mulCents(float64(totalSpaces), sh.LeasePerSpaceMonthly)
	annualBaseRent := mulCents(monthlyBaseRent, 12)

	billableKwh := mulCents(annualKwh, rs.PaidPercent/100)
	gross, fees, net, share := siteHostShare(billableKwh, rs, sh.RevenueSharePercent)

	customerAnnual := annualBaseRent
	source := types.GuaranteeSourceBaseRent
	if share > annualBaseRent {
		customerAnnual = share
		source = types.GuaranteeSourceRevenueShare
	}

	result := types.SiteHostResult{
		TotalSpaces:           totalSpaces,
		LeasePerSpace:         sh.LeasePerSpaceMonthly,
		MonthlyBaseRent:       monthlyBaseRent,
		AnnualBaseRent:        annualBaseRent,
		RevenueSharePercent:   sh.RevenueSharePercent,
		GrossChargingRevenue:  gross,
		ProcessingFees:        fees,
		NetChargingRevenue:    net,
		RevenueShareAmount:    share,
		CustomerAnnualRevenue: customerAnnual,
		RevenueSource:         source,
	}

	withBookings := rs.Industry == types.IndustryHotel || rs.Industry == types.IndustryHospitality

	multiplier := 1.0
	projection := make([]types.YearlyProjection, 0, ProjectionYears)
	for year := 1; year <= ProjectionYears; year++ {
		if year > 1 {
			multiplier *= 1 + growthForYear(growth, year)/100
		}

		yearKwh := annualKwh * multiplier
		yearBillable := mulCents(yearKwh, rs.PaidPercent/100)
		yearGross, _, _, yearShare := siteHostShare(yearBillable, rs, sh.RevenueSharePercent)

		yp := types.YearlyProjection{
			Year:                  year,
			UtilizationMultiplier: multiplier,
			AnnualKwh:             math.Round(yearKwh),
			GrossChargingRevenue:  yearGross,
			RevenueShareAmount:    yearShare,
			BaseRent:              annualBaseRent,
			CustomerRevenue:       annualBaseRent,
			RevenueSource:         types.GuaranteeSourceBaseRent,
		}
		if yearShare > annualBaseRent {
			yp.CustomerRevenue = yearShare
			yp.RevenueSource = types.GuaranteeSourceRevenueShare
		}

		if withBookings {
			yp.MonthlyBookings = bookingsForYear(rs, year)
			yp.ProfitPerBooking = roundCents(profitPerBookingForYear(rs, year))
			yp.BookingProfit = mulCents(yp.MonthlyBookings*yp.ProfitPerBooking, 12)
		}
		yp.TotalCustomerProfit = roundCents(yp.CustomerRevenue + yp.BookingProfit)

		projection = append(projection, yp)
	}
	result.Projection = projection

	return result
}
