package engine

import (
	"testing"

	"github.com/chargeplan/chargeplan/pkg/types"
	"github.com/stretchr/testify/assert"
)

func TestResolveRevenueSettings(t *testing.T) {
	l2 := []types.EquipmentEntry{{Level: types.ChargerLevelL2, PowerKw: 11.52, Quantity: 1}}
	dcfc := []types.EquipmentEntry{
		{Level: types.ChargerLevelL2, PowerKw: 11.52, Quantity: 1},
		{Level: types.ChargerLevelDCFC, PowerKw: 120, Quantity: 1},
	}

	t.Run("nil gets all defaults", func(t *testing.T) {
		rs := ResolveRevenueSettings(nil, l2)
		assert.InDelta(t, 0.40, rs.DriverRatePerKwh, 0.001)
		assert.InDelta(t, 100, rs.PaidPercent, 0.001)
		assert.InDelta(t, 9, rs.NetworkFeePercent, 0.001)
		assert.InDelta(t, 100, rs.CustomerSharePercent, 0.001)
		assert.Equal(t, types.IndustryOther, rs.Industry)
		assert.InDelta(t, 20, rs.MonthlyBookings, 0.001)
		assert.InDelta(t, 100, rs.BookingProfitPerBooking, 0.001)
		assert.Equal(t, types.GrowthModeConstant, rs.BookingGrowthMode)
		assert.Equal(t, types.GrowthModeConstant, rs.ProfitGrowthMode)
	})

	t.Run("any DCFC raises the default rate", func(t *testing.T) {
		rs := ResolveRevenueSettings(nil, dcfc)
		assert.InDelta(t, 0.55, rs.DriverRatePerKwh, 0.001)
	})

	t.Run("explicit values survive", func(t *testing.T) {
		rs := ResolveRevenueSettings(&types.RevenueSettings{
			DriverRatePerKwh:  0.32,
			PaidPercent:       75,
			NetworkFeePercent: 5,
		}, dcfc)
		assert.InDelta(t, 0.32, rs.DriverRatePerKwh, 0.001)
		assert.InDelta(t, 75, rs.PaidPercent, 0.001)
		assert.InDelta(t, 5, rs.NetworkFeePercent, 0.001)
		assert.Equal(t, types.IndustryOther, rs.Industry)
	})

	t.Run("zero rate defaulted within present record", func(t *testing.T) {
		rs := ResolveRevenueSettings(&types.RevenueSettings{PaidPercent: 75}, l2)
		assert.InDelta(t, 0.40, rs.DriverRatePerKwh, 0.001)
		// other zeros are deliberate settings, not omissions
		assert.Zero(t, rs.NetworkFeePercent)
	})
}

func TestComputeRevenue(t *testing.T) {
	rs := types.RevenueSettings{
		DriverRatePerKwh:     0.40,
		PaidPercent:          100,
		NetworkFeePercent:    9,
		CustomerSharePercent: 100,
	}

	t.Run("full flow", func(t *testing.T) {
		r := ComputeRevenue(33638.4, 5000, rs)
		assert.InDelta(t, 33638.4, r.BillableKwh, 0.001)
		assert.InDelta(t, 13455.36, r.GrossRevenue, 0.001)
		assert.InDelta(t, 1210.98, r.NetworkFee, 0.001)
		assert.InDelta(t, 12244.38, r.NetAfterFee, 0.001)
		assert.InDelta(t, 12244.38, r.CustomerShare, 0.001)
		assert.Zero(t, r.OperatorShare)
		assert.InDelta(t, 7244.38, r.CustomerFinalRevenue, 0.001)
		assert.InDelta(t, r.GrossRevenue/12, r.MonthlyGrossRevenue, 0.005)
		assert.InDelta(t, r.CustomerFinalRevenue/12, r.MonthlyCustomerFinalRevenue, 0.005)
	})

	t.Run("split shares reconcile to the cent", func(t *testing.T) {
		split := rs
		split.CustomerSharePercent = 60
		r := ComputeRevenue(48213.7, 6100.55, split)
		assert.InDelta(t, r.NetAfterFee, r.CustomerShare+r.OperatorShare, 0.011)
		assert.InDelta(t, r.GrossRevenue-r.NetworkFee, r.NetAfterFee, 0.001)
	})

	t.Run("paid percent scales billable energy", func(t *testing.T) {
		partial := rs
		partial.PaidPercent = 50
		r := ComputeRevenue(10000, 0, partial)
		assert.InDelta(t, 5000, r.BillableKwh, 0.001)
		assert.InDelta(t, 2000, r.GrossRevenue, 0.001)
	})

	t.Run("high energy cost goes negative", func(t *testing.T) {
		r := ComputeRevenue(1000, 10000, rs)
		assert.Negative(t, r.CustomerFinalRevenue)
	})

	t.Run("every figure is cent-rounded", func(t *testing.T) {
		r := ComputeRevenue(33333.33, 1234.567, rs)
		for _, v := range []float64{
			r.GrossRevenue, r.NetworkFee, r.NetAfterFee,
			r.CustomerShare, r.OperatorShare, r.CustomerFinalRevenue,
			r.MonthlyGrossRevenue, r.MonthlyCustomerFinalRevenue,
		} {
			assert.InDelta(t, v, roundCents(v), 1e-9)
		}
	})
}

func TestResolveSiteHostSettings(t *testing.T) {
	t.Run("nil gets defaults", func(t *testing.T) {
		sh := ResolveSiteHostSettings(nil)
		assert.InDelta(t, 200, sh.LeasePerSpaceMonthly, 0.001)
		assert.Zero(t, sh.AdditionalSpaces)
		assert.InDelta(t, 10, sh.RevenueSharePercent, 0.001)
	})
	t.Run("present record untouched", func(t *testing.T) {
		sh := ResolveSiteHostSettings(&types.SiteHostSettings{LeasePerSpaceMonthly: 350, AdditionalSpaces: 4})
		assert.InDelta(t, 350, sh.LeasePerSpaceMonthly, 0.001)
		assert.Equal(t, 4, sh.AdditionalSpaces)
	})
}

func TestResolveGrowth(t *testing.T) {
	t.Run("nil gets constant default", func(t *testing.T) {
		g := ResolveGrowth(nil)
		assert.Equal(t, types.GrowthModeConstant, g.Mode)
		assert.InDelta(t, 10, g.ConstantPercent, 0.001)
	})
	t.Run("manual preserved", func(t *testing.T) {
		g := ResolveGrowth(&types.UtilizationGrowth{Mode: types.GrowthModeManual})
		assert.Equal(t, types.GrowthModeManual, g.Mode)
	})
}
