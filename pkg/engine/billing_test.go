package engine

import (
	"testing"

	"github.com/chargeplan/chargeplan/pkg/types"
	"github.com/stretchr/testify/assert"
)

var testRates = types.ResolvedRates{
	StandardDemandPerKw: 16.99,
	DemandPerKw:         8.50,
	OnPeakPerKwh:        0.10,
	OffPeakPerKwh:       0.05,
	SuperPeakPerKwh:     0.20,
}

func TestSummerMonthly(t *testing.T) {
	tou := AllocateTOU(2, 4) // 2.5 / 4 / 1.5
	const monthlyKwh = 2764.8
	const peakKw = 23.04

	m := SummerMonthly(monthlyKwh, tou, peakKw, testRates, 0.10)

	t.Run("energy split follows hours", func(t *testing.T) {
		assert.NotNil(t, m.SuperPeak)
		assert.InDelta(t, 864, m.SuperPeak.Kwh, 0.01)
		assert.InDelta(t, 1382.4, m.OnPeak.Kwh, 0.01)
		assert.InDelta(t, 518.4, m.OffPeak.Kwh, 0.01)
		assert.InDelta(t, monthlyKwh, m.SuperPeak.Kwh+m.OnPeak.Kwh+m.OffPeak.Kwh, 0.01)
	})

	t.Run("costs", func(t *testing.T) {
		assert.InDelta(t, 195.84, m.DemandCharge, 0.01)
		assert.InDelta(t, 172.8, m.SuperPeak.Cost, 0.01)
		assert.InDelta(t, 138.24, m.OnPeak.Cost, 0.01)
		assert.InDelta(t, 25.92, m.OffPeak.Cost, 0.01)
		delivery := m.DemandCharge + m.SuperPeak.Cost + m.OnPeak.Cost + m.OffPeak.Cost
		assert.InDelta(t, delivery, m.DeliveryCost, 0.001)
		assert.InDelta(t, monthlyKwh*0.10, m.SupplyCost, 0.01)
		assert.InDelta(t, m.DeliveryCost+m.SupplyCost, m.TotalCost, 0.001)
	})

	t.Run("savings compare delivery only", func(t *testing.T) {
		assert.InDelta(t, peakKw*testRates.StandardDemandPerKw, m.StandardCost, 0.01)
		assert.InDelta(t, m.StandardCost-m.DeliveryCost, m.Savings, 0.001)
	})

	t.Run("zero hours yields zero energy", func(t *testing.T) {
		m := SummerMonthly(100, types.TOUHours{}, peakKw, testRates, 0.10)
		assert.Zero(t, m.SuperPeak.Kwh)
		assert.Zero(t, m.OnPeak.Kwh)
		assert.Zero(t, m.OffPeak.Kwh)
	})
}

func TestWinterMonthly(t *testing.T) {
	tou := AllocateTOU(2, 4) // 6.5 / 1.5
	const monthlyKwh = 2764.8
	const peakKw = 23.04

	m := WinterMonthly(monthlyKwh, tou, peakKw, testRates, 0.10)

	assert.Equal(t, types.SeasonWinter, m.Season)
	assert.Nil(t, m.SuperPeak)
	assert.InDelta(t, monthlyKwh*6.5/8, m.OnPeak.Kwh, 0.01)
	assert.InDelta(t, monthlyKwh*1.5/8, m.OffPeak.Kwh, 0.01)
	assert.InDelta(t, m.DemandCharge+m.OnPeak.Cost+m.OffPeak.Cost, m.DeliveryCost, 0.001)
	assert.InDelta(t, m.DeliveryCost+m.SupplyCost, m.TotalCost, 0.001)
}

func TestSeasonTotal(t *testing.T) {
	tou := AllocateTOU(2, 4)
	m := WinterMonthly(2764.8, tou, 23.04, testRates, 0.10)
	s := SeasonTotal(m, WinterMonths)

	assert.Equal(t, 8, s.Months)
	assert.InDelta(t, m.Kwh*8, s.Kwh, 0.01)
	assert.InDelta(t, m.DeliveryCost*8, s.DeliveryCost, 0.01)
	assert.InDelta(t, m.TotalCost*8, s.TotalCost, 0.01)
	assert.InDelta(t, m.Savings*8, s.Savings, 0.01)
}

func TestAnnualTotal(t *testing.T) {
	tou := AllocateTOU(2, 4)
	summer := SeasonTotal(SummerMonthly(2764.8, tou, 23.04, testRates, 0.10), SummerMonths)
	winter := SeasonTotal(WinterMonthly(2764.8, tou, 23.04, testRates, 0.10), WinterMonths)

	a := AnnualTotal(summer, winter)
	assert.InDelta(t, summer.Kwh+winter.Kwh, a.Kwh, 0.01)
	assert.InDelta(t, summer.TotalCost+winter.TotalCost, a.TotalCost, 0.01)
	assert.InDelta(t, a.StandardCost-a.DeliveryCost, a.Savings, 0.001)
	if a.StandardCost > 0 {
		assert.InDelta(t, a.Savings/a.StandardCost*100, a.SavingsPercent, 0.001)
	}
}

func TestSavingsPercent(t *testing.T) {
	assert.InDelta(t, 25, savingsPercent(25, 100), 0.001)
	assert.Zero(t, savingsPercent(25, 0))
	assert.Zero(t, savingsPercent(25, -10))
}
