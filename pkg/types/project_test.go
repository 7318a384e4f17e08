package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrateProject(t *testing.T) {
	t.Run("v1: usage and supply defaults", func(t *testing.T) {
		p, changed, err := MigrateProject(Project{}, 0)
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, 2.0, p.Usage.PortsInUse)
		assert.Equal(t, 4.0, p.Usage.HoursPerPort)
		assert.Equal(t, 4.0, p.Usage.PeakPorts)
		assert.Equal(t, 30.0, p.Usage.DaysInMonth)
		require.NotNil(t, p.SupplyRatePerKwh)
		assert.Equal(t, 0.10, *p.SupplyRatePerKwh)
	})

	t.Run("v1: explicit zero supply rate preserved", func(t *testing.T) {
		zero := 0.0
		p, _, err := MigrateProject(Project{SupplyRatePerKwh: &zero}, 0)
		require.NoError(t, err)
		require.NotNil(t, p.SupplyRatePerKwh)
		assert.Zero(t, *p.SupplyRatePerKwh)
	})

	t.Run("v2: retired service class identifiers", func(t *testing.T) {
		for old, want := range map[string]string{
			"SC-1":     "SC-2D",
			"SC-2":     "SC-2D",
			"SC-2-MRP": "SC-2D",
			"SC-3":     "SC-3 Secondary",
		} {
			p, changed, err := MigrateProject(Project{ServiceClass: old}, 1)
			require.NoError(t, err)
			assert.True(t, changed, old)
			assert.Equal(t, want, p.ServiceClass, old)
		}
	})

	t.Run("v2: current identifiers untouched", func(t *testing.T) {
		p, _, err := MigrateProject(Project{ServiceClass: "SC-3 Primary"}, 1)
		require.NoError(t, err)
		assert.Equal(t, "SC-3 Primary", p.ServiceClass)
	})

	t.Run("v3: ownership default and booking profit rename", func(t *testing.T) {
		old := Project{
			ServiceClass: "SC-2D",
			Revenue:      &RevenueSettings{BookingProfit: 85},
		}
		p, changed, err := MigrateProject(old, 2)
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, OwnershipCustomer, p.OwnershipType)
		assert.Equal(t, 85.0, p.Revenue.BookingProfitPerBooking)
		assert.Zero(t, p.Revenue.BookingProfit)
	})

	t.Run("v3: explicit new field wins over legacy", func(t *testing.T) {
		old := Project{
			OwnershipType: OwnershipSiteHost,
			Revenue: &RevenueSettings{
				BookingProfit:           85,
				BookingProfitPerBooking: 120,
			},
		}
		p, changed, err := MigrateProject(old, 2)
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, OwnershipSiteHost, p.OwnershipType)
		assert.Equal(t, 120.0, p.Revenue.BookingProfitPerBooking)
	})

	t.Run("no change: current version", func(t *testing.T) {
		current := Project{
			ServiceClass:  "SC-2D",
			OwnershipType: OwnershipCustomer,
		}
		p, changed, err := MigrateProject(current, CurrentProjectVersion)
		require.NoError(t, err)
		assert.False(t, changed)
		assert.Equal(t, current, p)
	})

	t.Run("unknown future version passes through", func(t *testing.T) {
		_, changed, err := MigrateProject(Project{}, CurrentProjectVersion+1)
		require.NoError(t, err)
		assert.False(t, changed)
	})
}

func TestTOUHoursTotals(t *testing.T) {
	tou := TOUHours{
		SummerSuperPeak: 2.5,
		SummerOnPeak:    4,
		SummerOffPeak:   1.5,
		WinterOnPeak:    6.5,
		WinterOffPeak:   1.5,
	}
	assert.InDelta(t, 8.0, tou.SummerTotal(), 0.0001)
	assert.InDelta(t, 8.0, tou.WinterTotal(), 0.0001)
}

func TestUserMayAccessProject(t *testing.T) {
	u := User{ID: "u1", ProjectIDs: []string{"p1", "p2"}}
	assert.True(t, u.MayAccessProject("p1"))
	assert.False(t, u.MayAccessProject("p3"))
	assert.True(t, User{Admin: true}.MayAccessProject("p3"))
}
