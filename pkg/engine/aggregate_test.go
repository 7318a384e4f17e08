package engine

import (
	"testing"

	"github.com/chargeplan/chargeplan/pkg/types"
	"github.com/stretchr/testify/assert"
)

func TestAggregate(t *testing.T) {
	dualPort := types.EquipmentEntry{
		ID:           "e1",
		ChargerID:    "l2-48a-dp-pedestal",
		Level:        types.ChargerLevelL2,
		PowerKw:      11.52,
		PlugsPerUnit: 2,
		Quantity:     1,
	}

	t.Run("shared circuit", func(t *testing.T) {
		entries := []types.EquipmentEntry{dualPort}
		assert.InDelta(t, 11.52, NameplateKw(entries), 0.001)
		assert.Equal(t, 2, TotalPorts(entries))
		assert.Equal(t, 1, TotalUnits(entries))
		assert.InDelta(t, 5.76, AvgKwPerPort(entries), 0.001)
	})

	t.Run("individual circuits multiply by plugs", func(t *testing.T) {
		e := dualPort
		e.IndividualCircuits = true
		entries := []types.EquipmentEntry{e}
		assert.InDelta(t, 23.04, NameplateKw(entries), 0.001)
		assert.Equal(t, 2, TotalPorts(entries))
		assert.InDelta(t, 11.52, AvgKwPerPort(entries), 0.001)
	})

	t.Run("quantity scales everything", func(t *testing.T) {
		e := dualPort
		e.Quantity = 3
		entries := []types.EquipmentEntry{e}
		assert.InDelta(t, 34.56, NameplateKw(entries), 0.001)
		assert.Equal(t, 6, TotalPorts(entries))
		assert.Equal(t, 3, TotalUnits(entries))
	})

	t.Run("zero plugs counts as one port", func(t *testing.T) {
		entries := []types.EquipmentEntry{{PowerKw: 50, PlugsPerUnit: 0, Quantity: 2}}
		assert.Equal(t, 2, TotalPorts(entries))
	})

	t.Run("no equipment", func(t *testing.T) {
		assert.Zero(t, NameplateKw(nil))
		assert.Zero(t, TotalPorts(nil))
		assert.Zero(t, AvgKwPerPort(nil))
	})
}

func TestEffectiveKw(t *testing.T) {
	t.Run("limit below nameplate applies", func(t *testing.T) {
		assert.InDelta(t, 15, EffectiveKw(23.04, 15), 0.001)
	})
	t.Run("limit above nameplate ignored", func(t *testing.T) {
		assert.InDelta(t, 23.04, EffectiveKw(23.04, 100), 0.001)
	})
	t.Run("zero limit ignored", func(t *testing.T) {
		assert.InDelta(t, 23.04, EffectiveKw(23.04, 0), 0.001)
	})
	t.Run("negative limit ignored", func(t *testing.T) {
		assert.InDelta(t, 23.04, EffectiveKw(23.04, -5), 0.001)
	})
}

func TestPeakDemandKw(t *testing.T) {
	entries := []types.EquipmentEntry{{
		PowerKw:            11.52,
		PlugsPerUnit:       2,
		Quantity:           2,
		IndividualCircuits: true,
	}}
	// nameplate 46.08, 4 ports @ 11.52/port

	t.Run("peak ports below capacity", func(t *testing.T) {
		assert.InDelta(t, 23.04, PeakDemandKw(entries, 2, 0), 0.001)
	})
	t.Run("capped at effective capacity", func(t *testing.T) {
		assert.InDelta(t, 46.08, PeakDemandKw(entries, 10, 0), 0.001)
	})
	t.Run("capped at load management limit", func(t *testing.T) {
		assert.InDelta(t, 20, PeakDemandKw(entries, 4, 20), 0.001)
	})
}
