// Package engine computes charging-site cost, savings, and settlement
// figures under the EV Phase-In Rate. Every function is pure: no I/O, no
// shared state, identical inputs always produce identical output, so
// concurrent use needs no coordination.
package engine

import (
	"math"

	"github.com/chargeplan/chargeplan/pkg/types"
)

// NameplateKw sums the rated capacity of all installed equipment. An
// entry with individual circuits and more than one plug counts its rated
// power once per plug.
func NameplateKw(entries []types.EquipmentEntry) float64 {
	var total float64
	for _, e := range entries {
		kw := e.PowerKw * float64(e.Quantity)
		if e.IndividualCircuits && e.PlugsPerUnit > 1 {
			kw *= float64(e.PlugsPerUnit)
		}
		total += kw
	}
	return total
}

// TotalPorts counts the plugs across all installed equipment.
func TotalPorts(entries []types.EquipmentEntry) int {
	var total int
	for _, e := range entries {
		plugs := e.PlugsPerUnit
		if plugs == 0 {
			plugs = 1
		}
		total += plugs * e.Quantity
	}
	return total
}

// TotalUnits counts the installed EVSE units.
func TotalUnits(entries []types.EquipmentEntry) int {
	var total int
	for _, e := range entries {
		total += e.Quantity
	}
	return total
}

// EffectiveKw is the capacity that bounds demand and load factor: the
// load management limit when it is set, positive, and below nameplate,
// otherwise nameplate.
func EffectiveKw(nameplateKw, loadManagementKw float64) float64 {
	if loadManagementKw > 0 && loadManagementKw < nameplateKw {
		return loadManagementKw
	}
	return nameplateKw
}

// AvgKwPerPort converts hour-based usage into energy: nameplate divided
// by port count, 0 when there are no ports.
func AvgKwPerPort(entries []types.EquipmentEntry) float64 {
	ports := TotalPorts(entries)
	if ports == 0 {
		return 0
	}
	return NameplateKw(entries) / float64(ports)
}

// PeakDemandKw is the billed demand: peak ports times per-port capacity,
// never exceeding the site's effective capacity.
func PeakDemandKw(entries []types.EquipmentEntry, peakPorts, loadManagementKw float64) float64 {
	effectiveKw := EffectiveKw(NameplateKw(entries), loadManagementKw)
	return math.Min(peakPorts*AvgKwPerPort(entries), effectiveKw)
}
