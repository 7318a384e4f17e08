// Package catalog holds the static reference data for installable EVSE
// equipment and utility service classes. Everything here is read-only,
// looked up by id.
package catalog

import (
	"errors"
	"fmt"

	"github.com/chargeplan/chargeplan/pkg/types"
)

// ErrUnknownCharger is returned when a charger id is not in the catalog.
var ErrUnknownCharger = errors.New("unknown charger")

// Charger is one installable EVSE model.
type Charger struct {
	ID           string             `json:"id"`
	Name         string             `json:"name"`
	Manufacturer string             `json:"manufacturer"`
	Level        types.ChargerLevel `json:"level"`
	PlugsPerUnit int                `json:"plugsPerUnit"`
	// Amperage is the output amperage for L2 units, 0 for DCFC.
	Amperage int `json:"amperage,omitempty"`
	// KwByVoltage maps the site voltage to the unit's rated output. L2
	// units list 208 and 240, DCFC units list 480 only.
	KwByVoltage map[int]float64 `json:"kwByVoltage"`
}

var chargers = []Charger{
	{
		ID:           "l2-48a-dp-pedestal",
		Name:         "MaxiCharger ACUltra 48A Dual Port Pedestal",
		Manufacturer: "Autel",
		Level:        types.ChargerLevelL2,
		PlugsPerUnit: 2,
		Amperage:     48,
		KwByVoltage:  map[int]float64{208: 9.98, 240: 11.52},
	},
	{
		ID:           "l2-48a-sp-pedestal",
		Name:         "MaxiCharger ACUltra 48A Single Port Pedestal",
		Manufacturer: "Autel",
		Level:        types.ChargerLevelL2,
		PlugsPerUnit: 1,
		Amperage:     48,
		KwByVoltage:  map[int]float64{208: 9.98, 240: 11.52},
	},
	{
		ID:           "l2-48a-sp-wall",
		Name:         "MaxiCharger ACUltra 48A Single Port Wall Mount",
		Manufacturer: "Autel",
		Level:        types.ChargerLevelL2,
		PlugsPerUnit: 1,
		Amperage:     48,
		KwByVoltage:  map[int]float64{208: 9.98, 240: 11.52},
	},
	{
		ID:           "l2-40a-dp-pedestal",
		Name:         "MaxiCharger ACUltra 40A Dual Port Pedestal",
		Manufacturer: "Autel",
		Level:        types.ChargerLevelL2,
		PlugsPerUnit: 2,
		Amperage:     40,
		KwByVoltage:  map[int]float64{208: 8.32, 240: 9.6},
	},
	{
		ID:           "l2-40a-sp-pedestal",
		Name:         "MaxiCharger ACUltra 40A Single Port Pedestal",
		Manufacturer: "Autel",
		Level:        types.ChargerLevelL2,
		PlugsPerUnit: 1,
		Amperage:     40,
		KwByVoltage:  map[int]float64{208: 8.32, 240: 9.6},
	},
	{
		ID:           "l2-40a-sp-wall",
		Name:         "MaxiCharger ACUltra 40A Single Port Wall Mount",
		Manufacturer: "Autel",
		Level:        types.ChargerLevelL2,
		PlugsPerUnit: 1,
		Amperage:     40,
		KwByVoltage:  map[int]float64{208: 8.32, 240: 9.6},
	},
	{
		ID:           "l2-80a-dp-pedestal",
		Name:         "MaxiCharger ACUltra 80A Dual Port Pedestal",
		Manufacturer: "Autel",
		Level:        types.ChargerLevelL2,
		PlugsPerUnit: 2,
		Amperage:     80,
		KwByVoltage:  map[int]float64{208: 16.64, 240: 19.2},
	},
	{
		ID:           "l2-80a-sp-pedestal",
		Name:         "MaxiCharger ACUltra 80A Single Port Pedestal",
		Manufacturer: "Autel",
		Level:        types.ChargerLevelL2,
		PlugsPerUnit: 1,
		Amperage:     80,
		KwByVoltage:  map[int]float64{208: 16.64, 240: 19.2},
	},
	{
		ID:           "l2-80a-sp-wall",
		Name:         "MaxiCharger ACUltra 80A Single Port Wall Mount",
		Manufacturer: "Autel",
		Level:        types.ChargerLevelL2,
		PlugsPerUnit: 1,
		Amperage:     80,
		KwByVoltage:  map[int]float64{208: 16.64, 240: 19.2},
	},
	{
		ID:           "l2-32a-dp-pedestal",
		Name:         "MaxiCharger ACUltra 32A Dual Port Pedestal",
		Manufacturer: "Autel",
		Level:        types.ChargerLevelL2,
		PlugsPerUnit: 2,
		Amperage:     32,
		KwByVoltage:  map[int]float64{208: 6.66, 240: 7.68},
	},
	{
		ID:           "l2-32a-sp-pedestal",
		Name:         "MaxiCharger ACUltra 32A Single Port Pedestal",
		Manufacturer: "Autel",
		Level:        types.ChargerLevelL2,
		PlugsPerUnit: 1,
		Amperage:     32,
		KwByVoltage:  map[int]float64{208: 6.66, 240: 7.68},
	},
	{
		ID:           "l2-32a-sp-wall",
		Name:         "MaxiCharger ACUltra 32A Single Port Wall Mount",
		Manufacturer: "Autel",
		Level:        types.ChargerLevelL2,
		PlugsPerUnit: 1,
		Amperage:     32,
		KwByVoltage:  map[int]float64{208: 6.66, 240: 7.68},
	},
	{
		ID:           "dcfc-60kw-ccs-ccs",
		Name:         "MaxiCharger 60kW DC Fast CCS/CCS",
		Manufacturer: "Autel",
		Level:        types.ChargerLevelDCFC,
		PlugsPerUnit: 2,
		KwByVoltage:  map[int]float64{480: 60},
	},
	{
		ID:           "dcfc-120kw-ccs-ccs",
		Name:         "MaxiCharger 120kW DC Fast CCS/CCS",
		Manufacturer: "Autel",
		Level:        types.ChargerLevelDCFC,
		PlugsPerUnit: 2,
		KwByVoltage:  map[int]float64{480: 120},
	},
	{
		ID:           "dcfc-180kw-ccs-ccs",
		Name:         "MaxiCharger 180kW DC Fast CCS/CCS",
		Manufacturer: "Autel",
		Level:        types.ChargerLevelDCFC,
		PlugsPerUnit: 2,
		KwByVoltage:  map[int]float64{480: 180},
	},
	{
		ID:           "dcfc-240kw-ccs-ccs",
		Name:         "MaxiCharger 240kW DC Fast CCS/CCS",
		Manufacturer: "Autel",
		Level:        types.ChargerLevelDCFC,
		PlugsPerUnit: 2,
		KwByVoltage:  map[int]float64{480: 240},
	},
	{
		ID:           "dcfc-60kw-ccs-nacs",
		Name:         "MaxiCharger 60kW DC Fast CCS/NACS",
		Manufacturer: "Autel",
		Level:        types.ChargerLevelDCFC,
		PlugsPerUnit: 2,
		KwByVoltage:  map[int]float64{480: 60},
	},
	{
		ID:           "dcfc-120kw-ccs-nacs",
		Name:         "MaxiCharger 120kW DC Fast CCS/NACS",
		Manufacturer: "Autel",
		Level:        types.ChargerLevelDCFC,
		PlugsPerUnit: 2,
		KwByVoltage:  map[int]float64{480: 120},
	},
	{
		ID:           "dcfc-180kw-ccs-nacs",
		Name:         "MaxiCharger 180kW DC Fast CCS/NACS",
		Manufacturer: "Autel",
		Level:        types.ChargerLevelDCFC,
		PlugsPerUnit: 2,
		KwByVoltage:  map[int]float64{480: 180},
	},
	{
		ID:           "dcfc-240kw-ccs-nacs",
		Name:         "MaxiCharger 240kW DC Fast CCS/NACS",
		Manufacturer: "Autel",
		Level:        types.ChargerLevelDCFC,
		PlugsPerUnit: 2,
		KwByVoltage:  map[int]float64{480: 240},
	},
	{
		// bundle of two 320kW cabinets
		ID:           "dcfc-320kw-ccs-nacs",
		Name:         "DCHP 320kW CCS/NACS Bundle",
		Manufacturer: "Autel",
		Level:        types.ChargerLevelDCFC,
		PlugsPerUnit: 4,
		KwByVoltage:  map[int]float64{480: 640},
	},
}

// Chargers returns every charger in the catalog.
func Chargers() []Charger {
	out := make([]Charger, len(chargers))
	copy(out, chargers)
	return out
}

// ChargerByID looks up a charger by its catalog id.
func ChargerByID(id string) (Charger, error) {
	for _, c := range chargers {
		if c.ID == id {
			return c, nil
		}
	}
	return Charger{}, fmt.Errorf("%w: %s", ErrUnknownCharger, id)
}

// ChargersForLevel returns the chargers available at a level.
func ChargersForLevel(level types.ChargerLevel) []Charger {
	var out []Charger
	for _, c := range chargers {
		if c.Level == level {
			out = append(out, c)
		}
	}
	return out
}

// KwForVoltage returns the charger's rated output at the given site
// voltage, or 0 if the charger doesn't support it.
func KwForVoltage(c Charger, voltage int) float64 {
	return c.KwByVoltage[voltage]
}

// AvailableVoltages returns the site voltages supported at a level. The
// first entry is the default.
func AvailableVoltages(level types.ChargerLevel) []int {
	if level == types.ChargerLevelDCFC {
		return []int{480}
	}
	return []int{240, 208}
}

// DefaultVoltage returns the default site voltage for a level.
func DefaultVoltage(level types.ChargerLevel) int {
	return AvailableVoltages(level)[0]
}
