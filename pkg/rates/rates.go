// Package rates holds the utility rate schedules and resolves the
// demand/energy rates for a (utility, service class, tier) triple. The
// schedules are read-only reference data; a missing utility or service
// class is an error, never defaulted.
package rates

import (
	"errors"
	"fmt"

	"github.com/chargeplan/chargeplan/pkg/types"
)

var (
	ErrUnknownUtility      = errors.New("unknown utility")
	ErrUnknownServiceClass = errors.New("unknown service class")
)

// TierRates are the rates for one discount tier of one service class.
// SuperPeakPerKwh only applies during the summer season.
type TierRates struct {
	DemandPerKw     float64 `json:"demandPerKw"`
	OnPeakPerKwh    float64 `json:"onPeakPerKwh"`
	OffPeakPerKwh   float64 `json:"offPeakPerKwh"`
	SuperPeakPerKwh float64 `json:"superPeakPerKwh"`
}

// ClassRates is the schedule for one service class: the standard
// (untiered) demand rate and the four discount tiers.
type ClassRates struct {
	StandardDemandPerKw float64      `json:"standardDemandPerKw"`
	Tiers               [4]TierRates `json:"tiers"`
}

// Table is one utility's full rate schedule.
type Table struct {
	Utility       string                `json:"utility"`
	DisplayName   string                `json:"displayName"`
	EffectiveDate string                `json:"effectiveDate"`
	Classes       map[string]ClassRates `json:"classes"`
}

var tables = map[string]Table{
	nationalGrid.Utility: nationalGrid,
}

// Utilities returns the utilities with a rate schedule.
func Utilities() []Table {
	out := make([]Table, 0, len(tables))
	for _, t := range tables {
		out = append(out, t)
	}
	return out
}

// Lookup resolves the rate schedule for a (utility, service class) pair.
func Lookup(utility, serviceClass string) (ClassRates, error) {
	t, ok := tables[utility]
	if !ok {
		return ClassRates{}, fmt.Errorf("%w: %s", ErrUnknownUtility, utility)
	}
	cr, ok := t.Classes[serviceClass]
	if !ok {
		return ClassRates{}, fmt.Errorf("%w: %s (utility %s)", ErrUnknownServiceClass, serviceClass, utility)
	}
	return cr, nil
}

// Resolve returns the rates for a tier. Tier 0 is the standard rate: the
// standard demand rate with no energy charges.
func Resolve(cr ClassRates, tier int) types.ResolvedRates {
	r := types.ResolvedRates{
		StandardDemandPerKw: cr.StandardDemandPerKw,
	}
	if tier < 1 || tier > 4 {
		r.DemandPerKw = cr.StandardDemandPerKw
		return r
	}
	tr := cr.Tiers[tier-1]
	r.DemandPerKw = tr.DemandPerKw
	r.OnPeakPerKwh = tr.OnPeakPerKwh
	r.OffPeakPerKwh = tr.OffPeakPerKwh
	r.SuperPeakPerKwh = tr.SuperPeakPerKwh
	return r
}
