package types

import (
	"fmt"
)

// CurrentProjectVersion is the current version of the project document.
// Increment this value when adding new fields that require default values
// or renaming identifiers stored in older documents.
const CurrentProjectVersion = 3

// ChargerLevel is the charging level of a piece of equipment.
type ChargerLevel string

const (
	ChargerLevelL2   ChargerLevel = "L2"
	ChargerLevelDCFC ChargerLevel = "DCFC"
)

// OwnershipType determines which settlement model applies to a project.
type OwnershipType string

const (
	// OwnershipCustomer means the customer owns the equipment and keeps the
	// charging revenue (minus fees and the operator share).
	OwnershipCustomer OwnershipType = "customer"
	// OwnershipSiteHost means the operator owns the equipment and pays the
	// customer the greater of a fixed lease or a revenue share.
	OwnershipSiteHost OwnershipType = "site-host"
)

// MeteringType determines which capacity bounds the load factor.
type MeteringType string

const (
	// MeteringSeparate means the chargers are on their own meter.
	MeteringSeparate MeteringType = "separate"
	// MeteringCombined means the chargers share a meter with the building.
	MeteringCombined MeteringType = "combined"
)

// EquipmentEntry is one installed charger line item. Entries are replaced
// wholesale on edit, never mutated in place.
type EquipmentEntry struct {
	ID        string       `json:"id"`
	ChargerID string       `json:"chargerID,omitempty"`
	Level     ChargerLevel `json:"level"`
	// PowerKw is the rated power of one unit at the selected voltage.
	PowerKw      float64 `json:"powerKw"`
	PlugsPerUnit int     `json:"plugsPerUnit"`
	Quantity     int     `json:"quantity"`
	// IndividualCircuits means each plug has its own circuit, so nameplate
	// capacity multiplies by the plug count.
	IndividualCircuits bool `json:"individualCircuits"`
	Voltage            int  `json:"voltage,omitempty"`
}

// TOUHours holds the per-port daily charging hours split across the
// time-of-use windows for each season. Values are quarter-hour granularity.
type TOUHours struct {
	SummerSuperPeak float64 `json:"summerSuperPeak"`
	SummerOnPeak    float64 `json:"summerOnPeak"`
	SummerOffPeak   float64 `json:"summerOffPeak"`
	WinterOnPeak    float64 `json:"winterOnPeak"`
	WinterOffPeak   float64 `json:"winterOffPeak"`
}

// SummerTotal returns the total daily summer hours across all windows.
func (t TOUHours) SummerTotal() float64 {
	return t.SummerSuperPeak + t.SummerOnPeak + t.SummerOffPeak
}

// WinterTotal returns the total daily winter hours across all windows.
func (t TOUHours) WinterTotal() float64 {
	return t.WinterOnPeak + t.WinterOffPeak
}

// UsageInputs describes expected charging behavior for a project.
type UsageInputs struct {
	// PortsInUse is the daily average number of ports in simultaneous use.
	PortsInUse float64 `json:"portsInUse"`
	// HoursPerPort is the average hours each port is used per day.
	HoursPerPort float64 `json:"hoursPerPort"`
	// PeakPorts is the peak number of ports in simultaneous use, used for
	// the billed demand.
	PeakPorts   float64 `json:"peakPorts"`
	DaysInMonth float64 `json:"daysInMonth"`
	// TOU is the per-season window split. It is re-derived whenever
	// PortsInUse or HoursPerPort change and accepted verbatim otherwise.
	TOU TOUHours `json:"tou"`
}

// RevenueSettings configures driver billing and the revenue split.
type RevenueSettings struct {
	// DriverRatePerKwh is what drivers pay per kWh. 0 means use the level
	// default (see DefaultDriverRatePerKwh).
	DriverRatePerKwh float64 `json:"driverRatePerKwh"`
	// PaidPercent is the percentage of usage that is paid charging.
	PaidPercent float64 `json:"paidPercent"`
	// NetworkFeePercent is the processing fee taken off gross revenue.
	NetworkFeePercent float64 `json:"networkFeePercent"`
	// CustomerSharePercent is the customer's share of net revenue.
	CustomerSharePercent float64 `json:"customerSharePercent"`

	// Industry drives ancillary profit streams in the multi-year
	// projection (Hotel and Hospitality add booking profit).
	Industry Industry `json:"industry"`
	// MonthlyBookings is the year-1 bookings attributed to charging.
	MonthlyBookings float64 `json:"monthlyBookings"`
	// BookingProfitPerBooking is the year-1 profit per booking.
	BookingProfitPerBooking float64 `json:"bookingProfitPerBooking"`
	// BookingProfit is the pre-rename field for BookingProfitPerBooking,
	// still present in older documents.
	BookingProfit float64 `json:"bookingProfit,omitempty"`

	// BookingGrowthMode selects constant or manual booking growth.
	BookingGrowthMode GrowthMode `json:"bookingGrowthMode,omitempty"`
	// BookingGrowthPerYear is added to the monthly bookings each year
	// when the mode is constant.
	BookingGrowthPerYear float64 `json:"bookingGrowthPerYear"`
	// BookingGrowthYearly are the nine per-year booking additions when
	// the mode is manual.
	BookingGrowthYearly [9]float64 `json:"bookingGrowthYearly,omitempty"`

	// ProfitGrowthMode selects constant or manual profit growth.
	ProfitGrowthMode GrowthMode `json:"profitGrowthMode,omitempty"`
	// ProfitGrowthPercent grows the per-booking profit each year when
	// the mode is constant.
	ProfitGrowthPercent float64 `json:"profitGrowthPercent"`
	// ProfitGrowthYearly are the nine per-year profit growth percents
	// when the mode is manual.
	ProfitGrowthYearly [9]float64 `json:"profitGrowthYearly,omitempty"`
}

// Industry categorizes the customer's business for projection purposes.
type Industry string

const (
	IndustryHotel       Industry = "Hotel"
	IndustryHospitality Industry = "Hospitality"
	IndustryOther       Industry = "Other"
)

// SiteHostSettings configures the site-host ownership settlement.
type SiteHostSettings struct {
	// LeasePerSpaceMonthly is the monthly lease paid per parking space.
	LeasePerSpaceMonthly float64 `json:"leasePerSpaceMonthly"`
	// AdditionalSpaces counts non-port spaces taken by equipment
	// (transformers, switchgear) that are also leased.
	AdditionalSpaces int `json:"additionalSpaces"`
	// RevenueSharePercent is the customer's share of net charging
	// revenue (gross minus processing fees), compared against the base
	// rent.
	RevenueSharePercent float64 `json:"revenueSharePercent"`
}

// GrowthMode selects how year-over-year utilization growth is specified.
type GrowthMode string

const (
	GrowthModeConstant GrowthMode = "constant"
	GrowthModeManual   GrowthMode = "manual"
)

// UtilizationGrowth configures the 10-year utilization projection.
type UtilizationGrowth struct {
	Mode GrowthMode `json:"mode"`
	// ConstantPercent is the year-over-year growth when Mode is constant.
	ConstantPercent float64 `json:"constantPercent"`
	// ManualPercents are the nine year-over-year growth rates for years
	// 2 through 10 when Mode is manual.
	ManualPercents [9]float64 `json:"manualPercents"`
}

// Project is a saved charging-site estimate: equipment, usage, and
// settlement settings. It is the engine's sole input.
type Project struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Utility      string `json:"utility"`
	ServiceClass string `json:"serviceClass"`

	Equipment []EquipmentEntry `json:"equipment"`
	// LoadManagementKw caps site demand below nameplate when positive.
	LoadManagementKw float64 `json:"loadManagementKw,omitempty"`

	MeteringType MeteringType `json:"meteringType,omitempty"`
	// MaxDemandKw is the building's historical max demand, used instead of
	// nameplate for the load factor when metering is combined.
	MaxDemandKw float64 `json:"maxDemandKw,omitempty"`

	// SupplyRatePerKwh is the commodity rate added on top of delivery.
	// nil means use DefaultSupplyRatePerKwh; an explicit 0 means no
	// supply charge (third-party supply billed elsewhere).
	SupplyRatePerKwh *float64 `json:"supplyRatePerKwh,omitempty"`

	Usage UsageInputs `json:"usage"`

	OwnershipType OwnershipType      `json:"ownershipType"`
	Revenue       *RevenueSettings   `json:"revenue,omitempty"`
	SiteHost      *SiteHostSettings  `json:"siteHost,omitempty"`
	Growth        *UtilizationGrowth `json:"growth,omitempty"`
}

// Defaults applied by migration and by the settlement resolve step.
const (
	DefaultSupplyRatePerKwh = 0.10
	DefaultDaysInMonth      = 30
	DefaultPortsInUse       = 2
	DefaultHoursPerPort     = 4
	DefaultPeakPorts        = 4

	DefaultPaidPercent          = 100
	DefaultNetworkFeePercent    = 9
	DefaultCustomerSharePercent = 100
	DefaultMonthlyBookings      = 20
	DefaultBookingProfit        = 100
	DefaultBookingGrowthPerYear = 1
	DefaultProfitGrowthPercent  = 3

	DefaultLeasePerSpaceMonthly = 200
	DefaultRevenueSharePercent  = 10

	DefaultGrowthConstantPercent = 10
)

// DefaultDriverRatePerKwh returns the default driver rate for a charging
// level.
func DefaultDriverRatePerKwh(level ChargerLevel) float64 {
	if level == ChargerLevelDCFC {
		return 0.55
	}
	return 0.40
}

// serviceClassRenames maps retired service class identifiers to their
// current names. Older documents may still use the retired names.
var serviceClassRenames = map[string]string{
	"SC-1":     "SC-2D",
	"SC-2":     "SC-2D",
	"SC-2-MRP": "SC-2D",
	"SC-3":     "SC-3 Secondary",
}

// MigrateProject migrates a project document to the current version.
// It returns the migrated project, a boolean indicating if changes were
// made, and an error if migration failed.
func MigrateProject(p Project, currentVersion int) (Project, bool, error) {
	if currentVersion >= CurrentProjectVersion {
		return p, false, nil
	}

	migrated := false
	// Loop through versions to apply migrations sequentially
	for version := currentVersion + 1; version <= CurrentProjectVersion; version++ {
		switch version {
		case 1:
			// version 1: initial, fill usage and supply defaults
			if p.Usage.PortsInUse == 0 {
				p.Usage.PortsInUse = DefaultPortsInUse
				migrated = true
			}
			if p.Usage.HoursPerPort == 0 {
				p.Usage.HoursPerPort = DefaultHoursPerPort
				migrated = true
			}
			if p.Usage.PeakPorts == 0 {
				p.Usage.PeakPorts = DefaultPeakPorts
				migrated = true
			}
			if p.Usage.DaysInMonth == 0 {
				p.Usage.DaysInMonth = DefaultDaysInMonth
				migrated = true
			}
			if p.SupplyRatePerKwh == nil {
				rate := DefaultSupplyRatePerKwh
				p.SupplyRatePerKwh = &rate
				migrated = true
			}
		case 2:
			// version 2: retired service class identifiers
			if renamed, ok := serviceClassRenames[p.ServiceClass]; ok {
				p.ServiceClass = renamed
				migrated = true
			}
		case 3:
			// version 3: ownership type became explicit and the booking
			// profit field was renamed
			if p.OwnershipType == "" {
				p.OwnershipType = OwnershipCustomer
				migrated = true
			}
			if p.Revenue != nil && p.Revenue.BookingProfit != 0 {
				if p.Revenue.BookingProfitPerBooking == 0 {
					p.Revenue.BookingProfitPerBooking = p.Revenue.BookingProfit
				}
				p.Revenue.BookingProfit = 0
				migrated = true
			}
		default:
			return p, false, fmt.Errorf("unknown project version: %d", version)
		}
	}

	return p, migrated, nil
}
