package types

// Season identifies which seasonal schedule a figure belongs to.
type Season string

const (
	SeasonSummer Season = "summer"
	SeasonWinter Season = "winter"
)

// ResolvedRates are the demand and energy rates resolved for one
// (service class, tier) pair. Tier 0 carries the standard demand rate and
// zero energy rates.
type ResolvedRates struct {
	StandardDemandPerKw float64 `json:"standardDemandPerKw"`
	DemandPerKw         float64 `json:"demandPerKw"`
	OnPeakPerKwh        float64 `json:"onPeakPerKwh"`
	OffPeakPerKwh       float64 `json:"offPeakPerKwh"`
	// SuperPeakPerKwh only applies to the summer season.
	SuperPeakPerKwh float64 `json:"superPeakPerKwh"`
}

// WindowUsage is the usage and cost attributed to one TOU window in one
// month.
type WindowUsage struct {
	Hours      float64 `json:"hours"`
	Kwh        float64 `json:"kwh"`
	RatePerKwh float64 `json:"ratePerKwh"`
	Cost       float64 `json:"cost"`
}

// MonthlyBreakdown is the cost breakdown for one month of one season.
type MonthlyBreakdown struct {
	Season Season  `json:"season"`
	Kwh    float64 `json:"kwh"`

	PeakDemandKw    float64 `json:"peakDemandKw"`
	DemandRatePerKw float64 `json:"demandRatePerKw"`
	DemandCharge    float64 `json:"demandCharge"`

	// SuperPeak is nil for winter months.
	SuperPeak *WindowUsage `json:"superPeak,omitempty"`
	OnPeak    WindowUsage  `json:"onPeak"`
	OffPeak   WindowUsage  `json:"offPeak"`

	// DeliveryCost is the demand charge plus all window charges.
	DeliveryCost float64 `json:"deliveryCost"`
	SupplyCost   float64 `json:"supplyCost"`
	TotalCost    float64 `json:"totalCost"`

	// StandardCost is the demand-only cost at the standard rate, the
	// comparison baseline for savings. Supply is excluded from savings.
	StandardCost   float64 `json:"standardCost"`
	Savings        float64 `json:"savings"`
	SavingsPercent float64 `json:"savingsPercent"`
}

// SeasonSummary is a monthly breakdown scaled by the season's length.
type SeasonSummary struct {
	Season       Season  `json:"season"`
	Months       int     `json:"months"`
	Kwh          float64 `json:"kwh"`
	DemandCharge float64 `json:"demandCharge"`
	DeliveryCost float64 `json:"deliveryCost"`
	SupplyCost   float64 `json:"supplyCost"`
	TotalCost    float64 `json:"totalCost"`
	StandardCost float64 `json:"standardCost"`
	Savings      float64 `json:"savings"`
}

// AnnualSummary is the sum of both season summaries.
type AnnualSummary struct {
	Kwh            float64 `json:"kwh"`
	DeliveryCost   float64 `json:"deliveryCost"`
	SupplyCost     float64 `json:"supplyCost"`
	TotalCost      float64 `json:"totalCost"`
	StandardCost   float64 `json:"standardCost"`
	Savings        float64 `json:"savings"`
	SavingsPercent float64 `json:"savingsPercent"`
}

// SeasonMismatch flags a season whose stored TOU hours don't sum to the
// total derived from the coarse usage inputs. The engine still computes
// with the stored hours; this is surfaced for the caller to display.
type SeasonMismatch struct {
	Season   Season  `json:"season"`
	Expected float64 `json:"expected"`
	Actual   float64 `json:"actual"`
}

// RevenueResult is the driver-billing settlement. All monetary figures
// are rounded to the cent after each multiplication.
type RevenueResult struct {
	DriverRatePerKwh float64 `json:"driverRatePerKwh"`

	AnnualKwh   float64 `json:"annualKwh"`
	BillableKwh float64 `json:"billableKwh"`

	GrossRevenue  float64 `json:"grossRevenue"`
	NetworkFee    float64 `json:"networkFee"`
	NetAfterFee   float64 `json:"netAfterFee"`
	CustomerShare float64 `json:"customerShare"`
	OperatorShare float64 `json:"operatorShare"`

	// EnergyCost is the annual delivery plus supply cost deducted from the
	// customer share.
	EnergyCost           float64 `json:"energyCost"`
	CustomerFinalRevenue float64 `json:"customerFinalRevenue"`

	MonthlyGrossRevenue         float64 `json:"monthlyGrossRevenue"`
	MonthlyCustomerFinalRevenue float64 `json:"monthlyCustomerFinalRevenue"`
}

// GuaranteeSource tags which payment was binding in the site-host
// settlement.
type GuaranteeSource string

const (
	GuaranteeSourceBaseRent     GuaranteeSource = "base-rent"
	GuaranteeSourceRevenueShare GuaranteeSource = "revenue-share"
)

// SiteHostResult is the site-host ownership settlement: the customer is
// paid the greater of a fixed lease or a share of net charging revenue.
type SiteHostResult struct {
	// TotalSpaces is the port count plus additional equipment spaces.
	TotalSpaces     int     `json:"totalSpaces"`
	LeasePerSpace   float64 `json:"leasePerSpace"`
	MonthlyBaseRent float64 `json:"monthlyBaseRent"`
	AnnualBaseRent  float64 `json:"annualBaseRent"`

	RevenueSharePercent  float64 `json:"revenueSharePercent"`
	GrossChargingRevenue float64 `json:"grossChargingRevenue"`
	ProcessingFees       float64 `json:"processingFees"`
	NetChargingRevenue   float64 `json:"netChargingRevenue"`
	RevenueShareAmount   float64 `json:"revenueShareAmount"`

	// CustomerAnnualRevenue is the greater of the annual base rent and
	// the revenue share amount.
	CustomerAnnualRevenue float64         `json:"customerAnnualRevenue"`
	RevenueSource         GuaranteeSource `json:"revenueSource"`

	Projection []YearlyProjection `json:"projection"`
}

// YearlyProjection is one year of the 10-year utilization projection.
type YearlyProjection struct {
	Year int `json:"year"`
	// UtilizationMultiplier is 1.0 for year 1 and compounds by the
	// year-over-year growth thereafter.
	UtilizationMultiplier float64 `json:"utilizationMultiplier"`

	AnnualKwh            float64 `json:"annualKwh"`
	GrossChargingRevenue float64 `json:"grossChargingRevenue"`
	RevenueShareAmount   float64 `json:"revenueShareAmount"`
	BaseRent             float64 `json:"baseRent"`

	// CustomerRevenue is the greater of base rent and revenue share.
	CustomerRevenue float64         `json:"customerRevenue"`
	RevenueSource   GuaranteeSource `json:"revenueSource"`

	// Booking figures only apply to Hotel and Hospitality industries.
	MonthlyBookings  float64 `json:"monthlyBookings,omitempty"`
	ProfitPerBooking float64 `json:"profitPerBooking,omitempty"`
	BookingProfit    float64 `json:"bookingProfit,omitempty"`

	// TotalCustomerProfit is CustomerRevenue plus BookingProfit.
	TotalCustomerProfit float64 `json:"totalCustomerProfit"`
}

// CalculationResult is the engine's single output value object. It is
// created fresh on every invocation and never mutated.
type CalculationResult struct {
	Utility      string `json:"utility"`
	ServiceClass string `json:"serviceClass"`

	Tier              int     `json:"tier"`
	LoadFactorPercent float64 `json:"loadFactorPercent"`

	NameplateKw  float64 `json:"nameplateKw"`
	EffectiveKw  float64 `json:"effectiveKw"`
	TotalPorts   int     `json:"totalPorts"`
	AvgKwPerPort float64 `json:"avgKwPerPort"`

	WeightedDailyHours float64 `json:"weightedDailyHours"`
	AnnualKwhEstimate  float64 `json:"annualKwhEstimate"`

	Rates ResolvedRates `json:"rates"`

	Summer MonthlyBreakdown `json:"summer"`
	Winter MonthlyBreakdown `json:"winter"`

	SummerTotal SeasonSummary `json:"summerTotal"`
	WinterTotal SeasonSummary `json:"winterTotal"`
	Annual      AnnualSummary `json:"annual"`

	// Validation lists seasons whose TOU hours disagree with the coarse
	// inputs. The figures above are still computed from the stored hours.
	Validation []SeasonMismatch `json:"validation,omitempty"`

	Revenue  *RevenueResult  `json:"revenue,omitempty"`
	SiteHost *SiteHostResult `json:"siteHost,omitempty"`
}
