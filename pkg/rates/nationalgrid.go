package rates

// National Grid Electric Vehicle Phase-In Rate schedule.
//
// Tier 1 (lowest load factor) pays no demand charge and the highest
// energy rates; each higher tier trades energy rate for demand charge
// until tier 0 (standard) which is demand-only.
//
// Summer is June through September. Summer super-peak is 2pm-6pm
// weekdays, on-peak 6am-2pm and 6pm-10pm weekdays. Winter on-peak is
// 6am-10pm weekdays. Everything else is off-peak.
var nationalGrid = Table{
	Utility:       "national-grid",
	DisplayName:   "National Grid",
	EffectiveDate: "2024-01-01",
	Classes: map[string]ClassRates{
		"SC-2D": {
			StandardDemandPerKw: 16.99,
			Tiers: [4]TierRates{
				{DemandPerKw: 0, OnPeakPerKwh: 0.0742, OffPeakPerKwh: 0.0371, SuperPeakPerKwh: 0.11131},
				{DemandPerKw: 4.25, OnPeakPerKwh: 0.05565, OffPeakPerKwh: 0.02783, SuperPeakPerKwh: 0.08348},
				{DemandPerKw: 8.50, OnPeakPerKwh: 0.0371, OffPeakPerKwh: 0.01855, SuperPeakPerKwh: 0.05565},
				{DemandPerKw: 12.74, OnPeakPerKwh: 0.01855, OffPeakPerKwh: 0.00928, SuperPeakPerKwh: 0.02783},
			},
		},
		"SC-3 Secondary": {
			StandardDemandPerKw: 14.28,
			Tiers: [4]TierRates{
				{DemandPerKw: 0, OnPeakPerKwh: 0.04805, OffPeakPerKwh: 0.02403, SuperPeakPerKwh: 0.07208},
				{DemandPerKw: 3.57, OnPeakPerKwh: 0.03604, OffPeakPerKwh: 0.01802, SuperPeakPerKwh: 0.05406},
				{DemandPerKw: 7.14, OnPeakPerKwh: 0.02403, OffPeakPerKwh: 0.01201, SuperPeakPerKwh: 0.03604},
				{DemandPerKw: 10.71, OnPeakPerKwh: 0.01201, OffPeakPerKwh: 0.00601, SuperPeakPerKwh: 0.01802},
			},
		},
		"SC-3 Primary": {
			StandardDemandPerKw: 12.88,
			Tiers: [4]TierRates{
				{DemandPerKw: 0, OnPeakPerKwh: 0.03984, OffPeakPerKwh: 0.01992, SuperPeakPerKwh: 0.05976},
				{DemandPerKw: 3.22, OnPeakPerKwh: 0.02988, OffPeakPerKwh: 0.01494, SuperPeakPerKwh: 0.04482},
				{DemandPerKw: 6.44, OnPeakPerKwh: 0.01992, OffPeakPerKwh: 0.00996, SuperPeakPerKwh: 0.02988},
				{DemandPerKw: 9.66, OnPeakPerKwh: 0.00996, OffPeakPerKwh: 0.00498, SuperPeakPerKwh: 0.01494},
			},
		},
		"SC-3 SubT/Trans": {
			StandardDemandPerKw: 4.07,
			Tiers: [4]TierRates{
				{DemandPerKw: 0, OnPeakPerKwh: 0.01257, OffPeakPerKwh: 0.00629, SuperPeakPerKwh: 0.01886},
				{DemandPerKw: 1.02, OnPeakPerKwh: 0.00943, OffPeakPerKwh: 0.00472, SuperPeakPerKwh: 0.01415},
				{DemandPerKw: 2.04, OnPeakPerKwh: 0.00629, OffPeakPerKwh: 0.00314, SuperPeakPerKwh: 0.00943},
				{DemandPerKw: 3.05, OnPeakPerKwh: 0.00314, OffPeakPerKwh: 0.00157, SuperPeakPerKwh: 0.00472},
			},
		},
		"SC-3A Sec/Pri": {
			StandardDemandPerKw: 14.07,
			Tiers: [4]TierRates{
				{DemandPerKw: 0, OnPeakPerKwh: 0.04033, OffPeakPerKwh: 0.02017, SuperPeakPerKwh: 0.0605},
				{DemandPerKw: 3.52, OnPeakPerKwh: 0.03025, OffPeakPerKwh: 0.01512, SuperPeakPerKwh: 0.04537},
				{DemandPerKw: 7.04, OnPeakPerKwh: 0.02017, OffPeakPerKwh: 0.01008, SuperPeakPerKwh: 0.03025},
				{DemandPerKw: 10.55, OnPeakPerKwh: 0.01008, OffPeakPerKwh: 0.00504, SuperPeakPerKwh: 0.01512},
			},
		},
		"SC-3A SubT": {
			StandardDemandPerKw: 4.97,
			Tiers: [4]TierRates{
				{DemandPerKw: 0, OnPeakPerKwh: 0.01329, OffPeakPerKwh: 0.00664, SuperPeakPerKwh: 0.01993},
				{DemandPerKw: 1.24, OnPeakPerKwh: 0.00997, OffPeakPerKwh: 0.00498, SuperPeakPerKwh: 0.01495},
				{DemandPerKw: 2.49, OnPeakPerKwh: 0.00664, OffPeakPerKwh: 0.00332, SuperPeakPerKwh: 0.00997},
				{DemandPerKw: 3.73, OnPeakPerKwh: 0.00332, OffPeakPerKwh: 0.00166, SuperPeakPerKwh: 0.00498},
			},
		},
		"SC-3A Trans": {
			StandardDemandPerKw: 4.36,
			Tiers: [4]TierRates{
				{DemandPerKw: 0, OnPeakPerKwh: 0.01194, OffPeakPerKwh: 0.00597, SuperPeakPerKwh: 0.0179},
				{DemandPerKw: 1.09, OnPeakPerKwh: 0.00895, OffPeakPerKwh: 0.00448, SuperPeakPerKwh: 0.01343},
				{DemandPerKw: 2.18, OnPeakPerKwh: 0.00597, OffPeakPerKwh: 0.00298, SuperPeakPerKwh: 0.00895},
				{DemandPerKw: 3.27, OnPeakPerKwh: 0.00298, OffPeakPerKwh: 0.00149, SuperPeakPerKwh: 0.00448},
			},
		},
	},
}
