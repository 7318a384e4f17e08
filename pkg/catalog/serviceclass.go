package catalog

// ServiceClass describes one utility service classification.
type ServiceClass struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	// MinKw is the minimum demand for eligibility, 0 when unrestricted.
	MinKw float64 `json:"minKw,omitempty"`
	// MaxKw is the maximum demand for eligibility, 0 when unrestricted.
	MaxKw float64 `json:"maxKw,omitempty"`
}

var serviceClasses = []ServiceClass{
	{
		ID:          "SC-2D",
		Name:        "SC-2D",
		Description: "Commercial service with demand metering",
	},
	{
		ID:          "SC-3 Secondary",
		Name:        "SC-3 Secondary",
		Description: "Large commercial service, secondary voltage",
		MinKw:       100,
	},
	{
		ID:          "SC-3 Primary",
		Name:        "SC-3 Primary",
		Description: "Large commercial service, primary voltage (4kV-35kV)",
		MinKw:       100,
	},
	{
		ID:          "SC-3 SubT/Trans",
		Name:        "SC-3 SubT/Trans",
		Description: "Large commercial service, subtransmission/transmission voltage",
		MinKw:       1000,
	},
	{
		ID:          "SC-3A Sec/Pri",
		Name:        "SC-3A Sec/Pri",
		Description: "Large commercial with TOU, secondary/primary voltage",
		MinKw:       100,
	},
	{
		ID:          "SC-3A SubT",
		Name:        "SC-3A SubT",
		Description: "Large commercial with TOU, subtransmission voltage",
		MinKw:       1000,
	},
	{
		ID:          "SC-3A Trans",
		Name:        "SC-3A Trans",
		Description: "Large commercial with TOU, transmission voltage",
		MinKw:       1000,
	},
}

// ServiceClasses returns every service class in the catalog.
func ServiceClasses() []ServiceClass {
	out := make([]ServiceClass, len(serviceClasses))
	copy(out, serviceClasses)
	return out
}

// ServiceClassByID looks up a service class by id, with a bool indicating
// whether it exists.
func ServiceClassByID(id string) (ServiceClass, bool) {
	for _, sc := range serviceClasses {
		if sc.ID == id {
			return sc, true
		}
	}
	return ServiceClass{}, false
}

// ServiceClassesForDemand returns the service classes a site with the
// given peak demand is eligible for.
func ServiceClassesForDemand(demandKw float64) []ServiceClass {
	var out []ServiceClass
	for _, sc := range serviceClasses {
		if sc.MinKw > 0 && demandKw < sc.MinKw {
			continue
		}
		if sc.MaxKw > 0 && demandKw > sc.MaxKw {
			continue
		}
		out = append(out, sc)
	}
	return out
}
