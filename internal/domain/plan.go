package domain

// Names of the generated plan variants.
const (
	PlanTimeBalanced      = "time-balanced"
	PlanCloserToMajority  = "closer-to-majority"
	PlanCommercialDensity = "commercial-density-first"
)

// PlanVariant is one complete alternative recommendation: a focus point
// paired with its fairness metric. Variants are ordered by ascending
// Priority (1 = best).
type PlanVariant struct {
	Name     string
	Priority int

	Focus Coordinate
	Label string

	Dispersion DispersionResult
}

// DepartureAssignment is one participant's computed departure for a
// shared arrival time. Arrival is identical across all assignments of a
// planning run. Times are 24-hour "HH:MM" strings; PreviousDay is set
// when the departure wrapped across midnight.
type DepartureAssignment struct {
	Name          string
	TravelMinutes float64
	BufferMinutes float64
	Departure     string
	Arrival       string
	PreviousDay   bool
}
