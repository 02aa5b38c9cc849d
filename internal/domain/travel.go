package domain

// TransportMode identifies how a participant travels to the venue.
type TransportMode string

const (
	ModeDriving TransportMode = "driving"
	ModeTransit TransportMode = "transit"
	ModeCycling TransportMode = "cycling"
	// ModeNone marks the sentinel "no viable mode" recommendation.
	ModeNone TransportMode = "none"
)

// TravelSample is a single measured travel time tagged with its mode.
// Samples are transient: they feed dispersion analysis and mode advice
// and are never persisted.
type TravelSample struct {
	Mode    TransportMode
	Minutes float64
}

// Route is a normalized direction-lookup answer: travel time in minutes
// and routed distance in kilometers.
type Route struct {
	Mode       TransportMode
	Minutes    float64
	DistanceKm float64

	// Transit is set only for ModeTransit routes.
	Transit *TransitDetail
}

// TransitDetail decomposes a transit itinerary into walking, in-vehicle,
// and transfer time. Transfer time is estimated when the provider does
// not report it explicitly.
type TransitDetail struct {
	WalkingMinutes   float64
	InVehicleMinutes float64
	TransferMinutes  float64
	Transfers        int
}

// ModeOption is one ranked transport recommendation for a participant.
// Priority 1 is most preferred; priority 0 marks the sentinel entry and
// must be treated as "infeasible", not as a usable recommendation.
type ModeOption struct {
	Mode     TransportMode
	Minutes  float64
	Priority int
}

// DispersionResult summarizes how evenly travel times are spread across
// participants. Variance is the population variance (divide by n), since
// the samples describe the full participant set rather than a sample.
type DispersionResult struct {
	Mean     float64
	Variance float64
	Range    float64
	Tier     int
	Rating   string
}
