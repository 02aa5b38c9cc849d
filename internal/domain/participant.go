package domain

// Participant is one attendee of the planned meetup. It is created once
// per planning run and not mutated after its routes are attached.
type Participant struct {
	Name    string
	Address string

	// Location is the geocoded home coordinate.
	Location Coordinate

	// StraightLineKm is the haversine distance to the candidate venue.
	StraightLineKm float64

	// Per-mode routes to the candidate venue. A nil route means the
	// lookup found no usable path for that mode.
	Driving *Route
	Transit *Route
	Cycling *Route

	// FairnessMinutes is the travel time this participant contributed to
	// the dispersion analysis (zero when no usable route existed).
	FairnessMinutes float64

	// Modes holds the ranked transport recommendations, or the single
	// sentinel entry when no mode is viable.
	Modes []ModeOption
}
