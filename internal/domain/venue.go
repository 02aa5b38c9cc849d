package domain

// VenueCandidate is a prospective meeting point under evaluation: a
// coordinate, an optional human-readable label, the travel-time
// dispersion across participants, and three sub-scores on a 0-100 scale.
// Candidates are created per centroid or alternative focus, scored once,
// and discarded if not selected.
type VenueCandidate struct {
	Location Coordinate
	Label    string

	Dispersion DispersionResult

	// Sub-scores, each 0-100 and assumed pre-validated.
	DistanceScore      float64
	FacilitiesScore    float64
	AccessibilityScore float64
}
