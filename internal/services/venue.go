package services

import "meetspot/internal/domain"

// Weights of the venue composite score. Time-fairness dominates venue
// desirability by design; the weights are fixed constants, not tunables.
const (
	venueWeightTime          = 0.50
	venueWeightDistance      = 0.25
	venueWeightFacilities    = 0.15
	venueWeightAccessibility = 0.10
)

// Dispersion tier to 0-100 time sub-score.
var tierScores = map[int]float64{
	5: 100,
	4: 80,
	3: 60,
	2: 40,
}

// TimeScore converts a dispersion result to the 0-100 time-fairness
// sub-score using the same variance tiers as the dispersion rating.
func TimeScore(d domain.DispersionResult) float64 {
	if s, ok := tierScores[d.Tier]; ok {
		return s
	}
	return tierScores[dispersionFloorTier]
}

// ScoreVenue combines the time-dispersion sub-score with the supplied
// distance, facilities, and accessibility sub-scores (each 0-100) into a
// single 0-100 value. Inputs are assumed pre-validated; this is a pure
// arithmetic step and does not re-check ranges.
func ScoreVenue(d domain.DispersionResult, distanceScore, facilitiesScore, accessibilityScore float64) float64 {
	return venueWeightTime*TimeScore(d) +
		venueWeightDistance*distanceScore +
		venueWeightFacilities*facilitiesScore +
		venueWeightAccessibility*accessibilityScore
}
