package services

import (
	"sort"

	"meetspot/internal/domain"
)

// Restaurant composite weights and normalization references.
const (
	restaurantWeightRating   = 0.7
	restaurantWeightReviews  = 0.2
	restaurantWeightDistance = 0.1

	// Soft ceiling for review-count normalization.
	refReviewCount = 5000

	// Preferred distance band; beyond it the distance sub-score decays
	// steeply toward zero.
	refDistanceKm = 3.0
)

// Normalize maps value into [0, 1] relative to [min, max]. A degenerate
// range (min = max) cannot discriminate, so it yields the neutral 0.5.
// Results are clamped to [0, 1] so values beyond the reference range
// cannot push the composite score out of scale.
func Normalize(value, min, max float64) float64 {
	if max == min {
		return 0.5
	}

	n := (value - min) / (max - min)
	if n < 0 {
		return 0
	}
	if n > 1 {
		return 1
	}
	return n
}

// ScoreRestaurant computes the 0-100 composite for one candidate from
// its rating (0-5), review count, and distance to the venue. Distance
// decays linearly from 1.0 to 0.7 over the first 3 km, then at 0.1 per
// km, floored at zero.
func ScoreRestaurant(rating float64, reviewCount int, distanceKm float64) float64 {
	ratingNorm := rating / 5.0
	reviewNorm := Normalize(float64(reviewCount), 0, refReviewCount)

	var distanceNorm float64
	if distanceKm <= refDistanceKm {
		distanceNorm = 1 - (distanceKm/refDistanceKm)*0.3
	} else {
		distanceNorm = 0.7 - (distanceKm-refDistanceKm)*0.1
		if distanceNorm < 0 {
			distanceNorm = 0
		}
	}

	return 100 * (restaurantWeightRating*ratingNorm +
		restaurantWeightReviews*reviewNorm +
		restaurantWeightDistance*distanceNorm)
}

// RankRestaurants scores every candidate and returns a new slice sorted
// by descending score. Ties break on higher rating, then lower distance,
// keeping the ordering deterministic and reproducible.
func RankRestaurants(candidates []domain.RestaurantCandidate) []domain.RestaurantCandidate {
	out := make([]domain.RestaurantCandidate, len(candidates))
	copy(out, candidates)

	for i := range out {
		out[i].Score = ScoreRestaurant(out[i].Rating, out[i].ReviewCount, out[i].DistanceKm)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		if out[i].Rating != out[j].Rating {
			return out[i].Rating > out[j].Rating
		}
		return out[i].DistanceKm < out[j].DistanceKm
	})

	return out
}
