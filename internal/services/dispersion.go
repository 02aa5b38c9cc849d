package services

import (
	"fmt"

	"meetspot/internal/domain"
)

// Variance thresholds mapping to qualitative tiers. Ordered by ascending
// upper bound; variances beyond the last band fall into the "poor" tier.
var dispersionBands = []struct {
	upperBound float64
	tier       int
	rating     string
}{
	{upperBound: 50, tier: 5, rating: "ideal"},
	{upperBound: 100, tier: 4, rating: "good"},
	{upperBound: 200, tier: 3, rating: "acceptable"},
}

const (
	dispersionFloorTier   = 2
	dispersionFloorRating = "poor"
)

// AnalyzeTimes computes mean, population variance, and max-minus-min
// range over a set of travel-time samples in minutes, and derives the
// qualitative rating tier from the variance.
func AnalyzeTimes(times []float64) (domain.DispersionResult, error) {
	if len(times) == 0 {
		return domain.DispersionResult{}, fmt.Errorf("analyze times: %w", domain.ErrEmptyInput)
	}

	n := float64(len(times))

	var sum float64
	for _, t := range times {
		sum += t
	}
	mean := sum / n

	var sq float64
	minT, maxT := times[0], times[0]
	for _, t := range times {
		d := t - mean
		sq += d * d
		if t < minT {
			minT = t
		}
		if t > maxT {
			maxT = t
		}
	}
	variance := sq / n

	res := domain.DispersionResult{
		Mean:     mean,
		Variance: variance,
		Range:    maxT - minT,
		Tier:     dispersionFloorTier,
		Rating:   dispersionFloorRating,
	}
	for _, b := range dispersionBands {
		if variance < b.upperBound {
			res.Tier = b.tier
			res.Rating = b.rating
			break
		}
	}

	return res, nil
}
