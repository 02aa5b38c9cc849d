package domain

import "fmt"

// Range gates applied before values enter the scoring pipeline. Failing
// records are dropped or flagged upstream, never silently coerced.
const (
	maxTravelMinutes = 600
	maxDistanceKm    = 500
)

// ValidCoordinate reports whether c lies within longitude [-180, 180]
// and latitude [-90, 90].
func ValidCoordinate(c Coordinate) bool {
	return c.Lon >= -180 && c.Lon <= 180 && c.Lat >= -90 && c.Lat <= 90
}

// ValidTravelMinutes reports whether a travel time is plausible
// (0 < minutes < 600).
func ValidTravelMinutes(minutes float64) bool {
	return minutes > 0 && minutes < maxTravelMinutes
}

// ValidDistanceKm reports whether a distance is plausible (0 < km < 500).
func ValidDistanceKm(km float64) bool {
	return km > 0 && km < maxDistanceKm
}

// CheckCoordinate returns ErrCoordinateRange when c lies outside the
// valid longitude/latitude ranges.
func CheckCoordinate(c Coordinate) error {
	if !ValidCoordinate(c) {
		return fmt.Errorf("coordinate %s: %w", c, ErrCoordinateRange)
	}
	return nil
}

// CheckRoute returns ErrLowConfidenceRoute when a route's reported time
// or distance falls outside the plausible ranges.
func CheckRoute(r Route) error {
	if !ValidTravelMinutes(r.Minutes) {
		return fmt.Errorf("%s route: %.1f minutes: %w", r.Mode, r.Minutes, ErrLowConfidenceRoute)
	}
	if !ValidDistanceKm(r.DistanceKm) {
		return fmt.Errorf("%s route: %.1f km: %w", r.Mode, r.DistanceKm, ErrLowConfidenceRoute)
	}
	return nil
}

// ValidRestaurant reports whether a restaurant record is complete enough
// to score: name present, rating within [0, 5], and a non-negative
// review count and distance.
func ValidRestaurant(r RestaurantCandidate) bool {
	if r.Name == "" {
		return false
	}
	if r.Rating < 0 || r.Rating > 5 {
		return false
	}
	if r.ReviewCount < 0 {
		return false
	}
	return r.DistanceKm >= 0
}
