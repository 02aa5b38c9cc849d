package services

import (
	"fmt"
	"math"

	"meetspot/internal/domain"
)

const earthRadiusKm = 6371

// Centroid computes the arithmetic mean of longitudes and latitudes
// independently. This is a planar mean, not a geodesic centroid, which
// is acceptable only because participant clusters are assumed to span a
// few tens of kilometers.
func Centroid(coords []domain.Coordinate) (domain.Coordinate, error) {
	if len(coords) == 0 {
		return domain.Coordinate{}, fmt.Errorf("centroid: %w", domain.ErrEmptyInput)
	}

	var sumLon, sumLat float64
	for _, c := range coords {
		sumLon += c.Lon
		sumLat += c.Lat
	}

	n := float64(len(coords))
	return domain.Coordinate{Lon: sumLon / n, Lat: sumLat / n}, nil
}

// HaversineKm returns the great-circle distance between two coordinates
// in kilometers. Actual road distance is typically 1.2-1.4x larger.
func HaversineKm(a, b domain.Coordinate) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLon := (b.Lon - a.Lon) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)

	return earthRadiusKm * 2 * math.Asin(math.Sqrt(h))
}
