package amap

import (
	"strconv"

	"meetspot/internal/domain"
)

// Transfer time is rarely reported explicitly; estimate a fixed cost
// per boarding.
const transferPenaltyMinutes = 4.0

// parsePositive decodes a string-encoded number, rejecting absent,
// unparseable, and non-positive values. Absence of a field path is a
// "no route found" signal, never an error.
func parsePositive(raw string) (float64, bool) {
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}

// extractDrivingMinutes reads the first (shortest) path's duration in
// minutes.
func extractDrivingMinutes(r drivingResponse) (float64, bool) {
	if len(r.Route.Paths) == 0 {
		return 0, false
	}
	seconds, ok := parsePositive(r.Route.Paths[0].Duration)
	if !ok {
		return 0, false
	}
	return seconds / 60.0, true
}

// extractTransitMinutes scans all alternative itineraries and returns
// the minimum duration in minutes.
func extractTransitMinutes(r transitResponse) (float64, bool) {
	best := 0.0
	found := false
	for _, t := range r.Route.Transits {
		seconds, ok := parsePositive(t.Duration)
		if !ok {
			continue
		}
		if !found || seconds < best {
			best = seconds
			found = true
		}
	}
	if !found {
		return 0, false
	}
	return best / 60.0, true
}

// extractTransitDetail decomposes the shortest itinerary into walking
// time, in-vehicle time, and transfer count, with transfer time
// estimated per boarding.
func extractTransitDetail(r transitResponse) (*domain.TransitDetail, bool) {
	var shortest *transitItinerary
	var shortestSec float64
	for i := range r.Route.Transits {
		seconds, ok := parsePositive(r.Route.Transits[i].Duration)
		if !ok {
			continue
		}
		if shortest == nil || seconds < shortestSec {
			shortest = &r.Route.Transits[i]
			shortestSec = seconds
		}
	}
	if shortest == nil {
		return nil, false
	}

	d := &domain.TransitDetail{}
	for _, seg := range shortest.Segments {
		if sec, ok := parsePositive(seg.Walking.Duration); ok {
			d.WalkingMinutes += sec / 60.0
		}
		if sec, ok := parsePositive(seg.Railway.Duration); ok {
			d.InVehicleMinutes += sec / 60.0
			d.Transfers++
		}
		if len(seg.Bus.Buslines) > 0 {
			if sec, ok := parsePositive(seg.Bus.Buslines[0].Duration); ok {
				d.InVehicleMinutes += sec / 60.0
				d.Transfers++
			}
		}
	}
	if d.Transfers > 0 {
		d.TransferMinutes = float64(d.Transfers) * transferPenaltyMinutes
	}

	return d, true
}

// extractCyclingMinutes reads the single route's duration in minutes.
func extractCyclingMinutes(r cyclingResponse) (float64, bool) {
	seconds, ok := parsePositive(r.Route.Duration)
	if !ok {
		return 0, false
	}
	return seconds / 60.0, true
}

// extractDistanceKm converts a string-encoded distance in meters to
// kilometers.
func extractDistanceKm(raw string) (float64, bool) {
	meters, ok := parsePositive(raw)
	if !ok {
		return 0, false
	}
	return meters / 1000.0, true
}
