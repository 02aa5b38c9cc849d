package services

import (
	"math"

	"meetspot/internal/domain"
)

// One qualifying rule inside a distance band: the mode is recommended
// with the given priority when its travel time is under maxMinutes.
type modeRule struct {
	mode       domain.TransportMode
	maxMinutes float64
	priority   int
}

// Distance-banded transport policy. Bands are ordered by ascending
// distance ceiling; the first band whose ceiling covers the distance
// applies. Thresholds are fixed design constants kept in one table so
// they stay testable independently of control flow.
var modePolicy = []struct {
	maxKm float64
	rules []modeRule
}{
	{maxKm: 3, rules: []modeRule{
		{domain.ModeCycling, 30, 1},
		{domain.ModeTransit, 30, 2},
		{domain.ModeDriving, 20, 3},
	}},
	{maxKm: 10, rules: []modeRule{
		{domain.ModeDriving, 40, 1},
		{domain.ModeTransit, 45, 2},
	}},
	{maxKm: math.Inf(1), rules: []modeRule{
		{domain.ModeDriving, 60, 1},
		{domain.ModeTransit, 120, 2},
	}},
}

// Sentinel minutes value carried by the "no viable mode" entry.
const noViableModeMinutes = 999

// RecommendModes ranks feasible transport modes for one participant by
// the distance-banded policy, ordered by ascending priority (1 = most
// preferred). A nil cyclingMin means no cycling time was measured.
// Travel times outside a rule's threshold simply fail to qualify; when
// nothing qualifies the single sentinel entry (priority 0) is returned
// so callers can distinguish "infeasible" from an empty answer.
func RecommendModes(distanceKm, drivingMin, transitMin float64, cyclingMin *float64) []domain.ModeOption {
	var band []modeRule
	for _, b := range modePolicy {
		if distanceKm <= b.maxKm {
			band = b.rules
			break
		}
	}

	var out []domain.ModeOption
	for _, r := range band {
		var minutes float64
		switch r.mode {
		case domain.ModeDriving:
			minutes = drivingMin
		case domain.ModeTransit:
			minutes = transitMin
		case domain.ModeCycling:
			if cyclingMin == nil {
				continue
			}
			minutes = *cyclingMin
		}

		if minutes > 0 && minutes < r.maxMinutes {
			out = append(out, domain.ModeOption{Mode: r.mode, Minutes: minutes, Priority: r.priority})
		}
	}

	if len(out) == 0 {
		return []domain.ModeOption{{Mode: domain.ModeNone, Minutes: noViableModeMinutes, Priority: 0}}
	}

	return out
}
