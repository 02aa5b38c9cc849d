package services

import (
	"sort"

	"meetspot/internal/domain"
)

// Variance gate for including the primary centroid as the time-balanced
// plan. Looser than the "ideal" tier so "acceptable" plans still pass.
const planVarianceGate = 150.0

// GeneratePlans emits the ordered set of plan variants for a run. The
// primary centroid is included as the time-balanced plan while its
// variance is below the gate; the majority-distance and
// commercial-density variants are then selected from the alternative
// foci. When the primary is unusable the better-scoring alternative
// takes priority 1. An empty result signals "no viable plan" and occurs
// only when the primary is gated out and no alternatives exist.
func GeneratePlans(participants []domain.Participant, center domain.VenueCandidate, alternatives []domain.VenueCandidate) []domain.PlanVariant {
	var plans []domain.PlanVariant
	priority := 1

	if center.Dispersion.Variance < planVarianceGate {
		plans = append(plans, domain.PlanVariant{
			Name:       domain.PlanTimeBalanced,
			Priority:   priority,
			Focus:      center.Location,
			Label:      center.Label,
			Dispersion: center.Dispersion,
		})
		priority++
	}

	if len(alternatives) == 0 {
		return plans
	}

	majorityIdx := closestToMajority(participants, alternatives)
	densityIdx := highestFacilities(alternatives)

	type pick struct {
		name string
		idx  int
	}
	picks := []pick{
		{domain.PlanCloserToMajority, majorityIdx},
		{domain.PlanCommercialDensity, densityIdx},
	}

	// With the primary gated out, lead with the better-scoring alternative.
	if len(plans) == 0 && len(picks) == 2 {
		a, b := alternatives[picks[0].idx], alternatives[picks[1].idx]
		if venueCandidateScore(b) > venueCandidateScore(a) {
			picks[0], picks[1] = picks[1], picks[0]
		}
	}

	seen := map[int]bool{}
	for _, p := range picks {
		if p.idx < 0 || seen[p.idx] {
			continue
		}
		seen[p.idx] = true

		alt := alternatives[p.idx]
		plans = append(plans, domain.PlanVariant{
			Name:       p.name,
			Priority:   priority,
			Focus:      alt.Location,
			Label:      alt.Label,
			Dispersion: alt.Dispersion,
		})
		priority++
	}

	return plans
}

func venueCandidateScore(v domain.VenueCandidate) float64 {
	return ScoreVenue(v.Dispersion, v.DistanceScore, v.FacilitiesScore, v.AccessibilityScore)
}

// closestToMajority picks the focus minimizing total straight-line
// distance to the majority subgroup: for each focus, the nearest
// floor(n/2)+1 participants. Ties keep the earliest focus so the
// selection stays deterministic.
func closestToMajority(participants []domain.Participant, foci []domain.VenueCandidate) int {
	if len(participants) == 0 || len(foci) == 0 {
		return -1
	}

	majority := len(participants)/2 + 1

	best := -1
	bestSum := 0.0
	for i, f := range foci {
		dists := make([]float64, 0, len(participants))
		for _, p := range participants {
			dists = append(dists, HaversineKm(p.Location, f.Location))
		}
		sort.Float64s(dists)

		var sum float64
		for j := 0; j < majority && j < len(dists); j++ {
			sum += dists[j]
		}

		if best == -1 || sum < bestSum {
			best = i
			bestSum = sum
		}
	}

	return best
}

func highestFacilities(foci []domain.VenueCandidate) int {
	best := -1
	for i, f := range foci {
		if best == -1 || f.FacilitiesScore > foci[best].FacilitiesScore {
			best = i
		}
	}
	return best
}
