package services

import (
	"testing"

	"meetspot/internal/domain"
)

func planParticipants() []domain.Participant {
	// Three participants clustered west, one outlier east.
	return []domain.Participant{
		{Name: "A", Location: domain.Coordinate{Lon: 116.30, Lat: 39.90}},
		{Name: "B", Location: domain.Coordinate{Lon: 116.31, Lat: 39.91}},
		{Name: "C", Location: domain.Coordinate{Lon: 116.32, Lat: 39.90}},
		{Name: "D", Location: domain.Coordinate{Lon: 116.60, Lat: 39.95}},
	}
}

func TestGeneratePlansPrimaryFirst(t *testing.T) {
	center := domain.VenueCandidate{
		Location:   domain.Coordinate{Lon: 116.40, Lat: 39.91},
		Dispersion: domain.DispersionResult{Variance: 40, Tier: 5, Rating: "ideal"},
	}
	alternatives := []domain.VenueCandidate{
		{
			Location:        domain.Coordinate{Lon: 116.31, Lat: 39.90},
			Dispersion:      domain.DispersionResult{Variance: 80, Tier: 4, Rating: "good"},
			FacilitiesScore: 40,
		},
		{
			Location:        domain.Coordinate{Lon: 116.60, Lat: 39.95},
			Dispersion:      domain.DispersionResult{Variance: 120, Tier: 3, Rating: "acceptable"},
			FacilitiesScore: 90,
		},
	}

	plans := GeneratePlans(planParticipants(), center, alternatives)

	if len(plans) != 3 {
		t.Fatalf("got %d plans: %+v", len(plans), plans)
	}
	if plans[0].Name != domain.PlanTimeBalanced || plans[0].Priority != 1 {
		t.Fatalf("plan 1 = %+v", plans[0])
	}
	// The western focus is nearest the three clustered participants.
	if plans[1].Name != domain.PlanCloserToMajority || plans[1].Focus.Lon != 116.31 {
		t.Fatalf("plan 2 = %+v", plans[1])
	}
	if plans[2].Name != domain.PlanCommercialDensity || plans[2].Focus.Lon != 116.60 {
		t.Fatalf("plan 3 = %+v", plans[2])
	}
	for i, p := range plans {
		if p.Priority != i+1 {
			t.Fatalf("priorities not consecutive: %+v", plans)
		}
	}
}

func TestGeneratePlansVarianceGate(t *testing.T) {
	center := domain.VenueCandidate{
		Dispersion: domain.DispersionResult{Variance: 150, Tier: 3, Rating: "acceptable"},
	}

	plans := GeneratePlans(planParticipants(), center, nil)
	if len(plans) != 0 {
		t.Fatalf("variance at the gate must exclude the primary, got %+v", plans)
	}

	center.Dispersion.Variance = 149.9
	plans = GeneratePlans(planParticipants(), center, nil)
	if len(plans) != 1 || plans[0].Name != domain.PlanTimeBalanced {
		t.Fatalf("got %+v", plans)
	}
}

func TestGeneratePlansGatedPrimaryPromotesBestAlternative(t *testing.T) {
	center := domain.VenueCandidate{
		Dispersion: domain.DispersionResult{Variance: 400, Tier: 2, Rating: "poor"},
	}
	alternatives := []domain.VenueCandidate{
		// Near the majority but with a weak overall score.
		{
			Location:   domain.Coordinate{Lon: 116.31, Lat: 39.90},
			Dispersion: domain.DispersionResult{Variance: 300, Tier: 2, Rating: "poor"},
		},
		// Further out but clearly the stronger candidate.
		{
			Location:        domain.Coordinate{Lon: 116.60, Lat: 39.95},
			Dispersion:      domain.DispersionResult{Variance: 40, Tier: 5, Rating: "ideal"},
			DistanceScore:   80,
			FacilitiesScore: 90,
		},
	}

	plans := GeneratePlans(planParticipants(), center, alternatives)

	if len(plans) != 2 {
		t.Fatalf("got %+v", plans)
	}
	if plans[0].Name != domain.PlanCommercialDensity || plans[0].Priority != 1 {
		t.Fatalf("plan 1 = %+v, want the stronger alternative promoted", plans[0])
	}
	if plans[1].Name != domain.PlanCloserToMajority || plans[1].Priority != 2 {
		t.Fatalf("plan 2 = %+v", plans[1])
	}
}

func TestGeneratePlansDeduplicatesSameFocus(t *testing.T) {
	center := domain.VenueCandidate{
		Dispersion: domain.DispersionResult{Variance: 40, Tier: 5, Rating: "ideal"},
	}
	// A single alternative wins both the majority and the density pick.
	alternatives := []domain.VenueCandidate{
		{
			Location:        domain.Coordinate{Lon: 116.31, Lat: 39.90},
			Dispersion:      domain.DispersionResult{Variance: 60, Tier: 4, Rating: "good"},
			FacilitiesScore: 70,
		},
	}

	plans := GeneratePlans(planParticipants(), center, alternatives)

	if len(plans) != 2 {
		t.Fatalf("got %d plans, want the duplicate collapsed: %+v", len(plans), plans)
	}
	if plans[1].Name != domain.PlanCloserToMajority {
		t.Fatalf("plan 2 = %+v", plans[1])
	}
}

func TestGeneratePlansNoParticipantsNoFoci(t *testing.T) {
	center := domain.VenueCandidate{
		Dispersion: domain.DispersionResult{Variance: 500},
	}
	if plans := GeneratePlans(nil, center, nil); len(plans) != 0 {
		t.Fatalf("got %+v, want none", plans)
	}
}
