package services

import (
	"math"
	"testing"

	"meetspot/internal/domain"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name            string
		value, min, max float64
		want            float64
	}{
		{"midpoint", 2500, 0, 5000, 0.5},
		{"at min", 0, 0, 5000, 0},
		{"at max", 5000, 0, 5000, 1},
		{"below range clamps", -10, 0, 5000, 0},
		{"above range clamps", 9000, 0, 5000, 1},
		{"degenerate range", 3, 5, 5, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.value, tt.min, tt.max)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Fatalf("Normalize(%v, %v, %v) = %v, want %v", tt.value, tt.min, tt.max, got, tt.want)
			}
		})
	}
}

func TestScoreRestaurant(t *testing.T) {
	// 0.7*(4.8/5) + 0.2*(2000/5000) + 0.1*(1 - (1/3)*0.3), scaled to 100.
	got := ScoreRestaurant(4.8, 2000, 1.0)
	if math.Abs(got-84.2) > 1e-9 {
		t.Fatalf("got %v, want 84.2", got)
	}

	got = ScoreRestaurant(4.6, 1000, 2.5)
	if math.Abs(got-75.9) > 1e-9 {
		t.Fatalf("got %v, want 75.9", got)
	}
}

func TestScoreRestaurantDistanceDecay(t *testing.T) {
	// Inside the 3 km band the decay is gentle, beyond it steep, and the
	// sub-score floors at zero instead of going negative.
	near := ScoreRestaurant(4.0, 0, 0)
	edge := ScoreRestaurant(4.0, 0, 3)
	far := ScoreRestaurant(4.0, 0, 8)
	veryFar := ScoreRestaurant(4.0, 0, 50)

	if !(near > edge && edge > far) {
		t.Fatalf("scores must decrease with distance: %v, %v, %v", near, edge, far)
	}
	// Beyond 10 km the distance term is exhausted; only rating remains.
	if math.Abs(veryFar-0.7*(4.0/5)*100) > 1e-9 {
		t.Fatalf("score beyond the decay range = %v, want the rating term alone", veryFar)
	}
}

func TestRankRestaurants(t *testing.T) {
	candidates := []domain.RestaurantCandidate{
		{ID: "b", Name: "B", Rating: 4.6, ReviewCount: 1000, DistanceKm: 2.5},
		{ID: "a", Name: "A", Rating: 4.8, ReviewCount: 2000, DistanceKm: 1.0},
	}

	ranked := RankRestaurants(candidates)

	if ranked[0].ID != "a" || ranked[1].ID != "b" {
		t.Fatalf("order = [%s, %s], want [a, b]", ranked[0].ID, ranked[1].ID)
	}
	if math.Abs(ranked[0].Score-84.2) > 1e-9 || math.Abs(ranked[1].Score-75.9) > 1e-9 {
		t.Fatalf("scores = %v, %v", ranked[0].Score, ranked[1].Score)
	}

	// Input remains untouched.
	if candidates[0].Score != 0 {
		t.Fatal("ranking must not mutate its input")
	}
}

func TestRankRestaurantsIdempotent(t *testing.T) {
	candidates := []domain.RestaurantCandidate{
		{ID: "a", Rating: 4.8, ReviewCount: 2000, DistanceKm: 1.0},
		{ID: "b", Rating: 4.6, ReviewCount: 1000, DistanceKm: 2.5},
		{ID: "c", Rating: 4.6, ReviewCount: 1000, DistanceKm: 1.5},
	}

	once := RankRestaurants(candidates)
	twice := RankRestaurants(once)

	for i := range once {
		if once[i].ID != twice[i].ID || once[i].Score != twice[i].Score {
			t.Fatalf("re-ranking changed position %d: %+v vs %+v", i, once[i], twice[i])
		}
	}
}

func TestRankRestaurantsTieBreaks(t *testing.T) {
	// Same rating and review count; the closer one wins the tie.
	candidates := []domain.RestaurantCandidate{
		{ID: "far", Rating: 4.5, ReviewCount: 500, DistanceKm: 2.0},
		{ID: "near", Rating: 4.5, ReviewCount: 500, DistanceKm: 1.0},
	}

	ranked := RankRestaurants(candidates)
	if ranked[0].ID != "near" {
		t.Fatalf("expected the nearer candidate first, got %s", ranked[0].ID)
	}
}

func TestRankRestaurantsSingleton(t *testing.T) {
	ranked := RankRestaurants([]domain.RestaurantCandidate{{ID: "only", Rating: 4.0, ReviewCount: 10, DistanceKm: 0.5}})
	if len(ranked) != 1 || ranked[0].ID != "only" {
		t.Fatalf("got %+v", ranked)
	}
	if ranked[0].Score <= 0 {
		t.Fatalf("score = %v, want positive", ranked[0].Score)
	}

	if out := RankRestaurants(nil); len(out) != 0 {
		t.Fatalf("got %+v, want empty", out)
	}
}
