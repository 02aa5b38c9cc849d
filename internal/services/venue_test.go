package services

import (
	"math"
	"testing"

	"meetspot/internal/domain"
)

func TestTimeScore(t *testing.T) {
	tests := []struct {
		tier int
		want float64
	}{
		{5, 100},
		{4, 80},
		{3, 60},
		{2, 40},
		// Unknown tiers fall back to the floor score.
		{0, 40},
		{7, 40},
	}

	for _, tt := range tests {
		got := TimeScore(domain.DispersionResult{Tier: tt.tier})
		if got != tt.want {
			t.Fatalf("TimeScore(tier=%d) = %v, want %v", tt.tier, got, tt.want)
		}
	}
}

func TestScoreVenue(t *testing.T) {
	d := domain.DispersionResult{Tier: 5}

	// 0.5*100 + 0.25*80 + 0.15*60 + 0.10*90 = 88
	got := ScoreVenue(d, 80, 60, 90)
	if math.Abs(got-88) > 1e-9 {
		t.Fatalf("got %v, want 88", got)
	}

	// All sub-scores maxed must yield exactly 100.
	if got := ScoreVenue(d, 100, 100, 100); math.Abs(got-100) > 1e-9 {
		t.Fatalf("got %v, want 100", got)
	}
}

func TestScoreVenueTimeDominates(t *testing.T) {
	best := domain.DispersionResult{Tier: 5}
	worst := domain.DispersionResult{Tier: 2}

	// A perfect venue with worst-case fairness should not beat a mediocre
	// venue with ideal fairness.
	fairButPlain := ScoreVenue(best, 50, 50, 50)
	unfairButNice := ScoreVenue(worst, 100, 100, 100)

	if fairButPlain <= unfairButNice {
		t.Fatalf("fairness must dominate: %v <= %v", fairButPlain, unfairButNice)
	}
}
