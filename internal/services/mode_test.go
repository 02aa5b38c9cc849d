package services

import (
	"testing"

	"meetspot/internal/domain"
)

func TestRecommendModesShortDistance(t *testing.T) {
	cycling := 25.0
	got := RecommendModes(2.0, 15, 28, &cycling)

	want := []domain.ModeOption{
		{Mode: domain.ModeCycling, Minutes: 25, Priority: 1},
		{Mode: domain.ModeTransit, Minutes: 28, Priority: 2},
		{Mode: domain.ModeDriving, Minutes: 15, Priority: 3},
	}

	if len(got) != len(want) {
		t.Fatalf("got %d options, want %d: %+v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("option %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestRecommendModesMediumDistance(t *testing.T) {
	got := RecommendModes(7.5, 35, 40, nil)

	want := []domain.ModeOption{
		{Mode: domain.ModeDriving, Minutes: 35, Priority: 1},
		{Mode: domain.ModeTransit, Minutes: 40, Priority: 2},
	}

	if len(got) != len(want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("option %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestRecommendModesLongDistance(t *testing.T) {
	got := RecommendModes(25, 55, 150, nil)

	// Transit misses its 120-minute threshold; only driving qualifies.
	if len(got) != 1 {
		t.Fatalf("got %+v, want exactly one option", got)
	}
	if got[0] != (domain.ModeOption{Mode: domain.ModeDriving, Minutes: 55, Priority: 1}) {
		t.Fatalf("got %+v", got[0])
	}
}

func TestRecommendModesThresholdIsExclusive(t *testing.T) {
	// Exactly at the driving threshold for the medium band: not under it.
	got := RecommendModes(7.5, 40, 45, nil)
	for _, opt := range got {
		if opt.Mode == domain.ModeDriving || opt.Mode == domain.ModeTransit {
			t.Fatalf("boundary time must not qualify, got %+v", got)
		}
	}
}

func TestRecommendModesSentinel(t *testing.T) {
	got := RecommendModes(2.0, 45, 60, nil)

	if len(got) != 1 {
		t.Fatalf("got %+v, want the single sentinel entry", got)
	}
	sentinel := domain.ModeOption{Mode: domain.ModeNone, Minutes: 999, Priority: 0}
	if got[0] != sentinel {
		t.Fatalf("got %+v, want %+v", got[0], sentinel)
	}
}

func TestRecommendModesNoCyclingMeasurement(t *testing.T) {
	got := RecommendModes(2.0, 15, 28, nil)

	for _, opt := range got {
		if opt.Mode == domain.ModeCycling {
			t.Fatalf("cycling must be skipped without a measurement: %+v", got)
		}
	}
	if len(got) != 2 {
		t.Fatalf("got %+v, want transit and driving", got)
	}
}
