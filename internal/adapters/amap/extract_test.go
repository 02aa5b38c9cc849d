package amap

import (
	"encoding/json"
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func decodeInto[T any](t *testing.T, raw string) T {
	t.Helper()
	var out T
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		t.Fatalf("decode fixture: %v", err)
	}
	return out
}

func TestParsePositive(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want float64
		ok   bool
	}{
		{"plain", "1560", 1560, true},
		{"decimal", "12.5", 12.5, true},
		{"empty", "", 0, false},
		{"zero", "0", 0, false},
		{"negative", "-30", 0, false},
		{"garbage", "n/a", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parsePositive(tt.raw)
			if ok != tt.ok || !almostEqual(got, tt.want) {
				t.Fatalf("parsePositive(%q) = %v, %v; want %v, %v", tt.raw, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestExtractDrivingMinutes(t *testing.T) {
	r := decodeInto[drivingResponse](t, `{
		"status": "1",
		"route": {
			"distance": "15600",
			"paths": [
				{"duration": "1560", "distance": "15600"},
				{"duration": "1200", "distance": "14000"}
			]
		}
	}`)

	got, ok := extractDrivingMinutes(r)
	if !ok {
		t.Fatal("expected a duration")
	}
	// 1560 seconds is exactly 26 minutes, and only the first path counts.
	if !almostEqual(got, 26.0) {
		t.Fatalf("got %v minutes, want 26", got)
	}

	empty := decodeInto[drivingResponse](t, `{"status": "1", "route": {"paths": []}}`)
	if _, ok := extractDrivingMinutes(empty); ok {
		t.Fatal("expected no duration for empty paths")
	}

	blank := decodeInto[drivingResponse](t, `{"status": "1", "route": {"paths": [{"duration": ""}]}}`)
	if _, ok := extractDrivingMinutes(blank); ok {
		t.Fatal("expected no duration for blank field")
	}
}

func TestExtractTransitMinutesPicksShortest(t *testing.T) {
	r := decodeInto[transitResponse](t, `{
		"status": "1",
		"route": {
			"transits": [
				{"duration": "3000"},
				{"duration": "2400"},
				{"duration": ""},
				{"duration": "2700"}
			]
		}
	}`)

	got, ok := extractTransitMinutes(r)
	if !ok {
		t.Fatal("expected a duration")
	}
	if !almostEqual(got, 40.0) {
		t.Fatalf("got %v minutes, want 40", got)
	}

	none := decodeInto[transitResponse](t, `{
		"status": "1",
		"route": {"transits": [{"duration": ""}, {"duration": "bad"}]}
	}`)
	if _, ok := extractTransitMinutes(none); ok {
		t.Fatal("expected no duration when every itinerary is unusable")
	}
}

func TestExtractTransitDetail(t *testing.T) {
	// Two itineraries; the shorter one mixes one bus leg and one railway
	// leg with walking on both segments.
	r := decodeInto[transitResponse](t, `{
		"status": "1",
		"route": {
			"transits": [
				{"duration": "3600"},
				{
					"duration": "2400",
					"segments": [
						{
							"walking": {"duration": "300"},
							"bus": {"buslines": [{"duration": "900"}]}
						},
						{
							"walking": {"duration": "120"},
							"railway": {"duration": "600"}
						}
					]
				}
			]
		}
	}`)

	d, ok := extractTransitDetail(r)
	if !ok {
		t.Fatal("expected detail")
	}
	if !almostEqual(d.WalkingMinutes, 7.0) {
		t.Fatalf("walking = %v, want 7", d.WalkingMinutes)
	}
	if !almostEqual(d.InVehicleMinutes, 25.0) {
		t.Fatalf("in-vehicle = %v, want 25", d.InVehicleMinutes)
	}
	if d.Transfers != 2 {
		t.Fatalf("transfers = %d, want 2", d.Transfers)
	}
	if !almostEqual(d.TransferMinutes, 8.0) {
		t.Fatalf("transfer minutes = %v, want 8", d.TransferMinutes)
	}

	empty := decodeInto[transitResponse](t, `{"status": "1", "route": {"transits": []}}`)
	if _, ok := extractTransitDetail(empty); ok {
		t.Fatal("expected no detail without itineraries")
	}
}

func TestExtractCyclingMinutes(t *testing.T) {
	r := decodeInto[cyclingResponse](t, `{"route": {"duration": "900", "distance": "3200"}}`)

	got, ok := extractCyclingMinutes(r)
	if !ok || !almostEqual(got, 15.0) {
		t.Fatalf("got %v, %v; want 15, true", got, ok)
	}

	empty := decodeInto[cyclingResponse](t, `{"route": {}}`)
	if _, ok := extractCyclingMinutes(empty); ok {
		t.Fatal("expected no duration for empty response")
	}
}

func TestExtractDistanceKm(t *testing.T) {
	got, ok := extractDistanceKm("15600")
	if !ok || !almostEqual(got, 15.6) {
		t.Fatalf("got %v, %v; want 15.6, true", got, ok)
	}
	if _, ok := extractDistanceKm(""); ok {
		t.Fatal("expected failure on empty distance")
	}
}

func TestParseCoordinate(t *testing.T) {
	c, ok := parseCoordinate("116.397428,39.909230")
	if !ok {
		t.Fatal("expected parse success")
	}
	if !almostEqual(c.Lon, 116.397428) || !almostEqual(c.Lat, 39.909230) {
		t.Fatalf("got %+v", c)
	}

	for _, raw := range []string{"", "116.4", "a,b", "116.4;39.9"} {
		if _, ok := parseCoordinate(raw); ok {
			t.Fatalf("expected failure for %q", raw)
		}
	}
}
