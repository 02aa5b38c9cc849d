package ports

import (
	"context"

	"meetspot/internal/domain"
)

// GeocodeResult is one resolved address.
type GeocodeResult struct {
	Location         domain.Coordinate
	FormattedAddress string
	// AdminLevel is the administrative specificity of the match as
	// reported by the provider.
	AdminLevel string
}

// ReverseResult describes the surroundings of a coordinate.
type ReverseResult struct {
	FormattedAddress string
	// BusinessDistricts lists nearby commercial districts, most relevant
	// first. Empty when the area has none.
	BusinessDistricts []string
}

// Contract for resolving addresses to coordinates and back. A nil result
// with a nil error means the address (or area) could not be resolved;
// absence is an expected outcome, not a failure.
type Geocoder interface {
	Geocode(ctx context.Context, address, city string) (*GeocodeResult, error)
	ReverseGeocode(ctx context.Context, location domain.Coordinate) (*ReverseResult, error)
}
