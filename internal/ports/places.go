package ports

import (
	"context"

	"meetspot/internal/domain"
)

// PlaceSummary is one entry of a text-search result list.
type PlaceSummary struct {
	ID      string
	Name    string
	Address string
}

// PlaceDetail is the full record behind a place identifier. Numeric
// fields arrive string-encoded on the wire; adapters parse them before
// the record enters the pipeline, and a record whose rating cannot be
// parsed is treated as unresolved.
type PlaceDetail struct {
	ID       string
	Name     string
	Address  string
	Location domain.Coordinate

	Rating      float64
	ReviewCount int
	AverageCost float64
	OpenHours   string
}

// Contract for point-of-interest search and detail retrieval. Detail
// returns nil with a nil error when the place does not exist or its
// record is unusable.
type PlaceProvider interface {
	Search(ctx context.Context, keywords, city, typeFilter string) ([]PlaceSummary, error)
	Detail(ctx context.Context, id string) (*PlaceDetail, error)
}
