package amap

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/rs/zerolog/log"

	"meetspot/internal/metrics"
	"meetspot/internal/platform/obs"
	"meetspot/internal/ports"
)

// Dining category in the provider's POI taxonomy; applied when the
// caller passes no type filter.
const diningTypeCode = "050000"

type placeSearchResponse struct {
	Status string `json:"status"`
	Info   string `json:"info"`
	Pois   []struct {
		ID      string `json:"id"`
		Name    string `json:"name"`
		Address string `json:"address"`
	} `json:"pois"`
}

type placeDetailResponse struct {
	Status string `json:"status"`
	Info   string `json:"info"`
	Pois   []struct {
		ID         string `json:"id"`
		Name       string `json:"name"`
		Address    string `json:"address"`
		Location   string `json:"location"`
		CommentNum string `json:"comment_num"`
		BizExt     struct {
			Rating   string `json:"rating"`
			Cost     string `json:"cost"`
			OpenTime string `json:"opentime"`
		} `json:"biz_ext"`
	} `json:"pois"`
}

// Search runs a keyword POI search scoped to a city. Zero results are
// an empty list, not an error.
func (c *Client) Search(ctx context.Context, keywords, city, typeFilter string) (_ []ports.PlaceSummary, err error) {
	defer obs.Time(ctx, "amap.Search")(&err)

	if typeFilter == "" {
		typeFilter = diningTypeCode
	}

	q := url.Values{}
	q.Set("keywords", keywords)
	q.Set("city", city)
	q.Set("citylimit", "true")
	q.Set("types", typeFilter)
	q.Set("offset", "25")

	var resp placeSearchResponse
	if err := c.getJSON(ctx, "/v3/place/text", q, &resp); err != nil {
		return nil, fmt.Errorf("amap place search %q: %w", keywords, err)
	}
	if resp.Status != okStatus {
		return nil, fmt.Errorf("amap place search %q: provider error: %s", keywords, resp.Info)
	}

	out := make([]ports.PlaceSummary, 0, len(resp.Pois))
	for _, p := range resp.Pois {
		if p.ID == "" {
			continue
		}
		out = append(out, ports.PlaceSummary{ID: p.ID, Name: p.Name, Address: p.Address})
	}

	return out, nil
}

// Detail fetches the full record behind a place id. String-encoded
// numerics are parsed here; a record whose rating or location cannot be
// parsed is treated as unresolved (nil, nil) and dropped upstream.
func (c *Client) Detail(ctx context.Context, id string) (_ *ports.PlaceDetail, err error) {
	defer obs.Time(ctx, "amap.Detail")(&err)

	if c.placeCache != nil {
		hit, err := c.placeCache.Get(ctx, id)
		if err != nil {
			log.Warn().Err(err).Str("id", id).Msg("place cache read failed")
		} else if hit != nil {
			metrics.CacheHitsTotal.WithLabelValues("place").Inc()
			return hit, nil
		}
		metrics.CacheMissesTotal.WithLabelValues("place").Inc()
	}

	q := url.Values{}
	q.Set("id", id)

	var resp placeDetailResponse
	if err := c.getJSON(ctx, "/v3/place/detail", q, &resp); err != nil {
		return nil, fmt.Errorf("amap place detail %q: %w", id, err)
	}
	if resp.Status != okStatus {
		return nil, fmt.Errorf("amap place detail %q: provider error: %s", id, resp.Info)
	}
	if len(resp.Pois) == 0 {
		return nil, nil
	}

	poi := resp.Pois[0]

	location, ok := parseCoordinate(poi.Location)
	if !ok {
		return nil, nil
	}

	rating, err := strconv.ParseFloat(poi.BizExt.Rating, 64)
	if err != nil {
		return nil, nil
	}

	detail := &ports.PlaceDetail{
		ID:        poi.ID,
		Name:      poi.Name,
		Address:   poi.Address,
		Location:  location,
		Rating:    rating,
		OpenHours: poi.BizExt.OpenTime,
	}
	// Popularity and cost are optional; absence means zero, not invalid.
	if n, err := strconv.Atoi(poi.CommentNum); err == nil && n > 0 {
		detail.ReviewCount = n
	}
	if cost, err := strconv.ParseFloat(poi.BizExt.Cost, 64); err == nil && cost > 0 {
		detail.AverageCost = cost
	}

	if c.placeCache != nil {
		if err := c.placeCache.Put(ctx, id, *detail); err != nil {
			log.Warn().Err(err).Str("id", id).Msg("place cache write failed")
		}
	}

	return detail, nil
}
