package amap

import (
	"context"
	"fmt"
	"net/url"

	"github.com/rs/zerolog/log"

	"meetspot/internal/domain"
	"meetspot/internal/metrics"
	"meetspot/internal/platform/obs"
	"meetspot/internal/ports"
)

type geocodeResponse struct {
	Status   string `json:"status"`
	Info     string `json:"info"`
	Geocodes []struct {
		FormattedAddress string `json:"formatted_address"`
		Level            string `json:"level"`
		Location         string `json:"location"`
	} `json:"geocodes"`
}

type regeoResponse struct {
	Status    string `json:"status"`
	Info      string `json:"info"`
	Regeocode struct {
		FormattedAddress string `json:"formatted_address"`
		AddressComponent struct {
			BusinessAreas []struct {
				Name string `json:"name"`
			} `json:"businessAreas"`
		} `json:"addressComponent"`
	} `json:"regeocode"`
}

// Administrative specificity of geocode matches, higher = more precise.
// Unknown levels rank lowest so a vague match never beats a precise one.
var levelRank = map[string]int{
	"门牌号":    9,
	"单元号":    9,
	"兴趣点":    8,
	"道路交叉路口": 7,
	"公交地铁站点": 7,
	"道路":     6,
	"热点商圈":   5,
	"村庄":     4,
	"乡镇":     3,
	"区县":     2,
	"市":      1,
	"省":      0,
}

// Geocode resolves an address within a city. Multiple matches are
// disambiguated by administrative specificity; zero matches return nil
// without error ("address unresolved").
func (c *Client) Geocode(ctx context.Context, address, city string) (_ *ports.GeocodeResult, err error) {
	defer obs.Time(ctx, "amap.Geocode")(&err)

	if c.geocodeCache != nil {
		hit, err := c.geocodeCache.Get(ctx, address, city)
		if err != nil {
			log.Warn().Err(err).Msg("geocode cache read failed")
		} else if hit != nil {
			metrics.CacheHitsTotal.WithLabelValues("geocode").Inc()
			return hit, nil
		}
		metrics.CacheMissesTotal.WithLabelValues("geocode").Inc()
	}

	q := url.Values{}
	q.Set("address", address)
	if city != "" {
		q.Set("city", city)
	}

	var resp geocodeResponse
	if err := c.getJSON(ctx, "/v3/geocode/geo", q, &resp); err != nil {
		return nil, fmt.Errorf("amap geocode %q: %w", address, err)
	}
	if resp.Status != okStatus {
		return nil, fmt.Errorf("amap geocode %q: provider error: %s", address, resp.Info)
	}
	if len(resp.Geocodes) == 0 {
		return nil, nil
	}

	best := 0
	for i, g := range resp.Geocodes {
		if levelRank[g.Level] > levelRank[resp.Geocodes[best].Level] {
			best = i
		}
	}

	coord, ok := parseCoordinate(resp.Geocodes[best].Location)
	if !ok {
		return nil, nil
	}

	result := &ports.GeocodeResult{
		Location:         coord,
		FormattedAddress: resp.Geocodes[best].FormattedAddress,
		AdminLevel:       resp.Geocodes[best].Level,
	}

	if c.geocodeCache != nil {
		if err := c.geocodeCache.Put(ctx, address, city, *result); err != nil {
			log.Warn().Err(err).Msg("geocode cache write failed")
		}
	}

	return result, nil
}

// ReverseGeocode describes a coordinate: formatted address plus nearby
// business districts.
func (c *Client) ReverseGeocode(ctx context.Context, location domain.Coordinate) (_ *ports.ReverseResult, err error) {
	defer obs.Time(ctx, "amap.ReverseGeocode")(&err)

	q := url.Values{}
	q.Set("location", location.String())
	q.Set("extensions", "all")

	var resp regeoResponse
	if err := c.getJSON(ctx, "/v3/geocode/regeo", q, &resp); err != nil {
		return nil, fmt.Errorf("amap regeo %s: %w", location, err)
	}
	if resp.Status != okStatus {
		return nil, fmt.Errorf("amap regeo %s: provider error: %s", location, resp.Info)
	}

	out := &ports.ReverseResult{FormattedAddress: resp.Regeocode.FormattedAddress}
	for _, b := range resp.Regeocode.AddressComponent.BusinessAreas {
		if b.Name != "" {
			out.BusinessDistricts = append(out.BusinessDistricts, b.Name)
		}
	}

	return out, nil
}
