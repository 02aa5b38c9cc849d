// Package amap adapts the AMap (高德) web-service REST API to the
// provider ports: geocoding, direction lookups for driving, transit,
// and cycling, and place search/detail. Lookup results are cached
// behind the cache ports so repeated runs avoid repeat calls.
package amap

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"meetspot/internal/domain"
	"meetspot/internal/ports"
)

const defaultBaseURL = "https://restapi.amap.com"

// Client calls the AMap REST API. It coordinates coordinate formatting,
// persistent lookup caching, and retry/backoff on transient failures.
// Safe for concurrent use.
type Client struct {
	session *http.Client
	key     string
	baseURL string

	geocodeCache ports.GeocodeCache
	routeCache   ports.RouteCache
	placeCache   ports.PlaceCache
}

// NewClient builds a provider client. Any cache may be nil, in which
// case every lookup goes to the network.
func NewClient(
	key string,
	geocodeCache ports.GeocodeCache,
	routeCache ports.RouteCache,
	placeCache ports.PlaceCache,
) (*Client, error) {
	if key == "" {
		return nil, errors.New("amap: api key is empty")
	}

	return &Client{
		session:      &http.Client{Timeout: 10 * time.Second},
		key:          key,
		baseURL:      defaultBaseURL,
		geocodeCache: geocodeCache,
		routeCache:   routeCache,
		placeCache:   placeCache,
	}, nil
}

// okStatus is the provider's success marker; any other value carries an
// error description in the info field.
const okStatus = "1"

// parseCoordinate decodes the provider's "lon,lat" location format.
func parseCoordinate(raw string) (domain.Coordinate, bool) {
	parts := strings.Split(strings.TrimSpace(raw), ",")
	if len(parts) != 2 {
		return domain.Coordinate{}, false
	}

	lon, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return domain.Coordinate{}, false
	}
	lat, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return domain.Coordinate{}, false
	}

	return domain.Coordinate{Lon: lon, Lat: lat}, true
}
