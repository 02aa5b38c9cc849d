package amap

import (
	"context"
	"fmt"
	"net/url"

	"github.com/rs/zerolog/log"

	"meetspot/internal/domain"
	"meetspot/internal/metrics"
	"meetspot/internal/platform/obs"
)

type drivingResponse struct {
	Status string `json:"status"`
	Info   string `json:"info"`
	Route  struct {
		Distance string `json:"distance"`
		Paths    []struct {
			Duration string `json:"duration"`
			Distance string `json:"distance"`
		} `json:"paths"`
	} `json:"route"`
}

type transitResponse struct {
	Status string `json:"status"`
	Info   string `json:"info"`
	Route  struct {
		Distance string             `json:"distance"`
		Transits []transitItinerary `json:"transits"`
	} `json:"route"`
}

type transitItinerary struct {
	Duration string `json:"duration"`
	Segments []struct {
		Walking struct {
			Duration string `json:"duration"`
		} `json:"walking"`
		Bus struct {
			Buslines []struct {
				Duration string `json:"duration"`
			} `json:"buslines"`
		} `json:"bus"`
		Railway struct {
			Duration string `json:"duration"`
		} `json:"railway"`
	} `json:"segments"`
}

// The v4 cycling endpoint signals errors via errcode rather than the
// v3 status field; an absent route already covers the failure cases we
// care about.
type cyclingResponse struct {
	Route struct {
		Duration string `json:"duration"`
		Distance string `json:"distance"`
	} `json:"route"`
}

// Driving returns the fastest driving route between two coordinates, or
// nil when the provider finds no path.
func (c *Client) Driving(ctx context.Context, origin, destination domain.Coordinate) (_ *domain.Route, err error) {
	defer obs.Time(ctx, "amap.Driving")(&err)

	if hit := c.cachedRoute(ctx, origin, destination, domain.ModeDriving); hit != nil {
		return hit, nil
	}

	q := url.Values{}
	q.Set("origin", origin.String())
	q.Set("destination", destination.String())
	q.Set("extensions", "base")

	var resp drivingResponse
	if err := c.getJSON(ctx, "/v3/direction/driving", q, &resp); err != nil {
		return nil, fmt.Errorf("amap driving: %w", err)
	}
	if resp.Status != okStatus {
		return nil, fmt.Errorf("amap driving: provider error: %s", resp.Info)
	}

	minutes, ok := extractDrivingMinutes(resp)
	if !ok {
		return nil, nil
	}
	km, ok := extractDistanceKm(resp.Route.Distance)
	if !ok {
		return nil, nil
	}

	route := &domain.Route{Mode: domain.ModeDriving, Minutes: minutes, DistanceKm: km}
	c.storeRoute(ctx, origin, destination, route)
	return route, nil
}

// Transit returns the shortest of the provider's transit itineraries,
// decomposed into walking, in-vehicle, and estimated transfer time, or
// nil when no itinerary exists.
func (c *Client) Transit(ctx context.Context, origin, destination domain.Coordinate, city string) (_ *domain.Route, err error) {
	defer obs.Time(ctx, "amap.Transit")(&err)

	if hit := c.cachedRoute(ctx, origin, destination, domain.ModeTransit); hit != nil {
		return hit, nil
	}

	q := url.Values{}
	q.Set("origin", origin.String())
	q.Set("destination", destination.String())
	if city != "" {
		q.Set("city", city)
		q.Set("cityd", city)
	}

	var resp transitResponse
	if err := c.getJSON(ctx, "/v3/direction/transit/integrated", q, &resp); err != nil {
		return nil, fmt.Errorf("amap transit: %w", err)
	}
	if resp.Status != okStatus {
		return nil, fmt.Errorf("amap transit: provider error: %s", resp.Info)
	}

	minutes, ok := extractTransitMinutes(resp)
	if !ok {
		return nil, nil
	}
	detail, _ := extractTransitDetail(resp)

	km, ok := extractDistanceKm(resp.Route.Distance)
	if !ok {
		km = 0
	}

	route := &domain.Route{
		Mode:       domain.ModeTransit,
		Minutes:    minutes,
		DistanceKm: km,
		Transit:    detail,
	}
	c.storeRoute(ctx, origin, destination, route)
	return route, nil
}

// Cycling returns the single cycling route, or nil when none exists.
func (c *Client) Cycling(ctx context.Context, origin, destination domain.Coordinate) (_ *domain.Route, err error) {
	defer obs.Time(ctx, "amap.Cycling")(&err)

	if hit := c.cachedRoute(ctx, origin, destination, domain.ModeCycling); hit != nil {
		return hit, nil
	}

	q := url.Values{}
	q.Set("origin", origin.String())
	q.Set("destination", destination.String())

	var resp cyclingResponse
	if err := c.getJSON(ctx, "/v4/direction/bicycling", q, &resp); err != nil {
		return nil, fmt.Errorf("amap cycling: %w", err)
	}

	minutes, ok := extractCyclingMinutes(resp)
	if !ok {
		return nil, nil
	}
	km, ok := extractDistanceKm(resp.Route.Distance)
	if !ok {
		return nil, nil
	}

	route := &domain.Route{Mode: domain.ModeCycling, Minutes: minutes, DistanceKm: km}
	c.storeRoute(ctx, origin, destination, route)
	return route, nil
}

func (c *Client) cachedRoute(ctx context.Context, origin, destination domain.Coordinate, mode domain.TransportMode) *domain.Route {
	if c.routeCache == nil {
		return nil
	}

	hit, err := c.routeCache.Get(ctx, origin, destination, mode)
	if err != nil {
		log.Warn().Err(err).Str("mode", string(mode)).Msg("route cache read failed")
		return nil
	}
	if hit == nil {
		metrics.CacheMissesTotal.WithLabelValues("route").Inc()
		return nil
	}

	metrics.CacheHitsTotal.WithLabelValues("route").Inc()
	return hit
}

func (c *Client) storeRoute(ctx context.Context, origin, destination domain.Coordinate, route *domain.Route) {
	if c.routeCache == nil || route == nil {
		return
	}
	if err := c.routeCache.Put(ctx, origin, destination, *route); err != nil {
		log.Warn().Err(err).Str("mode", string(route.Mode)).Msg("route cache write failed")
	}
}
