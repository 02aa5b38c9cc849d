package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"meetspot/internal/api/dto"
	"meetspot/internal/domain"
	"meetspot/internal/metrics"
	"meetspot/internal/services"
)

// RecommendHandler exposes the planning pipeline over HTTP.
type RecommendHandler struct {
	Planner  *services.Planner
	Validate *validator.Validate
}

// Recommend handles POST /api/v1/recommendations: decode and validate
// the request, run the planner, and map domain errors to status codes.
func (h *RecommendHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	var req dto.RecommendRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			writeError(w, r, http.StatusBadRequest, "invalid field: "+verrs[0].Namespace())
			return
		}
		writeError(w, r, http.StatusBadRequest, "invalid request")
		return
	}

	metrics.RunsTotal.Inc()

	rec, err := h.Planner.Recommend(r.Context(), toServiceRequest(req))
	if err != nil {
		h.writeRecommendError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, toResponse(rec))
}

func (h *RecommendHandler) writeRecommendError(w http.ResponseWriter, r *http.Request, err error) {
	metrics.RunFailuresTotal.Inc()

	switch {
	case errors.Is(err, domain.ErrEmptyInput),
		errors.Is(err, domain.ErrInvalidTime),
		errors.Is(err, domain.ErrNegativeDuration):
		writeError(w, r, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNoUsableParticipants),
		errors.Is(err, domain.ErrNoRestaurants):
		writeError(w, r, http.StatusUnprocessableEntity, err.Error())
	default:
		log.Error().Err(err).Str("path", r.URL.Path).Msg("recommendation run failed")
		writeError(w, r, http.StatusInternalServerError, "internal server error")
	}
}

func toServiceRequest(req dto.RecommendRequest) services.RecommendRequest {
	out := services.RecommendRequest{
		City:          req.City,
		Cuisine:       req.Cuisine,
		MeetingTime:   req.MeetingTime,
		BufferMinutes: req.BufferMinutes,
	}

	out.Participants = make([]services.ParticipantInput, 0, len(req.Participants))
	for _, p := range req.Participants {
		out.Participants = append(out.Participants, services.ParticipantInput{
			Name:    p.Name,
			Address: p.Address,
		})
	}

	if req.SubScores != nil {
		out.SubScores = &services.VenueSubScores{
			Distance:      req.SubScores.Distance,
			Facilities:    req.SubScores.Facilities,
			Accessibility: req.SubScores.Accessibility,
		}
	}

	return out
}

func toResponse(rec *services.Recommendation) dto.RecommendResponse {
	res := dto.RecommendResponse{
		RunID: rec.RunID,
		Venue: dto.VenueResponse{
			Location:           toCoordinate(rec.Venue.Location),
			Label:              rec.Venue.Label,
			Dispersion:         toDispersion(rec.Venue.Dispersion),
			DistanceScore:      rec.Venue.DistanceScore,
			FacilitiesScore:    rec.Venue.FacilitiesScore,
			AccessibilityScore: rec.Venue.AccessibilityScore,
			Score:              rec.VenueScore,
		},
		Unresolved:          rec.Unresolved,
		LowConfidenceRoutes: rec.LowConfidence,
		TransitAdvisory:     rec.TransitAdvisory,
	}

	res.Participants = make([]dto.ParticipantResponse, 0, len(rec.Participants))
	for _, p := range rec.Participants {
		res.Participants = append(res.Participants, toParticipant(p))
	}

	for _, plan := range rec.Plans {
		res.Plans = append(res.Plans, dto.PlanResponse{
			Name:       plan.Name,
			Priority:   plan.Priority,
			Focus:      toCoordinate(plan.Focus),
			Label:      plan.Label,
			Dispersion: toDispersion(plan.Dispersion),
		})
	}

	res.Restaurants = make([]dto.RestaurantResponse, 0, len(rec.Restaurants))
	for _, rc := range rec.Restaurants {
		res.Restaurants = append(res.Restaurants, dto.RestaurantResponse{
			ID:          rc.ID,
			Name:        rc.Name,
			Address:     rc.Address,
			Location:    toCoordinate(rc.Location),
			Rating:      rc.Rating,
			ReviewCount: rc.ReviewCount,
			DistanceKm:  rc.DistanceKm,
			AverageCost: rc.AverageCost,
			OpenHours:   rc.OpenHours,
			Score:       rc.Score,
		})
	}

	for _, d := range rec.Departures {
		res.Departures = append(res.Departures, dto.DepartureResponse{
			Name:          d.Name,
			TravelMinutes: d.TravelMinutes,
			BufferMinutes: d.BufferMinutes,
			Departure:     d.Departure,
			Arrival:       d.Arrival,
			PreviousDay:   d.PreviousDay,
		})
	}

	return res
}

func toParticipant(p domain.Participant) dto.ParticipantResponse {
	out := dto.ParticipantResponse{
		Name:            p.Name,
		Address:         p.Address,
		Location:        toCoordinate(p.Location),
		StraightLineKm:  p.StraightLineKm,
		FairnessMinutes: p.FairnessMinutes,
		Driving:         toRoute(p.Driving),
		Transit:         toRoute(p.Transit),
		Cycling:         toRoute(p.Cycling),
	}

	out.Modes = make([]dto.ModeOptionResponse, 0, len(p.Modes))
	for _, m := range p.Modes {
		out.Modes = append(out.Modes, dto.ModeOptionResponse{
			Mode:     string(m.Mode),
			Minutes:  m.Minutes,
			Priority: m.Priority,
		})
	}

	return out
}

func toRoute(r *domain.Route) *dto.RouteResponse {
	if r == nil {
		return nil
	}

	out := &dto.RouteResponse{Minutes: r.Minutes, DistanceKm: r.DistanceKm}
	if r.Transit != nil {
		out.Transit = &dto.TransitDetailResponse{
			WalkingMinutes:   r.Transit.WalkingMinutes,
			InVehicleMinutes: r.Transit.InVehicleMinutes,
			TransferMinutes:  r.Transit.TransferMinutes,
			Transfers:        r.Transit.Transfers,
		}
	}

	return out
}

func toCoordinate(c domain.Coordinate) dto.CoordinateResponse {
	return dto.CoordinateResponse{Lon: c.Lon, Lat: c.Lat}
}

func toDispersion(d domain.DispersionResult) dto.DispersionResponse {
	return dto.DispersionResponse{
		MeanMinutes:    d.Mean,
		Variance:       d.Variance,
		RangeMinutes:   d.Range,
		FairnessTier:   d.Tier,
		FairnessRating: d.Rating,
	}
}
