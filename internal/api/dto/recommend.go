// Package dto holds the HTTP wire types. They are deliberately separate
// from the domain types so the JSON contract can evolve without touching
// the planning core.
package dto

// ParticipantRequest names one attendee and their home address.
type ParticipantRequest struct {
	Name    string `json:"name" validate:"required"`
	Address string `json:"address" validate:"required"`
}

// SubScoresRequest overrides the derived venue sub-scores.
type SubScoresRequest struct {
	Distance      float64 `json:"distance" validate:"gte=0,lte=100"`
	Facilities    float64 `json:"facilities" validate:"gte=0,lte=100"`
	Accessibility float64 `json:"accessibility" validate:"gte=0,lte=100"`
}

// RecommendRequest is the body of POST /api/v1/recommendations.
type RecommendRequest struct {
	Participants []ParticipantRequest `json:"participants" validate:"required,min=1,max=20,dive"`
	City         string               `json:"city" validate:"required"`
	Cuisine      string               `json:"cuisine" validate:"required"`

	// MeetingTime is a 24-hour "HH:MM" arrival time; when present,
	// departures are scheduled for it.
	MeetingTime   string   `json:"meeting_time,omitempty" validate:"omitempty,len=5"`
	BufferMinutes *float64 `json:"buffer_minutes,omitempty" validate:"omitempty,gte=0,lt=600"`

	SubScores *SubScoresRequest `json:"sub_scores,omitempty"`
}

type CoordinateResponse struct {
	Lon float64 `json:"lon"`
	Lat float64 `json:"lat"`
}

type DispersionResponse struct {
	MeanMinutes    float64 `json:"mean_minutes"`
	Variance       float64 `json:"variance"`
	RangeMinutes   float64 `json:"range_minutes"`
	FairnessTier   int     `json:"fairness_tier"`
	FairnessRating string  `json:"fairness_rating"`
}

type TransitDetailResponse struct {
	WalkingMinutes   float64 `json:"walking_minutes"`
	InVehicleMinutes float64 `json:"in_vehicle_minutes"`
	TransferMinutes  float64 `json:"transfer_minutes"`
	Transfers        int     `json:"transfers"`
}

type RouteResponse struct {
	Minutes    float64                `json:"minutes"`
	DistanceKm float64                `json:"distance_km"`
	Transit    *TransitDetailResponse `json:"transit,omitempty"`
}

type ModeOptionResponse struct {
	Mode     string  `json:"mode"`
	Minutes  float64 `json:"minutes"`
	Priority int     `json:"priority"`
}

type ParticipantResponse struct {
	Name           string             `json:"name"`
	Address        string             `json:"address"`
	Location       CoordinateResponse `json:"location"`
	StraightLineKm float64            `json:"straight_line_km"`

	Driving *RouteResponse `json:"driving,omitempty"`
	Transit *RouteResponse `json:"transit,omitempty"`
	Cycling *RouteResponse `json:"cycling,omitempty"`

	FairnessMinutes float64              `json:"fairness_minutes"`
	Modes           []ModeOptionResponse `json:"recommended_modes"`
}

type VenueResponse struct {
	Location CoordinateResponse `json:"location"`
	Label    string             `json:"label,omitempty"`

	Dispersion DispersionResponse `json:"dispersion"`

	DistanceScore      float64 `json:"distance_score"`
	FacilitiesScore    float64 `json:"facilities_score"`
	AccessibilityScore float64 `json:"accessibility_score"`
	Score              float64 `json:"score"`
}

type PlanResponse struct {
	Name       string             `json:"name"`
	Priority   int                `json:"priority"`
	Focus      CoordinateResponse `json:"focus"`
	Label      string             `json:"label,omitempty"`
	Dispersion DispersionResponse `json:"dispersion"`
}

type RestaurantResponse struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Address     string             `json:"address"`
	Location    CoordinateResponse `json:"location"`
	Rating      float64            `json:"rating"`
	ReviewCount int                `json:"review_count"`
	DistanceKm  float64            `json:"distance_km"`
	AverageCost float64            `json:"average_cost,omitempty"`
	OpenHours   string             `json:"open_hours,omitempty"`
	Score       float64            `json:"score"`
}

type DepartureResponse struct {
	Name          string  `json:"name"`
	TravelMinutes float64 `json:"travel_minutes"`
	BufferMinutes float64 `json:"buffer_minutes"`
	Departure     string  `json:"departure"`
	Arrival       string  `json:"arrival"`
	PreviousDay   bool    `json:"previous_day,omitempty"`
}

// RecommendResponse is the body returned by a successful planning run.
type RecommendResponse struct {
	RunID string `json:"run_id"`

	Venue VenueResponse `json:"venue"`

	Participants []ParticipantResponse `json:"participants"`
	Unresolved   []string              `json:"unresolved_addresses,omitempty"`

	// LowConfidenceRoutes lists discarded implausible routes as
	// "name (mode)" entries; resubmit corrected data to resolve them.
	LowConfidenceRoutes []string `json:"low_confidence_routes,omitempty"`

	Plans       []PlanResponse       `json:"plans,omitempty"`
	Restaurants []RestaurantResponse `json:"restaurants"`
	Departures  []DepartureResponse  `json:"departures,omitempty"`

	TransitAdvisory bool `json:"transit_advisory,omitempty"`
}
