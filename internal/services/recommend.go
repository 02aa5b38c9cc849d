package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/google/uuid"

	"meetspot/internal/domain"
	"meetspot/internal/platform/obs"
	"meetspot/internal/ports"
)

const (
	// Ceiling on detail-level place lookups per planning run. Ranking
	// operates on whatever truncated candidate set remains.
	DefaultMaxDetailLookups = 25

	// Bound on concurrent external lookups.
	defaultConcurrency = 5

	// Cycling routes are only fetched inside the short-distance band.
	cyclingBandKm = 3.0

	// Venue-score floor below which alternative plans are generated even
	// when the variance gate passes.
	marginalVenueScore = 60.0

	// Transit sanity heuristic (advisory only): a variance this high over
	// a compact cluster is suspicious but not invalid.
	advisoryVariance  = 60.0
	advisoryClusterKm = 20.0
)

// ParticipantInput names one attendee and their home address.
type ParticipantInput struct {
	Name    string
	Address string
}

// VenueSubScores overrides the derived venue sub-scores, each 0-100.
type VenueSubScores struct {
	Distance      float64
	Facilities    float64
	Accessibility float64
}

// RecommendRequest describes one planning run.
type RecommendRequest struct {
	Participants []ParticipantInput
	City         string
	Cuisine      string

	// MeetingTime ("HH:MM") is optional; when set, departures are
	// scheduled for it.
	MeetingTime   string
	BufferMinutes *float64

	SubScores *VenueSubScores
}

// Recommendation is the full outcome of a planning run.
type Recommendation struct {
	RunID string

	Venue      domain.VenueCandidate
	VenueScore float64

	Participants []domain.Participant
	// Unresolved lists addresses the geocoder could not place; they are
	// dropped from the run rather than failing it.
	Unresolved []string

	// LowConfidence lists routes discarded for implausible time or
	// distance, as "name (mode)" entries. The run proceeds without them;
	// callers may resubmit corrected input.
	LowConfidence []string

	Plans       []domain.PlanVariant
	Restaurants []domain.RestaurantCandidate
	Departures  []domain.DepartureAssignment

	// TransitAdvisory flags a suspicious time spread over a compact
	// cluster. Advisory only; no data was rejected because of it.
	TransitAdvisory bool
}

// Planner orchestrates the recommendation pipeline over the external
// lookup ports. All scoring steps are pure; only the lookups block, and
// they run with bounded concurrency, one per participant or candidate.
type Planner struct {
	Geocoder   ports.Geocoder
	Directions ports.DirectionProvider
	Places     ports.PlaceProvider

	// MaxDetailLookups caps place detail lookups per run (default 25).
	MaxDetailLookups int

	// Concurrency bounds parallel external lookups (default 5).
	Concurrency int
}

// Recommend runs the full pipeline: geocode participants, compute the
// centroid venue, analyze travel-time dispersion, advise transport
// modes, score the venue, generate plan variants when the fit is
// marginal, rank nearby restaurants, and schedule departures.
func (p *Planner) Recommend(ctx context.Context, req RecommendRequest) (_ *Recommendation, err error) {
	defer obs.Time(ctx, "planner.Recommend")(&err)

	if len(req.Participants) == 0 {
		return nil, fmt.Errorf("recommend: participants: %w", domain.ErrEmptyInput)
	}
	if req.City == "" || req.Cuisine == "" {
		return nil, fmt.Errorf("recommend: city and cuisine are required: %w", domain.ErrEmptyInput)
	}

	rec := &Recommendation{RunID: uuid.NewString()}
	ctx = obs.WithRunID(ctx, rec.RunID)

	participants, unresolved, err := p.resolveParticipants(ctx, req)
	if err != nil {
		return nil, err
	}
	rec.Unresolved = unresolved
	if len(participants) == 0 {
		return nil, fmt.Errorf("recommend: all %d addresses unresolved: %w",
			len(req.Participants), domain.ErrNoUsableParticipants)
	}

	coords := make([]domain.Coordinate, 0, len(participants))
	for _, pt := range participants {
		coords = append(coords, pt.Location)
	}
	center, err := Centroid(coords)
	if err != nil {
		return nil, fmt.Errorf("recommend: %w", err)
	}

	label, districts := p.describeArea(ctx, center)

	lowConfidence, err := p.fetchRoutes(ctx, participants, center, req.City)
	if err != nil {
		return nil, err
	}
	rec.LowConfidence = lowConfidence

	times := make([]float64, 0, len(participants))
	var meanStraightKm float64
	for _, pt := range participants {
		if pt.FairnessMinutes > 0 {
			times = append(times, pt.FairnessMinutes)
		}
		meanStraightKm += pt.StraightLineKm
	}
	meanStraightKm /= float64(len(participants))

	if len(times) == 0 {
		return nil, fmt.Errorf("recommend: no usable travel times: %w", domain.ErrNoUsableParticipants)
	}

	dispersion, err := AnalyzeTimes(times)
	if err != nil {
		return nil, fmt.Errorf("recommend: %w", err)
	}

	venue := domain.VenueCandidate{
		Location:   center,
		Label:      label,
		Dispersion: dispersion,
	}
	p.applySubScores(&venue, req.SubScores, meanStraightKm, districts, participants)

	rec.Venue = venue
	rec.VenueScore = ScoreVenue(dispersion, venue.DistanceScore, venue.FacilitiesScore, venue.AccessibilityScore)
	rec.TransitAdvisory = dispersion.Variance > advisoryVariance && meanStraightKm < advisoryClusterKm

	var alternatives []domain.VenueCandidate
	if dispersion.Variance >= planVarianceGate || rec.VenueScore < marginalVenueScore {
		alternatives = p.buildAlternatives(ctx, participants, center, venue.AccessibilityScore)
	}
	rec.Plans = GeneratePlans(derefParticipants(participants), venue, alternatives)

	restaurants, err := p.shortlistRestaurants(ctx, req, center)
	if err != nil {
		return nil, err
	}
	rec.Restaurants = restaurants

	if req.MeetingTime != "" {
		buffer := float64(DefaultBufferMinutes)
		if req.BufferMinutes != nil {
			buffer = *req.BufferMinutes
		}

		inputs := make([]DepartureInput, 0, len(participants))
		for _, pt := range participants {
			if len(pt.Modes) == 0 || pt.Modes[0].Priority == 0 {
				continue
			}
			inputs = append(inputs, DepartureInput{Name: pt.Name, TravelMinutes: pt.Modes[0].Minutes})
		}

		departures, err := ScheduleDepartures(req.MeetingTime, inputs, buffer)
		if err != nil {
			return nil, fmt.Errorf("recommend: %w", err)
		}
		rec.Departures = departures
	}

	rec.Participants = derefParticipants(participants)
	return rec, nil
}

// resolveParticipants geocodes every address, dropping unresolved or
// out-of-range results. Individual failures are isolated; only a
// provider error aborts the run.
func (p *Planner) resolveParticipants(ctx context.Context, req RecommendRequest) (_ []*domain.Participant, unresolved []string, err error) {
	defer obs.Time(ctx, "planner.resolveParticipants")(&err)

	participants := make([]*domain.Participant, 0, len(req.Participants))
	for _, in := range req.Participants {
		res, err := p.Geocoder.Geocode(ctx, in.Address, req.City)
		if err != nil {
			return nil, nil, fmt.Errorf("recommend: geocode %q: %w", in.Address, err)
		}
		if res == nil || domain.CheckCoordinate(res.Location) != nil {
			unresolved = append(unresolved, in.Address)
			continue
		}

		participants = append(participants, &domain.Participant{
			Name:     in.Name,
			Address:  in.Address,
			Location: res.Location,
		})
	}

	return participants, unresolved, nil
}

// describeArea reverse-geocodes a focus point for its label and nearby
// business districts. Lookup failures degrade to an unlabeled venue.
func (p *Planner) describeArea(ctx context.Context, focus domain.Coordinate) (string, []string) {
	rev, err := p.Geocoder.ReverseGeocode(ctx, focus)
	if err != nil || rev == nil {
		return "", nil
	}
	return rev.FormattedAddress, rev.BusinessDistricts
}

// fetchRoutes issues direction lookups for every participant with
// bounded concurrency: driving and transit always, cycling only inside
// the short-distance band. Missing routes are skipped; routes rejected
// as low-confidence are discarded and reported so the run proceeds with
// whatever subset remains.
func (p *Planner) fetchRoutes(ctx context.Context, participants []*domain.Participant, venue domain.Coordinate, city string) (lowConfidence []string, err error) {
	defer obs.Time(ctx, "planner.fetchRoutes")(&err)

	concurrency := p.Concurrency
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}

	sem := make(chan struct{}, concurrency)
	var wg sync.WaitGroup

	// Per-participant slot so goroutines never share a slice.
	flagged := make([][]domain.TransportMode, len(participants))

	for i, pt := range participants {
		wg.Add(1)
		go func(i int, pt *domain.Participant) {
			sem <- struct{}{}
			defer wg.Done()
			defer func() { <-sem }()

			pt.StraightLineKm = HaversineKm(pt.Location, venue)

			keep := func(r *domain.Route) *domain.Route {
				if r == nil {
					return nil
				}
				if errors.Is(domain.CheckRoute(*r), domain.ErrLowConfidenceRoute) {
					flagged[i] = append(flagged[i], r.Mode)
					return nil
				}
				return r
			}

			if r, err := p.Directions.Driving(ctx, pt.Location, venue); err == nil {
				pt.Driving = keep(r)
			}
			if r, err := p.Directions.Transit(ctx, pt.Location, venue, city); err == nil {
				pt.Transit = keep(r)
			}
			if pt.StraightLineKm <= cyclingBandKm {
				if r, err := p.Directions.Cycling(ctx, pt.Location, venue); err == nil {
					pt.Cycling = keep(r)
				}
			}
		}(i, pt)
	}
	wg.Wait()

	for i, pt := range participants {
		for _, mode := range flagged[i] {
			lowConfidence = append(lowConfidence, fmt.Sprintf("%s (%s)", pt.Name, mode))
		}

		// Driving is the shared fairness signal; transit substitutes when
		// a participant has no drivable route.
		switch {
		case pt.Driving != nil:
			pt.FairnessMinutes = pt.Driving.Minutes
		case pt.Transit != nil:
			pt.FairnessMinutes = pt.Transit.Minutes
		}

		distanceKm := pt.StraightLineKm
		if pt.Driving != nil {
			distanceKm = pt.Driving.DistanceKm
		}

		driving := math.Inf(1)
		if pt.Driving != nil {
			driving = pt.Driving.Minutes
		}
		transit := math.Inf(1)
		if pt.Transit != nil {
			transit = pt.Transit.Minutes
		}
		var cycling *float64
		if pt.Cycling != nil {
			cycling = &pt.Cycling.Minutes
		}

		pt.Modes = RecommendModes(distanceKm, driving, transit, cycling)
	}

	return lowConfidence, nil
}

// applySubScores fills the venue sub-scores, either from the request
// override or derived: distance from the mean straight-line spread,
// facilities from nearby business districts, accessibility from the
// share of participants with a usable transit route.
func (p *Planner) applySubScores(
	venue *domain.VenueCandidate,
	override *VenueSubScores,
	meanStraightKm float64,
	districts []string,
	participants []*domain.Participant,
) {
	if override != nil {
		venue.DistanceScore = override.Distance
		venue.FacilitiesScore = override.Facilities
		venue.AccessibilityScore = override.Accessibility
		return
	}

	venue.DistanceScore = clampScore(100 - 5*meanStraightKm)
	venue.FacilitiesScore = clampScore(40 + 20*float64(len(districts)))

	transitable := 0
	for _, pt := range participants {
		if pt.Transit != nil {
			transitable++
		}
	}
	venue.AccessibilityScore = clampScore(100 * float64(transitable) / float64(len(participants)))
}

// buildAlternatives turns each participant's home area into a candidate
// focus with an estimated dispersion: observed travel times scaled by
// the straight-line distance ratio toward the new focus.
func (p *Planner) buildAlternatives(
	ctx context.Context,
	participants []*domain.Participant,
	center domain.Coordinate,
	accessibilityScore float64,
) []domain.VenueCandidate {
	alternatives := make([]domain.VenueCandidate, 0, len(participants))

	for _, host := range participants {
		focus := host.Location

		times := make([]float64, 0, len(participants))
		var meanKm float64
		for _, pt := range participants {
			toFocus := HaversineKm(pt.Location, focus)
			meanKm += toFocus

			// Same filter as the primary dispersion: participants without
			// a usable route contribute no time sample.
			if pt.FairnessMinutes <= 0 {
				continue
			}

			minutes := pt.FairnessMinutes
			if pt.StraightLineKm > 0 {
				minutes = pt.FairnessMinutes * toFocus / pt.StraightLineKm
			}
			times = append(times, minutes)
		}
		meanKm /= float64(len(participants))

		dispersion, err := AnalyzeTimes(times)
		if err != nil {
			continue
		}

		label, districts := p.describeArea(ctx, focus)

		alternatives = append(alternatives, domain.VenueCandidate{
			Location:           focus,
			Label:              label,
			Dispersion:         dispersion,
			DistanceScore:      clampScore(100 - 5*meanKm),
			FacilitiesScore:    clampScore(40 + 20*float64(len(districts))),
			AccessibilityScore: accessibilityScore,
		})
	}

	return alternatives
}

// shortlistRestaurants searches for candidates, truncates to the detail
// ceiling, fetches details concurrently, and ranks whatever survives
// validation. Individual record failures are isolated; zero survivors is
// an unrecoverable run failure.
func (p *Planner) shortlistRestaurants(ctx context.Context, req RecommendRequest, venue domain.Coordinate) (_ []domain.RestaurantCandidate, err error) {
	defer obs.Time(ctx, "planner.shortlistRestaurants")(&err)

	summaries, err := p.Places.Search(ctx, req.Cuisine, req.City, "")
	if err != nil {
		return nil, fmt.Errorf("recommend: place search %q in %q: %w", req.Cuisine, req.City, err)
	}

	ceiling := p.MaxDetailLookups
	if ceiling <= 0 {
		ceiling = DefaultMaxDetailLookups
	}
	if len(summaries) > ceiling {
		summaries = summaries[:ceiling]
	}

	concurrency := p.Concurrency
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}

	details := make([]*ports.PlaceDetail, len(summaries))
	sem := make(chan struct{}, concurrency)
	var wg sync.WaitGroup

	for i, s := range summaries {
		wg.Add(1)
		go func(i int, id string) {
			sem <- struct{}{}
			defer wg.Done()
			defer func() { <-sem }()

			d, err := p.Places.Detail(ctx, id)
			if err != nil {
				return
			}
			details[i] = d
		}(i, s.ID)
	}
	wg.Wait()

	candidates := make([]domain.RestaurantCandidate, 0, len(details))
	for i, d := range details {
		if d == nil {
			continue
		}

		c := domain.RestaurantCandidate{
			ID:          d.ID,
			Name:        d.Name,
			Address:     d.Address,
			Location:    d.Location,
			Rating:      d.Rating,
			ReviewCount: d.ReviewCount,
			AverageCost: d.AverageCost,
			OpenHours:   d.OpenHours,
			DistanceKm:  HaversineKm(venue, d.Location),
		}
		if c.Name == "" {
			c.Name = summaries[i].Name
		}
		if !domain.ValidCoordinate(c.Location) || !domain.ValidRestaurant(c) {
			continue
		}

		candidates = append(candidates, c)
	}

	ranked := RankRestaurants(candidates)
	if len(ranked) == 0 {
		return nil, fmt.Errorf("recommend: %d listings, none usable: %w", len(summaries), domain.ErrNoRestaurants)
	}

	return ranked, nil
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func derefParticipants(in []*domain.Participant) []domain.Participant {
	out := make([]domain.Participant, 0, len(in))
	for _, p := range in {
		out = append(out, *p)
	}
	return out
}
