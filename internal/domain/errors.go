package domain

import "errors"

// Input errors are surfaced immediately to the caller. Data absence
// (missing response fields, zero search results) is represented as
// nil/empty values instead, and policy outcomes such as "no viable mode"
// are ordinary return values, never errors.
var (
	// ErrEmptyInput reports an empty required collection.
	ErrEmptyInput = errors.New("empty input")

	// ErrInvalidTime reports a meeting time that is not a valid 24-hour
	// time of day.
	ErrInvalidTime = errors.New("invalid time of day")

	// ErrNegativeDuration reports a negative travel duration.
	ErrNegativeDuration = errors.New("negative duration")

	// ErrCoordinateRange reports a coordinate outside the valid
	// longitude/latitude ranges.
	ErrCoordinateRange = errors.New("coordinate out of range")

	// ErrNoUsableParticipants is the unrecoverable run failure raised when
	// validation leaves zero participants with a resolved address and a
	// usable travel time.
	ErrNoUsableParticipants = errors.New("no usable participants")

	// ErrNoRestaurants is the unrecoverable run failure raised when
	// validation leaves zero usable restaurant candidates.
	ErrNoRestaurants = errors.New("no usable restaurant candidates")

	// ErrLowConfidenceRoute flags a route whose reported time or distance
	// is implausible. Recoverable: the orchestrator resolves it by
	// discarding the route and reporting it, rather than failing the run.
	ErrLowConfidenceRoute = errors.New("low confidence route")
)
