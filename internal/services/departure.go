package services

import (
	"fmt"
	"math"
	"time"

	"meetspot/internal/domain"
)

const minutesPerDay = 24 * 60

// DefaultBufferMinutes covers parking and arrival overhead when the
// caller does not supply a buffer.
const DefaultBufferMinutes = 5

// DepartureInput pairs one participant with their travel time to the
// venue in minutes.
type DepartureInput struct {
	Name          string
	TravelMinutes float64
}

// ScheduleDepartures back-computes each participant's departure from a
// shared meeting time ("HH:MM", 24-hour): departure = meeting -
// (travel + buffer). All assignments share the same arrival. A departure
// that falls before midnight wraps to the previous day and carries the
// PreviousDay flag rather than producing a malformed hour.
func ScheduleDepartures(meetingTime string, participants []DepartureInput, bufferMinutes float64) ([]domain.DepartureAssignment, error) {
	meeting, err := time.Parse("15:04", meetingTime)
	if err != nil {
		return nil, fmt.Errorf("schedule departures: %q: %w", meetingTime, domain.ErrInvalidTime)
	}
	if bufferMinutes < 0 {
		return nil, fmt.Errorf("schedule departures: buffer %.1f: %w", bufferMinutes, domain.ErrNegativeDuration)
	}

	meetingMinutes := float64(meeting.Hour()*60 + meeting.Minute())
	arrival := meeting.Format("15:04")

	out := make([]domain.DepartureAssignment, 0, len(participants))
	for _, p := range participants {
		if p.TravelMinutes < 0 {
			return nil, fmt.Errorf(
				"schedule departures: participant %q travel %.1f: %w",
				p.Name, p.TravelMinutes, domain.ErrNegativeDuration,
			)
		}

		departure := meetingMinutes - (p.TravelMinutes + bufferMinutes)

		previousDay := false
		for departure < 0 {
			departure += minutesPerDay
			previousDay = true
		}

		whole := int(math.Floor(departure))
		out = append(out, domain.DepartureAssignment{
			Name:          p.Name,
			TravelMinutes: p.TravelMinutes,
			BufferMinutes: bufferMinutes,
			Departure:     fmt.Sprintf("%02d:%02d", whole/60, whole%60),
			Arrival:       arrival,
			PreviousDay:   previousDay,
		})
	}

	return out, nil
}
