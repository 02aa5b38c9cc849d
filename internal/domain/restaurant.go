package domain

// RestaurantCandidate is one restaurant considered for the shortlist.
// It is assembled from an external listing plus a detail lookup; records
// with a missing or out-of-range rating or negative counts are rejected
// by ValidRestaurant before scoring.
type RestaurantCandidate struct {
	ID      string
	Name    string
	Address string

	Location Coordinate

	// Rating is on a 0-5 scale.
	Rating float64

	// ReviewCount is the review/popularity count, non-negative.
	ReviewCount int

	// DistanceKm is the distance to the candidate venue.
	DistanceKm float64

	// Optional detail fields; zero values mean "not reported".
	AverageCost float64
	OpenHours   string

	// Score is the 0-100 composite assigned during ranking.
	Score float64
}
