package domain

import "fmt"

// Immutable geographic coordinate (longitude, latitude).
type Coordinate struct {
	Lon float64
	Lat float64
}

// String renders the coordinate in the provider wire format "lon,lat".
func (c Coordinate) String() string {
	return fmt.Sprintf("%.6f,%.6f", c.Lon, c.Lat)
}
