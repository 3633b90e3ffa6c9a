package entity

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

const (
	MinLatitude  = -90.0
	MaxLatitude  = 90.0
	MinLongitude = -180.0
	MaxLongitude = 180.0
)

// Coordinates is a latitude/longitude pair in degrees.
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// IsValid reports whether both values are inside their legal ranges.
func (c Coordinates) IsValid() bool {
	return c.Latitude >= MinLatitude && c.Latitude <= MaxLatitude &&
		c.Longitude >= MinLongitude && c.Longitude <= MaxLongitude
}

// Point converts the coordinates to an orb point (longitude first).
func (c Coordinates) Point() orb.Point {
	return orb.Point{c.Longitude, c.Latitude}
}

// DistanceTo returns the great-circle distance to other in kilometres.
func (c Coordinates) DistanceTo(other Coordinates) float64 {
	return geo.DistanceHaversine(c.Point(), other.Point()) / 1000
}
