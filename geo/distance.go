package geo

import "math"

// EarthRadius is the mean Earth radius in meters used by Distance.
const EarthRadius = 6371000.0

// Coordinates is a point on the Earth surface in degrees.
type Coordinates struct {
	Lat float64 `json:"latitude" yaml:"latitude"`
	Lng float64 `json:"longitude" yaml:"longitude"`
}

// Equal reports whether two points are the same location.
func (c Coordinates) Equal(other Coordinates) bool {
	return c.Lat == other.Lat && c.Lng == other.Lng
}

// Distance returns the great-circle distance in meters between from and to,
// using the spherical law of cosines. Coincident points are exactly 0 apart.
func Distance(from, to Coordinates) float64 {
	if from.Equal(to) {
		return 0
	}
	const dr = math.Pi / 180
	cos := math.Sin(from.Lat*dr)*math.Sin(to.Lat*dr) +
		math.Cos(from.Lat*dr)*math.Cos(to.Lat*dr)*math.Cos(math.Abs(from.Lng-to.Lng)*dr)
	// rounding can push nearby points just past 1
	cos = math.Max(-1, math.Min(1, cos))
	return math.Acos(cos) * EarthRadius
}
