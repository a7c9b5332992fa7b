package catalogue

import "github.com/theoremus-urban-solutions/transit-catalogue/geo"

// StopID is the stable storage slot of a stop.
type StopID int

// RouteID is the stable storage slot of a route.
type RouteID int

// Stop is a named location. Defined is false for placeholders created by a
// distance or route reference that has not been followed by AddStop yet.
type Stop struct {
	ID          StopID
	Name        string
	Coordinates geo.Coordinates
	Defined     bool
}

// Route is a named bus route over an ordered sequence of stops.
//
// A circular route is driven once through Stops. A linear route is driven
// through Stops and then back in reverse order.
type Route struct {
	ID         RouteID
	Name       string
	Stops      []StopID
	IsCircular bool
}

// RouteInfo holds the aggregate statistics of a route.
type RouteInfo struct {
	Name            string
	StopCount       int
	UniqueStopCount int
	// RouteLength is the road length in meters.
	RouteLength int
	// GeoLength is the great-circle length in meters.
	GeoLength float64
}

// Curvature returns RouteLength/GeoLength. The second result is false when
// the geographic length is zero and the ratio is undefined.
func (ri RouteInfo) Curvature() (float64, bool) {
	if ri.GeoLength == 0 {
		return 0, false
	}
	return float64(ri.RouteLength) / ri.GeoLength, true
}

type stopPair struct {
	from, to StopID
}
