package catalogue

import (
	"slices"

	"github.com/theoremus-urban-solutions/transit-catalogue/geo"
)

// GetRouteInfo computes the statistics of a route. It returns ErrNotFound
// for an unknown route and a *MissingDistanceError when a consecutive stop
// pair the route drives through has no road distance.
func (c *Catalogue) GetRouteInfo(name string) (RouteInfo, error) {
	id, ok := c.routeByName[name]
	if !ok {
		return RouteInfo{}, ErrNotFound
	}
	r := c.routes[id]

	info := RouteInfo{
		Name:            r.Name,
		StopCount:       len(r.Stops),
		UniqueStopCount: uniqueStops(r.Stops),
	}
	if !r.IsCircular {
		// the way back revisits every stop but the last one
		info.StopCount = 2*len(r.Stops) - 1
	}

	driven := DrivenStops(r)
	for i := 1; i < len(driven); i++ {
		prev, cur := driven[i-1], driven[i]
		forward, ok := c.Distance(prev, cur)
		if !ok {
			return RouteInfo{}, c.missingDistance(r.Name, prev, cur)
		}
		info.RouteLength += forward
		geoDist := geo.Distance(c.stops[prev].Coordinates, c.stops[cur].Coordinates)
		info.GeoLength += geoDist

		if !r.IsCircular {
			backward, ok := c.Distance(cur, prev)
			if !ok {
				return RouteInfo{}, c.missingDistance(r.Name, cur, prev)
			}
			info.RouteLength += backward
			info.GeoLength += geoDist
		}
	}
	return info, nil
}

// DrivenStops returns the stops a bus passes on its forward run. A circular
// route whose sequence does not end at its first stop is closed back onto it.
// Linear routes are driven back along the same sequence in reverse.
func DrivenStops(r Route) []StopID {
	n := len(r.Stops)
	if r.IsCircular && n > 1 && r.Stops[0] != r.Stops[n-1] {
		return append(slices.Clone(r.Stops), r.Stops[0])
	}
	return r.Stops
}

func (c *Catalogue) missingDistance(route string, from, to StopID) *MissingDistanceError {
	return &MissingDistanceError{Route: route, From: c.stops[from].Name, To: c.stops[to].Name}
}

func uniqueStops(ids []StopID) int {
	seen := make(map[StopID]struct{}, len(ids))
	for _, id := range ids {
		seen[id] = struct{}{}
	}
	return len(seen)
}
