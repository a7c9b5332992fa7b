package catalogue

import (
	"slices"

	"github.com/rs/zerolog"

	"github.com/theoremus-urban-solutions/transit-catalogue/geo"
)

// Catalogue stores stops, routes and directed road distances in memory.
type Catalogue struct {
	stops       []Stop                         // StopID -> stop
	routes      []Route                        // RouteID -> route
	stopByName  map[string]StopID              // stop name -> id
	routeByName map[string]RouteID             // route name -> id
	distances   map[stopPair]int               // (from, to) -> meters
	stopRoutes  map[StopID]map[string]struct{} // stop -> names of routes serving it
	strict      bool
	log         zerolog.Logger
}

// Option configures a Catalogue.
type Option func(*Catalogue)

// WithStrictStops makes Validate fail when a referenced stop was never
// defined with AddStop.
func WithStrictStops() Option {
	return func(c *Catalogue) { c.strict = true }
}

// WithLogger sets the logger used for debug output.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Catalogue) { c.log = l }
}

// New creates an empty catalogue.
func New(opts ...Option) *Catalogue {
	c := &Catalogue{
		stopByName:  map[string]StopID{},
		routeByName: map[string]RouteID{},
		distances:   map[stopPair]int{},
		stopRoutes:  map[StopID]map[string]struct{}{},
		log:         zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// AddStop creates a stop or updates the coordinates of an existing one in
// place. References to the stop stay valid either way.
func (c *Catalogue) AddStop(name string, coords geo.Coordinates) StopID {
	if id, ok := c.stopByName[name]; ok {
		c.stops[id].Coordinates = coords
		c.stops[id].Defined = true
		return id
	}
	id := c.appendStop(name, coords)
	c.stops[id].Defined = true
	return id
}

// AddDistance sets the road distance from one stop to another. The reverse
// direction gets the same value only if it has none yet. Unknown names
// become placeholder stops.
func (c *Catalogue) AddDistance(from, to string, meters int) error {
	if meters < 0 {
		return ErrNegativeDistance
	}
	fromID := c.resolveStop(from)
	toID := c.resolveStop(to)
	c.distances[stopPair{fromID, toID}] = meters
	reverse := stopPair{toID, fromID}
	if _, ok := c.distances[reverse]; !ok {
		c.distances[reverse] = meters
	}
	return nil
}

// AddBus creates a route. Route names are unique; an existing name is an
// error rather than an update. Unknown stop names become placeholders.
func (c *Catalogue) AddBus(name string, stopNames []string, isCircular bool) error {
	if _, ok := c.routeByName[name]; ok {
		return ErrRouteExists
	}
	if len(stopNames) == 0 {
		return ErrEmptyRoute
	}
	ids := make([]StopID, len(stopNames))
	for i, stopName := range stopNames {
		ids[i] = c.resolveStop(stopName)
	}
	id := RouteID(len(c.routes))
	c.routes = append(c.routes, Route{ID: id, Name: name, Stops: ids, IsCircular: isCircular})
	c.routeByName[name] = id
	for _, stopID := range ids {
		set, ok := c.stopRoutes[stopID]
		if !ok {
			set = map[string]struct{}{}
			c.stopRoutes[stopID] = set
		}
		set[name] = struct{}{}
	}
	return nil
}

// FindStop returns the stop with the given name.
func (c *Catalogue) FindStop(name string) (Stop, bool) {
	id, ok := c.stopByName[name]
	if !ok {
		return Stop{}, false
	}
	return c.stops[id], true
}

// FindRoute returns the route with the given name.
func (c *Catalogue) FindRoute(name string) (Route, bool) {
	id, ok := c.routeByName[name]
	if !ok {
		return Route{}, false
	}
	return c.copyRoute(id), true
}

// Stop returns the stop stored in slot id.
func (c *Catalogue) Stop(id StopID) (Stop, bool) {
	if id < 0 || int(id) >= len(c.stops) {
		return Stop{}, false
	}
	return c.stops[id], true
}

// Route returns the route stored in slot id.
func (c *Catalogue) Route(id RouteID) (Route, bool) {
	if id < 0 || int(id) >= len(c.routes) {
		return Route{}, false
	}
	return c.copyRoute(id), true
}

// StopNames returns the stop names of a route in driving order.
func (c *Catalogue) StopNames(r Route) []string {
	names := make([]string, len(r.Stops))
	for i, id := range r.Stops {
		names[i] = c.stops[id].Name
	}
	return names
}

// GetRoutesForStop returns the sorted names of the routes serving a stop.
// The slice is empty, not nil, for a stop without routes.
func (c *Catalogue) GetRoutesForStop(name string) ([]string, error) {
	id, ok := c.stopByName[name]
	if !ok {
		return nil, ErrNotFound
	}
	set := c.stopRoutes[id]
	out := make([]string, 0, len(set))
	for routeName := range set {
		out = append(out, routeName)
	}
	slices.Sort(out)
	return out, nil
}

// GetDistance returns the explicit road distance from one stop to another.
func (c *Catalogue) GetDistance(from, to string) (int, bool) {
	fromID, ok := c.stopByName[from]
	if !ok {
		return 0, false
	}
	toID, ok := c.stopByName[to]
	if !ok {
		return 0, false
	}
	return c.Distance(fromID, toID)
}

// Distance returns the explicit road distance between two stop slots.
func (c *Catalogue) Distance(from, to StopID) (int, bool) {
	d, ok := c.distances[stopPair{from, to}]
	return d, ok
}

// AllStops returns every stop in creation order.
func (c *Catalogue) AllStops() []Stop {
	return slices.Clone(c.stops)
}

// AllRoutes returns every route in creation order.
func (c *Catalogue) AllRoutes() []Route {
	out := make([]Route, len(c.routes))
	for i := range c.routes {
		out[i] = c.copyRoute(RouteID(i))
	}
	return out
}

// StopCount returns the number of stops, placeholders included.
func (c *Catalogue) StopCount() int { return len(c.stops) }

// RouteCount returns the number of routes.
func (c *Catalogue) RouteCount() int { return len(c.routes) }

// Placeholders returns the names of stops that were referenced but never
// defined, in creation order.
func (c *Catalogue) Placeholders() []string {
	var out []string
	for _, s := range c.stops {
		if !s.Defined {
			out = append(out, s.Name)
		}
	}
	return out
}

// Validate checks the catalogue after loading. It only fails in strict mode.
func (c *Catalogue) Validate() error {
	if !c.strict {
		return nil
	}
	if names := c.Placeholders(); len(names) > 0 {
		return &UndefinedStopsError{Names: names}
	}
	return nil
}

func (c *Catalogue) resolveStop(name string) StopID {
	if id, ok := c.stopByName[name]; ok {
		return id
	}
	c.log.Debug().Str("stop", name).Msg("creating placeholder stop")
	return c.appendStop(name, geo.Coordinates{})
}

func (c *Catalogue) appendStop(name string, coords geo.Coordinates) StopID {
	id := StopID(len(c.stops))
	c.stops = append(c.stops, Stop{ID: id, Name: name, Coordinates: coords})
	c.stopByName[name] = id
	return id
}

func (c *Catalogue) copyRoute(id RouteID) Route {
	r := c.routes[id]
	r.Stops = slices.Clone(r.Stops)
	return r
}
