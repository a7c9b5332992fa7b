// Package router builds a time-weighted graph over a catalogue snapshot and
// answers minimum-time itinerary queries between stops.
//
// A Router is built once with Build after the catalogue has been loaded. It
// copies everything it needs, so later catalogue mutations do not affect it;
// build a new Router to see them.
package router

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/theoremus-urban-solutions/transit-catalogue/catalogue"
	"github.com/theoremus-urban-solutions/transit-catalogue/graph"
)

// metersPerMinute converts a velocity in km/h to meters per minute.
const metersPerMinute = 1000.0 / 60.0

// ErrNotFound is returned by GetRoute for unknown stops or when no path
// connects them.
var ErrNotFound = errors.New("not found")

// Settings configures edge weights.
type Settings struct {
	// BusVelocity is the bus speed in km/h.
	BusVelocity float64 `json:"bus_velocity" yaml:"busVelocity" validate:"gt=0"`
	// BusWaitTime is the boarding wait in minutes, charged once per boarding.
	BusWaitTime float64 `json:"bus_wait_time" yaml:"busWaitTime" validate:"gte=0"`
}

// Validate checks that the settings produce finite non-negative weights.
func (s Settings) Validate() error {
	if err := validator.New().Struct(s); err != nil {
		return fmt.Errorf("invalid routing settings: %w", err)
	}
	return nil
}

type routeLabel struct {
	name     string
	circular bool
}

// Router is an immutable shortest-path engine over a catalogue snapshot.
type Router struct {
	id         uuid.UUID
	settings   Settings
	graph      *graph.DirectedWeightedGraph
	stopVertex map[string]graph.VertexID // stop name -> vertex
	vertexStop []string                  // vertex -> stop name
	routes     []routeLabel              // edge label -> route
}

// Option configures Build.
type Option func(*buildOptions)

type buildOptions struct {
	log zerolog.Logger
}

// WithLogger sets the logger used to report the build.
func WithLogger(l zerolog.Logger) Option {
	return func(o *buildOptions) { o.log = l }
}

// Build constructs the routing graph from the current catalogue contents.
// Every pair of positions i < j along a route becomes one edge, so riding
// several stops on the same bus costs a single boarding wait. It fails with
// a *catalogue.MissingDistanceError when a route lacks a road distance.
func Build(cat *catalogue.Catalogue, settings Settings, opts ...Option) (*Router, error) {
	o := buildOptions{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	start := time.Now()

	stops := cat.AllStops()
	r := &Router{
		id:         uuid.New(),
		settings:   settings,
		graph:      graph.New(len(stops)),
		stopVertex: make(map[string]graph.VertexID, len(stops)),
		vertexStop: make([]string, len(stops)),
	}
	// vertex ids follow stop ids, both dense from zero
	for i, s := range stops {
		r.stopVertex[s.Name] = graph.VertexID(i)
		r.vertexStop[i] = s.Name
	}

	for _, route := range cat.AllRoutes() {
		label := len(r.routes)
		r.routes = append(r.routes, routeLabel{name: route.Name, circular: route.IsCircular})
		if err := r.addRouteEdges(cat, route, label); err != nil {
			return nil, err
		}
	}

	o.log.Info().
		Str("router_id", r.id.String()).
		Int("vertices", r.graph.VertexCount()).
		Int("edges", r.graph.EdgeCount()).
		Dur("elapsed", time.Since(start)).
		Msg("routing graph built")
	return r, nil
}

func (r *Router) addRouteEdges(cat *catalogue.Catalogue, route catalogue.Route, label int) error {
	stops := catalogue.DrivenStops(route)
	for i := 0; i < len(stops); i++ {
		var forward, backward int
		for j := i + 1; j < len(stops); j++ {
			d, ok := cat.Distance(stops[j-1], stops[j])
			if !ok {
				return r.missingDistance(route.Name, stops[j-1], stops[j])
			}
			forward += d
			if err := r.addEdge(stops[i], stops[j], forward, label, j-i); err != nil {
				return err
			}

			if route.IsCircular {
				continue
			}
			d, ok = cat.Distance(stops[j], stops[j-1])
			if !ok {
				return r.missingDistance(route.Name, stops[j], stops[j-1])
			}
			backward += d
			if err := r.addEdge(stops[j], stops[i], backward, label, j-i); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *Router) addEdge(from, to catalogue.StopID, meters, label, span int) error {
	_, err := r.graph.AddEdge(graph.Edge{
		From:   graph.VertexID(from),
		To:     graph.VertexID(to),
		Weight: r.rideTime(meters) + r.settings.BusWaitTime,
		Label:  label,
		Span:   span,
	})
	return err
}

func (r *Router) rideTime(meters int) float64 {
	return float64(meters) / (r.settings.BusVelocity * metersPerMinute)
}

func (r *Router) missingDistance(route string, from, to catalogue.StopID) error {
	return &catalogue.MissingDistanceError{Route: route, From: r.vertexStop[from], To: r.vertexStop[to]}
}

// ID returns the snapshot id assigned at build time.
func (r *Router) ID() uuid.UUID { return r.id }

// Settings returns the settings the router was built with.
func (r *Router) Settings() Settings { return r.settings }

// VertexCount returns the number of stops in the routing graph.
func (r *Router) VertexCount() int { return r.graph.VertexCount() }

// EdgeCount returns the number of ride edges in the routing graph.
func (r *Router) EdgeCount() int { return r.graph.EdgeCount() }
