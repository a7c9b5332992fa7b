// Package responder answers stat requests against a loaded catalogue and
// writes the answers as JSON or as text lines.
//
// Answers are memoized in an LRU cache keyed by request type and arguments;
// the request id is attached per response, so repeated queries with different
// ids share one cache entry. The catalogue must not change while a Responder
// is in use.
package responder

import (
	"errors"
	"slices"

	"github.com/bluele/gcache"
	"github.com/rs/zerolog"

	"github.com/theoremus-urban-solutions/transit-catalogue/catalogue"
	"github.com/theoremus-urban-solutions/transit-catalogue/loader"
	"github.com/theoremus-urban-solutions/transit-catalogue/renderer"
	"github.com/theoremus-urban-solutions/transit-catalogue/router"
)

// DefaultCacheSize is the number of answers kept when no size is configured.
const DefaultCacheSize = 1024

var (
	errRoutingUnavailable = errors.New("routing is not available")
	errMapUnavailable     = errors.New("map rendering is not available")
	errUnsupportedRequest = errors.New("unsupported request type")
)

// Responder answers stat requests.
type Responder struct {
	cat       *catalogue.Catalogue
	router    *router.Router
	renderer  *renderer.Renderer
	cache     gcache.Cache
	cacheSize int
	log       zerolog.Logger
}

// Option configures a Responder.
type Option func(*Responder)

// WithRouter enables Route requests.
func WithRouter(r *router.Router) Option {
	return func(rs *Responder) { rs.router = r }
}

// WithRenderer enables Map requests.
func WithRenderer(r *renderer.Renderer) Option {
	return func(rs *Responder) { rs.renderer = r }
}

// WithCacheSize sets the LRU capacity. Zero or less disables caching.
func WithCacheSize(n int) Option {
	return func(rs *Responder) { rs.cacheSize = n }
}

// WithLogger sets the logger used for data errors.
func WithLogger(l zerolog.Logger) Option {
	return func(rs *Responder) { rs.log = l }
}

// New creates a Responder over a loaded catalogue.
func New(cat *catalogue.Catalogue, opts ...Option) *Responder {
	r := &Responder{cat: cat, cacheSize: DefaultCacheSize, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(r)
	}
	if r.cacheSize > 0 {
		r.cache = gcache.New(r.cacheSize).
			LRU().
			LoaderFunc(func(key interface{}) (interface{}, error) {
				return r.compute(key.(cacheKey)), nil
			}).
			Build()
	}
	return r
}

type cacheKey struct {
	kind string
	name string
	from string
	to   string
}

type result struct {
	value any
	err   error
}

func (r *Responder) lookup(key cacheKey) result {
	if r.cache == nil {
		return r.compute(key)
	}
	v, err := r.cache.Get(key)
	if err != nil {
		return result{err: err}
	}
	return v.(result)
}

func (r *Responder) compute(key cacheKey) result {
	switch key.kind {
	case loader.TypeBus:
		info, err := r.cat.GetRouteInfo(key.name)
		return result{value: info, err: err}
	case loader.TypeStop:
		buses, err := r.cat.GetRoutesForStop(key.name)
		return result{value: buses, err: err}
	case loader.TypeRoute:
		if r.router == nil {
			return result{err: errRoutingUnavailable}
		}
		it, err := r.router.GetRoute(key.from, key.to)
		return result{value: it, err: err}
	case loader.TypeMap:
		if r.renderer == nil {
			return result{err: errMapUnavailable}
		}
		return result{value: r.renderer.Render(r.cat).String()}
	default:
		return result{err: errUnsupportedRequest}
	}
}

// Bus returns the statistics of a bus route.
func (r *Responder) Bus(name string) (catalogue.RouteInfo, error) {
	res := r.lookup(cacheKey{kind: loader.TypeBus, name: name})
	if res.err != nil {
		return catalogue.RouteInfo{}, res.err
	}
	return res.value.(catalogue.RouteInfo), nil
}

// Stop returns the sorted names of the buses serving a stop.
func (r *Responder) Stop(name string) ([]string, error) {
	res := r.lookup(cacheKey{kind: loader.TypeStop, name: name})
	if res.err != nil {
		return nil, res.err
	}
	return slices.Clone(res.value.([]string)), nil
}

// BusStops returns the stop names of a bus route in the order they were
// given.
func (r *Responder) BusStops(name string) ([]string, error) {
	route, ok := r.cat.FindRoute(name)
	if !ok {
		return nil, catalogue.ErrNotFound
	}
	return r.cat.StopNames(route), nil
}

// Route returns the fastest itinerary between two stops.
func (r *Responder) Route(from, to string) (router.Itinerary, error) {
	res := r.lookup(cacheKey{kind: loader.TypeRoute, from: from, to: to})
	if res.err != nil {
		return router.Itinerary{}, res.err
	}
	it := res.value.(router.Itinerary)
	it.Items = slices.Clone(it.Items)
	return it, nil
}

// Map returns the SVG map of the catalogue.
func (r *Responder) Map() (string, error) {
	res := r.lookup(cacheKey{kind: loader.TypeMap})
	if res.err != nil {
		return "", res.err
	}
	return res.value.(string), nil
}

// Respond answers one request with one of the *Response types.
func (r *Responder) Respond(req loader.StatRequest) any {
	switch req.Type {
	case loader.TypeBus:
		info, err := r.Bus(req.Name)
		if err != nil {
			return r.errorResponse(req, err)
		}
		resp := BusResponse{
			RequestID:       req.ID,
			RouteLength:     info.RouteLength,
			StopCount:       info.StopCount,
			UniqueStopCount: info.UniqueStopCount,
		}
		if c, ok := info.Curvature(); ok {
			resp.Curvature = &c
		}
		return resp
	case loader.TypeStop:
		buses, err := r.Stop(req.Name)
		if err != nil {
			return r.errorResponse(req, err)
		}
		return StopResponse{RequestID: req.ID, Buses: buses}
	case loader.TypeRoute:
		it, err := r.Route(req.From, req.To)
		if err != nil {
			return r.errorResponse(req, err)
		}
		return RouteResponse{RequestID: req.ID, Items: it.Items, TotalTime: it.TotalTime}
	case loader.TypeMap:
		svg, err := r.Map()
		if err != nil {
			return r.errorResponse(req, err)
		}
		return MapResponse{RequestID: req.ID, Map: svg}
	default:
		return r.errorResponse(req, errUnsupportedRequest)
	}
}

// RespondAll answers requests in order.
func (r *Responder) RespondAll(reqs []loader.StatRequest) []any {
	out := make([]any, 0, len(reqs))
	for _, req := range reqs {
		out = append(out, r.Respond(req))
	}
	return out
}

func (r *Responder) errorResponse(req loader.StatRequest, err error) ErrorResponse {
	return ErrorResponse{RequestID: req.ID, ErrorMessage: r.errorMessage(req, err)}
}

func (r *Responder) errorMessage(req loader.StatRequest, err error) string {
	if IsNotFound(err) {
		return ErrorMessage
	}
	r.log.Error().Err(err).Int("request_id", req.ID).Str("type", req.Type).Msg("request failed")
	return err.Error()
}

// IsNotFound reports whether err means an unknown name or an unreachable stop.
func IsNotFound(err error) bool {
	return errors.Is(err, catalogue.ErrNotFound) || errors.Is(err, router.ErrNotFound)
}
