package loader

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/theoremus-urban-solutions/transit-catalogue/catalogue"
	"github.com/theoremus-urban-solutions/transit-catalogue/geo"
)

// Loader decodes input documents and applies them to a catalogue.
type Loader struct {
	log      zerolog.Logger
	validate *validator.Validate
	warnings *WarningAggregator
}

// Option configures a Loader.
type Option func(*Loader)

// WithLogger sets the logger used for load summaries and warnings.
func WithLogger(l zerolog.Logger) Option {
	return func(ld *Loader) { ld.log = l }
}

// New creates a Loader.
func New(opts ...Option) *Loader {
	l := &Loader{
		log:      zerolog.Nop(),
		validate: validator.New(),
		warnings: NewWarningAggregator(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Warnings returns the warnings collected by the last Apply.
func (l *Loader) Warnings() *WarningAggregator { return l.warnings }

// DecodeJSON reads and validates a JSON document.
func (l *Loader) DecodeJSON(r io.Reader) (*Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode JSON document: %w", err)
	}
	if err := l.Validate(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Validate checks a decoded document.
func (l *Loader) Validate(doc *Document) error {
	if err := l.validate.Struct(doc); err != nil {
		return fmt.Errorf("invalid document: %w", err)
	}
	if doc.RoutingSettings != nil {
		if err := doc.RoutingSettings.Validate(); err != nil {
			return err
		}
	}
	if doc.RenderSettings != nil {
		if err := doc.RenderSettings.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Apply adds the base requests to the catalogue: stops, then road
// distances, then buses. Placeholder stops left after the load are logged,
// and fail the load when the catalogue is strict.
func (l *Loader) Apply(cat *catalogue.Catalogue, reqs []BaseRequest) error {
	l.warnings = NewWarningAggregator()

	seen := make(map[string]struct{})
	var stops, buses int
	for _, req := range reqs {
		if req.Type != TypeStop {
			continue
		}
		if _, ok := seen[req.Name]; ok {
			l.warnings.Add(WarningRedefinedStop, req.Name)
		}
		seen[req.Name] = struct{}{}
		cat.AddStop(req.Name, geo.Coordinates{Lat: deref(req.Latitude), Lng: deref(req.Longitude)})
		stops++
	}

	for _, req := range reqs {
		if req.Type != TypeStop {
			continue
		}
		targets := make([]string, 0, len(req.RoadDistances))
		for to := range req.RoadDistances {
			targets = append(targets, to)
		}
		slices.Sort(targets)
		for _, to := range targets {
			if to == req.Name {
				l.warnings.Add(WarningSelfDistance, to)
			}
			if err := cat.AddDistance(req.Name, to, req.RoadDistances[to]); err != nil {
				return fmt.Errorf("road distance from %q to %q: %w", req.Name, to, err)
			}
		}
	}

	for _, req := range reqs {
		if req.Type != TypeBus {
			continue
		}
		if err := cat.AddBus(req.Name, req.Stops, req.IsRoundtrip != nil && *req.IsRoundtrip); err != nil {
			return fmt.Errorf("bus %q: %w", req.Name, err)
		}
		buses++
	}

	for _, name := range cat.Placeholders() {
		l.warnings.Add(WarningPlaceholderStop, name)
	}
	l.warnings.LogAll(l.log)
	l.log.Info().
		Int("stops", stops).
		Int("buses", buses).
		Int("catalogue_stops", cat.StopCount()).
		Int("catalogue_routes", cat.RouteCount()).
		Msg("base requests applied")

	return cat.Validate()
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
