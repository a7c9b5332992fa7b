package transitcatalogue

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/theoremus-urban-solutions/transit-catalogue/catalogue"
	"github.com/theoremus-urban-solutions/transit-catalogue/config"
	"github.com/theoremus-urban-solutions/transit-catalogue/loader"
	"github.com/theoremus-urban-solutions/transit-catalogue/renderer"
	"github.com/theoremus-urban-solutions/transit-catalogue/responder"
	"github.com/theoremus-urban-solutions/transit-catalogue/router"
	"github.com/theoremus-urban-solutions/transit-catalogue/server"
)

// Input formats accepted by Pipeline.Process.
const (
	FormatJSON = "json"
	FormatText = "text"
)

// Pipeline turns input documents into Datasets.
type Pipeline struct {
	Cfg         config.AppConfig
	Log         zerolog.Logger
	AlwaysRoute bool
}

// NewPipeline creates a Pipeline. Settings an input document carries take
// precedence over cfg.
func NewPipeline(cfg config.AppConfig, log zerolog.Logger) *Pipeline {
	return &Pipeline{Cfg: cfg, Log: log}
}

// Dataset is one loaded input document with everything needed to answer it.
type Dataset struct {
	ID        uuid.UUID
	Catalogue *catalogue.Catalogue
	// Router is nil unless the document asks for routes or the pipeline
	// always routes.
	Router    *router.Router
	Renderer  *renderer.Renderer
	Requests  []loader.StatRequest
	Warnings  *loader.WarningAggregator
	Responder *responder.Responder
}

// Process decodes r in the given format and builds a Dataset from it.
func (p *Pipeline) Process(r io.Reader, format string) (*Dataset, error) {
	ld := loader.New(loader.WithLogger(p.Log))
	var doc *loader.Document
	var err error
	switch format {
	case FormatJSON, "":
		doc, err = ld.DecodeJSON(r)
	case FormatText:
		doc, err = ld.ParseText(r)
	default:
		return nil, fmt.Errorf("unknown input format %q", format)
	}
	if err != nil {
		return nil, err
	}
	return p.build(ld, doc)
}

// Build creates a Dataset from an already decoded document.
func (p *Pipeline) Build(doc *loader.Document) (*Dataset, error) {
	ld := loader.New(loader.WithLogger(p.Log))
	if err := ld.Validate(doc); err != nil {
		return nil, err
	}
	return p.build(ld, doc)
}

func (p *Pipeline) build(ld *loader.Loader, doc *loader.Document) (*Dataset, error) {
	ds := &Dataset{ID: uuid.New(), Requests: doc.StatRequests}
	log := p.Log.With().Str("dataset_id", ds.ID.String()).Logger()

	var catOpts []catalogue.Option
	catOpts = append(catOpts, catalogue.WithLogger(log))
	if p.Cfg.Catalogue.StrictStops {
		catOpts = append(catOpts, catalogue.WithStrictStops())
	}
	ds.Catalogue = catalogue.New(catOpts...)
	if err := ld.Apply(ds.Catalogue, doc.BaseRequests); err != nil {
		return nil, fmt.Errorf("failed to load catalogue: %w", err)
	}
	ds.Warnings = ld.Warnings()

	if p.AlwaysRoute || hasRequest(doc.StatRequests, loader.TypeRoute) {
		settings := p.Cfg.Routing
		if doc.RoutingSettings != nil {
			settings = *doc.RoutingSettings
		}
		rt, err := router.Build(ds.Catalogue, settings, router.WithLogger(log))
		if err != nil {
			return nil, fmt.Errorf("failed to build router: %w", err)
		}
		ds.Router = rt
	}

	renderSettings := p.Cfg.Render
	if doc.RenderSettings != nil {
		renderSettings = *doc.RenderSettings
	}
	rn, err := renderer.New(renderSettings)
	if err != nil {
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}
	ds.Renderer = rn

	respOpts := []responder.Option{
		responder.WithRenderer(rn),
		responder.WithCacheSize(p.Cfg.Cache.Size),
		responder.WithLogger(log),
	}
	if ds.Router != nil {
		respOpts = append(respOpts, responder.WithRouter(ds.Router))
	}
	ds.Responder = responder.New(ds.Catalogue, respOpts...)

	log.Info().
		Int("stops", ds.Catalogue.StopCount()).
		Int("routes", ds.Catalogue.RouteCount()).
		Int("stat_requests", len(ds.Requests)).
		Bool("routing", ds.Router != nil).
		Msg("dataset ready")
	return ds, nil
}

func hasRequest(reqs []loader.StatRequest, kind string) bool {
	for _, req := range reqs {
		if req.Type == kind {
			return true
		}
	}
	return false
}

// WriteJSON answers the dataset's stat requests as a JSON array.
func (d *Dataset) WriteJSON(w io.Writer) error {
	return d.Responder.WriteJSON(w, d.Requests)
}

// WriteText answers the dataset's Bus and Stop requests one line each.
func (d *Dataset) WriteText(w io.Writer) error {
	return d.Responder.WriteText(w, d.Requests)
}

// Write answers the stat requests in the given output format.
func (d *Dataset) Write(w io.Writer, format string) error {
	switch format {
	case FormatJSON, "":
		return d.WriteJSON(w)
	case FormatText:
		return d.WriteText(w)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// ServerInfo describes the dataset for the HTTP health endpoint.
func (d *Dataset) ServerInfo() server.Info {
	info := server.Info{
		DatasetID: d.ID,
		Stops:     d.Catalogue.StopCount(),
		Routes:    d.Catalogue.RouteCount(),
	}
	if d.Router != nil {
		info.RouterID = d.Router.ID()
	}
	return info
}
