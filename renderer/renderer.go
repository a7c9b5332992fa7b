// Package renderer draws the catalogue's route network as an SVG map.
//
// Layers are drawn in a fixed order so later ones sit on top: route lines,
// route name labels, stop circles, stop name labels. Routes are taken in name
// order and colored by cycling through the palette; stops not served by any
// route are left off the map.
package renderer

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/go-playground/validator/v10"

	"github.com/theoremus-urban-solutions/transit-catalogue/catalogue"
	"github.com/theoremus-urban-solutions/transit-catalogue/geo"
	"github.com/theoremus-urban-solutions/transit-catalogue/svg"
)

const fontFamily = "Verdana"

// Settings controls the map geometry and styling.
type Settings struct {
	Width             float64     `json:"width" yaml:"width" validate:"gt=0"`
	Height            float64     `json:"height" yaml:"height" validate:"gt=0"`
	Padding           float64     `json:"padding" yaml:"padding" validate:"gte=0"`
	LineWidth         float64     `json:"line_width" yaml:"lineWidth" validate:"gte=0"`
	StopRadius        float64     `json:"stop_radius" yaml:"stopRadius" validate:"gte=0"`
	BusLabelFontSize  int         `json:"bus_label_font_size" yaml:"busLabelFontSize" validate:"gte=0"`
	BusLabelOffset    [2]float64  `json:"bus_label_offset" yaml:"busLabelOffset"`
	StopLabelFontSize int         `json:"stop_label_font_size" yaml:"stopLabelFontSize" validate:"gte=0"`
	StopLabelOffset   [2]float64  `json:"stop_label_offset" yaml:"stopLabelOffset"`
	UnderlayerColor   svg.Color   `json:"underlayer_color" yaml:"underlayerColor"`
	UnderlayerWidth   float64     `json:"underlayer_width" yaml:"underlayerWidth" validate:"gte=0"`
	ColorPalette      []svg.Color `json:"color_palette" yaml:"colorPalette" validate:"min=1"`
}

// Validate checks the settings and that the padding leaves room to draw.
func (s Settings) Validate() error {
	if err := validator.New().Struct(s); err != nil {
		return fmt.Errorf("invalid render settings: %w", err)
	}
	if 2*s.Padding >= min(s.Width, s.Height) {
		return fmt.Errorf("invalid render settings: padding %v must be less than half of %vx%v", s.Padding, s.Width, s.Height)
	}
	return nil
}

// Renderer draws catalogue maps with fixed settings.
type Renderer struct {
	settings Settings
}

// New creates a Renderer after validating its settings.
func New(settings Settings) (*Renderer, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return &Renderer{settings: settings}, nil
}

// Settings returns the renderer settings.
func (r *Renderer) Settings() Settings { return r.settings }

type mapStop struct {
	name  string
	point svg.Point
}

// Render builds the map document for the current catalogue contents.
func (r *Renderer) Render(cat *catalogue.Catalogue) *svg.Document {
	routes := cat.AllRoutes()
	slices.SortFunc(routes, func(a, b catalogue.Route) int { return cmp.Compare(a.Name, b.Name) })

	served := make(map[catalogue.StopID]struct{})
	var coords []geo.Coordinates
	for _, route := range routes {
		for _, id := range route.Stops {
			stop, _ := cat.Stop(id)
			coords = append(coords, stop.Coordinates)
			served[id] = struct{}{}
		}
	}
	projector := NewSphereProjector(coords, r.settings.Width, r.settings.Height, r.settings.Padding)
	project := func(id catalogue.StopID) svg.Point {
		stop, _ := cat.Stop(id)
		return projector.Project(stop.Coordinates)
	}

	doc := &svg.Document{}
	r.drawRouteLines(doc, routes, project)
	r.drawRouteLabels(doc, routes, project)

	stops := make([]mapStop, 0, len(served))
	for id := range served {
		stop, _ := cat.Stop(id)
		stops = append(stops, mapStop{name: stop.Name, point: projector.Project(stop.Coordinates)})
	}
	slices.SortFunc(stops, func(a, b mapStop) int { return cmp.Compare(a.name, b.name) })
	r.drawStopCircles(doc, stops)
	r.drawStopLabels(doc, stops)
	return doc
}

func (r *Renderer) color(i int) svg.Color {
	return r.settings.ColorPalette[i%len(r.settings.ColorPalette)]
}

func (r *Renderer) drawRouteLines(doc *svg.Document, routes []catalogue.Route, project func(catalogue.StopID) svg.Point) {
	for i, route := range routes {
		line := &svg.Polyline{PathProps: svg.PathProps{
			Fill:        svg.NoneColor,
			Stroke:      r.color(i),
			StrokeWidth: r.settings.LineWidth,
			LineCap:     svg.LineCapRound,
			LineJoin:    svg.LineJoinRound,
		}}
		stops := catalogue.DrivenStops(route)
		for _, id := range stops {
			line.AddPoint(project(id))
		}
		if !route.IsCircular {
			for j := len(stops) - 2; j >= 0; j-- {
				line.AddPoint(project(stops[j]))
			}
		}
		doc.Add(line)
	}
}

func (r *Renderer) drawRouteLabels(doc *svg.Document, routes []catalogue.Route, project func(catalogue.StopID) svg.Point) {
	for i, route := range routes {
		first, last := route.Stops[0], route.Stops[len(route.Stops)-1]
		r.addRouteLabel(doc, route.Name, r.color(i), project(first))
		if !route.IsCircular && first != last {
			r.addRouteLabel(doc, route.Name, r.color(i), project(last))
		}
	}
}

func (r *Renderer) addRouteLabel(doc *svg.Document, name string, color svg.Color, at svg.Point) {
	label := svg.Text{
		PathProps:  svg.PathProps{Fill: color},
		Position:   at,
		Offset:     svg.Point{X: r.settings.BusLabelOffset[0], Y: r.settings.BusLabelOffset[1]},
		FontSize:   r.settings.BusLabelFontSize,
		FontFamily: fontFamily,
		FontWeight: "bold",
		Data:       name,
	}
	underlayer := r.underlayer(label)
	doc.Add(&underlayer)
	doc.Add(&label)
}

func (r *Renderer) drawStopCircles(doc *svg.Document, stops []mapStop) {
	for _, s := range stops {
		doc.Add(&svg.Circle{
			PathProps: svg.PathProps{Fill: svg.Named("white")},
			Center:    s.point,
			Radius:    r.settings.StopRadius,
		})
	}
}

func (r *Renderer) drawStopLabels(doc *svg.Document, stops []mapStop) {
	for _, s := range stops {
		label := svg.Text{
			PathProps:  svg.PathProps{Fill: svg.Named("black")},
			Position:   s.point,
			Offset:     svg.Point{X: r.settings.StopLabelOffset[0], Y: r.settings.StopLabelOffset[1]},
			FontSize:   r.settings.StopLabelFontSize,
			FontFamily: fontFamily,
			Data:       s.name,
		}
		underlayer := r.underlayer(label)
		doc.Add(&underlayer)
		doc.Add(&label)
	}
}

// underlayer returns a copy of t restyled as its background outline.
func (r *Renderer) underlayer(t svg.Text) svg.Text {
	t.PathProps = svg.PathProps{
		Fill:        r.settings.UnderlayerColor,
		Stroke:      r.settings.UnderlayerColor,
		StrokeWidth: r.settings.UnderlayerWidth,
		LineCap:     svg.LineCapRound,
		LineJoin:    svg.LineJoinRound,
	}
	return t
}
