package loader

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/theoremus-urban-solutions/transit-catalogue/catalogue"
)

const sampleJSON = `{
  "base_requests": [
    {"type": "Bus", "name": "114", "stops": ["Morskoy vokzal", "Rivierskiy most"], "is_roundtrip": false},
    {"type": "Stop", "name": "Rivierskiy most", "latitude": 43.587795, "longitude": 39.716901,
     "road_distances": {"Morskoy vokzal": 850}},
    {"type": "Stop", "name": "Morskoy vokzal", "latitude": 43.581969, "longitude": 39.719848,
     "road_distances": {"Rivierskiy most": 850}}
  ],
  "render_settings": {
    "width": 200, "height": 200, "padding": 30,
    "stop_radius": 5, "line_width": 14,
    "bus_label_font_size": 20, "bus_label_offset": [7, 15],
    "stop_label_font_size": 20, "stop_label_offset": [7, -3],
    "underlayer_color": [255, 255, 255, 0.85], "underlayer_width": 3,
    "color_palette": ["green", [255, 160, 0], "red"]
  },
  "routing_settings": {"bus_wait_time": 6, "bus_velocity": 40},
  "stat_requests": [
    {"id": 1, "type": "Stop", "name": "Rivierskiy most"},
    {"id": 2, "type": "Bus", "name": "114"},
    {"id": 3, "type": "Route", "from": "Morskoy vokzal", "to": "Rivierskiy most"},
    {"id": 4, "type": "Map"}
  ]
}`

// TestDecodeJSON_Sample tests decoding every section of a document
func TestDecodeJSON_Sample(t *testing.T) {
	doc, err := New().DecodeJSON(strings.NewReader(sampleJSON))
	if err != nil {
		t.Fatalf("DecodeJSON: %v", err)
	}
	if len(doc.BaseRequests) != 3 || len(doc.StatRequests) != 4 {
		t.Fatalf("got %d base and %d stat requests", len(doc.BaseRequests), len(doc.StatRequests))
	}
	if doc.RoutingSettings == nil || doc.RoutingSettings.BusVelocity != 40 || doc.RoutingSettings.BusWaitTime != 6 {
		t.Errorf("routing settings = %+v", doc.RoutingSettings)
	}
	rs := doc.RenderSettings
	if rs == nil {
		t.Fatal("render settings missing")
	}
	if len(rs.ColorPalette) != 3 || rs.ColorPalette[1].String() != "rgb(255,160,0)" {
		t.Errorf("color palette = %v", rs.ColorPalette)
	}
	if rs.UnderlayerColor.String() != "rgba(255,255,255,0.85)" {
		t.Errorf("underlayer color = %v", rs.UnderlayerColor)
	}
	if rs.StopLabelOffset != [2]float64{7, -3} {
		t.Errorf("stop label offset = %v", rs.StopLabelOffset)
	}
	route := doc.StatRequests[2]
	if route.Type != TypeRoute || route.From != "Morskoy vokzal" || route.To != "Rivierskiy most" {
		t.Errorf("route request = %+v", route)
	}
}

func TestDecodeJSON_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"syntax error", `{"base_requests": [`},
		{"unknown base type", `{"base_requests": [{"type": "Tram", "name": "T1"}]}`},
		{"stop without coordinates", `{"base_requests": [{"type": "Stop", "name": "A"}]}`},
		{"bus without roundtrip flag", `{"base_requests": [{"type": "Bus", "name": "1", "stops": ["A"]}]}`},
		{"bus without stops", `{"base_requests": [{"type": "Bus", "name": "1", "is_roundtrip": true}]}`},
		{"negative road distance", `{"base_requests": [{"type": "Stop", "name": "A", "latitude": 1, "longitude": 1, "road_distances": {"B": -5}}]}`},
		{"route without endpoints", `{"stat_requests": [{"id": 1, "type": "Route"}]}`},
		{"bus query without name", `{"stat_requests": [{"id": 1, "type": "Bus"}]}`},
		{"unknown stat type", `{"stat_requests": [{"id": 1, "type": "Train", "name": "x"}]}`},
		{"zero velocity", `{"routing_settings": {"bus_wait_time": 6, "bus_velocity": 0}}`},
		{"bad palette color", `{"render_settings": {"width": 10, "height": 10, "color_palette": [[1, 2]]}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New().DecodeJSON(strings.NewReader(tt.input)); err == nil {
				t.Errorf("DecodeJSON(%s) should fail", tt.input)
			}
		})
	}
}

// TestApply_Order tests that buses and distances may reference stops defined later
func TestApply_Order(t *testing.T) {
	l := New()
	doc, err := l.DecodeJSON(strings.NewReader(sampleJSON))
	if err != nil {
		t.Fatal(err)
	}
	cat := catalogue.New()
	if err := l.Apply(cat, doc.BaseRequests); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	if cat.StopCount() != 2 {
		t.Errorf("StopCount = %d, want 2", cat.StopCount())
	}
	if len(cat.Placeholders()) != 0 {
		t.Errorf("placeholders = %v, want none", cat.Placeholders())
	}
	stop, ok := cat.FindStop("Morskoy vokzal")
	if !ok || !stop.Defined || stop.Coordinates.Lat != 43.581969 {
		t.Errorf("FindStop = %+v, %v", stop, ok)
	}
	if d, ok := cat.GetDistance("Rivierskiy most", "Morskoy vokzal"); !ok || d != 850 {
		t.Errorf("GetDistance = %d, %v", d, ok)
	}
	info, err := cat.GetRouteInfo("114")
	if err != nil {
		t.Fatalf("GetRouteInfo: %v", err)
	}
	if info.StopCount != 3 || info.RouteLength != 1700 {
		t.Errorf("route info = %+v", info)
	}
	if l.Warnings().Len() != 0 {
		t.Errorf("unexpected warnings: %d kinds", l.Warnings().Len())
	}
}

func TestApply_Warnings(t *testing.T) {
	lat, lng := 55.0, 37.0
	roundtrip := true
	reqs := []BaseRequest{
		{Type: TypeStop, Name: "A", Latitude: &lat, Longitude: &lng, RoadDistances: map[string]int{"A": 0, "Ghost": 100}},
		{Type: TypeStop, Name: "A", Latitude: &lat, Longitude: &lng},
		{Type: TypeBus, Name: "1", Stops: []string{"A", "Ghost", "Phantom", "A"}, IsRoundtrip: &roundtrip},
	}

	l := New()
	cat := catalogue.New()
	if err := l.Apply(cat, reqs); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	w := l.Warnings()
	tests := []struct {
		kind  string
		count int
	}{
		{WarningPlaceholderStop, 2},
		{WarningRedefinedStop, 1},
		{WarningSelfDistance, 1},
	}
	for _, tt := range tests {
		if got := w.Count(tt.kind); got != tt.count {
			t.Errorf("Count(%s) = %d, want %d", tt.kind, got, tt.count)
		}
	}
	if got := w.Examples(WarningPlaceholderStop); !slices.Equal(got, []string{"Ghost", "Phantom"}) {
		t.Errorf("placeholder examples = %v", got)
	}
}

func TestApply_StrictCatalogue(t *testing.T) {
	roundtrip := false
	reqs := []BaseRequest{
		{Type: TypeBus, Name: "1", Stops: []string{"Ghost", "Phantom"}, IsRoundtrip: &roundtrip},
	}
	err := New().Apply(catalogue.New(catalogue.WithStrictStops()), reqs)
	var undefined *catalogue.UndefinedStopsError
	if !errors.As(err, &undefined) {
		t.Fatalf("Apply error = %v, want *UndefinedStopsError", err)
	}
	if !slices.Equal(undefined.Names, []string{"Ghost", "Phantom"}) {
		t.Errorf("undefined names = %v", undefined.Names)
	}
}

func TestApply_DuplicateBus(t *testing.T) {
	roundtrip := false
	reqs := []BaseRequest{
		{Type: TypeBus, Name: "1", Stops: []string{"A", "B"}, IsRoundtrip: &roundtrip},
		{Type: TypeBus, Name: "1", Stops: []string{"B", "C"}, IsRoundtrip: &roundtrip},
	}
	err := New().Apply(catalogue.New(), reqs)
	if !errors.Is(err, catalogue.ErrRouteExists) {
		t.Errorf("Apply error = %v, want ErrRouteExists", err)
	}
}

func TestWarningAggregator_KeepsThreeExamples(t *testing.T) {
	w := NewWarningAggregator()
	for _, name := range []string{"a", "b", "c", "d", "e"} {
		w.Add(WarningPlaceholderStop, name)
	}
	if w.Count(WarningPlaceholderStop) != 5 {
		t.Errorf("Count = %d, want 5", w.Count(WarningPlaceholderStop))
	}
	if got := w.Examples(WarningPlaceholderStop); !slices.Equal(got, []string{"a", "b", "c"}) {
		t.Errorf("Examples = %v", got)
	}
	if w.Count("missing") != 0 || w.Examples("missing") != nil {
		t.Error("unknown kinds should be empty")
	}
}
