package svg

import (
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestDocument_Render(t *testing.T) {
	var doc Document
	line := &Polyline{PathProps: PathProps{
		Fill:        NoneColor,
		Stroke:      Named("green"),
		StrokeWidth: 14,
		LineCap:     LineCapRound,
		LineJoin:    LineJoinRound,
	}}
	line.AddPoint(Point{X: 50, Y: 50}).AddPoint(Point{X: 250.5, Y: 232.18})
	doc.Add(line)
	doc.Add(&Circle{Center: Point{X: 50, Y: 50}, Radius: 5, PathProps: PathProps{Fill: Named("white")}})
	doc.Add(&Text{
		PathProps:  PathProps{Fill: Named("black")},
		Position:   Point{X: 50, Y: 50},
		Offset:     Point{X: 7, Y: -3},
		FontSize:   20,
		FontFamily: "Verdana",
		Data:       "Ulitsa <Lizy> & \"Chaikinoi\"",
	})

	want := strings.Join([]string{
		`<?xml version="1.0" encoding="UTF-8" ?>`,
		`<svg xmlns="http://www.w3.org/2000/svg" version="1.1">`,
		`  <polyline points="50,50 250.5,232.18" fill="none" stroke="green" stroke-width="14" stroke-linecap="round" stroke-linejoin="round"/>`,
		`  <circle cx="50" cy="50" r="5" fill="white"/>`,
		`  <text fill="black" x="50" y="50" dx="7" dy="-3" font-size="20" font-family="Verdana">Ulitsa &lt;Lizy&gt; &amp; &quot;Chaikinoi&quot;</text>`,
		`</svg>`,
	}, "\n")

	if got := doc.String(); got != want {
		t.Errorf("Render mismatch\n got: %s\nwant: %s", got, want)
	}
	if doc.Len() != 3 {
		t.Errorf("Len = %d, want 3", doc.Len())
	}
}

func TestDocument_RenderEmpty(t *testing.T) {
	var doc Document
	want := "<?xml version=\"1.0\" encoding=\"UTF-8\" ?>\n<svg xmlns=\"http://www.w3.org/2000/svg\" version=\"1.1\">\n</svg>"
	if got := doc.String(); got != want {
		t.Errorf("empty document = %q, want %q", got, want)
	}
}

func TestColor_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"named", `"red"`, "red", false},
		{"rgb", `[255, 16, 12]`, "rgb(255,16,12)", false},
		{"rgba", `[255, 200, 23, 0.85]`, "rgba(255,200,23,0.85)", false},
		{"too few components", `[1, 2]`, "", true},
		{"component out of range", `[256, 0, 0]`, "", true},
		{"fractional component", `[1.5, 0, 0]`, "", true},
		{"opacity out of range", `[0, 0, 0, 2]`, "", true},
		{"object", `{"r": 1}`, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Color
			err := json.Unmarshal([]byte(tt.input), &c)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Unmarshal(%s) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && c.String() != tt.want {
				t.Errorf("Unmarshal(%s) = %q, want %q", tt.input, c.String(), tt.want)
			}
		})
	}
}

func TestColor_UnmarshalYAML(t *testing.T) {
	var settings struct {
		Underlayer Color   `yaml:"underlayer"`
		Palette    []Color `yaml:"palette"`
	}
	input := `
underlayer: [255, 255, 255, 0.85]
palette:
  - green
  - [255, 160, 0]
`
	if err := yaml.Unmarshal([]byte(input), &settings); err != nil {
		t.Fatalf("yaml.Unmarshal: %v", err)
	}
	if got := settings.Underlayer.String(); got != "rgba(255,255,255,0.85)" {
		t.Errorf("underlayer = %q", got)
	}
	if len(settings.Palette) != 2 || settings.Palette[0].String() != "green" || settings.Palette[1].String() != "rgb(255,160,0)" {
		t.Errorf("palette = %v", settings.Palette)
	}
}

func TestColor_MarshalJSON(t *testing.T) {
	b, err := json.Marshal([]Color{Named("red"), RGB(1, 2, 3), {}})
	if err != nil {
		t.Fatal(err)
	}
	if want := `["red","rgb(1,2,3)",""]`; string(b) != want {
		t.Errorf("Marshal = %s, want %s", b, want)
	}
}
