package svg

import (
	"encoding/json"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Color is an SVG paint value. The zero Color is unset and its attribute is
// omitted when rendering.
type Color struct {
	value string
}

// NoneColor is the explicit "none" paint.
var NoneColor = Named("none")

// Named returns a color given by name or any literal SVG accepts.
func Named(name string) Color { return Color{value: name} }

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{value: fmt.Sprintf("rgb(%d,%d,%d)", r, g, b)}
}

// RGBA returns a color with opacity in [0, 1].
func RGBA(r, g, b uint8, opacity float64) Color {
	return Color{value: fmt.Sprintf("rgba(%d,%d,%d,%s)", r, g, b, formatNumber(opacity))}
}

// IsSet reports whether the color was given a value.
func (c Color) IsSet() bool { return c.value != "" }

// String returns the SVG literal.
func (c Color) String() string { return c.value }

// MarshalJSON writes the SVG literal as a string.
func (c Color) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.value)
}

// UnmarshalJSON accepts a name, [r, g, b] or [r, g, b, opacity].
func (c *Color) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		*c = Named(name)
		return nil
	}
	var parts []float64
	if err := json.Unmarshal(data, &parts); err != nil {
		return fmt.Errorf("color must be a string or an array: %s", data)
	}
	parsed, err := fromComponents(parts)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// UnmarshalYAML accepts the same forms as UnmarshalJSON.
func (c *Color) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*c = Named(node.Value)
		return nil
	case yaml.SequenceNode:
		var parts []float64
		if err := node.Decode(&parts); err != nil {
			return fmt.Errorf("line %d: bad color components: %w", node.Line, err)
		}
		parsed, err := fromComponents(parts)
		if err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}
		*c = parsed
		return nil
	default:
		return fmt.Errorf("line %d: color must be a string or a list", node.Line)
	}
}

func fromComponents(parts []float64) (Color, error) {
	if len(parts) != 3 && len(parts) != 4 {
		return Color{}, fmt.Errorf("color needs 3 or 4 components, got %d", len(parts))
	}
	var rgb [3]uint8
	for i := range rgb {
		v := parts[i]
		if v < 0 || v > 255 || v != float64(int(v)) {
			return Color{}, fmt.Errorf("color component %v is not an integer in [0, 255]", v)
		}
		rgb[i] = uint8(v)
	}
	if len(parts) == 3 {
		return RGB(rgb[0], rgb[1], rgb[2]), nil
	}
	if parts[3] < 0 || parts[3] > 1 {
		return Color{}, fmt.Errorf("color opacity %v is outside [0, 1]", parts[3])
	}
	return RGBA(rgb[0], rgb[1], rgb[2], parts[3]), nil
}

// formatNumber prints v with at most six significant digits.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}
