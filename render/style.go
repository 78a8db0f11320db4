package render

import (
	"strings"

	"github.com/pkg/errors"
)

// Size of the drawing surface in pixels, and the margin kept clear around the
// triangle.
type Canvas struct {
	Width   int     `yaml:"width"`
	Height  int     `yaml:"height"`
	Padding float64 `yaml:"padding"`
}

// Colors are hex strings in #rgb, #rrggbb or #rrggbbaa form. Sizes are pixels.
type Style struct {
	Background string `yaml:"background"`

	OutlineColor string  `yaml:"outline_color"`
	OutlineWidth float64 `yaml:"outline_width"`
	FillColor    string  `yaml:"fill_color"`

	VertexColor       string  `yaml:"vertex_color"`
	VertexRadius      float64 `yaml:"vertex_radius"`
	VertexLineWidth   float64 `yaml:"vertex_line_width"`
	VertexFontSize    float64 `yaml:"vertex_font_size"`
	VertexLabelOffset float64 `yaml:"vertex_label_offset"`

	AngleColor         string  `yaml:"angle_color"`
	AngleArcWidth      float64 `yaml:"angle_arc_width"`
	AngleArcRadius     float64 `yaml:"angle_arc_radius"`
	AngleLabelRadius   float64 `yaml:"angle_label_radius"`
	AngleLabelFontSize float64 `yaml:"angle_label_font_size"`
}

func DefaultCanvas() Canvas {
	return Canvas{Width: 400, Height: 400, Padding: 50}
}

func DefaultStyle() Style {
	return Style{
		Background: "#ffffff",

		OutlineColor: "#2d3748",
		OutlineWidth: 3,
		FillColor:    "#667eea1a",

		VertexColor:       "#667eea",
		VertexRadius:      6,
		VertexLineWidth:   2,
		VertexFontSize:    16,
		VertexLabelOffset: 25,

		AngleColor:         "#e53e3e",
		AngleArcWidth:      2,
		AngleArcRadius:     30,
		AngleLabelRadius:   45,
		AngleLabelFontSize: 14,
	}
}

func (c Canvas) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Errorf("canvas size must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.Padding < 0 {
		return errors.Errorf("canvas padding must not be negative, got %g", c.Padding)
	}
	if 2*c.Padding >= float64(c.Width) || 2*c.Padding >= float64(c.Height) {
		return errors.Errorf("canvas padding %g leaves no room on a %dx%d canvas", c.Padding, c.Width, c.Height)
	}
	return nil
}

func (s Style) Validate() error {
	colors := map[string]string{
		"background":    s.Background,
		"outline_color": s.OutlineColor,
		"fill_color":    s.FillColor,
		"vertex_color":  s.VertexColor,
		"angle_color":   s.AngleColor,
	}
	for name, value := range colors {
		if !isHexColor(value) {
			return errors.Errorf("%s: invalid hex color %q", name, value)
		}
	}
	if s.VertexFontSize <= 0 || s.AngleLabelFontSize <= 0 {
		return errors.New("font sizes must be positive")
	}
	return nil
}

// gg silently draws in black when handed a malformed color, so catch it up
// front.
func isHexColor(s string) bool {
	if !strings.HasPrefix(s, "#") {
		return false
	}
	digits := s[1:]
	switch len(digits) {
	case 3, 6, 8:
	default:
		return false
	}
	for _, r := range digits {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return false
		}
	}
	return true
}
