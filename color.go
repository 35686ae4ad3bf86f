package motion

import (
	"fmt"
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGBA represents a straight (non-premultiplied) color with red, green,
// blue, and alpha components. Each component is in the range [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// ParseHex parses "#rgb" or "#rrggbb" into an opaque color.
func ParseHex(s string) (RGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return RGBA{}, fmt.Errorf("motion: parse color %q: %w", s, err)
	}
	return RGBA{R: c.R, G: c.G, B: c.B, A: 1}, nil
}

// ColorFromComponents builds a color from a document color array with
// three or four components. Arrays whose components exceed 1 are treated
// as 0..255 values, as written by older exporters.
func ColorFromComponents(v []float64) RGBA {
	c := RGBA{A: 1}
	scale := 1.0
	for _, x := range v {
		if x > 1 {
			scale = 1.0 / 255
			break
		}
	}
	if len(v) > 0 {
		c.R = v[0] * scale
	}
	if len(v) > 1 {
		c.G = v[1] * scale
	}
	if len(v) > 2 {
		c.B = v[2] * scale
	}
	if len(v) > 3 {
		c.A = v[3] * scale
	}
	return c
}

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: uint8(clamp01(c.R)*255 + 0.5),
		G: uint8(clamp01(c.G)*255 + 0.5),
		B: uint8(clamp01(c.B)*255 + 0.5),
		A: uint8(clamp01(c.A)*255 + 0.5),
	}
}

// Premultiply returns a premultiplied color.
func (c RGBA) Premultiply() RGBA {
	return RGBA{
		R: c.R * c.A,
		G: c.G * c.A,
		B: c.B * c.A,
		A: c.A,
	}
}

// WithAlpha returns the color with its alpha multiplied by a.
func (c RGBA) WithAlpha(a float64) RGBA {
	c.A *= a
	return c
}

// Lerp interpolates channel-wise between two colors; the same t is applied
// to every channel, alpha included.
func (c RGBA) Lerp(other RGBA, t float64) RGBA {
	from := colorful.Color{R: c.R, G: c.G, B: c.B}
	rgb := from.BlendRgb(colorful.Color{R: other.R, G: other.G, B: other.B}, t)
	return RGBA{
		R: rgb.R,
		G: rgb.G,
		B: rgb.B,
		A: c.A + (other.A-c.A)*t,
	}
}

// Hex returns the color as "#rrggbb", dropping alpha.
func (c RGBA) Hex() string {
	return colorful.Color{R: clamp01(c.R), G: clamp01(c.G), B: clamp01(c.B)}.Hex()
}

// clamp01 clamps a value to [0, 1] range.
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Transparent = RGBA{}
)
