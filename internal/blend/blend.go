// Package blend composites premultiplied layers with the separable and
// non-separable blend modes of the W3C compositing model.
//
// References:
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/
package blend

import (
	"image"

	"github.com/gogpu/motion/model"
)

// Mode is a blend mode. The values mirror model.BlendMode.
type Mode uint8

const (
	Normal Mode = iota
	Multiply
	Screen
	Overlay
	Darken
	Lighten
	ColorDodge
	ColorBurn
	HardLight
	SoftLight
	Difference
	Exclusion
	Hue
	Saturation
	Color
	Luminosity
)

var modeNames = [...]string{
	"Normal", "Multiply", "Screen", "Overlay", "Darken", "Lighten",
	"ColorDodge", "ColorBurn", "HardLight", "SoftLight", "Difference",
	"Exclusion", "Hue", "Saturation", "Color", "Luminosity",
}

func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return "Unknown"
}

// FromModel returns the mode of a layer blend mode. Unknown values map
// to Normal.
func FromModel(m model.BlendMode) Mode {
	if int(m) < len(modeNames) {
		return Mode(m)
	}
	return Normal
}

// Pixel is a premultiplied color with components in [0, 1].
type Pixel struct {
	R, G, B, A float64
}

// Blend returns src composited over dst with mode.
//
// The result is Cs*(1-ab) + Cb*(1-as) + as*ab*B(Cb, Cs), with alpha
// as + ab*(1-as), where B operates on unpremultiplied channels.
func Blend(src, dst Pixel, mode Mode) Pixel {
	if src.A <= 0 {
		return dst
	}
	if mode == Normal || dst.A <= 0 {
		inv := 1 - src.A
		return Pixel{
			R: src.R + dst.R*inv,
			G: src.G + dst.G*inv,
			B: src.B + dst.B*inv,
			A: src.A + dst.A*inv,
		}
	}

	s := rgb{src.R / src.A, src.G / src.A, src.B / src.A}
	d := rgb{dst.R / dst.A, dst.G / dst.A, dst.B / dst.A}
	var b rgb
	if f := separable(mode); f != nil {
		b = rgb{f(d.r, s.r), f(d.g, s.g), f(d.b, s.b)}
	} else {
		b = nonSeparable(mode, d, s)
	}

	sa, da := src.A, dst.A
	both := sa * da
	return Pixel{
		R: src.R*(1-da) + dst.R*(1-sa) + both*b.r,
		G: src.G*(1-da) + dst.G*(1-sa) + both*b.g,
		B: src.B*(1-da) + dst.B*(1-sa) + both*b.b,
		A: sa + da*(1-sa),
	}
}

// Composite blends src onto dst where their bounds overlap. The source
// is scaled by opacity first. Both images hold premultiplied pixels, as
// image.RGBA does.
func Composite(dst, src *image.RGBA, mode Mode, opacity float64) {
	if opacity <= 0 {
		return
	}
	opacity = min(opacity, 1)
	r := dst.Rect.Intersect(src.Rect)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		si := src.PixOffset(r.Min.X, y)
		di := dst.PixOffset(r.Min.X, y)
		for x := r.Min.X; x < r.Max.X; x, si, di = x+1, si+4, di+4 {
			sp := src.Pix[si : si+4 : si+4]
			if sp[3] == 0 {
				continue
			}
			dp := dst.Pix[di : di+4 : di+4]
			s := Pixel{
				R: float64(sp[0]) / 255 * opacity,
				G: float64(sp[1]) / 255 * opacity,
				B: float64(sp[2]) / 255 * opacity,
				A: float64(sp[3]) / 255 * opacity,
			}
			d := Pixel{float64(dp[0]) / 255, float64(dp[1]) / 255, float64(dp[2]) / 255, float64(dp[3]) / 255}
			o := Blend(s, d, mode)
			dp[0], dp[1], dp[2], dp[3] = to8(o.R), to8(o.G), to8(o.B), to8(o.A)
		}
	}
}

func to8(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return uint8(v*255 + 0.5)
}
