package raster

import (
	"image"
	"math"

	"golang.org/x/image/vector"

	"github.com/gogpu/motion"
)

// coverage returns the antialiased coverage of c in pixel space, or nil
// when c is empty.
func coverage(bounds image.Rectangle, c motion.CompoundPath, rule motion.FillRule) *image.Alpha {
	if c.IsEmpty() {
		return nil
	}
	if rule != motion.FillRuleEvenOdd || len(c.Paths) < 2 {
		return rasterize(bounds, c.Paths)
	}

	// The vector rasterizer accumulates non-zero winding only; even-odd
	// combines the contours one at a time.
	acc := image.NewAlpha(bounds)
	for i := range c.Paths {
		one := rasterize(bounds, c.Paths[i:i+1])
		for j, b := range one.Pix {
			a := int(acc.Pix[j])
			acc.Pix[j] = uint8(a + int(b) - 2*a*int(b)/255)
		}
	}
	return acc
}

// rasterize fills paths with the non-zero rule. Open contours are closed.
func rasterize(bounds image.Rectangle, paths []motion.BezierPath) *image.Alpha {
	a := image.NewAlpha(bounds)
	z := vector.NewRasterizer(bounds.Dx(), bounds.Dy())
	drawn := false
	for i := range paths {
		drawn = addPath(z, &paths[i]) || drawn
	}
	if drawn {
		z.Draw(a, a.Bounds(), image.Opaque, image.Point{})
	}
	return a
}

func addPath(z *vector.Rasterizer, p *motion.BezierPath) bool {
	if p.Len() < 2 || !finite(p.Bounds()) {
		return false
	}
	v := p.Vertex(0).Point
	z.MoveTo(float32(v.X), float32(v.Y))
	for i := range p.SegmentCount() {
		s := p.Segment(i)
		if s.IsLine() {
			z.LineTo(float32(s.P3.X), float32(s.P3.Y))
			continue
		}
		z.CubeTo(
			float32(s.P1.X), float32(s.P1.Y),
			float32(s.P2.X), float32(s.P2.Y),
			float32(s.P3.X), float32(s.P3.Y),
		)
	}
	z.ClosePath()
	return true
}

func finite(r motion.Rect) bool {
	// Coordinates beyond float32 precision cannot be placed on a pixel.
	const limit = 1 << 24
	for _, v := range []float64{r.Min.X, r.Min.Y, r.Max.X, r.Max.Y} {
		if math.IsNaN(v) || math.Abs(v) > limit {
			return false
		}
	}
	return true
}

// alphaToCoverage converts an alpha mask to fractional coverage.
func alphaToCoverage(a *image.Alpha) []float64 {
	out := make([]float64, len(a.Pix))
	for i, v := range a.Pix {
		out[i] = float64(v) / 255
	}
	return out
}

// applyCoverage scales every premultiplied pixel of img by cov.
func applyCoverage(img *image.RGBA, cov []float64) {
	for i, c := range cov {
		if c >= 1 {
			continue
		}
		px := img.Pix[i*4 : i*4+4 : i*4+4]
		if c <= 0 {
			px[0], px[1], px[2], px[3] = 0, 0, 0, 0
			continue
		}
		for k := range px {
			px[k] = uint8(float64(px[k])*c + 0.5)
		}
	}
}
