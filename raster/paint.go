package raster

import (
	"image"
	"image/color"
	"math"

	"github.com/gogpu/motion"
	"github.com/gogpu/motion/node"
)

// paintSource returns the image a paint fills with. m maps the paint's
// local space to pixels.
func paintSource(p node.Paint, m motion.Matrix, opacity float64) image.Image {
	if p.Gradient == nil || len(p.Gradient.Stops) == 0 {
		c := p.Color
		c.A *= opacity
		return image.NewUniform(c.Color())
	}
	return newGradient(p.Gradient, m.Invert(), opacity)
}

// gradient is an unbounded image sampling a linear or radial gradient.
type gradient struct {
	g       *node.GradientPaint
	inv     motion.Matrix // pixels to paint space
	opacity float64

	axis   motion.Vec2
	radius float64
	focal  motion.Vec2
}

func newGradient(g *node.GradientPaint, inv motion.Matrix, opacity float64) *gradient {
	gr := &gradient{g: g, inv: inv, opacity: opacity}
	gr.axis = g.End.Sub(g.Start)
	gr.radius = gr.axis.Length()
	gr.focal = g.Start
	if g.Type == motion.GradientRadial && g.HighlightLength != 0 {
		h := min(max(g.HighlightLength/100, -0.99), 0.99)
		angle := gr.axis.Atan2() + motion.Radians(g.HighlightAngle)
		gr.focal = g.Start.Add(motion.V2(math.Cos(angle), math.Sin(angle)).Mul(h * gr.radius))
	}
	return gr
}

func (*gradient) ColorModel() color.Model { return color.NRGBA64Model }

func (*gradient) Bounds() image.Rectangle {
	const inf = 1 << 30
	return image.Rect(-inf, -inf, inf, inf)
}

func (g *gradient) At(x, y int) color.Color {
	p := g.inv.TransformPoint(motion.V2(float64(x)+0.5, float64(y)+0.5))
	c := motion.ColorAt(g.g.Stops, g.offset(p))
	c.A *= g.opacity
	return color.NRGBA64{
		R: uint16(clamp01(c.R)*0xffff + 0.5),
		G: uint16(clamp01(c.G)*0xffff + 0.5),
		B: uint16(clamp01(c.B)*0xffff + 0.5),
		A: uint16(clamp01(c.A)*0xffff + 0.5),
	}
}

// offset returns the gradient parameter at p.
func (g *gradient) offset(p motion.Vec2) float64 {
	if g.g.Type != motion.GradientRadial {
		l2 := g.axis.Dot(g.axis)
		if l2 == 0 {
			return 0
		}
		return p.Sub(g.g.Start).Dot(g.axis) / l2
	}
	if g.radius == 0 {
		return 1
	}
	if g.focal == g.g.Start {
		return p.Distance(g.g.Start) / g.radius
	}

	// Distance from the focal point to p relative to the distance from
	// the focal point to the circle along the same ray.
	dir := p.Sub(g.focal)
	dl := dir.Length()
	if dl == 0 {
		return 0
	}
	u := dir.Mul(1 / dl)
	fc := g.focal.Sub(g.g.Start)
	b := u.Dot(fc)
	s := -b + math.Sqrt(max(b*b-fc.Dot(fc)+g.radius*g.radius, 0))
	if s <= 0 {
		return 1
	}
	return dl / s
}

func clamp01(v float64) float64 {
	return min(max(v, 0), 1)
}
