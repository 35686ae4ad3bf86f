package node

import (
	"github.com/gogpu/motion"
	"github.com/gogpu/motion/keyframe"
	"github.com/gogpu/motion/model"
)

// GradientPaint is a resolved gradient.
type GradientPaint struct {
	Type            motion.GradientType
	Start           motion.Vec2
	End             motion.Vec2
	HighlightLength float64 // percent of the radius
	HighlightAngle  float64 // degrees
	Stops           []motion.ColorStop
}

// Paint is a resolved paint operation. Gradient, when non-nil, replaces
// Color.
type Paint struct {
	Stroke   bool
	Color    motion.RGBA
	Gradient *GradientPaint
	Opacity  float64
	FillRule motion.FillRule

	Width      float64
	Cap        motion.LineCap
	Join       motion.LineJoin
	MiterLimit float64
	Dash       *motion.Dash
}

// Renderable is geometry to be painted. Geometry is in the paint node's
// space; Matrix maps it to the space of the graph root and Opacity is
// the product of the enclosing group and repeater opacities.
type Renderable struct {
	Node     *Node
	Paint    Paint
	Geometry motion.CompoundPath
	Matrix   motion.Matrix
	Opacity  float64
}

func newRenderable(n *Node, p Paint, geometry motion.CompoundPath) Renderable {
	return Renderable{Node: n, Paint: p, Geometry: geometry, Matrix: motion.Identity(), Opacity: 1}
}

// under returns r placed inside a container with matrix m and opacity o.
func (r Renderable) under(m motion.Matrix, o float64) Renderable {
	r.Matrix = m.Multiply(r.Matrix)
	r.Opacity *= o
	return r
}

// fillRule resolves the winding rule of a fill: a merge upstream that
// asks for even-odd wins.
func fillRule(own motion.FillRule, in motion.CompoundPath) motion.FillRule {
	if in.FillRule == motion.FillRuleEvenOdd {
		return motion.FillRuleEvenOdd
	}
	return own
}

// Fill is the content of a solid fill.
type Fill struct {
	FillRule motion.FillRule
	Color    *keyframe.Track[motion.RGBA]
	Opacity  *keyframe.Track[float64]

	paint Paint
}

func (*Fill) kind() Kind { return KindFill }

// Paint returns the paint resolved by the last update.
func (f *Fill) Paint() Paint { return f.paint }

func (f *Fill) evaluate(frame float64) {
	f.paint = Paint{
		Color:   f.Color.ValueAt(frame),
		Opacity: clamp01(f.Opacity.ValueAt(frame) / 100),
	}
}

func (f *Fill) renderable(n *Node, in motion.CompoundPath) Renderable {
	p := f.paint
	p.FillRule = fillRule(f.FillRule, in)
	return newRenderable(n, p, in)
}

// dashTrack is one animated entry of a dash pattern.
type dashTrack struct {
	typ   model.DashType
	track *keyframe.Track[float64]
}

// strokeProps are the properties shared by solid and gradient strokes.
type strokeProps struct {
	Width      *keyframe.Track[float64]
	Cap        motion.LineCap
	Join       motion.LineJoin
	MiterLimit float64

	dash []dashTrack
}

// resolve fills the stroke fields of p at frame.
func (s *strokeProps) resolve(p *Paint, frame float64) {
	p.Stroke = true
	p.Width = max(s.Width.ValueAt(frame), 0)
	p.Cap, p.Join, p.MiterLimit = s.Cap, s.Join, s.MiterLimit
	p.Dash = nil
	if len(s.dash) == 0 {
		return
	}
	var lengths []float64
	offset := 0.0
	for _, d := range s.dash {
		v := d.track.ValueAt(frame)
		if d.typ == model.DashTypeOffset {
			offset = v
			continue
		}
		lengths = append(lengths, v)
	}
	p.Dash = motion.NewDash(lengths...).WithOffset(offset)
}

// Stroke is the content of a solid stroke.
type Stroke struct {
	strokeProps
	Color   *keyframe.Track[motion.RGBA]
	Opacity *keyframe.Track[float64]

	paint Paint
}

func (*Stroke) kind() Kind { return KindStroke }

// Paint returns the paint resolved by the last update.
func (s *Stroke) Paint() Paint { return s.paint }

func (s *Stroke) evaluate(frame float64) {
	s.paint = Paint{
		Color:   s.Color.ValueAt(frame),
		Opacity: clamp01(s.Opacity.ValueAt(frame) / 100),
	}
	s.resolve(&s.paint, frame)
}

func (s *Stroke) renderable(n *Node, in motion.CompoundPath) Renderable {
	return newRenderable(n, s.paint, in)
}

// gradientProps are the properties shared by gradient fills and strokes.
type gradientProps struct {
	Type            motion.GradientType
	NumStops        int
	Start           *keyframe.Track[motion.Vec2]
	End             *keyframe.Track[motion.Vec2]
	HighlightLength *keyframe.Track[float64]
	HighlightAngle  *keyframe.Track[float64]
	Colors          *keyframe.Track[[]float64]
}

func (g *gradientProps) resolve(frame float64) *GradientPaint {
	return &GradientPaint{
		Type:            g.Type,
		Start:           g.Start.ValueAt(frame),
		End:             g.End.ValueAt(frame),
		HighlightLength: g.HighlightLength.ValueAt(frame),
		HighlightAngle:  g.HighlightAngle.ValueAt(frame),
		Stops:           motion.GradientStops(g.Colors.ValueAt(frame), g.NumStops),
	}
}

// GradientFill is the content of a gradient fill.
type GradientFill struct {
	gradientProps
	FillRule motion.FillRule
	Opacity  *keyframe.Track[float64]

	paint Paint
}

func (*GradientFill) kind() Kind { return KindGradientFill }

// Paint returns the paint resolved by the last update.
func (g *GradientFill) Paint() Paint { return g.paint }

func (g *GradientFill) evaluate(frame float64) {
	g.paint = Paint{
		Gradient: g.resolve(frame),
		Opacity:  clamp01(g.Opacity.ValueAt(frame) / 100),
	}
}

func (g *GradientFill) renderable(n *Node, in motion.CompoundPath) Renderable {
	p := g.paint
	p.FillRule = fillRule(g.FillRule, in)
	return newRenderable(n, p, in)
}

// GradientStroke is the content of a gradient stroke.
type GradientStroke struct {
	gradientProps
	strokeProps
	Opacity *keyframe.Track[float64]

	paint Paint
}

func (*GradientStroke) kind() Kind { return KindGradientStroke }

// Paint returns the paint resolved by the last update.
func (g *GradientStroke) Paint() Paint { return g.paint }

func (g *GradientStroke) evaluate(frame float64) {
	g.paint = Paint{
		Gradient: g.gradientProps.resolve(frame),
		Opacity:  clamp01(g.Opacity.ValueAt(frame) / 100),
	}
	g.strokeProps.resolve(&g.paint, frame)
}

func (g *GradientStroke) renderable(n *Node, in motion.CompoundPath) Renderable {
	return newRenderable(n, g.paint, in)
}
