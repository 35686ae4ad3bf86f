package stroke

import (
	"math"

	"github.com/gogpu/motion"
)

// DefaultTolerance is the flattening tolerance used when none is set.
const DefaultTolerance = 0.25

// maxFlattenDepth bounds curve subdivision.
const maxFlattenDepth = 16

// Style defines the geometry of a stroke.
type Style struct {
	Width      float64
	Cap        motion.LineCap
	Join       motion.LineJoin
	MiterLimit float64
}

// DefaultStyle returns a one pixel butt-capped stroke with miter joins.
func DefaultStyle() Style {
	return Style{
		Width:      1.0,
		Cap:        motion.LineCapButt,
		Join:       motion.LineJoinMiter,
		MiterLimit: 4.0,
	}
}

// Expand strokes every contour of c and returns the outlines as one
// compound path filled with the non-zero rule.
func Expand(c motion.CompoundPath, style Style, tolerance float64) motion.CompoundPath {
	out := motion.CompoundPath{FillRule: motion.FillRuleNonZero}
	if !(style.Width > 0) {
		return out
	}
	e := NewExpander(style)
	e.SetTolerance(tolerance)
	for i := range c.Paths {
		out.Append(e.Expand(&c.Paths[i])...)
	}
	return out
}

// Expander converts stroked contours to filled outlines. An Expander is
// reusable but not safe for concurrent use.
type Expander struct {
	style     Style
	tolerance float64

	forward  outline
	backward outline
	output   []motion.BezierPath

	startPt   motion.Vec2
	startNorm motion.Vec2
	startTan  motion.Vec2
	lastPt    motion.Vec2
	lastTan   motion.Vec2
	lastNorm  motion.Vec2 // normal at lastPt scaled to half the width

	// joinThresh skips joins whose angle change is below tolerance.
	joinThresh float64
}

// NewExpander returns an expander for style.
func NewExpander(style Style) *Expander {
	return &Expander{
		style:     style,
		tolerance: DefaultTolerance,
	}
}

// SetTolerance sets the curve flattening tolerance. Non-positive values
// are ignored.
func (e *Expander) SetTolerance(tolerance float64) {
	if tolerance > 0 {
		e.tolerance = tolerance
	}
}

// Expand returns the outline of one stroked contour.
func (e *Expander) Expand(p *motion.BezierPath) []motion.BezierPath {
	e.reset()
	if p.Len() == 0 || !(e.style.Width > 0) {
		return nil
	}

	e.startPt = p.Vertex(0).Point
	e.lastPt = e.startPt
	closing := -1
	if p.Closed() {
		closing = p.SegmentCount() - 1
	}
	for i := range p.SegmentCount() {
		seg := p.Segment(i)
		if i == closing && seg.P0 == seg.P3 && seg.IsLine() {
			continue
		}
		if seg.IsLine() {
			e.lineTo(seg.P3)
			continue
		}
		e.curveTo(seg)
	}

	if p.Closed() {
		e.finishClosed()
	} else {
		e.finish()
	}
	return e.output
}

func (e *Expander) reset() {
	e.forward.reset()
	e.backward.reset()
	e.output = nil
	e.startPt = motion.Vec2{}
	e.startNorm = motion.Vec2{}
	e.startTan = motion.Vec2{}
	e.lastPt = motion.Vec2{}
	e.lastTan = motion.Vec2{}
	e.lastNorm = motion.Vec2{}
	e.joinThresh = 2.0 * e.tolerance / e.style.Width
}

// normal returns the perpendicular of tangent scaled to half the width.
func (e *Expander) normal(tangent motion.Vec2) motion.Vec2 {
	return perp(tangent).Mul(0.5 * e.style.Width / tangent.Length())
}

func (e *Expander) lineTo(p motion.Vec2) {
	tangent := p.Sub(e.lastPt)
	if tangent.Dot(tangent) < 1e-20 {
		return
	}
	e.doJoin(tangent)
	e.lastTan = tangent
	norm := e.normal(tangent)
	e.forward.lineTo(p.Sub(norm))
	e.backward.lineTo(p.Add(norm))
	e.lastPt = p
	e.lastNorm = norm
}

// curveTo flattens a cubic segment into lines.
func (e *Expander) curveTo(c motion.CubicBez) {
	pts := e.flatten(c, nil, 0)
	for _, p := range pts {
		e.lineTo(p)
	}
}

// flatten appends the end points of a polyline approximating c.
func (e *Expander) flatten(c motion.CubicBez, pts []motion.Vec2, depth int) []motion.Vec2 {
	d := math.Max(distanceToLine(c.P1, c.P0, c.P3), distanceToLine(c.P2, c.P0, c.P3))
	if d < e.tolerance || depth >= maxFlattenDepth || math.IsNaN(d) {
		return append(pts, c.P3)
	}
	left, right := c.Split(0.5)
	pts = e.flatten(left, pts, depth+1)
	return e.flatten(right, pts, depth+1)
}

// doJoin connects the segment starting with tan0 to the previous one.
func (e *Expander) doJoin(tan0 motion.Vec2) {
	norm := e.normal(tan0)
	p0 := e.lastPt

	if e.forward.empty() {
		e.forward.moveTo(p0.Sub(norm))
		e.backward.moveTo(p0.Add(norm))
		e.startTan = tan0
		e.startNorm = norm
		return
	}

	ab, cd := e.lastTan, tan0
	cross := ab.Cross(cd)
	dot := ab.Dot(cd)
	hypot := math.Hypot(cross, dot)

	// Nearly straight continuations still connect both sides so the
	// outlines stay continuous.
	if dot > 0.0 && math.Abs(cross) < hypot*e.joinThresh {
		e.forward.lineTo(p0.Sub(norm))
		e.backward.lineTo(p0.Add(norm))
		return
	}

	switch e.style.Join {
	case motion.LineJoinBevel:
		e.forward.lineTo(p0.Sub(norm))
		e.backward.lineTo(p0.Add(norm))
	case motion.LineJoinRound:
		e.roundJoin(p0, norm, cross, dot)
	default:
		limit := e.style.MiterLimit * e.style.MiterLimit
		if 2.0*hypot < (hypot+dot)*limit {
			e.miter(p0, norm, ab, cd, cross)
		}
		e.forward.lineTo(p0.Sub(norm))
		e.backward.lineTo(p0.Add(norm))
	}
}

// miter adds the miter point on the outer side of the join.
func (e *Expander) miter(p0, norm, ab, cd motion.Vec2, cross float64) {
	lastNorm := e.normal(ab)
	switch {
	case cross > 0.0:
		fpLast, fpThis := p0.Sub(lastNorm), p0.Sub(norm)
		h := ab.Cross(fpThis.Sub(fpLast)) / cross
		e.forward.lineTo(fpThis.Sub(cd.Mul(h)))
		e.backward.lineTo(p0)
	case cross < 0.0:
		fpLast, fpThis := p0.Add(lastNorm), p0.Add(norm)
		h := ab.Cross(fpThis.Sub(fpLast)) / cross
		e.backward.lineTo(fpThis.Sub(cd.Mul(h)))
		e.forward.lineTo(p0)
	}
}

// roundJoin sweeps an arc on the outer side from the previous normal to
// norm.
func (e *Expander) roundJoin(p0, norm motion.Vec2, cross, dot float64) {
	lastNorm := e.normal(e.lastTan)
	angle := math.Atan2(cross, dot)
	if angle > 0.0 {
		e.backward.lineTo(p0.Add(norm))
		e.forward.arc(p0, lastNorm.Neg(), angle)
	} else {
		e.forward.lineTo(p0.Sub(norm))
		e.backward.arc(p0, lastNorm, angle)
	}
}

// finish closes an open contour with its caps.
func (e *Expander) finish() {
	if e.forward.empty() {
		return
	}
	out := outline{verts: e.forward.verts}
	e.cap(&out, e.lastPt, e.lastNorm.Neg(), false)
	out.appendReversed(&e.backward)
	e.cap(&out, e.startPt, e.startNorm, true)
	e.output = append(e.output, out.path())
	e.forward = outline{}
	e.backward = outline{}
}

// finishClosed emits the two sides of a closed contour.
func (e *Expander) finishClosed() {
	if e.forward.empty() {
		return
	}
	e.doJoin(e.startTan)
	fwd := e.forward.path()
	back := e.backward.path()
	e.output = append(e.output, fwd, back.Reversed())
	e.forward = outline{}
	e.backward = outline{}
}

// cap joins the two sides at center. norm points from center to the side
// the outline is currently on.
func (e *Expander) cap(out *outline, center, norm motion.Vec2, last bool) {
	switch e.style.Cap {
	case motion.LineCapRound:
		out.arc(center, norm, math.Pi)
	case motion.LineCapSquare:
		out.lineTo(frame(center, norm, motion.V2(1, 1)))
		out.lineTo(frame(center, norm, motion.V2(-1, 1)))
		if !last {
			out.lineTo(center.Sub(norm))
		}
	default:
		if !last {
			out.lineTo(center.Sub(norm))
		}
	}
}

// frame maps p from the cap frame spanned by norm and its perpendicular.
func frame(center, norm, p motion.Vec2) motion.Vec2 {
	return motion.V2(
		norm.X*p.X-norm.Y*p.Y+center.X,
		norm.Y*p.X+norm.X*p.Y+center.Y,
	)
}

func perp(v motion.Vec2) motion.Vec2 {
	return motion.V2(-v.Y, v.X)
}

// distanceToLine returns the distance from p to the segment a-b.
func distanceToLine(p, a, b motion.Vec2) float64 {
	ab := b.Sub(a)
	abLen := ab.Length()
	if abLen < 1e-10 {
		return p.Distance(a)
	}
	t := p.Sub(a).Dot(ab) / (abLen * abLen)
	switch {
	case t < 0:
		return p.Distance(a)
	case t > 1:
		return p.Distance(b)
	}
	return p.Distance(a.Add(ab.Mul(t)))
}
