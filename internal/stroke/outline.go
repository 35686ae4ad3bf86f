package stroke

import (
	"math"

	"github.com/gogpu/motion"
)

// outline accumulates the vertices of one side of a stroke.
type outline struct {
	verts []motion.BezierVertex
}

func (o *outline) reset() {
	o.verts = o.verts[:0]
}

func (o *outline) empty() bool {
	return len(o.verts) == 0
}

func (o *outline) moveTo(p motion.Vec2) {
	o.verts = append(o.verts[:0], motion.Corner(p))
}

func (o *outline) lineTo(p motion.Vec2) {
	if n := len(o.verts); n > 0 && o.verts[n-1].Point == p {
		return
	}
	o.verts = append(o.verts, motion.Corner(p))
}

func (o *outline) cubicTo(c1, c2, p motion.Vec2) {
	o.verts[len(o.verts)-1].Out = c1
	o.verts = append(o.verts, motion.BezierVertex{Point: p, In: c2, Out: p})
}

// arc sweeps angle radians around center starting at center+norm, in
// quarter-turn cubic pieces.
func (o *outline) arc(center, norm motion.Vec2, angle float64) {
	n := int(math.Ceil(math.Abs(angle) / (math.Pi / 2)))
	if n < 1 {
		n = 1
	}
	step := angle / float64(n)
	a := norm.Atan2()
	r := norm.Length()

	o.lineTo(center.Add(norm))
	for range n {
		a0, a1 := a, a+step
		k := math.Sin(step) * (math.Sqrt(4+3*math.Tan(step/2)*math.Tan(step/2)) - 1) / 3
		s0, c0 := math.Sincos(a0)
		s1, c1 := math.Sincos(a1)
		p1 := motion.V2(center.X+r*c0, center.Y+r*s0)
		p2 := motion.V2(center.X+r*c1, center.Y+r*s1)
		o.cubicTo(
			motion.V2(p1.X-k*r*s0, p1.Y+k*r*c0),
			motion.V2(p2.X+k*r*s1, p2.Y-k*r*c1),
			p2,
		)
		a = a1
	}
}

// appendReversed appends other traversed backwards. The current point
// must already be other's last point.
func (o *outline) appendReversed(other *outline) {
	if other.empty() {
		return
	}
	rev := motion.NewBezierPath(other.verts, false)
	rev = rev.Reversed()
	vs := rev.Vertices()
	o.verts[len(o.verts)-1].Out = vs[0].Out
	o.verts = append(o.verts, vs[1:]...)
}

// path returns the outline as a closed contour. A final vertex that
// repeats the first is folded into it.
func (o *outline) path() motion.BezierPath {
	vs := make([]motion.BezierVertex, len(o.verts))
	copy(vs, o.verts)
	if n := len(vs); n > 1 && vs[n-1].Point.Approx(vs[0].Point, 1e-12) {
		vs[0].In = vs[n-1].In
		vs = vs[:n-1]
	}
	return motion.NewBezierPath(vs, true)
}
