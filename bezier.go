package motion

import (
	"errors"
	"fmt"
	"math"
)

// ErrTopologyMismatch is returned when two paths that must be interpolated
// together differ in vertex count or closed flag.
var ErrTopologyMismatch = errors.New("motion: path topology mismatch")

// BezierVertex is one anchor of a BezierPath. In and Out are absolute
// control points: In shapes the segment arriving at Point, Out the segment
// leaving it. A corner vertex has In == Out == Point.
type BezierVertex struct {
	Point Vec2
	In    Vec2
	Out   Vec2
}

// Corner returns a vertex without curve handles.
func Corner(p Vec2) BezierVertex {
	return BezierVertex{Point: p, In: p, Out: p}
}

// NewVertex returns a vertex from a point and tangents relative to it.
func NewVertex(point, inTangent, outTangent Vec2) BezierVertex {
	return BezierVertex{Point: point, In: point.Add(inTangent), Out: point.Add(outTangent)}
}

// InTangent returns the in control point relative to the vertex point.
func (v BezierVertex) InTangent() Vec2 {
	return v.In.Sub(v.Point)
}

// OutTangent returns the out control point relative to the vertex point.
func (v BezierVertex) OutTangent() Vec2 {
	return v.Out.Sub(v.Point)
}

// Transform applies m to the point and both control points.
func (v BezierVertex) Transform(m Matrix) BezierVertex {
	return BezierVertex{
		Point: m.TransformPoint(v.Point),
		In:    m.TransformPoint(v.In),
		Out:   m.TransformPoint(v.Out),
	}
}

// Translate offsets the point and both control points.
func (v BezierVertex) Translate(d Vec2) BezierVertex {
	return BezierVertex{Point: v.Point.Add(d), In: v.In.Add(d), Out: v.Out.Add(d)}
}

// Lerp interpolates point and control points linearly.
func (v BezierVertex) Lerp(to BezierVertex, t float64) BezierVertex {
	return BezierVertex{
		Point: v.Point.Lerp(to.Point, t),
		In:    v.In.Lerp(to.In, t),
		Out:   v.Out.Lerp(to.Out, t),
	}
}

// reversed swaps the roles of the two control points.
func (v BezierVertex) reversed() BezierVertex {
	return BezierVertex{Point: v.Point, In: v.Out, Out: v.In}
}

// BezierPath is a single contour: an ordered list of vertices joined by
// cubic segments, optionally closed back to the first vertex.
//
// Copies of a BezierPath share vertex storage; use Clone before mutating a
// path that may be referenced elsewhere. Arc lengths are computed lazily
// and cached until the next mutation.
type BezierPath struct {
	vertices []BezierVertex
	closed   bool

	segLengths []float64
	length     float64
	measured   bool
}

// NewBezierPath creates a path from vertices.
func NewBezierPath(vertices []BezierVertex, closed bool) BezierPath {
	return BezierPath{vertices: vertices, closed: closed}
}

// Vertices returns the path vertices. The slice must not be modified.
func (p *BezierPath) Vertices() []BezierVertex {
	return p.vertices
}

// Vertex returns the i-th vertex.
func (p *BezierPath) Vertex(i int) BezierVertex {
	return p.vertices[i]
}

// Len returns the number of vertices.
func (p *BezierPath) Len() int {
	return len(p.vertices)
}

// Closed reports whether the last vertex connects back to the first.
func (p *BezierPath) Closed() bool {
	return p.closed
}

// IsEmpty reports whether the path has no vertices.
func (p *BezierPath) IsEmpty() bool {
	return len(p.vertices) == 0
}

// AddVertex appends a vertex.
func (p *BezierPath) AddVertex(v BezierVertex) {
	p.vertices = append(p.vertices, v)
	p.measured = false
}

// Close marks the path as closed.
func (p *BezierPath) Close() {
	p.closed = true
	p.measured = false
}

// Clone returns a deep copy of the path.
func (p *BezierPath) Clone() BezierPath {
	vs := make([]BezierVertex, len(p.vertices))
	copy(vs, p.vertices)
	return BezierPath{vertices: vs, closed: p.closed}
}

// SegmentCount returns the number of cubic segments, including the
// closing segment of a closed path.
func (p *BezierPath) SegmentCount() int {
	n := len(p.vertices)
	switch {
	case n < 2:
		return 0
	case p.closed:
		return n
	default:
		return n - 1
	}
}

// Segment returns the i-th cubic segment.
func (p *BezierPath) Segment(i int) CubicBez {
	a := p.vertices[i]
	b := p.vertices[(i+1)%len(p.vertices)]
	return CubicBez{P0: a.Point, P1: a.Out, P2: b.In, P3: b.Point}
}

func (p *BezierPath) measure() {
	if p.measured {
		return
	}
	n := p.SegmentCount()
	p.segLengths = make([]float64, n)
	p.length = 0
	for i := range n {
		l := p.Segment(i).Length()
		p.segLengths[i] = l
		p.length += l
	}
	p.measured = true
}

// Length returns the total arc length of the path.
func (p *BezierPath) Length() float64 {
	p.measure()
	return p.length
}

// Bounds returns the bounding box of the path's curves.
func (p *BezierPath) Bounds() Rect {
	if len(p.vertices) == 0 {
		return Rect{}
	}
	first := p.vertices[0].Point
	box := NewRect(first, first)
	for i := range p.SegmentCount() {
		box = box.Union(p.Segment(i).BoundingBox())
	}
	return box
}

// Transform returns the path with m applied to every vertex and its
// control points.
func (p *BezierPath) Transform(m Matrix) BezierPath {
	vs := make([]BezierVertex, len(p.vertices))
	for i, v := range p.vertices {
		vs[i] = v.Transform(m)
	}
	return BezierPath{vertices: vs, closed: p.closed}
}

// Reversed returns the path traversed in the opposite direction.
func (p *BezierPath) Reversed() BezierPath {
	n := len(p.vertices)
	vs := make([]BezierVertex, n)
	for i, v := range p.vertices {
		vs[n-1-i] = v.reversed()
	}
	return BezierPath{vertices: vs, closed: p.closed}
}

// Compatible reports whether p and other can be interpolated together.
func (p *BezierPath) Compatible(other *BezierPath) error {
	if len(p.vertices) != len(other.vertices) || p.closed != other.closed {
		return fmt.Errorf("%w: %d vertices (closed=%t) vs %d vertices (closed=%t)",
			ErrTopologyMismatch, len(p.vertices), p.closed, len(other.vertices), other.closed)
	}
	return nil
}

// Lerp interpolates every vertex linearly towards to.
func (p *BezierPath) Lerp(to *BezierPath, t float64) (BezierPath, error) {
	if err := p.Compatible(to); err != nil {
		return BezierPath{}, err
	}
	vs := make([]BezierVertex, len(p.vertices))
	for i := range p.vertices {
		vs[i] = p.vertices[i].Lerp(to.vertices[i], t)
	}
	return BezierPath{vertices: vs, closed: p.closed}, nil
}

// LerpSpatial moves every vertex along the cubic motion path from its
// position in p to its position in to, shaped by the spatial tangents out
// and in. Control point offsets are interpolated linearly.
func (p *BezierPath) LerpSpatial(to *BezierPath, out, in Vec2, t float64) (BezierPath, error) {
	if err := p.Compatible(to); err != nil {
		return BezierPath{}, err
	}
	vs := make([]BezierVertex, len(p.vertices))
	for i := range p.vertices {
		a, b := p.vertices[i], to.vertices[i]
		pt := SpatialPoint(a.Point, b.Point, out, in, t)
		vs[i] = NewVertex(pt,
			a.InTangent().Lerp(b.InTangent(), t),
			a.OutTangent().Lerp(b.OutTangent(), t))
	}
	return BezierPath{vertices: vs, closed: p.closed}, nil
}

// SpatialPoint evaluates the motion curve from a to b whose handles are
// a+out and b+in. Zero handles degrade to straight-line interpolation.
func SpatialPoint(a, b, out, in Vec2, t float64) Vec2 {
	if out.IsZero() && in.IsZero() {
		return a.Lerp(b, t)
	}
	return CubicBez{P0: a, P1: a.Add(out), P2: b.Add(in), P3: b}.Eval(t)
}

// Equal reports whether two paths have the same topology and all
// coordinates agree within eps.
func (p *BezierPath) Equal(other *BezierPath, eps float64) bool {
	if p.Compatible(other) != nil {
		return false
	}
	for i, v := range p.vertices {
		w := other.vertices[i]
		if !v.Point.Approx(w.Point, eps) || !v.In.Approx(w.In, eps) || !v.Out.Approx(w.Out, eps) {
			return false
		}
	}
	return true
}

// -------------------------------------------------------------------
// CompoundPath
// -------------------------------------------------------------------

// CompoundPath is an ordered list of contours painted together with a
// single fill rule. It is the unit passed between animator nodes.
type CompoundPath struct {
	Paths    []BezierPath
	FillRule FillRule
}

// Append adds contours to the end of the compound path. Empty contours
// are dropped.
func (c *CompoundPath) Append(paths ...BezierPath) {
	for _, p := range paths {
		if !p.IsEmpty() {
			c.Paths = append(c.Paths, p)
		}
	}
}

// IsEmpty reports whether there is no contour to paint.
func (c CompoundPath) IsEmpty() bool {
	return len(c.Paths) == 0
}

// Length returns the summed arc length of every contour.
func (c CompoundPath) Length() float64 {
	total := 0.0
	for i := range c.Paths {
		total += c.Paths[i].Length()
	}
	return total
}

// Transform returns the compound path with m applied to every contour.
func (c CompoundPath) Transform(m Matrix) CompoundPath {
	if m.IsIdentity() {
		return c
	}
	out := CompoundPath{Paths: make([]BezierPath, len(c.Paths)), FillRule: c.FillRule}
	for i := range c.Paths {
		out.Paths[i] = c.Paths[i].Transform(m)
	}
	return out
}

// Bounds returns the union of the contour bounds.
func (c CompoundPath) Bounds() Rect {
	box := Rect{Min: V2(math.Inf(1), math.Inf(1)), Max: V2(math.Inf(-1), math.Inf(-1))}
	for i := range c.Paths {
		if c.Paths[i].IsEmpty() {
			continue
		}
		box = box.Union(c.Paths[i].Bounds())
	}
	if math.IsInf(box.Min.X, 1) {
		return Rect{}
	}
	return box
}
