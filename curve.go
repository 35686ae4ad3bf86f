package motion

import (
	"math"
	"sort"
)

// Rect represents an axis-aligned rectangle.
// Min is the top-left corner (minimum coordinates).
// Max is the bottom-right corner (maximum coordinates).
type Rect struct {
	Min, Max Vec2
}

// NewRect creates a rectangle from two points.
// The points are normalized so Min <= Max.
func NewRect(p1, p2 Vec2) Rect {
	return Rect{
		Min: Vec2{X: math.Min(p1.X, p2.X), Y: math.Min(p1.Y, p2.Y)},
		Max: Vec2{X: math.Max(p1.X, p2.X), Y: math.Max(p1.Y, p2.Y)},
	}
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.Max.X - r.Min.X
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.Max.Y - r.Min.Y
}

// Union returns the smallest rectangle containing both r and other.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		Min: Vec2{X: math.Min(r.Min.X, other.Min.X), Y: math.Min(r.Min.Y, other.Min.Y)},
		Max: Vec2{X: math.Max(r.Max.X, other.Max.X), Y: math.Max(r.Max.Y, other.Max.Y)},
	}
}

// Contains returns true if the point is inside the rectangle.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// -------------------------------------------------------------------
// QuadBez - Quadratic Bezier Curve
// -------------------------------------------------------------------

// QuadBez represents a quadratic Bezier curve with control points P0, P1, P2.
type QuadBez struct {
	P0, P1, P2 Vec2
}

// Raise elevates the quadratic to an exact cubic Bezier curve.
func (q QuadBez) Raise() CubicBez {
	return CubicBez{
		P0: q.P0,
		P1: q.P0.Add(q.P1.Sub(q.P0).Mul(2.0 / 3.0)),
		P2: q.P2.Add(q.P1.Sub(q.P2).Mul(2.0 / 3.0)),
		P3: q.P2,
	}
}

// -------------------------------------------------------------------
// CubicBez - Cubic Bezier Curve
// -------------------------------------------------------------------

// lengthTolerance bounds the difference between control polygon and chord
// length at which a cubic is treated as flat for arc length estimation.
const lengthTolerance = 1e-7

// maxLengthDepth caps recursive subdivision during arc length estimation.
const maxLengthDepth = 16

// CubicBez represents a cubic Bezier curve with control points P0, P1, P2, P3.
// P0 is the start point, P1 and P2 are control points, P3 is the end point.
type CubicBez struct {
	P0, P1, P2, P3 Vec2
}

// Eval evaluates the curve at parameter t (0 to 1) using de Casteljau's algorithm.
func (c CubicBez) Eval(t float64) Vec2 {
	p01 := c.P0.Lerp(c.P1, t)
	p12 := c.P1.Lerp(c.P2, t)
	p23 := c.P2.Lerp(c.P3, t)
	return p01.Lerp(p12, t).Lerp(p12.Lerp(p23, t), t)
}

// Split divides the curve at parameter t into two curves using de Casteljau.
func (c CubicBez) Split(t float64) (CubicBez, CubicBez) {
	p01 := c.P0.Lerp(c.P1, t)
	p12 := c.P1.Lerp(c.P2, t)
	p23 := c.P2.Lerp(c.P3, t)
	p012 := p01.Lerp(p12, t)
	p123 := p12.Lerp(p23, t)
	mid := p012.Lerp(p123, t)

	return CubicBez{P0: c.P0, P1: p01, P2: p012, P3: mid},
		CubicBez{P0: mid, P1: p123, P2: p23, P3: c.P3}
}

// Subsegment returns the portion of the curve from t0 to t1.
func (c CubicBez) Subsegment(t0, t1 float64) CubicBez {
	if t0 <= 0 && t1 >= 1 {
		return c
	}
	left, _ := c.Split(t1)
	if t0 <= 0 || t1 <= 0 {
		return left
	}
	_, mid := left.Split(t0 / t1)
	return mid
}

// IsLine reports whether the control points coincide with the endpoints.
func (c CubicBez) IsLine() bool {
	return c.P1 == c.P0 && c.P2 == c.P3
}

// Length returns the arc length of the curve.
func (c CubicBez) Length() float64 {
	if c.IsLine() {
		return c.P0.Distance(c.P3)
	}
	return c.lengthRec(0)
}

func (c CubicBez) lengthRec(depth int) float64 {
	chord := c.P0.Distance(c.P3)
	poly := c.P0.Distance(c.P1) + c.P1.Distance(c.P2) + c.P2.Distance(c.P3)
	if poly-chord <= lengthTolerance || depth >= maxLengthDepth {
		return (chord + poly) / 2
	}
	a, b := c.Split(0.5)
	return a.lengthRec(depth+1) + b.lengthRec(depth+1)
}

// ParamAtLength returns the curve parameter at which the arc length from
// P0 equals s. Values outside [0, Length] clamp to the endpoints.
func (c CubicBez) ParamAtLength(s float64) float64 {
	total := c.Length()
	switch {
	case s <= 0 || total == 0:
		return 0
	case s >= total:
		return 1
	}

	lo, hi := 0.0, 1.0
	t := s / total
	for range 48 {
		l := c.Subsegment(0, t).Length()
		if math.Abs(l-s) < lengthTolerance {
			break
		}
		if l < s {
			lo = t
		} else {
			hi = t
		}
		t = (lo + hi) / 2
	}
	return t
}

// Extrema returns parameter values where the derivative is zero.
func (c CubicBez) Extrema() []float64 {
	result := make([]float64, 0, 4)

	d0 := c.P1.Sub(c.P0)
	d1 := c.P2.Sub(c.P1)
	d2 := c.P3.Sub(c.P2)

	result = append(result, unitQuadraticRoots(d0.X-2*d1.X+d2.X, 2*(d1.X-d0.X), d0.X)...)
	result = append(result, unitQuadraticRoots(d0.Y-2*d1.Y+d2.Y, 2*(d1.Y-d0.Y), d0.Y)...)

	sort.Float64s(result)
	return result
}

// BoundingBox returns the tight axis-aligned bounding box of the curve.
func (c CubicBez) BoundingBox() Rect {
	bbox := NewRect(c.P0, c.P3)
	for _, t := range c.Extrema() {
		p := c.Eval(t)
		bbox = bbox.Union(NewRect(p, p))
	}
	return bbox
}

// unitQuadraticRoots solves a*t^2 + b*t + c = 0 for t in (0, 1).
func unitQuadraticRoots(a, b, c float64) []float64 {
	const eps = 1e-12
	var roots []float64
	keep := func(t float64) {
		if t > 0 && t < 1 {
			roots = append(roots, t)
		}
	}
	if math.Abs(a) < eps {
		if math.Abs(b) > eps {
			keep(-c / b)
		}
		return roots
	}
	disc := b*b - 4*a*c
	if disc < 0 {
		return roots
	}
	sq := math.Sqrt(disc)
	keep((-b + sq) / (2 * a))
	keep((-b - sq) / (2 * a))
	return roots
}
