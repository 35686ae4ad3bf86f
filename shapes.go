package motion

import "math"

// kappa is the control point distance, relative to the radius, of a cubic
// approximating a quarter circle.
const kappa = 0.5522847498307936

// Star and polygon roundness scale the tangent length by these constants.
const (
	polystarConstant = 0.47829
	polygonConstant  = 0.25
)

// Direction is the winding direction in which a parametric shape emits
// its vertices.
type Direction int

const (
	// Clockwise emits vertices clockwise on screen (Y pointing down).
	Clockwise Direction = iota
	// CounterClockwise reverses the vertex order.
	CounterClockwise
)

// String returns the string representation of the direction.
func (d Direction) String() string {
	switch d {
	case Clockwise:
		return "Clockwise"
	case CounterClockwise:
		return "CounterClockwise"
	default:
		return unknownStr
	}
}

func orient(p BezierPath, dir Direction) BezierPath {
	if dir == CounterClockwise {
		return p.Reversed()
	}
	return p
}

// Ellipse returns a closed four-vertex ellipse centered at center. The
// first vertex is at the top; vertices follow dir.
func Ellipse(center, size Vec2, dir Direction) BezierPath {
	half := size.Mul(0.5)
	cx, cy := half.X*kappa, half.Y*kappa

	p := NewBezierPath([]BezierVertex{
		NewVertex(center.Add(V2(0, -half.Y)), V2(-cx, 0), V2(cx, 0)),
		NewVertex(center.Add(V2(half.X, 0)), V2(0, -cy), V2(0, cy)),
		NewVertex(center.Add(V2(0, half.Y)), V2(cx, 0), V2(-cx, 0)),
		NewVertex(center.Add(V2(-half.X, 0)), V2(0, cy), V2(0, -cy)),
	}, true)
	return orient(p, dir)
}

// Rectangle returns a closed rectangle centered at center. A positive
// radius rounds the corners; it is clamped to half the shorter side.
func Rectangle(center, size Vec2, radius float64, dir Direction) BezierPath {
	w, h := size.X/2, size.Y/2
	r := math.Max(0, math.Min(radius, math.Min(w, h)))

	at := func(x, y float64) Vec2 { return center.Add(V2(x, y)) }

	var p BezierPath
	if r == 0 {
		p = NewBezierPath([]BezierVertex{
			Corner(at(w, -h)),
			Corner(at(w, h)),
			Corner(at(-w, h)),
			Corner(at(-w, -h)),
		}, true)
		return orient(p, dir)
	}

	cp := r * kappa
	p = NewBezierPath([]BezierVertex{
		NewVertex(at(w, -h+r), V2(0, -cp), Vec2{}),
		NewVertex(at(w, h-r), Vec2{}, V2(0, cp)),
		NewVertex(at(w-r, h), V2(cp, 0), Vec2{}),
		NewVertex(at(-w+r, h), Vec2{}, V2(-cp, 0)),
		NewVertex(at(-w, h-r), V2(0, cp), Vec2{}),
		NewVertex(at(-w, -h+r), Vec2{}, V2(0, -cp)),
		NewVertex(at(-w+r, -h), V2(-cp, 0), Vec2{}),
		NewVertex(at(w-r, -h), Vec2{}, V2(cp, 0)),
	}, true)
	return orient(p, dir)
}

// StarOptions describes a star: points alternate between the outer and
// inner radius. Roundness values are percentages. Points may be
// fractional, in which case the last point is partial.
type StarOptions struct {
	Center         Vec2
	Points         float64
	OuterRadius    float64
	InnerRadius    float64
	OuterRoundness float64
	InnerRoundness float64
	Rotation       float64 // degrees, 0 points the first vertex straight up
	Direction      Direction
}

// Star returns a closed star path.
func Star(o StarOptions) BezierPath {
	if o.Points <= 0 {
		return BezierPath{}
	}
	outerRound := o.OuterRoundness * 0.01
	innerRound := o.InnerRoundness * 0.01

	angle := Radians(o.Rotation - 90)
	perPoint := 2 * math.Pi / o.Points
	halfPerPoint := perPoint / 2
	partial := o.Points - math.Floor(o.Points)

	var pt Vec2
	partialRadius := 0.0
	if partial != 0 {
		angle += halfPerPoint * (1 - partial)
		partialRadius = o.InnerRadius + partial*(o.OuterRadius-o.InnerRadius)
		pt = V2(partialRadius*math.Cos(angle), partialRadius*math.Sin(angle))
		angle += perPoint * partial / 2
	} else {
		pt = V2(o.OuterRadius*math.Cos(angle), o.OuterRadius*math.Sin(angle))
		angle += halfPerPoint
	}

	vs := []BezierVertex{Corner(pt)}
	long := false
	n := int(math.Ceil(o.Points) * 2)
	for i := range n {
		radius := o.InnerRadius
		if long {
			radius = o.OuterRadius
		}
		dTheta := halfPerPoint
		if partialRadius != 0 && i == n-2 {
			dTheta = perPoint * partial / 2
		}
		if partialRadius != 0 && i == n-1 {
			radius = partialRadius
		}
		prev := pt
		pt = V2(radius*math.Cos(angle), radius*math.Sin(angle))

		v := Corner(pt)
		if innerRound != 0 || outerRound != 0 {
			r1, round1 := o.OuterRadius, outerRound
			r2, round2 := o.InnerRadius, innerRound
			if long {
				r1, round1 = o.InnerRadius, innerRound
				r2, round2 = o.OuterRadius, outerRound
			}
			cp1 := polar(r1*round1*polystarConstant, prev.Atan2()-math.Pi/2)
			cp2 := polar(r2*round2*polystarConstant, pt.Atan2()-math.Pi/2)
			if partial != 0 {
				if i == 0 {
					cp1 = cp1.Mul(partial)
				} else if i == n-1 {
					cp2 = cp2.Mul(partial)
				}
			}
			last := &vs[len(vs)-1]
			last.Out = last.Point.Sub(cp1)
			v.In = pt.Add(cp2)
		}
		vs = append(vs, v)
		angle += dTheta
		long = !long
	}
	return closeLoop(vs, o.Center, o.Direction)
}

// PolygonOptions describes a regular polygon.
type PolygonOptions struct {
	Center    Vec2
	Points    float64
	Radius    float64
	Roundness float64 // percentage
	Rotation  float64 // degrees
	Direction Direction
}

// Polygon returns a closed regular polygon path.
func Polygon(o PolygonOptions) BezierPath {
	if o.Points <= 0 {
		return BezierPath{}
	}
	round := o.Roundness * 0.01
	angle := Radians(o.Rotation - 90)
	perPoint := 2 * math.Pi / o.Points

	pt := V2(o.Radius*math.Cos(angle), o.Radius*math.Sin(angle))
	vs := []BezierVertex{Corner(pt)}
	angle += perPoint
	for range int(math.Ceil(o.Points)) {
		prev := pt
		pt = V2(o.Radius*math.Cos(angle), o.Radius*math.Sin(angle))
		v := Corner(pt)
		if round != 0 {
			cp1 := polar(o.Radius*round*polygonConstant, prev.Atan2()-math.Pi/2)
			cp2 := polar(o.Radius*round*polygonConstant, pt.Atan2()-math.Pi/2)
			last := &vs[len(vs)-1]
			last.Out = last.Point.Sub(cp1)
			v.In = pt.Add(cp2)
		}
		vs = append(vs, v)
		angle += perPoint
	}
	return closeLoop(vs, o.Center, o.Direction)
}

// closeLoop folds a trailing vertex that returns to the first one into it,
// translates to center and orients the closed result.
func closeLoop(vs []BezierVertex, center Vec2, dir Direction) BezierPath {
	if n := len(vs); n > 1 && vs[n-1].Point.Approx(vs[0].Point, 1e-9) {
		vs[0].In = vs[n-1].In.Sub(vs[n-1].Point).Add(vs[0].Point)
		vs = vs[:n-1]
	}
	for i := range vs {
		vs[i] = vs[i].Translate(center)
	}
	return orient(NewBezierPath(vs, true), dir)
}

func polar(r, theta float64) Vec2 {
	return V2(r*math.Cos(theta), r*math.Sin(theta))
}
