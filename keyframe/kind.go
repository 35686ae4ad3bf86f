package keyframe

import "github.com/gogpu/motion"

// Kind interpolates values of one type.
type Kind[T any] interface {
	Lerp(from, to T, progress float64) T
}

// Spatial is implemented by kinds whose values can follow a curved motion
// path. out is relative to from, in is relative to to.
type Spatial[T any] interface {
	LerpSpatial(from, to T, out, in motion.Vec2, progress float64) T
}

// Validator is implemented by kinds that can only interpolate between
// compatible values.
type Validator[T any] interface {
	Compatible(from, to T) error
}

// Float interpolates scalars.
type Float struct{}

// Lerp implements Kind.
func (Float) Lerp(from, to, p float64) float64 {
	return from + (to-from)*p
}

// Point interpolates positions, optionally along a spatial curve.
type Point struct{}

// Lerp implements Kind.
func (Point) Lerp(from, to motion.Vec2, p float64) motion.Vec2 {
	return from.Lerp(to, p)
}

// LerpSpatial implements Spatial.
func (Point) LerpSpatial(from, to motion.Vec2, out, in motion.Vec2, p float64) motion.Vec2 {
	return motion.SpatialPoint(from, to, out, in, p)
}

// Size interpolates two-component sizes and scales. Unlike Point it never
// follows a motion path.
type Size struct{}

// Lerp implements Kind.
func (Size) Lerp(from, to motion.Vec2, p float64) motion.Vec2 {
	return from.Lerp(to, p)
}

// Color interpolates colors channel-wise.
type Color struct{}

// Lerp implements Kind.
func (Color) Lerp(from, to motion.RGBA, p float64) motion.RGBA {
	return from.Lerp(to, p)
}

// Path interpolates bezier paths vertex by vertex. Paths must share
// topology; the track disables spans where they do not.
type Path struct{}

// Lerp implements Kind.
func (Path) Lerp(from, to motion.BezierPath, p float64) motion.BezierPath {
	out, err := from.Lerp(&to, p)
	if err != nil {
		return from
	}
	return out
}

// LerpSpatial implements Spatial.
func (Path) LerpSpatial(from, to motion.BezierPath, out, in motion.Vec2, p float64) motion.BezierPath {
	res, err := from.LerpSpatial(&to, out, in, p)
	if err != nil {
		return from
	}
	return res
}

// Compatible implements Validator.
func (Path) Compatible(from, to motion.BezierPath) error {
	return from.Compatible(&to)
}

// Floats interpolates flat number arrays such as gradient data and dash
// patterns element-wise. Arrays of different length step at the end of the
// span.
type Floats struct{}

// Lerp implements Kind.
func (Floats) Lerp(from, to []float64, p float64) []float64 {
	if len(from) != len(to) {
		if p < 1 {
			return from
		}
		return to
	}
	out := make([]float64, len(from))
	for i := range from {
		out[i] = from[i] + (to[i]-from[i])*p
	}
	return out
}

// Step holds the start value of every span until the span ends. It serves
// values with no meaningful interpolation, such as text documents.
type Step[T any] struct{}

// Lerp implements Kind.
func (Step[T]) Lerp(from, to T, p float64) T {
	if p < 1 {
		return from
	}
	return to
}
