package keyframe

import "github.com/gogpu/motion"

// Keyframe is a timed value anchor. The easing and spatial fields
// describe the span that starts at this keyframe and ends at the next
// one; they are ignored on the last keyframe of a track.
type Keyframe[T any] struct {
	Time  float64
	Value T

	// Hold keeps Value until the next keyframe instead of interpolating.
	Hold bool

	// Ease shapes progress through the span. Nil means linear.
	Ease *Ease

	// SpatialOut and SpatialIn are motion path handles relative to this
	// keyframe's value and the next keyframe's value. They only apply to
	// kinds that implement Spatial.
	SpatialOut motion.Vec2
	SpatialIn  motion.Vec2
}

// At returns a keyframe with the given time and value and linear timing.
func At[T any](time float64, value T) Keyframe[T] {
	return Keyframe[T]{Time: time, Value: value}
}

// Static returns the keyframe list of a constant property.
func Static[T any](value T) []Keyframe[T] {
	return []Keyframe[T]{{Value: value}}
}

// Span is the bracket between two consecutive keyframes: the record a
// track interpolates over and the context passed to value callbacks.
type Span[T any] struct {
	StartFrame float64
	EndFrame   float64
	StartValue T
	EndValue   T
	Ease       *Ease
	Hold       bool
	SpatialOut motion.Vec2
	SpatialIn  motion.Vec2
}

// progress returns the eased progress of frame within the span.
func (s Span[T]) progress(frame float64) float64 {
	if s.Hold || s.EndFrame <= s.StartFrame {
		return 0
	}
	t := clamp01((frame - s.StartFrame) / (s.EndFrame - s.StartFrame))
	if s.Ease == nil {
		return t
	}
	return s.Ease.Progress(t)
}
