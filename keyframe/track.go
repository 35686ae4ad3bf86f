package keyframe

import (
	"fmt"
	"math"
	"slices"
	"sort"

	"github.com/gogpu/motion"
)

// region classifies where a frame falls relative to the keyframes.
type region uint8

const (
	regionConstant region = iota
	regionBefore
	regionSpan
	regionAfter
)

// bracket identifies the keyframe pair a frame resolves against.
type bracket struct {
	region region
	index  int
}

// spanState caches the compatibility check of a span.
type spanState uint8

const (
	spanUnchecked spanState = iota
	spanOK
	spanFaulty
)

// Track is a generic keyframe interpolator for one animated property.
type Track[T any] struct {
	name string
	kind Kind[T]
	keys []Keyframe[T]

	spans  []spanState
	faults map[int]Fault

	callback ValueCallback[T]

	evaluated bool
	dirty     bool
	frame     float64
	bracket   bracket
	value     T
}

// NewTrack returns a track over a copy of keys. Keyframe times must be
// strictly increasing.
func NewTrack[T any](kind Kind[T], keys ...Keyframe[T]) (*Track[T], error) {
	if len(keys) == 0 {
		return nil, ErrEmpty
	}
	for i := 1; i < len(keys); i++ {
		if !(keys[i].Time > keys[i-1].Time) {
			return nil, fmt.Errorf("%w: %g after %g", ErrUnordered, keys[i].Time, keys[i-1].Time)
		}
	}
	t := &Track[T]{kind: kind, keys: slices.Clone(keys)}
	t.resetSpans()
	return t, nil
}

// MustTrack is like NewTrack but panics on invalid keyframes. It is meant
// for keyframes known to be valid, such as those checked by model
// validation.
func MustTrack[T any](kind Kind[T], keys ...Keyframe[T]) *Track[T] {
	t, err := NewTrack(kind, keys...)
	if err != nil {
		panic(err)
	}
	return t
}

// ConstantTrack returns a track that always yields v.
func ConstantTrack[T any](kind Kind[T], v T) *Track[T] {
	return MustTrack(kind, Keyframe[T]{Value: v})
}

// Named sets the name used in log messages and returns the track.
func (t *Track[T]) Named(name string) *Track[T] {
	t.name = name
	return t
}

// Name returns the track name.
func (t *Track[T]) Name() string {
	return t.name
}

// Len returns the number of keyframes.
func (t *Track[T]) Len() int {
	return len(t.keys)
}

// Keyframes returns a copy of the keyframes.
func (t *Track[T]) Keyframes() []Keyframe[T] {
	return slices.Clone(t.keys)
}

// IsAnimated reports whether the track has more than one keyframe.
func (t *Track[T]) IsAnimated() bool {
	return len(t.keys) > 1
}

func (t *Track[T]) resetSpans() {
	n := max(len(t.keys)-1, 0)
	t.spans = make([]spanState, n)
	t.faults = nil
}

// locate finds the bracket for frame, trying the cached bracket first.
func (t *Track[T]) locate(frame float64) bracket {
	n := len(t.keys)
	switch {
	case n == 1:
		return bracket{region: regionConstant}
	case frame < t.keys[0].Time:
		return bracket{region: regionBefore}
	case frame >= t.keys[n-1].Time || math.IsNaN(frame):
		return bracket{region: regionAfter, index: n - 1}
	}

	if b := t.bracket; t.evaluated && b.region == regionSpan && b.index < n-1 &&
		t.keys[b.index].Time <= frame && frame < t.keys[b.index+1].Time {
		return b
	}
	i := sort.Search(n, func(j int) bool { return t.keys[j].Time > frame }) - 1
	return bracket{region: regionSpan, index: i}
}

// span returns the bracket view of keyframes i and i+1.
func (t *Track[T]) span(i int) Span[T] {
	a, b := t.keys[i], t.keys[i+1]
	return Span[T]{
		StartFrame: a.Time,
		EndFrame:   b.Time,
		StartValue: a.Value,
		EndValue:   b.Value,
		Ease:       a.Ease,
		Hold:       a.Hold,
		SpatialOut: a.SpatialOut,
		SpatialIn:  a.SpatialIn,
	}
}

// Bracket returns the span frame resolves against. Outside the keyframe
// range the span degenerates to the clamping keyframe.
func (t *Track[T]) Bracket(frame float64) Span[T] {
	b := t.locate(frame)
	if b.region == regionSpan {
		return t.span(b.index)
	}
	k := t.keys[b.index]
	return Span[T]{StartFrame: k.Time, EndFrame: k.Time, StartValue: k.Value, EndValue: k.Value, Hold: true}
}

// spanUsable reports whether span i can be interpolated, checking and
// recording a fault the first time the span is entered.
func (t *Track[T]) spanUsable(i int) bool {
	switch t.spans[i] {
	case spanOK:
		return true
	case spanFaulty:
		return false
	}
	v, ok := t.kind.(Validator[T])
	if !ok {
		t.spans[i] = spanOK
		return true
	}
	if err := v.Compatible(t.keys[i].Value, t.keys[i+1].Value); err != nil {
		t.spans[i] = spanFaulty
		if t.faults == nil {
			t.faults = make(map[int]Fault)
		}
		f := Fault{StartFrame: t.keys[i].Time, EndFrame: t.keys[i+1].Time, Err: err}
		t.faults[i] = f
		motion.Logger().Warn("keyframe: span disabled, holding first keyframe",
			"property", t.name, "start", f.StartFrame, "end", f.EndFrame, "err", err)
		return false
	}
	t.spans[i] = spanOK
	return true
}

// Faults returns the spans disabled so far because their values could not
// be interpolated, ordered by start frame.
func (t *Track[T]) Faults() []Fault {
	out := make([]Fault, 0, len(t.faults))
	for i := range t.spans {
		if f, ok := t.faults[i]; ok {
			out = append(out, f)
		}
	}
	return out
}

// HasUpdate reports whether the value at frame may differ from the value
// last returned by ValueAt. It is true before the first evaluation, after
// a mutation, and whenever frame resolves to a different bracket or moves
// within an interpolating span. Frames inside the same hold span or clamp
// region report no update.
func (t *Track[T]) HasUpdate(frame float64) bool {
	if !t.evaluated || t.dirty {
		return true
	}
	if frame == t.frame {
		return false
	}
	b := t.locate(frame)
	if b != t.bracket {
		return true
	}
	if b.region != regionSpan {
		return false
	}
	return !t.keys[b.index].Hold && t.spans[b.index] != spanFaulty
}

// ValueAt returns the value of the property at frame, passed through the
// value callback if one is attached.
func (t *Track[T]) ValueAt(frame float64) T {
	if t.evaluated && !t.dirty && frame == t.frame {
		return t.value
	}

	b := t.locate(frame)
	var (
		info  CallbackInfo[T]
		value T
	)
	switch b.region {
	case regionSpan:
		s := t.span(b.index)
		p := s.progress(frame)
		switch {
		case !t.spanUsable(b.index):
			value = t.keys[0].Value
		case s.Hold:
			value = s.StartValue
		default:
			value = t.interpolate(s, p)
		}
		info = CallbackInfo[T]{
			StartFrame: s.StartFrame, EndFrame: s.EndFrame,
			StartValue: s.StartValue, EndValue: s.EndValue,
			Progress: p,
		}
	default:
		k := t.keys[b.index]
		value = k.Value
		info = CallbackInfo[T]{StartFrame: k.Time, EndFrame: k.Time, StartValue: k.Value, EndValue: k.Value}
		if b.region == regionAfter {
			info.Progress = 1
		}
	}

	if t.callback != nil {
		info.Interpolated = value
		info.Frame = frame
		value = t.callback(info)
	}

	t.value = value
	t.frame = frame
	t.bracket = b
	t.evaluated = true
	t.dirty = false
	return value
}

func (t *Track[T]) interpolate(s Span[T], p float64) T {
	if sp, ok := t.kind.(Spatial[T]); ok && (!s.SpatialOut.IsZero() || !s.SpatialIn.IsZero()) {
		return sp.LerpSpatial(s.StartValue, s.EndValue, s.SpatialOut, s.SpatialIn, p)
	}
	return t.kind.Lerp(s.StartValue, s.EndValue, p)
}

// Invalidate forces the next HasUpdate to report an update and the next
// ValueAt to recompute.
func (t *Track[T]) Invalidate() {
	t.dirty = true
}

// SetValue overwrites the keyframe at exactly frame, or inserts a new
// linearly interpolated keyframe there.
func (t *Track[T]) SetValue(v T, frame float64) {
	i, found := slices.BinarySearchFunc(t.keys, frame, func(k Keyframe[T], f float64) int {
		switch {
		case k.Time < f:
			return -1
		case k.Time > f:
			return 1
		}
		return 0
	})
	if found {
		t.keys[i].Value = v
	} else {
		t.keys = slices.Insert(t.keys, i, Keyframe[T]{Time: frame, Value: v})
	}
	t.resetSpans()
	t.dirty = true
}

// Set replaces every keyframe with the constant v.
func (t *Track[T]) Set(v T) {
	t.keys = []Keyframe[T]{{Value: v}}
	t.resetSpans()
	t.dirty = true
}

// SetCallback attaches a value callback, replacing any previous one.
func (t *Track[T]) SetCallback(cb ValueCallback[T]) {
	t.callback = cb
	t.dirty = true
}

// ClearCallback detaches the value callback.
func (t *Track[T]) ClearCallback() {
	if t.callback == nil {
		return
	}
	t.callback = nil
	t.dirty = true
}

// HasCallback reports whether a value callback is attached.
func (t *Track[T]) HasCallback() bool {
	return t.callback != nil
}
