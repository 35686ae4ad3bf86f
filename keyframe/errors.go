package keyframe

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by track construction.
var (
	// ErrEmpty is returned when a track is created without keyframes.
	ErrEmpty = errors.New("keyframe: track has no keyframes")

	// ErrUnordered is returned when keyframe times are not strictly increasing.
	ErrUnordered = errors.New("keyframe: keyframe times not strictly increasing")
)

// TypeError is returned when a value or callback of the wrong type is
// applied to a track through its type-erased Property interface.
type TypeError struct {
	Want string // value type of the track
	Got  string // dynamic type supplied by the caller
}

// Error implements the error interface.
func (e *TypeError) Error() string {
	return fmt.Sprintf("keyframe: cannot use %s as %s", e.Got, e.Want)
}

// Fault records a span whose endpoint values cannot be interpolated.
// While a frame falls inside a faulty span the track emits the value of
// the whole track's first keyframe, not the start value of the span. In a
// track with several faulty spans every one of them shows that same value.
type Fault struct {
	StartFrame float64
	EndFrame   float64
	Err        error
}

// Error implements the error interface.
func (f Fault) Error() string {
	return fmt.Sprintf("keyframe: span %g..%g disabled: %v", f.StartFrame, f.EndFrame, f.Err)
}

// Unwrap returns the underlying incompatibility.
func (f Fault) Unwrap() error {
	return f.Err
}
