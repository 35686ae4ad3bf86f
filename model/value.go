package model

import (
	"fmt"

	"github.com/gogpu/motion/keyframe"
)

// Value is the keyframe list of one animatable property. A nil Value is
// unset and takes the property's default.
type Value[T any] []keyframe.Keyframe[T]

// Const returns a Value holding v for every frame.
func Const[T any](v T) Value[T] {
	return Value[T](keyframe.Static(v))
}

// Keys returns a Value over the given keyframes.
func Keys[T any](keys ...keyframe.Keyframe[T]) Value[T] {
	return Value[T](keys)
}

// IsSet reports whether the property carries at least one keyframe.
func (v Value[T]) IsSet() bool {
	return len(v) > 0
}

// Or returns v, or the constant def when v is unset.
func (v Value[T]) Or(def T) Value[T] {
	if v.IsSet() {
		return v
	}
	return Const(def)
}

// First returns the value of the first keyframe, or the zero value.
func (v Value[T]) First() T {
	if len(v) == 0 {
		var zero T
		return zero
	}
	return v[0].Value
}

// check reports keyframes whose times are not strictly increasing.
func (v Value[T]) check() error {
	for i := 1; i < len(v); i++ {
		if !(v[i].Time > v[i-1].Time) {
			return fmt.Errorf("%w: keyframe %d at %v follows %v", keyframe.ErrUnordered, i, v[i].Time, v[i-1].Time)
		}
	}
	return nil
}

// checker is implemented by every Value instantiation.
type checker interface {
	check() error
}

// field names one animatable property for validation reports.
type field struct {
	name  string
	value checker
}
