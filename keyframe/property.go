package keyframe

import "fmt"

// Property is the type-erased view of a Track used by property
// registries and runtime keypath mutation.
type Property interface {
	// Name returns the property name.
	Name() string

	// ValueType returns the Go type of the property values.
	ValueType() string

	// HasUpdate reports whether the value at frame may have changed.
	HasUpdate(frame float64) bool

	// Invalidate forces recomputation on the next evaluation.
	Invalidate()

	// SetAny writes a keyframe value at frame. The value must have the
	// track's value type.
	SetAny(v any, frame float64) error

	// SetCallbackAny attaches a callback, which must be a ValueCallback of
	// the track's value type or a plain func with the same signature.
	SetCallbackAny(cb any) error

	// ClearCallback detaches any callback.
	ClearCallback()
}

var _ Property = (*Track[float64])(nil)

// ValueType implements Property.
func (t *Track[T]) ValueType() string {
	var zero T
	return fmt.Sprintf("%T", zero)
}

// SetAny implements Property.
func (t *Track[T]) SetAny(v any, frame float64) error {
	tv, ok := v.(T)
	if !ok {
		return &TypeError{Want: t.ValueType(), Got: fmt.Sprintf("%T", v)}
	}
	t.SetValue(tv, frame)
	return nil
}

// SetCallbackAny implements Property.
func (t *Track[T]) SetCallbackAny(cb any) error {
	switch f := cb.(type) {
	case ValueCallback[T]:
		t.SetCallback(f)
	case func(CallbackInfo[T]) T:
		t.SetCallback(f)
	default:
		return &TypeError{Want: fmt.Sprintf("ValueCallback[%s]", t.ValueType()), Got: fmt.Sprintf("%T", cb)}
	}
	return nil
}
