package keyframe

// CallbackInfo is the evaluation context passed to a ValueCallback.
// Outside the keyframe range, and for single-keyframe tracks, StartFrame
// and EndFrame both name the clamping keyframe.
type CallbackInfo[T any] struct {
	StartFrame   float64
	EndFrame     float64
	StartValue   T
	EndValue     T
	Interpolated T
	Progress     float64
	Frame        float64
}

// ValueCallback replaces the interpolated value of a track. It must be a
// pure function of its argument.
type ValueCallback[T any] func(info CallbackInfo[T]) T

// Constant returns a callback that always yields v.
func Constant[T any](v T) ValueCallback[T] {
	return func(CallbackInfo[T]) T { return v }
}
