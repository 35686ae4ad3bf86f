// Package keyframe resolves animated property values for arbitrary frames.
//
// A Track holds an ordered list of Keyframe anchors for one property and
// answers two questions for any frame, in any order: what the value is
// (ValueAt) and whether it may differ from the last evaluated value
// (HasUpdate). Tracks are generic over the value type; a Kind supplies the
// interpolation for that type and may additionally implement Spatial for
// curved motion paths and Validator for values that can only be
// interpolated when compatible.
//
// Between two anchors, progress is the normalized frame position shaped by
// an optional Ease, a cubic timing curve from (0,0) to (1,1). Hold anchors
// produce a step function. Frames outside the anchor range clamp to the
// nearest anchor.
//
// A ValueCallback attached to a track replaces the interpolated value with
// a host-computed one. Callbacks never change when a track reports an
// update; they only transform the emitted value.
//
// Tracks are not safe for concurrent use.
package keyframe
