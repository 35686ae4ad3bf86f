// Package scene instantiates a composition for playback.
//
// A [Scene] owns one node graph per layer, built from an immutable
// [model.Composition]. Each frame request pulls the graphs up to date and
// exposes the result as a [RenderTree]: layers back to front with their
// composition-space matrices, masks and paint items.
//
//	s, err := scene.New(comp, scene.WithGlyphProvider(fonts))
//	if err != nil {
//	    return err
//	}
//	tree := s.GeometryForFrame(12)
//
// Properties can be overridden at runtime through dot-separated keypaths:
//
//	s.SetValue(motion.RGB(1, 0, 0), "Badge.Circle.Fill 1.Color", 0)
//	s.SetValueCallback(func(info keyframe.CallbackInfo[float64]) float64 {
//	    return info.Interpolated * 2
//	}, "**.Stroke Width")
//
// A Scene is not safe for concurrent use. Independent scenes over one
// composition may be evaluated concurrently.
package scene
