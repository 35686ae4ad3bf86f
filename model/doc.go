// Package model holds the immutable in-memory form of an animation
// document: compositions, layers, shape trees, masks, text and assets.
//
// Every animatable property is a [Value], an ordered list of keyframes.
// A loader builds a [Composition] once; the scene package then
// evaluates it. Nothing in this package changes after construction, so
// one composition may back any number of concurrently evaluated scenes.
//
// [Validate] checks the structural invariants the evaluator relies on:
//
//	comp := &model.Composition{FrameRate: 30, EndFrame: 60, ...}
//	if err := model.Validate(comp); err != nil {
//	    var verr *model.ValidationError
//	    errors.As(err, &verr) // verr.Problems lists every problem
//	}
package model
