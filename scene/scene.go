package scene

import (
	"fmt"

	"github.com/gogpu/motion"
	"github.com/gogpu/motion/model"
)

// Scene is one playback instance of a composition.
type Scene struct {
	comp   *model.Composition
	layers []*layer
	keys   *entry

	evaluated bool
	frame     float64
	tree      *RenderTree
}

// New validates comp and instantiates it. Every layer gets its own node
// graph with fresh tracks, so scenes built from one composition never
// share mutable state. An invalid composition yields an error wrapping
// *model.ValidationError and no scene.
func New(comp *model.Composition, opts ...Option) (*Scene, error) {
	if err := model.Validate(comp); err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	s := &Scene{comp: comp, keys: &entry{}}
	s.layers = newLayers(comp, comp.Layers, &o, 0)
	for _, l := range s.layers {
		s.keys.children = append(s.keys.children, layerEntry(l))
	}
	motion.Logger().Debug("scene: built", "composition", comp.Name, "layers", len(s.layers))
	return s, nil
}

// Composition returns the composition the scene plays.
func (s *Scene) Composition() *model.Composition { return s.comp }

// Frame returns the frame of the last update.
func (s *Scene) Frame() float64 { return s.frame }

// Update brings every layer to frame and reports whether anything
// rendered changed since the previous update. frame is in composition
// time and is not clamped to the composition range; property values
// clamp to their first and last keyframes.
func (s *Scene) Update(frame float64) bool {
	dirty := !s.evaluated
	for _, l := range s.layers {
		if l.update(frame) {
			dirty = true
		}
	}
	s.evaluated, s.frame = true, frame
	return dirty
}

// GeometryForFrame updates the scene to frame and returns its render
// tree. The tree is reused while nothing changes and must be treated as
// read-only; it stays valid until the next call.
func (s *Scene) GeometryForFrame(frame float64) *RenderTree {
	if !s.Update(frame) && s.tree != nil {
		s.tree.Frame = s.frame
		return s.tree
	}
	s.tree = &RenderTree{
		Frame:  s.frame,
		Width:  s.comp.Width,
		Height: s.comp.Height,
		Layers: renderLayers(s.layers, motion.Identity()),
	}
	return s.tree
}
