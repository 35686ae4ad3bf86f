package model

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Validation sentinels. Every Problem wraps one of these or
// keyframe.ErrUnordered.
var (
	ErrInvalid        = errors.New("model: invalid composition")
	ErrNilComposition = errors.New("model: nil composition")
	ErrFrameRate      = errors.New("model: frame rate must be positive")
	ErrFrameRange     = errors.New("model: end frame before start frame")
	ErrLayerRange     = errors.New("model: out frame before in frame")
	ErrTimeStretch    = errors.New("model: time stretch must be positive")
	ErrDuplicateIndex = errors.New("model: duplicate layer index")
	ErrDuplicateAsset = errors.New("model: duplicate asset id")
	ErrParent         = errors.New("model: parent layer not found")
	ErrParentCycle    = errors.New("model: parent chain forms a cycle")
	ErrPrecompCycle   = errors.New("model: precomposition references itself")
	ErrMissingContent = errors.New("model: layer content missing")
	ErrNilItem        = errors.New("model: nil shape item")
)

// Problem is one validation failure located by a readable path such as
// `layers[2] "Ball".shapes[0].Size`.
type Problem struct {
	Path string
	Err  error
}

func (p Problem) Error() string {
	return p.Path + ": " + p.Err.Error()
}

func (p Problem) Unwrap() error {
	return p.Err
}

// ValidationError lists every problem found in a composition.
type ValidationError struct {
	Problems []Problem
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString(ErrInvalid.Error())
	for i, p := range e.Problems {
		if i == 0 {
			b.WriteString(": ")
		} else {
			b.WriteString("; ")
		}
		b.WriteString(p.Error())
	}
	return b.String()
}

// Unwrap exposes ErrInvalid and every problem to errors.Is and errors.As.
func (e *ValidationError) Unwrap() []error {
	errs := make([]error, 0, len(e.Problems)+1)
	errs = append(errs, ErrInvalid)
	for _, p := range e.Problems {
		errs = append(errs, p)
	}
	return errs
}

// Validate checks the structural invariants of c: a positive frame rate,
// ordered frame ranges and keyframes, resolvable and acyclic parents,
// unique layer indices and asset IDs, and acyclic precompositions.
// References to missing assets are not errors; such layers evaluate to
// empty content.
func Validate(c *Composition) error {
	if c == nil {
		return &ValidationError{Problems: []Problem{{Path: "composition", Err: ErrNilComposition}}}
	}
	v := &validator{}
	if !(c.FrameRate > 0) {
		v.add("frameRate", fmt.Errorf("%w: %v", ErrFrameRate, c.FrameRate))
	}
	if c.EndFrame < c.StartFrame {
		v.add("endFrame", fmt.Errorf("%w: %v < %v", ErrFrameRange, c.EndFrame, c.StartFrame))
	}
	v.layers("layers", c.Layers)

	seen := make(map[string]bool, len(c.Assets))
	for _, a := range c.Assets {
		id := a.AssetID()
		path := fmt.Sprintf("assets[%q]", id)
		if seen[id] {
			v.add(path, ErrDuplicateAsset)
		}
		seen[id] = true
		if p, ok := a.(*Precomp); ok {
			v.layers(path+".layers", p.Layers)
		}
	}
	v.precompCycles(c)

	if len(v.problems) > 0 {
		return &ValidationError{Problems: v.problems}
	}
	return nil
}

type validator struct {
	problems []Problem
}

func (v *validator) add(path string, err error) {
	v.problems = append(v.problems, Problem{Path: path, Err: err})
}

func (v *validator) fields(path string, fs []field) {
	for _, f := range fs {
		if err := f.value.check(); err != nil {
			v.add(path+"."+f.name, err)
		}
	}
}

func (v *validator) layers(path string, layers []Layer) {
	byIndex := make(map[int]*Layer, len(layers))
	for i := range layers {
		l := &layers[i]
		lp := fmt.Sprintf("%s[%d] %q", path, i, l.Name)
		if _, dup := byIndex[l.Index]; dup {
			v.add(lp, fmt.Errorf("%w: %d", ErrDuplicateIndex, l.Index))
		}
		byIndex[l.Index] = l
		v.layer(lp, l)
	}

	for i := range layers {
		l := &layers[i]
		if l.Parent == nil {
			continue
		}
		lp := fmt.Sprintf("%s[%d] %q", path, i, l.Name)
		if _, ok := byIndex[*l.Parent]; !ok {
			v.add(lp+".parent", fmt.Errorf("%w: %d", ErrParent, *l.Parent))
			continue
		}
		visited := map[int]bool{l.Index: true}
		for p := byIndex[*l.Parent]; p != nil; {
			if visited[p.Index] {
				v.add(lp+".parent", ErrParentCycle)
				break
			}
			visited[p.Index] = true
			if p.Parent == nil {
				break
			}
			p = byIndex[*p.Parent]
		}
	}
}

func (v *validator) layer(path string, l *Layer) {
	if l.OutFrame < l.InFrame {
		v.add(path, fmt.Errorf("%w: %v < %v", ErrLayerRange, l.OutFrame, l.InFrame))
	}
	if l.TimeStretch < 0 || math.IsNaN(l.TimeStretch) {
		v.add(path+".timeStretch", fmt.Errorf("%w: %v", ErrTimeStretch, l.TimeStretch))
	}
	switch {
	case l.Type == LayerSolid && l.Solid == nil:
		v.add(path, fmt.Errorf("%w: solid layer without solid", ErrMissingContent))
	case l.Type == LayerText && l.Text == nil:
		v.add(path, fmt.Errorf("%w: text layer without text", ErrMissingContent))
	}

	v.fields(path+".transform", l.Transform.fields())
	if err := l.TimeRemap.check(); err != nil {
		v.add(path+".timeRemap", err)
	}
	for i := range l.Masks {
		v.fields(fmt.Sprintf("%s.masks[%d]", path, i), l.Masks[i].fields())
	}
	v.shapes(path+".shapes", l.Shapes)
	if l.Text != nil {
		if err := l.Text.Document.check(); err != nil {
			v.add(path+".text.document", err)
		}
		for i := range l.Text.Animators {
			v.fields(fmt.Sprintf("%s.text.animators[%d]", path, i), l.Text.Animators[i].fields())
		}
	}
}

func (v *validator) shapes(path string, items []ShapeItem) {
	for i, it := range items {
		ip := fmt.Sprintf("%s[%d]", path, i)
		if it == nil {
			v.add(ip, ErrNilItem)
			continue
		}
		v.fields(ip, it.fields())
		if g, ok := it.(*Group); ok {
			v.shapes(ip+".items", g.Items)
		}
	}
}

// precompCycles reports precompositions that reach themselves through
// precomp layers.
func (v *validator) precompCycles(c *Composition) {
	const (
		unvisited = iota
		active
		done
	)
	state := make(map[string]int)
	var visit func(id string) bool
	visit = func(id string) bool {
		switch state[id] {
		case active:
			return true
		case done:
			return false
		}
		p, ok := c.Precomp(id)
		if !ok {
			state[id] = done
			return false
		}
		state[id] = active
		for i := range p.Layers {
			if p.Layers[i].Type == LayerPrecomp && visit(p.Layers[i].RefID) {
				state[id] = done
				return true
			}
		}
		state[id] = done
		return false
	}
	for _, a := range c.Assets {
		if _, ok := a.(*Precomp); !ok {
			continue
		}
		for k := range state {
			delete(state, k)
		}
		if visit(a.AssetID()) {
			v.add(fmt.Sprintf("assets[%q]", a.AssetID()), ErrPrecompCycle)
		}
	}
}
