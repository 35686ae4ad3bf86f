package node

import (
	"slices"

	"github.com/gogpu/motion"
	"github.com/gogpu/motion/keyframe"
)

// Kind identifies the variant held in a node's Content.
type Kind uint8

const (
	KindEllipse Kind = iota
	KindRect
	KindStar
	KindPath
	KindGroup
	KindTransform
	KindTrim
	KindMerge
	KindRepeater
	KindFill
	KindStroke
	KindGradientFill
	KindGradientStroke
	KindText
)

var kindNames = [...]string{
	"Ellipse", "Rect", "Star", "Path", "Group", "Transform", "Trim", "Merge",
	"Repeater", "Fill", "Stroke", "GradientFill", "GradientStroke", "Text",
}

// String returns the kind name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// State is the evaluation state of a node.
type State uint8

const (
	// Stale nodes have never been evaluated or were invalidated.
	Stale State = iota
	// Fresh nodes hold the outputs of Frame.
	Fresh
)

// Content is the kind-specific payload of a node. The implementations are
// the exported pointer types of this package and the set is closed.
type Content interface {
	kind() Kind
}

// Node is one vertex of the animator graph.
type Node struct {
	name    string
	content Content
	input   *Node

	props []keyframe.Property

	state State
	frame float64

	local       motion.CompoundPath
	output      motion.CompoundPath
	renderables []Renderable
}

func newNode(name string, c Content, input *Node) *Node {
	return &Node{name: name, content: c, input: input}
}

// Name returns the node name used in keypaths.
func (n *Node) Name() string { return n.name }

// Kind returns the variant of the node's content.
func (n *Node) Kind() Kind { return n.content.kind() }

// Content returns the kind-specific payload. Callers type switch on it.
func (n *Node) Content() Content { return n.content }

// Input returns the upstream node, or nil.
func (n *Node) Input() *Node { return n.input }

// State returns the evaluation state.
func (n *Node) State() State { return n.state }

// Frame returns the frame of the last update.
func (n *Node) Frame() float64 { return n.frame }

// Local returns the geometry the node itself contributes.
func (n *Node) Local() motion.CompoundPath { return n.local }

// Output returns the geometry the node passes downstream.
func (n *Node) Output() motion.CompoundPath { return n.output }

// Renderables returns the paint operations produced by the node and, for
// groups, by its descendants, ordered back to front.
func (n *Node) Renderables() []Renderable { return n.renderables }

// Children returns the nodes addressable below this one in a keypath: a
// group's transform followed by its items in declared order.
func (n *Node) Children() []*Node {
	g, ok := n.content.(*Group)
	if !ok {
		return nil
	}
	out := make([]*Node, 0, len(g.items)+1)
	if g.transform != nil {
		out = append(out, g.transform)
	}
	return append(out, g.items...)
}

// register adds tracks to the property registry.
func (n *Node) register(props ...keyframe.Property) {
	n.props = append(n.props, props...)
}

// Properties returns the node's animatable properties in registration
// order.
func (n *Node) Properties() []keyframe.Property {
	return slices.Clone(n.props)
}

// Property returns the property with the given name.
func (n *Node) Property(name string) (keyframe.Property, bool) {
	for _, p := range n.props {
		if p.Name() == name {
			return p, true
		}
	}
	return nil, false
}

// Faults returns the interpolation faults recorded by the node's path
// tracks.
func (n *Node) Faults() []keyframe.Fault {
	var out []keyframe.Fault
	for _, p := range n.props {
		if f, ok := p.(interface{ Faults() []keyframe.Fault }); ok {
			out = append(out, f.Faults()...)
		}
	}
	return out
}

// Invalidate marks the node stale so the next Update recomputes it and
// everything downstream.
func (n *Node) Invalidate() {
	n.state = Stale
}

// hasUpdate reports whether any property resolves differently at frame.
func (n *Node) hasUpdate(frame float64) bool {
	for _, p := range n.props {
		if p.HasUpdate(frame) {
			return true
		}
	}
	return false
}

// Update evaluates the node at frame. The input chain is updated first,
// then a group's own transform and children. The node recomputes when it
// is stale, forced, one of its properties changes at frame, or anything it
// reads from changed. modifier, if non-nil, is called on every node after
// its update. Update reports whether the node's outputs were recomputed.
func (n *Node) Update(frame float64, modifier func(*Node), forceLocal bool) bool {
	upstream := false
	if n.input != nil {
		upstream = n.input.Update(frame, modifier, forceLocal)
	}
	if g, ok := n.content.(*Group); ok {
		if g.update(frame, modifier, forceLocal) {
			upstream = true
		}
	}

	dirty := n.state == Stale || forceLocal || upstream || n.hasUpdate(frame)
	if dirty {
		if forceLocal {
			// Re-resolve every property so value callbacks run again.
			for _, p := range n.props {
				p.Invalidate()
			}
		}
		n.performLocalUpdate(frame)
		n.rebuildOutputs()
	}
	n.state = Fresh
	n.frame = frame

	if modifier != nil {
		modifier(n)
	}
	return dirty
}

// inputOutput returns the geometry of the upstream node.
func (n *Node) inputOutput() motion.CompoundPath {
	if n.input == nil {
		return motion.CompoundPath{}
	}
	return n.input.output
}

// performLocalUpdate resolves every property at frame and recomputes the
// node's own geometry and style.
func (n *Node) performLocalUpdate(frame float64) {
	switch c := n.content.(type) {
	case *Ellipse:
		n.local = single(c.path(frame))
	case *Rect:
		n.local = single(c.path(frame))
	case *Star:
		n.local = single(c.path(frame))
	case *Path:
		n.local = single(c.path(frame))
	case *Group:
		n.local = c.evaluate()
	case *Transform:
		c.evaluate(frame)
	case *Trim:
		c.evaluate(frame)
	case *Repeater:
		c.evaluate(frame)
	case *Fill:
		c.evaluate(frame)
	case *Stroke:
		c.evaluate(frame)
	case *GradientFill:
		c.evaluate(frame)
	case *GradientStroke:
		c.evaluate(frame)
	case *Text:
		n.local = c.evaluate(frame)
	}
}

// rebuildOutputs derives the node's output geometry and renderables from
// its local state and its input.
func (n *Node) rebuildOutputs() {
	in := n.inputOutput()
	switch c := n.content.(type) {
	case *Ellipse, *Rect, *Star, *Path:
		n.output = concat(in, n.local)
	case *Group:
		n.output = concat(in, n.local)
		n.renderables = c.renderables()
	case *Transform:
		n.output = in
	case *Merge:
		n.output = motion.Merge([]motion.CompoundPath{in}, c.Mode)
	case *Trim:
		n.output = c.apply(in)
	case *Repeater:
		n.output = c.apply(in)
	case *Fill:
		n.output = in
		n.renderables = []Renderable{c.renderable(n, in)}
	case *Stroke:
		n.output = in
		n.renderables = []Renderable{c.renderable(n, in)}
	case *GradientFill:
		n.output = in
		n.renderables = []Renderable{c.renderable(n, in)}
	case *GradientStroke:
		n.output = in
		n.renderables = []Renderable{c.renderable(n, in)}
	case *Text:
		n.output = concat(in, n.local)
		n.renderables = c.renderables(n, n.local)
	}
}

func single(p motion.BezierPath) motion.CompoundPath {
	var c motion.CompoundPath
	c.Append(p)
	return c
}

// concat returns a followed by b. The fill rule of a wins unless a is
// empty.
func concat(a, b motion.CompoundPath) motion.CompoundPath {
	if a.IsEmpty() {
		return b
	}
	if b.IsEmpty() {
		return a
	}
	out := motion.CompoundPath{
		Paths:    make([]motion.BezierPath, 0, len(a.Paths)+len(b.Paths)),
		FillRule: a.FillRule,
	}
	out.Paths = append(out.Paths, a.Paths...)
	out.Paths = append(out.Paths, b.Paths...)
	return out
}
