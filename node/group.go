package node

import (
	"slices"

	"github.com/gogpu/motion"
)

// Group is the content of a shape group: a transform and a chain of
// items.
type Group struct {
	transform *Node
	items     []*Node
	tail      *Node

	matrix  motion.Matrix
	opacity float64
}

func (*Group) kind() Kind { return KindGroup }

// Items returns the group's items in declared order.
func (g *Group) Items() []*Node { return g.items }

// TransformNode returns the group's transform node, or nil.
func (g *Group) TransformNode() *Node { return g.transform }

// Matrix returns the group transform resolved by the last update.
func (g *Group) Matrix() motion.Matrix { return g.matrix }

// Alpha returns the group opacity resolved by the last update.
func (g *Group) Alpha() float64 { return g.opacity }

// update brings the transform and the item chain up to date.
func (g *Group) update(frame float64, modifier func(*Node), forceLocal bool) bool {
	dirty := false
	if g.transform != nil && g.transform.Update(frame, modifier, forceLocal) {
		dirty = true
	}
	if g.tail != nil && g.tail.Update(frame, modifier, forceLocal) {
		dirty = true
	}
	return dirty
}

// evaluate resolves the group transform and returns the chain output in
// the group's parent space.
func (g *Group) evaluate() motion.CompoundPath {
	g.matrix, g.opacity = motion.Identity(), 1
	if g.transform != nil {
		t := g.transform.content.(*Transform)
		g.matrix, g.opacity = t.matrix, t.opacity
	}
	if g.tail == nil {
		return motion.CompoundPath{}
	}
	return g.tail.output.Transform(g.matrix)
}

// renderables collects the items' paint operations back to front. Items
// declared first are drawn on top. A repeater replicates everything
// collected above it.
func (g *Group) renderables() []Renderable {
	var list []Renderable
	for _, it := range g.items {
		if r, ok := it.content.(*Repeater); ok {
			list = r.replicate(list)
			continue
		}
		if len(it.renderables) > 0 {
			list = append(slices.Clone(it.renderables), list...)
		}
	}
	for i := range list {
		list[i] = list[i].under(g.matrix, g.opacity)
	}
	return list
}
