// Package node implements the animator node graph: the per-frame
// dataflow that turns a layer's shape tree into renderable geometry.
//
// A graph is built once from model shape items with [Build] and then
// updated in place for every requested frame:
//
//	root := node.Build("Layer", layer.Shapes, nil)
//	changed := root.Update(frame, nil, false)
//	for _, r := range root.Renderables() {
//	    // r.Geometry painted with r.Paint, back to front
//	}
//
// Within a group the items form an input chain in declared order. Every
// node receives the output of the item above it: shapes append their own
// path, modifiers such as trim, merge and repeater rewrite the
// accumulated geometry, and paint nodes capture it. A group transforms its
// children's result and appends it to its own input.
//
// Nodes cache their last evaluated frame. Updating twice at the same
// frame with no intervening mutation reports no change, and seeking to
// any frame, forward or backward, recomputes only the nodes whose
// properties resolve differently.
//
// A graph is not safe for concurrent use.
package node
