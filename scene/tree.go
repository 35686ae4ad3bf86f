package scene

import (
	"github.com/gogpu/motion"
	"github.com/gogpu/motion/model"
	"github.com/gogpu/motion/node"
)

// RenderTree is the resolved content of a composition at one frame.
type RenderTree struct {
	Frame  float64
	Width  float64
	Height float64

	// Layers are ordered back to front.
	Layers []*RenderLayer
}

// RenderLayer is one visible layer. Matrix maps layer space to the space
// of the root composition; it already includes parent layers and
// enclosing precomps.
type RenderLayer struct {
	Name      string
	Index     int
	Type      model.LayerType
	Matrix    motion.Matrix
	Opacity   float64
	BlendMode model.BlendMode
	Matte     model.MatteMode

	// MatteSource is the layer declared directly above a matted layer. It
	// is nil when that layer is not visible at this frame. Matte sources
	// are not listed in Layers on their own.
	MatteSource *RenderLayer

	// Masks are in composition space, in declared order.
	Masks []RenderMask

	// Items are ordered back to front.
	Items []RenderItem

	// Children holds the layers of a precomp, back to front. Their
	// opacity is multiplied by the precomp layer's.
	Children []*RenderLayer

	// Size is the precomp or image bounds in layer space.
	Size motion.Vec2

	// Image is the asset of an image layer.
	Image *model.Image
}

// RenderMask is a resolved layer mask. Path is in layer space.
type RenderMask struct {
	Name      string
	Mode      model.MaskMode
	Inverted  bool
	Path      motion.CompoundPath
	Opacity   float64
	Expansion float64
}

// RenderItem is one paint operation. Geometry is Local mapped through
// Matrix into composition space. Opacity is the product of the enclosing
// group and repeater opacities; the paint's own opacity is separate.
type RenderItem struct {
	Geometry motion.CompoundPath
	Local    motion.CompoundPath
	Matrix   motion.Matrix
	Paint    node.Paint
	Opacity  float64
}

// Len returns the number of layers in the tree, counting precomp
// children.
func (t *RenderTree) Len() int {
	n := 0
	var walk func([]*RenderLayer)
	walk = func(ls []*RenderLayer) {
		for _, l := range ls {
			n++
			walk(l.Children)
		}
	}
	walk(t.Layers)
	return n
}

// Find returns the first layer with the given name, searching precomp
// children depth first.
func (t *RenderTree) Find(name string) *RenderLayer {
	var find func([]*RenderLayer) *RenderLayer
	find = func(ls []*RenderLayer) *RenderLayer {
		for _, l := range ls {
			if l.Name == name {
				return l
			}
			if c := find(l.Children); c != nil {
				return c
			}
		}
		return nil
	}
	return find(t.Layers)
}

// renderLayers resolves the visible layers of one composition level back
// to front. outer maps the level's space into root composition space.
func renderLayers(layers []*layer, outer motion.Matrix) []*RenderLayer {
	out := make([]*RenderLayer, 0, len(layers))
	for i := len(layers) - 1; i >= 0; i-- {
		l := layers[i]
		if isMatteSource(layers, i) || !l.visible || l.m.Type == model.LayerNull {
			continue
		}
		rl := l.render(outer)
		if l.m.Matte != model.MatteNone && i > 0 && layers[i-1].visible {
			rl.MatteSource = layers[i-1].render(outer)
		}
		out = append(out, rl)
	}
	return out
}

// isMatteSource reports whether the layer at i is consumed as the track
// matte of the layer below it.
func isMatteSource(layers []*layer, i int) bool {
	return i+1 < len(layers) && layers[i+1].m.Matte != model.MatteNone
}

func (l *layer) render(outer motion.Matrix) *RenderLayer {
	m := outer.Multiply(l.matrix())
	rl := &RenderLayer{
		Name:      l.m.Name,
		Index:     l.m.Index,
		Type:      l.m.Type,
		Matrix:    m,
		Opacity:   l.opacity(),
		BlendMode: l.m.BlendMode,
		Matte:     l.m.Matte,
		Size:      motion.V2(l.m.Width, l.m.Height),
		Image:     l.image,
	}
	if l.image != nil {
		rl.Size = motion.V2(l.image.Width, l.image.Height)
	}
	for _, k := range l.resolved {
		k.Path = k.Path.Transform(m)
		rl.Masks = append(rl.Masks, k)
	}
	if l.content != nil {
		rs := l.content.Renderables()
		rl.Items = make([]RenderItem, 0, len(rs))
		for _, r := range rs {
			im := m.Multiply(r.Matrix)
			rl.Items = append(rl.Items, RenderItem{
				Geometry: r.Geometry.Transform(im),
				Local:    r.Geometry,
				Matrix:   im,
				Paint:    r.Paint,
				Opacity:  r.Opacity,
			})
		}
	}
	if len(l.children) > 0 {
		rl.Children = renderLayers(l.children, m)
	}
	return rl
}
