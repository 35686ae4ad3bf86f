package scene

import (
	"github.com/gogpu/motion"
	"github.com/gogpu/motion/keyframe"
	"github.com/gogpu/motion/model"
	"github.com/gogpu/motion/node"
)

// mask is the evaluated state of one layer mask.
type mask struct {
	m         *model.Mask
	path      *keyframe.Track[motion.BezierPath]
	opacity   *keyframe.Track[float64]
	expansion *keyframe.Track[float64]

	props []keyframe.Property
}

func newMask(m *model.Mask) *mask {
	k := &mask{
		m:         m,
		path:      node.NewTrack[motion.BezierPath](keyframe.Path{}, "Path", m.Path, motion.BezierPath{}),
		opacity:   node.NewTrack[float64](keyframe.Float{}, "Opacity", m.Opacity, 100),
		expansion: node.NewTrack[float64](keyframe.Float{}, "Expansion", m.Expansion, 0),
	}
	k.props = []keyframe.Property{k.path, k.opacity, k.expansion}
	return k
}

func (k *mask) hasUpdate(frame float64) bool {
	for _, p := range k.props {
		if p.HasUpdate(frame) {
			return true
		}
	}
	return false
}

// resolve returns the mask at frame in layer space.
func (k *mask) resolve(frame float64) RenderMask {
	var path motion.CompoundPath
	if p := k.path.ValueAt(frame); !p.IsEmpty() {
		path.Append(p)
	}
	return RenderMask{
		Name:      k.m.Name,
		Mode:      k.m.Mode,
		Inverted:  k.m.Inverted,
		Path:      path,
		Opacity:   min(max(k.opacity.ValueAt(frame)/100, 0), 1),
		Expansion: k.expansion.ValueAt(frame),
	}
}

// layer is one instantiated layer of a composition.
type layer struct {
	m      *model.Layer
	parent *layer

	transform *node.Node
	content   *node.Node
	masks     []*mask
	remap     *keyframe.Track[float64]
	frameRate float64
	children  []*layer
	image     *model.Image

	evaluated bool
	visible   bool
	frame     float64
	resolved  []RenderMask
}

// newLayers instantiates layers and links their parents. Parents refer to
// layers of the same list by index.
func newLayers(c *model.Composition, layers []model.Layer, o *options, depth int) []*layer {
	out := make([]*layer, 0, len(layers))
	byIndex := make(map[int]*layer, len(layers))
	for i := range layers {
		l := newLayer(c, &layers[i], o, depth)
		out = append(out, l)
		byIndex[l.m.Index] = l
	}
	for _, l := range out {
		if l.m.Parent != nil {
			l.parent = byIndex[*l.m.Parent]
		}
	}
	return out
}

func newLayer(c *model.Composition, m *model.Layer, o *options, depth int) *layer {
	l := &layer{
		m:         m,
		transform: node.NewTransform("Transform", &m.Transform),
		frameRate: c.FrameRate,
	}
	for i := range m.Masks {
		l.masks = append(l.masks, newMask(&m.Masks[i]))
	}

	switch m.Type {
	case model.LayerShape:
		l.content = node.Build(m.Name, m.Shapes)
	case model.LayerText:
		if m.Text != nil {
			l.content = node.NewText(m.Name, m.Text, o.typesetter)
		}
	case model.LayerSolid:
		if m.Solid != nil {
			l.content = solidContent(m.Name, m.Solid)
		}
	case model.LayerImage:
		if a, ok := c.Asset(m.RefID); ok {
			l.image, _ = a.(*model.Image)
		}
		if l.image == nil {
			motion.Logger().Warn("scene: image asset not found, layer renders empty", "layer", m.Name, "ref", m.RefID)
		}
	case model.LayerPrecomp:
		if m.TimeRemap.IsSet() {
			l.remap = node.NewTrack[float64](keyframe.Float{}, "Time Remap", m.TimeRemap, 0)
		}
		p, ok := c.Precomp(m.RefID)
		switch {
		case !ok:
			motion.Logger().Warn("scene: precomp not found, layer renders empty", "layer", m.Name, "ref", m.RefID)
		case depth >= o.maxDepth:
			motion.Logger().Warn("scene: precomp nesting too deep, layer renders empty", "layer", m.Name, "depth", depth)
		default:
			l.children = newLayers(c, p.Layers, o, depth+1)
		}
	}
	return l
}

// solidContent builds a solid layer as a filled rectangle spanning
// (0, 0) to (width, height).
func solidContent(name string, s *model.Solid) *node.Node {
	size := motion.V2(s.Width, s.Height)
	return node.Build(name, []model.ShapeItem{
		&model.Rectangle{
			Item:     model.Item{Name: "Rectangle"},
			Position: model.Const(size.Mul(0.5)),
			Size:     model.Const(size),
		},
		&model.Fill{Item: model.Item{Name: "Fill"}, Color: model.Const(s.Color)},
	})
}

// update evaluates the layer at frame, given in the time of the
// composition that holds it. It reports whether anything the layer
// renders changed.
func (l *layer) update(frame float64) bool {
	local := l.m.LocalFrame(frame)
	visible := l.m.Visible(frame)
	dirty := !l.evaluated || visible != l.visible
	l.evaluated, l.visible, l.frame = true, visible, local

	if l.transform.Update(local, nil, false) {
		dirty = true
	}
	if !visible {
		return dirty
	}

	if l.hasMaskUpdate(local) {
		l.resolved = l.resolved[:0]
		for _, k := range l.masks {
			l.resolved = append(l.resolved, k.resolve(local))
		}
		dirty = true
	}
	if l.content != nil && l.content.Update(local, nil, false) {
		dirty = true
	}
	if len(l.children) > 0 {
		inner := local
		if l.remap != nil {
			if l.remap.HasUpdate(local) {
				dirty = true
			}
			inner = l.remap.ValueAt(local) * l.frameRate
		}
		for _, c := range l.children {
			if c.update(inner) {
				dirty = true
			}
		}
	}
	return dirty
}

func (l *layer) hasMaskUpdate(frame float64) bool {
	for _, k := range l.masks {
		if k.hasUpdate(frame) {
			return true
		}
	}
	return false
}

// matrix returns the layer's transform composed with its parents'.
func (l *layer) matrix() motion.Matrix {
	m := l.transform.Content().(*node.Transform).Matrix()
	for p := l.parent; p != nil; p = p.parent {
		m = p.transform.Content().(*node.Transform).Matrix().Multiply(m)
	}
	return m
}

// opacity returns the layer's own opacity. Parent opacity does not
// propagate.
func (l *layer) opacity() float64 {
	return l.transform.Content().(*node.Transform).Alpha()
}
