package node

import (
	"github.com/gogpu/motion"
	"github.com/gogpu/motion/keyframe"
	"github.com/gogpu/motion/model"
)

// Typesetter converts a text document into glyph outlines in layer space,
// with the first baseline at y = 0.
type Typesetter interface {
	Typeset(doc model.TextDocument) (motion.CompoundPath, error)
}

// TextAnimator holds the tracks of one text animator. Nil tracks are
// unset and leave the document untouched.
type TextAnimator struct {
	Name        string
	FillColor   *keyframe.Track[motion.RGBA]
	StrokeColor *keyframe.Track[motion.RGBA]
	StrokeWidth *keyframe.Track[float64]
	Tracking    *keyframe.Track[float64]
	Opacity     *keyframe.Track[float64]
	Anchor      *keyframe.Track[motion.Vec2]
	Position    *keyframe.Track[motion.Vec2]
	Scale       *keyframe.Track[motion.Vec2]
	Rotation    *keyframe.Track[float64]
}

// layoutKey holds the document fields that change glyph layout.
type layoutKey struct {
	text          string
	family        string
	size          float64
	justification model.Justification
	tracking      float64
	lineHeight    float64
	baseline      float64
}

// Text is the content of a text layer.
type Text struct {
	Document  *keyframe.Track[model.TextDocument]
	Animators []*TextAnimator

	typesetter Typesetter
	warned     bool

	laidOut bool
	key     layoutKey
	glyphs  motion.CompoundPath

	doc     model.TextDocument
	opacity float64
}

func (*Text) kind() Kind { return KindText }

// Resolved returns the document after animators, as of the last update.
func (t *Text) Resolved() model.TextDocument { return t.doc }

func (t *Text) evaluate(frame float64) motion.CompoundPath {
	doc := t.Document.ValueAt(frame)
	opacity := 1.0
	m := motion.Identity()
	for _, a := range t.Animators {
		if a.FillColor != nil {
			c := a.FillColor.ValueAt(frame)
			doc.FillColor = &c
		}
		if a.StrokeColor != nil {
			c := a.StrokeColor.ValueAt(frame)
			doc.StrokeColor = &c
		}
		if a.StrokeWidth != nil {
			doc.StrokeWidth = a.StrokeWidth.ValueAt(frame)
		}
		if a.Tracking != nil {
			doc.Tracking += a.Tracking.ValueAt(frame)
		}
		if a.Opacity != nil {
			opacity *= clamp01(a.Opacity.ValueAt(frame) / 100)
		}
		var anchor, pos motion.Vec2
		scale := motion.V2(100, 100)
		rot := 0.0
		if a.Anchor != nil {
			anchor = a.Anchor.ValueAt(frame)
		}
		if a.Position != nil {
			pos = a.Position.ValueAt(frame)
		}
		if a.Scale != nil {
			scale = a.Scale.ValueAt(frame)
		}
		if a.Rotation != nil {
			rot = a.Rotation.ValueAt(frame)
		}
		m = m.Multiply(TransformMatrix(anchor, pos, scale, rot, 0, 0))
	}
	t.doc = doc
	t.opacity = opacity

	key := layoutKey{
		text:          doc.Text,
		family:        doc.FontFamily,
		size:          doc.FontSize,
		justification: doc.Justification,
		tracking:      doc.Tracking,
		lineHeight:    doc.LineHeight,
		baseline:      doc.Baseline,
	}
	if !t.laidOut || key != t.key {
		t.glyphs = t.typeset(doc)
		t.key = key
		t.laidOut = true
	}
	return t.glyphs.Transform(m)
}

func (t *Text) typeset(doc model.TextDocument) motion.CompoundPath {
	if t.typesetter == nil {
		if !t.warned {
			motion.Logger().Warn("node: text layer without typesetter renders empty", "text", doc.Text)
			t.warned = true
		}
		return motion.CompoundPath{}
	}
	glyphs, err := t.typesetter.Typeset(doc)
	if err != nil {
		motion.Logger().Warn("node: typesetting failed", "font", doc.FontFamily, "err", err)
		return motion.CompoundPath{}
	}
	return glyphs
}

// renderables returns the fill and stroke of the glyphs, back to front.
func (t *Text) renderables(n *Node, glyphs motion.CompoundPath) []Renderable {
	var fill, stroke *Renderable
	if c := t.doc.FillColor; c != nil {
		r := newRenderable(n, Paint{Color: *c, Opacity: t.opacity}, glyphs)
		fill = &r
	}
	if c := t.doc.StrokeColor; c != nil && t.doc.StrokeWidth > 0 {
		r := newRenderable(n, Paint{
			Stroke:     true,
			Color:      *c,
			Opacity:    t.opacity,
			Width:      t.doc.StrokeWidth,
			Join:       motion.LineJoinMiter,
			MiterLimit: 4,
		}, glyphs)
		stroke = &r
	}

	first, second := stroke, fill
	if t.doc.StrokeOverFill {
		first, second = fill, stroke
	}
	var out []Renderable
	for _, r := range []*Renderable{first, second} {
		if r != nil {
			out = append(out, *r)
		}
	}
	return out
}

// NewText returns a text node over data. ts may be nil, in which case the
// text renders empty.
func NewText(name string, data *model.TextData, ts Typesetter) *Node {
	c := &Text{
		Document:   NewTrack[model.TextDocument](keyframe.Step[model.TextDocument]{}, "Source Text", data.Document, model.TextDocument{}),
		typesetter: ts,
		opacity:    1,
	}
	n := newNode(name, c, nil)
	n.register(c.Document)
	for i := range data.Animators {
		a := &data.Animators[i]
		ta := &TextAnimator{Name: a.Name}
		ta.FillColor = optionalTrack[motion.RGBA](n, keyframe.Color{}, "Fill Color", a.FillColor)
		ta.StrokeColor = optionalTrack[motion.RGBA](n, keyframe.Color{}, "Stroke Color", a.StrokeColor)
		ta.StrokeWidth = optionalTrack[float64](n, keyframe.Float{}, "Stroke Width", a.StrokeWidth)
		ta.Tracking = optionalTrack[float64](n, keyframe.Float{}, "Tracking", a.Tracking)
		ta.Opacity = optionalTrack[float64](n, keyframe.Float{}, "Opacity", a.Opacity)
		ta.Anchor = optionalTrack[motion.Vec2](n, keyframe.Point{}, "Anchor Point", a.Anchor)
		ta.Position = optionalTrack[motion.Vec2](n, keyframe.Point{}, "Position", a.Position)
		ta.Scale = optionalTrack[motion.Vec2](n, keyframe.Size{}, "Scale", a.Scale)
		ta.Rotation = optionalTrack[float64](n, keyframe.Float{}, "Rotation", a.Rotation)
		c.Animators = append(c.Animators, ta)
	}
	return n
}
