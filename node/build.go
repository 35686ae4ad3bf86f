package node

import (
	"fmt"
	"strconv"

	"github.com/gogpu/motion"
	"github.com/gogpu/motion/keyframe"
	"github.com/gogpu/motion/model"
)

// NewTrack returns a named track over a copy of v, or over def when v is
// unset. Keyframes that fail validation collapse to their first value.
func NewTrack[T any](k keyframe.Kind[T], name string, v model.Value[T], def T) *keyframe.Track[T] {
	keys := v.Or(def)
	t, err := keyframe.NewTrack(k, keys...)
	if err != nil {
		motion.Logger().Warn("node: invalid keyframes, holding first value", "property", name, "err", err)
		t = keyframe.ConstantTrack(k, keys.First())
	}
	return t.Named(name)
}

// optionalTrack registers and returns a track for v, or returns nil when
// v is unset.
func optionalTrack[T any](n *Node, k keyframe.Kind[T], name string, v model.Value[T]) *keyframe.Track[T] {
	if !v.IsSet() {
		return nil
	}
	t := NewTrack(k, name, v, v.First())
	n.register(t)
	return t
}

// Build returns the root group of a shape tree. Hidden items are
// skipped. The graph copies every keyframe list, so graphs built from one
// model never share mutable state.
func Build(name string, items []model.ShapeItem) *Node {
	return buildGroup(name, items, nil)
}

func buildGroup(name string, items []model.ShapeItem, input *Node) *Node {
	g := &Group{matrix: motion.Identity(), opacity: 1}
	var prev *Node
	for _, it := range items {
		if it.IsHidden() {
			continue
		}
		if st, ok := it.(*model.ShapeTransform); ok {
			if g.transform == nil {
				g.transform = NewTransform(st.Name, &st.Transform)
			}
			continue
		}
		prev = buildItem(it, prev)
		g.items = append(g.items, prev)
	}
	g.tail = prev
	return newNode(name, g, input)
}

func buildItem(item model.ShapeItem, input *Node) *Node {
	switch it := item.(type) {
	case *model.Group:
		return buildGroup(it.Name, it.Items, input)

	case *model.Ellipse:
		c := &Ellipse{
			Direction: it.Direction,
			Position:  NewTrack[motion.Vec2](keyframe.Point{}, "Position", it.Position, motion.Vec2{}),
			Size:      NewTrack[motion.Vec2](keyframe.Size{}, "Size", it.Size, motion.Vec2{}),
		}
		n := newNode(it.Name, c, input)
		n.register(c.Position, c.Size)
		return n

	case *model.Rectangle:
		c := &Rect{
			Direction: it.Direction,
			Position:  NewTrack[motion.Vec2](keyframe.Point{}, "Position", it.Position, motion.Vec2{}),
			Size:      NewTrack[motion.Vec2](keyframe.Size{}, "Size", it.Size, motion.Vec2{}),
			Roundness: NewTrack[float64](keyframe.Float{}, "Roundness", it.Roundness, 0),
		}
		n := newNode(it.Name, c, input)
		n.register(c.Position, c.Size, c.Roundness)
		return n

	case *model.Star:
		c := &Star{
			Direction:      it.Direction,
			Polygon:        it.Type == model.StarTypePolygon,
			Position:       NewTrack[motion.Vec2](keyframe.Point{}, "Position", it.Position, motion.Vec2{}),
			Points:         NewTrack[float64](keyframe.Float{}, "Points", it.Points, 5),
			OuterRadius:    NewTrack[float64](keyframe.Float{}, "Outer Radius", it.OuterRadius, 0),
			OuterRoundness: NewTrack[float64](keyframe.Float{}, "Outer Roundness", it.OuterRoundness, 0),
			InnerRadius:    NewTrack[float64](keyframe.Float{}, "Inner Radius", it.InnerRadius, 0),
			InnerRoundness: NewTrack[float64](keyframe.Float{}, "Inner Roundness", it.InnerRoundness, 0),
			Rotation:       NewTrack[float64](keyframe.Float{}, "Rotation", it.Rotation, 0),
		}
		n := newNode(it.Name, c, input)
		n.register(c.Position, c.Points, c.OuterRadius, c.OuterRoundness, c.Rotation)
		if !c.Polygon {
			n.register(c.InnerRadius, c.InnerRoundness)
		}
		return n

	case *model.Shape:
		c := &Path{
			Direction: it.Direction,
			Path:      NewTrack[motion.BezierPath](keyframe.Path{}, "Path", it.Path, motion.BezierPath{}),
		}
		n := newNode(it.Name, c, input)
		n.register(c.Path)
		return n

	case *model.Trim:
		c := &Trim{
			Mode:   it.Mode,
			Start:  NewTrack[float64](keyframe.Float{}, "Start", it.Start, 0),
			End:    NewTrack[float64](keyframe.Float{}, "End", it.End, 100),
			Offset: NewTrack[float64](keyframe.Float{}, "Offset", it.Offset, 0),
		}
		n := newNode(it.Name, c, input)
		n.register(c.Start, c.End, c.Offset)
		return n

	case *model.Merge:
		return newNode(it.Name, &Merge{Mode: it.Mode}, input)

	case *model.Repeater:
		tr := &it.Transform
		c := &Repeater{
			Below:        it.Composite == model.CompositeBelow,
			Copies:       NewTrack[float64](keyframe.Float{}, "Copies", it.Copies, 0),
			Offset:       NewTrack[float64](keyframe.Float{}, "Offset", it.Offset, 0),
			Anchor:       NewTrack[motion.Vec2](keyframe.Point{}, "Anchor Point", tr.Anchor, motion.Vec2{}),
			Position:     NewTrack[motion.Vec2](keyframe.Point{}, "Position", tr.Position, motion.Vec2{}),
			Scale:        NewTrack[motion.Vec2](keyframe.Size{}, "Scale", tr.Scale, motion.V2(100, 100)),
			Rotation:     NewTrack[float64](keyframe.Float{}, "Rotation", tr.Rotation, 0),
			StartOpacity: NewTrack[float64](keyframe.Float{}, "Start Opacity", tr.StartOpacity, 100),
			EndOpacity:   NewTrack[float64](keyframe.Float{}, "End Opacity", tr.EndOpacity, 100),
		}
		n := newNode(it.Name, c, input)
		n.register(c.Copies, c.Offset, c.Anchor, c.Position, c.Scale, c.Rotation, c.StartOpacity, c.EndOpacity)
		return n

	case *model.Fill:
		c := &Fill{
			FillRule: it.FillRule,
			Color:    NewTrack[motion.RGBA](keyframe.Color{}, "Color", it.Color, motion.Black),
			Opacity:  NewTrack[float64](keyframe.Float{}, "Opacity", it.Opacity, 100),
		}
		n := newNode(it.Name, c, input)
		n.register(c.Color, c.Opacity)
		return n

	case *model.Stroke:
		c := &Stroke{
			Color:   NewTrack[motion.RGBA](keyframe.Color{}, "Color", it.Color, motion.Black),
			Opacity: NewTrack[float64](keyframe.Float{}, "Opacity", it.Opacity, 100),
		}
		n := newNode(it.Name, c, input)
		n.register(c.Color, c.Opacity)
		c.strokeProps = newStrokeProps(n, &it.StrokeStyle)
		return n

	case *model.GradientFill:
		c := &GradientFill{
			FillRule: it.FillRule,
			Opacity:  NewTrack[float64](keyframe.Float{}, "Opacity", it.Opacity, 100),
		}
		n := newNode(it.Name, c, input)
		c.gradientProps = newGradientProps(n, &it.Gradient)
		n.register(c.Opacity)
		return n

	case *model.GradientStroke:
		c := &GradientStroke{
			Opacity: NewTrack[float64](keyframe.Float{}, "Opacity", it.Opacity, 100),
		}
		n := newNode(it.Name, c, input)
		c.gradientProps = newGradientProps(n, &it.Gradient)
		n.register(c.Opacity)
		c.strokeProps = newStrokeProps(n, &it.StrokeStyle)
		return n
	}
	panic(fmt.Sprintf("node: unknown shape item %T", item))
}

func newStrokeProps(n *Node, s *model.StrokeStyle) strokeProps {
	p := strokeProps{
		Width:      NewTrack[float64](keyframe.Float{}, "Stroke Width", s.Width, 1),
		Cap:        s.Cap,
		Join:       s.Join,
		MiterLimit: s.MiterLimit,
	}
	if p.MiterLimit <= 0 {
		p.MiterLimit = 4
	}
	n.register(p.Width)
	dashes, gaps := 0, 0
	for _, d := range s.Dash {
		var name string
		switch d.Type {
		case model.DashTypeGap:
			name = "Gap " + strconv.Itoa(gaps)
			gaps++
		case model.DashTypeOffset:
			name = "Dash Offset"
		default:
			name = "Dash " + strconv.Itoa(dashes)
			dashes++
		}
		t := NewTrack[float64](keyframe.Float{}, name, d.Value, 0)
		n.register(t)
		p.dash = append(p.dash, dashTrack{typ: d.Type, track: t})
	}
	return p
}

func newGradientProps(n *Node, g *model.Gradient) gradientProps {
	p := gradientProps{
		Type:            g.Type,
		NumStops:        g.NumStops,
		Start:           NewTrack[motion.Vec2](keyframe.Point{}, "Start Point", g.Start, motion.Vec2{}),
		End:             NewTrack[motion.Vec2](keyframe.Point{}, "End Point", g.End, motion.Vec2{}),
		HighlightLength: NewTrack[float64](keyframe.Float{}, "Highlight Length", g.HighlightLength, 0),
		HighlightAngle:  NewTrack[float64](keyframe.Float{}, "Highlight Angle", g.HighlightAngle, 0),
		Colors:          NewTrack[[]float64](keyframe.Floats{}, "Colors", g.Colors, nil),
	}
	n.register(p.Start, p.End, p.HighlightLength, p.HighlightAngle, p.Colors)
	return p
}
