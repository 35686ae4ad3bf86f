package model

import (
	"strconv"

	"github.com/gogpu/motion"
)

// ShapeItem is one entry of a shape layer's content tree: a primitive,
// a group, or a modifier. The set of implementations is closed.
type ShapeItem interface {
	ItemName() string
	IsHidden() bool
	fields() []field
	isShapeItem()
}

// Item carries the attributes shared by every shape item.
type Item struct {
	Name   string
	Hidden bool
}

// ItemName returns the item name used in keypaths.
func (i Item) ItemName() string { return i.Name }

// IsHidden reports whether the item is skipped during evaluation.
func (i Item) IsHidden() bool { return i.Hidden }

// Ellipse is an ellipse primitive centred on Position.
type Ellipse struct {
	Item
	Direction motion.Direction
	Position  Value[motion.Vec2]
	Size      Value[motion.Vec2]
}

func (*Ellipse) isShapeItem() {}

func (e *Ellipse) fields() []field {
	return []field{{"Position", e.Position}, {"Size", e.Size}}
}

// Rectangle is an axis-aligned rectangle centred on Position, with
// optionally rounded corners.
type Rectangle struct {
	Item
	Direction motion.Direction
	Position  Value[motion.Vec2]
	Size      Value[motion.Vec2]
	Roundness Value[float64]
}

func (*Rectangle) isShapeItem() {}

func (r *Rectangle) fields() []field {
	return []field{{"Position", r.Position}, {"Size", r.Size}, {"Roundness", r.Roundness}}
}

// StarType selects between a star and a regular polygon.
type StarType uint8

const (
	// StarTypeStar alternates outer and inner vertices.
	StarTypeStar StarType = iota + 1

	// StarTypePolygon uses outer vertices only.
	StarTypePolygon
)

// String returns the star type name.
func (t StarType) String() string {
	switch t {
	case StarTypeStar:
		return "Star"
	case StarTypePolygon:
		return "Polygon"
	default:
		return "Unknown"
	}
}

// Star is a star or polygon primitive. Roundness values are percentages,
// Rotation is in degrees.
type Star struct {
	Item
	Direction      motion.Direction
	Type           StarType
	Position       Value[motion.Vec2]
	Points         Value[float64]
	OuterRadius    Value[float64]
	OuterRoundness Value[float64]
	InnerRadius    Value[float64]
	InnerRoundness Value[float64]
	Rotation       Value[float64]
}

func (*Star) isShapeItem() {}

func (s *Star) fields() []field {
	return []field{
		{"Position", s.Position},
		{"Points", s.Points},
		{"Outer Radius", s.OuterRadius},
		{"Outer Roundness", s.OuterRoundness},
		{"Inner Radius", s.InnerRadius},
		{"Inner Roundness", s.InnerRoundness},
		{"Rotation", s.Rotation},
	}
}

// Shape is a free-form path primitive.
type Shape struct {
	Item
	Direction motion.Direction
	Path      Value[motion.BezierPath]
}

func (*Shape) isShapeItem() {}

func (s *Shape) fields() []field {
	return []field{{"Path", s.Path}}
}

// Group nests shape items. Its transform is the ShapeTransform among
// Items, if any.
type Group struct {
	Item
	Items []ShapeItem
}

func (*Group) isShapeItem() {}

func (g *Group) fields() []field { return nil }

// Transform returns the group's transform item, or nil.
func (g *Group) Transform() *ShapeTransform {
	for _, it := range g.Items {
		if t, ok := it.(*ShapeTransform); ok {
			return t
		}
	}
	return nil
}

// ShapeTransform is the transform of the enclosing group.
type ShapeTransform struct {
	Item
	Transform
}

func (*ShapeTransform) isShapeItem() {}

func (t *ShapeTransform) fields() []field { return t.Transform.fields() }

// Trim extracts a sub-arc of the paths above it in its group. Start and
// End are percentages of arc length, Offset is in degrees where 360 is
// one full turn of the path.
type Trim struct {
	Item
	Start  Value[float64]
	End    Value[float64]
	Offset Value[float64]
	Mode   motion.TrimMode
}

func (*Trim) isShapeItem() {}

func (t *Trim) fields() []field {
	return []field{{"Start", t.Start}, {"End", t.End}, {"Offset", t.Offset}}
}

// Merge concatenates the paths above it in its group.
type Merge struct {
	Item
	Mode motion.MergeMode
}

func (*Merge) isShapeItem() {}

func (m *Merge) fields() []field { return nil }

// RepeaterComposite orders repeated copies.
type RepeaterComposite uint8

const (
	// CompositeAbove draws later copies over earlier ones.
	CompositeAbove RepeaterComposite = iota
	// CompositeBelow draws later copies under earlier ones.
	CompositeBelow
)

// RepeaterTransform is the per-copy increment of a repeater. Opacities
// are percentages applied to the first and last copy.
type RepeaterTransform struct {
	Anchor       Value[motion.Vec2]
	Position     Value[motion.Vec2]
	Scale        Value[motion.Vec2]
	Rotation     Value[float64]
	StartOpacity Value[float64]
	EndOpacity   Value[float64]
}

// Repeater replicates the content above it in its group.
type Repeater struct {
	Item
	Copies    Value[float64]
	Offset    Value[float64]
	Composite RepeaterComposite
	Transform RepeaterTransform
}

func (*Repeater) isShapeItem() {}

func (r *Repeater) fields() []field {
	return []field{
		{"Copies", r.Copies},
		{"Offset", r.Offset},
		{"Anchor Point", r.Transform.Anchor},
		{"Position", r.Transform.Position},
		{"Scale", r.Transform.Scale},
		{"Rotation", r.Transform.Rotation},
		{"Start Opacity", r.Transform.StartOpacity},
		{"End Opacity", r.Transform.EndOpacity},
	}
}

// Fill paints the paths above it with a solid colour. Opacity is a
// percentage.
type Fill struct {
	Item
	Color    Value[motion.RGBA]
	Opacity  Value[float64]
	FillRule motion.FillRule
}

func (*Fill) isShapeItem() {}

func (f *Fill) fields() []field {
	return []field{{"Color", f.Color}, {"Opacity", f.Opacity}}
}

// DashType tags one entry of a dash pattern.
type DashType uint8

const (
	DashTypeDash DashType = iota
	DashTypeGap
	DashTypeOffset
)

// DashElement is one animatable entry of a stroke dash pattern.
type DashElement struct {
	Type  DashType
	Value Value[float64]
}

// StrokeStyle holds the stroke attributes shared by solid and gradient
// strokes.
type StrokeStyle struct {
	Width      Value[float64]
	Cap        motion.LineCap
	Join       motion.LineJoin
	MiterLimit float64
	Dash       []DashElement
}

func (s *StrokeStyle) fields() []field {
	out := []field{{"Stroke Width", s.Width}}
	dashes, gaps := 0, 0
	for _, d := range s.Dash {
		var name string
		switch d.Type {
		case DashTypeGap:
			name = "Gap " + strconv.Itoa(gaps)
			gaps++
		case DashTypeOffset:
			name = "Dash Offset"
		default:
			name = "Dash " + strconv.Itoa(dashes)
			dashes++
		}
		out = append(out, field{name, d.Value})
	}
	return out
}

// Stroke paints the outline of the paths above it with a solid colour.
type Stroke struct {
	Item
	StrokeStyle
	Color   Value[motion.RGBA]
	Opacity Value[float64]
}

func (*Stroke) isShapeItem() {}

func (s *Stroke) fields() []field {
	return append([]field{{"Color", s.Color}, {"Opacity", s.Opacity}}, s.StrokeStyle.fields()...)
}

// Gradient describes gradient geometry and colours. Colors holds
// NumStops (offset, r, g, b) quadruples optionally followed by
// (offset, alpha) pairs. HighlightLength and HighlightAngle move the
// focal point of radial gradients.
type Gradient struct {
	Type            motion.GradientType
	Start           Value[motion.Vec2]
	End             Value[motion.Vec2]
	HighlightLength Value[float64]
	HighlightAngle  Value[float64]
	Colors          Value[[]float64]
	NumStops        int
}

func (g *Gradient) fields() []field {
	return []field{
		{"Start Point", g.Start},
		{"End Point", g.End},
		{"Highlight Length", g.HighlightLength},
		{"Highlight Angle", g.HighlightAngle},
		{"Colors", g.Colors},
	}
}

// GradientFill paints the paths above it with a gradient.
type GradientFill struct {
	Item
	Gradient
	Opacity  Value[float64]
	FillRule motion.FillRule
}

func (*GradientFill) isShapeItem() {}

func (g *GradientFill) fields() []field {
	return append(g.Gradient.fields(), field{"Opacity", g.Opacity})
}

// GradientStroke paints the outline of the paths above it with a
// gradient.
type GradientStroke struct {
	Item
	Gradient
	StrokeStyle
	Opacity Value[float64]
}

func (*GradientStroke) isShapeItem() {}

func (g *GradientStroke) fields() []field {
	out := append(g.Gradient.fields(), field{"Opacity", g.Opacity})
	return append(out, g.StrokeStyle.fields()...)
}
