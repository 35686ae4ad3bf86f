package model

import "github.com/gogpu/motion"

// Justification aligns lines of text against the layer origin.
type Justification uint8

const (
	JustifyLeft Justification = iota
	JustifyRight
	JustifyCenter
)

// TextDocument is one keyframed state of a text layer. FontSize,
// LineHeight and Baseline are in pixels; Tracking is in thousandths of
// an em. A nil colour disables fill or stroke.
type TextDocument struct {
	Text           string
	FontFamily     string
	FontSize       float64
	Justification  Justification
	Tracking       float64
	LineHeight     float64
	Baseline       float64
	FillColor      *motion.RGBA
	StrokeColor    *motion.RGBA
	StrokeWidth    float64
	StrokeOverFill bool
}

// TextAnimator overrides style and transform of a whole text layer.
// Unset properties leave the document untouched.
type TextAnimator struct {
	Name        string
	FillColor   Value[motion.RGBA]
	StrokeColor Value[motion.RGBA]
	StrokeWidth Value[float64]
	Tracking    Value[float64]
	Opacity     Value[float64]
	Anchor      Value[motion.Vec2]
	Position    Value[motion.Vec2]
	Scale       Value[motion.Vec2]
	Rotation    Value[float64]
}

func (a *TextAnimator) fields() []field {
	return []field{
		{"Fill Color", a.FillColor},
		{"Stroke Color", a.StrokeColor},
		{"Stroke Width", a.StrokeWidth},
		{"Tracking", a.Tracking},
		{"Opacity", a.Opacity},
		{"Anchor Point", a.Anchor},
		{"Position", a.Position},
		{"Scale", a.Scale},
		{"Rotation", a.Rotation},
	}
}

// TextData is the content of a text layer.
type TextData struct {
	Document  Value[TextDocument]
	Animators []TextAnimator
}
