package model

import "github.com/gogpu/motion"

// LayerType identifies the content of a layer.
type LayerType uint8

const (
	LayerPrecomp LayerType = iota
	LayerSolid
	LayerImage
	LayerNull
	LayerShape
	LayerText
)

var layerTypeNames = [...]string{"Precomp", "Solid", "Image", "Null", "Shape", "Text"}

// String returns the layer type name.
func (t LayerType) String() string {
	if int(t) < len(layerTypeNames) {
		return layerTypeNames[t]
	}
	return "Unknown"
}

// BlendMode is the compositing operator of a layer. The evaluator passes
// it through to the paint backend untouched.
type BlendMode uint8

const (
	BlendNormal BlendMode = iota
	BlendMultiply
	BlendScreen
	BlendOverlay
	BlendDarken
	BlendLighten
	BlendColorDodge
	BlendColorBurn
	BlendHardLight
	BlendSoftLight
	BlendDifference
	BlendExclusion
	BlendHue
	BlendSaturation
	BlendColor
	BlendLuminosity
)

// MatteMode makes a layer use the layer above it as a track matte.
type MatteMode uint8

const (
	MatteNone MatteMode = iota
	MatteAlpha
	MatteInvertedAlpha
	MatteLuma
	MatteInvertedLuma
)

// Solid is the content of a solid layer.
type Solid struct {
	Color  motion.RGBA
	Width  float64
	Height float64
}

// Layer is one visual element of a composition.
//
// The layer is visible for frames in [InFrame, OutFrame). Its content
// time is (frame - StartTime) / TimeStretch. Parent, when non-nil, is the
// Index of another layer in the same list.
type Layer struct {
	Name        string
	Index       int
	Parent      *int
	Type        LayerType
	InFrame     float64
	OutFrame    float64
	StartTime   float64
	TimeStretch float64
	Transform   Transform
	Masks       []Mask
	BlendMode   BlendMode
	Matte       MatteMode
	Hidden      bool

	// Shapes is the content tree of a shape layer.
	Shapes []ShapeItem

	// RefID names the asset of a precomp or image layer.
	RefID string

	// Width and Height size a precomp layer's viewport.
	Width  float64
	Height float64

	// TimeRemap, when set, maps layer time in seconds to precomp time.
	TimeRemap Value[float64]

	Solid *Solid
	Text  *TextData
}

// Stretch returns the effective time stretch, treating zero as one.
func (l *Layer) Stretch() float64 {
	if l.TimeStretch == 0 {
		return 1
	}
	return l.TimeStretch
}

// Visible reports whether the layer draws at frame.
func (l *Layer) Visible(frame float64) bool {
	return !l.Hidden && frame >= l.InFrame && frame < l.OutFrame
}

// LocalFrame converts a composition frame to the layer's content frame.
func (l *Layer) LocalFrame(frame float64) float64 {
	return (frame - l.StartTime) / l.Stretch()
}

// ParentOf returns a pointer to v for use as Layer.Parent.
func ParentOf(v int) *int {
	return &v
}
