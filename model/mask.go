package model

import "github.com/gogpu/motion"

// MaskMode combines a mask with the masks before it.
type MaskMode uint8

const (
	MaskAdd MaskMode = iota
	MaskSubtract
	MaskIntersect
	MaskLighten
	MaskDarken
	MaskDifference
	MaskNone
)

var maskModeNames = [...]string{"Add", "Subtract", "Intersect", "Lighten", "Darken", "Difference", "None"}

// String returns the mask mode name.
func (m MaskMode) String() string {
	if int(m) < len(maskModeNames) {
		return maskModeNames[m]
	}
	return "Unknown"
}

// Mask clips a layer to an animated path. Opacity is a percentage,
// Expansion grows the path outward in pixels.
type Mask struct {
	Name      string
	Mode      MaskMode
	Inverted  bool
	Path      Value[motion.BezierPath]
	Opacity   Value[float64]
	Expansion Value[float64]
}

func (m *Mask) fields() []field {
	return []field{{"Path", m.Path}, {"Opacity", m.Opacity}, {"Expansion", m.Expansion}}
}
