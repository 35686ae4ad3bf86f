package model

import "github.com/gogpu/motion"

// Transform is a layer or group transform. Scale and Opacity are in
// percent, Rotation, Skew and SkewAxis in degrees.
//
// When PositionX or PositionY is set the position is split into two
// scalar properties and Position is ignored.
type Transform struct {
	Anchor    Value[motion.Vec2]
	Position  Value[motion.Vec2]
	PositionX Value[float64]
	PositionY Value[float64]
	Scale     Value[motion.Vec2]
	Rotation  Value[float64]
	Opacity   Value[float64]
	Skew      Value[float64]
	SkewAxis  Value[float64]
}

// SplitPosition reports whether the position is animated per axis.
func (t *Transform) SplitPosition() bool {
	return t.PositionX.IsSet() || t.PositionY.IsSet()
}

func (t *Transform) fields() []field {
	return []field{
		{"Anchor Point", t.Anchor},
		{"Position", t.Position},
		{"X Position", t.PositionX},
		{"Y Position", t.PositionY},
		{"Scale", t.Scale},
		{"Rotation", t.Rotation},
		{"Opacity", t.Opacity},
		{"Skew", t.Skew},
		{"Skew Axis", t.SkewAxis},
	}
}
