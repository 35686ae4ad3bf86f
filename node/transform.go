package node

import (
	"github.com/gogpu/motion"
	"github.com/gogpu/motion/keyframe"
	"github.com/gogpu/motion/model"
)

// Transform is the content of a group or layer transform. It produces no
// geometry; owners read Matrix and Opacity after an update.
type Transform struct {
	Anchor    *keyframe.Track[motion.Vec2]
	Position  *keyframe.Track[motion.Vec2]
	PositionX *keyframe.Track[float64]
	PositionY *keyframe.Track[float64]
	Scale     *keyframe.Track[motion.Vec2]
	Rotation  *keyframe.Track[float64]
	Opacity   *keyframe.Track[float64]
	Skew      *keyframe.Track[float64]
	SkewAxis  *keyframe.Track[float64]

	matrix  motion.Matrix
	opacity float64
}

func (*Transform) kind() Kind { return KindTransform }

// Matrix returns the transform resolved by the last update.
func (t *Transform) Matrix() motion.Matrix { return t.matrix }

// Alpha returns the opacity resolved by the last update, in [0, 1].
func (t *Transform) Alpha() float64 { return t.opacity }

func (t *Transform) evaluate(frame float64) {
	var pos motion.Vec2
	if t.PositionX != nil {
		pos = motion.V2(t.PositionX.ValueAt(frame), t.PositionY.ValueAt(frame))
	} else {
		pos = t.Position.ValueAt(frame)
	}
	t.matrix = TransformMatrix(
		t.Anchor.ValueAt(frame),
		pos,
		t.Scale.ValueAt(frame),
		t.Rotation.ValueAt(frame),
		t.Skew.ValueAt(frame),
		t.SkewAxis.ValueAt(frame),
	)
	t.opacity = clamp01(t.Opacity.ValueAt(frame) / 100)
}

// TransformMatrix composes translate(position) · rotate · skew ·
// scale(percent / 100) · translate(-anchor). Angles are in degrees.
func TransformMatrix(anchor, position, scale motion.Vec2, rotation, skew, skewAxis float64) motion.Matrix {
	m := motion.Translate(position.X, position.Y)
	if rotation != 0 {
		m = m.Multiply(motion.Rotate(motion.Radians(rotation)))
	}
	if skew != 0 {
		m = m.Multiply(motion.Skew(skew, skewAxis))
	}
	if scale.X != 100 || scale.Y != 100 {
		m = m.Multiply(motion.Scale(scale.X/100, scale.Y/100))
	}
	if !anchor.IsZero() {
		m = m.Multiply(motion.Translate(-anchor.X, -anchor.Y))
	}
	return m
}

// NewTransform returns a transform node over t. Unset properties take
// their defaults: zero anchor, position, rotation and skew, 100% scale
// and opacity.
func NewTransform(name string, t *model.Transform) *Node {
	c := &Transform{
		Anchor:   NewTrack[motion.Vec2](keyframe.Point{}, "Anchor Point", t.Anchor, motion.Vec2{}),
		Scale:    NewTrack[motion.Vec2](keyframe.Size{}, "Scale", t.Scale, motion.V2(100, 100)),
		Rotation: NewTrack[float64](keyframe.Float{}, "Rotation", t.Rotation, 0),
		Opacity:  NewTrack[float64](keyframe.Float{}, "Opacity", t.Opacity, 100),
		Skew:     NewTrack[float64](keyframe.Float{}, "Skew", t.Skew, 0),
		SkewAxis: NewTrack[float64](keyframe.Float{}, "Skew Axis", t.SkewAxis, 0),
		matrix:   motion.Identity(),
		opacity:  1,
	}
	n := newNode(name, c, nil)
	n.register(c.Anchor)
	if t.SplitPosition() {
		c.PositionX = NewTrack[float64](keyframe.Float{}, "X Position", t.PositionX, 0)
		c.PositionY = NewTrack[float64](keyframe.Float{}, "Y Position", t.PositionY, 0)
		n.register(c.PositionX, c.PositionY)
	} else {
		c.Position = NewTrack[motion.Vec2](keyframe.Point{}, "Position", t.Position, motion.Vec2{})
		n.register(c.Position)
	}
	n.register(c.Scale, c.Rotation, c.Opacity, c.Skew, c.SkewAxis)
	return n
}
