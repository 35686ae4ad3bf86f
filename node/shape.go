package node

import (
	"github.com/gogpu/motion"
	"github.com/gogpu/motion/keyframe"
)

// Ellipse is the content of an ellipse primitive.
type Ellipse struct {
	Direction motion.Direction
	Position  *keyframe.Track[motion.Vec2]
	Size      *keyframe.Track[motion.Vec2]
}

func (*Ellipse) kind() Kind { return KindEllipse }

func (e *Ellipse) path(frame float64) motion.BezierPath {
	return motion.Ellipse(e.Position.ValueAt(frame), e.Size.ValueAt(frame), e.Direction)
}

// Rect is the content of a rectangle primitive.
type Rect struct {
	Direction motion.Direction
	Position  *keyframe.Track[motion.Vec2]
	Size      *keyframe.Track[motion.Vec2]
	Roundness *keyframe.Track[float64]
}

func (*Rect) kind() Kind { return KindRect }

func (r *Rect) path(frame float64) motion.BezierPath {
	return motion.Rectangle(r.Position.ValueAt(frame), r.Size.ValueAt(frame), r.Roundness.ValueAt(frame), r.Direction)
}

// Star is the content of a star or polygon primitive.
type Star struct {
	Direction      motion.Direction
	Polygon        bool
	Position       *keyframe.Track[motion.Vec2]
	Points         *keyframe.Track[float64]
	OuterRadius    *keyframe.Track[float64]
	OuterRoundness *keyframe.Track[float64]
	InnerRadius    *keyframe.Track[float64]
	InnerRoundness *keyframe.Track[float64]
	Rotation       *keyframe.Track[float64]
}

func (*Star) kind() Kind { return KindStar }

func (s *Star) path(frame float64) motion.BezierPath {
	center := s.Position.ValueAt(frame)
	points := s.Points.ValueAt(frame)
	outer := s.OuterRadius.ValueAt(frame)
	outerRound := s.OuterRoundness.ValueAt(frame)
	rotation := s.Rotation.ValueAt(frame)
	inner := s.InnerRadius.ValueAt(frame)
	innerRound := s.InnerRoundness.ValueAt(frame)

	if s.Polygon {
		return motion.Polygon(motion.PolygonOptions{
			Center:    center,
			Points:    points,
			Radius:    outer,
			Roundness: outerRound,
			Rotation:  rotation,
			Direction: s.Direction,
		})
	}
	return motion.Star(motion.StarOptions{
		Center:         center,
		Points:         points,
		OuterRadius:    outer,
		InnerRadius:    inner,
		OuterRoundness: outerRound,
		InnerRoundness: innerRound,
		Rotation:       rotation,
		Direction:      s.Direction,
	})
}

// Path is the content of a free-form path primitive.
type Path struct {
	Direction motion.Direction
	Path      *keyframe.Track[motion.BezierPath]
}

func (*Path) kind() Kind { return KindPath }

func (p *Path) path(frame float64) motion.BezierPath {
	v := p.Path.ValueAt(frame)
	if p.Direction == motion.CounterClockwise {
		return v.Reversed()
	}
	return v
}

// Trim is the content of a trim paths modifier.
type Trim struct {
	Mode   motion.TrimMode
	Start  *keyframe.Track[float64]
	End    *keyframe.Track[float64]
	Offset *keyframe.Track[float64]

	start, end, offset float64
}

func (*Trim) kind() Kind { return KindTrim }

func (t *Trim) evaluate(frame float64) {
	t.start = t.Start.ValueAt(frame)
	t.end = t.End.ValueAt(frame)
	t.offset = t.Offset.ValueAt(frame)
}

// apply trims in. The offset is in degrees, one turn being the whole
// path.
func (t *Trim) apply(in motion.CompoundPath) motion.CompoundPath {
	return in.Trim(t.start, t.end, t.offset/360*100, t.Mode)
}

// Merge is the content of a merge paths modifier.
type Merge struct {
	Mode motion.MergeMode
}

func (*Merge) kind() Kind { return KindMerge }
