package node

import (
	"math"

	"github.com/gogpu/motion"
	"github.com/gogpu/motion/keyframe"
)

// maxCopies bounds the number of repeater copies.
const maxCopies = 1000

// Copy is one instance produced by a repeater.
type Copy struct {
	Matrix  motion.Matrix
	Opacity float64
}

// Repeater is the content of a repeater modifier. Copy i receives the
// repeater transform applied Offset+i times; copy opacity runs linearly
// from StartOpacity to EndOpacity.
type Repeater struct {
	// Below draws later copies under earlier ones.
	Below bool

	Copies       *keyframe.Track[float64]
	Offset       *keyframe.Track[float64]
	Anchor       *keyframe.Track[motion.Vec2]
	Position     *keyframe.Track[motion.Vec2]
	Scale        *keyframe.Track[motion.Vec2]
	Rotation     *keyframe.Track[float64]
	StartOpacity *keyframe.Track[float64]
	EndOpacity   *keyframe.Track[float64]

	instances []Copy
}

func (*Repeater) kind() Kind { return KindRepeater }

// Instances returns the copies resolved by the last update in creation
// order.
func (r *Repeater) Instances() []Copy { return r.instances }

func (r *Repeater) evaluate(frame float64) {
	count := r.Copies.ValueAt(frame)
	offset := r.Offset.ValueAt(frame)
	anchor := r.Anchor.ValueAt(frame)
	pos := r.Position.ValueAt(frame)
	scale := r.Scale.ValueAt(frame)
	rot := r.Rotation.ValueAt(frame)
	so := r.StartOpacity.ValueAt(frame) / 100
	eo := r.EndOpacity.ValueAt(frame) / 100

	n := 0
	if count > 0 {
		n = int(math.Min(math.Ceil(count), maxCopies))
	}
	r.instances = r.instances[:0]
	for i := range n {
		k := offset + float64(i)
		m := motion.Translate(pos.X*k, pos.Y*k).
			Multiply(motion.Translate(anchor.X, anchor.Y)).
			Multiply(motion.Rotate(motion.Radians(rot * k))).
			Multiply(motion.Scale(math.Pow(scale.X/100, k), math.Pow(scale.Y/100, k))).
			Multiply(motion.Translate(-anchor.X, -anchor.Y))
		op := so
		if n > 1 {
			op = so + (eo-so)*float64(i)/float64(n-1)
		}
		r.instances = append(r.instances, Copy{Matrix: m, Opacity: clamp01(op)})
	}
}

// apply concatenates every copy of in, first copy first.
func (r *Repeater) apply(in motion.CompoundPath) motion.CompoundPath {
	out := motion.CompoundPath{FillRule: in.FillRule}
	for _, c := range r.instances {
		out = concat(out, in.Transform(c.Matrix))
	}
	return out
}

// replicate returns list repeated once per copy, back to front.
func (r *Repeater) replicate(list []Renderable) []Renderable {
	out := make([]Renderable, 0, len(list)*len(r.instances))
	for i := range r.instances {
		c := r.instances[i]
		if r.Below {
			c = r.instances[len(r.instances)-1-i]
		}
		for _, it := range list {
			out = append(out, it.under(c.Matrix, c.Opacity))
		}
	}
	return out
}

func clamp01(v float64) float64 {
	switch {
	case v < 0 || math.IsNaN(v):
		return 0
	case v > 1:
		return 1
	}
	return v
}
