package keyframe

import (
	"math"

	"github.com/gogpu/motion"
)

const (
	easeEpsilon    = 1e-7
	newtonIters    = 8
	minSlope       = 1e-6
	bisectionIters = 64
)

// Ease is a timing curve: the cubic bezier from (0,0) through Out and In
// to (1,1). Out shapes the start of a span, In its end. The X coordinates
// are clamped to [0, 1] so the curve is a function of time.
type Ease struct {
	Out motion.Vec2
	In  motion.Vec2
}

// Linear is the identity timing curve.
var Linear = Ease{Out: motion.V2(0, 0), In: motion.V2(1, 1)}

// NewEase returns the timing curve with handles (x1, y1) and (x2, y2), in
// the notation of CSS cubic-bezier().
func NewEase(x1, y1, x2, y2 float64) *Ease {
	return &Ease{Out: motion.V2(x1, y1), In: motion.V2(x2, y2)}
}

// Progress maps linear progress t in [0, 1] to eased progress. A curve
// with NaN or infinite handles, or one lying on the diagonal, is linear.
func (e Ease) Progress(t float64) float64 {
	t = clamp01(t)
	if !e.Out.IsFinite() || !e.In.IsFinite() {
		return t
	}
	x1, x2 := clamp01(e.Out.X), clamp01(e.In.X)
	if x1 == e.Out.Y && x2 == e.In.Y {
		return t
	}
	b := unitBezier{}
	b.init(x1, e.Out.Y, x2, e.In.Y)
	return b.sampleY(b.solveX(t))
}

// unitBezier holds polynomial coefficients of a timing curve in both axes.
type unitBezier struct {
	ax, bx, cx float64
	ay, by, cy float64
}

func (b *unitBezier) init(x1, y1, x2, y2 float64) {
	b.cx = 3 * x1
	b.bx = 3*(x2-x1) - b.cx
	b.ax = 1 - b.cx - b.bx
	b.cy = 3 * y1
	b.by = 3*(y2-y1) - b.cy
	b.ay = 1 - b.cy - b.by
}

func (b *unitBezier) sampleX(s float64) float64 {
	return ((b.ax*s+b.bx)*s + b.cx) * s
}

func (b *unitBezier) sampleY(s float64) float64 {
	return ((b.ay*s+b.by)*s + b.cy) * s
}

func (b *unitBezier) sampleDerivX(s float64) float64 {
	return (3*b.ax*s+2*b.bx)*s + b.cx
}

// solveX finds the curve parameter whose X equals x: Newton-Raphson first,
// bisection when the slope flattens or Newton does not converge.
func (b *unitBezier) solveX(x float64) float64 {
	s := x
	for range newtonIters {
		dx := b.sampleX(s) - x
		if math.Abs(dx) < easeEpsilon {
			return s
		}
		d := b.sampleDerivX(s)
		if math.Abs(d) < minSlope {
			break
		}
		s -= dx / d
	}

	lo, hi := 0.0, 1.0
	s = x
	for range bisectionIters {
		sx := b.sampleX(s)
		if math.Abs(sx-x) < easeEpsilon {
			return s
		}
		if x > sx {
			lo = s
		} else {
			hi = s
		}
		s = lo + (hi-lo)/2
	}
	return s
}

func clamp01(x float64) float64 {
	switch {
	case x < 0:
		return 0
	case x > 1:
		return 1
	case math.IsNaN(x):
		return 0
	}
	return x
}
