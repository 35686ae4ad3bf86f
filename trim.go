package motion

import "math"

// TrimMode selects how a trim window applies to a compound path.
type TrimMode int

const (
	// TrimSimultaneously treats all contours as one continuous length.
	TrimSimultaneously TrimMode = iota
	// TrimIndividually applies the window to each contour on its own.
	TrimIndividually
)

// String returns the string representation of the trim mode.
func (m TrimMode) String() string {
	switch m {
	case TrimSimultaneously:
		return "Simultaneously"
	case TrimIndividually:
		return "Individually"
	default:
		return unknownStr
	}
}

// window is a normalized [lo, hi] fraction of arc length with 0 <= lo < hi <= 1.
type window struct {
	lo, hi float64
}

// trimWindows converts start, end and offset percentages into at most two
// ordered windows over [0, 1]. The first window is the part of the visible
// region starting at start+offset; when the region runs past the end of
// the path it continues from 0 in a second window.
//
// Start and end are reduced modulo 100% before the window is taken, except
// that a non-zero end landing on a whole turn means the end of the path.
// A start greater than end then selects the region wrapping through the
// closing point. The returned full flag reports a window covering the
// whole path.
func trimWindows(start, end, offset float64) (ws []window, full bool) {
	if math.IsNaN(start) || math.IsNaN(end) || math.IsNaN(offset) || start == end {
		return nil, false
	}
	s, e := unitFraction(start/100), unitFraction(end/100)
	if e == 0 && end != 0 {
		e = 1
	}
	width := e - s
	if width < 0 {
		width++
	}
	switch {
	case width <= 0:
		return nil, false
	case width >= 1:
		return nil, true
	}

	lo := unitFraction(s + offset/100)
	hi := lo + width
	if hi <= 1 {
		return []window{{lo, hi}}, false
	}
	return []window{{lo, 1}, {0, hi - 1}}, false
}

// unitFraction reduces x into [0, 1).
func unitFraction(x float64) float64 {
	f := x - math.Floor(x)
	if f >= 1 {
		return 0
	}
	return f
}

// Trim extracts the part of the path between start and end percent of its
// arc length, shifted by offset percent. All three values are normalized
// modulo 100%. When start > end the window wraps through the closing point.
//
// The result is an ordered list of contours: one in the common case, two
// when the window crosses the end of the path. A window covering the whole
// path returns a copy of it; an empty window returns nil.
func (p *BezierPath) Trim(start, end, offset float64) []BezierPath {
	if p.SegmentCount() == 0 {
		return nil
	}
	ws, full := trimWindows(start, end, offset)
	if full {
		return []BezierPath{p.Clone()}
	}
	var out []BezierPath
	for _, w := range ws {
		if sub := p.trimRange(w.lo, w.hi); !sub.IsEmpty() {
			out = append(out, sub)
		}
	}
	return out
}

// trimRange returns the open contour covering arc length fractions
// [lo, hi] of the path, splitting end segments with de Casteljau.
func (p *BezierPath) trimRange(lo, hi float64) BezierPath {
	p.measure()
	if p.length == 0 || hi <= lo {
		return BezierPath{}
	}
	sa, sb := lo*p.length, hi*p.length

	var curves []CubicBez
	acc := 0.0
	for i, segLen := range p.segLengths {
		segStart, segEnd := acc, acc+segLen
		acc = segEnd
		if segEnd <= sa || segStart >= sb || segLen == 0 {
			continue
		}
		seg := p.Segment(i)
		t0, t1 := 0.0, 1.0
		if sa > segStart {
			t0 = seg.ParamAtLength(sa - segStart)
		}
		if sb < segEnd {
			t1 = seg.ParamAtLength(sb - segStart)
		}
		if t1 > t0 {
			curves = append(curves, seg.Subsegment(t0, t1))
		}
	}
	return pathFromCurves(curves)
}

// pathFromCurves joins consecutive cubics into an open contour.
func pathFromCurves(curves []CubicBez) BezierPath {
	if len(curves) == 0 {
		return BezierPath{}
	}
	vs := make([]BezierVertex, 0, len(curves)+1)
	vs = append(vs, BezierVertex{Point: curves[0].P0, In: curves[0].P0, Out: curves[0].P1})
	for i, c := range curves {
		v := BezierVertex{Point: c.P3, In: c.P2, Out: c.P3}
		if i+1 < len(curves) {
			v.Out = curves[i+1].P1
		}
		vs = append(vs, v)
	}
	return BezierPath{vertices: vs}
}

// Trim applies a trim window to the compound path. In TrimSimultaneously
// mode the contours are measured end to end as one length; in
// TrimIndividually mode each contour is trimmed on its own.
func (c CompoundPath) Trim(start, end, offset float64, mode TrimMode) CompoundPath {
	out := CompoundPath{FillRule: c.FillRule}
	if mode == TrimIndividually {
		for i := range c.Paths {
			out.Append(c.Paths[i].Trim(start, end, offset)...)
		}
		return out
	}

	ws, full := trimWindows(start, end, offset)
	if full {
		out.Paths = append(out.Paths, c.Paths...)
		return out
	}
	total := c.Length()
	if total == 0 {
		return out
	}
	for _, w := range ws {
		acc := 0.0
		for i := range c.Paths {
			p := &c.Paths[i]
			l := p.Length()
			pStart, pEnd := acc/total, (acc+l)/total
			acc += l
			if l == 0 || pEnd <= w.lo || pStart >= w.hi {
				continue
			}
			if w.lo <= pStart && w.hi >= pEnd {
				out.Append(p.Clone())
				continue
			}
			lo := (math.Max(w.lo, pStart) - pStart) / (pEnd - pStart)
			hi := (math.Min(w.hi, pEnd) - pStart) / (pEnd - pStart)
			out.Append(p.trimRange(lo, hi))
		}
	}
	return out
}
