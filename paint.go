package motion

import "sort"

const unknownStr = "Unknown"

// LineCap specifies the shape of line endpoints.
type LineCap int

const (
	// LineCapButt specifies a flat line cap.
	LineCapButt LineCap = iota
	// LineCapRound specifies a rounded line cap.
	LineCapRound
	// LineCapSquare specifies a square line cap.
	LineCapSquare
)

// String returns the string representation of the line cap.
func (c LineCap) String() string {
	switch c {
	case LineCapButt:
		return "Butt"
	case LineCapRound:
		return "Round"
	case LineCapSquare:
		return "Square"
	default:
		return unknownStr
	}
}

// LineJoin specifies the shape of line joins.
type LineJoin int

const (
	// LineJoinMiter specifies a sharp (mitered) join.
	LineJoinMiter LineJoin = iota
	// LineJoinRound specifies a rounded join.
	LineJoinRound
	// LineJoinBevel specifies a beveled join.
	LineJoinBevel
)

// String returns the string representation of the line join.
func (j LineJoin) String() string {
	switch j {
	case LineJoinMiter:
		return "Miter"
	case LineJoinRound:
		return "Round"
	case LineJoinBevel:
		return "Bevel"
	default:
		return unknownStr
	}
}

// FillRule specifies how to determine which areas are inside a path.
type FillRule int

const (
	// FillRuleNonZero uses the non-zero winding rule.
	FillRuleNonZero FillRule = iota
	// FillRuleEvenOdd uses the even-odd rule.
	FillRuleEvenOdd
)

// String returns the string representation of the fill rule.
func (r FillRule) String() string {
	switch r {
	case FillRuleNonZero:
		return "NonZero"
	case FillRuleEvenOdd:
		return "EvenOdd"
	default:
		return unknownStr
	}
}

// GradientType distinguishes linear from radial gradients.
type GradientType int

const (
	// GradientLinear interpolates along the line from start to end.
	GradientLinear GradientType = iota
	// GradientRadial interpolates outward from start with radius |end-start|.
	GradientRadial
)

// String returns the string representation of the gradient type.
func (g GradientType) String() string {
	switch g {
	case GradientLinear:
		return "Linear"
	case GradientRadial:
		return "Radial"
	default:
		return unknownStr
	}
}

// ColorStop represents a color at a specific position in a gradient.
type ColorStop struct {
	Offset float64 // Position in gradient, 0.0 to 1.0
	Color  RGBA    // Color at this position
}

// GradientStops decodes the flat gradient encoding used by animation
// documents: count groups of [offset, r, g, b], optionally followed by
// opacity pairs [offset, alpha]. Opacity stops are sampled at each color
// stop offset. Malformed data yields as many stops as can be read.
func GradientStops(data []float64, count int) []ColorStop {
	if count <= 0 || len(data) < 4 {
		return nil
	}
	if count*4 > len(data) {
		count = len(data) / 4
	}
	stops := make([]ColorStop, count)
	for i := range count {
		d := data[i*4 : i*4+4]
		stops[i] = ColorStop{Offset: d[0], Color: RGB(d[1], d[2], d[3])}
	}

	rest := data[count*4:]
	if len(rest) >= 2 {
		alphas := make([]ColorStop, 0, len(rest)/2)
		for i := 0; i+1 < len(rest); i += 2 {
			alphas = append(alphas, ColorStop{Offset: rest[i], Color: RGBA{A: rest[i+1]}})
		}
		for i := range stops {
			stops[i].Color.A = ColorAt(alphas, stops[i].Offset).A
		}
	}
	return stops
}

// ColorAt returns the color of the gradient described by stops at offset
// t. Stops must be sorted by offset; t outside the stop range takes the
// nearest stop color.
func ColorAt(stops []ColorStop, t float64) RGBA {
	switch {
	case len(stops) == 0:
		return Transparent
	case t <= stops[0].Offset:
		return stops[0].Color
	case t >= stops[len(stops)-1].Offset:
		return stops[len(stops)-1].Color
	}
	i := sort.Search(len(stops), func(i int) bool { return stops[i].Offset > t })
	a, b := stops[i-1], stops[i]
	span := b.Offset - a.Offset
	if span <= 0 {
		return b.Color
	}
	return a.Color.Lerp(b.Color, (t-a.Offset)/span)
}
