package blend

import "math"

// rgb is an unpremultiplied color.
type rgb struct {
	r, g, b float64
}

// separable returns the per-channel function B(cb, cs) of mode, or nil
// for the non-separable modes.
func separable(mode Mode) func(cb, cs float64) float64 {
	switch mode {
	case Multiply:
		return multiply
	case Screen:
		return screen
	case Overlay:
		return func(cb, cs float64) float64 { return hardLight(cs, cb) }
	case Darken:
		return math.Min
	case Lighten:
		return math.Max
	case ColorDodge:
		return colorDodge
	case ColorBurn:
		return colorBurn
	case HardLight:
		return hardLight
	case SoftLight:
		return softLight
	case Difference:
		return func(cb, cs float64) float64 { return math.Abs(cb - cs) }
	case Exclusion:
		return func(cb, cs float64) float64 { return cb + cs - 2*cb*cs }
	case Hue, Saturation, Color, Luminosity:
		return nil
	default:
		return func(_, cs float64) float64 { return cs }
	}
}

func multiply(cb, cs float64) float64 { return cb * cs }

func screen(cb, cs float64) float64 { return cb + cs - cb*cs }

func hardLight(cb, cs float64) float64 {
	if cs <= 0.5 {
		return multiply(cb, 2*cs)
	}
	return screen(cb, 2*cs-1)
}

func colorDodge(cb, cs float64) float64 {
	switch {
	case cb == 0:
		return 0
	case cs >= 1:
		return 1
	}
	return math.Min(1, cb/(1-cs))
}

func colorBurn(cb, cs float64) float64 {
	switch {
	case cb >= 1:
		return 1
	case cs == 0:
		return 0
	}
	return 1 - math.Min(1, (1-cb)/cs)
}

func softLight(cb, cs float64) float64 {
	if cs <= 0.5 {
		return cb - (1-2*cs)*cb*(1-cb)
	}
	var d float64
	if cb <= 0.25 {
		d = ((16*cb-12)*cb + 4) * cb
	} else {
		d = math.Sqrt(cb)
	}
	return cb + (2*cs-1)*(d-cb)
}

func nonSeparable(mode Mode, cb, cs rgb) rgb {
	switch mode {
	case Hue:
		return setLum(setSat(cs, sat(cb)), lum(cb))
	case Saturation:
		return setLum(setSat(cb, sat(cs)), lum(cb))
	case Color:
		return setLum(cs, lum(cb))
	default:
		return setLum(cb, lum(cs))
	}
}

func lum(c rgb) float64 {
	return 0.3*c.r + 0.59*c.g + 0.11*c.b
}

func sat(c rgb) float64 {
	return max(c.r, c.g, c.b) - min(c.r, c.g, c.b)
}

func setLum(c rgb, l float64) rgb {
	d := l - lum(c)
	return clipColor(rgb{c.r + d, c.g + d, c.b + d})
}

// clipColor pulls out-of-range components toward the luminance.
func clipColor(c rgb) rgb {
	l := lum(c)
	n := min(c.r, c.g, c.b)
	x := max(c.r, c.g, c.b)
	if n < 0 {
		c = rgb{l + (c.r-l)*l/(l-n), l + (c.g-l)*l/(l-n), l + (c.b-l)*l/(l-n)}
	}
	if x > 1 {
		c = rgb{l + (c.r-l)*(1-l)/(x-l), l + (c.g-l)*(1-l)/(x-l), l + (c.b-l)*(1-l)/(x-l)}
	}
	return c
}

// setSat rescales c so that max-min equals s, keeping the channel order.
func setSat(c rgb, s float64) rgb {
	ch := []*float64{&c.r, &c.g, &c.b}
	// order the three channels as min, mid, max
	if *ch[0] > *ch[1] {
		ch[0], ch[1] = ch[1], ch[0]
	}
	if *ch[1] > *ch[2] {
		ch[1], ch[2] = ch[2], ch[1]
	}
	if *ch[0] > *ch[1] {
		ch[0], ch[1] = ch[1], ch[0]
	}
	lo, mid, hi := ch[0], ch[1], ch[2]
	if *hi > *lo {
		*mid = (*mid - *lo) * s / (*hi - *lo)
		*hi = s
	} else {
		*mid, *hi = 0, 0
	}
	*lo = 0
	return c
}
