package motion

import "math"

// minDashLength replaces zero dash or gap lengths so a pattern always
// advances.
const minDashLength = 0.01

// Dash defines a dash pattern for stroking.
// A dash pattern consists of alternating dash and gap lengths.
// For example, [5, 3] creates a pattern of 5 units dash, 3 units gap.
type Dash struct {
	// Array contains alternating dash/gap lengths.
	// If the array has an odd number of elements, it is logically duplicated
	// to create an even-length pattern (e.g., [5] becomes [5, 5]).
	Array []float64

	// Offset is the starting offset into the pattern.
	Offset float64
}

// NewDash creates a dash pattern from alternating dash/gap lengths.
// Zero lengths are raised to a minimal positive length and negative ones
// are made positive. Returns nil if no lengths are provided or all lengths
// are zero.
func NewDash(lengths ...float64) *Dash {
	allZero := true
	for _, l := range lengths {
		if l != 0 {
			allZero = false
			break
		}
	}
	if allZero {
		return nil
	}

	normalized := make([]float64, len(lengths))
	for i, l := range lengths {
		normalized[i] = math.Max(math.Abs(l), minDashLength)
	}
	return &Dash{Array: normalized}
}

// WithOffset returns a new Dash with the given offset.
func (d *Dash) WithOffset(offset float64) *Dash {
	if d == nil {
		return nil
	}
	return &Dash{Array: d.Array, Offset: offset}
}

// PatternLength returns the total length of one complete pattern cycle.
// For odd-length arrays, this includes the duplicated pattern.
func (d *Dash) PatternLength() float64 {
	if d == nil || len(d.Array) == 0 {
		return 0
	}
	var total float64
	for _, l := range d.Array {
		total += l
	}
	if len(d.Array)%2 != 0 {
		total *= 2
	}
	return total
}

// Scale returns a new Dash with all lengths multiplied by the given factor.
func (d *Dash) Scale(factor float64) *Dash {
	if d == nil || factor <= 0 {
		return d
	}
	scaled := make([]float64, len(d.Array))
	for i, l := range d.Array {
		scaled[i] = l * factor
	}
	return &Dash{Array: scaled, Offset: d.Offset * factor}
}

// effectiveArray returns the array with odd-length arrays duplicated.
func (d *Dash) effectiveArray() []float64 {
	if len(d.Array)%2 == 0 {
		return d.Array
	}
	result := make([]float64, len(d.Array)*2)
	copy(result, d.Array)
	copy(result[len(d.Array):], d.Array)
	return result
}

// Apply splits every contour of c into the "on" intervals of the pattern,
// measured along arc length. The pattern restarts for each contour.
func (d *Dash) Apply(c CompoundPath) CompoundPath {
	period := d.PatternLength()
	if d == nil || period <= 0 {
		return c
	}
	arr := d.effectiveArray()
	out := CompoundPath{FillRule: c.FillRule}

	for i := range c.Paths {
		p := &c.Paths[i]
		total := p.Length()
		if total == 0 {
			continue
		}

		phase := math.Mod(d.Offset, period)
		if phase < 0 {
			phase += period
		}
		k := 0
		for phase >= arr[k] {
			phase -= arr[k]
			k = (k + 1) % len(arr)
		}

		pos := -phase
		for pos < total {
			segEnd := pos + arr[k]
			if k%2 == 0 {
				lo, hi := math.Max(pos, 0), math.Min(segEnd, total)
				if hi > lo {
					out.Append(p.trimRange(lo/total, hi/total))
				}
			}
			pos = segEnd
			k = (k + 1) % len(arr)
		}
	}
	return out
}
