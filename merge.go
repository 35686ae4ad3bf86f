package motion

// MergeMode is the combination requested by a merge paths modifier. The
// geometry is always an ordered concatenation; the mode only selects the
// winding rule used when the result is painted.
type MergeMode int

const (
	MergeNormal MergeMode = iota + 1
	MergeAdd
	MergeSubtract
	MergeIntersect
	MergeExclude
)

// String returns the string representation of the merge mode.
func (m MergeMode) String() string {
	switch m {
	case MergeNormal:
		return "Merge"
	case MergeAdd:
		return "Add"
	case MergeSubtract:
		return "Subtract"
	case MergeIntersect:
		return "Intersect"
	case MergeExclude:
		return "Exclude"
	default:
		return unknownStr
	}
}

// FillRule returns the winding rule that approximates the mode when the
// merged contours are painted together.
func (m MergeMode) FillRule() FillRule {
	switch m {
	case MergeSubtract, MergeIntersect, MergeExclude:
		return FillRuleEvenOdd
	default:
		return FillRuleNonZero
	}
}

// Merge concatenates the contours of paths in order. No boolean
// combination is performed.
func Merge(paths []CompoundPath, mode MergeMode) CompoundPath {
	out := CompoundPath{FillRule: mode.FillRule()}
	for _, p := range paths {
		out.Append(p.Paths...)
	}
	return out
}
