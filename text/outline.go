package text

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/motion"
)

// glyphKey identifies one cached outline.
type glyphKey struct {
	family string
	gid    sfnt.GlyphIndex
	size   fixed.Int26_6
}

// loadOutline returns the outline of gid at size, in pixels with y
// growing downward and the origin on the baseline.
func loadOutline(f *sfnt.Font, buf *sfnt.Buffer, gid sfnt.GlyphIndex, size fixed.Int26_6) ([]motion.BezierPath, error) {
	segments, err := f.LoadGlyph(buf, gid, size, nil)
	if err != nil {
		return nil, err
	}
	return segmentsToPaths(segments), nil
}

// segmentsToPaths converts sfnt contours into closed bezier paths.
// Quadratic segments are raised to cubics.
func segmentsToPaths(segments sfnt.Segments) []motion.BezierPath {
	var (
		paths []motion.BezierPath
		verts []motion.BezierVertex
	)
	flush := func() {
		if len(verts) == 0 {
			return
		}
		// A contour that returns to its start point closes onto it.
		if n := len(verts); n > 1 && verts[n-1].Point.Approx(verts[0].Point, 1e-9) {
			verts[0].In = verts[n-1].In
			verts = verts[:n-1]
		}
		paths = append(paths, motion.NewBezierPath(verts, true))
		verts = nil
	}

	for _, seg := range segments {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			flush()
			verts = append(verts, motion.Corner(toVec(seg.Args[0])))
		case sfnt.SegmentOpLineTo:
			verts = append(verts, motion.Corner(toVec(seg.Args[0])))
		case sfnt.SegmentOpQuadTo:
			if len(verts) == 0 {
				continue
			}
			p0 := verts[len(verts)-1].Point
			c, p1 := toVec(seg.Args[0]), toVec(seg.Args[1])
			verts[len(verts)-1].Out = p0.Lerp(c, 2.0/3.0)
			verts = append(verts, motion.BezierVertex{Point: p1, In: p1.Lerp(c, 2.0/3.0), Out: p1})
		case sfnt.SegmentOpCubeTo:
			if len(verts) == 0 {
				continue
			}
			c1, c2, p1 := toVec(seg.Args[0]), toVec(seg.Args[1]), toVec(seg.Args[2])
			verts[len(verts)-1].Out = c1
			verts = append(verts, motion.BezierVertex{Point: p1, In: c2, Out: p1})
		}
	}
	flush()
	return paths
}

func toVec(p fixed.Point26_6) motion.Vec2 {
	return motion.V2(fixedToFloat(p.X), fixedToFloat(p.Y))
}

// floatToFixed converts a float64 to fixed.Int26_6.
func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}

// glyphAdvance returns the unhinted advance of gid at size.
func glyphAdvance(f *sfnt.Font, buf *sfnt.Buffer, gid sfnt.GlyphIndex, size fixed.Int26_6) float64 {
	adv, err := f.GlyphAdvance(buf, gid, size, font.HintingNone)
	if err != nil {
		return 0
	}
	return fixedToFloat(adv)
}
