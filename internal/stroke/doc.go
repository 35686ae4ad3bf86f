// Package stroke converts stroked contours into filled outlines.
//
// A stroke becomes a fill in two passes over each contour. A forward
// outline is built at -width/2 along the normal and a backward outline at
// +width/2. For an open contour the forward outline, the end cap, the
// reversed backward outline and the start cap form a single closed
// contour. A closed contour produces two contours of opposite direction,
// so the result is a ring under the non-zero rule.
//
// # Caps and joins
//
//   - motion.LineCapButt ends flat at the endpoint
//   - motion.LineCapRound adds a half circle of radius width/2
//   - motion.LineCapSquare extends width/2 past the endpoint
//
// Joins are mitered up to the miter limit, then beveled. Round joins and
// caps are emitted as cubic arcs; curved segments are flattened to the
// expander's tolerance first.
//
// # Usage
//
//	style := stroke.Style{Width: 4, Cap: motion.LineCapRound, MiterLimit: 4}
//	outline := stroke.Expand(path, style, 0.25)
//
// The algorithm follows the stroker of tiny-skia and kurbo.
package stroke
