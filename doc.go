// Package motion is the geometry core of a frame-evaluation engine for
// keyframed vector animation.
//
// # Overview
//
// An animation document describes layers of shapes, transforms, fills,
// strokes, masks and text whose properties change over time through
// keyframes. This package holds the primitives that evaluation produces and
// consumes:
//
//   - Vec2, Matrix and RGBA values
//   - BezierVertex and BezierPath, a single cubic contour with absolute
//     control points
//   - CompoundPath, an ordered list of contours with a fill rule
//   - path algebra: Trim, Merge, Transform and Lerp
//   - parametric shapes: Ellipse, Rectangle, Star and Polygon
//   - paint parameters: LineCap, LineJoin, FillRule, Dash and ColorStop
//
// Keyframe interpolation lives in package keyframe, the per-frame dataflow
// graph in package node, and the composition root with its render tree and
// runtime mutation API in package scene.
//
// # Quick Start
//
//	sq := motion.Rectangle(motion.V2(50, 50), motion.V2(100, 100), 0, motion.Clockwise)
//	half := sq.Trim(0, 50, 0) // one open contour covering half the perimeter
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in the document are degrees, clockwise on screen
//
// # Concurrency
//
// Values in this package are plain data. A BezierPath caches its arc
// length on first measurement, so a single path value must not be measured
// from several goroutines at once.
package motion
