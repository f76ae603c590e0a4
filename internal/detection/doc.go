// Package detection turns binary edge maps into structured features.
//
// [Segments] groups 8-connected edge pixels into segments and reports each
// with its bounding box, pixel count and whether it forms a closed contour.
// Input edge maps are usually produced by the canny pipeline in package
// imaging, where 255 marks an edge and 0 background.
//
// # Coordinate System
//
// All coordinates use the standard image convention:
//   - Origin (0, 0) at top-left corner
//   - X increases rightward
//   - Y increases downward
package detection
