// Package imaging provides the image plumbing around board detection.
//
// This package loads screenshots, trims them to the puzzle region, decides
// whether a pixel belongs to a reference color, and draws diagnostic marks on
// a separate overlay copy. All operations work with standard Go image.Image
// types and use a coordinate system where (0,0) is at the top-left corner,
// X increases rightward, and Y increases downward.
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//   - For regions, (x1,y1) is inclusive (top-left), (x2,y2) is exclusive (bottom-right)
//
// Images returned by CropFractions and NewOverlay always have their bounds
// anchored at (0,0).
//
// # Color Matching
//
// Screenshots are frequently re-encoded, so reference colors are matched with
// a per-channel tolerance rather than exact equality. A ColorMatcher with a
// tolerance of 0 reproduces exact matching.
//
// # Overlays
//
// Overlay owns its own pixel buffer. Drawing on an overlay never touches the
// image it was cloned from, so detection code may keep reading the source
// while it annotates.
package imaging
