// Package board extracts the layout of a word-puzzle board from a cropped
// screenshot.
//
// Detection runs in a fixed order over a read-only source image:
//
//  1. LocateTileGrid finds the first tile-colored pixel and measures one tile
//     and the number of tiles per row.
//  2. AssembleLetters stitches the interior of every tile into one
//     padding-free square image for OCR.
//  3. LocateWordBoxes finds the first non-background row below the grid and
//     measures the border, interior and spacing of the word-length boxes.
//  4. SegmentWords walks the box rows and turns runs of boxes into word
//     lengths.
//
// Detect runs all four and returns a Properties aggregate. Diagnostic marks
// are drawn on an imaging.Overlay copy; the source image is never written.
//
// # Failures
//
// Every failure wraps one of the sentinel errors in this package
// (ErrTileColorNotFound, ErrBoxRegionNotFound, ErrEmptyBoxList,
// ErrInconsistentGrid) and can be tested with errors.Is. Detect additionally
// wraps them in a *DetectError carrying the partially annotated image.
//
// # Tuning
//
// The box row offset and row spacing in Params are empirical values tuned to
// one rendering of the game. They are exposed rather than derived; expect to
// adjust them for other screen resolutions.
package board
