package board

import (
	"errors"
	"image"
)

var (
	// ErrTileColorNotFound means no pixel of the image matched the tile color.
	ErrTileColorNotFound = errors.New("tile color not found")

	// ErrInconsistentGrid means the measured tile row cannot describe a grid,
	// e.g. tiles wider than the image allows.
	ErrInconsistentGrid = errors.New("inconsistent tile grid")

	// ErrBoxRegionNotFound means nothing but background lies below the grid,
	// or the box measurement row falls outside the image.
	ErrBoxRegionNotFound = errors.New("word box region not found")

	// ErrEmptyBoxList means the box rows produced no word lengths.
	ErrEmptyBoxList = errors.New("no word boxes found")

	// ErrLetterCountMismatch means the recognized text does not hold exactly
	// one letter per tile.
	ErrLetterCountMismatch = errors.New("letter count mismatch")
)

// DetectError reports a failed Detect together with whatever images had been
// produced, so the caller can still persist them for debugging.
type DetectError struct {
	// Err is the underlying failure; it wraps one of the sentinel errors.
	Err error

	// Letters is the assembled letter image, or nil if the grid was not found.
	Letters image.Image

	// Annotated is the overlay with all marks drawn up to the failure.
	Annotated image.Image
}

func (e *DetectError) Error() string {
	return "board detection failed: " + e.Err.Error()
}

func (e *DetectError) Unwrap() error {
	return e.Err
}
