package board

import (
	"fmt"
	"image"
	"image/color"

	"github.com/ironsheep/wordbrain-reader/internal/imaging"
)

const (
	// DefaultBoxRowOffset is how far below the top edge of the first box row
	// the box measurements are taken, clearing anti-aliased top borders.
	DefaultBoxRowOffset = 20

	// DefaultBoxRowSpacing is added to the box size to step from one row of
	// boxes to the next.
	DefaultBoxRowSpacing = 7
)

// Params configures a detection run.
type Params struct {
	// Tile matches the color of the letter tiles.
	Tile imaging.ColorMatcher

	// Background matches the board background, which is also the color
	// inside the word boxes.
	Background imaging.ColorMatcher

	// BoxRowOffset is added to the first non-background row below the grid
	// to get the row the box geometry is measured on.
	BoxRowOffset int

	// BoxRowSpacing is added to the total box size to step between box rows.
	BoxRowSpacing int
}

// DefaultParams returns Params with the default row offset and spacing.
func DefaultParams(tile, background imaging.ColorMatcher) Params {
	return Params{
		Tile:          tile,
		Background:    background,
		BoxRowOffset:  DefaultBoxRowOffset,
		BoxRowSpacing: DefaultBoxRowSpacing,
	}
}

// Validate checks the numeric parameters.
func (p Params) Validate() error {
	if p.BoxRowOffset < 0 {
		return fmt.Errorf("box row offset must be >= 0, got %d", p.BoxRowOffset)
	}
	if p.BoxRowSpacing < 0 {
		return fmt.Errorf("box row spacing must be >= 0, got %d", p.BoxRowSpacing)
	}
	return nil
}

// raster gives 0-based read access to an image whose bounds may not start at
// the origin.
type raster struct {
	img    image.Image
	min    image.Point
	width  int
	height int
}

func newRaster(img image.Image) raster {
	b := img.Bounds()
	return raster{img: img, min: b.Min, width: b.Dx(), height: b.Dy()}
}

func (r raster) at(x, y int) color.Color {
	return r.img.At(r.min.X+x, r.min.Y+y)
}
