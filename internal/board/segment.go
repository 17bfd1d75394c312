package board

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/ironsheep/wordbrain-reader/internal/imaging"
)

// SegmentWords turns the rows of boxes into word lengths.
//
// Rows are visited from wb.MeasureRow downward in steps of
// wb.Total + p.BoxRowSpacing. On each row a non-background pixel counts one
// box and skips the next wb.Total columns; a run of more than wb.Gap
// background pixels after at least one box closes the word. A word still
// open at the right edge is closed there. Rows without boxes contribute
// nothing.
//
// Scanned pixels are marked on ov, yellow where a box was counted and blue
// for background. ov may be nil.
func SegmentWords(img image.Image, wb WordBoxes, p Params, ov *imaging.Overlay) ([]int, error) {
	if wb.Total <= 0 {
		return nil, fmt.Errorf("%w: box size %d", ErrEmptyBoxList, wb.Total)
	}

	r := newRaster(img)
	step := wb.Total + p.BoxRowSpacing

	var words []int
	for y := wb.MeasureRow; y < r.height; y += step {
		row := segmentRow(r, y, wb, p, ov)
		if len(row) > 0 {
			slog.Debug("word row segmented", "y", y, "words", row)
		}
		words = append(words, row...)
	}

	if len(words) == 0 {
		return nil, fmt.Errorf("%w: scanned rows from %d in steps of %d",
			ErrEmptyBoxList, wb.MeasureRow, step)
	}
	return words, nil
}

func segmentRow(r raster, y int, wb WordBoxes, p Params, ov *imaging.Overlay) []int {
	var words []int
	boxes, span := 0, 0

	for x := 0; x < r.width; {
		if !p.Background.Matches(r.at(x, y)) {
			ov.Mark(x, y, imaging.OverlayYellow)
			boxes++
			span = 0
			x += wb.Total
			continue
		}

		ov.Mark(x, y, imaging.OverlayBlue)
		span++
		if boxes > 0 && span > wb.Gap {
			words = append(words, boxes)
			boxes, span = 0, 0
		}
		x++
	}

	if boxes > 0 {
		words = append(words, boxes)
	}
	return words
}
