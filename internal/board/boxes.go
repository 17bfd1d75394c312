package board

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/ironsheep/wordbrain-reader/internal/imaging"
)

// WordBoxes describes the word-length boxes shown below the tile grid.
//
// A box is a square of non-background border around a background-colored
// interior. Boxes of one word are separated by Gap background pixels; words
// are separated by more than that.
type WordBoxes struct {
	// RowStart is the first row below the grid holding a non-background pixel.
	RowStart int `json:"row_start" toml:"row-start"`

	// MeasureRow is the row the measurements were taken on.
	MeasureRow int `json:"measure_row" toml:"measure-row"`

	// Border is the width of one vertical box border.
	Border int `json:"border" toml:"border"`

	// Inside is the width of the box interior.
	Inside int `json:"inside" toml:"inside"`

	// Gap is the background run between two boxes of the same word.
	Gap int `json:"gap" toml:"gap"`

	// Total is Inside + 2*Border.
	Total int `json:"total" toml:"total"`
}

type boxPhase int

const (
	phaseBorder boxPhase = iota
	phaseInside
	phaseGap
	phaseDone
)

// LocateWordBoxes finds the box region below g and measures one box.
//
// Rows are searched downward from g.Bottom(); the first row with any pixel
// not matching p.Background is RowStart. The geometry is then read from
// MeasureRow = RowStart + p.BoxRowOffset in three phases: non-background
// pixels of the leading border, background pixels of the interior, and the
// background gap up to the next box. Only the first box and gap are measured.
//
// The measurement row is marked on ov, red for background and green
// otherwise. ov may be nil.
func LocateWordBoxes(img image.Image, g TileGrid, p Params, ov *imaging.Overlay) (WordBoxes, error) {
	r := newRaster(img)

	rowStart := -1
search:
	for y := max(g.Bottom(), 0); y < r.height; y++ {
		for x := 0; x < r.width; x++ {
			if !p.Background.Matches(r.at(x, y)) {
				rowStart = y
				break search
			}
		}
	}
	if rowStart == -1 {
		return WordBoxes{}, fmt.Errorf("%w: rows %d..%d all match background %s",
			ErrBoxRegionNotFound, g.Bottom(), r.height, p.Background)
	}

	wb := WordBoxes{RowStart: rowStart, MeasureRow: rowStart + p.BoxRowOffset}
	if wb.MeasureRow >= r.height {
		return wb, fmt.Errorf("%w: measurement row %d is past image height %d",
			ErrBoxRegionNotFound, wb.MeasureRow, r.height)
	}

	phase := phaseBorder
	for x := 0; x < r.width; x++ {
		isBackground := p.Background.Matches(r.at(x, wb.MeasureRow))
		if isBackground {
			ov.Mark(x, wb.MeasureRow, imaging.OverlayRed)
		} else {
			ov.Mark(x, wb.MeasureRow, imaging.OverlayGreen)
		}

		switch phase {
		case phaseBorder:
			if !isBackground {
				wb.Border++
			} else if wb.Border > 0 {
				phase = phaseInside
				wb.Inside++
			}
		case phaseInside:
			if isBackground {
				wb.Inside++
			} else {
				phase = phaseGap
			}
		case phaseGap:
			if isBackground {
				wb.Gap++
			} else if wb.Gap > 0 {
				phase = phaseDone
			}
		}
	}

	wb.Total = wb.Inside + 2*wb.Border
	if wb.Total <= 0 {
		return wb, fmt.Errorf("%w: no box crosses measurement row %d",
			ErrBoxRegionNotFound, wb.MeasureRow)
	}

	slog.Debug("word boxes measured",
		"row_start", wb.RowStart,
		"measure_row", wb.MeasureRow,
		"border", wb.Border,
		"inside", wb.Inside,
		"total", wb.Total,
		"gap", wb.Gap)

	return wb, nil
}
