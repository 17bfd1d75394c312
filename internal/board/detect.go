package board

import (
	"fmt"
	"image"
	"strings"

	"github.com/ironsheep/wordbrain-reader/internal/imaging"
)

// Detect runs the full board detection over img.
//
// img is only read. The annotated image in the result, and in a returned
// *DetectError, is a separate copy carrying the marks of every step that ran.
func Detect(img image.Image, p Params) (*Properties, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	ov := imaging.NewOverlay(img)

	grid, err := LocateTileGrid(img, p, ov)
	if err != nil {
		return nil, &DetectError{Err: err, Annotated: ov.Image()}
	}

	letters := AssembleLetters(img, grid)

	boxes, err := LocateWordBoxes(img, grid, p, ov)
	if err != nil {
		return nil, &DetectError{Err: err, Letters: letters, Annotated: ov.Image()}
	}

	words, err := SegmentWords(img, boxes, p, ov)
	if err != nil {
		return nil, &DetectError{Err: err, Letters: letters, Annotated: ov.Image()}
	}

	ov.Label(2, 2, fmt.Sprintf("%dx%d tiles size %d pad %d",
		grid.TilesPerRow, grid.TilesPerRow, grid.TileSize, grid.Padding))
	ov.Label(2, max(boxes.RowStart-15, 0), fmt.Sprintf("box %d gap %d words %s",
		boxes.Total, boxes.Gap, formatWords(words)))

	return NewProperties(letters, ov.Image(), grid, boxes, words), nil
}

func formatWords(words []int) string {
	parts := make([]string, len(words))
	for i, w := range words {
		parts[i] = fmt.Sprint(w)
	}
	return strings.Join(parts, " ")
}
