package board

import (
	"image"
	"slices"

	"github.com/ironsheep/wordbrain-reader/internal/writeonce"
)

// Properties is the result of detecting one board.
//
// Geometry, images and word lengths are fixed at construction. The recognized
// text and the cleaned output are single-assignment: the first Set wins and
// later calls are ignored.
type Properties struct {
	letters   image.Image
	annotated image.Image
	grid      TileGrid
	boxes     WordBoxes
	words     []int

	recognized writeonce.Value[string]
	output     writeonce.Value[string]
}

// NewProperties builds a Properties. It keeps its own copy of words.
func NewProperties(letters, annotated image.Image, grid TileGrid, boxes WordBoxes, words []int) *Properties {
	return &Properties{
		letters:   letters,
		annotated: annotated,
		grid:      grid,
		boxes:     boxes,
		words:     slices.Clone(words),
	}
}

// Letters is the padding-free image of all tiles.
func (p *Properties) Letters() image.Image { return p.letters }

// Annotated is the cropped board with diagnostic marks.
func (p *Properties) Annotated() image.Image { return p.annotated }

// Grid returns the tile grid geometry.
func (p *Properties) Grid() TileGrid { return p.grid }

// WordBoxes returns the measured box geometry.
func (p *Properties) WordBoxes() WordBoxes { return p.boxes }

// TileSize is the width of one tile including its share of padding.
func (p *Properties) TileSize() int { return p.grid.TileSize }

// TilesPerRow is the number of tiles in each row and column.
func (p *Properties) TilesPerRow() int { return p.grid.TilesPerRow }

// TotalTiles is TilesPerRow squared.
func (p *Properties) TotalTiles() int { return p.grid.TilesPerRow * p.grid.TilesPerRow }

// Boxes returns the word lengths in reading order. The slice is a copy.
func (p *Properties) Boxes() []int { return slices.Clone(p.words) }

// SetRecognized attaches the raw OCR text and reports whether it was stored.
func (p *Properties) SetRecognized(text string) bool { return p.recognized.Set(text) }

// Recognized returns the raw OCR text, if attached.
func (p *Properties) Recognized() (string, bool) { return p.recognized.Get() }

// SetOutput attaches the cleaned letters and reports whether they were stored.
func (p *Properties) SetOutput(text string) bool { return p.output.Set(text) }

// Output returns the cleaned letters, if attached.
func (p *Properties) Output() (string, bool) { return p.output.Get() }
