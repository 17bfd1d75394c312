package board

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/ironsheep/wordbrain-reader/internal/imaging"
)

// TileGrid describes the square grid of letter tiles.
//
// Tiles are assumed uniform: TileSize is taken from the first tile of the
// scanned row and Padding is the width left over per tile once TilesPerRow
// tiles are laid across the image.
type TileGrid struct {
	// OriginX, OriginY locate the first tile-colored pixel in column-major order.
	OriginX int `json:"origin_x" toml:"origin-x"`
	OriginY int `json:"origin_y" toml:"origin-y"`

	// TileSize is the width of the first tile run on row OriginY.
	TileSize int `json:"tile_size" toml:"tile-size"`

	// TilesPerRow counts the tile runs on row OriginY.
	TilesPerRow int `json:"tiles_per_row" toml:"tiles-per-row"`

	// Padding is (imageWidth - TileSize*TilesPerRow) / TilesPerRow.
	Padding int `json:"padding" toml:"padding"`
}

// LetterSize is the side of one tile once its padding is stripped.
func (g TileGrid) LetterSize() int {
	return g.TileSize - g.Padding
}

// Bottom is the first row below the last row of tiles.
func (g TileGrid) Bottom() int {
	return g.OriginY + g.TilesPerRow*(g.TileSize+g.Padding)
}

// LetterRect is the region of the tile at (row, col) that ends up in the
// assembled letter image, in 0-based image coordinates.
func (g TileGrid) LetterRect(row, col int) image.Rectangle {
	side := g.LetterSize()
	x := col*g.TileSize + g.Padding*(col+1)
	y := g.OriginY + row*(g.TileSize+g.Padding)
	return image.Rect(x, y, x+side, y+side)
}

func (g TileGrid) validate() error {
	if g.TilesPerRow < 1 || g.TileSize <= 0 {
		return fmt.Errorf("%w: %d tiles of size %d", ErrInconsistentGrid, g.TilesPerRow, g.TileSize)
	}
	if g.Padding < 0 || g.LetterSize() <= 0 {
		return fmt.Errorf("%w: padding %d for tile size %d", ErrInconsistentGrid, g.Padding, g.TileSize)
	}
	return nil
}

// LocateTileGrid measures the tile grid of img.
//
// The origin is the first pixel matching p.Tile when scanning columns left to
// right and, within a column, rows top to bottom. Row OriginY is then walked
// left to right: every entry into a run of tile pixels counts one tile, and
// the end of the first run bounds TileSize. A run reaching the right edge ends
// at the image width.
//
// The scanned row is marked on ov, followed by the outline of every letter
// region once the grid is known. ov may be nil.
func LocateTileGrid(img image.Image, p Params, ov *imaging.Overlay) (TileGrid, error) {
	r := newRaster(img)

	originX, originY, found := -1, -1, false
search:
	for x := 0; x < r.width; x++ {
		for y := 0; y < r.height; y++ {
			if p.Tile.Matches(r.at(x, y)) {
				originX, originY, found = x, y, true
				break search
			}
		}
	}
	if !found {
		return TileGrid{}, fmt.Errorf("%w: no pixel within %s in %dx%d image",
			ErrTileColorNotFound, p.Tile, r.width, r.height)
	}

	inTile := false
	tilesPerRow := 0
	tileEndX := -1
	for x := 0; x < r.width; x++ {
		isTile := p.Tile.Matches(r.at(x, originY))
		switch {
		case !inTile && isTile:
			inTile = true
			tilesPerRow++
		case inTile && !isTile:
			if tileEndX == -1 {
				tileEndX = x
			}
			inTile = false
		}
		if isTile {
			ov.Mark(x, originY, imaging.OverlayRed)
		}
	}
	if tileEndX == -1 {
		tileEndX = r.width
	}

	tileSize := tileEndX - originX
	grid := TileGrid{
		OriginX:     originX,
		OriginY:     originY,
		TileSize:    tileSize,
		TilesPerRow: tilesPerRow,
		Padding:     (r.width - tileSize*tilesPerRow) / tilesPerRow,
	}
	if err := grid.validate(); err != nil {
		return grid, err
	}

	for row := 0; row < grid.TilesPerRow; row++ {
		for col := 0; col < grid.TilesPerRow; col++ {
			ov.Outline(grid.LetterRect(row, col), imaging.OverlayGreen)
		}
	}

	slog.Debug("tile grid located",
		"origin_x", grid.OriginX,
		"origin_y", grid.OriginY,
		"tile_size", grid.TileSize,
		"tiles_per_row", grid.TilesPerRow,
		"padding", grid.Padding)

	return grid, nil
}
