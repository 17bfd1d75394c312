package board

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// AssembleLetters copies the interior of every tile into one square image
// with the padding between tiles removed.
//
// The tile at (row, col) is read from g.LetterRect(row, col) and pasted at
// (col*side, row*side), where side is g.LetterSize(). The result is
// g.TilesPerRow*side pixels on each side. Parts of a letter region that fall
// outside img are left transparent.
func AssembleLetters(img image.Image, g TileGrid) *image.NRGBA {
	side := g.LetterSize()
	dim := g.TilesPerRow * side
	out := imaging.New(dim, dim, color.Transparent)

	origin := img.Bounds().Min
	for row := 0; row < g.TilesPerRow; row++ {
		for col := 0; col < g.TilesPerRow; col++ {
			tile := imaging.Crop(img, g.LetterRect(row, col).Add(origin))
			out = imaging.Paste(out, tile, image.Pt(col*side, row*side))
		}
	}
	return out
}
