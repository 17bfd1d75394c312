package board

import (
	"image"
	"image/color"

	"github.com/ironsheep/wordbrain-reader/internal/imaging"
)

var (
	tileColor   = color.NRGBA{233, 214, 176, 255}
	bgColor     = color.NRGBA{40, 44, 52, 255}
	borderColor = color.NRGBA{250, 250, 250, 255}
	inkColor    = color.NRGBA{20, 20, 20, 255}
)

func testParams() Params {
	p := DefaultParams(
		imaging.NewColorMatcher(tileColor, 0),
		imaging.NewColorMatcher(bgColor, 0),
	)
	p.BoxRowOffset = 10
	return p
}

// fill paints r on img with c.
func fill(img *image.NRGBA, r image.Rectangle, c color.Color) {
	r = r.Intersect(img.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.Set(x, y, c)
		}
	}
}

// newBackground creates a width x height image filled with bgColor.
func newBackground(width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	fill(img, img.Bounds(), bgColor)
	return img
}

// gridSpec lays out n x n tiles of size s with padding pad, starting at row top.
// Tile (r, c) covers x in [c*(s+pad)+pad, (c+1)*(s+pad)) and
// y in [top+r*(s+pad), top+r*(s+pad)+s), so the image width is n*(s+pad).
type gridSpec struct {
	n, s, pad, top int
}

func (g gridSpec) width() int  { return g.n * (g.s + g.pad) }
func (g gridSpec) bottom() int { return g.top + g.n*(g.s+g.pad) }

func (g gridSpec) tileRect(row, col int) image.Rectangle {
	x := col*(g.s+g.pad) + g.pad
	y := g.top + row*(g.s+g.pad)
	return image.Rect(x, y, x+g.s, y+g.s)
}

// draw paints every tile and, when ink is set, a per-tile pattern inside it.
// The pattern never touches a tile's first row or first column, so the
// row scan and origin search only ever see the tile color there.
func (g gridSpec) draw(img *image.NRGBA, ink bool) {
	for row := 0; row < g.n; row++ {
		for col := 0; col < g.n; col++ {
			r := g.tileRect(row, col)
			fill(img, r, tileColor)
			if !ink {
				continue
			}
			for dy := 1; dy < g.s; dy++ {
				for dx := 1; dx < g.s; dx++ {
					if (dx+dy+row+col)%5 == 0 {
						img.Set(r.Min.X+dx, r.Min.Y+dy, color.NRGBA{
							R: uint8(10 * row), G: uint8(10 * col), B: uint8(dx + dy), A: 255,
						})
					}
				}
			}
		}
	}
}

// boxSpec lays out rows of word boxes starting at row top.
type boxSpec struct {
	total, border int
	gap, wordGap  int
	left, top     int
	rowPitch      int
	rows          [][]int
}

// draw paints every box as a border ring around a background interior.
func (b boxSpec) draw(img *image.NRGBA) {
	for i, words := range b.rows {
		y := b.top + i*b.rowPitch
		x := b.left
		for w, length := range words {
			if w > 0 {
				x += b.wordGap - b.gap
			}
			for k := 0; k < length; k++ {
				box := image.Rect(x, y, x+b.total, y+b.total)
				fill(img, box, borderColor)
				fill(img, box.Inset(b.border), bgColor)
				x += b.total + b.gap
			}
		}
	}
}

// newBoard builds a full synthetic board: a 3x3 grid and two rows of boxes
// holding the words [3 2] and [4].
func newBoard(ink bool) (*image.NRGBA, gridSpec, boxSpec) {
	g := gridSpec{n: 3, s: 50, pad: 10, top: 10}
	b := boxSpec{
		total: 20, border: 2, gap: 3, wordGap: 6,
		left: 5, top: g.bottom() + 10, rowPitch: 20 + DefaultBoxRowSpacing,
		rows: [][]int{{3, 2}, {4}},
	}
	img := newBackground(g.width(), b.top+2*b.rowPitch+15)
	g.draw(img, ink)
	b.draw(img)
	return img, g, b
}
