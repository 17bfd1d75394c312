package imaging

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Diagnostic colors used when annotating a board.
var (
	OverlayRed    = color.NRGBA{R: 255, G: 0, B: 0, A: 255}
	OverlayGreen  = color.NRGBA{R: 0, G: 255, B: 0, A: 255}
	OverlayBlue   = color.NRGBA{R: 0, G: 0, B: 255, A: 255}
	OverlayYellow = color.NRGBA{R: 255, G: 255, B: 0, A: 255}
	OverlayLabel  = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	OverlayShadow = color.NRGBA{R: 0, G: 0, B: 0, A: 180}
)

// Overlay is an annotatable copy of an image.
//
// The copy is taken once in NewOverlay; later changes to either image are not
// seen by the other. All drawing methods clip to the image bounds and are
// no-ops on a nil *Overlay, so callers that do not want diagnostics can pass
// nil.
type Overlay struct {
	img *image.NRGBA
}

// NewOverlay clones src into a fresh buffer anchored at (0,0).
func NewOverlay(src image.Image) *Overlay {
	return &Overlay{img: imaging.Clone(src)}
}

// Image returns the annotated buffer.
func (o *Overlay) Image() image.Image {
	if o == nil {
		return nil
	}
	return o.img
}

// Mark paints a single pixel.
func (o *Overlay) Mark(x, y int, c color.Color) {
	if o == nil || !image.Pt(x, y).In(o.img.Bounds()) {
		return
	}
	o.img.Set(x, y, c)
}

// HLine paints the pixels [x1,x2) of row y.
func (o *Overlay) HLine(x1, x2, y int, c color.Color) {
	for x := x1; x < x2; x++ {
		o.Mark(x, y, c)
	}
}

// VLine paints the pixels [y1,y2) of column x.
func (o *Overlay) VLine(x, y1, y2 int, c color.Color) {
	for y := y1; y < y2; y++ {
		o.Mark(x, y, c)
	}
}

// Outline paints the one-pixel border of r.
func (o *Overlay) Outline(r image.Rectangle, c color.Color) {
	if r.Empty() {
		return
	}
	o.HLine(r.Min.X, r.Max.X, r.Min.Y, c)
	o.HLine(r.Min.X, r.Max.X, r.Max.Y-1, c)
	o.VLine(r.Min.X, r.Min.Y, r.Max.Y, c)
	o.VLine(r.Max.X-1, r.Min.Y, r.Max.Y, c)
}

// Label draws text with its top-left corner at (x, y) on a shaded box.
func (o *Overlay) Label(x, y int, text string) {
	if o == nil || text == "" {
		return
	}
	face := basicfont.Face7x13
	width := font.MeasureString(face, text).Ceil()
	height := face.Metrics().Height.Ceil()

	for dy := -1; dy <= height; dy++ {
		o.HLine(x-1, x+width+1, y+dy, OverlayShadow)
	}

	d := &font.Drawer{
		Dst:  o.img,
		Src:  image.NewUniform(OverlayLabel),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y) + face.Metrics().Ascent},
	}
	d.DrawString(text)
}
