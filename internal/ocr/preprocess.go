package ocr

import (
	"image"
	"math"

	"github.com/anthonynsimon/bild/effect"
	"github.com/anthonynsimon/bild/segment"
	"github.com/anthonynsimon/bild/transform"
)

// PreprocessOptions selects the image clean-up steps run before OCR.
// The zero value leaves the image untouched.
type PreprocessOptions struct {
	// Scale enlarges the image by this factor. Values <= 1 keep the size.
	Scale float64

	// Grayscale drops color information.
	Grayscale bool

	// Threshold binarizes the image at this luminance level. 0 disables it.
	Threshold uint8

	// Invert swaps light and dark, for light letters on dark tiles.
	Invert bool
}

// Preprocess applies opts to img in the order scale, grayscale, threshold,
// invert, returning img itself when no step is enabled.
func Preprocess(img image.Image, opts PreprocessOptions) image.Image {
	out := img

	if opts.Scale > 1 {
		b := out.Bounds()
		w := int(math.Round(float64(b.Dx()) * opts.Scale))
		h := int(math.Round(float64(b.Dy()) * opts.Scale))
		out = transform.Resize(out, w, h, transform.Linear)
	}

	if opts.Grayscale {
		out = effect.Grayscale(out)
	}

	if opts.Threshold > 0 {
		out = segment.Threshold(out, opts.Threshold)
	}

	if opts.Invert {
		out = effect.Invert(out)
	}

	return out
}
