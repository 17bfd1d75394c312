package imaging

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// CropFractions trims a fixed share of rows from the top and bottom of img.
//
// The header fraction is removed from the top and the footer fraction from
// the bottom, leaving rows [height*header, height*(1-footer)) across the full
// width. Both fractions must lie in [0,1) and their sum must stay below 1.
//
// The returned image is a copy with bounds anchored at (0,0).
func CropFractions(img image.Image, header, footer float64) (*image.NRGBA, error) {
	if header < 0 || header >= 1 || footer < 0 || footer >= 1 {
		return nil, fmt.Errorf("crop fractions must be in [0,1): header=%v footer=%v", header, footer)
	}
	if header+footer >= 1 {
		return nil, fmt.Errorf("crop fractions leave no rows: header=%v footer=%v", header, footer)
	}

	bounds := img.Bounds()
	height := float64(bounds.Dy())
	top := int(height * header)
	bottom := int(height - height*footer)
	if top >= bottom {
		return nil, fmt.Errorf("crop region is empty for image height %d", bounds.Dy())
	}

	rect := image.Rect(bounds.Min.X, bounds.Min.Y+top, bounds.Max.X, bounds.Min.Y+bottom)
	return imaging.Crop(img, rect), nil
}
