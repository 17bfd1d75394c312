package imaging

import (
	"fmt"
	"image"
	"image/color"
	"sort"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ColorMatcher decides whether a pixel belongs to a reference color.
//
// A pixel matches when each of its 8-bit RGB channels is within Tolerance of
// the reference. Fully transparent pixels never match.
type ColorMatcher struct {
	target    colorful.Color
	r, g, b   uint8
	tolerance uint8
}

// NewColorMatcher builds a matcher for c with the given per-channel tolerance.
func NewColorMatcher(c color.Color, tolerance uint8) ColorMatcher {
	target, _ := colorful.MakeColor(c)
	r, g, b := target.RGB255()
	return ColorMatcher{target: target, r: r, g: g, b: b, tolerance: tolerance}
}

// ParseColorMatcher is NewColorMatcher over a hex color string.
func ParseColorMatcher(hex string, tolerance uint8) (ColorMatcher, error) {
	c, err := ParseHexColor(hex)
	if err != nil {
		return ColorMatcher{}, err
	}
	return NewColorMatcher(c, tolerance), nil
}

// Matches reports whether c is within tolerance of the reference color.
func (m ColorMatcher) Matches(c color.Color) bool {
	cc, ok := colorful.MakeColor(c)
	if !ok {
		return false
	}
	r, g, b := cc.RGB255()
	return absDiff(r, m.r) <= int(m.tolerance) &&
		absDiff(g, m.g) <= int(m.tolerance) &&
		absDiff(b, m.b) <= int(m.tolerance)
}

// Tolerance returns the per-channel tolerance.
func (m ColorMatcher) Tolerance() uint8 {
	return m.tolerance
}

// String formats the matcher as "#rrggbb±n" for logs and error messages.
func (m ColorMatcher) String() string {
	return fmt.Sprintf("%s±%d", m.target.Hex(), m.tolerance)
}

// ParseHexColor parses a hex color string like "#E9D6B0" or "e9d6b0ff".
//
// Six digits are read as RRGGBB. Eight digits are read as RRGGBBAA; the alpha
// byte is accepted but matching only compares RGB.
func ParseHexColor(hex string) (color.Color, error) {
	hex = strings.TrimPrefix(strings.TrimSpace(hex), "#")

	switch len(hex) {
	case 6:
	case 8:
		hex = hex[:6]
	case 0:
		return nil, fmt.Errorf("empty color string")
	default:
		return nil, fmt.Errorf("invalid hex color length: %q", hex)
	}

	c, err := colorful.Hex("#" + strings.ToLower(hex))
	if err != nil {
		return nil, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	return c, nil
}

// MaxQuantBits is the largest quantization DominantColors applies; it keeps
// the top bit of every channel.
const MaxQuantBits = 7

// ColorFrequency represents a color and its occurrence frequency in an image.
type ColorFrequency struct {
	Hex        string  `json:"hex"`        // Hex color "#rrggbb" (quantized)
	Percentage float64 `json:"percentage"` // Percentage of pixels with this color (0-100)
	Count      int     `json:"count"`      // Number of pixels with this color
}

// DominantColors returns the count most frequent colors of img.
//
// Colors are quantized by clearing the low quant bits of every channel before
// counting, so anti-aliased neighbours of a flat fill collapse into one entry.
// With quant 0 the exact colors are counted, which is what the tile and
// background settings need. quant is capped at MaxQuantBits. Results are sorted by frequency, most common first,
// with ties broken by hex value so the order is stable.
func DominantColors(img image.Image, count int, quant uint) []ColorFrequency {
	bounds := img.Bounds()
	mask := uint8(0xFF) << min(quant, MaxQuantBits)

	counts := make(map[colorful.Color]int)
	total := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c, ok := colorful.MakeColor(img.At(x, y))
			if !ok {
				continue
			}
			r, g, b := c.RGB255()
			key := colorful.Color{
				R: float64(r&mask) / 255.0,
				G: float64(g&mask) / 255.0,
				B: float64(b&mask) / 255.0,
			}
			counts[key]++
			total++
		}
	}

	colors := make([]ColorFrequency, 0, len(counts))
	for c, n := range counts {
		colors = append(colors, ColorFrequency{
			Hex:        c.Hex(),
			Percentage: float64(n) / float64(total) * 100,
			Count:      n,
		})
	}

	sort.Slice(colors, func(i, j int) bool {
		if colors[i].Count != colors[j].Count {
			return colors[i].Count > colors[j].Count
		}
		return colors[i].Hex < colors[j].Hex
	})

	if count > 0 && len(colors) > count {
		colors = colors[:count]
	}
	return colors
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}
