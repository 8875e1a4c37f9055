// Package logo trims transparent padding from logo images and extracts
// a representative color for auto color-matching.
package logo

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
)

// Analysis constants. The crop epsilon is the alpha at or below which a
// pixel counts as transparent padding; the sample alpha floor matches
// the original histogram filtering.
const (
	cropAlphaEpsilon = 16
	sampleAlphaFloor = 75
	sampleSize       = 100

	// Channel bounds outside which a candidate color is considered too
	// close to pure white/black to represent the logo.
	channelHigh = 240
	channelLow  = 15

	// Minimum contrast ratio of the matched color against the layer it
	// is painted over.
	minContrastRatio = 4.5

	// Luma threshold (of 255) above which the stroke goes black.
	strokeLumaThreshold = 50
)

// FallbackColor is returned when no representative color can be
// extracted (fully transparent or degenerate logos).
var FallbackColor = color.NRGBA{R: 0xEB, G: 0xEB, B: 0xEB, A: 0xFF}

// Analysis is the result of analyzing one logo asset.
type Analysis struct {
	// Image is the logo with fully-transparent border rows/columns
	// removed. A fully-transparent logo is returned uncropped.
	Image image.Image
	// Dominant is the representative color, contrast-adjusted against
	// the intended background. FallbackColor when extraction failed.
	Dominant color.NRGBA
	// Stroke is black or white, chosen by the dominant color's luma.
	Stroke color.NRGBA
	// FromFallback reports that Dominant is the configured fallback.
	FromFallback bool
}

// Analyze trims transparent padding and extracts the dominant color,
// adjusted to stay legible against background.
func Analyze(img image.Image, background color.NRGBA) Analysis {
	trimmed, ok := Trim(img)
	if !ok {
		return Analysis{Image: img, Dominant: FallbackColor, Stroke: color.NRGBA{A: 0xFF}, FromFallback: true}
	}

	dominant, found := dominantColor(trimmed)
	if !found {
		return Analysis{Image: trimmed, Dominant: FallbackColor, Stroke: color.NRGBA{A: 0xFF}, FromFallback: true}
	}

	dominant = ensureContrast(dominant, background)
	return Analysis{Image: trimmed, Dominant: dominant, Stroke: strokeFor(dominant)}
}

// Trim removes fully-transparent border rows and columns on all four
// sides, leaving the tightest box containing non-transparent pixels.
// The second return is false when the image has no such pixels; the
// original image is returned unchanged in that case.
func Trim(img image.Image) (image.Image, bool) {
	bounds := img.Bounds()
	tight := image.Rectangle{Min: image.Point{X: bounds.Max.X, Y: bounds.Max.Y}, Max: bounds.Min}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			_, _, _, a := img.At(x, y).RGBA()
			if uint8(a>>8) > cropAlphaEpsilon {
				if x < tight.Min.X {
					tight.Min.X = x
				}
				if y < tight.Min.Y {
					tight.Min.Y = y
				}
				if x+1 > tight.Max.X {
					tight.Max.X = x + 1
				}
				if y+1 > tight.Max.Y {
					tight.Max.Y = y + 1
				}
			}
		}
	}

	if tight.Min.X > tight.Max.X || tight.Min.Y > tight.Max.Y {
		return img, false
	}
	if tight == bounds {
		return img, true
	}
	return imaging.Crop(img, tight), true
}

// dominantColor quantizes a downscaled copy of the logo into coarse
// buckets, skipping near-transparent pixels and near-black/near-white
// buckets, and returns the most populous remainder.
func dominantColor(img image.Image) (color.NRGBA, bool) {
	sample := imaging.Resize(img, sampleSize, sampleSize, imaging.NearestNeighbor)

	type bucket struct {
		count   int
		r, g, b int
	}
	buckets := make(map[uint32]*bucket)

	bounds := sample.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := sample.NRGBAAt(x, y)
			if c.A < sampleAlphaFloor {
				continue
			}
			// 4 bits per channel is enough to separate logo palettes.
			key := uint32(c.R>>4)<<8 | uint32(c.G>>4)<<4 | uint32(c.B>>4)
			entry, ok := buckets[key]
			if !ok {
				entry = &bucket{}
				buckets[key] = entry
			}
			entry.count++
			entry.r += int(c.R)
			entry.g += int(c.G)
			entry.b += int(c.B)
		}
	}

	var best *bucket
	for _, entry := range buckets {
		r := uint8(entry.r / entry.count)
		g := uint8(entry.g / entry.count)
		b := uint8(entry.b / entry.count)
		if minChannel(r, g, b) > channelHigh || maxChannel(r, g, b) < channelLow {
			continue
		}
		if best == nil || entry.count > best.count {
			best = entry
		}
	}
	if best == nil {
		return color.NRGBA{}, false
	}
	return color.NRGBA{
		R: uint8(best.r / best.count),
		G: uint8(best.g / best.count),
		B: uint8(best.b / best.count),
		A: 0xFF,
	}, true
}

// ensureContrast steps the color toward white or black until its
// contrast ratio against the background meets the minimum.
func ensureContrast(c, background color.NRGBA) color.NRGBA {
	if contrastRatio(c, background) >= minContrastRatio {
		return c
	}
	// Lighten over a dark background, darken over a light one.
	lighten := relativeLuminance(background) < 0.5
	for i := 0; i < 20; i++ {
		c = step(c, lighten)
		if contrastRatio(c, background) >= minContrastRatio {
			return c
		}
	}
	return c
}

func step(c color.NRGBA, lighten bool) color.NRGBA {
	adjust := func(v uint8) uint8 {
		if lighten {
			if v > 255-16 {
				return 255
			}
			return v + 16
		}
		if v < 16 {
			return 0
		}
		return v - 16
	}
	return color.NRGBA{R: adjust(c.R), G: adjust(c.G), B: adjust(c.B), A: c.A}
}

func strokeFor(c color.NRGBA) color.NRGBA {
	luma := 0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)
	if luma > strokeLumaThreshold {
		return color.NRGBA{A: 0xFF}
	}
	return color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
}

func contrastRatio(a, b color.NRGBA) float64 {
	la := relativeLuminance(a)
	lb := relativeLuminance(b)
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}

func relativeLuminance(c color.NRGBA) float64 {
	lin := func(v uint8) float64 {
		f := float64(v) / 255
		if f <= 0.03928 {
			return f / 12.92
		}
		return math.Pow((f+0.055)/1.055, 2.4)
	}
	return 0.2126*lin(c.R) + 0.7152*lin(c.G) + 0.0722*lin(c.B)
}

func minChannel(r, g, b uint8) uint8 {
	m := r
	if g < m {
		m = g
	}
	if b < m {
		m = b
	}
	return m
}

func maxChannel(r, g, b uint8) uint8 {
	m := r
	if g > m {
		m = g
	}
	if b > m {
		m = b
	}
	return m
}
