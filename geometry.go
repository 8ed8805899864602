package icondemo

import (
	"image/color"
	"math"
)

const (
	// Band placement as fractions of the image height, measured from the
	// bottom edge.
	bannerHeightFraction = 0.30
	bannerOffsetFraction = 0.12

	textSizeFraction = 0.55
	minFontSize      = 5.0

	// BannerText is the label drawn across the band.
	BannerText = "DEMO"
)

// BannerColor is RGBA(0.8, 0.2, 0.2, 0.92) in non-premultiplied form.
var BannerColor = color.NRGBA{R: 204, G: 51, B: 51, A: 235}

// Geometry captures the banner placement for an image of a given size.
// BannerY and BannerHeight use a bottom-left origin.
type Geometry struct {
	Width        int
	Height       int
	BannerY      float64
	BannerHeight float64
	FontSize     float64
}

// BannerGeometry derives the banner band and label size from the image
// dimensions.
func BannerGeometry(width, height int) Geometry {
	h := float64(height)
	bannerHeight := bannerHeightFraction * h

	return Geometry{
		Width:        width,
		Height:       height,
		BannerY:      bannerOffsetFraction * h,
		BannerHeight: bannerHeight,
		FontSize:     math.Max(textSizeFraction*bannerHeight, minFontSize),
	}
}

// BandTop returns the top edge of the band in image (top-left origin)
// coordinates.
func (g Geometry) BandTop() float64 {
	return float64(g.Height) - g.BannerY - g.BannerHeight
}

// BandBottom returns the bottom edge of the band in image coordinates.
func (g Geometry) BandBottom() float64 {
	return float64(g.Height) - g.BannerY
}

// TextOrigin returns the top-left corner, in image coordinates, of a text box
// of the given size centered horizontally in the image and vertically in the
// band.
func (g Geometry) TextOrigin(textWidth, textHeight float64) (x, y float64) {
	x = (float64(g.Width) - textWidth) / 2
	bottomUp := g.BannerY + (g.BannerHeight-textHeight)/2
	y = float64(g.Height) - bottomUp - textHeight
	return x, y
}
