// Package compositor places a logo over a background image and blends it in.
package compositor

import (
	"image"

	"github.com/disintegration/imaging"

	"github.com/menta2k/watermarker/pkg/types"
)

// Place returns the top-left corner of the logo for the given anchor.
// Offsets go negative when the logo is larger than the background.
func Place(anchor types.Anchor, bgWidth, bgHeight, logoWidth, logoHeight int) image.Point {
	right := bgWidth - logoWidth
	bottom := bgHeight - logoHeight

	switch anchor {
	case types.TopLeft:
		return image.Pt(0, 0)
	case types.TopRight:
		return image.Pt(right, 0)
	case types.BottomLeft:
		return image.Pt(0, bottom)
	case types.Center:
		// Go division truncates toward zero, also for negative offsets
		return image.Pt(right/2, bottom/2)
	case types.BottomRight:
		return image.Pt(right, bottom)
	default:
		// not produced by ParseAnchor; use the default corner
		return image.Pt(right, bottom)
	}
}

// PlaceOver is Place for two concrete images
func PlaceOver(anchor types.Anchor, background, logo image.Image) image.Point {
	bg := background.Bounds()
	lg := logo.Bounds()
	return Place(anchor, bg.Dx(), bg.Dy(), lg.Dx(), lg.Dy())
}

// Overlay draws logo over background with source-over alpha blending.
// at is relative to the top-left corner of background. Logo pixels outside
// the background are clipped. The background is left untouched and a new
// image is returned; the logo is only read.
func Overlay(background, logo image.Image, at image.Point) *image.NRGBA {
	return imaging.Overlay(background, logo, background.Bounds().Min.Add(at), 1.0)
}

// Composite places logo according to anchor and overlays it
func Composite(background, logo image.Image, anchor types.Anchor) *image.NRGBA {
	return Overlay(background, logo, PlaceOver(anchor, background, logo))
}
