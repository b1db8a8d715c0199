package processor

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/ds124wfegd/promocard/internal/entity"
)

// topLogoShrink is applied on top of the configured logo scale.
const topLogoShrink = 0.9

var white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

// BuildCanvas puts the product on a white canvas with padding on every side.
func BuildCanvas(product image.Image, padding int) *image.NRGBA {
	b := product.Bounds()
	canvas := imaging.New(b.Dx()+2*padding, b.Dy()+2*padding, white)
	return imaging.Overlay(canvas, product, image.Pt(padding, padding), 1.0)
}

// TopLogoPlacement centers the logo horizontally at the given top margin.
func TopLogoPlacement(canvasWidth int, logo image.Rectangle, logoScale float64, margin int) entity.Placement {
	width := int(float64(canvasWidth) * logoScale * topLogoShrink)
	height := scaledHeight(logo, width)

	return entity.Placement{
		X:      (canvasWidth - width) / 2,
		Y:      margin,
		Width:  width,
		Height: height,
	}
}

func PlaceTopLogo(canvas *image.NRGBA, logo image.Image, logoScale float64, margin int) *image.NRGBA {
	p := TopLogoPlacement(canvas.Bounds().Dx(), logo.Bounds(), logoScale, margin)
	return paste(canvas, logo, p)
}

// scaledHeight keeps the aspect ratio of src for the target width.
func scaledHeight(src image.Rectangle, width int) int {
	if src.Dx() == 0 {
		return 0
	}
	scale := float64(width) / float64(src.Dx())
	return int(float64(src.Dy()) * scale)
}

// paste resizes img to the placement size and alpha-composites it.
func paste(dst *image.NRGBA, img image.Image, p entity.Placement) *image.NRGBA {
	if p.Width <= 0 || p.Height <= 0 {
		return dst
	}
	resized := imaging.Resize(img, p.Width, p.Height, imaging.Lanczos)
	return imaging.Overlay(dst, resized, image.Pt(p.X, p.Y), 1.0)
}
