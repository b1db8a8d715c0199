package processor

import (
	"image"

	"github.com/ds124wfegd/promocard/internal/entity"
)

const (
	bottomLogoWidthRatio = 0.50
	bottomLogoMarginX    = 0.035
	bottomLogoMarginY    = 0.09
)

// BottomLogoPlacement anchors the logo bottom-left of a w×h canvas.
func BottomLogoPlacement(w, h int, logo image.Rectangle) entity.Placement {
	width := int(float64(w) * bottomLogoWidthRatio)
	height := scaledHeight(logo, width)

	return entity.Placement{
		X:      int(float64(w) * bottomLogoMarginX),
		Y:      h - height - int(float64(h)*bottomLogoMarginY),
		Width:  width,
		Height: height,
	}
}

func PlaceBottomLogo(square *image.NRGBA, logo image.Image) *image.NRGBA {
	b := square.Bounds()
	return paste(square, logo, BottomLogoPlacement(b.Dx(), b.Dy(), logo.Bounds()))
}
