package processor

import (
	"image"

	"github.com/disintegration/imaging"
)

// MakeSquare centers the canvas on a white square whose side is the longer
// canvas dimension.
func MakeSquare(canvas image.Image) *image.NRGBA {
	w, h := canvas.Bounds().Dx(), canvas.Bounds().Dy()
	side := max(w, h)

	square := imaging.New(side, side, white)
	return imaging.Paste(square, canvas, image.Pt((side-w)/2, (side-h)/2))
}
