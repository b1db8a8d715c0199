// Package fonts resolves the badge typeface and measures text the way the
// badge layout expects: boxes are relative to the top of the ascent line.
package fonts

import (
	"image"
	"image/color"
	"io"

	"github.com/ds124wfegd/promocard/internal/pkg/storage"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Fallback is used whenever the configured font cannot be loaded.
var Fallback font.Face = basicfont.Face7x13

// Resolve loads the TrueType/OpenType font at path with a pixel size of
// sizePx. It never fails: any problem yields Fallback.
func Resolve(s storage.FileStorage, path string, sizePx int) font.Face {
	face, err := load(s, path, sizePx)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"font":  s.Path(path),
			"error": err,
		}).Warn("using built-in font")
		return Fallback
	}
	return face
}

func load(s storage.FileStorage, path string, sizePx int) (font.Face, error) {
	file, err := s.Get(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}

	otf, err := opentype.Parse(data)
	if err != nil {
		return nil, err
	}

	if sizePx < 1 {
		sizePx = 1
	}
	return opentype.NewFace(otf, &opentype.FaceOptions{
		Size:    float64(sizePx),
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// Box is the ink bounding box of a string drawn with its ascent line at y=0.
type Box struct {
	MinX, MinY, MaxX, MaxY int
}

func (b Box) Width() int  { return b.MaxX - b.MinX }
func (b Box) Height() int { return b.MaxY - b.MinY }

func Measure(face font.Face, text string) Box {
	bounds, _ := font.BoundString(face, text)
	ascent := face.Metrics().Ascent.Round()

	return Box{
		MinX: bounds.Min.X.Floor(),
		MinY: ascent + bounds.Min.Y.Floor(),
		MaxX: bounds.Max.X.Ceil(),
		MaxY: ascent + bounds.Max.Y.Ceil(),
	}
}

// Draw renders text so that its ascent line starts at (x, y).
func Draw(dst *image.NRGBA, face font.Face, text string, x, y int, c color.Color) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(x, y+face.Metrics().Ascent.Round()),
	}
	d.DrawString(text)
}
