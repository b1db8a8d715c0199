package processor

import (
	"image"
	"image/color"
	"math"

	"github.com/ds124wfegd/promocard/internal/entity"
	"github.com/ds124wfegd/promocard/internal/pkg/fonts"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/font"
)

const (
	badgeWidthRatio   = 0.37
	badgeHeightRatio  = 0.09
	badgeMarginBottom = 0.13
	badgeRadiusDiv    = 2.8
	badgeFontRatio    = 0.7

	// VerticalTextDivisor places the label slightly above true center.
	VerticalTextDivisor = 3.7

	arcSegments = 32
)

var (
	BadgeColor = color.NRGBA{R: 0, G: 94, B: 184, A: 255}
	TextColor  = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

// Badge computes the badge rectangle for a w×h canvas. The result does not
// depend on the price text.
func Badge(w, h int) entity.BadgeGeometry {
	bw := int(float64(w) * badgeWidthRatio)
	bh := int(float64(h) * badgeHeightRatio)
	mb := int(float64(h) * badgeMarginBottom)

	return entity.BadgeGeometry{
		X1:           w - bw,
		Y1:           h - bh - mb,
		X2:           w,
		Y2:           h - mb,
		Width:        bw,
		Height:       bh,
		MarginBottom: mb,
		Radius:       floorDiv(float64(bh), badgeRadiusDiv),
	}
}

// BadgeFontSize is the pixel size of the label for a badge of the given height.
func BadgeFontSize(g entity.BadgeGeometry) int {
	return int(float64(g.Height) * badgeFontRatio)
}

// LabelOrigin returns where the top-left of the label's ascent box goes.
// Text wider than the badge is not truncated.
func LabelOrigin(g entity.BadgeGeometry, box fonts.Box) image.Point {
	x := float64(g.X1) + floorDiv(g.Radius, 2) + floorDiv(float64(g.Width-box.Width()), 2)
	y := float64(g.Y1) + floorDiv(float64(g.Height-box.Height()), VerticalTextDivisor)
	return image.Pt(int(x), int(y))
}

// DrawPriceBadge paints the badge and its label onto canvas in place.
func DrawPriceBadge(canvas *image.NRGBA, price string, face font.Face) entity.BadgeGeometry {
	b := canvas.Bounds()
	g := Badge(b.Dx(), b.Dy())

	drawBadgeShape(canvas, g)

	label := entity.PriceLabel(price)
	origin := LabelOrigin(g, fonts.Measure(face, label))
	fonts.Draw(canvas, face, label, origin.X, origin.Y, TextColor)

	return g
}

// drawBadgeShape draws the body, both left arcs and the strip between them.
// Coordinates are inclusive pixel bounds, so every box is grown by one pixel
// on its far edges before rasterising.
func drawBadgeShape(canvas *image.NRGBA, g entity.BadgeGeometry) {
	w, h := canvas.Bounds().Dx(), canvas.Bounds().Dy()
	scanner := rasterx.NewScannerGV(w, h, canvas, canvas.Bounds())
	filler := rasterx.NewFiller(w, h, scanner)
	filler.SetColor(BadgeColor)

	x1, y1 := float64(g.X1), float64(g.Y1)
	x2, y2 := float64(g.X2), float64(g.Y2)
	r := g.Radius

	fillRect(filler, x1+r, y1, x2, y2)
	fillPie(filler, x1, y1, x1+2*r, y1+2*r, 180, 270)
	fillPie(filler, x1, y2-2*r, x1+2*r, y2, 90, 180)
	fillRect(filler, x1, y1+r, x1+r, y2-r)
}

func fillRect(f *rasterx.Filler, x0, y0, x1, y1 float64) {
	rasterx.AddRect(x0, y0, x1+1, y1+1, 0, f)
	f.Draw()
	f.Clear()
}

// fillPie fills the sector of the ellipse inscribed in the box between the
// two angles, measured in degrees clockwise from three o'clock.
func fillPie(f *rasterx.Filler, x0, y0, x1, y1, start, end float64) {
	cx, cy := (x0+x1+1)/2, (y0+y1+1)/2
	rx, ry := (x1+1-x0)/2, (y1+1-y0)/2

	f.Start(rasterx.ToFixedP(cx, cy))
	for i := 0; i <= arcSegments; i++ {
		a := (start + (end-start)*float64(i)/arcSegments) * math.Pi / 180
		f.Line(rasterx.ToFixedP(cx+rx*math.Cos(a), cy+ry*math.Sin(a)))
	}
	f.Stop(true)
	f.Draw()
	f.Clear()
}

// floorDiv is floor division on floats, rounding like a//b on positive
// operands and toward negative infinity otherwise.
func floorDiv(a, b float64) float64 {
	mod := math.Mod(a, b)
	div := (a - mod) / b
	if mod != 0 && (b < 0) != (mod < 0) {
		div--
	}
	floor := math.Floor(div)
	if div-floor > 0.5 {
		floor++
	}
	return floor
}
