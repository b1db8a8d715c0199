package processor

import (
	"fmt"
	"image"

	"github.com/ds124wfegd/promocard/config"
	"github.com/ds124wfegd/promocard/internal/entity"
	"github.com/ds124wfegd/promocard/internal/pkg/assets"
	"github.com/ds124wfegd/promocard/internal/pkg/fonts"
	"github.com/ds124wfegd/promocard/internal/pkg/storage"
	"github.com/sirupsen/logrus"
)

type ImageProcessor interface {
	// Process composes the card and returns it without writing anything.
	Process(req entity.PromoRequest) (*image.NRGBA, error)
	// Render composes the card and saves it, returning the output path.
	Render(req entity.PromoRequest) (string, error)
}

type imageProcessor struct {
	layout  config.LayoutConfig
	paths   config.AssetsConfig
	output  string
	loader  assets.Loader
	assets  storage.FileStorage
	results storage.FileStorage
}

// NewImageProcessor wires the pipeline. Logos and the font are read from
// assetStorage, results are written to outputStorage.
func NewImageProcessor(cfg *config.Config, loader assets.Loader, assetStorage, outputStorage storage.FileStorage) ImageProcessor {
	return &imageProcessor{
		layout:  cfg.Layout,
		paths:   cfg.Assets,
		output:  cfg.Output.Path,
		loader:  loader,
		assets:  assetStorage,
		results: outputStorage,
	}
}

func (p *imageProcessor) Process(req entity.PromoRequest) (*image.NRGBA, error) {
	log := logrus.WithField("product", req.ProductPath)

	product, err := p.loader.LoadProduct(req.ProductPath)
	if err != nil {
		return nil, err
	}

	canvas := BuildCanvas(product, p.layout.Padding)
	log.WithFields(logrus.Fields{
		"stage":  "canvas",
		"width":  canvas.Bounds().Dx(),
		"height": canvas.Bounds().Dy(),
	}).Debug("canvas built")

	topLogo, err := p.loader.Load(p.paths.TopLogo)
	if err != nil {
		return nil, fmt.Errorf("top logo: %w", err)
	}
	canvas = PlaceTopLogo(canvas, topLogo, p.layout.LogoScale, p.layout.Margin)
	log.WithField("stage", "top_logo").Debug("top logo placed")

	square := MakeSquare(canvas)
	log.WithFields(logrus.Fields{
		"stage": "square",
		"side":  square.Bounds().Dx(),
	}).Debug("canvas squared")

	bottomLogo, err := p.loader.Load(p.paths.BottomLogo)
	if err != nil {
		return nil, fmt.Errorf("bottom logo: %w", err)
	}
	square = PlaceBottomLogo(square, bottomLogo)
	log.WithField("stage", "bottom_logo").Debug("bottom logo placed")

	b := square.Bounds()
	face := fonts.Resolve(p.assets, p.paths.Font, BadgeFontSize(Badge(b.Dx(), b.Dy())))
	defer face.Close()
	g := DrawPriceBadge(square, req.Price, face)
	log.WithFields(logrus.Fields{
		"stage": "badge",
		"x1":    g.X1,
		"y1":    g.Y1,
		"label": entity.PriceLabel(req.Price),
	}).Debug("price badge drawn")

	return square, nil
}

func (p *imageProcessor) Render(req entity.PromoRequest) (string, error) {
	img, err := p.Process(req)
	if err != nil {
		return "", err
	}

	out := req.OutputPath
	if out == "" {
		out = p.output
	}

	if err := Save(p.results, img, out); err != nil {
		return "", err
	}

	logrus.WithField("output", p.results.Path(out)).Info("card saved")
	return out, nil
}
