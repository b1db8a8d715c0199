// promocard composes a square promo card from a product photo and a price.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/ds124wfegd/promocard/config"
	"github.com/ds124wfegd/promocard/internal/entity"
	"github.com/ds124wfegd/promocard/internal/pkg/assets"
	"github.com/ds124wfegd/promocard/internal/pkg/logger"
	"github.com/ds124wfegd/promocard/internal/pkg/processor"
	"github.com/ds124wfegd/promocard/internal/pkg/storage"
	"github.com/ds124wfegd/promocard/internal/service"
	"github.com/sirupsen/logrus"
)

const usage = "Usage: promocard <product_image> <price> [result.png]"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, stdout io.Writer) int {
	if len(args) < 2 {
		fmt.Fprintln(stdout, usage)
		return 1
	}

	cfg, err := config.ParseConfig(config.LoadConfig())
	if err != nil {
		logrus.Errorf("Cannot parse config. Error: {%s}", err.Error())
		return 1
	}
	logger.Setup(cfg.Log, os.Stderr)

	req := entity.PromoRequest{ProductPath: args[0], Price: args[1]}
	if len(args) >= 3 {
		req.OutputPath = args[2]
	}

	assetStorage := storage.NewFileStorage(cfg.Assets.BaseDir)
	local := storage.NewFileStorage("")
	imgProcessor := processor.NewImageProcessor(cfg, assets.NewLoader(assetStorage, local), assetStorage, local)

	out, err := service.NewPromoService(imgProcessor, local).Render(req)
	if err != nil {
		logrus.WithField("product", req.ProductPath).Errorf("cannot build promo card: %v", err)
		return 1
	}

	fmt.Fprintf(stdout, "Done! Image saved: %s\n", out)
	return 0
}
