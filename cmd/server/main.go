// entry point to the http service
package main

import (
	"os"

	"github.com/ds124wfegd/promocard/config"
	"github.com/ds124wfegd/promocard/internal/appServer"
	"github.com/ds124wfegd/promocard/internal/pkg/logger"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.ParseConfig(config.LoadConfig())
	if err != nil {
		logrus.Fatalf("Cannot parse config. Error: {%s}", err.Error())
	}

	cfg.Log.JSON = true
	logger.Setup(cfg.Log, os.Stderr)

	appServer.NewServer(cfg)
}
