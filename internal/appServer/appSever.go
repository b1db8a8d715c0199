// launching the http server around the card pipeline
package appServer

import (
	"context"
	"crypto/tls"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/ds124wfegd/promocard/config"
	"github.com/ds124wfegd/promocard/internal/pkg/assets"
	"github.com/ds124wfegd/promocard/internal/pkg/processor"
	"github.com/ds124wfegd/promocard/internal/pkg/storage"
	"github.com/ds124wfegd/promocard/internal/service"
	"github.com/ds124wfegd/promocard/internal/transport"
	"github.com/gin-gonic/gin"

	"github.com/sirupsen/logrus"
)

type Server struct {
	httpServer *http.Server
}

func (s *Server) Run(cfg *config.Config, handler http.Handler) error {
	s.httpServer = &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           handler,
		MaxHeaderBytes:    1 << 20,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       cfg.Server.Idle_timeout,
		ReadHeaderTimeout: 3 * time.Second,
		TLSConfig:         &tls.Config{MinVersion: tls.VersionTLS12},
		ErrorLog:          log.New(os.Stderr, "SERVER ERROR: ", log.LstdFlags),
	}
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// NewHandler wires storage, pipeline and routes.
func NewHandler(cfg *config.Config) http.Handler {
	assetStorage := storage.NewFileStorage(cfg.Assets.BaseDir)
	uploads := storage.NewFileStorage(filepath.Join(os.TempDir(), "promocard"))
	loader := assets.NewLoader(assetStorage, uploads)
	imgProcessor := processor.NewImageProcessor(cfg, loader, assetStorage, uploads)
	promoService := service.NewPromoService(imgProcessor, uploads)
	promoHandler := transport.NewPromoHandler(promoService)

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	return transport.InitRoutes(promoHandler, cfg.Server.MaxUploadMB<<20)
}

func NewServer(cfg *config.Config) {

	srv := new(Server)
	go func() {
		if err := srv.Run(cfg, NewHandler(cfg)); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("error occured while running http server: %s", err.Error())
		}
	}()

	logrus.WithField("port", cfg.Server.Port).Print("App Started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	logrus.Print("App Shutting Down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logrus.Errorf("error occured on server shutting down: %s", err.Error())
	}

}
