package main

import (
	"context"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Aram-az/ESSDev-Lifeyears/config"
	"github.com/Aram-az/ESSDev-Lifeyears/fixtures"
	"github.com/Aram-az/ESSDev-Lifeyears/middlewares"
	"github.com/Aram-az/ESSDev-Lifeyears/models"
	"github.com/Aram-az/ESSDev-Lifeyears/routes"
	"github.com/Aram-az/ESSDev-Lifeyears/services"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const shutdownTimeout = 5 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the mock API gateway",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return runServe(ctx, cfg, logger)
	},
}

// newGateway builds the gin engine for cfg.
func newGateway(c config.Config, log *zap.Logger) (*gin.Engine, error) {
	if c.Server.GinMode != "" {
		gin.SetMode(c.Server.GinMode)
	}

	var fsys fs.FS = fixtures.FS
	if c.Fixtures.Dir != "" {
		fsys = os.DirFS(c.Fixtures.Dir)
	}
	store := services.LoadFixtureStore(fsys, log, time.Now)

	var today time.Time
	if c.Dashboard.Today != "" {
		d, err := time.Parse(models.DateLayout, c.Dashboard.Today)
		if err != nil {
			return nil, errors.Wrap(err, "invalid dashboard today")
		}
		today = d
	}

	return routes.SetupRouter(routes.Deps{
		Store:          store,
		Logger:         log,
		Metrics:        middlewares.NewMetrics(),
		DashboardToday: today,
	}), nil
}

func runServe(ctx context.Context, c config.Config, log *zap.Logger) error {
	r, err := newGateway(c, log)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              c.Server.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("mock API listening", zap.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return errors.Wrap(err, "server stopped")
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "shutdown")
	}
	return nil
}
