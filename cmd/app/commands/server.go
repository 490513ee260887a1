package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/allisson/coursecatalog/internal/app"
	"github.com/allisson/coursecatalog/internal/config"
)

const spaceLookupTimeout = 5 * time.Second

// runner is a server started and stopped by RunServer.
type runner interface {
	Start(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

// RunServer serves catalogue pages (and metrics, when enabled) until SIGINT,
// SIGTERM or the first server failure, then stops every server within
// ShutdownTimeout.
func RunServer(ctx context.Context, version string) error {
	cfg := config.Load()
	gin.SetMode(cfg.GetGinMode())

	container := app.NewContainer(cfg)
	logger := container.Logger()
	logger.Info("starting server", slog.String("version", version))
	defer closeContainer(container, logger)

	server, err := container.HTTPServer()
	if err != nil {
		return fmt.Errorf("failed to initialize HTTP server: %w", err)
	}
	runners := []runner{server}

	metricsServer, err := container.MetricsServer()
	if err != nil {
		return fmt.Errorf("failed to initialize metrics server: %w", err)
	}
	if metricsServer != nil {
		runners = append(runners, metricsServer)
	}

	logConnectedSpace(ctx, container, logger)

	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	for _, r := range runners {
		g.Go(func() error {
			return r.Start(gctx)
		})
	}
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("stopping servers", slog.Any("cause", context.Cause(gctx)))
		return shutdownRunners(cfg.ShutdownTimeout, runners)
	})

	return g.Wait()
}

func shutdownRunners(timeout time.Duration, runners []runner) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	var shutdownErrors []error
	for _, r := range runners {
		if err := r.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, err)
		}
	}
	return errors.Join(shutdownErrors...)
}

// logConnectedSpace reports which space pages will be served from. Failures
// are not fatal: pages answer 503 until a space is reachable.
func logConnectedSpace(ctx context.Context, container *app.Container, logger *slog.Logger) {
	gateway, err := container.ContentGateway()
	if err != nil {
		logger.Warn("content gateway unavailable", slog.Any("error", err))
		return
	}

	ctx, cancel := context.WithTimeout(ctx, spaceLookupTimeout)
	defer cancel()

	space, err := gateway.Space(ctx)
	if err != nil {
		logger.Warn("no space connected", slog.Any("error", err))
		return
	}
	logger.Info("space connected",
		slog.String("space_id", space.Sys.ID),
		slog.String("space_name", space.Name),
	)
}
