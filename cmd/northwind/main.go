// Command northwind serves the Northwind customers, shippers and products
// tables over a REST API backed by the generic DAO engine.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/deppfellow/northwind/internal/config"
	"github.com/deppfellow/northwind/internal/database"
	"github.com/deppfellow/northwind/internal/handler"
	"github.com/deppfellow/northwind/internal/logger"
	"github.com/deppfellow/northwind/internal/repository"
	"github.com/deppfellow/northwind/internal/router"
	"github.com/deppfellow/northwind/internal/server"
	"github.com/deppfellow/northwind/internal/service"
)

const shutdownTimeout = 30 * time.Second

func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

// run owns every deferred cleanup so a failed boot still flushes New Relic
// and releases the signal handler before main exits.
func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		return err
	}

	loggerService := logger.NewLoggerService(cfg.Observability)
	defer loggerService.Shutdown()

	log := logger.NewLoggerWithService(cfg.Observability, loggerService)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := serve(ctx, cfg, &log, loggerService); err != nil {
		log.Error().Err(err).Msg("northwind stopped with an error")
		return err
	}

	log.Info().Msg("server exited properly")
	return nil
}

// serve migrates the schema, wires the HTTP stack and blocks until ctx is
// done or the listener fails, then shuts the server down.
func serve(ctx context.Context, cfg *config.Config, log *zerolog.Logger, loggerService *logger.LoggerService) error {
	if err := database.Migrate(ctx, log, cfg); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	srv, err := server.New(cfg, log, loggerService)
	if err != nil {
		return fmt.Errorf("initialize server: %w", err)
	}

	repos, err := repository.NewRepositories(srv)
	if err != nil {
		_ = srv.Shutdown(ctx)
		return fmt.Errorf("build repositories: %w", err)
	}

	services, err := service.NewService(srv, repos)
	if err != nil {
		_ = srv.Shutdown(ctx)
		return fmt.Errorf("create services: %w", err)
	}

	handlers := handler.NewHandlers(srv, services)
	r := router.NewRouter(srv, handlers)

	srv.SetupHTTPServer(r)

	serveErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	var runErr error
	select {
	case err := <-serveErr:
		if err != nil {
			runErr = fmt.Errorf("server stopped unexpectedly: %w", err)
		}
	case <-ctx.Done():
		log.Info().Msg("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}

	return runErr
}
