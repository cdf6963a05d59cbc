package main

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/deppfellow/northwind/internal/config"
	"github.com/deppfellow/northwind/internal/logger"
)

func unreachableConfig() *config.Config {
	obs := config.DefaultObservabilityConfig()
	obs.ServiceName = config.ServiceName
	obs.Environment = "test"

	return &config.Config{
		Primary: config.Primary{Env: "test"},
		Server: config.ServerConfig{
			Port:               "0",
			ReadTimeout:        5,
			WriteTimeout:       5,
			IdleTimeout:        5,
			CORSAllowedOrigins: []string{"*"},
		},
		Database: config.DatabaseConfig{
			Host:            "127.0.0.1",
			Port:            1,
			User:            "northwind",
			Password:        "northwind",
			Name:            "northwind",
			SSLMode:         "disable",
			MaxOpenConns:    1,
			MaxIdleConns:    1,
			ConnMaxLifetime: 60,
			ConnMaxIdleTime: 60,
		},
		Auth:          config.AuthConfig{SecretKey: "sk_test"},
		Observability: obs,
	}
}

func TestServe_ReturnsBootFailure(t *testing.T) {
	cfg := unreachableConfig()
	log := zerolog.Nop()
	svc := logger.NewLoggerService(cfg.Observability)
	defer svc.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := serve(ctx, cfg, &log, svc)
	if err == nil {
		t.Fatal("expected an error when the database is unreachable")
	}
	if !strings.Contains(err.Error(), "migrate database") {
		t.Fatalf("unexpected error: %v", err)
	}
}
