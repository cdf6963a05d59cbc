package database

import (
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/deppfellow/northwind/internal/config"
)

func testDatabaseConfig() *config.DatabaseConfig {
	return &config.DatabaseConfig{
		Host:            "db.internal",
		Port:            5433,
		User:            "north wind",
		Password:        "p@ss word+/:?#",
		Name:            "northwind",
		SSLMode:         "disable",
		MaxOpenConns:    8,
		MaxIdleConns:    20,
		ConnMaxLifetime: 300,
		ConnMaxIdleTime: 60,
	}
}

func TestDSN_RoundTripsCredentials(t *testing.T) {
	cfg := testDatabaseConfig()

	parsed, err := pgconn.ParseConfig(DSN(cfg))
	if err != nil {
		t.Fatalf("ParseConfig(%q): %v", DSN(cfg), err)
	}

	if parsed.User != cfg.User {
		t.Errorf("user = %q, want %q", parsed.User, cfg.User)
	}
	if parsed.Password != cfg.Password {
		t.Errorf("password = %q, want %q", parsed.Password, cfg.Password)
	}
	if parsed.Host != cfg.Host || parsed.Port != uint16(cfg.Port) {
		t.Errorf("host = %s:%d", parsed.Host, parsed.Port)
	}
	if parsed.Database != cfg.Name {
		t.Errorf("database = %q, want %q", parsed.Database, cfg.Name)
	}
	if parsed.TLSConfig != nil {
		t.Error("sslmode=disable must not configure TLS")
	}
}

func TestPoolConfig_Sizing(t *testing.T) {
	pc, err := PoolConfig(testDatabaseConfig())
	if err != nil {
		t.Fatalf("PoolConfig: %v", err)
	}

	if pc.MaxConns != 8 {
		t.Errorf("MaxConns = %d, want 8", pc.MaxConns)
	}
	// MinConns is capped at MaxConns.
	if pc.MinConns != 8 {
		t.Errorf("MinConns = %d, want 8", pc.MinConns)
	}
	if pc.MaxConnLifetime != 300*time.Second {
		t.Errorf("MaxConnLifetime = %v", pc.MaxConnLifetime)
	}
	if pc.MaxConnIdleTime != time.Minute {
		t.Errorf("MaxConnIdleTime = %v", pc.MaxConnIdleTime)
	}
}
