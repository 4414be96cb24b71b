package config_test

import (
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/org-service/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"DB_DRIVER", "POSTGRES_DSN", "MYSQL_DSN", "AUTH_JWT_SECRET", "AUTH_JWT_EXPIRATION_MS", "AUTH_BCRYPT_COST", "SEED_SAMPLE_DATA", "REDIS_DB"} {
		t.Setenv(key, "")
	}

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Database.Driver != config.DriverMemory {
		t.Errorf("expected memory driver without a DSN, got %q", cfg.Database.Driver)
	}
	if cfg.Auth.TokenTTL() != 24*time.Hour {
		t.Errorf("unexpected token ttl %v", cfg.Auth.TokenTTL())
	}
	if cfg.Auth.BcryptCost != bcrypt.DefaultCost {
		t.Errorf("unexpected bcrypt cost %d", cfg.Auth.BcryptCost)
	}
	if cfg.Auth.JWTSecret != "" {
		t.Errorf("secret must not have a default")
	}
	if cfg.Seed.SampleData {
		t.Errorf("seeding should be off by default")
	}
	if cfg.App.Addr() != "0.0.0.0:8080" {
		t.Errorf("unexpected addr %q", cfg.App.Addr())
	}
}

func TestLoadDriverSelection(t *testing.T) {
	tests := []struct {
		driver   string
		pgDSN    string
		mysqlDSN string
		want     string
	}{
		{driver: "", pgDSN: "postgres://localhost/org", want: config.DriverPostgres},
		{driver: "mysql", mysqlDSN: "user:pw@tcp(localhost:3306)/org", want: config.DriverMySQL},
		{driver: "MySQL", want: config.DriverMemory},
		{driver: "memory", pgDSN: "postgres://localhost/org", want: config.DriverMemory},
		{driver: "oracle", pgDSN: "postgres://localhost/org", want: config.DriverMemory},
	}

	for _, tt := range tests {
		t.Setenv("DB_DRIVER", tt.driver)
		t.Setenv("POSTGRES_DSN", tt.pgDSN)
		t.Setenv("MYSQL_DSN", tt.mysqlDSN)

		cfg, err := config.Load()
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		if cfg.Database.Driver != tt.want {
			t.Errorf("driver=%q: got %q, want %q", tt.driver, cfg.Database.Driver, tt.want)
		}
	}
}

func TestLoadParsesOverrides(t *testing.T) {
	t.Setenv("AUTH_JWT_EXPIRATION_MS", "1500")
	t.Setenv("AUTH_RATE_LIMIT_MAX", "5")
	t.Setenv("AUTH_RATE_LIMIT_WINDOW_SECONDS", "10")
	t.Setenv("HTTP_REQUEST_TIMEOUT_SECONDS", "not-a-number")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Auth.TokenTTL() != 1500*time.Millisecond {
		t.Errorf("unexpected ttl %v", cfg.Auth.TokenTTL())
	}
	if cfg.RateLimit.Window() != 10*time.Second || cfg.RateLimit.Max != 5 {
		t.Errorf("unexpected rate limit %+v", cfg.RateLimit)
	}
	if cfg.App.RequestTimeout() != 30*time.Second {
		t.Errorf("invalid int should fall back to default, got %v", cfg.App.RequestTimeout())
	}
}

func TestLoadRejectsMalformedNumbers(t *testing.T) {
	t.Setenv("AUTH_JWT_EXPIRATION_MS", "one day")
	if _, err := config.Load(); err == nil {
		t.Fatal("expected error for malformed expiration")
	}

	t.Setenv("AUTH_JWT_EXPIRATION_MS", "")
	t.Setenv("REDIS_DB", "zero")
	if _, err := config.Load(); err == nil {
		t.Fatal("expected error for malformed REDIS_DB")
	}
}
