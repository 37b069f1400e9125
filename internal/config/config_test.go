package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()
	if cfg.HTTPAddr != ":9091" {
		t.Fatalf("addr: %q", cfg.HTTPAddr)
	}
	if cfg.DatabaseURL != "" {
		t.Fatalf("database url default: %q", cfg.DatabaseURL)
	}
	if cfg.StatusCacheTTL != 5*time.Minute {
		t.Fatalf("cache ttl: %v", cfg.StatusCacheTTL)
	}
	if cfg.ShutdownTimeout != 5*time.Second {
		t.Fatalf("shutdown timeout: %v", cfg.ShutdownTimeout)
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":8000")
	t.Setenv("DISCOUNT_API_URL", "http://localhost:9000/discounts")
	t.Setenv("STATUS_CACHE_TTL_MIN", "1")
	t.Setenv("HTTP_CLIENT_TIMEOUT", "not a number")

	cfg := Load()
	if cfg.HTTPAddr != ":8000" {
		t.Fatalf("addr: %q", cfg.HTTPAddr)
	}
	if cfg.DiscountAPIURL != "http://localhost:9000/discounts" {
		t.Fatalf("discount url: %q", cfg.DiscountAPIURL)
	}
	if cfg.StatusCacheTTL != time.Minute {
		t.Fatalf("cache ttl: %v", cfg.StatusCacheTTL)
	}
	// некорректное значение откатывается к значению по умолчанию
	if cfg.HTTPClientTimeout != 30*time.Second {
		t.Fatalf("client timeout: %v", cfg.HTTPClientTimeout)
	}
}
