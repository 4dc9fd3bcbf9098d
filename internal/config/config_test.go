package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	if cfg.Storage != BackendFile {
		t.Errorf("expected default backend %q, got %q", BackendFile, cfg.Storage)
	}
	if cfg.SheetsTimeout != 7*time.Second {
		t.Errorf("expected default timeout 7s, got %v", cfg.SheetsTimeout)
	}
	if cfg.SheetsEndpoint != "" {
		t.Errorf("expected empty sheets endpoint, got %q", cfg.SheetsEndpoint)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("POS_STORAGE", BackendRedis)
	t.Setenv("REDIS_ADDR", "10.0.0.5:6379")
	t.Setenv("SHEETS_TIMEOUT_MS", "1500")

	cfg := Load()
	if cfg.Storage != BackendRedis {
		t.Errorf("expected redis backend, got %q", cfg.Storage)
	}
	if cfg.RedisAddr != "10.0.0.5:6379" {
		t.Errorf("unexpected redis addr %q", cfg.RedisAddr)
	}
	if cfg.SheetsTimeout != 1500*time.Millisecond {
		t.Errorf("expected 1.5s timeout, got %v", cfg.SheetsTimeout)
	}
}

func TestLoad_BadTimeoutFallsBack(t *testing.T) {
	t.Setenv("SHEETS_TIMEOUT_MS", "soon")

	if cfg := Load(); cfg.SheetsTimeout != 7*time.Second {
		t.Errorf("expected fallback timeout 7s, got %v", cfg.SheetsTimeout)
	}
}
