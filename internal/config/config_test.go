package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "8081" {
		t.Fatalf("default port = %q, want 8081", cfg.Port)
	}
	if cfg.SourceBackend != "csv" {
		t.Fatalf("default backend = %q, want csv", cfg.SourceBackend)
	}
	if cfg.CacheSize != 256 {
		t.Fatalf("default cache size = %d, want 256", cfg.CacheSize)
	}
	if cfg.CacheTTL != 10*time.Minute {
		t.Fatalf("default cache TTL = %v, want 10m", cfg.CacheTTL)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults must validate, got %v", err)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SOURCE_BACKEND", "memory")
	t.Setenv("CACHE_SIZE", "7")
	t.Setenv("CACHE_TTL", "30s")

	cfg := Load()
	if cfg.Port != "9090" || cfg.SourceBackend != "memory" {
		t.Fatalf("env overrides not applied: %+v", cfg)
	}
	if cfg.CacheSize != 7 || cfg.CacheTTL != 30*time.Second {
		t.Fatalf("cache overrides not applied: %+v", cfg)
	}
}

func TestValidateCollectsAllErrors(t *testing.T) {
	cfg := &Config{
		Port:          "not-a-port",
		SourceBackend: "carrier-pigeon",
		AMQPURL:       "http://wrong-scheme",
		CacheSize:     0,
		CacheTTL:      time.Millisecond,
	}

	err := cfg.Validate()
	if err == nil {
		t.Fatalf("expected validation failure")
	}
	msg := err.Error()
	for _, want := range []string{"invalid port", "invalid source backend", "AMQP URL scheme", "cache size", "cache TTL"} {
		if !strings.Contains(msg, want) {
			t.Fatalf("error %q missing %q", msg, want)
		}
	}
}

func TestValidateBackendRequirements(t *testing.T) {
	cases := []struct {
		mutate func(*Config)
		want   string
	}{
		{func(c *Config) { c.SourceBackend = "csv"; c.CSVPath = "" }, "CSV path"},
		{func(c *Config) { c.SourceBackend = "sqlite"; c.SQLiteDBPath = "" }, "SQLite database path"},
		{func(c *Config) { c.SourceBackend = "sheets" }, "GOOGLE_SPREADSHEET_ID"},
	}
	for i, tc := range cases {
		cfg := Load()
		tc.mutate(cfg)
		err := cfg.Validate()
		if err == nil || !strings.Contains(err.Error(), tc.want) {
			t.Fatalf("case %d: error %v missing %q", i, err, tc.want)
		}
	}
}
