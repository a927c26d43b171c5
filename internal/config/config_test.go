package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

const validYAML = `
server:
  host: "127.0.0.1"
  port: 9090
tailscale:
  enabled: true
  hostname: "lifts"
  state_dir: "/var/lib/liftplan"
auth:
  api_key: "test-key-123"
cache:
  backend: "redis"
  size: 64
  ttl: "2h"
  redis:
    addr: "redis:6379"
    db: 2
`

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

// TestLoadValid verifies that a well-formed YAML config loads with all fields populated.
func TestLoadValid(t *testing.T) {
	cfg, err := Load(writeTemp(t, validYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Addr() != "127.0.0.1:9090" {
		t.Errorf("server addr = %q, want %q", cfg.Server.Addr(), "127.0.0.1:9090")
	}
	if !cfg.Tailscale.Enabled || cfg.Tailscale.Hostname != "lifts" {
		t.Errorf("tailscale = %+v", cfg.Tailscale)
	}
	if cfg.Tailscale.StateDir != "/var/lib/liftplan" {
		t.Errorf("tailscale.state_dir = %q", cfg.Tailscale.StateDir)
	}
	if cfg.Auth.APIKey != "test-key-123" {
		t.Errorf("auth.api_key = %q, want %q", cfg.Auth.APIKey, "test-key-123")
	}
	if cfg.Cache.Backend != "redis" || cfg.Cache.Size != 64 {
		t.Errorf("cache = %+v", cfg.Cache)
	}
	if cfg.Cache.TTL != 2*time.Hour {
		t.Errorf("cache.ttl = %v, want 2h", cfg.Cache.TTL)
	}
	if cfg.Cache.Redis.Addr != "redis:6379" || cfg.Cache.Redis.DB != 2 {
		t.Errorf("cache.redis = %+v", cfg.Cache.Redis)
	}
}

// TestLoadMissingFileUsesDefaults verifies that a missing config file falls
// back to built-in defaults so the generator can run without any setup.
func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("server.port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Cache.Backend != "memory" || cfg.Cache.Size != 128 {
		t.Errorf("cache = %+v, want memory/128", cfg.Cache)
	}
	if cfg.Auth.APIKey != "" {
		t.Errorf("auth.api_key = %q, want empty", cfg.Auth.APIKey)
	}
}

// TestLoadPartialKeepsDefaults verifies unspecified sections keep defaults.
func TestLoadPartialKeepsDefaults(t *testing.T) {
	cfg, err := Load(writeTemp(t, "server:\n  port: 7000\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 7000 || cfg.Server.Host != "0.0.0.0" {
		t.Errorf("server = %+v", cfg.Server)
	}
	if cfg.Cache.TTL != 24*time.Hour {
		t.Errorf("cache.ttl = %v, want 24h", cfg.Cache.TTL)
	}
}

// TestEnvOverride verifies that LIFTPLAN_ env vars take precedence over YAML values.
func TestEnvOverride(t *testing.T) {
	t.Setenv("LIFTPLAN_SERVER_PORT", "9999")
	t.Setenv("LIFTPLAN_AUTH_API_KEY", "env-key")
	t.Setenv("LIFTPLAN_CACHE_BACKEND", "memory")
	t.Setenv("LIFTPLAN_CACHE_TTL", "30m")
	t.Setenv("LIFTPLAN_TAILSCALE_ENABLED", "false")

	cfg, err := Load(writeTemp(t, validYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 9999 {
		t.Errorf("server.port = %d, want 9999", cfg.Server.Port)
	}
	if cfg.Auth.APIKey != "env-key" {
		t.Errorf("auth.api_key = %q, want %q", cfg.Auth.APIKey, "env-key")
	}
	if cfg.Cache.Backend != "memory" || cfg.Cache.TTL != 30*time.Minute {
		t.Errorf("cache = %+v", cfg.Cache)
	}
	if cfg.Tailscale.Enabled {
		t.Error("tailscale.enabled should be overridden to false")
	}
	// Unchanged fields keep YAML values
	if cfg.Server.Host != "127.0.0.1" {
		t.Errorf("server.host = %q, want %q", cfg.Server.Host, "127.0.0.1")
	}
}

// TestValidationBadCacheBackend verifies unknown cache backends are rejected.
func TestValidationBadCacheBackend(t *testing.T) {
	_, err := Load(writeTemp(t, "cache:\n  backend: memcached\n"))
	if err == nil {
		t.Fatal("expected validation error for unknown cache backend")
	}
}

// TestValidationBadPort verifies out-of-range ports are rejected.
func TestValidationBadPort(t *testing.T) {
	_, err := Load(writeTemp(t, "server:\n  port: 70000\n"))
	if err == nil {
		t.Fatal("expected validation error for port 70000")
	}
}

// TestValidationTailscaleHostname verifies tailscale needs a hostname.
func TestValidationTailscaleHostname(t *testing.T) {
	_, err := Load(writeTemp(t, "tailscale:\n  enabled: true\n  hostname: \"\"\n"))
	if err == nil {
		t.Fatal("expected validation error for empty tailscale hostname")
	}
}

// TestLoadInvalidYAML verifies malformed YAML returns a parse error.
func TestLoadInvalidYAML(t *testing.T) {
	_, err := Load(writeTemp(t, "server: [unclosed\n"))
	if err == nil {
		t.Fatal("expected parse error")
	}
}
