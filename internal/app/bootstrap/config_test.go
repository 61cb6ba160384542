package bootstrap

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigDefaultsAndEnvOverrides(t *testing.T) {
	t.Setenv("CONNECTION_STRING", "postgres://env-host/rentmy")
	t.Setenv("TOKEN_SECRET", "env-secret")
	t.Setenv("HTTP_PORT", "9999")
	t.Setenv("BCRYPT_COST", "10")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.ConnectionString != "postgres://env-host/rentmy" {
		t.Fatalf("env connection string not applied: %q", cfg.ConnectionString)
	}
	if cfg.TokenSecret != "env-secret" {
		t.Fatalf("env token secret not applied: %q", cfg.TokenSecret)
	}
	if cfg.HTTPPort != 9999 {
		t.Fatalf("env port not applied: %d", cfg.HTTPPort)
	}
	if cfg.BcryptCost != 10 {
		t.Fatalf("env bcrypt cost not applied: %d", cfg.BcryptCost)
	}
}

func TestLoadConfigReadsFileThenEnvWins(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	raw := []byte(`
service:
  id: rentmy-api-test
  http_port: 8181
dependencies:
  connection_string: "postgres://file-host/rentmy"
auth:
  token_secret: "file-secret"
  bcrypt_cost: 10
`)
	if err := os.WriteFile(path, raw, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("TOKEN_SECRET", "env-secret")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.ServiceID != "rentmy-api-test" {
		t.Fatalf("file service id not applied: %q", cfg.ServiceID)
	}
	if cfg.HTTPPort != 8181 {
		t.Fatalf("file port not applied: %d", cfg.HTTPPort)
	}
	if cfg.ConnectionString != "postgres://file-host/rentmy" {
		t.Fatalf("file connection string not applied: %q", cfg.ConnectionString)
	}
	if cfg.TokenSecret != "env-secret" {
		t.Fatalf("env must win over file: %q", cfg.TokenSecret)
	}
	if cfg.BcryptCost != 10 {
		t.Fatalf("file bcrypt cost not applied: %d", cfg.BcryptCost)
	}
}

func TestLoadConfigRequiresConnectionStringAndSecret(t *testing.T) {
	t.Setenv("CONNECTION_STRING", "")
	t.Setenv("TOKEN_SECRET", "")

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error without connection string")
	}

	t.Setenv("CONNECTION_STRING", "postgres://env-host/rentmy")
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error without token secret")
	}
}
