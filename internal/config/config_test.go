package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"awards-board/internal/config"
)

func TestLoadDefaultsWithoutFile(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Server.Port != "8000" || cfg.Database.Driver != "sqlite" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Upload.MaxBytes != 10<<20 {
		t.Fatalf("expected default max bytes, got %d", cfg.Upload.MaxBytes)
	}
	if cfg.Upload.RatePerMinute != 10 || cfg.Upload.RateBurst != 3 {
		t.Fatalf("unexpected rate defaults: %+v", cfg.Upload)
	}
	if len(cfg.Upload.Extensions) != 2 {
		t.Fatalf("expected default extensions, got %v", cfg.Upload.Extensions)
	}
}

func TestLoadFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := []byte(`
server:
  port: "9090"
  mode: release
database:
  driver: postgres
  dsn: postgres://localhost/awards
redis:
  enabled: true
  backupKey: board:last
upload:
  secret: s3cret
`)
	if err := os.WriteFile(path, body, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("AWARDS_SERVER_PORT", "7070")
	t.Setenv("AWARDS_JWT_SECRET", "from-env")
	t.Setenv("AWARDS_ADMIN_DEFAULTPASSWORD", "Env@123")

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Server.Port != "7070" {
		t.Fatalf("expected env override, got %q", cfg.Server.Port)
	}
	if cfg.Server.Mode != "release" || cfg.Database.Driver != "postgres" {
		t.Fatalf("unexpected file values: %+v", cfg)
	}
	if !cfg.Redis.Enabled || cfg.Redis.BackupKey != "board:last" {
		t.Fatalf("unexpected redis config: %+v", cfg.Redis)
	}
	if cfg.JWT.Secret != "from-env" || cfg.Admin.DefaultPassword != "Env@123" {
		t.Fatalf("expected env secrets, got %+v %+v", cfg.JWT, cfg.Admin)
	}
	if cfg.Upload.Secret != "s3cret" || cfg.JWT.Expire != 24 {
		t.Fatalf("unexpected upload/jwt config: %+v %+v", cfg.Upload, cfg.JWT)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("server: [unclosed"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := config.Load(path); err == nil {
		t.Fatal("expected error for invalid yaml")
	}
}
