package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.AdminPIN != defaultAdminPIN {
		t.Fatalf("AdminPIN = %q, want %q", cfg.AdminPIN, defaultAdminPIN)
	}
	if cfg.IdleTimeout != 180*time.Second {
		t.Fatalf("IdleTimeout = %v, want 180s", cfg.IdleTimeout)
	}
	wantData, err := expandPath(defaultDataDir)
	if err != nil {
		t.Fatalf("expandPath(defaultDataDir) returned error: %v", err)
	}
	if cfg.CatalogPath != filepath.Join(wantData, "games.json") {
		t.Fatalf("CatalogPath = %q, want %q", cfg.CatalogPath, filepath.Join(wantData, "games.json"))
	}
	if cfg.AssetsRoot != wantData {
		t.Fatalf("AssetsRoot = %q, want %q", cfg.AssetsRoot, wantData)
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
catalog_path = "  ~/kiosk/games.json  "
assets_root = "  ~/kiosk  "
admin_pin = "9876"
idle_timeout_seconds = 60
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !strings.HasPrefix(cfg.CatalogPath, home) {
		t.Fatalf("CatalogPath = %q, want it under HOME %q", cfg.CatalogPath, home)
	}
	if cfg.AdminPIN != "9876" {
		t.Fatalf("AdminPIN = %q, want %q", cfg.AdminPIN, "9876")
	}
	if cfg.IdleTimeout != time.Minute {
		t.Fatalf("IdleTimeout = %v, want 1m", cfg.IdleTimeout)
	}
}

func TestLoad_RejectsMalformedTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("admin_pin = [broken"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("Load accepted malformed TOML")
	}
}
