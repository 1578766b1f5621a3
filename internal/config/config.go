package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the kiosk's installation settings.
type Config struct {
	CatalogPath string        // the games.json document
	AssetsRoot  string        // directory the served assets/ tree lives under
	LogPath     string        // kiosk log file
	AdminPIN    string        // operator panel PIN
	IdleTimeout time.Duration // inactivity before attract mode
}

const (
	defaultConfigPath  = "~/.config/kiosk/config.toml"
	defaultDataDir     = "~/.local/share/kiosk"
	defaultAdminPIN    = "1234"
	defaultIdleSeconds = 180
)

// Load locates and parses the kiosk config, falling back to defaults when
// missing. A kiosk with no config file runs entirely out of the default
// data directory.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := defaults()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		CatalogPath string `toml:"catalog_path"`
		AssetsRoot  string `toml:"assets_root"`
		LogPath     string `toml:"log_path"`
		AdminPIN    string `toml:"admin_pin"`
		IdleSeconds int    `toml:"idle_timeout_seconds"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.CatalogPath); v != "" {
		cfg.CatalogPath = mustExpand(v)
	}
	if v := strings.TrimSpace(raw.AssetsRoot); v != "" {
		cfg.AssetsRoot = mustExpand(v)
	}
	if v := strings.TrimSpace(raw.LogPath); v != "" {
		cfg.LogPath = mustExpand(v)
	}
	if v := strings.TrimSpace(raw.AdminPIN); v != "" {
		cfg.AdminPIN = v
	}
	if raw.IdleSeconds > 0 {
		cfg.IdleTimeout = time.Duration(raw.IdleSeconds) * time.Second
	}
	return cfg, nil
}

func defaults() Config {
	dataDir := mustExpand(defaultDataDir)
	return Config{
		CatalogPath: filepath.Join(dataDir, "games.json"),
		AssetsRoot:  dataDir,
		LogPath:     filepath.Join(dataDir, "kiosk.log"),
		AdminPIN:    defaultAdminPIN,
		IdleTimeout: defaultIdleSeconds * time.Second,
	}
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
