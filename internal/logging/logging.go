// Package logging builds the kiosk's file-backed logger. The terminal
// belongs to the TUI, so nothing here may write to stdout or stderr.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Open returns a sugared logger writing JSON lines to path. An empty path
// yields a nop logger (useful for tests); a path that cannot be prepared
// also degrades to nop along with the error, so logging failures never
// take the kiosk down.
func Open(path string) (*zap.SugaredLogger, error) {
	if path == "" {
		return zap.NewNop().Sugar(), nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return zap.NewNop().Sugar(), fmt.Errorf("create log dir: %w", err)
	}

	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop().Sugar(), fmt.Errorf("open log: %w", err)
	}
	return logger.Sugar(), nil
}
