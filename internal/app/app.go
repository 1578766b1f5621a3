package app

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/afero"

	"github.com/vrclub/kiosk/internal/admin"
	"github.com/vrclub/kiosk/internal/assets"
	"github.com/vrclub/kiosk/internal/catalog"
	"github.com/vrclub/kiosk/internal/config"
	"github.com/vrclub/kiosk/internal/idle"
	"github.com/vrclub/kiosk/internal/logging"
	"github.com/vrclub/kiosk/internal/persist"
	"github.com/vrclub/kiosk/internal/picker"
	"github.com/vrclub/kiosk/internal/prefs"
	"github.com/vrclub/kiosk/internal/ui"
)

// Options configure the kiosk application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/kiosk/prefs.toml
	TickEvery  int    // seconds; zero uses default
}

// Run boots the kiosk TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load kiosk config: %w", err)
	}

	log, logErr := logging.Open(cfg.LogPath)
	defer func() { _ = log.Sync() }()
	if logErr != nil {
		// The nop fallback keeps the kiosk up; note it once after the
		// alternate screen is torn down.
		defer fmt.Fprintln(os.Stderr, "kiosk: logging disabled:", logErr)
	}

	userPrefs, _ := prefs.Load(opts.PrefsPath)

	fs := afero.NewOsFs()
	store := catalog.NewStore(fs, cfg.CatalogPath)
	if err := store.Load(); err != nil {
		// A kiosk with an empty shelf still runs; the operator panel can
		// populate it.
		log.Warnw("catalog load failed", "path", cfg.CatalogPath, "error", err)
	}

	session := admin.NewSession(
		store,
		assets.NewDirImporter(fs, cfg.AssetsRoot),
		persist.NewFileWriter(fs, cfg.CatalogPath),
		cfg.AdminPIN,
		log,
	)

	ctl := idle.NewController(cfg.IdleTimeout, idle.NewPicker(time.Now().UnixNano()))
	ctl.Start(time.Now())

	uiOpts := ui.Options{
		Context:    ctx,
		Store:      store,
		Session:    session,
		Idle:       ctl,
		FilePicker: picker.Native{},
		Log:        log,
		ThemeName:  userPrefs.Theme,
		PrefsPath:  opts.PrefsPath,
		Filter:     userPrefs.LastFilter,
	}
	if opts.TickEvery > 0 {
		uiOpts.TickEvery = time.Duration(opts.TickEvery) * time.Second
	}

	log.Infow("kiosk starting", "catalog", cfg.CatalogPath, "assets", cfg.AssetsRoot, "games", store.Len())
	return ui.Run(uiOpts)
}
