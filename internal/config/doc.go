// Package config handles loading and parsing the kiosk configuration file.
//
// # Overview
//
// The kiosk reads a single TOML file describing where its data lives: the
// catalog document, the assets tree, the log file, plus the operator PIN
// and the inactivity timeout before attract mode engages.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/kiosk/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// # Default Values
//
//   - Config file: ~/.config/kiosk/config.toml
//   - Catalog document: ~/.local/share/kiosk/games.json
//   - Assets root: ~/.local/share/kiosk
//   - Log file: ~/.local/share/kiosk/kiosk.log
//   - Admin PIN: 1234
//   - Idle timeout: 180 seconds
//
// # TOML Format
//
// Example config.toml:
//
//	catalog_path = "~/.local/share/kiosk/games.json"
//	assets_root = "~/.local/share/kiosk"
//	log_path = "~/.local/share/kiosk/kiosk.log"
//	admin_pin = "1234"
//	idle_timeout_seconds = 180
//
// Every field is optional. Tilde expansion is performed automatically.
//
// # Error Handling
//
// Load returns errors for path expansion failures, file read errors
// (except os.ErrNotExist, which triggers defaults) and TOML parsing
// errors. A missing config file is NOT an error - the kiosk works
// out-of-the-box from the default data directory.
package config
