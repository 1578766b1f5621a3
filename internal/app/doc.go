// Package app provides the orchestration layer for the kiosk application.
//
// # Overview
//
// This package wires together configuration, the catalog store, the admin
// session, idle detection, and the UI to create the complete kiosk
// experience. It serves as the composition root where all dependencies are
// initialized and connected.
//
// # Architecture
//
// The app package follows a simple initialization pattern:
//
//  1. Load kiosk configuration from ~/.config/kiosk/config.toml
//  2. Open the file-backed logger (the terminal belongs to the TUI)
//  3. Load operator preferences (theme, last filter)
//  4. Create the catalog store and perform the initial load
//  5. Build the admin session over the store, asset importer, and writer
//  6. Start the idle controller with the configured timeout
//  7. Start the TUI and block until the operator exits or context cancels
//
// # Error Handling
//
// The app package distinguishes between fatal and recoverable errors:
//
// Fatal errors (returned from Run):
//   - Configuration file present but invalid
//
// Recoverable errors (logged, kiosk keeps running):
//   - Missing or unreadable catalog document (starts with an empty shelf)
//   - Logger that cannot be opened (degrades to a nop logger)
//   - Preferences that cannot be read (defaults apply)
//
// A kiosk on a club floor must survive a missing data file; the operator
// panel can rebuild the catalog in place.
//
// # Configuration
//
// The Options struct allows callers to customize:
//
//   - ConfigPath: Path to config.toml (default: ~/.config/kiosk/config.toml)
//   - PrefsPath: Path to prefs.toml (default: ~/.config/kiosk/prefs.toml)
//   - TickEvery: UI refresh interval in seconds (default: 1 second)
//
// # Design Rationale
//
// This package intentionally keeps orchestration logic minimal and focused.
// Business logic lives in domain packages (catalog, admin, idle, ui).
// The app package simply connects these pieces with sensible defaults for
// the single-terminal, unattended kiosk use case.
package app
