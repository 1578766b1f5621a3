// Package persist writes the catalog document. The boundary is a
// whole-collection overwrite: every save receives the entire ordered
// collection, pretty-printed; there are no per-record updates.
package persist

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/vrclub/kiosk/internal/catalog"
)

// Writer is the persistence collaborator. It sits behind an interface so
// an incremental backend could be substituted without touching the admin
// session logic.
type Writer interface {
	SaveCollection(ctx context.Context, records []catalog.GameRecord) error
}

// FileWriter writes the collection as pretty-printed JSON through a temp
// file and rename, so a failed write never leaves a partial document.
type FileWriter struct {
	fs   afero.Fs
	path string
}

// NewFileWriter returns a writer targeting the catalog document at path.
func NewFileWriter(fs afero.Fs, path string) *FileWriter {
	return &FileWriter{fs: fs, path: path}
}

// SaveCollection implements Writer.
func (w *FileWriter) SaveCollection(ctx context.Context, records []catalog.GameRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if records == nil {
		records = []catalog.GameRecord{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	data = append(data, '\n')

	if err := w.fs.MkdirAll(filepath.Dir(w.path), 0o755); err != nil {
		return fmt.Errorf("create catalog dir: %w", err)
	}
	tmp := w.path + ".tmp"
	if err := afero.WriteFile(w.fs, tmp, data, 0o644); err != nil {
		return fmt.Errorf("write catalog: %w", err)
	}
	if err := w.fs.Rename(tmp, w.path); err != nil {
		return fmt.Errorf("replace catalog: %w", err)
	}
	return nil
}
