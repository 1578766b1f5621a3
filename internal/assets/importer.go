// Package assets copies operator-selected cover images and gameplay videos
// into the kiosk's assets tree and returns the served path the catalog
// stores as cover/video.
package assets

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// ErrUnsupportedExt is returned when the selected file's extension is not
// in the allowed class.
var ErrUnsupportedExt = errors.New("unsupported file extension")

var (
	videoExts = map[string]bool{"mp4": true, "webm": true}
	imageExts = map[string]bool{"jpg": true, "jpeg": true, "png": true, "webp": true}
)

// Importer is the asset-import collaborator the admin session calls during
// save. Both methods return the served path on success; any failure comes
// back as a single error the operator can be shown verbatim.
type Importer interface {
	ImportImage(ctx context.Context, src, id string) (string, error)
	ImportVideo(ctx context.Context, src, id string) (string, error)
}

// DirImporter copies assets into root on fs. Covers land under
// assets/covers/{id}.{ext}, videos under assets/videos/{id}.mp4.
type DirImporter struct {
	fs   afero.Fs
	root string
}

// NewDirImporter returns an importer writing under root.
func NewDirImporter(fs afero.Fs, root string) *DirImporter {
	return &DirImporter{fs: fs, root: root}
}

// ImportImage copies a cover image, keeping its extension.
func (im *DirImporter) ImportImage(ctx context.Context, src, id string) (string, error) {
	ext := fileExt(src)
	if ext == "" {
		ext = "jpg"
	}
	if !imageExts[ext] {
		return "", fmt.Errorf("import image %q: %w: .%s", src, ErrUnsupportedExt, ext)
	}
	served := path.Join("assets", "covers", id+"."+ext)
	if err := im.copy(ctx, src, served); err != nil {
		return "", fmt.Errorf("import image %q: %w", src, err)
	}
	return served, nil
}

// ImportVideo copies a gameplay video. The destination is always named
// {id}.mp4 regardless of the source extension; that is the path the
// legacy video sentinel resolves to.
func (im *DirImporter) ImportVideo(ctx context.Context, src, id string) (string, error) {
	ext := fileExt(src)
	if !videoExts[ext] {
		return "", fmt.Errorf("import video %q: %w: .%s", src, ErrUnsupportedExt, ext)
	}
	served := path.Join("assets", "videos", id+".mp4")
	if err := im.copy(ctx, src, served); err != nil {
		return "", fmt.Errorf("import video %q: %w", src, err)
	}
	return served, nil
}

func (im *DirImporter) copy(ctx context.Context, src, served string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	dest := filepath.Join(im.root, filepath.FromSlash(served))
	if err := im.fs.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return fmt.Errorf("create asset dir: %w", err)
	}
	in, err := im.fs.Open(src)
	if err != nil {
		return fmt.Errorf("open source: %w", err)
	}
	defer in.Close()

	out, err := im.fs.Create(dest)
	if err != nil {
		return fmt.Errorf("create destination: %w", err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copy: %w", err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("close destination: %w", err)
	}
	return nil
}

func fileExt(p string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(p), "."))
}
