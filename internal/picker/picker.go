// Package picker wraps the native file-selection dialog the operator uses
// to attach cover images and gameplay videos.
package picker

import (
	"errors"
	"fmt"

	"github.com/sqweek/dialog"
)

// Class selects the extension filter the dialog applies.
type Class int

const (
	ClassImage Class = iota
	ClassVideo
)

// Picker returns a single local file path. ok is false when the operator
// cancelled the dialog; cancellation is not an error.
type Picker interface {
	PickFile(class Class) (path string, ok bool, err error)
}

// Native shows the platform file dialog via sqweek/dialog.
type Native struct{}

// PickFile implements Picker.
func (Native) PickFile(class Class) (string, bool, error) {
	b := dialog.File()
	switch class {
	case ClassVideo:
		b = b.Title("Select gameplay video").Filter("Video", "mp4", "webm")
	default:
		b = b.Title("Select cover image").Filter("Image", "jpg", "jpeg", "png", "webp")
	}
	path, err := b.Load()
	if errors.Is(err, dialog.Cancelled) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("file dialog: %w", err)
	}
	return path, true, nil
}
