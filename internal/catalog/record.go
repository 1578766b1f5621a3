// Package catalog owns the ordered game collection shown on the kiosk:
// the record model, the snapshot store it lives in, and the tag filter
// projection over it.
package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// GameRecord is one entry in the kiosk catalog. The id is a stable slug
// derived from the name and never changes once assigned.
type GameRecord struct {
	ID          string
	Name        string
	Cover       string
	Video       string
	Description string
	Players     string
	Time        int
	Tags        []string
	Type        string
}

// HasTag reports whether the record carries tag (case-sensitive).
func (r GameRecord) HasTag(tag string) bool {
	for _, t := range r.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Clone returns a copy whose tag slice does not alias the receiver's.
func (r GameRecord) Clone() GameRecord {
	dup := r
	if len(r.Tags) > 0 {
		dup.Tags = make([]string, len(r.Tags))
		copy(dup.Tags, r.Tags)
	} else {
		dup.Tags = nil
	}
	return dup
}

// Slug derives a record id from a display name: lowercase, with every
// character outside [a-z0-9] replaced by an underscore.
func Slug(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}

// wireRecord is the document shape. Older documents carry video as the
// bool/"true" sentinel and time as a quoted number, so both decode loosely.
type wireRecord struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Cover       string          `json:"cover,omitempty"`
	Video       json.RawMessage `json:"video,omitempty"`
	Description string          `json:"description,omitempty"`
	Players     string          `json:"players,omitempty"`
	Time        json.RawMessage `json:"time,omitempty"`
	Tags        []string        `json:"tags,omitempty"`
	Type        string          `json:"type,omitempty"`
}

// UnmarshalJSON decodes a record, resolving the legacy video sentinel to
// the conventional assets/videos/{id}.mp4 path.
func (r *GameRecord) UnmarshalJSON(data []byte) error {
	var w wireRecord
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	r.ID = w.ID
	r.Name = w.Name
	r.Cover = w.Cover
	r.Description = w.Description
	r.Players = w.Players
	r.Tags = w.Tags
	r.Type = w.Type

	video, err := decodeVideo(w.Video, w.ID)
	if err != nil {
		return fmt.Errorf("record %q: %w", w.ID, err)
	}
	r.Video = video

	minutes, err := decodeMinutes(w.Time)
	if err != nil {
		return fmt.Errorf("record %q: %w", w.ID, err)
	}
	r.Time = minutes
	return nil
}

// MarshalJSON writes the modern shape: video as a plain path, time as a
// number, empty optionals omitted.
func (r GameRecord) MarshalJSON() ([]byte, error) {
	out := struct {
		ID          string   `json:"id"`
		Name        string   `json:"name"`
		Cover       string   `json:"cover,omitempty"`
		Video       string   `json:"video,omitempty"`
		Description string   `json:"description,omitempty"`
		Players     string   `json:"players,omitempty"`
		Time        int      `json:"time,omitempty"`
		Tags        []string `json:"tags,omitempty"`
		Type        string   `json:"type,omitempty"`
	}{
		ID:          r.ID,
		Name:        r.Name,
		Cover:       r.Cover,
		Video:       r.Video,
		Description: r.Description,
		Players:     r.Players,
		Time:        r.Time,
		Tags:        r.Tags,
		Type:        r.Type,
	}
	return json.Marshal(out)
}

func decodeVideo(raw json.RawMessage, id string) (string, error) {
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if s == "true" {
			return legacyVideoPath(id), nil
		}
		return s, nil
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		if b {
			return legacyVideoPath(id), nil
		}
		return "", nil
	}
	return "", fmt.Errorf("video field is neither string nor bool")
}

func decodeMinutes(raw json.RawMessage) (int, error) {
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return 0, nil
	}
	var n int
	if err := json.Unmarshal(raw, &n); err == nil {
		return n, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		s = strings.TrimSpace(s)
		if s == "" {
			return 0, nil
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0, fmt.Errorf("time %q is not a number", s)
		}
		return n, nil
	}
	return 0, fmt.Errorf("time field is neither number nor string")
}

func legacyVideoPath(id string) string {
	return "assets/videos/" + id + ".mp4"
}
