// Package admin implements the operator panel's state: the PIN gate, the
// draft-record lifecycle, the save/delete pipeline against the external
// collaborators, and the reorder buffer with its explicit order commit.
package admin

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/vrclub/kiosk/internal/assets"
	"github.com/vrclub/kiosk/internal/catalog"
	"github.com/vrclub/kiosk/internal/persist"
)

var (
	// ErrLocked means no successful PIN entry has happened this session.
	ErrLocked = errors.New("admin session is locked")
	// ErrBadPIN is returned by Unlock for a wrong PIN.
	ErrBadPIN = errors.New("wrong PIN")
	// ErrBusy means another mutating operation has begun and not yet
	// resolved; overlapping whole-collection writes would race.
	ErrBusy = errors.New("another save is in progress")
	// ErrNoDraft means the operation needs an open draft.
	ErrNoDraft = errors.New("no draft open")
	// ErrNameRequired blocks saving a new record with an empty name.
	ErrNameRequired = errors.New("game name is required")
	// ErrNotConfirmed blocks deletion without an affirmative confirmation.
	ErrNotConfirmed = errors.New("deletion not confirmed")
)

// Draft is the transient, unsaved copy of a record being created or
// edited, plus at most one pending image and one pending video file.
// It is never partially persisted.
type Draft struct {
	Record       catalog.GameRecord
	PendingImage string
	PendingVideo string
	IsNew        bool
}

// Session drives the admin panel. A single session exists at a time; its
// busy latch serializes save, delete and order commits so two
// whole-collection overwrites can never overlap.
type Session struct {
	store    *catalog.Store
	importer assets.Importer
	writer   persist.Writer
	log      *zap.SugaredLogger
	pin      string

	mu       sync.Mutex
	unlocked bool
	busy     bool
	draft    *Draft
	palette  []string
}

// NewSession wires a session against the store and collaborators.
func NewSession(store *catalog.Store, importer assets.Importer, writer persist.Writer, pin string, log *zap.SugaredLogger) *Session {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Session{store: store, importer: importer, writer: writer, pin: pin, log: log}
}

// Open resets the session for a fresh panel visit: locked, no draft, tag
// palette recomputed from the current catalog.
func (s *Session) Open() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.unlocked = false
	s.draft = nil
	s.palette = s.store.Tags()
}

// Unlock checks the operator PIN.
func (s *Session) Unlock(pin string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if pin != s.pin {
		return ErrBadPIN
	}
	s.unlocked = true
	return nil
}

// Unlocked reports whether the PIN gate has been passed.
func (s *Session) Unlocked() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.unlocked
}

// Editing reports whether a draft is open.
func (s *Session) Editing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft != nil
}

// Busy reports whether a mutating operation is unresolved.
func (s *Session) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.busy
}

// Draft returns a copy of the current draft, or false when browsing.
func (s *Session) Draft() (Draft, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.draft == nil {
		return Draft{}, false
	}
	d := *s.draft
	d.Record = s.draft.Record.Clone()
	return d, true
}

// Palette returns the available tags shown in the edit form.
func (s *Session) Palette() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.palette))
	copy(out, s.palette)
	return out
}

// StartNew opens a draft from the empty template.
func (s *Session) StartNew() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = &Draft{
		Record: catalog.GameRecord{Type: "normal", Players: "1", Tags: []string{}},
		IsNew:  true,
	}
}

// StartEdit opens a draft as a copy of an existing record.
func (s *Session) StartEdit(record catalog.GameRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = &Draft{Record: record.Clone()}
}

// Cancel discards the draft and its pending file references. No side
// effects on the store or the backing document.
func (s *Session) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = nil
}

// SetName updates the draft's display name.
func (s *Session) SetName(name string) error { return s.editDraft(func(r *catalog.GameRecord) { r.Name = name }) }

// SetPlayers updates the draft's free-text player count.
func (s *Session) SetPlayers(players string) error {
	return s.editDraft(func(r *catalog.GameRecord) { r.Players = players })
}

// SetDescription updates the draft's description.
func (s *Session) SetDescription(desc string) error {
	return s.editDraft(func(r *catalog.GameRecord) { r.Description = desc })
}

// SetTime updates the draft's session length in minutes.
func (s *Session) SetTime(minutes int) error {
	return s.editDraft(func(r *catalog.GameRecord) { r.Time = minutes })
}

func (s *Session) editDraft(fn func(*catalog.GameRecord)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.draft == nil {
		return ErrNoDraft
	}
	fn(&s.draft.Record)
	return nil
}

// AttachImage stores a pending cover file on the draft. Nothing is copied
// until save.
func (s *Session) AttachImage(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.draft == nil {
		return ErrNoDraft
	}
	s.draft.PendingImage = path
	return nil
}

// AttachVideo stores a pending gameplay-video file on the draft.
func (s *Session) AttachVideo(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.draft == nil {
		return ErrNoDraft
	}
	s.draft.PendingVideo = path
	return nil
}

// ToggleTag adds the tag to the draft if absent, removes every occurrence
// if present. Toggling twice returns to the original membership.
func (s *Session) ToggleTag(tag string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.draft == nil {
		return ErrNoDraft
	}
	tags := s.draft.Record.Tags
	kept := tags[:0]
	found := false
	for _, t := range tags {
		if t == tag {
			found = true
			continue
		}
		kept = append(kept, t)
	}
	if found {
		s.draft.Record.Tags = kept
	} else {
		s.draft.Record.Tags = append(kept, tag)
	}
	return nil
}

// AddTag introduces a new palette entry (uppercased, as the original panel
// did) and toggles it onto the draft. The palette entry is not persisted
// anywhere until a record carrying the tag is saved.
func (s *Session) AddTag(name string) error {
	tag := strings.ToUpper(strings.TrimSpace(name))
	if tag == "" {
		return nil
	}
	s.mu.Lock()
	known := false
	for _, t := range s.palette {
		if t == tag {
			known = true
			break
		}
	}
	if !known {
		s.palette = append(s.palette, tag)
	}
	s.mu.Unlock()
	return s.ToggleTag(tag)
}

// Save runs the whole pipeline: slug derivation, pending asset imports,
// upsert by id, one atomic whole-collection write, then a catalog refresh.
// Any failure leaves the backing document untouched and the draft retained
// so the operator can fix and retry.
func (s *Session) Save(ctx context.Context) error {
	if err := s.begin(); err != nil {
		return err
	}
	defer s.end()

	s.mu.Lock()
	if s.draft == nil {
		s.mu.Unlock()
		return ErrNoDraft
	}
	rec := s.draft.Record.Clone()
	pendingImage := s.draft.PendingImage
	pendingVideo := s.draft.PendingVideo
	s.mu.Unlock()

	if rec.ID == "" {
		if strings.TrimSpace(rec.Name) == "" {
			return ErrNameRequired
		}
		rec.ID = catalog.Slug(rec.Name)
	}

	if pendingVideo != "" {
		ref, err := s.importer.ImportVideo(ctx, pendingVideo, rec.ID)
		if err != nil {
			return err
		}
		rec.Video = ref
	}
	if pendingImage != "" {
		ref, err := s.importer.ImportImage(ctx, pendingImage, rec.ID)
		if err != nil {
			return err
		}
		rec.Cover = ref
	}

	snapshot := s.store.Games()
	updated := upsert(snapshot, rec)
	s.store.Replace(updated)
	if err := s.writer.SaveCollection(ctx, updated); err != nil {
		s.store.Replace(snapshot)
		return fmt.Errorf("save catalog: %w", err)
	}

	s.mu.Lock()
	s.draft = nil
	s.mu.Unlock()

	if err := s.store.Refresh(); err != nil {
		s.log.Warnw("catalog refresh after save failed", "error", err)
	}
	s.log.Infow("record saved", "id", rec.ID)
	return nil
}

// Delete removes the record by id and persists the shrunken collection.
// It refuses to proceed without an affirmative confirmation signal, and a
// persistence failure leaves the in-memory collection unchanged.
func (s *Session) Delete(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		return ErrNotConfirmed
	}
	if err := s.begin(); err != nil {
		return err
	}
	defer s.end()

	snapshot := s.store.Games()
	kept := make([]catalog.GameRecord, 0, len(snapshot))
	for _, r := range snapshot {
		if r.ID != id {
			kept = append(kept, r)
		}
	}

	if err := s.writer.SaveCollection(ctx, kept); err != nil {
		return fmt.Errorf("delete %s: %w", id, err)
	}
	s.store.Replace(kept)

	if err := s.store.Refresh(); err != nil {
		s.log.Warnw("catalog refresh after delete failed", "error", err)
	}
	s.log.Infow("record deleted", "id", id)
	return nil
}

// Reorder replaces the working display order immediately. The persistence
// collaborator is not called; visual order and persisted order diverge
// until CommitOrder.
func (s *Session) Reorder(order []catalog.GameRecord) error {
	s.mu.Lock()
	unlocked := s.unlocked
	s.mu.Unlock()
	if !unlocked {
		return ErrLocked
	}
	s.store.Replace(order)
	return nil
}

// CommitOrder persists the current working order as the full collection.
// On failure the working order is retained and the error surfaced.
func (s *Session) CommitOrder(ctx context.Context) error {
	if err := s.begin(); err != nil {
		return err
	}
	defer s.end()

	order := s.store.Games()
	if err := s.writer.SaveCollection(ctx, order); err != nil {
		return fmt.Errorf("commit order: %w", err)
	}
	if err := s.store.Refresh(); err != nil {
		s.log.Warnw("catalog refresh after order commit failed", "error", err)
	}
	s.log.Infow("order committed", "records", len(order))
	return nil
}

func (s *Session) begin() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.unlocked {
		return ErrLocked
	}
	if s.busy {
		return ErrBusy
	}
	s.busy = true
	return nil
}

func (s *Session) end() {
	s.mu.Lock()
	s.busy = false
	s.mu.Unlock()
}

// upsert replaces the record with the same id in place, preserving its
// position, or appends when the id is new.
func upsert(records []catalog.GameRecord, rec catalog.GameRecord) []catalog.GameRecord {
	out := make([]catalog.GameRecord, len(records))
	copy(out, records)
	for i, r := range out {
		if r.ID == rec.ID {
			out[i] = rec
			return out
		}
	}
	return append(out, rec)
}
