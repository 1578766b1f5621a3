package catalog

import (
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/spf13/afero"
)

// Store coordinates access to the in-memory catalog. The backing document
// is the source of truth between sessions; the store owns the collection
// while the kiosk runs. A failed load keeps whatever was loaded before.
type Store struct {
	fs   afero.Fs
	path string

	mu      sync.RWMutex
	records []GameRecord
}

// NewStore returns a store reading the catalog document at path.
func NewStore(fs afero.Fs, path string) *Store {
	return &Store{fs: fs, path: path}
}

// Load replaces the collection from the source document. On read or decode
// failure the previous collection is left untouched and the error is
// returned for logging; it is never fatal to the browsing UI.
func (s *Store) Load() error {
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		return fmt.Errorf("read catalog: %w", err)
	}
	var records []GameRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return fmt.Errorf("decode catalog: %w", err)
	}

	s.mu.Lock()
	s.records = records
	s.mu.Unlock()
	return nil
}

// Refresh re-reads the source document. Idempotent.
func (s *Store) Refresh() error {
	return s.Load()
}

// Games returns a copy of the collection in display order.
func (s *Store) Games() []GameRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneRecords(s.records)
}

// Len returns the number of records.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Get returns the record with the given id.
func (s *Store) Get(id string) (GameRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.records {
		if r.ID == id {
			return r.Clone(), true
		}
	}
	return GameRecord{}, false
}

// Replace swaps the in-memory collection wholesale. Used by the admin
// session for optimistic apply, rollback snapshots, and reordering; it
// never touches the backing document.
func (s *Store) Replace(records []GameRecord) {
	dup := cloneRecords(records)
	s.mu.Lock()
	s.records = dup
	s.mu.Unlock()
}

// Tags recomputes the derived tag set: every tag on every record,
// deduplicated, sorted ascending. Case-sensitive, never cached.
func (s *Store) Tags() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]struct{})
	var tags []string
	for _, r := range s.records {
		for _, t := range r.Tags {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			tags = append(tags, t)
		}
	}
	sort.Strings(tags)
	return tags
}

func cloneRecords(records []GameRecord) []GameRecord {
	if len(records) == 0 {
		return nil
	}
	dup := make([]GameRecord, len(records))
	for i, r := range records {
		dup[i] = r.Clone()
	}
	return dup
}
