package catalog

import (
	"testing"

	"github.com/spf13/afero"
)

const sampleDoc = `[
  {"id":"beat_saber","name":"Beat Saber","tags":["MUSIC","VR"],"players":"1"},
  {"id":"pavlov","name":"Pavlov","tags":["SHOOTER","VR"],"video":true},
  {"id":"chess","name":"Chess","tags":[]}
]`

func newTestStore(t *testing.T, doc string) *Store {
	t.Helper()
	fs := afero.NewMemMapFs()
	if doc != "" {
		if err := afero.WriteFile(fs, "games.json", []byte(doc), 0o644); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
	}
	return NewStore(fs, "games.json")
}

func TestLoad_PopulatesInOrder(t *testing.T) {
	s := newTestStore(t, sampleDoc)
	if err := s.Load(); err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	games := s.Games()
	if len(games) != 3 {
		t.Fatalf("len(games) = %d, want 3", len(games))
	}
	if games[0].ID != "beat_saber" || games[2].ID != "chess" {
		t.Fatalf("order = [%s %s %s], want document order", games[0].ID, games[1].ID, games[2].ID)
	}
	if games[1].Video != "assets/videos/pavlov.mp4" {
		t.Fatalf("pavlov video = %q, want resolved legacy path", games[1].Video)
	}
}

func TestLoad_FailureKeepsPreviousCollection(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "games.json", []byte(sampleDoc), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	s := NewStore(fs, "games.json")
	if err := s.Load(); err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if err := afero.WriteFile(fs, "games.json", []byte("{not json"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := s.Refresh(); err == nil {
		t.Fatal("Refresh accepted a corrupt document")
	}
	if got := s.Len(); got != 3 {
		t.Fatalf("Len = %d after failed refresh, want 3", got)
	}
}

func TestLoad_MissingFileIsErrorWithEmptyCatalog(t *testing.T) {
	s := newTestStore(t, "")
	if err := s.Load(); err == nil {
		t.Fatal("Load succeeded with no document")
	}
	if got := s.Len(); got != 0 {
		t.Fatalf("Len = %d, want 0", got)
	}
}

func TestTags_DerivedSortedDeduplicated(t *testing.T) {
	s := newTestStore(t, sampleDoc)
	if err := s.Load(); err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	tags := s.Tags()
	want := []string{"MUSIC", "SHOOTER", "VR"}
	if len(tags) != len(want) {
		t.Fatalf("Tags = %v, want %v", tags, want)
	}
	for i := range want {
		if tags[i] != want[i] {
			t.Fatalf("Tags = %v, want %v", tags, want)
		}
	}
}

func TestGames_ReturnsCopies(t *testing.T) {
	s := newTestStore(t, sampleDoc)
	if err := s.Load(); err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	games := s.Games()
	games[0].Tags[0] = "MUTATED"
	if fresh := s.Games(); fresh[0].Tags[0] != "MUSIC" {
		t.Fatalf("store tag = %q after caller mutation, want %q", fresh[0].Tags[0], "MUSIC")
	}
}

func TestReplace_SwapsCollection(t *testing.T) {
	s := newTestStore(t, sampleDoc)
	if err := s.Load(); err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	s.Replace([]GameRecord{{ID: "only", Name: "Only"}})
	if got := s.Len(); got != 1 {
		t.Fatalf("Len = %d after Replace, want 1", got)
	}
	if _, ok := s.Get("beat_saber"); ok {
		t.Fatal("Get found a record Replace should have dropped")
	}
}
