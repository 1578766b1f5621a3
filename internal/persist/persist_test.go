package persist

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/spf13/afero"

	"github.com/vrclub/kiosk/internal/catalog"
)

func TestSaveCollection_WritesPrettyPrintedArray(t *testing.T) {
	fs := afero.NewMemMapFs()
	w := NewFileWriter(fs, "data/games.json")

	records := []catalog.GameRecord{
		{ID: "beat_saber", Name: "Beat Saber", Tags: []string{"MUSIC"}},
		{ID: "pavlov", Name: "Pavlov", Video: "assets/videos/pavlov.mp4"},
	}
	if err := w.SaveCollection(context.Background(), records); err != nil {
		t.Fatalf("SaveCollection returned error: %v", err)
	}

	data, err := afero.ReadFile(fs, "data/games.json")
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "\n  {") {
		t.Fatalf("document is not pretty-printed: %q", data)
	}

	var back []catalog.GameRecord
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal written document: %v", err)
	}
	if len(back) != 2 || back[0].ID != "beat_saber" || back[1].ID != "pavlov" {
		t.Fatalf("round-tripped ids = %v, want order preserved", back)
	}
}

func TestSaveCollection_EmptyCollectionIsEmptyArray(t *testing.T) {
	fs := afero.NewMemMapFs()
	w := NewFileWriter(fs, "games.json")
	if err := w.SaveCollection(context.Background(), nil); err != nil {
		t.Fatalf("SaveCollection returned error: %v", err)
	}
	data, err := afero.ReadFile(fs, "games.json")
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if strings.TrimSpace(string(data)) != "[]" {
		t.Fatalf("document = %q, want an empty array", data)
	}
}

func TestSaveCollection_CancelledContext(t *testing.T) {
	fs := afero.NewMemMapFs()
	w := NewFileWriter(fs, "games.json")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := w.SaveCollection(ctx, nil); err == nil {
		t.Fatal("SaveCollection ignored a cancelled context")
	}
	if ok, _ := afero.Exists(fs, "games.json"); ok {
		t.Fatal("document written despite cancelled context")
	}
}
