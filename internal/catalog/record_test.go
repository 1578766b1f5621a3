package catalog

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestSlug(t *testing.T) {
	if got := Slug("Mario Kart 8!"); got != "mario_kart_8_" {
		t.Fatalf("Slug(%q) = %q, want %q", "Mario Kart 8!", got, "mario_kart_8_")
	}
	if got := Slug("Z"); got != "z" {
		t.Fatalf("Slug(%q) = %q, want %q", "Z", got, "z")
	}
	if got := Slug("Beat Saber"); got != "beat_saber" {
		t.Fatalf("Slug(%q) = %q, want %q", "Beat Saber", got, "beat_saber")
	}
}

func TestUnmarshal_LegacyVideoSentinel(t *testing.T) {
	for _, doc := range []string{
		`{"id":"beat_saber","name":"Beat Saber","video":true}`,
		`{"id":"beat_saber","name":"Beat Saber","video":"true"}`,
	} {
		var r GameRecord
		if err := json.Unmarshal([]byte(doc), &r); err != nil {
			t.Fatalf("Unmarshal(%s) returned error: %v", doc, err)
		}
		if r.Video != "assets/videos/beat_saber.mp4" {
			t.Fatalf("Video = %q, want %q", r.Video, "assets/videos/beat_saber.mp4")
		}
	}
}

func TestUnmarshal_VideoPathAndFalse(t *testing.T) {
	var r GameRecord
	doc := `{"id":"x","name":"X","video":"assets/videos/custom.webm"}`
	if err := json.Unmarshal([]byte(doc), &r); err != nil {
		t.Fatalf("Unmarshal returned error: %v", err)
	}
	if r.Video != "assets/videos/custom.webm" {
		t.Fatalf("Video = %q, want the stored path", r.Video)
	}

	var r2 GameRecord
	if err := json.Unmarshal([]byte(`{"id":"x","name":"X","video":false}`), &r2); err != nil {
		t.Fatalf("Unmarshal returned error: %v", err)
	}
	if r2.Video != "" {
		t.Fatalf("Video = %q, want empty for false sentinel", r2.Video)
	}
}

func TestUnmarshal_TimeNumberOrString(t *testing.T) {
	var r GameRecord
	if err := json.Unmarshal([]byte(`{"id":"a","name":"A","time":15}`), &r); err != nil {
		t.Fatalf("Unmarshal returned error: %v", err)
	}
	if r.Time != 15 {
		t.Fatalf("Time = %d, want 15", r.Time)
	}

	var r2 GameRecord
	if err := json.Unmarshal([]byte(`{"id":"a","name":"A","time":"30"}`), &r2); err != nil {
		t.Fatalf("Unmarshal returned error: %v", err)
	}
	if r2.Time != 30 {
		t.Fatalf("Time = %d, want 30", r2.Time)
	}

	var r3 GameRecord
	if err := json.Unmarshal([]byte(`{"id":"a","name":"A","time":"soon"}`), &r3); err == nil {
		t.Fatal("Unmarshal accepted a non-numeric time string")
	}
}

func TestMarshal_OmitsEmptyOptionals(t *testing.T) {
	data, err := json.Marshal(GameRecord{ID: "z", Name: "Z"})
	if err != nil {
		t.Fatalf("Marshal returned error: %v", err)
	}
	s := string(data)
	for _, field := range []string{"cover", "video", "time", "tags", "players", "description", "type"} {
		if strings.Contains(s, `"`+field+`"`) {
			t.Fatalf("marshaled %s contains empty field %q", s, field)
		}
	}
}

func TestClone_DoesNotAliasTags(t *testing.T) {
	r := GameRecord{ID: "a", Tags: []string{"VR"}}
	dup := r.Clone()
	dup.Tags[0] = "FLAT"
	if r.Tags[0] != "VR" {
		t.Fatalf("Tags[0] = %q, want %q (clone aliased the slice)", r.Tags[0], "VR")
	}
}
