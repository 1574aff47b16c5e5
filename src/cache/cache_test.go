package cache

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"artisthub/src/models"
)

func TestTimestamp(t *testing.T) {
	loc := time.FixedZone("CET", 3600)
	ts := time.Date(2024, 5, 1, 13, 4, 5, 123456789, loc)

	got := Timestamp(ts)
	if got != "2024-05-01T12:04:05.123456Z" {
		t.Errorf("Timestamp() = %q", got)
	}
	if _, err := time.Parse(time.RFC3339Nano, got); err != nil {
		t.Errorf("Timestamp() not RFC3339: %v", err)
	}
}

func TestEmpty_EncodesEmptyArrays(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, Empty(time.Now())); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	var decoded map[string]json.RawMessage
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if string(decoded["topSongs"]) != "[]" || string(decoded["artists"]) != "[]" {
		t.Errorf("empty cache = %s", buf.String())
	}
	if !strings.HasSuffix(strings.Trim(string(decoded["lastUpdated"]), `"`), "Z") {
		t.Errorf("lastUpdated = %s, want Z suffix", decoded["lastUpdated"])
	}
}

func TestNew_OptionalFieldsOmitted(t *testing.T) {
	c := New(time.Now(), []models.TrackRecord{{ID: "t1", Title: "Hit", Popularity: 80, Score: 48}},
		[]models.ArtistRecord{{ID: "a1", Name: "A-lex"}})

	var buf bytes.Buffer
	if err := Encode(&buf, c); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	out := buf.String()
	if strings.Contains(out, "youtubeViews") || strings.Contains(out, "youtubeUrl") {
		t.Errorf("absent video data should be omitted: %s", out)
	}
	if !strings.Contains(out, `"latestReleases": []`) {
		t.Errorf("latestReleases should encode as []: %s", out)
	}
}

func TestSave_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "cache.json")

	first := New(time.Now(), []models.TrackRecord{{ID: "old"}}, nil)
	if err := Save(path, first); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := Save(path, Empty(time.Now())); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var got models.Cache
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(got.TopSongs) != 0 {
		t.Errorf("TopSongs = %+v, want previous run fully replaced", got.TopSongs)
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("directory has %d entries, want only cache.json", len(entries))
	}
}
