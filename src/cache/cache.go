// Package cache builds and persists the published JSON artifact.
package cache

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"artisthub/src/models"
)

const timestampLayout = "2006-01-02T15:04:05.000000Z"

// Timestamp formats t as a UTC ISO-8601 timestamp with a Z suffix.
func Timestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

// New returns a cache with non-nil slices, so empty runs still encode as [].
func New(now time.Time, topSongs []models.TrackRecord, artists []models.ArtistRecord) models.Cache {
	if topSongs == nil {
		topSongs = []models.TrackRecord{}
	}
	if artists == nil {
		artists = []models.ArtistRecord{}
	}
	for i := range artists {
		if artists[i].LatestReleases == nil {
			artists[i].LatestReleases = []models.ReleaseRecord{}
		}
	}
	return models.Cache{
		LastUpdated: Timestamp(now),
		TopSongs:    topSongs,
		Artists:     artists,
	}
}

func Empty(now time.Time) models.Cache {
	return New(now, nil, nil)
}

func Encode(w io.Writer, c models.Cache) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(c)
}

// Save replaces the file at path with c. The data goes to a temp file in the
// same directory first, so readers never see a partially written cache.
func Save(path string, c models.Cache) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".cache-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err := os.Remove(tmpName); err != nil && !os.IsNotExist(err) {
			slog.Warn("temp file cleanup failed", "context", err.Error())
		}
	}()

	if err := Encode(tmp, c); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to encode cache: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write cache: %w", err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		return fmt.Errorf("failed to set cache permissions: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("failed to replace cache: %w", err)
	}

	slog.Info("cache saved", "path", path, "top_songs", len(c.TopSongs), "artists", len(c.Artists))
	return nil
}
