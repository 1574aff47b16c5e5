package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"artisthub/src/models"
)

// ArtistsFile is the parsed artists file: the artist list plus ranking settings.
type ArtistsFile struct {
	Artists  []models.ArtistConfig
	Settings models.Settings
}

// rawSettings uses pointers so an explicit 0 (e.g. a disabled weight) is kept.
type rawSettings struct {
	LatestReleasesPerArtist *int     `json:"latestReleasesPerArtist" yaml:"latestReleasesPerArtist"`
	SpotifyWeight           *float64 `json:"spotifyWeight" yaml:"spotifyWeight"`
	YoutubeWeight           *float64 `json:"youtubeWeight" yaml:"youtubeWeight"`
	TopSongsCount           *int     `json:"topSongsCount" yaml:"topSongsCount"`
}

type rawArtistsFile struct {
	Artists []models.ArtistConfig `json:"artists" yaml:"artists"`
	Config  rawSettings           `json:"config" yaml:"config"`
}

func DefaultSettings() models.Settings {
	return models.Settings{
		LatestReleasesPerArtist: 3,
		SpotifyWeight:           0.7,
		YoutubeWeight:           0.3,
		TopSongsCount:           20,
	}
}

// LoadArtists reads a JSON or YAML artists file, chosen by extension.
func LoadArtists(path string) (*ArtistsFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read artists file: %w", err)
	}
	return ParseArtists(data, filepath.Ext(path))
}

func ParseArtists(data []byte, ext string) (*ArtistsFile, error) {
	var raw rawArtistsFile

	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse artists file: %w", err)
		}
	case ".json", "":
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse artists file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported artists file extension %q (use .json, .yaml or .yml)", ext)
	}

	file := &ArtistsFile{
		Artists:  raw.Artists,
		Settings: raw.Config.merge(DefaultSettings()),
	}
	if err := validateSettings(file.Settings); err != nil {
		return nil, err
	}
	return file, nil
}

func (r rawSettings) merge(s models.Settings) models.Settings {
	if r.LatestReleasesPerArtist != nil {
		s.LatestReleasesPerArtist = *r.LatestReleasesPerArtist
	}
	if r.SpotifyWeight != nil {
		s.SpotifyWeight = *r.SpotifyWeight
	}
	if r.YoutubeWeight != nil {
		s.YoutubeWeight = *r.YoutubeWeight
	}
	if r.TopSongsCount != nil {
		s.TopSongsCount = *r.TopSongsCount
	}
	return s
}

func validateSettings(s models.Settings) error {
	switch {
	case s.LatestReleasesPerArtist < 0:
		return fmt.Errorf("config validation error: latestReleasesPerArtist must not be negative")
	case s.TopSongsCount < 0:
		return fmt.Errorf("config validation error: topSongsCount must not be negative")
	case s.SpotifyWeight < 0 || s.YoutubeWeight < 0:
		return fmt.Errorf("config validation error: weights must not be negative")
	}
	return nil
}
