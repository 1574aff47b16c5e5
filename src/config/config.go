package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	CatalogCfg  CatalogConfig
	VideoCfg    VideoConfig
	LinksCfg    LinksConfig
	ArtistsFile string `env:"ARTISTS_FILE" env-default:"artists.json"`
	CachePath   string `env:"CACHE_PATH" env-default:"data/cache.json"`
	HTTPTimeout int    `env:"HTTP_TIMEOUT" env-default:"30"` // seconds, applies to every provider call
	LogLevel    string `env:"LOG_LEVEL" env-default:"INFO"`
	Flags       Flags
}

type CatalogConfig struct {
	ClientID     string `env:"SPOTIFY_CLIENT_ID"`
	ClientSecret string `env:"SPOTIFY_CLIENT_SECRET"`
	Market       string `env:"SPOTIFY_MARKET" env-default:"US"`
	AlbumLimit   int    `env:"SPOTIFY_ALBUM_LIMIT" env-default:"20"`
	TokenURL     string `env:"SPOTIFY_TOKEN_URL"`
	APIURL       string `env:"SPOTIFY_API_URL"`
}

type VideoConfig struct {
	APIKey       string `env:"YOUTUBE_API_KEY"`
	Matcher      string `env:"YOUTUBE_MATCHER" env-default:"first"`
	StatsSource  string `env:"YOUTUBE_STATS_SOURCE" env-default:"api"`
	SearchSuffix string `env:"YOUTUBE_SEARCH_SUFFIX" env-default:"official"`
	APIURL       string `env:"YOUTUBE_API_URL" env-default:"https://www.googleapis.com/youtube/v3"`
}

type LinksConfig struct {
	AppleMusicStorefront string `env:"APPLE_MUSIC_STOREFRONT" env-default:"us"`
}

var (
	validMatchers    = []string{"first", "channel"}
	validStatsSource = []string{"api", "player"}
)

// ReadEnv seeds the process environment from envFile (if present) and reads Config from it.
func ReadEnv(envFile string) (Config, error) {
	var cfg Config
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to read environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (cfg *Config) Validate() error {
	if !contains(validMatchers, cfg.VideoCfg.Matcher) {
		return fmt.Errorf("config validation error: invalid YOUTUBE_MATCHER %s (must be one of: %s)",
			cfg.VideoCfg.Matcher, strings.Join(validMatchers, ", "))
	}
	if !contains(validStatsSource, cfg.VideoCfg.StatsSource) {
		return fmt.Errorf("config validation error: invalid YOUTUBE_STATS_SOURCE %s (must be one of: %s)",
			cfg.VideoCfg.StatsSource, strings.Join(validStatsSource, ", "))
	}
	if cfg.HTTPTimeout < 0 {
		return fmt.Errorf("config validation error: HTTP_TIMEOUT must not be negative")
	}
	return nil
}

// HasCatalogCreds reports whether both Spotify credentials are set.
func (cfg *Config) HasCatalogCreds() bool {
	return cfg.CatalogCfg.ClientID != "" && cfg.CatalogCfg.ClientSecret != ""
}

// HasVideoKey reports whether video enrichment can run at all.
func (cfg *Config) HasVideoKey() bool {
	return cfg.VideoCfg.APIKey != ""
}

// LogSummary logs which providers are enabled, never the credentials themselves.
func (cfg *Config) LogSummary() {
	slog.Info("configuration loaded",
		"artists_file", cfg.ArtistsFile,
		"cache_path", cfg.CachePath,
		"catalog", cfg.HasCatalogCreds(),
		"video", cfg.HasVideoKey(),
		"matcher", cfg.VideoCfg.Matcher,
		"stats_source", cfg.VideoCfg.StatsSource,
	)
}
