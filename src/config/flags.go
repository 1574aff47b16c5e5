package config

import (
	"fmt"
	"slices"
	"strings"

	flag "github.com/spf13/pflag"
)

type Flags struct {
	EnvPath     string
	ArtistsPath string
	OutputPath  string
	Matcher     string
	DryRun      bool
}

// ParseFlags parses args (without the program name). Empty values mean "not set".
func ParseFlags(args []string) (Flags, error) {
	var f Flags
	fs := flag.NewFlagSet("artisthub", flag.ContinueOnError)

	fs.StringVarP(&f.EnvPath, "config", "c", ".env", "Path of the .env file holding credentials and settings")
	fs.StringVarP(&f.ArtistsPath, "artists", "a", "", "Path of the artists file (.json, .yaml or .yml), overrides ARTISTS_FILE")
	fs.StringVarP(&f.OutputPath, "output", "o", "", "Path of the generated cache, overrides CACHE_PATH")
	fs.StringVar(&f.Matcher, "matcher", "", "YouTube match strategy: 'first' (first search result) or 'channel' (prefer the artist's channel)")
	fs.BoolVar(&f.DryRun, "dry-run", false, "Print the cache to stdout instead of writing it")

	if err := fs.Parse(args); err != nil {
		return f, err
	}

	if f.Matcher != "" && !contains(validMatchers, f.Matcher) {
		return f, fmt.Errorf("flag validation error: invalid matcher %s (must be one of: %s)",
			f.Matcher, strings.Join(validMatchers, ", "))
	}
	return f, nil
}

// MergeFlags applies flag values on top of the environment config.
func (cfg *Config) MergeFlags(f Flags) {
	cfg.Flags = f
	if f.ArtistsPath != "" {
		cfg.ArtistsFile = f.ArtistsPath
	}
	if f.OutputPath != "" {
		cfg.CachePath = f.OutputPath
	}
	if f.Matcher != "" {
		cfg.VideoCfg.Matcher = f.Matcher
	}
}

func contains(valid []string, val string) bool {
	return slices.Contains(valid, val)
}
