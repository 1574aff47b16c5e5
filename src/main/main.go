package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"os"

	flag "github.com/spf13/pflag"

	"artisthub/src/cache"
	"artisthub/src/catalog"
	"artisthub/src/config"
	"artisthub/src/debug"
	"artisthub/src/hub"
	"artisthub/src/links"
	"artisthub/src/util"
	"artisthub/src/video"
)

func setup(cfg *config.Config) { // inits logging and reports which providers are usable
	debug.Init(cfg.LogLevel)
	cfg.LogSummary()
}

func main() {
	flags, err := config.ParseFlags(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatal(err)
	}

	cfg, err := config.ReadEnv(flags.EnvPath)
	if err != nil {
		log.Fatalf("Failed to load config: %s", err)
	}
	cfg.MergeFlags(flags)
	setup(&cfg)

	artists, err := config.LoadArtists(cfg.ArtistsFile)
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	httpClient := util.NewHttp(util.HttpClientConfig{Timeout: cfg.HTTPTimeout})

	var cat catalog.Catalog
	if sp, err := catalog.NewSpotify(ctx, cfg.CatalogCfg, httpClient); err != nil {
		slog.Error("cannot proceed without Spotify access", "context", err.Error())
	} else {
		cat = sp
	}

	var vid hub.VideoFinder
	if cfg.HasVideoKey() {
		yt := video.NewYoutube(cfg.VideoCfg, httpClient)
		slog.Info("video enrichment enabled", "matcher", yt.Matcher().Name())
		vid = yt
	} else {
		slog.Warn("YOUTUBE_API_KEY not set, video enrichment disabled")
	}

	h := hub.NewHub(cat, vid, links.NewBuilder(cfg.LinksCfg.AppleMusicStorefront), artists.Settings)
	h.ResolveChannels = cfg.VideoCfg.Matcher == "channel"

	result := h.Run(ctx, artists.Artists)

	if cfg.Flags.DryRun {
		if err := cache.Encode(os.Stdout, result); err != nil {
			log.Fatal(err)
		}
		return
	}
	if err := cache.Save(cfg.CachePath, result); err != nil {
		log.Fatal(err)
	}
}
