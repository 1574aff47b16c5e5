// Package hub runs one aggregation pass: collect every configured artist from
// the catalog, enrich with video data and outbound links, rank the tracks and
// assemble the cache.
//
// Provider failures never abort the run. They are logged and the affected
// artist, release or track is skipped or kept without enrichment.
package hub

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"artisthub/src/cache"
	"artisthub/src/catalog"
	"artisthub/src/debug"
	"artisthub/src/links"
	"artisthub/src/models"
	"artisthub/src/ranking"
	"artisthub/src/video"
)

// VideoFinder is the video service as seen by the hub.
type VideoFinder interface {
	ResolveChannel(ctx context.Context, channelURL string) (string, error)
	FindTrack(ctx context.Context, q video.Query) (*video.Match, error)
	FindRelease(ctx context.Context, q video.Query) (*video.Match, error)
}

type Hub struct {
	Catalog         catalog.Catalog // nil when catalog credentials are unusable
	Video           VideoFinder     // nil disables video enrichment
	Links           *links.Builder
	Settings        models.Settings
	ResolveChannels bool // look up artist channel IDs for the channel matcher
	Now             func() time.Time
}

// Collected is everything gathered before ranking, in encounter order.
type Collected struct {
	Artists []models.ArtistRecord
	Tracks  []models.TrackRecord
}

func NewHub(c catalog.Catalog, v VideoFinder, l *links.Builder, s models.Settings) *Hub {
	return &Hub{
		Catalog:  c,
		Video:    v,
		Links:    l,
		Settings: s,
		Now:      time.Now,
	}
}

// Run collects, ranks and returns the cache for this pass.
func (h *Hub) Run(ctx context.Context, artists []models.ArtistConfig) models.Cache {
	if h.Catalog == nil {
		slog.Warn("catalog unavailable, generating empty cache")
		return cache.Empty(h.now())
	}

	collected := h.Collect(ctx, artists)
	topSongs := ranking.Rank(collected.Tracks, ranking.WeightsFrom(h.Settings), h.Settings.TopSongsCount)

	slog.Info("generated cache", "top_songs", len(topSongs), "artists", len(collected.Artists), "tracks_ranked", len(collected.Tracks))
	return cache.New(h.now(), topSongs, collected.Artists)
}

// Collect processes artists one at a time. A track reached through several
// artists is kept once, under the first.
func (h *Hub) Collect(ctx context.Context, artists []models.ArtistConfig) Collected {
	var out Collected
	seen := make(map[string]bool)

	for _, ac := range artists {
		slog.Info("processing artist", "artist", ac.Name)

		record, tracks, err := h.collectArtist(ctx, ac)
		if err != nil {
			slog.Warn("skipping artist", "artist", ac.Name, "context", err.Error())
			continue
		}

		for _, t := range tracks {
			if t.ID != "" && seen[t.ID] {
				continue
			}
			seen[t.ID] = true
			out.Tracks = append(out.Tracks, t)
		}
		out.Artists = append(out.Artists, *record)

		slog.Info("processed artist", "artist", record.Name, "releases", len(record.LatestReleases), "tracks", len(tracks))
	}
	return out
}

func (h *Hub) collectArtist(ctx context.Context, ac models.ArtistConfig) (*models.ArtistRecord, []models.TrackRecord, error) {
	id, err := catalog.ArtistID(ac.Spotify)
	if err != nil {
		return nil, nil, err
	}

	artist, err := h.Catalog.Artist(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	channelID := h.channelID(ctx, ac)

	record := &models.ArtistRecord{
		ID:             artist.ID,
		Name:           artist.Name,
		ImageURL:       artist.ImageURL,
		Genres:         artist.Genres,
		Followers:      artist.Followers,
		SpotifyURL:     artist.SpotifyURL,
		YoutubeURL:     ac.Youtube,
		AppleMusicURL:  ac.AppleMusic,
		AudiomackURL:   ac.Audiomack,
		LatestReleases: h.latestReleases(ctx, ac, artist, channelID),
	}

	return record, h.topTracks(ctx, ac, artist, channelID), nil
}

func (h *Hub) latestReleases(ctx context.Context, ac models.ArtistConfig, artist *models.CatalogArtist, channelID string) []models.ReleaseRecord {
	releases, err := h.Catalog.Releases(ctx, artist.ID)
	if err != nil {
		slog.Warn("releases unavailable", "artist", artist.Name, "context", err.Error())
		return []models.ReleaseRecord{}
	}
	if len(releases) > h.Settings.LatestReleasesPerArtist {
		releases = releases[:h.Settings.LatestReleasesPerArtist]
	}

	out := make([]models.ReleaseRecord, 0, len(releases))
	for _, r := range releases {
		rec := models.ReleaseRecord{
			Title:         r.Title,
			Type:          r.Type,
			ReleaseDate:   r.ReleaseDate,
			CoverURL:      r.CoverURL,
			SpotifyURL:    r.SpotifyURL,
			AppleMusicURL: h.Links.AppleMusic(artist.Name, r.Title),
			AudiomackURL:  h.Links.AudiomackRelease(ac.Audiomack, r.Type, r.Title),
		}
		if m := h.findVideo(ctx, video.Query{Artist: artist.Name, Title: r.Title, ChannelID: channelID}, false); m != nil {
			rec.YoutubeURL = m.URL
		}
		out = append(out, rec)
	}
	return out
}

func (h *Hub) topTracks(ctx context.Context, ac models.ArtistConfig, artist *models.CatalogArtist, channelID string) []models.TrackRecord {
	tracks, err := h.Catalog.TopTracks(ctx, artist.ID)
	if err != nil {
		slog.Warn("top tracks unavailable", "artist", artist.Name, "context", err.Error())
		return nil
	}
	if len(tracks) == 0 {
		debug.Debug(fmt.Sprintf("no top tracks for %s", artist.Name))
		return nil
	}

	out := make([]models.TrackRecord, 0, len(tracks))
	for _, t := range tracks {
		rec := models.TrackRecord{
			ID:            t.ID,
			Title:         t.Title,
			ArtistName:    artist.Name,
			CoverURL:      t.CoverURL,
			Popularity:    t.Popularity,
			SpotifyURL:    t.SpotifyURL,
			AppleMusicURL: h.Links.AppleMusic(artist.Name, t.Title),
			AudiomackURL:  h.Links.AudiomackSong(ac.Audiomack, t.Title),
		}
		if m := h.findVideo(ctx, video.Query{Artist: artist.Name, Title: t.Title, ChannelID: channelID}, true); m != nil {
			rec.YoutubeURL = m.URL
			rec.YoutubeViews = m.Views
		}
		out = append(out, rec)
	}
	return out
}

// findVideo returns nil when enrichment is disabled or the lookup failed.
func (h *Hub) findVideo(ctx context.Context, q video.Query, withStats bool) *video.Match {
	if h.Video == nil {
		return nil
	}

	var (
		m   *video.Match
		err error
	)
	if withStats {
		m, err = h.Video.FindTrack(ctx, q)
	} else {
		m, err = h.Video.FindRelease(ctx, q)
	}

	switch {
	case errors.Is(err, video.ErrNoMatch):
		slog.Debug("no video found", "artist", q.Artist, "title", q.Title)
		return nil
	case err != nil:
		slog.Warn("video lookup failed", "artist", q.Artist, "title", q.Title, "context", err.Error())
		return nil
	}
	return m
}

func (h *Hub) channelID(ctx context.Context, ac models.ArtistConfig) string {
	if h.Video == nil || !h.ResolveChannels || ac.Youtube == "" {
		return ""
	}
	id, err := h.Video.ResolveChannel(ctx, ac.Youtube)
	if err != nil {
		slog.Warn("channel not resolved", "artist", ac.Name, "context", err.Error())
		return ""
	}
	return id
}

func (h *Hub) now() time.Time {
	if h.Now == nil {
		return time.Now()
	}
	return h.Now()
}
