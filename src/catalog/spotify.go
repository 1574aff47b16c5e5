package catalog

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/zmb3/spotify/v2"
	spotifyauth "github.com/zmb3/spotify/v2/auth"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	cfg "artisthub/src/config"
	"artisthub/src/models"
	"artisthub/src/util"
)

type Spotify struct {
	client     *spotify.Client
	market     string
	albumLimit int
}

// NewSpotify exchanges the client credentials for a token up front, so a bad
// id/secret pair fails here instead of on every artist.
func NewSpotify(ctx context.Context, cfg cfg.CatalogConfig, httpClient *util.HttpClient) (*Spotify, error) {
	if cfg.ClientID == "" || cfg.ClientSecret == "" {
		return nil, ErrMissingCredentials
	}

	tokenURL := cfg.TokenURL
	if tokenURL == "" {
		tokenURL = spotifyauth.TokenURL
	}
	creds := &clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     tokenURL,
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, httpClient.StdClient())
	src := creds.TokenSource(ctx)
	if _, err := src.Token(); err != nil {
		return nil, fmt.Errorf("failed to get Spotify token: %w", err)
	}

	var opts []spotify.ClientOption
	if cfg.APIURL != "" {
		opts = append(opts, spotify.WithBaseURL(strings.TrimRight(cfg.APIURL, "/")+"/"))
	}

	albumLimit := cfg.AlbumLimit
	if albumLimit <= 0 || albumLimit > 50 {
		albumLimit = 20
	}

	return &Spotify{
		client:     spotify.New(oauth2.NewClient(ctx, src), opts...),
		market:     cfg.Market,
		albumLimit: albumLimit,
	}, nil
}

func (c *Spotify) Artist(ctx context.Context, id string) (*models.CatalogArtist, error) {
	artist, err := c.client.GetArtist(ctx, spotify.ID(id))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch artist %s: %w", id, err)
	}

	return &models.CatalogArtist{
		ID:         id,
		Name:       artist.Name,
		ImageURL:   firstImage(artist.Images),
		SpotifyURL: externalURL(artist.ExternalURLs, "artist", id),
		Genres:     artist.Genres,
		Followers:  int(artist.Followers.Count),
	}, nil
}

func (c *Spotify) Releases(ctx context.Context, id string) ([]models.CatalogRelease, error) {
	opts := []spotify.RequestOption{spotify.Limit(c.albumLimit)}
	if c.market != "" {
		opts = append(opts, spotify.Market(c.market))
	}

	page, err := c.client.GetArtistAlbums(ctx, spotify.ID(id),
		[]spotify.AlbumType{spotify.AlbumTypeAlbum, spotify.AlbumTypeSingle}, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch albums for %s: %w", id, err)
	}

	releases := make([]models.CatalogRelease, 0, len(page.Albums))
	for _, album := range page.Albums {
		releases = append(releases, models.CatalogRelease{
			ID:          album.ID.String(),
			Title:       album.Name,
			Type:        strings.ToLower(album.AlbumType),
			ReleaseDate: album.ReleaseDate,
			CoverURL:    firstImage(album.Images),
			SpotifyURL:  externalURL(album.ExternalURLs, "album", album.ID.String()),
		})
	}

	// albums come grouped by type; interleave them by date
	slices.SortStableFunc(releases, func(a, b models.CatalogRelease) int {
		return cmp.Compare(b.ReleaseDate, a.ReleaseDate)
	})
	return releases, nil
}

func (c *Spotify) TopTracks(ctx context.Context, id string) ([]models.CatalogTrack, error) {
	market := c.market
	if market == "" {
		market = "US"
	}

	tracks, err := c.client.GetArtistsTopTracks(ctx, spotify.ID(id), market)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch top tracks for %s: %w", id, err)
	}

	out := make([]models.CatalogTrack, 0, len(tracks))
	for _, track := range tracks {
		out = append(out, models.CatalogTrack{
			ID:         track.ID.String(),
			Title:      track.Name,
			CoverURL:   firstImage(track.Album.Images),
			Popularity: int(track.Popularity),
			SpotifyURL: externalURL(track.ExternalURLs, "track", track.ID.String()),
		})
	}
	slog.Debug("top tracks fetched", "artist", id, "count", len(out))
	return out, nil
}

func firstImage(images []spotify.Image) string {
	if len(images) == 0 {
		return ""
	}
	return images[0].URL
}

func externalURL(urls map[string]string, kind, id string) string {
	if link := urls["spotify"]; link != "" {
		return link
	}
	return fmt.Sprintf("https://open.spotify.com/%s/%s", kind, id)
}
