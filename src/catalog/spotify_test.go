package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	cfg "artisthub/src/config"
	"artisthub/src/util"
)

func TestArtistID(t *testing.T) {
	tests := []struct {
		url     string
		want    string
		wantErr bool
	}{
		{"https://open.spotify.com/artist/3TVXtAsR1Inumwj472S9r4", "3TVXtAsR1Inumwj472S9r4", false},
		{"https://open.spotify.com/artist/3TVXtAsR1Inumwj472S9r4?si=abc", "3TVXtAsR1Inumwj472S9r4", false},
		{"https://open.spotify.com/intl-fr/artist/abc123/", "abc123", false},
		{"https://open.spotify.com/album/abc123", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			got, err := ArtistID(tt.url)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ArtistID(%q) error = %v, wantErr %v", tt.url, err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, ErrInvalidURL) {
				t.Errorf("ArtistID(%q) error = %v, want ErrInvalidURL", tt.url, err)
			}
			if got != tt.want {
				t.Errorf("ArtistID(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}

func newSpotifyServer(t *testing.T, tokenStatus int) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/token", func(w http.ResponseWriter, r *http.Request) {
		if tokenStatus != http.StatusOK {
			w.WriteHeader(tokenStatus)
			w.Write([]byte(`{"error": "invalid_client"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token": "token", "token_type": "bearer", "expires_in": 3600}`))
	})
	mux.HandleFunc("/v1/artists/abc", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer token" {
			t.Errorf("Authorization = %q", r.Header.Get("Authorization"))
		}
		w.Write([]byte(`{"id": "abc", "name": "A-lex",
			"images": [{"url": "https://img/artist.jpg", "height": 640, "width": 640}],
			"genres": ["afrobeats"], "followers": {"total": 1200},
			"external_urls": {"spotify": "https://open.spotify.com/artist/abc"}}`))
	})
	mux.HandleFunc("/v1/artists/abc/albums", func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("market"); got != "US" {
			t.Errorf("market = %q, want US", got)
		}
		w.Write([]byte(`{"items": [
			{"id": "al1", "name": "First LP", "album_type": "album", "release_date": "2021-01-01",
			 "images": [{"url": "https://img/lp.jpg"}], "external_urls": {"spotify": "https://open.spotify.com/album/al1"}},
			{"id": "s1", "name": "New Single", "album_type": "single", "release_date": "2024-03-01",
			 "images": [], "external_urls": {}}
		]}`))
	})
	mux.HandleFunc("/v1/artists/abc/top-tracks", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"tracks": [
			{"id": "t1", "name": "Hit", "popularity": 80,
			 "album": {"images": [{"url": "https://img/cover.jpg"}]},
			 "external_urls": {"spotify": "https://open.spotify.com/track/t1"}}
		]}`))
	})
	mux.HandleFunc("/v1/artists/missing", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error": {"status": 404, "message": "not found"}}`))
	})
	return httptest.NewServer(mux)
}

func newTestSpotify(t *testing.T, srv *httptest.Server) (*Spotify, error) {
	t.Helper()
	c := cfg.CatalogConfig{
		ClientID:     "id",
		ClientSecret: "secret",
		Market:       "US",
		AlbumLimit:   20,
		TokenURL:     srv.URL + "/api/token",
		APIURL:       srv.URL + "/v1",
	}
	return NewSpotify(context.Background(), c, util.NewHttp(util.HttpClientConfig{Timeout: 5}))
}

func TestSpotify(t *testing.T) {
	srv := newSpotifyServer(t, http.StatusOK)
	defer srv.Close()

	sp, err := newTestSpotify(t, srv)
	if err != nil {
		t.Fatalf("NewSpotify() error = %v", err)
	}
	ctx := context.Background()

	artist, err := sp.Artist(ctx, "abc")
	if err != nil {
		t.Fatalf("Artist() error = %v", err)
	}
	if artist.Name != "A-lex" || artist.ImageURL != "https://img/artist.jpg" || artist.Followers != 1200 {
		t.Errorf("Artist() = %+v", artist)
	}

	releases, err := sp.Releases(ctx, "abc")
	if err != nil {
		t.Fatalf("Releases() error = %v", err)
	}
	if len(releases) != 2 || releases[0].Title != "New Single" {
		t.Fatalf("Releases() = %+v, want newest first", releases)
	}
	if releases[0].SpotifyURL != "https://open.spotify.com/album/s1" {
		t.Errorf("fallback SpotifyURL = %q", releases[0].SpotifyURL)
	}
	if releases[1].Type != "album" || releases[1].CoverURL != "https://img/lp.jpg" {
		t.Errorf("Releases()[1] = %+v", releases[1])
	}

	tracks, err := sp.TopTracks(ctx, "abc")
	if err != nil {
		t.Fatalf("TopTracks() error = %v", err)
	}
	if len(tracks) != 1 || tracks[0].Popularity != 80 || tracks[0].CoverURL != "https://img/cover.jpg" {
		t.Errorf("TopTracks() = %+v", tracks)
	}

	if _, err := sp.Artist(ctx, "missing"); err == nil {
		t.Error("Artist(missing) error = nil, want error")
	}
}

func TestNewSpotify_TokenFailure(t *testing.T) {
	srv := newSpotifyServer(t, http.StatusUnauthorized)
	defer srv.Close()

	if _, err := newTestSpotify(t, srv); err == nil {
		t.Error("NewSpotify() error = nil, want token error")
	}
}

func TestNewSpotify_MissingCredentials(t *testing.T) {
	_, err := NewSpotify(context.Background(), cfg.CatalogConfig{ClientID: "id"}, util.NewHttp(util.HttpClientConfig{}))
	if !errors.Is(err, ErrMissingCredentials) {
		t.Errorf("NewSpotify() error = %v, want ErrMissingCredentials", err)
	}
}
