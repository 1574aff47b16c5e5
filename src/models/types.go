package models

// for structs used across the project

// ArtistConfig is one entry of the artists file.
type ArtistConfig struct {
	Name       string `json:"name" yaml:"name"`
	Spotify    string `json:"spotify" yaml:"spotify"`                           // catalog URL, required
	Youtube    string `json:"youtube,omitempty" yaml:"youtube,omitempty"`       // channel URL
	AppleMusic string `json:"appleMusic,omitempty" yaml:"appleMusic,omitempty"` // artist page
	Audiomack  string `json:"audiomack,omitempty" yaml:"audiomack,omitempty"`   // base URL for song/album links
}

// Settings are the tunables stored next to the artist list.
type Settings struct {
	LatestReleasesPerArtist int     `json:"latestReleasesPerArtist" yaml:"latestReleasesPerArtist"`
	SpotifyWeight           float64 `json:"spotifyWeight" yaml:"spotifyWeight"`
	YoutubeWeight           float64 `json:"youtubeWeight" yaml:"youtubeWeight"`
	TopSongsCount           int     `json:"topSongsCount" yaml:"topSongsCount"`
}

// CatalogArtist is artist metadata as returned by the catalog service.
type CatalogArtist struct {
	ID         string
	Name       string
	ImageURL   string
	SpotifyURL string
	Genres     []string
	Followers  int
}

// CatalogRelease is an album or single as returned by the catalog service.
type CatalogRelease struct {
	ID          string
	Title       string
	Type        string // album, single, compilation
	ReleaseDate string // YYYY, YYYY-MM or YYYY-MM-DD
	CoverURL    string
	SpotifyURL  string
}

// CatalogTrack is a top track as returned by the catalog service.
type CatalogTrack struct {
	ID         string
	Title      string
	CoverURL   string
	Popularity int
	SpotifyURL string
}

type ReleaseRecord struct {
	Title         string `json:"title"`
	Type          string `json:"type,omitempty"`
	ReleaseDate   string `json:"releaseDate"`
	CoverURL      string `json:"coverUrl,omitempty"`
	SpotifyURL    string `json:"spotifyUrl"`
	YoutubeURL    string `json:"youtubeUrl,omitempty"`
	AppleMusicURL string `json:"appleMusicUrl"`
	AudiomackURL  string `json:"audiomackUrl,omitempty"`
}

type ArtistRecord struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	ImageURL       string          `json:"imageUrl"`
	Genres         []string        `json:"genres,omitempty"`
	Followers      int             `json:"followers,omitempty"`
	SpotifyURL     string          `json:"spotifyUrl,omitempty"`
	YoutubeURL     string          `json:"youtubeUrl,omitempty"`
	AppleMusicURL  string          `json:"appleMusicUrl,omitempty"`
	AudiomackURL   string          `json:"audiomackUrl,omitempty"`
	LatestReleases []ReleaseRecord `json:"latestReleases"`
}

type TrackRecord struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	ArtistName    string  `json:"artistName"`
	CoverURL      string  `json:"coverUrl"`
	Popularity    int     `json:"popularity"`
	SpotifyURL    string  `json:"spotifyUrl"`
	YoutubeURL    string  `json:"youtubeUrl,omitempty"`
	YoutubeViews  *int64  `json:"youtubeViews,omitempty"` // nil when no video was found
	AppleMusicURL string  `json:"appleMusicUrl"`
	AudiomackURL  string  `json:"audiomackUrl,omitempty"`
	Score         float64 `json:"score"`
}

type Cache struct {
	LastUpdated string         `json:"lastUpdated"`
	TopSongs    []TrackRecord  `json:"topSongs"`
	Artists     []ArtistRecord `json:"artists"`
}
