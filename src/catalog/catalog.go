package catalog

import (
	"context"
	"errors"
	"regexp"

	"artisthub/src/models"
)

var (
	ErrInvalidURL         = errors.New("no artist ID in catalog URL")
	ErrMissingCredentials = errors.New("catalog credentials not set")
)

var artistIDPattern = regexp.MustCompile(`artist/([a-zA-Z0-9]+)`)

// Catalog is the music metadata provider: artist info, releases and popularity.
type Catalog interface {
	Artist(ctx context.Context, id string) (*models.CatalogArtist, error)
	Releases(ctx context.Context, id string) ([]models.CatalogRelease, error) // newest first
	TopTracks(ctx context.Context, id string) ([]models.CatalogTrack, error)
}

// ArtistID extracts the artist ID from a URL such as https://open.spotify.com/artist/<id>?si=...
func ArtistID(catalogURL string) (string, error) {
	match := artistIDPattern.FindStringSubmatch(catalogURL)
	if match == nil {
		return "", ErrInvalidURL
	}
	return match[1], nil
}
