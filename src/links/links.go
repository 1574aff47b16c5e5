// Package links builds outbound links for platforms without a usable search API.
package links

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

var slugSanitizer = regexp.MustCompile(`[^\p{L}\d]+`)

type Builder struct {
	storefront string
}

func NewBuilder(appleMusicStorefront string) *Builder {
	if appleMusicStorefront == "" {
		appleMusicStorefront = "us"
	}
	return &Builder{storefront: strings.ToLower(appleMusicStorefront)}
}

// AppleMusic returns a search URL for "artist title" in the configured storefront.
func (b *Builder) AppleMusic(artist, title string) string {
	term := url.QueryEscape(strings.TrimSpace(artist + " " + title))
	return fmt.Sprintf("https://music.apple.com/%s/search?term=%s", b.storefront, term)
}

// AudiomackSong returns <base>/song/<slug>, or "" without a base URL.
func (b *Builder) AudiomackSong(base, title string) string {
	return audiomack(base, "song", title)
}

// AudiomackRelease links albums under /album/ and everything else under /song/.
func (b *Builder) AudiomackRelease(base, releaseType, title string) string {
	if releaseType == "album" {
		return audiomack(base, "album", title)
	}
	return audiomack(base, "song", title)
}

func audiomack(base, kind, title string) string {
	base = strings.TrimRight(strings.TrimSpace(base), "/")
	slug := Slug(title)
	if base == "" || slug == "" {
		return ""
	}
	return fmt.Sprintf("%s/%s/%s", base, kind, slug)
}

// Slug lowercases s and collapses every run of non letters/digits into one dash.
func Slug(s string) string {
	s = slugSanitizer.ReplaceAllString(strings.ToLower(s), "-")
	return strings.Trim(s, "-")
}
