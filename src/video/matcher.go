package video

import (
	"strings"
)

var filterList = []string{"live", "remix", "instrumental", "cover", "karaoke"}

type SearchResult struct {
	VideoID      string
	Title        string
	ChannelID    string
	ChannelTitle string
}

// Query describes what is being looked up. ChannelID is the artist's resolved channel, if any.
type Query struct {
	Artist    string
	Title     string
	ChannelID string
}

// Matcher picks one video out of a search result page.
type Matcher interface {
	Name() string
	SearchSize() int // results to request per search
	Match(q Query, results []SearchResult) (SearchResult, bool)
}

func NewMatcher(name string) Matcher {
	switch name {
	case "channel":
		return ChannelPreferredMatch()
	default:
		return BestEffortFirstMatch()
	}
}

type bestEffortFirstMatch struct{}

// BestEffortFirstMatch trusts the search engine: the first result wins.
func BestEffortFirstMatch() Matcher { return bestEffortFirstMatch{} }

func (bestEffortFirstMatch) Name() string    { return "first" }
func (bestEffortFirstMatch) SearchSize() int { return 1 }

func (bestEffortFirstMatch) Match(_ Query, results []SearchResult) (SearchResult, bool) {
	if len(results) == 0 {
		return SearchResult{}, false
	}
	return results[0], true
}

type channelPreferredMatch struct{}

// ChannelPreferredMatch prefers the artist's own or "- Topic" channel, then the
// first result without an unwanted keyword, then the first result.
func ChannelPreferredMatch() Matcher { return channelPreferredMatch{} }

func (channelPreferredMatch) Name() string    { return "channel" }
func (channelPreferredMatch) SearchSize() int { return 5 }

func (channelPreferredMatch) Match(q Query, results []SearchResult) (SearchResult, bool) {
	if len(results) == 0 {
		return SearchResult{}, false
	}

	for _, r := range results {
		if isArtistChannel(q, r) && filter(q, r.Title) {
			return r, true
		}
	}
	for _, r := range results {
		if filter(q, r.Title) {
			return r, true
		}
	}
	return results[0], true
}

func isArtistChannel(q Query, r SearchResult) bool {
	if q.ChannelID != "" && r.ChannelID == q.ChannelID {
		return true
	}
	return strings.HasSuffix(r.ChannelTitle, "- Topic") || strings.EqualFold(r.ChannelTitle, q.Artist)
}

// filter rejects titles with a keyword the track itself doesn't carry.
func filter(q Query, videoTitle string) bool {
	for _, keyword := range filterList {
		if !containsLower(q.Title, keyword) && !containsLower(q.Artist, keyword) && containsLower(videoTitle, keyword) {
			return false
		}
	}
	return true
}

func containsLower(str string, substr string) bool {
	return strings.Contains(
		strings.ToLower(str),
		strings.ToLower(substr),
	)
}
