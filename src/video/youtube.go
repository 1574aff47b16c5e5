package video

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	cfg "artisthub/src/config"
	"artisthub/src/util"
)

var (
	ErrNoMatch    = errors.New("no matching video")
	ErrNoChannel  = errors.New("could not resolve channel")
	channelIDPath = regexp.MustCompile(`/channel/([A-Za-z0-9_-]+)`)
	handlePath    = regexp.MustCompile(`/(?:@|c/|user/)([^/?#]+)`)
)

type Videos struct {
	Items []Item `json:"items"`
}

type ID struct {
	VideoID string `json:"videoId"`
}

type Snippet struct {
	Title        string `json:"title"`
	ChannelID    string `json:"channelId"`
	ChannelTitle string `json:"channelTitle"`
}

type Item struct {
	ID      ID      `json:"id"`
	Snippet Snippet `json:"snippet"`
}

// Match is a found video. Views is nil when statistics were not requested or failed.
type Match struct {
	VideoID string
	URL     string
	Views   *int64
}

type Youtube struct {
	HttpClient *util.HttpClient
	Cfg        cfg.VideoConfig
	matcher    Matcher
	stats      StatsSource
}

func NewYoutube(cfg cfg.VideoConfig, httpClient *util.HttpClient) *Youtube {
	c := &Youtube{
		HttpClient: httpClient,
		Cfg:        cfg,
		matcher:    NewMatcher(cfg.Matcher),
	}
	c.stats = NewStatsSource(cfg.StatsSource, c)
	return c
}

func (c *Youtube) Matcher() Matcher {
	return c.matcher
}

// FindTrack searches for the track and looks up the view count of the chosen video.
func (c *Youtube) FindTrack(ctx context.Context, q Query) (*Match, error) {
	m, err := c.find(ctx, q)
	if err != nil {
		return nil, err
	}

	views, err := c.stats.Views(ctx, m.VideoID)
	if err != nil {
		slog.Warn("video statistics unavailable", "service", "youtube", "video", m.VideoID, "context", err.Error())
		return m, nil
	}
	m.Views = &views
	return m, nil
}

// FindRelease searches for a release video; no statistics are fetched.
func (c *Youtube) FindRelease(ctx context.Context, q Query) (*Match, error) {
	return c.find(ctx, q)
}

func (c *Youtube) find(ctx context.Context, q Query) (*Match, error) {
	results, err := c.search(ctx, c.searchQuery(q), c.matcher.SearchSize())
	if err != nil {
		return nil, err
	}

	r, ok := c.matcher.Match(q, results)
	if !ok || r.VideoID == "" {
		return nil, fmt.Errorf("%w for %s - %s", ErrNoMatch, q.Artist, q.Title)
	}
	return &Match{VideoID: r.VideoID, URL: WatchURL(r.VideoID)}, nil
}

func (c *Youtube) searchQuery(q Query) string {
	return strings.TrimSpace(strings.Join([]string{q.Artist, q.Title, c.Cfg.SearchSuffix}, " "))
}

func (c *Youtube) search(ctx context.Context, query string, size int) ([]SearchResult, error) {
	body, err := c.ytRequest(ctx, "search", map[string]string{
		"part":       "snippet",
		"q":          query,
		"type":       "video",
		"maxResults": strconv.Itoa(size),
	})
	if err != nil {
		return nil, err
	}

	var videos Videos
	if err = util.ParseResp(body, &videos); err != nil {
		return nil, fmt.Errorf("failed to unmarshal search body: %w", err)
	}

	results := make([]SearchResult, 0, len(videos.Items))
	for _, item := range videos.Items {
		results = append(results, SearchResult{
			VideoID:      item.ID.VideoID,
			Title:        item.Snippet.Title,
			ChannelID:    item.Snippet.ChannelID,
			ChannelTitle: item.Snippet.ChannelTitle,
		})
	}
	return results, nil
}

// ResolveChannel turns a channel URL into a channel ID. /channel/<id> is read
// directly, handles and legacy names go through a channel search.
func (c *Youtube) ResolveChannel(ctx context.Context, channelURL string) (string, error) {
	if m := channelIDPath.FindStringSubmatch(channelURL); m != nil {
		return m[1], nil
	}
	m := handlePath.FindStringSubmatch(channelURL)
	if m == nil {
		return "", fmt.Errorf("%w: unrecognised URL %q", ErrNoChannel, channelURL)
	}

	body, err := c.ytRequest(ctx, "search", map[string]string{
		"part":       "snippet",
		"q":          m[1],
		"type":       "channel",
		"maxResults": "1",
	})
	if err != nil {
		return "", err
	}

	id := gjson.GetBytes(body, "items.0.snippet.channelId").String()
	if id == "" {
		return "", fmt.Errorf("%w: no results for %q", ErrNoChannel, m[1])
	}
	return id, nil
}

// apiViews reads statistics.viewCount through the Data API. A hidden count reads as 0.
func (c *Youtube) apiViews(ctx context.Context, videoID string) (int64, error) {
	body, err := c.ytRequest(ctx, "videos", map[string]string{
		"part": "statistics",
		"id":   videoID,
	})
	if err != nil {
		return 0, err
	}

	stats := gjson.GetBytes(body, "items.0.statistics")
	if !stats.Exists() {
		return 0, fmt.Errorf("no statistics for video %s", videoID)
	}
	return stats.Get("viewCount").Int(), nil
}

func (c *Youtube) ytRequest(ctx context.Context, endpoint string, params map[string]string) ([]byte, error) {
	params["key"] = c.Cfg.APIKey
	reqURL := fmt.Sprintf("%s/%s", strings.TrimRight(c.Cfg.APIURL, "/"), endpoint)

	body, err := c.HttpClient.MakeRequest(ctx, http.MethodGet, reqURL, params, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to make request to YouTube API: %w", err)
	}
	if len(body) == 0 {
		return nil, fmt.Errorf("YouTube API returned empty response for: %s", endpoint)
	}
	return body, nil
}

func WatchURL(videoID string) string {
	return "https://www.youtube.com/watch?v=" + videoID
}
