package video

import (
	"context"
	"fmt"

	"github.com/kkdai/youtube/v2"
)

// StatsSource returns the view count of a video.
type StatsSource interface {
	Views(ctx context.Context, videoID string) (int64, error)
}

func NewStatsSource(name string, yt *Youtube) StatsSource {
	switch name {
	case "player":
		return &PlayerStats{Client: &youtube.Client{HTTPClient: yt.HttpClient.StdClient()}}
	default:
		return apiStats{yt: yt}
	}
}

type apiStats struct {
	yt *Youtube
}

func (s apiStats) Views(ctx context.Context, videoID string) (int64, error) {
	return s.yt.apiViews(ctx, videoID)
}

// PlayerStats reads the view count from the watch page player metadata,
// which costs no Data API quota.
type PlayerStats struct {
	Client *youtube.Client
}

func (s *PlayerStats) Views(ctx context.Context, videoID string) (int64, error) {
	v, err := s.Client.GetVideoContext(ctx, videoID)
	if err != nil {
		return 0, fmt.Errorf("could not get video metadata (ID: %s): %w", videoID, err)
	}
	if v.Views < 0 {
		return 0, nil
	}
	return int64(v.Views), nil
}
