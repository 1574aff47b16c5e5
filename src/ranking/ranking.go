// Package ranking blends catalog popularity and video view counts into a
// single score and orders tracks by it.
package ranking

import (
	"cmp"
	"slices"

	"artisthub/src/models"
)

const (
	// ViewsDivisor maps raw view counts onto the popularity scale.
	ViewsDivisor = 100_000
	// MaxNormalizedViews caps the video signal so one viral video cannot dominate.
	MaxNormalizedViews = 100.0
	MaxPopularity      = 100
)

type Weights struct {
	Spotify float64
	Youtube float64
}

func WeightsFrom(s models.Settings) Weights {
	return Weights{Spotify: s.SpotifyWeight, Youtube: s.YoutubeWeight}
}

// NormalizeViews rescales a view count to [0, MaxNormalizedViews].
func NormalizeViews(views int64) float64 {
	if views <= 0 {
		return 0
	}
	return min(MaxNormalizedViews, float64(views)/ViewsDivisor)
}

// Score is popularity*Spotify, plus NormalizeViews(*views)*Youtube when views is non-nil.
func Score(popularity int, views *int64, w Weights) float64 {
	score := float64(clampPopularity(popularity)) * w.Spotify
	if views != nil {
		score += NormalizeViews(*views) * w.Youtube
	}
	return score
}

// Rank scores every track, sorts by score descending and keeps the first limit.
// Equal scores keep their input order. tracks is not modified.
func Rank(tracks []models.TrackRecord, w Weights, limit int) []models.TrackRecord {
	ranked := make([]models.TrackRecord, len(tracks))
	copy(ranked, tracks)

	for i := range ranked {
		ranked[i].Popularity = clampPopularity(ranked[i].Popularity)
		ranked[i].Score = Score(ranked[i].Popularity, ranked[i].YoutubeViews, w)
	}

	slices.SortStableFunc(ranked, func(a, b models.TrackRecord) int {
		return cmp.Compare(b.Score, a.Score)
	})

	if limit < 0 {
		limit = 0
	}
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

func clampPopularity(p int) int {
	return max(0, min(MaxPopularity, p))
}
