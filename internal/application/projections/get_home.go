package projections

import (
	"context"

	"hackfest/internal/domain/stats"
)

// HomeStatsReader is the stats accessor interface needed by the landing page.
type HomeStatsReader interface {
	Homepage(ctx context.Context) (stats.HomepageStats, error)
	Leaderboard(ctx context.Context) ([]stats.LeaderboardRow, error)
}

// GetHomeDeps holds dependencies for the landing-page projection.
type GetHomeDeps struct {
	Stats HomeStatsReader
}

// HomeResult carries the public landing-page data. Public read failures
// degrade silently to zeros/empty; no notification fires.
type HomeResult struct {
	Stats       stats.HomepageStats
	Leaderboard []stats.LeaderboardRow
}

// QueryGetHome fetches the landing-page counters and leaderboard.
func QueryGetHome(ctx context.Context, deps GetHomeDeps) HomeResult {
	result := HomeResult{Leaderboard: []stats.LeaderboardRow{}}

	if s, err := deps.Stats.Homepage(ctx); err == nil {
		result.Stats = s
	}
	if rows, err := deps.Stats.Leaderboard(ctx); err == nil {
		result.Leaderboard = rows
	}
	return result
}
