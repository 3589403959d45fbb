package stats

import (
	"context"

	"hackfest/internal/domain/stats"
)

// Accessor reads precomputed aggregation snapshots. Every admin page
// load re-fetches the whole snapshot; nothing is updated incrementally.
type Accessor interface {
	Admin(ctx context.Context) (stats.AdminStats, error)
	Homepage(ctx context.Context) (stats.HomepageStats, error)
	Leaderboard(ctx context.Context) ([]stats.LeaderboardRow, error)
	Colleges(ctx context.Context) ([]string, error)
}
