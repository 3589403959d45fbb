package projections

import (
	"context"
	"log/slog"

	"hackfest/internal/domain/stats"
)

// AdminStatsReader is the stats accessor interface needed by the admin page.
type AdminStatsReader interface {
	Admin(ctx context.Context) (stats.AdminStats, error)
}

// GetAdminStatsDeps holds dependencies for the admin stats projection.
type GetAdminStatsDeps struct {
	Stats AdminStatsReader
}

// AdminStatsResult carries the snapshot plus its fetch outcome. When the
// fetch fails the charts render zeros and the page notifies exactly once.
type AdminStatsResult struct {
	Stats  stats.AdminStats
	Failed bool
}

// QueryAdminStats fetches the full aggregation snapshot.
// POST: never errors; a failed fetch yields the zero snapshot with
// Failed set so the caller can raise a single notification
func QueryAdminStats(ctx context.Context, deps GetAdminStatsDeps) AdminStatsResult {
	snap, err := deps.Stats.Admin(ctx)
	if err != nil {
		slog.Error("admin_stats_fetch_failed", "error", err.Error())
		return AdminStatsResult{Stats: stats.ZeroAdminStats(), Failed: true}
	}
	if snap.ByCollege == nil {
		snap.ByCollege = []stats.CountRow{}
	}
	if snap.ByState == nil {
		snap.ByState = []stats.CountRow{}
	}
	if snap.Registrations == nil {
		snap.Registrations = []stats.DateBucket{}
	}
	return AdminStatsResult{Stats: snap}
}
