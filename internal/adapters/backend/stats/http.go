package stats

import (
	"context"

	"hackfest/internal/adapters/backend"
	"hackfest/internal/domain/stats"
)

// HTTPAccessor implements Accessor against the backend API.
type HTTPAccessor struct {
	client *backend.Client
}

// NewHTTPAccessor creates a stats accessor using the shared client.
func NewHTTPAccessor(client *backend.Client) *HTTPAccessor {
	return &HTTPAccessor{client: client}
}

// Admin fetches the full admin aggregation snapshot.
func (a *HTTPAccessor) Admin(ctx context.Context) (stats.AdminStats, error) {
	var s stats.AdminStats
	err := a.client.Get(ctx, backend.GetAdminStats, &s)
	return s, err
}

// Homepage fetches the public landing-page counters.
func (a *HTTPAccessor) Homepage(ctx context.Context) (stats.HomepageStats, error) {
	var s stats.HomepageStats
	err := a.client.Get(ctx, backend.GetHomepageStats, &s)
	return s, err
}

// Leaderboard fetches the public leaderboard rows.
func (a *HTTPAccessor) Leaderboard(ctx context.Context) ([]stats.LeaderboardRow, error) {
	var rows []stats.LeaderboardRow
	if err := a.client.Get(ctx, backend.GetHomepageLeaderboard, &rows); err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []stats.LeaderboardRow{}
	}
	return rows, nil
}

// Colleges fetches the registered college list.
func (a *HTTPAccessor) Colleges(ctx context.Context) ([]string, error) {
	var list []string
	if err := a.client.Get(ctx, backend.GetColleges, &list); err != nil {
		return nil, err
	}
	if list == nil {
		list = []string{}
	}
	return list, nil
}
