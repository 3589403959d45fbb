package team

import (
	"context"

	"hackfest/internal/adapters/backend"
	"hackfest/internal/domain/team"
)

// HTTPAccessor implements Accessor against the backend API.
type HTTPAccessor struct {
	client *backend.Client
}

// NewHTTPAccessor creates a team accessor using the shared client.
func NewHTTPAccessor(client *backend.Client) *HTTPAccessor {
	return &HTTPAccessor{client: client}
}

// Fetch retrieves the caller's team.
// POST: Absent for a backend 404 (no team), Failed for anything else
func (a *HTTPAccessor) Fetch(ctx context.Context) backend.Remote[team.Team] {
	var t team.Team
	err := a.client.Get(ctx, backend.GetTeam, &t)
	if err != nil {
		if backend.IsNotFound(err) {
			return backend.Absent[team.Team]()
		}
		return backend.Failed[team.Team](err)
	}
	if t.ID == "" {
		return backend.Absent[team.Team]()
	}
	return backend.Present(t)
}

// Leave posts a leave request for the given team.
func (a *HTTPAccessor) Leave(ctx context.Context, teamID string) error {
	body := map[string]string{"teamId": teamID}
	return a.client.Post(ctx, backend.LeaveTeam, body, nil)
}

// Disband deletes the team.
func (a *HTTPAccessor) Disband(ctx context.Context, teamID string) error {
	return a.client.Delete(ctx, backend.DeleteTeam, "/"+teamID)
}
