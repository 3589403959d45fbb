package session

import (
	"context"

	"hackfest/internal/adapters/backend"
	"hackfest/internal/domain/user"
)

// HTTPAccessor implements Accessor against the backend API.
type HTTPAccessor struct {
	client *backend.Client
}

// NewHTTPAccessor creates a session accessor using the shared client.
func NewHTTPAccessor(client *backend.Client) *HTTPAccessor {
	return &HTTPAccessor{client: client}
}

// sessionPayload is the GET_SESSION response shape.
type sessionPayload struct {
	UserID string `json:"userId"`
	TeamID string `json:"teamId"`
}

// Fetch combines GET_SESSION and ME into one Identity.
// POST: Absent on any failure; a session without a userId is also Absent
func (a *HTTPAccessor) Fetch(ctx context.Context) backend.Remote[Identity] {
	var sess sessionPayload
	if err := a.client.Get(ctx, backend.GetSession, &sess); err != nil {
		return backend.Absent[Identity]()
	}
	if sess.UserID == "" {
		return backend.Absent[Identity]()
	}

	var profile user.User
	if err := a.client.Get(ctx, backend.Me, &profile); err != nil {
		return backend.Absent[Identity]()
	}

	return backend.Present(Identity{
		UserID: sess.UserID,
		TeamID: sess.TeamID,
		User:   profile,
	})
}
