package invite

import (
	"context"

	"hackfest/internal/adapters/backend"
	"hackfest/internal/domain/invite"
)

// HTTPAccessor implements Accessor against the backend API.
type HTTPAccessor struct {
	client *backend.Client
}

// NewHTTPAccessor creates an invite accessor using the shared client.
func NewHTTPAccessor(client *backend.Client) *HTTPAccessor {
	return &HTTPAccessor{client: client}
}

// List fetches the caller's pending invites.
// POST: a backend 404 is an empty list, not an error
func (a *HTTPAccessor) List(ctx context.Context) ([]invite.Invite, error) {
	var list []invite.Invite
	if err := a.client.Get(ctx, backend.ListInvites, &list); err != nil {
		if backend.IsNotFound(err) {
			return []invite.Invite{}, nil
		}
		return nil, err
	}
	if list == nil {
		list = []invite.Invite{}
	}
	return list, nil
}

// Send posts a single invite.
func (a *HTTPAccessor) Send(ctx context.Context, teamID, userID string) error {
	body := map[string]string{"teamId": teamID, "userId": userID}
	return a.client.Post(ctx, backend.InviteUser, body, nil)
}

// Accept resolves an incoming invite.
func (a *HTTPAccessor) Accept(ctx context.Context, inviteID string) error {
	body := map[string]string{"inviteId": inviteID}
	return a.client.Post(ctx, backend.AcceptInvite, body, nil)
}

// Reject resolves an incoming invite without joining.
func (a *HTTPAccessor) Reject(ctx context.Context, inviteID string) error {
	body := map[string]string{"inviteId": inviteID}
	return a.client.Post(ctx, backend.RejectInvite, body, nil)
}
