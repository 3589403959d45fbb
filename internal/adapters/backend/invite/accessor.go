package invite

import (
	"context"

	"hackfest/internal/domain/invite"
)

// Accessor manages invites for the current team leader.
type Accessor interface {
	// List returns all invites visible to the caller, tagged with a
	// direction from the caller's perspective.
	List(ctx context.Context) ([]invite.Invite, error)
	// Send invites one user to the team. One call per user; batching is
	// the orchestrator's job.
	Send(ctx context.Context, teamID, userID string) error
	// Accept resolves an incoming invite; the backend adds the member.
	Accept(ctx context.Context, inviteID string) error
	// Reject resolves an incoming invite without joining.
	Reject(ctx context.Context, inviteID string) error
}
