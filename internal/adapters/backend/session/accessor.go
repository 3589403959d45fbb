package session

import (
	"context"

	"hackfest/internal/adapters/backend"
	"hackfest/internal/domain/user"
)

// Identity combines the backend's session metadata with the full user
// profile. Any fetch failure collapses to Absent: an unreadable session
// is treated as "not authenticated", never as a page error.
type Identity struct {
	UserID string
	TeamID string // empty when the user has no team
	User   user.User
}

// HasTeam reports whether the authenticated user currently has a team.
// This is the only "team present" flag in the app; it is re-resolved on
// every request, so the backend remains the single writer.
func (i Identity) HasTeam() bool {
	return i.TeamID != ""
}

// Accessor fetches the current authenticated identity.
type Accessor interface {
	Fetch(ctx context.Context) backend.Remote[Identity]
}
