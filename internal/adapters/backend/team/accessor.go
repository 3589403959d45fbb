package team

import (
	"context"

	"hackfest/internal/adapters/backend"
	"hackfest/internal/domain/team"
)

// Accessor reads and mutates the current user's team.
type Accessor interface {
	// Fetch returns the caller's team. Absent means "no team" (a valid
	// state); Failed means the read itself broke.
	Fetch(ctx context.Context) backend.Remote[team.Team]
	// Leave removes the caller from the team.
	Leave(ctx context.Context, teamID string) error
	// Disband deletes the team entirely. Irreversible.
	Disband(ctx context.Context, teamID string) error
}
