package orchestrators

import (
	"context"
	"errors"
	"log/slog"

	"hackfest/internal/domain/team"
)

// TeamDisbander is the team accessor interface needed for disbanding.
type TeamDisbander interface {
	Disband(ctx context.Context, teamID string) error
}

// DisbandTeamInput carries input for the disband orchestrator.
type DisbandTeamInput struct {
	ActorID string
	Team    team.Team
}

// DisbandTeamDeps holds dependencies for DisbandTeam.
type DisbandTeamDeps struct {
	Teams TeamDisbander
}

// ExecuteDisbandTeam deletes the team. Terminal: there is no undo.
// PRE: ActorID is the team leader
func ExecuteDisbandTeam(ctx context.Context, input DisbandTeamInput, deps DisbandTeamDeps) error {
	if input.Team.ID == "" {
		return errors.New("team id is required")
	}
	if !input.Team.IsLeader(input.ActorID) {
		return errors.New("only the team leader can disband the team")
	}
	if err := deps.Teams.Disband(ctx, input.Team.ID); err != nil {
		return err
	}
	slog.Info("team_event", "event", "team_disbanded", "team_id", input.Team.ID, "user_id", input.ActorID)
	return nil
}
