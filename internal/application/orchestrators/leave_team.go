package orchestrators

import (
	"context"
	"errors"
	"log/slog"
)

// TeamLeaver is the team accessor interface needed for leaving.
type TeamLeaver interface {
	Leave(ctx context.Context, teamID string) error
}

// LeaveTeamInput carries input for the leave orchestrator.
type LeaveTeamInput struct {
	TeamID  string
	ActorID string
}

// LeaveTeamDeps holds dependencies for LeaveTeam.
type LeaveTeamDeps struct {
	Teams TeamLeaver
}

// ExecuteLeaveTeam removes the caller from their team.
// POST: on success the caller has no team; the next identity fetch
// reflects that (the backend owns the flag, nothing is cached here)
func ExecuteLeaveTeam(ctx context.Context, input LeaveTeamInput, deps LeaveTeamDeps) error {
	if input.TeamID == "" {
		return errors.New("team id is required")
	}
	if err := deps.Teams.Leave(ctx, input.TeamID); err != nil {
		return err
	}
	slog.Info("team_event", "event", "member_left", "team_id", input.TeamID, "user_id", input.ActorID)
	return nil
}
