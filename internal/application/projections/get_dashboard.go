package projections

import (
	"context"

	"hackfest/internal/adapters/backend"
	"hackfest/internal/adapters/backend/session"
	"hackfest/internal/domain/statement"
	"hackfest/internal/domain/submission"
	"hackfest/internal/domain/team"
)

// DashboardTeamReader is the team accessor interface needed by the dashboard.
type DashboardTeamReader interface {
	Fetch(ctx context.Context) backend.Remote[team.Team]
}

// DashboardSubmissionReader is the submission accessor interface needed by the dashboard.
type DashboardSubmissionReader interface {
	Fetch(ctx context.Context) backend.Remote[submission.Submission]
}

// DashboardStatementReader is the statement accessor interface needed by the dashboard.
type DashboardStatementReader interface {
	List(ctx context.Context) ([]statement.Statement, error)
}

// GetDashboardQuery carries input for the dashboard projection.
type GetDashboardQuery struct {
	Identity session.Identity
}

// GetDashboardDeps holds dependencies for the dashboard projection.
type GetDashboardDeps struct {
	Teams       DashboardTeamReader
	Submissions DashboardSubmissionReader
	Invites     InviteLister
	Statements  DashboardStatementReader
}

// DashboardResult carries the composed participant dashboard state.
// Each section keeps its own fetch outcome; one failing accessor never
// blanks the others.
type DashboardResult struct {
	Identity   session.Identity
	Team       backend.Remote[team.Team]
	Submission backend.Remote[submission.Submission]
	Inbox      InviteInboxResult
	InboxErr   error // invite list fetch failure, rendered as empty lists
	Statements []statement.Statement
	IsLeader   bool
	OpenSlots  int
}

// QueryGetDashboard composes the participant dashboard.
// POST: Team/Submission carry their own Present/Absent/Failed states;
// the invite inbox only populates for the team leader
func QueryGetDashboard(ctx context.Context, query GetDashboardQuery, deps GetDashboardDeps) DashboardResult {
	result := DashboardResult{Identity: query.Identity}

	result.Team = deps.Teams.Fetch(ctx)
	if t, ok := result.Team.Value(); ok {
		result.IsLeader = t.IsLeader(query.Identity.UserID)
		result.OpenSlots = t.OpenSlots()
	}

	result.Submission = deps.Submissions.Fetch(ctx)

	if result.IsLeader {
		inbox, err := QueryInviteInbox(ctx, GetInviteInboxDeps{Invites: deps.Invites})
		result.Inbox = inbox
		result.InboxErr = err
	}

	// Statement list is reference data; a failure renders an empty picker.
	if deps.Statements != nil {
		if list, err := deps.Statements.List(ctx); err == nil {
			result.Statements = list
		}
	}

	return result
}
