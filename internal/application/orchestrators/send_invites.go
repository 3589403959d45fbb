package orchestrators

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"hackfest/internal/domain/team"
)

// InviteSender is the invite accessor interface needed for sending.
type InviteSender interface {
	Send(ctx context.Context, teamID, userID string) error
}

// SendInvitesInput carries input for the invite batch orchestrator.
type SendInvitesInput struct {
	ActorID string    // must be the team leader
	Team    team.Team // current team snapshot
	UserIDs []string  // selected candidates, in selection order
}

// SendInvitesDeps holds dependencies for SendInvites.
type SendInvitesDeps struct {
	Invites InviteSender
}

// InviteOutcome is the result of one attempted invite.
type InviteOutcome struct {
	UserID string
	Err    error // nil on success
}

// BatchReport aggregates the per-item outcomes of an invite batch.
// A batch of N attempts can end in any mixture of successes and
// failures; the report makes that explicit instead of relying on
// side-effect notifications alone.
type BatchReport struct {
	Items []InviteOutcome
}

// Sent returns the number of successful invites.
func (r BatchReport) Sent() int {
	n := 0
	for _, it := range r.Items {
		if it.Err == nil {
			n++
		}
	}
	return n
}

// Failed returns the number of failed invites.
func (r BatchReport) Failed() int {
	return len(r.Items) - r.Sent()
}

// FailedUserIDs returns the ids whose invites failed, in attempt order.
// The handler re-selects these so a partial failure can be retried.
func (r BatchReport) FailedUserIDs() []string {
	var ids []string
	for _, it := range r.Items {
		if it.Err != nil {
			ids = append(ids, it.UserID)
		}
	}
	return ids
}

// ExecuteSendInvites sends one invite per selected user, sequentially and
// independently: a failure never aborts the remaining attempts.
// PRE: ActorID is the team leader; UserIDs fit the team's open slots
// POST: returns one outcome per input user id, in order
// INVARIANT: members never exceed team.MaxMembers; over-selection is
// rejected before any invite is sent
func ExecuteSendInvites(ctx context.Context, input SendInvitesInput, deps SendInvitesDeps) (BatchReport, error) {
	if len(input.UserIDs) == 0 {
		return BatchReport{}, errors.New("no users selected")
	}
	if !input.Team.IsLeader(input.ActorID) {
		return BatchReport{}, errors.New("only the team leader can send invites")
	}
	if slots := input.Team.OpenSlots(); len(input.UserIDs) > slots {
		return BatchReport{}, fmt.Errorf("cannot invite %d users: only %d open slots", len(input.UserIDs), slots)
	}

	members := input.Team.MemberIDSet()
	report := BatchReport{Items: make([]InviteOutcome, 0, len(input.UserIDs))}
	for _, userID := range input.UserIDs {
		outcome := InviteOutcome{UserID: userID}
		if members[userID] {
			outcome.Err = errors.New("user is already a team member")
		} else {
			// Serialized on purpose: one POST at a time bounds backend
			// load at the cost of batch latency.
			outcome.Err = deps.Invites.Send(ctx, input.Team.ID, userID)
		}
		report.Items = append(report.Items, outcome)
	}

	slog.Info("invite_event", "event", "batch_sent", "team_id", input.Team.ID,
		"attempted", len(report.Items), "sent", report.Sent(), "failed", report.Failed())
	return report, nil
}
