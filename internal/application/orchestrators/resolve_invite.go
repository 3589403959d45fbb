package orchestrators

import (
	"context"
	"errors"
	"log/slog"
)

// InviteResolver is the invite accessor interface needed for resolution.
type InviteResolver interface {
	Accept(ctx context.Context, inviteID string) error
	Reject(ctx context.Context, inviteID string) error
}

// ResolveInviteInput carries input for accepting or rejecting an invite.
type ResolveInviteInput struct {
	InviteID string
	ActorID  string
	Accept   bool
}

// ResolveInviteDeps holds dependencies for ResolveInvite.
type ResolveInviteDeps struct {
	Invites InviteResolver
}

// ExecuteResolveInvite accepts or rejects an incoming invite. On accept
// the backend adds the member; the invite disappears from the next list
// fetch either way.
func ExecuteResolveInvite(ctx context.Context, input ResolveInviteInput, deps ResolveInviteDeps) error {
	if input.InviteID == "" {
		return errors.New("invite id is required")
	}
	var err error
	if input.Accept {
		err = deps.Invites.Accept(ctx, input.InviteID)
	} else {
		err = deps.Invites.Reject(ctx, input.InviteID)
	}
	if err != nil {
		return err
	}
	slog.Info("invite_event", "event", "invite_resolved", "invite_id", input.InviteID,
		"accepted", input.Accept, "user_id", input.ActorID)
	return nil
}
