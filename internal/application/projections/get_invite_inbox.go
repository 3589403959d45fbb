package projections

import (
	"context"

	"hackfest/internal/domain/invite"
)

// InviteLister is the invite accessor interface needed by the inbox.
type InviteLister interface {
	List(ctx context.Context) ([]invite.Invite, error)
}

// GetInviteInboxDeps holds dependencies for the invite inbox projection.
type GetInviteInboxDeps struct {
	Invites InviteLister
}

// InviteInboxResult splits the leader's invites by direction.
type InviteInboxResult struct {
	Incoming []invite.Invite
	Outgoing []invite.Invite
}

// QueryInviteInbox fetches and splits pending invites.
// POST: every invite lands in exactly one sub-list; unknown directions
// are dropped rather than misfiled
func QueryInviteInbox(ctx context.Context, deps GetInviteInboxDeps) (InviteInboxResult, error) {
	result := InviteInboxResult{
		Incoming: []invite.Invite{},
		Outgoing: []invite.Invite{},
	}
	list, err := deps.Invites.List(ctx)
	if err != nil {
		return result, err
	}
	for _, inv := range list {
		switch inv.Direction {
		case invite.DirectionIncoming:
			result.Incoming = append(result.Incoming, inv)
		case invite.DirectionOutgoing:
			result.Outgoing = append(result.Outgoing, inv)
		}
	}
	return result, nil
}
