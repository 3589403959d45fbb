package invite

import (
	"errors"
	"time"
)

// Direction tags an invite from the viewer's perspective.
// Incoming: another team invited the viewer. Outgoing: the viewer's
// team leader invited a user.
const (
	DirectionIncoming = "incoming"
	DirectionOutgoing = "outgoing"
)

// Invite links a team and a user until the backend resolves it.
// Resolution (accept/reject) removes it from the list; this layer never
// sees resolved invites.
type Invite struct {
	ID        string    `json:"_id"`
	TeamID    string    `json:"team"`
	TeamName  string    `json:"teamName"`
	UserID    string    `json:"user"`
	UserName  string    `json:"userName"`
	Direction string    `json:"direction"`
	CreatedAt time.Time `json:"createdAt"`
}

// Validate checks the invite shape.
func (i Invite) Validate() error {
	if i.ID == "" {
		return errors.New("invite id cannot be empty")
	}
	if i.Direction != DirectionIncoming && i.Direction != DirectionOutgoing {
		return errors.New("invite direction must be incoming or outgoing")
	}
	return nil
}
