package submission

import (
	"context"

	"hackfest/internal/adapters/backend"
	"hackfest/internal/domain/submission"
)

// Accessor reads and deletes the current team's submission.
type Accessor interface {
	// Fetch returns the team's submission; Absent when none exists.
	Fetch(ctx context.Context) backend.Remote[submission.Submission]
	// Delete removes a pending submission. The backend enforces the
	// status rule; a rejection carries its message back.
	Delete(ctx context.Context, id string) error
}
