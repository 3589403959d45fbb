package orchestrators

import (
	"context"
	"errors"
	"log/slog"
)

// SubmissionDeleter is the submission accessor interface needed for deletion.
type SubmissionDeleter interface {
	Delete(ctx context.Context, id string) error
}

// DeleteSubmissionInput carries input for the delete orchestrator.
type DeleteSubmissionInput struct {
	SubmissionID string
	ActorID      string
}

// DeleteSubmissionDeps holds dependencies for DeleteSubmission.
type DeleteSubmissionDeps struct {
	Submissions SubmissionDeleter
}

// ExecuteDeleteSubmission deletes a pending submission. The backend is
// authoritative about the status rule; a rejection propagates with its
// message and leaves the rendered state untouched.
func ExecuteDeleteSubmission(ctx context.Context, input DeleteSubmissionInput, deps DeleteSubmissionDeps) error {
	if input.SubmissionID == "" {
		return errors.New("submission id is required")
	}
	if err := deps.Submissions.Delete(ctx, input.SubmissionID); err != nil {
		return err
	}
	slog.Info("submission_event", "event", "submission_deleted", "submission_id", input.SubmissionID, "user_id", input.ActorID)
	return nil
}
