package submission

import (
	"context"

	"hackfest/internal/adapters/backend"
	"hackfest/internal/domain/submission"
)

// HTTPAccessor implements Accessor against the backend API.
type HTTPAccessor struct {
	client *backend.Client
}

// NewHTTPAccessor creates a submission accessor using the shared client.
func NewHTTPAccessor(client *backend.Client) *HTTPAccessor {
	return &HTTPAccessor{client: client}
}

// Fetch retrieves the team's submission.
// POST: Absent for 404 or an empty record, Failed otherwise
func (a *HTTPAccessor) Fetch(ctx context.Context) backend.Remote[submission.Submission] {
	var s submission.Submission
	err := a.client.Get(ctx, backend.GetSubmission, &s)
	if err != nil {
		if backend.IsNotFound(err) {
			return backend.Absent[submission.Submission]()
		}
		return backend.Failed[submission.Submission](err)
	}
	if s.ID == "" {
		return backend.Absent[submission.Submission]()
	}
	return backend.Present(s)
}

// Delete removes the submission by id.
func (a *HTTPAccessor) Delete(ctx context.Context, id string) error {
	return a.client.Delete(ctx, backend.DeleteSubmission, "/"+id)
}
