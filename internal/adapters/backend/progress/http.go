package progress

import (
	"context"

	"hackfest/internal/adapters/backend"
	"hackfest/internal/domain/stage"
)

// HTTPAccessor implements Accessor against the backend API.
type HTTPAccessor struct {
	client *backend.Client
}

// NewHTTPAccessor creates a progress accessor using the shared client.
func NewHTTPAccessor(client *backend.Client) *HTTPAccessor {
	return &HTTPAccessor{client: client}
}

// Stages fetches the ordered competition timeline.
func (a *HTTPAccessor) Stages(ctx context.Context) ([]stage.Stage, error) {
	var list []stage.Stage
	if err := a.client.Get(ctx, backend.GetStages, &list); err != nil {
		return nil, err
	}
	if list == nil {
		list = []stage.Stage{}
	}
	return list, nil
}

// Progress fetches the team's current stage pointer.
// POST: Absent for 404 or an empty record, Failed otherwise
func (a *HTTPAccessor) Progress(ctx context.Context) backend.Remote[stage.Progress] {
	var p stage.Progress
	err := a.client.Get(ctx, backend.GetProgress, &p)
	if err != nil {
		if backend.IsNotFound(err) {
			return backend.Absent[stage.Progress]()
		}
		return backend.Failed[stage.Progress](err)
	}
	if p.StageID == "" {
		return backend.Absent[stage.Progress]()
	}
	return backend.Present(p)
}
