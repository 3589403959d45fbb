package statement

import (
	"context"

	"hackfest/internal/adapters/backend"
	"hackfest/internal/domain/statement"
)

// HTTPAccessor implements Accessor against the backend API.
type HTTPAccessor struct {
	client *backend.Client
}

// NewHTTPAccessor creates a statement accessor using the shared client.
func NewHTTPAccessor(client *backend.Client) *HTTPAccessor {
	return &HTTPAccessor{client: client}
}

// List fetches all problem statements.
func (a *HTTPAccessor) List(ctx context.Context) ([]statement.Statement, error) {
	var list []statement.Statement
	if err := a.client.Get(ctx, backend.GetProblems, &list); err != nil {
		return nil, err
	}
	if list == nil {
		list = []statement.Statement{}
	}
	return list, nil
}

// Get fetches one problem statement by id.
func (a *HTTPAccessor) Get(ctx context.Context, id string) (statement.Statement, error) {
	var s statement.Statement
	err := a.client.GetPath(ctx, backend.GetProblem, "/"+id, &s)
	return s, err
}
