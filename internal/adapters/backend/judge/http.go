package judge

import (
	"context"

	"hackfest/internal/adapters/backend"
)

// HTTPAccessor implements Accessor against the backend API.
type HTTPAccessor struct {
	client *backend.Client
}

// NewHTTPAccessor creates a judge-mapping accessor using the shared client.
func NewHTTPAccessor(client *backend.Client) *HTTPAccessor {
	return &HTTPAccessor{client: client}
}

// Mapping fetches team-to-judge assignment rows.
func (a *HTTPAccessor) Mapping(ctx context.Context) ([]MappingRow, error) {
	var rows []MappingRow
	if err := a.client.Get(ctx, backend.GetTeamJudgeMapping, &rows); err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []MappingRow{}
	}
	return rows, nil
}

// Assign attaches a problem statement to a judge.
func (a *HTTPAccessor) Assign(ctx context.Context, judgeID, statementID string) error {
	body := map[string]string{"judgeId": judgeID, "problemId": statementID}
	return a.client.Post(ctx, backend.AssignProblem, body, nil)
}

// Deassign detaches a problem statement from a judge.
func (a *HTTPAccessor) Deassign(ctx context.Context, judgeID, statementID string) error {
	body := map[string]string{"judgeId": judgeID, "problemId": statementID}
	return a.client.Post(ctx, backend.DeassignProblem, body, nil)
}
