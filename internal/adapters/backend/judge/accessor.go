package judge

import "context"

// MappingRow is one team-to-judge assignment row for the admin screen.
type MappingRow struct {
	TeamID     string   `json:"team"`
	TeamName   string   `json:"teamName"`
	JudgeIDs   []string `json:"judges"`
	JudgeNames []string `json:"judgeNames"`
}

// Accessor reads the team/judge mapping and mutates problem assignments.
type Accessor interface {
	Mapping(ctx context.Context) ([]MappingRow, error)
	// Assign attaches a problem statement to a judge.
	Assign(ctx context.Context, judgeID, statementID string) error
	// Deassign detaches a problem statement from a judge.
	Deassign(ctx context.Context, judgeID, statementID string) error
}
