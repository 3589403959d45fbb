package orchestrators

import (
	"context"
	"errors"
	"log/slog"
)

// ProblemAssigner is the judge accessor interface needed for assignment.
type ProblemAssigner interface {
	Assign(ctx context.Context, judgeID, statementID string) error
	Deassign(ctx context.Context, judgeID, statementID string) error
}

// AssignProblemInput carries input for the assignment orchestrators.
type AssignProblemInput struct {
	JudgeID     string
	StatementID string
	ActorID     string
}

// AssignProblemDeps holds dependencies for problem assignment.
type AssignProblemDeps struct {
	Judges ProblemAssigner
}

// ExecuteAssignProblem attaches a problem statement to a judge.
func ExecuteAssignProblem(ctx context.Context, input AssignProblemInput, deps AssignProblemDeps) error {
	if err := validateAssignInput(input); err != nil {
		return err
	}
	if err := deps.Judges.Assign(ctx, input.JudgeID, input.StatementID); err != nil {
		return err
	}
	slog.Info("judge_event", "event", "problem_assigned", "judge_id", input.JudgeID,
		"problem_id", input.StatementID, "actor_id", input.ActorID)
	return nil
}

// ExecuteDeassignProblem detaches a problem statement from a judge.
func ExecuteDeassignProblem(ctx context.Context, input AssignProblemInput, deps AssignProblemDeps) error {
	if err := validateAssignInput(input); err != nil {
		return err
	}
	if err := deps.Judges.Deassign(ctx, input.JudgeID, input.StatementID); err != nil {
		return err
	}
	slog.Info("judge_event", "event", "problem_deassigned", "judge_id", input.JudgeID,
		"problem_id", input.StatementID, "actor_id", input.ActorID)
	return nil
}

func validateAssignInput(input AssignProblemInput) error {
	if input.JudgeID == "" {
		return errors.New("judge id is required")
	}
	if input.StatementID == "" {
		return errors.New("problem statement id is required")
	}
	return nil
}
