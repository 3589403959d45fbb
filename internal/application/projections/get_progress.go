package projections

import (
	"context"

	"hackfest/internal/adapters/backend"
	"hackfest/internal/domain/stage"
)

// ProgressReader is the progress accessor interface needed by the timeline page.
type ProgressReader interface {
	Stages(ctx context.Context) ([]stage.Stage, error)
	Progress(ctx context.Context) backend.Remote[stage.Progress]
}

// GetProgressDeps holds dependencies for the progress projection.
type GetProgressDeps struct {
	Progress ProgressReader
}

// StageView is one timeline row with the team's position marked.
type StageView struct {
	Stage   stage.Stage
	Current bool
	Reached bool // current or earlier in the ordered timeline
}

// ProgressResult carries the composed timeline state.
type ProgressResult struct {
	Stages       []StageView
	Progress     backend.Remote[stage.Progress]
	Disqualified bool
}

// QueryGetProgress composes the stage timeline with the team's pointer.
// POST: an Absent progress record renders a timeline with nothing
// reached, distinct from a Failed fetch
func QueryGetProgress(ctx context.Context, deps GetProgressDeps) (ProgressResult, error) {
	stages, err := deps.Progress.Stages(ctx)
	if err != nil {
		return ProgressResult{}, err
	}

	result := ProgressResult{
		Stages:   make([]StageView, 0, len(stages)),
		Progress: deps.Progress.Progress(ctx),
	}

	currentID := ""
	if p, ok := result.Progress.Value(); ok {
		currentID = p.StageID
		result.Disqualified = p.Disqualified
	}

	reached := currentID != ""
	for _, s := range stages {
		view := StageView{Stage: s, Current: s.ID == currentID, Reached: reached}
		result.Stages = append(result.Stages, view)
		if s.ID == currentID {
			// Stages after the current one are not reached yet.
			reached = false
		}
	}
	return result, nil
}
