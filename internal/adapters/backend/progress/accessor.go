package progress

import (
	"context"

	"hackfest/internal/adapters/backend"
	"hackfest/internal/domain/stage"
)

// Accessor reads the competition timeline and the team's position in it.
type Accessor interface {
	// Stages returns the ordered stage list with active windows.
	Stages(ctx context.Context) ([]stage.Stage, error)
	// Progress returns the team's stage pointer; Absent means no
	// progress record yet, which renders differently from Failed.
	Progress(ctx context.Context) backend.Remote[stage.Progress]
}
