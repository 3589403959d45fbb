package statement

import (
	"context"

	"hackfest/internal/domain/statement"
)

// Accessor reads immutable problem-statement reference data.
type Accessor interface {
	List(ctx context.Context) ([]statement.Statement, error)
	Get(ctx context.Context, id string) (statement.Statement, error)
}
