package users

import (
	"context"

	"hackfest/internal/domain/user"
)

// Accessor searches backend user records for the invite widget.
type Accessor interface {
	// Search matches username/email prefixes, paginated by offset/limit.
	Search(ctx context.Context, query string, offset, limit int) ([]user.User, error)
}
