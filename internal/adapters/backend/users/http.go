package users

import (
	"context"
	"fmt"
	"net/url"

	"hackfest/internal/adapters/backend"
	"hackfest/internal/domain/user"
)

// HTTPAccessor implements Accessor against the backend API.
type HTTPAccessor struct {
	client *backend.Client
}

// NewHTTPAccessor creates a user search accessor using the shared client.
func NewHTTPAccessor(client *backend.Client) *HTTPAccessor {
	return &HTTPAccessor{client: client}
}

// Search queries users by username/email prefix.
// POST: never returns a nil slice on success
func (a *HTTPAccessor) Search(ctx context.Context, query string, offset, limit int) ([]user.User, error) {
	suffix := fmt.Sprintf("?q=%s&offset=%d&limit=%d", url.QueryEscape(query), offset, limit)
	var list []user.User
	if err := a.client.GetPath(ctx, backend.ListUsers, suffix, &list); err != nil {
		return nil, err
	}
	if list == nil {
		list = []user.User{}
	}
	return list, nil
}
