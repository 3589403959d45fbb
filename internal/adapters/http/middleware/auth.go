package middleware

import (
	"context"
	"net/http"

	"hackfest/internal/adapters/backend"
	"hackfest/internal/adapters/backend/session"
	"hackfest/internal/domain/user"
)

// contextKey is an unexported type for context keys in this package.
type contextKey string

const identityContextKey contextKey = "identity"

// SessionCookieName is the backend's session cookie. Its presence only
// gates whether we bother asking the backend for the identity; the
// backend remains the sole authority on whether the session is valid.
const SessionCookieName = "connect.sid"

// Auth returns middleware that forwards the browser's cookies to the
// backend, resolves the authenticated identity, and sets it in context.
// It does NOT block unauthenticated requests — use RequireAuth or
// RequireAdmin for that.
func Auth(sessions session.Accessor) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := backend.WithCredentials(r.Context(), r.Header.Get("Cookie"))
			if _, err := r.Cookie(SessionCookieName); err == nil {
				if identity, ok := sessions.Fetch(ctx).Value(); ok {
					ctx = context.WithValue(ctx, identityContextKey, identity)
				}
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuth returns middleware that blocks unauthenticated requests.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetIdentityFromContext(r.Context()); !ok {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin returns middleware that blocks requests from non-admins.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := GetIdentityFromContext(r.Context())
		if !ok {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		if identity.User.Role != user.RoleAdmin {
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetIdentityFromContext extracts the resolved identity from the request context.
func GetIdentityFromContext(ctx context.Context) (session.Identity, bool) {
	identity, ok := ctx.Value(identityContextKey).(session.Identity)
	return identity, ok
}

// IsAdmin checks if the current identity is an admin.
func IsAdmin(ctx context.Context) bool {
	identity, ok := GetIdentityFromContext(ctx)
	return ok && identity.User.Role == user.RoleAdmin
}

// ContextWithIdentity returns a context with the given identity set.
// Intended for use in tests.
func ContextWithIdentity(ctx context.Context, identity session.Identity) context.Context {
	return context.WithValue(ctx, identityContextKey, identity)
}
