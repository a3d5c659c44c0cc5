// Package identity is the boundary to the identity collaborator. The core
// only needs the current user id; no active user means reads fall back to
// empty/default aggregates and mutations are rejected.
package identity

import "context"

// HeaderName is the request header carrying the authenticated user id.
// Producing it is the session layer's job, outside this core.
const HeaderName = "X-User-ID"

type userIDKey struct{}

// WithUserID returns a context carrying the active user id.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey{}, userID)
}

// UserID returns the active user id, or false when there is none.
func UserID(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey{}).(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}
