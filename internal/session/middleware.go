// Package session provides HTTP middleware for session management.
package session

import (
	"context"
	"net/http"
)

// contextKey is a type for context keys to avoid collisions.
type contextKey string

const ctxKey contextKey = "session"

// Middleware creates a middleware that adds session data to the request
// context when a valid session cookie is present.
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, err := m.GetSession(r.Context(), r)
		if err == nil {
			r = r.WithContext(WithData(r.Context(), data))
		}
		next.ServeHTTP(w, r)
	})
}

// WithData returns a context carrying the session data.
func WithData(ctx context.Context, data *Data) context.Context {
	return context.WithValue(ctx, ctxKey, data)
}

// FromContext retrieves session data from the request context.
func FromContext(ctx context.Context) *Data {
	if ctx == nil {
		return nil
	}
	data, ok := ctx.Value(ctxKey).(*Data)
	if !ok {
		return nil
	}
	return data
}
