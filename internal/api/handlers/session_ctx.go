package handlers

import (
	"context"

	"netops-report-service/internal/domain"
)

type sessionCtxKey struct{}

// WithSession attaches an authenticated session to the request context.
func WithSession(ctx context.Context, s *domain.Session) context.Context {
	return context.WithValue(ctx, sessionCtxKey{}, s)
}

// SessionFrom returns the session attached by the gate, or nil on public paths.
func SessionFrom(ctx context.Context) *domain.Session {
	s, _ := ctx.Value(sessionCtxKey{}).(*domain.Session)
	return s
}
