package ports

import (
	"context"

	"netops-report-service/internal/domain"
)

// Port: a boundary for retrieving stored credentials.
type UserStore interface {
	// GetByUsername returns the stored user, or (nil, nil) when unknown.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

// Port: a boundary for persisting revocable session records.
type SessionStore interface {
	Insert(ctx context.Context, s domain.Session) error
	// GetByToken returns the session record, or (nil, nil) when unknown.
	GetByToken(ctx context.Context, token string) (*domain.Session, error)
	// Revoke marks a session unusable; revoking an unknown token is a no-op.
	Revoke(ctx context.Context, token string) error
}
