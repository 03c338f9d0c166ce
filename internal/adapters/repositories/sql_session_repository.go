package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"netops-report-service/internal/domain"
	platformdb "netops-report-service/internal/platform/db"
)

// SQL-backed implementation of the SessionStore port. Tokens are opaque
// strings; expiry and revocation live here, which is what makes logout
// actually work.
type SQLSessionRepository struct {
	DB     *sql.DB
	Driver string
}

func NewSQLSessionRepository(db *sql.DB, driver string) *SQLSessionRepository {
	return &SQLSessionRepository{DB: db, Driver: driver}
}

func (s *SQLSessionRepository) Insert(ctx context.Context, sess domain.Session) error {
	if s.DB == nil {
		return errors.New("session repository: DB is nil")
	}

	query := fmt.Sprintf(`
	INSERT INTO sessions (token, username, created_at, expires_at)
	VALUES (%s, %s, %s, %s);
	`,
		platformdb.Placeholder(s.Driver, 1),
		platformdb.Placeholder(s.Driver, 2),
		platformdb.Placeholder(s.Driver, 3),
		platformdb.Placeholder(s.Driver, 4),
	)

	_, err := s.DB.ExecContext(ctx, query, sess.Token, sess.Username, sess.CreatedAt, sess.ExpiresAt)
	if err != nil {
		return fmt.Errorf("insert session for %q: %w", sess.Username, err)
	}
	return nil
}

// GetByToken returns the session record, or (nil, nil) when unknown.
func (s *SQLSessionRepository) GetByToken(ctx context.Context, token string) (*domain.Session, error) {
	if s.DB == nil {
		return nil, errors.New("session repository: DB is nil")
	}

	query := fmt.Sprintf(`
	SELECT
		token,
		username,
		created_at,
		expires_at,
		revoked_at
	FROM sessions
	WHERE token = %s;
	`, platformdb.Placeholder(s.Driver, 1))

	var sess domain.Session
	var revoked sql.NullTime
	err := s.DB.QueryRowContext(ctx, query, token).Scan(
		&sess.Token,
		&sess.Username,
		&sess.CreatedAt,
		&sess.ExpiresAt,
		&revoked,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get session: %w", err)
	}

	if revoked.Valid {
		sess.RevokedAt = &revoked.Time
	}
	return &sess, nil
}

// Revoke marks a session unusable. Revoking an unknown token is a no-op.
func (s *SQLSessionRepository) Revoke(ctx context.Context, token string) error {
	if s.DB == nil {
		return errors.New("session repository: DB is nil")
	}

	query := fmt.Sprintf(`
	UPDATE sessions
	SET revoked_at = %s
	WHERE token = %s AND revoked_at IS NULL;
	`,
		platformdb.Placeholder(s.Driver, 1),
		platformdb.Placeholder(s.Driver, 2),
	)

	if _, err := s.DB.ExecContext(ctx, query, time.Now().UTC(), token); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	return nil
}

// DeleteExpired clears sessions whose expiry passed before cutoff, keeping
// the table from growing without bound. Run from dbtool or a cron.
func (s *SQLSessionRepository) DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	if s.DB == nil {
		return 0, errors.New("session repository: DB is nil")
	}

	query := fmt.Sprintf(`
	DELETE FROM sessions
	WHERE expires_at < %s;
	`, platformdb.Placeholder(s.Driver, 1))

	res, err := s.DB.ExecContext(ctx, query, cutoff)
	if err != nil {
		return 0, fmt.Errorf("delete expired sessions: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete expired sessions: rows affected: %w", err)
	}
	return n, nil
}
