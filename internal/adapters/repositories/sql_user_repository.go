package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"netops-report-service/internal/domain"
	platformdb "netops-report-service/internal/platform/db"
)

// SQL-backed implementation of the UserStore port.
type SQLUserRepository struct {
	DB     *sql.DB
	Driver string
}

func NewSQLUserRepository(db *sql.DB, driver string) *SQLUserRepository {
	return &SQLUserRepository{DB: db, Driver: driver}
}

// GetByUsername returns the stored user, or (nil, nil) when unknown.
func (s *SQLUserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	if s.DB == nil {
		return nil, errors.New("user repository: DB is nil")
	}

	query := fmt.Sprintf(`
	SELECT
		username,
		password_hash,
		display_name,
		created_at
	FROM users
	WHERE username = %s;
	`, platformdb.Placeholder(s.Driver, 1))

	var u domain.User
	err := s.DB.QueryRowContext(ctx, query, username).Scan(
		&u.Username,
		&u.PasswordHash,
		&u.DisplayName,
		&u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user %q: %w", username, err)
	}

	return &u, nil
}
