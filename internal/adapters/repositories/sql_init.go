package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	platformdb "netops-report-service/internal/platform/db"
)

// Initialize the users/sessions schema. Statements are portable across
// the sqlite and postgres drivers the service runs on.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createUsersQuery := `
	CREATE TABLE IF NOT EXISTS users (
		username TEXT PRIMARY KEY,
		password_hash TEXT NOT NULL,
		display_name TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMP NOT NULL
	);
	`

	createSessionsQuery := `
	CREATE TABLE IF NOT EXISTS sessions (
		token TEXT PRIMARY KEY,
		username TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL,
		expires_at TIMESTAMP NOT NULL,
		revoked_at TIMESTAMP
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_sessions_username
	ON sessions(username);
	`

	statements := []string{
		createUsersQuery,
		createSessionsQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type UserSeed struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
}

// Populate the users table from a JSON file. Seed passwords are given in
// plain text in the file and stored only as bcrypt hashes.
func SeedUsersFromJSON(db *sql.DB, driver, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed users: read %q: %w", jsonPath, err)
	}

	var data []UserSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed users: parse json: %w", err)
	}

	for i, item := range data {
		if strings.TrimSpace(item.Username) == "" {
			return fmt.Errorf("seed users: empty username at index %d", i+1)
		}
		if item.Password == "" {
			return fmt.Errorf("seed users: empty password for %q", item.Username)
		}
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed users: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := fmt.Sprintf(`
	INSERT INTO users (username, password_hash, display_name, created_at)
	VALUES (%s, %s, %s, %s)
	ON CONFLICT (username) DO UPDATE
	SET password_hash = EXCLUDED.password_hash,
		display_name = EXCLUDED.display_name;
	`,
		platformdb.Placeholder(driver, 1),
		platformdb.Placeholder(driver, 2),
		platformdb.Placeholder(driver, 3),
		platformdb.Placeholder(driver, 4),
	)
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed users: prepare insert: %w", err)
	}
	defer stmt.Close()

	now := time.Now().UTC()
	for _, u := range data {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("seed users: hash password for %q: %w", u.Username, err)
		}

		if _, err := stmt.Exec(u.Username, string(hash), strings.TrimSpace(u.DisplayName), now); err != nil {
			return fmt.Errorf("seed users: insert %q: %w", u.Username, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed users: commit tx: %w", err)
	}

	return nil
}
