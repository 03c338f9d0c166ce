package db

import (
	"database/sql"
	"fmt"
	"time"
)

// Open verifies connectivity and applies pool limits sized for the small
// users/sessions workload. driver is "pgx" for postgres or "sqlite" for
// local single-file runs; the caller imports the matching driver package.
func Open(driver, dsn string) (*sql.DB, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("openDB: open %s database: %w", driver, err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("openDB: verify %s connection: %w", driver, err)
	}

	return db, nil
}

// Placeholder returns the bind marker for the given driver at 1-based
// position n. Postgres uses $n; sqlite accepts ?.
func Placeholder(driver string, n int) string {
	if driver == "pgx" {
		return fmt.Sprintf("$%d", n)
	}
	return "?"
}
