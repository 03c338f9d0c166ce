package main

import (
	"context"
	"database/sql"
	"log"
	"time"

	"github.com/joho/godotenv"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"netops-report-service/internal/adapters/repositories"
	"netops-report-service/internal/config"
	"netops-report-service/internal/platform/db"
)

// dbtool initializes the users/sessions schema, seeds dashboard accounts
// from a JSON file (passwords are bcrypt-hashed on the way in) and prunes
// long-expired sessions.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	driver, database, err := openDB()
	if err != nil {
		log.Fatal(err)
	}
	defer database.Close()

	log.Println("Initializing database schema...")
	if err := repositories.InitSchema(database); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")

	seedPath := config.Get("SEED_PATH", "data/seeds/users.json")
	log.Println("Seeding users...")
	if err := repositories.SeedUsersFromJSON(database, driver, seedPath); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	log.Println("Seeding complete.")

	sessions := repositories.NewSQLSessionRepository(database, driver)
	cutoff := time.Now().UTC().Add(-30 * 24 * time.Hour)
	n, err := sessions.DeleteExpired(context.Background(), cutoff)
	if err != nil {
		log.Fatalf("session pruning failed: %v", err)
	}
	log.Printf("Pruned %d expired sessions.", n)
}

func openDB() (string, *sql.DB, error) {
	if dsn := config.Get("DATABASE_URL", ""); dsn != "" {
		database, err := db.Open("pgx", dsn)
		return "pgx", database, err
	}

	path := config.Get("DB_PATH", "data/app.db")
	database, err := db.Open("sqlite", path)
	return "sqlite", database, err
}
