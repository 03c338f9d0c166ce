package main

import (
	"database/sql"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"netops-report-service/internal/adapters/cache"
	"netops-report-service/internal/adapters/repositories"
	"netops-report-service/internal/adapters/rpc"
	"netops-report-service/internal/api"
	"netops-report-service/internal/api/handlers"
	"netops-report-service/internal/config"
	"netops-report-service/internal/platform/db"
	"netops-report-service/internal/services"
)

// main is the application composition root.
// It wires the warehouse RPC client, local session storage and the
// optional picklist cache behind ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	port := config.Get("PORT", "8080")
	cookieName := config.Get("SESSION_COOKIE_NAME", "netops_sid")
	production := config.Get("APP_ENV", "development") == "production"

	// The warehouse endpoint and key gate every report; construction is
	// the first use, so a missing value fails here.
	apiURL, err := config.Require("NETOPS_API_URL")
	if err != nil {
		log.Fatal(err)
	}
	apiKey, err := config.Require("NETOPS_API_KEY")
	if err != nil {
		log.Fatal(err)
	}

	warehouse, err := rpc.NewClient(apiURL, apiKey)
	if err != nil {
		log.Fatal(err)
	}

	driver, database, err := openSessionDB()
	if err != nil {
		log.Fatal(err)
	}
	defer database.Close()

	// Schema init is idempotent; local runs need no separate migration step.
	if err := repositories.InitSchema(database); err != nil {
		log.Fatal(err)
	}

	auth := &services.AuthService{
		Users:    repositories.NewSQLUserRepository(database, driver),
		Sessions: repositories.NewSQLSessionRepository(database, driver),
	}

	picklists := &services.Picklists{Source: warehouse}
	if addr := config.Get("REDIS_ADDR", ""); addr != "" {
		picklistCache := cache.NewRedisPicklistCache(addr, 10*time.Minute)
		defer picklistCache.Close()
		picklists.Cache = picklistCache
		log.Printf("picklist cache enabled addr=%s", addr)
	}

	cookie := handlers.CookieConfig{Name: cookieName, Secure: production}
	router := api.NewRouter(auth, cookie, picklists, warehouse, warehouse)

	// Write timeout leaves room for a fully chunked timeseries fetch.
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

// openSessionDB picks postgres when DATABASE_URL is set, otherwise a
// local sqlite file.
func openSessionDB() (string, *sql.DB, error) {
	if dsn := config.Get("DATABASE_URL", ""); dsn != "" {
		database, err := db.Open("pgx", dsn)
		return "pgx", database, err
	}

	path := config.Get("DB_PATH", "data/app.db")
	database, err := db.Open("sqlite", path)
	return "sqlite", database, err
}
