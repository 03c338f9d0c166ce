package api

import (
	"net/http"

	"netops-report-service/internal/api/handlers"
	"netops-report-service/internal/ports"
	"netops-report-service/internal/services"
)

// NewRouter wires HTTP handlers with their dependencies and returns an
// http.Handler. This is the API composition root; handlers stay unaware
// of concrete adapters, and the session gate wraps everything so no page
// logic runs before the auth decision.
func NewRouter(
	auth *services.AuthService,
	cookie handlers.CookieConfig,
	picklists *services.Picklists,
	reports ports.ReportSource,
	sites ports.SiteSource,
) http.Handler {
	mux := http.NewServeMux()

	authHandler := &handlers.AuthHandler{Auth: auth, Cookie: cookie}
	picklistHandler := &handlers.PicklistHandler{Picklists: picklists}
	reportHandler := &handlers.ReportHandler{Source: reports}
	exportHandler := &handlers.ExportHandler{Source: reports}
	siteHandler := &handlers.SiteHandler{Source: sites}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/login", handlers.LoginPage)

	mux.HandleFunc("/api/auth/login", authHandler.Login)
	mux.HandleFunc("/api/auth/logout", authHandler.Logout)
	mux.HandleFunc("/api/auth/me", authHandler.Me)

	mux.HandleFunc("/api/picklists/regions", picklistHandler.Regions)
	mux.HandleFunc("/api/picklists/subregions", picklistHandler.SubRegions)
	mux.HandleFunc("/api/picklists/districts", picklistHandler.Districts)
	mux.HandleFunc("/api/picklists/grids", picklistHandler.Grids)
	mux.HandleFunc("/api/picklists/options", picklistHandler.Options)

	mux.HandleFunc("/api/reports/availability", reportHandler.Availability)
	mux.HandleFunc("/api/reports/traffic", reportHandler.Traffic)
	mux.HandleFunc("/api/reports/traffic/export", exportHandler.Traffic)
	mux.HandleFunc("/api/reports/complaints", reportHandler.Complaints)
	mux.HandleFunc("/api/reports/rms", reportHandler.RMS)

	mux.HandleFunc("/api/sites", siteHandler.List)
	mux.HandleFunc("/api/sites/neighbors", siteHandler.Neighbors)

	return loggingMiddleware(sessionGate(mux, auth, cookie.Name))
}
