package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"netops-report-service/internal/platform/obs"
)

// errorEnvelope is the shape of every non-2xx JSON response. The request id
// lets a dashboard user quote something the server log can be searched for.
type errorEnvelope struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	// Report payloads track live network data; never let an intermediary
	// serve a stale one.
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, errorEnvelope{
		Error:     msg,
		RequestID: obs.RequestID(r.Context()),
	})
}
