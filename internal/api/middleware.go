package api

import (
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"netops-report-service/internal/api/handlers"
	"netops-report-service/internal/platform/obs"
	"netops-report-service/internal/services"
)

// statusWriter captures the final HTTP status code and number of bytes written.
// This helps distinguish "handler returned 200" from "client received a response".
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

// Record implicit 200 responses when handlers write without calling WriteHeader.
func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}

	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// loggingMiddleware tags each request with an id and logs end-to-end
// duration and response size.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ctx := obs.WithRequestID(r.Context())
		r = r.WithContext(ctx)

		sw := &statusWriter{
			ResponseWriter: w,
			status:         0,
		}

		next.ServeHTTP(sw, r)

		duration := time.Since(start).Milliseconds()

		log.Printf(
			"req_id=%s method=%s path=%s status=%d bytes=%d dur=%dms",
			obs.RequestID(ctx), r.Method, r.URL.RequestURI(), sw.status, sw.bytes, duration,
		)
	})
}

// publicPath reports whether a path is reachable without a session: the
// login page, the auth endpoints themselves, static assets and liveness.
func publicPath(path string) bool {
	if path == "/login" || path == "/health" {
		return true
	}
	return strings.HasPrefix(path, "/api/auth/") || strings.HasPrefix(path, "/static/")
}

// sessionGate redirects unauthenticated requests on protected paths to the
// login page, carrying the original path so login can return there. The
// decision is always made against the server-side session record; a cookie
// whose token does not resolve to an active session is as good as absent.
func sessionGate(next http.Handler, auth *services.AuthService, cookieName string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if publicPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		var token string
		if c, err := r.Cookie(cookieName); err == nil {
			token = c.Value
		}

		sess, err := auth.Validate(r.Context(), token)
		if err != nil {
			log.Printf("session validation failed path=%s err=%v", r.URL.Path, err)
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}

		if sess == nil {
			target := "/login?next=" + url.QueryEscape(r.URL.Path)
			http.Redirect(w, r, target, http.StatusSeeOther)
			return
		}

		next.ServeHTTP(w, r.WithContext(handlers.WithSession(r.Context(), sess)))
	})
}
