package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"netops-report-service/internal/api/dto"
	"netops-report-service/internal/services"
)

// CookieConfig carries the session cookie settings the handlers share.
// Name comes from the environment; Secure is set in production.
type CookieConfig struct {
	Name   string
	Secure bool
}

type AuthHandler struct {
	Auth   *services.AuthService
	Cookie CookieConfig
}

// Login verifies a credential and sets the session cookie. Every failure
// mode answers the same way so responses never reveal whether the
// username or the password was wrong.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.LoginRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	sess, err := h.Auth.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			writeError(w, r, http.StatusUnauthorized, "invalid credentials")
			return
		}
		log.Printf("login failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.Cookie.Name,
		Value:    sess.Token,
		Path:     "/",
		Expires:  sess.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   h.Cookie.Secure,
	})

	writeJSON(w, r, http.StatusOK, dto.LoginResponse{OK: true, Username: sess.Username})
}

// Logout revokes the server-side record and clears the cookie. Always
// succeeds from the client's point of view.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	if c, err := r.Cookie(h.Cookie.Name); err == nil {
		if err := h.Auth.Logout(r.Context(), c.Value); err != nil {
			log.Printf("logout revoke failed: %v", err)
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.Cookie.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   h.Cookie.Secure,
	})

	writeJSON(w, r, http.StatusOK, map[string]bool{"ok": true})
}

// Me reports whether the request carries an active session. Validation
// goes through the session store, not cookie presence.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var token string
	if c, err := r.Cookie(h.Cookie.Name); err == nil {
		token = c.Value
	}

	sess, err := h.Auth.Validate(r.Context(), token)
	if err != nil {
		log.Printf("me validation failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	if sess == nil {
		writeJSON(w, r, http.StatusOK, dto.MeResponse{Authenticated: false})
		return
	}
	writeJSON(w, r, http.StatusOK, dto.MeResponse{Authenticated: true, Username: sess.Username})
}
