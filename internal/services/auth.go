package services

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"netops-report-service/internal/domain"
	"netops-report-service/internal/ports"
)

// Session lifetime matches the dashboard's "stay signed in for a week"
// behavior; the record is revocable server-side before then.
const sessionTTL = 7 * 24 * time.Hour

// ErrInvalidCredentials is returned for every login failure, whichever
// field was wrong, so responses never leak which one it was.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrCredentialNeedsRotation marks a stored credential that is not a
// bcrypt hash. Such accounts cannot log in until an operator re-seeds
// them; plain-text comparison is never performed.
var ErrCredentialNeedsRotation = errors.New("stored credential requires rotation")

// AuthService issues and validates revocable sessions. The session store
// is the single source of truth; cookie presence alone proves nothing.
type AuthService struct {
	Users    ports.UserStore
	Sessions ports.SessionStore
}

// Login verifies the credential and issues a new session on success.
func (a *AuthService) Login(ctx context.Context, username, password string) (*domain.Session, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := a.Users.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if !strings.HasPrefix(user.PasswordHash, "$2") {
		// Legacy plain-text credential. Refuse it outright; the account
		// owner sees the same generic error while the log flags the row.
		log.Printf("login refused username=%s err=%v", username, ErrCredentialNeedsRotation)
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := newSessionToken()
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	now := time.Now().UTC()
	sess := domain.Session{
		Token:     token,
		Username:  username,
		CreatedAt: now,
		ExpiresAt: now.Add(sessionTTL),
	}

	if err := a.Sessions.Insert(ctx, sess); err != nil {
		return nil, fmt.Errorf("login: persist session: %w", err)
	}

	return &sess, nil
}

// Validate resolves a cookie token to an active session, or (nil, nil)
// when the token is unknown, expired or revoked.
func (a *AuthService) Validate(ctx context.Context, token string) (*domain.Session, error) {
	if token == "" {
		return nil, nil
	}

	sess, err := a.Sessions.GetByToken(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("validate session: %w", err)
	}
	if sess == nil || !sess.Active(time.Now().UTC()) {
		return nil, nil
	}
	return sess, nil
}

// Logout revokes the session record. Unknown tokens are a no-op so the
// handler can always clear the cookie.
func (a *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := a.Sessions.Revoke(ctx, token); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

func newSessionToken() (string, error) {
	b := make([]byte, 24)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate session token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
