package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"netops-report-service/internal/domain"
)

type fakeUserStore struct {
	users map[string]*domain.User
}

func (f *fakeUserStore) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	return f.users[username], nil
}

type fakeSessionStore struct {
	sessions map[string]*domain.Session
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: map[string]*domain.Session{}}
}

func (f *fakeSessionStore) Insert(_ context.Context, s domain.Session) error {
	f.sessions[s.Token] = &s
	return nil
}

func (f *fakeSessionStore) GetByToken(_ context.Context, token string) (*domain.Session, error) {
	return f.sessions[token], nil
}

func (f *fakeSessionStore) Revoke(_ context.Context, token string) error {
	if s, ok := f.sessions[token]; ok && s.RevokedAt == nil {
		now := time.Now().UTC()
		s.RevokedAt = &now
	}
	return nil
}

func newAuth(t *testing.T, password string) (*AuthService, *fakeSessionStore) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}

	sessions := newFakeSessionStore()
	auth := &AuthService{
		Users: &fakeUserStore{users: map[string]*domain.User{
			"noc": {Username: "noc", PasswordHash: string(hash)},
		}},
		Sessions: sessions,
	}
	return auth, sessions
}

func TestLoginIssuesSession(t *testing.T) {
	auth, sessions := newAuth(t, "s3cret")

	sess, err := auth.Login(context.Background(), "noc", "s3cret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sess.Token == "" {
		t.Fatal("expected non-empty token")
	}
	if sess.Username != "noc" {
		t.Fatalf("username = %q", sess.Username)
	}

	ttl := sess.ExpiresAt.Sub(sess.CreatedAt)
	if ttl != 7*24*time.Hour {
		t.Fatalf("session ttl = %v, want 7 days", ttl)
	}

	if sessions.sessions[sess.Token] == nil {
		t.Fatal("session not persisted")
	}
}

func TestLoginFailuresAreGeneric(t *testing.T) {
	auth, _ := newAuth(t, "s3cret")

	cases := []struct{ username, password string }{
		{"noc", "wrong"},
		{"ghost", "s3cret"},
		{"", "s3cret"},
		{"noc", ""},
	}
	for _, tc := range cases {
		_, err := auth.Login(context.Background(), tc.username, tc.password)
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("login(%q, %q) = %v, want ErrInvalidCredentials", tc.username, tc.password, err)
		}
	}
}

func TestLoginRefusesPlainTextCredential(t *testing.T) {
	sessions := newFakeSessionStore()
	auth := &AuthService{
		Users: &fakeUserStore{users: map[string]*domain.User{
			"legacy": {Username: "legacy", PasswordHash: "hunter2"},
		}},
		Sessions: sessions,
	}

	// The stored value equals the submitted password, and login must
	// still fail: plain-text comparison is never performed.
	_, err := auth.Login(context.Background(), "legacy", "hunter2")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if len(sessions.sessions) != 0 {
		t.Fatal("no session may be issued for a legacy credential")
	}
}

func TestValidateAndLogout(t *testing.T) {
	auth, _ := newAuth(t, "s3cret")

	sess, err := auth.Login(context.Background(), "noc", "s3cret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := auth.Validate(context.Background(), sess.Token)
	if err != nil || got == nil {
		t.Fatalf("fresh session should validate, got %v %v", got, err)
	}

	if err := auth.Logout(context.Background(), sess.Token); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err = auth.Validate(context.Background(), sess.Token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Fatal("revoked session must not validate")
	}
}

func TestValidateRejectsExpiredAndUnknown(t *testing.T) {
	auth, sessions := newAuth(t, "s3cret")

	got, err := auth.Validate(context.Background(), "unknown-token")
	if err != nil || got != nil {
		t.Fatalf("unknown token: got %v %v", got, err)
	}

	past := time.Now().UTC().Add(-time.Hour)
	sessions.sessions["stale"] = &domain.Session{
		Token:     "stale",
		Username:  "noc",
		CreatedAt: past.Add(-sessionTTL),
		ExpiresAt: past,
	}

	got, err = auth.Validate(context.Background(), "stale")
	if err != nil || got != nil {
		t.Fatalf("expired token: got %v %v", got, err)
	}
}
