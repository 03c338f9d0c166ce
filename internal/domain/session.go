package domain

import "time"

// User is a stored dashboard credential. PasswordHash holds a bcrypt
// digest; anything else is treated as a credential awaiting rotation and
// never compared.
type User struct {
	Username     string
	PasswordHash string
	DisplayName  string
	CreatedAt    time.Time
}

// Session is a server-side revocable session record. The cookie carries
// only Token; validity is decided here, never by cookie presence.
type Session struct {
	Token     string
	Username  string
	CreatedAt time.Time
	ExpiresAt time.Time
	RevokedAt *time.Time
}

// Active reports whether the session is usable at instant now.
func (s Session) Active(now time.Time) bool {
	return s.RevokedAt == nil && now.Before(s.ExpiresAt)
}
