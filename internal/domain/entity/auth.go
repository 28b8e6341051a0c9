package entity

import (
	"time"

	"github.com/google/uuid"
)

// RefreshToken is one entry in a user's refresh token ledger.
// A user may hold several live entries at once, one per signed-in device.
type RefreshToken struct {
	ID        uuid.UUID // The unique ID for this specific refresh token record.
	UserID    uuid.UUID // Links this session to the User it belongs to.
	TokenHash string    // bcrypt hash of the raw refresh token.
	ExpiresAt time.Time // The exact time when this refresh token will expire and become invalid.
	CreatedAt time.Time // Timestamp of when this session was created (i.e., when the user logged in).
}

// IsLive reports whether the token is still usable at the given instant.
func (t *RefreshToken) IsLive(now time.Time) bool {
	return t.ExpiresAt.After(now)
}

// TokenPair is the access/refresh pair handed to a client after authentication.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
