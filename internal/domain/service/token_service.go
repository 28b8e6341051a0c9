package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims for the JWT tokens.
type Claims struct {
	UserID uuid.UUID
	Email  string
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateTokens mints an access token and a refresh token for the user.
	// Both carry the same subject and email but are signed with separate secrets.
	GenerateTokens(userID uuid.UUID, email string) (accessToken string, refreshToken string, err error)

	// ValidateAccessToken verifies an access token's signature and expiry.
	ValidateAccessToken(tokenString string) (*Claims, error)

	// ValidateRefreshToken verifies a refresh token's signature and expiry.
	ValidateRefreshToken(tokenString string) (*Claims, error)

	// DecodeSubject reads the subject from a token's payload without checking
	// its signature. The result must not be trusted until verified elsewhere.
	DecodeSubject(tokenString string) (uuid.UUID, error)

	// GetRefreshTokenDuration returns the configured duration for refresh tokens.
	GetRefreshTokenDuration() time.Duration
}
