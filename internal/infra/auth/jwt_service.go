// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"farmhub/config"
	"farmhub/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

// JWTServiceParams holds the dependencies for the JWT service.
type JWTServiceParams struct {
	fx.In

	Config *config.Config
}

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret  []byte        // Secret key for signing access tokens.
	refreshSecret []byte        // Secret key for signing refresh tokens.
	accessTTL     time.Duration // Time-to-live for access tokens.
	refreshTTL    time.Duration // Time-to-live for refresh tokens.
	now           func() time.Time
}

// tokenClaims is the wire shape of both token kinds.
type tokenClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(params JWTServiceParams) (service.TokenService, error) {
	cfg := params.Config.JWT
	if cfg == nil || cfg.Access.Secret == "" || cfg.Refresh.Secret == "" {
		return nil, errors.New("jwt secrets must be provided")
	}
	if cfg.Access.Expiration <= 0 || cfg.Refresh.Expiration <= 0 {
		return nil, errors.New("jwt expirations must be positive")
	}

	return &jwtService{
		accessSecret:  []byte(cfg.Access.Secret),
		refreshSecret: []byte(cfg.Refresh.Secret),
		accessTTL:     cfg.Access.Expiration,
		refreshTTL:    cfg.Refresh.Expiration,
		now:           time.Now,
	}, nil
}

// GenerateTokens signs the access and refresh tokens concurrently.
func (s *jwtService) GenerateTokens(userID uuid.UUID, email string) (accessToken string, refreshToken string, err error) {
	var g errgroup.Group

	g.Go(func() error {
		var signErr error
		accessToken, signErr = s.generateToken(userID, email, s.accessTTL, s.accessSecret)

		return errors.Wrap(signErr, "sign access token")
	})
	g.Go(func() error {
		var signErr error
		refreshToken, signErr = s.generateToken(userID, email, s.refreshTTL, s.refreshSecret)

		return errors.Wrap(signErr, "sign refresh token")
	})

	if err := g.Wait(); err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

// ValidateAccessToken verifies a token against the access secret.
func (s *jwtService) ValidateAccessToken(tokenString string) (*service.Claims, error) {
	return s.validate(tokenString, s.accessSecret)
}

// ValidateRefreshToken verifies a token against the refresh secret.
func (s *jwtService) ValidateRefreshToken(tokenString string) (*service.Claims, error) {
	return s.validate(tokenString, s.refreshSecret)
}

// DecodeSubject reads "sub" from the payload without verifying the signature.
func (s *jwtService) DecodeSubject(tokenString string) (uuid.UUID, error) {
	claims := &tokenClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to parse token structure")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "invalid token subject")
	}

	return userID, nil
}

// GetRefreshTokenDuration returns the configured duration for refresh tokens.
func (s *jwtService) GetRefreshTokenDuration() time.Duration {
	return s.refreshTTL
}

func (s *jwtService) validate(tokenString string, secret []byte) (*service.Claims, error) {
	claims := &tokenClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, errors.Wrap(err, "invalid token")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, errors.Wrap(err, "invalid token subject")
	}

	return &service.Claims{
		UserID:           userID,
		Email:            claims.Email,
		RegisteredClaims: claims.RegisteredClaims,
	}, nil
}

// generateToken is a private helper to create a JWT with specific claims.
// The random jti keeps two tokens minted in the same second distinct.
func (s *jwtService) generateToken(userID uuid.UUID, email string, ttl time.Duration, secret []byte) (string, error) {
	now := s.now()
	claims := tokenClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}
