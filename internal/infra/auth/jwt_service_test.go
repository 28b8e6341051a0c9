package auth

import (
	"strings"
	"testing"
	"time"

	"farmhub/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig() *config.Config {
	return &config.Config{
		JWT: &config.JWTConfig{
			Access: config.TokenConfig{
				Secret:     "test_access_secret_key_very_long_for_testing",
				Expiration: 15 * time.Minute,
			},
			Refresh: config.TokenConfig{
				Secret:     "test_refresh_secret_key_very_long_for_testing",
				Expiration: 7 * 24 * time.Hour,
			},
		},
	}
}

func newTestJWTService(t *testing.T) *jwtService {
	t.Helper()

	svc, err := NewJWTService(JWTServiceParams{Config: newTestConfig()})
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestJWTService_GenerateAndValidateTokens(t *testing.T) {
	jwtService := newTestJWTService(t)
	userID := uuid.New()

	accessToken, refreshToken, err := jwtService.GenerateTokens(userID, "a@x.com")
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)
	assert.NotEqual(t, accessToken, refreshToken)

	accessClaims, err := jwtService.ValidateAccessToken(accessToken)
	require.NoError(t, err)
	assert.Equal(t, userID, accessClaims.UserID)
	assert.Equal(t, "a@x.com", accessClaims.Email)

	refreshClaims, err := jwtService.ValidateRefreshToken(refreshToken)
	require.NoError(t, err)
	assert.Equal(t, userID, refreshClaims.UserID)
	assert.Equal(t, "a@x.com", refreshClaims.Email)

	assert.WithinDuration(t, time.Now().Add(15*time.Minute), accessClaims.ExpiresAt.Time, 5*time.Second)
	assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), refreshClaims.ExpiresAt.Time, 5*time.Second)
}

func TestJWTService_SecretsAreNotInterchangeable(t *testing.T) {
	jwtService := newTestJWTService(t)

	accessToken, refreshToken, err := jwtService.GenerateTokens(uuid.New(), "a@x.com")
	require.NoError(t, err)

	_, err = jwtService.ValidateRefreshToken(accessToken)
	assert.Error(t, err)

	_, err = jwtService.ValidateAccessToken(refreshToken)
	assert.Error(t, err)
}

func TestJWTService_TokensAreNotIdempotent(t *testing.T) {
	jwtService := newTestJWTService(t)
	userID := uuid.New()

	a1, r1, err := jwtService.GenerateTokens(userID, "a@x.com")
	require.NoError(t, err)
	a2, r2, err := jwtService.GenerateTokens(userID, "a@x.com")
	require.NoError(t, err)

	assert.NotEqual(t, a1, a2)
	assert.NotEqual(t, r1, r2)
}

func TestJWTService_DecodeSubjectWithoutSecret(t *testing.T) {
	jwtService := newTestJWTService(t)
	userID := uuid.New()

	_, refreshToken, err := jwtService.GenerateTokens(userID, "a@x.com")
	require.NoError(t, err)

	// Break the signature: decoding still works, verification does not.
	parts := strings.Split(refreshToken, ".")
	require.Len(t, parts, 3)
	tampered := parts[0] + "." + parts[1] + ".invalidsignature"

	subject, err := jwtService.DecodeSubject(tampered)
	require.NoError(t, err)
	assert.Equal(t, userID, subject)

	_, err = jwtService.ValidateRefreshToken(tampered)
	assert.Error(t, err)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService := newTestJWTService(t)

	invalidToken := "clearly-not-a-jwt-token-format"

	claims, err := jwtService.ValidateAccessToken(invalidToken)
	assert.Error(t, err)
	assert.Nil(t, claims)

	_, err = jwtService.DecodeSubject(invalidToken)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse token structure")
}

func TestJWTService_ExpiredToken(t *testing.T) {
	jwtService := newTestJWTService(t)
	jwtService.now = func() time.Time { return time.Now().Add(-time.Hour) }

	accessToken, _, err := jwtService.GenerateTokens(uuid.New(), "a@x.com")
	require.NoError(t, err)

	jwtService.now = time.Now
	_, err = jwtService.ValidateAccessToken(accessToken)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTService_RejectsOtherAlgorithms(t *testing.T) {
	jwtService := newTestJWTService(t)

	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": uuid.NewString(),
		"exp": time.Now().Add(time.Minute).Unix(),
	})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = jwtService.ValidateAccessToken(signed)
	assert.Error(t, err)
}

func TestJWTService_EmptySecrets(t *testing.T) {
	cfg := newTestConfig()
	cfg.JWT.Access.Secret = ""

	jwtService, err := NewJWTService(JWTServiceParams{Config: cfg})
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt secrets must be provided")
}

func TestJWTService_GetRefreshTokenDuration(t *testing.T) {
	jwtService := newTestJWTService(t)

	assert.Equal(t, 7*24*time.Hour, jwtService.GetRefreshTokenDuration())
}
