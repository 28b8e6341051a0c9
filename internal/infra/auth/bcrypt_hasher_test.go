package auth

import (
	"testing"

	"farmhub/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher, err := newBcryptHasher(bcrypt.MinCost)
	require.NoError(t, err)

	for _, password := range []string{"pw123456", "p@ssw0rd!", "長いパスワード"} {
		hash, err := hasher.Hash(password)
		require.NoError(t, err)

		assert.NotEqual(t, password, hash)
		assert.True(t, hasher.Check(password, hash))
		assert.False(t, hasher.Check(password+"x", hash))
	}
}

func TestBcryptHasher_IsSalted(t *testing.T) {
	hasher, err := newBcryptHasher(bcrypt.MinCost)
	require.NoError(t, err)

	first, err := hasher.Hash("pw123456")
	require.NoError(t, err)
	second, err := hasher.Hash("pw123456")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("pw123456", first))
	assert.True(t, hasher.Check("pw123456", second))
}

func TestBcryptHasher_CheckFailsClosed(t *testing.T) {
	hasher, err := newBcryptHasher(bcrypt.MinCost)
	require.NoError(t, err)

	assert.False(t, hasher.Check("pw123456", ""))
	assert.False(t, hasher.Check("pw123456", "not-a-bcrypt-hash"))
}

func TestNewBcryptHasher_UsesConfiguredCost(t *testing.T) {
	svc, err := NewBcryptHasher(BcryptHasherParams{Config: &config.Config{Auth: &config.AuthConfig{BcryptCost: 10}}})
	require.NoError(t, err)

	hash, err := svc.Hash("pw123456")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, 10, cost)
}

func TestNewBcryptHasher_RejectsOutOfRangeCost(t *testing.T) {
	_, err := NewBcryptHasher(BcryptHasherParams{Config: &config.Config{Auth: &config.AuthConfig{BcryptCost: 99}}})
	assert.Error(t, err)
}
