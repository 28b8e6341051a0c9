// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"farmhub/config"
	"farmhub/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/crypto/bcrypt"
)

// BcryptHasherParams holds the dependencies for the bcrypt hasher.
type BcryptHasherParams struct {
	fx.In

	Config *config.Config
}

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher is the constructor for bcryptHasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewBcryptHasher(params BcryptHasherParams) (service.PasswordHasher, error) {
	cost := bcrypt.DefaultCost
	if params.Config != nil && params.Config.Auth != nil && params.Config.Auth.BcryptCost != 0 {
		cost = params.Config.Auth.BcryptCost
	}

	return newBcryptHasher(cost)
}

func newBcryptHasher(cost int) (*bcryptHasher, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, errors.Errorf("bcrypt cost %d out of range [%d, %d]", cost, bcrypt.MinCost, bcrypt.MaxCost)
	}

	return &bcryptHasher{cost: cost}, nil
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt automatically handles salt generation.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", errors.Wrap(err, "bcrypt hash")
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	if hash == "" {
		return false
	}

	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
