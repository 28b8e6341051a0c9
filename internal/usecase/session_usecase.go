// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"farmhub/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Email     string
	Phone     *string
	Password  string
	FirstName string
	LastName  string
}

// LoginInput identifies the account by email or phone. Email wins when both are set.
type LoginInput struct {
	Email    string
	Phone    string
	Password string
}

// OnboardingInput describes the first farm created for a new user.
type OnboardingInput struct {
	FarmName        string
	FarmLocation    *string
	FarmDescription *string
}

// --- Output DTOs ---

// LoginOutput returns the generated tokens and the user, without the password hash.
type LoginOutput struct {
	Tokens *entity.TokenPair
	User   *entity.User
}

// SessionUsecase drives the credential and token lifecycle of a single user.
type SessionUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*entity.TokenPair, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// Refresh exchanges a stored refresh token for a new pair. The consumed token stays valid.
	Refresh(ctx context.Context, userID uuid.UUID, refreshToken string) (*entity.TokenPair, error)

	// Logout signs the user out of every device. Calling it again is harmless.
	Logout(ctx context.Context, userID uuid.UUID) error

	// CompleteOnboarding creates the user's first farm.
	CompleteOnboarding(ctx context.Context, userID uuid.UUID, input *OnboardingInput) (*entity.Farm, error)
}

// RefreshTokenLedger keeps hashed refresh tokens per user.
type RefreshTokenLedger interface {
	// Store prunes the user's expired tokens, then records the new one.
	Store(ctx context.Context, userID uuid.UUID, rawToken string) error

	// Matches reports whether any live token of the user verifies against rawToken.
	// A user without live tokens never matches.
	Matches(ctx context.Context, userID uuid.UUID, rawToken string) (bool, error)

	// InvalidateAll drops every token of the user.
	InvalidateAll(ctx context.Context, userID uuid.UUID) error
}
