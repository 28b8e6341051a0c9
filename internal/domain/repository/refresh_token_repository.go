package repository

import (
	"context"
	"time"

	"farmhub/internal/domain/entity"

	"github.com/google/uuid"
)

// RefreshTokenRepository is the storage behind the refresh token ledger.
// Every method is scoped to a single user; there is no global sweep.
type RefreshTokenRepository interface {
	// Create persists a new refresh token, representing a user session.
	Create(ctx context.Context, token *entity.RefreshToken) error

	// FindLiveByUserID returns the user's tokens whose expiry is after now.
	FindLiveByUserID(ctx context.Context, userID uuid.UUID, now time.Time) ([]*entity.RefreshToken, error)

	// DeleteExpiredByUserID removes the user's tokens that expired before now.
	DeleteExpiredByUserID(ctx context.Context, userID uuid.UUID, now time.Time) error

	// DeleteByUserID removes all refresh tokens for a specific user.
	// This is the "logout from all devices" operation.
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
}
