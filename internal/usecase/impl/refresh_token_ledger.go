package impl

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"time"

	deliverycontext "farmhub/internal/delivery/context"
	"farmhub/internal/domain/entity"
	"farmhub/internal/domain/repository"
	"farmhub/internal/domain/service"
	"farmhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// refreshTokenLedger implements the RefreshTokenLedger interface.
type refreshTokenLedger struct {
	refreshTokenRepo repository.RefreshTokenRepository
	hasher           service.PasswordHasher
	tokenService     service.TokenService
	now              func() time.Time
	logger           *slog.Logger
}

// RefreshTokenLedgerParams holds dependencies for the ledger, injected by Fx.
type RefreshTokenLedgerParams struct {
	fx.In

	RefreshTokenRepo repository.RefreshTokenRepository
	Hasher           service.PasswordHasher
	TokenService     service.TokenService
	Logger           *slog.Logger
}

// NewRefreshTokenLedger is the constructor for refreshTokenLedger.
func NewRefreshTokenLedger(params RefreshTokenLedgerParams) usecase.RefreshTokenLedger {
	return &refreshTokenLedger{
		refreshTokenRepo: params.RefreshTokenRepo,
		hasher:           params.Hasher,
		tokenService:     params.TokenService,
		now:              time.Now,
		logger:           params.Logger,
	}
}

func (l *refreshTokenLedger) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, l.logger)
}

// Store prunes the user's expired rows and inserts the hashed token.
func (l *refreshTokenLedger) Store(ctx context.Context, userID uuid.UUID, rawToken string) error {
	now := l.now()

	if err := l.refreshTokenRepo.DeleteExpiredByUserID(ctx, userID, now); err != nil {
		return errors.Wrap(err, "failed to prune expired refresh tokens")
	}

	tokenHash, err := l.hasher.Hash(digest(rawToken))
	if err != nil {
		return errors.Wrap(err, "failed to hash refresh token")
	}

	token := &entity.RefreshToken{
		UserID:    userID,
		TokenHash: tokenHash,
		ExpiresAt: now.Add(l.tokenService.GetRefreshTokenDuration()),
	}
	if err := l.refreshTokenRepo.Create(ctx, token); err != nil {
		return errors.Wrap(err, "failed to store refresh token")
	}

	l.log(ctx).Debug("Stored refresh token", slog.Any("userID", userID), slog.Time("expiresAt", token.ExpiresAt))

	return nil
}

// Matches checks the raw token against the user's live rows, newest first,
// and stops at the first hit.
func (l *refreshTokenLedger) Matches(ctx context.Context, userID uuid.UUID, rawToken string) (bool, error) {
	tokens, err := l.refreshTokenRepo.FindLiveByUserID(ctx, userID, l.now())
	if err != nil {
		return false, errors.Wrap(err, "failed to load refresh tokens")
	}
	if len(tokens) == 0 {
		l.log(ctx).Debug("No live refresh tokens", slog.Any("userID", userID))

		return false, nil
	}

	candidate := digest(rawToken)
	for _, token := range tokens {
		if l.hasher.Check(candidate, token.TokenHash) {
			return true, nil
		}
	}

	return false, nil
}

// InvalidateAll removes every token the user holds.
func (l *refreshTokenLedger) InvalidateAll(ctx context.Context, userID uuid.UUID) error {
	if err := l.refreshTokenRepo.DeleteByUserID(ctx, userID); err != nil {
		return errors.Wrap(err, "failed to delete refresh tokens")
	}

	return nil
}

// digest shortens a JWT to a fixed-length value; bcrypt rejects inputs over 72 bytes.
func digest(rawToken string) string {
	sum := sha256.Sum256([]byte(rawToken))

	return hex.EncodeToString(sum[:])
}
