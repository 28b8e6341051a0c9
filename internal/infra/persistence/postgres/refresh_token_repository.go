package postgres

import (
	"context"
	"time"

	"farmhub/internal/domain/entity"
	domainerrors "farmhub/internal/domain/errors"
	"farmhub/internal/domain/repository"
	"farmhub/internal/infra/persistence/model"
	"farmhub/internal/infra/persistence/postgres/query"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// refreshTokenRepository implements the domain.RefreshTokenRepository interface.
type refreshTokenRepository struct {
	q *query.Query
}

// NewRefreshTokenRepository creates a new refresh token repository.
func NewRefreshTokenRepository(db *gorm.DB) repository.RefreshTokenRepository {
	return &refreshTokenRepository{
		q: query.Use(db),
	}
}

// Create persists a new refresh token.
func (repo *refreshTokenRepository) Create(ctx context.Context, token *entity.RefreshToken) error {
	tokenM := fromRefreshTokenDomain(token)

	if err := repo.q.RefreshTokenModel.WithContext(ctx).Create(tokenM); err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("create refresh token")
		}

		return domainerrors.NewDatabaseExecuteError(err, "create refresh token")
	}

	token.ID = tokenM.ID
	token.CreatedAt = tokenM.CreatedAt

	return nil
}

// FindLiveByUserID returns tokens that expire strictly after now.
func (repo *refreshTokenRepository) FindLiveByUserID(ctx context.Context, userID uuid.UUID, now time.Time) ([]*entity.RefreshToken, error) {
	rows, err := repo.q.RefreshTokenModel.WithContext(ctx).
		Where(
			repo.q.RefreshTokenModel.UserID.Eq(userID),
			repo.q.RefreshTokenModel.ExpiresAt.Gt(now),
		).
		Order(repo.q.RefreshTokenModel.CreatedAt.Desc()).
		Find()
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "find refresh tokens by user")
	}

	tokens := make([]*entity.RefreshToken, 0, len(rows))
	for _, row := range rows {
		tokens = append(tokens, toRefreshTokenDomain(row))
	}

	return tokens, nil
}

// DeleteExpiredByUserID prunes the user's tokens that expired before now.
func (repo *refreshTokenRepository) DeleteExpiredByUserID(ctx context.Context, userID uuid.UUID, now time.Time) error {
	_, err := repo.q.RefreshTokenModel.WithContext(ctx).
		Where(
			repo.q.RefreshTokenModel.UserID.Eq(userID),
			repo.q.RefreshTokenModel.ExpiresAt.Lt(now),
		).
		Delete()
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "delete expired refresh tokens")
	}

	return nil
}

// DeleteByUserID removes every token the user holds. Deleting nothing is not an error.
func (repo *refreshTokenRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	_, err := repo.q.RefreshTokenModel.WithContext(ctx).
		Where(repo.q.RefreshTokenModel.UserID.Eq(userID)).
		Delete()
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "delete refresh tokens by user")
	}

	return nil
}

func toRefreshTokenDomain(data *model.RefreshTokenModel) *entity.RefreshToken {
	if data == nil {
		return nil
	}

	return &entity.RefreshToken{
		ID:        data.ID,
		UserID:    data.UserID,
		TokenHash: data.TokenHash,
		ExpiresAt: data.ExpiresAt,
		CreatedAt: data.CreatedAt,
	}
}

func fromRefreshTokenDomain(data *entity.RefreshToken) *model.RefreshTokenModel {
	if data == nil {
		return nil
	}

	return &model.RefreshTokenModel{
		ID:        data.ID,
		UserID:    data.UserID,
		TokenHash: data.TokenHash,
		ExpiresAt: data.ExpiresAt,
		CreatedAt: data.CreatedAt,
	}
}
