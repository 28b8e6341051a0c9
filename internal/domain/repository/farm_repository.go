package repository

import (
	"context"
	"errors"

	"farmhub/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for farm persistence.
var (
	// ErrFarmNotFound is returned when a farm does not exist.
	ErrFarmNotFound = errors.New("farm not found")
	// ErrFoodStockNotFound is returned when a food stock record does not exist.
	ErrFoodStockNotFound = errors.New("food stock not found")
)

// FarmRepository defines persistence for farms.
type FarmRepository interface {
	Create(ctx context.Context, farm *entity.Farm) error

	// FindByID loads the farm together with its animals and owner summary.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Farm, error)

	// FindAll loads every farm with animals and owner summary.
	FindAll(ctx context.Context) ([]*entity.Farm, error)

	// FindByUserID loads the farms owned by a user, with their animals.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Farm, error)

	// FindLatestByUserID returns the user's most recently created farm,
	// or ErrFarmNotFound if the user has none.
	FindLatestByUserID(ctx context.Context, userID uuid.UUID) (*entity.Farm, error)

	// CountByUserID returns the number of farms a user owns.
	CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error)

	Update(ctx context.Context, farm *entity.Farm) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// FoodStockRepository defines persistence for a farm's food stock records.
type FoodStockRepository interface {
	Create(ctx context.Context, stock *entity.FoodStock) error

	// FindByID loads the record with its farm, so ownership can be checked.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.FoodStock, error)

	// ListByFarmID returns the farm's records, newest first.
	ListByFarmID(ctx context.Context, farmID uuid.UUID) ([]*entity.FoodStock, error)

	Delete(ctx context.Context, id uuid.UUID) error
}
