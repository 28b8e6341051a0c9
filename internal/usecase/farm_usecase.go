package usecase

import (
	"context"
	"time"

	"farmhub/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateFarmInput defines a new farm owned by the caller.
type CreateFarmInput struct {
	Name        string
	Location    *string
	Description *string
}

// UpdateFarmInput holds the farm fields to change. Nil fields are left untouched.
type UpdateFarmInput struct {
	Name        *string
	Location    *string
	Description *string
}

// FoodStockInput defines a food stock record added to a farm.
type FoodStockInput struct {
	Name       string
	Quantity   float64
	Unit       string
	ExpiryDate *time.Time
}

// FarmUsecase manages farms and their food stock.
type FarmUsecase interface {
	CreateFarm(ctx context.Context, callerID uuid.UUID, input *CreateFarmInput) (*entity.Farm, error)
	ListFarms(ctx context.Context) ([]*entity.Farm, error)
	ListMyFarms(ctx context.Context, callerID uuid.UUID) ([]*entity.Farm, error)
	GetFarm(ctx context.Context, farmID uuid.UUID) (*entity.Farm, error)
	UpdateFarm(ctx context.Context, callerID, farmID uuid.UUID, input *UpdateFarmInput) (*entity.Farm, error)
	DeleteFarm(ctx context.Context, callerID, farmID uuid.UUID) error

	AddFoodStock(ctx context.Context, callerID, farmID uuid.UUID, input *FoodStockInput) (*entity.FoodStock, error)
	ListFoodStocks(ctx context.Context, callerID, farmID uuid.UUID) ([]*entity.FoodStock, error)
	DeleteFoodStock(ctx context.Context, callerID, stockID uuid.UUID) error
}
