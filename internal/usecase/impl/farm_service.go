package impl

import (
	"context"
	"log/slog"

	deliverycontext "farmhub/internal/delivery/context"
	"farmhub/internal/domain/entity"
	domainerrors "farmhub/internal/domain/errors"
	"farmhub/internal/domain/repository"
	"farmhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// farmService implements the FarmUsecase interface.
type farmService struct {
	userRepo      repository.UserRepository
	farmRepo      repository.FarmRepository
	foodStockRepo repository.FoodStockRepository
	logger        *slog.Logger
}

// FarmServiceParams holds dependencies for FarmService, injected by Fx.
type FarmServiceParams struct {
	fx.In

	UserRepo      repository.UserRepository
	FarmRepo      repository.FarmRepository
	FoodStockRepo repository.FoodStockRepository
	Logger        *slog.Logger
}

// NewFarmService is the constructor for farmService.
func NewFarmService(params FarmServiceParams) usecase.FarmUsecase {
	return &farmService{
		userRepo:      params.UserRepo,
		farmRepo:      params.FarmRepo,
		foodStockRepo: params.FoodStockRepo,
		logger:        params.Logger,
	}
}

func (srv *farmService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateFarm creates a farm owned by the caller.
func (srv *farmService) CreateFarm(ctx context.Context, callerID uuid.UUID, input *usecase.CreateFarmInput) (*entity.Farm, error) {
	if _, err := srv.userRepo.FindByID(ctx, callerID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrBadRequest.WithMessage("User with ID %s not found", callerID)
		}

		return nil, domainerrors.Rewrap(err, "create farm")
	}

	farm := &entity.Farm{
		Name:        input.Name,
		Location:    input.Location,
		Description: input.Description,
		UserID:      callerID,
	}
	if err := srv.farmRepo.Create(ctx, farm); err != nil {
		return nil, domainerrors.Rewrap(err, "create farm")
	}
	srv.log(ctx).Info("Farm created", slog.Any("farmID", farm.ID), slog.Any("userID", callerID))

	return farm, nil
}

// ListFarms returns every farm with its animals and owner summary.
func (srv *farmService) ListFarms(ctx context.Context) ([]*entity.Farm, error) {
	farms, err := srv.farmRepo.FindAll(ctx)
	if err != nil {
		return nil, domainerrors.Rewrap(err, "fetch farms")
	}

	return farms, nil
}

// ListMyFarms returns the caller's farms.
func (srv *farmService) ListMyFarms(ctx context.Context, callerID uuid.UUID) ([]*entity.Farm, error) {
	farms, err := srv.farmRepo.FindByUserID(ctx, callerID)
	if err != nil {
		return nil, domainerrors.Rewrap(err, "fetch farms")
	}

	return farms, nil
}

// GetFarm returns a single farm.
func (srv *farmService) GetFarm(ctx context.Context, farmID uuid.UUID) (*entity.Farm, error) {
	farm, err := srv.findFarm(ctx, farmID)
	if err != nil {
		return nil, domainerrors.Rewrap(err, "fetch farm")
	}

	return farm, nil
}

// UpdateFarm changes a farm owned by the caller.
func (srv *farmService) UpdateFarm(ctx context.Context, callerID, farmID uuid.UUID, input *usecase.UpdateFarmInput) (*entity.Farm, error) {
	farm, err := srv.findOwnedFarm(ctx, callerID, farmID)
	if err != nil {
		return nil, domainerrors.Rewrap(err, "update farm")
	}

	if input.Name != nil {
		farm.Name = *input.Name
	}
	if input.Location != nil {
		farm.Location = input.Location
	}
	if input.Description != nil {
		farm.Description = input.Description
	}

	if err := srv.farmRepo.Update(ctx, farm); err != nil {
		return nil, domainerrors.Rewrap(err, "update farm")
	}

	return farm, nil
}

// DeleteFarm removes a farm owned by the caller, with everything on it.
func (srv *farmService) DeleteFarm(ctx context.Context, callerID, farmID uuid.UUID) error {
	if _, err := srv.findOwnedFarm(ctx, callerID, farmID); err != nil {
		return domainerrors.Rewrap(err, "delete farm")
	}

	if err := srv.farmRepo.Delete(ctx, farmID); err != nil {
		return domainerrors.Rewrap(err, "delete farm")
	}
	srv.log(ctx).Info("Farm deleted", slog.Any("farmID", farmID), slog.Any("userID", callerID))

	return nil
}

// AddFoodStock records food stock on a farm owned by the caller.
func (srv *farmService) AddFoodStock(ctx context.Context, callerID, farmID uuid.UUID, input *usecase.FoodStockInput) (*entity.FoodStock, error) {
	farm, err := srv.findOwnedFarm(ctx, callerID, farmID)
	if err != nil {
		return nil, domainerrors.Rewrap(err, "add food stock record")
	}

	stock := &entity.FoodStock{
		Name:       input.Name,
		Quantity:   input.Quantity,
		Unit:       input.Unit,
		ExpiryDate: input.ExpiryDate,
		FarmID:     farmID,
		Farm:       farm,
	}
	if err := srv.foodStockRepo.Create(ctx, stock); err != nil {
		return nil, domainerrors.Rewrap(err, "add food stock record")
	}

	return stock, nil
}

// ListFoodStocks returns a farm's food stock, newest first.
func (srv *farmService) ListFoodStocks(ctx context.Context, callerID, farmID uuid.UUID) ([]*entity.FoodStock, error) {
	if _, err := srv.findOwnedFarm(ctx, callerID, farmID); err != nil {
		return nil, domainerrors.Rewrap(err, "fetch food stock records")
	}

	stocks, err := srv.foodStockRepo.ListByFarmID(ctx, farmID)
	if err != nil {
		return nil, domainerrors.Rewrap(err, "fetch food stock records")
	}

	return stocks, nil
}

// DeleteFoodStock removes a record whose farm the caller owns.
func (srv *farmService) DeleteFoodStock(ctx context.Context, callerID, stockID uuid.UUID) error {
	stock, err := srv.foodStockRepo.FindByID(ctx, stockID)
	if err != nil {
		if errors.Is(err, repository.ErrFoodStockNotFound) {
			return domainerrors.ErrNotFound.WithMessage("Food stock record with ID %s not found", stockID)
		}

		return domainerrors.Rewrap(err, "delete food stock record")
	}

	if !entity.OwnedBy(stock, callerID) {
		return domainerrors.ErrForbidden.WithMessage("You don't have access to this food stock record")
	}

	if err := srv.foodStockRepo.Delete(ctx, stockID); err != nil {
		return domainerrors.Rewrap(err, "delete food stock record")
	}

	return nil
}

func (srv *farmService) findFarm(ctx context.Context, farmID uuid.UUID) (*entity.Farm, error) {
	farm, err := srv.farmRepo.FindByID(ctx, farmID)
	if err != nil {
		if errors.Is(err, repository.ErrFarmNotFound) {
			return nil, domainerrors.ErrNotFound.WithMessage("Farm with ID %s not found", farmID)
		}

		return nil, errors.Wrap(err, "failed to find farm")
	}

	return farm, nil
}

func (srv *farmService) findOwnedFarm(ctx context.Context, callerID, farmID uuid.UUID) (*entity.Farm, error) {
	farm, err := srv.findFarm(ctx, farmID)
	if err != nil {
		return nil, err
	}

	if !entity.OwnedBy(farm, callerID) {
		srv.log(ctx).Warn("Farm access denied", slog.Any("farmID", farmID), slog.Any("userID", callerID))

		return nil, domainerrors.ErrForbidden.WithMessage("You don't have access to this farm")
	}

	return farm, nil
}
