package impl

import (
	"context"
	"net/http"
	"testing"

	"farmhub/internal/domain/entity"
	domainerrors "farmhub/internal/domain/errors"
	"farmhub/internal/domain/repository"
	mockRepo "farmhub/internal/mocks/repository"
	"farmhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type farmServiceFixtures struct {
	service       usecase.FarmUsecase
	userRepo      *mockRepo.MockUserRepository
	farmRepo      *mockRepo.MockFarmRepository
	foodStockRepo *mockRepo.MockFoodStockRepository
}

func createTestFarmService(t *testing.T) farmServiceFixtures {
	f := farmServiceFixtures{
		userRepo:      mockRepo.NewMockUserRepository(t),
		farmRepo:      mockRepo.NewMockFarmRepository(t),
		foodStockRepo: mockRepo.NewMockFoodStockRepository(t),
	}
	f.service = NewFarmService(FarmServiceParams{
		UserRepo:      f.userRepo,
		FarmRepo:      f.farmRepo,
		FoodStockRepo: f.foodStockRepo,
		Logger:        newDiscardLogger(),
	})

	return f
}

func TestFarmService_CreateFarm(t *testing.T) {
	f := createTestFarmService(t)
	ctx := context.Background()
	callerID := uuid.New()

	f.userRepo.EXPECT().FindByID(ctx, callerID).Return(&entity.User{ID: callerID}, nil)
	f.farmRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(farm *entity.Farm) bool { return farm.UserID == callerID && farm.Name == "North" })).
		Return(nil)

	farm, err := f.service.CreateFarm(ctx, callerID, &usecase.CreateFarmInput{Name: "North"})

	require.NoError(t, err)
	assert.Equal(t, callerID, farm.UserID)
}

func TestFarmService_CreateFarm_UnknownUser(t *testing.T) {
	f := createTestFarmService(t)
	ctx := context.Background()
	callerID := uuid.New()

	f.userRepo.EXPECT().FindByID(ctx, callerID).Return(nil, repository.ErrUserNotFound)

	_, err := f.service.CreateFarm(ctx, callerID, &usecase.CreateFarmInput{Name: "North"})

	requireAppError(t, err, domainerrors.ErrBadRequest, http.StatusBadRequest)
}

func TestFarmService_GetFarm_NotFound(t *testing.T) {
	f := createTestFarmService(t)
	ctx := context.Background()
	farmID := uuid.New()

	f.farmRepo.EXPECT().FindByID(ctx, farmID).Return(nil, repository.ErrFarmNotFound)

	_, err := f.service.GetFarm(ctx, farmID)

	appErr := requireAppError(t, err, domainerrors.ErrNotFound, http.StatusNotFound)
	assert.Equal(t, "Farm with ID "+farmID.String()+" not found", appErr.Message())
}

func TestFarmService_UpdateFarm(t *testing.T) {
	ownerID := uuid.New()
	farmID := uuid.New()
	name := "Renamed"

	tests := []struct {
		name     string
		callerID uuid.UUID
		wantErr  *domainerrors.BaseError
		wantCode int
	}{
		{name: "owner updates", callerID: ownerID},
		{name: "stranger is forbidden", callerID: uuid.New(), wantErr: domainerrors.ErrForbidden, wantCode: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestFarmService(t)
			ctx := context.Background()

			f.farmRepo.EXPECT().FindByID(ctx, farmID).Return(&entity.Farm{ID: farmID, Name: "Old", UserID: ownerID}, nil)
			if tt.wantErr == nil {
				f.farmRepo.EXPECT().
					Update(ctx, mock.MatchedBy(func(farm *entity.Farm) bool { return farm.Name == name })).
					Return(nil)
			}

			farm, err := f.service.UpdateFarm(ctx, tt.callerID, farmID, &usecase.UpdateFarmInput{Name: &name})

			if tt.wantErr != nil {
				appErr := requireAppError(t, err, tt.wantErr, tt.wantCode)
				assert.Equal(t, "You don't have access to this farm", appErr.Message())

				return
			}
			require.NoError(t, err)
			assert.Equal(t, name, farm.Name)
		})
	}
}

func TestFarmService_DeleteFarm_Owner(t *testing.T) {
	f := createTestFarmService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	farmID := uuid.New()

	f.farmRepo.EXPECT().FindByID(ctx, farmID).Return(&entity.Farm{ID: farmID, UserID: ownerID}, nil)
	f.farmRepo.EXPECT().Delete(ctx, farmID).Return(nil)

	require.NoError(t, f.service.DeleteFarm(ctx, ownerID, farmID))
}

func TestFarmService_AddFoodStock(t *testing.T) {
	f := createTestFarmService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	farmID := uuid.New()

	f.farmRepo.EXPECT().FindByID(ctx, farmID).Return(&entity.Farm{ID: farmID, UserID: ownerID}, nil)
	f.foodStockRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.FoodStock")).Return(nil)

	stock, err := f.service.AddFoodStock(ctx, ownerID, farmID, &usecase.FoodStockInput{Name: "Hay", Quantity: 12.5, Unit: "kg"})

	require.NoError(t, err)
	assert.Equal(t, farmID, stock.FarmID)
	assert.Equal(t, 12.5, stock.Quantity)
}

func TestFarmService_AddFoodStock_UnexpectedFailure(t *testing.T) {
	f := createTestFarmService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	farmID := uuid.New()

	f.farmRepo.EXPECT().FindByID(ctx, farmID).Return(&entity.Farm{ID: farmID, UserID: ownerID}, nil)
	f.foodStockRepo.EXPECT().Create(ctx, mock.Anything).Return(errors.New("disk full"))

	_, err := f.service.AddFoodStock(ctx, ownerID, farmID, &usecase.FoodStockInput{Name: "Hay"})

	appErr := requireAppError(t, err, domainerrors.ErrBadRequest, http.StatusBadRequest)
	assert.Equal(t, "Failed to add food stock record: disk full", appErr.Message())
}

func TestFarmService_ListFoodStocks_Stranger(t *testing.T) {
	f := createTestFarmService(t)
	ctx := context.Background()
	farmID := uuid.New()

	f.farmRepo.EXPECT().FindByID(ctx, farmID).Return(&entity.Farm{ID: farmID, UserID: uuid.New()}, nil)

	_, err := f.service.ListFoodStocks(ctx, uuid.New(), farmID)

	requireAppError(t, err, domainerrors.ErrForbidden, http.StatusForbidden)
}

func TestFarmService_DeleteFoodStock(t *testing.T) {
	ownerID := uuid.New()
	stockID := uuid.New()

	t.Run("missing record", func(t *testing.T) {
		f := createTestFarmService(t)
		ctx := context.Background()

		f.foodStockRepo.EXPECT().FindByID(ctx, stockID).Return(nil, repository.ErrFoodStockNotFound)

		err := f.service.DeleteFoodStock(ctx, ownerID, stockID)

		appErr := requireAppError(t, err, domainerrors.ErrNotFound, http.StatusNotFound)
		assert.Equal(t, "Food stock record with ID "+stockID.String()+" not found", appErr.Message())
	})

	t.Run("owned through another user's farm", func(t *testing.T) {
		f := createTestFarmService(t)
		ctx := context.Background()

		f.foodStockRepo.EXPECT().FindByID(ctx, stockID).Return(&entity.FoodStock{ID: stockID, Farm: &entity.Farm{UserID: uuid.New()}}, nil)

		err := f.service.DeleteFoodStock(ctx, ownerID, stockID)

		appErr := requireAppError(t, err, domainerrors.ErrForbidden, http.StatusForbidden)
		assert.Equal(t, "You don't have access to this food stock record", appErr.Message())
	})

	t.Run("owner deletes", func(t *testing.T) {
		f := createTestFarmService(t)
		ctx := context.Background()

		f.foodStockRepo.EXPECT().FindByID(ctx, stockID).Return(&entity.FoodStock{ID: stockID, Farm: &entity.Farm{UserID: ownerID}}, nil)
		f.foodStockRepo.EXPECT().Delete(ctx, stockID).Return(nil)

		require.NoError(t, f.service.DeleteFoodStock(ctx, ownerID, stockID))
	})
}
