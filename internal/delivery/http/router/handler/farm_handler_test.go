package handler

import (
	"net/http"
	"testing"
	"time"

	"farmhub/internal/domain/entity"
	domainerrors "farmhub/internal/domain/errors"
	mockUsecase "farmhub/internal/mocks/usecase"
	"farmhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestFarmHandler(t *testing.T) (*echo.Echo, *mockUsecase.MockFarmUsecase) {
	e := newTestEcho()
	farmUC := mockUsecase.NewMockFarmUsecase(t)
	h := NewFarmHandler(FarmHandlerParams{FarmUC: farmUC, Logger: newDiscardLogger()})

	e.POST("/farms", h.CreateFarm)
	e.GET("/farms", h.ListFarms)
	e.GET("/farms/my-farms", h.ListMyFarms)
	e.DELETE("/farms/food-stocks/:stockId", h.DeleteFoodStock)
	e.GET("/farms/:id", h.GetFarm)
	e.PATCH("/farms/:id", h.UpdateFarm)
	e.DELETE("/farms/:id", h.DeleteFarm)
	e.POST("/farms/:id/food-stocks", h.AddFoodStock)
	e.GET("/farms/:id/food-stocks", h.ListFoodStocks)

	return e, farmUC
}

func TestFarmHandler_CreateFarm(t *testing.T) {
	e, farmUC := createTestFarmHandler(t)
	userID := uuid.New()

	farmUC.EXPECT().
		CreateFarm(mock.Anything, userID, &usecase.CreateFarmInput{Name: "Green Acres"}).
		Return(&entity.Farm{ID: uuid.New(), Name: "Green Acres", UserID: userID}, nil)

	rec := doRequest(e, http.MethodPost, "/farms", `{"name":"Green Acres"}`, userID)

	require.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody[FarmResponse](t, rec)
	assert.Equal(t, userID, body.UserID)
	assert.Nil(t, body.Animals)
}

func TestFarmHandler_ListFarms_IncludesOwnerAndAnimals(t *testing.T) {
	e, farmUC := createTestFarmHandler(t)
	ownerID := uuid.New()
	farmID := uuid.New()

	farmUC.EXPECT().ListFarms(mock.Anything).Return([]*entity.Farm{{
		ID:      farmID,
		Name:    "Green Acres",
		UserID:  ownerID,
		Owner:   &entity.UserSummary{ID: ownerID, Email: "o@example.com", FirstName: "O", LastName: "W"},
		Animals: []*entity.Animal{{ID: uuid.New(), Name: "Dolly", Type: entity.AnimalTypeSheep, FarmID: farmID}},
	}}, nil)

	rec := doRequest(e, http.MethodGet, "/farms", "", uuid.New())

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody[[]FarmResponse](t, rec)
	require.Len(t, body, 1)
	assert.Equal(t, "o@example.com", body[0].User.Email)
	require.Len(t, body[0].Animals, 1)
	assert.Equal(t, "Dolly", body[0].Animals[0].Name)
}

func TestFarmHandler_GetFarm_InvalidID(t *testing.T) {
	e, _ := createTestFarmHandler(t)

	rec := doRequest(e, http.MethodGet, "/farms/not-a-uuid", "", uuid.New())

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFarmHandler_GetFarm_NotFound(t *testing.T) {
	e, farmUC := createTestFarmHandler(t)
	farmID := uuid.New()

	farmUC.EXPECT().GetFarm(mock.Anything, farmID).
		Return(nil, domainerrors.ErrNotFound.WithMessage("Farm with ID %s not found", farmID))

	rec := doRequest(e, http.MethodGet, "/farms/"+farmID.String(), "", uuid.New())

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Farm with ID "+farmID.String()+" not found", decodeBody[errorBody](t, rec).Error.Message)
}

func TestFarmHandler_DeleteFarm_Forbidden(t *testing.T) {
	e, farmUC := createTestFarmHandler(t)
	userID := uuid.New()
	farmID := uuid.New()

	farmUC.EXPECT().DeleteFarm(mock.Anything, userID, farmID).
		Return(domainerrors.ErrForbidden.WithMessage("You don't have access to this farm"))

	rec := doRequest(e, http.MethodDelete, "/farms/"+farmID.String(), "", userID)

	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "You don't have access to this farm", decodeBody[errorBody](t, rec).Error.Message)
}

func TestFarmHandler_AddFoodStock_AcceptsPlainDate(t *testing.T) {
	e, farmUC := createTestFarmHandler(t)
	userID := uuid.New()
	farmID := uuid.New()
	expiry := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)

	farmUC.EXPECT().
		AddFoodStock(mock.Anything, userID, farmID, &usecase.FoodStockInput{Name: "Hay", Quantity: 12.5, Unit: "bales", ExpiryDate: &expiry}).
		Return(&entity.FoodStock{ID: uuid.New(), Name: "Hay", Quantity: 12.5, Unit: "bales", ExpiryDate: &expiry, FarmID: farmID}, nil)

	rec := doRequest(e, http.MethodPost, "/farms/"+farmID.String()+"/food-stocks",
		`{"name":"Hay","quantity":12.5,"unit":"bales","expiryDate":"2025-01-31"}`, userID)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, farmID, decodeBody[FoodStockResponse](t, rec).FarmID)
}

func TestFarmHandler_DeleteFoodStock(t *testing.T) {
	e, farmUC := createTestFarmHandler(t)
	userID := uuid.New()
	stockID := uuid.New()

	farmUC.EXPECT().DeleteFoodStock(mock.Anything, userID, stockID).Return(nil)

	rec := doRequest(e, http.MethodDelete, "/farms/food-stocks/"+stockID.String(), "", userID)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Food stock record deleted successfully"}`, rec.Body.String())
}
