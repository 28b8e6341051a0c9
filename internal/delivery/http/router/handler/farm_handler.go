package handler

import (
	"log/slog"
	"net/http"

	"farmhub/internal/delivery/http/response"
	"farmhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// FarmHandlerParams holds dependencies for FarmHandler, injected by Fx.
type FarmHandlerParams struct {
	fx.In

	FarmUC usecase.FarmUsecase
	Logger *slog.Logger
}

// FarmHandler serves farms and their food stock.
type FarmHandler struct {
	farmUC usecase.FarmUsecase
	logger *slog.Logger
}

// NewFarmHandler is the constructor for FarmHandler.
func NewFarmHandler(params FarmHandlerParams) *FarmHandler {
	return &FarmHandler{
		farmUC: params.FarmUC,
		logger: params.Logger,
	}
}

// CreateFarmRequest is the body of POST /farms.
type CreateFarmRequest struct {
	Name        string  `json:"name" validate:"required"`
	Location    *string `json:"location,omitempty"`
	Description *string `json:"description,omitempty"`
}

// UpdateFarmRequest is the body of PATCH /farms/:id.
type UpdateFarmRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1"`
	Location    *string `json:"location,omitempty"`
	Description *string `json:"description,omitempty"`
}

// FoodStockRequest is the body of POST /farms/:id/food-stocks.
type FoodStockRequest struct {
	Name       string  `json:"name" validate:"required"`
	Quantity   float64 `json:"quantity" validate:"gte=0"`
	Unit       string  `json:"unit" validate:"required"`
	ExpiryDate *Date   `json:"expiryDate,omitempty"`
}

// CreateFarm godoc
//
//	@Summary	Create a farm owned by the caller
//	@Tags		farms
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		body	body		CreateFarmRequest	true	"Farm"
//	@Success	201		{object}	FarmResponse
//	@Router		/farms [post]
func (h *FarmHandler) CreateFarm(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	var req CreateFarmRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	farm, err := h.farmUC.CreateFarm(c.Request().Context(), userID, &usecase.CreateFarmInput{
		Name:        req.Name,
		Location:    req.Location,
		Description: req.Description,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newFarmResponse(farm))
}

// ListFarms godoc
//
//	@Summary	List every farm with its animals and owner
//	@Tags		farms
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}	FarmResponse
//	@Router		/farms [get]
func (h *FarmHandler) ListFarms(c echo.Context) error {
	farms, err := h.farmUC.ListFarms(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newFarmResponses(farms))
}

// ListMyFarms godoc
//
//	@Summary	List the caller's farms
//	@Tags		farms
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}	FarmResponse
//	@Router		/farms/my-farms [get]
func (h *FarmHandler) ListMyFarms(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	farms, err := h.farmUC.ListMyFarms(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newFarmResponses(farms))
}

// GetFarm godoc
//
//	@Summary	Get a farm
//	@Tags		farms
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		string	true	"Farm ID"
//	@Success	200	{object}	FarmResponse
//	@Failure	404	{object}	response.ErrorResponse
//	@Router		/farms/{id} [get]
func (h *FarmHandler) GetFarm(c echo.Context) error {
	farmID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	farm, err := h.farmUC.GetFarm(c.Request().Context(), farmID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newFarmResponse(farm))
}

// UpdateFarm godoc
//
//	@Summary	Update a farm (owner only)
//	@Tags		farms
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		string				true	"Farm ID"
//	@Param		body	body		UpdateFarmRequest	true	"Changed fields"
//	@Success	200		{object}	FarmResponse
//	@Failure	403		{object}	response.ErrorResponse
//	@Router		/farms/{id} [patch]
func (h *FarmHandler) UpdateFarm(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	farmID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req UpdateFarmRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	farm, err := h.farmUC.UpdateFarm(c.Request().Context(), userID, farmID, &usecase.UpdateFarmInput{
		Name:        req.Name,
		Location:    req.Location,
		Description: req.Description,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newFarmResponse(farm))
}

// DeleteFarm godoc
//
//	@Summary	Delete a farm (owner only)
//	@Tags		farms
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		string	true	"Farm ID"
//	@Success	200	{object}	response.MessageResponse
//	@Failure	403	{object}	response.ErrorResponse
//	@Router		/farms/{id} [delete]
func (h *FarmHandler) DeleteFarm(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	farmID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.farmUC.DeleteFarm(c.Request().Context(), userID, farmID); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Farm deleted successfully")
}

// AddFoodStock godoc
//
//	@Summary	Add a food stock record to a farm (owner only)
//	@Tags		farms
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		string				true	"Farm ID"
//	@Param		body	body		FoodStockRequest	true	"Stock"
//	@Success	201		{object}	FoodStockResponse
//	@Router		/farms/{id}/food-stocks [post]
func (h *FarmHandler) AddFoodStock(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	farmID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req FoodStockRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	stock, err := h.farmUC.AddFoodStock(c.Request().Context(), userID, farmID, &usecase.FoodStockInput{
		Name:       req.Name,
		Quantity:   req.Quantity,
		Unit:       req.Unit,
		ExpiryDate: req.ExpiryDate.Ptr(),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newFoodStockResponse(stock))
}

// ListFoodStocks godoc
//
//	@Summary	List a farm's food stock, newest first (owner only)
//	@Tags		farms
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path	string	true	"Farm ID"
//	@Success	200	{array}	FoodStockResponse
//	@Router		/farms/{id}/food-stocks [get]
func (h *FarmHandler) ListFoodStocks(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	farmID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	stocks, err := h.farmUC.ListFoodStocks(c.Request().Context(), userID, farmID)
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]*FoodStockResponse, 0, len(stocks))
	for _, stock := range stocks {
		out = append(out, newFoodStockResponse(stock))
	}

	return response.Success(c, http.StatusOK, out)
}

// DeleteFoodStock godoc
//
//	@Summary	Delete a food stock record (farm owner only)
//	@Tags		farms
//	@Produce	json
//	@Security	BearerAuth
//	@Param		stockId	path		string	true	"Food stock ID"
//	@Success	200		{object}	response.MessageResponse
//	@Failure	404		{object}	response.ErrorResponse
//	@Router		/farms/food-stocks/{stockId} [delete]
func (h *FarmHandler) DeleteFoodStock(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	stockID, err := pathID(c, "stockId")
	if err != nil {
		return err
	}

	if err := h.farmUC.DeleteFoodStock(c.Request().Context(), userID, stockID); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Food stock record deleted successfully")
}
