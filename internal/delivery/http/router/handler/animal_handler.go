package handler

import (
	"log/slog"
	"net/http"

	"farmhub/internal/delivery/http/response"
	"farmhub/internal/domain/entity"
	"farmhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AnimalHandlerParams holds dependencies for AnimalHandler, injected by Fx.
type AnimalHandlerParams struct {
	fx.In

	AnimalUC usecase.AnimalUsecase
	Logger   *slog.Logger
}

// AnimalHandler serves animals and their vaccine and breeding records.
type AnimalHandler struct {
	animalUC usecase.AnimalUsecase
	logger   *slog.Logger
}

// NewAnimalHandler is the constructor for AnimalHandler.
func NewAnimalHandler(params AnimalHandlerParams) *AnimalHandler {
	return &AnimalHandler{
		animalUC: params.AnimalUC,
		logger:   params.Logger,
	}
}

// CreateAnimalRequest is the body of POST /animals.
type CreateAnimalRequest struct {
	Name         string              `json:"name" validate:"required"`
	Type         entity.AnimalType   `json:"type" validate:"required,oneof=SHEEP GOAT COW CHICKEN PIG HORSE OTHER"`
	BirthDate    *Date               `json:"birthDate,omitempty"`
	Weight       *float64            `json:"weight,omitempty" validate:"omitempty,gt=0"`
	HealthStatus entity.HealthStatus `json:"healthStatus,omitempty" validate:"omitempty,oneof=HEALTHY SICK INJURED QUARANTINED DECEASED"`
}

// UpdateAnimalRequest is the body of PATCH /animals/:id.
type UpdateAnimalRequest struct {
	Name         *string              `json:"name,omitempty" validate:"omitempty,min=1"`
	Type         *entity.AnimalType   `json:"type,omitempty" validate:"omitempty,oneof=SHEEP GOAT COW CHICKEN PIG HORSE OTHER"`
	BirthDate    *Date                `json:"birthDate,omitempty"`
	Weight       *float64             `json:"weight,omitempty" validate:"omitempty,gt=0"`
	HealthStatus *entity.HealthStatus `json:"healthStatus,omitempty" validate:"omitempty,oneof=HEALTHY SICK INJURED QUARANTINED DECEASED"`
	FarmID       *uuid.UUID           `json:"farmId,omitempty"`
}

// ListAnimalsQuery holds the query string of GET /animals.
type ListAnimalsQuery struct {
	Page         int    `query:"page" validate:"gte=0"`
	Limit        int    `query:"limit" validate:"gte=0"`
	Type         string `query:"type" validate:"omitempty,oneof=SHEEP GOAT COW CHICKEN PIG HORSE OTHER"`
	HealthStatus string `query:"healthStatus" validate:"omitempty,oneof=HEALTHY SICK INJURED QUARANTINED DECEASED"`
	Search       string `query:"search"`
}

// VaccineRequest is the body of POST /animals/:id/vaccines.
type VaccineRequest struct {
	Name        string  `json:"name" validate:"required"`
	Date        Date    `json:"date" validate:"required"`
	Description *string `json:"description,omitempty"`
}

// BreedingRequest is the body of POST /animals/:id/breedings.
type BreedingRequest struct {
	Date            Date                  `json:"date" validate:"required"`
	Method          entity.BreedingMethod `json:"method" validate:"required,oneof=NATURAL ARTIFICIAL_INSEMINATION"`
	Notes           *string               `json:"notes,omitempty"`
	PartnerAnimalID *uuid.UUID            `json:"partnerAnimalId,omitempty"`
}

// CreateAnimal godoc
//
//	@Summary		Add an animal to the caller's newest farm
//	@Description	Fails with NO_FARMS when the caller has no farm yet.
//	@Tags			animals
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			body	body		CreateAnimalRequest	true	"Animal"
//	@Success		201		{object}	AnimalResponse
//	@Failure		400		{object}	response.ErrorResponse
//	@Router			/animals [post]
func (h *AnimalHandler) CreateAnimal(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	var req CreateAnimalRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	animal, err := h.animalUC.CreateAnimal(c.Request().Context(), userID, &usecase.CreateAnimalInput{
		Name:         req.Name,
		Type:         req.Type,
		BirthDate:    req.BirthDate.Ptr(),
		Weight:       req.Weight,
		HealthStatus: req.HealthStatus,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newAnimalResponse(animal))
}

// ListAnimals godoc
//
//	@Summary	Page through the caller's animals
//	@Tags		animals
//	@Produce	json
//	@Security	BearerAuth
//	@Param		page			query		int		false	"Page, from 1"
//	@Param		limit			query		int		false	"Page size, at most 100"
//	@Param		type			query		string	false	"Animal type"
//	@Param		healthStatus	query		string	false	"Health status"
//	@Param		search			query		string	false	"Case-insensitive name filter"
//	@Success	200				{object}	AnimalListResponse
//	@Router		/animals [get]
func (h *AnimalHandler) ListAnimals(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	var query ListAnimalsQuery
	if err := bindAndValidate(c, &query); err != nil {
		return err
	}

	page, err := h.animalUC.ListAnimals(c.Request().Context(), userID, &usecase.ListAnimalsInput{
		Page:         query.Page,
		Limit:        query.Limit,
		Type:         entity.AnimalType(query.Type),
		HealthStatus: entity.HealthStatus(query.HealthStatus),
		Search:       query.Search,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, &AnimalListResponse{
		Data: newAnimalResponses(page.Animals),
		Meta: PageMeta{
			Total:      page.Total,
			Page:       page.Page,
			Limit:      page.Limit,
			TotalPages: page.TotalPages,
		},
	})
}

// GetAnimal godoc
//
//	@Summary	Get one of the caller's animals
//	@Tags		animals
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		string	true	"Animal ID"
//	@Success	200	{object}	AnimalResponse
//	@Failure	403	{object}	response.ErrorResponse
//	@Failure	404	{object}	response.ErrorResponse
//	@Router		/animals/{id} [get]
func (h *AnimalHandler) GetAnimal(c echo.Context) error {
	userID, animalID, err := h.callerAndAnimal(c)
	if err != nil {
		return err
	}

	animal, err := h.animalUC.GetAnimal(c.Request().Context(), userID, animalID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newAnimalResponse(animal))
}

// UpdateAnimal godoc
//
//	@Summary		Update an animal
//	@Description	Setting farmId moves the animal; the caller must own the target farm.
//	@Tags			animals
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string				true	"Animal ID"
//	@Param			body	body		UpdateAnimalRequest	true	"Changed fields"
//	@Success		200		{object}	AnimalResponse
//	@Router			/animals/{id} [patch]
func (h *AnimalHandler) UpdateAnimal(c echo.Context) error {
	userID, animalID, err := h.callerAndAnimal(c)
	if err != nil {
		return err
	}

	var req UpdateAnimalRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	animal, err := h.animalUC.UpdateAnimal(c.Request().Context(), userID, animalID, &usecase.UpdateAnimalInput{
		Name:         req.Name,
		Type:         req.Type,
		BirthDate:    req.BirthDate.Ptr(),
		Weight:       req.Weight,
		HealthStatus: req.HealthStatus,
		FarmID:       req.FarmID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newAnimalResponse(animal))
}

// DeleteAnimal godoc
//
//	@Summary	Delete an animal
//	@Tags		animals
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		string	true	"Animal ID"
//	@Success	200	{object}	response.MessageResponse
//	@Router		/animals/{id} [delete]
func (h *AnimalHandler) DeleteAnimal(c echo.Context) error {
	userID, animalID, err := h.callerAndAnimal(c)
	if err != nil {
		return err
	}

	if err := h.animalUC.DeleteAnimal(c.Request().Context(), userID, animalID); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Animal deleted successfully")
}

// GetQRCode godoc
//
//	@Summary	PNG QR tag identifying the animal
//	@Tags		animals
//	@Produce	png
//	@Security	BearerAuth
//	@Param		id	path	string	true	"Animal ID"
//	@Success	200	{file}	binary
//	@Router		/animals/{id}/qrcode [get]
func (h *AnimalHandler) GetQRCode(c echo.Context) error {
	userID, animalID, err := h.callerAndAnimal(c)
	if err != nil {
		return err
	}

	png, err := h.animalUC.GenerateTag(c.Request().Context(), userID, animalID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// AddVaccine godoc
//
//	@Summary	Record a vaccination
//	@Tags		animals
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		string			true	"Animal ID"
//	@Param		body	body		VaccineRequest	true	"Vaccination"
//	@Success	201		{object}	VaccineResponse
//	@Router		/animals/{id}/vaccines [post]
func (h *AnimalHandler) AddVaccine(c echo.Context) error {
	userID, animalID, err := h.callerAndAnimal(c)
	if err != nil {
		return err
	}

	var req VaccineRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	vaccine, err := h.animalUC.AddVaccine(c.Request().Context(), userID, animalID, &usecase.VaccineInput{
		Name:        req.Name,
		Date:        req.Date.Time,
		Description: req.Description,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newVaccineResponse(vaccine))
}

// ListVaccines godoc
//
//	@Summary	List an animal's vaccinations, newest first
//	@Tags		animals
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path	string	true	"Animal ID"
//	@Success	200	{array}	VaccineResponse
//	@Router		/animals/{id}/vaccines [get]
func (h *AnimalHandler) ListVaccines(c echo.Context) error {
	userID, animalID, err := h.callerAndAnimal(c)
	if err != nil {
		return err
	}

	vaccines, err := h.animalUC.ListVaccines(c.Request().Context(), userID, animalID)
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]*VaccineResponse, 0, len(vaccines))
	for _, v := range vaccines {
		out = append(out, newVaccineResponse(v))
	}

	return response.Success(c, http.StatusOK, out)
}

// DeleteVaccine godoc
//
//	@Summary	Delete a vaccination
//	@Tags		animals
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id			path		string	true	"Animal ID"
//	@Param		vaccineId	path		string	true	"Vaccine ID"
//	@Success	200			{object}	response.MessageResponse
//	@Router		/animals/{id}/vaccines/{vaccineId} [delete]
func (h *AnimalHandler) DeleteVaccine(c echo.Context) error {
	userID, animalID, err := h.callerAndAnimal(c)
	if err != nil {
		return err
	}
	vaccineID, err := pathID(c, "vaccineId")
	if err != nil {
		return err
	}

	if err := h.animalUC.DeleteVaccine(c.Request().Context(), userID, animalID, vaccineID); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Vaccine record deleted successfully")
}

// AddBreeding godoc
//
//	@Summary	Record a breeding event
//	@Tags		animals
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		string			true	"Animal ID"
//	@Param		body	body		BreedingRequest	true	"Breeding"
//	@Success	201		{object}	BreedingResponse
//	@Router		/animals/{id}/breedings [post]
func (h *AnimalHandler) AddBreeding(c echo.Context) error {
	userID, animalID, err := h.callerAndAnimal(c)
	if err != nil {
		return err
	}

	var req BreedingRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	breeding, err := h.animalUC.AddBreeding(c.Request().Context(), userID, animalID, &usecase.BreedingInput{
		Date:            req.Date.Time,
		Method:          req.Method,
		Notes:           req.Notes,
		PartnerAnimalID: req.PartnerAnimalID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newBreedingResponse(breeding))
}

// ListBreedings godoc
//
//	@Summary	List an animal's breeding events, newest first
//	@Tags		animals
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path	string	true	"Animal ID"
//	@Success	200	{array}	BreedingResponse
//	@Router		/animals/{id}/breedings [get]
func (h *AnimalHandler) ListBreedings(c echo.Context) error {
	userID, animalID, err := h.callerAndAnimal(c)
	if err != nil {
		return err
	}

	breedings, err := h.animalUC.ListBreedings(c.Request().Context(), userID, animalID)
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]*BreedingResponse, 0, len(breedings))
	for _, b := range breedings {
		out = append(out, newBreedingResponse(b))
	}

	return response.Success(c, http.StatusOK, out)
}

// DeleteBreeding godoc
//
//	@Summary	Delete a breeding event
//	@Tags		animals
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id			path		string	true	"Animal ID"
//	@Param		breedingId	path		string	true	"Breeding ID"
//	@Success	200			{object}	response.MessageResponse
//	@Router		/animals/{id}/breedings/{breedingId} [delete]
func (h *AnimalHandler) DeleteBreeding(c echo.Context) error {
	userID, animalID, err := h.callerAndAnimal(c)
	if err != nil {
		return err
	}
	breedingID, err := pathID(c, "breedingId")
	if err != nil {
		return err
	}

	if err := h.animalUC.DeleteBreeding(c.Request().Context(), userID, animalID, breedingID); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Breeding record deleted successfully")
}

func (h *AnimalHandler) callerAndAnimal(c echo.Context) (uuid.UUID, uuid.UUID, error) {
	userID, err := callerID(c)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	animalID, err := pathID(c, "id")
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}

	return userID, animalID, nil
}
