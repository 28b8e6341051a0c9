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

func createTestAnimalHandler(t *testing.T) (*echo.Echo, *mockUsecase.MockAnimalUsecase) {
	e := newTestEcho()
	animalUC := mockUsecase.NewMockAnimalUsecase(t)
	h := NewAnimalHandler(AnimalHandlerParams{AnimalUC: animalUC, Logger: newDiscardLogger()})

	e.POST("/animals", h.CreateAnimal)
	e.GET("/animals", h.ListAnimals)
	e.GET("/animals/:id", h.GetAnimal)
	e.PATCH("/animals/:id", h.UpdateAnimal)
	e.DELETE("/animals/:id", h.DeleteAnimal)
	e.GET("/animals/:id/qrcode", h.GetQRCode)
	e.POST("/animals/:id/vaccines", h.AddVaccine)
	e.DELETE("/animals/:id/vaccines/:vaccineId", h.DeleteVaccine)
	e.POST("/animals/:id/breedings", h.AddBreeding)

	return e, animalUC
}

func TestAnimalHandler_CreateAnimal_NoFarm(t *testing.T) {
	e, animalUC := createTestAnimalHandler(t)
	userID := uuid.New()

	animalUC.EXPECT().
		CreateAnimal(mock.Anything, userID, &usecase.CreateAnimalInput{Name: "Dolly", Type: entity.AnimalTypeSheep}).
		Return(nil, domainerrors.ErrNoFarms)

	rec := doRequest(e, http.MethodPost, "/animals", `{"name":"Dolly","type":"SHEEP"}`, userID)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "No farms found for this user. Please create a farm first.", decodeBody[errorBody](t, rec).Error.Message)
}

func TestAnimalHandler_CreateAnimal_RejectsUnknownType(t *testing.T) {
	e, _ := createTestAnimalHandler(t)

	rec := doRequest(e, http.MethodPost, "/animals", `{"name":"Nessie","type":"DRAGON"}`, uuid.New())

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody[errorBody](t, rec)
	require.Len(t, body.Error.Details, 1)
	assert.Equal(t, "type", body.Error.Details[0].Field)
	assert.Equal(t, "oneof", body.Error.Details[0].Rule)
}

func TestAnimalHandler_ListAnimals_PassesQuery(t *testing.T) {
	e, animalUC := createTestAnimalHandler(t)
	userID := uuid.New()

	animalUC.EXPECT().
		ListAnimals(mock.Anything, userID, &usecase.ListAnimalsInput{
			Page:         2,
			Limit:        5,
			Type:         entity.AnimalTypeGoat,
			HealthStatus: entity.HealthStatusSick,
			Search:       "bil",
		}).
		Return(&usecase.AnimalPage{
			Animals:    []*entity.Animal{{ID: uuid.New(), Name: "Billy", Type: entity.AnimalTypeGoat}},
			Total:      6,
			Page:       2,
			Limit:      5,
			TotalPages: 2,
		}, nil)

	rec := doRequest(e, http.MethodGet, "/animals?page=2&limit=5&type=GOAT&healthStatus=SICK&search=bil", "", userID)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody[AnimalListResponse](t, rec)
	assert.Equal(t, PageMeta{Total: 6, Page: 2, Limit: 5, TotalPages: 2}, body.Meta)
	require.Len(t, body.Data, 1)
	assert.Equal(t, "Billy", body.Data[0].Name)
}

func TestAnimalHandler_GetAnimal_Forbidden(t *testing.T) {
	e, animalUC := createTestAnimalHandler(t)
	userID := uuid.New()
	animalID := uuid.New()

	animalUC.EXPECT().GetAnimal(mock.Anything, userID, animalID).
		Return(nil, domainerrors.ErrForbidden.WithMessage("You don't have access to this animal"))

	rec := doRequest(e, http.MethodGet, "/animals/"+animalID.String(), "", userID)

	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "You don't have access to this animal", decodeBody[errorBody](t, rec).Error.Message)
}

func TestAnimalHandler_UpdateAnimal_MovesFarm(t *testing.T) {
	e, animalUC := createTestAnimalHandler(t)
	userID := uuid.New()
	animalID := uuid.New()
	farmID := uuid.New()

	animalUC.EXPECT().
		UpdateAnimal(mock.Anything, userID, animalID, &usecase.UpdateAnimalInput{FarmID: &farmID}).
		Return(&entity.Animal{ID: animalID, FarmID: farmID}, nil)

	rec := doRequest(e, http.MethodPatch, "/animals/"+animalID.String(), `{"farmId":"`+farmID.String()+`"}`, userID)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, farmID, decodeBody[AnimalResponse](t, rec).FarmID)
}

func TestAnimalHandler_GetQRCode(t *testing.T) {
	e, animalUC := createTestAnimalHandler(t)
	userID := uuid.New()
	animalID := uuid.New()
	png := []byte{0x89, 'P', 'N', 'G'}

	animalUC.EXPECT().GenerateTag(mock.Anything, userID, animalID).Return(png, nil)

	rec := doRequest(e, http.MethodGet, "/animals/"+animalID.String()+"/qrcode", "", userID)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestAnimalHandler_AddVaccine(t *testing.T) {
	e, animalUC := createTestAnimalHandler(t)
	userID := uuid.New()
	animalID := uuid.New()
	date := time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)

	animalUC.EXPECT().
		AddVaccine(mock.Anything, userID, animalID, &usecase.VaccineInput{Name: "Rabies", Date: date}).
		Return(&entity.Vaccine{ID: uuid.New(), Name: "Rabies", Date: date, AnimalID: animalID}, nil)

	rec := doRequest(e, http.MethodPost, "/animals/"+animalID.String()+"/vaccines",
		`{"name":"Rabies","date":"2024-05-01T09:30:00Z"}`, userID)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, animalID, decodeBody[VaccineResponse](t, rec).AnimalID)
}

func TestAnimalHandler_AddVaccine_MissingDate(t *testing.T) {
	e, _ := createTestAnimalHandler(t)

	rec := doRequest(e, http.MethodPost, "/animals/"+uuid.New().String()+"/vaccines", `{"name":"Rabies"}`, uuid.New())

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_ERROR", decodeBody[errorBody](t, rec).Error.Code)
}

func TestAnimalHandler_DeleteVaccine_NotFound(t *testing.T) {
	e, animalUC := createTestAnimalHandler(t)
	userID := uuid.New()
	animalID := uuid.New()
	vaccineID := uuid.New()

	animalUC.EXPECT().DeleteVaccine(mock.Anything, userID, animalID, vaccineID).
		Return(domainerrors.ErrNotFound.WithMessage("Vaccine record with ID %s not found", vaccineID))

	rec := doRequest(e, http.MethodDelete, "/animals/"+animalID.String()+"/vaccines/"+vaccineID.String(), "", userID)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAnimalHandler_AddBreeding_SelfPartner(t *testing.T) {
	e, animalUC := createTestAnimalHandler(t)
	userID := uuid.New()
	animalID := uuid.New()

	animalUC.EXPECT().AddBreeding(mock.Anything, userID, animalID, mock.Anything).
		Return(nil, domainerrors.ErrBadRequest.WithMessage("An animal cannot be its own breeding partner"))

	rec := doRequest(e, http.MethodPost, "/animals/"+animalID.String()+"/breedings",
		`{"date":"2024-05-01","method":"NATURAL","partnerAnimalId":"`+animalID.String()+`"}`, userID)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "An animal cannot be its own breeding partner", decodeBody[errorBody](t, rec).Error.Message)
}
