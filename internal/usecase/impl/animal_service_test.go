package impl

import (
	"context"
	"net/http"
	"testing"
	"time"

	"farmhub/config"
	"farmhub/internal/domain/entity"
	domainerrors "farmhub/internal/domain/errors"
	"farmhub/internal/domain/repository"
	"farmhub/internal/domain/service"
	mockRepo "farmhub/internal/mocks/repository"
	mockSvc "farmhub/internal/mocks/service"
	"farmhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type animalServiceFixtures struct {
	service      usecase.AnimalUsecase
	animalRepo   *mockRepo.MockAnimalRepository
	vaccineRepo  *mockRepo.MockVaccineRepository
	breedingRepo *mockRepo.MockBreedingRepository
	farmRepo     *mockRepo.MockFarmRepository
	qrService    *mockSvc.MockQRCodeService
}

func createTestAnimalService(t *testing.T) animalServiceFixtures {
	f := animalServiceFixtures{
		animalRepo:   mockRepo.NewMockAnimalRepository(t),
		vaccineRepo:  mockRepo.NewMockVaccineRepository(t),
		breedingRepo: mockRepo.NewMockBreedingRepository(t),
		farmRepo:     mockRepo.NewMockFarmRepository(t),
		qrService:    mockSvc.NewMockQRCodeService(t),
	}
	f.service = NewAnimalService(AnimalServiceParams{
		AnimalRepo:   f.animalRepo,
		VaccineRepo:  f.vaccineRepo,
		BreedingRepo: f.breedingRepo,
		FarmRepo:     f.farmRepo,
		QRService:    f.qrService,
		Config:       &config.Config{QRCode: &config.QRCodeConfig{BaseURL: "https://farm.example.com/"}},
		Logger:       newDiscardLogger(),
	})

	return f
}

func ownedAnimal(ownerID uuid.UUID) *entity.Animal {
	farmID := uuid.New()

	return &entity.Animal{
		ID:     uuid.New(),
		Name:   "Dolly",
		Type:   entity.AnimalTypeSheep,
		FarmID: farmID,
		Farm:   &entity.Farm{ID: farmID, UserID: ownerID},
	}
}

func TestAnimalService_CreateAnimal_UsesLatestFarm(t *testing.T) {
	f := createTestAnimalService(t)
	ctx := context.Background()
	callerID := uuid.New()
	latest := &entity.Farm{ID: uuid.New(), UserID: callerID}

	f.farmRepo.EXPECT().FindLatestByUserID(ctx, callerID).Return(latest, nil)
	f.animalRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(animal *entity.Animal) bool {
			return animal.FarmID == latest.ID && animal.HealthStatus == entity.HealthStatusHealthy
		})).
		Return(nil)

	animal, err := f.service.CreateAnimal(ctx, callerID, &usecase.CreateAnimalInput{Name: "Dolly", Type: entity.AnimalTypeSheep})

	require.NoError(t, err)
	assert.Equal(t, latest, animal.Farm)
}

func TestAnimalService_CreateAnimal_NoFarm(t *testing.T) {
	f := createTestAnimalService(t)
	ctx := context.Background()
	callerID := uuid.New()

	f.farmRepo.EXPECT().FindLatestByUserID(ctx, callerID).Return(nil, repository.ErrFarmNotFound)

	_, err := f.service.CreateAnimal(ctx, callerID, &usecase.CreateAnimalInput{Name: "Dolly", Type: entity.AnimalTypeSheep})

	appErr := requireAppError(t, err, domainerrors.ErrNoFarms, http.StatusBadRequest)
	assert.Equal(t, "No farms found for this user. Please create a farm first.", appErr.Message())
}

func TestAnimalService_ListAnimals_Pagination(t *testing.T) {
	tests := []struct {
		name       string
		input      usecase.ListAnimalsInput
		total      int64
		wantOffset int
		wantLimit  int
		wantPage   int
		wantPages  int
	}{
		{name: "defaults", input: usecase.ListAnimalsInput{}, total: 25, wantOffset: 0, wantLimit: 10, wantPage: 1, wantPages: 3},
		{name: "third page", input: usecase.ListAnimalsInput{Page: 3, Limit: 5}, total: 11, wantOffset: 10, wantLimit: 5, wantPage: 3, wantPages: 3},
		{name: "limit capped", input: usecase.ListAnimalsInput{Page: 1, Limit: 500}, total: 0, wantOffset: 0, wantLimit: 100, wantPage: 1, wantPages: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestAnimalService(t)
			ctx := context.Background()
			callerID := uuid.New()

			f.animalRepo.EXPECT().
				List(ctx, mock.MatchedBy(func(filter entity.AnimalFilter) bool {
					return filter.OwnerID == callerID && filter.Offset == tt.wantOffset && filter.Limit == tt.wantLimit
				})).
				Return([]*entity.Animal{}, tt.total, nil)

			page, err := f.service.ListAnimals(ctx, callerID, &tt.input)

			require.NoError(t, err)
			assert.Equal(t, tt.total, page.Total)
			assert.Equal(t, tt.wantPage, page.Page)
			assert.Equal(t, tt.wantLimit, page.Limit)
			assert.Equal(t, tt.wantPages, page.TotalPages)
		})
	}
}

func TestAnimalService_GetAnimal_Ownership(t *testing.T) {
	f := createTestAnimalService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	animal := ownedAnimal(ownerID)
	missingID := uuid.New()

	f.animalRepo.EXPECT().FindByID(ctx, animal.ID).Return(animal, nil)
	f.animalRepo.EXPECT().FindByID(ctx, missingID).Return(nil, repository.ErrAnimalNotFound)

	got, err := f.service.GetAnimal(ctx, ownerID, animal.ID)
	require.NoError(t, err)
	assert.Equal(t, animal.ID, got.ID)

	_, err = f.service.GetAnimal(ctx, uuid.New(), animal.ID)
	appErr := requireAppError(t, err, domainerrors.ErrForbidden, http.StatusForbidden)
	assert.Equal(t, "You don't have access to this animal", appErr.Message())

	_, err = f.service.GetAnimal(ctx, ownerID, missingID)
	appErr = requireAppError(t, err, domainerrors.ErrNotFound, http.StatusNotFound)
	assert.Equal(t, "Animal with ID "+missingID.String()+" not found", appErr.Message())
}

func TestAnimalService_UpdateAnimal_MoveToForeignFarm(t *testing.T) {
	f := createTestAnimalService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	animal := ownedAnimal(ownerID)
	foreignFarm := &entity.Farm{ID: uuid.New(), UserID: uuid.New()}

	f.animalRepo.EXPECT().FindByID(ctx, animal.ID).Return(animal, nil)
	f.farmRepo.EXPECT().FindByID(ctx, foreignFarm.ID).Return(foreignFarm, nil)

	_, err := f.service.UpdateAnimal(ctx, ownerID, animal.ID, &usecase.UpdateAnimalInput{FarmID: &foreignFarm.ID})

	requireAppError(t, err, domainerrors.ErrForbidden, http.StatusForbidden)
}

func TestAnimalService_UpdateAnimal_MoveToOwnFarm(t *testing.T) {
	f := createTestAnimalService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	animal := ownedAnimal(ownerID)
	otherFarm := &entity.Farm{ID: uuid.New(), UserID: ownerID}
	sick := entity.HealthStatusSick

	f.animalRepo.EXPECT().FindByID(ctx, animal.ID).Return(animal, nil)
	f.farmRepo.EXPECT().FindByID(ctx, otherFarm.ID).Return(otherFarm, nil)
	f.animalRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Animal")).Return(nil)

	updated, err := f.service.UpdateAnimal(ctx, ownerID, animal.ID, &usecase.UpdateAnimalInput{FarmID: &otherFarm.ID, HealthStatus: &sick})

	require.NoError(t, err)
	assert.Equal(t, otherFarm.ID, updated.FarmID)
	assert.Equal(t, entity.HealthStatusSick, updated.HealthStatus)
}

func TestAnimalService_GenerateTag(t *testing.T) {
	f := createTestAnimalService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	animal := ownedAnimal(ownerID)

	f.animalRepo.EXPECT().FindByID(ctx, animal.ID).Return(animal, nil)
	f.qrService.EXPECT().
		GenerateAnimalTag(&service.AnimalTag{
			AnimalID: animal.ID,
			FarmID:   animal.FarmID,
			Name:     animal.Name,
			URL:      "https://farm.example.com/animals/" + animal.ID.String(),
		}).
		Return([]byte("png"), nil)

	png, err := f.service.GenerateTag(ctx, ownerID, animal.ID)

	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)
}

func TestAnimalService_DeleteVaccine_BelongsToOtherAnimal(t *testing.T) {
	f := createTestAnimalService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	animal := ownedAnimal(ownerID)
	vaccineID := uuid.New()

	f.animalRepo.EXPECT().FindByID(ctx, animal.ID).Return(animal, nil)
	f.vaccineRepo.EXPECT().FindByID(ctx, vaccineID).Return(&entity.Vaccine{ID: vaccineID, AnimalID: uuid.New()}, nil)

	err := f.service.DeleteVaccine(ctx, ownerID, animal.ID, vaccineID)

	requireAppError(t, err, domainerrors.ErrNotFound, http.StatusNotFound)
}

func TestAnimalService_AddVaccine(t *testing.T) {
	f := createTestAnimalService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	animal := ownedAnimal(ownerID)
	date := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	f.animalRepo.EXPECT().FindByID(ctx, animal.ID).Return(animal, nil)
	f.vaccineRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(v *entity.Vaccine) bool { return v.AnimalID == animal.ID && v.Date.Equal(date) })).
		Return(nil)

	vaccine, err := f.service.AddVaccine(ctx, ownerID, animal.ID, &usecase.VaccineInput{Name: "Rabies", Date: date})

	require.NoError(t, err)
	assert.Equal(t, "Rabies", vaccine.Name)
}

func TestAnimalService_AddBreeding_Partner(t *testing.T) {
	ownerID := uuid.New()

	t.Run("self partner rejected", func(t *testing.T) {
		f := createTestAnimalService(t)
		ctx := context.Background()
		animal := ownedAnimal(ownerID)

		f.animalRepo.EXPECT().FindByID(ctx, animal.ID).Return(animal, nil)

		_, err := f.service.AddBreeding(ctx, ownerID, animal.ID, &usecase.BreedingInput{
			Date:            time.Now(),
			Method:          entity.BreedingMethodNatural,
			PartnerAnimalID: &animal.ID,
		})

		requireAppError(t, err, domainerrors.ErrBadRequest, http.StatusBadRequest)
	})

	t.Run("foreign partner rejected", func(t *testing.T) {
		f := createTestAnimalService(t)
		ctx := context.Background()
		animal := ownedAnimal(ownerID)
		partner := ownedAnimal(uuid.New())

		f.animalRepo.EXPECT().FindByID(ctx, animal.ID).Return(animal, nil)
		f.animalRepo.EXPECT().FindByID(ctx, partner.ID).Return(partner, nil)

		_, err := f.service.AddBreeding(ctx, ownerID, animal.ID, &usecase.BreedingInput{
			Date:            time.Now(),
			Method:          entity.BreedingMethodNatural,
			PartnerAnimalID: &partner.ID,
		})

		requireAppError(t, err, domainerrors.ErrForbidden, http.StatusForbidden)
	})

	t.Run("owned partner accepted", func(t *testing.T) {
		f := createTestAnimalService(t)
		ctx := context.Background()
		animal := ownedAnimal(ownerID)
		partner := ownedAnimal(ownerID)

		f.animalRepo.EXPECT().FindByID(ctx, animal.ID).Return(animal, nil)
		f.animalRepo.EXPECT().FindByID(ctx, partner.ID).Return(partner, nil)
		f.breedingRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Breeding")).Return(nil)

		breeding, err := f.service.AddBreeding(ctx, ownerID, animal.ID, &usecase.BreedingInput{
			Date:            time.Now(),
			Method:          entity.BreedingMethodArtificialInsemination,
			PartnerAnimalID: &partner.ID,
		})

		require.NoError(t, err)
		assert.Equal(t, &partner.ID, breeding.PartnerAnimalID)
	})
}
