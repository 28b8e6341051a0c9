package impl

import (
	"context"
	"log/slog"
	"strings"

	"farmhub/config"
	deliverycontext "farmhub/internal/delivery/context"
	"farmhub/internal/domain/entity"
	domainerrors "farmhub/internal/domain/errors"
	"farmhub/internal/domain/repository"
	"farmhub/internal/domain/service"
	"farmhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// animalService implements the AnimalUsecase interface.
type animalService struct {
	animalRepo   repository.AnimalRepository
	vaccineRepo  repository.VaccineRepository
	breedingRepo repository.BreedingRepository
	farmRepo     repository.FarmRepository
	qrService    service.QRCodeService
	tagBaseURL   string
	logger       *slog.Logger
}

// AnimalServiceParams holds dependencies for AnimalService, injected by Fx.
type AnimalServiceParams struct {
	fx.In

	AnimalRepo   repository.AnimalRepository
	VaccineRepo  repository.VaccineRepository
	BreedingRepo repository.BreedingRepository
	FarmRepo     repository.FarmRepository
	QRService    service.QRCodeService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAnimalService is the constructor for animalService.
func NewAnimalService(params AnimalServiceParams) usecase.AnimalUsecase {
	tagBaseURL := ""
	if params.Config != nil && params.Config.QRCode != nil {
		tagBaseURL = strings.TrimRight(params.Config.QRCode.BaseURL, "/")
	}

	return &animalService{
		animalRepo:   params.AnimalRepo,
		vaccineRepo:  params.VaccineRepo,
		breedingRepo: params.BreedingRepo,
		farmRepo:     params.FarmRepo,
		qrService:    params.QRService,
		tagBaseURL:   tagBaseURL,
		logger:       params.Logger,
	}
}

func (srv *animalService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateAnimal places a new animal in the caller's most recently created farm.
func (srv *animalService) CreateAnimal(ctx context.Context, callerID uuid.UUID, input *usecase.CreateAnimalInput) (*entity.Animal, error) {
	farm, err := srv.farmRepo.FindLatestByUserID(ctx, callerID)
	if err != nil {
		if errors.Is(err, repository.ErrFarmNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNoFarms, "create animal")
		}

		return nil, domainerrors.Rewrap(err, "create animal")
	}

	healthStatus := input.HealthStatus
	if healthStatus == "" {
		healthStatus = entity.HealthStatusHealthy
	}

	animal := &entity.Animal{
		Name:         input.Name,
		Type:         input.Type,
		BirthDate:    input.BirthDate,
		Weight:       input.Weight,
		HealthStatus: healthStatus,
		FarmID:       farm.ID,
		Farm:         farm,
	}
	if err := srv.animalRepo.Create(ctx, animal); err != nil {
		return nil, domainerrors.Rewrap(err, "create animal")
	}
	srv.log(ctx).Info("Animal created", slog.Any("animalID", animal.ID), slog.Any("farmID", farm.ID))

	return animal, nil
}

// ListAnimals pages through the animals on the caller's farms, newest first.
func (srv *animalService) ListAnimals(ctx context.Context, callerID uuid.UUID, input *usecase.ListAnimalsInput) (*usecase.AnimalPage, error) {
	page, limit := normalizePage(input.Page, input.Limit)

	animals, total, err := srv.animalRepo.List(ctx, entity.AnimalFilter{
		OwnerID:      callerID,
		Type:         input.Type,
		HealthStatus: input.HealthStatus,
		Search:       strings.TrimSpace(input.Search),
		Offset:       (page - 1) * limit,
		Limit:        limit,
	})
	if err != nil {
		return nil, domainerrors.Rewrap(err, "fetch animals")
	}

	return &usecase.AnimalPage{
		Animals:    animals,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages(total, limit),
	}, nil
}

// GetAnimal returns an animal owned by the caller.
func (srv *animalService) GetAnimal(ctx context.Context, callerID, animalID uuid.UUID) (*entity.Animal, error) {
	animal, err := srv.findOwnedAnimal(ctx, callerID, animalID)
	if err != nil {
		return nil, domainerrors.Rewrap(err, "fetch animal")
	}

	return animal, nil
}

// UpdateAnimal changes an animal owned by the caller. Moving it requires owning the target farm.
func (srv *animalService) UpdateAnimal(ctx context.Context, callerID, animalID uuid.UUID, input *usecase.UpdateAnimalInput) (*entity.Animal, error) {
	animal, err := srv.findOwnedAnimal(ctx, callerID, animalID)
	if err != nil {
		return nil, domainerrors.Rewrap(err, "update animal")
	}

	if input.FarmID != nil && *input.FarmID != animal.FarmID {
		target, err := srv.farmRepo.FindByID(ctx, *input.FarmID)
		if err != nil {
			if errors.Is(err, repository.ErrFarmNotFound) {
				return nil, domainerrors.ErrNotFound.WithMessage("Farm with ID %s not found", *input.FarmID)
			}

			return nil, domainerrors.Rewrap(err, "update animal")
		}
		if !entity.OwnedBy(target, callerID) {
			return nil, domainerrors.ErrForbidden.WithMessage("You don't have access to this farm")
		}
		animal.FarmID = target.ID
		animal.Farm = target
	}

	if input.Name != nil {
		animal.Name = *input.Name
	}
	if input.Type != nil {
		animal.Type = *input.Type
	}
	if input.BirthDate != nil {
		animal.BirthDate = input.BirthDate
	}
	if input.Weight != nil {
		animal.Weight = input.Weight
	}
	if input.HealthStatus != nil {
		animal.HealthStatus = *input.HealthStatus
	}

	if err := srv.animalRepo.Update(ctx, animal); err != nil {
		return nil, domainerrors.Rewrap(err, "update animal")
	}

	return animal, nil
}

// DeleteAnimal removes an animal owned by the caller, with its records.
func (srv *animalService) DeleteAnimal(ctx context.Context, callerID, animalID uuid.UUID) error {
	if _, err := srv.findOwnedAnimal(ctx, callerID, animalID); err != nil {
		return domainerrors.Rewrap(err, "delete animal")
	}

	if err := srv.animalRepo.Delete(ctx, animalID); err != nil {
		return domainerrors.Rewrap(err, "delete animal")
	}
	srv.log(ctx).Info("Animal deleted", slog.Any("animalID", animalID), slog.Any("userID", callerID))

	return nil
}

// GenerateTag renders a PNG QR code identifying the animal.
func (srv *animalService) GenerateTag(ctx context.Context, callerID, animalID uuid.UUID) ([]byte, error) {
	animal, err := srv.findOwnedAnimal(ctx, callerID, animalID)
	if err != nil {
		return nil, domainerrors.Rewrap(err, "generate animal tag")
	}

	tag := &service.AnimalTag{
		AnimalID: animal.ID,
		FarmID:   animal.FarmID,
		Name:     animal.Name,
	}
	if srv.tagBaseURL != "" {
		tag.URL = srv.tagBaseURL + "/animals/" + animal.ID.String()
	}

	png, err := srv.qrService.GenerateAnimalTag(tag)
	if err != nil {
		return nil, domainerrors.Rewrap(err, "generate animal tag")
	}

	return png, nil
}

// AddVaccine records a vaccination on an animal owned by the caller.
func (srv *animalService) AddVaccine(ctx context.Context, callerID, animalID uuid.UUID, input *usecase.VaccineInput) (*entity.Vaccine, error) {
	if _, err := srv.findOwnedAnimal(ctx, callerID, animalID); err != nil {
		return nil, domainerrors.Rewrap(err, "add vaccine record")
	}

	vaccine := &entity.Vaccine{
		Name:        input.Name,
		Date:        input.Date,
		Description: input.Description,
		AnimalID:    animalID,
	}
	if err := srv.vaccineRepo.Create(ctx, vaccine); err != nil {
		return nil, domainerrors.Rewrap(err, "add vaccine record")
	}

	return vaccine, nil
}

// ListVaccines returns the animal's vaccinations, most recent first.
func (srv *animalService) ListVaccines(ctx context.Context, callerID, animalID uuid.UUID) ([]*entity.Vaccine, error) {
	if _, err := srv.findOwnedAnimal(ctx, callerID, animalID); err != nil {
		return nil, domainerrors.Rewrap(err, "fetch vaccine records")
	}

	vaccines, err := srv.vaccineRepo.ListByAnimalID(ctx, animalID)
	if err != nil {
		return nil, domainerrors.Rewrap(err, "fetch vaccine records")
	}

	return vaccines, nil
}

// DeleteVaccine removes one vaccination of the animal.
func (srv *animalService) DeleteVaccine(ctx context.Context, callerID, animalID, vaccineID uuid.UUID) error {
	if _, err := srv.findOwnedAnimal(ctx, callerID, animalID); err != nil {
		return domainerrors.Rewrap(err, "delete vaccine record")
	}

	vaccine, err := srv.vaccineRepo.FindByID(ctx, vaccineID)
	if err != nil && !errors.Is(err, repository.ErrVaccineNotFound) {
		return domainerrors.Rewrap(err, "delete vaccine record")
	}
	if err != nil || vaccine.AnimalID != animalID {
		return domainerrors.ErrNotFound.WithMessage("Vaccine record with ID %s not found", vaccineID)
	}

	if err := srv.vaccineRepo.Delete(ctx, vaccineID); err != nil {
		return domainerrors.Rewrap(err, "delete vaccine record")
	}

	return nil
}

// AddBreeding records a breeding event. A partner must be another animal of the caller.
func (srv *animalService) AddBreeding(ctx context.Context, callerID, animalID uuid.UUID, input *usecase.BreedingInput) (*entity.Breeding, error) {
	if _, err := srv.findOwnedAnimal(ctx, callerID, animalID); err != nil {
		return nil, domainerrors.Rewrap(err, "add breeding record")
	}

	if input.PartnerAnimalID != nil {
		if *input.PartnerAnimalID == animalID {
			return nil, domainerrors.ErrBadRequest.WithMessage("An animal cannot be its own breeding partner")
		}
		if _, err := srv.findOwnedAnimal(ctx, callerID, *input.PartnerAnimalID); err != nil {
			return nil, domainerrors.Rewrap(err, "add breeding record")
		}
	}

	breeding := &entity.Breeding{
		Date:            input.Date,
		Method:          input.Method,
		Notes:           input.Notes,
		AnimalID:        animalID,
		PartnerAnimalID: input.PartnerAnimalID,
	}
	if err := srv.breedingRepo.Create(ctx, breeding); err != nil {
		return nil, domainerrors.Rewrap(err, "add breeding record")
	}

	return breeding, nil
}

// ListBreedings returns the animal's breeding events, most recent first.
func (srv *animalService) ListBreedings(ctx context.Context, callerID, animalID uuid.UUID) ([]*entity.Breeding, error) {
	if _, err := srv.findOwnedAnimal(ctx, callerID, animalID); err != nil {
		return nil, domainerrors.Rewrap(err, "fetch breeding records")
	}

	breedings, err := srv.breedingRepo.ListByAnimalID(ctx, animalID)
	if err != nil {
		return nil, domainerrors.Rewrap(err, "fetch breeding records")
	}

	return breedings, nil
}

// DeleteBreeding removes one breeding event of the animal.
func (srv *animalService) DeleteBreeding(ctx context.Context, callerID, animalID, breedingID uuid.UUID) error {
	if _, err := srv.findOwnedAnimal(ctx, callerID, animalID); err != nil {
		return domainerrors.Rewrap(err, "delete breeding record")
	}

	breeding, err := srv.breedingRepo.FindByID(ctx, breedingID)
	if err != nil && !errors.Is(err, repository.ErrBreedingNotFound) {
		return domainerrors.Rewrap(err, "delete breeding record")
	}
	if err != nil || breeding.AnimalID != animalID {
		return domainerrors.ErrNotFound.WithMessage("Breeding record with ID %s not found", breedingID)
	}

	if err := srv.breedingRepo.Delete(ctx, breedingID); err != nil {
		return domainerrors.Rewrap(err, "delete breeding record")
	}

	return nil
}

func (srv *animalService) findOwnedAnimal(ctx context.Context, callerID, animalID uuid.UUID) (*entity.Animal, error) {
	animal, err := srv.animalRepo.FindByID(ctx, animalID)
	if err != nil {
		if errors.Is(err, repository.ErrAnimalNotFound) {
			return nil, domainerrors.ErrNotFound.WithMessage("Animal with ID %s not found", animalID)
		}

		return nil, errors.Wrap(err, "failed to find animal")
	}

	if !entity.OwnedBy(animal, callerID) {
		srv.log(ctx).Warn("Animal access denied", slog.Any("animalID", animalID), slog.Any("userID", callerID))

		return nil, domainerrors.ErrForbidden.WithMessage("You don't have access to this animal")
	}

	return animal, nil
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = usecase.DefaultPage
	}
	if limit < 1 {
		limit = usecase.DefaultLimit
	}
	if limit > usecase.MaxLimit {
		limit = usecase.MaxLimit
	}

	return page, limit
}

func totalPages(total int64, limit int) int {
	if total == 0 {
		return 0
	}

	return int((total + int64(limit) - 1) / int64(limit))
}
