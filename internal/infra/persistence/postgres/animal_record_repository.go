package postgres

import (
	"context"

	"farmhub/internal/domain/entity"
	domainerrors "farmhub/internal/domain/errors"
	"farmhub/internal/domain/repository"
	"farmhub/internal/infra/persistence/model"
	"farmhub/internal/infra/persistence/postgres/query"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// vaccineRepository implements the domain.VaccineRepository interface.
type vaccineRepository struct {
	q *query.Query
}

// NewVaccineRepository creates a new vaccine repository.
func NewVaccineRepository(db *gorm.DB) repository.VaccineRepository {
	return &vaccineRepository{
		q: query.Use(db),
	}
}

func (repo *vaccineRepository) Create(ctx context.Context, vaccine *entity.Vaccine) error {
	vaccineM := &model.VaccineModel{
		ID:          vaccine.ID,
		Name:        vaccine.Name,
		Date:        vaccine.Date,
		Description: vaccine.Description,
		AnimalID:    vaccine.AnimalID,
	}

	if err := repo.q.VaccineModel.WithContext(ctx).Create(vaccineM); err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrAnimalNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "create vaccine")
	}

	vaccine.ID = vaccineM.ID
	vaccine.CreatedAt = vaccineM.CreatedAt
	vaccine.UpdatedAt = vaccineM.UpdatedAt

	return nil
}

func (repo *vaccineRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Vaccine, error) {
	vaccineM, err := repo.q.VaccineModel.WithContext(ctx).Where(repo.q.VaccineModel.ID.Eq(id)).First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVaccineNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "find vaccine by id")
	}

	return toVaccineDomain(vaccineM), nil
}

func (repo *vaccineRepository) ListByAnimalID(ctx context.Context, animalID uuid.UUID) ([]*entity.Vaccine, error) {
	m := repo.q.VaccineModel
	rows, err := m.WithContext(ctx).Where(m.AnimalID.Eq(animalID)).Order(m.Date.Desc()).Find()
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "list vaccines by animal")
	}

	vaccines := make([]*entity.Vaccine, 0, len(rows))
	for _, row := range rows {
		vaccines = append(vaccines, toVaccineDomain(row))
	}

	return vaccines, nil
}

func (repo *vaccineRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := repo.q.VaccineModel.WithContext(ctx).Where(repo.q.VaccineModel.ID.Eq(id)).Delete()
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "delete vaccine")
	}
	if result.RowsAffected == 0 {
		return repository.ErrVaccineNotFound
	}

	return nil
}

func toVaccineDomain(data *model.VaccineModel) *entity.Vaccine {
	return &entity.Vaccine{
		ID:          data.ID,
		Name:        data.Name,
		Date:        data.Date,
		Description: data.Description,
		AnimalID:    data.AnimalID,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// breedingRepository implements the domain.BreedingRepository interface.
type breedingRepository struct {
	q *query.Query
}

// NewBreedingRepository creates a new breeding repository.
func NewBreedingRepository(db *gorm.DB) repository.BreedingRepository {
	return &breedingRepository{
		q: query.Use(db),
	}
}

func (repo *breedingRepository) Create(ctx context.Context, breeding *entity.Breeding) error {
	breedingM := &model.BreedingModel{
		ID:              breeding.ID,
		Date:            breeding.Date,
		Method:          string(breeding.Method),
		Notes:           breeding.Notes,
		AnimalID:        breeding.AnimalID,
		PartnerAnimalID: breeding.PartnerAnimalID,
	}

	if err := repo.q.BreedingModel.WithContext(ctx).Create(breedingM); err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrAnimalNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "create breeding")
	}

	breeding.ID = breedingM.ID
	breeding.CreatedAt = breedingM.CreatedAt
	breeding.UpdatedAt = breedingM.UpdatedAt

	return nil
}

func (repo *breedingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Breeding, error) {
	breedingM, err := repo.q.BreedingModel.WithContext(ctx).Where(repo.q.BreedingModel.ID.Eq(id)).First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBreedingNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "find breeding by id")
	}

	return toBreedingDomain(breedingM), nil
}

func (repo *breedingRepository) ListByAnimalID(ctx context.Context, animalID uuid.UUID) ([]*entity.Breeding, error) {
	m := repo.q.BreedingModel
	rows, err := m.WithContext(ctx).Where(m.AnimalID.Eq(animalID)).Order(m.Date.Desc()).Find()
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "list breedings by animal")
	}

	breedings := make([]*entity.Breeding, 0, len(rows))
	for _, row := range rows {
		breedings = append(breedings, toBreedingDomain(row))
	}

	return breedings, nil
}

func (repo *breedingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := repo.q.BreedingModel.WithContext(ctx).Where(repo.q.BreedingModel.ID.Eq(id)).Delete()
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "delete breeding")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBreedingNotFound
	}

	return nil
}

func toBreedingDomain(data *model.BreedingModel) *entity.Breeding {
	return &entity.Breeding{
		ID:              data.ID,
		Date:            data.Date,
		Method:          entity.BreedingMethod(data.Method),
		Notes:           data.Notes,
		AnimalID:        data.AnimalID,
		PartnerAnimalID: data.PartnerAnimalID,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}
