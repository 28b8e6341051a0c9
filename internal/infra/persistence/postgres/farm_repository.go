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

// farmRepository implements the domain.FarmRepository interface.
type farmRepository struct {
	q *query.Query
}

// NewFarmRepository creates a new farm repository.
func NewFarmRepository(db *gorm.DB) repository.FarmRepository {
	return &farmRepository{
		q: query.Use(db),
	}
}

func (repo *farmRepository) Create(ctx context.Context, farm *entity.Farm) error {
	farmM := fromFarmDomain(farm)

	if err := repo.q.FarmModel.WithContext(ctx).Create(farmM); err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrBadRequest.WithMessage("User with ID %s not found", farm.UserID).WrapMessage("create farm")
		}

		return domainerrors.NewDatabaseExecuteError(err, "create farm")
	}

	farm.ID = farmM.ID
	farm.CreatedAt = farmM.CreatedAt
	farm.UpdatedAt = farmM.UpdatedAt

	return nil
}

func (repo *farmRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Farm, error) {
	farmM, err := repo.withDetails(ctx).Where(repo.q.FarmModel.ID.Eq(id)).First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFarmNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "find farm by id")
	}

	return toFarmDomain(farmM), nil
}

func (repo *farmRepository) FindAll(ctx context.Context) ([]*entity.Farm, error) {
	rows, err := repo.withDetails(ctx).Order(repo.q.FarmModel.CreatedAt.Desc()).Find()
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "list farms")
	}

	return toFarmDomains(rows), nil
}

func (repo *farmRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Farm, error) {
	f := repo.q.FarmModel
	rows, err := f.WithContext(ctx).
		Preload(f.Animals.Order(repo.q.AnimalModel.CreatedAt.Desc())).
		Where(f.UserID.Eq(userID)).
		Order(f.CreatedAt.Desc()).
		Find()
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "list farms by user")
	}

	return toFarmDomains(rows), nil
}

func (repo *farmRepository) FindLatestByUserID(ctx context.Context, userID uuid.UUID) (*entity.Farm, error) {
	f := repo.q.FarmModel
	farmM, err := f.WithContext(ctx).
		Where(f.UserID.Eq(userID)).
		Order(f.CreatedAt.Desc()).
		First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFarmNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "find latest farm by user")
	}

	return toFarmDomain(farmM), nil
}

func (repo *farmRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	count, err := repo.q.FarmModel.WithContext(ctx).Where(repo.q.FarmModel.UserID.Eq(userID)).Count()
	if err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "count farms by user")
	}

	return count, nil
}

func (repo *farmRepository) Update(ctx context.Context, farm *entity.Farm) error {
	farmM := fromFarmDomain(farm)

	f := repo.q.FarmModel
	result, err := f.WithContext(ctx).
		Select(f.Name, f.Location, f.Description, f.UpdatedAt).
		Where(f.ID.Eq(farm.ID)).
		Updates(farmM)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "update farm")
	}
	if result.RowsAffected == 0 {
		return repository.ErrFarmNotFound
	}

	farm.UpdatedAt = farmM.UpdatedAt

	return nil
}

func (repo *farmRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := repo.q.FarmModel.WithContext(ctx).Where(repo.q.FarmModel.ID.Eq(id)).Delete()
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "delete farm")
	}
	if result.RowsAffected == 0 {
		return repository.ErrFarmNotFound
	}

	return nil
}

// withDetails preloads the farm's animals, newest first, and its owner.
func (repo *farmRepository) withDetails(ctx context.Context) query.IFarmModelDo {
	f := repo.q.FarmModel

	return f.WithContext(ctx).
		Preload(f.Animals.Order(repo.q.AnimalModel.CreatedAt.Desc())).
		Preload(f.User)
}

func toFarmDomains(rows []*model.FarmModel) []*entity.Farm {
	farms := make([]*entity.Farm, 0, len(rows))
	for _, row := range rows {
		farms = append(farms, toFarmDomain(row))
	}

	return farms
}

func toFarmDomain(data *model.FarmModel) *entity.Farm {
	if data == nil {
		return nil
	}

	farm := &entity.Farm{
		ID:          data.ID,
		Name:        data.Name,
		Location:    data.Location,
		Description: data.Description,
		UserID:      data.UserID,
		Owner:       toUserSummary(data.User),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}

	if data.Animals != nil {
		farm.Animals = make([]*entity.Animal, 0, len(data.Animals))
		for i := range data.Animals {
			farm.Animals = append(farm.Animals, toAnimalDomain(&data.Animals[i]))
		}
	}

	return farm
}

func fromFarmDomain(data *entity.Farm) *model.FarmModel {
	if data == nil {
		return nil
	}

	return &model.FarmModel{
		ID:          data.ID,
		Name:        data.Name,
		Location:    data.Location,
		Description: data.Description,
		UserID:      data.UserID,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
