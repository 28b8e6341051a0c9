package postgres

import (
	"context"
	"strings"

	"farmhub/internal/domain/entity"
	domainerrors "farmhub/internal/domain/errors"
	"farmhub/internal/domain/repository"
	"farmhub/internal/infra/persistence/model"
	"farmhub/internal/infra/persistence/postgres/query"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gen"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// animalRepository implements the domain.AnimalRepository interface.
type animalRepository struct {
	q *query.Query
}

// NewAnimalRepository creates a new animal repository.
func NewAnimalRepository(db *gorm.DB) repository.AnimalRepository {
	return &animalRepository{
		q: query.Use(db),
	}
}

func (repo *animalRepository) Create(ctx context.Context, animal *entity.Animal) error {
	animalM := fromAnimalDomain(animal)

	if err := repo.q.AnimalModel.WithContext(ctx).Create(animalM); err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrFarmNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "create animal")
	}

	animal.ID = animalM.ID
	animal.HealthStatus = entity.HealthStatus(animalM.HealthStatus)
	animal.CreatedAt = animalM.CreatedAt
	animal.UpdatedAt = animalM.UpdatedAt

	return nil
}

func (repo *animalRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Animal, error) {
	a := repo.q.AnimalModel
	animalM, err := a.WithContext(ctx).Preload(a.Farm).Where(a.ID.Eq(id)).First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAnimalNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "find animal by id")
	}

	return toAnimalDomain(animalM), nil
}

// List applies the filter to animals on farms owned by filter.OwnerID.
func (repo *animalRepository) List(ctx context.Context, filter entity.AnimalFilter) ([]*entity.Animal, int64, error) {
	total, err := repo.filtered(ctx, filter).Count()
	if err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "count animals")
	}

	a := repo.q.AnimalModel
	rows, err := repo.filtered(ctx, filter).
		Select(a.ALL).
		Preload(a.Farm).
		Order(a.CreatedAt.Desc()).
		Offset(filter.Offset).
		Limit(filter.Limit).
		Find()
	if err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "list animals")
	}

	animals := make([]*entity.Animal, 0, len(rows))
	for _, row := range rows {
		animals = append(animals, toAnimalDomain(row))
	}

	return animals, total, nil
}

// filtered starts a fresh query each call so the count and the page never share state.
func (repo *animalRepository) filtered(ctx context.Context, filter entity.AnimalFilter) query.IAnimalModelDo {
	a := repo.q.AnimalModel
	f := repo.q.FarmModel

	conds := []gen.Condition{f.UserID.Eq(filter.OwnerID)}
	if filter.Type != "" {
		conds = append(conds, a.Type.Eq(string(filter.Type)))
	}
	if filter.HealthStatus != "" {
		conds = append(conds, a.HealthStatus.Eq(string(filter.HealthStatus)))
	}

	do := a.WithContext(ctx).
		Join(f, f.ID.EqCol(a.FarmID)).
		Where(conds...)
	if search := strings.TrimSpace(filter.Search); search != "" {
		do = do.Clauses(clause.Where{Exprs: []clause.Expression{
			clause.Expr{
				SQL:  "? ILIKE ?",
				Vars: []any{clause.Column{Table: a.TableName(), Name: "name"}, "%" + escapeLike(search) + "%"},
			},
		}})
	}

	return do
}

func (repo *animalRepository) Update(ctx context.Context, animal *entity.Animal) error {
	animalM := fromAnimalDomain(animal)

	a := repo.q.AnimalModel
	result, err := a.WithContext(ctx).
		Select(a.Name, a.Type, a.BirthDate, a.Weight, a.HealthStatus, a.FarmID, a.UpdatedAt).
		Where(a.ID.Eq(animal.ID)).
		Updates(animalM)
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrFarmNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "update animal")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAnimalNotFound
	}

	animal.UpdatedAt = animalM.UpdatedAt

	return nil
}

func (repo *animalRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := repo.q.AnimalModel.WithContext(ctx).Where(repo.q.AnimalModel.ID.Eq(id)).Delete()
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "delete animal")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAnimalNotFound
	}

	return nil
}

// escapeLike neutralises LIKE wildcards in user input.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func toAnimalDomain(data *model.AnimalModel) *entity.Animal {
	if data == nil {
		return nil
	}

	animal := &entity.Animal{
		ID:           data.ID,
		Name:         data.Name,
		Type:         entity.AnimalType(data.Type),
		BirthDate:    data.BirthDate,
		Weight:       data.Weight,
		HealthStatus: entity.HealthStatus(data.HealthStatus),
		FarmID:       data.FarmID,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
	if data.Farm != nil {
		animal.Farm = toFarmDomain(data.Farm)
	}

	return animal
}

func fromAnimalDomain(data *entity.Animal) *model.AnimalModel {
	if data == nil {
		return nil
	}

	return &model.AnimalModel{
		ID:           data.ID,
		Name:         data.Name,
		Type:         string(data.Type),
		BirthDate:    data.BirthDate,
		Weight:       data.Weight,
		HealthStatus: string(data.HealthStatus),
		FarmID:       data.FarmID,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
