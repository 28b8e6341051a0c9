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

// foodStockRepository implements the domain.FoodStockRepository interface.
type foodStockRepository struct {
	q *query.Query
}

// NewFoodStockRepository creates a new food stock repository.
func NewFoodStockRepository(db *gorm.DB) repository.FoodStockRepository {
	return &foodStockRepository{
		q: query.Use(db),
	}
}

func (repo *foodStockRepository) Create(ctx context.Context, stock *entity.FoodStock) error {
	stockM := fromFoodStockDomain(stock)

	if err := repo.q.FoodStockModel.WithContext(ctx).Create(stockM); err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrFarmNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "create food stock")
	}

	stock.ID = stockM.ID
	stock.CreatedAt = stockM.CreatedAt
	stock.UpdatedAt = stockM.UpdatedAt

	return nil
}

func (repo *foodStockRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.FoodStock, error) {
	fs := repo.q.FoodStockModel
	stockM, err := fs.WithContext(ctx).Preload(fs.Farm).Where(fs.ID.Eq(id)).First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFoodStockNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "find food stock by id")
	}

	return toFoodStockDomain(stockM), nil
}

func (repo *foodStockRepository) ListByFarmID(ctx context.Context, farmID uuid.UUID) ([]*entity.FoodStock, error) {
	fs := repo.q.FoodStockModel
	rows, err := fs.WithContext(ctx).
		Where(fs.FarmID.Eq(farmID)).
		Order(fs.CreatedAt.Desc()).
		Find()
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "list food stocks by farm")
	}

	stocks := make([]*entity.FoodStock, 0, len(rows))
	for _, row := range rows {
		stocks = append(stocks, toFoodStockDomain(row))
	}

	return stocks, nil
}

func (repo *foodStockRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := repo.q.FoodStockModel.WithContext(ctx).Where(repo.q.FoodStockModel.ID.Eq(id)).Delete()
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "delete food stock")
	}
	if result.RowsAffected == 0 {
		return repository.ErrFoodStockNotFound
	}

	return nil
}

func toFoodStockDomain(data *model.FoodStockModel) *entity.FoodStock {
	if data == nil {
		return nil
	}

	stock := &entity.FoodStock{
		ID:         data.ID,
		Name:       data.Name,
		Quantity:   data.Quantity,
		Unit:       data.Unit,
		ExpiryDate: data.ExpiryDate,
		FarmID:     data.FarmID,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
	if data.Farm != nil {
		stock.Farm = toFarmDomain(data.Farm)
	}

	return stock
}

func fromFoodStockDomain(data *entity.FoodStock) *model.FoodStockModel {
	if data == nil {
		return nil
	}

	return &model.FoodStockModel{
		ID:         data.ID,
		Name:       data.Name,
		Quantity:   data.Quantity,
		Unit:       data.Unit,
		ExpiryDate: data.ExpiryDate,
		FarmID:     data.FarmID,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
