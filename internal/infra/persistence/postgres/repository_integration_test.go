package postgres

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"farmhub/internal/domain/entity"
	domainerrors "farmhub/internal/domain/errors"
	"farmhub/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB starts a throwaway postgres container with the schema applied.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping postgres integration test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "farmhub",
				"POSTGRES_PASSWORD": "farmhub",
				"POSTGRES_DB":       "farmhub",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		t.Skipf("docker unavailable: %v", err)
	}
	t.Cleanup(func() {
		_ = container.Terminate(context.Background())
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("host=%s port=%s user=farmhub password=farmhub dbname=farmhub sslmode=disable", host, port.Port())
	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, ApplyMigrations(sqlDB, slog.New(slog.NewTextHandler(io.Discard, nil))))

	return db
}

func seedUser(t *testing.T, repo repository.UserRepository, email string) *entity.User {
	t.Helper()

	user := &entity.User{
		Email:        email,
		PasswordHash: "hash",
		FirstName:    "Test",
		LastName:     "User",
		Role:         entity.RoleUser,
		IsOnboarding: true,
	}
	require.NoError(t, repo.Create(context.Background(), user))

	return user
}

func TestRepositories_Integration(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	userRepo := NewUserRepository(db)
	farmRepo := NewFarmRepository(db)
	stockRepo := NewFoodStockRepository(db)
	animalRepo := NewAnimalRepository(db)
	vaccineRepo := NewVaccineRepository(db)
	tokenRepo := NewRefreshTokenRepository(db)

	t.Run("user uniqueness", func(t *testing.T) {
		phone := "+15550001111"
		first := seedUser(t, userRepo, "unique@example.com")
		first.Phone = &phone
		require.NoError(t, userRepo.Update(ctx, first))

		err := userRepo.Create(ctx, &entity.User{
			Email: "unique@example.com", PasswordHash: "hash", FirstName: "A", LastName: "B", Role: entity.RoleUser,
		})
		assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)

		err = userRepo.Create(ctx, &entity.User{
			Email: "other@example.com", Phone: &phone, PasswordHash: "hash", FirstName: "A", LastName: "B", Role: entity.RoleUser,
		})
		assert.ErrorIs(t, err, domainerrors.ErrPhoneAlreadyExists)

		found, err := userRepo.FindByPhone(ctx, phone)
		require.NoError(t, err)
		assert.Equal(t, first.ID, found.ID)

		_, err = userRepo.FindByID(ctx, uuid.New())
		assert.ErrorIs(t, err, repository.ErrUserNotFound)
	})

	t.Run("latest farm and animal listing", func(t *testing.T) {
		owner := seedUser(t, userRepo, "owner@example.com")
		stranger := seedUser(t, userRepo, "stranger@example.com")

		older := &entity.Farm{Name: "Old Farm", UserID: owner.ID}
		require.NoError(t, farmRepo.Create(ctx, older))
		newer := &entity.Farm{Name: "New Farm", UserID: owner.ID}
		require.NoError(t, farmRepo.Create(ctx, newer))
		foreign := &entity.Farm{Name: "Foreign Farm", UserID: stranger.ID}
		require.NoError(t, farmRepo.Create(ctx, foreign))

		latest, err := farmRepo.FindLatestByUserID(ctx, owner.ID)
		require.NoError(t, err)
		assert.Equal(t, newer.ID, latest.ID)

		count, err := farmRepo.CountByUserID(ctx, owner.ID)
		require.NoError(t, err)
		assert.EqualValues(t, 2, count)

		for _, a := range []*entity.Animal{
			{Name: "Dolly", Type: entity.AnimalTypeSheep, FarmID: older.ID},
			{Name: "Billy", Type: entity.AnimalTypeGoat, HealthStatus: entity.HealthStatusSick, FarmID: newer.ID},
			{Name: "Bella", Type: entity.AnimalTypeCow, FarmID: newer.ID},
			{Name: "Stray", Type: entity.AnimalTypeGoat, FarmID: foreign.ID},
		} {
			require.NoError(t, animalRepo.Create(ctx, a))
		}

		animals, total, err := animalRepo.List(ctx, entity.AnimalFilter{OwnerID: owner.ID, Limit: 10})
		require.NoError(t, err)
		assert.EqualValues(t, 3, total)
		assert.Len(t, animals, 3)

		animals, total, err = animalRepo.List(ctx, entity.AnimalFilter{OwnerID: owner.ID, Type: entity.AnimalTypeGoat, Limit: 10})
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
		require.Len(t, animals, 1)
		assert.Equal(t, entity.HealthStatusSick, animals[0].HealthStatus)

		_, total, err = animalRepo.List(ctx, entity.AnimalFilter{OwnerID: owner.ID, Search: "ELL", Limit: 10})
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)

		page, total, err := animalRepo.List(ctx, entity.AnimalFilter{OwnerID: owner.ID, Offset: 2, Limit: 2})
		require.NoError(t, err)
		assert.EqualValues(t, 3, total)
		assert.Len(t, page, 1)

		farms, err := farmRepo.FindAll(ctx)
		require.NoError(t, err)
		require.NotEmpty(t, farms)
		assert.NotNil(t, farms[0].Owner)
	})

	t.Run("animal defaults and cascade", func(t *testing.T) {
		owner := seedUser(t, userRepo, "cascade@example.com")
		farm := &entity.Farm{Name: "Cascade Farm", UserID: owner.ID}
		require.NoError(t, farmRepo.Create(ctx, farm))

		animal := &entity.Animal{Name: "Daisy", Type: entity.AnimalTypeCow, FarmID: farm.ID}
		require.NoError(t, animalRepo.Create(ctx, animal))
		assert.Equal(t, entity.HealthStatusHealthy, animal.HealthStatus)

		vaccine := &entity.Vaccine{Name: "Rabies", Date: time.Now().UTC(), AnimalID: animal.ID}
		require.NoError(t, vaccineRepo.Create(ctx, vaccine))

		stock := &entity.FoodStock{Name: "Hay", Quantity: 3, Unit: "bales", FarmID: farm.ID}
		require.NoError(t, stockRepo.Create(ctx, stock))

		loaded, err := animalRepo.FindByID(ctx, animal.ID)
		require.NoError(t, err)
		assert.Equal(t, owner.ID, loaded.OwnerID())

		require.NoError(t, farmRepo.Delete(ctx, farm.ID))

		_, err = animalRepo.FindByID(ctx, animal.ID)
		assert.ErrorIs(t, err, repository.ErrAnimalNotFound)
		_, err = vaccineRepo.FindByID(ctx, vaccine.ID)
		assert.ErrorIs(t, err, repository.ErrVaccineNotFound)
		_, err = stockRepo.FindByID(ctx, stock.ID)
		assert.ErrorIs(t, err, repository.ErrFoodStockNotFound)
	})

	t.Run("refresh tokens", func(t *testing.T) {
		owner := seedUser(t, userRepo, "tokens@example.com")
		now := time.Now().UTC()

		require.NoError(t, tokenRepo.Create(ctx, &entity.RefreshToken{UserID: owner.ID, TokenHash: "live", ExpiresAt: now.Add(time.Hour)}))
		require.NoError(t, tokenRepo.Create(ctx, &entity.RefreshToken{UserID: owner.ID, TokenHash: "dead", ExpiresAt: now.Add(-time.Hour)}))

		live, err := tokenRepo.FindLiveByUserID(ctx, owner.ID, now)
		require.NoError(t, err)
		require.Len(t, live, 1)
		assert.Equal(t, "live", live[0].TokenHash)

		require.NoError(t, tokenRepo.DeleteExpiredByUserID(ctx, owner.ID, now))
		require.NoError(t, tokenRepo.DeleteByUserID(ctx, owner.ID))

		live, err = tokenRepo.FindLiveByUserID(ctx, owner.ID, now)
		require.NoError(t, err)
		assert.Empty(t, live)
	})

	t.Run("transaction rollback", func(t *testing.T) {
		txManager := NewTransactionManager(db)
		owner := seedUser(t, userRepo, "tx@example.com")

		err := txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
			if err := repos.FarmRepo().Create(ctx, &entity.Farm{Name: "Doomed", UserID: owner.ID}); err != nil {
				return err
			}

			return domainerrors.ErrConflict
		})
		require.ErrorIs(t, err, domainerrors.ErrConflict)

		count, err := farmRepo.CountByUserID(ctx, owner.ID)
		require.NoError(t, err)
		assert.Zero(t, count)
	})
}
