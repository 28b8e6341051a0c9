package postgres

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
	"time"

	"farmhub/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newDryRunDB builds statements without a server and records them through the slog GORM logger.
func newDryRunDB(t *testing.T) (*gorm.DB, *bytes.Buffer) {
	t.Helper()

	buf := &bytes.Buffer{}
	base := slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{
		DSN: "host=127.0.0.1 port=5432 user=farmhub password=farmhub dbname=farmhub sslmode=disable",
	}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
		Logger:               newGormSlogLogger(base, nil).LogMode(logger.Info),
	})
	require.NoError(t, err)

	return db, buf
}

func loggedSQL(t *testing.T, buf *bytes.Buffer) []string {
	t.Helper()

	var statements []string
	scanner := bufio.NewScanner(bytes.NewReader(buf.Bytes()))
	for scanner.Scan() {
		var line struct {
			Msg string `json:"msg"`
			SQL string `json:"sql"`
		}
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &line))
		if line.Msg == "GORM query" {
			statements = append(statements, line.SQL)
		}
	}

	return statements
}

func findStatement(t *testing.T, statements []string, prefix string) string {
	t.Helper()

	for _, stmt := range statements {
		if strings.HasPrefix(stmt, prefix) {
			return stmt
		}
	}
	require.Failf(t, "statement not found", "no statement starting with %q in %v", prefix, statements)

	return ""
}

func TestRefreshTokenRepository_FindLiveByUserID_SQL(t *testing.T) {
	db, buf := newDryRunDB(t)
	userID := uuid.New()

	_, err := NewRefreshTokenRepository(db).FindLiveByUserID(context.Background(), userID, time.Now())
	require.NoError(t, err)

	stmt := findStatement(t, loggedSQL(t, buf), `SELECT * FROM "refresh_tokens"`)
	assert.Contains(t, stmt, `"refresh_tokens"."user_id" = '`+userID.String()+`'`)
	assert.Contains(t, stmt, `"refresh_tokens"."expires_at" > '`)
	assert.Contains(t, stmt, `ORDER BY "refresh_tokens"."created_at" DESC`)
}

func TestRefreshTokenRepository_DeleteExpiredByUserID_SQL(t *testing.T) {
	db, buf := newDryRunDB(t)
	userID := uuid.New()

	require.NoError(t, NewRefreshTokenRepository(db).DeleteExpiredByUserID(context.Background(), userID, time.Now()))

	stmt := findStatement(t, loggedSQL(t, buf), `DELETE FROM "refresh_tokens"`)
	assert.Contains(t, stmt, `"refresh_tokens"."user_id" = '`+userID.String()+`'`)
	assert.Contains(t, stmt, `"refresh_tokens"."expires_at" < '`)
}

func TestAnimalRepository_List_SQL(t *testing.T) {
	db, buf := newDryRunDB(t)
	ownerID := uuid.New()

	_, _, err := NewAnimalRepository(db).List(context.Background(), entity.AnimalFilter{
		OwnerID:      ownerID,
		Type:         entity.AnimalType("GOAT"),
		HealthStatus: entity.HealthStatus("SICK"),
		Search:       " bil% ",
		Offset:       5,
		Limit:        5,
	})
	require.NoError(t, err)

	statements := loggedSQL(t, buf)
	count := findStatement(t, statements, `SELECT count(*) FROM "animals"`)
	page := findStatement(t, statements, `SELECT "animals".* FROM "animals"`)

	for _, stmt := range []string{count, page} {
		assert.Contains(t, stmt, `JOIN "farms" ON "farms"."id" = "animals"."farm_id"`)
		assert.Contains(t, stmt, `"farms"."user_id" = '`+ownerID.String()+`'`)
		assert.Contains(t, stmt, `"animals"."type" = 'GOAT'`)
		assert.Contains(t, stmt, `"animals"."health_status" = 'SICK'`)
		assert.Contains(t, stmt, `"animals"."name" ILIKE '%bil\%%'`)
	}
	assert.NotContains(t, count, "LIMIT")
	assert.Contains(t, page, `ORDER BY "animals"."created_at" DESC`)
	assert.Contains(t, page, "LIMIT 5 OFFSET 5")
}

func TestUserRepository_Update_WritesSelectedColumns(t *testing.T) {
	db, buf := newDryRunDB(t)
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "farmer@example.com",
		PasswordHash: "hash",
		FirstName:    "Ada",
		LastName:     "Byron",
		Role:         entity.RoleUser,
		IsOnboarding: false,
		CreatedAt:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	// A dry run touches no rows, so the not-found result is expected here.
	_ = NewUserRepository(db).Update(context.Background(), user)

	stmt := findStatement(t, loggedSQL(t, buf), `UPDATE "users" SET`)
	assert.Contains(t, stmt, `"is_onboarding"=false`)
	assert.Contains(t, stmt, `"phone"=NULL`)
	assert.Contains(t, stmt, `"users"."id" = '`+user.ID.String()+`'`)
	assert.NotContains(t, stmt, `"created_at"=`)
}

func TestFarmAndRecordRepositories_Ordering_SQL(t *testing.T) {
	db, buf := newDryRunDB(t)
	ctx := context.Background()
	userID := uuid.New()
	animalID := uuid.New()

	_, err := NewFarmRepository(db).FindByUserID(ctx, userID)
	require.NoError(t, err)
	_, err = NewVaccineRepository(db).ListByAnimalID(ctx, animalID)
	require.NoError(t, err)
	_, err = NewBreedingRepository(db).ListByAnimalID(ctx, animalID)
	require.NoError(t, err)

	statements := loggedSQL(t, buf)

	farms := findStatement(t, statements, `SELECT * FROM "farms"`)
	assert.Contains(t, farms, `"farms"."user_id" = '`+userID.String()+`'`)
	assert.Contains(t, farms, `ORDER BY "farms"."created_at" DESC`)

	vaccines := findStatement(t, statements, `SELECT * FROM "vaccines"`)
	assert.Contains(t, vaccines, `"vaccines"."animal_id" = '`+animalID.String()+`'`)
	assert.Contains(t, vaccines, `ORDER BY "vaccines"."date" DESC`)

	breedings := findStatement(t, statements, `SELECT * FROM "breedings"`)
	assert.Contains(t, breedings, `ORDER BY "breedings"."date" DESC`)
}
