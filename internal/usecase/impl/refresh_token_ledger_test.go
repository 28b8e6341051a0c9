package impl

import (
	"context"
	"testing"
	"time"

	"farmhub/internal/domain/entity"
	mockRepo "farmhub/internal/mocks/repository"
	mockSvc "farmhub/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type ledgerFixtures struct {
	ledger       *refreshTokenLedger
	repo         *mockRepo.MockRefreshTokenRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
	now          time.Time
}

func createTestLedger(t *testing.T) ledgerFixtures {
	f := ledgerFixtures{
		repo:         mockRepo.NewMockRefreshTokenRepository(t),
		hasher:       mockSvc.NewMockPasswordHasher(t),
		tokenService: mockSvc.NewMockTokenService(t),
		now:          time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	ledger, ok := NewRefreshTokenLedger(RefreshTokenLedgerParams{
		RefreshTokenRepo: f.repo,
		Hasher:           f.hasher,
		TokenService:     f.tokenService,
		Logger:           newDiscardLogger(),
	}).(*refreshTokenLedger)
	require.True(t, ok)
	ledger.now = func() time.Time { return f.now }
	f.ledger = ledger

	return f
}

func TestRefreshTokenLedger_Store_PrunesThenInserts(t *testing.T) {
	f := createTestLedger(t)
	ctx := context.Background()
	userID := uuid.New()

	pruned := f.repo.EXPECT().DeleteExpiredByUserID(ctx, userID, f.now).Return(nil).Call
	f.hasher.EXPECT().Hash(digest("raw-token")).Return("bcrypt-hash", nil)
	f.tokenService.EXPECT().GetRefreshTokenDuration().Return(7 * 24 * time.Hour)
	f.repo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.RefreshToken")).
		Run(func(_ context.Context, token *entity.RefreshToken) {
			assert.Equal(t, userID, token.UserID)
			assert.Equal(t, "bcrypt-hash", token.TokenHash)
			assert.Equal(t, f.now.Add(7*24*time.Hour), token.ExpiresAt)
		}).
		Return(nil).
		NotBefore(pruned)

	require.NoError(t, f.ledger.Store(ctx, userID, "raw-token"))
}

func TestRefreshTokenLedger_Store_PruneFailure(t *testing.T) {
	f := createTestLedger(t)
	ctx := context.Background()
	userID := uuid.New()

	f.repo.EXPECT().DeleteExpiredByUserID(ctx, userID, f.now).Return(errors.New("db down"))

	err := f.ledger.Store(ctx, userID, "raw-token")

	assert.ErrorContains(t, err, "db down")
}

func TestRefreshTokenLedger_Matches_StopsAtFirstHit(t *testing.T) {
	f := createTestLedger(t)
	ctx := context.Background()
	userID := uuid.New()
	candidate := digest("raw-token")

	f.repo.EXPECT().FindLiveByUserID(ctx, userID, f.now).Return([]*entity.RefreshToken{
		{TokenHash: "h1"}, {TokenHash: "h2"}, {TokenHash: "h3"},
	}, nil)
	f.hasher.EXPECT().Check(candidate, "h1").Return(false).Once()
	f.hasher.EXPECT().Check(candidate, "h2").Return(true).Once()

	matched, err := f.ledger.Matches(ctx, userID, "raw-token")

	require.NoError(t, err)
	assert.True(t, matched)
	f.hasher.AssertNotCalled(t, "Check", candidate, "h3")
}

func TestRefreshTokenLedger_Matches_NoneMatch(t *testing.T) {
	f := createTestLedger(t)
	ctx := context.Background()
	userID := uuid.New()

	f.repo.EXPECT().FindLiveByUserID(ctx, userID, f.now).Return([]*entity.RefreshToken{{TokenHash: "h1"}, {TokenHash: "h2"}}, nil)
	f.hasher.EXPECT().Check(mock.Anything, mock.Anything).Return(false).Times(2)

	matched, err := f.ledger.Matches(ctx, userID, "raw-token")

	require.NoError(t, err)
	assert.False(t, matched)
}

func TestRefreshTokenLedger_Matches_NoLiveTokens(t *testing.T) {
	f := createTestLedger(t)
	ctx := context.Background()
	userID := uuid.New()

	f.repo.EXPECT().FindLiveByUserID(ctx, userID, f.now).Return(nil, nil)

	matched, err := f.ledger.Matches(ctx, userID, "raw-token")

	require.NoError(t, err)
	assert.False(t, matched)
	f.hasher.AssertNotCalled(t, "Check", mock.Anything, mock.Anything)
}

func TestRefreshTokenLedger_Matches_LoadFailure(t *testing.T) {
	f := createTestLedger(t)
	ctx := context.Background()
	userID := uuid.New()

	f.repo.EXPECT().FindLiveByUserID(ctx, userID, f.now).Return(nil, errors.New("db down"))

	_, err := f.ledger.Matches(ctx, userID, "raw-token")

	assert.ErrorContains(t, err, "db down")
}

func TestRefreshTokenLedger_InvalidateAll(t *testing.T) {
	f := createTestLedger(t)
	ctx := context.Background()
	userID := uuid.New()

	f.repo.EXPECT().DeleteByUserID(ctx, userID).Return(nil)

	require.NoError(t, f.ledger.InvalidateAll(ctx, userID))
}

func TestDigest_FitsBcryptLimit(t *testing.T) {
	long := string(make([]byte, 500))

	assert.Len(t, digest(long), 64)
	assert.NotEqual(t, digest("a"), digest("b"))
}
