package impl

import (
	"context"
	"net/http"
	"testing"

	"farmhub/internal/domain/entity"
	domainerrors "farmhub/internal/domain/errors"
	"farmhub/internal/domain/repository"
	"farmhub/internal/domain/service"
	mockRepo "farmhub/internal/mocks/repository"
	mockSvc "farmhub/internal/mocks/service"
	mockUsecase "farmhub/internal/mocks/usecase"
	"farmhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// sessionServiceFixtures holds all test dependencies for session service tests.
type sessionServiceFixtures struct {
	service      usecase.SessionUsecase
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	ledger       *mockUsecase.MockRefreshTokenLedger
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
	publisher    *mockSvc.MockEventPublisher
}

func createTestSessionService(t *testing.T) sessionServiceFixtures {
	f := sessionServiceFixtures{
		txManager:    mockRepo.NewMockTransactionManager(t),
		userRepo:     mockRepo.NewMockUserRepository(t),
		ledger:       mockUsecase.NewMockRefreshTokenLedger(t),
		hasher:       mockSvc.NewMockPasswordHasher(t),
		tokenService: mockSvc.NewMockTokenService(t),
		publisher:    mockSvc.NewMockEventPublisher(t),
	}

	f.service = NewSessionService(SessionServiceParams{
		TxManager:    f.txManager,
		UserRepo:     f.userRepo,
		Ledger:       f.ledger,
		Hasher:       f.hasher,
		TokenService: f.tokenService,
		Publisher:    f.publisher,
		Logger:       newDiscardLogger(),
	})

	return f
}

func isEvent(name string) interface{} {
	return mock.MatchedBy(func(event *service.DomainEvent) bool { return event.Name == name })
}

func TestSessionService_Register_Success(t *testing.T) {
	f := createTestSessionService(t)
	ctx := context.Background()
	input := &usecase.RegisterInput{Email: "a@x.com", Password: "pw123456", FirstName: "A", LastName: "B"}
	userID := uuid.New()

	f.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrUserNotFound)
	f.hasher.EXPECT().Hash(input.Password).Return("hashed", nil)
	f.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			assert.Equal(t, entity.RoleUser, user.Role)
			assert.True(t, user.IsOnboarding)
			assert.Equal(t, "hashed", user.PasswordHash)
			assert.Nil(t, user.Phone)
			user.ID = userID
		}).
		Return(nil)
	f.tokenService.EXPECT().GenerateTokens(userID, input.Email).Return("access", "refresh", nil)
	f.ledger.EXPECT().Store(ctx, userID, "refresh").Return(nil)
	f.publisher.EXPECT().Publish(ctx, isEvent(service.EventUserRegistered)).Return(nil)

	tokens, err := f.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, &entity.TokenPair{AccessToken: "access", RefreshToken: "refresh"}, tokens)
}

func TestSessionService_Register_PublishFailureIsIgnored(t *testing.T) {
	f := createTestSessionService(t)
	ctx := context.Background()
	input := &usecase.RegisterInput{Email: "a@x.com", Password: "pw123456"}

	f.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrUserNotFound)
	f.hasher.EXPECT().Hash(input.Password).Return("hashed", nil)
	f.userRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	f.tokenService.EXPECT().GenerateTokens(mock.Anything, input.Email).Return("access", "refresh", nil)
	f.ledger.EXPECT().Store(ctx, mock.Anything, "refresh").Return(nil)
	f.publisher.EXPECT().Publish(ctx, mock.Anything).Return(errors.New("broker down"))

	_, err := f.service.Register(ctx, input)

	require.NoError(t, err)
}

func TestSessionService_Register_UnexpectedLookupFailure(t *testing.T) {
	f := createTestSessionService(t)
	ctx := context.Background()

	f.userRepo.EXPECT().FindByEmail(ctx, "a@x.com").Return(nil, errors.New("connection reset"))

	_, err := f.service.Register(ctx, &usecase.RegisterInput{Email: "a@x.com", Password: "pw123456"})

	appErr := requireAppError(t, err, domainerrors.ErrBadRequest, http.StatusBadRequest)
	assert.Contains(t, appErr.Message(), "Failed to register user")
	assert.Contains(t, appErr.Message(), "connection reset")
}

func TestSessionService_Register_ConcurrentDuplicateCaughtByStore(t *testing.T) {
	f := createTestSessionService(t)
	ctx := context.Background()

	f.userRepo.EXPECT().FindByEmail(ctx, "a@x.com").Return(nil, repository.ErrUserNotFound)
	f.hasher.EXPECT().Hash("pw123456").Return("hashed", nil)
	f.userRepo.EXPECT().Create(ctx, mock.Anything).Return(domainerrors.ErrUserAlreadyExists)

	_, err := f.service.Register(ctx, &usecase.RegisterInput{Email: "a@x.com", Password: "pw123456"})

	requireAppError(t, err, domainerrors.ErrUserAlreadyExists, http.StatusConflict)
}

func TestSessionService_Login_StoresRefreshToken(t *testing.T) {
	f := createTestSessionService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "a@x.com", PasswordHash: "hashed"}

	f.userRepo.EXPECT().FindByEmail(ctx, "a@x.com").Return(user, nil)
	f.hasher.EXPECT().Check("pw123456", "hashed").Return(true)
	f.tokenService.EXPECT().GenerateTokens(user.ID, user.Email).Return("access", "refresh", nil)
	f.ledger.EXPECT().Store(ctx, user.ID, "refresh").Return(nil)

	out, err := f.service.Login(ctx, &usecase.LoginInput{Email: "a@x.com", Phone: "+1555", Password: "pw123456"})

	require.NoError(t, err)
	assert.Equal(t, "refresh", out.Tokens.RefreshToken)
	assert.Empty(t, out.User.PasswordHash)
	assert.Equal(t, "hashed", user.PasswordHash, "the loaded entity is not mutated")
}

func TestSessionService_Refresh_NoLiveTokens(t *testing.T) {
	f := createTestSessionService(t)
	ctx := context.Background()
	userID := uuid.New()

	f.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
	f.ledger.EXPECT().Matches(ctx, userID, "refresh").Return(false, nil)

	_, err := f.service.Refresh(ctx, userID, "refresh")

	appErr := requireAppError(t, err, domainerrors.ErrRefreshTokenInvalid, http.StatusForbidden)
	assert.Equal(t, "Access denied", appErr.Message())
}

func TestSessionService_Refresh_Mismatch(t *testing.T) {
	f := createTestSessionService(t)
	ctx := context.Background()
	userID := uuid.New()

	f.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
	f.ledger.EXPECT().Matches(ctx, userID, "refresh").Return(false, nil)

	_, err := f.service.Refresh(ctx, userID, "refresh")

	requireAppError(t, err, domainerrors.ErrRefreshTokenInvalid, http.StatusForbidden)
}

func TestSessionService_Logout_StoreFailure(t *testing.T) {
	f := createTestSessionService(t)
	ctx := context.Background()
	userID := uuid.New()

	f.ledger.EXPECT().InvalidateAll(ctx, userID).Return(domainerrors.NewDatabaseExecuteError(errors.New("timeout"), ""))

	err := f.service.Logout(ctx, userID)

	appErr := requireAppError(t, err, domainerrors.ErrBadRequest, http.StatusBadRequest)
	assert.Equal(t, "Failed to log out: timeout", appErr.Message())
}

func TestSessionService_CompleteOnboarding_Success(t *testing.T) {
	f := createTestSessionService(t)
	ctx := context.Background()
	userID := uuid.New()
	farmID := uuid.New()
	location := "Valley"

	factory := mockRepo.NewMockRepositoryFactory(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	farmRepo := mockRepo.NewMockFarmRepository(t)
	factory.EXPECT().UserRepo().Return(userRepo)
	factory.EXPECT().FarmRepo().Return(farmRepo)
	expectTx(f.txManager, factory)

	userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, IsOnboarding: true}, nil)
	farmRepo.EXPECT().CountByUserID(ctx, userID).Return(int64(0), nil)
	farmRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Farm")).
		Run(func(_ context.Context, farm *entity.Farm) {
			assert.Equal(t, userID, farm.UserID)
			farm.ID = farmID
		}).
		Return(nil)
	userRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(user *entity.User) bool { return !user.IsOnboarding })).
		Return(nil)
	f.publisher.EXPECT().Publish(ctx, isEvent(service.EventFarmOnboarded)).Return(nil)

	farm, err := f.service.CompleteOnboarding(ctx, userID, &usecase.OnboardingInput{FarmName: "Green Acres", FarmLocation: &location})

	require.NoError(t, err)
	assert.Equal(t, farmID, farm.ID)
	assert.Equal(t, "Green Acres", farm.Name)
	assert.Equal(t, &location, farm.Location)
	assert.Nil(t, farm.Description)
}

func TestSessionService_CompleteOnboarding_AlreadyHasFarm(t *testing.T) {
	location := "North field"
	description := "Dairy and goats"

	tests := []struct {
		name  string
		input *usecase.OnboardingInput
	}{
		{name: "name only", input: &usecase.OnboardingInput{FarmName: "Anything"}},
		{name: "with location", input: &usecase.OnboardingInput{FarmName: "Second", FarmLocation: &location}},
		{
			name:  "full payload",
			input: &usecase.OnboardingInput{FarmName: "Third", FarmLocation: &location, FarmDescription: &description},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestSessionService(t)
			ctx := context.Background()
			userID := uuid.New()

			factory := mockRepo.NewMockRepositoryFactory(t)
			userRepo := mockRepo.NewMockUserRepository(t)
			farmRepo := mockRepo.NewMockFarmRepository(t)
			factory.EXPECT().UserRepo().Return(userRepo)
			factory.EXPECT().FarmRepo().Return(farmRepo)
			expectTx(f.txManager, factory)

			userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
			farmRepo.EXPECT().CountByUserID(ctx, userID).Return(int64(1), nil)

			_, err := f.service.CompleteOnboarding(ctx, userID, tt.input)

			appErr := requireAppError(t, err, domainerrors.ErrAlreadyOnboarded, http.StatusBadRequest)
			assert.Equal(t, "User already has a farm", appErr.Message())
			farmRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestSessionService_CompleteOnboarding_UnknownUser(t *testing.T) {
	f := createTestSessionService(t)
	ctx := context.Background()
	userID := uuid.New()

	factory := mockRepo.NewMockRepositoryFactory(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	factory.EXPECT().UserRepo().Return(userRepo)
	factory.EXPECT().FarmRepo().Return(mockRepo.NewMockFarmRepository(t))
	expectTx(f.txManager, factory)

	userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	_, err := f.service.CompleteOnboarding(ctx, userID, &usecase.OnboardingInput{FarmName: "Anything"})

	appErr := requireAppError(t, err, domainerrors.ErrBadRequest, http.StatusBadRequest)
	assert.Equal(t, "User with ID "+userID.String()+" not found", appErr.Message())
}
