package impl

import (
	"context"
	"net/http"
	"testing"

	"farmhub/internal/domain/entity"
	domainerrors "farmhub/internal/domain/errors"
	"farmhub/internal/domain/repository"
	mockRepo "farmhub/internal/mocks/repository"
	mockSvc "farmhub/internal/mocks/service"
	"farmhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userServiceFixtures struct {
	service  usecase.UserUsecase
	userRepo *mockRepo.MockUserRepository
	hasher   *mockSvc.MockPasswordHasher
}

func createTestUserService(t *testing.T) userServiceFixtures {
	f := userServiceFixtures{
		userRepo: mockRepo.NewMockUserRepository(t),
		hasher:   mockSvc.NewMockPasswordHasher(t),
	}
	f.service = NewUserService(UserServiceParams{
		UserRepo: f.userRepo,
		Hasher:   f.hasher,
		Logger:   newDiscardLogger(),
	})

	return f
}

func TestUserService_GetProfile_StripsPassword(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()
	userID := uuid.New()

	f.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, PasswordHash: "hashed"}, nil)

	user, err := f.service.GetProfile(ctx, userID)

	require.NoError(t, err)
	assert.Empty(t, user.PasswordHash)
}

func TestUserService_UpdateProfile_PhoneConflict(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()
	userID := uuid.New()
	phone := "+15550001"

	f.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
	f.userRepo.EXPECT().Update(ctx, mock.Anything).Return(domainerrors.ErrPhoneAlreadyExists)

	_, err := f.service.UpdateProfile(ctx, userID, &usecase.UpdateProfileInput{Phone: &phone})

	requireAppError(t, err, domainerrors.ErrPhoneAlreadyExists, http.StatusConflict)
}

func TestUserService_AdminOperations_RequireAdmin(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()
	callerID := uuid.New()
	targetID := uuid.New()

	f.userRepo.EXPECT().FindByID(ctx, callerID).Return(&entity.User{ID: callerID, Role: entity.RoleUser}, nil)

	_, err := f.service.ListUsers(ctx, callerID)
	requireAppError(t, err, domainerrors.ErrForbidden, http.StatusForbidden)

	_, err = f.service.GetUser(ctx, callerID, targetID)
	requireAppError(t, err, domainerrors.ErrForbidden, http.StatusForbidden)

	_, err = f.service.CreateUser(ctx, callerID, &usecase.CreateUserInput{Email: "x@y.com", Password: "secret1"})
	requireAppError(t, err, domainerrors.ErrForbidden, http.StatusForbidden)

	err = f.service.DeleteUser(ctx, callerID, targetID)
	requireAppError(t, err, domainerrors.ErrForbidden, http.StatusForbidden)
}

func TestUserService_ListUsers_Admin(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()
	adminID := uuid.New()

	f.userRepo.EXPECT().FindByID(ctx, adminID).Return(&entity.User{ID: adminID, Role: entity.RoleAdmin}, nil)
	f.userRepo.EXPECT().List(ctx).Return([]*entity.User{
		{ID: uuid.New(), PasswordHash: "h1"},
		{ID: uuid.New(), PasswordHash: "h2"},
	}, nil)

	users, err := f.service.ListUsers(ctx, adminID)

	require.NoError(t, err)
	require.Len(t, users, 2)
	for _, user := range users {
		assert.Empty(t, user.PasswordHash)
	}
}

func TestUserService_CreateUser_Admin(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()
	adminID := uuid.New()

	f.userRepo.EXPECT().FindByID(ctx, adminID).Return(&entity.User{ID: adminID, Role: entity.RoleAdmin}, nil)
	f.hasher.EXPECT().Hash("secret1").Return("hashed", nil)
	f.userRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(user *entity.User) bool { return user.Role == entity.RoleAdmin && user.PasswordHash == "hashed" })).
		Return(nil)

	user, err := f.service.CreateUser(ctx, adminID, &usecase.CreateUserInput{Email: "x@y.com", Password: "secret1", Role: entity.RoleAdmin})

	require.NoError(t, err)
	assert.Empty(t, user.PasswordHash)
}

func TestUserService_DeleteUser_NotFound(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()
	adminID := uuid.New()
	targetID := uuid.New()

	f.userRepo.EXPECT().FindByID(ctx, adminID).Return(&entity.User{ID: adminID, Role: entity.RoleAdmin}, nil)
	f.userRepo.EXPECT().Delete(ctx, targetID).Return(repository.ErrUserNotFound)

	err := f.service.DeleteUser(ctx, adminID, targetID)

	appErr := requireAppError(t, err, domainerrors.ErrNotFound, http.StatusNotFound)
	assert.Equal(t, "User with ID "+targetID.String()+" not found", appErr.Message())
}
