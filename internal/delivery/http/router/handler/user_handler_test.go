package handler

import (
	"net/http"
	"testing"

	"farmhub/internal/domain/entity"
	domainerrors "farmhub/internal/domain/errors"
	mockUsecase "farmhub/internal/mocks/usecase"
	"farmhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestUserHandler(t *testing.T) (*echo.Echo, *mockUsecase.MockUserUsecase) {
	e := newTestEcho()
	userUC := mockUsecase.NewMockUserUsecase(t)
	h := NewUserHandler(UserHandlerParams{UserUC: userUC, Logger: newDiscardLogger()})

	e.GET("/users/me", h.GetProfile)
	e.PATCH("/users/me", h.UpdateProfile)
	e.GET("/users", h.ListUsers)
	e.POST("/users", h.CreateUser)
	e.GET("/users/:id", h.GetUser)
	e.PATCH("/users/:id", h.UpdateUser)
	e.DELETE("/users/:id", h.DeleteUser)

	return e, userUC
}

func TestUserHandler_GetProfile_OmitsPasswordHash(t *testing.T) {
	e, userUC := createTestUserHandler(t)
	userID := uuid.New()

	userUC.EXPECT().GetProfile(mock.Anything, userID).Return(&entity.User{
		ID:           userID,
		Email:        "jane@example.com",
		PasswordHash: "$2a$10$secret",
		FirstName:    "Jane",
		LastName:     "Doe",
		Role:         entity.RoleUser,
	}, nil)

	rec := doRequest(e, http.MethodGet, "/users/me", "", userID)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "secret")
	assert.NotContains(t, rec.Body.String(), "password")
	assert.Equal(t, "jane@example.com", decodeBody[UserResponse](t, rec).Email)
}

func TestUserHandler_GetProfile_Unauthenticated(t *testing.T) {
	e, _ := createTestUserHandler(t)

	rec := doRequest(e, http.MethodGet, "/users/me", "", uuid.Nil)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid user ID in token", decodeBody[errorBody](t, rec).Error.Message)
}

func TestUserHandler_UpdateProfile(t *testing.T) {
	e, userUC := createTestUserHandler(t)
	userID := uuid.New()
	phone := "+15550001234"

	userUC.EXPECT().
		UpdateProfile(mock.Anything, userID, &usecase.UpdateProfileInput{Phone: &phone}).
		Return(&entity.User{ID: userID, Phone: &phone}, nil)

	rec := doRequest(e, http.MethodPatch, "/users/me", `{"phone":"+15550001234"}`, userID)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, &phone, decodeBody[UserResponse](t, rec).Phone)
}

func TestUserHandler_UpdateProfile_InvalidPhone(t *testing.T) {
	e, _ := createTestUserHandler(t)

	rec := doRequest(e, http.MethodPatch, "/users/me", `{"phone":"call me"}`, uuid.New())

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody[errorBody](t, rec)
	require.Len(t, body.Error.Details, 1)
	assert.Equal(t, "phone", body.Error.Details[0].Field)
	assert.Equal(t, "e164", body.Error.Details[0].Rule)
}

func TestUserHandler_ListUsers_Forbidden(t *testing.T) {
	e, userUC := createTestUserHandler(t)
	userID := uuid.New()

	userUC.EXPECT().ListUsers(mock.Anything, userID).
		Return(nil, domainerrors.ErrForbidden.WithMessage("Admin access required"))

	rec := doRequest(e, http.MethodGet, "/users", "", userID)

	require.Equal(t, http.StatusForbidden, rec.Code)
	body := decodeBody[errorBody](t, rec)
	assert.Equal(t, "Admin access required", body.Error.Message)
	assert.Empty(t, body.Error.Details)
}

func TestUserHandler_CreateUser(t *testing.T) {
	e, userUC := createTestUserHandler(t)
	adminID := uuid.New()

	userUC.EXPECT().
		CreateUser(mock.Anything, adminID, &usecase.CreateUserInput{
			Email:     "new@example.com",
			Password:  "secret1",
			FirstName: "New",
			LastName:  "User",
			Role:      entity.RoleAdmin,
		}).
		Return(&entity.User{ID: uuid.New(), Email: "new@example.com", Role: entity.RoleAdmin}, nil)

	rec := doRequest(e, http.MethodPost, "/users",
		`{"email":"new@example.com","password":"secret1","firstName":"New","lastName":"User","role":"ADMIN"}`, adminID)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, entity.RoleAdmin, decodeBody[UserResponse](t, rec).Role)
}

func TestUserHandler_CreateUser_UnknownRole(t *testing.T) {
	e, _ := createTestUserHandler(t)

	rec := doRequest(e, http.MethodPost, "/users",
		`{"email":"new@example.com","password":"secret1","firstName":"New","lastName":"User","role":"ROOT"}`, uuid.New())

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_ERROR", decodeBody[errorBody](t, rec).Error.Code)
}

func TestUserHandler_GetUser_InvalidID(t *testing.T) {
	e, _ := createTestUserHandler(t)

	rec := doRequest(e, http.MethodGet, "/users/42", "", uuid.New())

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid id: must be a UUID", decodeBody[errorBody](t, rec).Error.Message)
}

func TestUserHandler_DeleteUser(t *testing.T) {
	e, userUC := createTestUserHandler(t)
	adminID := uuid.New()
	targetID := uuid.New()

	userUC.EXPECT().DeleteUser(mock.Anything, adminID, targetID).Return(nil)

	rec := doRequest(e, http.MethodDelete, "/users/"+targetID.String(), "", adminID)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"User deleted successfully"}`, rec.Body.String())
}
