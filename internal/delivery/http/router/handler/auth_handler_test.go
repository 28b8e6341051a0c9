package handler

import (
	"net/http"
	"strings"
	"testing"

	"farmhub/internal/domain/entity"
	domainerrors "farmhub/internal/domain/errors"
	mockSvc "farmhub/internal/mocks/service"
	mockUsecase "farmhub/internal/mocks/usecase"
	"farmhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authHandlerFixtures struct {
	echo      *echo.Echo
	sessionUC *mockUsecase.MockSessionUsecase
	tokenSvc  *mockSvc.MockTokenService
}

func createTestAuthHandler(t *testing.T) authHandlerFixtures {
	f := authHandlerFixtures{
		echo:      newTestEcho(),
		sessionUC: mockUsecase.NewMockSessionUsecase(t),
		tokenSvc:  mockSvc.NewMockTokenService(t),
	}
	h := NewAuthHandler(AuthHandlerParams{
		SessionUC:    f.sessionUC,
		TokenService: f.tokenSvc,
		Logger:       newDiscardLogger(),
	})
	f.echo.POST("/auth/register", h.Register)
	f.echo.POST("/auth/login", h.Login)
	f.echo.POST("/auth/refresh", h.Refresh)
	f.echo.POST("/auth/logout", h.Logout)
	f.echo.POST("/auth/onboarding", h.CompleteOnboarding)

	return f
}

func TestAuthHandler_Register(t *testing.T) {
	f := createTestAuthHandler(t)
	phone := "+15550001234"

	f.sessionUC.EXPECT().
		Register(mock.Anything, &usecase.RegisterInput{
			Email:     "farmer@example.com",
			Phone:     &phone,
			Password:  "secret1",
			FirstName: "Ada",
			LastName:  "Byron",
		}).
		Return(&entity.TokenPair{AccessToken: "a", RefreshToken: "r"}, nil)

	rec := doRequest(f.echo, http.MethodPost, "/auth/register",
		`{"email":"farmer@example.com","phone":"+15550001234","password":"secret1","firstName":"Ada","lastName":"Byron"}`, uuid.Nil)

	require.Equal(t, http.StatusCreated, rec.Code)
	tokens := decodeBody[entity.TokenPair](t, rec)
	assert.Equal(t, "a", tokens.AccessToken)
	assert.Equal(t, "r", tokens.RefreshToken)
}

func TestAuthHandler_Register_ValidationError(t *testing.T) {
	f := createTestAuthHandler(t)

	rec := doRequest(f.echo, http.MethodPost, "/auth/register",
		`{"email":"nope","password":"123","firstName":"Ada"}`, uuid.Nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody[errorBody](t, rec)
	assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
	assert.NotEmpty(t, body.Meta.RequestID)

	rules := map[string]string{}
	for _, d := range body.Error.Details {
		rules[d.Field] = d.Rule
	}
	assert.Equal(t, map[string]string{"email": "email", "password": "min", "lastName": "required"}, rules)
}

func TestAuthHandler_Register_RejectedFields(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
		rule  string
	}{
		{
			name:  "password longer than bcrypt accepts",
			body:  `{"email":"farmer@example.com","password":"` + strings.Repeat("p", 73) + `","firstName":"Ada","lastName":"Byron"}`,
			field: "password",
			rule:  "max",
		},
		{
			name:  "phone not in E.164 form",
			body:  `{"email":"farmer@example.com","phone":"555-0001","password":"secret1","firstName":"Ada","lastName":"Byron"}`,
			field: "phone",
			rule:  "e164",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestAuthHandler(t)

			rec := doRequest(f.echo, http.MethodPost, "/auth/register", tt.body, uuid.Nil)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			body := decodeBody[errorBody](t, rec)
			assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
			require.Len(t, body.Error.Details, 1)
			assert.Equal(t, tt.field, body.Error.Details[0].Field)
			assert.Equal(t, tt.rule, body.Error.Details[0].Rule)
			assert.NotContains(t, body.Error.Message, "bcrypt")
			f.sessionUC.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
		})
	}
}

func TestAuthHandler_Register_Conflict(t *testing.T) {
	f := createTestAuthHandler(t)

	f.sessionUC.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrUserAlreadyExists)

	rec := doRequest(f.echo, http.MethodPost, "/auth/register",
		`{"email":"farmer@example.com","password":"secret1","firstName":"Ada","lastName":"Byron"}`, uuid.Nil)

	require.Equal(t, http.StatusConflict, rec.Code)
	body := decodeBody[errorBody](t, rec)
	assert.Equal(t, "USER_ALREADY_EXISTS", body.Error.Code)
}

func TestAuthHandler_Login(t *testing.T) {
	f := createTestAuthHandler(t)
	userID := uuid.New()

	f.sessionUC.EXPECT().
		Login(mock.Anything, &usecase.LoginInput{Email: "farmer@example.com", Password: "secret1"}).
		Return(&usecase.LoginOutput{
			Tokens: &entity.TokenPair{AccessToken: "a", RefreshToken: "r"},
			User:   &entity.User{ID: userID, Email: "farmer@example.com", Role: entity.RoleUser},
		}, nil)

	rec := doRequest(f.echo, http.MethodPost, "/auth/login", `{"email":"farmer@example.com","password":"secret1"}`, uuid.Nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody[LoginResponse](t, rec)
	assert.Equal(t, "a", body.AccessToken)
	assert.Equal(t, userID, body.User.ID)
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestAuthHandler_Login_RequiresEmailOrPhone(t *testing.T) {
	f := createTestAuthHandler(t)

	rec := doRequest(f.echo, http.MethodPost, "/auth/login", `{"password":"secret1"}`, uuid.Nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_ERROR", decodeBody[errorBody](t, rec).Error.Code)
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	f := createTestAuthHandler(t)

	f.sessionUC.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidCredentials)

	rec := doRequest(f.echo, http.MethodPost, "/auth/login", `{"phone":"+15550001234","password":"wrong"}`, uuid.Nil)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid credentials", decodeBody[errorBody](t, rec).Error.Message)
}

func TestAuthHandler_Refresh_DecodesSubject(t *testing.T) {
	f := createTestAuthHandler(t)
	userID := uuid.New()

	f.tokenSvc.EXPECT().DecodeSubject("raw-refresh").Return(userID, nil)
	f.sessionUC.EXPECT().
		Refresh(mock.Anything, userID, "raw-refresh").
		Return(&entity.TokenPair{AccessToken: "a2", RefreshToken: "r2"}, nil)

	rec := doRequest(f.echo, http.MethodPost, "/auth/refresh", `{"refreshToken":"raw-refresh"}`, uuid.Nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "r2", decodeBody[entity.TokenPair](t, rec).RefreshToken)
}

func TestAuthHandler_Refresh_Undecodable(t *testing.T) {
	f := createTestAuthHandler(t)

	f.tokenSvc.EXPECT().DecodeSubject("garbage").Return(uuid.Nil, errors.New("malformed token"))

	rec := doRequest(f.echo, http.MethodPost, "/auth/refresh", `{"refreshToken":"garbage"}`, uuid.Nil)

	require.Equal(t, http.StatusForbidden, rec.Code)
	body := decodeBody[errorBody](t, rec)
	assert.Equal(t, "Access denied", body.Error.Message)
}

func TestAuthHandler_Logout(t *testing.T) {
	f := createTestAuthHandler(t)
	userID := uuid.New()

	f.sessionUC.EXPECT().Logout(mock.Anything, userID).Return(nil)

	rec := doRequest(f.echo, http.MethodPost, "/auth/logout", "", userID)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Logged out successfully"}`, rec.Body.String())
}

func TestAuthHandler_Logout_Unauthenticated(t *testing.T) {
	f := createTestAuthHandler(t)

	rec := doRequest(f.echo, http.MethodPost, "/auth/logout", "", uuid.Nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthHandler_CompleteOnboarding(t *testing.T) {
	f := createTestAuthHandler(t)
	userID := uuid.New()
	farmID := uuid.New()
	location := "Valley"

	f.sessionUC.EXPECT().
		CompleteOnboarding(mock.Anything, userID, &usecase.OnboardingInput{FarmName: "Green Acres", FarmLocation: &location}).
		Return(&entity.Farm{ID: farmID, Name: "Green Acres", Location: &location, UserID: userID}, nil)

	rec := doRequest(f.echo, http.MethodPost, "/auth/onboarding", `{"farmName":"Green Acres","farmLocation":"Valley"}`, userID)

	require.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody[OnboardingResponse](t, rec)
	assert.Equal(t, "Onboarding completed successfully", body.Message)
	assert.Equal(t, farmID, body.Farm.ID)
	assert.Equal(t, &location, body.Farm.Location)
}

func TestAuthHandler_CompleteOnboarding_AlreadyOnboarded(t *testing.T) {
	f := createTestAuthHandler(t)
	userID := uuid.New()

	f.sessionUC.EXPECT().CompleteOnboarding(mock.Anything, userID, mock.Anything).Return(nil, domainerrors.ErrAlreadyOnboarded)

	rec := doRequest(f.echo, http.MethodPost, "/auth/onboarding", `{"farmName":"Second"}`, userID)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "User already has a farm", decodeBody[errorBody](t, rec).Error.Message)
}
