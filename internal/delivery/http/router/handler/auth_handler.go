// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"farmhub/internal/delivery/http/response"
	domainerrors "farmhub/internal/domain/errors"
	"farmhub/internal/domain/service"
	"farmhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	SessionUC    usecase.SessionUsecase
	TokenService service.TokenService
	Logger       *slog.Logger
}

// AuthHandler serves registration, login and the token lifecycle.
type AuthHandler struct {
	sessionUC usecase.SessionUsecase
	tokenSvc  service.TokenService
	logger    *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		sessionUC: params.SessionUC,
		tokenSvc:  params.TokenService,
		logger:    params.Logger,
	}
}

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Email     string  `json:"email" validate:"required,email"`
	Phone     *string `json:"phone,omitempty" validate:"omitempty,e164"`
	Password  string  `json:"password" validate:"required,min=6,max=72"`
	FirstName string  `json:"firstName" validate:"required"`
	LastName  string  `json:"lastName" validate:"required"`
}

// LoginRequest is the body of POST /auth/login. Email wins when both are sent.
type LoginRequest struct {
	Email    string `json:"email,omitempty" validate:"required_without=Phone,omitempty,email"`
	Phone    string `json:"phone,omitempty" validate:"required_without=Email,omitempty,e164"`
	Password string `json:"password" validate:"required"`
}

// RefreshRequest is the body of POST /auth/refresh.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// OnboardingRequest is the body of POST /auth/onboarding.
type OnboardingRequest struct {
	FarmName        string  `json:"farmName" validate:"required"`
	FarmLocation    *string `json:"farmLocation,omitempty"`
	FarmDescription *string `json:"farmDescription,omitempty"`
}

// LoginResponse carries the new token pair and the authenticated user.
type LoginResponse struct {
	AccessToken  string        `json:"accessToken"`
	RefreshToken string        `json:"refreshToken"`
	User         *UserResponse `json:"user"`
}

// OnboardingResponse confirms onboarding with the farm it created.
type OnboardingResponse struct {
	Message string       `json:"message"`
	Farm    *FarmSummary `json:"farm"`
}

// Register godoc
//
//	@Summary	Register a new account
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		body	body		RegisterRequest	true	"Account details"
//	@Success	201		{object}	entity.TokenPair
//	@Failure	409		{object}	response.ErrorResponse
//	@Router		/auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	tokens, err := h.sessionUC.Register(c.Request().Context(), &usecase.RegisterInput{
		Email:     req.Email,
		Phone:     req.Phone,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, tokens)
}

// Login godoc
//
//	@Summary	Log in with email or phone
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		body	body		LoginRequest	true	"Credentials"
//	@Success	200		{object}	LoginResponse
//	@Failure	401		{object}	response.ErrorResponse
//	@Router		/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.sessionUC.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, &LoginResponse{
		AccessToken:  output.Tokens.AccessToken,
		RefreshToken: output.Tokens.RefreshToken,
		User:         newUserResponse(output.User),
	})
}

// Refresh godoc
//
//	@Summary		Exchange a refresh token for a new pair
//	@Description	The previous refresh token stays valid until it expires.
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		RefreshRequest	true	"Refresh token"
//	@Success		200		{object}	entity.TokenPair
//	@Failure		403		{object}	response.ErrorResponse
//	@Router			/auth/refresh [post]
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req RefreshRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	// The ledger match is what authenticates the token, not its signature.
	userID, err := h.tokenSvc.DecodeSubject(req.RefreshToken)
	if err != nil {
		return errors.Wrap(domainerrors.ErrRefreshTokenInvalid, err.Error())
	}

	tokens, err := h.sessionUC.Refresh(c.Request().Context(), userID, req.RefreshToken)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tokens)
}

// Logout godoc
//
//	@Summary	Revoke every refresh token of the caller
//	@Tags		auth
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	response.MessageResponse
//	@Failure	401	{object}	response.ErrorResponse
//	@Router		/auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	if err := h.sessionUC.Logout(c.Request().Context(), userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Logged out successfully")
}

// CompleteOnboarding godoc
//
//	@Summary	Create the caller's first farm
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		body	body		OnboardingRequest	true	"First farm"
//	@Success	201		{object}	OnboardingResponse
//	@Failure	400		{object}	response.ErrorResponse
//	@Router		/auth/onboarding [post]
func (h *AuthHandler) CompleteOnboarding(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	var req OnboardingRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	farm, err := h.sessionUC.CompleteOnboarding(c.Request().Context(), userID, &usecase.OnboardingInput{
		FarmName:        req.FarmName,
		FarmLocation:    req.FarmLocation,
		FarmDescription: req.FarmDescription,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, &OnboardingResponse{
		Message: "Onboarding completed successfully",
		Farm: &FarmSummary{
			ID:          farm.ID,
			Name:        farm.Name,
			Location:    farm.Location,
			Description: farm.Description,
		},
	})
}
