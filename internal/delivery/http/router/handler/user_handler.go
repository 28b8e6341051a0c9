package handler

import (
	"log/slog"
	"net/http"

	"farmhub/internal/delivery/http/response"
	"farmhub/internal/domain/entity"
	"farmhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// UserHandler serves the caller's profile and the admin user endpoints.
type UserHandler struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler.
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

// UpdateProfileRequest is the body of PATCH /users/me.
type UpdateProfileRequest struct {
	FirstName *string `json:"firstName,omitempty" validate:"omitempty,min=1"`
	LastName  *string `json:"lastName,omitempty" validate:"omitempty,min=1"`
	Phone     *string `json:"phone,omitempty" validate:"omitempty,e164"`
}

// CreateUserRequest is the body of POST /users.
type CreateUserRequest struct {
	Email     string      `json:"email" validate:"required,email"`
	Phone     *string     `json:"phone,omitempty" validate:"omitempty,e164"`
	Password  string      `json:"password" validate:"required,min=6,max=72"`
	FirstName string      `json:"firstName" validate:"required"`
	LastName  string      `json:"lastName" validate:"required"`
	Role      entity.Role `json:"role,omitempty" validate:"omitempty,oneof=ADMIN USER"`
}

// UpdateUserRequest is the body of PATCH /users/:id.
type UpdateUserRequest struct {
	Email     *string      `json:"email,omitempty" validate:"omitempty,email"`
	Phone     *string      `json:"phone,omitempty" validate:"omitempty,e164"`
	Password  *string      `json:"password,omitempty" validate:"omitempty,min=6,max=72"`
	FirstName *string      `json:"firstName,omitempty" validate:"omitempty,min=1"`
	LastName  *string      `json:"lastName,omitempty" validate:"omitempty,min=1"`
	Role      *entity.Role `json:"role,omitempty" validate:"omitempty,oneof=ADMIN USER"`
}

// GetProfile godoc
//
//	@Summary	Current user's profile
//	@Tags		users
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	UserResponse
//	@Router		/users/me [get]
func (h *UserHandler) GetProfile(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	user, err := h.userUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUserResponse(user))
}

// UpdateProfile godoc
//
//	@Summary	Update the current user's profile
//	@Tags		users
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		body	body		UpdateProfileRequest	true	"Changed fields"
//	@Success	200		{object}	UserResponse
//	@Failure	409		{object}	response.ErrorResponse
//	@Router		/users/me [patch]
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	var req UpdateProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.userUC.UpdateProfile(c.Request().Context(), userID, &usecase.UpdateProfileInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUserResponse(user))
}

// ListUsers godoc
//
//	@Summary	List all users (admin)
//	@Tags		users
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}		UserResponse
//	@Failure	403	{object}	response.ErrorResponse
//	@Router		/users [get]
func (h *UserHandler) ListUsers(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	users, err := h.userUC.ListUsers(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUserResponses(users))
}

// GetUser godoc
//
//	@Summary	Get a user (admin)
//	@Tags		users
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		string	true	"User ID"
//	@Success	200	{object}	UserResponse
//	@Failure	404	{object}	response.ErrorResponse
//	@Router		/users/{id} [get]
func (h *UserHandler) GetUser(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	targetID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	user, err := h.userUC.GetUser(c.Request().Context(), userID, targetID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUserResponse(user))
}

// CreateUser godoc
//
//	@Summary	Create a user with a role (admin)
//	@Tags		users
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		body	body		CreateUserRequest	true	"New user"
//	@Success	201		{object}	UserResponse
//	@Failure	409		{object}	response.ErrorResponse
//	@Router		/users [post]
func (h *UserHandler) CreateUser(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	var req CreateUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.userUC.CreateUser(c.Request().Context(), userID, &usecase.CreateUserInput{
		Email:     req.Email,
		Phone:     req.Phone,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      req.Role,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newUserResponse(user))
}

// UpdateUser godoc
//
//	@Summary	Update a user (admin)
//	@Tags		users
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		string				true	"User ID"
//	@Param		body	body		UpdateUserRequest	true	"Changed fields"
//	@Success	200		{object}	UserResponse
//	@Router		/users/{id} [patch]
func (h *UserHandler) UpdateUser(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	targetID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req UpdateUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.userUC.UpdateUser(c.Request().Context(), userID, targetID, &usecase.UpdateUserInput{
		Email:     req.Email,
		Phone:     req.Phone,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      req.Role,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUserResponse(user))
}

// DeleteUser godoc
//
//	@Summary	Delete a user (admin)
//	@Tags		users
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		string	true	"User ID"
//	@Success	200	{object}	response.MessageResponse
//	@Failure	404	{object}	response.ErrorResponse
//	@Router		/users/{id} [delete]
func (h *UserHandler) DeleteUser(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	targetID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.userUC.DeleteUser(c.Request().Context(), userID, targetID); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "User deleted successfully")
}
