package usecase

import (
	"context"

	"farmhub/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateProfileInput holds the fields a user may change on their own account.
// Nil fields are left untouched.
type UpdateProfileInput struct {
	FirstName *string
	LastName  *string
	Phone     *string
}

// CreateUserInput is used by administrators to create accounts directly.
type CreateUserInput struct {
	Email     string
	Phone     *string
	Password  string
	FirstName string
	LastName  string
	Role      entity.Role
}

// UpdateUserInput is the administrative counterpart of UpdateProfileInput.
type UpdateUserInput struct {
	Email     *string
	Phone     *string
	Password  *string
	FirstName *string
	LastName  *string
	Role      *entity.Role
}

// UserUsecase covers profile management and user administration.
// Every administrative method fails with Forbidden unless the caller is an ADMIN.
type UserUsecase interface {
	GetProfile(ctx context.Context, callerID uuid.UUID) (*entity.User, error)
	UpdateProfile(ctx context.Context, callerID uuid.UUID, input *UpdateProfileInput) (*entity.User, error)

	ListUsers(ctx context.Context, callerID uuid.UUID) ([]*entity.User, error)
	GetUser(ctx context.Context, callerID, userID uuid.UUID) (*entity.User, error)
	CreateUser(ctx context.Context, callerID uuid.UUID, input *CreateUserInput) (*entity.User, error)
	UpdateUser(ctx context.Context, callerID, userID uuid.UUID, input *UpdateUserInput) (*entity.User, error)
	DeleteUser(ctx context.Context, callerID, userID uuid.UUID) error
}
