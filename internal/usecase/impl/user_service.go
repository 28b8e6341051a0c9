package impl

import (
	"context"
	"log/slog"

	deliverycontext "farmhub/internal/delivery/context"
	"farmhub/internal/domain/entity"
	domainerrors "farmhub/internal/domain/errors"
	"farmhub/internal/domain/repository"
	"farmhub/internal/domain/service"
	"farmhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo repository.UserRepository
	hasher   service.PasswordHasher
	logger   *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Hasher   service.PasswordHasher
	Logger   *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo: params.UserRepo,
		hasher:   params.Hasher,
		logger:   params.Logger,
	}
}

func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile returns the caller's own account.
func (srv *userService) GetProfile(ctx context.Context, callerID uuid.UUID) (*entity.User, error) {
	user, err := srv.findUser(ctx, callerID)
	if err != nil {
		return nil, domainerrors.Rewrap(err, "fetch profile")
	}

	return user.Sanitized(), nil
}

// UpdateProfile changes the caller's names and phone.
func (srv *userService) UpdateProfile(ctx context.Context, callerID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.User, error) {
	user, err := srv.findUser(ctx, callerID)
	if err != nil {
		return nil, domainerrors.Rewrap(err, "update profile")
	}

	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	if input.Phone != nil {
		user.Phone = normalizePhone(input.Phone)
	}

	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, domainerrors.Rewrap(err, "update profile")
	}
	srv.log(ctx).Debug("Profile updated", slog.Any("userID", callerID))

	return user.Sanitized(), nil
}

// ListUsers returns every account. Admin only.
func (srv *userService) ListUsers(ctx context.Context, callerID uuid.UUID) ([]*entity.User, error) {
	if err := srv.requireAdmin(ctx, callerID); err != nil {
		return nil, domainerrors.Rewrap(err, "fetch users")
	}

	users, err := srv.userRepo.List(ctx)
	if err != nil {
		return nil, domainerrors.Rewrap(err, "fetch users")
	}

	sanitized := make([]*entity.User, 0, len(users))
	for _, user := range users {
		sanitized = append(sanitized, user.Sanitized())
	}

	return sanitized, nil
}

// GetUser returns one account. Admin only.
func (srv *userService) GetUser(ctx context.Context, callerID, userID uuid.UUID) (*entity.User, error) {
	if err := srv.requireAdmin(ctx, callerID); err != nil {
		return nil, domainerrors.Rewrap(err, "fetch user")
	}

	user, err := srv.findUser(ctx, userID)
	if err != nil {
		return nil, domainerrors.Rewrap(err, "fetch user")
	}

	return user.Sanitized(), nil
}

// CreateUser creates an account with an explicit role. Admin only.
func (srv *userService) CreateUser(ctx context.Context, callerID uuid.UUID, input *usecase.CreateUserInput) (*entity.User, error) {
	if err := srv.requireAdmin(ctx, callerID); err != nil {
		return nil, domainerrors.Rewrap(err, "create user")
	}

	role := input.Role
	if role == "" {
		role = entity.RoleUser
	}
	if !role.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithMessage("Invalid role: %s", role)
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.Rewrap(errors.Wrap(err, "failed to hash password"), "create user")
	}

	user := &entity.User{
		Email:        input.Email,
		Phone:        normalizePhone(input.Phone),
		PasswordHash: hashedPassword,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Role:         role,
		IsOnboarding: true,
	}

	// Duplicate email or phone surfaces from the repository as a Conflict.
	if err := srv.userRepo.Create(ctx, user); err != nil {
		return nil, domainerrors.Rewrap(err, "create user")
	}
	srv.log(ctx).Info("User created by admin", slog.Any("adminID", callerID), slog.Any("userID", user.ID))

	return user.Sanitized(), nil
}

// UpdateUser changes any field of an account. Admin only.
func (srv *userService) UpdateUser(ctx context.Context, callerID, userID uuid.UUID, input *usecase.UpdateUserInput) (*entity.User, error) {
	if err := srv.requireAdmin(ctx, callerID); err != nil {
		return nil, domainerrors.Rewrap(err, "update user")
	}

	user, err := srv.findUser(ctx, userID)
	if err != nil {
		return nil, domainerrors.Rewrap(err, "update user")
	}

	if input.Role != nil {
		if !input.Role.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WithMessage("Invalid role: %s", *input.Role)
		}
		user.Role = *input.Role
	}
	if input.Password != nil {
		hashedPassword, err := srv.hasher.Hash(*input.Password)
		if err != nil {
			return nil, domainerrors.Rewrap(errors.Wrap(err, "failed to hash password"), "update user")
		}
		user.PasswordHash = hashedPassword
	}
	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.Phone != nil {
		user.Phone = normalizePhone(input.Phone)
	}
	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}

	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, domainerrors.Rewrap(err, "update user")
	}

	return user.Sanitized(), nil
}

// DeleteUser removes an account. Admin only.
func (srv *userService) DeleteUser(ctx context.Context, callerID, userID uuid.UUID) error {
	if err := srv.requireAdmin(ctx, callerID); err != nil {
		return domainerrors.Rewrap(err, "delete user")
	}

	if err := srv.userRepo.Delete(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrNotFound.WithMessage("User with ID %s not found", userID)
		}

		return domainerrors.Rewrap(err, "delete user")
	}
	srv.log(ctx).Info("User deleted by admin", slog.Any("adminID", callerID), slog.Any("userID", userID))

	return nil
}

func (srv *userService) findUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrNotFound.WithMessage("User with ID %s not found", userID)
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

func (srv *userService) requireAdmin(ctx context.Context, callerID uuid.UUID) error {
	caller, err := srv.userRepo.FindByID(ctx, callerID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrForbidden
		}

		return errors.Wrap(err, "failed to load caller")
	}

	if !caller.IsAdmin() {
		srv.log(ctx).Warn("Non-admin attempted an admin operation", slog.Any("userID", callerID))

		return domainerrors.ErrForbidden
	}

	return nil
}
