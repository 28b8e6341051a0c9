// Package impl contains the implementation of the application's business logic.
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

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	ledger       usecase.RefreshTokenLedger
	hasher       service.PasswordHasher
	tokenService service.TokenService
	publisher    service.EventPublisher
	logger       *slog.Logger
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Ledger       usecase.RefreshTokenLedger
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Publisher    service.EventPublisher `optional:"true"`
	Logger       *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		ledger:       params.Ledger,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		publisher:    params.Publisher,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a USER account and signs it in.
func (srv *sessionService) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.TokenPair, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	if err := srv.ensureIdentityAvailable(ctx, input.Email, input.Phone); err != nil {
		srv.log(ctx).Warn("Registration rejected", slog.String("email", input.Email), slog.Any("error", err))

		return nil, domainerrors.Rewrap(err, "register user")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.Rewrap(errors.Wrap(err, "failed to hash password"), "register user")
	}

	newUser := &entity.User{
		Email:        input.Email,
		Phone:        normalizePhone(input.Phone),
		PasswordHash: hashedPassword,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Role:         entity.RoleUser,
		IsOnboarding: true,
	}

	// The unique constraints still catch a concurrent registration with the same identity.
	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		return nil, domainerrors.Rewrap(err, "register user")
	}

	tokens, err := srv.issueTokens(ctx, newUser)
	if err != nil {
		return nil, domainerrors.Rewrap(err, "register user")
	}

	publishEvent(ctx, srv.publisher, srv.log(ctx), service.EventUserRegistered, newUser.ID, map[string]any{
		"userId": newUser.ID.String(),
		"email":  newUser.Email,
	})
	srv.log(ctx).Debug("Registration completed", slog.Any("userID", newUser.ID))

	return tokens, nil
}

func (srv *sessionService) ensureIdentityAvailable(ctx context.Context, email string, phone *string) error {
	_, err := srv.userRepo.FindByEmail(ctx, email)
	if err == nil {
		return errors.Wrap(domainerrors.ErrUserAlreadyExists, "email already registered")
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return errors.Wrap(err, "failed to look up user by email")
	}

	if normalizePhone(phone) == nil {
		return nil
	}

	_, err = srv.userRepo.FindByPhone(ctx, *phone)
	if err == nil {
		return errors.Wrap(domainerrors.ErrPhoneAlreadyExists, "phone already registered")
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return errors.Wrap(err, "failed to look up user by phone")
	}

	return nil
}

// Login verifies the credentials and issues a new token pair.
// An unknown identity and a wrong password produce the same error.
func (srv *sessionService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting user login", slog.String("email", input.Email))

	user, err := srv.findLoginUser(ctx, input)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, domainerrors.Rewrap(err, "log in")
	}

	// Check password outside any transaction (bcrypt is CPU-bound).
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	tokens, err := srv.issueTokens(ctx, user)
	if err != nil {
		return nil, domainerrors.Rewrap(err, "log in")
	}
	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{
		Tokens: tokens,
		User:   user.Sanitized(),
	}, nil
}

func (srv *sessionService) findLoginUser(ctx context.Context, input *usecase.LoginInput) (*entity.User, error) {
	switch {
	case input.Email != "":
		return srv.userRepo.FindByEmail(ctx, input.Email)
	case input.Phone != "":
		return srv.userRepo.FindByPhone(ctx, input.Phone)
	default:
		return nil, repository.ErrUserNotFound
	}
}

// Refresh issues a new pair when the raw token matches one of the user's live tokens.
// The consumed token is left in place and expires on its own.
func (srv *sessionService) Refresh(ctx context.Context, userID uuid.UUID, refreshToken string) (*entity.TokenPair, error) {
	srv.log(ctx).Info("Attempting to refresh tokens", slog.Any("userID", userID))

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "unknown user")
		}

		return nil, domainerrors.Rewrap(err, "refresh tokens")
	}

	matched, err := srv.ledger.Matches(ctx, userID, refreshToken)
	if err != nil {
		return nil, domainerrors.Rewrap(err, "refresh tokens")
	}
	if !matched {
		srv.log(ctx).Warn("Refresh token did not match", slog.Any("userID", userID))

		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh token mismatch")
	}

	tokens, err := srv.issueTokens(ctx, user)
	if err != nil {
		return nil, domainerrors.Rewrap(err, "refresh tokens")
	}

	return tokens, nil
}

// Logout invalidates every refresh token of the user.
func (srv *sessionService) Logout(ctx context.Context, userID uuid.UUID) error {
	srv.log(ctx).Info("Attempting to log out", slog.Any("userID", userID))

	if err := srv.ledger.InvalidateAll(ctx, userID); err != nil {
		srv.log(ctx).Error("Failed to delete refresh tokens", slog.Any("error", err))

		return domainerrors.Rewrap(err, "log out")
	}
	srv.log(ctx).Info("Successfully logged out", slog.Any("userID", userID))

	return nil
}

// CompleteOnboarding creates the first farm of a user who has none.
func (srv *sessionService) CompleteOnboarding(ctx context.Context, userID uuid.UUID, input *usecase.OnboardingInput) (*entity.Farm, error) {
	srv.log(ctx).Info("Completing onboarding", slog.Any("userID", userID))

	var farm *entity.Farm

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		farmRepo := repoFactory.FarmRepo()

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrBadRequest.WithMessage("User with ID %s not found", userID)
			}

			return errors.Wrap(err, "failed to find user")
		}

		count, err := farmRepo.CountByUserID(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to count farms")
		}
		if count > 0 {
			return errors.Wrap(domainerrors.ErrAlreadyOnboarded, "onboarding already completed")
		}

		farm = &entity.Farm{
			Name:        input.FarmName,
			Location:    input.FarmLocation,
			Description: input.FarmDescription,
			UserID:      userID,
		}
		if err := farmRepo.Create(ctx, farm); err != nil {
			return errors.Wrap(err, "failed to create farm")
		}

		user.IsOnboarding = false
		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to clear onboarding flag")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Onboarding failed", slog.Any("userID", userID), slog.Any("error", err))

		return nil, domainerrors.Rewrap(err, "complete onboarding")
	}

	publishEvent(ctx, srv.publisher, srv.log(ctx), service.EventFarmOnboarded, userID, map[string]any{
		"userId": userID.String(),
		"farmId": farm.ID.String(),
	})

	return farm, nil
}

// issueTokens mints a pair for the user and records the refresh half in the ledger.
func (srv *sessionService) issueTokens(ctx context.Context, user *entity.User) (*entity.TokenPair, error) {
	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID, user.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	if err := srv.ledger.Store(ctx, user.ID, refreshToken); err != nil {
		return nil, errors.Wrap(err, "failed to store refresh token")
	}

	return &entity.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// normalizePhone treats an empty phone as absent.
func normalizePhone(phone *string) *string {
	if phone == nil || *phone == "" {
		return nil
	}

	return phone
}
