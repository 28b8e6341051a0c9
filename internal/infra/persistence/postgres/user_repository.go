package postgres

import (
	"context"

	"farmhub/internal/domain/entity"
	domainerrors "farmhub/internal/domain/errors"
	"farmhub/internal/domain/repository"
	"farmhub/internal/infra/persistence/model"
	"farmhub/internal/infra/persistence/postgres/query"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gen"
	"gorm.io/gorm"
)

// userRepository implements the domain.UserRepository interface.
type userRepository struct {
	q *query.Query
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		q: query.Use(db),
	}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return repo.findOne(ctx, "find user by id", repo.q.UserModel.ID.Eq(id))
}

// FindByEmail retrieves a single user by their email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return repo.findOne(ctx, "find user by email", repo.q.UserModel.Email.Eq(email))
}

// FindByPhone retrieves a single user by their phone number.
func (repo *userRepository) FindByPhone(ctx context.Context, phone string) (*entity.User, error) {
	return repo.findOne(ctx, "find user by phone", repo.q.UserModel.Phone.Eq(phone))
}

func (repo *userRepository) findOne(ctx context.Context, op string, cond gen.Condition) (*entity.User, error) {
	userM, err := repo.q.UserModel.WithContext(ctx).Where(cond).First()
	if err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, op)
	}

	// Map the persistence model back to a pure domain entity before returning.
	return toUserDomain(userM), nil
}

// List returns every user, newest first.
func (repo *userRepository) List(ctx context.Context) ([]*entity.User, error) {
	rows, err := repo.q.UserModel.WithContext(ctx).Order(repo.q.UserModel.CreatedAt.Desc()).Find()
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "list users")
	}

	users := make([]*entity.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, toUserDomain(row))
	}

	return users, nil
}

// Create persists a new user entity to the database.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.q.UserModel.WithContext(ctx).Create(userM); err != nil {
		return mapUserWriteError(err, "create user")
	}

	// Update the user entity with the generated ID and timestamps
	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// Update modifies an existing user entity in the database.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	u := repo.q.UserModel
	result, err := u.WithContext(ctx).
		Select(u.Email, u.Phone, u.Password, u.FirstName, u.LastName, u.Role, u.IsOnboarding, u.UpdatedAt).
		Where(u.ID.Eq(user.ID)).
		Updates(userM)
	if err != nil {
		return mapUserWriteError(err, "update user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// Delete removes the user and, through FK cascades, everything they own.
func (repo *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := repo.q.UserModel.WithContext(ctx).Where(repo.q.UserModel.ID.Eq(id)).Delete()
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "delete user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// mapUserWriteError converts PostgreSQL errors to domain errors.
func mapUserWriteError(err error, op string) error {
	if constraint, ok := uniqueViolationConstraint(err); ok && constraint == constraintUsersPhone {
		return domainerrors.ErrPhoneAlreadyExists.WrapMessage(op)
	}
	if isUniqueConstraintViolation(err) {
		return domainerrors.ErrUserAlreadyExists.WrapMessage(op)
	}
	if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
		return domainerrors.ErrBadRequest.WithMessage("missing or invalid user information").WrapMessage(op)
	}

	// For other database errors, return a generic database error
	return domainerrors.NewDatabaseExecuteError(err, op)
}

func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:           data.ID,
		Email:        data.Email,
		Phone:        data.Phone,
		PasswordHash: data.Password,
		FirstName:    data.FirstName,
		LastName:     data.LastName,
		Role:         entity.Role(data.Role),
		IsOnboarding: data.IsOnboarding,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	role := data.Role
	if role == "" {
		role = entity.RoleUser
	}

	return &model.UserModel{
		ID:           data.ID,
		Email:        data.Email,
		Phone:        data.Phone,
		Password:     data.PasswordHash,
		FirstName:    data.FirstName,
		LastName:     data.LastName,
		Role:         role.String(),
		IsOnboarding: data.IsOnboarding,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func toUserSummary(data *model.UserModel) *entity.UserSummary {
	if data == nil {
		return nil
	}

	return &entity.UserSummary{
		ID:        data.ID,
		Email:     data.Email,
		FirstName: data.FirstName,
		LastName:  data.LastName,
	}
}
