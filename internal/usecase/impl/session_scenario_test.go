package impl

import (
	"context"
	"net/http"
	"sort"
	"sync"
	"testing"
	"time"

	"farmhub/config"
	"farmhub/internal/domain/entity"
	domainerrors "farmhub/internal/domain/errors"
	"farmhub/internal/domain/repository"
	"farmhub/internal/domain/service"
	"farmhub/internal/infra/auth"
	mockSvc "farmhub/internal/mocks/service"
	"farmhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// memoryUserRepo is an in-memory UserRepository enforcing unique email and phone.
type memoryUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*entity.User
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{users: map[uuid.UUID]*entity.User{}}
}

func (r *memoryUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if user, ok := r.users[id]; ok {
		clone := *user

		return &clone, nil
	}

	return nil, repository.ErrUserNotFound
}

func (r *memoryUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	return r.findBy(func(u *entity.User) bool { return u.Email == email })
}

func (r *memoryUserRepo) FindByPhone(_ context.Context, phone string) (*entity.User, error) {
	return r.findBy(func(u *entity.User) bool { return u.Phone != nil && *u.Phone == phone })
}

func (r *memoryUserRepo) findBy(match func(*entity.User) bool) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if match(user) {
			clone := *user

			return &clone, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *memoryUserRepo) List(_ context.Context) ([]*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users := make([]*entity.User, 0, len(r.users))
	for _, user := range r.users {
		users = append(users, user)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].CreatedAt.After(users[j].CreatedAt) })

	return users, nil
}

func (r *memoryUserRepo) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Email == user.Email {
			return domainerrors.ErrUserAlreadyExists
		}
		if user.Phone != nil && existing.Phone != nil && *existing.Phone == *user.Phone {
			return domainerrors.ErrPhoneAlreadyExists
		}
	}

	user.ID = uuid.New()
	user.CreatedAt = time.Now()
	clone := *user
	r.users[user.ID] = &clone

	return nil
}

func (r *memoryUserRepo) Update(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	clone := *user
	r.users[user.ID] = &clone

	return nil
}

func (r *memoryUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[id]; !ok {
		return repository.ErrUserNotFound
	}
	delete(r.users, id)

	return nil
}

// memoryRefreshTokenRepo is an in-memory RefreshTokenRepository.
type memoryRefreshTokenRepo struct {
	mu     sync.Mutex
	tokens []*entity.RefreshToken
}

func (r *memoryRefreshTokenRepo) Create(_ context.Context, token *entity.RefreshToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	token.ID = uuid.New()
	token.CreatedAt = time.Now()
	r.tokens = append(r.tokens, token)

	return nil
}

func (r *memoryRefreshTokenRepo) FindLiveByUserID(_ context.Context, userID uuid.UUID, now time.Time) ([]*entity.RefreshToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var live []*entity.RefreshToken
	for _, token := range r.tokens {
		if token.UserID == userID && token.IsLive(now) {
			live = append(live, token)
		}
	}

	return live, nil
}

func (r *memoryRefreshTokenRepo) DeleteExpiredByUserID(_ context.Context, userID uuid.UUID, now time.Time) error {
	return r.deleteWhere(func(t *entity.RefreshToken) bool { return t.UserID == userID && t.ExpiresAt.Before(now) })
}

func (r *memoryRefreshTokenRepo) DeleteByUserID(_ context.Context, userID uuid.UUID) error {
	return r.deleteWhere(func(t *entity.RefreshToken) bool { return t.UserID == userID })
}

func (r *memoryRefreshTokenRepo) deleteWhere(match func(*entity.RefreshToken) bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.tokens[:0]
	for _, token := range r.tokens {
		if !match(token) {
			kept = append(kept, token)
		}
	}
	r.tokens = kept

	return nil
}

func (r *memoryRefreshTokenRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.tokens)
}

type sessionScenario struct {
	service      usecase.SessionUsecase
	tokenService service.TokenService
	userRepo     *memoryUserRepo
	tokenRepo    *memoryRefreshTokenRepo
}

func newSessionScenario(t *testing.T) sessionScenario {
	t.Helper()

	cfg := &config.Config{
		Auth: &config.AuthConfig{BcryptCost: 4},
		JWT: &config.JWTConfig{
			Access:  config.TokenConfig{Secret: "access-secret", Expiration: 15 * time.Minute},
			Refresh: config.TokenConfig{Secret: "refresh-secret", Expiration: 7 * 24 * time.Hour},
		},
	}

	hasher, err := auth.NewBcryptHasher(auth.BcryptHasherParams{Config: cfg})
	require.NoError(t, err)
	tokenService, err := auth.NewJWTService(auth.JWTServiceParams{Config: cfg})
	require.NoError(t, err)

	userRepo := newMemoryUserRepo()
	tokenRepo := &memoryRefreshTokenRepo{}
	logger := newDiscardLogger()

	publisher := mockSvc.NewMockEventPublisher(t)
	publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Maybe()

	ledger := NewRefreshTokenLedger(RefreshTokenLedgerParams{
		RefreshTokenRepo: tokenRepo,
		Hasher:           hasher,
		TokenService:     tokenService,
		Logger:           logger,
	})

	svc := NewSessionService(SessionServiceParams{
		UserRepo:     userRepo,
		Ledger:       ledger,
		Hasher:       hasher,
		TokenService: tokenService,
		Publisher:    publisher,
		Logger:       logger,
	})

	return sessionScenario{
		service:      svc,
		tokenService: tokenService,
		userRepo:     userRepo,
		tokenRepo:    tokenRepo,
	}
}

func TestSessionService_FullLifecycle(t *testing.T) {
	s := newSessionScenario(t)
	ctx := context.Background()

	registered, err := s.service.Register(ctx, &usecase.RegisterInput{
		Email:     "a@x.com",
		Password:  "pw123456",
		FirstName: "A",
		LastName:  "B",
	})
	require.NoError(t, err)
	require.NotEmpty(t, registered.AccessToken)
	require.NotEmpty(t, registered.RefreshToken)

	login, err := s.service.Login(ctx, &usecase.LoginInput{Email: "a@x.com", Password: "pw123456"})
	require.NoError(t, err)

	registeredID, err := s.tokenService.DecodeSubject(registered.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, registeredID, login.User.ID)
	assert.Empty(t, login.User.PasswordHash)
	assert.Equal(t, entity.RoleUser, login.User.Role)
	assert.True(t, login.User.IsOnboarding)

	_, err = s.service.Login(ctx, &usecase.LoginInput{Email: "a@x.com", Password: "wrongpw"})
	requireAppError(t, err, domainerrors.ErrInvalidCredentials, http.StatusUnauthorized)

	refreshed, err := s.service.Refresh(ctx, login.User.ID, login.Tokens.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, login.Tokens.AccessToken, refreshed.AccessToken)
	assert.NotEqual(t, login.Tokens.RefreshToken, refreshed.RefreshToken)

	// Additive rotation: the consumed token keeps working until it expires.
	_, err = s.service.Refresh(ctx, login.User.ID, login.Tokens.RefreshToken)
	require.NoError(t, err)

	require.NoError(t, s.service.Logout(ctx, login.User.ID))
	assert.Zero(t, s.tokenRepo.count())

	_, err = s.service.Refresh(ctx, login.User.ID, refreshed.RefreshToken)
	requireAppError(t, err, domainerrors.ErrRefreshTokenInvalid, http.StatusForbidden)

	// Logging out twice is harmless.
	require.NoError(t, s.service.Logout(ctx, login.User.ID))
}

func TestSessionService_LoginErrorsDoNotLeakCause(t *testing.T) {
	s := newSessionScenario(t)
	ctx := context.Background()

	_, err := s.service.Register(ctx, &usecase.RegisterInput{Email: "a@x.com", Password: "pw123456", FirstName: "A", LastName: "B"})
	require.NoError(t, err)

	_, unknownErr := s.service.Login(ctx, &usecase.LoginInput{Email: "nobody@x.com", Password: "pw123456"})
	_, wrongErr := s.service.Login(ctx, &usecase.LoginInput{Email: "a@x.com", Password: "nope"})

	unknown := requireAppError(t, unknownErr, domainerrors.ErrInvalidCredentials, http.StatusUnauthorized)
	wrong := requireAppError(t, wrongErr, domainerrors.ErrInvalidCredentials, http.StatusUnauthorized)
	assert.Equal(t, "Invalid credentials", unknown.Message())
	assert.Equal(t, unknown.Message(), wrong.Message())
}

func TestSessionService_LoginByPhone(t *testing.T) {
	s := newSessionScenario(t)
	ctx := context.Background()
	phone := "+15550001"

	_, err := s.service.Register(ctx, &usecase.RegisterInput{Email: "a@x.com", Phone: &phone, Password: "pw123456", FirstName: "A", LastName: "B"})
	require.NoError(t, err)

	login, err := s.service.Login(ctx, &usecase.LoginInput{Phone: phone, Password: "pw123456"})
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", login.User.Email)

	_, err = s.service.Login(ctx, &usecase.LoginInput{Password: "pw123456"})
	requireAppError(t, err, domainerrors.ErrInvalidCredentials, http.StatusUnauthorized)
}

func TestSessionService_RegisterConflicts(t *testing.T) {
	s := newSessionScenario(t)
	ctx := context.Background()
	phone := "+15550001"

	_, err := s.service.Register(ctx, &usecase.RegisterInput{Email: "a@x.com", Phone: &phone, Password: "pw123456", FirstName: "A", LastName: "B"})
	require.NoError(t, err)

	_, err = s.service.Register(ctx, &usecase.RegisterInput{Email: "a@x.com", Password: "pw123456", FirstName: "A", LastName: "B"})
	requireAppError(t, err, domainerrors.ErrUserAlreadyExists, http.StatusConflict)

	_, err = s.service.Register(ctx, &usecase.RegisterInput{Email: "c@x.com", Phone: &phone, Password: "pw123456", FirstName: "C", LastName: "D"})
	requireAppError(t, err, domainerrors.ErrPhoneAlreadyExists, http.StatusConflict)

	empty := ""
	_, err = s.service.Register(ctx, &usecase.RegisterInput{Email: "d@x.com", Phone: &empty, Password: "pw123456", FirstName: "D", LastName: "E"})
	require.NoError(t, err)
}

func TestSessionService_RefreshRejectsForeignAndTamperedTokens(t *testing.T) {
	s := newSessionScenario(t)
	ctx := context.Background()

	_, err := s.service.Register(ctx, &usecase.RegisterInput{Email: "a@x.com", Password: "pw123456", FirstName: "A", LastName: "B"})
	require.NoError(t, err)
	_, err = s.service.Register(ctx, &usecase.RegisterInput{Email: "b@x.com", Password: "pw123456", FirstName: "B", LastName: "C"})
	require.NoError(t, err)

	alice, err := s.service.Login(ctx, &usecase.LoginInput{Email: "a@x.com", Password: "pw123456"})
	require.NoError(t, err)
	bob, err := s.service.Login(ctx, &usecase.LoginInput{Email: "b@x.com", Password: "pw123456"})
	require.NoError(t, err)

	_, err = s.service.Refresh(ctx, alice.User.ID, bob.Tokens.RefreshToken)
	requireAppError(t, err, domainerrors.ErrRefreshTokenInvalid, http.StatusForbidden)

	tampered := alice.Tokens.RefreshToken[:len(alice.Tokens.RefreshToken)-2] + "xx"
	_, err = s.service.Refresh(ctx, alice.User.ID, tampered)
	requireAppError(t, err, domainerrors.ErrRefreshTokenInvalid, http.StatusForbidden)

	_, err = s.service.Refresh(ctx, uuid.New(), alice.Tokens.RefreshToken)
	requireAppError(t, err, domainerrors.ErrRefreshTokenInvalid, http.StatusForbidden)
}
