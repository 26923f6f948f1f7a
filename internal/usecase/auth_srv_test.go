package usecase

import (
	"context"
	"testing"

	"property-hub/internal/data/entity"
	"property-hub/internal/data/repository"
	"property-hub/internal/dto/request"
	"property-hub/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *mockUserRepo) Update(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

type mockSessionRepo struct {
	mock.Mock
}

func (m *mockSessionRepo) Create(ctx context.Context, session *entity.Session) error {
	return m.Called(ctx, session).Error(0)
}

func (m *mockSessionRepo) FindValidSession(ctx context.Context, token string) (*entity.Session, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Session), args.Error(1)
}

func (m *mockSessionRepo) Revoke(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}

func (m *mockSessionRepo) RevokeAllUserSessions(ctx context.Context, userID uuid.UUID) error {
	return m.Called(ctx, userID).Error(0)
}

func newAuthService(users *mockUserRepo, sessions *mockSessionRepo) AuthService {
	repo := &repository.Repository{User: users, Session: sessions}
	config := &utils.Config{Session: utils.SessionConfig{ExpiryHours: 24}}
	return NewAuthService(repo, config, zap.NewNop())
}

func TestRegisterCreatesTenantWithHashedPassword(t *testing.T) {
	users := new(mockUserRepo)
	users.On("FindByEmail", mock.Anything, "new@example.com").Return(nil, nil)
	users.On("Create", mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
		return u.Role == entity.RoleTenant &&
			u.IsActive &&
			u.PasswordHash != "" &&
			u.PasswordHash != "secret-password" &&
			utils.CheckPasswordHash("secret-password", u.PasswordHash)
	})).Return(nil).Once()

	sessions := new(mockSessionRepo)
	sessions.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := newAuthService(users, sessions)

	resp, err := svc.Register(context.Background(), &request.RegisterRequest{
		Email:    "new@example.com",
		Password: "secret-password",
		FullName: "New Tenant",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.RoleTenant, resp.User.Role)
	assert.NotEmpty(t, resp.Token)
	users.AssertExpectations(t)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	users := new(mockUserRepo)
	users.On("FindByEmail", mock.Anything, "taken@example.com").Return(&entity.User{}, nil)

	svc := newAuthService(users, new(mockSessionRepo))

	_, err := svc.Register(context.Background(), &request.RegisterRequest{
		Email:    "taken@example.com",
		Password: "secret-password",
		FullName: "Somebody",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLoginRejectsBadPassword(t *testing.T) {
	hash, err := utils.HashPassword("right-password")
	require.NoError(t, err)

	users := new(mockUserRepo)
	users.On("FindByEmail", mock.Anything, "user@example.com").Return(&entity.User{
		Email:        "user@example.com",
		PasswordHash: hash,
		IsActive:     true,
	}, nil)

	sessions := new(mockSessionRepo)
	svc := newAuthService(users, sessions)

	_, err = svc.Login(context.Background(), &request.LoginRequest{
		Email:    "user@example.com",
		Password: "wrong-password",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid credentials")
	sessions.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLoginRejectsInactiveAccount(t *testing.T) {
	hash, err := utils.HashPassword("right-password")
	require.NoError(t, err)

	users := new(mockUserRepo)
	users.On("FindByEmail", mock.Anything, "user@example.com").Return(&entity.User{
		Email:        "user@example.com",
		PasswordHash: hash,
		IsActive:     false,
	}, nil)

	svc := newAuthService(users, new(mockSessionRepo))

	_, err = svc.Login(context.Background(), &request.LoginRequest{
		Email:    "user@example.com",
		Password: "right-password",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "inactive")
}

func TestLoginIssuesSessionToken(t *testing.T) {
	hash, err := utils.HashPassword("right-password")
	require.NoError(t, err)

	userID := uuid.New()
	users := new(mockUserRepo)
	users.On("FindByEmail", mock.Anything, "user@example.com").Return(&entity.User{
		Base:         entity.Base{ID: userID},
		Email:        "user@example.com",
		PasswordHash: hash,
		IsActive:     true,
	}, nil)

	sessions := new(mockSessionRepo)
	sessions.On("Create", mock.Anything, mock.MatchedBy(func(s *entity.Session) bool {
		return s.UserID == userID && s.Token != uuid.Nil
	})).Return(nil).Once()

	svc := newAuthService(users, sessions)

	resp, err := svc.Login(context.Background(), &request.LoginRequest{
		Email:    "user@example.com",
		Password: "right-password",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Token)
	require.NotNil(t, resp.ExpiresAt)
	sessions.AssertExpectations(t)
}
