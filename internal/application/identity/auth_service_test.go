package identity

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/guideshare/backend/internal/domain/identity"
	"github.com/guideshare/backend/internal/domain/shared"
	"github.com/guideshare/backend/internal/infrastructure/auth"
	"github.com/guideshare/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockUserRepository is a mock implementation of identity.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*identity.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*identity.User, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindAll(ctx context.Context, filter identity.UserFilter) ([]*identity.User, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]*identity.User), args.Get(1).(int64), args.Error(2)
}

func (m *MockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

func createTestUser(t *testing.T, username string) *identity.User {
	t.Helper()
	user, err := identity.NewUser(username, "Password123")
	require.NoError(t, err)
	return user
}

func createAuthService(userRepo *MockUserRepository, cooldown time.Duration) *AuthService {
	jwtService := auth.NewJWTService(config.AuthConfig{
		JWTSecret:         "test-secret-key-32-characters-long",
		JWTIssuer:         "test-issuer",
		JWTExpiresMinutes: 15,
	})

	return NewAuthService(userRepo, jwtService, cooldown, zap.NewNop())
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("registers new user", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("ExistsByUsername", ctx, "alice").Return(false, nil)
		userRepo.On("Create", ctx, mock.AnythingOfType("*identity.User")).Return(nil)

		svc := createAuthService(userRepo, 0)
		info, err := svc.Register(ctx, RegisterInput{Username: "alice", Password: "Password123", DisplayName: "Alice A."})

		require.NoError(t, err)
		assert.Equal(t, "alice", info.Username)
		assert.Equal(t, "Alice A.", info.DisplayName)
		assert.Equal(t, "USER", info.Role)
		userRepo.AssertExpectations(t)
	})

	t.Run("falls back to username without a display name", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("ExistsByUsername", ctx, "alice").Return(false, nil)
		userRepo.On("Create", ctx, mock.AnythingOfType("*identity.User")).Return(nil)

		svc := createAuthService(userRepo, 0)
		info, err := svc.Register(ctx, RegisterInput{Username: "alice", Password: "Password123"})

		require.NoError(t, err)
		assert.Equal(t, "alice", info.DisplayName)
	})

	t.Run("rejects oversized display name", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("ExistsByUsername", ctx, "alice").Return(false, nil)

		svc := createAuthService(userRepo, 0)
		_, err := svc.Register(ctx, RegisterInput{
			Username:    "alice",
			Password:    "Password123",
			DisplayName: strings.Repeat("n", 33),
		})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "VALIDATION_ERROR", domainErr.Code)
		userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("rejects occupied username", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("ExistsByUsername", ctx, "alice").Return(true, nil)

		svc := createAuthService(userRepo, 0)
		_, err := svc.Register(ctx, RegisterInput{Username: "alice", Password: "Password123"})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "CONFLICT", domainErr.Code)
		userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("rejects invalid username", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("ExistsByUsername", ctx, "ab").Return(false, nil)

		svc := createAuthService(userRepo, 0)
		_, err := svc.Register(ctx, RegisterInput{Username: "ab", Password: "Password123"})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "VALIDATION_ERROR", domainErr.Code)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("issues token for valid credentials", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		user := createTestUser(t, "alice")
		userRepo.On("FindByUsername", ctx, "alice").Return(user, nil)

		svc := createAuthService(userRepo, 0)
		result, err := svc.Login(ctx, LoginInput{Username: "alice", Password: "Password123"})

		require.NoError(t, err)
		assert.NotEmpty(t, result.Token)
		assert.True(t, result.ExpiresAt.After(time.Now()))
		assert.Equal(t, "alice", result.User.Username)
	})

	t.Run("unknown username and wrong password give the same error", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		user := createTestUser(t, "alice")
		userRepo.On("FindByUsername", ctx, "nobody").Return(nil, shared.ErrNotFound)
		userRepo.On("FindByUsername", ctx, "alice").Return(user, nil)

		svc := createAuthService(userRepo, 0)

		_, errUnknown := svc.Login(ctx, LoginInput{Username: "nobody", Password: "whatever1"})
		_, errWrongPass := svc.Login(ctx, LoginInput{Username: "alice", Password: "wrongpass"})

		require.Error(t, errUnknown)
		require.Error(t, errWrongPass)
		assert.Equal(t, errUnknown.Error(), errWrongPass.Error())
	})

	t.Run("rejects disabled account", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		user := createTestUser(t, "alice")
		user.SetEnabled(false)
		userRepo.On("FindByUsername", ctx, "alice").Return(user, nil)

		svc := createAuthService(userRepo, 0)
		_, err := svc.Login(ctx, LoginInput{Username: "alice", Password: "Password123"})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "UNAUTHORIZED", domainErr.Code)
	})

	t.Run("rejects banned account with forbidden", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		user := createTestUser(t, "alice")
		require.NoError(t, user.SetStatus(identity.StatusBanned))
		userRepo.On("FindByUsername", ctx, "alice").Return(user, nil)

		svc := createAuthService(userRepo, 0)
		_, err := svc.Login(ctx, LoginInput{Username: "alice", Password: "Password123"})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "FORBIDDEN", domainErr.Code)
	})
}

func TestAuthService_UpdateUsername(t *testing.T) {
	ctx := context.Background()

	t.Run("renames the account", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		user := createTestUser(t, "alice")
		userRepo.On("FindByID", ctx, user.ID).Return(user, nil)
		userRepo.On("ExistsByUsername", ctx, "alice2").Return(false, nil)
		userRepo.On("Update", ctx, user).Return(nil)

		svc := createAuthService(userRepo, 0)
		info, err := svc.UpdateUsername(ctx, user.ID, "alice2")

		require.NoError(t, err)
		assert.Equal(t, "alice2", info.Username)
		userRepo.AssertExpectations(t)
	})

	t.Run("rejects rename to own current name", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		user := createTestUser(t, "alice")
		userRepo.On("FindByID", ctx, user.ID).Return(user, nil)

		svc := createAuthService(userRepo, 0)
		_, err := svc.UpdateUsername(ctx, user.ID, "alice")

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_OPERATION", domainErr.Code)
		userRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("rejects occupied name", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		user := createTestUser(t, "alice")
		userRepo.On("FindByID", ctx, user.ID).Return(user, nil)
		userRepo.On("ExistsByUsername", ctx, "bob").Return(true, nil)

		svc := createAuthService(userRepo, 0)
		_, err := svc.UpdateUsername(ctx, user.ID, "bob")

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "CONFLICT", domainErr.Code)
	})

	t.Run("rejects non-active account", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		user := createTestUser(t, "alice")
		require.NoError(t, user.SetStatus(identity.StatusBanned))
		userRepo.On("FindByID", ctx, user.ID).Return(user, nil)

		svc := createAuthService(userRepo, 0)
		_, err := svc.UpdateUsername(ctx, user.ID, "alice2")

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "FORBIDDEN", domainErr.Code)
	})
}

func TestAuthService_UpdatePassword(t *testing.T) {
	ctx := context.Background()

	t.Run("changes password outside cooldown", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		user := createTestUser(t, "alice")
		changed := time.Now().Add(-30 * 24 * time.Hour)
		user.PasswordChangedAt = &changed
		userRepo.On("FindByID", ctx, user.ID).Return(user, nil)
		userRepo.On("Update", ctx, user).Return(nil)

		svc := createAuthService(userRepo, 7*24*time.Hour)
		err := svc.UpdatePassword(ctx, ChangePasswordInput{
			UserID:      user.ID,
			OldPassword: "Password123",
			NewPassword: "NewPassword456",
		})

		require.NoError(t, err)
		assert.True(t, user.VerifyPassword("NewPassword456"))
	})

	t.Run("rejects change inside cooldown", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		user := createTestUser(t, "alice")
		changed := time.Now().Add(-time.Hour)
		user.PasswordChangedAt = &changed
		userRepo.On("FindByID", ctx, user.ID).Return(user, nil)

		svc := createAuthService(userRepo, 7*24*time.Hour)
		err := svc.UpdatePassword(ctx, ChangePasswordInput{
			UserID:      user.ID,
			OldPassword: "Password123",
			NewPassword: "NewPassword456",
		})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_OPERATION", domainErr.Code)
	})

	t.Run("no cooldown when password never changed", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		user := createTestUser(t, "alice")
		userRepo.On("FindByID", ctx, user.ID).Return(user, nil)
		userRepo.On("Update", ctx, user).Return(nil)

		svc := createAuthService(userRepo, 7*24*time.Hour)
		err := svc.UpdatePassword(ctx, ChangePasswordInput{
			UserID:      user.ID,
			OldPassword: "Password123",
			NewPassword: "NewPassword456",
		})

		assert.NoError(t, err)
	})

	t.Run("rejects wrong current password", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		user := createTestUser(t, "alice")
		userRepo.On("FindByID", ctx, user.ID).Return(user, nil)

		svc := createAuthService(userRepo, 0)
		err := svc.UpdatePassword(ctx, ChangePasswordInput{
			UserID:      user.ID,
			OldPassword: "notmypassword",
			NewPassword: "NewPassword456",
		})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_OPERATION", domainErr.Code)
	})

	t.Run("rejects non-active account", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		user := createTestUser(t, "alice")
		require.NoError(t, user.SetStatus(identity.StatusBanned))
		userRepo.On("FindByID", ctx, user.ID).Return(user, nil)

		svc := createAuthService(userRepo, 0)
		err := svc.UpdatePassword(ctx, ChangePasswordInput{
			UserID:      user.ID,
			OldPassword: "Password123",
			NewPassword: "NewPassword456",
		})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "FORBIDDEN", domainErr.Code)
		userRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}
