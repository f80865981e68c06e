package identity

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/guideshare/backend/internal/domain/identity"
	"github.com/guideshare/backend/internal/domain/shared"
	"github.com/guideshare/backend/internal/infrastructure/auth"
	"go.uber.org/zap"
)

// AuthService handles registration, login and self-service profile updates
type AuthService struct {
	userRepo         identity.UserRepository
	jwtService       *auth.JWTService
	passwordCooldown time.Duration
	logger           *zap.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(
	userRepo identity.UserRepository,
	jwtService *auth.JWTService,
	passwordCooldown time.Duration,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		userRepo:         userRepo,
		jwtService:       jwtService,
		passwordCooldown: passwordCooldown,
		logger:           logger,
	}
}

// Register creates a new account with the USER role
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*UserInfo, error) {
	username := strings.TrimSpace(input.Username)

	// Case-insensitive occupied check; the unique index still catches
	// a concurrent insert below.
	exists, err := s.userRepo.ExistsByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("CONFLICT", "Username is already taken")
	}

	user, err := identity.NewUser(username, input.Password)
	if err != nil {
		return nil, err
	}
	if input.DisplayName != "" {
		if err := user.SetDisplayName(input.DisplayName); err != nil {
			return nil, err
		}
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("User registered",
		zap.String("username", user.Username),
		zap.String("user_id", user.ID.String()))

	info := ToUserInfo(user)
	return &info, nil
}

// Login authenticates a user and issues a token.
// Unknown usernames and wrong passwords yield the same error.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	user, err := s.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		s.logger.Warn("Login failed, unknown username", zap.String("username", input.Username))
		return nil, shared.NewDomainError("UNAUTHORIZED", "Invalid username or password")
	}

	if !user.VerifyPassword(input.Password) {
		s.logger.Warn("Login failed, wrong password", zap.String("username", input.Username))
		return nil, shared.NewDomainError("UNAUTHORIZED", "Invalid username or password")
	}

	if !user.CanLogin() {
		s.logger.Warn("Login attempt for disabled account", zap.String("username", input.Username))
		return nil, shared.NewDomainError("UNAUTHORIZED", "Account is disabled")
	}

	if !user.IsActive() {
		s.logger.Warn("Login attempt for non-active account",
			zap.String("username", input.Username),
			zap.Int("status", int(user.Status)))
		return nil, shared.NewDomainError("FORBIDDEN", "Account is not in good standing")
	}

	issued, err := s.jwtService.Issue(user.ID, user.Username, string(user.Role))
	if err != nil {
		s.logger.Error("Failed to issue token", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to issue authentication token")
	}

	s.logger.Info("User logged in",
		zap.String("username", user.Username),
		zap.String("user_id", user.ID.String()))

	return &LoginResult{
		Token:     issued.Token,
		ExpiresAt: issued.ExpiresAt,
		User:      ToUserInfo(user),
	}, nil
}

// GetCurrentUser returns the caller's own profile
func (s *AuthService) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*UserInfo, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	info := ToUserInfo(user)
	return &info, nil
}

// UpdateUsername renames the caller's account
func (s *AuthService) UpdateUsername(ctx context.Context, userID uuid.UUID, newUsername string) (*UserInfo, error) {
	newUsername = strings.TrimSpace(newUsername)

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !user.IsActive() {
		return nil, shared.NewDomainError("FORBIDDEN", "Account is not in good standing")
	}

	if user.Username == newUsername {
		return nil, shared.NewDomainError("INVALID_OPERATION", "New username matches the current one")
	}

	if !strings.EqualFold(user.Username, newUsername) {
		exists, err := s.userRepo.ExistsByUsername(ctx, newUsername)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainError("CONFLICT", "Username is already taken")
		}
	}

	if err := user.Rename(newUsername); err != nil {
		return nil, err
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("User renamed",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.Username))

	info := ToUserInfo(user)
	return &info, nil
}

// UpdatePassword changes the caller's password, subject to the change cooldown
func (s *AuthService) UpdatePassword(ctx context.Context, input ChangePasswordInput) error {
	user, err := s.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return err
	}

	if !user.IsActive() {
		return shared.NewDomainError("FORBIDDEN", "Account is not in good standing")
	}

	if s.passwordCooldown > 0 && user.PasswordChangedAt != nil {
		if time.Since(*user.PasswordChangedAt) < s.passwordCooldown {
			return shared.NewDomainError("INVALID_OPERATION", "Password was changed too recently")
		}
	}

	if err := user.ChangePassword(input.OldPassword, input.NewPassword); err != nil {
		return err
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return err
	}

	s.logger.Info("User password changed", zap.String("user_id", user.ID.String()))

	return nil
}
