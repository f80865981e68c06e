package identity

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/guideshare/backend/internal/domain/identity"
	"github.com/guideshare/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// FollowPurger removes every follow edge touching a user, in both
// directions. Satisfied by the social follow repository.
type FollowPurger interface {
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
}

// UserService handles administrative user management
type UserService struct {
	userRepo     identity.UserRepository
	followPurger FollowPurger
	logger       *zap.Logger
}

// NewUserService creates a new UserService
func NewUserService(userRepo identity.UserRepository, followPurger FollowPurger, logger *zap.Logger) *UserService {
	return &UserService{
		userRepo:     userRepo,
		followPurger: followPurger,
		logger:       logger,
	}
}

// List returns users matching the filter with the total count
func (s *UserService) List(ctx context.Context, input ListUsersInput) ([]UserInfo, int64, error) {
	filter := identity.NewUserFilter()
	if input.Keyword != "" {
		filter = filter.WithKeyword(input.Keyword)
	}
	if input.Status != nil {
		status := identity.UserStatus(*input.Status)
		if status < identity.StatusActive || status > identity.StatusDeactivated {
			return nil, 0, shared.NewDomainError("VALIDATION_ERROR", "Unknown user status")
		}
		filter = filter.WithStatus(status)
	}
	if input.Page > 0 || input.PageSize > 0 {
		filter = filter.WithPagination(input.Page, input.PageSize)
	}

	users, total, err := s.userRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	return ToUserInfos(users), total, nil
}

// Get returns a single user by ID
func (s *UserService) Get(ctx context.Context, userID uuid.UUID) (*UserInfo, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	info := ToUserInfo(user)
	return &info, nil
}

// Update applies admin-editable fields (enabled flag, role)
func (s *UserService) Update(ctx context.Context, input AdminUpdateUserInput) (*UserInfo, error) {
	user, err := s.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Enabled != nil {
		user.SetEnabled(*input.Enabled)
	}
	if input.Role != nil {
		if err := user.SetRole(identity.Role(*input.Role)); err != nil {
			return nil, err
		}
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("User updated by admin", zap.String("user_id", user.ID.String()))

	info := ToUserInfo(user)
	return &info, nil
}

// SetStatus sets the account standing (active, banned, deactivated)
func (s *UserService) SetStatus(ctx context.Context, userID uuid.UUID, status int) (*UserInfo, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := user.SetStatus(identity.UserStatus(status)); err != nil {
		return nil, err
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("User status changed",
		zap.String("user_id", user.ID.String()),
		zap.Int("status", status))

	info := ToUserInfo(user)
	return &info, nil
}

// ResetPassword sets a new password without the change cooldown applying
func (s *UserService) ResetPassword(ctx context.Context, userID uuid.UUID, newPassword string) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := user.ResetPassword(newPassword); err != nil {
		return err
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return err
	}

	s.logger.Info("User password reset by admin", zap.String("user_id", user.ID.String()))

	return nil
}

// Deactivate marks the account deactivated instead of deleting the row
func (s *UserService) Deactivate(ctx context.Context, userID uuid.UUID) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	user.Deactivate()

	if err := s.userRepo.Update(ctx, user); err != nil {
		return err
	}

	if err := s.followPurger.DeleteByUserID(ctx, userID); err != nil {
		return err
	}

	s.logger.Info("User deactivated", zap.String("user_id", user.ID.String()))

	return nil
}

// EnsureAdmin creates the bootstrap admin account if it does not exist yet
func (s *UserService) EnsureAdmin(ctx context.Context, username, password string) error {
	existing, err := s.userRepo.FindByUsername(ctx, username)
	if err == nil {
		if !existing.IsAdmin() {
			if err := existing.SetRole(identity.RoleAdmin); err != nil {
				return err
			}
			if err := s.userRepo.Update(ctx, existing); err != nil {
				return err
			}
			s.logger.Info("Promoted existing user to admin", zap.String("username", username))
		}
		return nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return err
	}

	admin, err := identity.NewUser(username, password)
	if err != nil {
		return err
	}
	if err := admin.SetRole(identity.RoleAdmin); err != nil {
		return err
	}

	if err := s.userRepo.Create(ctx, admin); err != nil {
		// Lost a race with another instance doing the same bootstrap
		if errors.Is(err, shared.ErrConflict) {
			return nil
		}
		return err
	}

	s.logger.Info("Bootstrap admin created", zap.String("username", username))

	return nil
}
