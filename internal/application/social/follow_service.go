package social

import (
	"context"

	"github.com/google/uuid"
	"github.com/guideshare/backend/internal/domain/identity"
	"github.com/guideshare/backend/internal/domain/social"
	"go.uber.org/zap"
)

// FollowService handles the social graph
type FollowService struct {
	followRepo social.FollowRepository
	userRepo   identity.UserRepository
	logger     *zap.Logger
}

// NewFollowService creates a new FollowService
func NewFollowService(
	followRepo social.FollowRepository,
	userRepo identity.UserRepository,
	logger *zap.Logger,
) *FollowService {
	return &FollowService{
		followRepo: followRepo,
		userRepo:   userRepo,
		logger:     logger,
	}
}

// Follow creates the edge follower -> followee. Repeats are no-op
// successes; the store absorbs the duplicate instead of us checking first.
func (s *FollowService) Follow(ctx context.Context, followerID, followeeID uuid.UUID) error {
	follow, err := social.NewFollow(followerID, followeeID)
	if err != nil {
		return err
	}

	// Followee must exist; FindByID yields NotFound otherwise
	if _, err := s.userRepo.FindByID(ctx, followeeID); err != nil {
		return err
	}

	if err := s.followRepo.Save(ctx, follow); err != nil {
		return err
	}

	s.logger.Info("Follow created",
		zap.String("follower_id", followerID.String()),
		zap.String("followee_id", followeeID.String()))

	return nil
}

// Unfollow removes the edge; a missing edge is still success
func (s *FollowService) Unfollow(ctx context.Context, followerID, followeeID uuid.UUID) error {
	return s.followRepo.Delete(ctx, followerID, followeeID)
}

// IsFollowing reports whether viewer follows target.
// A nil viewer (anonymous) is never following anyone.
func (s *FollowService) IsFollowing(ctx context.Context, viewerID *uuid.UUID, targetID uuid.UUID) (bool, error) {
	if viewerID == nil {
		return false, nil
	}
	return s.followRepo.Exists(ctx, *viewerID, targetID)
}

// Following returns the users the given user follows, newest edge first
func (s *FollowService) Following(ctx context.Context, userID uuid.UUID) ([]FollowedUser, error) {
	ids, err := s.followRepo.FolloweeIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []FollowedUser{}, nil
	}

	users, err := s.userRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]*identity.User, len(users))
	for _, user := range users {
		byID[user.ID] = user
	}

	// Keep the edge ordering from the follow store
	followed := make([]FollowedUser, 0, len(ids))
	for _, id := range ids {
		user, ok := byID[id]
		if !ok {
			continue
		}
		followed = append(followed, FollowedUser{
			ID:          user.ID,
			Username:    user.Username,
			DisplayName: user.PublicDisplayName(),
		})
	}
	return followed, nil
}
