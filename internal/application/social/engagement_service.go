package social

import (
	"context"

	"github.com/google/uuid"
	"github.com/guideshare/backend/internal/domain/guide"
	"github.com/guideshare/backend/internal/domain/identity"
	"github.com/guideshare/backend/internal/domain/social"
	"go.uber.org/zap"
)

// EngagementService handles likes and favorites
type EngagementService struct {
	likeRepo     social.LikeRepository
	favoriteRepo social.FavoriteRepository
	guideRepo    guide.GuideRepository
	userRepo     identity.UserRepository
	logger       *zap.Logger
}

// NewEngagementService creates a new EngagementService
func NewEngagementService(
	likeRepo social.LikeRepository,
	favoriteRepo social.FavoriteRepository,
	guideRepo guide.GuideRepository,
	userRepo identity.UserRepository,
	logger *zap.Logger,
) *EngagementService {
	return &EngagementService{
		likeRepo:     likeRepo,
		favoriteRepo: favoriteRepo,
		guideRepo:    guideRepo,
		userRepo:     userRepo,
		logger:       logger,
	}
}

// Like marks a guide as liked. Repeats are no-op successes.
func (s *EngagementService) Like(ctx context.Context, userID, guideID uuid.UUID) error {
	if _, err := s.guideRepo.FindByID(ctx, guideID); err != nil {
		return err
	}

	if err := s.likeRepo.Save(ctx, social.NewLike(userID, guideID)); err != nil {
		return err
	}

	s.logger.Info("Guide liked",
		zap.String("user_id", userID.String()),
		zap.String("guide_id", guideID.String()))

	return nil
}

// Unlike removes the like; missing marks are still success
func (s *EngagementService) Unlike(ctx context.Context, userID, guideID uuid.UUID) error {
	return s.likeRepo.Delete(ctx, userID, guideID)
}

// Favorite marks a guide as favorited. Repeats are no-op successes.
func (s *EngagementService) Favorite(ctx context.Context, userID, guideID uuid.UUID) error {
	if _, err := s.guideRepo.FindByID(ctx, guideID); err != nil {
		return err
	}

	if err := s.favoriteRepo.Save(ctx, social.NewFavorite(userID, guideID)); err != nil {
		return err
	}

	s.logger.Info("Guide favorited",
		zap.String("user_id", userID.String()),
		zap.String("guide_id", guideID.String()))

	return nil
}

// Unfavorite removes the favorite; missing marks are still success
func (s *EngagementService) Unfavorite(ctx context.Context, userID, guideID uuid.UUID) error {
	return s.favoriteRepo.Delete(ctx, userID, guideID)
}

// MyFavorites returns the caller's favorited guides, newest favorite
// first, skipping guides deleted since they were favorited
func (s *EngagementService) MyFavorites(ctx context.Context, userID uuid.UUID) ([]FavoriteGuide, error) {
	guideIDs, err := s.favoriteRepo.GuideIDsByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(guideIDs) == 0 {
		return []FavoriteGuide{}, nil
	}

	guides, err := s.guideRepo.FindByIDs(ctx, guideIDs)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]*guide.Guide, len(guides))
	authorIDs := make([]uuid.UUID, 0, len(guides))
	authorSet := make(map[uuid.UUID]struct{}, len(guides))
	for _, g := range guides {
		byID[g.ID] = g
		if _, ok := authorSet[g.AuthorID]; !ok {
			authorSet[g.AuthorID] = struct{}{}
			authorIDs = append(authorIDs, g.AuthorID)
		}
	}

	names := make(map[uuid.UUID]string, len(authorIDs))
	if len(authorIDs) > 0 {
		users, err := s.userRepo.FindByIDs(ctx, authorIDs)
		if err != nil {
			s.logger.Warn("Failed to resolve author names", zap.Error(err))
		} else {
			for _, user := range users {
				names[user.ID] = user.PublicDisplayName()
			}
		}
	}

	// Keep the favorite ordering from the store
	favorites := make([]FavoriteGuide, 0, len(guideIDs))
	for _, id := range guideIDs {
		g, ok := byID[id]
		if !ok || !g.IsVisible() {
			continue
		}
		favorites = append(favorites, FavoriteGuide{
			ID:         g.ID,
			AuthorID:   g.AuthorID,
			AuthorName: names[g.AuthorID],
			Title:      g.Title,
			Category:   string(g.Category),
			CreatedAt:  g.CreatedAt,
		})
	}
	return favorites, nil
}
