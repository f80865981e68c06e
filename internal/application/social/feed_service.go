package social

import (
	"context"

	"github.com/google/uuid"
	"github.com/guideshare/backend/internal/domain/guide"
	"github.com/guideshare/backend/internal/domain/identity"
	"github.com/guideshare/backend/internal/domain/social"
	"go.uber.org/zap"
)

// FeedService assembles the reverse-chronological followee feed
type FeedService struct {
	followRepo   social.FollowRepository
	guideRepo    guide.GuideRepository
	userRepo     identity.UserRepository
	likeRepo     social.LikeRepository
	favoriteRepo social.FavoriteRepository
	logger       *zap.Logger
}

// NewFeedService creates a new FeedService
func NewFeedService(
	followRepo social.FollowRepository,
	guideRepo guide.GuideRepository,
	userRepo identity.UserRepository,
	likeRepo social.LikeRepository,
	favoriteRepo social.FavoriteRepository,
	logger *zap.Logger,
) *FeedService {
	return &FeedService{
		followRepo:   followRepo,
		guideRepo:    guideRepo,
		userRepo:     userRepo,
		likeRepo:     likeRepo,
		favoriteRepo: favoriteRepo,
		logger:       logger,
	}
}

// Feed returns guides by the user's followees, newest first. A user
// following nobody gets an empty page without touching the guide store.
func (s *FeedService) Feed(ctx context.Context, userID uuid.UUID, offset, limit int) ([]FeedItem, int64, error) {
	followeeIDs, err := s.followRepo.FolloweeIDs(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	if len(followeeIDs) == 0 {
		return []FeedItem{}, 0, nil
	}

	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	guides, total, err := s.guideRepo.FindByAuthorIDs(ctx, followeeIDs, offset, limit)
	if err != nil {
		return nil, 0, err
	}

	names := s.authorNames(ctx, guides)

	items := make([]FeedItem, len(guides))
	for i, g := range guides {
		likeCount, err := s.likeRepo.CountByGuideID(ctx, g.ID)
		if err != nil {
			return nil, 0, err
		}
		favoriteCount, err := s.favoriteRepo.CountByGuideID(ctx, g.ID)
		if err != nil {
			return nil, 0, err
		}
		items[i] = FeedItem{
			ID:            g.ID,
			AuthorID:      g.AuthorID,
			AuthorName:    names[g.AuthorID],
			Title:         g.Title,
			Category:      string(g.Category),
			LikeCount:     likeCount,
			FavoriteCount: favoriteCount,
			CreatedAt:     g.CreatedAt,
		}
	}
	return items, total, nil
}

func (s *FeedService) authorNames(ctx context.Context, guides []*guide.Guide) map[uuid.UUID]string {
	names := make(map[uuid.UUID]string)
	if len(guides) == 0 {
		return names
	}

	idSet := make(map[uuid.UUID]struct{}, len(guides))
	ids := make([]uuid.UUID, 0, len(guides))
	for _, g := range guides {
		if _, ok := idSet[g.AuthorID]; !ok {
			idSet[g.AuthorID] = struct{}{}
			ids = append(ids, g.AuthorID)
		}
	}

	users, err := s.userRepo.FindByIDs(ctx, ids)
	if err != nil {
		s.logger.Warn("Failed to resolve feed author names", zap.Error(err))
		return names
	}
	for _, user := range users {
		names[user.ID] = user.PublicDisplayName()
	}
	return names
}
