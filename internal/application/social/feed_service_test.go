package social

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/guideshare/backend/internal/domain/guide"
	"github.com/guideshare/backend/internal/domain/identity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type feedMocks struct {
	followRepo   *MockFollowRepository
	guideRepo    *MockGuideRepository
	userRepo     *MockUserRepository
	likeRepo     *MockLikeRepository
	favoriteRepo *MockFavoriteRepository
}

func newFeedService() (*FeedService, *feedMocks) {
	mocks := &feedMocks{
		followRepo:   new(MockFollowRepository),
		guideRepo:    new(MockGuideRepository),
		userRepo:     new(MockUserRepository),
		likeRepo:     new(MockLikeRepository),
		favoriteRepo: new(MockFavoriteRepository),
	}
	svc := NewFeedService(
		mocks.followRepo,
		mocks.guideRepo,
		mocks.userRepo,
		mocks.likeRepo,
		mocks.favoriteRepo,
		zap.NewNop(),
	)
	return svc, mocks
}

func TestFeedService_Feed(t *testing.T) {
	ctx := context.Background()

	t.Run("no followees short-circuits without touching guides", func(t *testing.T) {
		svc, mocks := newFeedService()
		userID := uuid.New()
		mocks.followRepo.On("FolloweeIDs", ctx, userID).Return([]uuid.UUID{}, nil)

		items, total, err := svc.Feed(ctx, userID, 0, 20)

		require.NoError(t, err)
		assert.Empty(t, items)
		assert.Equal(t, int64(0), total)
		mocks.guideRepo.AssertNotCalled(t, "FindByAuthorIDs", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("returns followee guides with counts", func(t *testing.T) {
		svc, mocks := newFeedService()
		author := newTestUser(t, "followee")
		userID := uuid.New()
		g, err := guide.NewGuide(author.ID, "New route", guide.CategoryTravel, "", "# body")
		require.NoError(t, err)

		mocks.followRepo.On("FolloweeIDs", ctx, userID).
			Return([]uuid.UUID{author.ID}, nil)
		mocks.guideRepo.On("FindByAuthorIDs", ctx, []uuid.UUID{author.ID}, 0, 20).
			Return([]*guide.Guide{g}, int64(1), nil)
		mocks.userRepo.On("FindByIDs", ctx, []uuid.UUID{author.ID}).
			Return([]*identity.User{author}, nil)
		mocks.likeRepo.On("CountByGuideID", ctx, g.ID).Return(int64(7), nil)
		mocks.favoriteRepo.On("CountByGuideID", ctx, g.ID).Return(int64(4), nil)

		items, total, err := svc.Feed(ctx, userID, 0, 20)

		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, items, 1)
		assert.Equal(t, "New route", items[0].Title)
		assert.Equal(t, "followee", items[0].AuthorName)
		assert.Equal(t, int64(7), items[0].LikeCount)
		assert.Equal(t, int64(4), items[0].FavoriteCount)
	})

	t.Run("normalizes paging bounds", func(t *testing.T) {
		svc, mocks := newFeedService()
		author := newTestUser(t, "followee")
		userID := uuid.New()

		mocks.followRepo.On("FolloweeIDs", ctx, userID).
			Return([]uuid.UUID{author.ID}, nil)
		// offset floored at 0, limit capped at 100
		mocks.guideRepo.On("FindByAuthorIDs", ctx, []uuid.UUID{author.ID}, 0, 100).
			Return([]*guide.Guide{}, int64(0), nil)

		_, _, err := svc.Feed(ctx, userID, -5, 500)

		require.NoError(t, err)
		mocks.guideRepo.AssertExpectations(t)
	})

	t.Run("zero limit defaults to 20", func(t *testing.T) {
		svc, mocks := newFeedService()
		author := newTestUser(t, "followee")
		userID := uuid.New()

		mocks.followRepo.On("FolloweeIDs", ctx, userID).
			Return([]uuid.UUID{author.ID}, nil)
		mocks.guideRepo.On("FindByAuthorIDs", ctx, []uuid.UUID{author.ID}, 0, 20).
			Return([]*guide.Guide{}, int64(0), nil)

		_, _, err := svc.Feed(ctx, userID, 0, 0)

		require.NoError(t, err)
		mocks.guideRepo.AssertExpectations(t)
	})
}
