package social

import (
	"context"

	"github.com/google/uuid"
	"github.com/guideshare/backend/internal/domain/guide"
	"github.com/guideshare/backend/internal/domain/identity"
	"github.com/guideshare/backend/internal/domain/social"
	"github.com/stretchr/testify/mock"
)

// MockFollowRepository is a mock implementation of social.FollowRepository
type MockFollowRepository struct {
	mock.Mock
}

func (m *MockFollowRepository) Save(ctx context.Context, f *social.Follow) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

func (m *MockFollowRepository) Delete(ctx context.Context, followerID, followeeID uuid.UUID) error {
	args := m.Called(ctx, followerID, followeeID)
	return args.Error(0)
}

func (m *MockFollowRepository) Exists(ctx context.Context, followerID, followeeID uuid.UUID) (bool, error) {
	args := m.Called(ctx, followerID, followeeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFollowRepository) FolloweeIDs(ctx context.Context, followerID uuid.UUID) ([]uuid.UUID, error) {
	args := m.Called(ctx, followerID)
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

func (m *MockFollowRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// MockLikeRepository is a mock implementation of social.LikeRepository
type MockLikeRepository struct {
	mock.Mock
}

func (m *MockLikeRepository) Save(ctx context.Context, l *social.Like) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockLikeRepository) Delete(ctx context.Context, userID, guideID uuid.UUID) error {
	args := m.Called(ctx, userID, guideID)
	return args.Error(0)
}

func (m *MockLikeRepository) Exists(ctx context.Context, userID, guideID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID, guideID)
	return args.Bool(0), args.Error(1)
}

func (m *MockLikeRepository) CountByGuideID(ctx context.Context, guideID uuid.UUID) (int64, error) {
	args := m.Called(ctx, guideID)
	return args.Get(0).(int64), args.Error(1)
}

// MockFavoriteRepository is a mock implementation of social.FavoriteRepository
type MockFavoriteRepository struct {
	mock.Mock
}

func (m *MockFavoriteRepository) Save(ctx context.Context, f *social.Favorite) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

func (m *MockFavoriteRepository) Delete(ctx context.Context, userID, guideID uuid.UUID) error {
	args := m.Called(ctx, userID, guideID)
	return args.Error(0)
}

func (m *MockFavoriteRepository) Exists(ctx context.Context, userID, guideID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID, guideID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFavoriteRepository) CountByGuideID(ctx context.Context, guideID uuid.UUID) (int64, error) {
	args := m.Called(ctx, guideID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFavoriteRepository) GuideIDsByUserID(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

// MockCheckInRepository is a mock implementation of social.CheckInRepository
type MockCheckInRepository struct {
	mock.Mock
}

func (m *MockCheckInRepository) Upsert(ctx context.Context, c *social.CheckIn) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCheckInRepository) FindByDay(ctx context.Context, userID, guideID uuid.UUID, day string) (*social.CheckIn, error) {
	args := m.Called(ctx, userID, guideID, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*social.CheckIn), args.Error(1)
}

func (m *MockCheckInRepository) FindByUserID(ctx context.Context, userID uuid.UUID, guideID *uuid.UUID) ([]*social.CheckIn, error) {
	args := m.Called(ctx, userID, guideID)
	return args.Get(0).([]*social.CheckIn), args.Error(1)
}

func (m *MockCheckInRepository) FindByGuideID(ctx context.Context, guideID uuid.UUID) ([]*social.CheckIn, error) {
	args := m.Called(ctx, guideID)
	return args.Get(0).([]*social.CheckIn), args.Error(1)
}

func (m *MockCheckInRepository) Exists(ctx context.Context, userID, guideID uuid.UUID, day string) (bool, error) {
	args := m.Called(ctx, userID, guideID, day)
	return args.Bool(0), args.Error(1)
}

func (m *MockCheckInRepository) CountDistinctUsers(ctx context.Context, guideID uuid.UUID) (int64, error) {
	args := m.Called(ctx, guideID)
	return args.Get(0).(int64), args.Error(1)
}

// MockGuideRepository is a mock implementation of guide.GuideRepository
type MockGuideRepository struct {
	mock.Mock
}

func (m *MockGuideRepository) Create(ctx context.Context, g *guide.Guide) error {
	args := m.Called(ctx, g)
	return args.Error(0)
}

func (m *MockGuideRepository) Update(ctx context.Context, g *guide.Guide) error {
	args := m.Called(ctx, g)
	return args.Error(0)
}

func (m *MockGuideRepository) FindByID(ctx context.Context, id uuid.UUID) (*guide.Guide, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*guide.Guide), args.Error(1)
}

func (m *MockGuideRepository) FindAll(ctx context.Context, filter guide.GuideFilter) ([]*guide.Guide, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]*guide.Guide), args.Get(1).(int64), args.Error(2)
}

func (m *MockGuideRepository) FindByAuthorIDs(ctx context.Context, authorIDs []uuid.UUID, offset, limit int) ([]*guide.Guide, int64, error) {
	args := m.Called(ctx, authorIDs, offset, limit)
	return args.Get(0).([]*guide.Guide), args.Get(1).(int64), args.Error(2)
}

func (m *MockGuideRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*guide.Guide, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]*guide.Guide), args.Error(1)
}

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
