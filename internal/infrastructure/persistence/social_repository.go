package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/guideshare/backend/internal/domain/shared"
	"github.com/guideshare/backend/internal/domain/social"
	"github.com/guideshare/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormFollowRepository implements FollowRepository using GORM
type GormFollowRepository struct {
	db *gorm.DB
}

// NewGormFollowRepository creates a new GormFollowRepository
func NewGormFollowRepository(db *gorm.DB) *GormFollowRepository {
	return &GormFollowRepository{db: db}
}

// Save inserts the edge. A concurrent duplicate lands on the composite
// primary key and is absorbed, never raced with an existence check.
func (r *GormFollowRepository) Save(ctx context.Context, f *social.Follow) error {
	model := &models.FollowModel{}
	model.FromDomain(f)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(model).Error
}

// Delete removes the edge, succeeding when it does not exist
func (r *GormFollowRepository) Delete(ctx context.Context, followerID, followeeID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Delete(&models.FollowModel{}).Error
}

// Exists reports whether the edge exists
func (r *GormFollowRepository) Exists(ctx context.Context, followerID, followeeID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.FollowModel{}).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// FolloweeIDs returns the users the given user follows, newest edge first
func (r *GormFollowRepository) FolloweeIDs(ctx context.Context, followerID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	if err := r.db.WithContext(ctx).
		Model(&models.FollowModel{}).
		Where("follower_id = ?", followerID).
		Order("created_at desc").
		Pluck("followee_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

// DeleteByUserID removes every edge where the user is the follower or
// the followee
func (r *GormFollowRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("follower_id = ? OR followee_id = ?", userID, userID).
		Delete(&models.FollowModel{}).Error
}

// GormLikeRepository implements LikeRepository using GORM
type GormLikeRepository struct {
	db *gorm.DB
}

// NewGormLikeRepository creates a new GormLikeRepository
func NewGormLikeRepository(db *gorm.DB) *GormLikeRepository {
	return &GormLikeRepository{db: db}
}

// Save inserts the mark, absorbing a duplicate on the primary key
func (r *GormLikeRepository) Save(ctx context.Context, l *social.Like) error {
	model := &models.LikeModel{}
	model.FromDomain(l)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(model).Error
}

// Delete removes the mark, succeeding when it does not exist
func (r *GormLikeRepository) Delete(ctx context.Context, userID, guideID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND guide_id = ?", userID, guideID).
		Delete(&models.LikeModel{}).Error
}

// Exists reports whether the mark exists
func (r *GormLikeRepository) Exists(ctx context.Context, userID, guideID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.LikeModel{}).
		Where("user_id = ? AND guide_id = ?", userID, guideID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// CountByGuideID returns the number of likes a guide has
func (r *GormLikeRepository) CountByGuideID(ctx context.Context, guideID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.LikeModel{}).
		Where("guide_id = ?", guideID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// GormFavoriteRepository implements FavoriteRepository using GORM
type GormFavoriteRepository struct {
	db *gorm.DB
}

// NewGormFavoriteRepository creates a new GormFavoriteRepository
func NewGormFavoriteRepository(db *gorm.DB) *GormFavoriteRepository {
	return &GormFavoriteRepository{db: db}
}

// Save inserts the mark, absorbing a duplicate on the primary key
func (r *GormFavoriteRepository) Save(ctx context.Context, f *social.Favorite) error {
	model := &models.FavoriteModel{}
	model.FromDomain(f)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(model).Error
}

// Delete removes the mark, succeeding when it does not exist
func (r *GormFavoriteRepository) Delete(ctx context.Context, userID, guideID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND guide_id = ?", userID, guideID).
		Delete(&models.FavoriteModel{}).Error
}

// Exists reports whether the mark exists
func (r *GormFavoriteRepository) Exists(ctx context.Context, userID, guideID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.FavoriteModel{}).
		Where("user_id = ? AND guide_id = ?", userID, guideID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// CountByGuideID returns the number of favorites a guide has
func (r *GormFavoriteRepository) CountByGuideID(ctx context.Context, guideID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.FavoriteModel{}).
		Where("guide_id = ?", guideID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// GuideIDsByUserID returns guides the user favorited, newest favorite first
func (r *GormFavoriteRepository) GuideIDsByUserID(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	if err := r.db.WithContext(ctx).
		Model(&models.FavoriteModel{}).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Pluck("guide_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

// GormCheckInRepository implements CheckInRepository using GORM
type GormCheckInRepository struct {
	db *gorm.DB
}

// NewGormCheckInRepository creates a new GormCheckInRepository
func NewGormCheckInRepository(db *gorm.DB) *GormCheckInRepository {
	return &GormCheckInRepository{db: db}
}

// Upsert inserts the check-in or updates the same-day row. The conflict
// target is the (user_id, guide_id, check_day) unique index; created_at
// is deliberately left out of the update set so the original row keeps
// its creation time.
func (r *GormCheckInRepository) Upsert(ctx context.Context, c *social.CheckIn) error {
	model := models.CheckInModelFromDomain(c)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "user_id"},
				{Name: "guide_id"},
				{Name: "check_day"},
			},
			DoUpdates: clause.AssignmentColumns([]string{"progress", "note", "updated_at"}),
		}).
		Create(model).Error
}

// FindByDay returns the user's check-in on the guide for that day
func (r *GormCheckInRepository) FindByDay(ctx context.Context, userID, guideID uuid.UUID, day string) (*social.CheckIn, error) {
	var model models.CheckInModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND guide_id = ? AND check_day = ?", userID, guideID, day).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByUserID returns a user's check-ins, optionally limited to one
// guide, newest day first
func (r *GormCheckInRepository) FindByUserID(ctx context.Context, userID uuid.UUID, guideID *uuid.UUID) ([]*social.CheckIn, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if guideID != nil {
		query = query.Where("guide_id = ?", *guideID)
	}

	var checkInModels []*models.CheckInModel
	if err := query.Order("check_day desc").Find(&checkInModels).Error; err != nil {
		return nil, err
	}
	return checkInModelsToDomain(checkInModels), nil
}

// FindByGuideID returns all check-ins on a guide, newest day first
func (r *GormCheckInRepository) FindByGuideID(ctx context.Context, guideID uuid.UUID) ([]*social.CheckIn, error) {
	var checkInModels []*models.CheckInModel
	if err := r.db.WithContext(ctx).
		Where("guide_id = ?", guideID).
		Order("check_day desc").
		Find(&checkInModels).Error; err != nil {
		return nil, err
	}
	return checkInModelsToDomain(checkInModels), nil
}

// Exists reports whether the user checked in on the guide that day
func (r *GormCheckInRepository) Exists(ctx context.Context, userID, guideID uuid.UUID, day string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.CheckInModel{}).
		Where("user_id = ? AND guide_id = ? AND check_day = ?", userID, guideID, day).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// CountDistinctUsers returns how many different users have ever checked
// in on the guide
func (r *GormCheckInRepository) CountDistinctUsers(ctx context.Context, guideID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.CheckInModel{}).
		Where("guide_id = ?", guideID).
		Distinct("user_id").
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func checkInModelsToDomain(checkInModels []*models.CheckInModel) []*social.CheckIn {
	checkIns := make([]*social.CheckIn, len(checkInModels))
	for i, model := range checkInModels {
		checkIns[i] = model.ToDomain()
	}
	return checkIns
}

// Ensure implementations satisfy the repository interfaces
var (
	_ social.FollowRepository   = (*GormFollowRepository)(nil)
	_ social.LikeRepository     = (*GormLikeRepository)(nil)
	_ social.FavoriteRepository = (*GormFavoriteRepository)(nil)
	_ social.CheckInRepository  = (*GormCheckInRepository)(nil)
)
