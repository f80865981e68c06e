package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/guideshare/backend/internal/domain/guide"
	"github.com/guideshare/backend/internal/domain/shared"
	"github.com/guideshare/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormGuideRepository implements GuideRepository using GORM
type GormGuideRepository struct {
	db *gorm.DB
}

// NewGormGuideRepository creates a new GormGuideRepository
func NewGormGuideRepository(db *gorm.DB) *GormGuideRepository {
	return &GormGuideRepository{db: db}
}

// Create creates a new guide
func (r *GormGuideRepository) Create(ctx context.Context, g *guide.Guide) error {
	model := models.GuideModelFromDomain(g)
	return r.db.WithContext(ctx).Create(model).Error
}

// Update updates an existing guide, including its deleted flag
func (r *GormGuideRepository) Update(ctx context.Context, g *guide.Guide) error {
	model := models.GuideModelFromDomain(g)
	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByID finds a visible guide by ID. Logically deleted guides are
// reported as not found.
func (r *GormGuideRepository) FindByID(ctx context.Context, id uuid.UUID) (*guide.Guide, error) {
	var model models.GuideModel
	if err := r.db.WithContext(ctx).
		Where("id = ? AND deleted = ?", id, false).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll returns visible guides matching the filter, newest first
func (r *GormGuideRepository) FindAll(ctx context.Context, filter guide.GuideFilter) ([]*guide.Guide, int64, error) {
	var guideModels []*models.GuideModel
	var total int64

	query := r.db.WithContext(ctx).
		Model(&models.GuideModel{}).
		Where("deleted = ?", false)

	if filter.Category != nil {
		query = query.Where("category = ?", *filter.Category)
	}
	if filter.AuthorID != nil {
		query = query.Where("author_id = ?", *filter.AuthorID)
	}
	if filter.Keyword != "" {
		query = query.Where("title LIKE ?", "%"+filter.Keyword+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order := "created_at desc"
	if filter.Sort == guide.SortUpdated {
		order = "updated_at desc"
	}
	query = query.Order(order).
		Offset(filter.Offset()).
		Limit(filter.Limit())

	if err := query.Find(&guideModels).Error; err != nil {
		return nil, 0, err
	}

	return guideModelsToDomain(guideModels), total, nil
}

// FindByAuthorIDs returns visible guides by any of the authors, newest first
func (r *GormGuideRepository) FindByAuthorIDs(ctx context.Context, authorIDs []uuid.UUID, offset, limit int) ([]*guide.Guide, int64, error) {
	if len(authorIDs) == 0 {
		return []*guide.Guide{}, 0, nil
	}

	var guideModels []*models.GuideModel
	var total int64

	query := r.db.WithContext(ctx).
		Model(&models.GuideModel{}).
		Where("author_id IN ? AND deleted = ?", authorIDs, false)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Order("created_at desc").
		Offset(offset).
		Limit(limit).
		Find(&guideModels).Error; err != nil {
		return nil, 0, err
	}

	return guideModelsToDomain(guideModels), total, nil
}

// FindByIDs returns visible guides for the given IDs, unordered
func (r *GormGuideRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*guide.Guide, error) {
	if len(ids) == 0 {
		return []*guide.Guide{}, nil
	}

	var guideModels []*models.GuideModel
	if err := r.db.WithContext(ctx).
		Where("id IN ? AND deleted = ?", ids, false).
		Find(&guideModels).Error; err != nil {
		return nil, err
	}

	return guideModelsToDomain(guideModels), nil
}

func guideModelsToDomain(guideModels []*models.GuideModel) []*guide.Guide {
	guides := make([]*guide.Guide, len(guideModels))
	for i, model := range guideModels {
		guides[i] = model.ToDomain()
	}
	return guides
}

// GormCommentRepository implements CommentRepository using GORM
type GormCommentRepository struct {
	db *gorm.DB
}

// NewGormCommentRepository creates a new GormCommentRepository
func NewGormCommentRepository(db *gorm.DB) *GormCommentRepository {
	return &GormCommentRepository{db: db}
}

// Create creates a new comment
func (r *GormCommentRepository) Create(ctx context.Context, c *guide.Comment) error {
	model := models.CommentModelFromDomain(c)
	return r.db.WithContext(ctx).Create(model).Error
}

// FindByGuideID returns comments on a guide, oldest first
func (r *GormCommentRepository) FindByGuideID(ctx context.Context, guideID uuid.UUID) ([]*guide.Comment, error) {
	var commentModels []*models.CommentModel
	if err := r.db.WithContext(ctx).
		Where("guide_id = ?", guideID).
		Order("created_at asc").
		Find(&commentModels).Error; err != nil {
		return nil, err
	}

	comments := make([]*guide.Comment, len(commentModels))
	for i, model := range commentModels {
		comments[i] = model.ToDomain()
	}
	return comments, nil
}

// Ensure implementations satisfy the repository interfaces
var (
	_ guide.GuideRepository   = (*GormGuideRepository)(nil)
	_ guide.CommentRepository = (*GormCommentRepository)(nil)
)
