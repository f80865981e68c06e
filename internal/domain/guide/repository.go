package guide

import (
	"context"

	"github.com/google/uuid"
)

// GuideRepository defines the interface for guide persistence.
// All read methods exclude logically deleted guides unless noted.
type GuideRepository interface {
	// Create creates a new guide
	Create(ctx context.Context, g *Guide) error

	// Update updates an existing guide, including its deleted flag
	Update(ctx context.Context, g *Guide) error

	// FindByID finds a visible guide by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Guide, error)

	// FindAll returns visible guides matching the filter, newest first
	FindAll(ctx context.Context, filter GuideFilter) ([]*Guide, int64, error)

	// FindByAuthorIDs returns visible guides by any of the authors,
	// newest first
	FindByAuthorIDs(ctx context.Context, authorIDs []uuid.UUID, offset, limit int) ([]*Guide, int64, error)

	// FindByIDs returns visible guides for the given IDs, unordered
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*Guide, error)
}

// CommentRepository defines the interface for comment persistence
type CommentRepository interface {
	// Create creates a new comment
	Create(ctx context.Context, c *Comment) error

	// FindByGuideID returns comments on a guide, oldest first
	FindByGuideID(ctx context.Context, guideID uuid.UUID) ([]*Comment, error)
}

// Sort orders for guide listings
const (
	SortNewest  = "newest"
	SortUpdated = "updated"
)

// GuideFilter contains filter options for querying guides
type GuideFilter struct {
	Category *Category
	AuthorID *uuid.UUID
	Keyword  string
	Sort     string

	Page     int
	PageSize int
}

// NewGuideFilter creates a new GuideFilter with default values
func NewGuideFilter() GuideFilter {
	return GuideFilter{
		Page:     1,
		PageSize: 20,
	}
}

// WithCategory sets the category filter
func (f GuideFilter) WithCategory(category Category) GuideFilter {
	f.Category = &category
	return f
}

// WithAuthor sets the author filter
func (f GuideFilter) WithAuthor(authorID uuid.UUID) GuideFilter {
	f.AuthorID = &authorID
	return f
}

// WithKeyword sets the title search keyword
func (f GuideFilter) WithKeyword(keyword string) GuideFilter {
	f.Keyword = keyword
	return f
}

// WithSort sets the listing order
func (f GuideFilter) WithSort(sort string) GuideFilter {
	f.Sort = sort
	return f
}

// WithPagination sets pagination parameters
func (f GuideFilter) WithPagination(page, pageSize int) GuideFilter {
	f.Page = page
	f.PageSize = pageSize
	return f
}

// Offset returns the offset for pagination
func (f GuideFilter) Offset() int {
	if f.Page <= 0 {
		return 0
	}
	return (f.Page - 1) * f.Limit()
}

// Limit returns the limit for pagination
func (f GuideFilter) Limit() int {
	if f.PageSize <= 0 {
		return 20
	}
	if f.PageSize > 100 {
		return 100
	}
	return f.PageSize
}
