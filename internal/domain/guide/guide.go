package guide

import (
	"strings"

	"github.com/google/uuid"
	"github.com/guideshare/backend/internal/domain/shared"
)

// Category classifies a guide
type Category string

const (
	CategoryTravel Category = "TRAVEL"
	CategoryStudy  Category = "STUDY"
	CategoryGame   Category = "GAME"
)

// IsValid reports whether the category is a known value
func (c Category) IsValid() bool {
	switch c {
	case CategoryTravel, CategoryStudy, CategoryGame:
		return true
	}
	return false
}

// SupportsCheckIn reports whether guides in this category accept check-ins
func (c Category) SupportsCheckIn() bool {
	return c == CategoryStudy || c == CategoryGame
}

// Guide represents a shared guide post
// It is the aggregate root for content operations
type Guide struct {
	shared.BaseEntity
	AuthorID        uuid.UUID
	Title           string
	Category        Category
	TemplateKey     string
	ContentMarkdown string
	Deleted         bool
}

// NewGuide creates a new guide
func NewGuide(authorID uuid.UUID, title string, category Category, templateKey, contentMarkdown string) (*Guide, error) {
	if authorID == uuid.Nil {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Author is required")
	}
	if err := validateTitle(title); err != nil {
		return nil, err
	}
	if !category.IsValid() {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Unknown guide category")
	}
	if len(templateKey) > 32 {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Template key cannot exceed 32 characters")
	}

	return &Guide{
		BaseEntity:      shared.NewBaseEntity(),
		AuthorID:        authorID,
		Title:           strings.TrimSpace(title),
		Category:        category,
		TemplateKey:     templateKey,
		ContentMarkdown: contentMarkdown,
	}, nil
}

// UpdateContent replaces the guide's editable fields
func (g *Guide) UpdateContent(title string, category Category, contentMarkdown string) error {
	if err := validateTitle(title); err != nil {
		return err
	}
	if !category.IsValid() {
		return shared.NewDomainError("VALIDATION_ERROR", "Unknown guide category")
	}

	g.Title = strings.TrimSpace(title)
	g.Category = category
	g.ContentMarkdown = contentMarkdown
	g.Touch()

	return nil
}

// MarkDeleted logically deletes the guide. The ID stays stable and the
// row is kept so engagement history remains attributable.
func (g *Guide) MarkDeleted() {
	g.Deleted = true
	g.Touch()
}

// IsVisible reports whether the guide should appear in reads
func (g *Guide) IsVisible() bool {
	return !g.Deleted
}

// IsOwnedBy reports whether the given user authored the guide
func (g *Guide) IsOwnedBy(userID uuid.UUID) bool {
	return g.AuthorID == userID
}

func validateTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return shared.NewDomainError("VALIDATION_ERROR", "Title cannot be empty")
	}
	if len(title) > 120 {
		return shared.NewDomainError("VALIDATION_ERROR", "Title cannot exceed 120 characters")
	}
	return nil
}
