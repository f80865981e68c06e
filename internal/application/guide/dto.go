package guide

import (
	"time"

	"github.com/google/uuid"
	"github.com/guideshare/backend/internal/domain/guide"
)

// CreateGuideInput contains the input for creating a guide
type CreateGuideInput struct {
	AuthorID        uuid.UUID
	Title           string
	Category        string
	TemplateKey     string
	ContentMarkdown string
}

// UpdateGuideInput contains the input for updating a guide
type UpdateGuideInput struct {
	GuideID         uuid.UUID
	CallerID        uuid.UUID
	CallerIsAdmin   bool
	Title           string
	Category        string
	ContentMarkdown string
}

// ListGuidesInput contains the public listing filters
type ListGuidesInput struct {
	Category string
	AuthorID *uuid.UUID
	Keyword  string
	Sort     string
	Page     int
	PageSize int
}

// GuideSummary is the list-view shape of a guide
type GuideSummary struct {
	ID            uuid.UUID
	AuthorID      uuid.UUID
	AuthorName    string
	Title         string
	Category      string
	TemplateKey   string
	LikeCount     int64
	FavoriteCount int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ViewerEngagement carries the caller-specific flags on a guide detail.
// Only present when the caller is authenticated.
type ViewerEngagement struct {
	LikedByMe      bool
	FavoritedByMe  bool
	CheckedInToday bool
}

// GuideDetail is the full view of a guide with read-time counts. Like
// and favorite counts live on the embedded summary.
type GuideDetail struct {
	GuideSummary
	ContentMarkdown string
	CheckinCount    int64
	Viewer          *ViewerEngagement
}

// CommentView is a comment with its author's public name
type CommentView struct {
	ID         uuid.UUID
	GuideID    uuid.UUID
	AuthorID   uuid.UUID
	AuthorName string
	Content    string
	CreatedAt  time.Time
}

func toGuideSummary(g *guide.Guide, authorName string) GuideSummary {
	return GuideSummary{
		ID:          g.ID,
		AuthorID:    g.AuthorID,
		AuthorName:  authorName,
		Title:       g.Title,
		Category:    string(g.Category),
		TemplateKey: g.TemplateKey,
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.UpdatedAt,
	}
}
