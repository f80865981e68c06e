package guide

import (
	"strings"

	"github.com/google/uuid"
	"github.com/guideshare/backend/internal/domain/shared"
)

// Comment is a reader's remark on a guide
type Comment struct {
	shared.BaseEntity
	GuideID  uuid.UUID
	AuthorID uuid.UUID
	Content  string
}

// NewComment creates a new comment
func NewComment(guideID, authorID uuid.UUID, content string) (*Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Comment cannot be empty")
	}
	if len(content) > 800 {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Comment cannot exceed 800 characters")
	}

	return &Comment{
		BaseEntity: shared.NewBaseEntity(),
		GuideID:    guideID,
		AuthorID:   authorID,
		Content:    content,
	}, nil
}
