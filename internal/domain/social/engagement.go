package social

import (
	"time"

	"github.com/google/uuid"
)

// Like marks a guide as liked by a user. The pair (UserID, GuideID)
// is unique at the store level.
type Like struct {
	UserID    uuid.UUID
	GuideID   uuid.UUID
	CreatedAt time.Time
}

// NewLike creates a like mark
func NewLike(userID, guideID uuid.UUID) *Like {
	return &Like{
		UserID:    userID,
		GuideID:   guideID,
		CreatedAt: time.Now(),
	}
}

// Favorite bookmarks a guide for a user. The pair (UserID, GuideID)
// is unique at the store level.
type Favorite struct {
	UserID    uuid.UUID
	GuideID   uuid.UUID
	CreatedAt time.Time
}

// NewFavorite creates a favorite mark
func NewFavorite(userID, guideID uuid.UUID) *Favorite {
	return &Favorite{
		UserID:    userID,
		GuideID:   guideID,
		CreatedAt: time.Now(),
	}
}
