package social

import (
	"time"

	"github.com/google/uuid"
	"github.com/guideshare/backend/internal/domain/social"
)

// FollowedUser is one entry of a following list
type FollowedUser struct {
	ID          uuid.UUID
	Username    string
	DisplayName string
}

// CheckInInput contains the input for a daily check-in
type CheckInInput struct {
	UserID   uuid.UUID
	GuideID  uuid.UUID
	Day      string // YYYY-MM-DD; empty means today
	Progress int
	Note     string
}

// CheckInView is the read shape of a check-in
type CheckInView struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	GuideID   uuid.UUID
	Day       string
	Progress  int
	Note      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// FeedItem is one entry of the followee feed
type FeedItem struct {
	ID            uuid.UUID
	AuthorID      uuid.UUID
	AuthorName    string
	Title         string
	Category      string
	LikeCount     int64
	FavoriteCount int64
	CreatedAt     time.Time
}

// FavoriteGuide is one entry of the caller's favorites list
type FavoriteGuide struct {
	ID         uuid.UUID
	AuthorID   uuid.UUID
	AuthorName string
	Title      string
	Category   string
	CreatedAt  time.Time
}

func toCheckInView(c *social.CheckIn) CheckInView {
	return CheckInView{
		ID:        c.ID,
		UserID:    c.UserID,
		GuideID:   c.GuideID,
		Day:       c.Day,
		Progress:  c.Progress,
		Note:      c.Note,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func toCheckInViews(checkIns []*social.CheckIn) []CheckInView {
	views := make([]CheckInView, len(checkIns))
	for i, c := range checkIns {
		views[i] = toCheckInView(c)
	}
	return views
}
