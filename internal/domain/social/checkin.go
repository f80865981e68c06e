package social

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/guideshare/backend/internal/domain/shared"
)

// DayFormat is the calendar-day key format for check-ins
const DayFormat = "2006-01-02"

// CheckIn records a user's daily progress against a guide. The triple
// (UserID, GuideID, Day) is unique at the store level; a repeat on the
// same day updates progress and note but keeps the original CreatedAt.
type CheckIn struct {
	shared.BaseEntity
	UserID   uuid.UUID
	GuideID  uuid.UUID
	Day      string
	Progress int
	Note     string
}

// NewCheckIn creates a check-in for the given day
func NewCheckIn(userID, guideID uuid.UUID, day string, progress int, note string) (*CheckIn, error) {
	if day == "" {
		day = time.Now().Format(DayFormat)
	} else if _, err := time.Parse(DayFormat, day); err != nil {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Day must be in YYYY-MM-DD format")
	}
	if progress < 0 || progress > 100 {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Progress must be between 0 and 100")
	}
	note = strings.TrimSpace(note)
	if len(note) > 400 {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Note cannot exceed 400 characters")
	}

	return &CheckIn{
		BaseEntity: shared.NewBaseEntity(),
		UserID:     userID,
		GuideID:    guideID,
		Day:        day,
		Progress:   progress,
		Note:       note,
	}, nil
}
