package social

import (
	"context"

	"github.com/google/uuid"
)

// FollowRepository defines the interface for follow persistence.
// Save absorbs duplicate edges silently so concurrent follows of the
// same pair converge on one row.
type FollowRepository interface {
	// Save inserts the edge, ignoring an already existing one
	Save(ctx context.Context, f *Follow) error

	// Delete removes the edge, succeeding when it does not exist
	Delete(ctx context.Context, followerID, followeeID uuid.UUID) error

	// Exists reports whether the edge exists
	Exists(ctx context.Context, followerID, followeeID uuid.UUID) (bool, error)

	// FolloweeIDs returns the users the given user follows,
	// newest edge first
	FolloweeIDs(ctx context.Context, followerID uuid.UUID) ([]uuid.UUID, error)

	// DeleteByUserID removes every edge where the user is the
	// follower or the followee
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
}

// LikeRepository defines the interface for like persistence
type LikeRepository interface {
	// Save inserts the mark, ignoring an already existing one
	Save(ctx context.Context, l *Like) error

	// Delete removes the mark, succeeding when it does not exist
	Delete(ctx context.Context, userID, guideID uuid.UUID) error

	// Exists reports whether the mark exists
	Exists(ctx context.Context, userID, guideID uuid.UUID) (bool, error)

	// CountByGuideID returns the number of likes a guide has
	CountByGuideID(ctx context.Context, guideID uuid.UUID) (int64, error)
}

// FavoriteRepository defines the interface for favorite persistence
type FavoriteRepository interface {
	// Save inserts the mark, ignoring an already existing one
	Save(ctx context.Context, f *Favorite) error

	// Delete removes the mark, succeeding when it does not exist
	Delete(ctx context.Context, userID, guideID uuid.UUID) error

	// Exists reports whether the mark exists
	Exists(ctx context.Context, userID, guideID uuid.UUID) (bool, error)

	// CountByGuideID returns the number of favorites a guide has
	CountByGuideID(ctx context.Context, guideID uuid.UUID) (int64, error)

	// GuideIDsByUserID returns guides the user favorited,
	// newest favorite first
	GuideIDsByUserID(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}

// CheckInRepository defines the interface for check-in persistence.
// Upsert keys on (user, guide, day): a repeat updates progress and
// note while preserving the row's creation time.
type CheckInRepository interface {
	// Upsert inserts the check-in or updates the same-day row
	Upsert(ctx context.Context, c *CheckIn) error

	// FindByDay returns the user's check-in on the guide for that day
	FindByDay(ctx context.Context, userID, guideID uuid.UUID, day string) (*CheckIn, error)

	// FindByUserID returns a user's check-ins, optionally limited to
	// one guide, newest day first
	FindByUserID(ctx context.Context, userID uuid.UUID, guideID *uuid.UUID) ([]*CheckIn, error)

	// FindByGuideID returns all check-ins on a guide, newest day first
	FindByGuideID(ctx context.Context, guideID uuid.UUID) ([]*CheckIn, error)

	// Exists reports whether the user checked in on the guide that day
	Exists(ctx context.Context, userID, guideID uuid.UUID, day string) (bool, error)

	// CountDistinctUsers returns how many different users have ever
	// checked in on the guide
	CountDistinctUsers(ctx context.Context, guideID uuid.UUID) (int64, error)
}
