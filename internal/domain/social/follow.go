package social

import (
	"time"

	"github.com/google/uuid"
	"github.com/guideshare/backend/internal/domain/shared"
)

// Follow is a directed edge in the social graph. The pair
// (FollowerID, FolloweeID) is unique at the store level.
type Follow struct {
	FollowerID uuid.UUID
	FolloweeID uuid.UUID
	CreatedAt  time.Time
}

// NewFollow creates a follow edge
func NewFollow(followerID, followeeID uuid.UUID) (*Follow, error) {
	if followerID == followeeID {
		return nil, shared.NewDomainError("INVALID_OPERATION", "Cannot follow yourself")
	}
	return &Follow{
		FollowerID: followerID,
		FolloweeID: followeeID,
		CreatedAt:  time.Now(),
	}, nil
}
