package social

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFollow(t *testing.T) {
	t.Run("creates edge", func(t *testing.T) {
		follower := uuid.New()
		followee := uuid.New()

		f, err := NewFollow(follower, followee)

		require.NoError(t, err)
		assert.Equal(t, follower, f.FollowerID)
		assert.Equal(t, followee, f.FolloweeID)
		assert.WithinDuration(t, time.Now(), f.CreatedAt, time.Minute)
	})

	t.Run("rejects self follow", func(t *testing.T) {
		id := uuid.New()

		_, err := NewFollow(id, id)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Cannot follow yourself")
	})
}

func TestNewCheckIn(t *testing.T) {
	userID := uuid.New()
	guideID := uuid.New()

	t.Run("creates check-in with explicit day", func(t *testing.T) {
		c, err := NewCheckIn(userID, guideID, "2026-05-01", 40, " halfway there ")

		require.NoError(t, err)
		assert.Equal(t, "2026-05-01", c.Day)
		assert.Equal(t, 40, c.Progress)
		assert.Equal(t, "halfway there", c.Note)
	})

	t.Run("defaults day to today", func(t *testing.T) {
		c, err := NewCheckIn(userID, guideID, "", 0, "")

		require.NoError(t, err)
		assert.Equal(t, time.Now().Format(DayFormat), c.Day)
	})

	t.Run("rejects malformed day", func(t *testing.T) {
		_, err := NewCheckIn(userID, guideID, "05/01/2026", 10, "")

		assert.Error(t, err)
	})

	t.Run("rejects progress out of range", func(t *testing.T) {
		_, err := NewCheckIn(userID, guideID, "", -1, "")
		assert.Error(t, err)

		_, err = NewCheckIn(userID, guideID, "", 101, "")
		assert.Error(t, err)
	})

	t.Run("accepts progress bounds", func(t *testing.T) {
		_, err := NewCheckIn(userID, guideID, "", 0, "")
		assert.NoError(t, err)

		_, err = NewCheckIn(userID, guideID, "", 100, "")
		assert.NoError(t, err)
	})

	t.Run("rejects long note", func(t *testing.T) {
		_, err := NewCheckIn(userID, guideID, "", 50, strings.Repeat("n", 401))

		assert.Error(t, err)
	})
}
