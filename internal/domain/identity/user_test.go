package identity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("creates active user with defaults", func(t *testing.T) {
		user, err := NewUser("testuser", "secret1")

		require.NoError(t, err)
		assert.NotNil(t, user)
		assert.Equal(t, "testuser", user.Username)
		assert.Equal(t, "testuser", user.DisplayName)
		assert.NotEmpty(t, user.PasswordHash)
		assert.Equal(t, RoleUser, user.Role)
		assert.True(t, user.Enabled)
		assert.Equal(t, StatusActive, user.Status)
		assert.Nil(t, user.PasswordChangedAt)
	})

	t.Run("trims username whitespace", func(t *testing.T) {
		user, err := NewUser("  testuser  ", "secret1")

		require.NoError(t, err)
		assert.Equal(t, "testuser", user.Username)
	})

	t.Run("fails with empty username", func(t *testing.T) {
		_, err := NewUser("", "secret1")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "cannot be empty")
	})

	t.Run("fails with short username", func(t *testing.T) {
		_, err := NewUser("ab", "secret1")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "at least 3 characters")
	})

	t.Run("fails with long username", func(t *testing.T) {
		_, err := NewUser("a-very-long-username-over-32-chars-total", "secret1")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "cannot exceed 32 characters")
	})

	t.Run("fails with invalid username characters", func(t *testing.T) {
		_, err := NewUser("test@user", "secret1")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "only contain letters")
	})

	t.Run("fails with empty password", func(t *testing.T) {
		_, err := NewUser("testuser", "")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "cannot be empty")
	})

	t.Run("fails with short password", func(t *testing.T) {
		_, err := NewUser("testuser", "abc12")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "at least 6 characters")
	})
}

func TestUser_Rename(t *testing.T) {
	t.Run("renames and keeps display name in sync", func(t *testing.T) {
		user, _ := NewUser("oldname", "secret1")

		err := user.Rename("newname")

		require.NoError(t, err)
		assert.Equal(t, "newname", user.Username)
		assert.Equal(t, "newname", user.DisplayName)
	})

	t.Run("preserves a customized display name", func(t *testing.T) {
		user, _ := NewUser("oldname", "secret1")
		require.NoError(t, user.SetDisplayName("My Guides"))

		err := user.Rename("newname")

		require.NoError(t, err)
		assert.Equal(t, "newname", user.Username)
		assert.Equal(t, "My Guides", user.DisplayName)
	})

	t.Run("rejects invalid username", func(t *testing.T) {
		user, _ := NewUser("oldname", "secret1")

		err := user.Rename("x")

		assert.Error(t, err)
		assert.Equal(t, "oldname", user.Username)
	})
}

func TestUser_Password(t *testing.T) {
	t.Run("verify password", func(t *testing.T) {
		user, _ := NewUser("testuser", "secret1")

		assert.True(t, user.VerifyPassword("secret1"))
		assert.False(t, user.VerifyPassword("wrong"))
	})

	t.Run("change password records change time", func(t *testing.T) {
		user, _ := NewUser("testuser", "secret1")

		err := user.ChangePassword("secret1", "secret2")

		require.NoError(t, err)
		assert.True(t, user.VerifyPassword("secret2"))
		require.NotNil(t, user.PasswordChangedAt)
		assert.WithinDuration(t, time.Now(), *user.PasswordChangedAt, time.Minute)
	})

	t.Run("change password fails with wrong old password", func(t *testing.T) {
		user, _ := NewUser("testuser", "secret1")

		err := user.ChangePassword("wrong", "secret2")

		assert.Error(t, err)
		assert.True(t, user.VerifyPassword("secret1"))
	})

	t.Run("reset password clears change time", func(t *testing.T) {
		user, _ := NewUser("testuser", "secret1")
		require.NoError(t, user.ChangePassword("secret1", "secret2"))

		err := user.ResetPassword("secret3")

		require.NoError(t, err)
		assert.True(t, user.VerifyPassword("secret3"))
		assert.Nil(t, user.PasswordChangedAt)
	})
}

func TestUser_Status(t *testing.T) {
	t.Run("set status validates range", func(t *testing.T) {
		user, _ := NewUser("testuser", "secret1")

		require.NoError(t, user.SetStatus(StatusBanned))
		assert.Equal(t, StatusBanned, user.Status)

		err := user.SetStatus(UserStatus(5))
		assert.Error(t, err)
		assert.Equal(t, StatusBanned, user.Status)
	})

	t.Run("deactivate", func(t *testing.T) {
		user, _ := NewUser("testuser", "secret1")

		user.Deactivate()

		assert.True(t, user.IsDeactivated())
		assert.False(t, user.IsActive())
	})
}

func TestUser_PublicDisplayName(t *testing.T) {
	t.Run("returns display name for active user", func(t *testing.T) {
		user, _ := NewUser("testuser", "secret1")
		require.NoError(t, user.SetDisplayName("Traveler"))

		assert.Equal(t, "Traveler", user.PublicDisplayName())
	})

	t.Run("falls back to username when display name empty", func(t *testing.T) {
		user, _ := NewUser("testuser", "secret1")
		user.DisplayName = ""

		assert.Equal(t, "testuser", user.PublicDisplayName())
	})

	t.Run("masks deactivated user", func(t *testing.T) {
		user, _ := NewUser("testuser", "secret1")
		require.NoError(t, user.SetDisplayName("Traveler"))
		user.Deactivate()

		assert.Equal(t, DeactivatedDisplayName, user.PublicDisplayName())
	})

	t.Run("banned user keeps display name", func(t *testing.T) {
		user, _ := NewUser("testuser", "secret1")
		require.NoError(t, user.SetStatus(StatusBanned))

		assert.Equal(t, "testuser", user.PublicDisplayName())
	})
}
