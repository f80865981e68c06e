package identity

import (
	"time"

	"github.com/google/uuid"
	"github.com/guideshare/backend/internal/domain/identity"
)

// RegisterInput contains the input for user registration
type RegisterInput struct {
	Username    string
	Password    string
	DisplayName string
}

// LoginInput contains the input for user login
type LoginInput struct {
	Username string
	Password string
}

// LoginResult contains the result of a successful login
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      UserInfo
}

// UserInfo is the user profile shape returned by the identity services
type UserInfo struct {
	ID          uuid.UUID
	Username    string
	DisplayName string
	Role        string
	Enabled     bool
	Status      int
	CreatedAt   time.Time
}

// ChangePasswordInput contains the input for password change
type ChangePasswordInput struct {
	UserID      uuid.UUID
	OldPassword string
	NewPassword string
}

// ListUsersInput contains the admin user listing filters
type ListUsersInput struct {
	Keyword  string
	Status   *int
	Page     int
	PageSize int
}

// AdminUpdateUserInput contains the admin-editable user fields
type AdminUpdateUserInput struct {
	UserID  uuid.UUID
	Enabled *bool
	Role    *string
}

// ToUserInfo maps a domain user to its service-level profile
func ToUserInfo(user *identity.User) UserInfo {
	return UserInfo{
		ID:          user.ID,
		Username:    user.Username,
		DisplayName: user.PublicDisplayName(),
		Role:        string(user.Role),
		Enabled:     user.Enabled,
		Status:      int(user.Status),
		CreatedAt:   user.CreatedAt,
	}
}

// ToUserInfos maps a slice of domain users
func ToUserInfos(users []*identity.User) []UserInfo {
	infos := make([]UserInfo, len(users))
	for i, user := range users {
		infos[i] = ToUserInfo(user)
	}
	return infos
}
