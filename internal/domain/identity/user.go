package identity

import (
	"regexp"
	"strings"
	"time"

	"github.com/guideshare/backend/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

// Role represents a user's role in the system
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// UserStatus represents the account standing of a user
type UserStatus int

const (
	StatusActive      UserStatus = 0
	StatusBanned      UserStatus = 1
	StatusDeactivated UserStatus = 2
)

// DeactivatedDisplayName is shown in place of a deactivated user's name
const DeactivatedDisplayName = "Deactivated user"

// Password cost for bcrypt
const bcryptCost = 12

// User represents a user in the system
// It is the aggregate root for identity operations
type User struct {
	shared.BaseEntity
	Username          string
	DisplayName       string
	PasswordHash      string
	Role              Role
	Enabled           bool
	Status            UserStatus
	PasswordChangedAt *time.Time
}

// NewUser creates a new active user with the USER role
func NewUser(username, password string) (*User, error) {
	if err := validateUsername(username); err != nil {
		return nil, err
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}

	passwordHash, err := hashPassword(password)
	if err != nil {
		return nil, shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}

	username = strings.TrimSpace(username)
	return &User{
		BaseEntity:   shared.NewBaseEntity(),
		Username:     username,
		DisplayName:  username,
		PasswordHash: passwordHash,
		Role:         RoleUser,
		Enabled:      true,
		Status:       StatusActive,
	}, nil
}

// Rename changes the username and keeps the display name in sync
// when it still equals the old username
func (u *User) Rename(username string) error {
	if err := validateUsername(username); err != nil {
		return err
	}

	username = strings.TrimSpace(username)
	if u.DisplayName == u.Username {
		u.DisplayName = username
	}
	u.Username = username
	u.Touch()

	return nil
}

// SetDisplayName sets the user's display name
func (u *User) SetDisplayName(displayName string) error {
	displayName = strings.TrimSpace(displayName)
	if len(displayName) > 32 {
		return shared.NewDomainError("VALIDATION_ERROR", "Display name cannot exceed 32 characters")
	}

	u.DisplayName = displayName
	u.Touch()

	return nil
}

// ChangePassword changes the user's password after verifying the old one
func (u *User) ChangePassword(oldPassword, newPassword string) error {
	if !u.VerifyPassword(oldPassword) {
		return shared.NewDomainError("INVALID_OPERATION", "Current password is incorrect")
	}

	return u.SetPassword(newPassword)
}

// SetPassword sets a new password and records the change time
func (u *User) SetPassword(newPassword string) error {
	if err := validatePassword(newPassword); err != nil {
		return err
	}

	passwordHash, err := hashPassword(newPassword)
	if err != nil {
		return shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}

	u.PasswordHash = passwordHash
	now := time.Now()
	u.PasswordChangedAt = &now
	u.Touch()

	return nil
}

// ResetPassword sets a new password without recording a change time,
// so the change cooldown does not apply afterwards
func (u *User) ResetPassword(newPassword string) error {
	if err := validatePassword(newPassword); err != nil {
		return err
	}

	passwordHash, err := hashPassword(newPassword)
	if err != nil {
		return shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}

	u.PasswordHash = passwordHash
	u.PasswordChangedAt = nil
	u.Touch()

	return nil
}

// VerifyPassword verifies if the provided password matches
func (u *User) VerifyPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
	return err == nil
}

// SetStatus updates the account standing
func (u *User) SetStatus(status UserStatus) error {
	if status < StatusActive || status > StatusDeactivated {
		return shared.NewDomainError("VALIDATION_ERROR", "Unknown user status")
	}

	u.Status = status
	u.Touch()

	return nil
}

// SetRole changes the user's role
func (u *User) SetRole(role Role) error {
	if role != RoleUser && role != RoleAdmin {
		return shared.NewDomainError("VALIDATION_ERROR", "Unknown role")
	}

	u.Role = role
	u.Touch()

	return nil
}

// SetEnabled toggles whether the account may authenticate
func (u *User) SetEnabled(enabled bool) {
	u.Enabled = enabled
	u.Touch()
}

// Deactivate marks the user deactivated, the soft form of deletion
func (u *User) Deactivate() {
	u.Status = StatusDeactivated
	u.Touch()
}

// IsActive returns true if user is in good standing
func (u *User) IsActive() bool {
	return u.Status == StatusActive
}

// IsDeactivated returns true if user is deactivated
func (u *User) IsDeactivated() bool {
	return u.Status == StatusDeactivated
}

// IsAdmin returns true if user has the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// CanLogin returns true if user may authenticate
func (u *User) CanLogin() bool {
	return u.Enabled
}

// PublicDisplayName returns the name safe to show to other users.
// Deactivated accounts are masked behind a fixed placeholder.
func (u *User) PublicDisplayName() string {
	if u.Status == StatusDeactivated {
		return DeactivatedDisplayName
	}
	if u.DisplayName != "" {
		return u.DisplayName
	}
	return u.Username
}

// Validation functions

var usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_\-.]+$`)

func validateUsername(username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return shared.NewDomainError("VALIDATION_ERROR", "Username cannot be empty")
	}
	if len(username) < 3 {
		return shared.NewDomainError("VALIDATION_ERROR", "Username must be at least 3 characters")
	}
	if len(username) > 32 {
		return shared.NewDomainError("VALIDATION_ERROR", "Username cannot exceed 32 characters")
	}
	if !usernameRegex.MatchString(username) {
		return shared.NewDomainError("VALIDATION_ERROR", "Username can only contain letters, numbers, underscores, hyphens, and dots")
	}

	return nil
}

func validatePassword(password string) error {
	if password == "" {
		return shared.NewDomainError("VALIDATION_ERROR", "Password cannot be empty")
	}
	if len(password) < 6 {
		return shared.NewDomainError("VALIDATION_ERROR", "Password must be at least 6 characters")
	}
	if len(password) > 128 {
		return shared.NewDomainError("VALIDATION_ERROR", "Password cannot exceed 128 characters")
	}

	return nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
