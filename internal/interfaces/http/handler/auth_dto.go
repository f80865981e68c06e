package handler

import "time"

// RegisterRequest represents the registration request body
type RegisterRequest struct {
	Username    string `json:"username" binding:"required,min=3,max=32,username"`
	Password    string `json:"password" binding:"required,min=6,max=72"`
	DisplayName string `json:"display_name" binding:"required,min=1,max=32"`
}

// LoginRequest represents the login request body
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents the login response payload
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      UserResponse `json:"user"`
}

// UpdateUsernameRequest represents the username change request body
type UpdateUsernameRequest struct {
	Username string `json:"username" binding:"required,min=3,max=32,username"`
}

// UpdatePasswordRequest represents the password change request body
type UpdatePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=6,max=72"`
}
