package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/guideshare/backend/internal/application/identity"
	"github.com/guideshare/backend/internal/interfaces/http/middleware"
)

// AdminHandler handles administrative user management
type AdminHandler struct {
	BaseHandler
	userService *identity.UserService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(userService *identity.UserService) *AdminHandler {
	return &AdminHandler{
		userService: userService,
	}
}

// ListUsersRequest represents the admin user list query parameters
type ListUsersRequest struct {
	Keyword  string `form:"keyword"`
	Status   *int   `form:"status" binding:"omitempty,min=0,max=2"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// AdminUpdateUserRequest represents the admin user update request body
type AdminUpdateUserRequest struct {
	Enabled *bool   `json:"enabled"`
	Role    *string `json:"role" binding:"omitempty,oneof=USER ADMIN"`
}

// SetStatusRequest represents the status change request body
type SetStatusRequest struct {
	Status *int `json:"status" binding:"required,min=0,max=2"`
}

// ResetPasswordRequest represents the password reset request body
type ResetPasswordRequest struct {
	NewPassword string `json:"new_password" binding:"required,min=6,max=72"`
}

// ListUsers returns users with optional keyword and status filters
// GET /api/admin/users
func (h *AdminHandler) ListUsers(c *gin.Context) {
	var req ListUsersRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, "Invalid query parameters")
		return
	}
	if req.Page <= 0 {
		req.Page = 1
	}
	if req.PageSize <= 0 {
		req.PageSize = 20
	}

	users, total, err := h.userService.List(c.Request.Context(), identity.ListUsersInput{
		Keyword:  req.Keyword,
		Status:   req.Status,
		Page:     req.Page,
		PageSize: req.PageSize,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithPagination(c, toUserResponses(users), total, req.Page, req.PageSize)
}

// UpdateUser changes a user's enabled flag and role
// PUT /api/admin/users/:id
func (h *AdminHandler) UpdateUser(c *gin.Context) {
	userID, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid user ID")
		return
	}

	var req AdminUpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	user, err := h.userService.Update(c.Request.Context(), identity.AdminUpdateUserInput{
		UserID:  userID,
		Enabled: req.Enabled,
		Role:    req.Role,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, toUserResponse(*user))
}

// SetUserStatus changes a user's moderation status
// PATCH /api/admin/users/:id/status
func (h *AdminHandler) SetUserStatus(c *gin.Context) {
	userID, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid user ID")
		return
	}

	var req SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Status == nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.userService.SetStatus(c.Request.Context(), userID, *req.Status)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, toUserResponse(*user))
}

// ResetUserPassword sets a new password for a user
// POST /api/admin/users/:id/reset-password
func (h *AdminHandler) ResetUserPassword(c *gin.Context) {
	userID, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid user ID")
		return
	}

	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	if err := h.userService.ResetPassword(c.Request.Context(), userID, req.NewPassword); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// DeactivateUser deactivates an account instead of hard deleting it
// DELETE /api/admin/users/:id
func (h *AdminHandler) DeactivateUser(c *gin.Context) {
	userID, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid user ID")
		return
	}

	if err := h.userService.Deactivate(c.Request.Context(), userID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
