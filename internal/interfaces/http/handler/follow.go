package handler

import (
	"github.com/gin-gonic/gin"
	socialapp "github.com/guideshare/backend/internal/application/social"
)

// FollowHandler handles the social graph endpoints under /users
type FollowHandler struct {
	BaseHandler
	followService *socialapp.FollowService
}

// NewFollowHandler creates a new follow handler
func NewFollowHandler(followService *socialapp.FollowService) *FollowHandler {
	return &FollowHandler{
		followService: followService,
	}
}

// Follow makes the caller follow the target user; repeats are no-op
// successes
// POST /api/users/:id/follow
func (h *FollowHandler) Follow(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	targetID, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid user ID")
		return
	}

	if err := h.followService.Follow(c.Request.Context(), userID, targetID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// Unfollow removes the edge; a missing edge is still success
// DELETE /api/users/:id/follow
func (h *FollowHandler) Unfollow(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	targetID, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid user ID")
		return
	}

	if err := h.followService.Unfollow(c.Request.Context(), userID, targetID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// IsFollowing reports whether the viewer follows the target user.
// Anonymous viewers always get false.
// GET /api/users/:id/following
func (h *FollowHandler) IsFollowing(c *gin.Context) {
	targetID, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid user ID")
		return
	}

	following, err := h.followService.IsFollowing(c.Request.Context(), getViewerID(c), targetID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, FollowingResponse{Following: following})
}
