package handler

import (
	"github.com/gin-gonic/gin"
	socialapp "github.com/guideshare/backend/internal/application/social"
	"github.com/guideshare/backend/internal/interfaces/http/middleware"
)

// EngagementHandler handles likes, favorites, and check-ins on guides
type EngagementHandler struct {
	BaseHandler
	engagementService *socialapp.EngagementService
	checkInService    *socialapp.CheckInService
}

// NewEngagementHandler creates a new engagement handler
func NewEngagementHandler(
	engagementService *socialapp.EngagementService,
	checkInService *socialapp.CheckInService,
) *EngagementHandler {
	return &EngagementHandler{
		engagementService: engagementService,
		checkInService:    checkInService,
	}
}

// Like marks a guide as liked; repeats are no-op successes
// POST /api/guides/:id/like
func (h *EngagementHandler) Like(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	guideID, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid guide ID")
		return
	}

	if err := h.engagementService.Like(c.Request.Context(), userID, guideID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// Unlike removes a like; a missing mark is still success
// DELETE /api/guides/:id/like
func (h *EngagementHandler) Unlike(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	guideID, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid guide ID")
		return
	}

	if err := h.engagementService.Unlike(c.Request.Context(), userID, guideID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// Favorite marks a guide as favorited; repeats are no-op successes
// POST /api/guides/:id/favorite
func (h *EngagementHandler) Favorite(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	guideID, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid guide ID")
		return
	}

	if err := h.engagementService.Favorite(c.Request.Context(), userID, guideID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// Unfavorite removes a favorite; a missing mark is still success
// DELETE /api/guides/:id/favorite
func (h *EngagementHandler) Unfavorite(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	guideID, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid guide ID")
		return
	}

	if err := h.engagementService.Unfavorite(c.Request.Context(), userID, guideID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// CheckIn records the caller's daily progress on a study or game guide
// POST /api/guides/:id/checkins
func (h *EngagementHandler) CheckIn(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	guideID, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid guide ID")
		return
	}

	var req CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	view, err := h.checkInService.CheckIn(c.Request.Context(), socialapp.CheckInInput{
		UserID:   userID,
		GuideID:  guideID,
		Day:      req.Day,
		Progress: req.Progress,
		Note:     req.Note,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, toCheckInResponse(*view))
}

// ListGuideCheckIns returns all check-ins on a guide, newest day first
// GET /api/guides/:id/checkins
func (h *EngagementHandler) ListGuideCheckIns(c *gin.Context) {
	guideID, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid guide ID")
		return
	}

	views, err := h.checkInService.GuideCheckIns(c.Request.Context(), guideID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, toCheckInResponses(views))
}
