package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	guideapp "github.com/guideshare/backend/internal/application/guide"
	"github.com/guideshare/backend/internal/application/identity"
	socialapp "github.com/guideshare/backend/internal/application/social"
	"github.com/guideshare/backend/internal/interfaces/http/dto"
	"github.com/guideshare/backend/internal/interfaces/http/middleware"
)

// MeHandler handles the authenticated caller's own resources
type MeHandler struct {
	BaseHandler
	authService       *identity.AuthService
	guideService      *guideapp.GuideService
	engagementService *socialapp.EngagementService
	checkInService    *socialapp.CheckInService
	followService     *socialapp.FollowService
	feedService       *socialapp.FeedService
}

// NewMeHandler creates a new me handler
func NewMeHandler(
	authService *identity.AuthService,
	guideService *guideapp.GuideService,
	engagementService *socialapp.EngagementService,
	checkInService *socialapp.CheckInService,
	followService *socialapp.FollowService,
	feedService *socialapp.FeedService,
) *MeHandler {
	return &MeHandler{
		authService:       authService,
		guideService:      guideService,
		engagementService: engagementService,
		checkInService:    checkInService,
		followService:     followService,
		feedService:       feedService,
	}
}

// Profile returns the caller's profile
// GET /api/me
func (h *MeHandler) Profile(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	user, err := h.authService.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, toUserResponse(*user))
}

// UpdateUsername changes the caller's username
// PATCH /api/me/username
func (h *MeHandler) UpdateUsername(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req UpdateUsernameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	user, err := h.authService.UpdateUsername(c.Request.Context(), userID, req.Username)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, toUserResponse(*user))
}

// UpdatePassword changes the caller's password
// PATCH /api/me/password
func (h *MeHandler) UpdatePassword(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	if err := h.authService.UpdatePassword(c.Request.Context(), identity.ChangePasswordInput{
		UserID:      userID,
		OldPassword: req.OldPassword,
		NewPassword: req.NewPassword,
	}); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// MyGuides returns the caller's own guides, newest first
// GET /api/me/guides
func (h *MeHandler) MyGuides(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var page dto.ListRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		h.BadRequest(c, "Invalid query parameters")
		return
	}
	page.Normalize()

	guides, total, err := h.guideService.List(c.Request.Context(), guideapp.ListGuidesInput{
		AuthorID: &userID,
		Page:     page.Page,
		PageSize: page.PageSize,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithPagination(c, toGuideSummaryResponses(guides), total, page.Page, page.PageSize)
}

// MyFavorites returns the caller's favorited guides, newest favorite first
// GET /api/me/favorites
func (h *MeHandler) MyFavorites(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	favorites, err := h.engagementService.MyFavorites(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, toFavoriteGuideResponses(favorites))
}

// MyCheckIns returns the caller's check-ins, optionally scoped to one
// guide via ?guide_id=
// GET /api/me/checkins
func (h *MeHandler) MyCheckIns(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var guideID *uuid.UUID
	if raw := c.Query("guide_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			h.BadRequest(c, "Invalid guide_id")
			return
		}
		guideID = &id
	}

	views, err := h.checkInService.MyCheckIns(c.Request.Context(), userID, guideID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, toCheckInResponses(views))
}

// MyFollowing returns the users the caller follows, newest edge first
// GET /api/me/following
func (h *MeHandler) MyFollowing(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	following, err := h.followService.Following(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, toFollowedUserResponses(following))
}

// Feed returns the caller's followee feed, newest first
// GET /api/me/feed
func (h *MeHandler) Feed(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var page dto.ListRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		h.BadRequest(c, "Invalid query parameters")
		return
	}
	page.Normalize()

	items, total, err := h.feedService.Feed(c.Request.Context(), userID, page.Offset(), page.PageSize)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithPagination(c, toFeedItemResponses(items), total, page.Page, page.PageSize)
}
