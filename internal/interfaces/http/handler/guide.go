package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	guideapp "github.com/guideshare/backend/internal/application/guide"
	"github.com/guideshare/backend/internal/interfaces/http/middleware"
)

// GuideHandler handles guide CRUD, templates, and comments
type GuideHandler struct {
	BaseHandler
	guideService   *guideapp.GuideService
	commentService *guideapp.CommentService
}

// NewGuideHandler creates a new guide handler
func NewGuideHandler(guideService *guideapp.GuideService, commentService *guideapp.CommentService) *GuideHandler {
	return &GuideHandler{
		guideService:   guideService,
		commentService: commentService,
	}
}

// ListTemplates returns the starter template catalog
// GET /api/templates
func (h *GuideHandler) ListTemplates(c *gin.Context) {
	h.Success(c, toTemplateResponses(h.guideService.Templates()))
}

// List returns visible guides, newest first
// GET /api/guides
func (h *GuideHandler) List(c *gin.Context) {
	var req ListGuidesRequest
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

	input := guideapp.ListGuidesInput{
		Category: req.Category,
		Keyword:  req.Q,
		Sort:     req.Sort,
		Page:     req.Page,
		PageSize: req.PageSize,
	}
	if req.AuthorID != "" {
		authorID, err := uuid.Parse(req.AuthorID)
		if err != nil {
			h.BadRequest(c, "Invalid author_id")
			return
		}
		input.AuthorID = &authorID
	}

	guides, total, err := h.guideService.List(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithPagination(c, toGuideSummaryResponses(guides), total, req.Page, req.PageSize)
}

// Get returns one guide with engagement counts; viewer flags are
// included for authenticated callers
// GET /api/guides/:id
func (h *GuideHandler) Get(c *gin.Context) {
	guideID, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid guide ID")
		return
	}

	detail, err := h.guideService.Get(c.Request.Context(), guideID, getViewerID(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, toGuideDetailResponse(detail))
}

// Create creates a new guide owned by the caller
// POST /api/guides
func (h *GuideHandler) Create(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req CreateGuideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	summary, err := h.guideService.Create(c.Request.Context(), guideapp.CreateGuideInput{
		AuthorID:        userID,
		Title:           req.Title,
		Category:        req.Category,
		TemplateKey:     req.TemplateKey,
		ContentMarkdown: req.ContentMarkdown,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, toGuideSummaryResponse(*summary))
}

// Update modifies a guide; author or admin only
// PUT /api/guides/:id
func (h *GuideHandler) Update(c *gin.Context) {
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

	var req UpdateGuideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	summary, err := h.guideService.Update(c.Request.Context(), guideapp.UpdateGuideInput{
		GuideID:         guideID,
		CallerID:        userID,
		CallerIsAdmin:   middleware.IsAdmin(c),
		Title:           req.Title,
		Category:        req.Category,
		ContentMarkdown: req.ContentMarkdown,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, toGuideSummaryResponse(*summary))
}

// Delete logically deletes a guide; author or admin only
// DELETE /api/guides/:id
func (h *GuideHandler) Delete(c *gin.Context) {
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

	if err := h.guideService.Delete(c.Request.Context(), guideID, userID, middleware.IsAdmin(c)); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// ListComments returns a guide's comments, oldest first
// GET /api/guides/:id/comments
func (h *GuideHandler) ListComments(c *gin.Context) {
	guideID, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid guide ID")
		return
	}

	comments, err := h.commentService.List(c.Request.Context(), guideID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, toCommentResponses(comments))
}

// AddComment posts a comment on a guide
// POST /api/guides/:id/comments
func (h *GuideHandler) AddComment(c *gin.Context) {
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

	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	comment, err := h.commentService.Add(c.Request.Context(), guideID, userID, req.Content)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, toCommentResponse(*comment))
}
