package handler

// CreateGuideRequest represents the guide creation request body
type CreateGuideRequest struct {
	Title           string `json:"title" binding:"required,max=120"`
	Category        string `json:"category" binding:"required,oneof=TRAVEL STUDY GAME"`
	TemplateKey     string `json:"template_key" binding:"omitempty,max=32"`
	ContentMarkdown string `json:"content_markdown"`
}

// UpdateGuideRequest represents the guide update request body
type UpdateGuideRequest struct {
	Title           string `json:"title" binding:"required,max=120"`
	Category        string `json:"category" binding:"required,oneof=TRAVEL STUDY GAME"`
	ContentMarkdown string `json:"content_markdown"`
}

// ListGuidesRequest represents guide list query parameters
type ListGuidesRequest struct {
	Category string `form:"category" binding:"omitempty,oneof=TRAVEL STUDY GAME"`
	AuthorID string `form:"author_id" binding:"omitempty,uuid"`
	Q        string `form:"q" binding:"omitempty,max=100"`
	Sort     string `form:"sort" binding:"omitempty,oneof=newest updated"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// AddCommentRequest represents the comment creation request body
type AddCommentRequest struct {
	Content string `json:"content" binding:"required,max=800"`
}

// CheckInRequest represents the check-in request body
type CheckInRequest struct {
	Day      string `json:"day" binding:"omitempty,datetime=2006-01-02"`
	Progress int    `json:"progress" binding:"min=0,max=100"`
	Note     string `json:"note" binding:"omitempty,max=400"`
}

// FollowingResponse reports whether the viewer follows a user
type FollowingResponse struct {
	Following bool `json:"following"`
}
