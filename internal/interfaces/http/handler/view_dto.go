package handler

import (
	"time"

	"github.com/google/uuid"

	guideapp "github.com/guideshare/backend/internal/application/guide"
	"github.com/guideshare/backend/internal/application/identity"
	socialapp "github.com/guideshare/backend/internal/application/social"
	"github.com/guideshare/backend/internal/domain/guide"
)

// UserResponse is the public user shape
type UserResponse struct {
	ID          uuid.UUID `json:"id"`
	Username    string    `json:"username"`
	DisplayName string    `json:"display_name"`
	Role        string    `json:"role"`
	Enabled     bool      `json:"enabled"`
	Status      int       `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

func toUserResponse(u identity.UserInfo) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Username:    u.Username,
		DisplayName: u.DisplayName,
		Role:        u.Role,
		Enabled:     u.Enabled,
		Status:      u.Status,
		CreatedAt:   u.CreatedAt,
	}
}

func toUserResponses(users []identity.UserInfo) []UserResponse {
	out := make([]UserResponse, len(users))
	for i, u := range users {
		out[i] = toUserResponse(u)
	}
	return out
}

// GuideSummaryResponse is the list-view shape of a guide
type GuideSummaryResponse struct {
	ID            uuid.UUID `json:"id"`
	AuthorID      uuid.UUID `json:"author_id"`
	AuthorName    string    `json:"author_name"`
	Title         string    `json:"title"`
	Category      string    `json:"category"`
	TemplateKey   string    `json:"template_key,omitempty"`
	LikeCount     int64     `json:"like_count"`
	FavoriteCount int64     `json:"favorite_count"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func toGuideSummaryResponse(g guideapp.GuideSummary) GuideSummaryResponse {
	return GuideSummaryResponse{
		ID:            g.ID,
		AuthorID:      g.AuthorID,
		AuthorName:    g.AuthorName,
		Title:         g.Title,
		Category:      g.Category,
		TemplateKey:   g.TemplateKey,
		LikeCount:     g.LikeCount,
		FavoriteCount: g.FavoriteCount,
		CreatedAt:     g.CreatedAt,
		UpdatedAt:     g.UpdatedAt,
	}
}

func toGuideSummaryResponses(guides []guideapp.GuideSummary) []GuideSummaryResponse {
	out := make([]GuideSummaryResponse, len(guides))
	for i, g := range guides {
		out[i] = toGuideSummaryResponse(g)
	}
	return out
}

// ViewerEngagementResponse carries the caller-specific flags on a guide
type ViewerEngagementResponse struct {
	LikedByMe      bool `json:"liked_by_me"`
	FavoritedByMe  bool `json:"favorited_by_me"`
	CheckedInToday bool `json:"checked_in_today"`
}

// GuideDetailResponse is the full guide view with read-time counts.
// Like and favorite counts come from the embedded summary.
type GuideDetailResponse struct {
	GuideSummaryResponse
	ContentMarkdown string                    `json:"content_markdown"`
	CheckinCount    int64                     `json:"checkin_count"`
	Viewer          *ViewerEngagementResponse `json:"viewer,omitempty"`
}

func toGuideDetailResponse(d *guideapp.GuideDetail) GuideDetailResponse {
	resp := GuideDetailResponse{
		GuideSummaryResponse: toGuideSummaryResponse(d.GuideSummary),
		ContentMarkdown:      d.ContentMarkdown,
		CheckinCount:         d.CheckinCount,
	}
	if d.Viewer != nil {
		resp.Viewer = &ViewerEngagementResponse{
			LikedByMe:      d.Viewer.LikedByMe,
			FavoritedByMe:  d.Viewer.FavoritedByMe,
			CheckedInToday: d.Viewer.CheckedInToday,
		}
	}
	return resp
}

// CommentResponse is a comment with its author's public name
type CommentResponse struct {
	ID         uuid.UUID `json:"id"`
	GuideID    uuid.UUID `json:"guide_id"`
	AuthorID   uuid.UUID `json:"author_id"`
	AuthorName string    `json:"author_name"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
}

func toCommentResponse(c guideapp.CommentView) CommentResponse {
	return CommentResponse{
		ID:         c.ID,
		GuideID:    c.GuideID,
		AuthorID:   c.AuthorID,
		AuthorName: c.AuthorName,
		Content:    c.Content,
		CreatedAt:  c.CreatedAt,
	}
}

func toCommentResponses(comments []guideapp.CommentView) []CommentResponse {
	out := make([]CommentResponse, len(comments))
	for i, c := range comments {
		out[i] = toCommentResponse(c)
	}
	return out
}

// TemplateResponse is one entry of the starter template catalog
type TemplateResponse struct {
	Key             string `json:"key"`
	Name            string `json:"name"`
	Category        string `json:"category"`
	StarterMarkdown string `json:"starter_markdown"`
}

func toTemplateResponses(templates []guide.Template) []TemplateResponse {
	out := make([]TemplateResponse, len(templates))
	for i, t := range templates {
		out[i] = TemplateResponse{
			Key:             t.Key,
			Name:            t.Name,
			Category:        string(t.Category),
			StarterMarkdown: t.StarterMarkdown,
		}
	}
	return out
}

// CheckInResponse is the read shape of a check-in
type CheckInResponse struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	GuideID   uuid.UUID `json:"guide_id"`
	Day       string    `json:"day"`
	Progress  int       `json:"progress"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toCheckInResponse(c socialapp.CheckInView) CheckInResponse {
	return CheckInResponse{
		ID:        c.ID,
		UserID:    c.UserID,
		GuideID:   c.GuideID,
		Day:       c.Day,
		Progress:  c.Progress,
		Note:      c.Note,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func toCheckInResponses(checkIns []socialapp.CheckInView) []CheckInResponse {
	out := make([]CheckInResponse, len(checkIns))
	for i, c := range checkIns {
		out[i] = toCheckInResponse(c)
	}
	return out
}

// FavoriteGuideResponse is one entry of the caller's favorites list
type FavoriteGuideResponse struct {
	ID         uuid.UUID `json:"id"`
	AuthorID   uuid.UUID `json:"author_id"`
	AuthorName string    `json:"author_name"`
	Title      string    `json:"title"`
	Category   string    `json:"category"`
	CreatedAt  time.Time `json:"created_at"`
}

func toFavoriteGuideResponses(favorites []socialapp.FavoriteGuide) []FavoriteGuideResponse {
	out := make([]FavoriteGuideResponse, len(favorites))
	for i, f := range favorites {
		out[i] = FavoriteGuideResponse{
			ID:         f.ID,
			AuthorID:   f.AuthorID,
			AuthorName: f.AuthorName,
			Title:      f.Title,
			Category:   f.Category,
			CreatedAt:  f.CreatedAt,
		}
	}
	return out
}

// FollowedUserResponse is one entry of a following list
type FollowedUserResponse struct {
	ID          uuid.UUID `json:"id"`
	Username    string    `json:"username"`
	DisplayName string    `json:"display_name"`
}

func toFollowedUserResponses(users []socialapp.FollowedUser) []FollowedUserResponse {
	out := make([]FollowedUserResponse, len(users))
	for i, u := range users {
		out[i] = FollowedUserResponse{
			ID:          u.ID,
			Username:    u.Username,
			DisplayName: u.DisplayName,
		}
	}
	return out
}

// FeedItemResponse is one entry of the followee feed
type FeedItemResponse struct {
	ID            uuid.UUID `json:"id"`
	AuthorID      uuid.UUID `json:"author_id"`
	AuthorName    string    `json:"author_name"`
	Title         string    `json:"title"`
	Category      string    `json:"category"`
	LikeCount     int64     `json:"like_count"`
	FavoriteCount int64     `json:"favorite_count"`
	CreatedAt     time.Time `json:"created_at"`
}

func toFeedItemResponses(items []socialapp.FeedItem) []FeedItemResponse {
	out := make([]FeedItemResponse, len(items))
	for i, item := range items {
		out[i] = FeedItemResponse{
			ID:            item.ID,
			AuthorID:      item.AuthorID,
			AuthorName:    item.AuthorName,
			Title:         item.Title,
			Category:      item.Category,
			LikeCount:     item.LikeCount,
			FavoriteCount: item.FavoriteCount,
			CreatedAt:     item.CreatedAt,
		}
	}
	return out
}
