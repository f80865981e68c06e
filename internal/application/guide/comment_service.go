package guide

import (
	"context"

	"github.com/google/uuid"
	"github.com/guideshare/backend/internal/domain/guide"
	"github.com/guideshare/backend/internal/domain/identity"
	"go.uber.org/zap"
)

// CommentService handles comments on guides
type CommentService struct {
	commentRepo guide.CommentRepository
	guideRepo   guide.GuideRepository
	userRepo    identity.UserRepository
	logger      *zap.Logger
}

// NewCommentService creates a new CommentService
func NewCommentService(
	commentRepo guide.CommentRepository,
	guideRepo guide.GuideRepository,
	userRepo identity.UserRepository,
	logger *zap.Logger,
) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		guideRepo:   guideRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

// Add posts a comment on a visible guide
func (s *CommentService) Add(ctx context.Context, guideID, authorID uuid.UUID, content string) (*CommentView, error) {
	if _, err := s.guideRepo.FindByID(ctx, guideID); err != nil {
		return nil, err
	}

	comment, err := guide.NewComment(guideID, authorID, content)
	if err != nil {
		return nil, err
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	s.logger.Info("Comment added",
		zap.String("guide_id", guideID.String()),
		zap.String("author_id", authorID.String()))

	view := s.toView(ctx, comment)
	return &view, nil
}

// List returns a guide's comments, oldest first
func (s *CommentService) List(ctx context.Context, guideID uuid.UUID) ([]CommentView, error) {
	if _, err := s.guideRepo.FindByID(ctx, guideID); err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.FindByGuideID(ctx, guideID)
	if err != nil {
		return nil, err
	}

	names := s.commentAuthorNames(ctx, comments)
	views := make([]CommentView, len(comments))
	for i, comment := range comments {
		views[i] = CommentView{
			ID:         comment.ID,
			GuideID:    comment.GuideID,
			AuthorID:   comment.AuthorID,
			AuthorName: names[comment.AuthorID],
			Content:    comment.Content,
			CreatedAt:  comment.CreatedAt,
		}
	}
	return views, nil
}

func (s *CommentService) toView(ctx context.Context, comment *guide.Comment) CommentView {
	name := ""
	if users, err := s.userRepo.FindByIDs(ctx, []uuid.UUID{comment.AuthorID}); err == nil && len(users) == 1 {
		name = users[0].PublicDisplayName()
	}
	return CommentView{
		ID:         comment.ID,
		GuideID:    comment.GuideID,
		AuthorID:   comment.AuthorID,
		AuthorName: name,
		Content:    comment.Content,
		CreatedAt:  comment.CreatedAt,
	}
}

func (s *CommentService) commentAuthorNames(ctx context.Context, comments []*guide.Comment) map[uuid.UUID]string {
	names := make(map[uuid.UUID]string)
	if len(comments) == 0 {
		return names
	}

	idSet := make(map[uuid.UUID]struct{}, len(comments))
	ids := make([]uuid.UUID, 0, len(comments))
	for _, comment := range comments {
		if _, ok := idSet[comment.AuthorID]; !ok {
			idSet[comment.AuthorID] = struct{}{}
			ids = append(ids, comment.AuthorID)
		}
	}

	users, err := s.userRepo.FindByIDs(ctx, ids)
	if err != nil {
		s.logger.Warn("Failed to resolve comment author names", zap.Error(err))
		return names
	}
	for _, user := range users {
		names[user.ID] = user.PublicDisplayName()
	}
	return names
}
