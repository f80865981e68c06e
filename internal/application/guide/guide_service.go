package guide

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/guideshare/backend/internal/domain/guide"
	"github.com/guideshare/backend/internal/domain/identity"
	"github.com/guideshare/backend/internal/domain/shared"
	"github.com/guideshare/backend/internal/domain/social"
	"go.uber.org/zap"
)

// GuideService handles guide authoring and reading
type GuideService struct {
	guideRepo    guide.GuideRepository
	userRepo     identity.UserRepository
	likeRepo     social.LikeRepository
	favoriteRepo social.FavoriteRepository
	checkInRepo  social.CheckInRepository
	logger       *zap.Logger
}

// NewGuideService creates a new GuideService
func NewGuideService(
	guideRepo guide.GuideRepository,
	userRepo identity.UserRepository,
	likeRepo social.LikeRepository,
	favoriteRepo social.FavoriteRepository,
	checkInRepo social.CheckInRepository,
	logger *zap.Logger,
) *GuideService {
	return &GuideService{
		guideRepo:    guideRepo,
		userRepo:     userRepo,
		likeRepo:     likeRepo,
		favoriteRepo: favoriteRepo,
		checkInRepo:  checkInRepo,
		logger:       logger,
	}
}

// Create creates a new guide. An empty body is prefilled from the chosen
// starter template.
func (s *GuideService) Create(ctx context.Context, input CreateGuideInput) (*GuideSummary, error) {
	content := input.ContentMarkdown
	if input.TemplateKey != "" {
		template, ok := guide.TemplateByKey(input.TemplateKey)
		if !ok {
			return nil, shared.NewDomainError("VALIDATION_ERROR", "Unknown template key")
		}
		if content == "" {
			content = template.StarterMarkdown
		}
	}

	g, err := guide.NewGuide(input.AuthorID, input.Title, guide.Category(input.Category), input.TemplateKey, content)
	if err != nil {
		return nil, err
	}

	if err := s.guideRepo.Create(ctx, g); err != nil {
		return nil, err
	}

	s.logger.Info("Guide created",
		zap.String("guide_id", g.ID.String()),
		zap.String("author_id", g.AuthorID.String()),
		zap.String("category", string(g.Category)))

	summary := toGuideSummary(g, s.authorName(ctx, g.AuthorID))
	return &summary, nil
}

// Update modifies a guide's content. Only the author or an admin may update.
func (s *GuideService) Update(ctx context.Context, input UpdateGuideInput) (*GuideSummary, error) {
	g, err := s.guideRepo.FindByID(ctx, input.GuideID)
	if err != nil {
		return nil, err
	}

	if !g.IsOwnedBy(input.CallerID) && !input.CallerIsAdmin {
		return nil, shared.NewDomainError("FORBIDDEN", "Only the author may modify this guide")
	}

	if err := g.UpdateContent(input.Title, guide.Category(input.Category), input.ContentMarkdown); err != nil {
		return nil, err
	}

	if err := s.guideRepo.Update(ctx, g); err != nil {
		return nil, err
	}

	summary := toGuideSummary(g, s.authorName(ctx, g.AuthorID))
	return &summary, nil
}

// Delete logically deletes a guide; the row and its id remain
func (s *GuideService) Delete(ctx context.Context, guideID, callerID uuid.UUID, callerIsAdmin bool) error {
	g, err := s.guideRepo.FindByID(ctx, guideID)
	if err != nil {
		return err
	}

	if !g.IsOwnedBy(callerID) && !callerIsAdmin {
		return shared.NewDomainError("FORBIDDEN", "Only the author may delete this guide")
	}

	g.MarkDeleted()

	if err := s.guideRepo.Update(ctx, g); err != nil {
		return err
	}

	s.logger.Info("Guide deleted",
		zap.String("guide_id", g.ID.String()),
		zap.String("caller_id", callerID.String()))

	return nil
}

// Get returns the full guide view with read-time engagement counts.
// viewerID is nil for anonymous callers.
func (s *GuideService) Get(ctx context.Context, guideID uuid.UUID, viewerID *uuid.UUID) (*GuideDetail, error) {
	g, err := s.guideRepo.FindByID(ctx, guideID)
	if err != nil {
		return nil, err
	}

	likeCount, err := s.likeRepo.CountByGuideID(ctx, g.ID)
	if err != nil {
		return nil, err
	}
	favoriteCount, err := s.favoriteRepo.CountByGuideID(ctx, g.ID)
	if err != nil {
		return nil, err
	}
	checkinCount, err := s.checkInRepo.CountDistinctUsers(ctx, g.ID)
	if err != nil {
		return nil, err
	}

	summary := toGuideSummary(g, s.authorName(ctx, g.AuthorID))
	summary.LikeCount = likeCount
	summary.FavoriteCount = favoriteCount

	detail := &GuideDetail{
		GuideSummary:    summary,
		ContentMarkdown: g.ContentMarkdown,
		CheckinCount:    checkinCount,
	}

	if viewerID != nil {
		viewer, err := s.viewerEngagement(ctx, *viewerID, g.ID)
		if err != nil {
			return nil, err
		}
		detail.Viewer = viewer
	}

	return detail, nil
}

// List returns visible guides with optional category, author and title
// keyword filters. The default order is newest first; sort "updated"
// orders by last modification instead.
func (s *GuideService) List(ctx context.Context, input ListGuidesInput) ([]GuideSummary, int64, error) {
	filter := guide.NewGuideFilter()
	if input.Category != "" {
		category := guide.Category(input.Category)
		if !category.IsValid() {
			return nil, 0, shared.NewDomainError("VALIDATION_ERROR", "Unknown category")
		}
		filter = filter.WithCategory(category)
	}
	if input.AuthorID != nil {
		filter = filter.WithAuthor(*input.AuthorID)
	}
	if input.Keyword != "" {
		filter = filter.WithKeyword(input.Keyword)
	}
	switch input.Sort {
	case "", guide.SortNewest:
	case guide.SortUpdated:
		filter = filter.WithSort(guide.SortUpdated)
	default:
		return nil, 0, shared.NewDomainError("VALIDATION_ERROR", "Unknown sort order")
	}
	if input.Page > 0 || input.PageSize > 0 {
		filter.Page = input.Page
		filter.PageSize = input.PageSize
	}

	guides, total, err := s.guideRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	summaries, err := s.toSummaries(ctx, guides)
	if err != nil {
		return nil, 0, err
	}
	return summaries, total, nil
}

// Templates returns the fixed starter template catalog
func (s *GuideService) Templates() []guide.Template {
	return guide.Templates()
}

func (s *GuideService) viewerEngagement(ctx context.Context, viewerID, guideID uuid.UUID) (*ViewerEngagement, error) {
	liked, err := s.likeRepo.Exists(ctx, viewerID, guideID)
	if err != nil {
		return nil, err
	}
	favorited, err := s.favoriteRepo.Exists(ctx, viewerID, guideID)
	if err != nil {
		return nil, err
	}
	today := time.Now().Format(social.DayFormat)
	checkedIn, err := s.checkInRepo.Exists(ctx, viewerID, guideID, today)
	if err != nil {
		return nil, err
	}

	return &ViewerEngagement{
		LikedByMe:      liked,
		FavoritedByMe:  favorited,
		CheckedInToday: checkedIn,
	}, nil
}

// toSummaries maps guides to summaries, resolving author names in one
// batch and attaching per-guide engagement counts
func (s *GuideService) toSummaries(ctx context.Context, guides []*guide.Guide) ([]GuideSummary, error) {
	names := s.authorNames(ctx, guides)
	summaries := make([]GuideSummary, len(guides))
	for i, g := range guides {
		summary := toGuideSummary(g, names[g.AuthorID])

		likeCount, err := s.likeRepo.CountByGuideID(ctx, g.ID)
		if err != nil {
			return nil, err
		}
		favoriteCount, err := s.favoriteRepo.CountByGuideID(ctx, g.ID)
		if err != nil {
			return nil, err
		}
		summary.LikeCount = likeCount
		summary.FavoriteCount = favoriteCount

		summaries[i] = summary
	}
	return summaries, nil
}

func (s *GuideService) authorNames(ctx context.Context, guides []*guide.Guide) map[uuid.UUID]string {
	idSet := make(map[uuid.UUID]struct{}, len(guides))
	ids := make([]uuid.UUID, 0, len(guides))
	for _, g := range guides {
		if _, ok := idSet[g.AuthorID]; !ok {
			idSet[g.AuthorID] = struct{}{}
			ids = append(ids, g.AuthorID)
		}
	}
	return s.lookupNames(ctx, ids)
}

func (s *GuideService) authorName(ctx context.Context, authorID uuid.UUID) string {
	return s.lookupNames(ctx, []uuid.UUID{authorID})[authorID]
}

// lookupNames resolves public display names. A lookup failure degrades to
// empty names rather than failing the read.
func (s *GuideService) lookupNames(ctx context.Context, ids []uuid.UUID) map[uuid.UUID]string {
	names := make(map[uuid.UUID]string, len(ids))
	if len(ids) == 0 {
		return names
	}

	users, err := s.userRepo.FindByIDs(ctx, ids)
	if err != nil {
		s.logger.Warn("Failed to resolve author names", zap.Error(err))
		return names
	}
	for _, user := range users {
		names[user.ID] = user.PublicDisplayName()
	}
	return names
}
