package social

import (
	"context"

	"github.com/google/uuid"
	"github.com/guideshare/backend/internal/domain/guide"
	"github.com/guideshare/backend/internal/domain/shared"
	"github.com/guideshare/backend/internal/domain/social"
	"go.uber.org/zap"
)

// CheckInService handles daily progress check-ins on study and game guides
type CheckInService struct {
	checkInRepo social.CheckInRepository
	guideRepo   guide.GuideRepository
	logger      *zap.Logger
}

// NewCheckInService creates a new CheckInService
func NewCheckInService(
	checkInRepo social.CheckInRepository,
	guideRepo guide.GuideRepository,
	logger *zap.Logger,
) *CheckInService {
	return &CheckInService{
		checkInRepo: checkInRepo,
		guideRepo:   guideRepo,
		logger:      logger,
	}
}

// CheckIn records the caller's progress for one day. A same-day repeat
// overwrites progress and note but keeps the original creation time.
func (s *CheckInService) CheckIn(ctx context.Context, input CheckInInput) (*CheckInView, error) {
	g, err := s.guideRepo.FindByID(ctx, input.GuideID)
	if err != nil {
		return nil, err
	}
	if !g.Category.SupportsCheckIn() {
		return nil, shared.NewDomainError("INVALID_OPERATION", "Check-ins are only supported on study and game guides")
	}

	checkIn, err := social.NewCheckIn(input.UserID, input.GuideID, input.Day, input.Progress, input.Note)
	if err != nil {
		return nil, err
	}

	if err := s.checkInRepo.Upsert(ctx, checkIn); err != nil {
		return nil, err
	}

	// A same-day repeat keeps the stored row's id and creation time, so
	// the response must come from the persisted row, not the fresh entity.
	stored, err := s.checkInRepo.FindByDay(ctx, input.UserID, input.GuideID, checkIn.Day)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Check-in recorded",
		zap.String("user_id", input.UserID.String()),
		zap.String("guide_id", input.GuideID.String()),
		zap.String("day", stored.Day),
		zap.Int("progress", stored.Progress))

	view := toCheckInView(stored)
	return &view, nil
}

// MyCheckIns returns the caller's check-ins, optionally limited to one
// guide, newest day first
func (s *CheckInService) MyCheckIns(ctx context.Context, userID uuid.UUID, guideID *uuid.UUID) ([]CheckInView, error) {
	checkIns, err := s.checkInRepo.FindByUserID(ctx, userID, guideID)
	if err != nil {
		return nil, err
	}
	return toCheckInViews(checkIns), nil
}

// GuideCheckIns returns all check-ins on a visible guide, newest day first
func (s *CheckInService) GuideCheckIns(ctx context.Context, guideID uuid.UUID) ([]CheckInView, error) {
	if _, err := s.guideRepo.FindByID(ctx, guideID); err != nil {
		return nil, err
	}

	checkIns, err := s.checkInRepo.FindByGuideID(ctx, guideID)
	if err != nil {
		return nil, err
	}
	return toCheckInViews(checkIns), nil
}
