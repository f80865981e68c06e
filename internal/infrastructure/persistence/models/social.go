package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/guideshare/backend/internal/domain/shared"
	"github.com/guideshare/backend/internal/domain/social"
)

// FollowModel is the persistence model for follow edges.
// The composite primary key enforces pair uniqueness.
type FollowModel struct {
	FollowerID uuid.UUID `gorm:"type:uuid;primaryKey"`
	FolloweeID uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	CreatedAt  time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (FollowModel) TableName() string {
	return "follows"
}

// ToDomain converts the persistence model to a domain Follow.
func (m *FollowModel) ToDomain() *social.Follow {
	return &social.Follow{
		FollowerID: m.FollowerID,
		FolloweeID: m.FolloweeID,
		CreatedAt:  m.CreatedAt,
	}
}

// FromDomain populates the persistence model from a domain Follow.
func (m *FollowModel) FromDomain(f *social.Follow) {
	m.FollowerID = f.FollowerID
	m.FolloweeID = f.FolloweeID
	m.CreatedAt = f.CreatedAt
}

// LikeModel is the persistence model for like marks.
type LikeModel struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	GuideID   uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (LikeModel) TableName() string {
	return "guide_likes"
}

// ToDomain converts the persistence model to a domain Like.
func (m *LikeModel) ToDomain() *social.Like {
	return &social.Like{
		UserID:    m.UserID,
		GuideID:   m.GuideID,
		CreatedAt: m.CreatedAt,
	}
}

// FromDomain populates the persistence model from a domain Like.
func (m *LikeModel) FromDomain(l *social.Like) {
	m.UserID = l.UserID
	m.GuideID = l.GuideID
	m.CreatedAt = l.CreatedAt
}

// FavoriteModel is the persistence model for favorite marks.
type FavoriteModel struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	GuideID   uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (FavoriteModel) TableName() string {
	return "guide_favorites"
}

// ToDomain converts the persistence model to a domain Favorite.
func (m *FavoriteModel) ToDomain() *social.Favorite {
	return &social.Favorite{
		UserID:    m.UserID,
		GuideID:   m.GuideID,
		CreatedAt: m.CreatedAt,
	}
}

// FromDomain populates the persistence model from a domain Favorite.
func (m *FavoriteModel) FromDomain(f *social.Favorite) {
	m.UserID = f.UserID
	m.GuideID = f.GuideID
	m.CreatedAt = f.CreatedAt
}

// CheckInModel is the persistence model for daily check-ins.
// The (user_id, guide_id, check_day) unique index backs the upsert.
type CheckInModel struct {
	BaseModel
	UserID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_checkin_user_guide_day"`
	GuideID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_checkin_user_guide_day;index"`
	CheckDay string    `gorm:"type:varchar(10);not null;uniqueIndex:uq_checkin_user_guide_day"`
	Progress int       `gorm:"not null;default:0"`
	Note     string    `gorm:"type:varchar(400)"`
}

// TableName returns the table name for GORM
func (CheckInModel) TableName() string {
	return "study_check_ins"
}

// ToDomain converts the persistence model to a domain CheckIn.
func (m *CheckInModel) ToDomain() *social.CheckIn {
	return &social.CheckIn{
		BaseEntity: shared.BaseEntity{
			ID:        m.ID,
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
		UserID:   m.UserID,
		GuideID:  m.GuideID,
		Day:      m.CheckDay,
		Progress: m.Progress,
		Note:     m.Note,
	}
}

// FromDomain populates the persistence model from a domain CheckIn.
func (m *CheckInModel) FromDomain(c *social.CheckIn) {
	m.FromDomainBaseEntity(c.BaseEntity)
	m.UserID = c.UserID
	m.GuideID = c.GuideID
	m.CheckDay = c.Day
	m.Progress = c.Progress
	m.Note = c.Note
}

// CheckInModelFromDomain creates a new persistence model from a domain CheckIn.
func CheckInModelFromDomain(c *social.CheckIn) *CheckInModel {
	m := &CheckInModel{}
	m.FromDomain(c)
	return m
}
