package models

import (
	"github.com/google/uuid"
	"github.com/guideshare/backend/internal/domain/guide"
	"github.com/guideshare/backend/internal/domain/shared"
)

// GuideModel is the persistence model for the Guide domain entity.
type GuideModel struct {
	BaseModel
	AuthorID        uuid.UUID      `gorm:"type:uuid;not null;index"`
	Title           string         `gorm:"type:varchar(120);not null"`
	Category        guide.Category `gorm:"type:varchar(20);not null;index"`
	TemplateKey     string         `gorm:"type:varchar(32)"`
	ContentMarkdown string         `gorm:"type:text"`
	Deleted         bool           `gorm:"not null;default:false;index"`
}

// TableName returns the table name for GORM
func (GuideModel) TableName() string {
	return "guides"
}

// ToDomain converts the persistence model to a domain Guide entity.
func (m *GuideModel) ToDomain() *guide.Guide {
	return &guide.Guide{
		BaseEntity: shared.BaseEntity{
			ID:        m.ID,
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
		AuthorID:        m.AuthorID,
		Title:           m.Title,
		Category:        m.Category,
		TemplateKey:     m.TemplateKey,
		ContentMarkdown: m.ContentMarkdown,
		Deleted:         m.Deleted,
	}
}

// FromDomain populates the persistence model from a domain Guide entity.
func (m *GuideModel) FromDomain(g *guide.Guide) {
	m.FromDomainBaseEntity(g.BaseEntity)
	m.AuthorID = g.AuthorID
	m.Title = g.Title
	m.Category = g.Category
	m.TemplateKey = g.TemplateKey
	m.ContentMarkdown = g.ContentMarkdown
	m.Deleted = g.Deleted
}

// GuideModelFromDomain creates a new persistence model from a domain Guide entity.
func GuideModelFromDomain(g *guide.Guide) *GuideModel {
	m := &GuideModel{}
	m.FromDomain(g)
	return m
}

// CommentModel is the persistence model for the Comment domain entity.
type CommentModel struct {
	BaseModel
	GuideID  uuid.UUID `gorm:"type:uuid;not null;index"`
	AuthorID uuid.UUID `gorm:"type:uuid;not null;index"`
	Content  string    `gorm:"type:varchar(800);not null"`
}

// TableName returns the table name for GORM
func (CommentModel) TableName() string {
	return "comments"
}

// ToDomain converts the persistence model to a domain Comment entity.
func (m *CommentModel) ToDomain() *guide.Comment {
	return &guide.Comment{
		BaseEntity: shared.BaseEntity{
			ID:        m.ID,
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
		GuideID:  m.GuideID,
		AuthorID: m.AuthorID,
		Content:  m.Content,
	}
}

// FromDomain populates the persistence model from a domain Comment entity.
func (m *CommentModel) FromDomain(c *guide.Comment) {
	m.FromDomainBaseEntity(c.BaseEntity)
	m.GuideID = c.GuideID
	m.AuthorID = c.AuthorID
	m.Content = c.Content
}

// CommentModelFromDomain creates a new persistence model from a domain Comment entity.
func CommentModelFromDomain(c *guide.Comment) *CommentModel {
	m := &CommentModel{}
	m.FromDomain(c)
	return m
}
