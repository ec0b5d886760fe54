package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Project is the central entity of the portfolio. LikesCount and
// CommentsCount are denormalized and must always match the live Like
// and Comment rows; they are updated in the same transaction as the
// rows they account for.
type Project struct {
	ID            uuid.UUID  `json:"id" db:"id" gorm:"type:uuid;primaryKey"`
	Title         string     `json:"title" db:"title" gorm:"type:text;not null"`
	Description   *string    `json:"description,omitempty" db:"description" gorm:"type:text"`
	Content       *string    `json:"content,omitempty" db:"content" gorm:"type:text"`
	ImageURL      *string    `json:"image_url,omitempty" db:"image_url" gorm:"type:text"`
	DemoURL       *string    `json:"demo_url,omitempty" db:"demo_url" gorm:"type:text"`
	GithubURL     *string    `json:"github_url,omitempty" db:"github_url" gorm:"type:text"`
	Technologies  *string    `json:"technologies,omitempty" db:"technologies" gorm:"type:text"` // comma-separated
	IsFeatured    bool       `json:"is_featured" db:"is_featured" gorm:"not null;default:false"`
	IsPublished   bool       `json:"is_published" db:"is_published" gorm:"not null;default:false"`
	LikesCount    int        `json:"likes_count" db:"likes_count" gorm:"not null;default:0"`
	CommentsCount int        `json:"comments_count" db:"comments_count" gorm:"not null;default:0"`
	ViewCount     int        `json:"view_count" db:"view_count" gorm:"not null;default:0"`
	Slug          string     `json:"slug" db:"slug" gorm:"type:text;not null;uniqueIndex:idx_project_slug"`
	CategoryID    *uuid.UUID `json:"category_id,omitempty" db:"category_id" gorm:"type:uuid;index"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at" db:"updated_at"`

	Category *Category      `json:"category,omitempty" gorm:"foreignKey:CategoryID;references:ID"`
	Likes    []Like         `json:"likes,omitempty" gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE"`
	Comments []Comment      `json:"comments,omitempty" gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE"`
	Media    []ProjectMedia `json:"media,omitempty" gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE"`
}

func (p *Project) BeforeCreate(*gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
