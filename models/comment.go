package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Comment is visitor feedback on a project. New comments are approved
// by default; moderation only flips IsApproved.
type Comment struct {
	ID         uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey"`
	UserID     string    `json:"user_id" db:"user_id" gorm:"type:text;not null;index"`
	ProjectID  uuid.UUID `json:"project_id" db:"project_id" gorm:"type:uuid;not null;index"`
	Content    string    `json:"content" db:"content" gorm:"type:text;not null"`
	IsApproved bool      `json:"is_approved" db:"is_approved" gorm:"not null;default:true"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`

	User    User    `json:"user,omitempty" gorm:"foreignKey:UserID;references:ID"`
	Project Project `json:"project,omitempty" gorm:"foreignKey:ProjectID;references:ID"`
}

func (c *Comment) BeforeCreate(*gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
