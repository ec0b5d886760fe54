package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Like is a (user, project) pair. The composite unique index is the
// source of truth for "a user likes a project at most once"; the
// interaction service relies on it to resolve concurrent toggles.
type Like struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey"`
	UserID    string    `json:"user_id" db:"user_id" gorm:"type:text;not null;uniqueIndex:idx_like_user_project"`
	ProjectID uuid.UUID `json:"project_id" db:"project_id" gorm:"type:uuid;not null;uniqueIndex:idx_like_user_project"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`

	User    User    `json:"user,omitempty" gorm:"foreignKey:UserID;references:ID"`
	Project Project `json:"project,omitempty" gorm:"foreignKey:ProjectID;references:ID"`
}

func (l *Like) BeforeCreate(*gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
