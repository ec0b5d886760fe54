package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Notification kinds. Anything outside this set is stored as general.
const (
	NotificationTypeLike    = "like"
	NotificationTypeComment = "comment"
	NotificationTypeGeneral = "general"
)

// Notification is an event record surfaced on the admin dashboard.
// Notifications are created by the interaction service, never deleted,
// only marked as read.
type Notification struct {
	ID               uuid.UUID  `json:"id" db:"id" gorm:"type:uuid;primaryKey"`
	Title            string     `json:"title" db:"title" gorm:"type:text;not null"`
	Message          string     `json:"message" db:"message" gorm:"type:text;not null"`
	Type             string     `json:"type" db:"type" gorm:"type:text;not null;default:'general'"`
	IsRead           bool       `json:"is_read" db:"is_read" gorm:"not null;default:false"`
	RelatedProjectID *uuid.UUID `json:"related_project_id,omitempty" db:"related_project_id" gorm:"type:uuid"`
	RelatedUserID    *string    `json:"related_user_id,omitempty" db:"related_user_id" gorm:"type:text"`
	CreatedAt        time.Time  `json:"created_at" db:"created_at"`

	RelatedProject *Project `json:"related_project,omitempty" gorm:"foreignKey:RelatedProjectID;references:ID"`
	RelatedUser    *User    `json:"related_user,omitempty" gorm:"foreignKey:RelatedUserID;references:ID"`
}

func (n *Notification) BeforeCreate(*gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return nil
}
