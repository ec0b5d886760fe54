package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OAuth stores the session linkage owned by the external identity
// provider. The application never writes to it directly; the table
// exists so the schema matches what the auth collaborator expects.
type OAuth struct {
	ID                uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey"`
	UserID            string    `json:"user_id" db:"user_id" gorm:"type:text;not null;uniqueIndex:idx_oauth_session"`
	BrowserSessionKey string    `json:"browser_session_key" db:"browser_session_key" gorm:"type:text;not null;uniqueIndex:idx_oauth_session"`
	Provider          string    `json:"provider" db:"provider" gorm:"type:text;not null;uniqueIndex:idx_oauth_session"`
	Token             []byte    `json:"-" db:"token" gorm:"type:bytea"`
	CreatedAt         time.Time `json:"created_at" db:"created_at"`

	User User `json:"user,omitempty" gorm:"foreignKey:UserID;references:ID"`
}

func (o *OAuth) BeforeCreate(*gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}
