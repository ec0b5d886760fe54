package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProjectMedia records a stored file attached to a project. The file
// itself lives in object storage; only metadata is kept here.
type ProjectMedia struct {
	ID               uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey"`
	ProjectID        uuid.UUID `json:"project_id" db:"project_id" gorm:"type:uuid;not null;index"`
	Filename         string    `json:"filename" db:"filename" gorm:"type:text;not null"`
	OriginalFilename string    `json:"original_filename" db:"original_filename" gorm:"type:text;not null"`
	MediaType        string    `json:"media_type" db:"media_type" gorm:"type:text;not null"` // image, video, document
	FileSize         *int64    `json:"file_size,omitempty" db:"file_size"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`

	Project Project `json:"project,omitempty" gorm:"foreignKey:ProjectID;references:ID"`
}

func (m *ProjectMedia) BeforeCreate(*gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
