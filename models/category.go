package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category groups projects for filtering. Deleting a category detaches
// its projects instead of deleting them.
type Category struct {
	ID          uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey"`
	Name        string    `json:"name" db:"name" gorm:"type:text;not null;unique"`
	Description *string   `json:"description,omitempty" db:"description" gorm:"type:text"`
	Color       string    `json:"color" db:"color" gorm:"type:text;not null;default:'#6c757d'"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`

	Projects []Project `json:"projects,omitempty" gorm:"foreignKey:CategoryID;references:ID;constraint:OnDelete:SET NULL"`
}

func (c *Category) BeforeCreate(*gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
