package models

import (
	"time"

	"gorm.io/datatypes"
)

// AboutPageID is the well-known primary key of the singleton row.
// Loading by a fixed key avoids the ambiguity of "first row returned"
// if stray rows ever appear.
const AboutPageID uint = 1

// AboutPage holds the bio, skills and contact links shown on the
// about page. The application uses exactly one row.
type AboutPage struct {
	ID           uint           `json:"id" db:"id" gorm:"primaryKey"`
	Title        string         `json:"title" db:"title" gorm:"type:text;not null;default:'Sobre Mim'"`
	Content      *string        `json:"content,omitempty" db:"content" gorm:"type:text"`
	ProfileImage *string        `json:"profile_image,omitempty" db:"profile_image" gorm:"type:text"`
	Skills       datatypes.JSON `json:"skills,omitempty" db:"skills"`
	ContactEmail *string        `json:"contact_email,omitempty" db:"contact_email" gorm:"type:text"`
	ContactPhone *string        `json:"contact_phone,omitempty" db:"contact_phone" gorm:"type:text"`
	LinkedinURL  *string        `json:"linkedin_url,omitempty" db:"linkedin_url" gorm:"type:text"`
	GithubURL    *string        `json:"github_url,omitempty" db:"github_url" gorm:"type:text"`
	InstagramURL *string        `json:"instagram_url,omitempty" db:"instagram_url" gorm:"type:text"`
	WhatsappURL  *string        `json:"whatsapp_url,omitempty" db:"whatsapp_url" gorm:"type:text"`
	ResumeURL    *string        `json:"resume_url,omitempty" db:"resume_url" gorm:"type:text"`
	UpdatedAt    time.Time      `json:"updated_at" db:"updated_at"`
}
