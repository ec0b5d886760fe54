package models

import "time"

// User mirrors the actor supplied by the external identity provider.
// The ID is the provider's subject identifier, not locally generated.
type User struct {
	ID              string     `json:"id" db:"id" gorm:"type:text;primaryKey;not null"`
	Email           *string    `json:"email,omitempty" db:"email" gorm:"type:text;unique"`
	FirstName       *string    `json:"first_name,omitempty" db:"first_name" gorm:"type:text"`
	LastName        *string    `json:"last_name,omitempty" db:"last_name" gorm:"type:text"`
	ProfileImageURL *string    `json:"profile_image_url,omitempty" db:"profile_image_url" gorm:"type:text"`
	IsAdmin         bool       `json:"is_admin" db:"is_admin" gorm:"not null;default:false"`
	CreatedAt       time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at" db:"updated_at"`

	Likes    []Like    `json:"likes,omitempty" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
	Comments []Comment `json:"comments,omitempty" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
}

// DisplayName returns a human-readable name for notification messages.
func (u User) DisplayName() string {
	if u.FirstName != nil && *u.FirstName != "" {
		return *u.FirstName
	}
	return "Usuário"
}
