package database

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/bruxa61/PortfolioRAFA/models"
)

type UserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *UserRepo {
	return &UserRepo{db}
}

// Upsert mirrors the actor supplied by the identity provider into the
// local users table. The provider is authoritative for every identity
// field, including the admin flag.
func (r *UserRepo) Upsert(user *models.User) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"email", "first_name", "last_name", "profile_image_url", "is_admin", "updated_at",
		}),
	}).Create(user).Error
}

// Count returns the registered-user total for the dashboard.
func (r *UserRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).Count(&count).Error
	return count, err
}
