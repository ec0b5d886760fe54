package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bruxa61/PortfolioRAFA/models"
)

type LikeRepo struct {
	db *gorm.DB
}

func NewLikeRepo(db *gorm.DB) *LikeRepo {
	return &LikeRepo{db}
}

// ExistsForUser reports whether the user already likes the project.
func (r *LikeRepo) ExistsForUser(projectID uuid.UUID, userID string) (bool, error) {
	var like models.Like
	err := r.db.Where("project_id = ? AND user_id = ?", projectID, userID).First(&like).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Count returns the site-wide like total for the dashboard.
func (r *LikeRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Like{}).Count(&count).Error
	return count, err
}
