package database

import (
	"errors"

	"gorm.io/gorm"

	"github.com/bruxa61/PortfolioRAFA/models"
)

type AboutPageRepo struct {
	db *gorm.DB
}

func NewAboutPageRepo(db *gorm.DB) *AboutPageRepo {
	return &AboutPageRepo{db}
}

// Get returns the singleton about page row, or nil if it has never
// been created.
func (r *AboutPageRepo) Get() (*models.AboutPage, error) {
	var about models.AboutPage
	err := r.db.First(&about, "id = ?", models.AboutPageID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &about, nil
}
