package database

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bruxa61/PortfolioRAFA/models"
)

type CommentRepo struct {
	db *gorm.DB
}

func NewCommentRepo(db *gorm.DB) *CommentRepo {
	return &CommentRepo{db}
}

// FindApprovedByProject returns visible comments for a project detail
// page, newest first.
func (r *CommentRepo) FindApprovedByProject(projectID uuid.UUID) ([]*models.Comment, error) {
	var comments []*models.Comment
	err := r.db.Preload("User").
		Where("project_id = ? AND is_approved = ?", projectID, true).
		Order("created_at DESC").
		Find(&comments).Error
	return comments, err
}

// FindRecent returns the latest comments for the admin dashboard.
func (r *CommentRepo) FindRecent(limit int) ([]*models.Comment, error) {
	var comments []*models.Comment
	err := r.db.Preload("User").Preload("Project").
		Order("created_at DESC").
		Limit(limit).
		Find(&comments).Error
	return comments, err
}

func (r *CommentRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Comment{}).Count(&count).Error
	return count, err
}
