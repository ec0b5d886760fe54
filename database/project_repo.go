package database

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bruxa61/PortfolioRAFA/models"
)

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// FindAll returns all projects ordered newest first, drafts included.
func (r *ProjectRepo) FindAll(page, perPage int) ([]*models.Project, int64, error) {
	var projects []*models.Project
	var total int64

	if err := r.db.Model(&models.Project{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Preload("Category").
		Order("created_at DESC").
		Offset(pageOffset(page, perPage)).
		Limit(perPage).
		Find(&projects).Error
	return projects, total, err
}

// FindPublished returns published projects, optionally filtered by
// category, ordered newest first.
func (r *ProjectRepo) FindPublished(categoryID *uuid.UUID, page, perPage int) ([]*models.Project, int64, error) {
	query := r.db.Model(&models.Project{}).Where("is_published = ?", true)
	if categoryID != nil {
		query = query.Where("category_id = ?", *categoryID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var projects []*models.Project
	err := query.Preload("Category").
		Order("created_at DESC").
		Offset(pageOffset(page, perPage)).
		Limit(perPage).
		Find(&projects).Error
	return projects, total, err
}

// FindFeatured returns published featured projects for the home page.
func (r *ProjectRepo) FindFeatured(limit int) ([]*models.Project, error) {
	var projects []*models.Project
	err := r.db.Where("is_published = ? AND is_featured = ?", true, true).
		Order("created_at DESC").
		Limit(limit).
		Find(&projects).Error
	return projects, err
}

// FindRecentPublished returns the newest published projects.
func (r *ProjectRepo) FindRecentPublished(limit int) ([]*models.Project, error) {
	var projects []*models.Project
	err := r.db.Where("is_published = ?", true).
		Order("created_at DESC").
		Limit(limit).
		Find(&projects).Error
	return projects, err
}

// FindPublishedBySlug returns a published project by its slug.
func (r *ProjectRepo) FindPublishedBySlug(slug string) (*models.Project, error) {
	var project models.Project
	err := r.db.Preload("Category").Preload("Media").
		Where("slug = ? AND is_published = ?", slug, true).
		First(&project).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// IncrementViewCount bumps the view counter without touching any
// other column, so concurrent detail views never clobber each other.
func (r *ProjectRepo) IncrementViewCount(id uuid.UUID) error {
	return r.db.Model(&models.Project{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + ?", 1)).Error
}

// CountByPublished returns project totals for the dashboard.
func (r *ProjectRepo) CountByPublished(published bool) (int64, error) {
	var count int64
	err := r.db.Model(&models.Project{}).Where("is_published = ?", published).Count(&count).Error
	return count, err
}

func (r *ProjectRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Project{}).Count(&count).Error
	return count, err
}

// FindRecent returns the newest projects regardless of publish state.
func (r *ProjectRepo) FindRecent(limit int) ([]*models.Project, error) {
	var projects []*models.Project
	err := r.db.Order("created_at DESC").Limit(limit).Find(&projects).Error
	return projects, err
}

func pageOffset(page, perPage int) int {
	if page < 1 {
		page = 1
	}
	return (page - 1) * perPage
}
