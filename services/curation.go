package services

import (
	"context"
	"errors"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/bruxa61/PortfolioRAFA/errs"
	"github.com/bruxa61/PortfolioRAFA/models"
	"github.com/bruxa61/PortfolioRAFA/slug"
	"github.com/bruxa61/PortfolioRAFA/storage"
)

// CurationService is the admin-only write path for projects,
// categories, the about page and notifications. Callers are expected
// to have verified administrative capability already.
type CurationService struct {
	db       *gorm.DB
	uploader Uploader
	logger   zerolog.Logger
}

func NewCurationService(db *gorm.DB, uploader Uploader) *CurationService {
	return &CurationService{
		db:       db,
		uploader: uploader,
		logger:   log.With().Str("serviceName", "curationService").Logger(),
	}
}

// ProjectInput carries the editable project fields. Boolean flags
// default to false when the corresponding form indicator is absent.
type ProjectInput struct {
	Title        string
	Description  string
	Content      string
	DemoURL      string
	GithubURL    string
	Technologies string
	CategoryID   *uuid.UUID
	IsFeatured   bool
	IsPublished  bool
	Image        *Upload
}

// SaveProject creates a project or updates the one named by
// existingID. The slug is derived from the title at creation time only
// and stays stable across later title edits. A duplicate slug rolls
// the whole transaction back and surfaces as a conflict.
func (s *CurationService) SaveProject(ctx context.Context, input ProjectInput, existingID *uuid.UUID) (*models.Project, error) {
	input.Title = strings.TrimSpace(input.Title)
	input.Description = strings.TrimSpace(input.Description)
	if input.Title == "" {
		return nil, errs.NewValidationError("title", "title is required")
	}
	if input.Description == "" {
		return nil, errs.NewValidationError("description", "description is required")
	}

	imageURL, err := s.store(ctx, input.Image)
	if err != nil {
		return nil, err
	}

	var project models.Project
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if existingID != nil {
			if err := tx.First(&project, "id = ?", *existingID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return errs.NewNotFound("project")
				}
				return errs.NewDatabaseError("find", "project", err)
			}
		} else {
			project.Slug = slug.Make(input.Title)
		}

		project.Title = input.Title
		project.Description = optional(input.Description)
		project.Content = optional(strings.TrimSpace(input.Content))
		project.DemoURL = optional(strings.TrimSpace(input.DemoURL))
		project.GithubURL = optional(strings.TrimSpace(input.GithubURL))
		project.Technologies = optional(strings.TrimSpace(input.Technologies))
		project.CategoryID = input.CategoryID
		project.IsFeatured = input.IsFeatured
		project.IsPublished = input.IsPublished
		if imageURL != "" {
			project.ImageURL = &imageURL
		}

		if err := tx.Save(&project).Error; err != nil {
			return errs.NewDatabaseError("save", "project", err)
		}

		if input.Image != nil && imageURL != "" {
			media := models.ProjectMedia{
				ProjectID:        project.ID,
				Filename:         path.Base(imageURL),
				OriginalFilename: input.Image.Filename,
				MediaType:        storage.MediaType(input.Image.Filename),
			}
			if input.Image.Size > 0 {
				media.FileSize = &input.Image.Size
			}
			if err := tx.Create(&media).Error; err != nil {
				return errs.NewDatabaseError("create", "project media", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("projectID", project.ID.String()).Str("slug", project.Slug).Msg("project saved")
	return &project, nil
}

// DeleteProject removes the project together with its likes, comments
// and media. Owned rows are deleted first inside the same transaction
// so no orphan survives a partial failure.
func (s *CurationService) DeleteProject(ctx context.Context, id uuid.UUID) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var project models.Project
		if err := tx.First(&project, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.NewNotFound("project")
			}
			return errs.NewDatabaseError("find", "project", err)
		}

		if err := tx.Delete(&models.Like{}, "project_id = ?", id).Error; err != nil {
			return errs.NewDatabaseError("delete", "likes", err)
		}
		if err := tx.Delete(&models.Comment{}, "project_id = ?", id).Error; err != nil {
			return errs.NewDatabaseError("delete", "comments", err)
		}
		if err := tx.Delete(&models.ProjectMedia{}, "project_id = ?", id).Error; err != nil {
			return errs.NewDatabaseError("delete", "project media", err)
		}
		if err := tx.Delete(&models.Project{}, "id = ?", id).Error; err != nil {
			return errs.NewDatabaseError("delete", "project", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info().Str("projectID", id.String()).Msg("project deleted")
	return nil
}

// CategoryInput carries the editable category fields.
type CategoryInput struct {
	Name        string
	Description string
	Color       string
}

// SaveCategory creates or updates a category. Names are unique; a
// duplicate surfaces as a conflict.
func (s *CurationService) SaveCategory(ctx context.Context, input CategoryInput, existingID *uuid.UUID) (*models.Category, error) {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return nil, errs.NewValidationError("name", "name is required")
	}

	var category models.Category
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if existingID != nil {
			if err := tx.First(&category, "id = ?", *existingID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return errs.NewNotFound("category")
				}
				return errs.NewDatabaseError("find", "category", err)
			}
		}

		category.Name = input.Name
		category.Description = optional(strings.TrimSpace(input.Description))
		if color := strings.TrimSpace(input.Color); color != "" {
			category.Color = color
		}

		if err := tx.Save(&category).Error; err != nil {
			return errs.NewDatabaseError("save", "category", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// DeleteCategory removes a category and detaches its projects. The
// projects themselves survive with no category assigned.
func (s *CurationService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var category models.Category
		if err := tx.First(&category, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.NewNotFound("category")
			}
			return errs.NewDatabaseError("find", "category", err)
		}

		if err := tx.Model(&models.Project{}).
			Where("category_id = ?", id).
			Update("category_id", nil).Error; err != nil {
			return errs.NewDatabaseError("update", "projects", err)
		}
		if err := tx.Delete(&models.Category{}, "id = ?", id).Error; err != nil {
			return errs.NewDatabaseError("delete", "category", err)
		}
		return nil
	})
}

// AboutInput carries the editable about page fields.
type AboutInput struct {
	Title        string
	Content      string
	Skills       string // JSON document
	ContactEmail string
	ContactPhone string
	LinkedinURL  string
	GithubURL    string
	InstagramURL string
	WhatsappURL  string
	ResumeURL    string
	ProfileImage *Upload
}

// SaveAboutPage loads the singleton about row at its well-known ID,
// creating it on first save, and overwrites its fields.
func (s *CurationService) SaveAboutPage(ctx context.Context, input AboutInput) (*models.AboutPage, error) {
	imageURL, err := s.store(ctx, input.ProfileImage)
	if err != nil {
		return nil, err
	}

	var about models.AboutPage
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.FirstOrCreate(&about, models.AboutPage{ID: models.AboutPageID}).Error; err != nil {
			return errs.NewDatabaseError("load", "about page", err)
		}

		about.Title = strings.TrimSpace(input.Title)
		about.Content = optional(strings.TrimSpace(input.Content))
		if skills := strings.TrimSpace(input.Skills); skills != "" {
			about.Skills = datatypes.JSON(skills)
		} else {
			about.Skills = nil
		}
		about.ContactEmail = optional(strings.TrimSpace(input.ContactEmail))
		about.ContactPhone = optional(strings.TrimSpace(input.ContactPhone))
		about.LinkedinURL = optional(strings.TrimSpace(input.LinkedinURL))
		about.GithubURL = optional(strings.TrimSpace(input.GithubURL))
		about.InstagramURL = optional(strings.TrimSpace(input.InstagramURL))
		about.WhatsappURL = optional(strings.TrimSpace(input.WhatsappURL))
		about.ResumeURL = optional(strings.TrimSpace(input.ResumeURL))
		if imageURL != "" {
			about.ProfileImage = &imageURL
		}

		if err := tx.Save(&about).Error; err != nil {
			return errs.NewDatabaseError("save", "about page", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &about, nil
}

// MarkNotificationRead marks a notification as read. Re-marking an
// already-read notification is a no-op success.
func (s *CurationService) MarkNotificationRead(ctx context.Context, id uuid.UUID) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var notification models.Notification
		if err := tx.First(&notification, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.NewNotFound("notification")
			}
			return errs.NewDatabaseError("find", "notification", err)
		}

		if notification.IsRead {
			return nil
		}
		if err := tx.Model(&notification).UpdateColumn("is_read", true).Error; err != nil {
			return errs.NewDatabaseError("update", "notification", err)
		}
		return nil
	})
}

// store runs an upload through the file-storage boundary. A nil upload
// is a no-op.
func (s *CurationService) store(ctx context.Context, upload *Upload) (string, error) {
	if upload == nil || upload.Filename == "" {
		return "", nil
	}
	if s.uploader == nil {
		return "", errs.NewInternalError("file storage is not configured")
	}
	url, err := s.uploader.Upload(ctx, upload.Filename, upload.Reader, upload.Size)
	if err != nil {
		s.logger.Error().Err(err).Str("filename", upload.Filename).Msg("upload failed")
		return "", err
	}
	return url, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
