package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/bruxa61/PortfolioRAFA/errs"
	"github.com/bruxa61/PortfolioRAFA/models"
)

// InteractionService handles visitor actions on published projects:
// toggling likes and adding comments. Every operation runs inside one
// transaction so the denormalized counters can never drift from the
// rows they account for.
type InteractionService struct {
	db     *gorm.DB
	logger zerolog.Logger
}

func NewInteractionService(db *gorm.DB) *InteractionService {
	return &InteractionService{
		db:     db,
		logger: log.With().Str("serviceName", "interactionService").Logger(),
	}
}

// ToggleLikeResult reports the state after a toggle.
type ToggleLikeResult struct {
	Liked      bool `json:"liked"`
	LikesCount int  `json:"likes_count"`
}

// ToggleLike likes the project on behalf of the actor, or removes the
// existing like if one is present. Concurrent toggles from the same
// user are resolved by the unique (user_id, project_id) index: losing
// the insert race is treated as "already liked" and resolved as an
// unlike within the same transaction.
func (s *InteractionService) ToggleLike(ctx context.Context, projectID uuid.UUID, actorID string) (ToggleLikeResult, error) {
	if actorID == "" {
		return ToggleLikeResult{}, errs.NewUnauthorizedError("an authenticated user is required to like a project")
	}

	var result ToggleLikeResult
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var project models.Project
		if err := tx.First(&project, "id = ?", projectID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.NewNotFound("project")
			}
			return errs.NewDatabaseError("find", "project", err)
		}

		var actor models.User
		if err := tx.First(&actor, "id = ?", actorID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.NewNotFound("user")
			}
			return errs.NewDatabaseError("find", "user", err)
		}

		var existing models.Like
		err := tx.Where("project_id = ? AND user_id = ?", projectID, actorID).First(&existing).Error
		switch {
		case err == nil:
			if err := s.unlike(tx, &project, &existing); err != nil {
				return err
			}
			result.Liked = false

		case errors.Is(err, gorm.ErrRecordNotFound):
			like := models.Like{UserID: actorID, ProjectID: projectID}
			// Savepoint around the insert keeps the outer transaction
			// usable when the unique index rejects a concurrent double
			// toggle.
			insertErr := tx.Transaction(func(tx *gorm.DB) error {
				return tx.Create(&like).Error
			})
			if insertErr != nil {
				if !errs.IsDuplicateKey(insertErr) {
					return errs.NewDatabaseError("create", "like", insertErr)
				}
				// Another request from this user liked first; this
				// toggle becomes the unlike.
				if err := tx.Where("project_id = ? AND user_id = ?", projectID, actorID).First(&existing).Error; err != nil {
					return errs.NewDatabaseError("find", "like", err)
				}
				if err := s.unlike(tx, &project, &existing); err != nil {
					return err
				}
				result.Liked = false
				break
			}

			if err := adjustCounter(tx, project.ID, "likes_count", 1); err != nil {
				return errs.NewDatabaseError("update", "project", err)
			}
			if err := tx.Create(newLikeNotification(&project, &actor)).Error; err != nil {
				return errs.NewDatabaseError("create", "notification", err)
			}
			result.Liked = true

		default:
			return errs.NewDatabaseError("find", "like", err)
		}

		var count int
		if err := tx.Model(&models.Project{}).
			Where("id = ?", project.ID).
			Select("likes_count").
			Scan(&count).Error; err != nil {
			return errs.NewDatabaseError("find", "project", err)
		}
		result.LikesCount = count
		return nil
	})
	if err != nil {
		return ToggleLikeResult{}, err
	}

	s.logger.Info().
		Str("projectID", projectID.String()).
		Str("userID", actorID).
		Bool("liked", result.Liked).
		Msg("like toggled")
	return result, nil
}

func (s *InteractionService) unlike(tx *gorm.DB, project *models.Project, like *models.Like) error {
	res := tx.Delete(&models.Like{}, "id = ?", like.ID)
	if res.Error != nil {
		return errs.NewDatabaseError("delete", "like", res.Error)
	}
	// A concurrent toggle may have removed the row after we read it.
	// Whoever deleted it owns the decrement, so an empty delete must
	// not touch the counter.
	if res.RowsAffected == 0 {
		return nil
	}
	if err := adjustCounter(tx, project.ID, "likes_count", -1); err != nil {
		return errs.NewDatabaseError("update", "project", err)
	}
	return nil
}

// AddComment appends an approved comment to the project and bumps the
// comment counter in the same transaction. Empty or whitespace-only
// content is rejected before any write.
func (s *InteractionService) AddComment(ctx context.Context, projectID uuid.UUID, actorID, content string) (*models.Comment, error) {
	if actorID == "" {
		return nil, errs.NewUnauthorizedError("an authenticated user is required to comment")
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return nil, errs.NewValidationError("content", "comment cannot be empty")
	}

	var comment models.Comment
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var project models.Project
		if err := tx.First(&project, "id = ?", projectID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.NewNotFound("project")
			}
			return errs.NewDatabaseError("find", "project", err)
		}

		var actor models.User
		if err := tx.First(&actor, "id = ?", actorID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.NewNotFound("user")
			}
			return errs.NewDatabaseError("find", "user", err)
		}

		comment = models.Comment{
			UserID:     actorID,
			ProjectID:  projectID,
			Content:    content,
			IsApproved: true,
		}
		if err := tx.Create(&comment).Error; err != nil {
			return errs.NewDatabaseError("create", "comment", err)
		}
		if err := adjustCounter(tx, project.ID, "comments_count", 1); err != nil {
			return errs.NewDatabaseError("update", "project", err)
		}
		if err := tx.Create(newCommentNotification(&project, &actor)).Error; err != nil {
			return errs.NewDatabaseError("create", "notification", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("projectID", projectID.String()).
		Str("userID", actorID).
		Msg("comment added")
	return &comment, nil
}

// adjustCounter applies a relative counter update so concurrent
// transactions never overwrite each other's increments.
func adjustCounter(tx *gorm.DB, projectID uuid.UUID, column string, delta int) error {
	return tx.Model(&models.Project{}).
		Where("id = ?", projectID).
		UpdateColumn(column, gorm.Expr(column+" + ?", delta)).Error
}
