package services

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/bruxa61/PortfolioRAFA/errs"
	"github.com/bruxa61/PortfolioRAFA/models"
)

// ReconcileCounters recomputes likes_count and comments_count from the
// live Like and Comment rows. The counters are maintained
// incrementally by the interaction service; this routine exists for
// drift recovery after manual data surgery or a restored backup.
func (s *CurationService) ReconcileCounters(ctx context.Context) error {
	var ids []uuid.UUID
	if err := s.db.WithContext(ctx).Model(&models.Project{}).Pluck("id", &ids).Error; err != nil {
		return errs.NewDatabaseError("find", "projects", err)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for _, id := range ids {
		id := id
		g.Go(func() error {
			return s.reconcileProject(ctx, id)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	s.logger.Info().Int("projects", len(ids)).Msg("counters reconciled")
	return nil
}

func (s *CurationService) reconcileProject(ctx context.Context, id uuid.UUID) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var likes, comments int64
		if err := tx.Model(&models.Like{}).Where("project_id = ?", id).Count(&likes).Error; err != nil {
			return errs.NewDatabaseError("count", "likes", err)
		}
		if err := tx.Model(&models.Comment{}).Where("project_id = ?", id).Count(&comments).Error; err != nil {
			return errs.NewDatabaseError("count", "comments", err)
		}

		result := tx.Model(&models.Project{}).
			Where("id = ? AND (likes_count <> ? OR comments_count <> ?)", id, likes, comments).
			UpdateColumns(map[string]any{
				"likes_count":    likes,
				"comments_count": comments,
			})
		if result.Error != nil {
			return errs.NewDatabaseError("update", "project", result.Error)
		}
		if result.RowsAffected > 0 {
			s.logger.Warn().
				Str("projectID", id.String()).
				Int64("likes", likes).
				Int64("comments", comments).
				Msg("counter drift repaired")
		}
		return nil
	})
}
