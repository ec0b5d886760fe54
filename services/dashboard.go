package services

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/bruxa61/PortfolioRAFA/database"
	"github.com/bruxa61/PortfolioRAFA/errs"
	"github.com/bruxa61/PortfolioRAFA/models"
)

// DashboardStats aggregates the figures shown on the admin dashboard.
type DashboardStats struct {
	TotalProjects     int64 `json:"total_projects"`
	PublishedProjects int64 `json:"published_projects"`
	DraftProjects     int64 `json:"draft_projects"`
	TotalLikes        int64 `json:"total_likes"`
	TotalComments     int64 `json:"total_comments"`
	TotalUsers        int64 `json:"total_users"`

	RecentComments      []*models.Comment      `json:"recent_comments"`
	RecentProjects      []*models.Project      `json:"recent_projects"`
	UnreadNotifications []*models.Notification `json:"unread_notifications"`
}

// DashboardService assembles the admin dashboard from the per-entity
// repositories.
type DashboardService struct {
	db     database.Database
	logger zerolog.Logger
}

func NewDashboardService(db database.Database) *DashboardService {
	return &DashboardService{
		db:     db,
		logger: log.With().Str("serviceName", "dashboardService").Logger(),
	}
}

// Stats gathers curation statistics and recent activity.
func (s *DashboardService) Stats(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}

	counts := []struct {
		dest   *int64
		entity string
		count  func() (int64, error)
	}{
		{&stats.TotalProjects, "projects", s.db.ProjectRepo().Count},
		{&stats.PublishedProjects, "published projects", func() (int64, error) {
			return s.db.ProjectRepo().CountByPublished(true)
		}},
		{&stats.DraftProjects, "draft projects", func() (int64, error) {
			return s.db.ProjectRepo().CountByPublished(false)
		}},
		{&stats.TotalLikes, "likes", s.db.LikeRepo().Count},
		{&stats.TotalComments, "comments", s.db.CommentRepo().Count},
		{&stats.TotalUsers, "users", s.db.UserRepo().Count},
	}
	for _, c := range counts {
		n, err := c.count()
		if err != nil {
			return nil, errs.NewDatabaseError("count", c.entity, err)
		}
		*c.dest = n
	}

	var err error
	if stats.RecentComments, err = s.db.CommentRepo().FindRecent(5); err != nil {
		return nil, errs.NewDatabaseError("find", "recent comments", err)
	}
	if stats.RecentProjects, err = s.db.ProjectRepo().FindRecent(5); err != nil {
		return nil, errs.NewDatabaseError("find", "recent projects", err)
	}
	if stats.UnreadNotifications, err = s.db.NotificationRepo().FindUnread(10); err != nil {
		return nil, errs.NewDatabaseError("find", "unread notifications", err)
	}

	return stats, nil
}
