package api

import (
	"github.com/bruxa61/PortfolioRAFA/database"
	"github.com/bruxa61/PortfolioRAFA/services"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(db database.Database, uploader services.Uploader) *routeHandlers {
	interactions := services.NewInteractionService(db.DB())
	curation := services.NewCurationService(db.DB(), uploader)
	dashboard := services.NewDashboardService(db)

	return &routeHandlers{
		projectHandler:      newProjectHandler(db.ProjectRepo(), db.CommentRepo(), db.LikeRepo(), curation),
		interactionHandler:  newInteractionHandler(interactions),
		categoryHandler:     newCategoryHandler(db.CategoryRepo(), curation),
		aboutHandler:        newAboutHandler(db.AboutPageRepo(), curation),
		notificationHandler: newNotificationHandler(db.NotificationRepo(), curation),
		dashboardHandler:    newDashboardHandler(dashboard),
		healthHandler:       newHealthHandler(db),
	}
}
