package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// setupRoutes wires every route group: public pages, authenticated
// interactions, the admin dashboard and diagnostics.
func setupRoutes(r chi.Router, handlers *routeHandlers, auth authMiddleware, publicBaseURL string) {
	// Public routes; a valid token personalizes the response but is
	// never required.
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)
		r.Use(auth.identify)

		r.Get("/projects", handlers.projectHandler.listPublished())
		r.Get("/projects/featured", handlers.projectHandler.featured())
		r.Get("/project/{slug}", handlers.projectHandler.detail())
		r.Get("/project/{slug}/share", handlers.projectHandler.shareLink(publicBaseURL))
		r.Get("/categories", handlers.categoryHandler.list())
		r.Get("/about", handlers.aboutHandler.get())
		r.Get("/debug/user", handlers.healthHandler.debugUser())
	})

	// Interaction routes require an authenticated actor.
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)
		r.Use(auth.authenticate)

		r.Post("/project/{projectID}/like", handlers.interactionHandler.toggleLike())
		r.Post("/project/{projectID}/comments", handlers.interactionHandler.addComment())
	})

	// Curation routes require an administrator.
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)
		r.Use(auth.authenticate)
		r.Use(auth.requireAdmin)

		r.Get("/admin/dashboard", handlers.dashboardHandler.stats())
		r.Get("/admin/projects", handlers.projectHandler.adminList())
		r.Post("/admin/project", handlers.projectHandler.save())
		r.Put("/admin/project/{projectID}", handlers.projectHandler.save())
		r.Delete("/admin/project/{projectID}", handlers.projectHandler.delete())
		r.Post("/admin/reconcile", handlers.projectHandler.reconcile())

		r.Post("/admin/category", handlers.categoryHandler.save())
		r.Put("/admin/category/{categoryID}", handlers.categoryHandler.save())
		r.Delete("/admin/category/{categoryID}", handlers.categoryHandler.delete())

		r.Put("/admin/about", handlers.aboutHandler.save())

		r.Get("/admin/notifications", handlers.notificationHandler.listUnread())
		r.Post("/admin/notification/{notificationID}/read", handlers.notificationHandler.markRead())
	})

	// Diagnostics stay outside the logging groups.
	r.Get("/health", handlers.healthHandler.health())
	r.Handle("/metrics", promhttp.Handler())
}
