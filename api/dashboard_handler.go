package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/bruxa61/PortfolioRAFA/services"
)

type dashboardHandler struct {
	responder Responder
	logger    zerolog.Logger
	dashboard *services.DashboardService
}

func newDashboardHandler(dashboard *services.DashboardService) dashboardHandler {
	logger := log.With().Str("handlerName", "dashboardHandler").Logger()

	return dashboardHandler{
		responder: NewResponder(logger),
		logger:    logger,
		dashboard: dashboard,
	}
}

// stats retrieves admin dashboard statistics
// @Summary Dashboard statistics
// @Description Retrieves content totals, recent activity and unread notifications
// @Tags Admin
// @Produce json
// @Success 200 {object} services.DashboardStats "Dashboard statistics"
// @Router /admin/dashboard [get]
func (h dashboardHandler) stats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := h.dashboard.Stats(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, stats)
	}
}
