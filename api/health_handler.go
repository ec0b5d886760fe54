package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/bruxa61/PortfolioRAFA/database"
)

type healthHandler struct {
	responder Responder
	logger    zerolog.Logger
	db        database.Database
}

func newHealthHandler(db database.Database) healthHandler {
	logger := log.With().Str("handlerName", "healthHandler").Logger()

	return healthHandler{
		responder: NewResponder(logger),
		logger:    logger,
		db:        db,
	}
}

// health reports datastore connectivity
// @Summary Health check
// @Tags Diagnostics
// @Produce json
// @Success 200 {object} map[string]string "Service healthy"
// @Router /health [get]
func (h healthHandler) health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dbStatus := "connected"
		status := "healthy"
		if err := h.db.Ping(r.Context()); err != nil {
			h.logger.Error().Err(err).Msg("database ping failed")
			dbStatus = "disconnected"
			status = "unhealthy"
			w.WriteHeader(http.StatusServiceUnavailable)
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":   status,
			"message":  "Portfolio application is running",
			"database": dbStatus,
		})
	}
}

// debugUser reports the identity attached to the current request
// @Summary Current actor
// @Tags Diagnostics
// @Produce json
// @Success 200 {object} map[string]any "Actor identity"
// @Router /debug/user [get]
func (h healthHandler) debugUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := actorFromCtx(r.Context())
		if !ok {
			h.responder.WriteJSON(w, map[string]any{
				"authenticated": false,
				"message":       "User not logged in",
			})
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"authenticated":     true,
			"user_id":           actor.ID,
			"email":             actor.Email,
			"first_name":        actor.FirstName,
			"last_name":         actor.LastName,
			"is_admin":          actor.IsAdmin,
			"profile_image_url": actor.ProfileImageURL,
		})
	}
}
