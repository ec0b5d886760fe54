package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/bruxa61/PortfolioRAFA/database"
	"github.com/bruxa61/PortfolioRAFA/errs"
	"github.com/bruxa61/PortfolioRAFA/services"
)

type notificationHandler struct {
	responder        Responder
	logger           zerolog.Logger
	notificationRepo *database.NotificationRepo
	curation         *services.CurationService
}

func newNotificationHandler(notificationRepo *database.NotificationRepo, curation *services.CurationService) notificationHandler {
	logger := log.With().Str("handlerName", "notificationHandler").Logger()

	return notificationHandler{
		responder:        NewResponder(logger),
		logger:           logger,
		notificationRepo: notificationRepo,
		curation:         curation,
	}
}

// listUnread retrieves unread notifications
// @Summary List unread notifications
// @Tags Admin
// @Produce json
// @Success 200 {array} models.Notification "Unread notifications, newest first"
// @Router /admin/notifications [get]
func (h notificationHandler) listUnread() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		notifications, err := h.notificationRepo.FindUnread(50)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "notifications", err))
			return
		}
		h.responder.WriteJSON(w, notifications)
	}
}

// markRead marks a notification as read
// @Summary Mark notification read
// @Description Marks a notification as read. Already-read notifications are a no-op success.
// @Tags Admin
// @Produce json
// @Param notificationID path string true "Notification ID" format(uuid)
// @Success 200 {object} map[string]string "Success message"
// @Failure 404 {object} ErrorResponse "Not Found"
// @Router /admin/notification/{notificationID}/read [post]
func (h notificationHandler) markRead() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "notificationID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid notificationID"))
			return
		}

		if err := h.curation.MarkNotificationRead(r.Context(), id); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]string{"status": "success"})
	}
}
