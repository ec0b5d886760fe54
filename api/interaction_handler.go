package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/bruxa61/PortfolioRAFA/errs"
	"github.com/bruxa61/PortfolioRAFA/services"
)

type interactionHandler struct {
	responder    Responder
	logger       zerolog.Logger
	interactions *services.InteractionService
}

func newInteractionHandler(interactions *services.InteractionService) interactionHandler {
	logger := log.With().Str("handlerName", "interactionHandler").Logger()

	return interactionHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		interactions: interactions,
	}
}

// toggleLike likes or unlikes a project for the current actor
// @Summary Toggle like
// @Description Likes the project on behalf of the authenticated user, or removes the like if it already exists
// @Tags Interactions
// @Produce json
// @Param projectID path string true "Project ID" format(uuid)
// @Success 200 {object} services.ToggleLikeResult "Resulting like state"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Not Found - Project not found"
// @Router /project/{projectID}/like [post]
func (h interactionHandler) toggleLike() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := actorFromCtx(r.Context())
		if !ok {
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}

		projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid projectID"))
			return
		}

		result, err := h.interactions.ToggleLike(r.Context(), projectID, actor.ID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, result)
	}
}

// addComment appends a comment to a project
// @Summary Add comment
// @Description Adds an approved comment from the authenticated user. Empty or whitespace-only content is rejected.
// @Tags Interactions
// @Accept json
// @Produce json
// @Param projectID path string true "Project ID" format(uuid)
// @Param comment body object true "Comment content"
// @Success 201 {object} models.Comment "Created comment"
// @Failure 400 {object} ErrorResponse "Validation error - empty comment"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Not Found - Project not found"
// @Router /project/{projectID}/comments [post]
func (h interactionHandler) addComment() http.HandlerFunc {
	type request struct {
		Content string `json:"content"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := actorFromCtx(r.Context())
		if !ok {
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}

		projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid projectID"))
			return
		}

		var req request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode comment request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		comment, err := h.interactions.AddComment(r.Context(), projectID, actor.ID, req.Content)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, comment)
	}
}
