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

type categoryHandler struct {
	responder    Responder
	logger       zerolog.Logger
	categoryRepo *database.CategoryRepo
	curation     *services.CurationService
}

func newCategoryHandler(categoryRepo *database.CategoryRepo, curation *services.CurationService) categoryHandler {
	logger := log.With().Str("handlerName", "categoryHandler").Logger()

	return categoryHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		categoryRepo: categoryRepo,
		curation:     curation,
	}
}

// list retrieves all categories
// @Summary List categories
// @Tags Categories
// @Produce json
// @Success 200 {array} models.Category "Categories"
// @Router /categories [get]
func (h categoryHandler) list() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, err := h.categoryRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "categories", err))
			return
		}
		h.responder.WriteJSON(w, categories)
	}
}

// save creates or updates a category
// @Summary Save category
// @Tags Admin
// @Accept mpfd
// @Produce json
// @Param name formData string true "Name"
// @Success 200 {object} models.Category "Saved category"
// @Failure 409 {object} ErrorResponse "Duplicate name"
// @Router /admin/category [post]
func (h categoryHandler) save() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var existingID *uuid.UUID
		if raw := chi.URLParam(r, "categoryID"); raw != "" {
			id, err := uuid.Parse(raw)
			if err != nil {
				h.responder.WriteError(w, errs.NewBadRequestError("invalid categoryID"))
				return
			}
			existingID = &id
		}

		if err := r.ParseForm(); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed form data"))
			return
		}

		input := services.CategoryInput{
			Name:        r.FormValue("name"),
			Description: r.FormValue("description"),
			Color:       r.FormValue("color"),
		}

		category, err := h.curation.SaveCategory(r.Context(), input, existingID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if existingID == nil {
			w.WriteHeader(http.StatusCreated)
		}
		h.responder.WriteJSON(w, category)
	}
}

// delete removes a category, detaching its projects
// @Summary Delete category
// @Tags Admin
// @Produce json
// @Param categoryID path string true "Category ID" format(uuid)
// @Success 200 {object} map[string]string "Success message"
// @Failure 404 {object} ErrorResponse "Not Found"
// @Router /admin/category/{categoryID} [delete]
func (h categoryHandler) delete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "categoryID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid categoryID"))
			return
		}

		if err := h.curation.DeleteCategory(r.Context(), id); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "category deleted successfully",
		})
	}
}
