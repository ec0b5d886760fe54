package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/bruxa61/PortfolioRAFA/database"
	"github.com/bruxa61/PortfolioRAFA/errs"
	"github.com/bruxa61/PortfolioRAFA/models"
	"github.com/bruxa61/PortfolioRAFA/services"
)

type aboutHandler struct {
	responder Responder
	logger    zerolog.Logger
	aboutRepo *database.AboutPageRepo
	curation  *services.CurationService
}

func newAboutHandler(aboutRepo *database.AboutPageRepo, curation *services.CurationService) aboutHandler {
	logger := log.With().Str("handlerName", "aboutHandler").Logger()

	return aboutHandler{
		responder: NewResponder(logger),
		logger:    logger,
		aboutRepo: aboutRepo,
		curation:  curation,
	}
}

// get retrieves the about page
// @Summary Get about page
// @Description Retrieves the singleton about page. Returns default content if it was never saved.
// @Tags About
// @Produce json
// @Success 200 {object} models.AboutPage "About page"
// @Router /about [get]
func (h aboutHandler) get() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		about, err := h.aboutRepo.Get()
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "about page", err))
			return
		}

		if about == nil {
			// Never saved; answer with the defaults without writing.
			about = &models.AboutPage{ID: models.AboutPageID, Title: "Sobre Mim"}
		}

		h.responder.WriteJSON(w, about)
	}
}

// save overwrites the about page fields
// @Summary Save about page
// @Description Creates the singleton about row on first save and overwrites its fields. Accepts an optional profile image upload.
// @Tags Admin
// @Accept mpfd
// @Produce json
// @Success 200 {object} models.AboutPage "Saved about page"
// @Router /admin/about [put]
func (h aboutHandler) save() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(32 << 20); err != nil && err != http.ErrNotMultipart {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed form data"))
			return
		}

		input := services.AboutInput{
			Title:        r.FormValue("title"),
			Content:      r.FormValue("content"),
			Skills:       r.FormValue("skills"),
			ContactEmail: r.FormValue("contact_email"),
			ContactPhone: r.FormValue("contact_phone"),
			LinkedinURL:  r.FormValue("linkedin_url"),
			GithubURL:    r.FormValue("github_url"),
			InstagramURL: r.FormValue("instagram_url"),
			WhatsappURL:  r.FormValue("whatsapp_url"),
			ResumeURL:    r.FormValue("resume_url"),
		}

		if file, header, err := r.FormFile("profile_image"); err == nil {
			input.ProfileImage = &services.Upload{
				Filename: header.Filename,
				Size:     header.Size,
				Reader:   file,
			}
		}

		about, err := h.curation.SaveAboutPage(r.Context(), input)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, about)
	}
}
