package api

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/bruxa61/PortfolioRAFA/database"
	"github.com/bruxa61/PortfolioRAFA/errs"
	"github.com/bruxa61/PortfolioRAFA/models"
	"github.com/bruxa61/PortfolioRAFA/services"
)

const (
	publicPageSize = 12
	adminPageSize  = 20
	featuredLimit  = 3
)

type projectHandler struct {
	responder   Responder
	logger      zerolog.Logger
	projectRepo *database.ProjectRepo
	commentRepo *database.CommentRepo
	likeRepo    *database.LikeRepo
	curation    *services.CurationService
}

func newProjectHandler(projectRepo *database.ProjectRepo, commentRepo *database.CommentRepo, likeRepo *database.LikeRepo, curation *services.CurationService) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		projectRepo: projectRepo,
		commentRepo: commentRepo,
		likeRepo:    likeRepo,
		curation:    curation,
	}
}

// ProjectCollection represents a page of projects
type ProjectCollection struct {
	Projects []*models.Project `json:"projects"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PerPage  int               `json:"per_page"`
}

// ProjectDetail represents a project with its visible comments
type ProjectDetail struct {
	Project   *models.Project   `json:"project"`
	Comments  []*models.Comment `json:"comments"`
	UserLiked bool              `json:"user_liked"`
}

// listPublished retrieves published projects
// @Summary List published projects
// @Description Retrieves published projects, optionally filtered by category, newest first
// @Tags Projects
// @Produce json
// @Param page query int false "Page number"
// @Param category query string false "Category ID" format(uuid)
// @Success 200 {object} ProjectCollection "Page of projects"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Router /projects [get]
func (h projectHandler) listPublished() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := queryInt(r, "page", 1)

		var categoryID *uuid.UUID
		if raw := r.URL.Query().Get("category"); raw != "" {
			id, err := uuid.Parse(raw)
			if err != nil {
				h.responder.WriteError(w, errs.NewBadRequestError("invalid category"))
				return
			}
			categoryID = &id
		}

		projects, total, err := h.projectRepo.FindPublished(categoryID, page, publicPageSize)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "projects", err))
			return
		}

		h.responder.WriteJSON(w, ProjectCollection{
			Projects: projects,
			Total:    total,
			Page:     page,
			PerPage:  publicPageSize,
		})
	}
}

// featured retrieves the featured and most recent published projects
// @Summary Home page projects
// @Tags Projects
// @Produce json
// @Success 200 {object} map[string][]models.Project "Featured and recent projects"
// @Router /projects/featured [get]
func (h projectHandler) featured() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		featured, err := h.projectRepo.FindFeatured(featuredLimit)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "featured projects", err))
			return
		}

		recent, err := h.projectRepo.FindRecentPublished(6)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "recent projects", err))
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"featured": featured,
			"recent":   recent,
		})
	}
}

// detail retrieves a published project by slug with its comments
// @Summary Get project detail
// @Description Retrieves a published project by slug, its approved comments and whether the current actor liked it. Each call counts one view.
// @Tags Projects
// @Produce json
// @Param slug path string true "Project slug"
// @Success 200 {object} ProjectDetail "Project detail"
// @Failure 404 {object} ErrorResponse "Not Found - Project not found"
// @Router /project/{slug} [get]
func (h projectHandler) detail() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slugParam := chi.URLParam(r, "slug")

		project, err := h.projectRepo.FindPublishedBySlug(slugParam)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "project", err))
			return
		}

		if err := h.projectRepo.IncrementViewCount(project.ID); err != nil {
			// A lost view is not worth failing the page for.
			h.logger.Warn().Err(err).Str("slug", slugParam).Msg("failed to bump view count")
		}

		comments, err := h.commentRepo.FindApprovedByProject(project.ID)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "comments", err))
			return
		}

		userLiked := false
		if actor, ok := actorFromCtx(r.Context()); ok {
			userLiked, err = h.likeRepo.ExistsForUser(project.ID, actor.ID)
			if err != nil {
				h.responder.WriteError(w, errs.NewDatabaseError("find", "like", err))
				return
			}
		}

		h.responder.WriteJSON(w, ProjectDetail{
			Project:   project,
			Comments:  comments,
			UserLiked: userLiked,
		})
	}
}

// shareLink builds the LinkedIn share URL for a published project
// @Summary Share project on LinkedIn
// @Tags Projects
// @Produce json
// @Param slug path string true "Project slug"
// @Success 200 {object} map[string]string "Share URL"
// @Failure 404 {object} ErrorResponse "Not Found"
// @Router /project/{slug}/share [get]
func (h projectHandler) shareLink(publicBaseURL string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slugParam := chi.URLParam(r, "slug")

		project, err := h.projectRepo.FindPublishedBySlug(slugParam)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "project", err))
			return
		}

		projectURL := publicBaseURL + "/projeto/" + url.PathEscape(project.Slug)
		shareText := "Confira este projeto incrível: " + project.Title
		shareURL := "https://www.linkedin.com/sharing/share-offsite/?url=" + url.QueryEscape(projectURL) +
			"&title=" + url.QueryEscape(project.Title) +
			"&summary=" + url.QueryEscape(shareText)

		h.responder.WriteJSON(w, map[string]string{"share_url": shareURL})
	}
}

// adminList retrieves all projects including drafts
// @Summary List all projects
// @Tags Admin
// @Produce json
// @Param page query int false "Page number"
// @Success 200 {object} ProjectCollection "Page of projects"
// @Router /admin/projects [get]
func (h projectHandler) adminList() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := queryInt(r, "page", 1)

		projects, total, err := h.projectRepo.FindAll(page, adminPageSize)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "projects", err))
			return
		}

		h.responder.WriteJSON(w, ProjectCollection{
			Projects: projects,
			Total:    total,
			Page:     page,
			PerPage:  adminPageSize,
		})
	}
}

// save creates a project or updates an existing one
// @Summary Save project
// @Description Creates a project (assigning its slug from the title) or updates the one named in the path. Accepts multipart form data with an optional image upload.
// @Tags Admin
// @Accept mpfd
// @Produce json
// @Param title formData string true "Title"
// @Success 200 {object} models.Project "Saved project"
// @Failure 400 {object} ErrorResponse "Validation error"
// @Failure 409 {object} ErrorResponse "Duplicate slug"
// @Router /admin/project [post]
func (h projectHandler) save() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var existingID *uuid.UUID
		if raw := chi.URLParam(r, "projectID"); raw != "" {
			id, err := uuid.Parse(raw)
			if err != nil {
				h.responder.WriteError(w, errs.NewBadRequestError("invalid projectID"))
				return
			}
			existingID = &id
		}

		input, err := projectInputFromForm(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project, err := h.curation.SaveProject(r.Context(), input, existingID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if existingID == nil {
			w.WriteHeader(http.StatusCreated)
		}
		h.responder.WriteJSON(w, project)
	}
}

// delete removes a project and everything it owns
// @Summary Delete project
// @Tags Admin
// @Produce json
// @Param projectID path string true "Project ID" format(uuid)
// @Success 200 {object} map[string]string "Success message"
// @Failure 404 {object} ErrorResponse "Not Found"
// @Router /admin/project/{projectID} [delete]
func (h projectHandler) delete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "projectID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid projectID"))
			return
		}

		if err := h.curation.DeleteProject(r.Context(), id); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "project deleted successfully",
		})
	}
}

// reconcile recomputes denormalized counters from live rows
// @Summary Reconcile project counters
// @Tags Admin
// @Produce json
// @Success 200 {object} map[string]string "Success message"
// @Router /admin/reconcile [post]
func (h projectHandler) reconcile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h.curation.ReconcileCounters(r.Context()); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, map[string]string{"status": "success"})
	}
}

// projectInputFromForm maps form fields onto a ProjectInput. Boolean
// flags follow form-indicator presence, defaulting to false.
func projectInputFromForm(r *http.Request) (services.ProjectInput, error) {
	if err := r.ParseMultipartForm(32 << 20); err != nil && err != http.ErrNotMultipart {
		return services.ProjectInput{}, errs.NewBadRequestError("malformed form data")
	}

	input := services.ProjectInput{
		Title:        r.FormValue("title"),
		Description:  r.FormValue("description"),
		Content:      r.FormValue("content"),
		DemoURL:      r.FormValue("demo_url"),
		GithubURL:    r.FormValue("github_url"),
		Technologies: r.FormValue("technologies"),
		IsFeatured:   formHasKey(r, "is_featured"),
		IsPublished:  formHasKey(r, "is_published"),
	}

	if raw := r.FormValue("category_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return services.ProjectInput{}, errs.NewValidationError("category_id", "must be a valid UUID")
		}
		input.CategoryID = &id
	}

	if file, header, err := r.FormFile("image"); err == nil {
		input.Image = &services.Upload{
			Filename: header.Filename,
			Size:     header.Size,
			Reader:   file,
		}
	}

	return input, nil
}

func formHasKey(r *http.Request, key string) bool {
	if r.Form == nil {
		return false
	}
	_, ok := r.Form[key]
	return ok
}

func queryInt(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 {
		return fallback
	}
	return value
}
