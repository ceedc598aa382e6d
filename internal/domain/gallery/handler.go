package gallery

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/capturesangli/studio-api/internal/pkg/imaging"
	"github.com/capturesangli/studio-api/internal/pkg/response"
)

// Handler handles gallery HTTP requests
type Handler struct {
	svc *Service
}

// NewHandler creates gallery handler
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// List handles GET /gallery (public), optional ?category= filter
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	var category *Category
	if c := r.URL.Query().Get("category"); c != "" && c != "all" {
		cat := Category(c)
		if !cat.IsValid() {
			response.BadRequest(w, "Invalid category. Must be: wedding, portrait, or event")
			return
		}
		category = &cat
	}

	images, err := h.svc.ListImages(r.Context(), category)
	if err != nil {
		log.Error().Err(err).Msg("Failed to load gallery images")
		response.InternalError(w)
		return
	}

	response.OK(w, map[string]interface{}{"images": images})
}

// Services handles GET /services (public)
func (h *Handler) Services(w http.ResponseWriter, r *http.Request) {
	response.OK(w, map[string]interface{}{"services": h.svc.Services()})
}

// Upload handles POST /admin/gallery
// Multipart form: file + title + category + position
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, imaging.MaxFileSize)

	if err := r.ParseMultipartForm(imaging.MaxFileSize); err != nil {
		response.BadRequest(w, "File too large or invalid form")
		return
	}

	title := r.FormValue("title")
	if title == "" {
		response.BadRequest(w, "Title is required")
		return
	}

	category := Category(r.FormValue("category"))
	if !category.IsValid() {
		response.BadRequest(w, "Invalid category. Must be: wedding, portrait, or event")
		return
	}

	position := 0
	if p := r.FormValue("position"); p != "" {
		if v, err := strconv.Atoi(p); err == nil && v >= 0 {
			position = v
		}
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "No file provided")
		return
	}
	defer file.Close()

	image, err := h.svc.Upload(r.Context(), title, category, header.Filename, file, position)
	if err != nil {
		if errors.Is(err, ErrInvalidImage) {
			response.BadRequest(w, "File is not a supported image")
			return
		}
		log.Error().Err(err).Msg("Failed to upload gallery image")
		response.InternalError(w)
		return
	}

	response.Created(w, image)
}

// Delete handles DELETE /admin/gallery/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid image ID")
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrImageNotFound) {
			response.NotFound(w, "Gallery image not found")
			return
		}
		log.Error().Err(err).Str("image_id", id.String()).Msg("Failed to delete gallery image")
		response.InternalError(w)
		return
	}

	response.NoContent(w)
}
