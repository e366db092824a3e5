package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/chemosit/sitecms/pkg/sitecms"
)

// SlidesHandler handles HTTP requests for hero slides
type SlidesHandler struct {
	service sitecms.Service
	logger  *slog.Logger
}

// NewSlidesHandler creates a new hero slide handler
func NewSlidesHandler(service sitecms.Service, logger *slog.Logger) *SlidesHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlidesHandler{service: service, logger: logger}
}

// Routes returns the routes for hero slides
func (h *SlidesHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ListSlides)
	r.Post("/", h.CreateSlide)
	r.Get("/{id}", h.GetSlide)
	r.Patch("/{id}", h.UpdateSlide)
	r.Delete("/{id}", h.DeleteSlide)

	return r
}

// CreateSlideRequest is the request body for creating a hero slide
type CreateSlideRequest struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Alt      string `json:"alt"`
	Img      string `json:"img"`
}

// UpdateSlideRequest is the request body for updating a hero slide
type UpdateSlideRequest struct {
	Title    *string `json:"title"`
	Subtitle *string `json:"subtitle"`
	Img      *string `json:"img"`
}

func (h *SlidesHandler) CreateSlide(w http.ResponseWriter, r *http.Request) {
	var req CreateSlideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, r, "invalid request body")
		return
	}

	slide, err := h.service.CreateSlide(r.Context(), sitecms.CreateSlideRequest{
		Title:    req.Title,
		Subtitle: req.Subtitle,
		Alt:      req.Alt,
		Img:      req.Img,
	})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, slide)
}

func (h *SlidesHandler) GetSlide(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamID(r)
	if err != nil {
		badRequest(w, r, "invalid slide ID")
		return
	}

	slide, err := h.service.GetSlide(r.Context(), id)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	render.JSON(w, r, slide)
}

func (h *SlidesHandler) UpdateSlide(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamID(r)
	if err != nil {
		badRequest(w, r, "invalid slide ID")
		return
	}

	var req UpdateSlideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, r, "invalid request body")
		return
	}

	slide, err := h.service.UpdateSlide(r.Context(), sitecms.UpdateSlideRequest{
		ID:       id,
		Title:    req.Title,
		Subtitle: req.Subtitle,
		Img:      req.Img,
	})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	render.JSON(w, r, slide)
}

func (h *SlidesHandler) DeleteSlide(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamID(r)
	if err != nil {
		badRequest(w, r, "invalid slide ID")
		return
	}

	result, err := h.service.DeleteSlide(r.Context(), id)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	render.JSON(w, r, result)
}

func (h *SlidesHandler) ListSlides(w http.ResponseWriter, r *http.Request) {
	slides, err := h.service.ListSlides(r.Context())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	render.JSON(w, r, slides)
}
