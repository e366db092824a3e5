package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/chemosit/sitecms/pkg/sitecms"
)

// TestimonialsHandler handles HTTP requests for testimonials
type TestimonialsHandler struct {
	service sitecms.Service
	logger  *slog.Logger
}

// NewTestimonialsHandler creates a new testimonial handler
func NewTestimonialsHandler(service sitecms.Service, logger *slog.Logger) *TestimonialsHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &TestimonialsHandler{service: service, logger: logger}
}

// Routes returns the routes for testimonials
func (h *TestimonialsHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ListTestimonials)
	r.Post("/", h.CreateTestimonial)
	r.Get("/{id}", h.GetTestimonial)
	r.Patch("/{id}", h.UpdateTestimonial)
	r.Delete("/{id}", h.DeleteTestimonial)

	return r
}

// CreateTestimonialRequest is the request body for creating a testimonial
type CreateTestimonialRequest struct {
	Name string `json:"name"`
	Role string `json:"role"`
	Body string `json:"body"`
}

// UpdateTestimonialRequest is the request body for updating a testimonial
type UpdateTestimonialRequest struct {
	Name *string `json:"name"`
	Role *string `json:"role"`
	Body *string `json:"body"`
}

func (h *TestimonialsHandler) CreateTestimonial(w http.ResponseWriter, r *http.Request) {
	var req CreateTestimonialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, r, "invalid request body")
		return
	}

	testimonial, err := h.service.CreateTestimonial(r.Context(), sitecms.CreateTestimonialRequest{
		Name: req.Name,
		Role: req.Role,
		Body: req.Body,
	})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, testimonial)
}

func (h *TestimonialsHandler) GetTestimonial(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamID(r)
	if err != nil {
		badRequest(w, r, "invalid testimonial ID")
		return
	}

	testimonial, err := h.service.GetTestimonial(r.Context(), id)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	render.JSON(w, r, testimonial)
}

func (h *TestimonialsHandler) UpdateTestimonial(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamID(r)
	if err != nil {
		badRequest(w, r, "invalid testimonial ID")
		return
	}

	var req UpdateTestimonialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, r, "invalid request body")
		return
	}

	testimonial, err := h.service.UpdateTestimonial(r.Context(), sitecms.UpdateTestimonialRequest{
		ID:   id,
		Name: req.Name,
		Role: req.Role,
		Body: req.Body,
	})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	render.JSON(w, r, testimonial)
}

func (h *TestimonialsHandler) DeleteTestimonial(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamID(r)
	if err != nil {
		badRequest(w, r, "invalid testimonial ID")
		return
	}

	result, err := h.service.DeleteTestimonial(r.Context(), id)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	render.JSON(w, r, result)
}

func (h *TestimonialsHandler) ListTestimonials(w http.ResponseWriter, r *http.Request) {
	testimonials, err := h.service.ListTestimonials(r.Context())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	render.JSON(w, r, testimonials)
}
