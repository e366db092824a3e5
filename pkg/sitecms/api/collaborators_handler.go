package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/chemosit/sitecms/pkg/sitecms"
)

// CollaboratorsHandler handles HTTP requests for collaborators
type CollaboratorsHandler struct {
	service sitecms.Service
	logger  *slog.Logger
}

// NewCollaboratorsHandler creates a new collaborator handler
func NewCollaboratorsHandler(service sitecms.Service, logger *slog.Logger) *CollaboratorsHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &CollaboratorsHandler{service: service, logger: logger}
}

// Routes returns the routes for collaborators
func (h *CollaboratorsHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ListCollaborators)
	r.Post("/", h.CreateCollaborator)
	r.Get("/{id}", h.GetCollaborator)
	r.Patch("/{id}", h.UpdateCollaborator)
	r.Delete("/{id}", h.DeleteCollaborator)

	return r
}

// CreateCollaboratorRequest is the request body for creating a collaborator
type CreateCollaboratorRequest struct {
	Name   string `json:"name"`
	Office string `json:"office"`
	Logo   string `json:"logo"`
}

// UpdateCollaboratorRequest is the request body for updating a collaborator
type UpdateCollaboratorRequest struct {
	Name   *string `json:"name"`
	Office *string `json:"office"`
	Logo   *string `json:"logo"`
}

func (h *CollaboratorsHandler) CreateCollaborator(w http.ResponseWriter, r *http.Request) {
	var req CreateCollaboratorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, r, "invalid request body")
		return
	}

	collaborator, err := h.service.CreateCollaborator(r.Context(), sitecms.CreateCollaboratorRequest{
		Name:   req.Name,
		Office: req.Office,
		Logo:   req.Logo,
	})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, collaborator)
}

func (h *CollaboratorsHandler) GetCollaborator(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamID(r)
	if err != nil {
		badRequest(w, r, "invalid collaborator ID")
		return
	}

	collaborator, err := h.service.GetCollaborator(r.Context(), id)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	render.JSON(w, r, collaborator)
}

func (h *CollaboratorsHandler) UpdateCollaborator(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamID(r)
	if err != nil {
		badRequest(w, r, "invalid collaborator ID")
		return
	}

	var req UpdateCollaboratorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, r, "invalid request body")
		return
	}

	collaborator, err := h.service.UpdateCollaborator(r.Context(), sitecms.UpdateCollaboratorRequest{
		ID:     id,
		Name:   req.Name,
		Office: req.Office,
		Logo:   req.Logo,
	})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	render.JSON(w, r, collaborator)
}

func (h *CollaboratorsHandler) DeleteCollaborator(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamID(r)
	if err != nil {
		badRequest(w, r, "invalid collaborator ID")
		return
	}

	result, err := h.service.DeleteCollaborator(r.Context(), id)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	render.JSON(w, r, result)
}

func (h *CollaboratorsHandler) ListCollaborators(w http.ResponseWriter, r *http.Request) {
	collaborators, err := h.service.ListCollaborators(r.Context())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	render.JSON(w, r, collaborators)
}
