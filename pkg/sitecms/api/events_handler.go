package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/chemosit/sitecms/pkg/sitecms"
)

// EventsHandler handles HTTP requests for events
type EventsHandler struct {
	service sitecms.Service
	logger  *slog.Logger
}

// NewEventsHandler creates a new event handler
func NewEventsHandler(service sitecms.Service, logger *slog.Logger) *EventsHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &EventsHandler{service: service, logger: logger}
}

// Routes returns the routes for events
func (h *EventsHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ListEvents)
	r.Post("/", h.CreateEvent)
	r.Get("/{id}", h.GetEvent)
	r.Patch("/{id}", h.UpdateEvent)
	r.Delete("/{id}", h.DeleteEvent)

	return r
}

// CreateEventRequest is the request body for creating an event
type CreateEventRequest struct {
	Title    string `json:"title"`
	Date     string `json:"date"`
	Location string `json:"location"`
	Note     string `json:"note"`
}

// UpdateEventRequest is the request body for updating an event
type UpdateEventRequest struct {
	Title    *string `json:"title"`
	Date     *string `json:"date"`
	Location *string `json:"location"`
	Note     *string `json:"note"`
}

func (h *EventsHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req CreateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, r, "invalid request body")
		return
	}

	event, err := h.service.CreateEvent(r.Context(), sitecms.CreateEventRequest{
		Title:    req.Title,
		Date:     req.Date,
		Location: req.Location,
		Note:     req.Note,
	})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, event)
}

func (h *EventsHandler) GetEvent(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamID(r)
	if err != nil {
		badRequest(w, r, "invalid event ID")
		return
	}

	event, err := h.service.GetEvent(r.Context(), id)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	render.JSON(w, r, event)
}

func (h *EventsHandler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamID(r)
	if err != nil {
		badRequest(w, r, "invalid event ID")
		return
	}

	var req UpdateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, r, "invalid request body")
		return
	}

	event, err := h.service.UpdateEvent(r.Context(), sitecms.UpdateEventRequest{
		ID:       id,
		Title:    req.Title,
		Date:     req.Date,
		Location: req.Location,
		Note:     req.Note,
	})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	render.JSON(w, r, event)
}

func (h *EventsHandler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamID(r)
	if err != nil {
		badRequest(w, r, "invalid event ID")
		return
	}

	result, err := h.service.DeleteEvent(r.Context(), id)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	render.JSON(w, r, result)
}

func (h *EventsHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.service.ListEvents(r.Context())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	render.JSON(w, r, events)
}
