package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/chemosit/sitecms/pkg/sitecms"
)

// StatementsHandler handles HTTP requests for mission, vision and
// core-values statements
type StatementsHandler struct {
	service sitecms.Service
	logger  *slog.Logger
}

// NewStatementsHandler creates a new statement handler
func NewStatementsHandler(service sitecms.Service, logger *slog.Logger) *StatementsHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &StatementsHandler{service: service, logger: logger}
}

// Routes returns the routes for statements
func (h *StatementsHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ListStatements)
	r.Post("/", h.CreateStatement)
	r.Get("/{id}", h.GetStatement)
	r.Patch("/{id}", h.UpdateStatement)
	r.Delete("/{id}", h.DeleteStatement)

	return r
}

// CreateStatementRequest is the request body for creating a statement
type CreateStatementRequest struct {
	Type    string   `json:"type"`
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Values  []string `json:"values"`
}

// UpdateStatementRequest is the request body for updating a statement.
// The type is immutable.
type UpdateStatementRequest struct {
	Title   *string   `json:"title"`
	Content *string   `json:"content"`
	Values  *[]string `json:"values"`
}

func (h *StatementsHandler) CreateStatement(w http.ResponseWriter, r *http.Request) {
	var req CreateStatementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, r, "invalid request body")
		return
	}

	statement, err := h.service.CreateStatement(r.Context(), sitecms.CreateStatementRequest{
		Type:    sitecms.StatementType(req.Type),
		Title:   req.Title,
		Content: req.Content,
		Values:  req.Values,
	})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, statement)
}

func (h *StatementsHandler) GetStatement(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamID(r)
	if err != nil {
		badRequest(w, r, "invalid statement ID")
		return
	}

	statement, err := h.service.GetStatement(r.Context(), id)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	render.JSON(w, r, statement)
}

func (h *StatementsHandler) UpdateStatement(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamID(r)
	if err != nil {
		badRequest(w, r, "invalid statement ID")
		return
	}

	var req UpdateStatementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, r, "invalid request body")
		return
	}

	statement, err := h.service.UpdateStatement(r.Context(), sitecms.UpdateStatementRequest{
		ID:      id,
		Title:   req.Title,
		Content: req.Content,
		Values:  req.Values,
	})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	render.JSON(w, r, statement)
}

func (h *StatementsHandler) DeleteStatement(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamID(r)
	if err != nil {
		badRequest(w, r, "invalid statement ID")
		return
	}

	result, err := h.service.DeleteStatement(r.Context(), id)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	render.JSON(w, r, result)
}

func (h *StatementsHandler) ListStatements(w http.ResponseWriter, r *http.Request) {
	statements, err := h.service.ListStatements(r.Context())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	render.JSON(w, r, statements)
}
