package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/chemosit/sitecms/pkg/sitecms"
)

// TeamHandler handles HTTP requests for team members
type TeamHandler struct {
	service sitecms.Service
	logger  *slog.Logger
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(service sitecms.Service, logger *slog.Logger) *TeamHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &TeamHandler{service: service, logger: logger}
}

// Routes returns the routes for team members. GET / returns the whole
// team grouped into director and staff.
func (h *TeamHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.GetTeam)
	r.Post("/", h.CreateTeamMember)
	r.Get("/{id}", h.GetTeamMember)
	r.Patch("/{id}", h.UpdateTeamMember)
	r.Delete("/{id}", h.DeleteTeamMember)

	return r
}

// CreateTeamMemberRequest is the request body for creating a team member
type CreateTeamMemberRequest struct {
	Name     string `json:"name"`
	Position string `json:"position"`
	Email    string `json:"email"`
	Profile  string `json:"profile"`
	Image    string `json:"image"`
	Role     string `json:"role"`
}

// UpdateTeamMemberRequest is the request body for updating a team member
type UpdateTeamMemberRequest struct {
	Name     *string `json:"name"`
	Position *string `json:"position"`
	Email    *string `json:"email"`
	Profile  *string `json:"profile"`
	Image    *string `json:"image"`
	Role     *string `json:"role"`
}

func (h *TeamHandler) CreateTeamMember(w http.ResponseWriter, r *http.Request) {
	var req CreateTeamMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, r, "invalid request body")
		return
	}

	member, err := h.service.CreateTeamMember(r.Context(), sitecms.CreateTeamMemberRequest{
		Name:     req.Name,
		Position: req.Position,
		Email:    req.Email,
		Profile:  req.Profile,
		Image:    req.Image,
		Role:     sitecms.TeamRole(req.Role),
	})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, member)
}

func (h *TeamHandler) GetTeamMember(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamID(r)
	if err != nil {
		badRequest(w, r, "invalid team member ID")
		return
	}

	member, err := h.service.GetTeamMember(r.Context(), id)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	render.JSON(w, r, member)
}

func (h *TeamHandler) UpdateTeamMember(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamID(r)
	if err != nil {
		badRequest(w, r, "invalid team member ID")
		return
	}

	var req UpdateTeamMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, r, "invalid request body")
		return
	}

	update := sitecms.UpdateTeamMemberRequest{
		ID:       id,
		Name:     req.Name,
		Position: req.Position,
		Email:    req.Email,
		Profile:  req.Profile,
		Image:    req.Image,
	}
	if req.Role != nil {
		role := sitecms.TeamRole(*req.Role)
		update.Role = &role
	}

	member, err := h.service.UpdateTeamMember(r.Context(), update)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	render.JSON(w, r, member)
}

func (h *TeamHandler) DeleteTeamMember(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamID(r)
	if err != nil {
		badRequest(w, r, "invalid team member ID")
		return
	}

	result, err := h.service.DeleteTeamMember(r.Context(), id)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	render.JSON(w, r, result)
}

func (h *TeamHandler) GetTeam(w http.ResponseWriter, r *http.Request) {
	team, err := h.service.GetTeam(r.Context())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	render.JSON(w, r, team)
}
