package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/chemosit/sitecms/pkg/sitecms"
)

// AchievementsHandler handles HTTP requests for achievements and the
// achievement stats row
type AchievementsHandler struct {
	service sitecms.Service
	logger  *slog.Logger
}

// NewAchievementsHandler creates a new achievement handler
func NewAchievementsHandler(service sitecms.Service, logger *slog.Logger) *AchievementsHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AchievementsHandler{service: service, logger: logger}
}

// Routes returns the routes for achievements
func (h *AchievementsHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ListAchievements)
	r.Post("/", h.CreateAchievement)
	r.Get("/latest", h.ListLatestAchievements)
	r.Get("/stats", h.GetStats)
	r.Patch("/stats", h.UpdateStats)
	r.Get("/slug/{slug}", h.GetAchievementBySlug)
	r.Get("/{id}", h.GetAchievement)
	r.Patch("/{id}", h.UpdateAchievement)
	r.Delete("/{id}", h.DeleteAchievement)

	return r
}

// CreateAchievementRequest is the request body for creating an achievement
type CreateAchievementRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Slug        string     `json:"slug"`
	Story       string     `json:"story"`
	Photo       string     `json:"photo"`
	PublishedAt *time.Time `json:"published_at"`
}

// UpdateAchievementRequest is the request body for updating an achievement
type UpdateAchievementRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Slug        *string    `json:"slug"`
	Story       *string    `json:"story"`
	Photo       *string    `json:"photo"`
	PublishedAt *time.Time `json:"published_at"`
}

// UpdateStatsRequest is the request body for patching the stats counters
type UpdateStatsRequest struct {
	NationalChampions        *int `json:"national_champions"`
	InternationalRecognition *int `json:"international_recognition"`
	StudentWinners           *int `json:"student_winners"`
	UniversityAwards         *int `json:"university_awards"`
}

func (h *AchievementsHandler) CreateAchievement(w http.ResponseWriter, r *http.Request) {
	var req CreateAchievementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, r, "invalid request body")
		return
	}

	achievement, err := h.service.CreateAchievement(r.Context(), sitecms.CreateAchievementRequest{
		Title:       req.Title,
		Description: req.Description,
		Slug:        req.Slug,
		Story:       req.Story,
		Photo:       req.Photo,
		PublishedAt: req.PublishedAt,
	})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, achievement)
}

func (h *AchievementsHandler) GetAchievement(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamID(r)
	if err != nil {
		badRequest(w, r, "invalid achievement ID")
		return
	}

	achievement, err := h.service.GetAchievement(r.Context(), id)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	render.JSON(w, r, achievement)
}

func (h *AchievementsHandler) GetAchievementBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	achievement, err := h.service.GetAchievementBySlug(r.Context(), slug)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	render.JSON(w, r, achievement)
}

func (h *AchievementsHandler) UpdateAchievement(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamID(r)
	if err != nil {
		badRequest(w, r, "invalid achievement ID")
		return
	}

	var req UpdateAchievementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, r, "invalid request body")
		return
	}

	achievement, err := h.service.UpdateAchievement(r.Context(), sitecms.UpdateAchievementRequest{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Slug:        req.Slug,
		Story:       req.Story,
		Photo:       req.Photo,
		PublishedAt: req.PublishedAt,
	})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	render.JSON(w, r, achievement)
}

func (h *AchievementsHandler) DeleteAchievement(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamID(r)
	if err != nil {
		badRequest(w, r, "invalid achievement ID")
		return
	}

	result, err := h.service.DeleteAchievement(r.Context(), id)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	render.JSON(w, r, result)
}

func (h *AchievementsHandler) ListAchievements(w http.ResponseWriter, r *http.Request) {
	achievements, err := h.service.ListAchievements(r.Context())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	render.JSON(w, r, achievements)
}

func (h *AchievementsHandler) ListLatestAchievements(w http.ResponseWriter, r *http.Request) {
	achievements, err := h.service.ListLatestAchievements(r.Context())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	render.JSON(w, r, achievements)
}

func (h *AchievementsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.GetStats(r.Context())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	render.JSON(w, r, stats)
}

func (h *AchievementsHandler) UpdateStats(w http.ResponseWriter, r *http.Request) {
	var req UpdateStatsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, r, "invalid request body")
		return
	}

	stats, err := h.service.UpdateStats(r.Context(), sitecms.UpdateStatsRequest{
		NationalChampions:        req.NationalChampions,
		InternationalRecognition: req.InternationalRecognition,
		StudentWinners:           req.StudentWinners,
		UniversityAwards:         req.UniversityAwards,
	})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	render.JSON(w, r, stats)
}
