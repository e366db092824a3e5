// Package api provides HTTP handlers for the site CMS service using
// chi and render.
package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"

	"github.com/chemosit/sitecms/pkg/sitecms"
)

// ErrorResponse is the body returned for any failed request
type ErrorResponse struct {
	Error string `json:"error"`
}

// writeError maps domain errors onto HTTP status codes. Anything that is
// not a validation, conflict or not-found error is a 500 and gets logged.
func writeError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, sitecms.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, sitecms.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, sitecms.ErrNotFound):
		status = http.StatusNotFound
	}

	if status == http.StatusInternalServerError {
		logger.ErrorContext(r.Context(), "request failed",
			"method", r.Method, "path", r.URL.Path, "error", err)
	}

	render.Status(r, status)
	render.JSON(w, r, ErrorResponse{Error: err.Error()})
}

// urlParamID parses the {id} path parameter
func urlParamID(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, "id"))
}

func badRequest(w http.ResponseWriter, r *http.Request, message string) {
	render.Status(r, http.StatusBadRequest)
	render.JSON(w, r, ErrorResponse{Error: message})
}
