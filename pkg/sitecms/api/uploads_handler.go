package api

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/chemosit/sitecms/pkg/sitecms"
	"github.com/chemosit/sitecms/pkg/sitecms/blobkey"
)

// maxUploadSize caps multipart uploads at 32 MiB
const maxUploadSize = 32 << 20

// UploadsHandler handles blob uploads and downloads. Records reference
// blobs by the handle returned here.
type UploadsHandler struct {
	blobs  sitecms.BlobStore
	keys   blobkey.Generator
	logger *slog.Logger
}

// NewUploadsHandler creates a new upload handler
func NewUploadsHandler(blobs sitecms.BlobStore, keys blobkey.Generator, logger *slog.Logger) *UploadsHandler {
	if keys == nil {
		keys = blobkey.NewShardedGenerator()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &UploadsHandler{blobs: blobs, keys: keys, logger: logger}
}

// Routes returns the routes for uploads
func (h *UploadsHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Upload)
	r.Get("/*", h.Download)

	return r
}

// UploadResponse is the response body for a completed upload
type UploadResponse struct {
	Handle string `json:"handle"`
	URL    string `json:"url,omitempty"`
}

// Upload accepts a multipart form with a "file" field, stores the blob and
// returns its handle
func (h *UploadsHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		badRequest(w, r, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		badRequest(w, r, "missing file field")
		return
	}
	defer file.Close()

	handle := h.keys.NewHandle(header.Filename)
	params := sitecms.UploadParams{
		Handle:   handle,
		MimeType: header.Header.Get("Content-Type"),
	}

	if err := h.blobs.UploadWithParams(r.Context(), file, params); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	url, err := h.blobs.GetURL(r.Context(), handle)
	if err != nil {
		// The blob is stored; a URL failure only degrades the response
		h.logger.WarnContext(r.Context(), "resolve upload url failed",
			"handle", handle, "error", err)
		url = ""
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, UploadResponse{Handle: handle, URL: url})
}

// Download streams a stored blob back by its handle
func (h *UploadsHandler) Download(w http.ResponseWriter, r *http.Request) {
	handle := chi.URLParam(r, "*")
	if handle == "" {
		badRequest(w, r, "missing blob handle")
		return
	}

	reader, err := h.blobs.Download(r.Context(), handle)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	defer reader.Close()

	if meta, err := h.blobs.GetObjectMeta(r.Context(), handle); err == nil && meta.ContentType != "" {
		w.Header().Set("Content-Type", meta.ContentType)
	}

	if _, err := io.Copy(w, reader); err != nil {
		h.logger.ErrorContext(r.Context(), "stream blob failed",
			"handle", handle, "error", err)
	}
}
