package fs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/chemosit/sitecms/pkg/sitecms"
)

// Backend is a filesystem implementation of the sitecms.BlobStore interface
type Backend struct {
	baseDir   string
	urlPrefix string
}

// Config options for the filesystem backend
type Config struct {
	BaseDir   string // Base directory for storing blobs
	URLPrefix string // URL prefix for resolved display URLs
}

// New creates a new filesystem storage backend
func New(config Config) (*Backend, error) {
	if config.BaseDir == "" {
		return nil, errors.New("base directory is required")
	}
	if err := os.MkdirAll(config.BaseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create base directory: %w", err)
	}

	return &Backend{
		baseDir:   config.BaseDir,
		urlPrefix: strings.TrimSuffix(config.URLPrefix, "/"),
	}, nil
}

func (b *Backend) path(handle string) string {
	return filepath.Join(b.baseDir, filepath.FromSlash(handle))
}

// Upload stores a blob under the given handle. The blob is written to a
// temp file in the target directory and renamed into place, so a handle
// never resolves to a half-written file.
func (b *Backend) Upload(ctx context.Context, handle string, reader io.Reader) error {
	filePath := b.path(handle)
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(filePath)+".tmp*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	if _, err := io.Copy(tmp, reader); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), filePath); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to finalize file: %w", err)
	}
	return nil
}

// UploadWithParams stores a blob; the mime type is not persisted separately,
// it is re-detected on read
func (b *Backend) UploadWithParams(ctx context.Context, reader io.Reader, params sitecms.UploadParams) error {
	return b.Upload(ctx, params.Handle, reader)
}

// Download reads a blob back
func (b *Backend) Download(ctx context.Context, handle string) (io.ReadCloser, error) {
	file, err := os.Open(b.path(handle))
	if os.IsNotExist(err) {
		return nil, sitecms.ErrBlobNotFound
	} else if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return file, nil
}

// GetURL returns the display URL for a stored blob
func (b *Backend) GetURL(ctx context.Context, handle string) (string, error) {
	if _, err := os.Stat(b.path(handle)); os.IsNotExist(err) {
		return "", sitecms.ErrBlobNotFound
	} else if err != nil {
		return "", fmt.Errorf("failed to stat file: %w", err)
	}

	if b.urlPrefix == "" {
		return "file://" + b.path(handle), nil
	}
	return b.urlPrefix + "/" + handle, nil
}

// GetUploadURL is not supported by the filesystem backend
func (b *Backend) GetUploadURL(ctx context.Context, handle string) (string, error) {
	return "", errors.New("direct upload required for filesystem backend")
}

// Delete removes a blob. Deleting an absent handle is not an error.
func (b *Backend) Delete(ctx context.Context, handle string) error {
	err := os.Remove(b.path(handle))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// GetObjectMeta retrieves metadata for a blob on disk
func (b *Backend) GetObjectMeta(ctx context.Context, handle string) (*sitecms.ObjectMeta, error) {
	filePath := b.path(handle)

	info, err := os.Stat(filePath)
	if os.IsNotExist(err) {
		return nil, sitecms.ErrBlobNotFound
	} else if err != nil {
		return nil, fmt.Errorf("failed to get file info: %w", err)
	}

	contentType := "application/octet-stream"
	if file, err := os.Open(filePath); err == nil {
		defer file.Close()
		buffer := make([]byte, 512)
		if n, err := file.Read(buffer); err == nil {
			contentType = http.DetectContentType(buffer[:n])
		}
	}

	return &sitecms.ObjectMeta{
		Key:         handle,
		Size:        info.Size(),
		ContentType: contentType,
		UpdatedAt:   info.ModTime(),
		Metadata:    map[string]string{"content_type": contentType},
	}, nil
}
