package memory

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sync"

	"github.com/chemosit/sitecms/pkg/sitecms"
)

// Backend is an in-memory implementation of the sitecms.BlobStore interface
type Backend struct {
	mu        sync.RWMutex
	blobs     map[string][]byte
	mimeTypes map[string]string
}

// New creates a new in-memory storage backend
func New() *Backend {
	return &Backend{
		blobs:     make(map[string][]byte),
		mimeTypes: make(map[string]string),
	}
}

// Upload stores a blob directly
func (b *Backend) Upload(ctx context.Context, handle string, reader io.Reader) error {
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.blobs[handle] = data
	if _, exists := b.mimeTypes[handle]; !exists {
		b.mimeTypes[handle] = "application/octet-stream"
	}
	return nil
}

// UploadWithParams stores a blob with parameters
func (b *Backend) UploadWithParams(ctx context.Context, reader io.Reader, params sitecms.UploadParams) error {
	if err := b.Upload(ctx, params.Handle, reader); err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.mimeTypes[params.Handle] = params.MimeType
	return nil
}

// Download reads a blob back
func (b *Backend) Download(ctx context.Context, handle string) (io.ReadCloser, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	data, exists := b.blobs[handle]
	if !exists {
		return nil, sitecms.ErrBlobNotFound
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

// GetURL returns a synthetic URL for a stored blob. Handles that do not
// resolve return ErrBlobNotFound so callers can degrade to "no image".
func (b *Backend) GetURL(ctx context.Context, handle string) (string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if _, exists := b.blobs[handle]; !exists {
		return "", sitecms.ErrBlobNotFound
	}
	return "memory://" + handle, nil
}

// GetUploadURL is not supported by the in-memory backend
func (b *Backend) GetUploadURL(ctx context.Context, handle string) (string, error) {
	return "", errors.New("direct upload required for memory backend")
}

// Delete removes a blob. Deleting an absent handle is not an error.
func (b *Backend) Delete(ctx context.Context, handle string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	delete(b.blobs, handle)
	delete(b.mimeTypes, handle)
	return nil
}

// GetObjectMeta retrieves metadata for a blob in memory
func (b *Backend) GetObjectMeta(ctx context.Context, handle string) (*sitecms.ObjectMeta, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	data, exists := b.blobs[handle]
	if !exists {
		return nil, sitecms.ErrBlobNotFound
	}

	return &sitecms.ObjectMeta{
		Key:         handle,
		Size:        int64(len(data)),
		ContentType: b.mimeTypes[handle],
		Metadata:    map[string]string{"mime_type": b.mimeTypes[handle]},
	}, nil
}
