package fs_test

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chemosit/sitecms/pkg/sitecms"
	"github.com/chemosit/sitecms/pkg/sitecms/storage/fs"
)

func newBackend(t *testing.T, urlPrefix string) *fs.Backend {
	t.Helper()
	backend, err := fs.New(fs.Config{BaseDir: t.TempDir(), URLPrefix: urlPrefix})
	require.NoError(t, err)
	return backend
}

func TestNewRequiresBaseDir(t *testing.T) {
	_, err := fs.New(fs.Config{})
	assert.Error(t, err)
}

func TestUploadDownloadRoundTrip(t *testing.T) {
	backend := newBackend(t, "")
	ctx := context.Background()

	require.NoError(t, backend.Upload(ctx, "uploads/ab/nested/file.txt", strings.NewReader("content")))

	reader, err := backend.Download(ctx, "uploads/ab/nested/file.txt")
	require.NoError(t, err)
	defer reader.Close()

	data, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, "content", string(data))
}

func TestUploadReplacesAtomically(t *testing.T) {
	baseDir := t.TempDir()
	backend, err := fs.New(fs.Config{BaseDir: baseDir})
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, backend.Upload(ctx, "uploads/aa/file.txt", strings.NewReader("first")))
	require.NoError(t, backend.Upload(ctx, "uploads/aa/file.txt", strings.NewReader("second")))

	reader, err := backend.Download(ctx, "uploads/aa/file.txt")
	require.NoError(t, err)
	defer reader.Close()

	data, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))

	// Only the renamed file remains; no temp files linger.
	entries, err := os.ReadDir(filepath.Join(baseDir, "uploads", "aa"))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "file.txt", entries[0].Name())
}

func TestGetURL(t *testing.T) {
	ctx := context.Background()

	t.Run("missing blob", func(t *testing.T) {
		backend := newBackend(t, "")
		_, err := backend.GetURL(ctx, "missing")
		assert.ErrorIs(t, err, sitecms.ErrBlobNotFound)
	})

	t.Run("with url prefix", func(t *testing.T) {
		backend := newBackend(t, "https://cdn.example.com/media/")
		require.NoError(t, backend.Upload(ctx, "uploads/aa/pic.png", strings.NewReader("x")))

		url, err := backend.GetURL(ctx, "uploads/aa/pic.png")
		require.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/media/uploads/aa/pic.png", url)
	})

	t.Run("without prefix falls back to file url", func(t *testing.T) {
		backend := newBackend(t, "")
		require.NoError(t, backend.Upload(ctx, "uploads/aa/pic.png", strings.NewReader("x")))

		url, err := backend.GetURL(ctx, "uploads/aa/pic.png")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(url, "file://"))
	})
}

func TestDeleteIdempotent(t *testing.T) {
	backend := newBackend(t, "")
	ctx := context.Background()

	require.NoError(t, backend.Upload(ctx, "uploads/aa/file.txt", strings.NewReader("x")))
	require.NoError(t, backend.Delete(ctx, "uploads/aa/file.txt"))
	assert.NoError(t, backend.Delete(ctx, "uploads/aa/file.txt"))

	_, err := backend.Download(ctx, "uploads/aa/file.txt")
	assert.ErrorIs(t, err, sitecms.ErrBlobNotFound)
}

func TestObjectMeta(t *testing.T) {
	backend := newBackend(t, "")
	ctx := context.Background()

	require.NoError(t, backend.Upload(ctx, "uploads/aa/doc.txt", strings.NewReader("plain text content")))

	meta, err := backend.GetObjectMeta(ctx, "uploads/aa/doc.txt")
	require.NoError(t, err)
	assert.Equal(t, int64(len("plain text content")), meta.Size)
	assert.Contains(t, meta.ContentType, "text/plain")
}
