package sitecms

import (
	"context"
	"log/slog"
	"strings"
	"unicode"
)

const maxHandleLength = 512

// attachmentBinder keeps a record's attachment handle and the underlying
// blob consistent across update and delete. It never uploads; handles are
// produced by a prior upload step outside the service.
type attachmentBinder struct {
	blobs  BlobStore
	events EventSink
	logger *slog.Logger
}

// BindNew validates a handle for inclusion in a create. No blob is touched;
// the blob is assumed already uploaded by the caller.
func (b *attachmentBinder) BindNew(field, handle string) (string, error) {
	if err := validateHandle(field, handle); err != nil {
		return "", err
	}
	return handle, nil
}

// Rebind reconciles an existing handle with an optional replacement. It
// returns the handle to persist and the now-stale handle to release once
// the record patch has landed. An absent or identical replacement keeps the
// existing handle and nothing becomes stale.
//
// The caller must sequence: patch the record with effective first, then
// Release(stale). If the patch fails the old blob must survive, so retry is
// possible without data loss.
func (b *attachmentBinder) Rebind(field, existing string, next *string) (effective, stale string, err error) {
	if next == nil {
		return existing, "", nil
	}
	if err := validateHandle(field, *next); err != nil {
		return "", "", err
	}
	if *next == existing {
		return existing, "", nil
	}
	return *next, existing, nil
}

// Release deletes a blob, best effort. Failure to delete (the blob may
// already be gone) is logged and swallowed: the record mutation is the
// user-visible operation and a dangling blob is the lesser failure.
func (b *attachmentBinder) Release(ctx context.Context, handle string) {
	if handle == "" {
		return
	}
	if err := b.blobs.Delete(ctx, handle); err != nil {
		b.logger.Warn("failed to release blob", "handle", handle, "error", err)
		if b.events != nil {
			b.events.BlobCleanupFailed(ctx, handle, err)
		}
		return
	}
	if b.events != nil {
		b.events.BlobReleased(ctx, handle)
	}
}

// validateHandle rejects empty or malformed blob handles before any store
// is touched.
func validateHandle(field, handle string) error {
	if strings.TrimSpace(handle) == "" {
		return &ValidationError{Field: field, Reason: "attachment handle is required"}
	}
	if len(handle) > maxHandleLength {
		return &ValidationError{Field: field, Reason: "attachment handle too long"}
	}
	for _, r := range handle {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return &ValidationError{Field: field, Reason: "attachment handle contains whitespace"}
		}
	}
	return nil
}
