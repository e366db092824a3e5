package sitecms

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// SlogEventSink logs lifecycle events through a structured logger. Cleanup
// failures surface at warn level; everything else at info.
type SlogEventSink struct {
	logger *slog.Logger
}

// NewSlogEventSink creates an event sink backed by the given logger. A nil
// logger falls back to slog.Default().
func NewSlogEventSink(logger *slog.Logger) EventSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogEventSink{logger: logger}
}

func (s *SlogEventSink) RecordCreated(ctx context.Context, entity string, id uuid.UUID) error {
	s.logger.InfoContext(ctx, "record created", "entity", entity, "id", id.String())
	return nil
}

func (s *SlogEventSink) RecordUpdated(ctx context.Context, entity string, id uuid.UUID) error {
	s.logger.InfoContext(ctx, "record updated", "entity", entity, "id", id.String())
	return nil
}

func (s *SlogEventSink) RecordDeleted(ctx context.Context, entity string, id uuid.UUID) error {
	s.logger.InfoContext(ctx, "record deleted", "entity", entity, "id", id.String())
	return nil
}

func (s *SlogEventSink) BlobReleased(ctx context.Context, handle string) error {
	s.logger.InfoContext(ctx, "blob released", "handle", handle)
	return nil
}

func (s *SlogEventSink) BlobCleanupFailed(ctx context.Context, handle string, err error) error {
	s.logger.WarnContext(ctx, "blob cleanup failed", "handle", handle, "error", err)
	return nil
}
