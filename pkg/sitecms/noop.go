package sitecms

import (
	"context"

	"github.com/google/uuid"
)

// NoopEventSink is a no-operation implementation of EventSink
// Useful when no observer cares about record or blob lifecycle events
type NoopEventSink struct{}

// NewNoopEventSink creates a new no-operation event sink
func NewNoopEventSink() EventSink {
	return &NoopEventSink{}
}

// RecordCreated does nothing and returns nil
func (n *NoopEventSink) RecordCreated(ctx context.Context, entity string, id uuid.UUID) error {
	return nil
}

// RecordUpdated does nothing and returns nil
func (n *NoopEventSink) RecordUpdated(ctx context.Context, entity string, id uuid.UUID) error {
	return nil
}

// RecordDeleted does nothing and returns nil
func (n *NoopEventSink) RecordDeleted(ctx context.Context, entity string, id uuid.UUID) error {
	return nil
}

// BlobReleased does nothing and returns nil
func (n *NoopEventSink) BlobReleased(ctx context.Context, handle string) error {
	return nil
}

// BlobCleanupFailed does nothing and returns nil
func (n *NoopEventSink) BlobCleanupFailed(ctx context.Context, handle string, err error) error {
	return nil
}
