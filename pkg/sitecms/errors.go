package sitecms

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Base error kinds. Per-entity sentinels wrap these so callers can match
// either the specific entity or the whole class with errors.Is.
var (
	// ErrNotFound indicates an operation targeted a nonexistent record
	ErrNotFound = errors.New("not found")

	// ErrConflict indicates a write lost to a uniqueness rule
	ErrConflict = errors.New("conflict")

	// ErrValidation indicates rejected input; no write occurred
	ErrValidation = errors.New("validation failed")
)

// Not-found sentinels, one per entity.
var (
	ErrSlideNotFound        = fmt.Errorf("hero slide %w", ErrNotFound)
	ErrAchievementNotFound  = fmt.Errorf("achievement %w", ErrNotFound)
	ErrCollaboratorNotFound = fmt.Errorf("collaborator %w", ErrNotFound)
	ErrTeamMemberNotFound   = fmt.Errorf("team member %w", ErrNotFound)
	ErrEventNotFound        = fmt.Errorf("event %w", ErrNotFound)
	ErrStatementNotFound    = fmt.Errorf("statement %w", ErrNotFound)
	ErrTestimonialNotFound  = fmt.Errorf("testimonial %w", ErrNotFound)
	ErrStatsNotFound        = fmt.Errorf("achievement stats %w", ErrNotFound)

	// ErrBlobNotFound indicates a blob handle does not resolve to a stored blob
	ErrBlobNotFound = fmt.Errorf("blob %w", ErrNotFound)
)

// Conflict sentinels.
var (
	// ErrSlugConflict indicates another achievement already owns the slug
	ErrSlugConflict = fmt.Errorf("%w: slug already in use", ErrConflict)

	// ErrDirectorExists indicates a different team member already holds the
	// director role
	ErrDirectorExists = fmt.Errorf("%w: a director already exists", ErrConflict)
)

// ValidationError reports a rejected input field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// EntityError wraps a failed entity operation with its id and operation name.
type EntityError struct {
	Entity string
	ID     uuid.UUID
	Op     string
	Err    error
}

func (e *EntityError) Error() string {
	return fmt.Sprintf("%s operation %s failed for %s: %v", e.Entity, e.Op, e.ID, e.Err)
}

func (e *EntityError) Unwrap() error {
	return e.Err
}

// StoreError represents a failed call against one of the external stores.
type StoreError struct {
	Store string // "record" or "blob"
	Op    string
	Err   error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s store operation %s failed: %v", e.Store, e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
