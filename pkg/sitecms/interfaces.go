package sitecms

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
)

// BlobStore defines the interface for blob storage backends. Handles are
// opaque keys; the UI uploads a blob and hands the resulting handle to the
// service before any record references it.
type BlobStore interface {
	// Upload stores a blob under the given handle
	Upload(ctx context.Context, handle string, reader io.Reader) error

	// UploadWithParams stores a blob with additional parameters
	UploadWithParams(ctx context.Context, reader io.Reader, params UploadParams) error

	// Download reads a blob back
	Download(ctx context.Context, handle string) (io.ReadCloser, error)

	// GetURL returns a display URL for the blob, or ErrBlobNotFound when
	// the handle does not resolve
	GetURL(ctx context.Context, handle string) (string, error)

	// GetUploadURL returns a URL a client can upload to directly; backends
	// without presigned upload support return an error
	GetUploadURL(ctx context.Context, handle string) (string, error)

	// Delete removes a blob. Deleting an absent handle is not an error.
	Delete(ctx context.Context, handle string) error

	// GetObjectMeta retrieves metadata for a stored blob
	GetObjectMeta(ctx context.Context, handle string) (*ObjectMeta, error)
}

// ObjectMeta contains metadata about a blob in storage
type ObjectMeta struct {
	Key         string
	Size        int64
	ContentType string
	UpdatedAt   time.Time
	Metadata    map[string]string
}

// UploadParams contains parameters for uploading a blob
type UploadParams struct {
	Handle   string
	MimeType string
}

// Repository defines the interface for content record persistence. Patch
// structs carry pointer fields; only non-nil fields overwrite the record.
type Repository interface {
	// Hero slides
	CreateSlide(ctx context.Context, slide *HeroSlide) error
	GetSlide(ctx context.Context, id uuid.UUID) (*HeroSlide, error)
	UpdateSlide(ctx context.Context, id uuid.UUID, patch SlidePatch) error
	DeleteSlide(ctx context.Context, id uuid.UUID) error
	ListSlides(ctx context.Context) ([]*HeroSlide, error)

	// Achievements
	CreateAchievement(ctx context.Context, a *Achievement) error
	GetAchievement(ctx context.Context, id uuid.UUID) (*Achievement, error)
	// GetAchievementBySlug looks up the slug secondary index; returns
	// ErrAchievementNotFound when no record owns the slug
	GetAchievementBySlug(ctx context.Context, slug string) (*Achievement, error)
	UpdateAchievement(ctx context.Context, id uuid.UUID, patch AchievementPatch) error
	DeleteAchievement(ctx context.Context, id uuid.UUID) error
	// ListAchievements returns achievements newest first; limit <= 0 means all
	ListAchievements(ctx context.Context, limit int) ([]*Achievement, error)

	// Collaborators
	CreateCollaborator(ctx context.Context, c *Collaborator) error
	GetCollaborator(ctx context.Context, id uuid.UUID) (*Collaborator, error)
	UpdateCollaborator(ctx context.Context, id uuid.UUID, patch CollaboratorPatch) error
	DeleteCollaborator(ctx context.Context, id uuid.UUID) error
	ListCollaborators(ctx context.Context) ([]*Collaborator, error)

	// Team members
	CreateTeamMember(ctx context.Context, m *TeamMember) error
	GetTeamMember(ctx context.Context, id uuid.UUID) (*TeamMember, error)
	UpdateTeamMember(ctx context.Context, id uuid.UUID, patch TeamMemberPatch) error
	DeleteTeamMember(ctx context.Context, id uuid.UUID) error
	// ListTeamMembersByRole looks up the role secondary index
	ListTeamMembersByRole(ctx context.Context, role TeamRole) ([]*TeamMember, error)

	// Events
	CreateEvent(ctx context.Context, e *Event) error
	GetEvent(ctx context.Context, id uuid.UUID) (*Event, error)
	UpdateEvent(ctx context.Context, id uuid.UUID, patch EventPatch) error
	DeleteEvent(ctx context.Context, id uuid.UUID) error
	ListEvents(ctx context.Context) ([]*Event, error)

	// Statements
	CreateStatement(ctx context.Context, st *Statement) error
	GetStatement(ctx context.Context, id uuid.UUID) (*Statement, error)
	UpdateStatement(ctx context.Context, id uuid.UUID, patch StatementPatch) error
	DeleteStatement(ctx context.Context, id uuid.UUID) error
	ListStatements(ctx context.Context) ([]*Statement, error)

	// Testimonials
	CreateTestimonial(ctx context.Context, t *Testimonial) error
	GetTestimonial(ctx context.Context, id uuid.UUID) (*Testimonial, error)
	UpdateTestimonial(ctx context.Context, id uuid.UUID, patch TestimonialPatch) error
	DeleteTestimonial(ctx context.Context, id uuid.UUID) error
	ListTestimonials(ctx context.Context) ([]*Testimonial, error)

	// Achievement stats (single row)
	CreateStats(ctx context.Context, s *AchievementStats) error
	GetStats(ctx context.Context) (*AchievementStats, error)
	UpdateStats(ctx context.Context, id uuid.UUID, patch StatsPatch) error
}

// EventSink receives notifications about completed operations. Cleanup
// failures are reported here as non-fatal warnings; they never fail the
// operation that triggered them.
type EventSink interface {
	RecordCreated(ctx context.Context, entity string, id uuid.UUID) error
	RecordUpdated(ctx context.Context, entity string, id uuid.UUID) error
	RecordDeleted(ctx context.Context, entity string, id uuid.UUID) error

	// BlobReleased is fired after a blob delete was issued for a replaced
	// or removed attachment
	BlobReleased(ctx context.Context, handle string) error

	// BlobCleanupFailed is fired when a stale blob could not be deleted
	BlobCleanupFailed(ctx context.Context, handle string, err error) error
}
