package sitecms

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs. Create requests carry plain fields; update requests carry
// pointer fields so an absent field is distinct from an explicit value.

// CreateSlideRequest contains parameters for creating a hero slide.
// Alt defaults to the title when empty.
type CreateSlideRequest struct {
	Title    string
	Subtitle string
	Alt      string
	Img      string
}

// UpdateSlideRequest contains parameters for updating a hero slide. A nil
// Img keeps the current image; a different handle replaces it and releases
// the old blob.
type UpdateSlideRequest struct {
	ID       uuid.UUID
	Title    *string
	Subtitle *string
	Img      *string
}

// CreateAchievementRequest contains parameters for creating an achievement.
// When Slug is empty it is derived from the title.
type CreateAchievementRequest struct {
	Title       string
	Description string
	Slug        string
	Story       string
	Photo       string
	PublishedAt *time.Time
}

// UpdateAchievementRequest contains parameters for updating an achievement.
// The slug is re-derived from a changed title unless Slug is set explicitly.
// A PublishedAt pointing at the zero time unsets the publication date.
type UpdateAchievementRequest struct {
	ID          uuid.UUID
	Title       *string
	Description *string
	Slug        *string
	Story       *string
	Photo       *string
	PublishedAt *time.Time
}

// CreateCollaboratorRequest contains parameters for creating a collaborator.
type CreateCollaboratorRequest struct {
	Name   string
	Office string
	Logo   string
}

// UpdateCollaboratorRequest contains parameters for updating a collaborator.
type UpdateCollaboratorRequest struct {
	ID     uuid.UUID
	Name   *string
	Office *string
	Logo   *string
}

// CreateTeamMemberRequest contains parameters for creating a team member.
// Role defaults to staff when empty.
type CreateTeamMemberRequest struct {
	Name     string
	Position string
	Email    string
	Profile  string
	Image    string
	Role     TeamRole
}

// UpdateTeamMemberRequest contains parameters for updating a team member.
type UpdateTeamMemberRequest struct {
	ID       uuid.UUID
	Name     *string
	Position *string
	Email    *string
	Profile  *string
	Image    *string
	Role     *TeamRole
}

// CreateEventRequest contains parameters for creating an event.
type CreateEventRequest struct {
	Title    string
	Date     string
	Location string
	Note     string
}

// UpdateEventRequest contains parameters for updating an event.
type UpdateEventRequest struct {
	ID       uuid.UUID
	Title    *string
	Date     *string
	Location *string
	Note     *string
}

// CreateStatementRequest contains parameters for creating a statement.
type CreateStatementRequest struct {
	Type    StatementType
	Title   string
	Content string
	Values  []string
}

// UpdateStatementRequest contains parameters for updating a statement. The
// type is immutable after creation.
type UpdateStatementRequest struct {
	ID      uuid.UUID
	Title   *string
	Content *string
	Values  *[]string
}

// CreateTestimonialRequest contains parameters for creating a testimonial.
type CreateTestimonialRequest struct {
	Name string
	Role string
	Body string
}

// UpdateTestimonialRequest contains parameters for updating a testimonial.
type UpdateTestimonialRequest struct {
	ID   uuid.UUID
	Name *string
	Role *string
	Body *string
}

// UpdateStatsRequest contains parameters for patching the stats row. At
// least one counter must be set.
type UpdateStatsRequest struct {
	ID                       uuid.UUID
	NationalChampions        *int
	InternationalRecognition *int
	StudentWinners           *int
	UniversityAwards         *int
}

// Repository patch structs. A nil field leaves the stored value untouched.

// SlidePatch is a partial hero slide update.
type SlidePatch struct {
	Title    *string
	Subtitle *string
	Alt      *string
	Img      *string
}

// AchievementPatch is a partial achievement update. A PublishedAt pointing
// at the zero time clears the stored value.
type AchievementPatch struct {
	Title       *string
	Description *string
	Slug        *string
	Story       *string
	Photo       *string
	PublishedAt *time.Time
}

// CollaboratorPatch is a partial collaborator update.
type CollaboratorPatch struct {
	Name   *string
	Office *string
	Logo   *string
}

// TeamMemberPatch is a partial team member update.
type TeamMemberPatch struct {
	Name     *string
	Position *string
	Email    *string
	Profile  *string
	Image    *string
	Role     *TeamRole
}

// EventPatch is a partial event update.
type EventPatch struct {
	Title    *string
	Date     *string
	Location *string
	Note     *string
}

// StatementPatch is a partial statement update.
type StatementPatch struct {
	Title   *string
	Content *string
	Values  *[]string
}

// TestimonialPatch is a partial testimonial update.
type TestimonialPatch struct {
	Name *string
	Role *string
	Body *string
}

// StatsPatch is a partial stats update.
type StatsPatch struct {
	NationalChampions        *int
	InternationalRecognition *int
	StudentWinners           *int
	UniversityAwards         *int
}
