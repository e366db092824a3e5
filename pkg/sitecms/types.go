package sitecms

import (
	"time"

	"github.com/google/uuid"
)

// TeamRole is the domain type for team member roles.
type TeamRole string

// Team role constants (typed).
const (
	TeamRoleDirector TeamRole = "director"
	TeamRoleStaff    TeamRole = "staff"
)

// IsValid returns true if the role is a known value.
func (r TeamRole) IsValid() bool {
	switch r {
	case TeamRoleDirector, TeamRoleStaff:
		return true
	}
	return false
}

// StatementType is the domain type for site statements.
type StatementType string

// Statement type constants (typed).
const (
	StatementMission    StatementType = "mission"
	StatementVision     StatementType = "vision"
	StatementCoreValues StatementType = "core-values"
)

// IsValid returns true if the statement type is a known value.
func (t StatementType) IsValid() bool {
	switch t {
	case StatementMission, StatementVision, StatementCoreValues:
		return true
	}
	return false
}

// HeroSlide is a carousel slide on the landing page. Img is the opaque
// handle of the slide image in the blob store.
type HeroSlide struct {
	ID        uuid.UUID `json:"id"`
	Img       string    `json:"img"`
	Alt       string    `json:"alt"`
	Title     string    `json:"title"`
	Subtitle  string    `json:"subtitle"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Computed field (not persisted - resolved from the blob store on read)
	ImgURL string `json:"img_url,omitempty" db:"-"`
}

// Achievement is a published achievement story. Slug is unique across all
// achievements and addressable in page URLs.
type Achievement struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Slug        string     `json:"slug"`
	Story       string     `json:"story,omitempty"`
	Photo       string     `json:"photo"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	// Computed field (not persisted - resolved from the blob store on read)
	PhotoURL string `json:"photo_url,omitempty" db:"-"`
}

// Collaborator is a partner organization shown with its logo.
type Collaborator struct {
	ID        uuid.UUID `json:"id"`
	Logo      string    `json:"logo"`
	Name      string    `json:"name"`
	Office    string    `json:"office"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Computed field (not persisted - resolved from the blob store on read)
	LogoURL string `json:"logo_url,omitempty" db:"-"`
}

// TeamMember is a staff profile. At most one member holds the director
// role at any time; the service rejects a second director at write time.
type TeamMember struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Position  string    `json:"position"`
	Email     string    `json:"email,omitempty"`
	Profile   string    `json:"profile,omitempty"`
	Image     string    `json:"image"`
	Role      TeamRole  `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Computed field (not persisted - resolved from the blob store on read)
	ImageURL string `json:"image_url,omitempty" db:"-"`
}

// Team groups the current director with the rest of the staff.
type Team struct {
	Director *TeamMember   `json:"director"`
	Staff    []*TeamMember `json:"staff"`
}

// Event is a calendar entry. All fields except the title are optional.
type Event struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Date      string    `json:"date,omitempty"`
	Location  string    `json:"location,omitempty"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Statement is a mission/vision/core-values block. Values is only used by
// the core-values type.
type Statement struct {
	ID        uuid.UUID     `json:"id"`
	Type      StatementType `json:"type"`
	Title     string        `json:"title"`
	Content   string        `json:"content,omitempty"`
	Values    []string      `json:"values,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// Testimonial is a quote attributed to a named person.
type Testimonial struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AchievementStats is the single row of headline counters shown on the
// achievements page.
type AchievementStats struct {
	ID                       uuid.UUID `json:"id"`
	NationalChampions        int       `json:"national_champions"`
	InternationalRecognition int       `json:"international_recognition"`
	StudentWinners           int       `json:"student_winners"`
	UniversityAwards         int       `json:"university_awards"`
	CreatedAt                time.Time `json:"created_at"`
	UpdatedAt                time.Time `json:"updated_at"`
}

// DeleteResult confirms a completed delete: the removed record id and the
// blob handle that was released along with it (empty for entities without
// an attachment).
type DeleteResult struct {
	ID             uuid.UUID `json:"id"`
	ReleasedHandle string    `json:"released_handle,omitempty"`
}
