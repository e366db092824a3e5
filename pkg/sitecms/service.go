package sitecms

import (
	"context"

	"github.com/google/uuid"
)

// Service is the main interface of the sitecms library. One set of
// create/update/delete/get/list operations per content type, with
// attachment and slug consistency handled inside.
type Service interface {
	// Hero slides
	CreateSlide(ctx context.Context, req CreateSlideRequest) (*HeroSlide, error)
	UpdateSlide(ctx context.Context, req UpdateSlideRequest) (*HeroSlide, error)
	DeleteSlide(ctx context.Context, id uuid.UUID) (*DeleteResult, error)
	GetSlide(ctx context.Context, id uuid.UUID) (*HeroSlide, error)
	ListSlides(ctx context.Context) ([]*HeroSlide, error)

	// Achievements
	CreateAchievement(ctx context.Context, req CreateAchievementRequest) (*Achievement, error)
	UpdateAchievement(ctx context.Context, req UpdateAchievementRequest) (*Achievement, error)
	DeleteAchievement(ctx context.Context, id uuid.UUID) (*DeleteResult, error)
	GetAchievement(ctx context.Context, id uuid.UUID) (*Achievement, error)
	GetAchievementBySlug(ctx context.Context, slug string) (*Achievement, error)
	// ListAchievements returns all achievements newest first, story omitted
	ListAchievements(ctx context.Context) ([]*Achievement, error)
	// ListLatestAchievements returns the newest few for the landing page
	ListLatestAchievements(ctx context.Context) ([]*Achievement, error)

	// Collaborators
	CreateCollaborator(ctx context.Context, req CreateCollaboratorRequest) (*Collaborator, error)
	UpdateCollaborator(ctx context.Context, req UpdateCollaboratorRequest) (*Collaborator, error)
	DeleteCollaborator(ctx context.Context, id uuid.UUID) (*DeleteResult, error)
	GetCollaborator(ctx context.Context, id uuid.UUID) (*Collaborator, error)
	ListCollaborators(ctx context.Context) ([]*Collaborator, error)

	// Team members
	CreateTeamMember(ctx context.Context, req CreateTeamMemberRequest) (*TeamMember, error)
	UpdateTeamMember(ctx context.Context, req UpdateTeamMemberRequest) (*TeamMember, error)
	DeleteTeamMember(ctx context.Context, id uuid.UUID) (*DeleteResult, error)
	GetTeamMember(ctx context.Context, id uuid.UUID) (*TeamMember, error)
	GetTeam(ctx context.Context) (*Team, error)

	// Events
	CreateEvent(ctx context.Context, req CreateEventRequest) (*Event, error)
	UpdateEvent(ctx context.Context, req UpdateEventRequest) (*Event, error)
	DeleteEvent(ctx context.Context, id uuid.UUID) (*DeleteResult, error)
	GetEvent(ctx context.Context, id uuid.UUID) (*Event, error)
	ListEvents(ctx context.Context) ([]*Event, error)

	// Statements
	CreateStatement(ctx context.Context, req CreateStatementRequest) (*Statement, error)
	UpdateStatement(ctx context.Context, req UpdateStatementRequest) (*Statement, error)
	DeleteStatement(ctx context.Context, id uuid.UUID) (*DeleteResult, error)
	GetStatement(ctx context.Context, id uuid.UUID) (*Statement, error)
	ListStatements(ctx context.Context) ([]*Statement, error)

	// Testimonials
	CreateTestimonial(ctx context.Context, req CreateTestimonialRequest) (*Testimonial, error)
	UpdateTestimonial(ctx context.Context, req UpdateTestimonialRequest) (*Testimonial, error)
	DeleteTestimonial(ctx context.Context, id uuid.UUID) (*DeleteResult, error)
	GetTestimonial(ctx context.Context, id uuid.UUID) (*Testimonial, error)
	ListTestimonials(ctx context.Context) ([]*Testimonial, error)

	// Achievement stats
	GetStats(ctx context.Context) (*AchievementStats, error)
	UpdateStats(ctx context.Context, req UpdateStatsRequest) (*AchievementStats, error)
}
