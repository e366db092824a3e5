package sitecms

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Number of achievements returned for the landing page strip.
const latestAchievementsLimit = 3

// service implements the Service interface
type service struct {
	repository Repository
	blobs      BlobStore
	binder     *attachmentBinder
	events     EventSink
	logger     *slog.Logger
}

// Option represents a functional option for configuring the service
type Option func(*service)

// WithRepository sets the record repository for the service
func WithRepository(repo Repository) Option {
	return func(s *service) {
		s.repository = repo
	}
}

// WithBlobStore sets the blob storage backend for the service
func WithBlobStore(store BlobStore) Option {
	return func(s *service) {
		s.blobs = store
	}
}

// WithEventSink sets the event sink for the service
func WithEventSink(sink EventSink) Option {
	return func(s *service) {
		s.events = sink
	}
}

// WithLogger sets the structured logger for the service
func WithLogger(logger *slog.Logger) Option {
	return func(s *service) {
		s.logger = logger
	}
}

// New creates a new service instance with the given options
func New(options ...Option) (Service, error) {
	s := &service{}

	for _, option := range options {
		option(s)
	}

	if s.repository == nil {
		return nil, fmt.Errorf("repository is required")
	}
	if s.blobs == nil {
		return nil, fmt.Errorf("blob store is required")
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}

	s.binder = &attachmentBinder{blobs: s.blobs, events: s.events, logger: s.logger}

	return s, nil
}

// Validation helpers

func requireString(field, value string) (string, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return "", &ValidationError{Field: field, Reason: "must not be empty"}
	}
	return v, nil
}

// requireStringPatch validates an optional update field that, when present,
// must not be blank. Returns a trimmed copy or nil.
func requireStringPatch(field string, value *string) (*string, error) {
	if value == nil {
		return nil, nil
	}
	v, err := requireString(field, *value)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func trimPatch(value *string) *string {
	if value == nil {
		return nil
	}
	v := strings.TrimSpace(*value)
	return &v
}

// resolveURL turns a blob handle into a display URL. A blob that no longer
// resolves degrades to an empty URL rather than a broken link.
func (s *service) resolveURL(ctx context.Context, handle string) string {
	if handle == "" {
		return ""
	}
	url, err := s.blobs.GetURL(ctx, handle)
	if err != nil {
		s.logger.Warn("failed to resolve blob url", "handle", handle, "error", err)
		return ""
	}
	return url
}

func (s *service) recordCreated(ctx context.Context, entity string, id uuid.UUID) {
	if s.events != nil {
		s.events.RecordCreated(ctx, entity, id)
	}
}

func (s *service) recordUpdated(ctx context.Context, entity string, id uuid.UUID) {
	if s.events != nil {
		s.events.RecordUpdated(ctx, entity, id)
	}
}

func (s *service) recordDeleted(ctx context.Context, entity string, id uuid.UUID) {
	if s.events != nil {
		s.events.RecordDeleted(ctx, entity, id)
	}
}

// Hero slide operations

func (s *service) CreateSlide(ctx context.Context, req CreateSlideRequest) (*HeroSlide, error) {
	title, err := requireString("title", req.Title)
	if err != nil {
		return nil, err
	}
	subtitle, err := requireString("subtitle", req.Subtitle)
	if err != nil {
		return nil, err
	}
	img, err := s.binder.BindNew("img", req.Img)
	if err != nil {
		return nil, err
	}

	alt := strings.TrimSpace(req.Alt)
	if alt == "" {
		alt = title
	}

	now := time.Now().UTC()
	slide := &HeroSlide{
		ID:        uuid.New(),
		Img:       img,
		Alt:       alt,
		Title:     title,
		Subtitle:  subtitle,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repository.CreateSlide(ctx, slide); err != nil {
		return nil, &EntityError{Entity: "hero_slide", ID: slide.ID, Op: "create", Err: err}
	}

	s.recordCreated(ctx, "hero_slide", slide.ID)
	return slide, nil
}

func (s *service) UpdateSlide(ctx context.Context, req UpdateSlideRequest) (*HeroSlide, error) {
	existing, err := s.repository.GetSlide(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	title, err := requireStringPatch("title", req.Title)
	if err != nil {
		return nil, err
	}
	subtitle, err := requireStringPatch("subtitle", req.Subtitle)
	if err != nil {
		return nil, err
	}

	effective, stale, err := s.binder.Rebind("img", existing.Img, req.Img)
	if err != nil {
		return nil, err
	}

	patch := SlidePatch{
		Title:    title,
		Subtitle: subtitle,
	}
	// Alt tracks the title
	if title != nil {
		patch.Alt = title
	}
	if stale != "" {
		patch.Img = &effective
	}

	// The record patch lands before the stale blob is deleted; if the
	// patch fails the old blob must survive so the edit can be retried.
	if err := s.repository.UpdateSlide(ctx, req.ID, patch); err != nil {
		return nil, &EntityError{Entity: "hero_slide", ID: req.ID, Op: "update", Err: err}
	}
	if stale != "" {
		s.binder.Release(ctx, stale)
	}

	s.recordUpdated(ctx, "hero_slide", req.ID)
	return s.GetSlide(ctx, req.ID)
}

func (s *service) DeleteSlide(ctx context.Context, id uuid.UUID) (*DeleteResult, error) {
	existing, err := s.repository.GetSlide(ctx, id)
	if err != nil {
		return nil, err
	}

	s.binder.Release(ctx, existing.Img)
	if err := s.repository.DeleteSlide(ctx, id); err != nil {
		return nil, &EntityError{Entity: "hero_slide", ID: id, Op: "delete", Err: err}
	}

	s.recordDeleted(ctx, "hero_slide", id)
	return &DeleteResult{ID: id, ReleasedHandle: existing.Img}, nil
}

func (s *service) GetSlide(ctx context.Context, id uuid.UUID) (*HeroSlide, error) {
	slide, err := s.repository.GetSlide(ctx, id)
	if err != nil {
		return nil, err
	}
	slide.ImgURL = s.resolveURL(ctx, slide.Img)
	return slide, nil
}

func (s *service) ListSlides(ctx context.Context) ([]*HeroSlide, error) {
	slides, err := s.repository.ListSlides(ctx)
	if err != nil {
		return nil, &StoreError{Store: "record", Op: "list hero slides", Err: err}
	}
	for _, slide := range slides {
		slide.ImgURL = s.resolveURL(ctx, slide.Img)
	}
	return slides, nil
}

// Achievement operations

func (s *service) CreateAchievement(ctx context.Context, req CreateAchievementRequest) (*Achievement, error) {
	title, err := requireString("title", req.Title)
	if err != nil {
		return nil, err
	}
	description, err := requireString("description", req.Description)
	if err != nil {
		return nil, err
	}
	photo, err := s.binder.BindNew("photo", req.Photo)
	if err != nil {
		return nil, err
	}

	slug := Slugify(req.Slug)
	if slug == "" {
		slug = Slugify(title)
	}
	if slug == "" {
		return nil, &ValidationError{Field: "slug", Reason: "title yields no usable slug characters"}
	}
	if err := ensureUniqueSlug(ctx, s.repository, slug, uuid.Nil); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	achievement := &Achievement{
		ID:          uuid.New(),
		Title:       title,
		Description: description,
		Slug:        slug,
		Story:       strings.TrimSpace(req.Story),
		Photo:       photo,
		PublishedAt: req.PublishedAt,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repository.CreateAchievement(ctx, achievement); err != nil {
		return nil, &EntityError{Entity: "achievement", ID: achievement.ID, Op: "create", Err: err}
	}

	s.recordCreated(ctx, "achievement", achievement.ID)
	return achievement, nil
}

func (s *service) UpdateAchievement(ctx context.Context, req UpdateAchievementRequest) (*Achievement, error) {
	existing, err := s.repository.GetAchievement(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	title, err := requireStringPatch("title", req.Title)
	if err != nil {
		return nil, err
	}
	description, err := requireStringPatch("description", req.Description)
	if err != nil {
		return nil, err
	}

	// The slug follows the title unless the caller pins it explicitly.
	var slug *string
	switch {
	case req.Slug != nil:
		v := Slugify(*req.Slug)
		if v == "" {
			return nil, &ValidationError{Field: "slug", Reason: "no usable slug characters"}
		}
		slug = &v
	case title != nil:
		v := Slugify(*title)
		if v == "" {
			return nil, &ValidationError{Field: "slug", Reason: "title yields no usable slug characters"}
		}
		slug = &v
	}
	if slug != nil && *slug != existing.Slug {
		if err := ensureUniqueSlug(ctx, s.repository, *slug, existing.ID); err != nil {
			return nil, err
		}
	}

	effective, stale, err := s.binder.Rebind("photo", existing.Photo, req.Photo)
	if err != nil {
		return nil, err
	}

	patch := AchievementPatch{
		Title:       title,
		Description: description,
		Slug:        slug,
		Story:       trimPatch(req.Story),
		PublishedAt: req.PublishedAt,
	}
	if stale != "" {
		patch.Photo = &effective
	}

	if err := s.repository.UpdateAchievement(ctx, req.ID, patch); err != nil {
		return nil, &EntityError{Entity: "achievement", ID: req.ID, Op: "update", Err: err}
	}
	if stale != "" {
		s.binder.Release(ctx, stale)
	}

	s.recordUpdated(ctx, "achievement", req.ID)
	return s.GetAchievement(ctx, req.ID)
}

func (s *service) DeleteAchievement(ctx context.Context, id uuid.UUID) (*DeleteResult, error) {
	existing, err := s.repository.GetAchievement(ctx, id)
	if err != nil {
		return nil, err
	}

	s.binder.Release(ctx, existing.Photo)
	if err := s.repository.DeleteAchievement(ctx, id); err != nil {
		return nil, &EntityError{Entity: "achievement", ID: id, Op: "delete", Err: err}
	}

	s.recordDeleted(ctx, "achievement", id)
	return &DeleteResult{ID: id, ReleasedHandle: existing.Photo}, nil
}

func (s *service) GetAchievement(ctx context.Context, id uuid.UUID) (*Achievement, error) {
	achievement, err := s.repository.GetAchievement(ctx, id)
	if err != nil {
		return nil, err
	}
	achievement.PhotoURL = s.resolveURL(ctx, achievement.Photo)
	return achievement, nil
}

func (s *service) GetAchievementBySlug(ctx context.Context, slug string) (*Achievement, error) {
	achievement, err := s.repository.GetAchievementBySlug(ctx, Slugify(slug))
	if err != nil {
		return nil, err
	}
	achievement.PhotoURL = s.resolveURL(ctx, achievement.Photo)
	return achievement, nil
}

func (s *service) ListAchievements(ctx context.Context) ([]*Achievement, error) {
	return s.listAchievements(ctx, 0)
}

func (s *service) ListLatestAchievements(ctx context.Context) ([]*Achievement, error) {
	return s.listAchievements(ctx, latestAchievementsLimit)
}

func (s *service) listAchievements(ctx context.Context, limit int) ([]*Achievement, error) {
	achievements, err := s.repository.ListAchievements(ctx, limit)
	if err != nil {
		return nil, &StoreError{Store: "record", Op: "list achievements", Err: err}
	}
	for _, a := range achievements {
		// List views omit the long-form story
		a.Story = ""
		a.PhotoURL = s.resolveURL(ctx, a.Photo)
	}
	return achievements, nil
}

// Collaborator operations

func (s *service) CreateCollaborator(ctx context.Context, req CreateCollaboratorRequest) (*Collaborator, error) {
	name, err := requireString("name", req.Name)
	if err != nil {
		return nil, err
	}
	office, err := requireString("office", req.Office)
	if err != nil {
		return nil, err
	}
	logo, err := s.binder.BindNew("logo", req.Logo)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	collaborator := &Collaborator{
		ID:        uuid.New(),
		Logo:      logo,
		Name:      name,
		Office:    office,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repository.CreateCollaborator(ctx, collaborator); err != nil {
		return nil, &EntityError{Entity: "collaborator", ID: collaborator.ID, Op: "create", Err: err}
	}

	s.recordCreated(ctx, "collaborator", collaborator.ID)
	return collaborator, nil
}

func (s *service) UpdateCollaborator(ctx context.Context, req UpdateCollaboratorRequest) (*Collaborator, error) {
	existing, err := s.repository.GetCollaborator(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	name, err := requireStringPatch("name", req.Name)
	if err != nil {
		return nil, err
	}
	office, err := requireStringPatch("office", req.Office)
	if err != nil {
		return nil, err
	}

	effective, stale, err := s.binder.Rebind("logo", existing.Logo, req.Logo)
	if err != nil {
		return nil, err
	}

	patch := CollaboratorPatch{Name: name, Office: office}
	if stale != "" {
		patch.Logo = &effective
	}

	if err := s.repository.UpdateCollaborator(ctx, req.ID, patch); err != nil {
		return nil, &EntityError{Entity: "collaborator", ID: req.ID, Op: "update", Err: err}
	}
	if stale != "" {
		s.binder.Release(ctx, stale)
	}

	s.recordUpdated(ctx, "collaborator", req.ID)
	return s.GetCollaborator(ctx, req.ID)
}

func (s *service) DeleteCollaborator(ctx context.Context, id uuid.UUID) (*DeleteResult, error) {
	existing, err := s.repository.GetCollaborator(ctx, id)
	if err != nil {
		return nil, err
	}

	s.binder.Release(ctx, existing.Logo)
	if err := s.repository.DeleteCollaborator(ctx, id); err != nil {
		return nil, &EntityError{Entity: "collaborator", ID: id, Op: "delete", Err: err}
	}

	s.recordDeleted(ctx, "collaborator", id)
	return &DeleteResult{ID: id, ReleasedHandle: existing.Logo}, nil
}

func (s *service) GetCollaborator(ctx context.Context, id uuid.UUID) (*Collaborator, error) {
	collaborator, err := s.repository.GetCollaborator(ctx, id)
	if err != nil {
		return nil, err
	}
	collaborator.LogoURL = s.resolveURL(ctx, collaborator.Logo)
	return collaborator, nil
}

func (s *service) ListCollaborators(ctx context.Context) ([]*Collaborator, error) {
	collaborators, err := s.repository.ListCollaborators(ctx)
	if err != nil {
		return nil, &StoreError{Store: "record", Op: "list collaborators", Err: err}
	}
	for _, c := range collaborators {
		c.LogoURL = s.resolveURL(ctx, c.Logo)
	}
	return collaborators, nil
}

// Team member operations

func (s *service) CreateTeamMember(ctx context.Context, req CreateTeamMemberRequest) (*TeamMember, error) {
	name, err := requireString("name", req.Name)
	if err != nil {
		return nil, err
	}
	position, err := requireString("position", req.Position)
	if err != nil {
		return nil, err
	}
	image, err := s.binder.BindNew("image", req.Image)
	if err != nil {
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = TeamRoleStaff
	}
	if !role.IsValid() {
		return nil, &ValidationError{Field: "role", Reason: "must be director or staff"}
	}
	if role == TeamRoleDirector {
		if err := s.ensureNoOtherDirector(ctx, uuid.Nil); err != nil {
			return nil, err
		}
	}

	now := time.Now().UTC()
	member := &TeamMember{
		ID:        uuid.New(),
		Name:      name,
		Position:  position,
		Email:     strings.TrimSpace(req.Email),
		Profile:   strings.TrimSpace(req.Profile),
		Image:     image,
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repository.CreateTeamMember(ctx, member); err != nil {
		return nil, &EntityError{Entity: "team_member", ID: member.ID, Op: "create", Err: err}
	}

	s.recordCreated(ctx, "team_member", member.ID)
	return member, nil
}

func (s *service) UpdateTeamMember(ctx context.Context, req UpdateTeamMemberRequest) (*TeamMember, error) {
	existing, err := s.repository.GetTeamMember(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	name, err := requireStringPatch("name", req.Name)
	if err != nil {
		return nil, err
	}
	position, err := requireStringPatch("position", req.Position)
	if err != nil {
		return nil, err
	}

	if req.Role != nil {
		if !req.Role.IsValid() {
			return nil, &ValidationError{Field: "role", Reason: "must be director or staff"}
		}
		if *req.Role == TeamRoleDirector && existing.Role != TeamRoleDirector {
			if err := s.ensureNoOtherDirector(ctx, existing.ID); err != nil {
				return nil, err
			}
		}
	}

	effective, stale, err := s.binder.Rebind("image", existing.Image, req.Image)
	if err != nil {
		return nil, err
	}

	patch := TeamMemberPatch{
		Name:     name,
		Position: position,
		Email:    trimPatch(req.Email),
		Profile:  trimPatch(req.Profile),
		Role:     req.Role,
	}
	if stale != "" {
		patch.Image = &effective
	}

	if err := s.repository.UpdateTeamMember(ctx, req.ID, patch); err != nil {
		return nil, &EntityError{Entity: "team_member", ID: req.ID, Op: "update", Err: err}
	}
	if stale != "" {
		s.binder.Release(ctx, stale)
	}

	s.recordUpdated(ctx, "team_member", req.ID)
	return s.GetTeamMember(ctx, req.ID)
}

func (s *service) DeleteTeamMember(ctx context.Context, id uuid.UUID) (*DeleteResult, error) {
	existing, err := s.repository.GetTeamMember(ctx, id)
	if err != nil {
		return nil, err
	}

	s.binder.Release(ctx, existing.Image)
	if err := s.repository.DeleteTeamMember(ctx, id); err != nil {
		return nil, &EntityError{Entity: "team_member", ID: id, Op: "delete", Err: err}
	}

	s.recordDeleted(ctx, "team_member", id)
	return &DeleteResult{ID: id, ReleasedHandle: existing.Image}, nil
}

func (s *service) GetTeamMember(ctx context.Context, id uuid.UUID) (*TeamMember, error) {
	member, err := s.repository.GetTeamMember(ctx, id)
	if err != nil {
		return nil, err
	}
	member.ImageURL = s.resolveURL(ctx, member.Image)
	return member, nil
}

func (s *service) GetTeam(ctx context.Context) (*Team, error) {
	directors, err := s.repository.ListTeamMembersByRole(ctx, TeamRoleDirector)
	if err != nil {
		return nil, &StoreError{Store: "record", Op: "list directors", Err: err}
	}
	staff, err := s.repository.ListTeamMembersByRole(ctx, TeamRoleStaff)
	if err != nil {
		return nil, &StoreError{Store: "record", Op: "list staff", Err: err}
	}

	team := &Team{Staff: staff}
	if len(directors) > 0 {
		team.Director = directors[0]
		team.Director.ImageURL = s.resolveURL(ctx, team.Director.Image)
	}
	for _, m := range team.Staff {
		m.ImageURL = s.resolveURL(ctx, m.Image)
	}
	return team, nil
}

// ensureNoOtherDirector rejects a second director. The check is read-then-
// write like the slug check; the small admin population makes the race
// acceptable.
func (s *service) ensureNoOtherDirector(ctx context.Context, exclude uuid.UUID) error {
	directors, err := s.repository.ListTeamMembersByRole(ctx, TeamRoleDirector)
	if err != nil {
		return &StoreError{Store: "record", Op: "list directors", Err: err}
	}
	for _, d := range directors {
		if d.ID != exclude {
			return ErrDirectorExists
		}
	}
	return nil
}

// Event operations

func (s *service) CreateEvent(ctx context.Context, req CreateEventRequest) (*Event, error) {
	title, err := requireString("title", req.Title)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	event := &Event{
		ID:        uuid.New(),
		Title:     title,
		Date:      strings.TrimSpace(req.Date),
		Location:  strings.TrimSpace(req.Location),
		Note:      strings.TrimSpace(req.Note),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repository.CreateEvent(ctx, event); err != nil {
		return nil, &EntityError{Entity: "event", ID: event.ID, Op: "create", Err: err}
	}

	s.recordCreated(ctx, "event", event.ID)
	return event, nil
}

func (s *service) UpdateEvent(ctx context.Context, req UpdateEventRequest) (*Event, error) {
	if _, err := s.repository.GetEvent(ctx, req.ID); err != nil {
		return nil, err
	}

	title, err := requireStringPatch("title", req.Title)
	if err != nil {
		return nil, err
	}

	patch := EventPatch{
		Title:    title,
		Date:     trimPatch(req.Date),
		Location: trimPatch(req.Location),
		Note:     trimPatch(req.Note),
	}
	if err := s.repository.UpdateEvent(ctx, req.ID, patch); err != nil {
		return nil, &EntityError{Entity: "event", ID: req.ID, Op: "update", Err: err}
	}

	s.recordUpdated(ctx, "event", req.ID)
	return s.repository.GetEvent(ctx, req.ID)
}

func (s *service) DeleteEvent(ctx context.Context, id uuid.UUID) (*DeleteResult, error) {
	if _, err := s.repository.GetEvent(ctx, id); err != nil {
		return nil, err
	}
	if err := s.repository.DeleteEvent(ctx, id); err != nil {
		return nil, &EntityError{Entity: "event", ID: id, Op: "delete", Err: err}
	}

	s.recordDeleted(ctx, "event", id)
	return &DeleteResult{ID: id}, nil
}

func (s *service) GetEvent(ctx context.Context, id uuid.UUID) (*Event, error) {
	return s.repository.GetEvent(ctx, id)
}

func (s *service) ListEvents(ctx context.Context) ([]*Event, error) {
	events, err := s.repository.ListEvents(ctx)
	if err != nil {
		return nil, &StoreError{Store: "record", Op: "list events", Err: err}
	}
	return events, nil
}

// Statement operations

func (s *service) CreateStatement(ctx context.Context, req CreateStatementRequest) (*Statement, error) {
	if !req.Type.IsValid() {
		return nil, &ValidationError{Field: "type", Reason: "must be mission, vision or core-values"}
	}
	title, err := requireString("title", req.Title)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	statement := &Statement{
		ID:        uuid.New(),
		Type:      req.Type,
		Title:     title,
		Content:   strings.TrimSpace(req.Content),
		Values:    req.Values,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repository.CreateStatement(ctx, statement); err != nil {
		return nil, &EntityError{Entity: "statement", ID: statement.ID, Op: "create", Err: err}
	}

	s.recordCreated(ctx, "statement", statement.ID)
	return statement, nil
}

func (s *service) UpdateStatement(ctx context.Context, req UpdateStatementRequest) (*Statement, error) {
	if _, err := s.repository.GetStatement(ctx, req.ID); err != nil {
		return nil, err
	}

	title, err := requireStringPatch("title", req.Title)
	if err != nil {
		return nil, err
	}

	patch := StatementPatch{
		Title:   title,
		Content: trimPatch(req.Content),
		Values:  req.Values,
	}
	if err := s.repository.UpdateStatement(ctx, req.ID, patch); err != nil {
		return nil, &EntityError{Entity: "statement", ID: req.ID, Op: "update", Err: err}
	}

	s.recordUpdated(ctx, "statement", req.ID)
	return s.repository.GetStatement(ctx, req.ID)
}

func (s *service) DeleteStatement(ctx context.Context, id uuid.UUID) (*DeleteResult, error) {
	if _, err := s.repository.GetStatement(ctx, id); err != nil {
		return nil, err
	}
	if err := s.repository.DeleteStatement(ctx, id); err != nil {
		return nil, &EntityError{Entity: "statement", ID: id, Op: "delete", Err: err}
	}

	s.recordDeleted(ctx, "statement", id)
	return &DeleteResult{ID: id}, nil
}

func (s *service) GetStatement(ctx context.Context, id uuid.UUID) (*Statement, error) {
	return s.repository.GetStatement(ctx, id)
}

func (s *service) ListStatements(ctx context.Context) ([]*Statement, error) {
	statements, err := s.repository.ListStatements(ctx)
	if err != nil {
		return nil, &StoreError{Store: "record", Op: "list statements", Err: err}
	}
	return statements, nil
}

// Testimonial operations

func (s *service) CreateTestimonial(ctx context.Context, req CreateTestimonialRequest) (*Testimonial, error) {
	name, err := requireString("name", req.Name)
	if err != nil {
		return nil, err
	}
	role, err := requireString("role", req.Role)
	if err != nil {
		return nil, err
	}
	body, err := requireString("body", req.Body)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	testimonial := &Testimonial{
		ID:        uuid.New(),
		Name:      name,
		Role:      role,
		Body:      body,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repository.CreateTestimonial(ctx, testimonial); err != nil {
		return nil, &EntityError{Entity: "testimonial", ID: testimonial.ID, Op: "create", Err: err}
	}

	s.recordCreated(ctx, "testimonial", testimonial.ID)
	return testimonial, nil
}

func (s *service) UpdateTestimonial(ctx context.Context, req UpdateTestimonialRequest) (*Testimonial, error) {
	if _, err := s.repository.GetTestimonial(ctx, req.ID); err != nil {
		return nil, err
	}

	name, err := requireStringPatch("name", req.Name)
	if err != nil {
		return nil, err
	}
	role, err := requireStringPatch("role", req.Role)
	if err != nil {
		return nil, err
	}
	body, err := requireStringPatch("body", req.Body)
	if err != nil {
		return nil, err
	}

	patch := TestimonialPatch{Name: name, Role: role, Body: body}
	if err := s.repository.UpdateTestimonial(ctx, req.ID, patch); err != nil {
		return nil, &EntityError{Entity: "testimonial", ID: req.ID, Op: "update", Err: err}
	}

	s.recordUpdated(ctx, "testimonial", req.ID)
	return s.repository.GetTestimonial(ctx, req.ID)
}

func (s *service) DeleteTestimonial(ctx context.Context, id uuid.UUID) (*DeleteResult, error) {
	if _, err := s.repository.GetTestimonial(ctx, id); err != nil {
		return nil, err
	}
	if err := s.repository.DeleteTestimonial(ctx, id); err != nil {
		return nil, &EntityError{Entity: "testimonial", ID: id, Op: "delete", Err: err}
	}

	s.recordDeleted(ctx, "testimonial", id)
	return &DeleteResult{ID: id}, nil
}

func (s *service) GetTestimonial(ctx context.Context, id uuid.UUID) (*Testimonial, error) {
	return s.repository.GetTestimonial(ctx, id)
}

func (s *service) ListTestimonials(ctx context.Context) ([]*Testimonial, error) {
	testimonials, err := s.repository.ListTestimonials(ctx)
	if err != nil {
		return nil, &StoreError{Store: "record", Op: "list testimonials", Err: err}
	}
	return testimonials, nil
}

// Achievement stats operations

func (s *service) GetStats(ctx context.Context) (*AchievementStats, error) {
	return s.repository.GetStats(ctx)
}

func (s *service) UpdateStats(ctx context.Context, req UpdateStatsRequest) (*AchievementStats, error) {
	if req.NationalChampions == nil && req.InternationalRecognition == nil &&
		req.StudentWinners == nil && req.UniversityAwards == nil {
		return nil, &ValidationError{Field: "stats", Reason: "no fields provided to update"}
	}

	id := req.ID
	if id == uuid.Nil {
		current, err := s.repository.GetStats(ctx)
		if err != nil {
			return nil, err
		}
		id = current.ID
	}

	patch := StatsPatch{
		NationalChampions:        req.NationalChampions,
		InternationalRecognition: req.InternationalRecognition,
		StudentWinners:           req.StudentWinners,
		UniversityAwards:         req.UniversityAwards,
	}
	if err := s.repository.UpdateStats(ctx, id, patch); err != nil {
		return nil, &EntityError{Entity: "achievement_stats", ID: id, Op: "update", Err: err}
	}

	s.recordUpdated(ctx, "achievement_stats", id)
	return s.repository.GetStats(ctx)
}
