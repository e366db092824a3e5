package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/chemosit/sitecms/pkg/sitecms"
)

// Repository implements sitecms.Repository using in-memory storage
type Repository struct {
	mu           sync.RWMutex
	slides       map[uuid.UUID]*sitecms.HeroSlide
	achievements map[uuid.UUID]*sitecms.Achievement
	bySlug       map[string]uuid.UUID // slug -> achievement_id
	collabs      map[uuid.UUID]*sitecms.Collaborator
	members      map[uuid.UUID]*sitecms.TeamMember
	events       map[uuid.UUID]*sitecms.Event
	statements   map[uuid.UUID]*sitecms.Statement
	testimonials map[uuid.UUID]*sitecms.Testimonial
	stats        *sitecms.AchievementStats
}

// New creates a new in-memory repository
func New() sitecms.Repository {
	return &Repository{
		slides:       make(map[uuid.UUID]*sitecms.HeroSlide),
		achievements: make(map[uuid.UUID]*sitecms.Achievement),
		bySlug:       make(map[string]uuid.UUID),
		collabs:      make(map[uuid.UUID]*sitecms.Collaborator),
		members:      make(map[uuid.UUID]*sitecms.TeamMember),
		events:       make(map[uuid.UUID]*sitecms.Event),
		statements:   make(map[uuid.UUID]*sitecms.Statement),
		testimonials: make(map[uuid.UUID]*sitecms.Testimonial),
	}
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

// Hero slide operations

func (r *Repository) CreateSlide(ctx context.Context, slide *sitecms.HeroSlide) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Store a copy to avoid external modifications
	slideCopy := *slide
	r.slides[slide.ID] = &slideCopy
	return nil
}

func (r *Repository) GetSlide(ctx context.Context, id uuid.UUID) (*sitecms.HeroSlide, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	slide, exists := r.slides[id]
	if !exists {
		return nil, sitecms.ErrSlideNotFound
	}
	slideCopy := *slide
	return &slideCopy, nil
}

func (r *Repository) UpdateSlide(ctx context.Context, id uuid.UUID, patch sitecms.SlidePatch) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	slide, exists := r.slides[id]
	if !exists {
		return sitecms.ErrSlideNotFound
	}

	setString(&slide.Title, patch.Title)
	setString(&slide.Subtitle, patch.Subtitle)
	setString(&slide.Alt, patch.Alt)
	setString(&slide.Img, patch.Img)
	slide.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *Repository) DeleteSlide(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.slides[id]; !exists {
		return sitecms.ErrSlideNotFound
	}
	delete(r.slides, id)
	return nil
}

func (r *Repository) ListSlides(ctx context.Context) ([]*sitecms.HeroSlide, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*sitecms.HeroSlide, 0, len(r.slides))
	for _, slide := range r.slides {
		slideCopy := *slide
		result = append(result, &slideCopy)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result, nil
}

// Achievement operations

func (r *Repository) CreateAchievement(ctx context.Context, a *sitecms.Achievement) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.bySlug[a.Slug]; taken {
		return sitecms.ErrSlugConflict
	}

	aCopy := *a
	r.achievements[a.ID] = &aCopy
	r.bySlug[a.Slug] = a.ID
	return nil
}

func (r *Repository) GetAchievement(ctx context.Context, id uuid.UUID) (*sitecms.Achievement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, exists := r.achievements[id]
	if !exists {
		return nil, sitecms.ErrAchievementNotFound
	}
	aCopy := *a
	return &aCopy, nil
}

func (r *Repository) GetAchievementBySlug(ctx context.Context, slug string) (*sitecms.Achievement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, exists := r.bySlug[slug]
	if !exists {
		return nil, sitecms.ErrAchievementNotFound
	}
	a, exists := r.achievements[id]
	if !exists {
		return nil, sitecms.ErrAchievementNotFound
	}
	aCopy := *a
	return &aCopy, nil
}

func (r *Repository) UpdateAchievement(ctx context.Context, id uuid.UUID, patch sitecms.AchievementPatch) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, exists := r.achievements[id]
	if !exists {
		return sitecms.ErrAchievementNotFound
	}

	if patch.Slug != nil && *patch.Slug != a.Slug {
		if owner, taken := r.bySlug[*patch.Slug]; taken && owner != id {
			return sitecms.ErrSlugConflict
		}
		delete(r.bySlug, a.Slug)
		r.bySlug[*patch.Slug] = id
	}

	setString(&a.Title, patch.Title)
	setString(&a.Description, patch.Description)
	setString(&a.Slug, patch.Slug)
	setString(&a.Story, patch.Story)
	setString(&a.Photo, patch.Photo)
	if patch.PublishedAt != nil {
		if patch.PublishedAt.IsZero() {
			a.PublishedAt = nil
		} else {
			t := *patch.PublishedAt
			a.PublishedAt = &t
		}
	}
	a.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *Repository) DeleteAchievement(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, exists := r.achievements[id]
	if !exists {
		return sitecms.ErrAchievementNotFound
	}
	delete(r.bySlug, a.Slug)
	delete(r.achievements, id)
	return nil
}

func (r *Repository) ListAchievements(ctx context.Context, limit int) ([]*sitecms.Achievement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*sitecms.Achievement, 0, len(r.achievements))
	for _, a := range r.achievements {
		aCopy := *a
		result = append(result, &aCopy)
	}
	// Newest first
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	if limit > 0 && limit < len(result) {
		result = result[:limit]
	}
	return result, nil
}

// Collaborator operations

func (r *Repository) CreateCollaborator(ctx context.Context, c *sitecms.Collaborator) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cCopy := *c
	r.collabs[c.ID] = &cCopy
	return nil
}

func (r *Repository) GetCollaborator(ctx context.Context, id uuid.UUID) (*sitecms.Collaborator, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, exists := r.collabs[id]
	if !exists {
		return nil, sitecms.ErrCollaboratorNotFound
	}
	cCopy := *c
	return &cCopy, nil
}

func (r *Repository) UpdateCollaborator(ctx context.Context, id uuid.UUID, patch sitecms.CollaboratorPatch) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, exists := r.collabs[id]
	if !exists {
		return sitecms.ErrCollaboratorNotFound
	}

	setString(&c.Name, patch.Name)
	setString(&c.Office, patch.Office)
	setString(&c.Logo, patch.Logo)
	c.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *Repository) DeleteCollaborator(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.collabs[id]; !exists {
		return sitecms.ErrCollaboratorNotFound
	}
	delete(r.collabs, id)
	return nil
}

func (r *Repository) ListCollaborators(ctx context.Context) ([]*sitecms.Collaborator, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*sitecms.Collaborator, 0, len(r.collabs))
	for _, c := range r.collabs {
		cCopy := *c
		result = append(result, &cCopy)
	}
	// Oldest first, matching display order on the site
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result, nil
}

// Team member operations

func (r *Repository) CreateTeamMember(ctx context.Context, m *sitecms.TeamMember) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	mCopy := *m
	r.members[m.ID] = &mCopy
	return nil
}

func (r *Repository) GetTeamMember(ctx context.Context, id uuid.UUID) (*sitecms.TeamMember, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, exists := r.members[id]
	if !exists {
		return nil, sitecms.ErrTeamMemberNotFound
	}
	mCopy := *m
	return &mCopy, nil
}

func (r *Repository) UpdateTeamMember(ctx context.Context, id uuid.UUID, patch sitecms.TeamMemberPatch) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, exists := r.members[id]
	if !exists {
		return sitecms.ErrTeamMemberNotFound
	}

	setString(&m.Name, patch.Name)
	setString(&m.Position, patch.Position)
	setString(&m.Email, patch.Email)
	setString(&m.Profile, patch.Profile)
	setString(&m.Image, patch.Image)
	if patch.Role != nil {
		m.Role = *patch.Role
	}
	m.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *Repository) DeleteTeamMember(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.members[id]; !exists {
		return sitecms.ErrTeamMemberNotFound
	}
	delete(r.members, id)
	return nil
}

func (r *Repository) ListTeamMembersByRole(ctx context.Context, role sitecms.TeamRole) ([]*sitecms.TeamMember, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*sitecms.TeamMember, 0)
	for _, m := range r.members {
		if m.Role == role {
			mCopy := *m
			result = append(result, &mCopy)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result, nil
}

// Event operations

func (r *Repository) CreateEvent(ctx context.Context, e *sitecms.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	eCopy := *e
	r.events[e.ID] = &eCopy
	return nil
}

func (r *Repository) GetEvent(ctx context.Context, id uuid.UUID) (*sitecms.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, exists := r.events[id]
	if !exists {
		return nil, sitecms.ErrEventNotFound
	}
	eCopy := *e
	return &eCopy, nil
}

func (r *Repository) UpdateEvent(ctx context.Context, id uuid.UUID, patch sitecms.EventPatch) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, exists := r.events[id]
	if !exists {
		return sitecms.ErrEventNotFound
	}

	setString(&e.Title, patch.Title)
	setString(&e.Date, patch.Date)
	setString(&e.Location, patch.Location)
	setString(&e.Note, patch.Note)
	e.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *Repository) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.events[id]; !exists {
		return sitecms.ErrEventNotFound
	}
	delete(r.events, id)
	return nil
}

func (r *Repository) ListEvents(ctx context.Context) ([]*sitecms.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*sitecms.Event, 0, len(r.events))
	for _, e := range r.events {
		eCopy := *e
		result = append(result, &eCopy)
	}
	// Newest first
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

// Statement operations

func (r *Repository) CreateStatement(ctx context.Context, st *sitecms.Statement) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stCopy := *st
	stCopy.Values = append([]string(nil), st.Values...)
	r.statements[st.ID] = &stCopy
	return nil
}

func (r *Repository) GetStatement(ctx context.Context, id uuid.UUID) (*sitecms.Statement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	st, exists := r.statements[id]
	if !exists {
		return nil, sitecms.ErrStatementNotFound
	}
	stCopy := *st
	stCopy.Values = append([]string(nil), st.Values...)
	return &stCopy, nil
}

func (r *Repository) UpdateStatement(ctx context.Context, id uuid.UUID, patch sitecms.StatementPatch) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	st, exists := r.statements[id]
	if !exists {
		return sitecms.ErrStatementNotFound
	}

	setString(&st.Title, patch.Title)
	setString(&st.Content, patch.Content)
	if patch.Values != nil {
		st.Values = append([]string(nil), (*patch.Values)...)
	}
	st.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *Repository) DeleteStatement(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.statements[id]; !exists {
		return sitecms.ErrStatementNotFound
	}
	delete(r.statements, id)
	return nil
}

func (r *Repository) ListStatements(ctx context.Context) ([]*sitecms.Statement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*sitecms.Statement, 0, len(r.statements))
	for _, st := range r.statements {
		stCopy := *st
		stCopy.Values = append([]string(nil), st.Values...)
		result = append(result, &stCopy)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result, nil
}

// Testimonial operations

func (r *Repository) CreateTestimonial(ctx context.Context, t *sitecms.Testimonial) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tCopy := *t
	r.testimonials[t.ID] = &tCopy
	return nil
}

func (r *Repository) GetTestimonial(ctx context.Context, id uuid.UUID) (*sitecms.Testimonial, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, exists := r.testimonials[id]
	if !exists {
		return nil, sitecms.ErrTestimonialNotFound
	}
	tCopy := *t
	return &tCopy, nil
}

func (r *Repository) UpdateTestimonial(ctx context.Context, id uuid.UUID, patch sitecms.TestimonialPatch) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, exists := r.testimonials[id]
	if !exists {
		return sitecms.ErrTestimonialNotFound
	}

	setString(&t.Name, patch.Name)
	setString(&t.Role, patch.Role)
	setString(&t.Body, patch.Body)
	t.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *Repository) DeleteTestimonial(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.testimonials[id]; !exists {
		return sitecms.ErrTestimonialNotFound
	}
	delete(r.testimonials, id)
	return nil
}

func (r *Repository) ListTestimonials(ctx context.Context) ([]*sitecms.Testimonial, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*sitecms.Testimonial, 0, len(r.testimonials))
	for _, t := range r.testimonials {
		tCopy := *t
		result = append(result, &tCopy)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result, nil
}

// Achievement stats operations

func (r *Repository) CreateStats(ctx context.Context, s *sitecms.AchievementStats) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	sCopy := *s
	r.stats = &sCopy
	return nil
}

func (r *Repository) GetStats(ctx context.Context) (*sitecms.AchievementStats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.stats == nil {
		return nil, sitecms.ErrStatsNotFound
	}
	sCopy := *r.stats
	return &sCopy, nil
}

func (r *Repository) UpdateStats(ctx context.Context, id uuid.UUID, patch sitecms.StatsPatch) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.stats == nil || r.stats.ID != id {
		return sitecms.ErrStatsNotFound
	}

	if patch.NationalChampions != nil {
		r.stats.NationalChampions = *patch.NationalChampions
	}
	if patch.InternationalRecognition != nil {
		r.stats.InternationalRecognition = *patch.InternationalRecognition
	}
	if patch.StudentWinners != nil {
		r.stats.StudentWinners = *patch.StudentWinners
	}
	if patch.UniversityAwards != nil {
		r.stats.UniversityAwards = *patch.UniversityAwards
	}
	r.stats.UpdatedAt = time.Now().UTC()
	return nil
}
