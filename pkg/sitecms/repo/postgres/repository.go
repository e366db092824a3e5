package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/chemosit/sitecms/pkg/sitecms"
)

// DBTX is an interface that allows us to use either a database connection or a transaction
type DBTX interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

// Repository implements sitecms.Repository using PostgreSQL
type Repository struct {
	db DBTX
}

// New creates a new PostgreSQL repository
func New(db DBTX) sitecms.Repository {
	return &Repository{db: db}
}

// NewWithPool creates a new PostgreSQL repository with connection pool
func NewWithPool(pool *pgxpool.Pool) sitecms.Repository {
	return &Repository{db: pool}
}

// handlePostgresError maps database errors onto domain errors
func handlePostgresError(operation string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			if strings.Contains(pgErr.ConstraintName, "slug") {
				return sitecms.ErrSlugConflict
			}
			return fmt.Errorf("%w: duplicate entry", sitecms.ErrConflict)
		case "23502": // not_null_violation
			return fmt.Errorf("required field %s is missing", pgErr.ColumnName)
		case "42P01": // undefined_table
			return fmt.Errorf("table does not exist - database migration required")
		default:
			return fmt.Errorf("database error in %s: %s (code: %s)", operation, pgErr.Message, pgErr.Code)
		}
	}
	return fmt.Errorf("database error in %s: %w", operation, err)
}

// patchBuilder assembles a partial UPDATE from pointer fields. $1 is always
// the record id.
type patchBuilder struct {
	sets []string
	args []interface{}
}

func newPatch(id uuid.UUID) *patchBuilder {
	return &patchBuilder{args: []interface{}{id}}
}

func (p *patchBuilder) set(column string, value interface{}) {
	p.args = append(p.args, value)
	p.sets = append(p.sets, fmt.Sprintf("%s = $%d", column, len(p.args)))
}

func (p *patchBuilder) setString(column string, value *string) {
	if value != nil {
		p.set(column, *value)
	}
}

func (p *patchBuilder) empty() bool {
	return len(p.sets) == 0
}

// apply executes the patch; notFound is returned when the id matched no row
func (p *patchBuilder) apply(ctx context.Context, db DBTX, table string, notFound error) error {
	if p.empty() {
		// Nothing to change, but the row must still exist
		var exists bool
		err := db.QueryRow(ctx, fmt.Sprintf("SELECT EXISTS (SELECT 1 FROM %s WHERE id = $1)", table), p.args[0]).Scan(&exists)
		if err != nil {
			return handlePostgresError("check "+table, err)
		}
		if !exists {
			return notFound
		}
		return nil
	}

	p.set("updated_at", time.Now().UTC())
	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = $1", table, strings.Join(p.sets, ", "))

	tag, err := db.Exec(ctx, query, p.args...)
	if err != nil {
		return handlePostgresError("update "+table, err)
	}
	if tag.RowsAffected() == 0 {
		return notFound
	}
	return nil
}

func deleteByID(ctx context.Context, db DBTX, table string, id uuid.UUID, notFound error) error {
	tag, err := db.Exec(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = $1", table), id)
	if err != nil {
		return handlePostgresError("delete "+table, err)
	}
	if tag.RowsAffected() == 0 {
		return notFound
	}
	return nil
}

// Hero slide operations

func (r *Repository) CreateSlide(ctx context.Context, slide *sitecms.HeroSlide) error {
	query := `
		INSERT INTO hero_slide (id, img, alt, title, subtitle, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.Exec(ctx, query,
		slide.ID, slide.Img, slide.Alt, slide.Title, slide.Subtitle,
		slide.CreatedAt, slide.UpdatedAt)
	if err != nil {
		return handlePostgresError("create hero slide", err)
	}
	return nil
}

func (r *Repository) GetSlide(ctx context.Context, id uuid.UUID) (*sitecms.HeroSlide, error) {
	query := `
		SELECT id, img, alt, title, subtitle, created_at, updated_at
		FROM hero_slide WHERE id = $1`

	var slide sitecms.HeroSlide
	err := r.db.QueryRow(ctx, query, id).Scan(
		&slide.ID, &slide.Img, &slide.Alt, &slide.Title, &slide.Subtitle,
		&slide.CreatedAt, &slide.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, sitecms.ErrSlideNotFound
		}
		return nil, handlePostgresError("get hero slide", err)
	}
	return &slide, nil
}

func (r *Repository) UpdateSlide(ctx context.Context, id uuid.UUID, patch sitecms.SlidePatch) error {
	p := newPatch(id)
	p.setString("title", patch.Title)
	p.setString("subtitle", patch.Subtitle)
	p.setString("alt", patch.Alt)
	p.setString("img", patch.Img)
	return p.apply(ctx, r.db, "hero_slide", sitecms.ErrSlideNotFound)
}

func (r *Repository) DeleteSlide(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, r.db, "hero_slide", id, sitecms.ErrSlideNotFound)
}

func (r *Repository) ListSlides(ctx context.Context) ([]*sitecms.HeroSlide, error) {
	query := `
		SELECT id, img, alt, title, subtitle, created_at, updated_at
		FROM hero_slide ORDER BY created_at ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, handlePostgresError("list hero slides", err)
	}
	defer rows.Close()

	var result []*sitecms.HeroSlide
	for rows.Next() {
		var slide sitecms.HeroSlide
		if err := rows.Scan(&slide.ID, &slide.Img, &slide.Alt, &slide.Title,
			&slide.Subtitle, &slide.CreatedAt, &slide.UpdatedAt); err != nil {
			return nil, handlePostgresError("scan hero slide", err)
		}
		result = append(result, &slide)
	}
	return result, rows.Err()
}

// Achievement operations

func (r *Repository) CreateAchievement(ctx context.Context, a *sitecms.Achievement) error {
	query := `
		INSERT INTO achievement (id, title, description, slug, story, photo,
			published_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.Exec(ctx, query,
		a.ID, a.Title, a.Description, a.Slug, a.Story, a.Photo,
		a.PublishedAt, a.CreatedAt, a.UpdatedAt)
	if err != nil {
		return handlePostgresError("create achievement", err)
	}
	return nil
}

func (r *Repository) GetAchievement(ctx context.Context, id uuid.UUID) (*sitecms.Achievement, error) {
	query := `
		SELECT id, title, description, slug, story, photo, published_at,
			created_at, updated_at
		FROM achievement WHERE id = $1`

	return r.scanAchievement(r.db.QueryRow(ctx, query, id))
}

func (r *Repository) GetAchievementBySlug(ctx context.Context, slug string) (*sitecms.Achievement, error) {
	query := `
		SELECT id, title, description, slug, story, photo, published_at,
			created_at, updated_at
		FROM achievement WHERE slug = $1`

	return r.scanAchievement(r.db.QueryRow(ctx, query, slug))
}

func (r *Repository) scanAchievement(row pgx.Row) (*sitecms.Achievement, error) {
	var a sitecms.Achievement
	err := row.Scan(&a.ID, &a.Title, &a.Description, &a.Slug, &a.Story,
		&a.Photo, &a.PublishedAt, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, sitecms.ErrAchievementNotFound
		}
		return nil, handlePostgresError("get achievement", err)
	}
	return &a, nil
}

func (r *Repository) UpdateAchievement(ctx context.Context, id uuid.UUID, patch sitecms.AchievementPatch) error {
	p := newPatch(id)
	p.setString("title", patch.Title)
	p.setString("description", patch.Description)
	p.setString("slug", patch.Slug)
	p.setString("story", patch.Story)
	p.setString("photo", patch.Photo)
	if patch.PublishedAt != nil {
		if patch.PublishedAt.IsZero() {
			p.set("published_at", nil)
		} else {
			p.set("published_at", *patch.PublishedAt)
		}
	}
	return p.apply(ctx, r.db, "achievement", sitecms.ErrAchievementNotFound)
}

func (r *Repository) DeleteAchievement(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, r.db, "achievement", id, sitecms.ErrAchievementNotFound)
}

func (r *Repository) ListAchievements(ctx context.Context, limit int) ([]*sitecms.Achievement, error) {
	query := `
		SELECT id, title, description, slug, story, photo, published_at,
			created_at, updated_at
		FROM achievement ORDER BY created_at DESC`
	args := []interface{}{}
	if limit > 0 {
		query += " LIMIT $1"
		args = append(args, limit)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, handlePostgresError("list achievements", err)
	}
	defer rows.Close()

	var result []*sitecms.Achievement
	for rows.Next() {
		var a sitecms.Achievement
		if err := rows.Scan(&a.ID, &a.Title, &a.Description, &a.Slug, &a.Story,
			&a.Photo, &a.PublishedAt, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, handlePostgresError("scan achievement", err)
		}
		result = append(result, &a)
	}
	return result, rows.Err()
}

// Collaborator operations

func (r *Repository) CreateCollaborator(ctx context.Context, c *sitecms.Collaborator) error {
	query := `
		INSERT INTO collaborator (id, logo, name, office, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.Exec(ctx, query,
		c.ID, c.Logo, c.Name, c.Office, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		return handlePostgresError("create collaborator", err)
	}
	return nil
}

func (r *Repository) GetCollaborator(ctx context.Context, id uuid.UUID) (*sitecms.Collaborator, error) {
	query := `
		SELECT id, logo, name, office, created_at, updated_at
		FROM collaborator WHERE id = $1`

	var c sitecms.Collaborator
	err := r.db.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.Logo, &c.Name, &c.Office, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, sitecms.ErrCollaboratorNotFound
		}
		return nil, handlePostgresError("get collaborator", err)
	}
	return &c, nil
}

func (r *Repository) UpdateCollaborator(ctx context.Context, id uuid.UUID, patch sitecms.CollaboratorPatch) error {
	p := newPatch(id)
	p.setString("name", patch.Name)
	p.setString("office", patch.Office)
	p.setString("logo", patch.Logo)
	return p.apply(ctx, r.db, "collaborator", sitecms.ErrCollaboratorNotFound)
}

func (r *Repository) DeleteCollaborator(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, r.db, "collaborator", id, sitecms.ErrCollaboratorNotFound)
}

func (r *Repository) ListCollaborators(ctx context.Context) ([]*sitecms.Collaborator, error) {
	query := `
		SELECT id, logo, name, office, created_at, updated_at
		FROM collaborator ORDER BY created_at ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, handlePostgresError("list collaborators", err)
	}
	defer rows.Close()

	var result []*sitecms.Collaborator
	for rows.Next() {
		var c sitecms.Collaborator
		if err := rows.Scan(&c.ID, &c.Logo, &c.Name, &c.Office,
			&c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, handlePostgresError("scan collaborator", err)
		}
		result = append(result, &c)
	}
	return result, rows.Err()
}

// Team member operations

func (r *Repository) CreateTeamMember(ctx context.Context, m *sitecms.TeamMember) error {
	query := `
		INSERT INTO team_member (id, name, position, email, profile, image,
			role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.Exec(ctx, query,
		m.ID, m.Name, m.Position, m.Email, m.Profile, m.Image,
		string(m.Role), m.CreatedAt, m.UpdatedAt)
	if err != nil {
		return handlePostgresError("create team member", err)
	}
	return nil
}

func (r *Repository) GetTeamMember(ctx context.Context, id uuid.UUID) (*sitecms.TeamMember, error) {
	query := `
		SELECT id, name, position, email, profile, image, role, created_at, updated_at
		FROM team_member WHERE id = $1`

	var m sitecms.TeamMember
	var role string
	err := r.db.QueryRow(ctx, query, id).Scan(
		&m.ID, &m.Name, &m.Position, &m.Email, &m.Profile, &m.Image,
		&role, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, sitecms.ErrTeamMemberNotFound
		}
		return nil, handlePostgresError("get team member", err)
	}
	m.Role = sitecms.TeamRole(role)
	return &m, nil
}

func (r *Repository) UpdateTeamMember(ctx context.Context, id uuid.UUID, patch sitecms.TeamMemberPatch) error {
	p := newPatch(id)
	p.setString("name", patch.Name)
	p.setString("position", patch.Position)
	p.setString("email", patch.Email)
	p.setString("profile", patch.Profile)
	p.setString("image", patch.Image)
	if patch.Role != nil {
		p.set("role", string(*patch.Role))
	}
	return p.apply(ctx, r.db, "team_member", sitecms.ErrTeamMemberNotFound)
}

func (r *Repository) DeleteTeamMember(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, r.db, "team_member", id, sitecms.ErrTeamMemberNotFound)
}

func (r *Repository) ListTeamMembersByRole(ctx context.Context, role sitecms.TeamRole) ([]*sitecms.TeamMember, error) {
	query := `
		SELECT id, name, position, email, profile, image, role, created_at, updated_at
		FROM team_member WHERE role = $1 ORDER BY created_at ASC`

	rows, err := r.db.Query(ctx, query, string(role))
	if err != nil {
		return nil, handlePostgresError("list team members", err)
	}
	defer rows.Close()

	var result []*sitecms.TeamMember
	for rows.Next() {
		var m sitecms.TeamMember
		var roleStr string
		if err := rows.Scan(&m.ID, &m.Name, &m.Position, &m.Email, &m.Profile,
			&m.Image, &roleStr, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, handlePostgresError("scan team member", err)
		}
		m.Role = sitecms.TeamRole(roleStr)
		result = append(result, &m)
	}
	return result, rows.Err()
}

// Event operations

func (r *Repository) CreateEvent(ctx context.Context, e *sitecms.Event) error {
	query := `
		INSERT INTO event (id, title, date, location, note, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.Exec(ctx, query,
		e.ID, e.Title, e.Date, e.Location, e.Note, e.CreatedAt, e.UpdatedAt)
	if err != nil {
		return handlePostgresError("create event", err)
	}
	return nil
}

func (r *Repository) GetEvent(ctx context.Context, id uuid.UUID) (*sitecms.Event, error) {
	query := `
		SELECT id, title, date, location, note, created_at, updated_at
		FROM event WHERE id = $1`

	var e sitecms.Event
	err := r.db.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.Title, &e.Date, &e.Location, &e.Note, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, sitecms.ErrEventNotFound
		}
		return nil, handlePostgresError("get event", err)
	}
	return &e, nil
}

func (r *Repository) UpdateEvent(ctx context.Context, id uuid.UUID, patch sitecms.EventPatch) error {
	p := newPatch(id)
	p.setString("title", patch.Title)
	p.setString("date", patch.Date)
	p.setString("location", patch.Location)
	p.setString("note", patch.Note)
	return p.apply(ctx, r.db, "event", sitecms.ErrEventNotFound)
}

func (r *Repository) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, r.db, "event", id, sitecms.ErrEventNotFound)
}

func (r *Repository) ListEvents(ctx context.Context) ([]*sitecms.Event, error) {
	query := `
		SELECT id, title, date, location, note, created_at, updated_at
		FROM event ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, handlePostgresError("list events", err)
	}
	defer rows.Close()

	var result []*sitecms.Event
	for rows.Next() {
		var e sitecms.Event
		if err := rows.Scan(&e.ID, &e.Title, &e.Date, &e.Location, &e.Note,
			&e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, handlePostgresError("scan event", err)
		}
		result = append(result, &e)
	}
	return result, rows.Err()
}

// Statement operations

func (r *Repository) CreateStatement(ctx context.Context, st *sitecms.Statement) error {
	query := `
		INSERT INTO statement (id, type, title, content, "values", created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.Exec(ctx, query,
		st.ID, string(st.Type), st.Title, st.Content, st.Values,
		st.CreatedAt, st.UpdatedAt)
	if err != nil {
		return handlePostgresError("create statement", err)
	}
	return nil
}

func (r *Repository) GetStatement(ctx context.Context, id uuid.UUID) (*sitecms.Statement, error) {
	query := `
		SELECT id, type, title, content, "values", created_at, updated_at
		FROM statement WHERE id = $1`

	var st sitecms.Statement
	var typ string
	err := r.db.QueryRow(ctx, query, id).Scan(
		&st.ID, &typ, &st.Title, &st.Content, &st.Values,
		&st.CreatedAt, &st.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, sitecms.ErrStatementNotFound
		}
		return nil, handlePostgresError("get statement", err)
	}
	st.Type = sitecms.StatementType(typ)
	return &st, nil
}

func (r *Repository) UpdateStatement(ctx context.Context, id uuid.UUID, patch sitecms.StatementPatch) error {
	p := newPatch(id)
	p.setString("title", patch.Title)
	p.setString("content", patch.Content)
	if patch.Values != nil {
		p.set(`"values"`, *patch.Values)
	}
	return p.apply(ctx, r.db, "statement", sitecms.ErrStatementNotFound)
}

func (r *Repository) DeleteStatement(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, r.db, "statement", id, sitecms.ErrStatementNotFound)
}

func (r *Repository) ListStatements(ctx context.Context) ([]*sitecms.Statement, error) {
	query := `
		SELECT id, type, title, content, "values", created_at, updated_at
		FROM statement ORDER BY created_at ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, handlePostgresError("list statements", err)
	}
	defer rows.Close()

	var result []*sitecms.Statement
	for rows.Next() {
		var st sitecms.Statement
		var typ string
		if err := rows.Scan(&st.ID, &typ, &st.Title, &st.Content, &st.Values,
			&st.CreatedAt, &st.UpdatedAt); err != nil {
			return nil, handlePostgresError("scan statement", err)
		}
		st.Type = sitecms.StatementType(typ)
		result = append(result, &st)
	}
	return result, rows.Err()
}

// Testimonial operations

func (r *Repository) CreateTestimonial(ctx context.Context, t *sitecms.Testimonial) error {
	query := `
		INSERT INTO testimonial (id, name, role, body, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.Exec(ctx, query,
		t.ID, t.Name, t.Role, t.Body, t.CreatedAt, t.UpdatedAt)
	if err != nil {
		return handlePostgresError("create testimonial", err)
	}
	return nil
}

func (r *Repository) GetTestimonial(ctx context.Context, id uuid.UUID) (*sitecms.Testimonial, error) {
	query := `
		SELECT id, name, role, body, created_at, updated_at
		FROM testimonial WHERE id = $1`

	var t sitecms.Testimonial
	err := r.db.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.Name, &t.Role, &t.Body, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, sitecms.ErrTestimonialNotFound
		}
		return nil, handlePostgresError("get testimonial", err)
	}
	return &t, nil
}

func (r *Repository) UpdateTestimonial(ctx context.Context, id uuid.UUID, patch sitecms.TestimonialPatch) error {
	p := newPatch(id)
	p.setString("name", patch.Name)
	p.setString("role", patch.Role)
	p.setString("body", patch.Body)
	return p.apply(ctx, r.db, "testimonial", sitecms.ErrTestimonialNotFound)
}

func (r *Repository) DeleteTestimonial(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, r.db, "testimonial", id, sitecms.ErrTestimonialNotFound)
}

func (r *Repository) ListTestimonials(ctx context.Context) ([]*sitecms.Testimonial, error) {
	query := `
		SELECT id, name, role, body, created_at, updated_at
		FROM testimonial ORDER BY created_at ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, handlePostgresError("list testimonials", err)
	}
	defer rows.Close()

	var result []*sitecms.Testimonial
	for rows.Next() {
		var t sitecms.Testimonial
		if err := rows.Scan(&t.ID, &t.Name, &t.Role, &t.Body,
			&t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, handlePostgresError("scan testimonial", err)
		}
		result = append(result, &t)
	}
	return result, rows.Err()
}

// Achievement stats operations

func (r *Repository) CreateStats(ctx context.Context, s *sitecms.AchievementStats) error {
	query := `
		INSERT INTO achievement_stats (id, national_champions, international_recognition,
			student_winners, university_awards, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.Exec(ctx, query,
		s.ID, s.NationalChampions, s.InternationalRecognition,
		s.StudentWinners, s.UniversityAwards, s.CreatedAt, s.UpdatedAt)
	if err != nil {
		return handlePostgresError("create achievement stats", err)
	}
	return nil
}

func (r *Repository) GetStats(ctx context.Context) (*sitecms.AchievementStats, error) {
	query := `
		SELECT id, national_champions, international_recognition,
			student_winners, university_awards, created_at, updated_at
		FROM achievement_stats ORDER BY created_at ASC LIMIT 1`

	var s sitecms.AchievementStats
	err := r.db.QueryRow(ctx, query).Scan(
		&s.ID, &s.NationalChampions, &s.InternationalRecognition,
		&s.StudentWinners, &s.UniversityAwards, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, sitecms.ErrStatsNotFound
		}
		return nil, handlePostgresError("get achievement stats", err)
	}
	return &s, nil
}

func (r *Repository) UpdateStats(ctx context.Context, id uuid.UUID, patch sitecms.StatsPatch) error {
	p := newPatch(id)
	if patch.NationalChampions != nil {
		p.set("national_champions", *patch.NationalChampions)
	}
	if patch.InternationalRecognition != nil {
		p.set("international_recognition", *patch.InternationalRecognition)
	}
	if patch.StudentWinners != nil {
		p.set("student_winners", *patch.StudentWinners)
	}
	if patch.UniversityAwards != nil {
		p.set("university_awards", *patch.UniversityAwards)
	}
	return p.apply(ctx, r.db, "achievement_stats", sitecms.ErrStatsNotFound)
}
