package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chemosit/sitecms/pkg/sitecms"
)

func setupRepo(t *testing.T) (sitecms.Repository, *TestDB) {
	t.Helper()

	db := NewTestDB(t)
	db.Setup(t)
	t.Cleanup(func() { db.Teardown(t) })

	return NewWithPool(db.Pool), db
}

func TestSlideRoundTrip(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	slide := &sitecms.HeroSlide{
		ID:        uuid.New(),
		Img:       "uploads/aa/h1.jpg",
		Alt:       "Welcome",
		Title:     "Welcome",
		Subtitle:  "sub",
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, repo.CreateSlide(ctx, slide))

	got, err := repo.GetSlide(ctx, slide.ID)
	require.NoError(t, err)
	assert.Equal(t, slide.Title, got.Title)
	assert.Equal(t, slide.Img, got.Img)

	title := "Renamed"
	require.NoError(t, repo.UpdateSlide(ctx, slide.ID, sitecms.SlidePatch{Title: &title}))

	updated, err := repo.GetSlide(ctx, slide.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Title)
	assert.Equal(t, "sub", updated.Subtitle)

	require.NoError(t, repo.DeleteSlide(ctx, slide.ID))
	_, err = repo.GetSlide(ctx, slide.ID)
	assert.ErrorIs(t, err, sitecms.ErrSlideNotFound)
	assert.ErrorIs(t, repo.DeleteSlide(ctx, slide.ID), sitecms.ErrSlideNotFound)
}

func TestAchievementSlugUniqueIndex(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()

	now := time.Now().UTC()
	first := &sitecms.Achievement{
		ID: uuid.New(), Title: "First", Description: "d", Slug: "first",
		Photo: "uploads/aa/p.jpg", CreatedAt: now, UpdatedAt: now,
	}
	require.NoError(t, repo.CreateAchievement(ctx, first))

	dup := &sitecms.Achievement{
		ID: uuid.New(), Title: "Other", Description: "d", Slug: "first",
		Photo: "uploads/aa/p.jpg", CreatedAt: now, UpdatedAt: now,
	}
	err := repo.CreateAchievement(ctx, dup)
	assert.ErrorIs(t, err, sitecms.ErrSlugConflict, "unique index must surface as a slug conflict")

	got, err := repo.GetAchievementBySlug(ctx, "first")
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)
}

func TestAchievementPublishedAtCleared(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()

	now := time.Now().UTC()
	published := now.Truncate(time.Microsecond)
	a := &sitecms.Achievement{
		ID: uuid.New(), Title: "Published", Description: "d", Slug: "published",
		Photo: "uploads/aa/p.jpg", PublishedAt: &published,
		CreatedAt: now, UpdatedAt: now,
	}
	require.NoError(t, repo.CreateAchievement(ctx, a))

	var zero time.Time
	require.NoError(t, repo.UpdateAchievement(ctx, a.ID, sitecms.AchievementPatch{PublishedAt: &zero}))

	got, err := repo.GetAchievement(ctx, a.ID)
	require.NoError(t, err)
	assert.Nil(t, got.PublishedAt, "zero time patch must null the column")
}

func TestEmptyPatchChecksExistence(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()

	err := repo.UpdateEvent(ctx, uuid.New(), sitecms.EventPatch{})
	assert.ErrorIs(t, err, sitecms.ErrEventNotFound)
}

func TestStatementValuesArray(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()

	now := time.Now().UTC()
	st := &sitecms.Statement{
		ID:        uuid.New(),
		Type:      sitecms.StatementCoreValues,
		Title:     "Core Values",
		Values:    []string{"curiosity", "teamwork"},
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, repo.CreateStatement(ctx, st))

	got, err := repo.GetStatement(ctx, st.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"curiosity", "teamwork"}, got.Values)
}
