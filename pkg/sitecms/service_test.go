package sitecms_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chemosit/sitecms/pkg/sitecms"
	"github.com/chemosit/sitecms/pkg/sitecms/repo/memory"
	memorystorage "github.com/chemosit/sitecms/pkg/sitecms/storage/memory"
)

func TestServiceCreation(t *testing.T) {
	tests := []struct {
		name        string
		options     []sitecms.Option
		expectError bool
	}{
		{
			name:        "no options should fail",
			options:     []sitecms.Option{},
			expectError: true,
		},
		{
			name: "repository alone should fail",
			options: []sitecms.Option{
				sitecms.WithRepository(memory.New()),
			},
			expectError: true,
		},
		{
			name: "repository and blob store should succeed",
			options: []sitecms.Option{
				sitecms.WithRepository(memory.New()),
				sitecms.WithBlobStore(memorystorage.New()),
			},
			expectError: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := sitecms.New(tt.options...)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, svc)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, svc)
			}
		})
	}
}

func setupTestService(t *testing.T) (sitecms.Service, *memorystorage.Backend, sitecms.Repository) {
	t.Helper()

	repo := memory.New()
	store := memorystorage.New()

	svc, err := sitecms.New(
		sitecms.WithRepository(repo),
		sitecms.WithBlobStore(store),
		sitecms.WithEventSink(sitecms.NewNoopEventSink()),
	)
	require.NoError(t, err)

	return svc, store, repo
}

func uploadBlob(t *testing.T, store *memorystorage.Backend, handle, content string) {
	t.Helper()
	require.NoError(t, store.Upload(context.Background(), handle, strings.NewReader(content)))
}

func blobExists(t *testing.T, store *memorystorage.Backend, handle string) bool {
	t.Helper()
	reader, err := store.Download(context.Background(), handle)
	if err != nil {
		return false
	}
	reader.Close()
	return true
}

func TestHeroSlideLifecycle(t *testing.T) {
	svc, store, _ := setupTestService(t)
	ctx := context.Background()

	uploadBlob(t, store, "uploads/aa/h1.jpg", "first image")

	t.Run("create with alt defaulting to title", func(t *testing.T) {
		slide, err := svc.CreateSlide(ctx, sitecms.CreateSlideRequest{
			Title:    "Welcome",
			Subtitle: "Our robotics club",
			Img:      "uploads/aa/h1.jpg",
		})
		require.NoError(t, err)
		assert.Equal(t, "Welcome", slide.Title)
		assert.Equal(t, "Welcome", slide.Alt)
		assert.Equal(t, "uploads/aa/h1.jpg", slide.Img)
	})

	t.Run("get resolves display url", func(t *testing.T) {
		slides, err := svc.ListSlides(ctx)
		require.NoError(t, err)
		require.Len(t, slides, 1)

		slide, err := svc.GetSlide(ctx, slides[0].ID)
		require.NoError(t, err)
		assert.Equal(t, "memory://uploads/aa/h1.jpg", slide.ImgURL)
	})

	t.Run("missing blob degrades to empty url", func(t *testing.T) {
		uploadBlob(t, store, "uploads/bb/gone.jpg", "x")
		slide, err := svc.CreateSlide(ctx, sitecms.CreateSlideRequest{
			Title:    "Orphan",
			Subtitle: "sub",
			Img:      "uploads/bb/gone.jpg",
		})
		require.NoError(t, err)
		require.NoError(t, store.Delete(ctx, "uploads/bb/gone.jpg"))

		got, err := svc.GetSlide(ctx, slide.ID)
		require.NoError(t, err)
		assert.Empty(t, got.ImgURL)
	})
}

func TestHeroSlideValidation(t *testing.T) {
	svc, _, _ := setupTestService(t)
	ctx := context.Background()

	tests := []struct {
		name string
		req  sitecms.CreateSlideRequest
	}{
		{"empty title", sitecms.CreateSlideRequest{Subtitle: "s", Img: "h"}},
		{"blank title", sitecms.CreateSlideRequest{Title: "   ", Subtitle: "s", Img: "h"}},
		{"empty subtitle", sitecms.CreateSlideRequest{Title: "t", Img: "h"}},
		{"missing image handle", sitecms.CreateSlideRequest{Title: "t", Subtitle: "s"}},
		{"handle with whitespace", sitecms.CreateSlideRequest{Title: "t", Subtitle: "s", Img: "bad handle"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateSlide(ctx, tt.req)
			assert.ErrorIs(t, err, sitecms.ErrValidation)
		})
	}
}

func TestHeroSlideUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("field-only update keeps blob", func(t *testing.T) {
		svc, store, _ := setupTestService(t)
		uploadBlob(t, store, "uploads/aa/h1.jpg", "image")

		slide, err := svc.CreateSlide(ctx, sitecms.CreateSlideRequest{
			Title: "Old", Subtitle: "sub", Img: "uploads/aa/h1.jpg",
		})
		require.NoError(t, err)

		newTitle := "New"
		updated, err := svc.UpdateSlide(ctx, sitecms.UpdateSlideRequest{ID: slide.ID, Title: &newTitle})
		require.NoError(t, err)
		assert.Equal(t, "New", updated.Title)
		assert.Equal(t, "New", updated.Alt, "alt follows the title")
		assert.Equal(t, "uploads/aa/h1.jpg", updated.Img)
		assert.Equal(t, "memory://uploads/aa/h1.jpg", updated.ImgURL, "update responses carry the display url")
		assert.True(t, blobExists(t, store, "uploads/aa/h1.jpg"))
	})

	t.Run("replacement releases old blob after patch", func(t *testing.T) {
		svc, store, _ := setupTestService(t)
		uploadBlob(t, store, "uploads/aa/h1.jpg", "first")
		uploadBlob(t, store, "uploads/aa/h2.jpg", "second")

		slide, err := svc.CreateSlide(ctx, sitecms.CreateSlideRequest{
			Title: "T", Subtitle: "S", Img: "uploads/aa/h1.jpg",
		})
		require.NoError(t, err)

		newImg := "uploads/aa/h2.jpg"
		updated, err := svc.UpdateSlide(ctx, sitecms.UpdateSlideRequest{ID: slide.ID, Img: &newImg})
		require.NoError(t, err)
		assert.Equal(t, "uploads/aa/h2.jpg", updated.Img)
		assert.False(t, blobExists(t, store, "uploads/aa/h1.jpg"), "stale blob must be released")
		assert.True(t, blobExists(t, store, "uploads/aa/h2.jpg"))
	})

	t.Run("same handle is a no-op for the blob", func(t *testing.T) {
		svc, store, _ := setupTestService(t)
		uploadBlob(t, store, "uploads/aa/h1.jpg", "image")

		slide, err := svc.CreateSlide(ctx, sitecms.CreateSlideRequest{
			Title: "T", Subtitle: "S", Img: "uploads/aa/h1.jpg",
		})
		require.NoError(t, err)

		same := "uploads/aa/h1.jpg"
		_, err = svc.UpdateSlide(ctx, sitecms.UpdateSlideRequest{ID: slide.ID, Img: &same})
		require.NoError(t, err)
		assert.True(t, blobExists(t, store, "uploads/aa/h1.jpg"))
	})

	t.Run("failed patch preserves the old blob", func(t *testing.T) {
		repo := memory.New()
		store := memorystorage.New()
		failing := &failingRepository{Repository: repo}

		svc, err := sitecms.New(
			sitecms.WithRepository(failing),
			sitecms.WithBlobStore(store),
		)
		require.NoError(t, err)

		uploadBlob(t, store, "uploads/aa/h1.jpg", "first")
		uploadBlob(t, store, "uploads/aa/h2.jpg", "second")

		slide, err := svc.CreateSlide(ctx, sitecms.CreateSlideRequest{
			Title: "T", Subtitle: "S", Img: "uploads/aa/h1.jpg",
		})
		require.NoError(t, err)

		failing.failUpdateSlide = true
		newImg := "uploads/aa/h2.jpg"
		_, err = svc.UpdateSlide(ctx, sitecms.UpdateSlideRequest{ID: slide.ID, Img: &newImg})
		require.Error(t, err)

		// Both blobs survive: the record still points at h1 and the
		// replacement can be retried.
		assert.True(t, blobExists(t, store, "uploads/aa/h1.jpg"))
		assert.True(t, blobExists(t, store, "uploads/aa/h2.jpg"))

		got, err := svc.GetSlide(ctx, slide.ID)
		require.NoError(t, err)
		assert.Equal(t, "uploads/aa/h1.jpg", got.Img)
	})

	t.Run("update unknown slide", func(t *testing.T) {
		svc, _, _ := setupTestService(t)
		title := "x"
		_, err := svc.UpdateSlide(ctx, sitecms.UpdateSlideRequest{ID: uuid.New(), Title: &title})
		assert.ErrorIs(t, err, sitecms.ErrSlideNotFound)
		assert.ErrorIs(t, err, sitecms.ErrNotFound)
	})
}

func TestHeroSlideDelete(t *testing.T) {
	svc, store, _ := setupTestService(t)
	ctx := context.Background()

	uploadBlob(t, store, "uploads/aa/h1.jpg", "image")
	slide, err := svc.CreateSlide(ctx, sitecms.CreateSlideRequest{
		Title: "T", Subtitle: "S", Img: "uploads/aa/h1.jpg",
	})
	require.NoError(t, err)

	result, err := svc.DeleteSlide(ctx, slide.ID)
	require.NoError(t, err)
	assert.Equal(t, slide.ID, result.ID)
	assert.Equal(t, "uploads/aa/h1.jpg", result.ReleasedHandle)

	assert.False(t, blobExists(t, store, "uploads/aa/h1.jpg"))

	_, err = svc.GetSlide(ctx, slide.ID)
	assert.ErrorIs(t, err, sitecms.ErrSlideNotFound)

	_, err = svc.DeleteSlide(ctx, slide.ID)
	assert.ErrorIs(t, err, sitecms.ErrNotFound, "second delete must report not found")
}

func TestAchievementSlugs(t *testing.T) {
	svc, store, _ := setupTestService(t)
	ctx := context.Background()

	uploadBlob(t, store, "uploads/aa/p1.jpg", "photo")
	uploadBlob(t, store, "uploads/aa/p2.jpg", "photo")

	t.Run("slug derived from title", func(t *testing.T) {
		a, err := svc.CreateAchievement(ctx, sitecms.CreateAchievementRequest{
			Title:       "National Champions 2024!",
			Description: "desc",
			Photo:       "uploads/aa/p1.jpg",
		})
		require.NoError(t, err)
		assert.Equal(t, "national-champions-2024", a.Slug)
	})

	t.Run("explicit slug is normalized", func(t *testing.T) {
		a, err := svc.CreateAchievement(ctx, sitecms.CreateAchievementRequest{
			Title:       "Another Win",
			Description: "desc",
			Slug:        "  Custom SLUG here ",
			Photo:       "uploads/aa/p2.jpg",
		})
		require.NoError(t, err)
		assert.Equal(t, "custom-slug-here", a.Slug)
	})

	t.Run("duplicate slug conflicts", func(t *testing.T) {
		_, err := svc.CreateAchievement(ctx, sitecms.CreateAchievementRequest{
			Title:       "National Champions 2024",
			Description: "desc",
			Photo:       "uploads/aa/p2.jpg",
		})
		assert.ErrorIs(t, err, sitecms.ErrSlugConflict)
		assert.ErrorIs(t, err, sitecms.ErrConflict)
	})

	t.Run("unusable title rejected", func(t *testing.T) {
		_, err := svc.CreateAchievement(ctx, sitecms.CreateAchievementRequest{
			Title:       "!!!",
			Description: "desc",
			Photo:       "uploads/aa/p2.jpg",
		})
		assert.ErrorIs(t, err, sitecms.ErrValidation)
	})

	t.Run("lookup by slug", func(t *testing.T) {
		a, err := svc.GetAchievementBySlug(ctx, "national-champions-2024")
		require.NoError(t, err)
		assert.Equal(t, "National Champions 2024!", a.Title)

		_, err = svc.GetAchievementBySlug(ctx, "does-not-exist")
		assert.ErrorIs(t, err, sitecms.ErrAchievementNotFound)
	})
}

func TestAchievementUpdate(t *testing.T) {
	svc, store, _ := setupTestService(t)
	ctx := context.Background()

	uploadBlob(t, store, "uploads/aa/p1.jpg", "photo")
	uploadBlob(t, store, "uploads/aa/p2.jpg", "photo")

	first, err := svc.CreateAchievement(ctx, sitecms.CreateAchievementRequest{
		Title:       "First Win",
		Description: "desc",
		Photo:       "uploads/aa/p1.jpg",
	})
	require.NoError(t, err)

	second, err := svc.CreateAchievement(ctx, sitecms.CreateAchievementRequest{
		Title:       "Second Win",
		Description: "desc",
		Photo:       "uploads/aa/p2.jpg",
	})
	require.NoError(t, err)

	t.Run("slug follows a title change", func(t *testing.T) {
		title := "Renamed Win"
		a, err := svc.UpdateAchievement(ctx, sitecms.UpdateAchievementRequest{ID: first.ID, Title: &title})
		require.NoError(t, err)
		assert.Equal(t, "renamed-win", a.Slug)
	})

	t.Run("own slug does not conflict with itself", func(t *testing.T) {
		title := "Renamed Win"
		a, err := svc.UpdateAchievement(ctx, sitecms.UpdateAchievementRequest{ID: first.ID, Title: &title})
		require.NoError(t, err)
		assert.Equal(t, "renamed-win", a.Slug)
	})

	t.Run("taking another record's slug conflicts", func(t *testing.T) {
		slug := "renamed-win"
		_, err := svc.UpdateAchievement(ctx, sitecms.UpdateAchievementRequest{ID: second.ID, Slug: &slug})
		assert.ErrorIs(t, err, sitecms.ErrSlugConflict)
	})

	t.Run("update resolves the photo url", func(t *testing.T) {
		desc := "updated"
		a, err := svc.UpdateAchievement(ctx, sitecms.UpdateAchievementRequest{ID: first.ID, Description: &desc})
		require.NoError(t, err)
		assert.Equal(t, "memory://uploads/aa/p1.jpg", a.PhotoURL)
	})
}

func TestAchievementPublishedAt(t *testing.T) {
	svc, store, _ := setupTestService(t)
	ctx := context.Background()

	uploadBlob(t, store, "uploads/aa/p1.jpg", "photo")
	published := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	a, err := svc.CreateAchievement(ctx, sitecms.CreateAchievementRequest{
		Title:       "Published Win",
		Description: "desc",
		Photo:       "uploads/aa/p1.jpg",
		PublishedAt: &published,
	})
	require.NoError(t, err)
	require.NotNil(t, a.PublishedAt)
	assert.True(t, a.PublishedAt.Equal(published))

	t.Run("nil leaves the date untouched", func(t *testing.T) {
		desc := "edited"
		got, err := svc.UpdateAchievement(ctx, sitecms.UpdateAchievementRequest{ID: a.ID, Description: &desc})
		require.NoError(t, err)
		require.NotNil(t, got.PublishedAt)
		assert.True(t, got.PublishedAt.Equal(published))
	})

	t.Run("zero time clears the date", func(t *testing.T) {
		var zero time.Time
		got, err := svc.UpdateAchievement(ctx, sitecms.UpdateAchievementRequest{ID: a.ID, PublishedAt: &zero})
		require.NoError(t, err)
		assert.Nil(t, got.PublishedAt)
	})

	t.Run("cleared date can be set again", func(t *testing.T) {
		later := published.AddDate(0, 1, 0)
		got, err := svc.UpdateAchievement(ctx, sitecms.UpdateAchievementRequest{ID: a.ID, PublishedAt: &later})
		require.NoError(t, err)
		require.NotNil(t, got.PublishedAt)
		assert.True(t, got.PublishedAt.Equal(later))
	})
}

func TestAchievementLists(t *testing.T) {
	svc, store, _ := setupTestService(t)
	ctx := context.Background()

	titles := []string{"Win One", "Win Two", "Win Three", "Win Four"}
	for i, title := range titles {
		handle := fmt.Sprintf("uploads/aa/p%d.jpg", i)
		uploadBlob(t, store, handle, "photo")
		_, err := svc.CreateAchievement(ctx, sitecms.CreateAchievementRequest{
			Title:       title,
			Description: "desc",
			Story:       "the long story",
			Photo:       handle,
		})
		require.NoError(t, err)
		time.Sleep(time.Millisecond)
	}

	t.Run("list omits story and resolves urls", func(t *testing.T) {
		all, err := svc.ListAchievements(ctx)
		require.NoError(t, err)
		require.Len(t, all, 4)
		for _, a := range all {
			assert.Empty(t, a.Story)
			assert.NotEmpty(t, a.PhotoURL)
		}
	})

	t.Run("list is newest first", func(t *testing.T) {
		all, err := svc.ListAchievements(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Win Four", all[0].Title)
		assert.Equal(t, "Win One", all[3].Title)
	})

	t.Run("latest returns three newest", func(t *testing.T) {
		latest, err := svc.ListLatestAchievements(ctx)
		require.NoError(t, err)
		require.Len(t, latest, 3)
		assert.Equal(t, "Win Four", latest[0].Title)
	})

	t.Run("story still present on direct get", func(t *testing.T) {
		all, err := svc.ListAchievements(ctx)
		require.NoError(t, err)

		a, err := svc.GetAchievement(ctx, all[0].ID)
		require.NoError(t, err)
		assert.Equal(t, "the long story", a.Story)
	})
}

func TestTeamDirectorSingleton(t *testing.T) {
	svc, store, _ := setupTestService(t)
	ctx := context.Background()

	uploadBlob(t, store, "uploads/aa/m1.jpg", "img")
	uploadBlob(t, store, "uploads/aa/m2.jpg", "img")
	uploadBlob(t, store, "uploads/aa/m3.jpg", "img")

	director, err := svc.CreateTeamMember(ctx, sitecms.CreateTeamMemberRequest{
		Name: "Ada", Position: "Director", Image: "uploads/aa/m1.jpg",
		Role: sitecms.TeamRoleDirector,
	})
	require.NoError(t, err)

	staff, err := svc.CreateTeamMember(ctx, sitecms.CreateTeamMemberRequest{
		Name: "Grace", Position: "Mentor", Image: "uploads/aa/m2.jpg",
	})
	require.NoError(t, err)
	assert.Equal(t, sitecms.TeamRoleStaff, staff.Role, "role defaults to staff")

	t.Run("second director rejected", func(t *testing.T) {
		_, err := svc.CreateTeamMember(ctx, sitecms.CreateTeamMemberRequest{
			Name: "Alan", Position: "Director", Image: "uploads/aa/m3.jpg",
			Role: sitecms.TeamRoleDirector,
		})
		assert.ErrorIs(t, err, sitecms.ErrDirectorExists)
		assert.ErrorIs(t, err, sitecms.ErrConflict)
	})

	t.Run("promoting staff while a director exists rejected", func(t *testing.T) {
		role := sitecms.TeamRoleDirector
		_, err := svc.UpdateTeamMember(ctx, sitecms.UpdateTeamMemberRequest{ID: staff.ID, Role: &role})
		assert.ErrorIs(t, err, sitecms.ErrDirectorExists)
	})

	t.Run("director can update without tripping the check", func(t *testing.T) {
		role := sitecms.TeamRoleDirector
		name := "Ada L"
		updated, err := svc.UpdateTeamMember(ctx, sitecms.UpdateTeamMemberRequest{
			ID: director.ID, Name: &name, Role: &role,
		})
		require.NoError(t, err)
		assert.Equal(t, "Ada L", updated.Name)
	})

	t.Run("team groups director and staff", func(t *testing.T) {
		team, err := svc.GetTeam(ctx)
		require.NoError(t, err)
		require.NotNil(t, team.Director)
		assert.Equal(t, director.ID, team.Director.ID)
		require.Len(t, team.Staff, 1)
		assert.Equal(t, staff.ID, team.Staff[0].ID)
	})

	t.Run("invalid role rejected", func(t *testing.T) {
		_, err := svc.CreateTeamMember(ctx, sitecms.CreateTeamMemberRequest{
			Name: "Eve", Position: "x", Image: "uploads/aa/m3.jpg",
			Role: sitecms.TeamRole("czar"),
		})
		assert.ErrorIs(t, err, sitecms.ErrValidation)
	})
}

func TestCollaboratorLifecycle(t *testing.T) {
	svc, store, _ := setupTestService(t)
	ctx := context.Background()

	uploadBlob(t, store, "uploads/aa/l1.png", "first logo")
	uploadBlob(t, store, "uploads/aa/l2.png", "second logo")

	t.Run("create requires name office and logo", func(t *testing.T) {
		_, err := svc.CreateCollaborator(ctx, sitecms.CreateCollaboratorRequest{Name: "Acme"})
		assert.ErrorIs(t, err, sitecms.ErrValidation)
	})

	collaborator, err := svc.CreateCollaborator(ctx, sitecms.CreateCollaboratorRequest{
		Name:   "Acme Robotics",
		Office: "Berlin",
		Logo:   "uploads/aa/l1.png",
	})
	require.NoError(t, err)
	assert.Equal(t, "uploads/aa/l1.png", collaborator.Logo)

	t.Run("field-only update keeps the logo", func(t *testing.T) {
		office := "Munich"
		updated, err := svc.UpdateCollaborator(ctx, sitecms.UpdateCollaboratorRequest{
			ID: collaborator.ID, Office: &office,
		})
		require.NoError(t, err)
		assert.Equal(t, "Munich", updated.Office)
		assert.Equal(t, "uploads/aa/l1.png", updated.Logo)
		assert.Equal(t, "memory://uploads/aa/l1.png", updated.LogoURL)
		assert.True(t, blobExists(t, store, "uploads/aa/l1.png"))
	})

	t.Run("logo replacement releases the old blob", func(t *testing.T) {
		newLogo := "uploads/aa/l2.png"
		updated, err := svc.UpdateCollaborator(ctx, sitecms.UpdateCollaboratorRequest{
			ID: collaborator.ID, Logo: &newLogo,
		})
		require.NoError(t, err)
		assert.Equal(t, "uploads/aa/l2.png", updated.Logo)
		assert.False(t, blobExists(t, store, "uploads/aa/l1.png"), "stale logo must be released")
		assert.True(t, blobExists(t, store, "uploads/aa/l2.png"))
	})

	t.Run("list resolves logo urls", func(t *testing.T) {
		collaborators, err := svc.ListCollaborators(ctx)
		require.NoError(t, err)
		require.Len(t, collaborators, 1)
		assert.Equal(t, "memory://uploads/aa/l2.png", collaborators[0].LogoURL)
	})

	t.Run("delete releases the logo", func(t *testing.T) {
		result, err := svc.DeleteCollaborator(ctx, collaborator.ID)
		require.NoError(t, err)
		assert.Equal(t, collaborator.ID, result.ID)
		assert.Equal(t, "uploads/aa/l2.png", result.ReleasedHandle)
		assert.False(t, blobExists(t, store, "uploads/aa/l2.png"))

		_, err = svc.GetCollaborator(ctx, collaborator.ID)
		assert.ErrorIs(t, err, sitecms.ErrCollaboratorNotFound)
		assert.ErrorIs(t, err, sitecms.ErrNotFound)
	})
}

func TestEvents(t *testing.T) {
	svc, _, _ := setupTestService(t)
	ctx := context.Background()

	t.Run("title required", func(t *testing.T) {
		_, err := svc.CreateEvent(ctx, sitecms.CreateEventRequest{Location: "Gym"})
		assert.ErrorIs(t, err, sitecms.ErrValidation)
	})

	event, err := svc.CreateEvent(ctx, sitecms.CreateEventRequest{
		Title:    "  Open House ",
		Date:     "2026-09-12",
		Location: "Main Hall",
	})
	require.NoError(t, err)
	assert.Equal(t, "Open House", event.Title, "title is trimmed")
	assert.Empty(t, event.Note)

	t.Run("partial update leaves other fields alone", func(t *testing.T) {
		note := "Bring the kids"
		updated, err := svc.UpdateEvent(ctx, sitecms.UpdateEventRequest{ID: event.ID, Note: &note})
		require.NoError(t, err)
		assert.Equal(t, "Bring the kids", updated.Note)
		assert.Equal(t, "Open House", updated.Title)
		assert.Equal(t, "2026-09-12", updated.Date)
	})

	t.Run("optional fields can be cleared", func(t *testing.T) {
		empty := ""
		updated, err := svc.UpdateEvent(ctx, sitecms.UpdateEventRequest{ID: event.ID, Location: &empty})
		require.NoError(t, err)
		assert.Empty(t, updated.Location)
		assert.Equal(t, "Open House", updated.Title)
	})

	t.Run("update unknown event", func(t *testing.T) {
		title := "x"
		_, err := svc.UpdateEvent(ctx, sitecms.UpdateEventRequest{ID: uuid.New(), Title: &title})
		assert.ErrorIs(t, err, sitecms.ErrEventNotFound)
		assert.ErrorIs(t, err, sitecms.ErrNotFound)
	})

	t.Run("list includes the event", func(t *testing.T) {
		events, err := svc.ListEvents(ctx)
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, event.ID, events[0].ID)
	})

	t.Run("delete carries no released handle", func(t *testing.T) {
		result, err := svc.DeleteEvent(ctx, event.ID)
		require.NoError(t, err)
		assert.Equal(t, event.ID, result.ID)
		assert.Empty(t, result.ReleasedHandle)

		_, err = svc.GetEvent(ctx, event.ID)
		assert.ErrorIs(t, err, sitecms.ErrEventNotFound)

		_, err = svc.DeleteEvent(ctx, event.ID)
		assert.ErrorIs(t, err, sitecms.ErrNotFound, "second delete must report not found")
	})
}

func TestStatements(t *testing.T) {
	svc, _, _ := setupTestService(t)
	ctx := context.Background()

	t.Run("invalid type rejected", func(t *testing.T) {
		_, err := svc.CreateStatement(ctx, sitecms.CreateStatementRequest{
			Type: sitecms.StatementType("motto"), Title: "t",
		})
		assert.ErrorIs(t, err, sitecms.ErrValidation)
	})

	t.Run("core values carry a list", func(t *testing.T) {
		created, err := svc.CreateStatement(ctx, sitecms.CreateStatementRequest{
			Type:   sitecms.StatementCoreValues,
			Title:  "Core Values",
			Values: []string{"curiosity", "teamwork"},
		})
		require.NoError(t, err)

		values := []string{"curiosity", "teamwork", "grit"}
		updated, err := svc.UpdateStatement(ctx, sitecms.UpdateStatementRequest{
			ID: created.ID, Values: &values,
		})
		require.NoError(t, err)
		assert.Equal(t, values, updated.Values)
		assert.Equal(t, sitecms.StatementCoreValues, updated.Type, "type is immutable")
	})
}

func TestAchievementStats(t *testing.T) {
	svc, _, repo := setupTestService(t)
	ctx := context.Background()

	t.Run("missing row", func(t *testing.T) {
		_, err := svc.GetStats(ctx)
		assert.ErrorIs(t, err, sitecms.ErrStatsNotFound)
	})

	now := time.Now().UTC()
	require.NoError(t, repo.CreateStats(ctx, &sitecms.AchievementStats{
		ID:                uuid.New(),
		NationalChampions: 2,
		CreatedAt:         now,
		UpdatedAt:         now,
	}))

	t.Run("empty patch rejected", func(t *testing.T) {
		_, err := svc.UpdateStats(ctx, sitecms.UpdateStatsRequest{})
		assert.ErrorIs(t, err, sitecms.ErrValidation)
	})

	t.Run("partial patch", func(t *testing.T) {
		winners := 7
		stats, err := svc.UpdateStats(ctx, sitecms.UpdateStatsRequest{StudentWinners: &winners})
		require.NoError(t, err)
		assert.Equal(t, 7, stats.StudentWinners)
		assert.Equal(t, 2, stats.NationalChampions, "untouched counters survive")
	})
}

func TestTestimonials(t *testing.T) {
	svc, _, _ := setupTestService(t)
	ctx := context.Background()

	_, err := svc.CreateTestimonial(ctx, sitecms.CreateTestimonialRequest{Name: "A", Role: "Parent"})
	assert.ErrorIs(t, err, sitecms.ErrValidation)

	created, err := svc.CreateTestimonial(ctx, sitecms.CreateTestimonialRequest{
		Name: "A", Role: "Parent", Body: "Great club",
	})
	require.NoError(t, err)

	result, err := svc.DeleteTestimonial(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, result.ID)
	assert.Empty(t, result.ReleasedHandle, "testimonials carry no attachment")
}

// failingRepository wraps a real repository and fails selected operations.
type failingRepository struct {
	sitecms.Repository
	failUpdateSlide bool
}

func (r *failingRepository) UpdateSlide(ctx context.Context, id uuid.UUID, patch sitecms.SlidePatch) error {
	if r.failUpdateSlide {
		return errors.New("simulated storage outage")
	}
	return r.Repository.UpdateSlide(ctx, id, patch)
}
