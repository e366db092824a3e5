package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chemosit/sitecms/pkg/sitecms"
	"github.com/chemosit/sitecms/pkg/sitecms/api"
	"github.com/chemosit/sitecms/pkg/sitecms/blobkey"
	"github.com/chemosit/sitecms/pkg/sitecms/repo/memory"
	memorystorage "github.com/chemosit/sitecms/pkg/sitecms/storage/memory"
)

func setupServer(t *testing.T) (*httptest.Server, *memorystorage.Backend) {
	t.Helper()

	store := memorystorage.New()
	svc, err := sitecms.New(
		sitecms.WithRepository(memory.New()),
		sitecms.WithBlobStore(store),
	)
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Mount("/slides", api.NewSlidesHandler(svc, nil).Routes())
	r.Mount("/achievements", api.NewAchievementsHandler(svc, nil).Routes())
	r.Mount("/team", api.NewTeamHandler(svc, nil).Routes())
	r.Mount("/uploads", api.NewUploadsHandler(store, blobkey.NewShardedGenerator(), nil).Routes())

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)

	return server, store
}

func uploadTestBlob(t *testing.T, store *memorystorage.Backend, handle string) {
	t.Helper()
	require.NoError(t, store.Upload(context.Background(), handle, strings.NewReader("blob")))
}

func postJSON(t *testing.T, url string, body interface{}) *http.Response {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)

	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	require.NoError(t, err)
	return resp
}

func patchJSON(t *testing.T, url string, body interface{}) *http.Response {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPatch, url, bytes.NewReader(data))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

func TestSlideEndpoints(t *testing.T) {
	server, store := setupServer(t)
	uploadTestBlob(t, store, "uploads/aa/h1.jpg")

	var created sitecms.HeroSlide

	t.Run("create", func(t *testing.T) {
		resp := postJSON(t, server.URL+"/slides/", api.CreateSlideRequest{
			Title:    "Welcome",
			Subtitle: "sub",
			Img:      "uploads/aa/h1.jpg",
		})
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		decodeBody(t, resp, &created)
		assert.Equal(t, "Welcome", created.Title)
	})

	t.Run("validation error maps to 400", func(t *testing.T) {
		resp := postJSON(t, server.URL+"/slides/", api.CreateSlideRequest{Subtitle: "sub"})
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("get resolves url", func(t *testing.T) {
		resp, err := http.Get(fmt.Sprintf("%s/slides/%s", server.URL, created.ID))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var slide sitecms.HeroSlide
		decodeBody(t, resp, &slide)
		assert.Equal(t, "memory://uploads/aa/h1.jpg", slide.ImgURL)
	})

	t.Run("unknown id maps to 404", func(t *testing.T) {
		resp, err := http.Get(server.URL + "/slides/00000000-0000-0000-0000-000000000001")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("malformed id maps to 400", func(t *testing.T) {
		resp, err := http.Get(server.URL + "/slides/not-a-uuid")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("patch", func(t *testing.T) {
		title := "Renamed"
		resp := patchJSON(t, fmt.Sprintf("%s/slides/%s", server.URL, created.ID),
			api.UpdateSlideRequest{Title: &title})
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var slide sitecms.HeroSlide
		decodeBody(t, resp, &slide)
		assert.Equal(t, "Renamed", slide.Title)
		assert.Equal(t, "Renamed", slide.Alt)
	})

	t.Run("delete returns released handle", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodDelete,
			fmt.Sprintf("%s/slides/%s", server.URL, created.ID), nil)
		require.NoError(t, err)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result sitecms.DeleteResult
		decodeBody(t, resp, &result)
		assert.Equal(t, created.ID, result.ID)
		assert.Equal(t, "uploads/aa/h1.jpg", result.ReleasedHandle)
	})
}

func TestAchievementEndpoints(t *testing.T) {
	server, store := setupServer(t)
	uploadTestBlob(t, store, "uploads/aa/p1.jpg")
	uploadTestBlob(t, store, "uploads/aa/p2.jpg")

	var created sitecms.Achievement

	t.Run("create derives slug", func(t *testing.T) {
		resp := postJSON(t, server.URL+"/achievements/", api.CreateAchievementRequest{
			Title:       "National Champions 2024!",
			Description: "desc",
			Story:       "long story",
			Photo:       "uploads/aa/p1.jpg",
		})
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		decodeBody(t, resp, &created)
		assert.Equal(t, "national-champions-2024", created.Slug)
	})

	t.Run("slug conflict maps to 409", func(t *testing.T) {
		resp := postJSON(t, server.URL+"/achievements/", api.CreateAchievementRequest{
			Title:       "National Champions 2024",
			Description: "desc",
			Photo:       "uploads/aa/p2.jpg",
		})
		defer resp.Body.Close()
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	t.Run("lookup by slug", func(t *testing.T) {
		resp, err := http.Get(server.URL + "/achievements/slug/national-champions-2024")
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var a sitecms.Achievement
		decodeBody(t, resp, &a)
		assert.Equal(t, created.ID, a.ID)
	})

	t.Run("list omits story", func(t *testing.T) {
		resp, err := http.Get(server.URL + "/achievements/")
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var list []sitecms.Achievement
		decodeBody(t, resp, &list)
		require.Len(t, list, 1)
		assert.Empty(t, list[0].Story)
	})

	t.Run("latest", func(t *testing.T) {
		resp, err := http.Get(server.URL + "/achievements/latest")
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var list []sitecms.Achievement
		decodeBody(t, resp, &list)
		assert.Len(t, list, 1)
	})
}

func TestTeamEndpoints(t *testing.T) {
	server, store := setupServer(t)
	uploadTestBlob(t, store, "uploads/aa/m1.jpg")
	uploadTestBlob(t, store, "uploads/aa/m2.jpg")

	resp := postJSON(t, server.URL+"/team/", api.CreateTeamMemberRequest{
		Name: "Ada", Position: "Director", Image: "uploads/aa/m1.jpg", Role: "director",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var director sitecms.TeamMember
	decodeBody(t, resp, &director)

	t.Run("second director maps to 409", func(t *testing.T) {
		resp := postJSON(t, server.URL+"/team/", api.CreateTeamMemberRequest{
			Name: "Alan", Position: "Director", Image: "uploads/aa/m2.jpg", Role: "director",
		})
		defer resp.Body.Close()
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	t.Run("team view groups roles", func(t *testing.T) {
		staffResp := postJSON(t, server.URL+"/team/", api.CreateTeamMemberRequest{
			Name: "Grace", Position: "Mentor", Image: "uploads/aa/m2.jpg",
		})
		require.Equal(t, http.StatusCreated, staffResp.StatusCode)
		staffResp.Body.Close()

		resp, err := http.Get(server.URL + "/team/")
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var team sitecms.Team
		decodeBody(t, resp, &team)
		require.NotNil(t, team.Director)
		assert.Equal(t, director.ID, team.Director.ID)
		assert.Len(t, team.Staff, 1)
	})
}

func TestUploadEndpoint(t *testing.T) {
	server, store := setupServer(t)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", "photo.jpg")
	require.NoError(t, err)
	_, err = part.Write([]byte("image bytes"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	resp, err := http.Post(server.URL+"/uploads/", writer.FormDataContentType(), &body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var result api.UploadResponse
	decodeBody(t, resp, &result)
	assert.True(t, strings.HasPrefix(result.Handle, "uploads/"))
	assert.Equal(t, "memory://"+result.Handle, result.URL)

	t.Run("blob is stored", func(t *testing.T) {
		reader, err := store.Download(context.Background(), result.Handle)
		require.NoError(t, err)
		reader.Close()
	})

	t.Run("download round trip", func(t *testing.T) {
		resp, err := http.Get(server.URL + "/uploads/" + result.Handle)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("missing file field maps to 400", func(t *testing.T) {
		var empty bytes.Buffer
		w := multipart.NewWriter(&empty)
		require.NoError(t, w.Close())

		resp, err := http.Post(server.URL+"/uploads/", w.FormDataContentType(), &empty)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}
