package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/BloggingApp/story-service/internal/config"
	"github.com/BloggingApp/story-service/internal/dto"
	"github.com/BloggingApp/story-service/internal/metrics"
	"github.com/BloggingApp/story-service/internal/model"
	"github.com/BloggingApp/story-service/internal/repository"
	"github.com/BloggingApp/story-service/internal/repository/redisrepo"
	"github.com/BloggingApp/story-service/internal/service"
	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testApp struct {
	router   *gin.Engine
	services *service.Service
	mr       *miniredis.Miniredis
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	reg := prometheus.NewRegistry()
	services := service.New(zap.NewNop(), repository.New(redisrepo.New(rdb)), config.StorageConfig{}, metrics.New(reg))
	require.NoError(t, services.Init(context.Background()))

	h := New(services, config.AuthConfig{AccessSecret: []byte("test-secret"), TokenTTL: time.Hour}, reg)

	return &testApp{
		router:   h.InitRoutes(),
		services: services,
		mr:       mr,
	}
}

func (a *testApp) do(t *testing.T, method string, path string, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func (a *testApp) login(t *testing.T, variant string, username string, password string) string {
	t.Helper()

	w := a.do(t, http.MethodPost, "/api/v1/"+variant+"/login", "", map[string]string{
		"username": username,
		"password": password,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp dto.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.AccessToken)
	return resp.AccessToken
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestLogin(t *testing.T) {
	app := newTestApp(t)

	w := app.do(t, http.MethodPost, "/api/v1/blog/login", "", map[string]string{"username": "admin", "password": "nope"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, errInvalidCredentials.Error(), decode[dto.BasicResponse](t, w).Details)

	w = app.do(t, http.MethodPost, "/api/v1/blog/login", "", map[string]string{"username": "admin"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = app.do(t, http.MethodPost, "/api/v1/blog/login", "", map[string]string{"username": "admin", "password": "admin123"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "admin123")

	resp := decode[dto.LoginResponse](t, w)
	assert.Equal(t, model.User{ID: "1", Username: "admin", Role: model.RoleAdmin}, resp.User)

	w = app.do(t, http.MethodGet, "/api/v1/blog/me", resp.AccessToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, resp.User, decode[model.User](t, w))

	w = app.do(t, http.MethodGet, "/api/v1/blog/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogoutInvalidatesToken(t *testing.T) {
	app := newTestApp(t)
	token := app.login(t, "medium", "writer", "writer123")

	w := app.do(t, http.MethodPost, "/api/v1/medium/logout", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, app.mr.Exists("medium_user"))

	w = app.do(t, http.MethodGet, "/api/v1/medium/me", token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = app.do(t, http.MethodPost, "/api/v1/medium/logout", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestReloginDoesNotReviveOldToken(t *testing.T) {
	app := newTestApp(t)
	oldToken := app.login(t, "medium", "writer", "writer123")

	w := app.do(t, http.MethodPost, "/api/v1/medium/logout", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	newToken := app.login(t, "medium", "writer", "writer123")
	require.NotEqual(t, oldToken, newToken)

	w = app.do(t, http.MethodGet, "/api/v1/medium/me", oldToken, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = app.do(t, http.MethodGet, "/api/v1/medium/me", newToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	anotherToken := app.login(t, "medium", "writer", "writer123")
	w = app.do(t, http.MethodGet, "/api/v1/medium/me", newToken, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code, "a second login replaces the first")
	w = app.do(t, http.MethodGet, "/api/v1/medium/me", anotherToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestTokenBoundToVariant(t *testing.T) {
	app := newTestApp(t)
	blogToken := app.login(t, "blog", "admin", "admin123")
	app.login(t, "medium", "admin", "admin123")

	w := app.do(t, http.MethodGet, "/api/v1/medium/me", blogToken, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = app.do(t, http.MethodGet, "/api/v1/blog/me", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestPosts_Lifecycle(t *testing.T) {
	app := newTestApp(t)

	w := app.do(t, http.MethodPost, "/api/v1/blog/posts", "", map[string]string{"title": "Hello", "content": "world"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	userToken := app.login(t, "blog", "user", "user123")

	w = app.do(t, http.MethodPost, "/api/v1/blog/posts", userToken, map[string]string{
		"title":   "Hello Go",
		"content": "Go services in practice",
		"tags":    "Go, Backend",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[model.Post](t, w)
	assert.Equal(t, "user", created.Author)
	assert.Equal(t, "2", created.AuthorID)
	assert.Equal(t, []string{"Go", "Backend"}, created.Tags)
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)

	w = app.do(t, http.MethodGet, "/api/v1/blog/posts", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[[]model.Post](t, w)
	require.Len(t, list, 3)
	assert.Equal(t, created.ID, list[0].ID)

	w = app.do(t, http.MethodGet, "/api/v1/blog/posts?tag=Backend", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]model.Post](t, w), 1)

	w = app.do(t, http.MethodPatch, "/api/v1/blog/posts/"+created.ID, userToken, map[string]string{"title": "Hello again"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	edited := decode[model.Post](t, w)
	assert.Equal(t, "Hello again", edited.Title)
	assert.Equal(t, created.Content, edited.Content)

	w = app.do(t, http.MethodPatch, "/api/v1/blog/posts/1", userToken, map[string]string{"title": "Not mine"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = app.do(t, http.MethodDelete, "/api/v1/blog/posts/"+created.ID, userToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code, "only admins delete")

	adminToken := app.login(t, "blog", "admin", "admin123")

	w = app.do(t, http.MethodGet, "/api/v1/blog/me", userToken, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code, "a new login replaces the single session")

	w = app.do(t, http.MethodPatch, "/api/v1/blog/posts/2", adminToken, map[string]string{"content": "edited by admin"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = app.do(t, http.MethodDelete, "/api/v1/blog/posts/"+created.ID, adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = app.do(t, http.MethodGet, "/api/v1/blog/posts/"+created.ID, "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = app.do(t, http.MethodDelete, "/api/v1/blog/posts/"+created.ID, adminToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStories_CreateComputesReadTime(t *testing.T) {
	app := newTestApp(t)
	token := app.login(t, "medium", "writer", "writer123")

	content := strings.TrimSpace(strings.Repeat("word ", 450))
	w := app.do(t, http.MethodPost, "/api/v1/medium/stories", token, map[string]string{
		"title":   "Long read",
		"content": content,
		"tags":    "Go, Design, ,Go",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	created := decode[model.Story](t, w)
	assert.Equal(t, 3, created.ReadTime)
	assert.Equal(t, []string{"Go", "Design"}, created.Tags)
	assert.Equal(t, "✍️", created.AuthorAvatar)
	assert.Zero(t, created.Claps)
	assert.Equal(t, created.PublishedAt, created.UpdatedAt)

	w = app.do(t, http.MethodPatch, "/api/v1/medium/stories/"+created.ID, token, map[string]string{"content": "short now"})
	require.Equal(t, http.StatusOK, w.Code)
	edited := decode[model.Story](t, w)
	assert.Equal(t, 1, edited.ReadTime)
	assert.Equal(t, created.Tags, edited.Tags)
}

func TestStories_ClapAndFilter(t *testing.T) {
	app := newTestApp(t)

	before, ok := app.services.Stories.Get("1")
	require.True(t, ok)

	for i := 0; i < 2; i++ {
		w := app.do(t, http.MethodPost, "/api/v1/medium/stories/1/clap", "", nil)
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := app.do(t, http.MethodGet, "/api/v1/medium/stories/1", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	after := decode[model.Story](t, w)
	assert.Equal(t, before.Claps+2, after.Claps)
	assert.True(t, before.UpdatedAt.Equal(after.UpdatedAt))

	w = app.do(t, http.MethodGet, "/api/v1/medium/stories?tag=Design", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	design := decode[[]model.Story](t, w)
	require.Len(t, design, 1)
	assert.Equal(t, "2", design[0].ID)

	w = app.do(t, http.MethodGet, "/api/v1/medium/stories?tag=Nothing", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestStories_NotFound(t *testing.T) {
	app := newTestApp(t)
	token := app.login(t, "medium", "admin", "admin123")

	w := app.do(t, http.MethodGet, "/api/v1/medium/stories/missing", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = app.do(t, http.MethodPost, "/api/v1/medium/stories/missing/clap", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = app.do(t, http.MethodPatch, "/api/v1/medium/stories/missing", token, map[string]string{"title": "Nope"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestWriteContent(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	writeContent[*model.Story](c, nil, false)

	assert.Equal(t, http.StatusNotFound, w.Code)
	resp := decode[dto.BasicResponse](t, w)
	assert.False(t, resp.Ok)
	assert.Equal(t, service.ErrItemNotFound.Error(), resp.Details)

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	writeContent(c, &model.Story{ID: "1", Claps: 3}, true)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(3), decode[model.Story](t, w).Claps)
}

func TestMetricsEndpoint(t *testing.T) {
	app := newTestApp(t)
	app.login(t, "blog", "user", "user123")

	w := app.do(t, http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `story_service_login_attempts_total{result="success",variant="blog"} 1`)
	assert.Contains(t, w.Body.String(), `story_service_content_mutations_total{op="seed",variant="medium"} 1`)
}
