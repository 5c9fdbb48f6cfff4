package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"portfolio_api/internal/config"
	"portfolio_api/internal/database"
	"portfolio_api/internal/models"
	"portfolio_api/internal/repositories"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// failingStore errors on collection listing and panics on anything else.
type failingStore struct {
	database.DocumentStore
}

func (failingStore) ListCollectionNames(context.Context) ([]string, error) {
	return nil, errors.New("server selection error: context deadline exceeded, current topology: unknown")
}

// missingStore reports every write and list as a missing document.
type missingStore struct {
	*database.MemoryStore
}

func (missingStore) CreateDocument(context.Context, string, any) (string, error) {
	return "", database.ErrNotFound
}

func (missingStore) GetDocuments(context.Context, string, database.Filter, int) ([]database.Document, error) {
	return nil, database.ErrNotFound
}

func newTestServer(t *testing.T, store database.DocumentStore) *Server {
	t.Helper()
	cfg := &config.Config{Port: 8000, Environment: "test", DatabaseURL: "memory://", DatabaseName: ""}
	return NewServer(cfg, store, zaptest.NewLogger(t))
}

func do(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var v map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

func TestGreetings(t *testing.T) {
	s := newTestServer(t, database.NewMemoryStore("test"))

	for _, path := range []string{"/", "/api/hello"} {
		w := do(t, s, http.MethodGet, path, "")
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.NotEmpty(t, decode(t, w)["message"], path)
	}
}

func TestUnknownRoute(t *testing.T) {
	s := newTestServer(t, database.NewMemoryStore("test"))

	w := do(t, s, http.MethodGet, "/nope", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Not Found", decode(t, w)["detail"])
}

func TestListProjectsAfterSeed(t *testing.T) {
	s := newTestServer(t, database.NewMemoryStore("test"))
	require.NoError(t, s.Seed(context.Background()))

	w := do(t, s, http.MethodGet, "/api/projects", "")
	require.Equal(t, http.StatusOK, w.Code)

	items, ok := decode(t, w)["items"].([]any)
	require.True(t, ok)
	require.Len(t, items, 3)

	first := items[0].(map[string]any)
	assert.Equal(t, "Realtime Chat App", first["title"])
	assert.IsType(t, "", first["_id"])
	assert.NotEmpty(t, first["_id"])

	third := items[2].(map[string]any)
	assert.Contains(t, third, "live")
	assert.Nil(t, third["live"])
}

func TestListBlogsNewestFirst(t *testing.T) {
	ctx := context.Background()
	store := database.NewMemoryStore("test")
	repo := repositories.NewBlogPostRepository(store)

	older := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for _, p := range []*models.BlogPost{
		{Slug: "undated"},
		{Slug: "older", PublishedAt: &older},
		{Slug: "newer", PublishedAt: &newer},
	} {
		_, err := repo.Create(ctx, p)
		require.NoError(t, err)
	}

	w := do(t, newTestServer(t, store), http.MethodGet, "/api/blogs", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Items []models.BlogPost `json:"items"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Items, 3)
	assert.Equal(t, "newer", body.Items[0].Slug)
	assert.Equal(t, "older", body.Items[1].Slug)
	assert.Equal(t, "undated", body.Items[2].Slug)
	for _, p := range body.Items {
		assert.NotEmpty(t, p.ID)
	}
}

func TestGetBlog(t *testing.T) {
	s := newTestServer(t, database.NewMemoryStore("test"))
	require.NoError(t, s.Seed(context.Background()))

	w := do(t, s, http.MethodGet, "/api/blogs/shipping-with-fastapi", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "shipping-with-fastapi", body["slug"])
	assert.IsType(t, "", body["_id"])
	assert.NotEmpty(t, body["published_at"])

	w = do(t, s, http.MethodGet, "/api/blogs/nonexistent-slug", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Post not found", decode(t, w)["detail"])
}

func TestWithoutDatabase(t *testing.T) {
	s := newTestServer(t, nil)
	require.NoError(t, s.Seed(context.Background()))

	w := do(t, s, http.MethodGet, "/api/blogs/nonexistent-slug", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Database not available", decode(t, w)["detail"])

	for _, path := range []string{"/api/projects", "/api/blogs"} {
		w = do(t, s, http.MethodGet, path, "")
		assert.Equal(t, http.StatusInternalServerError, w.Code, path)
	}

	w = do(t, s, http.MethodPost, "/api/contact", `{"name":"Ada","email":"ada@example.com","message":"hi"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	w = do(t, s, http.MethodGet, "/test", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "⚠️  Available but not initialized", body["database"])
	assert.Equal(t, "✅ Set", body["database_url"])
	assert.Equal(t, "❌ Not Set", body["database_name"])
	assert.Equal(t, []any{}, body["collections"])
}

func TestSubmitContact(t *testing.T) {
	store := database.NewMemoryStore("test")
	s := newTestServer(t, store)
	payload := `{"name":"Ada","email":"ada@example.com","subject":"Hi","message":"Nice site"}`

	w1 := do(t, s, http.MethodPost, "/api/contact", payload)
	require.Equal(t, http.StatusOK, w1.Code)
	b1 := decode(t, w1)
	assert.Equal(t, "ok", b1["status"])

	w2 := do(t, s, http.MethodPost, "/api/contact", payload)
	require.Equal(t, http.StatusOK, w2.Code)
	b2 := decode(t, w2)

	id1, _ := b1["id"].(string)
	id2, _ := b2["id"].(string)
	assert.NotEmpty(t, id1)
	assert.NotEmpty(t, id2)
	assert.NotEqual(t, id1, id2)

	n, err := store.CountDocuments(context.Background(), repositories.ContactMessageCollection, nil)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)
}

func TestSubmitContactValidation(t *testing.T) {
	store := database.NewMemoryStore("test")
	s := newTestServer(t, store)

	for name, payload := range map[string]string{
		"missing message": `{"name":"Ada","email":"ada@example.com"}`,
		"bad email":       `{"name":"Ada","email":"not-an-email","message":"hi"}`,
		"unknown field":   `{"name":"Ada","email":"ada@example.com","message":"hi","admin":true}`,
		"malformed json":  `{"name":`,
		"blank name":      `{"name":"   ","email":"ada@example.com","message":"hi"}`,
	} {
		w := do(t, s, http.MethodPost, "/api/contact", payload)
		assert.Equal(t, http.StatusBadRequest, w.Code, name)
		assert.NotEmpty(t, decode(t, w)["detail"], name)
	}

	n, err := store.CountDocuments(context.Background(), repositories.ContactMessageCollection, nil)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestDiagnostics(t *testing.T) {
	store := database.NewMemoryStore("test")
	s := newTestServer(t, store)
	require.NoError(t, s.Seed(context.Background()))

	w := do(t, s, http.MethodGet, "/test", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "✅ Running", body["backend"])
	assert.Equal(t, "✅ Connected & Working", body["database"])
	assert.Equal(t, "Connected", body["connection_status"])
	assert.ElementsMatch(t, []any{"blogpost", "project"}, body["collections"])
}

func TestDiagnosticsWithFailingStore(t *testing.T) {
	s := newTestServer(t, failingStore{})

	w := do(t, s, http.MethodGet, "/test", "")
	require.Equal(t, http.StatusOK, w.Code)

	status, _ := decode(t, w)["database"].(string)
	assert.True(t, strings.HasPrefix(status, "⚠️  Connected but Error: server selection error"))
	detail := strings.TrimPrefix(status, "⚠️  Connected but Error: ")
	assert.Equal(t, 50, len([]rune(detail)))
}

func TestCORS(t *testing.T) {
	s := newTestServer(t, database.NewMemoryStore("test"))

	req := httptest.NewRequest(http.MethodOptions, "/api/contact", nil)
	req.Header.Set("Origin", "https://portfolio.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "content-type,x-custom")
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://portfolio.example.com", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
	assert.Equal(t, "content-type,x-custom", w.Header().Get("Access-Control-Allow-Headers"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)

	req = httptest.NewRequest(http.MethodGet, "/api/hello", nil)
	req.Header.Set("Origin", "https://portfolio.example.com")
	w = httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "https://portfolio.example.com", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Headers"))
}

func TestStoreErrorsOutsideLookups(t *testing.T) {
	s := newTestServer(t, missingStore{database.NewMemoryStore("test")})

	for _, path := range []string{"/api/projects", "/api/blogs"} {
		w := do(t, s, http.MethodGet, path, "")
		assert.Equal(t, http.StatusInternalServerError, w.Code, path)
		assert.Equal(t, "Internal Server Error", decode(t, w)["detail"], path)
	}

	w := do(t, s, http.MethodPost, "/api/contact", `{"name":"Ada","email":"ada@example.com","message":"hi"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Internal Server Error", decode(t, w)["detail"])
}

func TestBindingSettingsSurviveNewServer(t *testing.T) {
	binding.EnableDecoderDisallowUnknownFields = false
	t.Cleanup(func() { binding.EnableDecoderDisallowUnknownFields = true })

	newTestServer(t, database.NewMemoryStore("test"))
	assert.False(t, binding.EnableDecoderDisallowUnknownFields)
}

func TestBindingDefaults(t *testing.T) {
	assert.True(t, binding.EnableDecoderDisallowUnknownFields)

	type named struct {
		Name string `binding:"notblank"`
	}
	assert.Error(t, binding.Validator.ValidateStruct(&named{Name: " \t "}))
	assert.NoError(t, binding.Validator.ValidateStruct(&named{Name: "Ada"}))
}

func TestHTTPServer(t *testing.T) {
	s := newTestServer(t, database.NewMemoryStore("test"))
	srv := s.HTTPServer()
	assert.Equal(t, ":8000", srv.Addr)
	assert.NotNil(t, srv.Handler)
	assert.NoError(t, s.Close(context.Background()))
	assert.NoError(t, newTestServer(t, nil).Close(context.Background()))
}
