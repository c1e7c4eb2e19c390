package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/dycart/fleet-backoffice/internal/auth"
	"github.com/dycart/fleet-backoffice/internal/config"
	"github.com/dycart/fleet-backoffice/internal/model"
	"github.com/dycart/fleet-backoffice/internal/sessions"
	"github.com/dycart/fleet-backoffice/internal/storage"
	"github.com/dycart/fleet-backoffice/internal/store"
)

// testEnv wires the full handler surface against temp-dir stores, the way
// main does against the data dir.
type testEnv struct {
	router     *gin.Engine
	cfg        *config.Config
	courses    *store.Store[model.GolfCourse]
	carts      *store.Store[model.Cart]
	cartModels *store.Store[model.CartModel]
	maps       *store.Store[model.MapData]
	users      *store.Store[model.User]
	uploads    string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)
	sessions.SetBlacklistClient(nil)

	dataDir := t.TempDir()
	cfg := &config.Config{}
	cfg.JWT.Secret = "handler-test-secret-32-bytes-long"
	cfg.JWT.AccessTokenTTL = 15 * time.Minute
	cfg.JWT.RefreshTokenTTL = 7 * 24 * time.Hour

	courses, err := store.New(model.GolfCourseStore(filepath.Join(dataDir, "golf_courses_data.json")))
	require.NoError(t, err)
	carts, err := store.New(model.CartStore(filepath.Join(dataDir, "carts_data.json")))
	require.NoError(t, err)
	cartModels, err := store.New(model.CartModelStore(filepath.Join(dataDir, "cart_models_data.json")))
	require.NoError(t, err)
	maps, err := store.New(model.MapStore(filepath.Join(dataDir, "maps_data.json")))
	require.NoError(t, err)
	users, err := store.New(model.UserStore(filepath.Join(dataDir, "users_data.json")))
	require.NoError(t, err)

	uploads := t.TempDir()
	files := storage.NewLocalStorage(uploads, "/uploads")
	svc := auth.NewService(cfg, users)

	r := gin.New()
	api := r.Group("/api")
	NewAuthHandler(cfg, svc, users).Register(api)
	NewGolfCourseHandler(courses).Register(api)
	ch := NewCartHandler(carts, cartModels, courses)
	ch.Register(api)
	ch.RegisterScoped(api)
	NewCartModelHandler(cartModels).Register(api)
	NewMapHandler(maps, courses, files).Register(api)
	NewUserHandler(users).Register(api)
	NewAddressHandler().Register(api)

	return &testEnv{
		router: r, cfg: cfg,
		courses: courses, carts: carts, cartModels: cartModels, maps: maps, users: users,
		uploads: uploads,
	}
}

// doJSON performs a request with an optional JSON body and bearer token.
func (e *testEnv) doJSON(t *testing.T, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// envelope decodes the common response envelope.
func envelope(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	return got
}

func dataOf(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	env := envelope(t, w)
	require.Equal(t, true, env["success"], "expected success envelope, got %s", w.Body.String())
	data, ok := env["data"].(map[string]interface{})
	require.True(t, ok, "data is not an object: %s", w.Body.String())
	return data
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	env := envelope(t, w)
	require.Equal(t, false, env["success"])
	errObj, ok := env["error"].(map[string]interface{})
	require.True(t, ok, "error is not an object: %s", w.Body.String())
	code, _ := errObj["code"].(string)
	return code
}
