package handlers

import (
	"net/http"
	"testing"

	mr "github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/dycart/fleet-backoffice/internal/sessions"
)

func TestLogin_Success(t *testing.T) {
	e := newTestEnv(t)

	w := e.doJSON(t, http.MethodPost, "/api/auth/login", gin.H{
		"email":    "admin@dy.com",
		"password": "SystemAdminPassword123",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)

	data := dataOf(t, w)
	require.NotEmpty(t, data["accessToken"])
	require.NotEmpty(t, data["refreshToken"])
	require.EqualValues(t, 15*60, data["expiresIn"])

	user := data["user"].(map[string]interface{})
	require.Equal(t, "admin@dy.com", user["email"])
	require.NotEmpty(t, user["lastLoginAt"])
	// the hash never leaves the store
	require.NotContains(t, user, "hashedPassword")
}

func TestLogin_BadCredentialsIndistinguishable(t *testing.T) {
	e := newTestEnv(t)

	w1 := e.doJSON(t, http.MethodPost, "/api/auth/login", gin.H{
		"email": "admin@dy.com", "password": "wrong",
	}, "")
	w2 := e.doJSON(t, http.MethodPost, "/api/auth/login", gin.H{
		"email": "nobody@dy.com", "password": "SystemAdminPassword123",
	}, "")

	require.Equal(t, http.StatusUnauthorized, w1.Code)
	require.Equal(t, http.StatusUnauthorized, w2.Code)
	// identical envelope for both failure causes
	require.Equal(t, w1.Body.String(), w2.Body.String())
}

func TestLogin_MissingFields(t *testing.T) {
	e := newTestEnv(t)

	w := e.doJSON(t, http.MethodPost, "/api/auth/login", gin.H{"email": "admin@dy.com"}, "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "VALIDATION_ERROR", errorCode(t, w))
}

func loginTokens(t *testing.T, e *testEnv) (string, string) {
	t.Helper()
	w := e.doJSON(t, http.MethodPost, "/api/auth/login", gin.H{
		"email": "admin@dy.com", "password": "SystemAdminPassword123",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)
	data := dataOf(t, w)
	return data["accessToken"].(string), data["refreshToken"].(string)
}

func TestMe(t *testing.T) {
	e := newTestEnv(t)
	access, refresh := loginTokens(t, e)

	w := e.doJSON(t, http.MethodGet, "/api/auth/me", nil, access)
	require.Equal(t, http.StatusOK, w.Code)
	user := dataOf(t, w)["user"].(map[string]interface{})
	require.Equal(t, "ADMIN", user["role"])

	// a refresh token is not an access token
	w = e.doJSON(t, http.MethodGet, "/api/auth/me", nil, refresh)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	// no token at all
	w = e.doJSON(t, http.MethodGet, "/api/auth/me", nil, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRefresh(t *testing.T) {
	e := newTestEnv(t)
	access, refresh := loginTokens(t, e)

	w := e.doJSON(t, http.MethodPost, "/api/auth/refresh", gin.H{"refreshToken": refresh}, "")
	require.Equal(t, http.StatusOK, w.Code)
	data := dataOf(t, w)
	require.NotEmpty(t, data["accessToken"])
	require.NotEmpty(t, data["refreshToken"])

	// an access token cannot be used to refresh
	w = e.doJSON(t, http.MethodPost, "/api/auth/refresh", gin.H{"refreshToken": access}, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = e.doJSON(t, http.MethodPost, "/api/auth/refresh", gin.H{"refreshToken": "garbage"}, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogout_BlacklistsAccessToken(t *testing.T) {
	e := newTestEnv(t)

	m, err := mr.Run()
	require.NoError(t, err)
	defer m.Close()
	sessions.SetBlacklistClient(redis.NewClient(&redis.Options{Addr: m.Addr()}))
	defer sessions.SetBlacklistClient(nil)

	access, _ := loginTokens(t, e)

	// token works before logout
	w := e.doJSON(t, http.MethodGet, "/api/auth/me", nil, access)
	require.Equal(t, http.StatusOK, w.Code)

	w = e.doJSON(t, http.MethodPost, "/api/auth/logout", nil, access)
	require.Equal(t, http.StatusOK, w.Code)

	// and is rejected after
	w = e.doJSON(t, http.MethodGet, "/api/auth/me", nil, access)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogout_WithoutTokenStillSucceeds(t *testing.T) {
	e := newTestEnv(t)

	w := e.doJSON(t, http.MethodPost, "/api/auth/logout", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, true, envelope(t, w)["success"])
}
