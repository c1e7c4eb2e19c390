package auth

import (
	"context"
	"path/filepath"
	"testing"

	mr "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/dycart/fleet-backoffice/internal/model"
	"github.com/dycart/fleet-backoffice/internal/sessions"
	"github.com/dycart/fleet-backoffice/internal/store"
)

func testService(t *testing.T) *Service {
	t.Helper()
	users, err := store.New(model.UserStore(filepath.Join(t.TempDir(), "users_data.json")))
	require.NoError(t, err)
	return NewService(testJWTConfig(), users)
}

func TestAuthenticate(t *testing.T) {
	svc := testService(t)

	// seeded admin account
	u := svc.Authenticate("admin@dy.com", "SystemAdminPassword123")
	require.NotNil(t, u)
	require.Equal(t, "ADMIN", u.Role)

	// unknown email and wrong password are indistinguishable
	require.Nil(t, svc.Authenticate("nobody@dy.com", "SystemAdminPassword123"))
	require.Nil(t, svc.Authenticate("admin@dy.com", "wrong-password"))
}

func TestVerify_AcceptsAccessRejectsRefresh(t *testing.T) {
	svc := testService(t)
	sessions.SetBlacklistClient(nil)

	access, err := GenerateToken(svc.cfg, testUser(), TypeAccess)
	require.NoError(t, err)
	claims, err := svc.Verify(context.Background(), access)
	require.NoError(t, err)
	require.Equal(t, "admin@dy.com", claims["sub"])

	refresh, err := GenerateToken(svc.cfg, testUser(), TypeRefresh)
	require.NoError(t, err)
	_, err = svc.Verify(context.Background(), refresh)
	require.Error(t, err)
}

func TestVerify_RejectsBlacklistedToken(t *testing.T) {
	svc := testService(t)

	m, err := mr.Run()
	require.NoError(t, err)
	defer m.Close()
	sessions.SetBlacklistClient(redis.NewClient(&redis.Options{Addr: m.Addr()}))
	defer sessions.SetBlacklistClient(nil)

	access, err := GenerateToken(svc.cfg, testUser(), TypeAccess)
	require.NoError(t, err)

	// valid before logout
	_, err = svc.Verify(context.Background(), access)
	require.NoError(t, err)

	require.NoError(t, sessions.BlacklistAccessToken(context.Background(), access, svc.cfg.JWT.AccessTokenTTL))
	_, err = svc.Verify(context.Background(), access)
	require.ErrorIs(t, err, ErrInvalidToken)
}
