package auth

import (
	"context"

	"github.com/dycart/fleet-backoffice/internal/config"
	"github.com/dycart/fleet-backoffice/internal/model"
	"github.com/dycart/fleet-backoffice/internal/sessions"
	"github.com/dycart/fleet-backoffice/internal/store"
	"github.com/dycart/fleet-backoffice/pkg/logger"
)

// Service checks credentials against the users collection and verifies
// bearer tokens for the auth middleware.
type Service struct {
	cfg   *config.Config
	users *store.Store[model.User]
}

func NewService(cfg *config.Config, users *store.Store[model.User]) *Service {
	return &Service{cfg: cfg, users: users}
}

// Authenticate returns the matching user, or nil for an unknown email OR a
// wrong password. The two cases are indistinguishable to the caller so the
// API cannot be used for account enumeration; the cause is only logged.
func (s *Service) Authenticate(email, password string) *model.User {
	u := s.GetByEmail(email)
	if u == nil {
		logger.Debugf("login failed: unknown email %s", email)
		return nil
	}
	if !CheckPassword(u.HashedPassword, password) {
		logger.Debugf("login failed: wrong password for %s", email)
		return nil
	}
	return u
}

// GetByEmail returns the user with the given email, or nil.
func (s *Service) GetByEmail(email string) *model.User {
	for _, u := range s.users.All() {
		if u.Email == email {
			return &u
		}
	}
	return nil
}

// Verify implements the middleware Verifier interface: it rejects
// blacklisted tokens, then validates the raw token as an access token.
func (s *Service) Verify(ctx context.Context, raw string) (map[string]interface{}, error) {
	if black, err := sessions.IsAccessTokenBlacklisted(ctx, raw); err == nil && black {
		return nil, ErrInvalidToken
	}
	claims, err := VerifyToken(s.cfg, raw, TypeAccess)
	if err != nil {
		return nil, err
	}
	return claims, nil
}
