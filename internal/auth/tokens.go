package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dycart/fleet-backoffice/internal/config"
	"github.com/dycart/fleet-backoffice/internal/model"
)

// Token types carried in the "type" claim. Verification rejects a token
// presented for the wrong purpose (e.g. a refresh token on an API call).
const (
	TypeAccess  = "access"
	TypeRefresh = "refresh"
)

var (
	ErrInvalidToken   = errors.New("invalid token")
	ErrWrongTokenType = errors.New("wrong token type")
	ErrTokenExpired   = errors.New("token expired")
)

// GenerateToken creates a signed HS256 JWT for the user with the TTL
// configured for the given token type.
func GenerateToken(cfg *config.Config, u model.User, tokenType string) (string, error) {
	ttl := cfg.JWT.AccessTokenTTL
	if tokenType == TypeRefresh {
		ttl = cfg.JWT.RefreshTokenTTL
	}
	return GenerateTokenWithTTL(cfg, u, tokenType, ttl)
}

// GenerateTokenWithTTL is GenerateToken with an explicit TTL; tests use it to
// issue already-expired tokens.
func GenerateTokenWithTTL(cfg *config.Config, u model.User, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":     u.Email,
		"user_id": u.ID,
		"name":    u.Name,
		"role":    u.Role,
		"type":    tokenType,
		"iat":     now.Unix(),
		"exp":     now.Add(ttl).Unix(),
	}
	jt := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return jt.SignedString([]byte(cfg.JWT.Secret))
}

// VerifyToken parses and validates a token and checks its type claim.
// Returns ErrTokenExpired past exp, ErrWrongTokenType on a type mismatch and
// ErrInvalidToken for anything else (bad signature, malformed, wrong alg).
func VerifyToken(cfg *config.Config, raw, expectedType string) (jwt.MapClaims, error) {
	parsed, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		return []byte(cfg.JWT.Secret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	if tt, _ := claims["type"].(string); tt != expectedType {
		return nil, ErrWrongTokenType
	}
	return claims, nil
}
