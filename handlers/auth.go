package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dycart/fleet-backoffice/internal/auth"
	"github.com/dycart/fleet-backoffice/internal/config"
	"github.com/dycart/fleet-backoffice/internal/model"
	"github.com/dycart/fleet-backoffice/internal/sessions"
	"github.com/dycart/fleet-backoffice/internal/store"
	"github.com/dycart/fleet-backoffice/pkg/logger"
	"github.com/dycart/fleet-backoffice/pkg/middleware"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// AuthHandler holds dependencies
type AuthHandler struct {
	cfg   *config.Config
	svc   *auth.Service
	users *store.Store[model.User]
}

func NewAuthHandler(cfg *config.Config, svc *auth.Service, users *store.Store[model.User]) *AuthHandler {
	return &AuthHandler{cfg: cfg, svc: svc, users: users}
}

// Register routes under /auth
func (h *AuthHandler) Register(rg *gin.RouterGroup) {
	a := rg.Group("/auth")
	a.POST("/login", h.Login)
	a.POST("/refresh", h.Refresh)
	a.POST("/logout", h.Logout)
	a.GET("/me", middleware.AuthMiddleware(h.svc), h.Me)
}

// Login checks credentials against the users collection and issues an
// access/refresh token pair.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, "이메일과 비밀번호를 입력해주세요.")
		return
	}
	u := h.svc.Authenticate(req.Email, req.Password)
	if u == nil {
		// unknown email and wrong password answer identically
		fail(c, http.StatusUnauthorized, "UNAUTHORIZED", "이메일 또는 비밀번호가 올바르지 않습니다.")
		return
	}

	access, err := auth.GenerateToken(h.cfg, *u, auth.TypeAccess)
	if err != nil {
		logger.Errorf("access token issue failed for %s: %v", u.Email, err)
		fail(c, http.StatusInternalServerError, "INTERNAL_ERROR", "토큰 발급에 실패했습니다.")
		return
	}
	refresh, err := auth.GenerateToken(h.cfg, *u, auth.TypeRefresh)
	if err != nil {
		logger.Errorf("refresh token issue failed for %s: %v", u.Email, err)
		fail(c, http.StatusInternalServerError, "INTERNAL_ERROR", "토큰 발급에 실패했습니다.")
		return
	}

	updated, err := h.users.Update(u.ID, func(usr *model.User) {
		usr.LastLoginAt = time.Now().UTC().Format(time.RFC3339)
	})
	if err != nil {
		logger.Warnf("failed to record last login for %s: %v", u.Email, err)
		updated = *u
	}

	ok(c, gin.H{
		"accessToken":  access,
		"refreshToken": refresh,
		"user":         updated.Public(),
		"expiresIn":    int(h.cfg.JWT.AccessTokenTTL.Seconds()),
	})
}

// Refresh exchanges a valid refresh token for a fresh token pair.
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, "refreshToken이 필요합니다.")
		return
	}
	claims, err := auth.VerifyToken(h.cfg, req.RefreshToken, auth.TypeRefresh)
	if err != nil {
		logger.Debugf("refresh rejected: %v", err)
		fail(c, http.StatusUnauthorized, "UNAUTHORIZED", "유효하지 않은 토큰입니다.")
		return
	}
	sub, _ := claims["sub"].(string)
	u := h.svc.GetByEmail(sub)
	if u == nil {
		fail(c, http.StatusUnauthorized, "UNAUTHORIZED", "유효하지 않은 토큰입니다.")
		return
	}
	access, err := auth.GenerateToken(h.cfg, *u, auth.TypeAccess)
	if err != nil {
		fail(c, http.StatusInternalServerError, "INTERNAL_ERROR", "토큰 발급에 실패했습니다.")
		return
	}
	refresh, err := auth.GenerateToken(h.cfg, *u, auth.TypeRefresh)
	if err != nil {
		fail(c, http.StatusInternalServerError, "INTERNAL_ERROR", "토큰 발급에 실패했습니다.")
		return
	}
	ok(c, gin.H{"accessToken": access, "refreshToken": refresh})
}

// Logout blacklists the presented access token for its remaining lifetime
// when Redis is configured; otherwise it is a client-side logout.
func (h *AuthHandler) Logout(c *gin.Context) {
	authz := c.GetHeader("Authorization")
	if len(authz) > 7 && authz[:7] == "Bearer " {
		raw := authz[7:]
		if claims, err := auth.VerifyToken(h.cfg, raw, auth.TypeAccess); err == nil {
			if exp, okc := claims["exp"].(float64); okc {
				if ttl := time.Until(time.Unix(int64(exp), 0)); ttl > 0 {
					if err := sessions.BlacklistAccessToken(c.Request.Context(), raw, ttl); err != nil {
						logger.Warnf("access token blacklist failed: %v", err)
					}
				}
			}
		}
	}
	message(c, "로그아웃되었습니다.")
}

// Me returns the authenticated user.
func (h *AuthHandler) Me(c *gin.Context) {
	v, _ := c.Get("claims")
	claims, _ := v.(map[string]interface{})
	sub, _ := claims["sub"].(string)
	u := h.svc.GetByEmail(sub)
	if u == nil {
		fail(c, http.StatusUnauthorized, "UNAUTHORIZED", "인증이 필요합니다.")
		return
	}
	ok(c, gin.H{"user": u.Public()})
}
