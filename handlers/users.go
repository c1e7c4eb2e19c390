package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/dycart/fleet-backoffice/internal/model"
	"github.com/dycart/fleet-backoffice/internal/store"
)

// UserHandler serves the backoffice account list. Passwords never leave
// the store.
type UserHandler struct {
	users *store.Store[model.User]
}

func NewUserHandler(users *store.Store[model.User]) *UserHandler {
	return &UserHandler{users: users}
}

func (h *UserHandler) Register(rg *gin.RouterGroup) {
	g := rg.Group("/users")
	g.GET("", h.List)
	g.GET("/:id", h.Get)
}

func (h *UserHandler) List(c *gin.Context) {
	q := parseListQuery(c)
	var extra []func(model.User) bool
	if role := c.Query("role"); role != "" && role != "all" {
		extra = append(extra, func(u model.User) bool { return u.Role == role })
	}
	page := h.users.List(q, extra...)
	for i := range page.Items {
		page.Items[i] = page.Items[i].Public()
	}
	ok(c, page)
}

func (h *UserHandler) Get(c *gin.Context) {
	rec, err := h.users.Get(c.Param("id"))
	if err != nil {
		failStore(c, err, "사용자를 찾을 수 없습니다.", "")
		return
	}
	ok(c, rec.Public())
}
