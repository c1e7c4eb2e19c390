package handlers

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dycart/fleet-backoffice/internal/model"
	"github.com/dycart/fleet-backoffice/internal/store"
)

// CartModelHandler serves the cart-model catalog.
type CartModelHandler struct {
	models *store.Store[model.CartModel]
}

func NewCartModelHandler(models *store.Store[model.CartModel]) *CartModelHandler {
	return &CartModelHandler{models: models}
}

func (h *CartModelHandler) Register(rg *gin.RouterGroup) {
	g := rg.Group("/cart-models")
	g.GET("", h.List)
	g.POST("", h.Create)
	g.POST("/bulk-delete", h.BulkDelete)
	g.GET("/:id", h.Get)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

func (h *CartModelHandler) List(c *gin.Context) {
	ok(c, h.models.List(parseListQuery(c)))
}

func (h *CartModelHandler) Create(c *gin.Context) {
	var req model.CartModel
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, "요청 본문이 올바르지 않습니다.")
		return
	}
	if strings.TrimSpace(req.ModelName) == "" || strings.TrimSpace(req.ModelCode) == "" {
		validationError(c, "모델명과 모델 코드는 필수입니다.")
		return
	}
	req.ID = ""
	if req.Status == "" {
		req.Status = "active"
	}
	rec, err := h.models.Create(req)
	if err != nil {
		failStore(c, err, "카트 모델을 찾을 수 없습니다.", "이미 존재하는 모델 코드입니다.")
		return
	}
	created(c, rec, "카트 모델이 등록되었습니다.")
}

func (h *CartModelHandler) Get(c *gin.Context) {
	rec, err := h.models.Get(c.Param("id"))
	if err != nil {
		failStore(c, err, "카트 모델을 찾을 수 없습니다.", "")
		return
	}
	ok(c, rec)
}

func (h *CartModelHandler) Update(c *gin.Context) {
	var patch model.CartModelPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		validationError(c, "요청 본문이 올바르지 않습니다.")
		return
	}
	rec, err := h.models.Update(c.Param("id"), func(m *model.CartModel) {
		patch.Apply(m)
	})
	if err != nil {
		failStore(c, err, "카트 모델을 찾을 수 없습니다.", "이미 존재하는 모델 코드입니다.")
		return
	}
	okMessage(c, rec, "카트 모델이 수정되었습니다.")
}

func (h *CartModelHandler) Delete(c *gin.Context) {
	if err := h.models.Delete(c.Param("id")); err != nil {
		failStore(c, err, "카트 모델을 찾을 수 없습니다.", "")
		return
	}
	message(c, "카트 모델이 삭제되었습니다.")
}

func (h *CartModelHandler) BulkDelete(c *gin.Context) {
	var req struct {
		IDs []string `json:"ids" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || len(req.IDs) == 0 {
		validationError(c, "삭제할 카트 모델 ID 목록이 필요합니다.")
		return
	}
	n := h.models.BulkDelete(req.IDs)
	message(c, fmt.Sprintf("%d개의 카트 모델이 삭제되었습니다.", n))
}
