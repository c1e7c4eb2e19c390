package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dycart/fleet-backoffice/internal/model"
	"github.com/dycart/fleet-backoffice/internal/store"
)

// CartHandler serves the fleet-wide cart collection plus the
// golf-course-scoped sub-collection views of the same records.
type CartHandler struct {
	carts   *store.Store[model.Cart]
	models  *store.Store[model.CartModel]
	courses *store.Store[model.GolfCourse]
}

func NewCartHandler(carts *store.Store[model.Cart], models *store.Store[model.CartModel], courses *store.Store[model.GolfCourse]) *CartHandler {
	return &CartHandler{carts: carts, models: models, courses: courses}
}

func (h *CartHandler) Register(rg *gin.RouterGroup) {
	g := rg.Group("/carts")
	g.GET("", h.List)
	g.POST("", h.Create)
	g.GET("/:id", h.Get)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
	g.PATCH("/:id/status", h.PatchStatus)
	g.GET("/:id/battery", h.Battery)
	g.GET("/:id/location", h.Location)
}

// RegisterScoped mounts the per-golf-course cart routes. The param name
// must match the golf-course routes since gin shares the route tree.
func (h *CartHandler) RegisterScoped(rg *gin.RouterGroup) {
	g := rg.Group("/golf-courses/:id/carts")
	g.GET("", h.ListScoped)
	g.POST("", h.AddScoped)
	g.PATCH("/:cartId/status", h.PatchStatusScoped)
	g.DELETE("/:cartId", h.RemoveScoped)
}

// batteryBucket classifies a battery level for the list filter.
func batteryBucket(level int) string {
	switch {
	case level < 30:
		return "low"
	case level < 70:
		return "medium"
	default:
		return "high"
	}
}

func (h *CartHandler) enrich(ct model.Cart) model.Cart {
	ct.GolfCourseName = golfCourseName(h.courses, ct.GolfCourseID)
	return ct
}

func (h *CartHandler) List(c *gin.Context) {
	q := parseListQuery(c)
	var extra []func(model.Cart) bool
	if gcID := c.Query("golfCourseId"); gcID != "" {
		extra = append(extra, func(ct model.Cart) bool { return ct.GolfCourseID == gcID })
	}
	if bl := c.Query("batteryLevel"); bl != "" && bl != "all" {
		extra = append(extra, func(ct model.Cart) bool { return batteryBucket(ct.Battery.Level) == bl })
	}
	page := h.carts.List(q, extra...)
	for i := range page.Items {
		page.Items[i] = h.enrich(page.Items[i])
	}
	ok(c, page)
}

func (h *CartHandler) Create(c *gin.Context) {
	var req model.Cart
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, "요청 본문이 올바르지 않습니다.")
		return
	}
	if strings.TrimSpace(req.CartNumber) == "" {
		validationError(c, "카트 번호는 필수입니다.")
		return
	}
	req.ID = ""
	if req.Status == "" {
		req.Status = "active"
	}
	if req.ModelID != "" && req.ModelName == "" {
		if m, err := h.models.Get(req.ModelID); err == nil {
			req.ModelName = m.ModelName
		}
	}
	rec, err := h.carts.Create(req)
	if err != nil {
		failStore(c, err, "카트를 찾을 수 없습니다.", "이미 존재하는 카트 번호 또는 일련번호입니다.")
		return
	}
	created(c, h.enrich(rec), "카트가 등록되었습니다.")
}

func (h *CartHandler) Get(c *gin.Context) {
	rec, err := h.carts.Get(c.Param("id"))
	if err != nil {
		failStore(c, err, "카트를 찾을 수 없습니다.", "")
		return
	}
	ok(c, h.enrich(rec))
}

func (h *CartHandler) Update(c *gin.Context) {
	var patch model.CartPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		validationError(c, "요청 본문이 올바르지 않습니다.")
		return
	}
	rec, err := h.carts.Update(c.Param("id"), func(ct *model.Cart) {
		patch.Apply(ct)
	})
	if err != nil {
		failStore(c, err, "카트를 찾을 수 없습니다.", "이미 존재하는 카트 번호 또는 일련번호입니다.")
		return
	}
	okMessage(c, h.enrich(rec), "카트 정보가 수정되었습니다.")
}

func (h *CartHandler) Delete(c *gin.Context) {
	if err := h.carts.Delete(c.Param("id")); err != nil {
		failStore(c, err, "카트를 찾을 수 없습니다.", "")
		return
	}
	message(c, "카트가 삭제되었습니다.")
}

func (h *CartHandler) PatchStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, "status 값이 필요합니다.")
		return
	}
	rec, err := h.carts.SetStatus(c.Param("id"), req.Status)
	if err != nil {
		failStore(c, err, "카트를 찾을 수 없습니다.", "")
		return
	}
	okMessage(c, gin.H{
		"id":              rec.ID,
		"status":          rec.Status,
		"statusChangedAt": rec.UpdatedAt,
	}, "카트 상태가 업데이트되었습니다.")
}

// Battery returns the stored battery snapshot for one cart.
func (h *CartHandler) Battery(c *gin.Context) {
	rec, err := h.carts.Get(c.Param("id"))
	if err != nil {
		failStore(c, err, "카트를 찾을 수 없습니다.", "")
		return
	}
	ok(c, gin.H{
		"cartId":         rec.ID,
		"level":          rec.Battery.Level,
		"voltage":        rec.Battery.Voltage,
		"status":         rec.Battery.Status,
		"isCharging":     rec.Battery.IsCharging,
		"estimatedRange": rec.Battery.EstimatedRange,
		"cycles":         rec.Battery.Cycles,
		"health":         rec.Battery.Health,
		"lastChargeTime": rec.Battery.LastChargeTime,
		"lastUpdate":     rec.UpdatedAt,
	})
}

// Location returns the stored location snapshot for one cart.
func (h *CartHandler) Location(c *gin.Context) {
	rec, err := h.carts.Get(c.Param("id"))
	if err != nil {
		failStore(c, err, "카트를 찾을 수 없습니다.", "")
		return
	}
	ok(c, gin.H{
		"cartId":     rec.ID,
		"latitude":   rec.Location.Latitude,
		"longitude":  rec.Location.Longitude,
		"course":     rec.Location.Course,
		"hole":       rec.Location.Hole,
		"lastUpdate": rec.Location.LastUpdate,
	})
}

// ListScoped lists a golf course's carts with per-status counts. The
// stats block always reflects the full sub-collection, not the filtered
// view.
func (h *CartHandler) ListScoped(c *gin.Context) {
	gcID := c.Param("id")
	all := h.carts.All()

	stats := gin.H{"total": 0, "active": 0, "maintenance": 0, "broken": 0, "inactive": 0}
	var scoped []model.Cart
	for _, ct := range all {
		if ct.GolfCourseID != gcID {
			continue
		}
		scoped = append(scoped, ct)
		stats["total"] = stats["total"].(int) + 1
		switch ct.Status {
		case "active", "maintenance", "broken", "inactive":
			stats[ct.Status] = stats[ct.Status].(int) + 1
		}
	}

	status := c.Query("status")
	modelID := c.Query("modelId")
	items := make([]model.Cart, 0, len(scoped))
	for _, ct := range scoped {
		if status != "" && status != "all" && ct.Status != status {
			continue
		}
		if modelID != "" && ct.ModelID != modelID {
			continue
		}
		items = append(items, h.enrich(ct))
	}

	ok(c, gin.H{"items": items, "total": len(items), "stats": stats})
}

type addCartRequest struct {
	CartNumber   string `json:"cartNumber" binding:"required"`
	SerialNumber string `json:"serialNumber" binding:"required"`
	ModelID      string `json:"modelId" binding:"required"`
	Notes        string `json:"notes"`
}

func (h *CartHandler) AddScoped(c *gin.Context) {
	gcID := c.Param("id")
	var req addCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, "cartNumber, serialNumber, modelId는 필수입니다.")
		return
	}
	m, err := h.models.Get(req.ModelID)
	if err != nil {
		validationError(c, "유효하지 않은 카트 모델입니다.")
		return
	}
	rec, err := h.carts.Create(model.Cart{
		GolfCourseID: gcID,
		CartNumber:   req.CartNumber,
		SerialNumber: req.SerialNumber,
		ModelID:      m.ID,
		ModelName:    m.ModelName,
		Status:       "active",
		Notes:        req.Notes,
	})
	if err != nil {
		failStore(c, err, "카트를 찾을 수 없습니다.", "이미 존재하는 카트 번호 또는 일련번호입니다.")
		return
	}
	created(c, h.enrich(rec), "카트가 골프장에 추가되었습니다.")
}

func (h *CartHandler) PatchStatusScoped(c *gin.Context) {
	gcID := c.Param("id")
	cartID := c.Param("cartId")
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, "status 값이 필요합니다.")
		return
	}
	if !h.inCourse(cartID, gcID) {
		fail(c, http.StatusNotFound, "NOT_FOUND", "카트를 찾을 수 없습니다.")
		return
	}
	rec, err := h.carts.SetStatus(cartID, req.Status)
	if err != nil {
		failStore(c, err, "카트를 찾을 수 없습니다.", "")
		return
	}
	okMessage(c, h.enrich(rec), "카트 상태가 업데이트되었습니다.")
}

func (h *CartHandler) RemoveScoped(c *gin.Context) {
	gcID := c.Param("id")
	cartID := c.Param("cartId")
	rec, err := h.carts.Get(cartID)
	if err != nil || rec.GolfCourseID != gcID {
		fail(c, http.StatusNotFound, "NOT_FOUND", "카트를 찾을 수 없습니다.")
		return
	}
	if err := h.carts.Delete(cartID); err != nil {
		failStore(c, err, "카트를 찾을 수 없습니다.", "")
		return
	}
	okMessage(c, h.enrich(rec), "카트가 골프장에서 제거되었습니다.")
}

func (h *CartHandler) inCourse(cartID, gcID string) bool {
	rec, err := h.carts.Get(cartID)
	return err == nil && rec.GolfCourseID == gcID
}
