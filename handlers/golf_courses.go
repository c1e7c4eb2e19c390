package handlers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dycart/fleet-backoffice/internal/model"
	"github.com/dycart/fleet-backoffice/internal/store"
)

// GolfCourseHandler serves the golf-course collection.
type GolfCourseHandler struct {
	courses *store.Store[model.GolfCourse]
}

func NewGolfCourseHandler(courses *store.Store[model.GolfCourse]) *GolfCourseHandler {
	return &GolfCourseHandler{courses: courses}
}

func (h *GolfCourseHandler) Register(rg *gin.RouterGroup) {
	g := rg.Group("/golf-courses")
	g.GET("", h.List)
	g.POST("", h.Create)
	g.GET("/check-duplicate", h.CheckDuplicate)
	g.GET("/generate-code", h.GenerateCode)
	g.POST("/bulk-delete", h.BulkDelete)
	g.GET("/:id", h.Get)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
	g.PATCH("/:id/status", h.PatchStatus)
}

func (h *GolfCourseHandler) List(c *gin.Context) {
	ok(c, h.courses.List(parseListQuery(c)))
}

func (h *GolfCourseHandler) Create(c *gin.Context) {
	var req model.GolfCourse
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, "요청 본문이 올바르지 않습니다.")
		return
	}
	if strings.TrimSpace(req.CourseName) == "" || strings.TrimSpace(req.CourseCode) == "" {
		validationError(c, "골프장 이름과 코드는 필수입니다.")
		return
	}
	req.ID = ""
	if req.Status == "" {
		req.Status = "active"
	}
	rec, err := h.courses.Create(req)
	if err != nil {
		failStore(c, err, "골프장을 찾을 수 없습니다.", "이미 존재하는 골프장 이름 또는 코드입니다.")
		return
	}
	created(c, rec, "골프장이 생성되었습니다.")
}

// CheckDuplicate answers the pre-submit duplicate probe for name and code.
// excludeId lets the edit form skip the record being edited.
func (h *GolfCourseHandler) CheckDuplicate(c *gin.Context) {
	name := c.Query("name")
	code := c.Query("code")
	excludeID := c.Query("excludeId")
	dup := false
	for _, gc := range h.courses.All() {
		if gc.ID == excludeID {
			continue
		}
		if (name != "" && gc.CourseName == name) || (code != "" && gc.CourseCode == code) {
			dup = true
			break
		}
	}
	ok(c, gin.H{"isDuplicate": dup})
}

// GenerateCode proposes the next free course code, GC-NNN.
func (h *GolfCourseHandler) GenerateCode(c *gin.Context) {
	max := 0
	for _, gc := range h.courses.All() {
		if !strings.HasPrefix(gc.CourseCode, "GC-") {
			continue
		}
		if n, err := strconv.Atoi(strings.TrimPrefix(gc.CourseCode, "GC-")); err == nil && n > max {
			max = n
		}
	}
	ok(c, gin.H{"code": fmt.Sprintf("GC-%03d", max+1)})
}

func (h *GolfCourseHandler) Get(c *gin.Context) {
	rec, err := h.courses.Get(c.Param("id"))
	if err != nil {
		failStore(c, err, "골프장을 찾을 수 없습니다.", "")
		return
	}
	ok(c, rec)
}

func (h *GolfCourseHandler) Update(c *gin.Context) {
	var patch model.GolfCoursePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		validationError(c, "요청 본문이 올바르지 않습니다.")
		return
	}
	rec, err := h.courses.Update(c.Param("id"), func(gc *model.GolfCourse) {
		patch.Apply(gc)
	})
	if err != nil {
		failStore(c, err, "골프장을 찾을 수 없습니다.", "이미 존재하는 골프장 이름 또는 코드입니다.")
		return
	}
	okMessage(c, rec, "골프장 정보가 수정되었습니다.")
}

func (h *GolfCourseHandler) Delete(c *gin.Context) {
	if err := h.courses.Delete(c.Param("id")); err != nil {
		failStore(c, err, "골프장을 찾을 수 없습니다.", "")
		return
	}
	message(c, "골프장이 삭제되었습니다.")
}

func (h *GolfCourseHandler) BulkDelete(c *gin.Context) {
	var req struct {
		IDs []string `json:"ids" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || len(req.IDs) == 0 {
		validationError(c, "삭제할 골프장 ID 목록이 필요합니다.")
		return
	}
	n := h.courses.BulkDelete(req.IDs)
	message(c, fmt.Sprintf("%d개의 골프장이 삭제되었습니다.", n))
}

func (h *GolfCourseHandler) PatchStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, "status 값이 필요합니다.")
		return
	}
	rec, err := h.courses.SetStatus(c.Param("id"), req.Status)
	if err != nil {
		failStore(c, err, "골프장을 찾을 수 없습니다.", "")
		return
	}
	okMessage(c, rec, "골프장 상태가 변경되었습니다.")
}
