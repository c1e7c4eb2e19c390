package handlers

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"path"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dycart/fleet-backoffice/internal/model"
	"github.com/dycart/fleet-backoffice/internal/storage"
	"github.com/dycart/fleet-backoffice/internal/store"
)

// MapHandler serves course map assets. Uploaded files go through the
// configured storage backend (local disk or MinIO).
type MapHandler struct {
	maps    *store.Store[model.MapData]
	courses *store.Store[model.GolfCourse]
	files   storage.Storage
}

func NewMapHandler(maps *store.Store[model.MapData], courses *store.Store[model.GolfCourse], files storage.Storage) *MapHandler {
	return &MapHandler{maps: maps, courses: courses, files: files}
}

func (h *MapHandler) Register(rg *gin.RouterGroup) {
	g := rg.Group("/maps")
	g.GET("", h.List)
	g.POST("", h.Create)
	g.POST("/upload-image", h.UploadImage)
	g.POST("/upload-metadata", h.UploadMetadata)
	g.GET("/:id", h.Get)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

func (h *MapHandler) enrich(m model.MapData) model.MapData {
	m.GolfCourseName = golfCourseName(h.courses, m.GolfCourseID)
	return m
}

func (h *MapHandler) List(c *gin.Context) {
	q := parseListQuery(c)
	var extra []func(model.MapData) bool
	if gcID := c.Query("golfCourseId"); gcID != "" {
		extra = append(extra, func(m model.MapData) bool { return m.GolfCourseID == gcID })
	}
	if typ := c.Query("type"); typ != "" && typ != "all" {
		extra = append(extra, func(m model.MapData) bool { return m.Type == typ })
	}
	page := h.maps.List(q, extra...)
	for i := range page.Items {
		page.Items[i] = h.enrich(page.Items[i])
	}
	ok(c, page)
}

func (h *MapHandler) Create(c *gin.Context) {
	var req model.MapData
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, "요청 본문이 올바르지 않습니다.")
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		validationError(c, "맵 이름은 필수입니다.")
		return
	}
	req.ID = ""
	rec, err := h.maps.Create(req)
	if err != nil {
		failStore(c, err, "맵을 찾을 수 없습니다.", "이미 존재하는 맵입니다.")
		return
	}
	created(c, h.enrich(rec), "맵이 생성되었습니다.")
}

func (h *MapHandler) Get(c *gin.Context) {
	rec, err := h.maps.Get(c.Param("id"))
	if err != nil {
		failStore(c, err, "맵을 찾을 수 없습니다.", "")
		return
	}
	ok(c, h.enrich(rec))
}

func (h *MapHandler) Update(c *gin.Context) {
	var patch model.MapPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		validationError(c, "요청 본문이 올바르지 않습니다.")
		return
	}
	rec, err := h.maps.Update(c.Param("id"), func(m *model.MapData) {
		patch.Apply(m)
	})
	if err != nil {
		failStore(c, err, "맵을 찾을 수 없습니다.", "")
		return
	}
	okMessage(c, h.enrich(rec), "맵 정보가 수정되었습니다.")
}

func (h *MapHandler) Delete(c *gin.Context) {
	if err := h.maps.Delete(c.Param("id")); err != nil {
		failStore(c, err, "맵을 찾을 수 없습니다.", "")
		return
	}
	message(c, "맵이 삭제되었습니다.")
}

// saveUpload streams one multipart file into storage under the given key
// prefix. The random key segment keeps repeated uploads of the same
// filename from clobbering each other.
func (h *MapHandler) saveUpload(c *gin.Context, fh *multipart.FileHeader, prefix string) (string, error) {
	f, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()
	key := path.Join(prefix, uuid.NewString()+path.Ext(fh.Filename))
	return h.files.Save(c.Request.Context(), key, f, fh.Size, fh.Header.Get("Content-Type"))
}

// UploadImage stores a map image and links it to a map record when mapId
// is given.
func (h *MapHandler) UploadImage(c *gin.Context) {
	fh, err := c.FormFile("image")
	if err != nil {
		validationError(c, "image 파일이 필요합니다.")
		return
	}
	url, err := h.saveUpload(c, fh, "maps/images")
	if err != nil {
		fail(c, http.StatusInternalServerError, "UPLOAD_FAILED", "이미지 업로드에 실패했습니다.")
		return
	}

	if mapID := c.PostForm("mapId"); mapID != "" {
		_, err := h.maps.Update(mapID, func(m *model.MapData) {
			m.ImageURL = url
			m.FileSize = fh.Size
		})
		if err != nil {
			failStore(c, err, "맵을 찾을 수 없습니다.", "")
			return
		}
	}

	okMessage(c, gin.H{
		"url":      url,
		"filename": fh.Filename,
		"size":     fh.Size,
		"mimeType": fh.Header.Get("Content-Type"),
	}, "이미지가 업로드되었습니다.")
}

// UploadMetadata stores a batch of metadata files under one folder key.
func (h *MapHandler) UploadMetadata(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		validationError(c, "metadata 파일이 필요합니다.")
		return
	}
	fhs := form.File["metadata"]
	if len(fhs) == 0 {
		fhs = form.File["metadata_files"]
	}
	if len(fhs) == 0 {
		validationError(c, "metadata 파일이 필요합니다.")
		return
	}

	folder := path.Join("maps/metadata", uuid.NewString())
	var (
		files     []gin.H
		totalSize int64
		jsonCount int
	)
	for _, fh := range fhs {
		f, err := fh.Open()
		if err != nil {
			fail(c, http.StatusInternalServerError, "UPLOAD_FAILED", "메타데이터 업로드에 실패했습니다.")
			return
		}
		key := path.Join(folder, fh.Filename)
		url, err := h.files.Save(c.Request.Context(), key, f, fh.Size, fh.Header.Get("Content-Type"))
		f.Close()
		if err != nil {
			fail(c, http.StatusInternalServerError, "UPLOAD_FAILED", "메타데이터 업로드에 실패했습니다.")
			return
		}
		if strings.HasSuffix(fh.Filename, ".json") {
			jsonCount++
		}
		totalSize += fh.Size
		files = append(files, gin.H{"name": fh.Filename, "path": url, "size": fh.Size})
	}

	if mapID := c.PostForm("mapId"); mapID != "" {
		_, err := h.maps.Update(mapID, func(m *model.MapData) {
			m.MetadataURL = folder
		})
		if err != nil {
			failStore(c, err, "맵을 찾을 수 없습니다.", "")
			return
		}
	}

	okMessage(c, gin.H{
		"folderPath":    folder,
		"fileCount":     len(fhs),
		"jsonFileCount": jsonCount,
		"totalSize":     totalSize,
		"files":         files,
	}, fmt.Sprintf("메타데이터가 업로드되었습니다. (%d개 파일)", len(fhs)))
}
