package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestMaps_ListAndTypeFilter(t *testing.T) {
	e := newTestEnv(t)

	w := e.doJSON(t, http.MethodGet, "/api/maps", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.EqualValues(t, 3, dataOf(t, w)["total"])

	w = e.doJSON(t, http.MethodGet, "/api/maps?type=SATELLITE", nil, "")
	data := dataOf(t, w)
	require.EqualValues(t, 1, data["total"])
	item := data["items"].([]interface{})[0].(map[string]interface{})
	require.Equal(t, "MAP-003", item["id"])
	require.Equal(t, "마운틴 골프클럽", item["golfCourseName"])

	w = e.doJSON(t, http.MethodGet, "/api/maps?golfCourseId=GC-001", nil, "")
	require.EqualValues(t, 1, dataOf(t, w)["total"])
}

func TestMaps_CreateUpdateDelete(t *testing.T) {
	e := newTestEnv(t)

	w := e.doJSON(t, http.MethodPost, "/api/maps", gin.H{
		"name":         "그린필드 야간 맵",
		"golfCourseId": "GC-001",
		"type":         "2D",
		"version":      "0.1.0",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)
	data := dataOf(t, w)
	require.Equal(t, "MAP-004", data["id"])
	require.Equal(t, "그린필드 골프클럽", data["golfCourseName"])

	w = e.doJSON(t, http.MethodPut, "/api/maps/MAP-004", gin.H{"version": "0.2.0"}, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "0.2.0", dataOf(t, w)["version"])

	w = e.doJSON(t, http.MethodDelete, "/api/maps/MAP-004", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, 3, e.maps.Size())

	// name is required
	w = e.doJSON(t, http.MethodPost, "/api/maps", gin.H{"type": "2D"}, "")
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func multipartBody(t *testing.T, field, filename string, content []byte, extra map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	for k, v := range extra {
		require.NoError(t, mw.WriteField(k, v))
	}
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestMaps_UploadImage(t *testing.T) {
	e := newTestEnv(t)

	body, contentType := multipartBody(t, "image", "course.jpg", []byte("jpeg-bytes"), map[string]string{"mapId": "MAP-001"})
	req := httptest.NewRequest(http.MethodPost, "/api/maps/upload-image", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	data := dataOf(t, w)
	url, _ := data["url"].(string)
	require.True(t, strings.HasPrefix(url, "/uploads/maps/images/"), "unexpected url %q", url)
	require.Equal(t, "course.jpg", data["filename"])

	// the file landed in the upload root under the returned key
	key := strings.TrimPrefix(url, "/uploads/")
	b, err := os.ReadFile(filepath.Join(e.uploads, filepath.FromSlash(key)))
	require.NoError(t, err)
	require.Equal(t, "jpeg-bytes", string(b))

	// the map record now points at the new image
	rec, err := e.maps.Get("MAP-001")
	require.NoError(t, err)
	require.Equal(t, url, rec.ImageURL)
}

func TestMaps_UploadImage_MissingFile(t *testing.T) {
	e := newTestEnv(t)

	req := httptest.NewRequest(http.MethodPost, "/api/maps/upload-image", strings.NewReader(""))
	req.Header.Set("Content-Type", "multipart/form-data; boundary=x")
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMaps_UploadMetadata(t *testing.T) {
	e := newTestEnv(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for _, name := range []string{"hole1.json", "hole2.json", "readme.txt"} {
		fw, err := mw.CreateFormFile("metadata", name)
		require.NoError(t, err)
		_, err = fw.Write([]byte("content-of-" + name))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/maps/upload-metadata", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	data := dataOf(t, w)
	require.EqualValues(t, 3, data["fileCount"])
	require.EqualValues(t, 2, data["jsonFileCount"])
	require.Len(t, data["files"].([]interface{}), 3)
}
