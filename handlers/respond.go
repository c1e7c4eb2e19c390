package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dycart/fleet-backoffice/internal/store"
)

// Every endpoint answers with the same envelope:
// {success, data?, message?, error?: {code, message}}.

func ok(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

func okMessage(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data, "message": message})
}

func created(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": data, "message": message})
}

func message(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, gin.H{"success": true, "message": msg})
}

func fail(c *gin.Context, status int, code, msg string) {
	c.JSON(status, gin.H{"success": false, "error": gin.H{"code": code, "message": msg}})
}

func validationError(c *gin.Context, msg string) {
	fail(c, http.StatusBadRequest, "VALIDATION_ERROR", msg)
}

// failStore converts a store error into the envelope. notFoundMsg and dupMsg
// are the resource-specific user-facing messages.
func failStore(c *gin.Context, err error, notFoundMsg, dupMsg string) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		fail(c, http.StatusNotFound, "NOT_FOUND", notFoundMsg)
	case errors.Is(err, store.ErrDuplicateKey):
		fail(c, http.StatusBadRequest, "DUPLICATE_KEY", dupMsg)
	default:
		fail(c, http.StatusInternalServerError, "INTERNAL_ERROR", "요청 처리 중 오류가 발생했습니다.")
	}
}

// parseListQuery reads the shared list parameters. Defaults match the
// backoffice frontend: newest first, 20 per page.
func parseListQuery(c *gin.Context) store.Query {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	return store.Query{
		Search:    c.Query("search"),
		Status:    c.Query("status"),
		SortBy:    c.DefaultQuery("sortBy", "createdAt"),
		SortOrder: c.DefaultQuery("sortOrder", "desc"),
		Page:      page,
		Limit:     limit,
	}
}
