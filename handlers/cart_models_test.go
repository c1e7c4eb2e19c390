package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestCartModels_ListAndGet(t *testing.T) {
	e := newTestEnv(t)

	w := e.doJSON(t, http.MethodGet, "/api/cart-models", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.EqualValues(t, 3, dataOf(t, w)["total"])

	w = e.doJSON(t, http.MethodGet, "/api/cart-models?status=discontinued", nil, "")
	require.EqualValues(t, 1, dataOf(t, w)["total"])

	w = e.doJSON(t, http.MethodGet, "/api/cart-models/MODEL-001", nil, "")
	data := dataOf(t, w)
	require.Equal(t, "DYC2024", data["modelCode"])
	specs := data["specs"].(map[string]interface{})
	require.EqualValues(t, 25, specs["maxSpeed"])
}

func TestCartModels_CreateDuplicateCode(t *testing.T) {
	e := newTestEnv(t)

	w := e.doJSON(t, http.MethodPost, "/api/cart-models", gin.H{
		"modelName": "DY-CART-2025",
		"modelCode": "DYC2024", // already taken
	}, "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "DUPLICATE_KEY", errorCode(t, w))
	require.Equal(t, 3, e.cartModels.Size())

	w = e.doJSON(t, http.MethodPost, "/api/cart-models", gin.H{
		"modelName": "DY-CART-2025",
		"modelCode": "DYC2025",
		"year":      2025,
		"specs":     gin.H{"maxSpeed": 28, "batteryType": "96V 리튬", "seats": 4},
		"features":  []string{"자율주행", "GPS"},
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)
	require.Equal(t, "MODEL-004", dataOf(t, w)["id"])
}

func TestCartModels_SpecsReplacedWholesale(t *testing.T) {
	e := newTestEnv(t)

	w := e.doJSON(t, http.MethodPut, "/api/cart-models/MODEL-002", gin.H{
		"specs": gin.H{"maxSpeed": 22},
	}, "")
	require.Equal(t, http.StatusOK, w.Code)
	specs := dataOf(t, w)["specs"].(map[string]interface{})
	require.EqualValues(t, 22, specs["maxSpeed"])
	// sub-object replacement, not a deep merge: omitted spec fields reset
	require.EqualValues(t, 0, specs["seats"])
	require.Equal(t, "", specs["batteryType"])
}

func TestCartModels_BulkDelete(t *testing.T) {
	e := newTestEnv(t)

	w := e.doJSON(t, http.MethodPost, "/api/cart-models/bulk-delete", gin.H{
		"ids": []string{"MODEL-002", "MODEL-003", "MODEL-404"},
	}, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, envelope(t, w)["message"], "2개")
	require.Equal(t, 1, e.cartModels.Size())
}
