package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddress_Search(t *testing.T) {
	e := newTestEnv(t)

	w := e.doJSON(t, http.MethodGet, "/api/address/search?postalCode=06234", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	data := dataOf(t, w)
	require.Equal(t, "06234", data["postalCode"])
	require.NotEmpty(t, data["address"])

	w = e.doJSON(t, http.MethodGet, "/api/address/search", nil, "")
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAddress_ReverseGeocode(t *testing.T) {
	e := newTestEnv(t)

	w := e.doJSON(t, http.MethodGet, "/api/address/reverse-geocode?lat=37.5&lng=127.05", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	coords := dataOf(t, w)["coordinates"].(map[string]interface{})
	require.EqualValues(t, 37.5, coords["latitude"])
	require.EqualValues(t, 127.05, coords["longitude"])

	w = e.doJSON(t, http.MethodGet, "/api/address/reverse-geocode?lat=abc&lng=127.05", nil, "")
	require.Equal(t, http.StatusBadRequest, w.Code)
}
