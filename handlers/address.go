package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// AddressHandler answers address lookups with canned data. There is no
// geocoding provider behind this; the frontend only needs a plausible
// response shape.
type AddressHandler struct{}

func NewAddressHandler() *AddressHandler {
	return &AddressHandler{}
}

func (h *AddressHandler) Register(rg *gin.RouterGroup) {
	g := rg.Group("/address")
	g.GET("/search", h.Search)
	g.GET("/reverse-geocode", h.ReverseGeocode)
}

func (h *AddressHandler) Search(c *gin.Context) {
	postal := c.Query("postalCode")
	if postal == "" {
		validationError(c, "postalCode가 필요합니다.")
		return
	}
	ok(c, gin.H{
		"postalCode":     postal,
		"address":        "서울특별시 강남구 테헤란로",
		"englishAddress": "Teheran-ro, Gangnam-gu, Seoul",
		"addressType":    "ROAD",
		"latitude":       37.5065,
		"longitude":      127.0539,
	})
}

func (h *AddressHandler) ReverseGeocode(c *gin.Context) {
	lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
	lng, lngErr := strconv.ParseFloat(c.Query("lng"), 64)
	if latErr != nil || lngErr != nil {
		validationError(c, "lat, lng가 필요합니다.")
		return
	}
	ok(c, gin.H{
		"address":     "서울특별시 강남구 테헤란로 123",
		"postalCode":  "06234",
		"addressType": "ROAD",
		"building":    "골프빌딩",
		"coordinates": gin.H{"latitude": lat, "longitude": lng},
	})
}
