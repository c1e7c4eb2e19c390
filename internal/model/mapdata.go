package model

import (
	"fmt"

	"github.com/dycart/fleet-backoffice/internal/store"
)

// MapData describes a course map asset (image + metadata bundle).
type MapData struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Description    string     `json:"description"`
	GolfCourseID   string     `json:"golfCourseId"`
	GolfCourseName string     `json:"golfCourseName"` // enriched from the golf-course collection
	Type           string     `json:"type"`           // 3D | 2D | SATELLITE
	Version        string     `json:"version"`
	ImageURL       string     `json:"imageUrl"`
	ThumbnailURL   string     `json:"thumbnailUrl"`
	MetadataURL    string     `json:"metadataUrl"`
	Bounds         MapBounds  `json:"bounds"`
	Layers         []MapLayer `json:"layers"`
	FileSize       int64      `json:"fileSize"`
	Resolution     string     `json:"resolution"`
	CreatedAt      string     `json:"createdAt"`
	UpdatedAt      string     `json:"updatedAt"`
}

type MapBounds struct {
	North float64 `json:"north"`
	South float64 `json:"south"`
	East  float64 `json:"east"`
	West  float64 `json:"west"`
}

type MapLayer struct {
	Name    string `json:"name"`
	Visible bool   `json:"visible"`
	Type    string `json:"type"`
}

// MapPatch is the partial-update shape for maps.
type MapPatch struct {
	Name         *string     `json:"name"`
	Description  *string     `json:"description"`
	GolfCourseID *string     `json:"golfCourseId"`
	Type         *string     `json:"type"`
	Version      *string     `json:"version"`
	ImageURL     *string     `json:"imageUrl"`
	ThumbnailURL *string     `json:"thumbnailUrl"`
	MetadataURL  *string     `json:"metadataUrl"`
	Bounds       *MapBounds  `json:"bounds"`
	Layers       *[]MapLayer `json:"layers"`
	FileSize     *int64      `json:"fileSize"`
	Resolution   *string     `json:"resolution"`
}

func (p MapPatch) Apply(m *MapData) {
	if p.Name != nil {
		m.Name = *p.Name
	}
	if p.Description != nil {
		m.Description = *p.Description
	}
	if p.GolfCourseID != nil {
		m.GolfCourseID = *p.GolfCourseID
	}
	if p.Type != nil {
		m.Type = *p.Type
	}
	if p.Version != nil {
		m.Version = *p.Version
	}
	if p.ImageURL != nil {
		m.ImageURL = *p.ImageURL
	}
	if p.ThumbnailURL != nil {
		m.ThumbnailURL = *p.ThumbnailURL
	}
	if p.MetadataURL != nil {
		m.MetadataURL = *p.MetadataURL
	}
	if p.Bounds != nil {
		m.Bounds = *p.Bounds
	}
	if p.Layers != nil {
		m.Layers = *p.Layers
	}
	if p.FileSize != nil {
		m.FileSize = *p.FileSize
	}
	if p.Resolution != nil {
		m.Resolution = *p.Resolution
	}
}

// MapStore is the collection engine configuration for maps. Maps have no
// status field, so the status filter is a no-op for this resource.
func MapStore(path string) store.Config[MapData] {
	return store.Config[MapData]{
		Name:     "map",
		Path:     path,
		Seed:     SeedMaps(),
		IDPrefix: "MAP",
		ID:       func(m MapData) string { return m.ID },
		SetID:    func(m *MapData, id string) { m.ID = id },
		Stamp:    func(m *MapData, ts string) { m.CreatedAt, m.UpdatedAt = ts, ts },
		Touch:    func(m *MapData, ts string) { m.UpdatedAt = ts },
		Search: func(m MapData) []string {
			return []string{m.Name, m.Description, m.GolfCourseName}
		},
		SortKey: func(m MapData, field string) (string, bool) {
			switch field {
			case "name":
				return m.Name, true
			case "type":
				return m.Type, true
			case "version":
				return m.Version, true
			case "fileSize":
				return fmt.Sprintf("%015d", m.FileSize), true
			case "createdAt":
				return m.CreatedAt, true
			case "updatedAt":
				return m.UpdatedAt, true
			}
			return "", false
		},
	}
}
