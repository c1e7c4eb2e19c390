package model

import (
	"fmt"

	"github.com/dycart/fleet-backoffice/internal/store"
)

// Cart is the canonical cart record. The source modeled carts three
// different ways (fleet list, detail view, golf-course sub-list); this is
// the merged, most complete shape.
type Cart struct {
	ID             string         `json:"id"`
	CartNumber     string         `json:"cartNumber"`
	SerialNumber   string         `json:"serialNumber"`
	ModelID        string         `json:"modelId"`
	ModelName      string         `json:"modelName"`
	Manufacturer   string         `json:"manufacturer"`
	GolfCourseID   string         `json:"golfCourseId"`
	GolfCourseName string         `json:"golfCourseName"` // enriched from the golf-course collection
	Status         string         `json:"status"`
	Battery        CartBattery    `json:"battery"`
	Location       CartLocation   `json:"location"`
	UsageStats     CartUsageStats `json:"usageStats"`
	LastMaintenance string        `json:"lastMaintenance"`
	NextMaintenance string        `json:"nextMaintenance"`
	DeployedAt     string         `json:"deployedAt"`
	Notes          string         `json:"notes"`
	CreatedAt      string         `json:"createdAt"`
	UpdatedAt      string         `json:"updatedAt"`
}

type CartBattery struct {
	Level          int     `json:"level"`
	Status         string  `json:"status"`
	Voltage        float64 `json:"voltage"`
	IsCharging     bool    `json:"isCharging"`
	LastChargeTime string  `json:"lastChargeTime"`
	EstimatedRange int     `json:"estimatedRange"`
	Cycles         int     `json:"cycles"`
	Health         int     `json:"health"`
}

type CartLocation struct {
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	Course     string  `json:"course"`
	Hole       int     `json:"hole"`
	LastUpdate string  `json:"lastUpdate"`
}

type CartUsageStats struct {
	TotalDistance float64 `json:"totalDistance"`
	TotalHours    float64 `json:"totalHours"`
	TodayDistance float64 `json:"todayDistance"`
	TodayHours    float64 `json:"todayHours"`
}

// CartPatch is the partial-update shape for carts.
type CartPatch struct {
	CartNumber      *string         `json:"cartNumber"`
	SerialNumber    *string         `json:"serialNumber"`
	ModelID         *string         `json:"modelId"`
	ModelName       *string         `json:"modelName"`
	Manufacturer    *string         `json:"manufacturer"`
	GolfCourseID    *string         `json:"golfCourseId"`
	Status          *string         `json:"status"`
	Battery         *CartBattery    `json:"battery"`
	Location        *CartLocation   `json:"location"`
	UsageStats      *CartUsageStats `json:"usageStats"`
	LastMaintenance *string         `json:"lastMaintenance"`
	NextMaintenance *string         `json:"nextMaintenance"`
	DeployedAt      *string         `json:"deployedAt"`
	Notes           *string         `json:"notes"`
}

func (p CartPatch) Apply(c *Cart) {
	if p.CartNumber != nil {
		c.CartNumber = *p.CartNumber
	}
	if p.SerialNumber != nil {
		c.SerialNumber = *p.SerialNumber
	}
	if p.ModelID != nil {
		c.ModelID = *p.ModelID
	}
	if p.ModelName != nil {
		c.ModelName = *p.ModelName
	}
	if p.Manufacturer != nil {
		c.Manufacturer = *p.Manufacturer
	}
	if p.GolfCourseID != nil {
		c.GolfCourseID = *p.GolfCourseID
	}
	if p.Status != nil {
		c.Status = *p.Status
	}
	if p.Battery != nil {
		c.Battery = *p.Battery
	}
	if p.Location != nil {
		c.Location = *p.Location
	}
	if p.UsageStats != nil {
		c.UsageStats = *p.UsageStats
	}
	if p.LastMaintenance != nil {
		c.LastMaintenance = *p.LastMaintenance
	}
	if p.NextMaintenance != nil {
		c.NextMaintenance = *p.NextMaintenance
	}
	if p.DeployedAt != nil {
		c.DeployedAt = *p.DeployedAt
	}
	if p.Notes != nil {
		c.Notes = *p.Notes
	}
}

// CartStore is the collection engine configuration for carts. Cart number
// and serial number are unique within a golf course, so the uniqueness keys
// are scoped by golfCourseId.
func CartStore(path string) store.Config[Cart] {
	return store.Config[Cart]{
		Name:     "cart",
		Path:     path,
		Seed:     SeedCarts(),
		IDPrefix: "CART",
		ID:       func(c Cart) string { return c.ID },
		SetID:    func(c *Cart, id string) { c.ID = id },
		Stamp:    func(c *Cart, ts string) { c.CreatedAt, c.UpdatedAt = ts, ts },
		Touch:    func(c *Cart, ts string) { c.UpdatedAt = ts },
		Status:   func(c Cart) string { return c.Status },
		SetStatus: func(c *Cart, st string) { c.Status = st },
		Search: func(c Cart) []string {
			return []string{c.CartNumber, c.SerialNumber, c.ModelName, c.Manufacturer}
		},
		SortKey: func(c Cart, field string) (string, bool) {
			switch field {
			case "cartNumber":
				return c.CartNumber, true
			case "modelName":
				return c.ModelName, true
			case "status":
				return c.Status, true
			case "batteryLevel":
				return fmt.Sprintf("%012d", c.Battery.Level), true
			case "createdAt":
				return c.CreatedAt, true
			case "updatedAt":
				return c.UpdatedAt, true
			}
			return "", false
		},
		Unique: []store.UniqueRule[Cart]{
			{Field: "cartNumber", Key: func(c Cart) string {
				if c.GolfCourseID == "" || c.CartNumber == "" {
					return ""
				}
				return c.GolfCourseID + "/" + c.CartNumber
			}},
			{Field: "serialNumber", Key: func(c Cart) string {
				if c.GolfCourseID == "" || c.SerialNumber == "" {
					return ""
				}
				return c.GolfCourseID + "/" + c.SerialNumber
			}},
		},
	}
}
