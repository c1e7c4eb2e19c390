package model

import (
	"fmt"

	"github.com/dycart/fleet-backoffice/internal/store"
)

// CartModel describes a cart product model.
type CartModel struct {
	ID        string         `json:"id"`
	ModelName string         `json:"modelName"`
	ModelCode string         `json:"modelCode"`
	Year      int            `json:"year"`
	Specs     CartModelSpecs `json:"specs"`
	Features  []string       `json:"features"`
	Status    string         `json:"status"` // active | discontinued
	CreatedAt string         `json:"createdAt"`
	UpdatedAt string         `json:"updatedAt"`
}

type CartModelSpecs struct {
	MaxSpeed    int    `json:"maxSpeed"`
	BatteryType string `json:"batteryType"`
	Seats       int    `json:"seats"`
}

// CartModelPatch is the partial-update shape. The specs sub-object is
// replaced wholesale when present.
type CartModelPatch struct {
	ModelName *string         `json:"modelName"`
	ModelCode *string         `json:"modelCode"`
	Year      *int            `json:"year"`
	Specs     *CartModelSpecs `json:"specs"`
	Features  *[]string       `json:"features"`
	Status    *string         `json:"status"`
}

func (p CartModelPatch) Apply(m *CartModel) {
	if p.ModelName != nil {
		m.ModelName = *p.ModelName
	}
	if p.ModelCode != nil {
		m.ModelCode = *p.ModelCode
	}
	if p.Year != nil {
		m.Year = *p.Year
	}
	if p.Specs != nil {
		m.Specs = *p.Specs
	}
	if p.Features != nil {
		m.Features = *p.Features
	}
	if p.Status != nil {
		m.Status = *p.Status
	}
}

// CartModelStore is the collection engine configuration for cart models.
// modelCode is unique across the collection.
func CartModelStore(path string) store.Config[CartModel] {
	return store.Config[CartModel]{
		Name:     "cart-model",
		Path:     path,
		Seed:     SeedCartModels(),
		IDPrefix: "MODEL",
		ID:       func(m CartModel) string { return m.ID },
		SetID:    func(m *CartModel, id string) { m.ID = id },
		Stamp:    func(m *CartModel, ts string) { m.CreatedAt, m.UpdatedAt = ts, ts },
		Touch:    func(m *CartModel, ts string) { m.UpdatedAt = ts },
		Status:   func(m CartModel) string { return m.Status },
		SetStatus: func(m *CartModel, st string) { m.Status = st },
		Search: func(m CartModel) []string {
			return []string{m.ModelName, m.ModelCode}
		},
		SortKey: func(m CartModel, field string) (string, bool) {
			switch field {
			case "modelName":
				return m.ModelName, true
			case "modelCode":
				return m.ModelCode, true
			case "year":
				return fmt.Sprintf("%012d", m.Year), true
			case "status":
				return m.Status, true
			case "createdAt":
				return m.CreatedAt, true
			case "updatedAt":
				return m.UpdatedAt, true
			}
			return "", false
		},
		Unique: []store.UniqueRule[CartModel]{
			{Field: "modelCode", Key: func(m CartModel) string { return m.ModelCode }},
		},
	}
}
