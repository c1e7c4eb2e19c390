package model

import (
	"github.com/dycart/fleet-backoffice/internal/store"
)

// User is a backoffice account. The hashed password is persisted with the
// collection but stripped from API responses via Public.
type User struct {
	ID             string `json:"id"`
	Email          string `json:"email"`
	Name           string `json:"name"`
	Role           string `json:"role"` // ADMIN | MANAGER | VIEWER
	Status         string `json:"status"`
	Phone          string `json:"phone"`
	Department     string `json:"department"`
	GolfCourseID   string `json:"golfCourseId,omitempty"`
	LastLoginAt    string `json:"lastLoginAt,omitempty"`
	CreatedAt      string `json:"createdAt"`
	UpdatedAt      string `json:"updatedAt"`
	HashedPassword string `json:"hashedPassword,omitempty"`
}

// Public returns a copy safe to serialize in responses.
func (u User) Public() User {
	u.HashedPassword = ""
	return u
}

// UserStore is the collection engine configuration for users. Email is the
// secondary unique key.
func UserStore(path string) store.Config[User] {
	return store.Config[User]{
		Name:     "user",
		Path:     path,
		Seed:     SeedUsers(),
		IDPrefix: "USER",
		ID:       func(u User) string { return u.ID },
		SetID:    func(u *User, id string) { u.ID = id },
		Stamp:    func(u *User, ts string) { u.CreatedAt, u.UpdatedAt = ts, ts },
		Touch:    func(u *User, ts string) { u.UpdatedAt = ts },
		Status:   func(u User) string { return u.Status },
		SetStatus: func(u *User, st string) { u.Status = st },
		Search: func(u User) []string {
			return []string{u.Email, u.Name, u.Department}
		},
		SortKey: func(u User, field string) (string, bool) {
			switch field {
			case "email":
				return u.Email, true
			case "name":
				return u.Name, true
			case "role":
				return u.Role, true
			case "status":
				return u.Status, true
			case "createdAt":
				return u.CreatedAt, true
			}
			return "", false
		},
		Unique: []store.UniqueRule[User]{
			{Field: "email", Key: func(u User) string { return u.Email }},
		},
	}
}
