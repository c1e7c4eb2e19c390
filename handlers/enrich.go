package handlers

import (
	"github.com/dycart/fleet-backoffice/internal/model"
	"github.com/dycart/fleet-backoffice/internal/store"
)

// golfCourseName resolves a golf-course id to its display name. An unknown
// id echoes back as the name; the join never fails a request over a
// dangling reference.
func golfCourseName(courses *store.Store[model.GolfCourse], id string) string {
	if id == "" {
		return ""
	}
	if gc, err := courses.Get(id); err == nil {
		return gc.CourseName
	}
	return id
}
