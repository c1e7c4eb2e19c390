package model

import (
	"fmt"

	"github.com/dycart/fleet-backoffice/internal/store"
)

// GolfCourse is the canonical golf-course record. Sub-objects follow the
// final schema used by the backoffice frontend.
type GolfCourse struct {
	ID           string      `json:"id"`
	CourseName   string      `json:"courseName"`
	CourseNameEn string      `json:"courseNameEn"`
	CourseCode   string      `json:"courseCode"`
	Address      Address     `json:"address"`
	Contact      Contact     `json:"contact"`
	Location     Location    `json:"location"`
	Operation    Operation   `json:"operation"`
	Environment  Environment `json:"environment"`
	TotalCarts   int         `json:"totalCarts"`
	ActiveCarts  int         `json:"activeCarts"`
	Status       string      `json:"status"`
	CreatedAt    string      `json:"createdAt"`
	UpdatedAt    string      `json:"updatedAt"`
}

type Address struct {
	Zipcode  string `json:"zipcode"`
	Address1 string `json:"address1"`
	Address2 string `json:"address2"`
}

type Contact struct {
	Phone string `json:"phone"`
	Fax   string `json:"fax,omitempty"`
	Email string `json:"email"`
}

type Location struct {
	Latitude         float64 `json:"latitude"`
	Longitude        float64 `json:"longitude"`
	Altitude         float64 `json:"altitude,omitempty"`
	CoordinateSystem string  `json:"coordinateSystem"`
}

type Operation struct {
	TotalHoles     int            `json:"totalHoles"`
	OperatingHours OperatingHours `json:"operatingHours"`
	ClosedDays     string         `json:"closedDays"`
	CartPolicy     CartPolicy     `json:"cartPolicy"`
}

type OperatingHours struct {
	Summer string `json:"summer"`
	Winter string `json:"winter"`
}

type CartPolicy struct {
	FairwayAccess bool   `json:"fairwayAccess"`
	RainPolicy    string `json:"rainPolicy"`
	MaxSpeed      int    `json:"maxSpeed"` // km/h
}

type Environment struct {
	Terrain        []string       `json:"terrain"`
	GPSShadedAreas GPSShadedAreas `json:"gpsShadedAreas"`
	SpecialNotes   string         `json:"specialNotes"`
}

type GPSShadedAreas struct {
	Count     int    `json:"count"`
	Locations string `json:"locations"`
}

// GolfCoursePatch is the partial-update shape. A nil field is untouched;
// present sub-objects replace the stored ones wholesale (shallow merge).
type GolfCoursePatch struct {
	CourseName   *string      `json:"courseName"`
	CourseNameEn *string      `json:"courseNameEn"`
	CourseCode   *string      `json:"courseCode"`
	Address      *Address     `json:"address"`
	Contact      *Contact     `json:"contact"`
	Location     *Location    `json:"location"`
	Operation    *Operation   `json:"operation"`
	Environment  *Environment `json:"environment"`
	TotalCarts   *int         `json:"totalCarts"`
	ActiveCarts  *int         `json:"activeCarts"`
	Status       *string      `json:"status"`
}

// Apply overlays the patch onto the record.
func (p GolfCoursePatch) Apply(g *GolfCourse) {
	if p.CourseName != nil {
		g.CourseName = *p.CourseName
	}
	if p.CourseNameEn != nil {
		g.CourseNameEn = *p.CourseNameEn
	}
	if p.CourseCode != nil {
		g.CourseCode = *p.CourseCode
	}
	if p.Address != nil {
		g.Address = *p.Address
	}
	if p.Contact != nil {
		g.Contact = *p.Contact
	}
	if p.Location != nil {
		g.Location = *p.Location
	}
	if p.Operation != nil {
		g.Operation = *p.Operation
	}
	if p.Environment != nil {
		g.Environment = *p.Environment
	}
	if p.TotalCarts != nil {
		g.TotalCarts = *p.TotalCarts
	}
	if p.ActiveCarts != nil {
		g.ActiveCarts = *p.ActiveCarts
	}
	if p.Status != nil {
		g.Status = *p.Status
	}
}

// GolfCourseStore is the collection engine configuration for golf courses.
// Both courseName and courseCode are unique within the collection.
func GolfCourseStore(path string) store.Config[GolfCourse] {
	return store.Config[GolfCourse]{
		Name:     "golf-course",
		Path:     path,
		Seed:     SeedGolfCourses(),
		IDPrefix: "GC",
		ID:       func(g GolfCourse) string { return g.ID },
		SetID:    func(g *GolfCourse, id string) { g.ID = id },
		Stamp:    func(g *GolfCourse, ts string) { g.CreatedAt, g.UpdatedAt = ts, ts },
		Touch:    func(g *GolfCourse, ts string) { g.UpdatedAt = ts },
		Status:   func(g GolfCourse) string { return g.Status },
		SetStatus: func(g *GolfCourse, st string) { g.Status = st },
		Search: func(g GolfCourse) []string {
			return []string{g.CourseName, g.CourseNameEn, g.CourseCode, g.Address.Address1}
		},
		SortKey: func(g GolfCourse, field string) (string, bool) {
			switch field {
			case "courseName":
				return g.CourseName, true
			case "courseCode":
				return g.CourseCode, true
			case "status":
				return g.Status, true
			case "totalCarts":
				return fmt.Sprintf("%012d", g.TotalCarts), true
			case "createdAt":
				return g.CreatedAt, true
			case "updatedAt":
				return g.UpdatedAt, true
			}
			return "", false
		},
		Unique: []store.UniqueRule[GolfCourse]{
			{Field: "courseName", Key: func(g GolfCourse) string { return g.CourseName }},
			{Field: "courseCode", Key: func(g GolfCourse) string { return g.CourseCode }},
		},
	}
}
