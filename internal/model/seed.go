package model

import (
	"golang.org/x/crypto/bcrypt"
)

// Seed data used to populate a backing store on first run or on read
// failure. Mirrors the original backoffice mock records.

func SeedGolfCourses() []GolfCourse {
	return []GolfCourse{
		{
			ID:           "GC-001",
			CourseName:   "그린필드 골프클럽",
			CourseNameEn: "Greenfield Golf Club",
			CourseCode:   "GC-001",
			Address:      Address{Zipcode: "06234", Address1: "서울특별시 강남구 테헤란로 123", Address2: "골프빌딩 1층"},
			Contact:      Contact{Phone: "02-1234-5678", Fax: "02-1234-5679", Email: "info@greenfield.com"},
			Location:     Location{Latitude: 37.5065, Longitude: 127.0539, CoordinateSystem: "WGS84"},
			Operation: Operation{
				TotalHoles:     18,
				OperatingHours: OperatingHours{Summer: "05:00-19:00", Winter: "06:00-18:00"},
				ClosedDays:     "매주 월요일",
				CartPolicy:     CartPolicy{FairwayAccess: false, RainPolicy: "우천 시 카트 도로만 운행", MaxSpeed: 25},
			},
			Environment: Environment{
				Terrain:        []string{"flat", "hilly"},
				GPSShadedAreas: GPSShadedAreas{Count: 2, Locations: "9번홀 터널, 클럽하우스 주변"},
				SpecialNotes:   "서울 도심에 위치한 프리미엄 골프클럽",
			},
			TotalCarts:  50,
			ActiveCarts: 42,
			Status:      "active",
			CreatedAt:   "2024-01-15T09:00:00Z",
			UpdatedAt:   "2024-01-15T09:00:00Z",
		},
		{
			ID:           "GC-002",
			CourseName:   "오션뷰 골프클럽",
			CourseNameEn: "Oceanview Golf Club",
			CourseCode:   "GC-002",
			Address:      Address{Zipcode: "48058", Address1: "부산광역시 해운대구 해변로 77", Address2: ""},
			Contact:      Contact{Phone: "051-987-6543", Email: "contact@oceanview.kr"},
			Location:     Location{Latitude: 35.1796, Longitude: 129.0756, CoordinateSystem: "WGS84"},
			Operation: Operation{
				TotalHoles:     27,
				OperatingHours: OperatingHours{Summer: "05:30-19:30", Winter: "06:30-17:30"},
				ClosedDays:     "연중무휴",
				CartPolicy:     CartPolicy{FairwayAccess: true, RainPolicy: "정상 운행", MaxSpeed: 20},
			},
			Environment: Environment{
				Terrain:        []string{"flat"},
				GPSShadedAreas: GPSShadedAreas{Count: 0, Locations: ""},
				SpecialNotes:   "해안가 코스, 강풍 주의",
			},
			TotalCarts:  65,
			ActiveCarts: 60,
			Status:      "active",
			CreatedAt:   "2024-01-08T09:00:00Z",
			UpdatedAt:   "2024-01-08T09:00:00Z",
		},
		{
			ID:           "GC-003",
			CourseName:   "마운틴 골프클럽",
			CourseNameEn: "Mountain Golf Club",
			CourseCode:   "GC-003",
			Address:      Address{Zipcode: "24408", Address1: "강원특별자치도 춘천시 산골길 9", Address2: ""},
			Contact:      Contact{Phone: "033-555-0101", Email: "hello@mountaingc.co.kr"},
			Location:     Location{Latitude: 37.8312, Longitude: 127.5047, Altitude: 420, CoordinateSystem: "WGS84"},
			Operation: Operation{
				TotalHoles:     18,
				OperatingHours: OperatingHours{Summer: "05:30-19:00", Winter: "07:00-17:00"},
				ClosedDays:     "동절기 휴장",
				CartPolicy:     CartPolicy{FairwayAccess: false, RainPolicy: "우천 시 운행 중단", MaxSpeed: 18},
			},
			Environment: Environment{
				Terrain:        []string{"mountainous"},
				GPSShadedAreas: GPSShadedAreas{Count: 5, Locations: "3, 7, 12번홀 계곡 구간"},
				SpecialNotes:   "산악 코스, 경사 급한 구간 다수",
			},
			TotalCarts:  35,
			ActiveCarts: 28,
			Status:      "maintenance",
			CreatedAt:   "2024-01-05T09:00:00Z",
			UpdatedAt:   "2024-01-11T14:00:00Z",
		},
	}
}

func SeedCarts() []Cart {
	return []Cart{
		{
			ID:           "CART-001",
			CartNumber:   "A-001",
			SerialNumber: "DY-2024-001",
			ModelID:      "MODEL-001",
			ModelName:    "DY-CART-2024",
			Manufacturer: "DY모빌리티",
			GolfCourseID: "GC-001",
			Status:       "active",
			Battery: CartBattery{
				Level: 85, Status: "NORMAL", Voltage: 47.8, IsCharging: false,
				LastChargeTime: "2024-01-15T06:00:00Z", EstimatedRange: 35, Cycles: 125, Health: 95,
			},
			Location: CartLocation{
				Latitude: 37.5065, Longitude: 127.0539, Course: "챔피언십 코스", Hole: 9,
				LastUpdate: "2024-01-15T14:30:00Z",
			},
			UsageStats:      CartUsageStats{TotalDistance: 15420.5, TotalHours: 342.5, TodayDistance: 45.2, TodayHours: 4.5},
			LastMaintenance: "2024-01-10",
			NextMaintenance: "2024-02-10",
			DeployedAt:      "2024-01-15",
			CreatedAt:       "2024-01-01T09:00:00Z",
			UpdatedAt:       "2024-01-15T14:30:00Z",
		},
		{
			ID:           "CART-002",
			CartNumber:   "A-002",
			SerialNumber: "DY-2024-002",
			ModelID:      "MODEL-002",
			ModelName:    "DY-CART-2023",
			Manufacturer: "DY모빌리티",
			GolfCourseID: "GC-001",
			Status:       "maintenance",
			Battery: CartBattery{
				Level: 40, Status: "LOW", Voltage: 45.1, IsCharging: true,
				LastChargeTime: "2024-02-15T08:00:00Z", EstimatedRange: 14, Cycles: 310, Health: 81,
			},
			Location: CartLocation{
				Latitude: 37.5061, Longitude: 127.0533, Course: "챔피언십 코스", Hole: 1,
				LastUpdate: "2024-02-15T14:30:00Z",
			},
			UsageStats:      CartUsageStats{TotalDistance: 28112.0, TotalHours: 765.2, TodayDistance: 0, TodayHours: 0},
			LastMaintenance: "2024-02-15",
			NextMaintenance: "2024-03-15",
			DeployedAt:      "2024-02-01",
			Notes:           "정기점검 중",
			CreatedAt:       "2024-02-01T09:00:00Z",
			UpdatedAt:       "2024-02-15T14:30:00Z",
		},
	}
}

func SeedCartModels() []CartModel {
	return []CartModel{
		{
			ID: "MODEL-001", ModelName: "DY-CART-2024", ModelCode: "DYC2024", Year: 2024,
			Specs:    CartModelSpecs{MaxSpeed: 25, BatteryType: "72V 리튬", Seats: 4},
			Features: []string{"자율주행", "GPS", "원격제어", "LiDAR"},
			Status:   "active",
			CreatedAt: "2024-01-15T09:00:00Z", UpdatedAt: "2024-01-15T09:00:00Z",
		},
		{
			ID: "MODEL-002", ModelName: "DY-CART-2023", ModelCode: "DYC2023", Year: 2023,
			Specs:    CartModelSpecs{MaxSpeed: 20, BatteryType: "72V 납산", Seats: 4},
			Features: []string{"GPS", "원격제어"},
			Status:   "active",
			CreatedAt: "2023-03-10T09:00:00Z", UpdatedAt: "2023-03-10T09:00:00Z",
		},
		{
			ID: "MODEL-003", ModelName: "DY-CART-2022", ModelCode: "DYC2022", Year: 2022,
			Specs:    CartModelSpecs{MaxSpeed: 18, BatteryType: "48V 납산", Seats: 2},
			Features: []string{"기본 운행"},
			Status:   "discontinued",
			CreatedAt: "2022-05-20T09:00:00Z", UpdatedAt: "2022-05-20T09:00:00Z",
		},
	}
}

func SeedMaps() []MapData {
	return []MapData{
		{
			ID: "MAP-001", Name: "그린필드 전체 맵", Description: "그린필드 골프클럽 전체 코스 맵",
			GolfCourseID: "GC-001", GolfCourseName: "그린필드 골프클럽", Type: "3D", Version: "1.2.0",
			ImageURL: "/uploads/maps/images/greenfield-full.jpg", ThumbnailURL: "/uploads/maps/thumbnails/greenfield-full-thumb.jpg",
			MetadataURL: "/uploads/maps/metadata/greenfield",
			Bounds:      MapBounds{North: 37.5165, South: 37.4965, East: 127.0639, West: 127.0439},
			Layers: []MapLayer{
				{Name: "fairway", Visible: true, Type: "polygon"},
				{Name: "green", Visible: true, Type: "polygon"},
				{Name: "hazard", Visible: true, Type: "polygon"},
			},
			FileSize: 15728640, Resolution: "4096x4096",
			CreatedAt: "2024-01-10T09:00:00Z", UpdatedAt: "2024-01-12T10:00:00Z",
		},
		{
			ID: "MAP-002", Name: "오션뷰 코스 맵", Description: "오션뷰 골프클럽 해안 코스 맵",
			GolfCourseID: "GC-002", GolfCourseName: "오션뷰 골프클럽", Type: "2D", Version: "1.0.0",
			ImageURL: "/uploads/maps/images/oceanview-course.jpg", ThumbnailURL: "/uploads/maps/thumbnails/oceanview-course-thumb.jpg",
			MetadataURL: "/uploads/maps/metadata/oceanview",
			Bounds:      MapBounds{North: 35.1896, South: 35.1696, East: 129.0856, West: 129.0656},
			Layers: []MapLayer{
				{Name: "fairway", Visible: true, Type: "polygon"},
				{Name: "water", Visible: true, Type: "polygon"},
				{Name: "sand", Visible: true, Type: "polygon"},
			},
			FileSize: 8456320, Resolution: "2048x2048",
			CreatedAt: "2024-01-08T09:00:00Z", UpdatedAt: "2024-01-08T09:00:00Z",
		},
		{
			ID: "MAP-003", Name: "마운틴 골프클럽 위성 맵", Description: "마운틴 골프클럽 산악 코스 위성 이미지",
			GolfCourseID: "GC-003", GolfCourseName: "마운틴 골프클럽", Type: "SATELLITE", Version: "2.1.0",
			ImageURL: "/uploads/maps/images/mountain-satellite.jpg", ThumbnailURL: "/uploads/maps/thumbnails/mountain-satellite-thumb.jpg",
			MetadataURL: "/uploads/maps/metadata/mountain",
			Bounds:      MapBounds{North: 37.8412, South: 37.8212, East: 127.5147, West: 127.4947},
			Layers: []MapLayer{
				{Name: "terrain", Visible: true, Type: "raster"},
				{Name: "trees", Visible: true, Type: "polygon"},
				{Name: "paths", Visible: true, Type: "line"},
			},
			FileSize: 25165824, Resolution: "8192x8192",
			CreatedAt: "2024-01-05T09:00:00Z", UpdatedAt: "2024-01-11T14:00:00Z",
		},
	}
}

// SeedUsers hashes the default admin password at seed time so the hash never
// lives in source as a literal.
func SeedUsers() []User {
	hash, err := bcrypt.GenerateFromPassword([]byte("SystemAdminPassword123"), bcrypt.DefaultCost)
	if err != nil {
		// bcrypt only fails on an invalid cost, which is constant here
		panic(err)
	}
	return []User{
		{
			ID:             "USER-001",
			Email:          "admin@dy.com",
			Name:           "관리자",
			Role:           "ADMIN",
			Status:         "ACTIVE",
			Phone:          "010-1234-5678",
			Department:     "시스템관리팀",
			CreatedAt:      "2024-01-01T09:00:00Z",
			UpdatedAt:      "2024-01-01T09:00:00Z",
			HashedPassword: string(hash),
		},
	}
}
