package services_test

import (
	"path/filepath"
	"testing"
	"time"

	"backend/entity"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB เปิด sqlite ชั่วคราวพร้อม schema ครบ
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.SetupJoinTable(&entity.Promotion{}, "Menus", &entity.PromotionMenu{}); err != nil {
		t.Fatalf("setup join table: %v", err)
	}
	if err := db.AutoMigrate(
		&entity.User{},
		&entity.Restaurant{},
		&entity.Menu{},
		&entity.MenuReview{},
		&entity.Review{},
		&entity.Reservation{},
		&entity.Promotion{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email, role string) *entity.User {
	t.Helper()
	u := entity.User{Name: "Tester", Email: email, Password: "x", Role: role}
	if err := db.Create(&u).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return &u
}

func seedRestaurant(t *testing.T, db *gorm.DB, name string) *entity.Restaurant {
	t.Helper()
	r := entity.Restaurant{Name: name, Address: "123 Main St", Tel: "02-000-0000", OpeningTime: "10:00", PriceRange: 3}
	if err := db.Create(&r).Error; err != nil {
		t.Fatalf("seed restaurant: %v", err)
	}
	return &r
}

func seedMenu(t *testing.T, db *gorm.DB, restaurantID uint, name string) *entity.Menu {
	t.Helper()
	m := entity.Menu{Name: name, Price: 120, RestaurantID: restaurantID}
	if err := db.Create(&m).Error; err != nil {
		t.Fatalf("seed menu: %v", err)
	}
	return &m
}

func seedReservation(t *testing.T, db *gorm.DB, userID, restaurantID uint) *entity.Reservation {
	t.Helper()
	r := entity.Reservation{RsvDate: time.Now().Add(24 * time.Hour), UserID: userID, RestaurantID: restaurantID}
	if err := db.Create(&r).Error; err != nil {
		t.Fatalf("seed reservation: %v", err)
	}
	return &r
}

func countRows(t *testing.T, db *gorm.DB, model any, query string, args ...any) int64 {
	t.Helper()
	var n int64
	q := db.Model(model)
	if query != "" {
		q = q.Where(query, args...)
	}
	if err := q.Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	return n
}
