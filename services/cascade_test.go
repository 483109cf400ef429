package services_test

import (
	"errors"
	"testing"
	"time"

	"backend/entity"
	"backend/services"
)

// ลบร้านแล้วลูกทุก relation ต้องหายหมด รวมถึงหลาน (menu review)
func TestDeleteRestaurantCascadesAllChildren(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "a@test.com", entity.RoleUser)
	rest := seedRestaurant(t, db, "Joe's Diner")
	other := seedRestaurant(t, db, "Other Place")

	menu := seedMenu(t, db, rest.ID, "Burger")
	otherMenu := seedMenu(t, db, other.ID, "Pizza")

	if err := db.Create(&entity.MenuReview{Rating: 5, Comment: "great", UserID: user.ID, MenuID: menu.ID}).Error; err != nil {
		t.Fatalf("seed menu review: %v", err)
	}
	if err := db.Create(&entity.Review{Rating: 4, Comment: "good", UserID: user.ID, RestaurantID: rest.ID}).Error; err != nil {
		t.Fatalf("seed review: %v", err)
	}
	seedReservation(t, db, user.ID, rest.ID)
	promo := entity.Promotion{
		Name: "Summer Special", Detail: "20% off",
		StartDate: time.Now(), EndDate: time.Now().Add(48 * time.Hour),
		RestaurantID: rest.ID, Menus: []entity.Menu{*menu},
	}
	if err := db.Create(&promo).Error; err != nil {
		t.Fatalf("seed promotion: %v", err)
	}

	engine := services.NewCascadeEngine(db)
	if err := engine.DeleteRestaurant(rest.ID); err != nil {
		t.Fatalf("DeleteRestaurant failed: %v", err)
	}

	if n := countRows(t, db, &entity.Restaurant{}, "id = ?", rest.ID); n != 0 {
		t.Errorf("restaurant still present: %d", n)
	}
	if n := countRows(t, db, &entity.Menu{}, "restaurant_id = ?", rest.ID); n != 0 {
		t.Errorf("expected 0 menus, got %d", n)
	}
	if n := countRows(t, db, &entity.MenuReview{}, "menu_id = ?", menu.ID); n != 0 {
		t.Errorf("expected 0 menu reviews, got %d", n)
	}
	if n := countRows(t, db, &entity.Review{}, "restaurant_id = ?", rest.ID); n != 0 {
		t.Errorf("expected 0 reviews, got %d", n)
	}
	if n := countRows(t, db, &entity.Reservation{}, "restaurant_id = ?", rest.ID); n != 0 {
		t.Errorf("expected 0 reservations, got %d", n)
	}
	if n := countRows(t, db, &entity.Promotion{}, "restaurant_id = ?", rest.ID); n != 0 {
		t.Errorf("expected 0 promotions, got %d", n)
	}
	if n := countRows(t, db, &entity.PromotionMenu{}, "promotion_id = ?", promo.ID); n != 0 {
		t.Errorf("expected 0 promotion menu links, got %d", n)
	}

	// ร้านอื่นต้องไม่โดน
	if n := countRows(t, db, &entity.Menu{}, "restaurant_id = ?", other.ID); n != 1 {
		t.Errorf("other restaurant's menu affected, got %d", n)
	}
	if n := countRows(t, db, &entity.Menu{}, "id = ?", otherMenu.ID); n != 1 {
		t.Errorf("other menu deleted")
	}
}

// scenario ตาม flow จริง: ร้าน → เมนู → รีวิวเมนู → ลบร้าน
func TestDeleteRestaurantTwoLevelScenario(t *testing.T) {
	db := newTestDB(t)
	userA := seedUser(t, db, "usera@test.com", entity.RoleUser)
	rest := seedRestaurant(t, db, "Joe's Diner")

	menuSvc := services.NewMenuService(db)
	burger, err := menuSvc.Create(rest.ID, "Burger", 99)
	if err != nil {
		t.Fatalf("create menu: %v", err)
	}

	mrSvc := services.NewMenuReviewService(db)
	if _, err := mrSvc.Create(userA.ID, burger.ID, 5, "best burger"); err != nil {
		t.Fatalf("create menu review: %v", err)
	}

	restSvc := services.NewRestaurantService(db)
	if err := restSvc.Delete(rest.ID); err != nil {
		t.Fatalf("delete restaurant: %v", err)
	}

	if n := countRows(t, db, &entity.Menu{}, "id = ?", burger.ID); n != 0 {
		t.Errorf("menu Burger survived the cascade")
	}
	if n := countRows(t, db, &entity.MenuReview{}, "menu_id = ?", burger.ID); n != 0 {
		t.Errorf("menu review survived the cascade")
	}
}

func TestDeleteMenuCascadesReviewsOnly(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "b@test.com", entity.RoleUser)
	rest := seedRestaurant(t, db, "Joe's Diner")
	menu := seedMenu(t, db, rest.ID, "Burger")
	if err := db.Create(&entity.MenuReview{Rating: 3, Comment: "ok", UserID: user.ID, MenuID: menu.ID}).Error; err != nil {
		t.Fatalf("seed menu review: %v", err)
	}

	engine := services.NewCascadeEngine(db)
	if err := engine.DeleteMenu(menu.ID); err != nil {
		t.Fatalf("DeleteMenu failed: %v", err)
	}

	if n := countRows(t, db, &entity.MenuReview{}, "menu_id = ?", menu.ID); n != 0 {
		t.Errorf("menu reviews survived, got %d", n)
	}
	if n := countRows(t, db, &entity.Restaurant{}, "id = ?", rest.ID); n != 1 {
		t.Errorf("restaurant should not be touched")
	}
}

// ลบ id ที่ไม่มี ต้องได้ ErrNotFound ทุกครั้ง ไม่ crash ไม่ลบอะไร
func TestDeleteMissingRestaurantIsNotFound(t *testing.T) {
	db := newTestDB(t)
	rest := seedRestaurant(t, db, "Survivor")
	seedMenu(t, db, rest.ID, "Noodles")

	engine := services.NewCascadeEngine(db)
	for i := 0; i < 3; i++ {
		if err := engine.DeleteRestaurant(99999); !errors.Is(err, services.ErrNotFound) {
			t.Fatalf("call %d: expected ErrNotFound, got %v", i, err)
		}
	}

	if n := countRows(t, db, &entity.Menu{}, ""); n != 1 {
		t.Errorf("unrelated rows deleted, menus left %d", n)
	}
}
