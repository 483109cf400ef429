package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"backend/configs"
	"backend/entity"
	"backend/routes"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "api.db")), &gorm.Config{
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

	cfg := &configs.Config{
		Env:       "test",
		JWTSecret: "testsecret",
		JWTTTL:    time.Hour,
		CookieTTL: time.Hour,
	}
	r := gin.New()
	routes.RegisterRoutes(r, db, cfg)
	return r, db
}

// doJSON ยิง request พร้อม body และ Bearer token (ถ้ามี)
func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return out
}

// registerUser สมัครผ่าน endpoint จริง คืน token
func registerUser(t *testing.T, r *gin.Engine, email, role string) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"name": "Tester", "email": email, "password": "secret123", "role": role,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register %s: status %d body %s", email, w.Code, w.Body.String())
	}
	token, _ := decodeBody(t, w)["token"].(string)
	if token == "" {
		t.Fatalf("register %s: no token in response", email)
	}
	return token
}

func createRestaurant(t *testing.T, r *gin.Engine, adminToken, name string) uint {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/v1/restaurants", adminToken, gin.H{
		"name": name, "address": "123 Main St", "tel": "02-000-0000",
		"openingTime": "10:00", "priceRange": 3,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create restaurant: status %d body %s", w.Code, w.Body.String())
	}
	data := decodeBody(t, w)["data"].(map[string]any)
	return uint(data["ID"].(float64))
}

func TestRegisterLoginMe(t *testing.T) {
	r, _ := setupRouter(t)

	token := registerUser(t, r, "somchai@test.com", "")

	// Bearer header
	w := doJSON(t, r, http.MethodGet, "/api/v1/auth/me", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("me with bearer: status %d body %s", w.Code, w.Body.String())
	}

	// cookie แทน header
	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: token})
	cw := httptest.NewRecorder()
	r.ServeHTTP(cw, req)
	if cw.Code != http.StatusOK {
		t.Fatalf("me with cookie: status %d body %s", cw.Code, cw.Body.String())
	}

	// ไม่มี token
	w = doJSON(t, r, http.MethodGet, "/api/v1/auth/me", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("me without token: status %d, want 401", w.Code)
	}

	// login ได้ token ใหม่
	w = doJSON(t, r, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email": "somchai@test.com", "password": "secret123",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login: status %d body %s", w.Code, w.Body.String())
	}
	if tok, _ := decodeBody(t, w)["token"].(string); tok == "" {
		t.Error("login response has no token")
	}

	// login ผิดรหัส
	w = doJSON(t, r, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email": "somchai@test.com", "password": "wrong",
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("bad login: status %d, want 401", w.Code)
	}
}

func TestAdminRoleGate(t *testing.T) {
	r, _ := setupRouter(t)
	userToken := registerUser(t, r, "user@test.com", "")
	adminToken := registerUser(t, r, "admin@test.com", "admin")

	body := gin.H{
		"name": "Joe's Diner", "address": "123 Main St", "tel": "02-000-0000",
		"openingTime": "10:00", "priceRange": 3,
	}

	w := doJSON(t, r, http.MethodPost, "/api/v1/restaurants", userToken, body)
	if w.Code != http.StatusForbidden {
		t.Fatalf("user create restaurant: status %d, want 403", w.Code)
	}
	w = doJSON(t, r, http.MethodPost, "/api/v1/restaurants", adminToken, body)
	if w.Code != http.StatusCreated {
		t.Fatalf("admin create restaurant: status %d body %s", w.Code, w.Body.String())
	}
}

func TestReservationQuotaOverHTTP(t *testing.T) {
	r, _ := setupRouter(t)
	userToken := registerUser(t, r, "booker@test.com", "")
	adminToken := registerUser(t, r, "admin@test.com", "admin")
	restID := createRestaurant(t, r, adminToken, "Joe's Diner")

	path := fmt.Sprintf("/api/v1/restaurants/%d/reservations", restID)
	body := gin.H{"rsvDate": time.Now().Add(24 * time.Hour).Format(time.RFC3339)}

	for i := 0; i < 3; i++ {
		if w := doJSON(t, r, http.MethodPost, path, userToken, body); w.Code != http.StatusCreated {
			t.Fatalf("reservation %d: status %d body %s", i+1, w.Code, w.Body.String())
		}
	}

	w := doJSON(t, r, http.MethodPost, path, userToken, body)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("4th reservation: status %d, want 400; body %s", w.Code, w.Body.String())
	}

	// admin ไม่ติด quota
	for i := 0; i < 4; i++ {
		if w := doJSON(t, r, http.MethodPost, path, adminToken, body); w.Code != http.StatusCreated {
			t.Fatalf("admin reservation %d: status %d body %s", i+1, w.Code, w.Body.String())
		}
	}
}

func TestReviewOwnershipOverHTTP(t *testing.T) {
	r, _ := setupRouter(t)
	ownerToken := registerUser(t, r, "owner@test.com", "")
	strangerToken := registerUser(t, r, "stranger@test.com", "")
	adminToken := registerUser(t, r, "admin@test.com", "admin")
	restID := createRestaurant(t, r, adminToken, "Joe's Diner")

	w := doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/v1/restaurants/%d/reviews", restID), ownerToken, gin.H{
		"rating": 4, "comment": "good food",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create review: status %d body %s", w.Code, w.Body.String())
	}
	reviewID := uint(decodeBody(t, w)["data"].(map[string]any)["ID"].(float64))
	reviewPath := fmt.Sprintf("/api/v1/reviews/%d", reviewID)

	// คนอื่นแก้ไม่ได้
	w = doJSON(t, r, http.MethodPut, reviewPath, strangerToken, gin.H{"comment": "hacked"})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("stranger update: status %d, want 401", w.Code)
	}

	// เจ้าของแก้ได้
	w = doJSON(t, r, http.MethodPut, reviewPath, ownerToken, gin.H{"comment": "actually great"})
	if w.Code != http.StatusOK {
		t.Fatalf("owner update: status %d body %s", w.Code, w.Body.String())
	}

	// admin ลบได้
	w = doJSON(t, r, http.MethodDelete, reviewPath, adminToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("admin delete: status %d body %s", w.Code, w.Body.String())
	}
	if w = doJSON(t, r, http.MethodGet, reviewPath, "", nil); w.Code != http.StatusNotFound {
		t.Fatalf("deleted review still readable: status %d", w.Code)
	}
}

func TestRestaurantCascadeOverHTTP(t *testing.T) {
	r, db := setupRouter(t)
	adminToken := registerUser(t, r, "admin@test.com", "admin")
	userToken := registerUser(t, r, "diner@test.com", "")
	restID := createRestaurant(t, r, adminToken, "Joe's Diner")

	w := doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/v1/restaurants/%d/menus", restID), adminToken, gin.H{
		"name": "Burger", "price": 99,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create menu: status %d body %s", w.Code, w.Body.String())
	}
	menuID := uint(decodeBody(t, w)["data"].(map[string]any)["ID"].(float64))

	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/v1/menus/%d/menureviews", menuID), userToken, gin.H{
		"rating": 5, "comment": "best burger",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create menu review: status %d body %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/v1/restaurants/%d", restID), adminToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete restaurant: status %d body %s", w.Code, w.Body.String())
	}

	if w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/v1/menus/%d", menuID), "", nil); w.Code != http.StatusNotFound {
		t.Fatalf("menu survived cascade: status %d body %s", w.Code, w.Body.String())
	}
	var n int64
	if err := db.Model(&entity.MenuReview{}).Where("menu_id = ?", menuID).Count(&n).Error; err != nil {
		t.Fatalf("count menu reviews: %v", err)
	}
	if n != 0 {
		t.Errorf("menu reviews survived cascade: %d", n)
	}
}

func TestDeleteMissingRestaurantOverHTTP(t *testing.T) {
	r, _ := setupRouter(t)
	adminToken := registerUser(t, r, "admin@test.com", "admin")

	w := doJSON(t, r, http.MethodDelete, "/api/v1/restaurants/99999", adminToken, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("delete missing restaurant: status %d, want 404; body %s", w.Code, w.Body.String())
	}
}
