package routes

import (
	"backend/configs"
	"backend/controllers"
	"backend/entity"
	"backend/middlewares"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"success": true}) })

	// Controllers
	authCtrl := controllers.NewAuthController(db, cfg)
	restCtrl := controllers.NewRestaurantController(db)
	menuCtrl := controllers.NewMenuController(db)
	reviewCtrl := controllers.NewReviewController(db)
	menuReviewCtrl := controllers.NewMenuReviewController(db)
	rsvCtrl := controllers.NewReservationController(db)
	promoCtrl := controllers.NewPromotionController(db)

	protect := middlewares.AuthMiddleware(cfg.JWTSecret)
	adminOnly := middlewares.AuthMiddleware(cfg.JWTSecret, entity.RoleAdmin)

	v1 := r.Group("/api/v1")

	// Auth
	a := v1.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
		a.GET("/logout", authCtrl.Logout)
		a.GET("/me", protect, authCtrl.Me)
	}

	// Restaurants (public read, admin write)
	v1.GET("/restaurants", restCtrl.List)
	v1.GET("/restaurants/featured", restCtrl.Featured)
	v1.GET("/restaurants/search", restCtrl.Search)
	v1.GET("/restaurants/:id", restCtrl.Detail)
	v1.POST("/restaurants", adminOnly, restCtrl.Create)
	v1.PUT("/restaurants/:id", adminOnly, restCtrl.Update)
	v1.DELETE("/restaurants/:id", adminOnly, restCtrl.Delete)

	// ลูกของร้าน (nested)
	v1.GET("/restaurants/:id/menus", menuCtrl.ListForRestaurant)
	v1.POST("/restaurants/:id/menus", adminOnly, menuCtrl.Create)
	v1.GET("/restaurants/:id/reviews", reviewCtrl.ListForRestaurant)
	v1.POST("/restaurants/:id/reviews", protect, reviewCtrl.Create)
	v1.GET("/restaurants/:id/reservations", adminOnly, rsvCtrl.ListForRestaurant)
	v1.POST("/restaurants/:id/reservations", protect, rsvCtrl.Create)

	// Menus
	v1.GET("/menus", menuCtrl.List)
	v1.GET("/menus/:id", menuCtrl.Detail)
	v1.PUT("/menus/:id", adminOnly, menuCtrl.Update)
	v1.DELETE("/menus/:id", adminOnly, menuCtrl.Delete)
	v1.GET("/menus/:id/menureviews", menuReviewCtrl.ListForMenu)
	v1.POST("/menus/:id/menureviews", protect, menuReviewCtrl.Create)

	// Reviews
	v1.GET("/reviews", reviewCtrl.List)
	v1.GET("/reviews/:id", reviewCtrl.Detail)
	v1.PUT("/reviews/:id", protect, reviewCtrl.Update)
	v1.DELETE("/reviews/:id", protect, reviewCtrl.Delete)

	// Menu reviews
	v1.GET("/menureviews", menuReviewCtrl.List)
	v1.GET("/menureviews/:id", menuReviewCtrl.Detail)
	v1.PUT("/menureviews/:id", protect, menuReviewCtrl.Update)
	v1.DELETE("/menureviews/:id", protect, menuReviewCtrl.Delete)

	// Reservations (ต้อง login ทุกเส้น)
	v1.GET("/reservations", protect, rsvCtrl.List)
	v1.GET("/reservations/:id", protect, rsvCtrl.Detail)
	v1.PUT("/reservations/:id", protect, rsvCtrl.Update)
	v1.DELETE("/reservations/:id", protect, rsvCtrl.Delete)

	// Promotions (public read, admin write)
	v1.GET("/promotions", promoCtrl.List)
	v1.GET("/promotions/:id", promoCtrl.Detail)
	v1.POST("/promotions", adminOnly, promoCtrl.Create)
	v1.PUT("/promotions/:id", adminOnly, promoCtrl.Update)
	v1.DELETE("/promotions/:id", adminOnly, promoCtrl.Delete)
}
