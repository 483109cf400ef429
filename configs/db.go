package configs

import (
	"backend/entity"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(source string) {
	database, err := gorm.Open(sqlite.Open(source), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

func SetupDatabase() {
	// join table (many2many Promotion<->Menu)
	if err := db.SetupJoinTable(&entity.Promotion{}, "Menus", &entity.PromotionMenu{}); err != nil {
		panic("setup join table failed: " + err.Error())
	}

	// Migrate the schema
	db.AutoMigrate(
		&entity.User{},
		&entity.Restaurant{},
		&entity.Menu{},
		&entity.MenuReview{},
		&entity.Review{},
		&entity.Reservation{},
		&entity.Promotion{},
	)
}
