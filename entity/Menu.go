package entity

import (
	"gorm.io/gorm"
)

type Menu struct {
	gorm.Model
	Name  string `gorm:"size:50;uniqueIndex;not null" json:"name"`
	Price int64  `gorm:"not null" json:"price"`

	RestaurantID uint       `gorm:"not null" json:"restaurantId"`
	Restaurant   Restaurant `json:"-"` // preload เมื่อจำเป็น

	MenuReviews []MenuReview `json:"menuReviews,omitempty"`
	Promotions  []Promotion  `gorm:"many2many:promotion_menus;" json:"-"`
}
