package entity

import (
	"gorm.io/gorm"
)

type Review struct {
	gorm.Model
	Rating  int    `gorm:"not null" json:"rating"` // 1..5
	Comment string `gorm:"not null" json:"comment"`

	UserID       uint       `gorm:"not null" json:"userId"` // author
	User         User       `json:"-"`
	RestaurantID uint       `gorm:"not null" json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`
}
