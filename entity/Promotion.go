package entity

import (
	"time"

	"gorm.io/gorm"
)

type Promotion struct {
	gorm.Model
	Name      string    `gorm:"size:50;not null" json:"name"`
	Detail    string    `gorm:"not null" json:"detail"`
	StartDate time.Time `gorm:"not null" json:"startDate"`
	EndDate   time.Time `gorm:"not null" json:"endDate"`

	RestaurantID uint       `gorm:"not null" json:"restaurantId"`
	Restaurant   Restaurant `json:"-"` // preload เฉพาะตอน detail

	Menus []Menu `gorm:"many2many:promotion_menus;" json:"menus,omitempty"`
}
