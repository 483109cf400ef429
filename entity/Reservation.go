package entity

import (
	"time"

	"gorm.io/gorm"
)

type Reservation struct {
	gorm.Model
	RsvDate time.Time `gorm:"not null" json:"rsvDate"`

	UserID       uint       `gorm:"not null" json:"userId"` // author
	User         User       `json:"-"`
	RestaurantID uint       `gorm:"not null" json:"restaurantId"`
	Restaurant   Restaurant `json:"-"` // preload เฉพาะตอน detail
}
