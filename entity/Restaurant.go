package entity

import (
	"gorm.io/gorm"
)

type Restaurant struct {
	gorm.Model
	Name        string `gorm:"size:50;uniqueIndex;not null" json:"name"`
	Address     string `gorm:"not null" json:"address"`
	Tel         string `json:"tel"`
	OpeningTime string `json:"openingTime"`
	PriceRange  int    `gorm:"not null" json:"priceRange"` // 1..5

	Menus        []Menu        `json:"menus,omitempty"`
	Reviews      []Review      `json:"reviews,omitempty"`
	Reservations []Reservation `json:"reservations,omitempty"`
	Promotions   []Promotion   `json:"promotions,omitempty"`
}
