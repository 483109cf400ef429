package entity

import (
	"gorm.io/gorm"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	gorm.Model
	Name      string `json:"name"`
	Telephone string `json:"telephone"`
	Email     string `gorm:"uniqueIndex;not null" json:"email"`
	Password  string `json:"-"` // bcrypt hash
	Role      string `gorm:"not null;default:user" json:"role"`

	// Relations — preload เฉพาะตอนจำเป็น
	Reviews      []Review      `json:"-"`
	MenuReviews  []MenuReview  `json:"-"`
	Reservations []Reservation `json:"-"`
}
