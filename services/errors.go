// Package services holds the business rules of the directory API.
// Controllers translate the sentinel errors below onto HTTP responses,
// so nothing here imports gin.
package services

import (
	"errors"

	"gorm.io/gorm"
)

var (
	// ErrNotFound: target record (or the parent of a new child) does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrForbidden: acting user is neither the author nor an admin.
	ErrForbidden = errors.New("not authorized to perform this action")

	// ErrQuotaExceeded: non-admin user already holds the maximum reservations.
	ErrQuotaExceeded = errors.New("reservation limit reached")

	// ErrDuplicate: unique field (email, restaurant/menu name) already taken.
	ErrDuplicate = errors.New("already exists")
)

// mapStoreErr แปลง record-not-found ของ gorm เป็น ErrNotFound
func mapStoreErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
