package services

import "backend/entity"

// CanMutate ตัดสินว่า user แก้/ลบ record ที่มีเจ้าของได้ไหม
// (Review, MenuReview, Reservation) — เจ้าของหรือ admin เท่านั้น
func CanMutate(userID uint, role string, authorID uint) bool {
	if role == entity.RoleAdmin {
		return true
	}
	return authorID == userID
}

// requireOwner returns ErrForbidden unless the guard passes.
func requireOwner(userID uint, role string, authorID uint) error {
	if !CanMutate(userID, role, authorID) {
		return ErrForbidden
	}
	return nil
}
