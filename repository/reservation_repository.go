// repository/reservation_repository.go
package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type ReservationRepository struct {
	DB *gorm.DB
}

func NewReservationRepository(db *gorm.DB) *ReservationRepository {
	return &ReservationRepository{DB: db}
}

// รายการของ user คนเดียว (มุมมองลูกค้า)
func (r *ReservationRepository) FindByUser(userID uint) ([]entity.Reservation, error) {
	var rsvs []entity.Reservation
	err := r.DB.Where("user_id = ?", userID).
		Order("rsv_date").
		Preload("Restaurant").
		Find(&rsvs).Error
	return rsvs, err
}

// รายการทั้งหมด หรือเฉพาะร้านเดียว (มุมมอง admin)
func (r *ReservationRepository) FindAll(restaurantID uint) ([]entity.Reservation, error) {
	q := r.DB.Model(&entity.Reservation{}).Order("rsv_date").Preload("Restaurant")
	if restaurantID > 0 {
		q = q.Where("restaurant_id = ?", restaurantID)
	}
	var rsvs []entity.Reservation
	err := q.Find(&rsvs).Error
	return rsvs, err
}

func (r *ReservationRepository) FindByID(id uint) (*entity.Reservation, error) {
	var rsv entity.Reservation
	if err := r.DB.Preload("Restaurant").First(&rsv, id).Error; err != nil {
		return nil, err
	}
	return &rsv, nil
}

// นับ reservation ที่ user ถืออยู่ (สำหรับ quota)
func (r *ReservationRepository) CountByUser(userID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Reservation{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *ReservationRepository) Update(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.Reservation{}).Where("id = ?", id).Updates(updates).Error
}

func (r *ReservationRepository) Delete(id uint) error {
	return r.DB.Unscoped().Delete(&entity.Reservation{}, id).Error
}
