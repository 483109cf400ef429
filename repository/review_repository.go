// repository/review_repository.go
package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type ReviewRepository struct {
	DB *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{DB: db}
}

// ดึงรีวิวทั้งหมด หรือเฉพาะของร้านเดียว (restaurantID > 0)
func (r *ReviewRepository) FindAll(restaurantID uint) ([]entity.Review, error) {
	q := r.DB.Model(&entity.Review{}).Order("created_at DESC")
	if restaurantID > 0 {
		q = q.Where("restaurant_id = ?", restaurantID)
	}
	var reviews []entity.Review
	err := q.Find(&reviews).Error
	return reviews, err
}

func (r *ReviewRepository) FindByID(id uint) (*entity.Review, error) {
	var review entity.Review
	if err := r.DB.First(&review, id).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *ReviewRepository) Update(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.Review{}).Where("id = ?", id).Updates(updates).Error
}

// ลบจริง ไม่ใช่ soft delete
func (r *ReviewRepository) Delete(id uint) error {
	return r.DB.Unscoped().Delete(&entity.Review{}, id).Error
}
