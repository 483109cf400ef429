// repository/menu_review_repository.go
package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type MenuReviewRepository struct {
	DB *gorm.DB
}

func NewMenuReviewRepository(db *gorm.DB) *MenuReviewRepository {
	return &MenuReviewRepository{DB: db}
}

// ดึงรีวิวเมนูทั้งหมด หรือเฉพาะของเมนูเดียว (menuID > 0)
func (r *MenuReviewRepository) FindAll(menuID uint) ([]entity.MenuReview, error) {
	q := r.DB.Model(&entity.MenuReview{}).Order("created_at DESC")
	if menuID > 0 {
		q = q.Where("menu_id = ?", menuID)
	}
	var reviews []entity.MenuReview
	err := q.Find(&reviews).Error
	return reviews, err
}

func (r *MenuReviewRepository) FindByID(id uint) (*entity.MenuReview, error) {
	var review entity.MenuReview
	if err := r.DB.First(&review, id).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *MenuReviewRepository) Update(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.MenuReview{}).Where("id = ?", id).Updates(updates).Error
}

func (r *MenuReviewRepository) Delete(id uint) error {
	return r.DB.Unscoped().Delete(&entity.MenuReview{}, id).Error
}
