// repository/menu_repository.go
package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

var MenuColumns = map[string]bool{
	"name": true, "price": true, "restaurant_id": true,
}

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

// ดึงเมนูทั้งหมด หรือเฉพาะของร้านเดียว (restaurantID > 0)
func (r *MenuRepository) FindAll(restaurantID uint) ([]entity.Menu, error) {
	q := r.DB.Model(&entity.Menu{}).Order("name")
	if restaurantID > 0 {
		q = q.Where("restaurant_id = ?", restaurantID)
	}
	var menus []entity.Menu
	err := q.Preload("MenuReviews").Find(&menus).Error
	return menus, err
}

func (r *MenuRepository) FindByID(id uint) (*entity.Menu, error) {
	var menu entity.Menu
	if err := r.DB.Preload("MenuReviews").First(&menu, id).Error; err != nil {
		return nil, err
	}
	return &menu, nil
}

func (r *MenuRepository) CountByName(name string) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Menu{}).Where("name = ?", name).Count(&count).Error
	return count, err
}

func (r *MenuRepository) Update(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.Menu{}).Where("id = ?", id).Updates(updates).Error
}
