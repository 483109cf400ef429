// repository/promotion_repository.go
package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

var PromotionColumns = map[string]bool{
	"name": true, "detail": true, "restaurant_id": true,
	"start_date": true, "end_date": true,
}

type PromotionRepository struct {
	DB *gorm.DB
}

func NewPromotionRepository(db *gorm.DB) *PromotionRepository {
	return &PromotionRepository{DB: db}
}

func (r *PromotionRepository) FindAll(opts ListOptions) ([]entity.Promotion, int64, error) {
	var total int64
	if err := r.DB.Model(&entity.Promotion{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var promos []entity.Promotion
	q := opts.Apply(r.DB.Model(&entity.Promotion{}))
	if len(opts.Sort) == 0 {
		q = q.Order("name")
	}
	err := opts.Paginate(q).Preload("Menus").Find(&promos).Error
	return promos, total, err
}

func (r *PromotionRepository) FindByID(id uint) (*entity.Promotion, error) {
	var promo entity.Promotion
	if err := r.DB.Preload("Menus").First(&promo, id).Error; err != nil {
		return nil, err
	}
	return &promo, nil
}
