// repository/restaurant_repository.go
package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

// RestaurantColumns whitelists filter/sort/select fields for listings.
var RestaurantColumns = map[string]bool{
	"name": true, "address": true, "tel": true,
	"opening_time": true, "price_range": true,
}

type RestaurantRepository struct {
	DB *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{DB: db}
}

// ดึงร้านทั้งหมดตาม list options พร้อมนับ total
func (r *RestaurantRepository) FindAll(opts ListOptions) ([]entity.Restaurant, int64, error) {
	var total int64
	if err := r.DB.Model(&entity.Restaurant{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rests []entity.Restaurant
	q := opts.Apply(r.DB.Model(&entity.Restaurant{}))
	if len(opts.Sort) == 0 {
		q = q.Order("name")
	}
	err := opts.Paginate(q).
		Preload("Menus").
		Preload("Reviews").
		Preload("Reservations").
		Preload("Promotions").
		Find(&rests).Error
	return rests, total, err
}

// ดึงร้านตาม ID
func (r *RestaurantRepository) FindByID(id uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	err := r.DB.
		Preload("Menus").
		Preload("Reviews").
		Preload("Reservations").
		Preload("Promotions").
		First(&rest, id).Error
	if err != nil {
		return nil, err
	}
	return &rest, nil
}

// นับชื่อร้านซ้ำ (unique)
func (r *RestaurantRepository) CountByName(name string) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Restaurant{}).Where("name = ?", name).Count(&count).Error
	return count, err
}

func (r *RestaurantRepository) Create(rest *entity.Restaurant) error {
	return r.DB.Create(rest).Error
}

// อัปเดตเฉพาะ field ที่ส่งมา
func (r *RestaurantRepository) Update(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.Restaurant{}).Where("id = ?", id).Updates(updates).Error
}

// ค้นหาตามชื่อ (LIKE) และช่วงราคา เรียงตาม price_range
func (r *RestaurantRepository) Search(name string, minPrice, maxPrice int) ([]entity.Restaurant, error) {
	q := r.DB.Model(&entity.Restaurant{})
	if name != "" {
		q = q.Where("name LIKE ?", "%"+name+"%")
	}
	if minPrice > 0 && maxPrice > 0 {
		q = q.Where("price_range BETWEEN ? AND ?", minPrice, maxPrice)
	}
	var rests []entity.Restaurant
	err := q.Order("price_range").Find(&rests).Error
	return rests, err
}

// รายการหน้าแรก (จำกัดจำนวน) + total สำหรับ next hint
func (r *RestaurantRepository) Featured(limit int) ([]entity.Restaurant, int64, error) {
	var total int64
	if err := r.DB.Model(&entity.Restaurant{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var rests []entity.Restaurant
	err := r.DB.Order("name").Limit(limit).
		Preload("Reviews").
		Preload("Reservations").
		Find(&rests).Error
	return rests, total, err
}
