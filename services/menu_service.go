// services/menu_service.go
package services

import (
	"backend/entity"
	"backend/repository"

	"gorm.io/gorm"
)

type MenuService struct {
	db      *gorm.DB
	repo    *repository.MenuRepository
	cascade *CascadeEngine
}

func NewMenuService(db *gorm.DB) *MenuService {
	return &MenuService{
		db:      db,
		repo:    repository.NewMenuRepository(db),
		cascade: NewCascadeEngine(db),
	}
}

// List ทั้งหมด หรือเฉพาะร้านเดียวเมื่อ restaurantID > 0
func (s *MenuService) List(restaurantID uint) ([]entity.Menu, error) {
	return s.repo.FindAll(restaurantID)
}

func (s *MenuService) Get(id uint) (*entity.Menu, error) {
	menu, err := s.repo.FindByID(id)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	return menu, nil
}

// Create ตรวจว่าร้านแม่ยังอยู่ ใน transaction เดียวกับ insert
// (กันเมนูกำพร้าเวลาแข่งกับ cascade delete)
func (s *MenuService) Create(restaurantID uint, name string, price int64) (*entity.Menu, error) {
	var menu *entity.Menu
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Select("id").First(&entity.Restaurant{}, restaurantID).Error; err != nil {
			return mapStoreErr(err)
		}
		var count int64
		if err := tx.Model(&entity.Menu{}).Where("name = ?", name).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrDuplicate
		}
		m := entity.Menu{Name: name, Price: price, RestaurantID: restaurantID}
		if err := tx.Create(&m).Error; err != nil {
			return err
		}
		menu = &m
		return nil
	})
	return menu, err
}

func (s *MenuService) Update(id uint, updates map[string]any) (*entity.Menu, error) {
	if _, err := s.repo.FindByID(id); err != nil {
		return nil, mapStoreErr(err)
	}
	if err := s.repo.Update(id, updates); err != nil {
		return nil, err
	}
	return s.Get(id)
}

// Delete ลบเมนูพร้อมรีวิวเมนูผ่าน cascade engine
func (s *MenuService) Delete(id uint) error {
	return s.cascade.DeleteMenu(id)
}
