// services/promotion_service.go
package services

import (
	"time"

	"backend/entity"
	"backend/repository"

	"gorm.io/gorm"
)

type PromotionService struct {
	db      *gorm.DB
	repo    *repository.PromotionRepository
	cascade *CascadeEngine
}

func NewPromotionService(db *gorm.DB) *PromotionService {
	return &PromotionService{
		db:      db,
		repo:    repository.NewPromotionRepository(db),
		cascade: NewCascadeEngine(db),
	}
}

func (s *PromotionService) List(opts repository.ListOptions) ([]entity.Promotion, int64, error) {
	return s.repo.FindAll(opts)
}

func (s *PromotionService) Get(id uint) (*entity.Promotion, error) {
	promo, err := s.repo.FindByID(id)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	return promo, nil
}

// Create ตรวจร้านแม่และเมนูทุกตัวก่อน insert ใน transaction เดียว
func (s *PromotionService) Create(restaurantID uint, name, detail string, start, end time.Time, menuIDs []uint) (*entity.Promotion, error) {
	var promo *entity.Promotion
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Select("id").First(&entity.Restaurant{}, restaurantID).Error; err != nil {
			return mapStoreErr(err)
		}
		menus, err := menusByIDs(tx, menuIDs)
		if err != nil {
			return err
		}
		p := entity.Promotion{
			Name:         name,
			Detail:       detail,
			StartDate:    start,
			EndDate:      end,
			RestaurantID: restaurantID,
			Menus:        menus,
		}
		if err := tx.Create(&p).Error; err != nil {
			return err
		}
		promo = &p
		return nil
	})
	return promo, err
}

// Update แก้ field ที่ส่งมา และแทนที่รายการเมนูถ้าส่ง menuIds มา
func (s *PromotionService) Update(id uint, updates map[string]any, menuIDs []uint) (*entity.Promotion, error) {
	if _, err := s.Get(id); err != nil {
		return nil, err
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if len(updates) > 0 {
			if err := tx.Model(&entity.Promotion{}).Where("id = ?", id).Updates(updates).Error; err != nil {
				return err
			}
		}
		if menuIDs != nil {
			menus, err := menusByIDs(tx, menuIDs)
			if err != nil {
				return err
			}
			promo := entity.Promotion{Model: gorm.Model{ID: id}}
			if err := tx.Model(&promo).Association("Menus").Replace(menus); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Get(id)
}

// Delete ลบโปรพร้อมแถว join ใน promotion_menus ผ่าน cascade engine
func (s *PromotionService) Delete(id uint) error {
	return s.cascade.DeletePromotion(id)
}

// menusByIDs โหลดเมนูตาม id ทั้งหมด ถ้าหายแม้ตัวเดียวถือว่า not found
func menusByIDs(tx *gorm.DB, ids []uint) ([]entity.Menu, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var menus []entity.Menu
	if err := tx.Where("id IN ?", ids).Find(&menus).Error; err != nil {
		return nil, err
	}
	if len(menus) != len(ids) {
		return nil, ErrNotFound
	}
	return menus, nil
}
