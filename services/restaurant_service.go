// services/restaurant_service.go
package services

import (
	"backend/entity"
	"backend/repository"

	"gorm.io/gorm"
)

type RestaurantService struct {
	repo    *repository.RestaurantRepository
	cascade *CascadeEngine
}

func NewRestaurantService(db *gorm.DB) *RestaurantService {
	return &RestaurantService{
		repo:    repository.NewRestaurantRepository(db),
		cascade: NewCascadeEngine(db),
	}
}

func (s *RestaurantService) List(opts repository.ListOptions) ([]entity.Restaurant, int64, error) {
	return s.repo.FindAll(opts)
}

func (s *RestaurantService) Get(id uint) (*entity.Restaurant, error) {
	rest, err := s.repo.FindByID(id)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	return rest, nil
}

func (s *RestaurantService) Create(rest *entity.Restaurant) error {
	count, err := s.repo.CountByName(rest.Name)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrDuplicate
	}
	return s.repo.Create(rest)
}

// Update เฉพาะ field ที่ส่งมา แล้วคืนค่า record ล่าสุด
func (s *RestaurantService) Update(id uint, updates map[string]any) (*entity.Restaurant, error) {
	if _, err := s.repo.FindByID(id); err != nil {
		return nil, mapStoreErr(err)
	}
	if err := s.repo.Update(id, updates); err != nil {
		return nil, err
	}
	return s.Get(id)
}

// Delete ลบร้านพร้อมลูกทุกตัวผ่าน cascade engine
func (s *RestaurantService) Delete(id uint) error {
	return s.cascade.DeleteRestaurant(id)
}

func (s *RestaurantService) Search(name string, minPrice, maxPrice int) ([]entity.Restaurant, error) {
	return s.repo.Search(name, minPrice, maxPrice)
}

func (s *RestaurantService) Featured(limit int) ([]entity.Restaurant, int64, error) {
	return s.repo.Featured(limit)
}
