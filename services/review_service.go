// services/review_service.go
package services

import (
	"backend/entity"
	"backend/repository"

	"gorm.io/gorm"
)

type ReviewService struct {
	db   *gorm.DB
	repo *repository.ReviewRepository
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{db: db, repo: repository.NewReviewRepository(db)}
}

func (s *ReviewService) List(restaurantID uint) ([]entity.Review, error) {
	return s.repo.FindAll(restaurantID)
}

func (s *ReviewService) Get(id uint) (*entity.Review, error) {
	review, err := s.repo.FindByID(id)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	return review, nil
}

// Create ตรวจว่าร้านแม่ยังอยู่ ใน transaction เดียวกับ insert
func (s *ReviewService) Create(userID, restaurantID uint, rating int, comment string) (*entity.Review, error) {
	var review *entity.Review
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Select("id").First(&entity.Restaurant{}, restaurantID).Error; err != nil {
			return mapStoreErr(err)
		}
		r := entity.Review{Rating: rating, Comment: comment, UserID: userID, RestaurantID: restaurantID}
		if err := tx.Create(&r).Error; err != nil {
			return err
		}
		review = &r
		return nil
	})
	return review, err
}

// Update แก้ได้เฉพาะเจ้าของหรือ admin
func (s *ReviewService) Update(userID uint, role string, id uint, updates map[string]any) (*entity.Review, error) {
	review, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := requireOwner(userID, role, review.UserID); err != nil {
		return nil, err
	}
	if err := s.repo.Update(id, updates); err != nil {
		return nil, err
	}
	return s.Get(id)
}

// Delete ลบได้เฉพาะเจ้าของหรือ admin
func (s *ReviewService) Delete(userID uint, role string, id uint) error {
	review, err := s.Get(id)
	if err != nil {
		return err
	}
	if err := requireOwner(userID, role, review.UserID); err != nil {
		return err
	}
	return s.repo.Delete(id)
}
