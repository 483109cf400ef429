// services/menu_review_service.go
package services

import (
	"backend/entity"
	"backend/repository"

	"gorm.io/gorm"
)

type MenuReviewService struct {
	db   *gorm.DB
	repo *repository.MenuReviewRepository
}

func NewMenuReviewService(db *gorm.DB) *MenuReviewService {
	return &MenuReviewService{db: db, repo: repository.NewMenuReviewRepository(db)}
}

func (s *MenuReviewService) List(menuID uint) ([]entity.MenuReview, error) {
	return s.repo.FindAll(menuID)
}

func (s *MenuReviewService) Get(id uint) (*entity.MenuReview, error) {
	review, err := s.repo.FindByID(id)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	return review, nil
}

// Create ตรวจว่าเมนูแม่ยังอยู่ ใน transaction เดียวกับ insert
func (s *MenuReviewService) Create(userID, menuID uint, rating int, comment string) (*entity.MenuReview, error) {
	var review *entity.MenuReview
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Select("id").First(&entity.Menu{}, menuID).Error; err != nil {
			return mapStoreErr(err)
		}
		r := entity.MenuReview{Rating: rating, Comment: comment, UserID: userID, MenuID: menuID}
		if err := tx.Create(&r).Error; err != nil {
			return err
		}
		review = &r
		return nil
	})
	return review, err
}

func (s *MenuReviewService) Update(userID uint, role string, id uint, updates map[string]any) (*entity.MenuReview, error) {
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

func (s *MenuReviewService) Delete(userID uint, role string, id uint) error {
	review, err := s.Get(id)
	if err != nil {
		return err
	}
	if err := requireOwner(userID, role, review.UserID); err != nil {
		return err
	}
	return s.repo.Delete(id)
}
