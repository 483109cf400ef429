// services/reservation_service.go
package services

import (
	"sync"
	"time"

	"backend/entity"
	"backend/repository"

	"gorm.io/gorm"
)

// MaxActiveReservations คือเพดาน reservation ต่อ user (ยกเว้น admin)
const MaxActiveReservations = 3

type ReservationService struct {
	db   *gorm.DB
	repo *repository.ReservationRepository

	// serializes the count-then-insert below; two concurrent creates from
	// the same user must not both pass the quota check at count = 2
	mu sync.Mutex
}

func NewReservationService(db *gorm.DB) *ReservationService {
	return &ReservationService{db: db, repo: repository.NewReservationRepository(db)}
}

// List: user เห็นของตัวเอง, admin เห็นทั้งหมด (กรองร้านได้)
func (s *ReservationService) List(userID uint, role string, restaurantID uint) ([]entity.Reservation, error) {
	if role != entity.RoleAdmin {
		return s.repo.FindByUser(userID)
	}
	return s.repo.FindAll(restaurantID)
}

func (s *ReservationService) Get(id uint) (*entity.Reservation, error) {
	rsv, err := s.repo.FindByID(id)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	return rsv, nil
}

// CanCreate เช็ค quota อย่างเดียว (admin ผ่านเสมอ)
func (s *ReservationService) CanCreate(userID uint, role string) (bool, error) {
	if role == entity.RoleAdmin {
		return true, nil
	}
	count, err := s.repo.CountByUser(userID)
	if err != nil {
		return false, err
	}
	return count < MaxActiveReservations, nil
}

// Create จอง: ตรวจร้านแม่ + quota + insert เป็นหน่วยเดียว
func (s *ReservationService) Create(userID uint, role string, restaurantID uint, rsvDate time.Time) (*entity.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var rsv *entity.Reservation
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Select("id").First(&entity.Restaurant{}, restaurantID).Error; err != nil {
			return mapStoreErr(err)
		}
		if role != entity.RoleAdmin {
			var count int64
			if err := tx.Model(&entity.Reservation{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
				return err
			}
			if count >= MaxActiveReservations {
				return ErrQuotaExceeded
			}
		}
		r := entity.Reservation{RsvDate: rsvDate, UserID: userID, RestaurantID: restaurantID}
		if err := tx.Create(&r).Error; err != nil {
			return err
		}
		rsv = &r
		return nil
	})
	return rsv, err
}

// Update แก้ได้เฉพาะเจ้าของหรือ admin
func (s *ReservationService) Update(userID uint, role string, id uint, updates map[string]any) (*entity.Reservation, error) {
	rsv, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := requireOwner(userID, role, rsv.UserID); err != nil {
		return nil, err
	}
	if err := s.repo.Update(id, updates); err != nil {
		return nil, err
	}
	return s.Get(id)
}

// Delete ลบได้เฉพาะเจ้าของหรือ admin
func (s *ReservationService) Delete(userID uint, role string, id uint) error {
	rsv, err := s.Get(id)
	if err != nil {
		return err
	}
	if err := requireOwner(userID, role, rsv.UserID); err != nil {
		return err
	}
	return s.repo.Delete(id)
}
