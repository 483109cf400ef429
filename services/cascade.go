package services

import (
	"errors"
	"fmt"

	"backend/entity"

	"gorm.io/gorm"
)

// childEdge คือความสัมพันธ์ parent→child หนึ่งเส้นที่ cascade ต้องลบตาม
type childEdge struct {
	table     string // child table, key into cascadeEdges for deeper levels
	model     any    // child entity prototype for gorm
	parentCol string // FK column on the child pointing at the parent
}

// cascadeEdges declares the whole deletion graph in one place so it can be
// inspected and tested without touching any entity's code path.
var cascadeEdges = map[string][]childEdge{
	"restaurants": {
		{table: "menus", model: &entity.Menu{}, parentCol: "restaurant_id"},
		{table: "reviews", model: &entity.Review{}, parentCol: "restaurant_id"},
		{table: "reservations", model: &entity.Reservation{}, parentCol: "restaurant_id"},
		{table: "promotions", model: &entity.Promotion{}, parentCol: "restaurant_id"},
	},
	"menus": {
		{table: "menu_reviews", model: &entity.MenuReview{}, parentCol: "menu_id"},
		{table: "promotion_menus", model: &entity.PromotionMenu{}, parentCol: "menu_id"},
	},
	"promotions": {
		{table: "promotion_menus", model: &entity.PromotionMenu{}, parentCol: "promotion_id"},
	},
}

// CascadeEngine ลบ parent พร้อมลูกทุกตัวใน transaction เดียว
type CascadeEngine struct {
	DB *gorm.DB
}

func NewCascadeEngine(db *gorm.DB) *CascadeEngine { return &CascadeEngine{DB: db} }

// DeleteRestaurant removes the restaurant and every dependent record
// (menus with their menu reviews, reviews, reservations, promotions with
// their menu links). Reports ErrNotFound without deleting anything when
// the restaurant does not exist.
func (e *CascadeEngine) DeleteRestaurant(id uint) error {
	return e.delete("restaurants", &entity.Restaurant{}, id)
}

// DeleteMenu removes the menu and its menu reviews and promotion links.
func (e *CascadeEngine) DeleteMenu(id uint) error {
	return e.delete("menus", &entity.Menu{}, id)
}

// DeletePromotion removes the promotion and its menu links.
func (e *CascadeEngine) DeletePromotion(id uint) error {
	return e.delete("promotions", &entity.Promotion{}, id)
}

func (e *CascadeEngine) delete(table string, model any, id uint) error {
	err := e.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Table(table).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrNotFound
		}
		if err := deleteChildren(tx, table, []uint{id}); err != nil {
			return err
		}
		return tx.Unscoped().Where("id = ?", id).Delete(model).Error
	})
	if err != nil && !errors.Is(err, ErrNotFound) && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("cascade delete %s %d: %w", table, id, err)
	}
	return err
}

// deleteChildren walks the declared edges depth-first: grandchildren are
// removed before their parents so no step can orphan a deeper level.
func deleteChildren(tx *gorm.DB, table string, parentIDs []uint) error {
	if len(parentIDs) == 0 {
		return nil
	}
	for _, edge := range cascadeEdges[table] {
		if len(cascadeEdges[edge.table]) > 0 {
			var childIDs []uint
			if err := tx.Model(edge.model).
				Where(edge.parentCol+" IN ?", parentIDs).
				Pluck("id", &childIDs).Error; err != nil {
				return err
			}
			if err := deleteChildren(tx, edge.table, childIDs); err != nil {
				return err
			}
		}
		if err := tx.Unscoped().
			Where(edge.parentCol+" IN ?", parentIDs).
			Delete(edge.model).Error; err != nil {
			return err
		}
	}
	return nil
}
