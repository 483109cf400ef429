package entity

// join table Promotion<->Menu (ต้อง SetupJoinTable ก่อน migrate)
type PromotionMenu struct {
	PromotionID uint `gorm:"primaryKey" json:"promotionId"`
	MenuID      uint `gorm:"primaryKey" json:"menuId"`
}
