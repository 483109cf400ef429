// controllers/promotion_controller.go
package controllers

import (
	"time"

	"backend/pkg/resp"
	"backend/repository"
	"backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreatePromotionRequest struct {
	Name         string    `json:"name" binding:"required,max=50"`
	Detail       string    `json:"detail" binding:"required"`
	RestaurantID uint      `json:"restaurantId" binding:"required"`
	StartDate    time.Time `json:"startDate" binding:"required"`
	EndDate      time.Time `json:"endDate" binding:"required"`
	MenuIDs      []uint    `json:"menuIds"`
}

type UpdatePromotionRequest struct {
	Name      *string    `json:"name" binding:"omitempty,max=50"`
	Detail    *string    `json:"detail"`
	StartDate *time.Time `json:"startDate"`
	EndDate   *time.Time `json:"endDate"`
	MenuIDs   []uint     `json:"menuIds"`
}

type PromotionController struct {
	svc *services.PromotionService
}

func NewPromotionController(db *gorm.DB) *PromotionController {
	return &PromotionController{svc: services.NewPromotionService(db)}
}

// GET /api/v1/promotions (Public)
func (pc *PromotionController) List(c *gin.Context) {
	opts := repository.ParseListOptions(c.Request.URL.Query(), repository.PromotionColumns)

	promos, total, err := pc.svc.List(opts)
	if err != nil {
		resp.ServerError(c, "Cannot find Promotion")
		return
	}
	c.JSON(200, gin.H{
		"success":    true,
		"count":      len(promos),
		"total":      total,
		"pagination": repository.BuildPagination(opts.Page, opts.Limit, total),
		"data":       promos,
	})
}

// GET /api/v1/promotions/:id (Public)
func (pc *PromotionController) Detail(c *gin.Context) {
	promo, err := pc.svc.Get(idParam(c))
	if err != nil {
		failWith(c, err, "No promotion with the id of "+c.Param("id"), "Cannot find Promotion")
		return
	}
	resp.OK(c, promo)
}

// POST /api/v1/promotions (admin)
func (pc *PromotionController) Create(c *gin.Context) {
	var req CreatePromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	promo, err := pc.svc.Create(req.RestaurantID, req.Name, req.Detail, req.StartDate, req.EndDate, req.MenuIDs)
	if err != nil {
		failWith(c, err, "restaurant or menu not found", "Cannot create Promotion")
		return
	}
	resp.Created(c, promo)
}

// PUT /api/v1/promotions/:id (admin)
func (pc *PromotionController) Update(c *gin.Context) {
	var req UpdatePromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Detail != nil {
		updates["detail"] = *req.Detail
	}
	if req.StartDate != nil {
		updates["start_date"] = *req.StartDate
	}
	if req.EndDate != nil {
		updates["end_date"] = *req.EndDate
	}

	promo, err := pc.svc.Update(idParam(c), updates, req.MenuIDs)
	if err != nil {
		failWith(c, err, "No promotion with the id of "+c.Param("id"), "Cannot update Promotion")
		return
	}
	resp.OK(c, promo)
}

// DELETE /api/v1/promotions/:id (admin)
func (pc *PromotionController) Delete(c *gin.Context) {
	if err := pc.svc.Delete(idParam(c)); err != nil {
		failWith(c, err, "No promotion with the id of "+c.Param("id"), "Cannot delete Promotion")
		return
	}
	resp.OK(c, gin.H{})
}
