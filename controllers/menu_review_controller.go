// controllers/menu_review_controller.go
package controllers

import (
	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MenuReviewController struct {
	svc *services.MenuReviewService
}

func NewMenuReviewController(db *gorm.DB) *MenuReviewController {
	return &MenuReviewController{svc: services.NewMenuReviewService(db)}
}

// GET /api/v1/menureviews (Public)
func (mc *MenuReviewController) List(c *gin.Context) {
	reviews, err := mc.svc.List(0)
	if err != nil {
		resp.ServerError(c, "Cannot find Review")
		return
	}
	c.JSON(200, gin.H{"success": true, "count": len(reviews), "data": reviews})
}

// GET /api/v1/menus/:id/menureviews (Public)
func (mc *MenuReviewController) ListForMenu(c *gin.Context) {
	reviews, err := mc.svc.List(idParam(c))
	if err != nil {
		resp.ServerError(c, "Cannot find Review")
		return
	}
	c.JSON(200, gin.H{"success": true, "count": len(reviews), "data": reviews})
}

// GET /api/v1/menureviews/:id (Public)
func (mc *MenuReviewController) Detail(c *gin.Context) {
	review, err := mc.svc.Get(idParam(c))
	if err != nil {
		failWith(c, err, "No review with the id of "+c.Param("id"), "Cannot find Review")
		return
	}
	resp.OK(c, review)
}

// POST /api/v1/menus/:id/menureviews (Protected)
func (mc *MenuReviewController) Create(c *gin.Context) {
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	review, err := mc.svc.Create(utils.CurrentUserID(c), idParam(c), req.Rating, req.Comment)
	if err != nil {
		failWith(c, err, "No menu with the id of "+c.Param("id"), "Cannot create Review")
		return
	}
	resp.Created(c, review)
}

// PUT /api/v1/menureviews/:id (เจ้าของหรือ admin)
func (mc *MenuReviewController) Update(c *gin.Context) {
	var req UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	updates := map[string]any{}
	if req.Rating != nil {
		updates["rating"] = *req.Rating
	}
	if req.Comment != nil {
		updates["comment"] = *req.Comment
	}

	review, err := mc.svc.Update(utils.CurrentUserID(c), utils.CurrentRole(c), idParam(c), updates)
	if err != nil {
		failWith(c, err, "No review with the id of "+c.Param("id"), "Cannot update Review")
		return
	}
	resp.OK(c, review)
}

// DELETE /api/v1/menureviews/:id (เจ้าของหรือ admin)
func (mc *MenuReviewController) Delete(c *gin.Context) {
	err := mc.svc.Delete(utils.CurrentUserID(c), utils.CurrentRole(c), idParam(c))
	if err != nil {
		failWith(c, err, "No review with the id of "+c.Param("id"), "Cannot delete Review")
		return
	}
	resp.OK(c, gin.H{})
}
