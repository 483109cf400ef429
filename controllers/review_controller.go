// controllers/review_controller.go
package controllers

import (
	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreateReviewRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment" binding:"required"`
}

type UpdateReviewRequest struct {
	Rating  *int    `json:"rating" binding:"omitempty,min=1,max=5"`
	Comment *string `json:"comment"`
}

type ReviewController struct {
	svc *services.ReviewService
}

func NewReviewController(db *gorm.DB) *ReviewController {
	return &ReviewController{svc: services.NewReviewService(db)}
}

// GET /api/v1/reviews (Public)
func (rc *ReviewController) List(c *gin.Context) {
	reviews, err := rc.svc.List(0)
	if err != nil {
		resp.ServerError(c, "Cannot find Review")
		return
	}
	c.JSON(200, gin.H{"success": true, "count": len(reviews), "data": reviews})
}

// GET /api/v1/restaurants/:id/reviews (Public)
func (rc *ReviewController) ListForRestaurant(c *gin.Context) {
	reviews, err := rc.svc.List(idParam(c))
	if err != nil {
		resp.ServerError(c, "Cannot find Review")
		return
	}
	c.JSON(200, gin.H{"success": true, "count": len(reviews), "data": reviews})
}

// GET /api/v1/reviews/:id (Public)
func (rc *ReviewController) Detail(c *gin.Context) {
	review, err := rc.svc.Get(idParam(c))
	if err != nil {
		failWith(c, err, "No review with the id of "+c.Param("id"), "Cannot find Review")
		return
	}
	resp.OK(c, review)
}

// POST /api/v1/restaurants/:id/reviews (Protected)
func (rc *ReviewController) Create(c *gin.Context) {
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	review, err := rc.svc.Create(utils.CurrentUserID(c), idParam(c), req.Rating, req.Comment)
	if err != nil {
		failWith(c, err, "No restaurant with the id of "+c.Param("id"), "Cannot create Review")
		return
	}
	resp.Created(c, review)
}

// PUT /api/v1/reviews/:id (เจ้าของหรือ admin)
func (rc *ReviewController) Update(c *gin.Context) {
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

	review, err := rc.svc.Update(utils.CurrentUserID(c), utils.CurrentRole(c), idParam(c), updates)
	if err != nil {
		failWith(c, err, "No review with the id of "+c.Param("id"), "Cannot update Review")
		return
	}
	resp.OK(c, review)
}

// DELETE /api/v1/reviews/:id (เจ้าของหรือ admin)
func (rc *ReviewController) Delete(c *gin.Context) {
	err := rc.svc.Delete(utils.CurrentUserID(c), utils.CurrentRole(c), idParam(c))
	if err != nil {
		failWith(c, err, "No review with the id of "+c.Param("id"), "Cannot delete Review")
		return
	}
	resp.OK(c, gin.H{})
}
