package controllers

import (
	"backend/pkg/resp"
	"backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreateMenuRequest struct {
	Name  string `json:"name" binding:"required,max=50"`
	Price int64  `json:"price" binding:"required,min=0"`
}

type UpdateMenuRequest struct {
	Name  *string `json:"name" binding:"omitempty,max=50"`
	Price *int64  `json:"price" binding:"omitempty,min=0"`
}

type MenuController struct {
	svc *services.MenuService
}

func NewMenuController(db *gorm.DB) *MenuController {
	return &MenuController{svc: services.NewMenuService(db)}
}

// GET /api/v1/menus (Public)
func (mc *MenuController) List(c *gin.Context) {
	menus, err := mc.svc.List(0)
	if err != nil {
		resp.ServerError(c, "Cannot find Menu")
		return
	}
	c.JSON(200, gin.H{"success": true, "count": len(menus), "data": menus})
}

// GET /api/v1/restaurants/:id/menus (Public)
func (mc *MenuController) ListForRestaurant(c *gin.Context) {
	menus, err := mc.svc.List(idParam(c))
	if err != nil {
		resp.ServerError(c, "Cannot find Menu")
		return
	}
	c.JSON(200, gin.H{"success": true, "count": len(menus), "data": menus})
}

// GET /api/v1/menus/:id (Public)
func (mc *MenuController) Detail(c *gin.Context) {
	menu, err := mc.svc.Get(idParam(c))
	if err != nil {
		failWith(c, err, "No menu with the id of "+c.Param("id"), "Cannot find Menu")
		return
	}
	resp.OK(c, menu)
}

// POST /api/v1/restaurants/:id/menus (admin)
func (mc *MenuController) Create(c *gin.Context) {
	var req CreateMenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	menu, err := mc.svc.Create(idParam(c), req.Name, req.Price)
	if err != nil {
		failWith(c, err, "No restaurant with the id of "+c.Param("id"), "Cannot create Menu")
		return
	}
	resp.Created(c, menu)
}

// PUT /api/v1/menus/:id (admin)
func (mc *MenuController) Update(c *gin.Context) {
	var req UpdateMenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}

	menu, err := mc.svc.Update(idParam(c), updates)
	if err != nil {
		failWith(c, err, "No menu with the id of "+c.Param("id"), "Cannot update Menu")
		return
	}
	resp.OK(c, menu)
}

// DELETE /api/v1/menus/:id (admin) — cascade ลบรีวิวเมนูด้วย
func (mc *MenuController) Delete(c *gin.Context) {
	if err := mc.svc.Delete(idParam(c)); err != nil {
		failWith(c, err, "No menu with the id of "+c.Param("id"), "Cannot delete Menu")
		return
	}
	resp.OK(c, gin.H{})
}
