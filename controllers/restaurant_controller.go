// controllers/restaurant_controller.go
package controllers

import (
	"strconv"

	"backend/entity"
	"backend/pkg/resp"
	"backend/repository"
	"backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreateRestaurantRequest struct {
	Name        string `json:"name" binding:"required,max=50"`
	Address     string `json:"address" binding:"required"`
	Tel         string `json:"tel" binding:"required"`
	OpeningTime string `json:"openingTime" binding:"required"`
	PriceRange  int    `json:"priceRange" binding:"required,min=1,max=5"`
}

type UpdateRestaurantRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=50"`
	Address     *string `json:"address"`
	Tel         *string `json:"tel"`
	OpeningTime *string `json:"openingTime"`
	PriceRange  *int    `json:"priceRange" binding:"omitempty,min=1,max=5"`
}

type RestaurantController struct {
	svc *services.RestaurantService
}

func NewRestaurantController(db *gorm.DB) *RestaurantController {
	return &RestaurantController{svc: services.NewRestaurantService(db)}
}

// GET /api/v1/restaurants (Public)
// รองรับ select/sort/page/limit และ filter แบบ field[gte]=...
func (rc *RestaurantController) List(c *gin.Context) {
	opts := repository.ParseListOptions(c.Request.URL.Query(), repository.RestaurantColumns)

	rests, total, err := rc.svc.List(opts)
	if err != nil {
		resp.ServerError(c, "Cannot find Restaurant")
		return
	}

	c.JSON(200, gin.H{
		"success":    true,
		"count":      len(rests),
		"total":      total,
		"pagination": repository.BuildPagination(opts.Page, opts.Limit, total),
		"data":       rests,
	})
}

// GET /api/v1/restaurants/featured (Public) — สี่ร้านแรก
func (rc *RestaurantController) Featured(c *gin.Context) {
	const limit = 4
	rests, total, err := rc.svc.Featured(limit)
	if err != nil {
		resp.ServerError(c, "Cannot find Restaurant")
		return
	}

	var pagination repository.Pagination
	if total > limit {
		pagination.Next = &repository.PageInfo{Page: 2, Limit: limit}
	}
	c.JSON(200, gin.H{
		"success": true, "count": len(rests), "data": rests, "pagination": pagination,
	})
}

// GET /api/v1/restaurants/search (Public)
func (rc *RestaurantController) Search(c *gin.Context) {
	name := c.Query("restaurantName")
	minPrice, _ := strconv.Atoi(c.Query("minPrice"))
	maxPrice, _ := strconv.Atoi(c.Query("maxPrice"))

	rests, err := rc.svc.Search(name, minPrice, maxPrice)
	if err != nil {
		resp.ServerError(c, "Cannot search Restaurant")
		return
	}
	c.JSON(200, gin.H{"success": true, "count": len(rests), "data": rests})
}

// GET /api/v1/restaurants/:id (Public)
func (rc *RestaurantController) Detail(c *gin.Context) {
	rest, err := rc.svc.Get(idParam(c))
	if err != nil {
		failWith(c, err, "No restaurant with the id of "+c.Param("id"), "Cannot find Restaurant")
		return
	}
	resp.OK(c, rest)
}

// POST /api/v1/restaurants (admin)
func (rc *RestaurantController) Create(c *gin.Context) {
	var req CreateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	rest := entity.Restaurant{
		Name:        req.Name,
		Address:     req.Address,
		Tel:         req.Tel,
		OpeningTime: req.OpeningTime,
		PriceRange:  req.PriceRange,
	}
	if err := rc.svc.Create(&rest); err != nil {
		failWith(c, err, "", "Cannot create Restaurant")
		return
	}
	resp.Created(c, rest)
}

// PUT /api/v1/restaurants/:id (admin)
func (rc *RestaurantController) Update(c *gin.Context) {
	var req UpdateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}
	if req.Tel != nil {
		updates["tel"] = *req.Tel
	}
	if req.OpeningTime != nil {
		updates["opening_time"] = *req.OpeningTime
	}
	if req.PriceRange != nil {
		updates["price_range"] = *req.PriceRange
	}

	rest, err := rc.svc.Update(idParam(c), updates)
	if err != nil {
		failWith(c, err, "No restaurant with the id of "+c.Param("id"), "Cannot update Restaurant")
		return
	}
	resp.OK(c, rest)
}

// DELETE /api/v1/restaurants/:id (admin) — cascade ลบลูกทุกตัว
func (rc *RestaurantController) Delete(c *gin.Context) {
	if err := rc.svc.Delete(idParam(c)); err != nil {
		failWith(c, err, "No restaurant with the id of "+c.Param("id"), "Cannot delete Restaurant")
		return
	}
	resp.OK(c, gin.H{})
}
