// controllers/reservation_controller.go
package controllers

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreateReservationRequest struct {
	RsvDate time.Time `json:"rsvDate" binding:"required"`
}

type UpdateReservationRequest struct {
	RsvDate *time.Time `json:"rsvDate"`
}

type ReservationController struct {
	svc *services.ReservationService
}

func NewReservationController(db *gorm.DB) *ReservationController {
	return &ReservationController{svc: services.NewReservationService(db)}
}

// GET /api/v1/reservations (Protected)
// user เห็นของตัวเอง, admin เห็นทั้งหมด (?restaurantId= กรองได้)
func (rc *ReservationController) List(c *gin.Context) {
	restaurantID, _ := strconv.ParseUint(c.Query("restaurantId"), 10, 64)

	rsvs, err := rc.svc.List(utils.CurrentUserID(c), utils.CurrentRole(c), uint(restaurantID))
	if err != nil {
		resp.ServerError(c, "Cannot find Reservation")
		return
	}
	c.JSON(200, gin.H{"success": true, "count": len(rsvs), "data": rsvs})
}

// GET /api/v1/restaurants/:id/reservations (admin)
func (rc *ReservationController) ListForRestaurant(c *gin.Context) {
	rsvs, err := rc.svc.List(utils.CurrentUserID(c), utils.CurrentRole(c), idParam(c))
	if err != nil {
		resp.ServerError(c, "Cannot find Reservation")
		return
	}
	c.JSON(200, gin.H{"success": true, "count": len(rsvs), "data": rsvs})
}

// GET /api/v1/reservations/:id (Protected)
func (rc *ReservationController) Detail(c *gin.Context) {
	rsv, err := rc.svc.Get(idParam(c))
	if err != nil {
		failWith(c, err, "No reservation with the id of "+c.Param("id"), "Cannot find Reservation")
		return
	}
	resp.OK(c, rsv)
}

// POST /api/v1/restaurants/:id/reservations (Protected)
// user ธรรมดาจองค้างได้ไม่เกิน 3 รายการ
func (rc *ReservationController) Create(c *gin.Context) {
	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	uid := utils.CurrentUserID(c)
	rsv, err := rc.svc.Create(uid, utils.CurrentRole(c), idParam(c), req.RsvDate)
	if err != nil {
		if errors.Is(err, services.ErrQuotaExceeded) {
			resp.BadRequest(c, fmt.Sprintf("The user with ID %d has already made %d reservations", uid, services.MaxActiveReservations))
			return
		}
		failWith(c, err, "No restaurant with the id of "+c.Param("id"), "Cannot create Reservation")
		return
	}
	resp.Created(c, rsv)
}

// PUT /api/v1/reservations/:id (เจ้าของหรือ admin)
func (rc *ReservationController) Update(c *gin.Context) {
	var req UpdateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	updates := map[string]any{}
	if req.RsvDate != nil {
		updates["rsv_date"] = *req.RsvDate
	}

	rsv, err := rc.svc.Update(utils.CurrentUserID(c), utils.CurrentRole(c), idParam(c), updates)
	if err != nil {
		failWith(c, err, "No reservation with the id of "+c.Param("id"), "Cannot update Reservation")
		return
	}
	resp.OK(c, rsv)
}

// DELETE /api/v1/reservations/:id (เจ้าของหรือ admin)
func (rc *ReservationController) Delete(c *gin.Context) {
	err := rc.svc.Delete(utils.CurrentUserID(c), utils.CurrentRole(c), idParam(c))
	if err != nil {
		failWith(c, err, "No reservation with the id of "+c.Param("id"), "Cannot delete Reservation")
		return
	}
	resp.OK(c, gin.H{})
}
