package controllers

import (
	"errors"
	"strconv"

	"backend/pkg/resp"
	"backend/services"

	"github.com/gin-gonic/gin"
)

// idParam อ่าน :id จาก path (0 = ใช้ไม่ได้)
func idParam(c *gin.Context) uint {
	n, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0
	}
	return uint(n)
}

// failWith แปลง error จาก services เป็น HTTP response
// notFoundMsg/serverMsg คือข้อความเฉพาะของแต่ละ endpoint
// (authorization-denied ตอบ 401 ตาม convention เดิมของ API นี้)
func failWith(c *gin.Context, err error, notFoundMsg, serverMsg string) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		resp.NotFound(c, notFoundMsg)
	case errors.Is(err, services.ErrForbidden):
		resp.Unauthorized(c, err.Error())
	case errors.Is(err, services.ErrQuotaExceeded):
		resp.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrDuplicate):
		resp.BadRequest(c, err.Error())
	default:
		resp.ServerError(c, serverMsg)
	}
}
