package controllers

import (
	"errors"
	"net/http"

	"backend/configs"
	"backend/entity"
	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RegisterRequest struct {
	Name      string `json:"name" binding:"required"`
	Telephone string `json:"telephone"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	Role      string `json:"role" binding:"omitempty,oneof=user admin"`
}
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthController struct {
	svc *services.AuthService
	cfg *configs.Config
}

func NewAuthController(db *gorm.DB, cfg *configs.Config) *AuthController {
	return &AuthController{svc: services.NewAuthService(db, cfg.JWTSecret, cfg.JWTTTL), cfg: cfg}
}

// POST /api/v1/auth/register
func (a *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := a.svc.Register(req.Name, req.Telephone, req.Email, req.Password, req.Role)
	if err != nil {
		if errors.Is(err, services.ErrDuplicate) {
			resp.BadRequest(c, "email already registered")
			return
		}
		resp.ServerError(c, "Cannot register user")
		return
	}

	a.sendTokenResponse(c, user, http.StatusCreated)
}

// POST /api/v1/auth/login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "Please provide an email and password")
		return
	}

	token, user, err := a.svc.Login(req.Email, req.Password)
	if err != nil {
		resp.Unauthorized(c, "Invalid credentials")
		return
	}

	a.setTokenCookie(c, token)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   token,
		"user": gin.H{
			"id": user.ID, "name": user.Name, "email": user.Email, "role": user.Role,
		},
	})
}

// GET /api/v1/auth/logout — เคลียร์ cookie
func (a *AuthController) Logout(c *gin.Context) {
	c.SetCookie("token", "none", 10, "/", "", a.cfg.Env == "production", true)
	resp.OK(c, gin.H{})
}

// GET /api/v1/auth/me (ต้อง login)
func (a *AuthController) Me(c *gin.Context) {
	user, err := a.svc.GetProfile(utils.CurrentUserID(c))
	if err != nil {
		failWith(c, err, "user not found", "Cannot get profile")
		return
	}
	resp.OK(c, user)
}

// ออก token + set httpOnly cookie แบบเดียวกับ login
func (a *AuthController) sendTokenResponse(c *gin.Context, user *entity.User, status int) {
	token, err := a.svc.IssueToken(user)
	if err != nil {
		resp.ServerError(c, "cannot generate token")
		return
	}
	a.setTokenCookie(c, token)
	c.JSON(status, gin.H{"success": true, "token": token})
}

func (a *AuthController) setTokenCookie(c *gin.Context, token string) {
	secure := a.cfg.Env == "production"
	c.SetCookie("token", token, int(a.cfg.CookieTTL.Seconds()), "/", "", secure, true)
}
