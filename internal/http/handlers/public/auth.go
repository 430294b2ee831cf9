package public

import (
	"net/http"

	"github.com/clickcart/backend/internal/http/response"
	"github.com/clickcart/backend/internal/models"
	"github.com/clickcart/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// RegisterRequest 注册请求
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginRequest 登录请求
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// ChangePasswordRequest 修改密码请求
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=6"`
}

// AuthResponse 认证成功响应
type AuthResponse struct {
	Token     string       `json:"token"`
	ExpiresAt int64        `json:"expires_at"`
	User      *models.User `json:"user"`
}

// Register 用户注册
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	user, err := h.AuthService.Register(service.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondWithMappedError(c, err, authErrorRules, http.StatusInternalServerError, "registration failed")
		return
	}

	token, expiresAt, err := h.AuthService.GenerateJWT(user)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "registration failed", err)
		return
	}

	response.Created(c, "registered", AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt.Unix(),
		User:      user,
	})
}

// Login 用户登录
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	user, token, expiresAt, err := h.AuthService.Login(req.Email, req.Password)
	if err != nil {
		respondWithMappedError(c, err, authErrorRules, http.StatusInternalServerError, "login failed")
		return
	}

	response.OK(c, AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt.Unix(),
		User:      user,
	})
}

// ChangePassword 修改密码
func (h *Handler) ChangePassword(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	if err := h.AuthService.ChangePassword(uid, req.OldPassword, req.NewPassword); err != nil {
		respondWithMappedError(c, err, authErrorRules, http.StatusInternalServerError, "password change failed")
		return
	}

	response.OKWithMessage(c, "password changed", nil)
}
