package public

import (
	"net/http"

	"github.com/clickcart/backend/internal/http/response"
	"github.com/clickcart/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// UpdateProfileRequest 更新个人资料请求，仅更新显式提交的字段
type UpdateProfileRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Avatar   *string `json:"avatar"`
}

// GetProfile 获取当前用户资料
func (h *Handler) GetProfile(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	user, err := h.UserService.Get(uid)
	if err != nil {
		respondWithMappedError(c, err, profileErrorRules, http.StatusInternalServerError, "failed to fetch profile")
		return
	}

	response.OK(c, user)
}

// UpdateProfile 更新当前用户资料
func (h *Handler) UpdateProfile(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	user, err := h.UserService.UpdateProfile(uid, service.UpdateProfileInput{
		Username: req.Username,
		Email:    req.Email,
		Avatar:   req.Avatar,
	})
	if err != nil {
		respondWithMappedError(c, err, profileErrorRules, http.StatusInternalServerError, "failed to update profile")
		return
	}

	response.OK(c, user)
}
