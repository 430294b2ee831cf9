package admin

import (
	"net/http"
	"strconv"
	"strings"

	handlershared "github.com/clickcart/backend/internal/http/handlers/shared"
	"github.com/clickcart/backend/internal/http/response"
	"github.com/clickcart/backend/internal/repository"

	"github.com/gin-gonic/gin"
)

// UpdateUserRoleRequest 更新用户角色请求
type UpdateUserRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

// ListUsers 用户列表（管理端）
func (h *Handler) ListUsers(c *gin.Context) {
	page, pageSize := handlershared.ParsePagination(c)

	filter := repository.UserListFilter{
		Page:     page,
		PageSize: pageSize,
		Search:   strings.TrimSpace(c.Query("search")),
		Role:     strings.TrimSpace(c.Query("role")),
	}

	users, total, err := h.UserService.List(filter)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to fetch users", err)
		return
	}

	response.OKWithPage(c, users, response.NewPagination(page, pageSize, total))
}

// GetUser 用户详情（管理端）
func (h *Handler) GetUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondError(c, http.StatusBadRequest, "invalid user id", nil)
		return
	}

	user, err := h.UserService.Get(uint(id))
	if err != nil {
		respondWithMappedError(c, err, userErrorRules, http.StatusInternalServerError, "failed to fetch user")
		return
	}

	response.OK(c, user)
}

// UpdateUserRole 更新用户角色
func (h *Handler) UpdateUserRole(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondError(c, http.StatusBadRequest, "invalid user id", nil)
		return
	}

	var req UpdateUserRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	user, err := h.UserService.UpdateRole(uint(id), strings.TrimSpace(req.Role))
	if err != nil {
		respondWithMappedError(c, err, userErrorRules, http.StatusInternalServerError, "failed to update user")
		return
	}

	response.OK(c, user)
}

// DeleteUser 删除用户
func (h *Handler) DeleteUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondError(c, http.StatusBadRequest, "invalid user id", nil)
		return
	}

	if err := h.UserService.Delete(uint(id)); err != nil {
		respondWithMappedError(c, err, userErrorRules, http.StatusInternalServerError, "failed to delete user")
		return
	}

	response.OKWithMessage(c, "user deleted", nil)
}
