package admin

import (
	"net/http"
	"strconv"

	"github.com/clickcart/backend/internal/http/response"
	"github.com/clickcart/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CategoryRequest 创建/更新分类请求
type CategoryRequest struct {
	Name  string `json:"name" binding:"required"`
	Slug  string `json:"slug" binding:"required"`
	Image string `json:"image"`
}

// CreateCategory 创建分类
func (h *Handler) CreateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid category", err)
		return
	}

	category, err := h.CategoryService.Create(service.CategoryInput{
		Name:  req.Name,
		Slug:  req.Slug,
		Image: req.Image,
	})
	if err != nil {
		respondWithMappedError(c, err, categoryErrorRules, http.StatusInternalServerError, "failed to create category")
		return
	}

	response.Created(c, "category created", category)
}

// UpdateCategory 更新分类
func (h *Handler) UpdateCategory(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondError(c, http.StatusBadRequest, "invalid category id", nil)
		return
	}

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid category", err)
		return
	}

	category, err := h.CategoryService.Update(uint(id), service.CategoryInput{
		Name:  req.Name,
		Slug:  req.Slug,
		Image: req.Image,
	})
	if err != nil {
		respondWithMappedError(c, err, categoryErrorRules, http.StatusInternalServerError, "failed to update category")
		return
	}

	response.OK(c, category)
}

// DeleteCategory 删除分类，存在关联商品时拒绝
func (h *Handler) DeleteCategory(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondError(c, http.StatusBadRequest, "invalid category id", nil)
		return
	}

	if err := h.CategoryService.Delete(uint(id)); err != nil {
		respondWithMappedError(c, err, categoryErrorRules, http.StatusInternalServerError, "failed to delete category")
		return
	}

	response.OKWithMessage(c, "category deleted", nil)
}
