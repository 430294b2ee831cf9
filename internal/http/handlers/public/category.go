package public

import (
	"net/http"
	"strconv"

	"github.com/clickcart/backend/internal/http/response"
	"github.com/clickcart/backend/internal/service"

	"github.com/gin-gonic/gin"
)

var categoryErrorRules = []mappedHandlerError{
	{target: service.ErrCategoryNotFound, status: http.StatusNotFound, message: "Category not found"},
}

// ListCategories 分类列表
func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.CategoryService.List()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to fetch categories", err)
		return
	}
	response.OK(c, categories)
}

// GetCategory 分类详情
func (h *Handler) GetCategory(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondError(c, http.StatusBadRequest, "invalid category id", nil)
		return
	}

	category, err := h.CategoryService.Get(uint(id))
	if err != nil {
		respondWithMappedError(c, err, categoryErrorRules, http.StatusInternalServerError, "failed to fetch category")
		return
	}
	response.OK(c, category)
}
