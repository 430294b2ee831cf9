package public

import (
	"net/http"
	"strconv"
	"strings"

	handlershared "github.com/clickcart/backend/internal/http/handlers/shared"
	"github.com/clickcart/backend/internal/http/response"
	"github.com/clickcart/backend/internal/repository"

	"github.com/gin-gonic/gin"
)

// ListProducts 商品列表，支持分类、搜索、精选过滤与价格排序
func (h *Handler) ListProducts(c *gin.Context) {
	page, pageSize := handlershared.ParsePagination(c)

	filter := repository.ProductListFilter{
		Page:         page,
		PageSize:     pageSize,
		Search:       strings.TrimSpace(c.Query("search")),
		FeaturedOnly: c.Query("featured") == "true",
		WithCategory: true,
	}
	if categoryID, err := strconv.ParseUint(c.Query("category_id"), 10, 64); err == nil {
		filter.CategoryID = uint(categoryID)
	}
	switch c.Query("sort") {
	case "price_asc":
		filter.SortByPrice = "asc"
	case "price_desc":
		filter.SortByPrice = "desc"
	}

	products, total, err := h.ProductService.List(filter)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to fetch products", err)
		return
	}

	response.OKWithPage(c, products, response.NewPagination(page, pageSize, total))
}

// GetProduct 商品详情
func (h *Handler) GetProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondError(c, http.StatusBadRequest, "invalid product id", nil)
		return
	}

	product, err := h.ProductService.Get(uint(id))
	if err != nil {
		respondWithMappedError(c, err, cartErrorRules, http.StatusInternalServerError, "failed to fetch product")
		return
	}

	response.OK(c, product)
}

// GetProductBySlug 根据 slug 获取商品详情
func (h *Handler) GetProductBySlug(c *gin.Context) {
	slug := strings.TrimSpace(c.Param("slug"))
	if slug == "" {
		respondError(c, http.StatusBadRequest, "invalid product slug", nil)
		return
	}

	product, err := h.ProductService.GetBySlug(slug)
	if err != nil {
		respondWithMappedError(c, err, cartErrorRules, http.StatusInternalServerError, "failed to fetch product")
		return
	}

	response.OK(c, product)
}
