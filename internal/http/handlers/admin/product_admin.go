package admin

import (
	"net/http"
	"strconv"
	"strings"

	handlershared "github.com/clickcart/backend/internal/http/handlers/shared"
	"github.com/clickcart/backend/internal/http/response"
	"github.com/clickcart/backend/internal/models"
	"github.com/clickcart/backend/internal/repository"
	"github.com/clickcart/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ProductRequest 创建/更新商品请求
type ProductRequest struct {
	Name            string       `json:"name" binding:"required"`
	Slug            string       `json:"slug" binding:"required"`
	Description     string       `json:"description"`
	Price           models.Money `json:"price" binding:"required"`
	PromoPercentage int          `json:"promo_percentage"`
	Images          []string     `json:"images"`
	Stock           int          `json:"stock"`
	CategoryID      uint         `json:"category_id" binding:"required"`
	Featured        bool         `json:"featured"`
}

func (r ProductRequest) toInput() service.CreateProductInput {
	return service.CreateProductInput{
		Name:            r.Name,
		Slug:            r.Slug,
		Description:     r.Description,
		Price:           r.Price,
		PromoPercentage: r.PromoPercentage,
		Images:          r.Images,
		Stock:           r.Stock,
		CategoryID:      r.CategoryID,
		Featured:        r.Featured,
	}
}

// ListProducts 商品列表（管理端）
func (h *Handler) ListProducts(c *gin.Context) {
	page, pageSize := handlershared.ParsePagination(c)

	filter := repository.ProductListFilter{
		Page:         page,
		PageSize:     pageSize,
		Search:       strings.TrimSpace(c.Query("search")),
		WithCategory: true,
	}
	if categoryID, err := strconv.ParseUint(c.Query("category_id"), 10, 64); err == nil {
		filter.CategoryID = uint(categoryID)
	}

	products, total, err := h.ProductService.List(filter)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to fetch products", err)
		return
	}

	response.OKWithPage(c, products, response.NewPagination(page, pageSize, total))
}

// CreateProduct 创建商品
func (h *Handler) CreateProduct(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid product", err)
		return
	}

	product, err := h.ProductService.Create(req.toInput())
	if err != nil {
		respondWithMappedError(c, err, productErrorRules, http.StatusInternalServerError, "failed to create product")
		return
	}

	response.Created(c, "product created", product)
}

// UpdateProduct 更新商品
func (h *Handler) UpdateProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondError(c, http.StatusBadRequest, "invalid product id", nil)
		return
	}

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid product", err)
		return
	}

	product, err := h.ProductService.Update(uint(id), req.toInput())
	if err != nil {
		respondWithMappedError(c, err, productErrorRules, http.StatusInternalServerError, "failed to update product")
		return
	}

	response.OK(c, product)
}

// DeleteProduct 删除商品
func (h *Handler) DeleteProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondError(c, http.StatusBadRequest, "invalid product id", nil)
		return
	}

	if err := h.ProductService.Delete(uint(id)); err != nil {
		respondWithMappedError(c, err, productErrorRules, http.StatusInternalServerError, "failed to delete product")
		return
	}

	response.OKWithMessage(c, "product deleted", nil)
}
