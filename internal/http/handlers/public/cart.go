package public

import (
	"net/http"
	"strconv"

	"github.com/clickcart/backend/internal/http/response"
	"github.com/clickcart/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AddToCartRequest 加购请求
// Quantity 缺省与显式赋值语义不同：新建项缺省为 1，已有项缺省为加 1
type AddToCartRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  *int `json:"quantity"`
}

// GetCart 获取当前用户购物车
func (h *Handler) GetCart(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	items, err := h.CartService.ListByUser(uid)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to fetch cart", err)
		return
	}

	response.OK(c, gin.H{"items": items})
}

// AddToCart 添加商品到购物车，返回更新后的完整购物车
func (h *Handler) AddToCart(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	items, err := h.CartService.AddToCart(service.AddToCartInput{
		UserID:    uid,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		respondWithMappedError(c, err, cartErrorRules, http.StatusInternalServerError, "failed to update cart")
		return
	}

	response.OK(c, gin.H{"items": items})
}

// DeleteFromCart 从指定用户购物车删除商品
// 仅允许本人操作；目标不存在时返回 404 且购物车保持不变
func (h *Handler) DeleteFromCart(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	targetID, err := strconv.ParseUint(c.Param("user_id"), 10, 64)
	if err != nil || targetID == 0 {
		respondError(c, http.StatusBadRequest, "invalid user id", nil)
		return
	}
	productID, err := strconv.ParseUint(c.Param("product_id"), 10, 64)
	if err != nil || productID == 0 {
		respondError(c, http.StatusBadRequest, "invalid product id", nil)
		return
	}

	items, err := h.CartService.DeleteFromCart(uid, uint(targetID), uint(productID))
	if err != nil {
		respondWithMappedError(c, err, cartErrorRules, http.StatusInternalServerError, "failed to update cart")
		return
	}

	response.OK(c, gin.H{"items": items})
}

// ClearCart 清空当前用户购物车
func (h *Handler) ClearCart(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	if err := h.CartService.ClearCart(uid); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to clear cart", err)
		return
	}

	response.OKWithMessage(c, "cart cleared", gin.H{"items": []struct{}{}})
}
