package public

import (
	"net/http"
	"strconv"

	"github.com/clickcart/backend/internal/http/response"

	"github.com/gin-gonic/gin"
)

// ListWishlist 获取当前用户心愿单
func (h *Handler) ListWishlist(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	products, err := h.UserService.ListWishlist(uid)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to fetch wishlist", err)
		return
	}

	response.OK(c, products)
}

// ToggleWishlist 切换心愿单商品
func (h *Handler) ToggleWishlist(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	productID, err := strconv.ParseUint(c.Param("product_id"), 10, 64)
	if err != nil || productID == 0 {
		respondError(c, http.StatusBadRequest, "invalid product id", nil)
		return
	}

	in, err := h.UserService.ToggleWishlist(uid, uint(productID))
	if err != nil {
		respondWithMappedError(c, err, wishlistErrorRules, http.StatusInternalServerError, "failed to update wishlist")
		return
	}

	response.OK(c, gin.H{"in_wishlist": in})
}
