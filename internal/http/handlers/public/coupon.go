package public

import (
	"net/http"

	"github.com/clickcart/backend/internal/http/response"

	"github.com/gin-gonic/gin"
)

// ValidateCouponRequest 优惠码校验请求
type ValidateCouponRequest struct {
	Code string `json:"code" binding:"required"`
}

// ValidateCoupon 校验优惠码
// 优惠码不区分大小写；过期与停用分别返回明确的提示
func (h *Handler) ValidateCoupon(c *gin.Context) {
	var req ValidateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	coupon, err := h.CouponService.Validate(req.Code)
	if err != nil {
		respondWithMappedError(c, err, couponValidateErrorRules, http.StatusInternalServerError, "failed to validate coupon")
		return
	}

	response.OKWithMessage(c, "Coupon is valid", coupon)
}
