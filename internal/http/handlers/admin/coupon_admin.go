package admin

import (
	"net/http"
	"strconv"
	"time"

	"github.com/clickcart/backend/internal/http/response"
	"github.com/clickcart/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CouponRequest 创建/更新优惠券请求
type CouponRequest struct {
	Code      string    `json:"code" binding:"required"`
	Discount  int       `json:"discount" binding:"required"`
	ExpiresAt time.Time `json:"expires_at" binding:"required"`
	IsActive  *bool     `json:"is_active"`
}

func (r CouponRequest) toInput() service.CreateCouponInput {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return service.CreateCouponInput{
		Code:      r.Code,
		Discount:  r.Discount,
		ExpiresAt: r.ExpiresAt,
		IsActive:  active,
	}
}

// ListCoupons 优惠券列表
func (h *Handler) ListCoupons(c *gin.Context) {
	coupons, err := h.CouponService.List()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to fetch coupons", err)
		return
	}
	response.OK(c, coupons)
}

// CreateCoupon 创建优惠券
func (h *Handler) CreateCoupon(c *gin.Context) {
	var req CouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid coupon", err)
		return
	}

	coupon, err := h.CouponService.Create(req.toInput())
	if err != nil {
		respondWithMappedError(c, err, couponErrorRules, http.StatusInternalServerError, "failed to create coupon")
		return
	}

	response.Created(c, "coupon created", coupon)
}

// UpdateCoupon 更新优惠券
func (h *Handler) UpdateCoupon(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondError(c, http.StatusBadRequest, "invalid coupon id", nil)
		return
	}

	var req CouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid coupon", err)
		return
	}

	coupon, err := h.CouponService.Update(uint(id), req.toInput())
	if err != nil {
		respondWithMappedError(c, err, couponErrorRules, http.StatusInternalServerError, "failed to update coupon")
		return
	}

	response.OK(c, coupon)
}

// DeleteCoupon 删除优惠券
func (h *Handler) DeleteCoupon(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondError(c, http.StatusBadRequest, "invalid coupon id", nil)
		return
	}

	if err := h.CouponService.Delete(uint(id)); err != nil {
		respondWithMappedError(c, err, couponErrorRules, http.StatusInternalServerError, "failed to delete coupon")
		return
	}

	response.OKWithMessage(c, "coupon deleted", nil)
}
