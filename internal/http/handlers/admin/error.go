package admin

import (
	"errors"
	"net/http"

	"github.com/clickcart/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError 定义业务错误到接口错误响应的映射关系。
type mappedHandlerError struct {
	target  error
	status  int
	message string
}

func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError, fallbackStatus int, fallbackMessage string) {
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			respondError(c, rule.status, rule.message, nil)
			return
		}
	}
	respondError(c, fallbackStatus, fallbackMessage, err)
}

var productErrorRules = []mappedHandlerError{
	{target: service.ErrInvalidInput, status: http.StatusBadRequest, message: "invalid product"},
	{target: service.ErrProductNotFound, status: http.StatusNotFound, message: "Product not found"},
	{target: service.ErrCategoryNotFound, status: http.StatusBadRequest, message: "Category not found"},
	{target: service.ErrSlugExists, status: http.StatusBadRequest, message: "slug already exists"},
}

var categoryErrorRules = []mappedHandlerError{
	{target: service.ErrInvalidInput, status: http.StatusBadRequest, message: "invalid category"},
	{target: service.ErrCategoryNotFound, status: http.StatusNotFound, message: "Category not found"},
	{target: service.ErrCategoryInUse, status: http.StatusBadRequest, message: "category still has products"},
	{target: service.ErrNameExists, status: http.StatusBadRequest, message: "name already exists"},
	{target: service.ErrSlugExists, status: http.StatusBadRequest, message: "slug already exists"},
}

var couponErrorRules = []mappedHandlerError{
	{target: service.ErrInvalidInput, status: http.StatusBadRequest, message: "invalid coupon"},
	{target: service.ErrCouponNotFound, status: http.StatusNotFound, message: "Coupon not found"},
	{target: service.ErrCodeExists, status: http.StatusBadRequest, message: "coupon code already exists"},
}

var orderErrorRules = []mappedHandlerError{
	{target: service.ErrOrderNotFound, status: http.StatusNotFound, message: "Order not found"},
	{target: service.ErrInvalidOrderStatus, status: http.StatusBadRequest, message: "invalid order status"},
}

var userErrorRules = []mappedHandlerError{
	{target: service.ErrInvalidInput, status: http.StatusBadRequest, message: "invalid request"},
	{target: service.ErrNotFound, status: http.StatusNotFound, message: "User not found"},
}

var messageErrorRules = []mappedHandlerError{
	{target: service.ErrNotFound, status: http.StatusNotFound, message: "Message not found"},
}

var commentErrorRules = []mappedHandlerError{
	{target: service.ErrNotFound, status: http.StatusNotFound, message: "Comment not found"},
	{target: service.ErrForbidden, status: http.StatusForbidden, message: "forbidden"},
}
