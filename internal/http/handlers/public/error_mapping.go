package public

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

var authErrorRules = []mappedHandlerError{
	{target: service.ErrInvalidInput, status: http.StatusBadRequest, message: "invalid request"},
	{target: service.ErrInvalidCredentials, status: http.StatusUnauthorized, message: "invalid email or password"},
	{target: service.ErrEmailExists, status: http.StatusBadRequest, message: "email already registered"},
	{target: service.ErrUsernameExists, status: http.StatusBadRequest, message: "username already taken"},
}

var cartErrorRules = []mappedHandlerError{
	{target: service.ErrInvalidInput, status: http.StatusBadRequest, message: "invalid request"},
	{target: service.ErrProductNotFound, status: http.StatusNotFound, message: "Product not found"},
	{target: service.ErrCartItemNotFound, status: http.StatusNotFound, message: "Item not found in cart"},
	{target: service.ErrForbidden, status: http.StatusForbidden, message: "You can only modify your own cart"},
}

var couponValidateErrorRules = []mappedHandlerError{
	{target: service.ErrCouponNotFound, status: http.StatusNotFound, message: "Coupon not found"},
	{target: service.ErrCouponExpired, status: http.StatusBadRequest, message: "Coupon has expired"},
	{target: service.ErrCouponInactive, status: http.StatusBadRequest, message: "Coupon is no longer active"},
}

var orderErrorRules = []mappedHandlerError{
	{target: service.ErrInvalidInput, status: http.StatusBadRequest, message: "invalid request"},
	{target: service.ErrInvalidOrderItem, status: http.StatusBadRequest, message: "invalid order item"},
	{target: service.ErrOrderNotFound, status: http.StatusNotFound, message: "Order not found"},
	{target: service.ErrForbidden, status: http.StatusForbidden, message: "You can only view your own orders"},
}

var commentErrorRules = []mappedHandlerError{
	{target: service.ErrInvalidInput, status: http.StatusBadRequest, message: "invalid comment"},
	{target: service.ErrProductNotFound, status: http.StatusNotFound, message: "Product not found"},
	{target: service.ErrNotFound, status: http.StatusNotFound, message: "Comment not found"},
	{target: service.ErrForbidden, status: http.StatusForbidden, message: "You can only delete your own comments"},
}

var profileErrorRules = []mappedHandlerError{
	{target: service.ErrInvalidInput, status: http.StatusBadRequest, message: "invalid request"},
	{target: service.ErrInvalidEmail, status: http.StatusBadRequest, message: "invalid email address"},
	{target: service.ErrNotFound, status: http.StatusNotFound, message: "User not found"},
	{target: service.ErrEmailExists, status: http.StatusBadRequest, message: "email already registered"},
	{target: service.ErrUsernameExists, status: http.StatusBadRequest, message: "username already taken"},
}

var wishlistErrorRules = []mappedHandlerError{
	{target: service.ErrProductNotFound, status: http.StatusNotFound, message: "Product not found"},
}
