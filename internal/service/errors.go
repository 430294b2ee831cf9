package service

import "errors"

// 业务层哨兵错误，由 HTTP 层映射为响应状态码
var (
	ErrNotFound           = errors.New("record not found")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailExists        = errors.New("email already registered")
	ErrUsernameExists     = errors.New("username already taken")
	ErrNameExists         = errors.New("name already exists")
	ErrSlugExists         = errors.New("slug already exists")
	ErrCodeExists         = errors.New("coupon code already exists")

	ErrProductNotFound  = errors.New("product not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrCategoryInUse    = errors.New("category has products")

	ErrCartItemNotFound = errors.New("cart item not found")

	ErrCouponNotFound = errors.New("coupon not found")
	ErrCouponExpired  = errors.New("coupon has expired")
	ErrCouponInactive = errors.New("coupon is no longer active")

	ErrOrderNotFound      = errors.New("order not found")
	ErrInvalidOrderItem   = errors.New("invalid order item")
	ErrInvalidOrderStatus = errors.New("invalid order status")

	ErrCheckoutFailed = errors.New("payment processing failed")

	ErrEmailServiceDisabled      = errors.New("email service disabled")
	ErrEmailServiceNotConfigured = errors.New("email service not configured")
	ErrInvalidEmail              = errors.New("invalid email address")
	ErrEmailSendFailed           = errors.New("email send failed")
)
