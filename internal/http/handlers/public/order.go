package public

import (
	"net/http"
	"strconv"

	handlershared "github.com/clickcart/backend/internal/http/handlers/shared"
	"github.com/clickcart/backend/internal/http/response"
	"github.com/clickcart/backend/internal/models"
	"github.com/clickcart/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateOrderRequest 创建订单请求（支付完成后调用）
type CreateOrderRequest struct {
	Items           []service.OrderItemInput `json:"items" binding:"required"`
	TotalAmount     models.Money             `json:"total_amount"`
	PaymentID       string                   `json:"payment_id"`
	ShippingAddress map[string]interface{}   `json:"shipping_address"`
}

// CreateOrder 创建订单并清空购物车
func (h *Handler) CreateOrder(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	order, err := h.OrderService.CreateOrder(service.CreateOrderInput{
		UserID:          uid,
		Items:           req.Items,
		TotalAmount:     req.TotalAmount,
		PaymentID:       req.PaymentID,
		ShippingAddress: req.ShippingAddress,
	})
	if err != nil {
		respondWithMappedError(c, err, orderErrorRules, http.StatusInternalServerError, "failed to create order")
		return
	}

	response.Created(c, "order created", order)
}

// ListMyOrders 当前用户订单列表
func (h *Handler) ListMyOrders(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	page, pageSize := handlershared.ParsePagination(c)
	orders, total, err := h.OrderService.ListByUser(uid, page, pageSize)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to fetch orders", err)
		return
	}

	response.OKWithPage(c, orders, response.NewPagination(page, pageSize, total))
}

// GetMyOrder 当前用户订单详情
func (h *Handler) GetMyOrder(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || orderID == 0 {
		respondError(c, http.StatusBadRequest, "invalid order id", nil)
		return
	}

	order, err := h.OrderService.GetForUser(uid, uint(orderID))
	if err != nil {
		respondWithMappedError(c, err, orderErrorRules, http.StatusInternalServerError, "failed to fetch order")
		return
	}

	response.OK(c, order)
}
