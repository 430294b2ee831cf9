package admin

import (
	"net/http"
	"strconv"
	"strings"

	handlershared "github.com/clickcart/backend/internal/http/handlers/shared"
	"github.com/clickcart/backend/internal/http/response"
	"github.com/clickcart/backend/internal/repository"

	"github.com/gin-gonic/gin"
)

// UpdateOrderStatusRequest 更新订单状态请求
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ListOrders 订单列表（管理端）
func (h *Handler) ListOrders(c *gin.Context) {
	page, pageSize := handlershared.ParsePagination(c)

	filter := repository.OrderListFilter{
		Page:     page,
		PageSize: pageSize,
		Status:   strings.TrimSpace(c.Query("status")),
		OrderNo:  strings.TrimSpace(c.Query("order_no")),
	}
	if userID, err := strconv.ParseUint(c.Query("user_id"), 10, 64); err == nil {
		filter.UserID = uint(userID)
	}

	orders, total, err := h.OrderService.List(filter)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to fetch orders", err)
		return
	}

	response.OKWithPage(c, orders, response.NewPagination(page, pageSize, total))
}

// GetOrder 订单详情（管理端）
func (h *Handler) GetOrder(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondError(c, http.StatusBadRequest, "invalid order id", nil)
		return
	}

	order, err := h.OrderService.Get(uint(id))
	if err != nil {
		respondWithMappedError(c, err, orderErrorRules, http.StatusInternalServerError, "failed to fetch order")
		return
	}

	response.OK(c, order)
}

// UpdateOrderStatus 更新订单状态
func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondError(c, http.StatusBadRequest, "invalid order id", nil)
		return
	}

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	order, err := h.OrderService.UpdateStatus(uint(id), strings.TrimSpace(req.Status))
	if err != nil {
		respondWithMappedError(c, err, orderErrorRules, http.StatusInternalServerError, "failed to update order")
		return
	}

	response.OK(c, order)
}

// DeleteOrder 删除订单
func (h *Handler) DeleteOrder(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondError(c, http.StatusBadRequest, "invalid order id", nil)
		return
	}

	if err := h.OrderService.Delete(uint(id)); err != nil {
		respondWithMappedError(c, err, orderErrorRules, http.StatusInternalServerError, "failed to delete order")
		return
	}

	response.OKWithMessage(c, "order deleted", nil)
}
