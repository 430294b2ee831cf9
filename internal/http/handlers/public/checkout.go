package public

import (
	"net/http"

	"github.com/clickcart/backend/internal/http/response"
	"github.com/clickcart/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CheckoutRequest 创建托管收银台会话请求
type CheckoutRequest struct {
	Items []service.CheckoutItemInput `json:"items" binding:"required"`
}

// CreateCheckoutSession 创建托管收银台会话
// 行项目单价由服务端按商品当前价与折扣重新计算
func (h *Handler) CreateCheckoutSession(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	result, err := h.CheckoutService.CreateSession(c.Request.Context(), uid, req.Items)
	if err != nil {
		// 收银台失败统一返回 500，不向客户端暴露具体原因，详情走日志
		respondError(c, http.StatusInternalServerError, "Payment processing failed", err)
		return
	}

	response.OK(c, result)
}
