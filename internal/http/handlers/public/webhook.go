package public

import (
	"io"
	"net/http"
	"time"

	handlershared "github.com/clickcart/backend/internal/http/handlers/shared"
	"github.com/clickcart/backend/internal/http/response"
	"github.com/clickcart/backend/internal/payment/stripe"

	"github.com/gin-gonic/gin"
)

// StripeWebhook 接收并验证 Stripe Webhook 回调
// 仅做签名校验与事件记录，订单落库由前端支付完成后调用创建订单接口
func (h *Handler) StripeWebhook(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid webhook body", err)
		return
	}

	cfg := &stripe.Config{
		SecretKey:     h.Config.Stripe.SecretKey,
		WebhookSecret: h.Config.Stripe.WebhookSecret,
	}
	headers := map[string]string{
		"Stripe-Signature": c.GetHeader("Stripe-Signature"),
	}

	result, err := stripe.VerifyAndParseWebhook(cfg, headers, body, time.Now())
	if err != nil {
		handlershared.RequestLog(c).Warnw("stripe_webhook_rejected", "error", err)
		respondError(c, http.StatusBadRequest, "invalid webhook signature", nil)
		return
	}

	handlershared.RequestLog(c).Infow("stripe_webhook_received",
		"event_id", result.EventID,
		"event_type", result.EventType,
		"session_id", result.SessionID,
		"status", result.Status,
	)

	response.OK(c, gin.H{"received": true})
}
