package stripe

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"testing"
	"time"
)

func signWebhookBody(secret string, timestamp int64, body []byte) string {
	payload := strconv.FormatInt(timestamp, 10) + "." + string(body)
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(payload))
	return hex.EncodeToString(h.Sum(nil))
}

func checkoutSessionEventBody(eventType string) []byte {
	return []byte(fmt.Sprintf(`{
		"id": "evt_test_1",
		"type": %q,
		"data": {
			"object": {
				"object": "checkout.session",
				"id": "cs_test_1",
				"payment_intent": "pi_test_1",
				"client_reference_id": "order-42",
				"currency": "usd",
				"amount_total": 8500,
				"created": 1750000000,
				"payment_status": "paid",
				"status": "complete"
			}
		}
	}`, eventType))
}

func TestVerifyAndParseWebhook(t *testing.T) {
	cfg := &Config{WebhookSecret: "whsec_test"}
	body := checkoutSessionEventBody("checkout.session.completed")
	now := time.Unix(1750000100, 0)
	signature := signWebhookBody(cfg.WebhookSecret, now.Unix(), body)
	headers := map[string]string{
		"Stripe-Signature": fmt.Sprintf("t=%d,v1=%s", now.Unix(), signature),
	}

	result, err := VerifyAndParseWebhook(cfg, headers, body, now)
	if err != nil {
		t.Fatalf("VerifyAndParseWebhook error: %v", err)
	}
	if result.EventType != "checkout.session.completed" {
		t.Fatalf("unexpected event type: %s", result.EventType)
	}
	if result.SessionID != "cs_test_1" || result.PaymentIntentID != "pi_test_1" {
		t.Fatalf("unexpected ids: %+v", result)
	}
	if result.ReferenceID != "order-42" {
		t.Fatalf("unexpected reference id: %s", result.ReferenceID)
	}
	if result.Status != "success" {
		t.Fatalf("expected success status, got: %s", result.Status)
	}
	if result.Amount != "85.00" || result.Currency != "USD" {
		t.Fatalf("unexpected amount: %s %s", result.Amount, result.Currency)
	}
	if result.PaidAt == nil || result.PaidAt.Unix() != 1750000000 {
		t.Fatalf("unexpected paid at: %v", result.PaidAt)
	}
}

func TestVerifyWebhookCaseInsensitiveHeader(t *testing.T) {
	cfg := &Config{WebhookSecret: "whsec_test"}
	body := checkoutSessionEventBody("checkout.session.completed")
	now := time.Unix(1750000100, 0)
	signature := signWebhookBody(cfg.WebhookSecret, now.Unix(), body)
	headers := map[string]string{
		"stripe-signature": fmt.Sprintf("t=%d,v1=%s", now.Unix(), signature),
	}

	if _, err := VerifyAndParseWebhook(cfg, headers, body, now); err != nil {
		t.Fatalf("expected header lookup to be case insensitive, got: %v", err)
	}
}

func TestVerifyWebhookRejectsBadSignature(t *testing.T) {
	cfg := &Config{WebhookSecret: "whsec_test"}
	body := checkoutSessionEventBody("checkout.session.completed")
	now := time.Unix(1750000100, 0)
	signature := signWebhookBody("wrong_secret", now.Unix(), body)
	headers := map[string]string{
		"Stripe-Signature": fmt.Sprintf("t=%d,v1=%s", now.Unix(), signature),
	}

	if _, err := VerifyAndParseWebhook(cfg, headers, body, now); !errors.Is(err, ErrSignatureInvalid) {
		t.Fatalf("expected ErrSignatureInvalid, got: %v", err)
	}
}

func TestVerifyWebhookRejectsStaleTimestamp(t *testing.T) {
	cfg := &Config{WebhookSecret: "whsec_test", WebhookToleranceSeconds: 300}
	body := checkoutSessionEventBody("checkout.session.completed")
	signedAt := time.Unix(1750000000, 0)
	now := signedAt.Add(10 * time.Minute)
	signature := signWebhookBody(cfg.WebhookSecret, signedAt.Unix(), body)
	headers := map[string]string{
		"Stripe-Signature": fmt.Sprintf("t=%d,v1=%s", signedAt.Unix(), signature),
	}

	if _, err := VerifyAndParseWebhook(cfg, headers, body, now); !errors.Is(err, ErrSignatureInvalid) {
		t.Fatalf("expected ErrSignatureInvalid for stale timestamp, got: %v", err)
	}
}

func TestVerifyWebhookRequiresSignatureHeader(t *testing.T) {
	cfg := &Config{WebhookSecret: "whsec_test"}
	body := checkoutSessionEventBody("checkout.session.completed")

	if _, err := VerifyAndParseWebhook(cfg, nil, body, time.Now()); !errors.Is(err, ErrSignatureInvalid) {
		t.Fatalf("expected ErrSignatureInvalid without header, got: %v", err)
	}
	if _, err := VerifyAndParseWebhook(&Config{}, map[string]string{"Stripe-Signature": "t=1,v1=x"}, body, time.Now()); !errors.Is(err, ErrConfigInvalid) {
		t.Fatalf("expected ErrConfigInvalid without webhook secret, got: %v", err)
	}
}

func TestWebhookEventStatusMapping(t *testing.T) {
	cfg := &Config{WebhookSecret: "whsec_test"}
	now := time.Unix(1750000100, 0)

	cases := []struct {
		eventType string
		status    string
	}{
		{"checkout.session.expired", "expired"},
		{"checkout.session.async_payment_failed", "failed"},
		{"checkout.session.async_payment_succeeded", "success"},
	}
	for _, tc := range cases {
		body := checkoutSessionEventBody(tc.eventType)
		signature := signWebhookBody(cfg.WebhookSecret, now.Unix(), body)
		headers := map[string]string{
			"Stripe-Signature": fmt.Sprintf("t=%d,v1=%s", now.Unix(), signature),
		}
		result, err := VerifyAndParseWebhook(cfg, headers, body, now)
		if err != nil {
			t.Fatalf("VerifyAndParseWebhook(%s) error: %v", tc.eventType, err)
		}
		if result.Status != tc.status {
			t.Fatalf("event %s: expected status %s, got %s", tc.eventType, tc.status, result.Status)
		}
	}
}

func TestFromMinorAmountZeroDecimalCurrency(t *testing.T) {
	if got := fromMinorAmount(8500, "USD"); got != "85.00" {
		t.Fatalf("expected 85.00, got %s", got)
	}
	if got := fromMinorAmount(8500, "JPY"); got != "8500" {
		t.Fatalf("expected 8500, got %s", got)
	}
}
