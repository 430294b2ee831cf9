package public

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/clickcart/backend/internal/models"
	"github.com/clickcart/backend/internal/provider"
	"github.com/clickcart/backend/internal/repository"
	"github.com/clickcart/backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupCouponHandlerTest(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	dsn := fmt.Sprintf("file:coupon_handler_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Coupon{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	models.DB = db

	container := &provider.Container{
		CouponService: service.NewCouponService(repository.NewCouponRepository(db)),
	}
	handler := New(container)

	r := gin.New()
	r.POST("/api/coupons/validate", handler.ValidateCoupon)
	return r, db
}

func postCouponValidate(r *gin.Engine, code string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	body := fmt.Sprintf(`{"code": %q}`, code)
	req := httptest.NewRequest(http.MethodPost, "/api/coupons/validate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func decodeMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body failed: %v", err)
	}
	message, _ := body["message"].(string)
	return message
}

func TestValidateCouponEndpoint(t *testing.T) {
	r, db := setupCouponHandlerTest(t)
	coupon := models.Coupon{
		Code:      "WELCOME20",
		Discount:  20,
		ExpiresAt: time.Now().Add(24 * time.Hour),
		IsActive:  true,
	}
	if err := db.Create(&coupon).Error; err != nil {
		t.Fatalf("create coupon failed: %v", err)
	}

	w := postCouponValidate(r, "welcome20")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if got := decodeMessage(t, w); got != "Coupon is valid" {
		t.Fatalf("unexpected message: %s", got)
	}
}

func TestValidateCouponEndpointNotFound(t *testing.T) {
	r, _ := setupCouponHandlerTest(t)

	w := postCouponValidate(r, "MISSING")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if got := decodeMessage(t, w); got != "Coupon not found" {
		t.Fatalf("unexpected message: %s", got)
	}
}

func TestValidateCouponEndpointExpired(t *testing.T) {
	r, db := setupCouponHandlerTest(t)
	// 同时过期且停用，过期优先
	coupon := models.Coupon{
		Code:      "OLD10",
		Discount:  10,
		ExpiresAt: time.Now().Add(-time.Hour),
		IsActive:  false,
	}
	if err := db.Create(&coupon).Error; err != nil {
		t.Fatalf("create coupon failed: %v", err)
	}

	w := postCouponValidate(r, "OLD10")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if got := decodeMessage(t, w); got != "Coupon has expired" {
		t.Fatalf("unexpected message: %s", got)
	}
}

func TestValidateCouponEndpointInactive(t *testing.T) {
	r, db := setupCouponHandlerTest(t)
	coupon := models.Coupon{
		Code:      "PAUSED10",
		Discount:  10,
		ExpiresAt: time.Now().Add(24 * time.Hour),
		IsActive:  false,
	}
	if err := db.Create(&coupon).Error; err != nil {
		t.Fatalf("create coupon failed: %v", err)
	}

	w := postCouponValidate(r, "PAUSED10")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if got := decodeMessage(t, w); got != "Coupon is no longer active" {
		t.Fatalf("unexpected message: %s", got)
	}
}

func TestValidateCouponEndpointMissingCode(t *testing.T) {
	r, _ := setupCouponHandlerTest(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/coupons/validate", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing code, got %d", w.Code)
	}
}
