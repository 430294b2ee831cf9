package public

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/clickcart/backend/internal/config"
	"github.com/clickcart/backend/internal/models"
	"github.com/clickcart/backend/internal/provider"
	"github.com/clickcart/backend/internal/repository"
	"github.com/clickcart/backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupCheckoutHandlerTest(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	dsn := fmt.Sprintf("file:checkout_handler_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Category{}, &models.Product{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	models.DB = db

	productRepo := repository.NewProductRepository(db)
	container := &provider.Container{
		CheckoutService: service.NewCheckoutService(&config.Config{}, productRepo),
	}
	handler := New(container)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", uint(1))
		c.Next()
	})
	r.POST("/api/checkout/session", handler.CreateCheckoutSession)
	return r, db
}

func postCheckout(t *testing.T, r *gin.Engine, payload string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/checkout/session", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

// 结账失败一律返回通用 500，不向客户端区分失败原因
func TestCheckoutEndpointUnknownProductReturnsGenericError(t *testing.T) {
	r, _ := setupCheckoutHandlerTest(t)

	w := postCheckout(t, r, `{"items":[{"product_id":999,"quantity":1}]}`)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d: %s", w.Code, w.Body.String())
	}
	if got := decodeMessage(t, w); got != "Payment processing failed" {
		t.Fatalf("unexpected message: %s", got)
	}
}

func TestCheckoutEndpointInvalidItemsReturnGenericError(t *testing.T) {
	r, db := setupCheckoutHandlerTest(t)
	product := createHandlerTestProduct(t, db, "checkout-generic")

	for _, payload := range []string{
		`{"items":[]}`,
		fmt.Sprintf(`{"items":[{"product_id":%d,"quantity":0}]}`, product.ID),
	} {
		w := postCheckout(t, r, payload)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("payload %s: expected 500, got %d", payload, w.Code)
		}
		if got := decodeMessage(t, w); got != "Payment processing failed" {
			t.Fatalf("payload %s: unexpected message: %s", payload, got)
		}
	}
}
