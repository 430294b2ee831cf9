package service

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/clickcart/backend/internal/constants"
	"github.com/clickcart/backend/internal/models"
	"github.com/clickcart/backend/internal/queue"
	"github.com/clickcart/backend/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupOrderServiceTest(t *testing.T) (*OrderService, *CartService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:order_service_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	models.DB = db
	queueClient, err := queue.NewClient(nil)
	if err != nil {
		t.Fatalf("new queue client failed: %v", err)
	}
	cartRepo := repository.NewCartRepository(db)
	orderSvc := NewOrderService(repository.NewOrderRepository(db), cartRepo, queueClient)
	cartSvc := NewCartService(cartRepo, repository.NewProductRepository(db))
	return orderSvc, cartSvc, db
}

func TestCreateOrderClearsEntireCart(t *testing.T) {
	orderSvc, cartSvc, db := setupOrderServiceTest(t)
	ordered := createCartTestProduct(t, db, "order-item", 30)
	leftover := createCartTestProduct(t, db, "order-leftover", 5)

	if _, err := cartSvc.AddToCart(AddToCartInput{UserID: 1, ProductID: ordered.ID, Quantity: intPtr(2)}); err != nil {
		t.Fatalf("AddToCart error: %v", err)
	}
	if _, err := cartSvc.AddToCart(AddToCartInput{UserID: 1, ProductID: leftover.ID}); err != nil {
		t.Fatalf("AddToCart error: %v", err)
	}

	order, err := orderSvc.CreateOrder(CreateOrderInput{
		UserID: 1,
		Items: []OrderItemInput{
			{ProductID: ordered.ID, Name: ordered.Name, Price: ordered.Price, Quantity: 2},
		},
		TotalAmount: models.NewMoneyFromFloat(60),
		PaymentID:   "pi_test_123",
		ShippingAddress: map[string]interface{}{
			"city": "Berlin",
		},
	})
	if err != nil {
		t.Fatalf("CreateOrder error: %v", err)
	}
	if order.Status != constants.OrderStatusProcessing {
		t.Fatalf("expected status processing, got %s", order.Status)
	}
	if order.PaymentMethod != constants.PaymentMethodStripe {
		t.Fatalf("expected payment method stripe, got %s", order.PaymentMethod)
	}
	if !strings.HasPrefix(order.OrderNo, "ORD-") {
		t.Fatalf("unexpected order no: %s", order.OrderNo)
	}
	if len(order.Items) != 1 || order.Items[0].Quantity != 2 {
		t.Fatalf("unexpected order items: %+v", order.Items)
	}

	// 即使订单项只是购物车子集，也应清空整个购物车
	items, err := cartSvc.ListByUser(1)
	if err != nil {
		t.Fatalf("ListByUser error: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected cart fully cleared, got %d items", len(items))
	}
}

func TestCreateOrderValidation(t *testing.T) {
	orderSvc, _, _ := setupOrderServiceTest(t)

	if _, err := orderSvc.CreateOrder(CreateOrderInput{UserID: 1}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty items, got: %v", err)
	}
	if _, err := orderSvc.CreateOrder(CreateOrderInput{
		UserID:      1,
		Items:       []OrderItemInput{{ProductID: 1, Name: "x", Price: models.NewMoneyFromFloat(10), Quantity: 0}},
		TotalAmount: models.NewMoneyFromFloat(10),
	}); !errors.Is(err, ErrInvalidOrderItem) {
		t.Fatalf("expected ErrInvalidOrderItem for zero quantity, got: %v", err)
	}
	if _, err := orderSvc.CreateOrder(CreateOrderInput{
		UserID:      1,
		Items:       []OrderItemInput{{ProductID: 1, Name: "x", Price: models.NewMoneyFromFloat(10), Quantity: 1}},
		TotalAmount: models.NewMoneyFromFloat(0),
	}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for zero total, got: %v", err)
	}
}

func TestGetForUserRejectsOtherUsersOrder(t *testing.T) {
	orderSvc, _, db := setupOrderServiceTest(t)
	product := createCartTestProduct(t, db, "order-owner", 10)

	order, err := orderSvc.CreateOrder(CreateOrderInput{
		UserID:      1,
		Items:       []OrderItemInput{{ProductID: product.ID, Name: product.Name, Price: product.Price, Quantity: 1}},
		TotalAmount: models.NewMoneyFromFloat(10),
	})
	if err != nil {
		t.Fatalf("CreateOrder error: %v", err)
	}

	if _, err := orderSvc.GetForUser(2, order.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got: %v", err)
	}
	got, err := orderSvc.GetForUser(1, order.ID)
	if err != nil {
		t.Fatalf("GetForUser error: %v", err)
	}
	if got.OrderNo != order.OrderNo {
		t.Fatalf("expected order %s, got %s", order.OrderNo, got.OrderNo)
	}
}

func TestUpdateStatusValidatesEnum(t *testing.T) {
	orderSvc, _, db := setupOrderServiceTest(t)
	product := createCartTestProduct(t, db, "order-status", 10)

	order, err := orderSvc.CreateOrder(CreateOrderInput{
		UserID:      1,
		Items:       []OrderItemInput{{ProductID: product.ID, Name: product.Name, Price: product.Price, Quantity: 1}},
		TotalAmount: models.NewMoneyFromFloat(10),
	})
	if err != nil {
		t.Fatalf("CreateOrder error: %v", err)
	}

	if _, err := orderSvc.UpdateStatus(order.ID, "refunded"); !errors.Is(err, ErrInvalidOrderStatus) {
		t.Fatalf("expected ErrInvalidOrderStatus, got: %v", err)
	}
	updated, err := orderSvc.UpdateStatus(order.ID, constants.OrderStatusShipped)
	if err != nil {
		t.Fatalf("UpdateStatus error: %v", err)
	}
	if updated.Status != constants.OrderStatusShipped {
		t.Fatalf("expected shipped, got %s", updated.Status)
	}
	if _, err := orderSvc.UpdateStatus(999, constants.OrderStatusShipped); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got: %v", err)
	}
}

func TestGenerateOrderNoFormat(t *testing.T) {
	first := generateOrderNo()
	second := generateOrderNo()
	if first == second {
		t.Fatalf("expected unique order numbers, got duplicate: %s", first)
	}
	parts := strings.Split(first, "-")
	if len(parts) != 3 || parts[0] != "ORD" || len(parts[1]) != 8 || len(parts[2]) != 12 {
		t.Fatalf("unexpected order no format: %s", first)
	}
}
