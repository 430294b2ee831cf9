package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/clickcart/backend/internal/models"
	"github.com/clickcart/backend/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupCheckoutServiceTest(t *testing.T) (*CheckoutService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:checkout_service_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Category{}, &models.Product{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	models.DB = db
	return NewCheckoutService(nil, repository.NewProductRepository(db)), db
}

func createCheckoutTestProduct(t *testing.T, db *gorm.DB, slug string, price float64, promo int) *models.Product {
	t.Helper()
	category := models.Category{Name: "cat-" + slug, Slug: "cat-" + slug}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	product := models.Product{
		CategoryID:      category.ID,
		Name:            "product " + slug,
		Slug:            slug,
		Price:           models.NewMoneyFromFloat(price),
		PromoPercentage: promo,
		Stock:           100,
	}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return &product
}

func TestBuildLineItemsPromoPricing(t *testing.T) {
	svc, db := setupCheckoutServiceTest(t)
	product := createCheckoutTestProduct(t, db, "promo-15", 100, 15)

	items, err := svc.BuildLineItems([]CheckoutItemInput{{ProductID: product.ID, Quantity: 2}})
	if err != nil {
		t.Fatalf("BuildLineItems error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 line item, got %d", len(items))
	}
	if items[0].UnitAmount != 8500 {
		t.Fatalf("expected unit amount 8500, got %d", items[0].UnitAmount)
	}
	if items[0].Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", items[0].Quantity)
	}
}

func TestBuildLineItemsRoundsUp(t *testing.T) {
	svc, db := setupCheckoutServiceTest(t)
	// 19.99 * 100 * 0.67 = 1339.33 -> 1340
	product := createCheckoutTestProduct(t, db, "promo-33", 19.99, 33)

	items, err := svc.BuildLineItems([]CheckoutItemInput{{ProductID: product.ID, Quantity: 1}})
	if err != nil {
		t.Fatalf("BuildLineItems error: %v", err)
	}
	if items[0].UnitAmount != 1340 {
		t.Fatalf("expected unit amount rounded up to 1340, got %d", items[0].UnitAmount)
	}
}

func TestBuildLineItemsNoPromo(t *testing.T) {
	svc, db := setupCheckoutServiceTest(t)
	product := createCheckoutTestProduct(t, db, "no-promo", 12.90, 0)

	items, err := svc.BuildLineItems([]CheckoutItemInput{{ProductID: product.ID, Quantity: 1}})
	if err != nil {
		t.Fatalf("BuildLineItems error: %v", err)
	}
	if items[0].UnitAmount != 1290 {
		t.Fatalf("expected unit amount 1290, got %d", items[0].UnitAmount)
	}
}

func TestBuildLineItemsUnknownProductFailsWhole(t *testing.T) {
	svc, db := setupCheckoutServiceTest(t)
	product := createCheckoutTestProduct(t, db, "known", 10, 0)

	_, err := svc.BuildLineItems([]CheckoutItemInput{
		{ProductID: product.ID, Quantity: 1},
		{ProductID: 999, Quantity: 1},
	})
	if !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got: %v", err)
	}
}

func TestBuildLineItemsInvalidInput(t *testing.T) {
	svc, db := setupCheckoutServiceTest(t)
	product := createCheckoutTestProduct(t, db, "bad-qty", 10, 0)

	if _, err := svc.BuildLineItems(nil); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty items, got: %v", err)
	}
	if _, err := svc.BuildLineItems([]CheckoutItemInput{{ProductID: product.ID, Quantity: 0}}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for zero quantity, got: %v", err)
	}
}
