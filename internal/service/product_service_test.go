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

func setupProductServiceTest(t *testing.T) (*ProductService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:product_service_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Category{}, &models.Product{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	models.DB = db
	return NewProductService(repository.NewProductRepository(db), repository.NewCategoryRepository(db)), db
}

func createProductTestCategory(t *testing.T, db *gorm.DB, slug string) *models.Category {
	t.Helper()
	category := models.Category{Name: "name-" + slug, Slug: slug}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	return &category
}

func TestCreateProductValidation(t *testing.T) {
	svc, db := setupProductServiceTest(t)
	category := createProductTestCategory(t, db, "validation")

	base := CreateProductInput{
		Name:       "Widget",
		Slug:       "widget",
		Price:      models.NewMoneyFromFloat(9.99),
		CategoryID: category.ID,
	}

	bad := base
	bad.Price = models.NewMoneyFromFloat(0)
	if _, err := svc.Create(bad); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for zero price, got: %v", err)
	}

	bad = base
	bad.PromoPercentage = 100
	if _, err := svc.Create(bad); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for promo 100, got: %v", err)
	}

	bad = base
	bad.CategoryID = 999
	if _, err := svc.Create(bad); !errors.Is(err, ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got: %v", err)
	}

	product, err := svc.Create(base)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if product.Slug != "widget" {
		t.Fatalf("unexpected product: %+v", product)
	}

	if _, err := svc.Create(base); !errors.Is(err, ErrSlugExists) {
		t.Fatalf("expected ErrSlugExists, got: %v", err)
	}
}

func TestUpdateProductKeepsOwnSlug(t *testing.T) {
	svc, db := setupProductServiceTest(t)
	category := createProductTestCategory(t, db, "update")

	product, err := svc.Create(CreateProductInput{
		Name:       "Gizmo",
		Slug:       "gizmo",
		Price:      models.NewMoneyFromFloat(19.99),
		CategoryID: category.ID,
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	updated, err := svc.Update(product.ID, CreateProductInput{
		Name:            "Gizmo Pro",
		Slug:            "gizmo",
		Price:           models.NewMoneyFromFloat(29.99),
		PromoPercentage: 15,
		CategoryID:      category.ID,
		Featured:        true,
	})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if updated.Name != "Gizmo Pro" || !updated.Featured {
		t.Fatalf("unexpected product: %+v", updated)
	}
	if updated.PromoUnitCents() != 2550 {
		t.Fatalf("expected discounted unit cents 2550, got %d", updated.PromoUnitCents())
	}
}

func TestListProductsFilters(t *testing.T) {
	svc, db := setupProductServiceTest(t)
	electronics := createProductTestCategory(t, db, "electronics")
	books := createProductTestCategory(t, db, "books")

	seed := []CreateProductInput{
		{Name: "Laptop Stand", Slug: "laptop-stand", Price: models.NewMoneyFromFloat(49), CategoryID: electronics.ID, Featured: true},
		{Name: "USB Hub", Slug: "usb-hub", Price: models.NewMoneyFromFloat(19), CategoryID: electronics.ID},
		{Name: "Go Novel", Slug: "go-novel", Price: models.NewMoneyFromFloat(9), CategoryID: books.ID},
	}
	for _, input := range seed {
		if _, err := svc.Create(input); err != nil {
			t.Fatalf("Create error: %v", err)
		}
	}

	items, total, err := svc.List(repository.ProductListFilter{Page: 1, PageSize: 10, CategoryID: electronics.ID})
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if total != 2 || len(items) != 2 {
		t.Fatalf("expected 2 electronics products, got total=%d len=%d", total, len(items))
	}

	items, total, err = svc.List(repository.ProductListFilter{Page: 1, PageSize: 10, FeaturedOnly: true})
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if total != 1 || items[0].Slug != "laptop-stand" {
		t.Fatalf("unexpected featured products: total=%d items=%+v", total, items)
	}

	items, total, err = svc.List(repository.ProductListFilter{Page: 1, PageSize: 10, Search: "usb"})
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if total != 1 || items[0].Slug != "usb-hub" {
		t.Fatalf("unexpected search result: total=%d items=%+v", total, items)
	}

	items, _, err = svc.List(repository.ProductListFilter{Page: 1, PageSize: 10, SortByPrice: "asc"})
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(items) != 3 || items[0].Slug != "go-novel" || items[2].Slug != "laptop-stand" {
		t.Fatalf("unexpected price ordering: %+v", items)
	}
}

func TestGetProductBySlug(t *testing.T) {
	svc, db := setupProductServiceTest(t)
	category := createProductTestCategory(t, db, "slug-get")

	if _, err := svc.Create(CreateProductInput{
		Name:       "Slug Target",
		Slug:       "slug-target",
		Price:      models.NewMoneyFromFloat(5),
		CategoryID: category.ID,
	}); err != nil {
		t.Fatalf("Create error: %v", err)
	}

	product, err := svc.GetBySlug("slug-target")
	if err != nil {
		t.Fatalf("GetBySlug error: %v", err)
	}
	if product.Name != "Slug Target" {
		t.Fatalf("unexpected product: %+v", product)
	}
	if _, err := svc.GetBySlug("missing"); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got: %v", err)
	}
}
