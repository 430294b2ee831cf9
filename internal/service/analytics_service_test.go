package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/clickcart/backend/internal/constants"
	"github.com/clickcart/backend/internal/models"
	"github.com/clickcart/backend/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupAnalyticsServiceTest(t *testing.T) (*AnalyticsService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:analytics_service_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	models.DB = db
	return NewAnalyticsService(repository.NewAnalyticsRepository(db)), db
}

func createAnalyticsTestOrder(t *testing.T, db *gorm.DB, userID uint, status string, total float64, createdAt time.Time) {
	t.Helper()
	order := models.Order{
		OrderNo:       fmt.Sprintf("ORD-TEST-%d", time.Now().UnixNano()),
		UserID:        userID,
		Status:        status,
		TotalAmount:   models.NewMoneyFromFloat(total),
		PaymentMethod: constants.PaymentMethodStripe,
	}
	if err := db.Create(&order).Error; err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	if err := db.Model(&models.Order{}).Where("id = ?", order.ID).Update("created_at", createdAt).Error; err != nil {
		t.Fatalf("backdate order failed: %v", err)
	}
}

func TestGrowthRate(t *testing.T) {
	if got := growthRate(120, 100); got != 20 {
		t.Fatalf("expected 20, got %v", got)
	}
	if got := growthRate(80, 100); got != -20 {
		t.Fatalf("expected -20, got %v", got)
	}
	// 上期为 0 时增长率恒为 0，而不是无穷大
	if got := growthRate(50, 0); got != 0 {
		t.Fatalf("expected 0 when previous is 0, got %v", got)
	}
	if got := growthRate(0, 0); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
}

func TestGrowthCompareCalendarMonths(t *testing.T) {
	svc, db := setupAnalyticsServiceTest(t)
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

	createAnalyticsTestOrder(t, db, 1, constants.OrderStatusProcessing, 100, time.Date(2026, 6, 2, 0, 0, 0, 0, time.UTC))
	createAnalyticsTestOrder(t, db, 1, constants.OrderStatusDelivered, 100, time.Date(2026, 6, 20, 0, 0, 0, 0, time.UTC))
	createAnalyticsTestOrder(t, db, 1, constants.OrderStatusDelivered, 50, time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC))
	// 已取消订单不计入营收
	createAnalyticsTestOrder(t, db, 1, constants.OrderStatusCanceled, 999, time.Date(2026, 6, 5, 0, 0, 0, 0, time.UTC))

	stats, err := svc.Growth(context.Background(), now)
	if err != nil {
		t.Fatalf("Growth error: %v", err)
	}
	if stats.CurrentRevenue != 200 {
		t.Fatalf("expected current revenue 200, got %v", stats.CurrentRevenue)
	}
	if stats.PreviousRevenue != 50 {
		t.Fatalf("expected previous revenue 50, got %v", stats.PreviousRevenue)
	}
	if stats.RevenueGrowth != 300 {
		t.Fatalf("expected revenue growth 300, got %v", stats.RevenueGrowth)
	}
	if stats.CurrentOrders != 2 || stats.PreviousOrders != 1 {
		t.Fatalf("unexpected order counts: %+v", stats)
	}
	if stats.OrdersGrowth != 100 {
		t.Fatalf("expected orders growth 100, got %v", stats.OrdersGrowth)
	}
}

func TestGrowthZeroPreviousMonth(t *testing.T) {
	svc, db := setupAnalyticsServiceTest(t)
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

	createAnalyticsTestOrder(t, db, 1, constants.OrderStatusProcessing, 100, time.Date(2026, 6, 2, 0, 0, 0, 0, time.UTC))

	stats, err := svc.Growth(context.Background(), now)
	if err != nil {
		t.Fatalf("Growth error: %v", err)
	}
	if stats.RevenueGrowth != 0 || stats.OrdersGrowth != 0 {
		t.Fatalf("expected growth 0 with empty previous month, got %+v", stats)
	}
}

func TestMonthlySalesTwelveBuckets(t *testing.T) {
	svc, db := setupAnalyticsServiceTest(t)
	now := time.Date(2026, 7, 1, 12, 0, 0, 0, time.UTC)

	createAnalyticsTestOrder(t, db, 1, constants.OrderStatusDelivered, 100, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC))
	createAnalyticsTestOrder(t, db, 1, constants.OrderStatusDelivered, 40, time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC))
	createAnalyticsTestOrder(t, db, 1, constants.OrderStatusProcessing, 25, time.Date(2026, 11, 5, 0, 0, 0, 0, time.UTC))
	// 其他年份不计入
	createAnalyticsTestOrder(t, db, 1, constants.OrderStatusDelivered, 999, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC))

	points, err := svc.MonthlySales(context.Background(), now)
	if err != nil {
		t.Fatalf("MonthlySales error: %v", err)
	}
	if len(points) != 12 {
		t.Fatalf("expected 12 monthly buckets, got %d", len(points))
	}
	for i, point := range points {
		if point.Month != i+1 {
			t.Fatalf("expected month %d at index %d, got %d", i+1, i, point.Month)
		}
	}
	if points[2].Orders != 2 || points[2].Revenue != 140 {
		t.Fatalf("unexpected march bucket: %+v", points[2])
	}
	if points[10].Orders != 1 || points[10].Revenue != 25 {
		t.Fatalf("unexpected november bucket: %+v", points[10])
	}
	if points[0].Orders != 0 || points[0].Revenue != 0 {
		t.Fatalf("expected empty january bucket, got %+v", points[0])
	}
}

func TestTopCategoriesLimitedToFive(t *testing.T) {
	svc, db := setupAnalyticsServiceTest(t)

	for i := 0; i < 7; i++ {
		category := models.Category{
			Name: fmt.Sprintf("category-%d", i),
			Slug: fmt.Sprintf("category-%d", i),
		}
		if err := db.Create(&category).Error; err != nil {
			t.Fatalf("create category failed: %v", err)
		}
		// 分类 i 下有 i+1 个商品
		for j := 0; j <= i; j++ {
			product := models.Product{
				CategoryID: category.ID,
				Name:       fmt.Sprintf("product-%d-%d", i, j),
				Slug:       fmt.Sprintf("product-%d-%d", i, j),
				Price:      models.NewMoneyFromFloat(10),
			}
			if err := db.Create(&product).Error; err != nil {
				t.Fatalf("create product failed: %v", err)
			}
		}
	}

	rankings, err := svc.TopCategories(context.Background())
	if err != nil {
		t.Fatalf("TopCategories error: %v", err)
	}
	if len(rankings) != 5 {
		t.Fatalf("expected top 5 categories, got %d", len(rankings))
	}
	if rankings[0].Name != "category-6" || rankings[0].ProductCount != 7 {
		t.Fatalf("unexpected top category: %+v", rankings[0])
	}
	if rankings[4].ProductCount != 3 {
		t.Fatalf("expected 5th category with 3 products, got: %+v", rankings[4])
	}
}

func TestSummaryTotals(t *testing.T) {
	svc, db := setupAnalyticsServiceTest(t)

	user := models.User{Username: "stats", Email: "stats@example.com", PasswordHash: "hash", Role: constants.RoleUser}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	category := models.Category{Name: "summary", Slug: "summary"}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	product := models.Product{CategoryID: category.ID, Name: "summary product", Slug: "summary-product", Price: models.NewMoneyFromFloat(10)}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	createAnalyticsTestOrder(t, db, user.ID, constants.OrderStatusDelivered, 99.5, time.Now())
	createAnalyticsTestOrder(t, db, user.ID, constants.OrderStatusCanceled, 10, time.Now())

	summary, err := svc.Summary(context.Background())
	if err != nil {
		t.Fatalf("Summary error: %v", err)
	}
	if summary.Users != 1 || summary.Products != 1 || summary.Categories != 1 {
		t.Fatalf("unexpected totals: %+v", summary)
	}
	if summary.Orders != 2 {
		t.Fatalf("expected 2 orders counted, got %d", summary.Orders)
	}
	if summary.TotalRevenue != "99.50" {
		t.Fatalf("expected revenue 99.50 excluding canceled, got %s", summary.TotalRevenue)
	}
}
