package main

import (
	"time"

	"github.com/clickcart/backend/internal/config"
	"github.com/clickcart/backend/internal/logger"
	"github.com/clickcart/backend/internal/models"

	"github.com/shopspring/decimal"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	// 分类
	categories := []models.Category{
		{Name: "Electronics", Slug: "electronics", Image: "https://images.unsplash.com/photo-1498049794561-7780e7231661?w=800"},
		{Name: "Lifestyle", Slug: "lifestyle", Image: "https://images.unsplash.com/photo-1484101403633-562f891dc89a?w=800"},
		{Name: "Accessories", Slug: "accessories", Image: "https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=800"},
	}

	for _, cat := range categories {
		var existing models.Category
		if err := models.DB.Where("slug = ?", cat.Slug).First(&existing).Error; err != nil {
			if err := models.DB.Create(&cat).Error; err != nil {
				stdLog.Printf("Failed to create category %s: %v", cat.Slug, err)
			} else {
				stdLog.Printf("Created category: %s", cat.Slug)
			}
		} else {
			stdLog.Printf("Category already exists: %s", cat.Slug)
		}
	}

	categoryIDs := map[string]uint{}
	var categoryList []models.Category
	if err := models.DB.Where("slug IN ?", []string{"electronics", "lifestyle", "accessories"}).Find(&categoryList).Error; err != nil {
		stdLog.Printf("Failed to load categories: %v", err)
	}
	for _, cat := range categoryList {
		categoryIDs[cat.Slug] = cat.ID
	}

	// 商品
	products := []models.Product{
		{
			Name:        "Wireless Bluetooth Earphones",
			Slug:        "wireless-earphones",
			Description: "High quality sound, active noise cancellation, up to 24 hours of battery life.",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(99.99)),
			CategoryID:  categoryIDs["electronics"],
			Images: models.StringArray([]string{
				"https://images.unsplash.com/photo-1590658268037-6bf12165a8df?w=800",
			}),
			Stock:    120,
			Featured: true,
		},
		{
			Name:            "Smart Watch",
			Slug:            "smart-watch",
			Description:     "Heart rate monitoring, sleep tracking and 50+ sport modes.",
			Price:           models.NewMoneyFromDecimal(decimal.NewFromFloat(199.00)),
			PromoPercentage: 15,
			CategoryID:      categoryIDs["electronics"],
			Images: models.StringArray([]string{
				"https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=800",
			}),
			Stock:    80,
			Featured: true,
		},
		{
			Name:        "Ceramic Pour-Over Coffee Set",
			Slug:        "pour-over-coffee-set",
			Description: "Hand-glazed ceramic dripper and carafe for a slow morning brew.",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(45.50)),
			CategoryID:  categoryIDs["lifestyle"],
			Images: models.StringArray([]string{
				"https://images.unsplash.com/photo-1495474472287-4d71bcdd2085?w=800",
			}),
			Stock: 60,
		},
		{
			Name:            "Aroma Diffuser",
			Slug:            "aroma-diffuser",
			Description:     "Ultrasonic diffuser with adjustable mist and warm light.",
			Price:           models.NewMoneyFromDecimal(decimal.NewFromFloat(29.99)),
			PromoPercentage: 10,
			CategoryID:      categoryIDs["lifestyle"],
			Images: models.StringArray([]string{
				"https://images.unsplash.com/photo-1602928321679-560bb453f190?w=800",
			}),
			Stock: 200,
		},
		{
			Name:        "Braided USB-C Cable",
			Slug:        "usb-c-cable",
			Description: "2m braided cable with 100W fast charging support.",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(12.90)),
			CategoryID:  categoryIDs["accessories"],
			Images: models.StringArray([]string{
				"https://images.unsplash.com/photo-1583864697784-a0efc8379f70?w=800",
			}),
			Stock: 500,
		},
		{
			Name:            "Leather Phone Case",
			Slug:            "leather-phone-case",
			Description:     "Full-grain leather case that ages beautifully.",
			Price:           models.NewMoneyFromDecimal(decimal.NewFromFloat(39.00)),
			PromoPercentage: 33,
			CategoryID:      categoryIDs["accessories"],
			Images: models.StringArray([]string{
				"https://images.unsplash.com/photo-1541447271487-09612b3f49f7?w=800",
			}),
			Stock: 150,
		},
	}

	for _, product := range products {
		var existing models.Product
		if err := models.DB.Where("slug = ?", product.Slug).First(&existing).Error; err != nil {
			if err := models.DB.Create(&product).Error; err != nil {
				stdLog.Printf("Failed to create product %s: %v", product.Slug, err)
			} else {
				stdLog.Printf("Created product: %s", product.Slug)
			}
		} else {
			stdLog.Printf("Product already exists: %s", product.Slug)
		}
	}

	// 优惠券
	coupons := []models.Coupon{
		{Code: "WELCOME20", Discount: 20, ExpiresAt: time.Now().AddDate(1, 0, 0), IsActive: true},
		{Code: "SUMMER10", Discount: 10, ExpiresAt: time.Now().AddDate(0, 3, 0), IsActive: true},
		{Code: "EXPIRED50", Discount: 50, ExpiresAt: time.Now().AddDate(0, 0, -30), IsActive: true},
	}

	for _, coupon := range coupons {
		var existing models.Coupon
		if err := models.DB.Where("code = ?", coupon.Code).First(&existing).Error; err != nil {
			if err := models.DB.Create(&coupon).Error; err != nil {
				stdLog.Printf("Failed to create coupon %s: %v", coupon.Code, err)
			} else {
				stdLog.Printf("Created coupon: %s", coupon.Code)
			}
		} else {
			stdLog.Printf("Coupon already exists: %s", coupon.Code)
		}
	}

	stdLog.Printf("Seed completed")
}
