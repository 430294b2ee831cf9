package service

import (
	"context"
	"fmt"
	"time"

	"github.com/clickcart/backend/internal/cache"
	"github.com/clickcart/backend/internal/repository"
)

const analyticsCacheTTL = 45 * time.Second

// AnalyticsService 后台统计服务
// 说明：聚合后台首页核心经营数据，只读
type AnalyticsService struct {
	repo repository.AnalyticsRepository
}

// NewAnalyticsService 创建统计服务
func NewAnalyticsService(repo repository.AnalyticsRepository) *AnalyticsService {
	return &AnalyticsService{repo: repo}
}

// AnalyticsSummary 总览统计响应
type AnalyticsSummary struct {
	Users        int64  `json:"users"`
	Products     int64  `json:"products"`
	Orders       int64  `json:"orders"`
	Categories   int64  `json:"categories"`
	TotalRevenue string `json:"total_revenue"`
}

// GrowthStats 环比增长统计响应
type GrowthStats struct {
	CurrentRevenue  float64 `json:"current_revenue"`
	PreviousRevenue float64 `json:"previous_revenue"`
	RevenueGrowth   float64 `json:"revenue_growth"`
	CurrentOrders   int64   `json:"current_orders"`
	PreviousOrders  int64   `json:"previous_orders"`
	OrdersGrowth    float64 `json:"orders_growth"`
	CurrentUsers    int64   `json:"current_users"`
	PreviousUsers   int64   `json:"previous_users"`
	UsersGrowth     float64 `json:"users_growth"`
}

// MonthlySalesPoint 月度销售桶
type MonthlySalesPoint struct {
	Month   int     `json:"month"`
	Orders  int64   `json:"orders"`
	Revenue float64 `json:"revenue"`
}

// CategoryRanking 分类排行项
type CategoryRanking struct {
	CategoryID   uint   `json:"category_id"`
	Name         string `json:"name"`
	ProductCount int64  `json:"product_count"`
}

// Summary 获取各集合总量与累计营收
func (s *AnalyticsService) Summary(ctx context.Context) (*AnalyticsSummary, error) {
	var cached AnalyticsSummary
	if hit, err := cache.GetJSON(ctx, "analytics:summary", &cached); err == nil && hit {
		return &cached, nil
	}

	totals, err := s.repo.CountTotals()
	if err != nil {
		return nil, err
	}
	summary := &AnalyticsSummary{
		Users:        totals.Users,
		Products:     totals.Products,
		Orders:       totals.Orders,
		Categories:   totals.Categories,
		TotalRevenue: fmt.Sprintf("%.2f", totals.TotalRevenue),
	}
	_ = cache.SetJSON(ctx, "analytics:summary", summary, analyticsCacheTTL)
	return summary, nil
}

// Growth 获取月度环比增长
// 增长率 = (本期 - 上期) / 上期 * 100；上期为 0 时增长率恒为 0
func (s *AnalyticsService) Growth(ctx context.Context, now time.Time) (*GrowthStats, error) {
	var cached GrowthStats
	if hit, err := cache.GetJSON(ctx, "analytics:growth", &cached); err == nil && hit {
		return &cached, nil
	}

	currentStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	nextStart := currentStart.AddDate(0, 1, 0)
	previousStart := currentStart.AddDate(0, -1, 0)

	current, err := s.repo.WindowStats(currentStart, nextStart)
	if err != nil {
		return nil, err
	}
	previous, err := s.repo.WindowStats(previousStart, currentStart)
	if err != nil {
		return nil, err
	}

	stats := &GrowthStats{
		CurrentRevenue:  current.Revenue,
		PreviousRevenue: previous.Revenue,
		RevenueGrowth:   growthRate(current.Revenue, previous.Revenue),
		CurrentOrders:   current.Orders,
		PreviousOrders:  previous.Orders,
		OrdersGrowth:    growthRate(float64(current.Orders), float64(previous.Orders)),
		CurrentUsers:    current.Customers,
		PreviousUsers:   previous.Customers,
		UsersGrowth:     growthRate(float64(current.Customers), float64(previous.Customers)),
	}
	_ = cache.SetJSON(ctx, "analytics:growth", stats, analyticsCacheTTL)
	return stats, nil
}

// MonthlySales 获取当年 12 个月的销售分桶（无数据的月份补零）
func (s *AnalyticsService) MonthlySales(ctx context.Context, now time.Time) ([]MonthlySalesPoint, error) {
	var cached []MonthlySalesPoint
	if hit, err := cache.GetJSON(ctx, "analytics:monthly_sales", &cached); err == nil && hit {
		return cached, nil
	}

	rows, err := s.repo.MonthlySales(now.Year())
	if err != nil {
		return nil, err
	}

	points := make([]MonthlySalesPoint, 12)
	for i := range points {
		points[i].Month = i + 1
	}
	for _, row := range rows {
		if row.Month < 1 || row.Month > 12 {
			continue
		}
		points[row.Month-1].Orders = row.Orders
		points[row.Month-1].Revenue = row.Revenue
	}
	_ = cache.SetJSON(ctx, "analytics:monthly_sales", points, analyticsCacheTTL)
	return points, nil
}

// TopCategories 获取商品数量最多的前 5 个分类
func (s *AnalyticsService) TopCategories(ctx context.Context) ([]CategoryRanking, error) {
	var cached []CategoryRanking
	if hit, err := cache.GetJSON(ctx, "analytics:top_categories", &cached); err == nil && hit {
		return cached, nil
	}

	rows, err := s.repo.TopCategories(5)
	if err != nil {
		return nil, err
	}
	rankings := make([]CategoryRanking, 0, len(rows))
	for _, row := range rows {
		rankings = append(rankings, CategoryRanking{
			CategoryID:   row.CategoryID,
			Name:         row.Name,
			ProductCount: row.ProductCount,
		})
	}
	_ = cache.SetJSON(ctx, "analytics:top_categories", rankings, analyticsCacheTTL)
	return rankings, nil
}

// growthRate 环比增长率，分母为 0 时返回 0
func growthRate(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}
	return (current - previous) / previous * 100
}
