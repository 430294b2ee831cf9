package repository

import (
	"time"

	"github.com/clickcart/backend/internal/constants"
	"github.com/clickcart/backend/internal/models"

	"gorm.io/gorm"
)

// AnalyticsRepository 后台统计聚合查询接口
// 说明：仅聚合统计数据，不承载业务规则。
type AnalyticsRepository interface {
	CountTotals() (AnalyticsTotalsRow, error)
	WindowStats(startAt, endAt time.Time) (AnalyticsWindowRow, error)
	MonthlySales(year int) ([]AnalyticsMonthlySalesRow, error)
	TopCategories(limit int) ([]AnalyticsCategoryRankingRow, error)
}

// AnalyticsTotalsRow 各集合总量统计
type AnalyticsTotalsRow struct {
	Users        int64
	Products     int64
	Orders       int64
	Categories   int64
	TotalRevenue float64
}

// AnalyticsWindowRow 时间窗口内的经营统计
type AnalyticsWindowRow struct {
	Revenue   float64
	Orders    int64
	Customers int64
}

// AnalyticsMonthlySalesRow 月度销售统计行
type AnalyticsMonthlySalesRow struct {
	Month   int
	Orders  int64
	Revenue float64
}

// AnalyticsCategoryRankingRow 分类排行原始行
type AnalyticsCategoryRankingRow struct {
	CategoryID   uint
	Name         string
	ProductCount int64
}

// GormAnalyticsRepository GORM 聚合实现
type GormAnalyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository 创建统计仓库
func NewAnalyticsRepository(db *gorm.DB) *GormAnalyticsRepository {
	return &GormAnalyticsRepository{db: db}
}

// countedOrders 参与营收统计的订单（排除已取消）
func (r *GormAnalyticsRepository) countedOrders() *gorm.DB {
	return r.db.Model(&models.Order{}).Where("status <> ?", constants.OrderStatusCanceled)
}

// CountTotals 获取各集合总量
func (r *GormAnalyticsRepository) CountTotals() (AnalyticsTotalsRow, error) {
	result := AnalyticsTotalsRow{}

	if err := r.db.Model(&models.User{}).Count(&result.Users).Error; err != nil {
		return result, err
	}
	if err := r.db.Model(&models.Product{}).Count(&result.Products).Error; err != nil {
		return result, err
	}
	if err := r.db.Model(&models.Order{}).Count(&result.Orders).Error; err != nil {
		return result, err
	}
	if err := r.db.Model(&models.Category{}).Count(&result.Categories).Error; err != nil {
		return result, err
	}
	if err := r.countedOrders().
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&result.TotalRevenue).Error; err != nil {
		return result, err
	}
	return result, nil
}

// WindowStats 获取 [startAt, endAt) 窗口内的营收、订单数与新增客户数
func (r *GormAnalyticsRepository) WindowStats(startAt, endAt time.Time) (AnalyticsWindowRow, error) {
	result := AnalyticsWindowRow{}

	orderBase := func() *gorm.DB {
		return r.countedOrders().Where("created_at >= ? AND created_at < ?", startAt, endAt)
	}

	if err := orderBase().Count(&result.Orders).Error; err != nil {
		return result, err
	}
	if err := orderBase().
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&result.Revenue).Error; err != nil {
		return result, err
	}
	if err := r.db.Model(&models.User{}).
		Where("created_at >= ? AND created_at < ?", startAt, endAt).
		Count(&result.Customers).Error; err != nil {
		return result, err
	}
	return result, nil
}

// MonthlySales 获取指定年份按月分桶的销售统计（仅返回有数据的月份）
func (r *GormAnalyticsRepository) MonthlySales(year int) ([]AnalyticsMonthlySalesRow, error) {
	var rows []AnalyticsMonthlySalesRow
	month := monthExpr(r.db, "created_at")
	yearCol := yearExpr(r.db, "created_at")
	if err := r.countedOrders().
		Select(month + " AS month, COUNT(*) AS orders, COALESCE(SUM(total_amount), 0) AS revenue").
		Where(yearCol+" = ?", year).
		Group(month).
		Order("month asc").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// TopCategories 按商品数量排行的分类
func (r *GormAnalyticsRepository) TopCategories(limit int) ([]AnalyticsCategoryRankingRow, error) {
	if limit <= 0 {
		limit = 5
	}
	var rows []AnalyticsCategoryRankingRow
	if err := r.db.Model(&models.Product{}).
		Select("categories.id AS category_id, categories.name AS name, COUNT(products.id) AS product_count").
		Joins("JOIN categories ON categories.id = products.category_id").
		Where("products.deleted_at IS NULL").
		Group("categories.id, categories.name").
		Order("product_count desc").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
