package admin

import (
	"net/http"
	"time"

	"github.com/clickcart/backend/internal/http/response"

	"github.com/gin-gonic/gin"
)

// AnalyticsSummary 总览统计：各集合总量与累计营收
func (h *Handler) AnalyticsSummary(c *gin.Context) {
	summary, err := h.AnalyticsService.Summary(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to fetch analytics", err)
		return
	}
	response.OK(c, summary)
}

// AnalyticsGrowth 月度环比增长统计
func (h *Handler) AnalyticsGrowth(c *gin.Context) {
	growth, err := h.AnalyticsService.Growth(c.Request.Context(), time.Now())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to fetch analytics", err)
		return
	}
	response.OK(c, growth)
}

// AnalyticsMonthlySales 当年 12 个月的销售分桶
func (h *Handler) AnalyticsMonthlySales(c *gin.Context) {
	points, err := h.AnalyticsService.MonthlySales(c.Request.Context(), time.Now())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to fetch analytics", err)
		return
	}
	response.OK(c, points)
}

// AnalyticsTopCategories 商品数量前 5 的分类排行
func (h *Handler) AnalyticsTopCategories(c *gin.Context) {
	rankings, err := h.AnalyticsService.TopCategories(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to fetch analytics", err)
		return
	}
	response.OK(c, rankings)
}
