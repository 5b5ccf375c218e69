package api

import (
	"expensetracker/service"

	"github.com/gin-gonic/gin"
)

// AnalyticsResponse 统计分析占位响应
type AnalyticsResponse struct {
	StartDate string   `json:"start_date" example:"2024-08-01"`
	EndDate   string   `json:"end_date" example:"2024-08-31"`
	Message   string   `json:"message"`
	Planned   []string `json:"planned"`
}

// Analytics 统计分析（开发中）
// @Summary 统计分析
// @Description 仅校验日期区间并返回占位说明，尚未提供任何统计计算
// @Tags analytics
// @Produce json
// @Param start_date query string false "开始日期 (YYYY-MM-DD)" default(2024-08-01)
// @Param end_date query string false "结束日期 (YYYY-MM-DD)" default(2024-08-31)
// @Success 200 {object} AnalyticsResponse "占位说明"
// @Failure 400 {object} Response "日期区间错误"
// @Router /analytics [get]
func Analytics(c *gin.Context) {
	start := c.DefaultQuery("start_date", "2024-08-01")
	end := c.DefaultQuery("end_date", "2024-08-31")
	if err := service.ValidateRange(start, end); err != nil {
		ServiceError(c, err, "Invalid date range")
		return
	}

	Success(c, AnalyticsResponse{
		StartDate: start,
		EndDate:   end,
		Message:   "Analytics feature is in development. This will show expense summaries and charts.",
		Planned: []string{
			"Total expenses by category (pie chart)",
			"Daily expense trend (line chart)",
			"Monthly comparison (bar chart)",
		},
	})
}
