package router

import (
	"net/http"

	"expensetracker/api"
	"expensetracker/config"
	_ "expensetracker/docs"
	"expensetracker/middleware"
	"expensetracker/service"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRouter 设置路由
func SetupRouter(cfg *config.Config, svc *service.ExpenseService) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(gin.LoggerWithFormatter(middleware.LogFormatter))
	r.Use(gin.Recovery())
	r.Use(middleware.CORS(cfg.Server.AllowOrigins))

	// 写接口限流（可选）
	writes := []gin.HandlerFunc{}
	if cfg.Server.RateLimit.MaxRequests > 0 {
		writes = append(writes, middleware.WriteRateLimit(cfg.Server.RateLimit.MaxRequests, cfg.Server.RateLimit.Window))
	}
	withWrites := func(h gin.HandlerFunc) []gin.HandlerFunc {
		return append(append([]gin.HandlerFunc{}, writes...), h)
	}

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Welcome to Expense Management API"})
	})

	expenseHandler := api.NewExpenseHandler(svc)
	r.GET("/categories", expenseHandler.GetCategories)

	// 按 ID 管理的记录（主接口）
	expenses := r.Group("/expenses")
	{
		expenses.GET("/:date", expenseHandler.ListByDate)
		expenses.POST("/", withWrites(expenseHandler.Create)...)
		expenses.PUT("/:id", withWrites(expenseHandler.Update)...)
		expenses.DELETE("/:id", withWrites(expenseHandler.Delete)...)
	}

	// 按日期整体替换（兼容旧表单端）
	dayHandler := api.NewDayHandler(svc)
	days := r.Group("/days")
	{
		days.GET("/:date", dayHandler.Get)
		days.POST("/:date", withWrites(dayHandler.Replace)...)
	}

	exportHandler := api.NewExportHandler(svc)
	export := r.Group("/export")
	{
		export.GET("/csv", exportHandler.ExportCSV)
		export.GET("/excel", exportHandler.ExportExcel)
	}

	r.GET("/analytics", api.Analytics)

	// Swagger 文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	return r
}
