package router

import (
	"finance-tracker/internal/config"
	"finance-tracker/internal/handler"
	"finance-tracker/internal/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter configures Gin engine and API routes.
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery(), middleware.RequestID())

	jwtSecret := cfg.JWT.Secret

	// 登录/注册接口（不需要鉴权）
	authHandler := handler.NewAuthHandler(db, jwtSecret, cfg.TokenTTL())
	r.POST("/auth/register", authHandler.Register)
	r.POST("/auth/login", authHandler.Login)

	// 需要登录才能访问的接口
	api := r.Group("/api")
	api.Use(
		middleware.AuthMiddleware(jwtSecret),
		middleware.AuditMiddleware(db),
	)

	api.GET("/me", handler.GetMe)

	txHandler := handler.NewTransactionHandler(db)
	api.GET("/transactions", txHandler.List)
	api.POST("/transactions", txHandler.Create)
	api.PUT("/transactions/:id", txHandler.Update)
	api.DELETE("/transactions/:id", txHandler.Delete)

	goalHandler := handler.NewGoalHandler(db)
	api.GET("/goals", goalHandler.List)
	api.POST("/goals", goalHandler.Create)
	api.PUT("/goals/:id", goalHandler.Update)
	api.DELETE("/goals/:id", goalHandler.Delete)

	billHandler := handler.NewBillHandler(db)
	api.GET("/bills", billHandler.List)
	api.POST("/bills", billHandler.Create)
	api.PUT("/bills/:id", billHandler.Update)
	api.DELETE("/bills/:id", billHandler.Delete)

	statsHandler := handler.NewStatsHandler(db)
	api.GET("/stats/monthly", statsHandler.GetMonthly)

	exportHandler := handler.NewExportHandler(db)
	api.GET("/export/csv", exportHandler.ExportCSV)
	api.GET("/export/xlsx", exportHandler.ExportXLSX)

	logHandler := handler.NewLogHandler(db, cfg.App.PageSize)
	api.GET("/logs", logHandler.List)

	return r
}
