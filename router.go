package main

import (
	"todo-service/backend/internal/config"
	"todo-service/backend/internal/handlers"
	"todo-service/backend/internal/middleware"
	"todo-service/backend/internal/monitoring"
	"todo-service/backend/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// setupRouter builds the single route table the process serves. It is
// constructed once at startup; the only process-wide mutable state beyond
// the store lives inside the metrics and rate-limit collectors.
func setupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RecoveryWithLog())
	router.Use(monitoring.MetricsMiddleware())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORS.AllowedOrigins
	corsConfig.AllowCredentials = true
	corsConfig.AddAllowHeaders(middleware.APIKeyHeader)
	router.Use(cors.New(corsConfig))

	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(
			cfg.RateLimit.RequestsPerMin,
			cfg.RateLimit.BurstSize,
			cfg.RateLimit.CleanupInterval,
		)
		router.Use(limiter.Middleware())
	}

	userService := services.NewUserService()
	todoService := services.NewTodoService()
	statsService := services.NewStatsService(todoService)

	registerHandler := handlers.NewRegisterHandler(db, userService)
	todoHandler := handlers.NewTodoHandler(db, todoService)
	statsHandler := handlers.NewStatsHandler(db, statsService)

	router.POST("/register", registerHandler.Register)
	router.GET("/healthz", monitoring.HealthHandler(db))
	router.GET("/metrics", monitoring.MetricsHandler())

	authed := router.Group("/", middleware.APIKeyAuth(db, userService))
	authed.GET("/todos", todoHandler.ListTodos)
	authed.POST("/todos", todoHandler.CreateTodo)
	authed.PUT("/todos/:id", todoHandler.UpdateTodo)
	authed.DELETE("/todos/:id", todoHandler.DeleteTodo)
	authed.GET("/todos/export", statsHandler.Export)
	authed.GET("/stats", statsHandler.Stats)
	authed.GET("/stats-pandas", statsHandler.Stats)

	return router
}
