package monitoring

import (
	"net/http"
	"runtime"
	"sync"
	"time"

	"todo-service/backend/internal/database"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Metrics struct {
	mu              sync.RWMutex
	RequestCount    int64            `json:"request_count"`
	RequestDuration time.Duration    `json:"avg_request_duration_ms"`
	ActiveRequests  int64            `json:"active_requests"`
	ErrorCount      int64            `json:"error_count"`
	StatusCodes     map[string]int64 `json:"status_codes"`
	Endpoints       map[string]int64 `json:"endpoint_calls"`
	StartTime       time.Time        `json:"start_time"`
	LastRequest     time.Time        `json:"last_request"`
	totalDuration   time.Duration
}

var globalMetrics = &Metrics{
	StatusCodes: make(map[string]int64),
	Endpoints:   make(map[string]int64),
	StartTime:   time.Now(),
}

func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		globalMetrics.mu.Lock()
		globalMetrics.ActiveRequests++
		globalMetrics.mu.Unlock()

		c.Next()

		duration := time.Since(start)
		statusCode := c.Writer.Status()
		endpoint := c.Request.Method + " " + c.FullPath()

		globalMetrics.mu.Lock()
		globalMetrics.RequestCount++
		globalMetrics.ActiveRequests--
		globalMetrics.totalDuration += duration
		globalMetrics.RequestDuration = globalMetrics.totalDuration / time.Duration(globalMetrics.RequestCount)
		globalMetrics.LastRequest = time.Now()

		if statusCode >= 400 {
			globalMetrics.ErrorCount++
		}
		globalMetrics.StatusCodes[http.StatusText(statusCode)]++
		globalMetrics.Endpoints[endpoint]++
		globalMetrics.mu.Unlock()
	}
}

func GetMetrics() *Metrics {
	globalMetrics.mu.RLock()
	defer globalMetrics.mu.RUnlock()

	metrics := &Metrics{
		RequestCount:    globalMetrics.RequestCount,
		RequestDuration: globalMetrics.RequestDuration,
		ActiveRequests:  globalMetrics.ActiveRequests,
		ErrorCount:      globalMetrics.ErrorCount,
		StatusCodes:     make(map[string]int64),
		Endpoints:       make(map[string]int64),
		StartTime:       globalMetrics.StartTime,
		LastRequest:     globalMetrics.LastRequest,
	}

	for k, v := range globalMetrics.StatusCodes {
		metrics.StatusCodes[k] = v
	}
	for k, v := range globalMetrics.Endpoints {
		metrics.Endpoints[k] = v
	}

	return metrics
}

// MetricsHandler exposes the request counters alongside a runtime
// snapshot.
func MetricsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		metrics := GetMetrics()

		c.JSON(http.StatusOK, gin.H{
			"requests": metrics,
			"system": gin.H{
				"uptime":     time.Since(metrics.StartTime).String(),
				"goroutines": runtime.NumGoroutine(),
				"cpus":       runtime.NumCPU(),
				"go_version": runtime.Version(),
			},
		})
	}
}

// HealthHandler reports liveness, uptime, and the state of the store.
func HealthHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := "healthy"
		code := http.StatusOK

		dbStatus := "up"
		if sqlDB, err := db.DB(); err != nil {
			dbStatus = err.Error()
			status = "unhealthy"
			code = http.StatusServiceUnavailable
		} else if err := sqlDB.Ping(); err != nil {
			dbStatus = err.Error()
			status = "unhealthy"
			code = http.StatusServiceUnavailable
		}

		c.JSON(code, gin.H{
			"status":     status,
			"uptime":     time.Since(globalMetrics.StartTime).String(),
			"goroutines": runtime.NumGoroutine(),
			"database":   dbStatus,
			"pool":       database.Stats(db),
		})
	}
}
