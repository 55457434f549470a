package v1

import (
	"github.com/ajitashwath/dare-exchange/handlers/admin"
	"github.com/ajitashwath/dare-exchange/handlers/categories"
	"github.com/ajitashwath/dare-exchange/handlers/dares"
	"github.com/ajitashwath/dare-exchange/handlers/interactions"
	"github.com/ajitashwath/dare-exchange/handlers/stats"
	"github.com/ajitashwath/dare-exchange/middleware"

	"github.com/gin-gonic/gin"
)

// Register the endpoints for the v1 API
func Register(r *gin.Engine) {
	v1 := r.Group("/api/v1")

	// Add metrics middleware to all routes
	v1.Use(middleware.MetricsMiddleware())

	rateLimiter := middleware.NewRateLimiter(10000, 1500)
	v1.Use(middleware.RateLimiterMiddleware(rateLimiter))

	RegisterPingRoutes(v1)
	RegisterSupportRoutes(v1)
	dares.RegisterRoutes(v1)
	interactions.RegisterRoutes(v1)
	categories.RegisterRoutes(v1)
	stats.RegisterRoutes(v1)
	admin.RegisterRoutes(v1)

	// Register metrics endpoint
	RegisterMetricsRoutes(v1)
}
