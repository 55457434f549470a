package dares

import (
	"github.com/ajitashwath/dare-exchange/config"
	"github.com/ajitashwath/dare-exchange/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to dares
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup) {
	listingRateLimiter := middleware.NewRateLimiter(
		config.DefaultRateLimitConfig.ListingRate,
		config.DefaultRateLimitConfig.ListingBurst,
	)

	r.GET("/dares/", middleware.RateLimiterMiddleware(listingRateLimiter), ListDares)

	dare := r.Group("/dare")
	{
		dare.POST("/new/", CreateDare)
		dare.GET("/:slug/", middleware.RateLimiterMiddleware(listingRateLimiter), GetDare)
		dare.PUT("/:slug/edit/", UpdateDare)
		dare.DELETE("/:slug/delete/", DeleteDare)
		dare.GET("/:slug/live", DareWebSocket)
	}

	r.GET("/ajax/search/suggestions/", SearchSuggestions)
}
