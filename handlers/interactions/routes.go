package interactions

import (
	"github.com/ajitashwath/dare-exchange/config"
	"github.com/ajitashwath/dare-exchange/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the AJAX interaction routes and the community board
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup) {
	interactionRateLimiter := middleware.NewRateLimiter(
		config.DefaultRateLimitConfig.InteractionRate,
		config.DefaultRateLimitConfig.InteractionBurst,
	)

	ajax := r.Group("/ajax/dare")
	ajax.Use(middleware.RateLimiterMiddleware(interactionRateLimiter))
	{
		ajax.POST("/:slug/like/", ToggleLike)
		ajax.POST("/:slug/complete/", SubmitCompletion)
	}

	r.GET("/community/", CommunityBoard)
}
