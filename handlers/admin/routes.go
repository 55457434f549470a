package admin

import (
	"github.com/ajitashwath/dare-exchange/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the moderation endpoints. Every route in this
// group requires the X-Admin-Key header.
func RegisterRoutes(r *gin.RouterGroup) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.AdminKeyMiddleware())
	{
		adminGroup.GET("/dares/pending/", ListPendingDares)
		adminGroup.POST("/dares/bulk/", BulkAction)
		adminGroup.PUT("/dare/:slug/approve/", ApproveDare)
		adminGroup.PUT("/dare/:slug/reject/", RejectDare)
		adminGroup.PUT("/dare/:slug/feature/", FeatureDare)
		adminGroup.PUT("/dare/:slug/unfeature/", UnfeatureDare)
		adminGroup.PUT("/completion/:id/verify/", VerifyCompletion)
		adminGroup.GET("/config/", GetConfig)
		adminGroup.PUT("/config/", UpdateConfig)
		adminGroup.GET("/export/", ExportDares)
	}
}
