package stats

import (
	"net/http"
	"time"

	"github.com/ajitashwath/dare-exchange/database"
	"github.com/ajitashwath/dare-exchange/services"
	"github.com/ajitashwath/dare-exchange/utils/response"

	"github.com/gin-gonic/gin"
)

const ErrFailedToLoadStats = "Failed to load statistics"

// GetStatsSummary serves the cacheable JSON totals for charts and widgets
// @Summary Stats summary
// @Description Aggregate totals and per-category / per-difficulty counts. May be served from cache; stale data within the cache window is acceptable.
// @Tags Stats
// @Produce json
// @Success 200 {object} services.StatsSummary
// @Failure 500 {object} map[string]string
// @Router /stats/summary/ [get]
func GetStatsSummary(c *gin.Context) {
	summary, err := services.GetStatsSummary(database.DB)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedToLoadStats)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GetDashboard serves the full stats dashboard
// @Summary Stats dashboard
// @Description Full aggregate dashboard: totals, category and difficulty breakdowns, monthly submission trend and top performers
// @Tags Stats
// @Produce json
// @Success 200 {object} services.Dashboard
// @Failure 500 {object} map[string]string
// @Router /stats/ [get]
func GetDashboard(c *gin.Context) {
	dashboard, err := services.GetDashboard(database.DB, time.Now())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedToLoadStats)
		return
	}
	c.JSON(http.StatusOK, dashboard)
}

// RegisterRoutes registers the stats routes
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/stats/summary/", GetStatsSummary)
	r.GET("/stats/", GetDashboard)
}
