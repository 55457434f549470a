package interactions

import (
	"errors"
	"net/http"

	"github.com/ajitashwath/dare-exchange/database"
	"github.com/ajitashwath/dare-exchange/metrics"
	"github.com/ajitashwath/dare-exchange/models"
	"github.com/ajitashwath/dare-exchange/realtime"
	"github.com/ajitashwath/dare-exchange/services"
	"github.com/ajitashwath/dare-exchange/utils/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// findApprovedDare loads the approved dare the interaction targets.
// Interactions are only accepted on approved dares.
func findApprovedDare(c *gin.Context) (*models.Dare, bool) {
	slug := c.Param("slug")

	var dare models.Dare
	err := database.DB.Where("slug = ? AND is_approved = ?", slug, true).First(&dare).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, ErrDareNotFound)
		} else {
			response.AjaxError(c, ErrInvalidRequest)
		}
		return nil, false
	}
	return &dare, true
}

// ToggleLike flips the like state of a dare for an email address
// @Summary Toggle a like
// @Description Like or unlike a dare. The response carries the resulting state and the current count.
// @Tags Interactions
// @Accept json
// @Produce json
// @Param slug path string true "Dare slug"
// @Param request body LikeRequest true "Liker email"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /ajax/dare/{slug}/like/ [post]
func ToggleLike(c *gin.Context) {
	dare, ok := findApprovedDare(c)
	if !ok {
		return
	}

	var request LikeRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.AjaxError(c, ErrEmailRequired)
		return
	}

	siteConfig, err := models.GetConfig(database.DB)
	if err != nil {
		response.AjaxError(c, ErrFailedToToggleLike)
		return
	}
	if !siteConfig.EnableLikes {
		response.AjaxError(c, ErrLikesDisabled)
		return
	}

	liked, likesCount, err := services.ToggleLike(database.DB, dare, request.Email)
	if err != nil {
		response.AjaxError(c, ErrFailedToToggleLike)
		return
	}

	direction := "unlike"
	if liked {
		direction = "like"
	}
	metrics.LikesToggled.WithLabelValues(direction).Inc()

	go realtime.BroadcastCounterUpdate(realtime.CounterUpdate{
		Slug:             dare.Slug,
		ViewsCount:       dare.ViewsCount,
		LikesCount:       likesCount,
		CompletionsCount: dare.CompletionsCount,
	})

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"liked":       liked,
		"likes_count": likesCount,
	})
}
