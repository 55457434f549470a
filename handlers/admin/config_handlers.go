package admin

import (
	"net/http"

	"github.com/ajitashwath/dare-exchange/database"
	"github.com/ajitashwath/dare-exchange/models"
	"github.com/ajitashwath/dare-exchange/utils/response"

	"github.com/gin-gonic/gin"
)

// GetConfig returns the site configuration row
// @Summary Get site configuration
// @Tags Admin
// @Produce json
// @Success 200 {object} models.SiteConfiguration
// @Failure 403 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /admin/config [get]
// @Security AdminKey
func GetConfig(c *gin.Context) {
	siteConfig, err := models.GetConfig(database.DB)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedToLoadConfig)
		return
	}
	c.JSON(http.StatusOK, siteConfig)
}

// UpdateConfig mutates the singleton configuration row. Only the fields
// present in the request are changed.
// @Summary Update site configuration
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body ConfigUpdateRequest true "Fields to change"
// @Success 200 {object} models.SiteConfiguration
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /admin/config [put]
// @Security AdminKey
func UpdateConfig(c *gin.Context) {
	var request ConfigUpdateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	siteConfig, err := models.GetConfig(database.DB)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedToLoadConfig)
		return
	}

	if request.SiteName != nil {
		siteConfig.SiteName = *request.SiteName
	}
	if request.AllowSubmissions != nil {
		siteConfig.AllowSubmissions = *request.AllowSubmissions
	}
	if request.RequireApproval != nil {
		siteConfig.RequireApproval = *request.RequireApproval
	}
	if request.EnableLikes != nil {
		siteConfig.EnableLikes = *request.EnableLikes
	}
	if request.EnableCompletions != nil {
		siteConfig.EnableCompletions = *request.EnableCompletions
	}
	if request.MaxDaresPerUser != nil {
		siteConfig.MaxDaresPerUser = *request.MaxDaresPerUser
	}
	if request.FeaturedDaresCount != nil {
		siteConfig.FeaturedDaresCount = *request.FeaturedDaresCount
	}

	if err := database.DB.Save(siteConfig).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedToSaveConfig)
		return
	}

	c.JSON(http.StatusOK, siteConfig)
}
