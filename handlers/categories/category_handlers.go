package categories

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/ajitashwath/dare-exchange/database"
	"github.com/ajitashwath/dare-exchange/models"
	"github.com/ajitashwath/dare-exchange/services"
	"github.com/ajitashwath/dare-exchange/utils/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// categoryView is the category payload with its derived display fields
type categoryView struct {
	models.Category
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

// GetCategory lists the approved dares of one category with its statistics
// @Summary Category detail
// @Description List the approved dares of a category together with its aggregate statistics
// @Tags Categories
// @Produce json
// @Param name path string true "Category name"
// @Param page query int false "Page number"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /category/{name}/ [get]
func GetCategory(c *gin.Context) {
	name := c.Param("name")

	var category models.Category
	if err := database.DB.Where("name = ? AND is_active = ?", name, true).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, ErrCategoryNotFound)
		} else {
			response.Error(c, http.StatusInternalServerError, ErrFailedToLoadListing)
		}
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	dares, pagination, err := services.ListDares(database.DB, services.DareFilters{
		Category: category.Name,
		SortBy:   services.SortNewest,
		Page:     page,
	})
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedToLoadListing)
		return
	}

	stats, err := services.GetCategoryStats(database.DB, category.ID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedToLoadListing)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"category": categoryView{
			Category: category,
			Color:    category.Color(),
			Icon:     category.Icon(),
		},
		"dares":          dares,
		"pagination":     pagination,
		"category_stats": stats,
	})
}

// RegisterRoutes registers the category routes
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/category/:name/", GetCategory)
}
