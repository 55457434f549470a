package dares

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/ajitashwath/dare-exchange/database"
	"github.com/ajitashwath/dare-exchange/models"
	"github.com/ajitashwath/dare-exchange/realtime"
	"github.com/ajitashwath/dare-exchange/services"
	"github.com/ajitashwath/dare-exchange/utils/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ListDares lists the approved dares
// @Summary List dares
// @Description List approved dares with optional search, category, difficulty and featured filters
// @Tags Dares
// @Produce json
// @Param search query string false "Free text search over title and description"
// @Param category query string false "Category name"
// @Param difficulty query string false "Difficulty name"
// @Param sort_by query string false "Sort key" Enums(newest, oldest, most_viewed, most_liked, title)
// @Param featured_only query bool false "Featured dares only"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]string
// @Router /dares/ [get]
func ListDares(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "12"))
	featuredOnly, _ := strconv.ParseBool(c.DefaultQuery("featured_only", "false"))

	filters := services.DareFilters{
		Search:       c.Query("search"),
		Category:     c.Query("category"),
		Difficulty:   c.Query("difficulty"),
		FeaturedOnly: featuredOnly,
		SortBy:       c.DefaultQuery("sort_by", services.SortNewest),
		Page:         page,
		PageSize:     pageSize,
	}

	daresPage, pagination, err := services.ListDares(database.DB, filters)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedToListDares)
		return
	}

	categories, err := services.CountApprovedByCategory(database.DB)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedToListDares)
		return
	}
	difficulties, err := services.CountApprovedByDifficulty(database.DB)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedToListDares)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"dares":        daresPage,
		"pagination":   pagination,
		"categories":   categories,
		"difficulties": difficulties,
	})
}

// GetDare fetches a dare detail page and counts the view
// @Summary Get dare detail
// @Description Get an approved dare by slug. Every fetch increments the view counter.
// @Tags Dares
// @Produce json
// @Param slug path string true "Dare slug"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /dare/{slug}/ [get]
func GetDare(c *gin.Context) {
	slug := c.Param("slug")

	var dare models.Dare
	err := database.DB.Where("slug = ? AND is_approved = ?", slug, true).
		Preload("Category").
		Preload("Difficulty").
		First(&dare).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, ErrDareNotFound)
		} else {
			response.Error(c, http.StatusInternalServerError, ErrFailedToLoadDetails)
		}
		return
	}

	if err := services.IncrementViews(database.DB, &dare); err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedToLoadDetails)
		return
	}

	go realtime.BroadcastCounterUpdate(realtime.CounterUpdate{
		Slug:             dare.Slug,
		ViewsCount:       dare.ViewsCount,
		LikesCount:       dare.LikesCount,
		CompletionsCount: dare.CompletionsCount,
	})

	related, err := services.GetRelatedDares(database.DB, &dare)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedToLoadDetails)
		return
	}

	var recentCompletions []models.DareCompletion
	err = database.DB.Where("dare_id = ? AND is_verified = ?", dare.ID, true).
		Order("completed_at DESC").
		Limit(5).
		Find(&recentCompletions).Error
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedToLoadDetails)
		return
	}

	breakdown, err := services.GetCompletionBreakdown(database.DB, dare.ID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedToLoadDetails)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"dare":               dare,
		"related_dares":      related,
		"recent_completions": recentCompletions,
		"total_attempts":     breakdown.TotalAttempts,
		"completion_rate":    breakdown.CompletionRate,
	})
}

// SearchSuggestions serves the search typeahead
// @Summary Search suggestions
// @Description Up to five approved dare titles matching the query
// @Tags Dares
// @Produce json
// @Param q query string false "Query"
// @Success 200 {object} map[string]interface{}
// @Router /ajax/search/suggestions/ [get]
func SearchSuggestions(c *gin.Context) {
	suggestions, err := services.GetSearchSuggestions(database.DB, c.Query("q"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedToListDares)
		return
	}
	c.JSON(http.StatusOK, gin.H{"suggestions": suggestions})
}
