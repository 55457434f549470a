package services

import (
	"fmt"
	"math"
	"strings"

	"github.com/ajitashwath/dare-exchange/models"

	"gorm.io/gorm"
)

const DefaultPageSize = 12

// Sort keys accepted by the public listing
const (
	SortNewest     = "newest"
	SortOldest     = "oldest"
	SortMostViewed = "most_viewed"
	SortMostLiked  = "most_liked"
	SortTitle      = "title"
)

// DareFilters carries the optional filters and the sort key of a listing request
type DareFilters struct {
	Search       string
	Category     string
	Difficulty   string
	FeaturedOnly bool
	SortBy       string
	Page         int
	PageSize     int
}

// Pagination describes the page returned by a listing query
type Pagination struct {
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
	Total    int64 `json:"total"`
	Pages    int   `json:"pages"`
}

// approvedDares scopes a query to the publicly visible dares
func approvedDares(db *gorm.DB) *gorm.DB {
	return db.Model(&models.Dare{}).Where("is_approved = ?", true)
}

// ListDares returns a page of approved dares matching the filters together
// with the total count for pagination
func ListDares(db *gorm.DB, filters DareFilters) ([]models.Dare, Pagination, error) {
	query := approvedDares(db)

	if search := strings.TrimSpace(filters.Search); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(dare_text) LIKE ?", pattern, pattern)
	}

	if filters.Category != "" {
		var category models.Category
		if err := db.Where("name = ? AND is_active = ?", filters.Category, true).First(&category).Error; err != nil {
			return nil, Pagination{}, fmt.Errorf("unknown category %q: %w", filters.Category, err)
		}
		query = query.Where("category_id = ?", category.ID)
	}

	if filters.Difficulty != "" {
		var difficulty models.DifficultyLevel
		if err := db.Where("name = ?", filters.Difficulty).First(&difficulty).Error; err != nil {
			return nil, Pagination{}, fmt.Errorf("unknown difficulty %q: %w", filters.Difficulty, err)
		}
		query = query.Where("difficulty_id = ?", difficulty.ID)
	}

	if filters.FeaturedOnly {
		query = query.Where("is_featured = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, Pagination{}, fmt.Errorf("failed to count dares: %w", err)
	}

	switch filters.SortBy {
	case SortOldest:
		query = query.Order("created_at ASC")
	case SortMostViewed:
		query = query.Order("views_count DESC").Order("created_at DESC")
	case SortMostLiked:
		query = query.Order("likes_count DESC").Order("created_at DESC")
	case SortTitle:
		query = query.Order("title ASC")
	default:
		query = query.Order("created_at DESC")
	}

	page := filters.Page
	if page < 1 {
		page = 1
	}
	pageSize := filters.PageSize
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > 100 {
		pageSize = 100
	}

	var dares []models.Dare
	err := query.
		Preload("Category").
		Preload("Difficulty").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&dares).Error
	if err != nil {
		return nil, Pagination{}, fmt.Errorf("failed to list dares: %w", err)
	}

	pagination := Pagination{
		Page:     page,
		PageSize: pageSize,
		Total:    total,
		Pages:    int(math.Ceil(float64(total) / float64(pageSize))),
	}
	return dares, pagination, nil
}

// CategoryStats holds the aggregate figures shown on a category page.
// The three figures are recomputed from the same filtered set on each
// request; at this scale the repeated passes are cheaper than a cache.
type CategoryStats struct {
	TotalDares    int64        `json:"total_dares"`
	AvgDifficulty float64      `json:"avg_difficulty"`
	MostPopular   *models.Dare `json:"most_popular"`
}

// GetCategoryStats computes the aggregate block of a category detail view
func GetCategoryStats(db *gorm.DB, categoryID uint) (CategoryStats, error) {
	var stats CategoryStats

	scope := approvedDares(db).Where("category_id = ?", categoryID)
	if err := scope.Count(&stats.TotalDares).Error; err != nil {
		return stats, fmt.Errorf("failed to count category dares: %w", err)
	}

	// Mean of difficulty row identifiers, matching the seeded easy-to-extreme
	// ordering. The IDs double as the severity ordinal only because of that
	// seed order.
	var avg *float64
	err := approvedDares(db).Where("category_id = ?", categoryID).
		Select("AVG(difficulty_id)").Scan(&avg).Error
	if err != nil {
		return stats, fmt.Errorf("failed to average difficulty: %w", err)
	}
	if avg != nil {
		stats.AvgDifficulty = *avg
	}

	var mostPopular models.Dare
	err = db.Where("is_approved = ? AND category_id = ?", true, categoryID).
		Order("views_count DESC").
		First(&mostPopular).Error
	if err == nil {
		stats.MostPopular = &mostPopular
	} else if err != gorm.ErrRecordNotFound {
		return stats, fmt.Errorf("failed to find most popular dare: %w", err)
	}

	return stats, nil
}

// SearchSuggestion is a single typeahead entry
type SearchSuggestion struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// GetSearchSuggestions returns up to five approved dares whose title
// contains the query
func GetSearchSuggestions(db *gorm.DB, query string) ([]SearchSuggestion, error) {
	suggestions := []SearchSuggestion{}
	if strings.TrimSpace(query) == "" {
		return suggestions, nil
	}

	var dares []models.Dare
	pattern := "%" + strings.ToLower(query) + "%"
	err := approvedDares(db).Where("LOWER(title) LIKE ?", pattern).Limit(5).Find(&dares).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search titles: %w", err)
	}

	for i := range dares {
		suggestions = append(suggestions, SearchSuggestion{Title: dares[i].Title, URL: dares[i].URL()})
	}
	return suggestions, nil
}

// GetRelatedDares returns up to four other approved dares from the same category
func GetRelatedDares(db *gorm.DB, dare *models.Dare) ([]models.Dare, error) {
	var related []models.Dare
	err := db.Where("is_approved = ? AND category_id = ? AND id <> ?", true, dare.CategoryID, dare.ID).
		Preload("Category").
		Preload("Difficulty").
		Order("created_at DESC").
		Limit(4).
		Find(&related).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load related dares: %w", err)
	}
	return related, nil
}

// CompletionBreakdown summarizes the completion attempts of a dare
type CompletionBreakdown struct {
	TotalAttempts  int64   `json:"total_attempts"`
	CompletionRate float64 `json:"completion_rate"`
}

// GetCompletionBreakdown computes the verified completion rate of a dare
func GetCompletionBreakdown(db *gorm.DB, dareID uint) (CompletionBreakdown, error) {
	var breakdown CompletionBreakdown

	if err := db.Model(&models.DareCompletion{}).Where("dare_id = ?", dareID).Count(&breakdown.TotalAttempts).Error; err != nil {
		return breakdown, fmt.Errorf("failed to count attempts: %w", err)
	}

	var verified int64
	if err := db.Model(&models.DareCompletion{}).Where("dare_id = ? AND is_verified = ?", dareID, true).Count(&verified).Error; err != nil {
		return breakdown, fmt.Errorf("failed to count verified completions: %w", err)
	}

	if breakdown.TotalAttempts > 0 {
		breakdown.CompletionRate = math.Round(float64(verified)/float64(breakdown.TotalAttempts)*1000) / 10
	}
	return breakdown, nil
}

// ListVerifiedCompletions returns a page of recently verified completions
// for the community board
func ListVerifiedCompletions(db *gorm.DB, page, pageSize int) ([]models.DareCompletion, Pagination, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 9
	}

	var total int64
	if err := db.Model(&models.DareCompletion{}).Where("is_verified = ?", true).Count(&total).Error; err != nil {
		return nil, Pagination{}, fmt.Errorf("failed to count completions: %w", err)
	}

	var completions []models.DareCompletion
	err := db.Where("is_verified = ?", true).
		Preload("Dare").
		Preload("Dare.Category").
		Order("completed_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&completions).Error
	if err != nil {
		return nil, Pagination{}, fmt.Errorf("failed to list completions: %w", err)
	}

	pagination := Pagination{
		Page:     page,
		PageSize: pageSize,
		Total:    total,
		Pages:    int(math.Ceil(float64(total) / float64(pageSize))),
	}
	return completions, pagination, nil
}
