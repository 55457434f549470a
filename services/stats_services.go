package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/ajitashwath/dare-exchange/database"
	"github.com/ajitashwath/dare-exchange/metrics"
	"github.com/ajitashwath/dare-exchange/models"

	"gorm.io/gorm"
)

const (
	statsCacheKey = "stats:summary"
	statsCacheTTL = 15 * time.Minute
)

// StatsTotals holds the headline figures of the stats endpoints
type StatsTotals struct {
	Dares       int64 `json:"dares"`
	Completions int64 `json:"completions"`
	Likes       int64 `json:"likes"`
	Categories  int64 `json:"categories"`
}

// NamedCount is a per-category or per-difficulty count of approved dares
type NamedCount struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

// MonthlyCount is the number of approved dares created in a calendar month
type MonthlyCount struct {
	Month string `json:"month"`
	Count int64  `json:"count"`
}

// StatsSummary is the cached payload of the public stats API
type StatsSummary struct {
	Totals       StatsTotals  `json:"totals"`
	Categories   []NamedCount `json:"categories"`
	Difficulties []NamedCount `json:"difficulties"`
}

// ComputeStatsSummary aggregates the figures of the public stats API.
// Completion totals count verified completions only; the like total is the
// row count, which by construction only covers approved dares.
func ComputeStatsSummary(db *gorm.DB) (*StatsSummary, error) {
	var summary StatsSummary

	if err := approvedDares(db).Count(&summary.Totals.Dares).Error; err != nil {
		return nil, fmt.Errorf("failed to count dares: %w", err)
	}
	if err := db.Model(&models.DareCompletion{}).Where("is_verified = ?", true).Count(&summary.Totals.Completions).Error; err != nil {
		return nil, fmt.Errorf("failed to count completions: %w", err)
	}
	if err := db.Model(&models.DareLike{}).Count(&summary.Totals.Likes).Error; err != nil {
		return nil, fmt.Errorf("failed to count likes: %w", err)
	}
	if err := db.Model(&models.Category{}).Where("is_active = ?", true).Count(&summary.Totals.Categories).Error; err != nil {
		return nil, fmt.Errorf("failed to count categories: %w", err)
	}

	categories, err := CountApprovedByCategory(db)
	if err != nil {
		return nil, err
	}
	summary.Categories = categories

	difficulties, err := CountApprovedByDifficulty(db)
	if err != nil {
		return nil, err
	}
	summary.Difficulties = difficulties

	return &summary, nil
}

// GetStatsSummary returns the stats summary, served from the Redis cache
// when a fresh enough copy exists. Stale data within the TTL is acceptable
// for this endpoint; cache failures fall back to recomputing.
func GetStatsSummary(db *gorm.DB) (*StatsSummary, error) {
	ctx := context.Background()

	if database.Cache != nil {
		cached, err := database.Cache.Get(ctx, statsCacheKey).Result()
		if err == nil {
			var summary StatsSummary
			if err := json.Unmarshal([]byte(cached), &summary); err == nil {
				metrics.CacheHits.Inc()
				return &summary, nil
			}
		}
		metrics.CacheMisses.Inc()
	}

	summary, err := ComputeStatsSummary(db)
	if err != nil {
		return nil, err
	}

	if database.Cache != nil {
		if payload, err := json.Marshal(summary); err == nil {
			database.Cache.Set(ctx, statsCacheKey, payload, statsCacheTTL)
		}
	}
	return summary, nil
}

// CountApprovedByCategory counts approved dares per active category,
// most populated first
func CountApprovedByCategory(db *gorm.DB) ([]NamedCount, error) {
	var categories []models.Category
	if err := db.Where("is_active = ?", true).Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}

	counts := make([]NamedCount, 0, len(categories))
	for i := range categories {
		var count int64
		if err := approvedDares(db).Where("category_id = ?", categories[i].ID).Count(&count).Error; err != nil {
			return nil, fmt.Errorf("failed to count dares in category %s: %w", categories[i].Name, err)
		}
		counts = append(counts, NamedCount{Name: categories[i].Name, Count: count})
	}

	sort.SliceStable(counts, func(i, j int) bool { return counts[i].Count > counts[j].Count })
	return counts, nil
}

// CountApprovedByDifficulty counts approved dares per difficulty level in
// seed order
func CountApprovedByDifficulty(db *gorm.DB) ([]NamedCount, error) {
	var levels []models.DifficultyLevel
	if err := db.Order("id ASC").Find(&levels).Error; err != nil {
		return nil, fmt.Errorf("failed to load difficulty levels: %w", err)
	}

	counts := make([]NamedCount, 0, len(levels))
	for i := range levels {
		var count int64
		if err := approvedDares(db).Where("difficulty_id = ?", levels[i].ID).Count(&count).Error; err != nil {
			return nil, fmt.Errorf("failed to count dares at difficulty %s: %w", levels[i].Name, err)
		}
		counts = append(counts, NamedCount{Name: levels[i].Name, Count: count})
	}
	return counts, nil
}

// MonthlySubmissionTrend groups the approved dares created in the trailing
// 365 days by calendar month. The grouping runs in Go so the query stays
// portable across database dialects.
func MonthlySubmissionTrend(db *gorm.DB, now time.Time) ([]MonthlyCount, error) {
	since := now.AddDate(0, 0, -365)

	var createdAt []time.Time
	err := approvedDares(db).Where("created_at >= ?", since).Pluck("created_at", &createdAt).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load submission dates: %w", err)
	}

	buckets := make(map[string]int64)
	for _, ts := range createdAt {
		buckets[ts.Format("2006-01")]++
	}

	months := make([]MonthlyCount, 0, len(buckets))
	for month, count := range buckets {
		months = append(months, MonthlyCount{Month: month, Count: count})
	}
	sort.Slice(months, func(i, j int) bool { return months[i].Month < months[j].Month })
	return months, nil
}

// TopDares returns the ten approved dares with the highest value of the
// given counter column, newest first on ties
func TopDares(db *gorm.DB, counterColumn string) ([]models.Dare, error) {
	switch counterColumn {
	case "views_count", "likes_count", "completions_count":
	default:
		return nil, fmt.Errorf("unknown counter column %q", counterColumn)
	}

	var dares []models.Dare
	err := db.Where("is_approved = ?", true).
		Preload("Category").
		Preload("Difficulty").
		Order(counterColumn + " DESC").
		Order("created_at DESC").
		Limit(10).
		Find(&dares).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load top dares: %w", err)
	}
	return dares, nil
}

// Dashboard is the payload of the full stats page
type Dashboard struct {
	Totals             StatsTotals    `json:"totals"`
	Categories         []NamedCount   `json:"categories"`
	Difficulties       []NamedCount   `json:"difficulties"`
	MonthlySubmissions []MonthlyCount `json:"monthly_submissions"`
	MostViewed         []models.Dare  `json:"most_viewed"`
	MostLiked          []models.Dare  `json:"most_liked"`
	MostCompleted      []models.Dare  `json:"most_completed"`
}

// GetDashboard assembles the aggregate dashboard shown on the stats page
func GetDashboard(db *gorm.DB, now time.Time) (*Dashboard, error) {
	summary, err := ComputeStatsSummary(db)
	if err != nil {
		return nil, err
	}

	monthly, err := MonthlySubmissionTrend(db, now)
	if err != nil {
		return nil, err
	}

	mostViewed, err := TopDares(db, "views_count")
	if err != nil {
		return nil, err
	}
	mostLiked, err := TopDares(db, "likes_count")
	if err != nil {
		return nil, err
	}
	mostCompleted, err := TopDares(db, "completions_count")
	if err != nil {
		return nil, err
	}

	return &Dashboard{
		Totals:             summary.Totals,
		Categories:         summary.Categories,
		Difficulties:       summary.Difficulties,
		MonthlySubmissions: monthly,
		MostViewed:         mostViewed,
		MostLiked:          mostLiked,
		MostCompleted:      mostCompleted,
	}, nil
}
