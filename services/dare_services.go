package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ajitashwath/dare-exchange/models"
	"github.com/ajitashwath/dare-exchange/utils"

	"gorm.io/gorm"
)

// Words that are not allowed to appear in a dare title
var inappropriateWords = []string{"hate", "violence", "illegal", "drugs"}

var (
	ErrSubmissionsClosed = errors.New("submissions are currently closed")
	ErrSubmissionLimit   = errors.New("submission limit reached for this email address")
	ErrInvalidStatus     = errors.New("invalid dare status")
)

// ValidateDare checks the cross-field and database-backed rules that the
// binding tags cannot express. It returns a map of field errors; an empty
// map means the dare is valid. Nothing is persisted here.
func ValidateDare(db *gorm.DB, dare *models.Dare, isCreate bool) map[string]string {
	fieldErrors := make(map[string]string)

	titleLower := strings.ToLower(dare.Title)
	for _, word := range inappropriateWords {
		if strings.Contains(titleLower, word) {
			fieldErrors["title"] = fmt.Sprintf("Title contains inappropriate content: '%s'", word)
			break
		}
	}

	if _, ok := fieldErrors["title"]; !ok && isCreate {
		var count int64
		db.Model(&models.Dare{}).Where("LOWER(title) = ?", titleLower).Count(&count)
		if count > 0 {
			fieldErrors["title"] = "A dare with this title already exists. Please choose a different title."
		}
	}

	if err := dare.ValidatePhoneNumber(); err != nil {
		fieldErrors["phone_number"] = err.Error()
	}

	if dare.EstimatedTime != nil {
		if *dare.EstimatedTime > 1440 {
			fieldErrors["estimated_time"] = "Estimated time cannot exceed 24 hours (1440 minutes)"
		} else if *dare.EstimatedTime < 1 {
			fieldErrors["estimated_time"] = "Estimated time must be at least 1 minute"
		}
	}

	var category models.Category
	if err := db.Where("id = ? AND is_active = ?", dare.CategoryID, true).First(&category).Error; err != nil {
		fieldErrors["category_id"] = "Select a valid category"
	}

	var difficulty models.DifficultyLevel
	if err := db.Where("id = ?", dare.DifficultyID).First(&difficulty).Error; err != nil {
		fieldErrors["difficulty_id"] = "Select a valid difficulty level"
	}

	return fieldErrors
}

// GenerateUniqueSlug derives the slug from the title and disambiguates it
// with a numeric suffix when another dare already holds it. The slug is
// computed once at creation and never recomputed afterwards.
func GenerateUniqueSlug(db *gorm.DB, title string) (string, error) {
	base := utils.Slugify(title)
	for n := 0; ; n++ {
		candidate := utils.SlugWithSuffix(base, n)
		var count int64
		if err := db.Model(&models.Dare{}).Where("slug = ?", candidate).Count(&count).Error; err != nil {
			return "", fmt.Errorf("failed to check slug uniqueness: %w", err)
		}
		if count == 0 {
			return candidate, nil
		}
	}
}

// CreateDare persists a new dare with its initial workflow state taken from
// the site configuration: pending when approval is required, otherwise
// approved with the approval timestamp stamped immediately.
func CreateDare(db *gorm.DB, config *models.SiteConfiguration, dare *models.Dare) error {
	if !config.AllowSubmissions {
		return ErrSubmissionsClosed
	}

	if config.MaxDaresPerUser > 0 {
		var count int64
		if err := db.Model(&models.Dare{}).Where("email = ?", dare.Email).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to count submissions: %w", err)
		}
		if count >= int64(config.MaxDaresPerUser) {
			return ErrSubmissionLimit
		}
	}

	slug, err := GenerateUniqueSlug(db, dare.Title)
	if err != nil {
		return err
	}
	dare.Slug = slug

	if config.RequireApproval {
		dare.Status = models.StatusPending
	} else {
		dare.Status = models.StatusApproved
		now := time.Now()
		dare.ApprovedAt = &now
	}
	dare.SyncStatusFlags()

	if err := db.Create(dare).Error; err != nil {
		return fmt.Errorf("failed to create dare: %w", err)
	}
	return nil
}

// UpdateDare saves an edited dare. Any edit sends the dare back to review:
// the status is reset to pending and both derived flags are cleared,
// whatever the previous state was. The slug is kept as is.
func UpdateDare(db *gorm.DB, dare *models.Dare) error {
	dare.Status = models.StatusPending
	dare.SyncStatusFlags()

	if err := db.Save(dare).Error; err != nil {
		return fmt.Errorf("failed to update dare: %w", err)
	}
	return nil
}

// SetStatus performs a moderation transition. ApprovedAt is stamped the
// first time a dare reaches an approved state and kept on re-approval.
// The rejection reason is retained only for rejected dares.
func SetStatus(db *gorm.DB, dare *models.Dare, status string, reason string) error {
	switch status {
	case models.StatusPending, models.StatusApproved, models.StatusRejected, models.StatusFeatured:
	default:
		return ErrInvalidStatus
	}

	dare.Status = status
	dare.SyncStatusFlags()

	if dare.IsApproved && dare.ApprovedAt == nil {
		now := time.Now()
		dare.ApprovedAt = &now
	}
	if status == models.StatusRejected {
		dare.RejectionReason = reason
	} else {
		dare.RejectionReason = ""
	}

	if err := db.Save(dare).Error; err != nil {
		return fmt.Errorf("failed to update dare status: %w", err)
	}
	return nil
}

// DeleteDare removes a dare together with the completions and likes it owns
func DeleteDare(db *gorm.DB, dare *models.Dare) error {
	tx := db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Where("dare_id = ?", dare.ID).Delete(&models.DareCompletion{}).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to delete completions: %w", err)
	}
	if err := tx.Where("dare_id = ?", dare.ID).Delete(&models.DareLike{}).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to delete likes: %w", err)
	}
	if err := tx.Delete(dare).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to delete dare: %w", err)
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
