package services

import (
	"errors"
	"fmt"

	"github.com/ajitashwath/dare-exchange/models"

	"gorm.io/gorm"
)

var (
	ErrAlreadyCompleted    = errors.New("you have already submitted a completion for this dare")
	ErrLikesDisabled       = errors.New("likes are currently disabled")
	ErrCompletionsDisabled = errors.New("completions are currently disabled")
)

// adjustCounter applies a relative increment to one of the dare counters.
// Relative updates avoid lost writes when concurrent requests touch the
// same row.
func adjustCounter(db *gorm.DB, dareID uint, column string, delta int) error {
	return db.Model(&models.Dare{}).
		Where("id = ?", dareID).
		UpdateColumn(column, gorm.Expr(column+" + ?", delta)).Error
}

// readCounter re-reads a counter column so callers report the current value
// rather than a stale one
func readCounter(db *gorm.DB, dareID uint, column string) (int, error) {
	var value int
	err := db.Model(&models.Dare{}).Where("id = ?", dareID).Pluck(column, &value).Error
	return value, err
}

// ToggleLike flips the like state for a (dare, email) pair. The like row is
// the state: it is deleted when present and created when absent, with the
// counter adjusted by exactly one in either direction. The unique index on
// (dare_id, user_email) is the backstop against concurrent double-creates;
// a duplicate insert is treated as the like already being present.
func ToggleLike(db *gorm.DB, dare *models.Dare, email string) (liked bool, likesCount int, err error) {
	result := db.Where("dare_id = ? AND user_email = ?", dare.ID, email).Delete(&models.DareLike{})
	if result.Error != nil {
		return false, 0, fmt.Errorf("failed to remove like: %w", result.Error)
	}

	if result.RowsAffected > 0 {
		if err := adjustCounter(db, dare.ID, "likes_count", -1); err != nil {
			return false, 0, fmt.Errorf("failed to decrement likes: %w", err)
		}
		liked = false
	} else {
		like := models.DareLike{DareID: dare.ID, UserEmail: email}
		if err := db.Create(&like).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				// A concurrent toggle created the row first; it is liked now
				liked = true
				count, readErr := readCounter(db, dare.ID, "likes_count")
				return liked, count, readErr
			}
			return false, 0, fmt.Errorf("failed to create like: %w", err)
		}
		if err := adjustCounter(db, dare.ID, "likes_count", 1); err != nil {
			return false, 0, fmt.Errorf("failed to increment likes: %w", err)
		}
		liked = true
	}

	likesCount, err = readCounter(db, dare.ID, "likes_count")
	return liked, likesCount, err
}

// HasLiked reports whether the email currently likes the dare
func HasLiked(db *gorm.DB, dareID uint, email string) (bool, error) {
	var count int64
	err := db.Model(&models.DareLike{}).Where("dare_id = ? AND user_email = ?", dareID, email).Count(&count).Error
	return count > 0, err
}

// RecordCompletion stores a new, unverified completion claim and bumps the
// attempt counter. A second claim for the same (dare, email) pair is
// rejected without touching the counter; the unique index catches the race
// where two claims arrive at once.
func RecordCompletion(db *gorm.DB, dare *models.Dare, completion *models.DareCompletion) (int, error) {
	var existing int64
	err := db.Model(&models.DareCompletion{}).
		Where("dare_id = ? AND completer_email = ?", dare.ID, completion.CompleterEmail).
		Count(&existing).Error
	if err != nil {
		return 0, fmt.Errorf("failed to check existing completion: %w", err)
	}
	if existing > 0 {
		return 0, ErrAlreadyCompleted
	}

	completion.DareID = dare.ID
	completion.IsVerified = false
	if err := db.Create(completion).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, ErrAlreadyCompleted
		}
		return 0, fmt.Errorf("failed to create completion: %w", err)
	}

	if err := adjustCounter(db, dare.ID, "completions_count", 1); err != nil {
		return 0, fmt.Errorf("failed to increment completions: %w", err)
	}
	return readCounter(db, dare.ID, "completions_count")
}

// SetCompletionVerified flips the verification flag on a completion.
// Verification never affects the attempt counter.
func SetCompletionVerified(db *gorm.DB, completion *models.DareCompletion, verified bool) error {
	if err := db.Model(completion).UpdateColumn("is_verified", verified).Error; err != nil {
		return fmt.Errorf("failed to update completion: %w", err)
	}
	completion.IsVerified = verified
	return nil
}

// IncrementViews counts one more view of an approved dare. Every detail
// fetch counts; there is no per-visitor deduplication.
func IncrementViews(db *gorm.DB, dare *models.Dare) error {
	if err := adjustCounter(db, dare.ID, "views_count", 1); err != nil {
		return fmt.Errorf("failed to increment views: %w", err)
	}
	views, err := readCounter(db, dare.ID, "views_count")
	if err != nil {
		return err
	}
	dare.ViewsCount = views
	return nil
}
