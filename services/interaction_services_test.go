package services

import (
	"errors"
	"testing"

	"github.com/ajitashwath/dare-exchange/database"
	"github.com/ajitashwath/dare-exchange/models"
	"github.com/ajitashwath/dare-exchange/utils/testutil"
)

func TestToggleLikeRoundTrip(t *testing.T) {
	testutil.SetupTestDB(t)
	dare := seedDare(t, models.Dare{Slug: "likeable", Title: "Likeable"})

	liked, count, err := ToggleLike(database.DB, &dare, "fan@example.com")
	if err != nil {
		t.Fatalf("first toggle failed: %v", err)
	}
	if !liked || count != 1 {
		t.Errorf("first toggle = (%v, %d), want (true, 1)", liked, count)
	}

	has, err := HasLiked(database.DB, dare.ID, "fan@example.com")
	if err != nil || !has {
		t.Errorf("HasLiked = (%v, %v), want true", has, err)
	}

	liked, count, err = ToggleLike(database.DB, &dare, "fan@example.com")
	if err != nil {
		t.Fatalf("second toggle failed: %v", err)
	}
	if liked || count != 0 {
		t.Errorf("second toggle = (%v, %d), want (false, 0)", liked, count)
	}

	// The like row itself is gone, not just the counter
	var rows int64
	database.DB.Model(&models.DareLike{}).Where("dare_id = ?", dare.ID).Count(&rows)
	if rows != 0 {
		t.Errorf("like rows = %d, want 0", rows)
	}
}

func TestToggleLikeIndependentUsers(t *testing.T) {
	testutil.SetupTestDB(t)
	dare := seedDare(t, models.Dare{Slug: "shared", Title: "Shared"})

	if _, _, err := ToggleLike(database.DB, &dare, "a@example.com"); err != nil {
		t.Fatalf("toggle a failed: %v", err)
	}
	_, count, err := ToggleLike(database.DB, &dare, "b@example.com")
	if err != nil {
		t.Fatalf("toggle b failed: %v", err)
	}
	if count != 2 {
		t.Errorf("count = %d, want 2", count)
	}

	// Removing one like leaves the other untouched
	_, count, err = ToggleLike(database.DB, &dare, "a@example.com")
	if err != nil {
		t.Fatalf("untoggle a failed: %v", err)
	}
	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}
}

func TestRecordCompletion(t *testing.T) {
	testutil.SetupTestDB(t)
	dare := seedDare(t, models.Dare{Slug: "completable", Title: "Completable"})

	completion := models.DareCompletion{
		CompleterName:   "Arjun",
		CompleterEmail:  "arjun@example.com",
		CompletionProof: "https://example.com/video",
	}
	count, err := RecordCompletion(database.DB, &dare, &completion)
	if err != nil {
		t.Fatalf("RecordCompletion failed: %v", err)
	}
	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}
	if completion.IsVerified {
		t.Error("a fresh completion must start unverified")
	}
}

func TestRecordCompletionRejectsDuplicate(t *testing.T) {
	testutil.SetupTestDB(t)
	dare := seedDare(t, models.Dare{Slug: "once-only", Title: "Once Only"})

	first := models.DareCompletion{CompleterName: "A", CompleterEmail: "a@example.com", CompletionProof: "p"}
	if _, err := RecordCompletion(database.DB, &dare, &first); err != nil {
		t.Fatalf("first completion failed: %v", err)
	}

	second := models.DareCompletion{CompleterName: "A", CompleterEmail: "a@example.com", CompletionProof: "p2"}
	if _, err := RecordCompletion(database.DB, &dare, &second); !errors.Is(err, ErrAlreadyCompleted) {
		t.Fatalf("err = %v, want ErrAlreadyCompleted", err)
	}

	// The rejected duplicate must not move the counter
	count, err := readCounter(database.DB, dare.ID, "completions_count")
	if err != nil {
		t.Fatalf("readCounter failed: %v", err)
	}
	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}
}

func TestSetCompletionVerifiedKeepsCounter(t *testing.T) {
	testutil.SetupTestDB(t)
	dare := seedDare(t, models.Dare{Slug: "verify", Title: "Verify"})

	completion := models.DareCompletion{CompleterName: "A", CompleterEmail: "a@example.com", CompletionProof: "p"}
	if _, err := RecordCompletion(database.DB, &dare, &completion); err != nil {
		t.Fatalf("RecordCompletion failed: %v", err)
	}

	if err := SetCompletionVerified(database.DB, &completion, true); err != nil {
		t.Fatalf("SetCompletionVerified failed: %v", err)
	}

	var reloaded models.DareCompletion
	if err := database.DB.First(&reloaded, completion.ID).Error; err != nil {
		t.Fatalf("failed to reload completion: %v", err)
	}
	if !reloaded.IsVerified {
		t.Error("completion should be verified")
	}

	count, err := readCounter(database.DB, dare.ID, "completions_count")
	if err != nil {
		t.Fatalf("readCounter failed: %v", err)
	}
	if count != 1 {
		t.Errorf("verification moved the counter to %d", count)
	}
}

func TestIncrementViews(t *testing.T) {
	testutil.SetupTestDB(t)
	dare := seedDare(t, models.Dare{Slug: "watched", Title: "Watched"})

	for i := 0; i < 3; i++ {
		if err := IncrementViews(database.DB, &dare); err != nil {
			t.Fatalf("IncrementViews failed: %v", err)
		}
	}
	if dare.ViewsCount != 3 {
		t.Errorf("ViewsCount = %d, want 3", dare.ViewsCount)
	}
}
