package services

import (
	"testing"
	"time"

	"github.com/ajitashwath/dare-exchange/database"
	"github.com/ajitashwath/dare-exchange/models"
	"github.com/ajitashwath/dare-exchange/utils/testutil"
)

func TestComputeStatsSummary(t *testing.T) {
	testutil.SetupTestDB(t)

	seedDare(t, models.Dare{Slug: "st1", Title: "ST1", CategoryID: 1})
	seedDare(t, models.Dare{Slug: "st2", Title: "ST2", CategoryID: 1})
	dare := seedDare(t, models.Dare{Slug: "st3", Title: "ST3", CategoryID: 2})
	seedDare(t, models.Dare{Slug: "st4", Title: "ST4", Status: models.StatusPending})

	database.DB.Create(&models.DareLike{DareID: dare.ID, UserEmail: "fan@example.com"})
	database.DB.Create(&models.DareCompletion{
		DareID: dare.ID, CompleterName: "A", CompleterEmail: "a@example.com",
		CompletionProof: "p", IsVerified: true,
	})
	database.DB.Create(&models.DareCompletion{
		DareID: dare.ID, CompleterName: "B", CompleterEmail: "b@example.com",
		CompletionProof: "p",
	})

	summary, err := ComputeStatsSummary(database.DB)
	if err != nil {
		t.Fatalf("ComputeStatsSummary failed: %v", err)
	}

	if summary.Totals.Dares != 3 {
		t.Errorf("dares = %d, want 3 (pending excluded)", summary.Totals.Dares)
	}
	if summary.Totals.Completions != 1 {
		t.Errorf("completions = %d, want 1 (verified only)", summary.Totals.Completions)
	}
	if summary.Totals.Likes != 1 {
		t.Errorf("likes = %d, want 1", summary.Totals.Likes)
	}
	if summary.Totals.Categories != 4 {
		t.Errorf("categories = %d, want 4", summary.Totals.Categories)
	}

	if len(summary.Categories) != 4 {
		t.Fatalf("category counts = %d entries", len(summary.Categories))
	}
	if summary.Categories[0].Name != models.CategoryExtreme || summary.Categories[0].Count != 2 {
		t.Errorf("top category = %+v", summary.Categories[0])
	}
}

func TestGetStatsSummaryWithoutCache(t *testing.T) {
	testutil.SetupTestDB(t)
	database.Cache = nil

	seedDare(t, models.Dare{Slug: "nc", Title: "NC"})

	summary, err := GetStatsSummary(database.DB)
	if err != nil {
		t.Fatalf("GetStatsSummary failed: %v", err)
	}
	if summary.Totals.Dares != 1 {
		t.Errorf("dares = %d, want 1", summary.Totals.Dares)
	}
}

func TestMonthlySubmissionTrend(t *testing.T) {
	testutil.SetupTestDB(t)

	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	seedDare(t, models.Dare{Slug: "m1", Title: "M1", CreatedAt: now.AddDate(0, 0, -3)})
	seedDare(t, models.Dare{Slug: "m2", Title: "M2", CreatedAt: now.AddDate(0, 0, -4)})
	seedDare(t, models.Dare{Slug: "m3", Title: "M3", CreatedAt: now.AddDate(0, -1, 0)})
	seedDare(t, models.Dare{Slug: "too-old", Title: "Too Old", CreatedAt: now.AddDate(-2, 0, 0)})

	months, err := MonthlySubmissionTrend(database.DB, now)
	if err != nil {
		t.Fatalf("MonthlySubmissionTrend failed: %v", err)
	}

	if len(months) != 2 {
		t.Fatalf("months = %+v, want 2 buckets", months)
	}
	if months[0].Month != "2026-02" || months[0].Count != 1 {
		t.Errorf("first bucket = %+v", months[0])
	}
	if months[1].Month != "2026-03" || months[1].Count != 2 {
		t.Errorf("second bucket = %+v", months[1])
	}
}

func TestTopDares(t *testing.T) {
	testutil.SetupTestDB(t)

	seedDare(t, models.Dare{Slug: "low", Title: "Low", ViewsCount: 1})
	top := seedDare(t, models.Dare{Slug: "high", Title: "High", ViewsCount: 50})
	seedDare(t, models.Dare{Slug: "hidden", Title: "Hidden", ViewsCount: 500, Status: models.StatusPending})

	dares, err := TopDares(database.DB, "views_count")
	if err != nil {
		t.Fatalf("TopDares failed: %v", err)
	}
	if len(dares) != 2 {
		t.Fatalf("got %d dares, want 2", len(dares))
	}
	if dares[0].ID != top.ID {
		t.Errorf("top dare = %s", dares[0].Slug)
	}

	if _, err := TopDares(database.DB, "email"); err == nil {
		t.Error("non-counter columns must be rejected")
	}
}

func TestGetDashboard(t *testing.T) {
	testutil.SetupTestDB(t)

	seedDare(t, models.Dare{Slug: "d1", Title: "D1", ViewsCount: 5, LikesCount: 1, CompletionsCount: 2})

	dashboard, err := GetDashboard(database.DB, time.Now())
	if err != nil {
		t.Fatalf("GetDashboard failed: %v", err)
	}
	if dashboard.Totals.Dares != 1 {
		t.Errorf("dares = %d, want 1", dashboard.Totals.Dares)
	}
	if len(dashboard.MostViewed) != 1 || len(dashboard.MostLiked) != 1 || len(dashboard.MostCompleted) != 1 {
		t.Error("every leaderboard should contain the single approved dare")
	}
}
