package admin

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ajitashwath/dare-exchange/database"
	"github.com/ajitashwath/dare-exchange/models"
	"github.com/ajitashwath/dare-exchange/utils/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The router here is unguarded on purpose: the key middleware has its own
// tests and these exercise the handlers behind it.
func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin/dares/pending/", ListPendingDares)
	r.POST("/admin/dares/bulk/", BulkAction)
	r.PUT("/admin/dare/:slug/approve/", ApproveDare)
	r.PUT("/admin/dare/:slug/reject/", RejectDare)
	r.PUT("/admin/dare/:slug/feature/", FeatureDare)
	r.PUT("/admin/dare/:slug/unfeature/", UnfeatureDare)
	r.PUT("/admin/completion/:id/verify/", VerifyCompletion)
	return r
}

func seedPendingDare(t *testing.T, slug string) models.Dare {
	t.Helper()
	dare := models.Dare{
		Slug:         slug,
		Title:        "Seeded " + slug,
		Name:         "Seeder",
		Email:        "seed@example.com",
		PhoneNumber:  "+919876543210",
		College:      "Seed College",
		DareText:     "A seeded dare description",
		CategoryID:   1,
		DifficultyID: 1,
		Status:       models.StatusPending,
	}
	require.NoError(t, database.DB.Create(&dare).Error)
	return dare
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	var body []byte
	if payload != nil {
		var err error
		body, err = json.Marshal(payload)
		require.NoError(t, err)
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestApproveDareHandler(t *testing.T) {
	testutil.SetupTestDB(t)
	r := newTestRouter()
	seedPendingDare(t, "pending-one")

	w := doJSON(t, r, http.MethodPut, "/admin/dare/pending-one/approve/", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var dare models.Dare
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &dare))
	assert.Equal(t, models.StatusApproved, dare.Status)
	assert.True(t, dare.IsApproved)
	assert.NotNil(t, dare.ApprovedAt)
}

func TestRejectDareHandlerKeepsReason(t *testing.T) {
	testutil.SetupTestDB(t)
	r := newTestRouter()
	seedPendingDare(t, "pending-two")

	w := doJSON(t, r, http.MethodPut, "/admin/dare/pending-two/reject/", RejectRequest{Reason: "too risky"})
	require.Equal(t, http.StatusOK, w.Code)

	var dare models.Dare
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &dare))
	assert.Equal(t, models.StatusRejected, dare.Status)
	assert.Equal(t, "too risky", dare.RejectionReason)
}

func TestFeatureAndUnfeature(t *testing.T) {
	testutil.SetupTestDB(t)
	r := newTestRouter()
	seedPendingDare(t, "spotlight")

	w := doJSON(t, r, http.MethodPut, "/admin/dare/spotlight/feature/", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var dare models.Dare
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &dare))
	assert.True(t, dare.IsFeatured)
	assert.True(t, dare.IsApproved)

	w = doJSON(t, r, http.MethodPut, "/admin/dare/spotlight/unfeature/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &dare))
	assert.False(t, dare.IsFeatured)
	assert.True(t, dare.IsApproved)
}

func TestModerateUnknownDare(t *testing.T) {
	testutil.SetupTestDB(t)
	r := newTestRouter()

	w := doJSON(t, r, http.MethodPut, "/admin/dare/missing/approve/", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBulkActionApprove(t *testing.T) {
	testutil.SetupTestDB(t)
	r := newTestRouter()
	seedPendingDare(t, "bulk-one")
	seedPendingDare(t, "bulk-two")
	seedPendingDare(t, "untouched")

	w := doJSON(t, r, http.MethodPost, "/admin/dares/bulk/", BulkActionRequest{
		Action: ActionApprove,
		Slugs:  []string{"bulk-one", "bulk-two", "no-such-slug"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var reply struct {
		Processed int `json:"processed"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reply))
	assert.Equal(t, 2, reply.Processed)

	var approved int64
	database.DB.Model(&models.Dare{}).Where("is_approved = ?", true).Count(&approved)
	assert.EqualValues(t, 2, approved)
}

func TestBulkActionDelete(t *testing.T) {
	testutil.SetupTestDB(t)
	r := newTestRouter()
	seedPendingDare(t, "doomed")

	w := doJSON(t, r, http.MethodPost, "/admin/dares/bulk/", BulkActionRequest{
		Action: ActionDelete,
		Slugs:  []string{"doomed"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	database.DB.Model(&models.Dare{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestBulkActionRejectsUnknownAction(t *testing.T) {
	testutil.SetupTestDB(t)
	r := newTestRouter()

	w := doJSON(t, r, http.MethodPost, "/admin/dares/bulk/", BulkActionRequest{
		Action: "archive",
		Slugs:  []string{"whatever"},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestVerifyCompletionHandler(t *testing.T) {
	testutil.SetupTestDB(t)
	r := newTestRouter()
	dare := seedPendingDare(t, "with-completion")

	completion := models.DareCompletion{
		DareID: dare.ID, CompleterName: "A", CompleterEmail: "a@example.com",
		CompletionProof: "p",
	}
	require.NoError(t, database.DB.Create(&completion).Error)

	w := doJSON(t, r, http.MethodPut, "/admin/completion/1/verify/", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var reloaded models.DareCompletion
	require.NoError(t, database.DB.First(&reloaded, completion.ID).Error)
	assert.True(t, reloaded.IsVerified)
}

func TestListPendingDaresOldestFirst(t *testing.T) {
	testutil.SetupTestDB(t)
	r := newTestRouter()
	seedPendingDare(t, "first")
	seedPendingDare(t, "second")

	w := doJSON(t, r, http.MethodGet, "/admin/dares/pending/", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var dares []models.Dare
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &dares))
	require.Len(t, dares, 2)
	assert.Equal(t, "first", dares[0].Slug)
}
