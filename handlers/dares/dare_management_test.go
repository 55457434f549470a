package dares

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ajitashwath/dare-exchange/utils/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/dare/new/", CreateDare)
	r.PUT("/dare/:slug/edit/", UpdateDare)
	r.DELETE("/dare/:slug/delete/", DeleteDare)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, method, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func validForm() map[string]any {
	return map[string]any{
		"title":         "Sing a Song in Public",
		"name":          "Ritika Sharma",
		"email":         "ritika@example.com",
		"phone_number":  "+919876543210",
		"college":       "IIT Delhi",
		"category_id":   1,
		"difficulty_id": 1,
		"dare_text":     "Sing your favorite song in the middle of the canteen",
	}
}

func TestCreateDareHandler(t *testing.T) {
	testutil.SetupTestDB(t)
	r := newTestRouter()

	w := postJSON(t, r, http.MethodPost, "/dare/new/", validForm())
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var reply struct {
		Dare struct {
			Slug   string `json:"slug"`
			Status string `json:"status"`
		} `json:"dare"`
		Message  string `json:"message"`
		Redirect string `json:"redirect"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reply))

	assert.Equal(t, "sing-a-song-in-public", reply.Dare.Slug)
	assert.Equal(t, "pending", reply.Dare.Status)
	assert.Equal(t, "/dares/", reply.Redirect)
	assert.Contains(t, reply.Message, "under review")
}

func TestCreateDareHandlerFieldErrors(t *testing.T) {
	testutil.SetupTestDB(t)
	r := newTestRouter()

	form := validForm()
	form["phone_number"] = "123"
	w := postJSON(t, r, http.MethodPost, "/dare/new/", form)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var reply struct {
		Errors map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reply))
	assert.Contains(t, reply.Errors, "phone_number")
}

func TestCreateDareHandlerMalformedBody(t *testing.T) {
	testutil.SetupTestDB(t)
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/dare/new/", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "error")
}

func TestUpdateDareHandlerResetsStatus(t *testing.T) {
	testutil.SetupTestDB(t)
	r := newTestRouter()

	w := postJSON(t, r, http.MethodPost, "/dare/new/", validForm())
	require.Equal(t, http.StatusCreated, w.Code)

	form := validForm()
	form["dare_text"] = "Sing two songs back to back"
	w = postJSON(t, r, http.MethodPut, "/dare/sing-a-song-in-public/edit/", form)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var reply struct {
		Slug   string `json:"slug"`
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reply))
	assert.Equal(t, "sing-a-song-in-public", reply.Slug)
	assert.Equal(t, "pending", reply.Status)
}

func TestUpdateDareHandlerNotFound(t *testing.T) {
	testutil.SetupTestDB(t)
	r := newTestRouter()

	w := postJSON(t, r, http.MethodPut, "/dare/no-such-dare/edit/", validForm())
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteDareHandler(t *testing.T) {
	testutil.SetupTestDB(t)
	r := newTestRouter()

	w := postJSON(t, r, http.MethodPost, "/dare/new/", validForm())
	require.Equal(t, http.StatusCreated, w.Code)

	req := httptest.NewRequest(http.MethodDelete, "/dare/sing-a-song-in-public/delete/", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)

	req = httptest.NewRequest(http.MethodDelete, "/dare/sing-a-song-in-public/delete/", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
