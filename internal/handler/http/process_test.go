package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdorokhov/devops-demo/internal/config"
	"github.com/avdorokhov/devops-demo/models"
)

func TestProcessData_WrapsPayload(t *testing.T) {
	h := newTestHandler(t, config.Settings{"version": "1.5.0", "environment": "testing"})

	body := `{"user_id": 12345, "action": "login"}`
	req := httptest.NewRequest(http.MethodPost, "/api/process/", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.processData(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got models.ProcessedRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))

	assert.Equal(t, models.StatusProcessed, got.Status)
	assert.Equal(t, "1.5.0", got.Version)
	assert.Equal(t, "2026-08-26T15:04:05.123456", got.ProcessedAt)

	// the payload is echoed back verbatim
	assert.Equal(t, "login", got.OriginalData["action"])
	assert.Equal(t, float64(12345), got.OriginalData["user_id"])
}

func TestProcessData_InvalidJSON(t *testing.T) {
	h := newTestHandler(t, config.Settings{})

	req := httptest.NewRequest(http.MethodPost, "/api/process/", strings.NewReader(`{ not json`))
	rec := httptest.NewRecorder()

	h.processData(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProcessData_ViaRouter(t *testing.T) {
	h := newTestHandler(t, config.Settings{"version": "1.5.0", "environment": "testing"})
	router := h.Init()

	req := httptest.NewRequest(http.MethodPost, "/api/process/", strings.NewReader(`{"sample": true}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got models.ProcessedRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, true, got.OriginalData["sample"])
}

func TestProcessData_GetNotAllowed(t *testing.T) {
	h := newTestHandler(t, config.Settings{})
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/api/process/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
