package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdorokhov/devops-demo/internal/config"
)

func TestWithTraceID_GeneratesID(t *testing.T) {
	h := newTestHandler(t, config.Settings{})

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/status/", nil)
	rec := httptest.NewRecorder()

	h.withTraceID(next).ServeHTTP(rec, req)

	got := rec.Header().Get(traceIDHeader)
	require.NotEmpty(t, got)

	_, err := uuid.Parse(got)
	assert.NoError(t, err)
}

func TestWithTraceID_ReusesCallerID(t *testing.T) {
	const want = "caller-supplied-trace-id"

	h := newTestHandler(t, config.Settings{})

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/status/", nil)
	req.Header.Set(traceIDHeader, want)
	rec := httptest.NewRecorder()

	h.withTraceID(next).ServeHTTP(rec, req)

	assert.Equal(t, want, rec.Header().Get(traceIDHeader))
}
