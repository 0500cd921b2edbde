package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestID_Generated(t *testing.T) {
	router := setupRouter()
	w := doRequest(router, http.MethodGet, "/api/activity-levels", "")

	id := w.Header().Get(requestIDHeader)
	assert.True(t, strings.HasPrefix(id, "req_"), "got %q", id)
	assert.Len(t, id, len("req_")+22)
}

func TestRequestID_Propagated(t *testing.T) {
	router := setupRouter()
	req := httptest.NewRequest(http.MethodGet, "/api/catalog", nil)
	req.Header.Set(requestIDHeader, "req_from_client")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "req_from_client", w.Header().Get(requestIDHeader))
}

// TestRequestLogger verifies one structured line per request carrying the
// request ID and final status.
func TestRequestLogger(t *testing.T) {
	var logs bytes.Buffer
	gin.SetMode(gin.TestMode)
	router := gin.New()
	newHandler(zerolog.New(&logs)).registerRoutes(router)

	req := httptest.NewRequest(http.MethodGet, "/api/meal-plan?calories=0", nil)
	req.Header.Set(requestIDHeader, "req_log_test")
	router.ServeHTTP(httptest.NewRecorder(), req)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(logs.Bytes()), &entry))
	assert.Equal(t, "request completed", entry["message"])
	assert.Equal(t, "req_log_test", entry["request_id"])
	assert.Equal(t, "/api/meal-plan", entry["path"])
	assert.EqualValues(t, http.StatusBadRequest, entry["status"])
}

// TestRecoverer verifies a panicking handler becomes a JSON 500 instead of
// killing the connection.
func TestRecoverer(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/boom", requestIDMiddleware(), recoverer(zerolog.Nop()), func(c *gin.Context) {
		panic("kaboom")
	})

	w := doRequest(router, http.MethodGet, "/boom", "")
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "internal server error", decodeError(t, w))
}
