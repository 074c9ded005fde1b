package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func setupRouter(ping PingFunc) *gin.Engine {
	r := gin.New()
	h := NewHealth(ping)
	r.GET("/healthz", h)
	r.HEAD("/healthz", h)
	return r
}

func okPing(ctx context.Context) error { return nil }

func TestHealth_GET(t *testing.T) {
	t.Parallel()

	router := setupRouter(okPing)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "ok", response["status"])
	assert.Equal(t, "ok", response["database"])
	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
}

func TestHealth_NoPinger(t *testing.T) {
	t.Parallel()

	router := setupRouter(nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestHealth_StoreDown(t *testing.T) {
	t.Parallel()

	router := setupRouter(func(ctx context.Context) error { return errors.New("sql: database is closed") })
	w := httptest.NewRecorder()

	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.JSONEq(t, `{"status":"unavailable","database":"unreachable"}`, w.Body.String())
}

func TestHealth_PingHasDeadline(t *testing.T) {
	t.Parallel()

	var hasDeadline bool
	router := setupRouter(func(ctx context.Context) error {
		_, hasDeadline = ctx.Deadline()
		return nil
	})

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.True(t, hasDeadline)
}

func TestHealth_ResponseStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		method         string
		ping           PingFunc
		expectedStatus int
		expectEmpty    bool
	}{
		{http.MethodGet, okPing, http.StatusOK, false},
		{http.MethodHead, okPing, http.StatusOK, true},
		{http.MethodHead, func(ctx context.Context) error { return errors.New("down") }, http.StatusServiceUnavailable, true},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			t.Parallel()

			router := setupRouter(tt.ping)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(tt.method, "/healthz", nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
			if tt.expectEmpty {
				assert.Zero(t, w.Body.Len())
			}
		})
	}
}
