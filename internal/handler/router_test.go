//go:build unit

package handler_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"recipe-scheduler/internal/handler"
	"recipe-scheduler/internal/handler/api"
	"recipe-scheduler/internal/handler/middleware"
	"recipe-scheduler/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rejectAll struct{}

func (rejectAll) ValidateToken(string) (uuid.UUID, error) {
	return uuid.Nil, assert.AnError
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	handler.NewRouter(engine, config.NewTestConfig(),
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		handler.Handlers{Schedule: &api.ScheduleHandler{}, Device: &api.DeviceHandler{}},
		middleware.NewAuthMiddleware(rejectAll{}),
	)
	return engine
}

func TestNewRouter_RegistersRoutes(t *testing.T) {
	engine := newTestRouter()

	got := map[string]bool{}
	for _, r := range engine.Routes() {
		got[r.Method+" "+r.Path] = true
	}

	for _, want := range []string{
		"GET /health",
		"POST /api/schedules",
		"GET /api/schedules",
		"GET /api/schedules/preview",
		"GET /api/schedules/:id",
		"PATCH /api/schedules/:id",
		"POST /api/schedules/:id/complete",
		"DELETE /api/schedules/:id",
		"POST /api/devices",
		"DELETE /api/devices/:token",
	} {
		assert.True(t, got[want], "route %s not registered", want)
	}
}

func TestNewRouter_APIRequiresAuth(t *testing.T) {
	engine := newTestRouter()

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/schedules"},
		{http.MethodPost, "/api/schedules/" + uuid.NewString() + "/complete"},
		{http.MethodDelete, "/api/devices/abc"},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			req, err := http.NewRequest(tt.method, tt.path, nil)
			require.NoError(t, err)

			engine.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}

	t.Run("health stays public", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, err := http.NewRequest(http.MethodGet, "/health", nil)
		require.NoError(t, err)

		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
