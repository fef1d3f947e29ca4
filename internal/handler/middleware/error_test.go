//go:build unit

package middleware_test

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"recipe-scheduler/internal/handler/httperr"
	"recipe-scheduler/internal/handler/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newErrorRouter(h gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.CustomRecovery(slog.New(slog.NewTextHandler(io.Discard, nil))))
	r.Use(middleware.ErrorHandler())
	r.GET("/x", h)
	return r
}

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name       string
		handler    gin.HandlerFunc
		wantStatus int
		wantBody   string
	}{
		{
			name: "public error already written is left alone",
			handler: func(c *gin.Context) {
				httperr.AbortWithError(c, http.StatusNotFound, errors.New("no rows"), "Schedule no longer exists", nil)
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error":{"message":"Schedule no longer exists"}}`,
		},
		{
			name: "private error becomes a generic 500",
			handler: func(c *gin.Context) {
				_ = c.Error(errors.New("pool exhausted"))
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":{"message":"Something went wrong, please try again"}}`,
		},
		{
			name:       "status without body is flushed",
			handler:    func(c *gin.Context) { c.Status(http.StatusNoContent) },
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "panic is recovered",
			handler:    func(c *gin.Context) { panic("boom") },
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":{"message":"Something went wrong, please try again"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req, err := http.NewRequest(http.MethodGet, "/x", nil)
			require.NoError(t, err)

			newErrorRouter(tt.handler).ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, w.Body.String())
			} else {
				assert.Empty(t, w.Body.String())
			}
			assert.NotContains(t, w.Body.String(), "pool exhausted")
		})
	}
}
