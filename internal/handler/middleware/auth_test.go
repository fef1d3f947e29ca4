//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"testing"

	"recipe-scheduler/internal/handler/middleware"
	"recipe-scheduler/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type stubValidator struct {
	userID uuid.UUID
	token  string
}

func (v stubValidator) ValidateToken(token string) (uuid.UUID, error) {
	if token != v.token {
		return uuid.Nil, errors.New("signature is invalid")
	}
	return v.userID, nil
}

func TestRequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	userID := uuid.New()

	router := gin.New()
	auth := middleware.NewAuthMiddleware(stubValidator{userID: userID, token: "good"})
	router.GET("/me", auth.RequireAuth(), func(c *gin.Context) {
		id, ok := middleware.GetUserID(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": id.String()})
	})

	t.Run("success: valid bearer token", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/me", nil, "good")

		var body map[string]string
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.Equal(t, userID.String(), body["user_id"])
	})

	t.Run("error: missing token", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/me", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Access token required")
	})

	t.Run("error: invalid token", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/me", nil, "forged")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Invalid or expired token")
	})
}
