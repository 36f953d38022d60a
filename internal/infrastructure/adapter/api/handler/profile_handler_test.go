package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ecotrail/ecopoints/internal/domain/entity"
	coremocks "github.com/ecotrail/ecopoints/mocks/port/core"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestProfileHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("Profile projection", func(t *testing.T) {
		mockLogger := coremocks.NewMockLogger(t)
		profileHandler := NewProfileHandler(mockLogger)

		user := &entity.User{
			ID:              7,
			Username:        "alice",
			Email:           "alice@example.com",
			Streak:          3,
			LastCheckinDate: "2025-03-10",
		}
		user.RestorePoints(160)

		router := gin.New()
		router.GET("/api/profile", func(c *gin.Context) {
			c.Set("currentUser", user)
			profileHandler.Profile(c)
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{
			"username": "alice",
			"email": "alice@example.com",
			"points": 160,
			"streak": 3,
			"badges": ["Green Starter", "Eco Warrior"],
			"lastCheckinDate": "2025-03-10"
		}`, w.Body.String())
	})

	t.Run("No provisioned user on context", func(t *testing.T) {
		mockLogger := coremocks.NewMockLogger(t)
		profileHandler := NewProfileHandler(mockLogger)

		router := gin.New()
		router.GET("/api/profile", profileHandler.Profile)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
