package middleware

import (
	"net/http"
	"strings"

	"github.com/ecotrail/ecopoints/internal/domain/entity"
	coreport "github.com/ecotrail/ecopoints/internal/domain/port/core"
	"github.com/ecotrail/ecopoints/internal/domain/port/identity"
	userUseCase "github.com/ecotrail/ecopoints/internal/domain/usecase/user"
	"github.com/ecotrail/ecopoints/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// contextUserKey is the gin context key carrying the provisioned user.
const contextUserKey = "currentUser"

// RequireAuth validates the bearer token and provisions the application user
// for the authenticated identity. Handlers behind it can rely on CurrentUser.
func RequireAuth(verifier identity.Verifier, users *userUseCase.UserUseCase, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "Missing Bearer token",
			})
			return
		}

		ident, err := verifier.Verify(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "Invalid or expired token",
			})
			return
		}

		user, err := users.Provision(c.Request.Context(), ident)
		if err != nil {
			logger.Error("Failed to provision user for identity", map[string]any{
				"subject": ident.Subject,
				"error":   err.Error(),
			})
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		c.Set(contextUserKey, user)
		c.Next()
	}
}

// CurrentUser returns the provisioned user placed on the context by RequireAuth
func CurrentUser(c *gin.Context) (*entity.User, bool) {
	value, exists := c.Get(contextUserKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*entity.User)
	return user, ok
}
