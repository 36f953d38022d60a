package handler

import (
	"net/http"

	coreport "github.com/ecotrail/ecopoints/internal/domain/port/core"
	"github.com/ecotrail/ecopoints/internal/infrastructure/adapter/api/dto"
	"github.com/ecotrail/ecopoints/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// ProfileHandler handles the authenticated profile HTTP requests
type ProfileHandler struct {
	logger coreport.Logger
}

// NewProfileHandler creates a new profile handler instance
func NewProfileHandler(logger coreport.Logger) *ProfileHandler {
	return &ProfileHandler{logger: logger}
}

// Profile handles the GET /api/profile endpoint. The auth middleware already
// provisioned the user, so this is a plain projection.
func (h *ProfileHandler) Profile(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Missing Bearer token"})
		return
	}

	c.JSON(http.StatusOK, dto.NewProfileResponse(user))
}
