package handler

import (
	"errors"
	"net/http"

	domainerr "github.com/ecotrail/ecopoints/internal/domain/error"
	coreport "github.com/ecotrail/ecopoints/internal/domain/port/core"
	checkinUseCase "github.com/ecotrail/ecopoints/internal/domain/usecase/checkin"
	"github.com/ecotrail/ecopoints/internal/infrastructure/adapter/api/dto"
	"github.com/ecotrail/ecopoints/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// CheckinHandler handles check-in HTTP requests
type CheckinHandler struct {
	checkinService *checkinUseCase.Service
	logger         coreport.Logger
}

// NewCheckinHandler creates a new check-in handler instance
func NewCheckinHandler(checkinService *checkinUseCase.Service, logger coreport.Logger) *CheckinHandler {
	return &CheckinHandler{
		checkinService: checkinService,
		logger:         logger,
	}
}

// CheckIn handles the POST /api/checkins endpoint
func (h *CheckinHandler) CheckIn(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Missing Bearer token"})
		return
	}

	var req dto.CheckinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid check-in request format", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "placeId required"})
		return
	}
	if req.PlaceID == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "placeId required"})
		return
	}
	if req.UserLat == nil || req.UserLng == nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "userLat and userLng required"})
		return
	}

	result, err := h.checkinService.CheckIn(c.Request.Context(), user, checkinUseCase.Request{
		PlaceID: req.PlaceID,
		UserLat: *req.UserLat,
		UserLng: *req.UserLng,
	})
	if err != nil {
		h.respondCheckinError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CheckinResponse{
		OK:             true,
		Place:          result.PlaceName,
		Gained:         result.Gained,
		DistanceMeters: result.DistanceMeters,
		Username:       result.Username,
		Points:         result.Points,
		Streak:         result.Streak,
		Badges:         result.Badges,
		Today:          result.Today,
		TZ:             result.Zone,
	})
}

// respondCheckinError maps domain errors from the check-in flow to HTTP
// responses. Unknown places surface as the generic failure so that the
// endpoint does not reveal which ids exist.
func (h *CheckinHandler) respondCheckinError(c *gin.Context, err error) {
	switch {
	case domainerr.IsOutOfRangeError(err):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})
	case domainerr.IsAlreadyCheckedInError(err):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: "Already checked in today."})
	case errors.Is(err, domainerr.ErrMissingInput):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "placeId required"})
	default:
		h.logger.Error("Check-in failed", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Check-in failed"})
	}
}
