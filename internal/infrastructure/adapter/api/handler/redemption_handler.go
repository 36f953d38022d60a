package handler

import (
	"errors"
	"net/http"

	domainerr "github.com/ecotrail/ecopoints/internal/domain/error"
	coreport "github.com/ecotrail/ecopoints/internal/domain/port/core"
	redemptionUseCase "github.com/ecotrail/ecopoints/internal/domain/usecase/redemption"
	"github.com/ecotrail/ecopoints/internal/infrastructure/adapter/api/dto"
	"github.com/ecotrail/ecopoints/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// RedemptionHandler handles reward redemption HTTP requests
type RedemptionHandler struct {
	redemptionService *redemptionUseCase.Service
	historySize       int
	logger            coreport.Logger
}

// NewRedemptionHandler creates a new redemption handler instance
func NewRedemptionHandler(
	redemptionService *redemptionUseCase.Service,
	historySize int,
	logger coreport.Logger,
) *RedemptionHandler {
	return &RedemptionHandler{
		redemptionService: redemptionService,
		historySize:       historySize,
		logger:            logger,
	}
}

// Redeem handles the POST /api/redeem endpoint
func (h *RedemptionHandler) Redeem(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Missing Bearer token"})
		return
	}

	var req dto.RedeemRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.RewardID == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "rewardId required"})
		return
	}

	result, err := h.redemptionService.Redeem(c.Request.Context(), user, req.RewardID)
	if err != nil {
		h.respondRedeemError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.RedeemResponse{
		OK:              true,
		Reward:          dto.NewRewardResponse(result.Reward),
		VoucherCode:     result.VoucherCode,
		PointsRemaining: result.PointsRemaining,
		Badges:          result.Badges,
	})
}

// MyRedemptions handles the GET /api/my-redemptions endpoint
func (h *RedemptionHandler) MyRedemptions(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Missing Bearer token"})
		return
	}

	redemptions, err := h.redemptionService.RecentForUser(c.Request.Context(), user.ID, h.historySize)
	if err != nil {
		h.logger.Error("Failed to load redemption history", map[string]any{
			"userId": user.ID,
			"error":  err.Error(),
		})
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to load redemptions"})
		return
	}

	c.JSON(http.StatusOK, dto.NewRedemptionResponses(redemptions))
}

// respondRedeemError maps domain errors from the redemption flow to HTTP
// responses. Unknown rewards surface as the generic failure so that the
// endpoint does not reveal which ids exist.
func (h *RedemptionHandler) respondRedeemError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domainerr.ErrInvalidRewardCost):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid reward cost_points"})
	case domainerr.IsInsufficientPointsError(err):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, domainerr.ErrMissingInput):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "rewardId required"})
	default:
		h.logger.Error("Redeem failed", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Redeem failed"})
	}
}
