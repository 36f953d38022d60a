package handler

import (
	"net/http"
	"strings"

	"github.com/ecotrail/ecopoints/internal/domain/entity"
	coreport "github.com/ecotrail/ecopoints/internal/domain/port/core"
	catalogUseCase "github.com/ecotrail/ecopoints/internal/domain/usecase/catalog"
	userUseCase "github.com/ecotrail/ecopoints/internal/domain/usecase/user"
	"github.com/ecotrail/ecopoints/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// CatalogHandler handles the public catalog and leaderboard HTTP requests
type CatalogHandler struct {
	catalogService  *catalogUseCase.CatalogUseCase
	userService     *userUseCase.UserUseCase
	leaderboardSize int
	logger          coreport.Logger
}

// NewCatalogHandler creates a new catalog handler instance
func NewCatalogHandler(
	catalogService *catalogUseCase.CatalogUseCase,
	userService *userUseCase.UserUseCase,
	leaderboardSize int,
	logger coreport.Logger,
) *CatalogHandler {
	return &CatalogHandler{
		catalogService:  catalogService,
		userService:     userService,
		leaderboardSize: leaderboardSize,
		logger:          logger,
	}
}

// ListPlaces handles the GET /api/places endpoint
func (h *CatalogHandler) ListPlaces(c *gin.Context) {
	filter := entity.PlaceFilter{
		Search:   strings.ToLower(strings.TrimSpace(c.Query("search"))),
		Category: strings.TrimSpace(c.Query("category")),
	}

	places, err := h.catalogService.ListPlaces(c.Request.Context(), filter)
	if err != nil {
		h.logger.Error("Failed to load places", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to load places"})
		return
	}

	c.JSON(http.StatusOK, dto.NewPlaceResponses(places))
}

// ListRewards handles the GET /api/rewards endpoint
func (h *CatalogHandler) ListRewards(c *gin.Context) {
	rewards, err := h.catalogService.ListRewards(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to load rewards", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to load rewards"})
		return
	}

	c.JSON(http.StatusOK, dto.NewRewardResponses(rewards))
}

// Leaderboard handles the GET /api/leaderboard endpoint
func (h *CatalogHandler) Leaderboard(c *gin.Context) {
	entries, err := h.userService.Leaderboard(c.Request.Context(), h.leaderboardSize)
	if err != nil {
		h.logger.Error("Failed to load leaderboard", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to load leaderboard"})
		return
	}

	c.JSON(http.StatusOK, dto.NewLeaderboardResponses(entries))
}
