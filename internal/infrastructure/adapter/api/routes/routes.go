package routes

import (
	"net/http"

	coreport "github.com/ecotrail/ecopoints/internal/domain/port/core"
	"github.com/ecotrail/ecopoints/internal/domain/port/identity"
	userUseCase "github.com/ecotrail/ecopoints/internal/domain/usecase/user"
	"github.com/ecotrail/ecopoints/internal/infrastructure/adapter/api/dto"
	"github.com/ecotrail/ecopoints/internal/infrastructure/adapter/api/handler"
	"github.com/ecotrail/ecopoints/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	checkinHandler *handler.CheckinHandler,
	redemptionHandler *handler.RedemptionHandler,
	catalogHandler *handler.CatalogHandler,
	profileHandler *handler.ProfileHandler,
	verifier identity.Verifier,
	userService *userUseCase.UserUseCase,
	logger coreport.Logger,
) {
	api := router.Group("/api")
	{
		// GET /api/health
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, dto.HealthResponse{OK: true})
		})

		// Public catalog and leaderboard
		api.GET("/places", catalogHandler.ListPlaces)
		api.GET("/rewards", catalogHandler.ListRewards)
		api.GET("/leaderboard", catalogHandler.Leaderboard)

		// Authenticated routes
		authed := api.Group("")
		authed.Use(middleware.RequireAuth(verifier, userService, logger))
		{
			authed.POST("/checkins", checkinHandler.CheckIn)
			authed.POST("/redeem", redemptionHandler.Redeem)
			authed.GET("/my-redemptions", redemptionHandler.MyRedemptions)
			authed.GET("/profile", profileHandler.Profile)
		}
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	// Apply middlewares in the correct order
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
}
