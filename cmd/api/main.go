package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	catalogUseCase "github.com/ecotrail/ecopoints/internal/domain/usecase/catalog"
	checkinUseCase "github.com/ecotrail/ecopoints/internal/domain/usecase/checkin"
	redemptionUseCase "github.com/ecotrail/ecopoints/internal/domain/usecase/redemption"
	userUseCase "github.com/ecotrail/ecopoints/internal/domain/usecase/user"

	"github.com/ecotrail/ecopoints/internal/domain/entity"
	"github.com/ecotrail/ecopoints/internal/domain/port/identity"
	"github.com/ecotrail/ecopoints/internal/infrastructure/adapter/api/handler"
	"github.com/ecotrail/ecopoints/internal/infrastructure/adapter/api/routes"
	"github.com/ecotrail/ecopoints/internal/infrastructure/adapter/auth"
	"github.com/ecotrail/ecopoints/internal/infrastructure/adapter/database"
	"github.com/ecotrail/ecopoints/internal/infrastructure/adapter/database/migration"
	"github.com/ecotrail/ecopoints/internal/infrastructure/adapter/logger"
	"github.com/ecotrail/ecopoints/internal/infrastructure/adapter/repository"
	timeProvider "github.com/ecotrail/ecopoints/internal/infrastructure/adapter/time"
	"github.com/ecotrail/ecopoints/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create logger
	appLogger := logger.NewZapLogger(cfg.Environment == config.Production)
	defer func() {
		_ = appLogger.Flush()
	}()

	// Setup database configuration
	dbConfig := &database.Config{
		Driver:          cfg.Database.Driver,
		Host:            cfg.Database.Host,
		Port:            database.ParsePort(cfg.Database.Port),
		Username:        cfg.Database.Username,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.Database,
		SSLMode:         cfg.Database.SSLMode,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
		QueryTimeout:    cfg.Database.QueryTimeout,
		LogLevel:        cfg.Logger.Level,
		RetryAttempts:   cfg.Database.RetryAttempts,
		RetryDelay:      cfg.Database.RetryDelay,
	}

	// Initialize time provider
	tp := timeProvider.NewRealTimeProvider()

	// Connect to the database
	conn, err := database.Connect(dbConfig, appLogger, tp)
	if err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer func() {
		_ = conn.Close()
	}()

	// Run migrations
	migrationMgr := migration.NewMigrationManager(conn.DB(), appLogger, tp)
	if err := migrationMgr.MigrateAll(); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Seed the starter catalog when the tables are empty
	if cfg.App.SeedCatalog {
		if err := migration.SeedCatalog(conn.DB(), appLogger); err != nil {
			appLogger.Error("Failed to seed catalog", map[string]any{
				"error": err.Error(),
			})
		}
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(conn.DB(), tp, appLogger)
	placeRepo := repository.NewPlaceRepository(conn.DB(), appLogger)
	rewardRepo := repository.NewRewardRepository(conn.DB(), appLogger)
	redemptionRepo := repository.NewRedemptionRepository(conn.DB(), appLogger)

	// Unit of work (transaction manager)
	uow := database.NewUnitOfWork(conn.DB(), appLogger, tp)

	// Program calendar in the configured timezone
	calendar, err := entity.NewCalendar(cfg.App.Timezone, tp)
	if err != nil {
		appLogger.Error("Invalid timezone configuration", map[string]any{
			"timezone": cfg.App.Timezone,
			"error":    err.Error(),
		})
		os.Exit(1)
	}

	// Initialize use cases
	userUseCaseImpl := userUseCase.NewUserUseCase(userRepo, tp, appLogger)
	catalogUseCaseImpl := catalogUseCase.NewCatalogUseCase(placeRepo, rewardRepo, appLogger)
	checkinUseCaseImpl := checkinUseCase.NewService(
		uow,
		placeRepo,
		calendar,
		tp,
		appLogger,
		cfg.App.CheckinRadiusMeters,
	)
	redemptionUseCaseImpl := redemptionUseCase.NewService(
		uow,
		rewardRepo,
		redemptionRepo,
		tp,
		appLogger,
	)

	// Select the token verifier
	var verifier identity.Verifier
	switch cfg.Auth.Mode {
	case config.AuthModeRemote:
		verifier = auth.NewRemoteVerifier(cfg.Auth.ProviderURL, cfg.Auth.RequestTimeout, tp, appLogger)
	default:
		verifier = auth.NewJWTVerifier(cfg.Auth.JWTSecret, appLogger)
	}

	// Initialize API handlers
	checkinHandler := handler.NewCheckinHandler(checkinUseCaseImpl, appLogger)
	redemptionHandler := handler.NewRedemptionHandler(redemptionUseCaseImpl, cfg.App.RedemptionHistorySize, appLogger)
	catalogHandler := handler.NewCatalogHandler(catalogUseCaseImpl, userUseCaseImpl, cfg.App.LeaderboardSize, appLogger)
	profileHandler := handler.NewProfileHandler(appLogger)

	// Initialize Gin router
	router := gin.New()

	// Setup middlewares
	routes.SetupMiddlewares(router, appLogger)

	// Setup routes
	routes.SetupRoutes(
		router,
		checkinHandler,
		redemptionHandler,
		catalogHandler,
		profileHandler,
		verifier,
		userUseCaseImpl,
		appLogger,
	)

	// Create HTTP server with configurable timeout values
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// Start the server in a goroutine
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"port":     cfg.Server.Port,
			"env":      cfg.Environment,
			"timezone": calendar.Zone(),
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	// Create a deadline to wait for
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	// Shutdown the server
	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}
