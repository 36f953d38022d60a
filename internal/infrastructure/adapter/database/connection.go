package database

import (
	"context"
	"fmt"
	"time"

	coreport "github.com/ecotrail/ecopoints/internal/domain/port/core"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connection holds the database handle and its configuration
type Connection struct {
	db     *gorm.DB
	config *Config
	logger coreport.Logger
}

// Connect establishes a database connection, retrying transient failures
// up to the configured number of attempts.
func Connect(config *Config, appLogger coreport.Logger, timeProvider coreport.TimeProvider) (*Connection, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid database configuration: %w", err)
	}

	gormConfig := &gorm.Config{
		Logger: NewDatabaseLogger(appLogger, config.LogLevel),
	}

	var db *gorm.DB
	var err error

	for attempt := 0; attempt < config.RetryAttempts; attempt++ {
		if attempt > 0 {
			appLogger.Warn("Retrying database connection", map[string]any{
				"attempt": attempt + 1,
				"of":      config.RetryAttempts,
			})
			time.Sleep(config.RetryDelay)
		}

		db, err = gorm.Open(postgres.Open(config.DSN()), gormConfig)
		if err == nil {
			break
		}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database connection: %w", err)
	}

	sqlDB.SetMaxOpenConns(config.MaxOpenConns)
	sqlDB.SetMaxIdleConns(config.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(config.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(config.ConnMaxIdleTime)

	ctx, cancel := timeProvider.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	appLogger.Info("Connected to database", map[string]any{
		"host": config.Host,
		"port": config.Port,
		"name": config.Database,
	})

	return &Connection{
		db:     db,
		config: config,
		logger: appLogger,
	}, nil
}

// DB returns the underlying GORM handle
func (c *Connection) DB() *gorm.DB {
	return c.db
}

// Close closes the database connection
func (c *Connection) Close() error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}
	return sqlDB.Close()
}
