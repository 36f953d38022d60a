package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/ecotrail/ecopoints/internal/domain/entity"
	errs "github.com/ecotrail/ecopoints/internal/domain/error"
	coreport "github.com/ecotrail/ecopoints/internal/domain/port/core"
	"github.com/ecotrail/ecopoints/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserRepository implements persistence.UserRepository using GORM
type UserRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *UserRepository {
	return &UserRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// userModelToEntity converts a user model to an entity
func userModelToEntity(userModel *model.User) *entity.User {
	user := &entity.User{
		ID:              userModel.ID,
		AuthUserID:      userModel.AuthUserID,
		Username:        userModel.Username,
		Email:           userModel.Email,
		Streak:          userModel.Streak,
		LastCheckinDate: userModel.LastCheckinDate,
		CreatedAt:       userModel.CreatedAt,
		UpdatedAt:       userModel.UpdatedAt,
	}
	user.RestorePoints(userModel.Points)
	return user
}

// handleDatabaseError standardizes database error handling
func (r *UserRepository) handleDatabaseError(operation string, err error) error {
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"error": err.Error(),
	})

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrUserNotFound
	}

	if r.errorClassifier.IsDuplicateKeyError(err) {
		return errs.ErrDuplicateUser
	}

	if r.errorClassifier.IsConstraintError(err) {
		return errs.ErrConstraintViolation
	}

	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// GetByID retrieves a user by application id
func (r *UserRepository) GetByID(ctx context.Context, id uint64) (*entity.User, error) {
	var userModel model.User
	result := r.db.WithContext(ctx).First(&userModel, id)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting user", result.Error)
	}
	return userModelToEntity(&userModel), nil
}

// GetByIDForUpdate retrieves a user while holding an exclusive row lock.
// Must run inside a transaction; outside one the lock is released at once.
func (r *UserRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*entity.User, error) {
	var userModel model.User
	result := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&userModel, id)
	if result.Error != nil {
		return nil, r.handleDatabaseError("locking user", result.Error)
	}
	return userModelToEntity(&userModel), nil
}

// GetByAuthID retrieves a user by the external identity subject id
func (r *UserRepository) GetByAuthID(ctx context.Context, authUserID string) (*entity.User, error) {
	var userModel model.User
	result := r.db.WithContext(ctx).
		Where("auth_user_id = ?", authUserID).
		First(&userModel)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting user by auth subject", result.Error)
	}
	return userModelToEntity(&userModel), nil
}

// Create persists a new user row
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	userModel := model.User{
		AuthUserID:      user.AuthUserID,
		Username:        user.Username,
		Email:           user.Email,
		Points:          user.Points(),
		Streak:          user.Streak,
		LastCheckinDate: user.LastCheckinDate,
		CreatedAt:       user.CreatedAt,
		UpdatedAt:       user.UpdatedAt,
	}

	result := r.db.WithContext(ctx).Create(&userModel)
	if result.Error != nil {
		return r.handleDatabaseError("creating user", result.Error)
	}

	// Propagate the generated id back to the entity
	user.ID = userModel.ID

	r.logger.Info("User created", map[string]any{
		"user_id":      user.ID,
		"auth_user_id": user.AuthUserID,
		"username":     user.Username,
	})
	return nil
}

// Update writes the user's points, streak and last check-in date
func (r *UserRepository) Update(ctx context.Context, user *entity.User) error {
	result := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", user.ID).
		Updates(map[string]interface{}{
			"points":            user.Points(),
			"streak":            user.Streak,
			"last_checkin_date": user.LastCheckinDate,
			"updated_at":        user.UpdatedAt,
		})

	if result.Error != nil {
		return r.handleDatabaseError("updating user", result.Error)
	}

	if result.RowsAffected == 0 {
		r.logger.Warn("User not found during update", map[string]any{
			"user_id": user.ID,
		})
		return errs.ErrUserNotFound
	}

	return nil
}

// TopByPoints returns the leaderboard rows
func (r *UserRepository) TopByPoints(ctx context.Context, limit int) ([]entity.LeaderboardEntry, error) {
	var entries []entity.LeaderboardEntry
	result := r.db.WithContext(ctx).Model(&model.User{}).
		Select("username", "points").
		Order("points DESC").
		Order("username ASC").
		Limit(limit).
		Scan(&entries)

	if result.Error != nil {
		return nil, r.handleDatabaseError("loading leaderboard", result.Error)
	}

	return entries, nil
}
