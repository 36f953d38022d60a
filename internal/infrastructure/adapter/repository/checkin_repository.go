package repository

import (
	"context"
	"fmt"

	"github.com/ecotrail/ecopoints/internal/domain/entity"
	errs "github.com/ecotrail/ecopoints/internal/domain/error"
	coreport "github.com/ecotrail/ecopoints/internal/domain/port/core"
	"github.com/ecotrail/ecopoints/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// CheckinRepository implements persistence.CheckinRepository using GORM
type CheckinRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewCheckinRepository creates a new CheckinRepository instance
func NewCheckinRepository(db *gorm.DB, logger coreport.Logger) *CheckinRepository {
	return &CheckinRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// Create saves a new check-in audit row
func (r *CheckinRepository) Create(ctx context.Context, checkin *entity.Checkin) error {
	checkinModel := model.Checkin{
		UserID:       checkin.UserID,
		PlaceID:      checkin.PlaceID,
		PointsGained: checkin.PointsGained,
		CheckinDate:  checkin.CheckinDate,
		CreatedAt:    checkin.CreatedAt,
	}

	result := r.db.WithContext(ctx).Create(&checkinModel)
	if result.Error != nil {
		// A duplicate (user_id, checkin_date) row means another writer
		// already awarded today's check-in.
		if r.errorClassifier.IsDuplicateKeyError(result.Error) {
			return errs.ErrAlreadyCheckedIn
		}
		r.logger.Error("Database error when creating check-in", map[string]any{
			"user_id":  checkin.UserID,
			"place_id": checkin.PlaceID,
			"error":    result.Error.Error(),
		})
		if r.errorClassifier.IsConstraintError(result.Error) {
			return errs.ErrConstraintViolation
		}
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	checkin.ID = checkinModel.ID
	return nil
}

// CountByUser returns the number of check-ins recorded for a user
func (r *CheckinRepository) CountByUser(ctx context.Context, userID uint64) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.Checkin{}).
		Where("user_id = ?", userID).
		Count(&count)
	if result.Error != nil {
		return 0, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	return count, nil
}
