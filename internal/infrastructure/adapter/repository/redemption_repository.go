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

// RedemptionRepository implements persistence.RedemptionRepository using GORM
type RedemptionRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewRedemptionRepository creates a new RedemptionRepository instance
func NewRedemptionRepository(db *gorm.DB, logger coreport.Logger) *RedemptionRepository {
	return &RedemptionRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func redemptionModelToEntity(redemptionModel *model.Redemption) entity.Redemption {
	redemption := entity.Redemption{
		ID:          redemptionModel.ID,
		UserID:      redemptionModel.UserID,
		RewardID:    redemptionModel.RewardID,
		VoucherCode: redemptionModel.VoucherCode,
		PointsSpent: redemptionModel.PointsSpent,
		CreatedAt:   redemptionModel.CreatedAt,
	}
	if redemptionModel.Reward.ID != "" {
		reward := rewardModelToEntity(&redemptionModel.Reward)
		redemption.Reward = &reward
	}
	return redemption
}

// Create saves a new redemption audit row
func (r *RedemptionRepository) Create(ctx context.Context, redemption *entity.Redemption) error {
	redemptionModel := model.Redemption{
		UserID:      redemption.UserID,
		RewardID:    redemption.RewardID,
		VoucherCode: redemption.VoucherCode,
		PointsSpent: redemption.PointsSpent,
		CreatedAt:   redemption.CreatedAt,
	}

	result := r.db.WithContext(ctx).Create(&redemptionModel)
	if result.Error != nil {
		r.logger.Error("Database error when creating redemption", map[string]any{
			"user_id":   redemption.UserID,
			"reward_id": redemption.RewardID,
			"error":     result.Error.Error(),
		})
		if r.errorClassifier.IsConstraintError(result.Error) {
			return errs.ErrConstraintViolation
		}
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	redemption.ID = redemptionModel.ID
	return nil
}

// RecentByUser returns up to limit redemptions for the user, newest first,
// each with its joined reward row
func (r *RedemptionRepository) RecentByUser(ctx context.Context, userID uint64, limit int) ([]entity.Redemption, error) {
	var redemptionModels []model.Redemption
	result := r.db.WithContext(ctx).
		Preload("Reward").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&redemptionModels)
	if result.Error != nil {
		r.logger.Error("Database error when listing redemptions", map[string]any{
			"user_id": userID,
			"error":   result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	redemptions := make([]entity.Redemption, 0, len(redemptionModels))
	for i := range redemptionModels {
		redemptions = append(redemptions, redemptionModelToEntity(&redemptionModels[i]))
	}
	return redemptions, nil
}
