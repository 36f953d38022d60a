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
)

// RewardRepository implements persistence.RewardRepository using GORM
type RewardRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewRewardRepository creates a new RewardRepository instance
func NewRewardRepository(db *gorm.DB, logger coreport.Logger) *RewardRepository {
	return &RewardRepository{
		db:     db,
		logger: logger,
	}
}

func rewardModelToEntity(rewardModel *model.Reward) entity.Reward {
	return entity.Reward{
		ID:         rewardModel.ID,
		Name:       rewardModel.Name,
		Brand:      rewardModel.Brand,
		CostPoints: rewardModel.CostPoints,
		ImageURL:   rewardModel.ImageURL,
	}
}

// GetByID retrieves a reward by id
func (r *RewardRepository) GetByID(ctx context.Context, id string) (*entity.Reward, error) {
	var rewardModel model.Reward
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&rewardModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			r.logger.Warn("Reward not found", map[string]any{
				"reward_id": id,
			})
			return nil, errs.ErrRewardNotFound
		}
		r.logger.Error("Database error when getting reward", map[string]any{
			"reward_id": id,
			"error":     result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	reward := rewardModelToEntity(&rewardModel)
	return &reward, nil
}

// List returns all rewards ordered by cost ascending, name ascending
func (r *RewardRepository) List(ctx context.Context) ([]entity.Reward, error) {
	var rewardModels []model.Reward
	result := r.db.WithContext(ctx).
		Order("cost_points ASC").
		Order("name ASC").
		Find(&rewardModels)
	if result.Error != nil {
		r.logger.Error("Database error when listing rewards", map[string]any{
			"error": result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	rewards := make([]entity.Reward, 0, len(rewardModels))
	for i := range rewardModels {
		rewards = append(rewards, rewardModelToEntity(&rewardModels[i]))
	}
	return rewards, nil
}
