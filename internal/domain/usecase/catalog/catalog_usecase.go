package catalog

import (
	"context"

	"github.com/ecotrail/ecopoints/internal/domain/entity"
	coreport "github.com/ecotrail/ecopoints/internal/domain/port/core"
	"github.com/ecotrail/ecopoints/internal/domain/port/persistence"
)

// CatalogUseCase serves the read-only place and reward catalogs.
type CatalogUseCase struct {
	placeRepo  persistence.PlaceRepository
	rewardRepo persistence.RewardRepository
	logger     coreport.Logger
}

// NewCatalogUseCase creates a new catalog use case instance
func NewCatalogUseCase(
	placeRepo persistence.PlaceRepository,
	rewardRepo persistence.RewardRepository,
	logger coreport.Logger,
) *CatalogUseCase {
	return &CatalogUseCase{
		placeRepo:  placeRepo,
		rewardRepo: rewardRepo,
		logger:     logger,
	}
}

// ListPlaces returns places matching the filter, ordered by name.
func (c *CatalogUseCase) ListPlaces(ctx context.Context, filter entity.PlaceFilter) ([]entity.Place, error) {
	places, err := c.placeRepo.List(ctx, filter)
	if err != nil {
		c.logger.Error("Failed to list places", map[string]any{
			"search":   filter.Search,
			"category": filter.Category,
			"error":    err.Error(),
		})
		return nil, err
	}
	return places, nil
}

// ListRewards returns the reward catalog ordered by cost, then name.
func (c *CatalogUseCase) ListRewards(ctx context.Context) ([]entity.Reward, error) {
	rewards, err := c.rewardRepo.List(ctx)
	if err != nil {
		c.logger.Error("Failed to list rewards", map[string]any{
			"error": err.Error(),
		})
		return nil, err
	}
	return rewards, nil
}
