package persistence

import (
	"context"

	"github.com/ecotrail/ecopoints/internal/domain/entity"
)

// RewardRepository defines read access to the seeded reward catalog.
type RewardRepository interface {
	// GetByID retrieves a reward by id
	//
	// Possible errors:
	// - ErrRewardNotFound: if no reward with the id exists
	// - ErrDatabaseConnection: if the database is unreachable
	GetByID(ctx context.Context, id string) (*entity.Reward, error)

	// List returns all rewards ordered by cost ascending, name ascending.
	List(ctx context.Context) ([]entity.Reward, error)
}
