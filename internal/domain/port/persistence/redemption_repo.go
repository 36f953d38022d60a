package persistence

import (
	"context"

	"github.com/ecotrail/ecopoints/internal/domain/entity"
)

// RedemptionRepository persists redemption audit rows. Rows are append-only.
type RedemptionRepository interface {
	// Create saves a new redemption audit row
	//
	// Possible errors:
	// - ErrConstraintViolation: if the user or reward reference is invalid
	// - ErrDatabaseConnection: if the database is unreachable
	Create(ctx context.Context, redemption *entity.Redemption) error

	// RecentByUser returns up to limit redemptions for the user, newest
	// first, each with its joined reward display fields.
	RecentByUser(ctx context.Context, userID uint64, limit int) ([]entity.Redemption, error)
}
