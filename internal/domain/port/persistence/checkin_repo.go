package persistence

import (
	"context"

	"github.com/ecotrail/ecopoints/internal/domain/entity"
)

// CheckinRepository persists check-in audit rows. Rows are append-only.
type CheckinRepository interface {
	// Create saves a new check-in audit row
	//
	// Possible errors:
	// - ErrConstraintViolation: if the user or place reference is invalid
	// - ErrDatabaseConnection: if the database is unreachable
	Create(ctx context.Context, checkin *entity.Checkin) error

	// CountByUser returns the number of check-ins recorded for a user.
	CountByUser(ctx context.Context, userID uint64) (int64, error)
}
