package persistence

import (
	"context"

	"github.com/ecotrail/ecopoints/internal/domain/entity"
)

// UserRepository defines persistence operations for application users.
type UserRepository interface {
	// GetByID retrieves a user by application id
	//
	// Possible errors:
	// - ErrUserNotFound: if no user with the id exists
	// - ErrDatabaseConnection: if the database is unreachable
	GetByID(ctx context.Context, id uint64) (*entity.User, error)

	// GetByIDForUpdate retrieves a user by id while holding an exclusive
	// row lock for the remainder of the surrounding transaction.
	// Must be called inside a UnitOfWork transaction; this is what keeps
	// the audit insert and the balance update atomic under concurrency.
	GetByIDForUpdate(ctx context.Context, id uint64) (*entity.User, error)

	// GetByAuthID retrieves a user by the external identity subject id
	//
	// Possible errors:
	// - ErrUserNotFound: if no user is provisioned for the subject
	// - ErrDatabaseConnection: if the database is unreachable
	GetByAuthID(ctx context.Context, authUserID string) (*entity.User, error)

	// Create persists a new user row
	//
	// Possible errors:
	// - ErrDuplicateUser: if a row for the same auth subject already
	//   exists (concurrent first-request provisioning)
	// - ErrDatabaseConnection: if the database is unreachable
	Create(ctx context.Context, user *entity.User) error

	// Update writes the user's points, streak and last check-in date
	//
	// Possible errors:
	// - ErrUserNotFound: if the user row disappeared
	// - ErrDatabaseConnection: if the database is unreachable
	Update(ctx context.Context, user *entity.User) error

	// TopByPoints returns the leaderboard: up to limit users ordered by
	// points descending with username ascending as the tie-break.
	TopByPoints(ctx context.Context, limit int) ([]entity.LeaderboardEntry, error)
}
