package persistence

import (
	"context"
)

// UnitOfWork coordinates a database transaction across repositories so the
// audit insert and the balance update of a check-in or redemption land
// together or not at all.
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// GetUserRepository returns a user repository bound to the current transaction
	GetUserRepository(ctx context.Context) UserRepository

	// GetCheckinRepository returns a check-in repository bound to the current transaction
	GetCheckinRepository(ctx context.Context) CheckinRepository

	// GetRedemptionRepository returns a redemption repository bound to the current transaction
	GetRedemptionRepository(ctx context.Context) RedemptionRepository
}
