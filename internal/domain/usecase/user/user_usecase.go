package user

import (
	"context"
	"errors"

	"github.com/ecotrail/ecopoints/internal/domain/entity"
	errs "github.com/ecotrail/ecopoints/internal/domain/error"
	coreport "github.com/ecotrail/ecopoints/internal/domain/port/core"
	"github.com/ecotrail/ecopoints/internal/domain/port/identity"
	"github.com/ecotrail/ecopoints/internal/domain/port/persistence"
)

// UserUseCase handles user provisioning and leaderboard reads.
type UserUseCase struct {
	userRepo     persistence.UserRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewUserUseCase creates a new user use case instance
func NewUserUseCase(
	userRepo persistence.UserRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *UserUseCase {
	return &UserUseCase{
		userRepo:     userRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Provision returns the application user for an external identity, creating
// it on first contact. Creation races between concurrent first requests are
// resolved by the unique constraint on the auth subject column: a duplicate
// violation means another request won, so the row is re-fetched.
func (u *UserUseCase) Provision(ctx context.Context, ident *identity.Identity) (*entity.User, error) {
	if ident == nil || ident.Subject == "" {
		return nil, errs.ErrUnauthenticated
	}

	existing, err := u.userRepo.GetByAuthID(ctx, ident.Subject)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, errs.ErrUserNotFound) {
		u.logger.Error("Failed to look up user by auth subject", map[string]any{
			"auth_user_id": ident.Subject,
			"error":        err.Error(),
		})
		return nil, err
	}

	created := entity.NewUser(ident.Subject, ident.Email, u.timeProvider)
	if err := u.userRepo.Create(ctx, created); err != nil {
		if errors.Is(err, errs.ErrDuplicateUser) {
			// Lost the provisioning race; the winner's row is authoritative.
			return u.userRepo.GetByAuthID(ctx, ident.Subject)
		}
		u.logger.Error("Failed to provision user", map[string]any{
			"auth_user_id": ident.Subject,
			"error":        err.Error(),
		})
		return nil, err
	}

	u.logger.Info("User provisioned", map[string]any{
		"user_id":      created.ID,
		"auth_user_id": ident.Subject,
		"username":     created.Username,
	})

	return created, nil
}

// Leaderboard returns the top users by points with username tie-break.
func (u *UserUseCase) Leaderboard(ctx context.Context, limit int) ([]entity.LeaderboardEntry, error) {
	entries, err := u.userRepo.TopByPoints(ctx, limit)
	if err != nil {
		u.logger.Error("Failed to load leaderboard", map[string]any{
			"limit": limit,
			"error": err.Error(),
		})
		return nil, err
	}
	return entries, nil
}
