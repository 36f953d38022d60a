package redemption

import (
	"context"

	"github.com/ecotrail/ecopoints/internal/domain/entity"
	errs "github.com/ecotrail/ecopoints/internal/domain/error"
	coreport "github.com/ecotrail/ecopoints/internal/domain/port/core"
	"github.com/ecotrail/ecopoints/internal/domain/port/persistence"
)

// Result represents a successful redemption.
type Result struct {
	Reward          entity.Reward
	VoucherCode     string
	PointsRemaining int
	Badges          []string
}

// Service runs the redemption operation: validate the reward and balance,
// then issue a voucher code and deduct the cost in one database transaction.
type Service struct {
	uow            persistence.UnitOfWork
	rewardRepo     persistence.RewardRepository
	redemptionRepo persistence.RedemptionRepository
	timeProvider   coreport.TimeProvider
	logger         coreport.Logger
}

// NewService creates a new redemption service
func NewService(
	uow persistence.UnitOfWork,
	rewardRepo persistence.RewardRepository,
	redemptionRepo persistence.RedemptionRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		uow:            uow,
		rewardRepo:     rewardRepo,
		redemptionRepo: redemptionRepo,
		timeProvider:   timeProvider,
		logger:         logger,
	}
}

// Redeem exchanges points for a voucher on the given reward.
//
// Possible errors:
// - ErrRewardNotFound: unknown reward id
// - ErrInvalidRewardCost: malformed catalog row
// - InsufficientPointsError: balance below the reward cost
func (s *Service) Redeem(ctx context.Context, user *entity.User, rewardID string) (*Result, error) {
	reward, err := s.rewardRepo.GetByID(ctx, rewardID)
	if err != nil {
		return nil, err
	}

	if !reward.HasValidCost() {
		s.logger.Error("Reward carries invalid cost", map[string]any{
			"reward_id":   reward.ID,
			"cost_points": reward.CostPoints,
		})
		return nil, errs.ErrInvalidRewardCost
	}

	// Fast path on the provisioned snapshot; the locked re-check inside the
	// transaction below remains authoritative.
	if !user.CanRedeem(reward.CostPoints) {
		return nil, errs.NewInsufficientPointsError(user.ID, reward.CostPoints, user.Points())
	}

	voucherCode := entity.NewVoucherCode(reward.Brand)

	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}

	userRepo := s.uow.GetUserRepository(txCtx)

	fresh, err := userRepo.GetByIDForUpdate(txCtx, user.ID)
	if err != nil {
		s.rollback(txCtx)
		return nil, err
	}

	if err := fresh.ApplyRedemption(reward.CostPoints, s.timeProvider); err != nil {
		s.rollback(txCtx)
		return nil, err
	}

	audit := &entity.Redemption{
		UserID:      fresh.ID,
		RewardID:    reward.ID,
		VoucherCode: voucherCode,
		PointsSpent: reward.CostPoints,
		CreatedAt:   s.timeProvider.Now(),
	}
	if err := s.uow.GetRedemptionRepository(txCtx).Create(txCtx, audit); err != nil {
		s.rollback(txCtx)
		return nil, err
	}

	if err := userRepo.Update(txCtx, fresh); err != nil {
		s.rollback(txCtx)
		return nil, err
	}

	if err := s.uow.Commit(txCtx); err != nil {
		s.rollback(txCtx)
		return nil, err
	}

	s.logger.Info("Redemption recorded", map[string]any{
		"user_id":          fresh.ID,
		"reward_id":        reward.ID,
		"points_spent":     reward.CostPoints,
		"points_remaining": fresh.Points(),
	})

	return &Result{
		Reward:          *reward,
		VoucherCode:     voucherCode,
		PointsRemaining: fresh.Points(),
		Badges:          fresh.Badges(),
	}, nil
}

// RecentForUser returns the caller's latest redemptions, newest first, with
// joined reward display fields.
func (s *Service) RecentForUser(ctx context.Context, userID uint64, limit int) ([]entity.Redemption, error) {
	redemptions, err := s.redemptionRepo.RecentByUser(ctx, userID, limit)
	if err != nil {
		s.logger.Error("Failed to load redemptions", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return nil, err
	}
	return redemptions, nil
}

func (s *Service) rollback(ctx context.Context) {
	if err := s.uow.Rollback(ctx); err != nil {
		s.logger.Error("Failed to rollback redemption transaction", map[string]any{
			"error": err.Error(),
		})
	}
}
