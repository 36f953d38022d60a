package redemption

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/ecotrail/ecopoints/internal/domain/entity"
	errs "github.com/ecotrail/ecopoints/internal/domain/error"
	coremocks "github.com/ecotrail/ecopoints/mocks/port/core"
	persistencemocks "github.com/ecotrail/ecopoints/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedTime = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func testReward() *entity.Reward {
	return &entity.Reward{
		ID:         "reward-1",
		Name:       "Reusable Cup Discount",
		Brand:      "BrewWell",
		CostPoints: 40,
		ImageURL:   "https://cdn.example/cup.png",
	}
}

func TestRedeem(t *testing.T) {
	ctx := context.Background()
	voucherPattern := regexp.MustCompile(`^BREW-[A-Z0-9]{4}-[A-Z0-9]{4}$`)

	t.Run("Successful redemption", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockRewardRepo := persistencemocks.NewMockRewardRepository(t)
		mockRedemptionRepo := persistencemocks.NewMockRedemptionRepository(t)
		mockUserRepo := persistencemocks.NewMockUserRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockTime.EXPECT().Now().Return(fixedTime).Maybe()
		mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()

		snapshot := &entity.User{ID: 7, Username: "alice"}
		snapshot.RestorePoints(100)
		fresh := &entity.User{ID: 7, Username: "alice"}
		fresh.RestorePoints(100)

		mockRewardRepo.EXPECT().GetByID(mock.Anything, "reward-1").Return(testReward(), nil).Once()
		mockUow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		mockUow.EXPECT().GetUserRepository(mock.Anything).Return(mockUserRepo).Once()
		mockUserRepo.EXPECT().GetByIDForUpdate(mock.Anything, uint64(7)).Return(fresh, nil).Once()
		mockUow.EXPECT().GetRedemptionRepository(mock.Anything).Return(mockRedemptionRepo).Once()
		mockRedemptionRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(r *entity.Redemption) bool {
			return r.UserID == 7 && r.RewardID == "reward-1" && r.PointsSpent == 40 &&
				voucherPattern.MatchString(r.VoucherCode)
		})).Return(nil).Once()
		mockUserRepo.EXPECT().Update(mock.Anything, fresh).Return(nil).Once()
		mockUow.EXPECT().Commit(mock.Anything).Return(nil).Once()

		service := NewService(mockUow, mockRewardRepo, mockRedemptionRepo, mockTime, mockLogger)

		result, err := service.Redeem(ctx, snapshot, "reward-1")

		require.NoError(t, err)
		assert.Equal(t, "Reusable Cup Discount", result.Reward.Name)
		assert.Regexp(t, voucherPattern, result.VoucherCode)
		assert.Equal(t, 60, result.PointsRemaining)
		assert.Equal(t, []string{"Green Starter"}, result.Badges)
	})

	t.Run("Unknown reward", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockRewardRepo := persistencemocks.NewMockRewardRepository(t)
		mockRedemptionRepo := persistencemocks.NewMockRedemptionRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockRewardRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, errs.ErrRewardNotFound).Once()

		service := NewService(mockUow, mockRewardRepo, mockRedemptionRepo, mockTime, mockLogger)

		result, err := service.Redeem(ctx, &entity.User{ID: 7}, "missing")

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrRewardNotFound)
	})

	t.Run("Invalid catalog cost", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockRewardRepo := persistencemocks.NewMockRewardRepository(t)
		mockRedemptionRepo := persistencemocks.NewMockRedemptionRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockLogger.EXPECT().Error(mock.Anything, mock.Anything).Once()

		broken := testReward()
		broken.CostPoints = 0
		mockRewardRepo.EXPECT().GetByID(mock.Anything, "reward-1").Return(broken, nil).Once()

		service := NewService(mockUow, mockRewardRepo, mockRedemptionRepo, mockTime, mockLogger)

		result, err := service.Redeem(ctx, &entity.User{ID: 7}, "reward-1")

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrInvalidRewardCost)
	})

	t.Run("Insufficient points rejected before any transaction", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockRewardRepo := persistencemocks.NewMockRewardRepository(t)
		mockRedemptionRepo := persistencemocks.NewMockRedemptionRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		snapshot := &entity.User{ID: 7}
		snapshot.RestorePoints(25)

		mockRewardRepo.EXPECT().GetByID(mock.Anything, "reward-1").Return(testReward(), nil).Once()

		service := NewService(mockUow, mockRewardRepo, mockRedemptionRepo, mockTime, mockLogger)

		result, err := service.Redeem(ctx, snapshot, "reward-1")

		assert.Nil(t, result)
		assert.True(t, errs.IsInsufficientPointsError(err))
		assert.Equal(t, "Not enough points. Need 40, you have 25.", err.Error())
	})

	t.Run("Stale snapshot caught on the locked row", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockRewardRepo := persistencemocks.NewMockRewardRepository(t)
		mockRedemptionRepo := persistencemocks.NewMockRedemptionRepository(t)
		mockUserRepo := persistencemocks.NewMockUserRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		// Snapshot says 100 points but a concurrent redemption spent them.
		snapshot := &entity.User{ID: 7}
		snapshot.RestorePoints(100)
		fresh := &entity.User{ID: 7}
		fresh.RestorePoints(30)

		mockRewardRepo.EXPECT().GetByID(mock.Anything, "reward-1").Return(testReward(), nil).Once()
		mockUow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		mockUow.EXPECT().GetUserRepository(mock.Anything).Return(mockUserRepo).Once()
		mockUserRepo.EXPECT().GetByIDForUpdate(mock.Anything, uint64(7)).Return(fresh, nil).Once()
		mockUow.EXPECT().Rollback(mock.Anything).Return(nil).Once()

		service := NewService(mockUow, mockRewardRepo, mockRedemptionRepo, mockTime, mockLogger)

		result, err := service.Redeem(ctx, snapshot, "reward-1")

		assert.Nil(t, result)
		assert.True(t, errs.IsInsufficientPointsError(err))
		// No audit row was written: GetRedemptionRepository was never reached.
	})

	t.Run("Audit insert failure rolls back", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockRewardRepo := persistencemocks.NewMockRewardRepository(t)
		mockRedemptionRepo := persistencemocks.NewMockRedemptionRepository(t)
		mockUserRepo := persistencemocks.NewMockUserRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockTime.EXPECT().Now().Return(fixedTime).Maybe()

		snapshot := &entity.User{ID: 7}
		snapshot.RestorePoints(100)
		fresh := &entity.User{ID: 7}
		fresh.RestorePoints(100)

		mockRewardRepo.EXPECT().GetByID(mock.Anything, "reward-1").Return(testReward(), nil).Once()
		mockUow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		mockUow.EXPECT().GetUserRepository(mock.Anything).Return(mockUserRepo).Once()
		mockUserRepo.EXPECT().GetByIDForUpdate(mock.Anything, uint64(7)).Return(fresh, nil).Once()
		mockUow.EXPECT().GetRedemptionRepository(mock.Anything).Return(mockRedemptionRepo).Once()
		mockRedemptionRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(errs.ErrConstraintViolation).Once()
		mockUow.EXPECT().Rollback(mock.Anything).Return(nil).Once()

		service := NewService(mockUow, mockRewardRepo, mockRedemptionRepo, mockTime, mockLogger)

		result, err := service.Redeem(ctx, snapshot, "reward-1")

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrConstraintViolation)
	})
}

func TestRecentForUser(t *testing.T) {
	ctx := context.Background()

	t.Run("Returns the latest redemptions", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockRewardRepo := persistencemocks.NewMockRewardRepository(t)
		mockRedemptionRepo := persistencemocks.NewMockRedemptionRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		history := []entity.Redemption{
			{ID: 2, UserID: 7, VoucherCode: "BREW-AAAA-BBBB", PointsSpent: 40},
			{ID: 1, UserID: 7, VoucherCode: "FRES-CCCC-DDDD", PointsSpent: 80},
		}
		mockRedemptionRepo.EXPECT().RecentByUser(mock.Anything, uint64(7), 6).Return(history, nil).Once()

		service := NewService(mockUow, mockRewardRepo, mockRedemptionRepo, mockTime, mockLogger)

		got, err := service.RecentForUser(ctx, 7, 6)

		require.NoError(t, err)
		assert.Equal(t, history, got)
	})

	t.Run("Repository failure is logged and surfaced", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockRewardRepo := persistencemocks.NewMockRewardRepository(t)
		mockRedemptionRepo := persistencemocks.NewMockRedemptionRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockLogger.EXPECT().Error(mock.Anything, mock.Anything).Once()
		mockRedemptionRepo.EXPECT().RecentByUser(mock.Anything, uint64(7), 6).Return(nil, errs.ErrDatabaseConnection).Once()

		service := NewService(mockUow, mockRewardRepo, mockRedemptionRepo, mockTime, mockLogger)

		got, err := service.RecentForUser(ctx, 7, 6)

		assert.Nil(t, got)
		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	})
}
