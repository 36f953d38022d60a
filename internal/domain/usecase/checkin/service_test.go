package checkin

import (
	"context"
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

// 04:00 UTC is noon in Singapore, safely inside the calendar day.
var fixedTime = time.Date(2025, 3, 10, 4, 0, 0, 0, time.UTC)

const (
	today     = "2025-03-10"
	yesterday = "2025-03-09"
)

func newTestCalendar(t *testing.T, mockTime *coremocks.MockTimeProvider) *entity.Calendar {
	calendar, err := entity.NewCalendar("Asia/Singapore", mockTime)
	require.NoError(t, err)
	return calendar
}

func testPlace() *entity.Place {
	return &entity.Place{
		ID:     "place-1",
		Name:   "Botanic Gardens",
		Points: 20,
		Lat:    1.3,
		Lng:    103.8,
	}
}

func TestCheckIn(t *testing.T) {
	ctx := context.Background()

	t.Run("Successful first check-in", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockPlaceRepo := persistencemocks.NewMockPlaceRepository(t)
		mockUserRepo := persistencemocks.NewMockUserRepository(t)
		mockCheckinRepo := persistencemocks.NewMockCheckinRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockTime.EXPECT().Now().Return(fixedTime).Maybe()
		mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()

		snapshot := &entity.User{ID: 7, Username: "alice"}
		fresh := &entity.User{ID: 7, Username: "alice"}
		fresh.RestorePoints(40)

		mockPlaceRepo.EXPECT().GetByID(mock.Anything, "place-1").Return(testPlace(), nil).Once()
		mockUow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		mockUow.EXPECT().GetUserRepository(mock.Anything).Return(mockUserRepo).Once()
		mockUserRepo.EXPECT().GetByIDForUpdate(mock.Anything, uint64(7)).Return(fresh, nil).Once()
		mockUow.EXPECT().GetCheckinRepository(mock.Anything).Return(mockCheckinRepo).Once()
		mockCheckinRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(c *entity.Checkin) bool {
			return c.UserID == 7 && c.PlaceID == "place-1" && c.PointsGained == 20 && c.CheckinDate == today
		})).Return(nil).Once()
		mockUserRepo.EXPECT().Update(mock.Anything, fresh).Return(nil).Once()
		mockUow.EXPECT().Commit(mock.Anything).Return(nil).Once()

		service := NewService(mockUow, mockPlaceRepo, newTestCalendar(t, mockTime), mockTime, mockLogger, 200)

		// roughly 100m north of the place
		result, err := service.CheckIn(ctx, snapshot, Request{PlaceID: "place-1", UserLat: 1.3009, UserLng: 103.8})

		require.NoError(t, err)
		assert.Equal(t, "Botanic Gardens", result.PlaceName)
		assert.Equal(t, 20, result.Gained)
		assert.Equal(t, 100, result.DistanceMeters)
		assert.Equal(t, "alice", result.Username)
		assert.Equal(t, 60, result.Points)
		assert.Equal(t, 1, result.Streak)
		assert.Equal(t, []string{"Green Starter"}, result.Badges)
		assert.Equal(t, today, result.Today)
		assert.Equal(t, "Asia/Singapore", result.Zone)
		assert.Equal(t, today, fresh.LastCheckinDate)
	})

	t.Run("Consecutive day extends the streak", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockPlaceRepo := persistencemocks.NewMockPlaceRepository(t)
		mockUserRepo := persistencemocks.NewMockUserRepository(t)
		mockCheckinRepo := persistencemocks.NewMockCheckinRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockTime.EXPECT().Now().Return(fixedTime).Maybe()
		mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()

		snapshot := &entity.User{ID: 7, Username: "alice", Streak: 3, LastCheckinDate: yesterday}
		fresh := &entity.User{ID: 7, Username: "alice", Streak: 3, LastCheckinDate: yesterday}

		mockPlaceRepo.EXPECT().GetByID(mock.Anything, "place-1").Return(testPlace(), nil).Once()
		mockUow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		mockUow.EXPECT().GetUserRepository(mock.Anything).Return(mockUserRepo).Once()
		mockUserRepo.EXPECT().GetByIDForUpdate(mock.Anything, uint64(7)).Return(fresh, nil).Once()
		mockUow.EXPECT().GetCheckinRepository(mock.Anything).Return(mockCheckinRepo).Once()
		mockCheckinRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()
		mockUserRepo.EXPECT().Update(mock.Anything, fresh).Return(nil).Once()
		mockUow.EXPECT().Commit(mock.Anything).Return(nil).Once()

		service := NewService(mockUow, mockPlaceRepo, newTestCalendar(t, mockTime), mockTime, mockLogger, 200)

		result, err := service.CheckIn(ctx, snapshot, Request{PlaceID: "place-1", UserLat: 1.3, UserLng: 103.8})

		require.NoError(t, err)
		assert.Equal(t, 4, result.Streak)
	})

	t.Run("Out of range is rejected before any transaction", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockPlaceRepo := persistencemocks.NewMockPlaceRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Once()

		snapshot := &entity.User{ID: 7}

		mockPlaceRepo.EXPECT().GetByID(mock.Anything, "place-1").Return(testPlace(), nil).Once()

		service := NewService(mockUow, mockPlaceRepo, newTestCalendar(t, mockTime), mockTime, mockLogger, 200)

		// roughly 400m north of the place
		result, err := service.CheckIn(ctx, snapshot, Request{PlaceID: "place-1", UserLat: 1.3036, UserLng: 103.8})

		assert.Nil(t, result)
		assert.True(t, errs.IsOutOfRangeError(err))
		assert.Equal(t, "Too far. You are ~400m away (need within 200m).", err.Error())
	})

	t.Run("Unknown place", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockPlaceRepo := persistencemocks.NewMockPlaceRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockPlaceRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, errs.ErrPlaceNotFound).Once()

		service := NewService(mockUow, mockPlaceRepo, newTestCalendar(t, mockTime), mockTime, mockLogger, 200)

		result, err := service.CheckIn(ctx, &entity.User{ID: 7}, Request{PlaceID: "missing", UserLat: 1.3, UserLng: 103.8})

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrPlaceNotFound)
	})

	t.Run("Same-day duplicate rejected on the snapshot", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockPlaceRepo := persistencemocks.NewMockPlaceRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockTime.EXPECT().Now().Return(fixedTime).Maybe()

		snapshot := &entity.User{ID: 7, LastCheckinDate: today}

		mockPlaceRepo.EXPECT().GetByID(mock.Anything, "place-1").Return(testPlace(), nil).Once()

		service := NewService(mockUow, mockPlaceRepo, newTestCalendar(t, mockTime), mockTime, mockLogger, 200)

		result, err := service.CheckIn(ctx, snapshot, Request{PlaceID: "place-1", UserLat: 1.3, UserLng: 103.8})

		assert.Nil(t, result)
		assert.True(t, errs.IsAlreadyCheckedInError(err))
	})

	t.Run("Same-day duplicate rejected on the locked row", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockPlaceRepo := persistencemocks.NewMockPlaceRepository(t)
		mockUserRepo := persistencemocks.NewMockUserRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockTime.EXPECT().Now().Return(fixedTime).Maybe()

		// Snapshot is stale: a concurrent request already checked in today.
		snapshot := &entity.User{ID: 7}
		fresh := &entity.User{ID: 7, Streak: 1, LastCheckinDate: today}

		mockPlaceRepo.EXPECT().GetByID(mock.Anything, "place-1").Return(testPlace(), nil).Once()
		mockUow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		mockUow.EXPECT().GetUserRepository(mock.Anything).Return(mockUserRepo).Once()
		mockUserRepo.EXPECT().GetByIDForUpdate(mock.Anything, uint64(7)).Return(fresh, nil).Once()
		mockUow.EXPECT().Rollback(mock.Anything).Return(nil).Once()

		service := NewService(mockUow, mockPlaceRepo, newTestCalendar(t, mockTime), mockTime, mockLogger, 200)

		result, err := service.CheckIn(ctx, snapshot, Request{PlaceID: "place-1", UserLat: 1.3, UserLng: 103.8})

		assert.Nil(t, result)
		assert.True(t, errs.IsAlreadyCheckedInError(err))
	})

	t.Run("Same-day duplicate rejected by the audit row constraint", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockPlaceRepo := persistencemocks.NewMockPlaceRepository(t)
		mockUserRepo := persistencemocks.NewMockUserRepository(t)
		mockCheckinRepo := persistencemocks.NewMockCheckinRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockTime.EXPECT().Now().Return(fixedTime).Maybe()

		// Both the snapshot and the locked row predate a racing writer's
		// commit; the unique (user, day) index still refuses the second row.
		snapshot := &entity.User{ID: 7}
		fresh := &entity.User{ID: 7}

		mockPlaceRepo.EXPECT().GetByID(mock.Anything, "place-1").Return(testPlace(), nil).Once()
		mockUow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		mockUow.EXPECT().GetUserRepository(mock.Anything).Return(mockUserRepo).Once()
		mockUserRepo.EXPECT().GetByIDForUpdate(mock.Anything, uint64(7)).Return(fresh, nil).Once()
		mockUow.EXPECT().GetCheckinRepository(mock.Anything).Return(mockCheckinRepo).Once()
		mockCheckinRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(errs.ErrAlreadyCheckedIn).Once()
		mockUow.EXPECT().Rollback(mock.Anything).Return(nil).Once()

		service := NewService(mockUow, mockPlaceRepo, newTestCalendar(t, mockTime), mockTime, mockLogger, 200)

		result, err := service.CheckIn(ctx, snapshot, Request{PlaceID: "place-1", UserLat: 1.3, UserLng: 103.8})

		assert.Nil(t, result)
		assert.True(t, errs.IsAlreadyCheckedInError(err))
	})

	t.Run("Commit failure rolls back", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockPlaceRepo := persistencemocks.NewMockPlaceRepository(t)
		mockUserRepo := persistencemocks.NewMockUserRepository(t)
		mockCheckinRepo := persistencemocks.NewMockCheckinRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockTime.EXPECT().Now().Return(fixedTime).Maybe()

		fresh := &entity.User{ID: 7}

		mockPlaceRepo.EXPECT().GetByID(mock.Anything, "place-1").Return(testPlace(), nil).Once()
		mockUow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		mockUow.EXPECT().GetUserRepository(mock.Anything).Return(mockUserRepo).Once()
		mockUserRepo.EXPECT().GetByIDForUpdate(mock.Anything, uint64(7)).Return(fresh, nil).Once()
		mockUow.EXPECT().GetCheckinRepository(mock.Anything).Return(mockCheckinRepo).Once()
		mockCheckinRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()
		mockUserRepo.EXPECT().Update(mock.Anything, fresh).Return(nil).Once()
		mockUow.EXPECT().Commit(mock.Anything).Return(errs.ErrDatabaseConnection).Once()
		mockUow.EXPECT().Rollback(mock.Anything).Return(nil).Once()

		service := NewService(mockUow, mockPlaceRepo, newTestCalendar(t, mockTime), mockTime, mockLogger, 200)

		result, err := service.CheckIn(ctx, &entity.User{ID: 7}, Request{PlaceID: "place-1", UserLat: 1.3, UserLng: 103.8})

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	})
}
