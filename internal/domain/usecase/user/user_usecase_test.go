package user

import (
	"context"
	"testing"
	"time"

	"github.com/ecotrail/ecopoints/internal/domain/entity"
	errs "github.com/ecotrail/ecopoints/internal/domain/error"
	"github.com/ecotrail/ecopoints/internal/domain/port/identity"
	coremocks "github.com/ecotrail/ecopoints/mocks/port/core"
	persistencemocks "github.com/ecotrail/ecopoints/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProvision(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	ident := &identity.Identity{Subject: "auth-123", Email: "alice@example.com"}

	t.Run("Existing user is returned as-is", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		existing := &entity.User{ID: 7, AuthUserID: "auth-123", Username: "alice"}
		mockRepo.EXPECT().GetByAuthID(mock.Anything, "auth-123").Return(existing, nil).Once()

		userUseCase := NewUserUseCase(mockRepo, mockTime, mockLogger)

		user, err := userUseCase.Provision(ctx, ident)

		require.NoError(t, err)
		assert.Same(t, existing, user)
	})

	t.Run("First contact creates the user", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockTime.EXPECT().Now().Return(fixedTime).Maybe()
		mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Once()

		mockRepo.EXPECT().GetByAuthID(mock.Anything, "auth-123").Return(nil, errs.ErrUserNotFound).Once()
		mockRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(user *entity.User) bool {
			return user.AuthUserID == "auth-123" && user.Username == "alice" && user.Points() == 0
		})).Return(nil).Once()

		userUseCase := NewUserUseCase(mockRepo, mockTime, mockLogger)

		user, err := userUseCase.Provision(ctx, ident)

		require.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
		assert.Equal(t, "alice@example.com", user.Email)
		assert.Zero(t, user.Streak)
	})

	t.Run("Losing the provisioning race re-fetches the winner's row", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockTime.EXPECT().Now().Return(fixedTime).Maybe()

		winner := &entity.User{ID: 9, AuthUserID: "auth-123", Username: "alice"}
		mockRepo.EXPECT().GetByAuthID(mock.Anything, "auth-123").Return(nil, errs.ErrUserNotFound).Once()
		mockRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(errs.ErrDuplicateUser).Once()
		mockRepo.EXPECT().GetByAuthID(mock.Anything, "auth-123").Return(winner, nil).Once()

		userUseCase := NewUserUseCase(mockRepo, mockTime, mockLogger)

		user, err := userUseCase.Provision(ctx, ident)

		require.NoError(t, err)
		assert.Same(t, winner, user)
	})

	t.Run("Missing identity subject", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		userUseCase := NewUserUseCase(mockRepo, mockTime, mockLogger)

		user, err := userUseCase.Provision(ctx, &identity.Identity{})
		assert.Nil(t, user)
		assert.ErrorIs(t, err, errs.ErrUnauthenticated)

		user, err = userUseCase.Provision(ctx, nil)
		assert.Nil(t, user)
		assert.ErrorIs(t, err, errs.ErrUnauthenticated)
	})

	t.Run("Lookup failure is surfaced", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockLogger.EXPECT().Error(mock.Anything, mock.Anything).Once()
		mockRepo.EXPECT().GetByAuthID(mock.Anything, "auth-123").Return(nil, errs.ErrDatabaseConnection).Once()

		userUseCase := NewUserUseCase(mockRepo, mockTime, mockLogger)

		user, err := userUseCase.Provision(ctx, ident)

		assert.Nil(t, user)
		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	})
}

func TestLeaderboard(t *testing.T) {
	ctx := context.Background()

	t.Run("Returns top users", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		entries := []entity.LeaderboardEntry{
			{Username: "alice", Points: 320},
			{Username: "bob", Points: 150},
		}
		mockRepo.EXPECT().TopByPoints(mock.Anything, 10).Return(entries, nil).Once()

		userUseCase := NewUserUseCase(mockRepo, mockTime, mockLogger)

		got, err := userUseCase.Leaderboard(ctx, 10)

		require.NoError(t, err)
		assert.Equal(t, entries, got)
	})

	t.Run("Repository failure is logged and surfaced", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockLogger.EXPECT().Error(mock.Anything, mock.Anything).Once()
		mockRepo.EXPECT().TopByPoints(mock.Anything, 10).Return(nil, errs.ErrDatabaseConnection).Once()

		userUseCase := NewUserUseCase(mockRepo, mockTime, mockLogger)

		got, err := userUseCase.Leaderboard(ctx, 10)

		assert.Nil(t, got)
		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	})
}
