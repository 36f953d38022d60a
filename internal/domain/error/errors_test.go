package error

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutOfRangeError(t *testing.T) {
	err := NewOutOfRangeError(412, 200)

	t.Run("Client-facing message", func(t *testing.T) {
		assert.Equal(t, "Too far. You are ~412m away (need within 200m).", err.Error())
	})

	t.Run("Matches the sentinel", func(t *testing.T) {
		assert.ErrorIs(t, err, ErrOutOfRange)
		assert.True(t, IsOutOfRangeError(err))
	})

	t.Run("Survives wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("check-in: %w", err)
		assert.True(t, IsOutOfRangeError(wrapped))
	})

	t.Run("Carries structured fields", func(t *testing.T) {
		var oor *OutOfRangeError
		require.True(t, errors.As(err, &oor))
		assert.Equal(t, 412, oor.DistanceMeters)
		assert.Equal(t, 200, oor.RadiusMeters)
	})
}

func TestInsufficientPointsError(t *testing.T) {
	err := NewInsufficientPointsError(7, 80, 35)

	t.Run("Client-facing message", func(t *testing.T) {
		assert.Equal(t, "Not enough points. Need 80, you have 35.", err.Error())
	})

	t.Run("Matches the sentinel", func(t *testing.T) {
		assert.ErrorIs(t, err, ErrInsufficientPoints)
		assert.True(t, IsInsufficientPointsError(err))
	})

	t.Run("Carries structured fields", func(t *testing.T) {
		var ipe *InsufficientPointsError
		require.True(t, errors.As(err, &ipe))
		assert.Equal(t, uint64(7), ipe.UserID)
		assert.Equal(t, 80, ipe.Required)
		assert.Equal(t, 35, ipe.Available)
	})
}

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		code int
	}{
		{"MissingInput", ErrMissingInput, CodeMissingInput},
		{"Unauthenticated", ErrUnauthenticated, CodeUnauthenticated},
		{"OutOfRange", NewOutOfRangeError(300, 200), CodeOutOfRange},
		{"AlreadyCheckedIn", ErrAlreadyCheckedIn, CodeAlreadyCheckedIn},
		{"InsufficientPoints", NewInsufficientPointsError(1, 50, 10), CodeInsufficientPoints},
		{"InvalidRewardCost", ErrInvalidRewardCost, CodeInvalidRewardCost},
		{"UserNotFound", ErrUserNotFound, CodeUserNotFound},
		{"PlaceNotFound", ErrPlaceNotFound, CodePlaceNotFound},
		{"RewardNotFound", ErrRewardNotFound, CodeRewardNotFound},
		{"Unknown defaults to internal", errors.New("boom"), CodeInternalServer},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.code, ErrorCode(tc.err))
		})
	}
}

func TestIsNotFoundError(t *testing.T) {
	assert.True(t, IsNotFoundError(ErrUserNotFound))
	assert.True(t, IsNotFoundError(ErrPlaceNotFound))
	assert.True(t, IsNotFoundError(ErrRewardNotFound))
	assert.True(t, IsNotFoundError(fmt.Errorf("lookup: %w", ErrRewardNotFound)))
	assert.False(t, IsNotFoundError(ErrAlreadyCheckedIn))
}
