package entity

import (
	"testing"
	"time"

	coremocks "github.com/ecotrail/ecopoints/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCalendar(t *testing.T) {
	t.Run("Valid zone", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		calendar, err := NewCalendar("Asia/Singapore", mockTime)
		require.NoError(t, err)
		assert.Equal(t, "Asia/Singapore", calendar.Zone())
	})

	t.Run("Invalid zone", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		calendar, err := NewCalendar("Not/AZone", mockTime)
		assert.Error(t, err)
		assert.Nil(t, calendar)
	})
}

func TestCalendarDates(t *testing.T) {
	newCalendarAt := func(t *testing.T, instant time.Time) *Calendar {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(instant).Maybe()
		calendar, err := NewCalendar("Asia/Singapore", mockTime)
		require.NoError(t, err)
		return calendar
	}

	t.Run("Today and yesterday in the reference zone", func(t *testing.T) {
		calendar := newCalendarAt(t, time.Date(2025, 3, 10, 1, 30, 0, 0, time.UTC))
		assert.Equal(t, "2025-03-10", calendar.Today())
		assert.Equal(t, "2025-03-09", calendar.Yesterday())
	})

	t.Run("Zone offset can roll the date forward", func(t *testing.T) {
		// 17:30 UTC on March 9 is already 01:30 on March 10 in Singapore
		calendar := newCalendarAt(t, time.Date(2025, 3, 9, 17, 30, 0, 0, time.UTC))
		assert.Equal(t, "2025-03-10", calendar.Today())
	})

	t.Run("IsYesterday", func(t *testing.T) {
		calendar := newCalendarAt(t, time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC))
		assert.True(t, calendar.IsYesterday("2025-03-09"))
		assert.False(t, calendar.IsYesterday("2025-03-08"))
		assert.False(t, calendar.IsYesterday(""))
	})
}

func TestNextStreak(t *testing.T) {
	yesterday := "2025-03-09"

	t.Run("First check-in starts a streak", func(t *testing.T) {
		assert.Equal(t, 1, NextStreak("", 0, yesterday))
	})

	t.Run("Consecutive day extends the streak", func(t *testing.T) {
		assert.Equal(t, 4, NextStreak(yesterday, 3, yesterday))
	})

	t.Run("Gap resets the streak", func(t *testing.T) {
		assert.Equal(t, 1, NextStreak("2025-03-05", 7, yesterday))
	})
}
