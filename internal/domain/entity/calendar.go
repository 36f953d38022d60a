package entity

import (
	"fmt"
	"time"

	coreport "github.com/ecotrail/ecopoints/internal/domain/port/core"
)

// calendarDateLayout is the wire format for check-in dates (YYYY-MM-DD).
const calendarDateLayout = "2006-01-02"

// Calendar resolves calendar dates in the application's fixed reference
// time zone. All streak and daily-limit decisions go through it so that a
// check-in day means the same thing regardless of server locale.
type Calendar struct {
	loc          *time.Location
	timeProvider coreport.TimeProvider
}

// NewCalendar creates a calendar for the given IANA zone name.
func NewCalendar(zone string, timeProvider coreport.TimeProvider) (*Calendar, error) {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, fmt.Errorf("invalid time zone %q: %w", zone, err)
	}
	return &Calendar{loc: loc, timeProvider: timeProvider}, nil
}

// Zone returns the configured zone name.
func (c *Calendar) Zone() string {
	return c.loc.String()
}

// Today returns the current calendar date in the reference zone.
func (c *Calendar) Today() string {
	return c.timeProvider.Now().In(c.loc).Format(calendarDateLayout)
}

// Yesterday returns the previous calendar date in the reference zone.
func (c *Calendar) Yesterday() string {
	return c.timeProvider.Now().In(c.loc).AddDate(0, 0, -1).Format(calendarDateLayout)
}

// IsYesterday reports whether dateStr equals yesterday's date.
func (c *Calendar) IsYesterday(dateStr string) bool {
	if dateStr == "" {
		return false
	}
	return dateStr == c.Yesterday()
}

// NextStreak applies the streak transition policy:
// no prior date starts a streak at 1, a prior date of exactly yesterday
// extends the streak by 1, anything else resets it to 1.
func NextStreak(lastCheckinDate string, streak int, yesterday string) int {
	if lastCheckinDate == "" {
		return 1
	}
	if lastCheckinDate == yesterday {
		return streak + 1
	}
	return 1
}
