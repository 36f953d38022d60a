package entity

import (
	"time"

	errs "github.com/ecotrail/ecopoints/internal/domain/error"
	coreport "github.com/ecotrail/ecopoints/internal/domain/port/core"
)

// User represents an application user provisioned from an external identity.
// The points total is private: business moves go through ApplyCheckin and
// ApplyRedemption only, so the cached balance stays consistent with the
// audit trail. RestorePoints exists solely to rehydrate the total when a
// row is loaded from storage.
type User struct {
	ID              uint64    // Application-level identifier
	AuthUserID      string    // External identity provider subject id
	Username        string
	Email           string
	points          int       // Cached ledger projection (private)
	Streak          int       // Consecutive check-in days
	LastCheckinDate string    // YYYY-MM-DD in the reference zone, "" when absent
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// fallbackUsername is used when the identity carries no email.
const fallbackUsername = "player"

// NewUser creates a fresh user for an external identity with zero points
// and no streak. The username is derived from the email's local part.
func NewUser(authUserID, email string, timeProvider coreport.TimeProvider) *User {
	now := timeProvider.Now()
	return &User{
		AuthUserID: authUserID,
		Username:   UsernameFromEmail(email),
		Email:      email,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// UsernameFromEmail derives a default username from an email address.
func UsernameFromEmail(email string) string {
	if email == "" {
		return fallbackUsername
	}
	for i := 0; i < len(email); i++ {
		if email[i] == '@' {
			if i == 0 {
				return fallbackUsername
			}
			return email[:i]
		}
	}
	return email
}

// Points returns the current points total.
func (u *User) Points() int {
	return u.points
}

// RestorePoints rehydrates the points total from a stored row. Not for
// business moves; use ApplyCheckin or ApplyRedemption for those.
func (u *User) RestorePoints(points int) {
	u.points = points
}

// CanRedeem checks if the user has enough points for a redemption.
func (u *User) CanRedeem(cost int) bool {
	return u.points >= cost
}

// ApplyCheckin awards place points for a check-in on the given calendar day,
// advancing or resetting the streak per the transition policy.
// Returns ErrAlreadyCheckedIn when the user already checked in today.
func (u *User) ApplyCheckin(award int, today, yesterday string, timeProvider coreport.TimeProvider) error {
	if u.LastCheckinDate == today {
		return errs.ErrAlreadyCheckedIn
	}

	u.Streak = NextStreak(u.LastCheckinDate, u.Streak, yesterday)
	u.points += award
	u.LastCheckinDate = today
	u.UpdatedAt = timeProvider.Now()
	return nil
}

// ApplyRedemption deducts the reward cost from the points total.
// Returns a detailed error when the balance does not cover the cost.
func (u *User) ApplyRedemption(cost int, timeProvider coreport.TimeProvider) error {
	if cost <= 0 {
		return errs.ErrInvalidRewardCost
	}
	if u.points < cost {
		return errs.NewInsufficientPointsError(u.ID, cost, u.points)
	}

	u.points -= cost
	u.UpdatedAt = timeProvider.Now()
	return nil
}

// Badges returns the badge set earned at the current points total.
func (u *User) Badges() []string {
	return BadgesFor(u.points)
}

// LeaderboardEntry is a public projection of a user for the leaderboard.
type LeaderboardEntry struct {
	Username string
	Points   int
}
