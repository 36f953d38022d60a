package entity

import "time"

// Checkin is an append-only audit record of a successful check-in.
// One row exists per award; the sum of PointsGained per user, minus
// redemption costs, must always equal the user's cached points total.
// CheckinDate holds the local calendar day (YYYY-MM-DD) the award was
// granted for; storage keeps (UserID, CheckinDate) unique so at most one
// award per user per day survives even when writers race.
type Checkin struct {
	ID           uint64
	UserID       uint64
	PlaceID      string
	PointsGained int
	CheckinDate  string
	CreatedAt    time.Time
}
