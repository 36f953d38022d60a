package entity

import "time"

// Redemption is an append-only audit record of a voucher redemption.
type Redemption struct {
	ID          uint64
	UserID      uint64
	RewardID    string
	VoucherCode string
	PointsSpent int
	CreatedAt   time.Time

	// Reward carries the joined catalog row for display, when loaded.
	Reward *Reward
}
