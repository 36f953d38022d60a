package model

import (
	"time"
)

// Redemption represents the database model for redemption audit rows
type Redemption struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement"`
	UserID      uint64    `gorm:"not null;index"`
	RewardID    string    `gorm:"not null;size:36"`
	VoucherCode string    `gorm:"not null;size:64"`
	PointsSpent int       `gorm:"not null"`
	CreatedAt   time.Time `gorm:"not null"`

	// Define relationships
	User   User   `gorm:"foreignKey:UserID;references:ID"`
	Reward Reward `gorm:"foreignKey:RewardID;references:ID"`
}

// TableName specifies the table name for Redemption
func (Redemption) TableName() string {
	return "redemptions"
}
