package model

import (
	"time"
)

// Checkin represents the database model for check-in audit rows.
// The unique index on (user_id, checkin_date) is the datastore backstop
// for the one-award-per-user-per-day rule.
type Checkin struct {
	ID           uint64    `gorm:"primaryKey;autoIncrement"`
	UserID       uint64    `gorm:"not null;index;uniqueIndex:idx_checkins_user_date"`
	PlaceID      string    `gorm:"not null;size:36"`
	PointsGained int       `gorm:"not null"`
	CheckinDate  string    `gorm:"not null;size:10;uniqueIndex:idx_checkins_user_date"`
	CreatedAt    time.Time `gorm:"not null"`

	// Define relationships
	User  User  `gorm:"foreignKey:UserID;references:ID"`
	Place Place `gorm:"foreignKey:PlaceID;references:ID"`
}

// TableName specifies the table name for Checkin
func (Checkin) TableName() string {
	return "checkins"
}
