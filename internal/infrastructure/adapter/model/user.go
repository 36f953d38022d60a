package model

import (
	"time"
)

// User represents the database model for application users
type User struct {
	ID              uint64    `gorm:"primaryKey;autoIncrement"`
	AuthUserID      string    `gorm:"uniqueIndex;not null;size:255"`
	Username        string    `gorm:"not null;size:255"`
	Email           string    `gorm:"size:255"`
	Points          int       `gorm:"not null;default:0"`
	Streak          int       `gorm:"not null;default:0"`
	LastCheckinDate string    `gorm:"size:10"`
	CreatedAt       time.Time `gorm:"not null"`
	UpdatedAt       time.Time `gorm:"not null"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
