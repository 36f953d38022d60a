package model

// Reward represents the database model for redeemable rewards
type Reward struct {
	ID         string `gorm:"primaryKey;size:36"`
	Name       string `gorm:"not null;size:255"`
	Brand      string `gorm:"not null;size:255"`
	CostPoints int    `gorm:"not null"`
	ImageURL   string `gorm:"size:1024"`
}

// TableName specifies the table name for Reward
func (Reward) TableName() string {
	return "rewards"
}
