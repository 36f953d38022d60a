package model

// Place represents the database model for check-in places
type Place struct {
	ID          string  `gorm:"primaryKey;size:36"`
	Name        string  `gorm:"not null;size:255;index"`
	Category    string  `gorm:"not null;size:100;index"`
	Area        string  `gorm:"size:255"`
	Description string  `gorm:"type:text"`
	Points      int     `gorm:"not null"`
	Lat         float64 `gorm:"not null"`
	Lng         float64 `gorm:"not null"`
}

// TableName specifies the table name for Place
func (Place) TableName() string {
	return "places"
}
