package models

type Organization struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"not null"`
	Mission      string `gorm:"not null"`
	ContactEmail string `gorm:"not null"`
	ContactPhone string `gorm:"not null"`
}
