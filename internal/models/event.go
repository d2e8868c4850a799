package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Event struct {
	ID             uint            `gorm:"primaryKey"`
	Name           string          `gorm:"not null"`
	Description    string          `gorm:"not null"`
	Purpose        string          `gorm:"not null"`
	Date           time.Time       `gorm:"not null;index"`
	Location       string          `gorm:"not null"`
	TicketPrice    decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	GoalAmount     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	CurrentAmount  decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	IsSuspended    bool            `gorm:"not null;default:false"`
	CategoryID     uint            `gorm:"not null;index"`
	Category       Category        `gorm:"foreignKey:CategoryID"`
	OrganizationID uint            `gorm:"not null;index"`
	Organization   Organization    `gorm:"foreignKey:OrganizationID"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
