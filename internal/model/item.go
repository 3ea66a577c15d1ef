package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item is a single menu entry belonging to exactly one Category.
type Item struct {
	ID          uint            `gorm:"primaryKey"`
	CategoryID  uint            `gorm:"not null;index"`
	Name        string          `gorm:"size:100;index;not null"`
	Description *string         `gorm:"size:500"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Rating      float64         `gorm:"not null;default:0"`
	// No default tag: GORM would drop an explicit false on insert.
	// The service layer applies the default (active) instead.
	IsActive bool `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Category *Category `gorm:"foreignKey:CategoryID"`
}

func (Item) TableName() string { return "items" }
