package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Food is a single trackable food item with its macros per serving.
type Food struct {
	ID        uint            `gorm:"primaryKey;autoIncrement"`
	UserID    uint            `gorm:"column:user_id;not null;index"`
	Title     string          `gorm:"column:title;not null"`
	Calories  decimal.Decimal `gorm:"column:calories;type:decimal(6,1);not null"`
	Carbs     decimal.Decimal `gorm:"column:carbs;type:decimal(6,1);not null"`
	Fibers    decimal.Decimal `gorm:"column:fibers;type:decimal(6,1);not null"`
	Fat       decimal.Decimal `gorm:"column:fat;type:decimal(6,1);not null"`
	Protein   decimal.Decimal `gorm:"column:protein;type:decimal(6,1);not null"`
	Estimates string          `gorm:"column:estimates"`
	CreatedAt time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}
